package quality

import (
	"github.com/finova-network/content-analyzer/internal/config"
)

// Canonical factor keys expected in a score map. Keys outside this set are
// ignored by the scorer.
const (
	FactorOriginality         = "originality"
	FactorEngagementPotential = "engagement_potential"
	FactorPlatformRelevance   = "platform_relevance"
	FactorBrandSafety         = "brand_safety"
	FactorHumanGenerated      = "human_generated"
)

const (
	// neutralScore stands in for factors the upstream models did not score.
	// An unknown input is treated as average, not as absent contribution.
	neutralScore = 0.5

	minMultiplier = 0.5
	maxMultiplier = 2.0
)

type weightedScorer struct{}

// New creates a Scorer computing the bounded weighted-sum multiplier.
func New() Scorer {
	return &weightedScorer{}
}

func (s *weightedScorer) Multiplier(scores map[string]float64, weights config.QualityWeights) float64 {
	if len(scores) == 0 {
		return 1.0
	}

	weighted := factorScore(scores, FactorOriginality)*weights.Originality +
		factorScore(scores, FactorEngagementPotential)*weights.EngagementPotential +
		factorScore(scores, FactorPlatformRelevance)*weights.PlatformRelevance +
		factorScore(scores, FactorBrandSafety)*weights.BrandSafety +
		factorScore(scores, FactorHumanGenerated)*weights.HumanGenerated

	return clamp(weighted, minMultiplier, maxMultiplier)
}

func factorScore(scores map[string]float64, factor string) float64 {
	if score, ok := scores[factor]; ok {
		return score
	}
	return neutralScore
}

func clamp(value, lo, hi float64) float64 {
	if value < lo {
		return lo
	}
	if value > hi {
		return hi
	}
	return value
}
