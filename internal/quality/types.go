package quality

import (
	"github.com/finova-network/content-analyzer/internal/config"
)

// Scorer describes the behaviour required from a quality score calculator.
// Implementations must be pure: no mutation of inputs, no side effects.
type Scorer interface {
	// Multiplier computes the content quality multiplier from per-factor
	// scores and the configured weights. An empty score map yields the
	// neutral multiplier 1.0; the result is always within [0.5, 2.0].
	Multiplier(scores map[string]float64, weights config.QualityWeights) float64
}
