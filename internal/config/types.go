package config

import (
	"fmt"
	"strings"
)

// Environment selects which tier-override policy is applied after assembly.
type Environment string

const (
	Development Environment = "development"
	Staging     Environment = "staging"
	Production  Environment = "production"
)

// ParseEnvironment maps a tier name to an Environment. Unrecognised names are
// a startup error rather than a silent fall-through to development overrides.
func ParseEnvironment(name string) (Environment, error) {
	switch Environment(strings.ToLower(strings.TrimSpace(name))) {
	case Development:
		return Development, nil
	case Staging:
		return Staging, nil
	case Production:
		return Production, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownEnvironment, name)
	}
}

// Platform identifies a social media platform with a tuning profile.
type Platform string

const (
	PlatformInstagram Platform = "instagram"
	PlatformTikTok    Platform = "tiktok"
	PlatformYouTube   Platform = "youtube"
	PlatformFacebook  Platform = "facebook"
	PlatformTwitter   Platform = "twitter"
	PlatformUnknown   Platform = "unknown"
)

// ParsePlatform maps a platform name to a Platform. Unknown names resolve to
// PlatformUnknown so lookups can fall back instead of failing.
func ParsePlatform(name string) Platform {
	platform := Platform(strings.ToLower(strings.TrimSpace(name)))
	switch platform {
	case PlatformInstagram, PlatformTikTok, PlatformYouTube, PlatformFacebook, PlatformTwitter:
		return platform
	default:
		return PlatformUnknown
	}
}

// ContentType classifies the payload submitted for analysis.
type ContentType string

const (
	ContentText  ContentType = "text"
	ContentImage ContentType = "image"
	ContentVideo ContentType = "video"
	ContentAudio ContentType = "audio"
	ContentMixed ContentType = "mixed"
)

// Model registry keys. Every deployment carries exactly these five models.
const (
	ModelQualityClassifier   = "quality_classifier"
	ModelOriginalityDetector = "originality_detector"
	ModelEngagementPredictor = "engagement_predictor"
	ModelBrandSafetyChecker  = "brand_safety_checker"
	ModelAIDetector          = "ai_detector"
)

// ModelConfig describes one ML model artifact and its serving parameters.
type ModelConfig struct {
	Name      string
	Version   string
	Path      string
	Threshold float64
	Enabled   bool
	BatchSize int
	MaxTokens int
}

// QualityWeights is the five-factor linear weighting behind the content
// quality multiplier. The defaults sum to 1.0; a drift beyond 0.01 is
// reported by the validator rather than rejected at load time.
type QualityWeights struct {
	Originality         float64
	EngagementPotential float64
	PlatformRelevance   float64
	BrandSafety         float64
	HumanGenerated      float64
}

// Sum returns the total of the five factor weights.
func (w QualityWeights) Sum() float64 {
	return w.Originality + w.EngagementPotential + w.PlatformRelevance + w.BrandSafety + w.HumanGenerated
}

// PlatformProfile holds platform-specific tuning bounds used by downstream
// scoring.
type PlatformProfile struct {
	HashtagMin           int
	HashtagMax           int
	LengthMin            int
	LengthMax            int
	EngagementMultiplier float64
	QualityThreshold     float64
}

// PerformanceThresholds bounds acceptable model serving behaviour.
type PerformanceThresholds struct {
	MinAccuracy      float64
	MaxInferenceTime float64
	MaxMemoryMB      int
	AlertThreshold   float64
}

// Config is the aggregate configuration root. Built once by Load and
// read-only afterwards.
type Config struct {
	AppName     string
	Version     string
	Environment Environment
	Debug       bool

	APIHost        string
	APIPort        int
	APIPrefix      string
	APITitle       string
	APIDescription string

	DatabaseURL string
	RedisURL    string

	Models    map[string]ModelConfig
	Weights   QualityWeights
	Platforms map[Platform]PlatformProfile

	MaxContentLength      int
	MaxImageSize          int64
	MaxVideoSize          int64
	SupportedImageFormats []string
	SupportedVideoFormats []string

	APIKeyHeader       string
	APIKeys            []string
	RateLimitPerMinute int
	RateLimitPerHour   int

	CacheTTL     int
	CacheMaxSize int

	MetricsEnabled bool
	MetricsPort    int
	LogLevel       string
	SentryDSN      string

	Performance PerformanceThresholds

	SolanaRPCURL     string
	FinovaProgramID  string
	WalletPrivateKey string

	FeatureFlags map[string]bool
}
