// Package engine composes the individual assessors into a full
// supply-chain risk assessment.
package engine

import (
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/ShaojieDai/SCRO/pkg/assess"
	"github.com/ShaojieDai/SCRO/pkg/countryrisk"
	"github.com/ShaojieDai/SCRO/pkg/models"
)

// Scoring formula weights: geographic concentration dominates, delivery
// responsiveness contributes the rest.
const (
	hhiWeight      = 0.7
	leadTimeWeight = 0.3
)

// Overall risk-level buckets on the final score.
const (
	overallVeryHigh = 0.8
	overallHigh     = 0.6
	overallModerate = 0.4
	overallLow      = 0.2
)

// Engine is the supply-chain risk scoring engine.
//
// Architecture:
//   - The engine is synchronous and side-effect-free: every assessment
//     is a pure function of its inputs plus the two static risk tables.
//   - It never fetches, caches, or serves anything itself; location and
//     product records arrive through collaborators and results go back
//     to the caller as immutable value objects.
//   - It degrades instead of failing: missing countries, empty inputs,
//     and unparseable lead-time text all resolve to documented neutral
//     defaults, never to errors.
//
// Concurrent Assess calls for different products may run fully in
// parallel with no coordination; the tables are read-only after New.
type Engine struct {
	climate      countryrisk.Table
	geopolitical countryrisk.Table
	logger       *zap.Logger
}

// Option configures an Engine.
type Option func(*Engine)

// WithLogger attaches a structured logger. The engine logs one line per
// assessment; without this option it stays silent.
func WithLogger(logger *zap.Logger) Option {
	return func(e *Engine) {
		e.logger = logger
	}
}

// New creates an engine with the compiled-in risk tables.
func New(opts ...Option) *Engine {
	e := &Engine{
		climate:      countryrisk.Climate(),
		geopolitical: countryrisk.Geopolitical(),
		logger:       zap.NewNop(),
	}
	for _, opt := range opts {
		opt(e)
	}
	e.logger.Info("risk engine initialized",
		zap.Int("climate_countries", len(e.climate)),
		zap.Int("geopolitical_countries", len(e.geopolitical)),
	)
	return e
}

// Assess produces the complete assessment for one product's supply
// chain. An empty location list short-circuits to an "unknown" result
// with a zero score; that is a defined outcome, not an error.
func (e *Engine) Assess(locations []models.Location, products []models.Product) *models.SupplyChainAssessment {
	e.logger.Info("assessing supply chain risk",
		zap.Int("locations", len(locations)),
		zap.Int("products", len(products)),
	)

	if len(locations) == 0 {
		return &models.SupplyChainAssessment{
			AssessmentID:    uuid.NewString(),
			GeneratedAt:     time.Now().UTC(),
			OverallRisk:     models.RiskUnknown,
			RiskScore:       0.0,
			Geographic:      assess.Geographic(nil, e.climate, e.geopolitical),
			Climate:         assess.Exposure(nil, e.climate),
			Geopolitical:    assess.Exposure(nil, e.geopolitical),
			LeadTime:        assess.LeadTime(nil),
			Concentration:   models.ConcentrationSummary{CountryDistribution: map[string]int{}},
			Recommendations: []string{"No locations available for risk assessment"},
		}
	}

	geographic := assess.Geographic(locations, e.climate, e.geopolitical)
	climate := assess.Exposure(locations, e.climate)
	geopolitical := assess.Exposure(locations, e.geopolitical)
	leadTime := assess.LeadTime(products)

	score := Score(geographic.HHI, leadTime.AverageRisk)

	return &models.SupplyChainAssessment{
		AssessmentID: uuid.NewString(),
		GeneratedAt:  time.Now().UTC(),
		OverallRisk:  overallLevel(score),
		RiskScore:    score,
		Geographic:   geographic,
		Climate:      climate,
		Geopolitical: geopolitical,
		LeadTime:     leadTime,
		Concentration: models.ConcentrationSummary{
			HHI:                 geographic.HHI,
			ConcentrationLevel:  geographic.ConcentrationRisk,
			Countries:           geographic.Countries,
			CountryDistribution: geographic.CountryDistribution,
		},
		Recommendations: recommendations(geographic, climate, geopolitical),
	}
}

// Score combines geographic concentration and lead-time risk into the
// overall score, clamped to [0,1]. This is the authoritative scoring
// formula exposed to callers.
func Score(hhi, leadTimeAvg float64) float64 {
	score := hhiWeight*hhi + leadTimeWeight*leadTimeAvg
	if score < 0 {
		return 0.0
	}
	if score > 1 {
		return 1.0
	}
	return score
}

// WeightedScore is the legacy three-factor formula (geographic 0.4,
// climate 0.3, geopolitical 0.3, capped at 1.0). The primary assessment
// path does not call it; it is retained so consumers of the old
// weighting can compare it against the current formula.
func WeightedScore(geographic models.GeographicRisk, climate, geopolitical models.ExposureResult) float64 {
	score := 0.4*geographic.HHI + 0.3*climate.AverageRisk + 0.3*geopolitical.AverageRisk
	if score > 1 {
		return 1.0
	}
	return score
}

func overallLevel(score float64) models.RiskLevel {
	switch {
	case score >= overallVeryHigh:
		return models.RiskVeryHigh
	case score >= overallHigh:
		return models.RiskHigh
	case score >= overallModerate:
		return models.RiskModerate
	case score >= overallLow:
		return models.RiskLow
	default:
		return models.RiskVeryLow
	}
}
