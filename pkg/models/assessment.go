package models

import "time"

// RiskLevel is a coarse classification bucket shared by every assessor.
type RiskLevel string

const (
	RiskVeryLow  RiskLevel = "very_low"
	RiskLow      RiskLevel = "low"
	RiskModerate RiskLevel = "moderate"
	RiskHigh     RiskLevel = "high"
	RiskVeryHigh RiskLevel = "very_high"

	// RiskUnknown is returned only when there is no data to assess.
	RiskUnknown RiskLevel = "unknown"
)

// SegmentHHI breaks the concentration index down by supply-chain segment.
type SegmentHHI struct {
	Manufacturing float64 `json:"manufacturing"`
	Materials     float64 `json:"materials"`
	Storage       float64 `json:"storage"`
}

// SegmentPairRisk describes the concentration risk of one adjacent
// segment pair (e.g. raw materials feeding manufacturing).
//
// Base is the arithmetic mean of the two segment indices. Overlap is the
// fraction of source-segment locations whose country also appears in the
// target segment; co-location across adjacent stages is protective, so
// Adjusted applies a reduction proportional to the overlap, never below
// zero.
type SegmentPairRisk struct {
	Base     float64 `json:"base_hhi"`
	Adjusted float64 `json:"adjusted_hhi"`
	Overlap  float64 `json:"overlap_ratio"`
}

// CountryRiskFlag records a country whose static climate or geopolitical
// score crossed the high-risk threshold.
type CountryRiskFlag struct {
	Country          string  `json:"country"`
	ClimateRisk      float64 `json:"climate_risk"`
	GeopoliticalRisk float64 `json:"geopolitical_risk"`
}

// GeographicRisk is the output of the segmented geographic assessor.
// It is constructed fresh per assessment and never mutated after return.
type GeographicRisk struct {
	TotalLocations      int            `json:"total_locations"`
	Countries           int            `json:"countries"`
	HHI                 float64        `json:"hhi"`
	ConcentrationRisk   RiskLevel      `json:"concentration_risk"`
	CountryDistribution map[string]int `json:"country_distribution"`

	HHIByType SegmentHHI `json:"hhi_by_type"`

	// The two adjacent segment pairs of the supply path.
	MaterialsToManufacturing SegmentPairRisk `json:"materials_to_manufacturing"`
	ManufacturingToStorage   SegmentPairRisk `json:"manufacturing_to_storage"`

	// RiskFactors are free-text diagnostics in the order they fired.
	RiskFactors       []string          `json:"risk_factors"`
	HighRiskCountries []CountryRiskFlag `json:"high_risk_countries"`
}

// HighRiskLocation is a location whose table lookup crossed the exposure
// assessor's high-risk threshold, annotated with its score.
type HighRiskLocation struct {
	Name      string       `json:"name"`
	Country   string       `json:"country"`
	RiskScore float64      `json:"risk_level"`
	Type      LocationType `json:"type"`
}

// ExposureResult is the output of one exposure assessor (climate or
// geopolitical; both share this shape).
type ExposureResult struct {
	AverageRisk       float64            `json:"average_risk"`
	HighRiskLocations []HighRiskLocation `json:"high_risk_locations"`
	RiskLevel         RiskLevel          `json:"risk_level"`
}

// LeadTimeItem carries the classification of a single product's
// delivery text.
type LeadTimeItem struct {
	Product  string  `json:"product"`
	LeadTime string  `json:"lead_time"`
	Risk     float64 `json:"risk"`
}

// LeadTimeResult aggregates lead-time risk across the supplied products.
type LeadTimeResult struct {
	AverageRisk float64        `json:"average_risk"`
	Items       []LeadTimeItem `json:"items"`
}

// ConcentrationSummary is the condensed view of geographic concentration
// duplicated at the top level of an assessment for callers that do not
// need the full geographic breakdown.
type ConcentrationSummary struct {
	HHI                 float64        `json:"hhi"`
	ConcentrationLevel  RiskLevel      `json:"concentration_level"`
	Countries           int            `json:"countries"`
	CountryDistribution map[string]int `json:"country_distribution"`
}

// SupplyChainAssessment is the top-level result of one engine invocation.
// It is an immutable value object: one instance per call, never shared or
// mutated afterwards. All scores are in [0,1]; any percentage or basis
// point scaling is the caller's presentation concern.
type SupplyChainAssessment struct {
	AssessmentID string    `json:"assessment_id"`
	GeneratedAt  time.Time `json:"generated_at"`

	OverallRisk RiskLevel `json:"overall_risk"`
	RiskScore   float64   `json:"risk_score"`

	Geographic    GeographicRisk       `json:"geographic_risk"`
	Climate       ExposureResult       `json:"climate_risk"`
	Geopolitical  ExposureResult       `json:"geopolitical_risk"`
	LeadTime      LeadTimeResult       `json:"lead_time_risk"`
	Concentration ConcentrationSummary `json:"concentration_risk"`

	Recommendations []string `json:"recommendations"`
}
