package assess

import (
	"github.com/ShaojieDai/SCRO/pkg/countryrisk"
	"github.com/ShaojieDai/SCRO/pkg/models"
)

// Exposure level thresholds on the average table score.
const (
	exposureHigh     = 0.6
	exposureModerate = 0.4
)

// highRiskLocationThreshold flags an individual location when its table
// score reaches this value.
const highRiskLocationThreshold = 0.7

// Exposure averages the per-location table lookups and flags every
// location at or above the high-risk threshold. The climate and
// geopolitical assessments are this same function applied to different
// tables. Unlisted countries contribute the neutral default; they are
// never excluded from the count. Empty input yields a zero average and
// an empty flag list.
func Exposure(locations []models.Location, table countryrisk.Table) models.ExposureResult {
	if len(locations) == 0 {
		return models.ExposureResult{
			AverageRisk:       0.0,
			HighRiskLocations: []models.HighRiskLocation{},
			RiskLevel:         models.RiskLow,
		}
	}

	total := 0.0
	highRisk := []models.HighRiskLocation{}
	for _, loc := range locations {
		country := loc.CountryOrUnknown()
		score := table.Score(country)
		total += score

		if score >= highRiskLocationThreshold {
			highRisk = append(highRisk, models.HighRiskLocation{
				Name:      loc.Name,
				Country:   country,
				RiskScore: score,
				Type:      loc.Type,
			})
		}
	}

	average := total / float64(len(locations))
	return models.ExposureResult{
		AverageRisk:       average,
		HighRiskLocations: highRisk,
		RiskLevel:         exposureLevel(average),
	}
}

func exposureLevel(average float64) models.RiskLevel {
	switch {
	case average >= exposureHigh:
		return models.RiskHigh
	case average >= exposureModerate:
		return models.RiskModerate
	default:
		return models.RiskLow
	}
}
