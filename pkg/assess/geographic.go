package assess

import (
	"fmt"
	"sort"
	"strings"

	"github.com/ShaojieDai/SCRO/pkg/countryrisk"
	"github.com/ShaojieDai/SCRO/pkg/models"
)

// coLocationReduction controls how much same-country overlap between
// adjacent segments reduces their pair risk. Full overlap removes at
// most half the base risk.
const coLocationReduction = 0.5

// Concentration level thresholds on the overall index. Fixed constants,
// not configurable.
const (
	concentrationVeryHigh = 0.7
	concentrationHigh     = 0.5
	concentrationModerate = 0.3
)

// highRiskCountryThreshold flags a country when either of its static
// table scores reaches this value.
const highRiskCountryThreshold = 0.7

// Geographic assesses geographic concentration across the full location
// list: overall and per-segment concentration indices, overlap-adjusted
// risk for the two adjacent segment pairs of the supply path, and the
// diagnostic risk factors.
func Geographic(locations []models.Location, climate, geopolitical countryrisk.Table) models.GeographicRisk {
	if len(locations) == 0 {
		return models.GeographicRisk{
			ConcentrationRisk:   models.RiskLow,
			CountryDistribution: map[string]int{},
			RiskFactors:         []string{},
			HighRiskCountries:   []models.CountryRiskFlag{},
		}
	}

	overall := Index(locations, "")
	manufacturingHHI := Index(locations, models.Manufacturing)
	materialsHHI := Index(locations, models.RawMaterial)
	storageHHI := Index(locations, models.Supplier)

	materialCountries := segmentCountries(locations, models.RawMaterial)
	manufacturingCountries := segmentCountries(locations, models.Manufacturing)
	storageCountries := segmentCountries(locations, models.Supplier)

	materialsToManufacturing := segmentPair(
		materialsHHI, manufacturingHHI,
		OverlapRatio(materialCountries, manufacturingCountries),
	)
	manufacturingToStorage := segmentPair(
		manufacturingHHI, storageHHI,
		OverlapRatio(manufacturingCountries, storageCountries),
	)

	distribution := make(map[string]int)
	for _, loc := range locations {
		distribution[loc.CountryOrUnknown()]++
	}

	riskFactors := []string{}
	if overall >= concentrationHigh {
		riskFactors = append(riskFactors, fmt.Sprintf("High geographic concentration (HHI: %.3f)", overall))
	}
	if len(distribution) <= 2 {
		riskFactors = append(riskFactors, fmt.Sprintf("Limited geographic diversity (%d countries)", len(distribution)))
	}

	highRisk := flagHighRiskCountries(distribution, climate, geopolitical)
	if len(highRisk) > 0 {
		names := make([]string, len(highRisk))
		for i, c := range highRisk {
			names[i] = c.Country
		}
		riskFactors = append(riskFactors, "High-risk countries: "+strings.Join(names, ", "))
	}

	return models.GeographicRisk{
		TotalLocations:      len(locations),
		Countries:           len(distribution),
		HHI:                 overall,
		ConcentrationRisk:   concentrationLevel(overall),
		CountryDistribution: distribution,
		HHIByType: models.SegmentHHI{
			Manufacturing: manufacturingHHI,
			Materials:     materialsHHI,
			Storage:       storageHHI,
		},
		MaterialsToManufacturing: materialsToManufacturing,
		ManufacturingToStorage:   manufacturingToStorage,
		RiskFactors:              riskFactors,
		HighRiskCountries:        highRisk,
	}
}

// segmentPair builds the overlap-adjusted risk for one adjacent segment
// pair. Base risk is the mean of the two segment indices; the adjustment
// rewards same-country co-location and is clamped at zero.
func segmentPair(sourceHHI, targetHHI, overlap float64) models.SegmentPairRisk {
	base := (sourceHHI + targetHHI) / 2.0
	adjusted := base * (1.0 - coLocationReduction*overlap)
	if adjusted < 0 {
		adjusted = 0
	}
	return models.SegmentPairRisk{Base: base, Adjusted: adjusted, Overlap: overlap}
}

func segmentCountries(locations []models.Location, segment models.LocationType) []string {
	var countries []string
	for _, loc := range locations {
		if loc.Type == segment {
			countries = append(countries, loc.CountryOrUnknown())
		}
	}
	return countries
}

func concentrationLevel(hhi float64) models.RiskLevel {
	switch {
	case hhi >= concentrationVeryHigh:
		return models.RiskVeryHigh
	case hhi >= concentrationHigh:
		return models.RiskHigh
	case hhi >= concentrationModerate:
		return models.RiskModerate
	default:
		return models.RiskLow
	}
}

// flagHighRiskCountries scans the distinct countries (in sorted order so
// output is deterministic) and flags any whose climate or geopolitical
// score reaches the high-risk threshold.
func flagHighRiskCountries(distribution map[string]int, climate, geopolitical countryrisk.Table) []models.CountryRiskFlag {
	countries := make([]string, 0, len(distribution))
	for c := range distribution {
		countries = append(countries, c)
	}
	sort.Strings(countries)

	flagged := []models.CountryRiskFlag{}
	for _, country := range countries {
		climateRisk := climate.Score(country)
		geoRisk := geopolitical.Score(country)
		if climateRisk >= highRiskCountryThreshold || geoRisk >= highRiskCountryThreshold {
			flagged = append(flagged, models.CountryRiskFlag{
				Country:          country,
				ClimateRisk:      climateRisk,
				GeopoliticalRisk: geoRisk,
			})
		}
	}
	return flagged
}
