package engine

import (
	"sort"
	"strings"

	"github.com/ShaojieDai/SCRO/pkg/models"
)

// recommendations builds the ordered mitigation list: concentration
// advice first, then climate, then geopolitical, with a fallback note
// when nothing fired.
func recommendations(geographic models.GeographicRisk, climate, geopolitical models.ExposureResult) []string {
	recs := []string{}

	switch {
	case geographic.HHI >= concentrationDiversifyThreshold:
		recs = append(recs, "Consider diversifying suppliers across more countries to reduce geographic concentration risk")
	case geographic.HHI >= concentrationMonitorThreshold:
		recs = append(recs, "Monitor geographic concentration and consider adding suppliers in different regions")
	}

	if climate.RiskLevel == models.RiskHigh {
		recs = append(recs, "Implement climate risk mitigation strategies for high-risk locations")
		if countries := distinctCountries(climate.HighRiskLocations); len(countries) > 0 {
			recs = append(recs, "Consider alternative suppliers outside high climate risk countries: "+strings.Join(countries, ", "))
		}
	}

	if geopolitical.RiskLevel == models.RiskHigh {
		recs = append(recs, "Develop contingency plans for geopolitical disruptions in high-risk regions")
		if countries := distinctCountries(geopolitical.HighRiskLocations); len(countries) > 0 {
			recs = append(recs, "Monitor political stability in: "+strings.Join(countries, ", "))
		}
	}

	if len(recs) == 0 {
		recs = append(recs, "Supply chain risk levels are acceptable. Continue monitoring for changes.")
	}

	return recs
}

const (
	concentrationDiversifyThreshold = 0.7
	concentrationMonitorThreshold   = 0.5
)

// distinctCountries returns the sorted unique countries of the flagged
// locations.
func distinctCountries(locations []models.HighRiskLocation) []string {
	seen := make(map[string]struct{})
	countries := []string{}
	for _, loc := range locations {
		if _, ok := seen[loc.Country]; ok {
			continue
		}
		seen[loc.Country] = struct{}{}
		countries = append(countries, loc.Country)
	}
	sort.Strings(countries)
	return countries
}
