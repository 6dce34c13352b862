// Package assess contains the individual risk assessors the engine
// composes into a full supply-chain assessment. Every function here is a
// pure function of its inputs plus the static country risk tables: no
// I/O, no shared state, deterministic.
package assess

import "github.com/ShaojieDai/SCRO/pkg/models"

// Index computes the Herfindahl-Hirschman index of geographic
// concentration over the given locations: group by country, square each
// country's share of the total, sum. 1.0 means every location shares one
// country; the index approaches 0 as locations spread uniformly across
// many countries.
//
// A non-empty segment restricts the calculation to locations of that
// type. An empty (possibly filtered-out) location set yields 0.0; that
// is a defined result, not an error.
func Index(locations []models.Location, segment models.LocationType) float64 {
	counts := make(map[string]int)
	total := 0
	for _, loc := range locations {
		if segment != "" && loc.Type != segment {
			continue
		}
		counts[loc.CountryOrUnknown()]++
		total++
	}

	if total == 0 {
		return 0.0
	}

	hhi := 0.0
	for _, count := range counts {
		share := float64(count) / float64(total)
		hhi += share * share
	}
	return hhi
}

// OverlapRatio returns the fraction of source countries that appear
// anywhere in the target country set. It measures same-country
// co-location between two supply-chain segments; an empty source yields
// 0.0.
func OverlapRatio(source, target []string) float64 {
	if len(source) == 0 {
		return 0.0
	}

	targetSet := make(map[string]struct{}, len(target))
	for _, c := range target {
		if c != "" {
			targetSet[c] = struct{}{}
		}
	}

	overlap := 0
	for _, c := range source {
		if _, ok := targetSet[c]; ok {
			overlap++
		}
	}
	return float64(overlap) / float64(len(source))
}
