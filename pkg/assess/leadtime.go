package assess

import (
	"math"
	"regexp"
	"strconv"
	"strings"

	"github.com/ShaojieDai/SCRO/pkg/models"
)

// unknownLeadTimeRisk is the neutral default for missing or unparseable
// delivery text, matching the country-table convention.
const unknownLeadTimeRisk = 0.5

var (
	weeksPattern = regexp.MustCompile(`(\d+\.?\d*)\s*weeks?`)
	daysPattern  = regexp.MustCompile(`(\d+)\s*days?`)
)

// LeadTimeRisk maps free-text delivery/availability text to a risk
// scalar in [0,1]. Classification is case-insensitive and applied in
// priority order:
//
//	"in stock australia" (hyphenated or not)  → 0.0
//	no parseable duration                     → 0.5
//	weeks == 0                                → 0.0
//	weeks <= 3  (under ~15 working days)      → 0.2
//	weeks <= 6  (~5 weeks)                    → 0.6
//	weeks  > 10                               → 0.9
//	6 < weeks <= 10                           → 0.6 + (weeks-6)*0.0625, capped at 0.85
//
// Durations given as "<n> days" convert to weeks at 5 working days per
// week. Downstream weighting depends on these exact boundary values.
func LeadTimeRisk(text string) float64 {
	t := strings.ToLower(strings.TrimSpace(text))
	if t == "" {
		return unknownLeadTimeRisk
	}
	if strings.Contains(t, "in stock australia") || strings.Contains(t, "in-stock australia") {
		return 0.0
	}

	weeks, ok := parseWeeks(t)
	if !ok {
		return unknownLeadTimeRisk
	}

	switch {
	case weeks == 0:
		return 0.0
	case weeks <= 3:
		return 0.2
	case weeks <= 6:
		return 0.6
	case weeks > 10:
		return 0.9
	}
	return math.Min(0.85, 0.6+(weeks-6)*0.0625)
}

// parseWeeks extracts a duration in weeks from lowercased text. A weeks
// pattern wins over a days pattern.
func parseWeeks(t string) (float64, bool) {
	if m := weeksPattern.FindStringSubmatch(t); m != nil {
		if weeks, err := strconv.ParseFloat(m[1], 64); err == nil {
			return weeks, true
		}
	}
	if m := daysPattern.FindStringSubmatch(t); m != nil {
		if days, err := strconv.Atoi(m[1]); err == nil {
			return float64(days) / 5.0, true
		}
	}
	return 0, false
}

// LeadTime classifies every supplied product and averages the scores.
// An empty product list yields a zero average, a defined result used by
// the composite scorer.
func LeadTime(products []models.Product) models.LeadTimeResult {
	if len(products) == 0 {
		return models.LeadTimeResult{AverageRisk: 0.0, Items: []models.LeadTimeItem{}}
	}

	items := make([]models.LeadTimeItem, 0, len(products))
	total := 0.0
	for _, p := range products {
		name := p.Name
		if name == "" {
			name = "Unknown"
		}
		text := p.Raw.LeadTimeText()
		risk := LeadTimeRisk(text)
		items = append(items, models.LeadTimeItem{Product: name, LeadTime: text, Risk: risk})
		total += risk
	}

	return models.LeadTimeResult{
		AverageRisk: total / float64(len(products)),
		Items:       items,
	}
}
