package catalog

import (
	"fmt"

	"github.com/ShaojieDai/SCRO/pkg/models"
)

// maxQualityIssues bounds the issue list in a quality report.
const maxQualityIssues = 10

// Coverage holds per-segment location coverage percentages (0-100).
type Coverage struct {
	Manufacturing float64 `json:"manufacturing"`
	Materials     float64 `json:"materials"`
	Storage       float64 `json:"storage"`
	Complete      float64 `json:"complete"`
}

// QualityReport summarizes how complete the location data is across a
// product set. CompletenessScore is the percentage of products carrying
// all three segments.
type QualityReport struct {
	TotalProducts     int      `json:"total_products"`
	CompletenessScore float64  `json:"completeness_score"`
	LocationCoverage  Coverage `json:"location_coverage"`
	Issues            []string `json:"data_quality_issues"`
}

// DataQuality computes location-coverage metrics for a product set.
func DataQuality(products []models.Product) QualityReport {
	if len(products) == 0 {
		return QualityReport{Issues: []string{}}
	}

	total := len(products)
	var manufacturing, materials, storage, complete int
	issues := []string{}

	for _, p := range products {
		hasManufacturing := len(p.ManufacturingSites) > 0
		hasMaterials := len(p.RawMaterialSources) > 0
		hasStorage := len(p.Suppliers) > 0

		if hasManufacturing {
			manufacturing++
		}
		if hasMaterials {
			materials++
		}
		if hasStorage {
			storage++
		}
		if hasManufacturing && hasMaterials && hasStorage {
			complete++
		}

		if !hasManufacturing && !hasMaterials && !hasStorage {
			name := p.Name
			if name == "" {
				name = "Unknown"
			}
			issues = append(issues, fmt.Sprintf("Product %q has no location data", name))
		}
	}

	if len(issues) > maxQualityIssues {
		issues = issues[:maxQualityIssues]
	}

	return QualityReport{
		TotalProducts:     total,
		CompletenessScore: percentage(complete, total),
		LocationCoverage: Coverage{
			Manufacturing: percentage(manufacturing, total),
			Materials:     percentage(materials, total),
			Storage:       percentage(storage, total),
			Complete:      percentage(complete, total),
		},
		Issues: issues,
	}
}

func percentage(count, total int) float64 {
	return float64(count) / float64(total) * 100
}
