package assess_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ShaojieDai/SCRO/pkg/assess"
	"github.com/ShaojieDai/SCRO/pkg/countryrisk"
	"github.com/ShaojieDai/SCRO/pkg/models"
)

func TestGeographic_EmptyInput(t *testing.T) {
	result := assess.Geographic(nil, countryrisk.Climate(), countryrisk.Geopolitical())

	assert.Equal(t, 0, result.TotalLocations)
	assert.Equal(t, 0, result.Countries)
	assert.Equal(t, 0.0, result.HHI)
	assert.Equal(t, models.RiskLow, result.ConcentrationRisk)
	assert.Empty(t, result.CountryDistribution)
	assert.Empty(t, result.RiskFactors)
}

func TestGeographic_ManufacturingConcentration(t *testing.T) {
	// Two Chinese plants and one Australian plant, all manufacturing.
	locs := []models.Location{
		{Type: models.Manufacturing, Name: "Plant A", Country: "China"},
		{Type: models.Manufacturing, Name: "Plant B", Country: "China"},
		{Type: models.Manufacturing, Name: "Plant C", Country: "Australia"},
	}

	result := assess.Geographic(locs, countryrisk.Climate(), countryrisk.Geopolitical())

	assert.Equal(t, 3, result.TotalLocations)
	assert.Equal(t, 2, result.Countries)
	assert.InDelta(t, 5.0/9.0, result.HHI, 1e-9)
	assert.InDelta(t, 5.0/9.0, result.HHIByType.Manufacturing, 1e-9)
	// 0.5556 crosses the 0.5 threshold but not 0.7.
	assert.Equal(t, models.RiskHigh, result.ConcentrationRisk)
	assert.Equal(t, map[string]int{"China": 2, "Australia": 1}, result.CountryDistribution)
}

func TestGeographic_ConcentrationLevels(t *testing.T) {
	cases := []struct {
		countries []string
		level     models.RiskLevel
	}{
		// HHI 1.0
		{[]string{"China", "China"}, models.RiskVeryHigh},
		// HHI 5/9 ≈ 0.556
		{[]string{"China", "China", "Australia"}, models.RiskHigh},
		// HHI 1/3
		{[]string{"China", "Australia", "Germany"}, models.RiskModerate},
		// HHI 0.25
		{[]string{"China", "Australia", "Germany", "Japan"}, models.RiskLow},
	}

	for _, tc := range cases {
		result := assess.Geographic(locationsIn(tc.countries...), countryrisk.Climate(), countryrisk.Geopolitical())
		assert.Equal(t, tc.level, result.ConcentrationRisk, "countries %v", tc.countries)
	}
}

func TestGeographic_OverlapAdjustment(t *testing.T) {
	// Materials and manufacturing fully co-located in Australia: both
	// segment indices are 1.0, base pair risk 1.0, overlap 1.0, so the
	// adjusted risk is halved.
	locs := []models.Location{
		{Type: models.RawMaterial, Country: "Australia"},
		{Type: models.Manufacturing, Country: "Australia"},
	}

	result := assess.Geographic(locs, countryrisk.Climate(), countryrisk.Geopolitical())

	pair := result.MaterialsToManufacturing
	assert.InDelta(t, 1.0, pair.Base, 1e-9)
	assert.InDelta(t, 1.0, pair.Overlap, 1e-9)
	assert.InDelta(t, 0.5, pair.Adjusted, 1e-9)
}

func TestGeographic_NoOverlapNoReduction(t *testing.T) {
	locs := []models.Location{
		{Type: models.RawMaterial, Country: "China"},
		{Type: models.Manufacturing, Country: "Germany"},
	}

	result := assess.Geographic(locs, countryrisk.Climate(), countryrisk.Geopolitical())

	pair := result.MaterialsToManufacturing
	assert.Equal(t, 0.0, pair.Overlap)
	assert.InDelta(t, pair.Base, pair.Adjusted, 1e-9)
}

func TestGeographic_AdjustedNeverExceedsBase(t *testing.T) {
	sets := [][]models.Location{
		{
			{Type: models.RawMaterial, Country: "China"},
			{Type: models.RawMaterial, Country: "Australia"},
			{Type: models.Manufacturing, Country: "China"},
		},
		{
			{Type: models.RawMaterial, Country: "Japan"},
			{Type: models.Manufacturing, Country: "Japan"},
			{Type: models.Supplier, Country: "Japan"},
		},
	}

	for _, locs := range sets {
		result := assess.Geographic(locs, countryrisk.Climate(), countryrisk.Geopolitical())
		for _, pair := range []models.SegmentPairRisk{result.MaterialsToManufacturing, result.ManufacturingToStorage} {
			assert.LessOrEqual(t, pair.Adjusted, pair.Base)
			assert.GreaterOrEqual(t, pair.Adjusted, 0.0)
		}
	}
}

func TestGeographic_RiskFactors(t *testing.T) {
	// Concentrated in two countries, one of which is high-risk in both
	// tables (Sudan: climate 0.8, geopolitical 0.8).
	locs := []models.Location{
		{Type: models.Manufacturing, Country: "Sudan"},
		{Type: models.Manufacturing, Country: "Sudan"},
		{Type: models.RawMaterial, Country: "Australia"},
	}

	result := assess.Geographic(locs, countryrisk.Climate(), countryrisk.Geopolitical())

	require.Len(t, result.RiskFactors, 3)
	assert.Contains(t, result.RiskFactors[0], "High geographic concentration")
	assert.Contains(t, result.RiskFactors[1], "Limited geographic diversity (2 countries)")
	assert.Contains(t, result.RiskFactors[2], "High-risk countries: Sudan")

	require.Len(t, result.HighRiskCountries, 1)
	assert.Equal(t, "Sudan", result.HighRiskCountries[0].Country)
	assert.Equal(t, 0.8, result.HighRiskCountries[0].ClimateRisk)
	assert.Equal(t, 0.8, result.HighRiskCountries[0].GeopoliticalRisk)
}

func TestGeographic_NoRiskFactorsWhenDiversified(t *testing.T) {
	locs := locationsIn("Australia", "Germany", "Japan", "Canada")

	result := assess.Geographic(locs, countryrisk.Climate(), countryrisk.Geopolitical())

	assert.Empty(t, result.RiskFactors)
	assert.Empty(t, result.HighRiskCountries)
}
