package assess_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ShaojieDai/SCRO/pkg/assess"
	"github.com/ShaojieDai/SCRO/pkg/models"
)

func TestLeadTimeRisk_Boundaries(t *testing.T) {
	cases := []struct {
		text string
		want float64
	}{
		{"2 weeks", 0.2},
		{"3 weeks", 0.2},
		{"4 weeks", 0.6},
		{"6 weeks", 0.6},
		{"7 weeks", 0.6625},
		{"8 weeks", 0.725},
		{"10 weeks", 0.85},
		{"11 weeks", 0.9},
		{"In Stock Australia", 0.0},
		{"in-stock australia", 0.0},
		{"", 0.5},
	}

	for _, tc := range cases {
		t.Run(tc.text, func(t *testing.T) {
			assert.InDelta(t, tc.want, assess.LeadTimeRisk(tc.text), 1e-9)
		})
	}
}

func TestLeadTimeRisk_DaysConvertAtFiveWorkingDays(t *testing.T) {
	// 10 days / 5 = 2 weeks → low bucket.
	assert.InDelta(t, 0.2, assess.LeadTimeRisk("10 days"), 1e-9)
	// 40 days / 5 = 8 weeks → interpolated.
	assert.InDelta(t, 0.725, assess.LeadTimeRisk("40 days"), 1e-9)
	// 60 days / 5 = 12 weeks → high.
	assert.InDelta(t, 0.9, assess.LeadTimeRisk("60 days"), 1e-9)
}

func TestLeadTimeRisk_WeeksPatternWinsOverDays(t *testing.T) {
	assert.InDelta(t, 0.6, assess.LeadTimeRisk("4 weeks (20 days)"), 1e-9)
}

func TestLeadTimeRisk_FractionalWeeks(t *testing.T) {
	assert.InDelta(t, 0.6, assess.LeadTimeRisk("5.5 weeks"), 1e-9)
}

func TestLeadTimeRisk_ZeroWeeks(t *testing.T) {
	assert.Equal(t, 0.0, assess.LeadTimeRisk("0 weeks"))
}

func TestLeadTimeRisk_CaseInsensitive(t *testing.T) {
	assert.InDelta(t, 0.2, assess.LeadTimeRisk("Approx 3 WEEKS"), 1e-9)
	assert.Equal(t, 0.0, assess.LeadTimeRisk("IN STOCK AUSTRALIA"))
}

func TestLeadTimeRisk_UnparseableText(t *testing.T) {
	assert.Equal(t, 0.5, assess.LeadTimeRisk("contact supplier for availability"))
}

func TestLeadTimeRisk_InterpolationCap(t *testing.T) {
	// The interpolated band never exceeds 0.85.
	assert.InDelta(t, 0.85, assess.LeadTimeRisk("10 weeks"), 1e-9)
	assert.InDelta(t, 0.85, assess.LeadTimeRisk("9.9 weeks"), 1e-2)
}

func TestLeadTime_EmptyProducts(t *testing.T) {
	result := assess.LeadTime(nil)

	assert.Equal(t, 0.0, result.AverageRisk)
	assert.Empty(t, result.Items)
}

func TestLeadTime_AveragesAcrossProducts(t *testing.T) {
	products := []models.Product{
		{Name: "Tile", Raw: models.ProductAttributes{LeadTime: "2 weeks"}},
		{Name: "Brick", Raw: models.ProductAttributes{LeadTime: "4 weeks"}},
	}

	result := assess.LeadTime(products)

	assert.InDelta(t, 0.4, result.AverageRisk, 1e-9)
	require.Len(t, result.Items, 2)
	assert.Equal(t, "Tile", result.Items[0].Product)
	assert.InDelta(t, 0.2, result.Items[0].Risk, 1e-9)
	assert.Equal(t, "4 weeks", result.Items[1].LeadTime)
}

func TestLeadTime_FieldPriority(t *testing.T) {
	products := []models.Product{
		{Name: "Panel", Raw: models.ProductAttributes{
			LeadTimeCamel: "3 weeks",
			Availability:  "12 weeks",
		}},
	}

	result := assess.LeadTime(products)

	// leadTime outranks availability.
	assert.Equal(t, "3 weeks", result.Items[0].LeadTime)
	assert.InDelta(t, 0.2, result.Items[0].Risk, 1e-9)
}

func TestLeadTime_UnnamedProduct(t *testing.T) {
	result := assess.LeadTime([]models.Product{{Raw: models.ProductAttributes{Availability: "5 weeks"}}})

	require.Len(t, result.Items, 1)
	assert.Equal(t, "Unknown", result.Items[0].Product)
}

func TestLeadTime_MissingTextIsNeutral(t *testing.T) {
	result := assess.LeadTime([]models.Product{{Name: "Sheet"}})

	assert.InDelta(t, 0.5, result.AverageRisk, 1e-9)
}
