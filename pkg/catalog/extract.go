package catalog

import (
	"strings"

	"github.com/ShaojieDai/SCRO/pkg/models"
)

// ExtractCountry derives a normalized country name from a provider's
// location fields. The location name is tried first: records usually
// read like "Sydney NSW, Australia", so the part after the last comma is
// the country. The state field is the fallback, and a comma-free
// location name longer than two characters is accepted as a country on
// its own. When nothing usable remains the documented "Unknown" default
// is returned.
func ExtractCountry(locationName, locationState string) string {
	if idx := strings.LastIndex(locationName, ","); idx >= 0 {
		if country := strings.TrimSpace(locationName[idx+1:]); country != "" {
			return country
		}
	}

	if country := strings.TrimSpace(locationState); country != "" {
		return country
	}

	trimmed := strings.TrimSpace(locationName)
	if len(trimmed) > 2 && !strings.Contains(trimmed, ",") {
		return trimmed
	}

	return "Unknown"
}

// ExtractLocations flattens a product's segmented site lists into the
// single location list the engine consumes, preserving segment order:
// manufacturing, raw materials, storage.
func ExtractLocations(p models.Product) []models.Location {
	locations := make([]models.Location, 0,
		len(p.ManufacturingSites)+len(p.RawMaterialSources)+len(p.Suppliers))

	for _, site := range p.ManufacturingSites {
		site.Type = models.Manufacturing
		locations = append(locations, site)
	}
	for _, site := range p.RawMaterialSources {
		site.Type = models.RawMaterial
		locations = append(locations, site)
	}
	for _, site := range p.Suppliers {
		site.Type = models.Supplier
		locations = append(locations, site)
	}

	return locations
}
