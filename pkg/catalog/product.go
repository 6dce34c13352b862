// Package catalog transforms provider product records into the
// normalized shapes the risk engine consumes. Fetching, pagination, and
// caching of the upstream catalog belong to the network collaborator and
// are out of scope here; everything in this package is a pure
// transformation of already-retrieved records.
package catalog

import "github.com/ShaojieDai/SCRO/pkg/models"

// RawSite mirrors one location entry of a provider catalog record.
// Latitude and longitude are pointers because the provider omits them
// for non-geocoded sites.
type RawSite struct {
	LocationName        string   `json:"location_name"`
	LocationState       string   `json:"location_state"`
	LocationLat         *float64 `json:"location_lat"`
	LocationLon         *float64 `json:"location_lon"`
	Component           string   `json:"component"`
	ComponentPercentage float64  `json:"component_percentage"`
	Material            string   `json:"material"`
	ProductPercentage   float64  `json:"product_percentage"`
}

// RawProduct mirrors a provider catalog record as retrieved by the
// upstream collaborator.
type RawProduct struct {
	ID                 int    `json:"id"`
	ProductName        string `json:"product_name"`
	ProductCode        string `json:"product_code"`
	ManufacturerName   string `json:"manufacturer_name"`
	ProductDescription string `json:"product_description"`

	LeadTime      string `json:"lead_time"`
	LeadTimeCamel string `json:"leadTime"`
	Availability  string `json:"availability"`

	ManufacturingLocations []RawSite `json:"manufacturing_locations"`
	MaterialLocations      []RawSite `json:"material_locations"`
	StorageLocations       []RawSite `json:"storage_locations"`
}

// Transform converts a provider record into the standardized product
// shape, resolving each site's country and tagging sites with their
// supply-chain segment.
func Transform(raw RawProduct) models.Product {
	name := raw.ProductName
	if name == "" {
		name = "Unknown"
	}
	manufacturer := raw.ManufacturerName
	if manufacturer == "" {
		manufacturer = "Unknown"
	}

	p := models.Product{
		ID:           raw.ID,
		Name:         name,
		Code:         raw.ProductCode,
		Manufacturer: manufacturer,
		Description:  raw.ProductDescription,
		Raw: models.ProductAttributes{
			LeadTime:      raw.LeadTime,
			LeadTimeCamel: raw.LeadTimeCamel,
			Availability:  raw.Availability,
		},
	}

	for _, site := range raw.ManufacturingLocations {
		loc := siteLocation(site, models.Manufacturing)
		loc.Component = site.Component
		loc.Percentage = site.ComponentPercentage
		p.ManufacturingSites = append(p.ManufacturingSites, loc)
	}

	for _, site := range raw.MaterialLocations {
		loc := siteLocation(site, models.RawMaterial)
		loc.Material = site.Material
		if loc.Material == "" {
			loc.Material = "Unknown"
		}
		loc.Percentage = site.ProductPercentage
		p.RawMaterialSources = append(p.RawMaterialSources, loc)
	}

	for _, site := range raw.StorageLocations {
		p.Suppliers = append(p.Suppliers, siteLocation(site, models.Supplier))
	}

	return p
}

func siteLocation(site RawSite, segment models.LocationType) models.Location {
	name := site.LocationName
	if name == "" {
		name = "Unknown"
	}

	loc := models.Location{
		Type:    segment,
		Name:    name,
		Address: site.LocationName,
		Country: ExtractCountry(site.LocationName, site.LocationState),
	}
	if site.LocationLat != nil && site.LocationLon != nil {
		loc.Coordinates = &models.Coordinates{Lat: *site.LocationLat, Lng: *site.LocationLon}
	}
	return loc
}
