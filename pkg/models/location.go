package models

// LocationType identifies which supply-chain segment a location belongs to.
type LocationType string

const (
	// Manufacturing marks sites where the product is assembled or produced.
	Manufacturing LocationType = "manufacturing"

	// RawMaterial marks sourcing sites for the product's input materials.
	RawMaterial LocationType = "raw_material"

	// Supplier marks storage and distribution sites.
	Supplier LocationType = "supplier"
)

// Coordinates holds an optional geocoded position for a location.
type Coordinates struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// Location is one node in a product's supply chain.
//
// Instances are built by the upstream extraction collaborator once per
// product per assessment and are treated as immutable by the engine.
// Country is expected to always be present: callers substitute "Unknown"
// when the true country cannot be determined. The engine tolerates an
// empty country by applying the same neutral default.
type Location struct {
	Type    LocationType `json:"type"`
	Name    string       `json:"name"`
	Address string       `json:"address"`
	Country string       `json:"country"`

	// Segment-specific metadata. Component applies to manufacturing
	// sites, Material to raw-material sources.
	Component  string  `json:"component,omitempty"`
	Material   string  `json:"material,omitempty"`
	Percentage float64 `json:"percentage,omitempty"`

	// Coordinates is nil when the location could not be geocoded.
	Coordinates *Coordinates `json:"coordinates,omitempty"`
}

// CountryOrUnknown returns the location's country, substituting the
// documented "Unknown" default when the field is empty.
func (l Location) CountryOrUnknown() string {
	if l.Country == "" {
		return "Unknown"
	}
	return l.Country
}
