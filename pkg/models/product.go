package models

// ProductAttributes carries the provider-specific fields the lead-time
// classifier reads. Providers are inconsistent about which key they
// populate, so all three variants are kept.
type ProductAttributes struct {
	LeadTime      string `json:"lead_time,omitempty"`
	LeadTimeCamel string `json:"leadTime,omitempty"`
	Availability  string `json:"availability,omitempty"`
}

// LeadTimeText returns the first non-empty delivery text, checked in the
// provider's documented priority order: lead_time, leadTime, availability.
func (a ProductAttributes) LeadTimeText() string {
	if a.LeadTime != "" {
		return a.LeadTime
	}
	if a.LeadTimeCamel != "" {
		return a.LeadTimeCamel
	}
	return a.Availability
}

// Product is an assessment input record. The engine reads only Name and
// Raw; the segmented site lists exist so callers can derive the location
// list for the same product without going back to the provider record.
// Products are read-only to the engine.
type Product struct {
	ID           int    `json:"id,omitempty"`
	Name         string `json:"name"`
	Code         string `json:"code,omitempty"`
	Manufacturer string `json:"manufacturer,omitempty"`
	Description  string `json:"description,omitempty"`

	ManufacturingSites []Location `json:"manufacturingSites,omitempty"`
	RawMaterialSources []Location `json:"rawMaterialSources,omitempty"`
	Suppliers          []Location `json:"suppliers,omitempty"`

	Raw ProductAttributes `json:"raw"`
}
