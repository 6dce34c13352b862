// Package countryrisk holds the compiled-in country risk tables used by
// the assessment engine.
//
// The two tables (climate and geopolitical) are simplified datasets; a
// production deployment would source them from a database or external
// provider. They are loaded once, read-only afterwards, and safe for
// unsynchronized concurrent reads. A country missing from a table always
// resolves to the neutral default of 0.5.
package countryrisk

// DefaultRisk is the neutral score applied to any country not present in
// a table.
const DefaultRisk = 0.5

// Table maps a normalized country name to a risk scalar in [0,1].
type Table map[string]float64

// Score returns the table entry for country, or DefaultRisk when the
// country is unlisted or empty.
func (t Table) Score(country string) float64 {
	if v, ok := t[country]; ok {
		return v
	}
	return DefaultRisk
}

// Climate returns the climate-risk table.
func Climate() Table { return climateRisk }

// Geopolitical returns the geopolitical-risk table.
func Geopolitical() Table { return geopoliticalRisk }

var climateRisk = Table{
	"Australia":      0.3,
	"China":          0.6,
	"USA":            0.4,
	"Germany":        0.2,
	"Japan":          0.5,
	"India":          0.7,
	"Brazil":         0.6,
	"Canada":         0.3,
	"United Kingdom": 0.3,
	"France":         0.2,
	"Italy":          0.4,
	"Spain":          0.5,
	"Netherlands":    0.3,
	"South Korea":    0.4,
	"Taiwan":         0.5,
	"Thailand":       0.6,
	"Vietnam":        0.6,
	"Indonesia":      0.7,
	"Malaysia":       0.6,
	"Philippines":    0.7,
	"Mexico":         0.5,
	"Turkey":         0.5,
	"Poland":         0.3,
	"Czech Republic": 0.3,
	"Hungary":        0.4,
	"Romania":        0.4,
	"Bulgaria":       0.4,
	"Croatia":        0.4,
	"Slovakia":       0.3,
	"Slovenia":       0.3,
	"Estonia":        0.3,
	"Latvia":         0.3,
	"Lithuania":      0.3,
	"Finland":        0.2,
	"Sweden":         0.2,
	"Norway":         0.2,
	"Denmark":        0.3,
	"Switzerland":    0.2,
	"Austria":        0.2,
	"Belgium":        0.3,
	"Luxembourg":     0.3,
	"Ireland":        0.3,
	"Portugal":       0.4,
	"Greece":         0.5,
	"Cyprus":         0.5,
	"Malta":          0.4,
	"Iceland":        0.2,
	"New Zealand":    0.3,
	"South Africa":   0.6,
	"Egypt":          0.7,
	"Morocco":        0.6,
	"Tunisia":        0.6,
	"Algeria":        0.6,
	"Libya":          0.7,
	"Sudan":          0.8,
	"Ethiopia":       0.7,
	"Kenya":          0.6,
	"Nigeria":        0.7,
	"Ghana":          0.6,
	"Senegal":        0.6,
	"Ivory Coast":    0.6,
	"Cameroon":       0.6,
	"Angola":         0.6,
	"Mozambique":     0.6,
	"Tanzania":       0.6,
	"Uganda":         0.6,
	"Rwanda":         0.6,
	"Burundi":        0.6,
	"Madagascar":     0.6,
	"Mauritius":      0.5,
	"Seychelles":     0.5,
	"Reunion":        0.5,
	"Mayotte":        0.5,
	"Comoros":        0.6,
	"Djibouti":       0.7,
	"Somalia":        0.8,
	"Eritrea":        0.7,
	"Chad":           0.7,
	"Niger":          0.7,
	"Mali":           0.7,
	"Burkina Faso":   0.7,
	"Guinea":         0.6,
	"Sierra Leone":   0.6,
	"Liberia":        0.6,
	"Gambia":         0.6,
	"Guinea-Bissau":  0.6,
	"Cape Verde":     0.5,
	"Sao Tome and Principe":            0.5,
	"Equatorial Guinea":                0.6,
	"Gabon":                            0.6,
	"Republic of the Congo":            0.6,
	"Democratic Republic of the Congo": 0.7,
	"Central African Republic":         0.7,
	"Zambia":    0.6,
	"Zimbabwe":  0.6,
	"Botswana":  0.6,
	"Namibia":   0.6,
	"Lesotho":   0.6,
	"Swaziland": 0.6,
	"Malawi":    0.6,
	"Unknown":   DefaultRisk,
}

var geopoliticalRisk = Table{
	"Australia":      0.1,
	"China":          0.4,
	"USA":            0.2,
	"Germany":        0.1,
	"Japan":          0.2,
	"India":          0.3,
	"Brazil":         0.3,
	"Canada":         0.1,
	"United Kingdom": 0.2,
	"France":         0.2,
	"Italy":          0.2,
	"Spain":          0.2,
	"Netherlands":    0.1,
	"South Korea":    0.3,
	"Taiwan":         0.5,
	"Thailand":       0.3,
	"Vietnam":        0.3,
	"Indonesia":      0.3,
	"Malaysia":       0.3,
	"Philippines":    0.4,
	"Mexico":         0.4,
	"Turkey":         0.5,
	"Poland":         0.2,
	"Czech Republic": 0.2,
	"Hungary":        0.3,
	"Romania":        0.3,
	"Bulgaria":       0.3,
	"Croatia":        0.2,
	"Slovakia":       0.2,
	"Slovenia":       0.2,
	"Estonia":        0.3,
	"Latvia":         0.3,
	"Lithuania":      0.3,
	"Finland":        0.2,
	"Sweden":         0.1,
	"Norway":         0.1,
	"Denmark":        0.1,
	"Switzerland":    0.1,
	"Austria":        0.1,
	"Belgium":        0.1,
	"Luxembourg":     0.1,
	"Ireland":        0.1,
	"Portugal":       0.2,
	"Greece":         0.3,
	"Cyprus":         0.4,
	"Malta":          0.2,
	"Iceland":        0.1,
	"New Zealand":    0.1,
	"South Africa":   0.4,
	"Egypt":          0.6,
	"Morocco":        0.4,
	"Tunisia":        0.4,
	"Algeria":        0.5,
	"Libya":          0.7,
	"Sudan":          0.8,
	"Ethiopia":       0.5,
	"Kenya":          0.4,
	"Nigeria":        0.5,
	"Ghana":          0.3,
	"Senegal":        0.3,
	"Ivory Coast":    0.4,
	"Cameroon":       0.4,
	"Angola":         0.4,
	"Mozambique":     0.4,
	"Tanzania":       0.3,
	"Uganda":         0.4,
	"Rwanda":         0.3,
	"Burundi":        0.5,
	"Madagascar":     0.3,
	"Mauritius":      0.2,
	"Seychelles":     0.2,
	"Reunion":        0.2,
	"Mayotte":        0.2,
	"Comoros":        0.3,
	"Djibouti":       0.5,
	"Somalia":        0.8,
	"Eritrea":        0.6,
	"Chad":           0.6,
	"Niger":          0.6,
	"Mali":           0.6,
	"Burkina Faso":   0.6,
	"Guinea":         0.4,
	"Sierra Leone":   0.4,
	"Liberia":        0.4,
	"Gambia":         0.3,
	"Guinea-Bissau":  0.4,
	"Cape Verde":     0.2,
	"Sao Tome and Principe":            0.2,
	"Equatorial Guinea":                0.4,
	"Gabon":                            0.3,
	"Republic of the Congo":            0.4,
	"Democratic Republic of the Congo": 0.6,
	"Central African Republic":         0.7,
	"Zambia":    0.3,
	"Zimbabwe":  0.5,
	"Botswana":  0.2,
	"Namibia":   0.3,
	"Lesotho":   0.3,
	"Swaziland": 0.3,
	"Malawi":    0.3,
	"Unknown":   DefaultRisk,
}
