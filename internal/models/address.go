package models

// ParsedAddress holds the structured components extracted from a raw US
// postal address string.
type ParsedAddress struct {
	Street       string // Street is the house number and street, e.g. "10310 WATERSIDE CT".
	City         string // City is the uppercased city name.
	State        string // State is the two-letter state abbreviation.
	Zip          string // Zip is the 5-digit (or ZIP+4) postal code.
	SearchFormat string // SearchFormat is "STREET, CITY", the form the search sites accept.
}

// IsZero reports whether no component of the address was extracted.
func (p ParsedAddress) IsZero() bool {
	return p.Street == "" && p.City == "" && p.Zip == "" && p.SearchFormat == ""
}
