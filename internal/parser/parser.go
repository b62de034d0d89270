package parser

import (
	"regexp"
	"strings"

	"github.com/Sepsepi/blakeaddr/internal/models"
)

// streetTypes maps spelled-out or variant street types to their USPS
// standard abbreviation.
var streetTypes = map[string]string{
	"AVENUE": "AVE", "AV": "AVE", "AVE": "AVE",
	"STREET": "ST", "STR": "ST", "ST": "ST",
	"ROAD": "RD", "RD": "RD",
	"DRIVE": "DR", "DRV": "DR", "DR": "DR",
	"BOULEVARD": "BLVD", "BLVD": "BLVD",
	"LANE": "LN", "LN": "LN",
	"COURT": "CT", "CT": "CT",
	"CIRCLE": "CIR", "CIR": "CIR",
	"PLACE": "PL", "PL": "PL",
	"TERRACE": "TER", "TER": "TER",
	"POINT": "PT", "PT": "PT",
	"WAY": "WAY",
	"TRAIL": "TRL", "TRL": "TRL",
	"PARKWAY": "PKWY", "PKWY": "PKWY",
}

// knownCities are South-Florida city names recognized at the tail of a
// comma-less address string. Multi-word names must come before their
// single-word prefixes when matching, so the list is checked longest-first.
var knownCities = []string{
	"FORT LAUDERDALE", "PEMBROKE PINES", "CORAL SPRINGS",
	"HOLLYWOOD", "PARKLAND", "MIAMI", "DAVIE", "PLANTATION", "SUNRISE", "WESTON",
}

var zipRe = regexp.MustCompile(`^\d{5}(-\d{4})?$`)

// defaultState is applied when no state can be extracted; the source data is
// Broward County property records.
const defaultState = "FL"

// IsMissing reports whether a raw field value should be treated as absent.
// Matches the missing-value markers the CSV pipeline produces.
func IsMissing(value string) bool {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "", "nan", "none", "null":
		return true
	}
	return false
}

// ParseCombined extracts structured components from a combined address string
// such as "10310 WATERSIDE CT, PARKLAND, FL, 33076". State and zip may arrive
// as separate comma parts or fused as "FL 33076". A missing or marker-only
// input yields a zero ParsedAddress.
func ParseCombined(raw string) models.ParsedAddress {
	if IsMissing(raw) {
		return models.ParsedAddress{}
	}

	raw = strings.TrimSpace(raw)
	parts := strings.Split(raw, ",")
	for i := range parts {
		parts[i] = strings.TrimSpace(parts[i])
	}

	if len(parts) >= 2 {
		street := parts[0]
		city := strings.ToUpper(parts[1])
		state := defaultState
		zip := ""

		for _, part := range parts[2:] {
			switch {
			case isStateToken(part):
				state = strings.ToUpper(part)
			case zipRe.MatchString(part):
				zip = part
			case strings.Contains(part, " "):
				// "FL 33076" style remainder
				for _, sub := range strings.Fields(part) {
					if isStateToken(sub) {
						state = strings.ToUpper(sub)
					} else if zipRe.MatchString(sub) {
						zip = sub
					}
				}
			}
		}

		return models.ParsedAddress{
			Street:       street,
			City:         city,
			State:        state,
			Zip:          zip,
			SearchFormat: street + ", " + city,
		}
	}

	// No commas: try to peel a known city name off the end.
	words := strings.Fields(strings.ToUpper(raw))
	const minWords = 3
	if len(words) >= minWords {
		for _, city := range knownCities {
			cityWords := strings.Fields(city)
			if len(words) < len(cityWords) {
				continue
			}
			if strings.Join(words[len(words)-len(cityWords):], " ") == city {
				street := strings.Join(words[:len(words)-len(cityWords)], " ")
				return models.ParsedAddress{
					Street:       street,
					City:         city,
					State:        defaultState,
					SearchFormat: street + ", " + city,
				}
			}
		}
	}

	// Fallback: the whole string is the street.
	return models.ParsedAddress{
		Street:       raw,
		State:        defaultState,
		SearchFormat: raw,
	}
}

// separatedColumns maps canonical component names to the column-name variants
// seen across county exports.
var separatedColumns = map[string][]string{
	"house_number":     {"house number", "house_number", "number", "housenumber"},
	"prefix_direction": {"prefix direction", "prefix_direction", "pre_dir", "predir"},
	"street_name":      {"street name", "street_name", "streetname", "street"},
	"street_type":      {"street type", "street_type", "streettype", "type"},
	"post_direction":   {"post direction", "post_direction", "post_dir", "postdir"},
	"unit_number":      {"unit number", "unit_number", "unit", "apt", "apartment"},
	"city":             {"city name", "city_name", "city", "cityname"},
	"state":            {"state abbreviation", "state_abbreviation", "state", "st"},
	"zip_code":         {"zip code", "zip_code", "zip", "zipcode", "postal_code"},
}

// ParseSeparated assembles an address from column-split fields (house number,
// directions, street name/type, unit, city, state, zip). Column names are
// matched case-insensitively against common variants. Street types are
// standardized and directions uppercased; a unit renders as "#N".
func ParseSeparated(fields map[string]string) models.ParsedAddress {
	lower := make(map[string]string, len(fields))
	for k, v := range fields {
		lower[strings.ToLower(strings.TrimSpace(k))] = v
	}

	component := func(name string) string {
		for _, col := range separatedColumns[name] {
			if v, ok := lower[col]; ok && !IsMissing(v) {
				return strings.TrimSpace(v)
			}
		}
		return ""
	}

	var streetParts []string
	if v := component("house_number"); v != "" {
		streetParts = append(streetParts, v)
	}
	if v := component("prefix_direction"); v != "" {
		streetParts = append(streetParts, strings.ToUpper(v))
	}
	if v := component("street_name"); v != "" {
		streetParts = append(streetParts, strings.ToUpper(v))
	}
	if v := component("street_type"); v != "" {
		streetType := strings.ToUpper(v)
		if std, ok := streetTypes[streetType]; ok {
			streetType = std
		}
		streetParts = append(streetParts, streetType)
	}
	if v := component("post_direction"); v != "" {
		streetParts = append(streetParts, strings.ToUpper(v))
	}
	if v := component("unit_number"); v != "" {
		streetParts = append(streetParts, "#"+v)
	}

	street := strings.Join(streetParts, " ")
	city := strings.ToUpper(component("city"))
	state := strings.ToUpper(component("state"))
	if state == "" {
		state = defaultState
	}

	parsed := models.ParsedAddress{
		Street: street,
		City:   city,
		State:  state,
		Zip:    component("zip_code"),
	}
	if street != "" && city != "" {
		parsed.SearchFormat = street + ", " + city
	}

	return parsed
}

// isStateToken reports whether part looks like a two-letter state abbreviation.
func isStateToken(part string) bool {
	const stateLen = 2
	if len(part) != stateLen {
		return false
	}
	for _, r := range part {
		if (r < 'A' || r > 'Z') && (r < 'a' || r > 'z') {
			return false
		}
	}
	return true
}
