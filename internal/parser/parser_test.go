package parser_test

import (
	"testing"

	"github.com/Sepsepi/blakeaddr/internal/parser"
	"github.com/stretchr/testify/assert"
)

func TestParseCombined(t *testing.T) {
	t.Parallel()

	t.Run("full comma-separated address", func(t *testing.T) {
		t.Parallel()
		parsed := parser.ParseCombined("10310 WATERSIDE CT, PARKLAND, FL, 33076")

		assert.Equal(t, "10310 WATERSIDE CT", parsed.Street)
		assert.Equal(t, "PARKLAND", parsed.City)
		assert.Equal(t, "FL", parsed.State)
		assert.Equal(t, "33076", parsed.Zip)
		assert.Equal(t, "10310 WATERSIDE CT, PARKLAND", parsed.SearchFormat)
	})

	t.Run("fused state and zip part", func(t *testing.T) {
		t.Parallel()
		parsed := parser.ParseCombined("8661 MIRALAGO WAY, PARKLAND, FL 33076")

		assert.Equal(t, "FL", parsed.State)
		assert.Equal(t, "33076", parsed.Zip)
	})

	t.Run("zip+4 is accepted", func(t *testing.T) {
		t.Parallel()
		parsed := parser.ParseCombined("9593 TOWN PARC CIR S, PARKLAND, FL, 33076-1234")

		assert.Equal(t, "33076-1234", parsed.Zip)
	})

	t.Run("lowercase city is uppercased", func(t *testing.T) {
		t.Parallel()
		parsed := parser.ParseCombined("123 Main St, hollywood, fl, 33020")

		assert.Equal(t, "HOLLYWOOD", parsed.City)
		assert.Equal(t, "FL", parsed.State)
	})

	t.Run("state defaults to FL when absent", func(t *testing.T) {
		t.Parallel()
		parsed := parser.ParseCombined("8890 WATERSIDE PT, PARKLAND")

		assert.Equal(t, "FL", parsed.State)
		assert.Empty(t, parsed.Zip)
		assert.Equal(t, "8890 WATERSIDE PT, PARKLAND", parsed.SearchFormat)
	})

	t.Run("known city at the tail of comma-less string", func(t *testing.T) {
		t.Parallel()
		parsed := parser.ParseCombined("2100 N 46TH AVE HOLLYWOOD")

		assert.Equal(t, "2100 N 46TH AVE", parsed.Street)
		assert.Equal(t, "HOLLYWOOD", parsed.City)
		assert.Equal(t, "FL", parsed.State)
	})

	t.Run("multi-word known city", func(t *testing.T) {
		t.Parallel()
		parsed := parser.ParseCombined("500 SW 21ST TER FORT LAUDERDALE")

		assert.Equal(t, "500 SW 21ST TER", parsed.Street)
		assert.Equal(t, "FORT LAUDERDALE", parsed.City)
	})

	t.Run("unknown comma-less address falls back to street only", func(t *testing.T) {
		t.Parallel()
		parsed := parser.ParseCombined("1234 NOWHERE LN")

		assert.Equal(t, "1234 NOWHERE LN", parsed.Street)
		assert.Empty(t, parsed.City)
		assert.Equal(t, "1234 NOWHERE LN", parsed.SearchFormat)
	})

	t.Run("missing markers yield zero value", func(t *testing.T) {
		t.Parallel()
		for _, raw := range []string{"", "  ", "nan", "None", "NULL"} {
			parsed := parser.ParseCombined(raw)
			assert.True(t, parsed.IsZero(), "input %q", raw)
		}
	})
}

func TestParseSeparated(t *testing.T) {
	t.Parallel()

	t.Run("all components present", func(t *testing.T) {
		t.Parallel()
		parsed := parser.ParseSeparated(map[string]string{
			"House Number":       "9593",
			"Prefix Direction":   "n",
			"Street Name":        "town parc",
			"Street Type":        "CIRCLE",
			"Post Direction":     "s",
			"Unit Number":        "12",
			"City Name":          "parkland",
			"State Abbreviation": "fl",
			"Zip Code":           "33076",
		})

		assert.Equal(t, "9593 N TOWN PARC CIR S #12", parsed.Street)
		assert.Equal(t, "PARKLAND", parsed.City)
		assert.Equal(t, "FL", parsed.State)
		assert.Equal(t, "33076", parsed.Zip)
		assert.Equal(t, "9593 N TOWN PARC CIR S #12, PARKLAND", parsed.SearchFormat)
	})

	t.Run("street type is standardized", func(t *testing.T) {
		t.Parallel()
		parsed := parser.ParseSeparated(map[string]string{
			"House Number": "10310",
			"Street Name":  "WATERSIDE",
			"Street Type":  "COURT",
			"City Name":    "PARKLAND",
		})

		assert.Equal(t, "10310 WATERSIDE CT", parsed.Street)
	})

	t.Run("missing markers are skipped", func(t *testing.T) {
		t.Parallel()
		parsed := parser.ParseSeparated(map[string]string{
			"House Number": "8661",
			"Street Name":  "MIRALAGO",
			"Street Type":  "WAY",
			"Unit Number":  "nan",
			"City Name":    "PARKLAND",
			"Zip Code":     "none",
		})

		assert.Equal(t, "8661 MIRALAGO WAY", parsed.Street)
		assert.Empty(t, parsed.Zip)
	})

	t.Run("no city means no search format", func(t *testing.T) {
		t.Parallel()
		parsed := parser.ParseSeparated(map[string]string{
			"House Number": "123",
			"Street Name":  "MAIN",
			"Street Type":  "ST",
		})

		assert.Empty(t, parsed.SearchFormat)
	})
}

func TestCleanName(t *testing.T) {
	t.Parallel()

	t.Run("last comma first is swapped", func(t *testing.T) {
		t.Parallel()
		assert.Equal(t, "JOHN SMITH", parser.CleanName("SMITH, JOHN"))
	})

	t.Run("joint owners keep only the first person", func(t *testing.T) {
		t.Parallel()
		assert.Equal(t, "JANE DOE", parser.CleanName("DOE, JANE & JOHN"))
	})

	t.Run("first last passes through uppercased", func(t *testing.T) {
		t.Parallel()
		assert.Equal(t, "JOHN SMITH", parser.CleanName("john smith"))
	})

	t.Run("filler tokens are dropped", func(t *testing.T) {
		t.Parallel()
		assert.Equal(t, "JOHN SMITH", parser.CleanName("JOHN SMITH JR"))
	})

	t.Run("middle names reduce to first and last", func(t *testing.T) {
		t.Parallel()
		assert.Equal(t, "JOHN SMITH", parser.CleanName("JOHN ROBERT SMITH"))
	})

	t.Run("businesses are skipped", func(t *testing.T) {
		t.Parallel()
		assert.Empty(t, parser.CleanName("WATERSIDE HOLDINGS LLC"))
		assert.Empty(t, parser.CleanName("SMITH FAMILY TRUST"))
	})

	t.Run("missing markers yield empty", func(t *testing.T) {
		t.Parallel()
		assert.Empty(t, parser.CleanName(""))
		assert.Empty(t, parser.CleanName("nan"))
	})
}
