package csvio

import (
	"encoding/csv"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/Sepsepi/blakeaddr/internal/models"
	"github.com/Sepsepi/blakeaddr/internal/parser"
)

// Column headers of the search-ready CSV format.
const (
	HeaderName    = "DirectName_Cleaned"
	HeaderAddress = "DirectName_Address"
)

// ErrMissingColumns is returned when a file lacks the search-ready headers.
var ErrMissingColumns = errors.New("csv file does not contain the search-ready name/address columns")

// WriteRecords writes records to path in the search-ready CSV format,
// header row first.
func WriteRecords(path string, records []models.SearchRecord) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create csv file: %w", err)
	}
	defer file.Close()

	writer := csv.NewWriter(file)
	if err = writer.Write([]string{HeaderName, HeaderAddress}); err != nil {
		return fmt.Errorf("failed to write csv header: %w", err)
	}
	for _, rec := range records {
		if err = writer.Write([]string{rec.Name, rec.Address}); err != nil {
			return fmt.Errorf("failed to write csv record: %w", err)
		}
	}

	writer.Flush()
	if err = writer.Error(); err != nil {
		return fmt.Errorf("failed to flush csv file: %w", err)
	}

	return nil
}

// ReadRecords reads a search-ready CSV file back into records. Header names
// are matched after trimming. Rows whose name or address is a missing-value
// marker are returned as-is; filtering is the caller's concern.
func ReadRecords(path string) ([]models.SearchRecord, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open csv file: %w", err)
	}
	defer file.Close()

	reader := csv.NewReader(file)
	rows, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to read csv file: %w", err)
	}
	if len(rows) == 0 {
		return nil, ErrMissingColumns
	}

	nameIdx, addrIdx := -1, -1
	for i, header := range rows[0] {
		switch strings.TrimSpace(header) {
		case HeaderName:
			nameIdx = i
		case HeaderAddress:
			addrIdx = i
		}
	}
	if nameIdx < 0 || addrIdx < 0 {
		return nil, ErrMissingColumns
	}

	var records []models.SearchRecord
	for _, row := range rows[1:] {
		if nameIdx >= len(row) || addrIdx >= len(row) {
			continue
		}
		records = append(records, models.SearchRecord{
			Name:    strings.TrimSpace(row[nameIdx]),
			Address: strings.TrimSpace(row[addrIdx]),
		})
	}

	return records, nil
}

// IsUsable reports whether a record carries both a real name and a real
// address, i.e. neither field is empty or a missing-value marker.
func IsUsable(rec models.SearchRecord) bool {
	return !parser.IsMissing(rec.Name) && !parser.IsMissing(rec.Address)
}
