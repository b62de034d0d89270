package models

// Record represents an owner record pulled from storage whose raw address
// still needs to be parsed into components.
type Record struct {
	ID         int    // ID is the unique identifier for the record.
	OwnerName  string // OwnerName is the raw owner name as imported.
	RawAddress string // RawAddress is the unparsed address string.
}

// SearchRecord is the minimal name/address pair used by the search-ready CSV
// format (DirectName_Cleaned, DirectName_Address).
type SearchRecord struct {
	Name    string // Name is the cleaned person name.
	Address string // Address is the raw, unparsed address string.
}
