package models

import "time"

// ExtractSession ties one uploaded workbook pair to the name list offered
// to the user. Sessions live in memory only and expire after the configured
// TTL; nothing about an upload survives the service process.
type ExtractSession struct {
	Code           string    `json:"code"`
	Filename       string    `json:"filename"`
	WorkbookPath   string    `json:"-"`
	LookupFilename string    `json:"lookup_filename,omitempty"`
	LookupPath     string    `json:"-"`
	SheetNames     []string  `json:"sheet_names"`
	EntityNames    []string  `json:"entity_names"`
	CreatedAt      time.Time `json:"created_at"`
}
