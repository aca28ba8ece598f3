package models

import "time"

// LookupEntry is one row of the identifier lookup workbook: columns A, B,
// F and H of the first sheet. A date that could not be parsed is nil, which
// makes the entry unmatchable but never an error.
type LookupEntry struct {
	EntityKey    string     `json:"entity_key"`
	Identifier   string     `json:"identifier"`
	IssueDate    *time.Time `json:"issue_date"`
	MaturityDate *time.Time `json:"maturity_date"`
}
