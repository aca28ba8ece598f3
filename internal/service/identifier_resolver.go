package service

import "extractor-web/internal/models"

// IdentifierResolver fills the ISIN column from the lookup table. The
// column is inserted right after NBFC whenever NBFC exists; it is only
// populated when a lookup table is available and the sheet carries both
// date columns needed for the join key.
type IdentifierResolver struct{}

func NewIdentifierResolver() *IdentifierResolver {
	return &IdentifierResolver{}
}

// Enrich mutates only the ISIN field of the rows it resolves. A table
// without an NBFC column passes through untouched; without date columns the
// ISIN column stays empty for every row. A row whose dates do not parse, or
// whose triple has no lookup entry, keeps an empty ISIN.
func (r *IdentifierResolver) Enrich(table *models.Table, lookup *LookupTable) *models.Table {
	if !table.HasColumn(colEntityKey) {
		return table
	}
	table.InsertColumnAfter(colEntityKey, colIdentifier, "")

	if lookup == nil || !table.HasColumn(colIssueDate) || !table.HasColumn(colMaturityDate) {
		return table
	}

	for _, row := range table.Rows {
		issue := coerceDate(row[colIssueDate])
		maturity := coerceDate(row[colMaturityDate])
		row[colIdentifier] = lookup.Find(row[colEntityKey], issue, maturity)
	}
	return table
}
