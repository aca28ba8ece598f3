package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"extractor-web/internal/models"
)

func filterFixture() *models.Table {
	return &models.Table{
		SheetName: "Jan",
		Columns:   []string{"Name", "Units", "NBFC", "Unnamed: 3"},
		Rows: []models.Row{
			{"Name": "Alpha", "Units": "10", "NBFC": "ACME", "Unnamed: 3": "x"},
			{"Name": "Alpha", "Units": "0", "NBFC": "ACME", "Unnamed: 3": "x"},
			{"Name": "Alpha", "Units": "-5", "NBFC": "ACME", "Unnamed: 3": "x"},
			{"Name": "Alpha", "Units": "n/a", "NBFC": "ACME", "Unnamed: 3": "x"},
			{"Name": "Bravo", "Units": "7", "NBFC": "Zenith", "Unnamed: 3": "x"},
			{"Name": "Charlie", "Units": "3", "NBFC": "Zenith", "Unnamed: 3": "x"},
		},
	}
}

func TestFilterPredicate(t *testing.T) {
	result, err := NewRowFilter().Filter(filterFixture(), []string{"Alpha", "Bravo"})
	require.NoError(t, err)

	// Only positive, parseable Units survive; Charlie was not selected.
	require.Len(t, result.Rows, 2)
	assert.Equal(t, "Alpha", result.Rows[0]["Name"])
	assert.Equal(t, "10", result.Rows[0]["Units"])
	assert.Equal(t, "Bravo", result.Rows[1]["Name"])
}

func TestFilterDropsGhostColumns(t *testing.T) {
	result, err := NewRowFilter().Filter(filterFixture(), []string{"Alpha"})
	require.NoError(t, err)

	assert.Equal(t, []string{"Name", "Units", "NBFC"}, result.Columns)
	for _, row := range result.Rows {
		assert.NotContains(t, row, "Unnamed: 3")
	}
}

func TestFilterCopiesRows(t *testing.T) {
	source := filterFixture()
	result, err := NewRowFilter().Filter(source, []string{"Alpha"})
	require.NoError(t, err)

	result.Rows[0]["NBFC"] = "changed"
	assert.Equal(t, "ACME", source.Rows[0]["NBFC"])
}

func TestFilterMissingRequiredColumns(t *testing.T) {
	tests := []struct {
		columns []string
		missing string
	}{
		{[]string{"Units", "NBFC"}, "Name"},
		{[]string{"Name", "NBFC"}, "Units"},
	}

	for _, tt := range tests {
		table := &models.Table{SheetName: "Jan", Columns: tt.columns}
		_, err := NewRowFilter().Filter(table, []string{"Alpha"})

		var schemaErr *SchemaError
		require.ErrorAs(t, err, &schemaErr)
		assert.Equal(t, tt.missing, schemaErr.Column)
		assert.Equal(t, "Jan", schemaErr.Sheet)
	}
}

func TestFilterNoSelection(t *testing.T) {
	result, err := NewRowFilter().Filter(filterFixture(), nil)
	require.NoError(t, err)
	assert.Empty(t, result.Rows)
}
