package dataset

import (
	"path/filepath"
	"reflect"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/rodrigoclira/hr-dashboard/internal/app/models"
	"github.com/rodrigoclira/hr-dashboard/internal/pkg/apperrors"
)

var refDate = time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)

func TestLoadValidDataset(t *testing.T) {
	table, err := Load(filepath.Join("testdata", "employees_valid.csv"), "csv", refDate)
	require.NoError(t, err)
	require.Equal(t, 4, table.Len())

	rows := table.Rows()

	// Coerced fields of the first row
	maria := rows[0]
	require.Equal(t, int64(1001), maria.ID)
	require.Equal(t, "Maria Souza", maria.Name)
	require.Equal(t, "Operacional", maria.Department)
	require.Equal(t, 1000.00, maria.Salary)
	require.Equal(t, []string{"NR-35", "NR-18"}, maria.SafetyCertifications)
	require.Equal(t, models.StatusActive, maria.Status)
	require.Equal(t, 34, maria.Age)
	require.InDelta(t, 7.2, maria.YearsOfService, 0.1)
	require.NotNil(t, maria.LastTraining)

	// A termination date forces terminated status and carries a reason
	ana := rows[3]
	require.Equal(t, models.StatusTerminated, ana.Status)
	require.NotNil(t, ana.TerminationDate)
	require.Equal(t, "Pedido de demissao", ana.TerminationReason)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join("testdata", "nope.csv"), "csv", refDate)
	require.ErrorIs(t, err, apperrors.ErrDatasetNotFound)
}

func TestLoadRejectsMalformedData(t *testing.T) {
	cases := []struct {
		name string
		file string
	}{
		{"duplicate identifier", "employees_dup_id.csv"},
		{"non-numeric salary", "employees_bad_salary.csv"},
		{"negative salary", "employees_negative_salary.csv"},
		{"malformed date", "employees_bad_date.csv"},
		{"missing required column", "employees_missing_column.csv"},
		{"terminated without reason", "employees_no_reason.csv"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Load(filepath.Join("testdata", tc.file), "csv", refDate)
			require.ErrorIs(t, err, apperrors.ErrDatasetMalformed)
		})
	}
}

func TestLoadUnsupportedFormat(t *testing.T) {
	_, err := Load(filepath.Join("testdata", "employees_valid.csv"), "parquet", refDate)
	require.Error(t, err)
}

func TestLoadBundledDataset(t *testing.T) {
	path := filepath.Join("..", "..", "data", "rh_construtora_dataset.csv")

	table, err := Load(path, "csv", refDate)
	require.NoError(t, err)
	require.Equal(t, 160, table.Len())
	require.NotEmpty(t, table.Departments())
}

func TestLoadIsDeterministic(t *testing.T) {
	path := filepath.Join("testdata", "employees_valid.csv")

	first, err := Load(path, "csv", refDate)
	require.NoError(t, err)
	second, err := Load(path, "csv", refDate)
	require.NoError(t, err)

	require.True(t, reflect.DeepEqual(first.Rows(), second.Rows()))
}

func TestTableFilters(t *testing.T) {
	table, err := Load(filepath.Join("testdata", "employees_valid.csv"), "csv", refDate)
	require.NoError(t, err)

	require.Equal(t, []string{"Engenharia", "Operacional"}, table.Departments())
	require.True(t, table.HasDepartment("Engenharia"))
	require.False(t, table.HasDepartment("Comercial"))

	operacional := table.FilterByDepartment("Operacional")
	require.Equal(t, 3, operacional.Len())

	active := operacional.FilterByStatus(models.StatusActive)
	require.Equal(t, 2, active.Len())

	// Unknown department filters to an empty table, not an error
	require.Equal(t, 0, table.FilterByDepartment("Financeiro").Len())
}
