package dataset

import (
	"sort"

	"github.com/rodrigoclira/hr-dashboard/internal/app/models"
)

// Table is the immutable in-memory employee table. It is built once by the
// loader at startup; every accessor is read-only and safe for concurrent use.
type Table struct {
	rows []models.Employee
}

// NewTable wraps a slice of employees into a read-only table
func NewTable(rows []models.Employee) *Table {
	return &Table{rows: rows}
}

// Len returns the number of employee records
func (t *Table) Len() int {
	return len(t.rows)
}

// Rows returns the underlying records. Callers must not mutate them.
func (t *Table) Rows() []models.Employee {
	return t.rows
}

// Departments returns the sorted list of distinct department names
func (t *Table) Departments() []string {
	seen := make(map[string]struct{})
	var departments []string
	for i := range t.rows {
		dept := t.rows[i].Department
		if _, ok := seen[dept]; ok {
			continue
		}
		seen[dept] = struct{}{}
		departments = append(departments, dept)
	}
	sort.Strings(departments)
	return departments
}

// HasDepartment reports whether any record belongs to the given department
func (t *Table) HasDepartment(department string) bool {
	for i := range t.rows {
		if t.rows[i].Department == department {
			return true
		}
	}
	return false
}

// FilterByDepartment returns a new table containing only records of the given
// department. An unknown department yields an empty table, not an error.
func (t *Table) FilterByDepartment(department string) *Table {
	if department == "" {
		return t
	}
	var rows []models.Employee
	for i := range t.rows {
		if t.rows[i].Department == department {
			rows = append(rows, t.rows[i])
		}
	}
	return &Table{rows: rows}
}

// FilterByStatus returns a new table containing only records with the given status
func (t *Table) FilterByStatus(status models.EmployeeStatus) *Table {
	var rows []models.Employee
	for i := range t.rows {
		if t.rows[i].Status == status {
			rows = append(rows, t.rows[i])
		}
	}
	return &Table{rows: rows}
}
