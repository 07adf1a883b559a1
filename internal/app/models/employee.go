package models

import "time"

// EmployeeStatus is the employment status label used by the dataset.
// The labels are kept in Portuguese because they come straight from the
// source records and appear as-is on the dashboard.
type EmployeeStatus string

const (
	// StatusActive marks an employee currently on payroll
	StatusActive EmployeeStatus = "Ativo"
	// StatusTerminated marks an employee that left the company
	StatusTerminated EmployeeStatus = "Desligado"
)

// Employee represents a single record of the HR dataset. The table of
// employees is loaded once at startup and is immutable afterwards.
type Employee struct {
	ID                   int64          `json:"id"`
	Name                 string         `json:"name"`
	BirthDate            time.Time      `json:"birthDate"`
	Sex                  string         `json:"sex"`
	Education            string         `json:"education"`
	JobTitle             string         `json:"jobTitle"`
	Department           string         `json:"department"`
	Site                 string         `json:"site"`
	HireDate             time.Time      `json:"hireDate"`
	TerminationDate      *time.Time     `json:"terminationDate,omitempty"`
	Salary               float64        `json:"salary"`
	PerformanceRating    float64        `json:"performanceRating"`
	TrainingHoursYear    float64        `json:"trainingHoursYear"`
	AbsenceDaysMonth     float64        `json:"absenceDaysMonth"`
	WorkAccidents        int            `json:"workAccidents"`
	EPIScore             float64        `json:"epiScore"`
	SafetyCertifications []string       `json:"safetyCertifications,omitempty"`
	LastTraining         *time.Time     `json:"lastTraining,omitempty"`
	Status               EmployeeStatus `json:"status"`
	TerminationReason    string         `json:"terminationReason,omitempty"`

	// Derived at load time from BirthDate and HireDate
	Age            int     `json:"age"`
	YearsOfService float64 `json:"yearsOfService"`
}

// IsActive reports whether the employee is currently on payroll
func (e *Employee) IsActive() bool {
	return e.Status == StatusActive
}

// HasCertifications reports whether the employee holds any safety certification
func (e *Employee) HasCertifications() bool {
	return len(e.SafetyCertifications) > 0
}
