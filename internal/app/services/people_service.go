package services

import (
	"fmt"
	"sort"
	"time"

	"github.com/rodrigoclira/hr-dashboard/internal/app/models"
	"github.com/rodrigoclira/hr-dashboard/internal/app/models/dto"
	"github.com/rodrigoclira/hr-dashboard/internal/dataset"
	"github.com/rodrigoclira/hr-dashboard/internal/pkg/apperrors"
)

// allowedPeriods are the lookahead windows, in days, accepted by the
// birthday and anniversary reports
var allowedPeriods = map[int]struct{}{30: {}, 60: {}, 90: {}, 180: {}}

// PeopleService produces the people reports of the dashboard: upcoming
// birthdays, work anniversaries and safety certification status. All three
// reports cover active employees only.
type PeopleService struct {
	table *dataset.Table
	now   func() time.Time
}

// NewPeopleService creates a new people service over the loaded table. The
// clock is injectable so the date-window reports can be tested.
func NewPeopleService(table *dataset.Table, now func() time.Time) *PeopleService {
	if now == nil {
		now = time.Now
	}
	return &PeopleService{table: table, now: now}
}

// validatePeriod checks the lookahead window against the supported values
func validatePeriod(days int) error {
	if _, ok := allowedPeriods[days]; !ok {
		return fmt.Errorf("%w: days must be one of 30, 60, 90 or 180", apperrors.ErrValidationFailed)
	}
	return nil
}

// activeFiltered narrows the table to active employees of the given
// department ("" means all departments). An unknown department is an error.
func (s *PeopleService) activeFiltered(department string) (*dataset.Table, error) {
	if department != "" && !s.table.HasDepartment(department) {
		return nil, fmt.Errorf("%w: %q", apperrors.ErrDepartmentNotFound, department)
	}
	return s.table.FilterByDepartment(department).FilterByStatus(models.StatusActive), nil
}

// UpcomingBirthdays lists active employees whose birthday falls within the
// next days, soonest first.
func (s *PeopleService) UpcomingBirthdays(days int, department string) ([]dto.BirthdayEntry, error) {
	if err := validatePeriod(days); err != nil {
		return nil, err
	}
	table, err := s.activeFiltered(department)
	if err != nil {
		return nil, err
	}

	today := midnight(s.now())
	end := today.AddDate(0, 0, days)

	var entries []dto.BirthdayEntry
	for _, employee := range table.Rows() {
		next := nextOccurrence(employee.BirthDate, today)
		if next.After(end) {
			continue
		}
		entries = append(entries, dto.BirthdayEntry{
			Name:         employee.Name,
			Department:   employee.Department,
			JobTitle:     employee.JobTitle,
			BirthDate:    employee.BirthDate.Format("02/01"),
			Age:          employee.Age,
			DaysUntil:    daysBetween(today, next),
			NextBirthday: next.Format("2006-01-02"),
		})
	}
	sort.Slice(entries, func(i, j int) bool {
		if entries[i].DaysUntil != entries[j].DaysUntil {
			return entries[i].DaysUntil < entries[j].DaysUntil
		}
		return entries[i].Name < entries[j].Name
	})
	return entries, nil
}

// WorkAnniversaries lists active employees whose hire-date anniversary falls
// within the next days, soonest first.
func (s *PeopleService) WorkAnniversaries(days int, department string) ([]dto.AnniversaryEntry, error) {
	if err := validatePeriod(days); err != nil {
		return nil, err
	}
	table, err := s.activeFiltered(department)
	if err != nil {
		return nil, err
	}

	today := midnight(s.now())
	end := today.AddDate(0, 0, days)

	var entries []dto.AnniversaryEntry
	for _, employee := range table.Rows() {
		next := nextOccurrence(employee.HireDate, today)
		if next.After(end) {
			continue
		}
		entries = append(entries, dto.AnniversaryEntry{
			Name:            employee.Name,
			Department:      employee.Department,
			JobTitle:        employee.JobTitle,
			HireDate:        employee.HireDate.Format("02/01/2006"),
			YearsOfService:  employee.YearsOfService,
			DaysUntil:       daysBetween(today, next),
			NextAnniversary: next.Format("2006-01-02"),
		})
	}
	sort.Slice(entries, func(i, j int) bool {
		if entries[i].DaysUntil != entries[j].DaysUntil {
			return entries[i].DaysUntil < entries[j].DaysUntil
		}
		return entries[i].Name < entries[j].Name
	})
	return entries, nil
}

// CertificationStatus lists active employees holding safety certifications,
// the ones longest without a training refresh first.
func (s *PeopleService) CertificationStatus(department string) ([]dto.CertificationEntry, error) {
	table, err := s.activeFiltered(department)
	if err != nil {
		return nil, err
	}

	today := midnight(s.now())

	var entries []dto.CertificationEntry
	for _, employee := range table.Rows() {
		if !employee.HasCertifications() || employee.LastTraining == nil {
			continue
		}
		entries = append(entries, dto.CertificationEntry{
			Name:                employee.Name,
			Department:          employee.Department,
			JobTitle:            employee.JobTitle,
			Certifications:      employee.SafetyCertifications,
			LastTraining:        employee.LastTraining.Format("02/01/2006"),
			DaysWithoutTraining: daysBetween(*employee.LastTraining, today),
			TrainingHoursYear:   employee.TrainingHoursYear,
		})
	}
	sort.Slice(entries, func(i, j int) bool {
		if entries[i].DaysWithoutTraining != entries[j].DaysWithoutTraining {
			return entries[i].DaysWithoutTraining > entries[j].DaysWithoutTraining
		}
		return entries[i].Name < entries[j].Name
	})
	return entries, nil
}

// nextOccurrence returns the next calendar occurrence of date's month/day on
// or after today. February 29th rolls over to March 1st in non-leap years.
func nextOccurrence(date, today time.Time) time.Time {
	next := time.Date(today.Year(), date.Month(), date.Day(), 0, 0, 0, 0, today.Location())
	if next.Before(today) {
		next = time.Date(today.Year()+1, date.Month(), date.Day(), 0, 0, 0, 0, today.Location())
	}
	return next
}

// midnight truncates t to the start of its day
func midnight(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// daysBetween returns the whole days from a to b
func daysBetween(a, b time.Time) int {
	return int(b.Sub(a).Hours() / 24)
}
