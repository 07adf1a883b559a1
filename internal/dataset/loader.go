package dataset

import (
	"encoding/csv"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/rodrigoclira/hr-dashboard/internal/app/models"
	"github.com/rodrigoclira/hr-dashboard/internal/pkg/apperrors"
)

// Column names as they appear in the source dataset
const (
	colID                = "id_funcionario"
	colName              = "nome"
	colBirthDate         = "data_nascimento"
	colSex               = "sexo"
	colEducation         = "escolaridade"
	colJobTitle          = "cargo"
	colDepartment        = "departamento"
	colSite              = "obra_atual"
	colHireDate          = "data_admissao"
	colTerminationDate   = "data_demissao"
	colSalary            = "salario"
	colPerformance       = "avaliacao_performance"
	colTrainingHours     = "horas_treinamento_ano"
	colAbsenceDays       = "dias_ausencia_mes"
	colAccidents         = "acidentes_trabalho"
	colEPIScore          = "uso_epi_score"
	colCertifications    = "certificacoes_seguranca"
	colLastTraining      = "ultimo_treinamento"
	colStatus            = "status_funcionario"
	colTerminationReason = "motivo_saida"
)

const dateLayout = "2006-01-02"

// requiredColumns must all be present in the header. Individual cells of the
// nullable ones (termination date/reason, certifications, last training,
// status) may still be empty.
var requiredColumns = []string{
	colID, colName, colBirthDate, colSex, colEducation, colJobTitle,
	colDepartment, colSite, colHireDate, colTerminationDate, colSalary,
	colPerformance, colTrainingHours, colAbsenceDays, colAccidents,
	colEPIScore, colCertifications, colLastTraining, colStatus,
	colTerminationReason,
}

// Load reads the dataset file at path into an immutable Table. format is
// "csv" or "xlsx". refDate anchors the derived age and years-of-service
// columns. Any structural problem is fatal: there is no partial load.
func Load(path, format string, refDate time.Time) (*Table, error) {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return nil, apperrors.NewCustomError(apperrors.ErrDatasetNotFound, fmt.Sprintf("dataset file not found at %s", path))
	}

	var records [][]string
	var err error
	switch strings.ToLower(format) {
	case "csv":
		records, err = readCSV(path)
	case "xlsx":
		records, err = readXLSX(path)
	default:
		return nil, fmt.Errorf("unsupported dataset format %q", format)
	}
	if err != nil {
		return nil, err
	}

	if len(records) < 2 {
		return nil, apperrors.NewCustomError(apperrors.ErrDatasetEmpty, fmt.Sprintf("dataset at %s has no data rows", path))
	}

	columns, err := mapColumns(records[0])
	if err != nil {
		return nil, err
	}

	rows := make([]models.Employee, 0, len(records)-1)
	seenIDs := make(map[int64]struct{}, len(records)-1)
	for i, record := range records[1:] {
		rowNum := i + 2 // 1-based, counting the header
		employee, err := parseRow(record, columns, rowNum, refDate)
		if err != nil {
			return nil, err
		}
		if _, dup := seenIDs[employee.ID]; dup {
			return nil, apperrors.NewLoadError(fmt.Sprintf("row %d: duplicate employee id %d", rowNum, employee.ID))
		}
		seenIDs[employee.ID] = struct{}{}
		rows = append(rows, employee)
	}

	return NewTable(rows), nil
}

func readCSV(path string) ([][]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open dataset: %w", err)
	}
	defer f.Close()

	reader := csv.NewReader(f)
	reader.TrimLeadingSpace = true
	records, err := reader.ReadAll()
	if err != nil {
		return nil, apperrors.NewLoadError(fmt.Sprintf("failed to parse csv: %v", err))
	}
	return records, nil
}

// mapColumns builds a header name -> index map and checks required columns
func mapColumns(header []string) (map[string]int, error) {
	columns := make(map[string]int, len(header))
	for i, name := range header {
		columns[strings.TrimSpace(name)] = i
	}
	for _, name := range requiredColumns {
		if _, ok := columns[name]; !ok {
			return nil, apperrors.NewLoadError(fmt.Sprintf("missing required column %q", name))
		}
	}
	return columns, nil
}

func parseRow(record []string, columns map[string]int, rowNum int, refDate time.Time) (models.Employee, error) {
	cell := func(name string) string {
		idx := columns[name]
		if idx >= len(record) {
			return ""
		}
		return strings.TrimSpace(record[idx])
	}

	var employee models.Employee
	var err error

	idValue := cell(colID)
	employee.ID, err = strconv.ParseInt(idValue, 10, 64)
	if err != nil {
		return employee, apperrors.NewLoadError(fmt.Sprintf("row %d: invalid employee id %q", rowNum, idValue))
	}

	employee.Name = cell(colName)
	if employee.Name == "" {
		return employee, apperrors.NewLoadError(fmt.Sprintf("row %d: missing employee name", rowNum))
	}

	employee.Sex = cell(colSex)
	employee.Education = cell(colEducation)
	employee.JobTitle = cell(colJobTitle)
	employee.Department = cell(colDepartment)
	if employee.Department == "" {
		return employee, apperrors.NewLoadError(fmt.Sprintf("row %d: missing department", rowNum))
	}
	employee.Site = cell(colSite)

	employee.BirthDate, err = parseDate(cell(colBirthDate))
	if err != nil {
		return employee, apperrors.NewLoadError(fmt.Sprintf("row %d: invalid birth date %q", rowNum, cell(colBirthDate)))
	}
	employee.HireDate, err = parseDate(cell(colHireDate))
	if err != nil {
		return employee, apperrors.NewLoadError(fmt.Sprintf("row %d: invalid hire date %q", rowNum, cell(colHireDate)))
	}

	if raw := cell(colTerminationDate); raw != "" {
		terminationDate, err := parseDate(raw)
		if err != nil {
			return employee, apperrors.NewLoadError(fmt.Sprintf("row %d: invalid termination date %q", rowNum, raw))
		}
		employee.TerminationDate = &terminationDate
	}

	employee.Salary, err = parseFloat(cell(colSalary))
	if err != nil {
		return employee, apperrors.NewLoadError(fmt.Sprintf("row %d: non-numeric salary %q", rowNum, cell(colSalary)))
	}
	if employee.Salary < 0 {
		return employee, apperrors.NewLoadError(fmt.Sprintf("row %d: negative salary %.2f", rowNum, employee.Salary))
	}

	employee.PerformanceRating, err = parseFloat(cell(colPerformance))
	if err != nil {
		return employee, apperrors.NewLoadError(fmt.Sprintf("row %d: non-numeric performance rating %q", rowNum, cell(colPerformance)))
	}
	if employee.PerformanceRating < 0 || employee.PerformanceRating > 10 {
		return employee, apperrors.NewLoadError(fmt.Sprintf("row %d: performance rating %.1f outside [0,10]", rowNum, employee.PerformanceRating))
	}

	employee.TrainingHoursYear, err = parseFloat(cell(colTrainingHours))
	if err != nil {
		return employee, apperrors.NewLoadError(fmt.Sprintf("row %d: non-numeric training hours %q", rowNum, cell(colTrainingHours)))
	}
	employee.AbsenceDaysMonth, err = parseFloat(cell(colAbsenceDays))
	if err != nil {
		return employee, apperrors.NewLoadError(fmt.Sprintf("row %d: non-numeric absence days %q", rowNum, cell(colAbsenceDays)))
	}
	employee.WorkAccidents, err = strconv.Atoi(cell(colAccidents))
	if err != nil {
		return employee, apperrors.NewLoadError(fmt.Sprintf("row %d: non-numeric accident count %q", rowNum, cell(colAccidents)))
	}
	employee.EPIScore, err = parseFloat(cell(colEPIScore))
	if err != nil {
		return employee, apperrors.NewLoadError(fmt.Sprintf("row %d: non-numeric EPI score %q", rowNum, cell(colEPIScore)))
	}

	employee.SafetyCertifications = parseCertifications(cell(colCertifications))

	if raw := cell(colLastTraining); raw != "" {
		lastTraining, err := parseDate(raw)
		if err != nil {
			return employee, apperrors.NewLoadError(fmt.Sprintf("row %d: invalid last training date %q", rowNum, raw))
		}
		employee.LastTraining = &lastTraining
	}

	employee.TerminationReason = cell(colTerminationReason)

	// Status fix-ups: a termination date always wins over the recorded
	// status, and a blank status means the employee is active.
	switch {
	case employee.TerminationDate != nil:
		employee.Status = models.StatusTerminated
	case cell(colStatus) == "":
		employee.Status = models.StatusActive
	default:
		employee.Status = models.EmployeeStatus(cell(colStatus))
	}
	if employee.Status != models.StatusActive && employee.Status != models.StatusTerminated {
		return employee, apperrors.NewLoadError(fmt.Sprintf("row %d: unknown employee status %q", rowNum, cell(colStatus)))
	}

	// Termination reason present if and only if the employee is terminated
	if employee.Status == models.StatusTerminated && employee.TerminationReason == "" {
		return employee, apperrors.NewLoadError(fmt.Sprintf("row %d: terminated employee without termination reason", rowNum))
	}
	if employee.Status == models.StatusActive && employee.TerminationReason != "" {
		return employee, apperrors.NewLoadError(fmt.Sprintf("row %d: active employee with termination reason %q", rowNum, employee.TerminationReason))
	}

	employee.Age = int(refDate.Sub(employee.BirthDate).Hours() / 24 / 365)
	employee.YearsOfService = refDate.Sub(employee.HireDate).Hours() / 24 / 365.25

	return employee, nil
}

func parseDate(value string) (time.Time, error) {
	return time.Parse(dateLayout, value)
}

func parseFloat(value string) (float64, error) {
	return strconv.ParseFloat(value, 64)
}

// parseCertifications splits the semicolon-separated certification list
func parseCertifications(value string) []string {
	if value == "" {
		return nil
	}
	parts := strings.Split(value, ";")
	certifications := make([]string, 0, len(parts))
	for _, part := range parts {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			certifications = append(certifications, trimmed)
		}
	}
	if len(certifications) == 0 {
		return nil
	}
	return certifications
}
