package dto

// BirthdayEntry is one row of the upcoming-birthdays report
type BirthdayEntry struct {
	Name          string `json:"name" example:"Maria Souza"`
	Department    string `json:"department" example:"Operacional"`
	JobTitle      string `json:"jobTitle" example:"Pedreiro"`
	BirthDate     string `json:"birthDate" example:"02/07"`
	Age           int    `json:"age" example:"34"`
	DaysUntil     int    `json:"daysUntil" example:"12"`
	NextBirthday  string `json:"nextBirthday" example:"2025-09-11"`
}

// AnniversaryEntry is one row of the work-anniversaries report
type AnniversaryEntry struct {
	Name             string  `json:"name" example:"Carlos Lima"`
	Department       string  `json:"department" example:"Engenharia"`
	JobTitle         string  `json:"jobTitle" example:"Engenheiro Civil"`
	HireDate         string  `json:"hireDate" example:"15/09/2019"`
	YearsOfService   float64 `json:"yearsOfService" example:"5.9"`
	DaysUntil        int     `json:"daysUntil" example:"16"`
	NextAnniversary  string  `json:"nextAnniversary" example:"2025-09-15"`
}

// CertificationEntry is one row of the safety-certification report
type CertificationEntry struct {
	Name                string   `json:"name" example:"Joao Pereira"`
	Department          string   `json:"department" example:"Operacional"`
	JobTitle            string   `json:"jobTitle" example:"Soldador"`
	Certifications      []string `json:"certifications" example:"NR-35,NR-18"`
	LastTraining        string   `json:"lastTraining" example:"12/03/2024"`
	DaysWithoutTraining int      `json:"daysWithoutTraining" example:"420"`
	TrainingHoursYear   float64  `json:"trainingHoursYear" example:"24"`
}

// PeopleReportResponse wraps a people report with its row count
type PeopleReportResponse struct {
	Total   int         `json:"total" example:"7"`
	Entries interface{} `json:"entries"`
}
