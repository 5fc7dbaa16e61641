package domain

import "time"

type EmployeeStatus string

const (
	EmployeeActive   EmployeeStatus = "active"
	EmployeeInactive EmployeeStatus = "inactive"
)

type EmploymentType string

const (
	EmploymentFullTime EmploymentType = "full-time"
	EmploymentPartTime EmploymentType = "part-time"
	EmploymentContract EmploymentType = "contract"
	EmploymentIntern   EmploymentType = "intern"
)

// Employee is a station staff record. DisplayID (e.g. S23006) is derived
// from the hire date year and assigned once at creation.
type Employee struct {
	ID              string
	DisplayID       string
	Name            string
	Email           string
	Phone           string
	Position        string // DJ, Producer, Engineer, ...
	Department      string
	HireDate        time.Time
	SalaryCents     int64 // monthly gross
	DeductionsCents int64
	EmploymentType  EmploymentType
	Status          EmployeeStatus
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// NetPayCents is the monthly net salary after deductions.
func (e Employee) NetPayCents() int64 { return e.SalaryCents - e.DeductionsCents }
