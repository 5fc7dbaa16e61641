package domain

import "time"

type LeaveType string

const (
	LeaveVacation  LeaveType = "vacation"
	LeaveSick      LeaveType = "sick"
	LeavePersonal  LeaveType = "personal"
	LeaveUnpaid    LeaveType = "unpaid"
	LeaveEmergency LeaveType = "emergency"
)

type LeaveStatus string

const (
	LeavePending   LeaveStatus = "pending"
	LeaveApproved  LeaveStatus = "approved"
	LeaveRejected  LeaveStatus = "rejected"
	LeaveCancelled LeaveStatus = "cancelled"
)

type LeaveRequest struct {
	ID          string
	EmployeeID  string
	Type        LeaveType
	StartDate   time.Time
	EndDate     time.Time
	Days        int // inclusive of both endpoints
	Reason      string
	Status      LeaveStatus
	RequestedAt time.Time
	ReviewedBy  string     // user ID of the reviewer, empty while pending
	ReviewedAt  *time.Time // nil while pending
	ReviewNote  string
}
