package http

import (
	"time"

	"github.com/sweetfm/backoffice/internal/backoffice/domain"
	"github.com/sweetfm/backoffice/internal/backoffice/service"
)

// Request/response bodies for the JSON API. Money is always integer
// cents; weekdays are 0 (Sunday) through 6 (Saturday).

type UserResponse struct {
	ID          string    `json:"id"`
	Email       string    `json:"email"`
	Name        string    `json:"name"`
	Role        string    `json:"role"`
	Department  string    `json:"department,omitempty"`
	TOTPEnabled bool      `json:"totp_enabled"`
	CreatedAt   time.Time `json:"created_at"`
}

func toUserResponse(u domain.User) UserResponse {
	return UserResponse{
		ID:          u.ID,
		Email:       u.Email,
		Name:        u.Name,
		Role:        string(u.Role),
		Department:  u.Department,
		TOTPEnabled: u.TOTPEnabled != nil,
		CreatedAt:   u.CreatedAt,
	}
}

type InvitationResponse struct {
	ID         string     `json:"id"`
	Email      string     `json:"email"`
	Role       string     `json:"role"`
	Department string     `json:"department,omitempty"`
	InvitedBy  string     `json:"invited_by"`
	ExpiresAt  time.Time  `json:"expires_at"`
	AcceptedAt *time.Time `json:"accepted_at,omitempty"`
	CreatedAt  time.Time  `json:"created_at"`
}

func toInvitationResponse(inv domain.Invitation) InvitationResponse {
	return InvitationResponse{
		ID:         inv.ID,
		Email:      inv.Email,
		Role:       string(inv.Role),
		Department: inv.Department,
		InvitedBy:  inv.InvitedBy,
		ExpiresAt:  inv.ExpiresAt,
		AcceptedAt: inv.AcceptedAt,
		CreatedAt:  inv.CreatedAt,
	}
}

type InviteCreateRequest struct {
	Email      string `json:"email"`
	Role       string `json:"role"`
	Department string `json:"department,omitempty"`
}

// InviteCreateResponse carries the raw token exactly once; it is never
// retrievable again.
type InviteCreateResponse struct {
	Invitation InvitationResponse `json:"invitation"`
	Token      string             `json:"token"`
	InviteURL  string             `json:"invite_url"`
}

type InviteAcceptRequest struct {
	Token    string `json:"token"`
	Name     string `json:"name"`
	Password string `json:"password"`
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	TOTPCode string `json:"totp_code,omitempty"`
}

type SessionResponse struct {
	Token string       `json:"token"`
	User  UserResponse `json:"user"`
}

type ChangePasswordRequest struct {
	CurrentPassword string `json:"current_password"`
	NewPassword     string `json:"new_password"`
}

type TOTPCodeRequest struct {
	Code string `json:"code"`
}

type TOTPEnrollResponse struct {
	OTPAuthURL string `json:"otpauth_url"`
}

type BootstrapRequest struct {
	Token    string `json:"token"`
	Email    string `json:"email"`
	Name     string `json:"name"`
	Password string `json:"password"`
}

type ClientRequest struct {
	Name          string `json:"name"`
	Company       string `json:"company,omitempty"`
	Email         string `json:"email,omitempty"`
	Phone         string `json:"phone,omitempty"`
	Address       string `json:"address,omitempty"`
	ContactPerson string `json:"contact_person,omitempty"`
	PaymentTerms  string `json:"payment_terms,omitempty"`
}

type ClientResponse struct {
	ID            string    `json:"id"`
	DisplayID     string    `json:"display_id"`
	Name          string    `json:"name"`
	Company       string    `json:"company,omitempty"`
	Email         string    `json:"email,omitempty"`
	Phone         string    `json:"phone,omitempty"`
	Address       string    `json:"address,omitempty"`
	ContactPerson string    `json:"contact_person,omitempty"`
	PaymentTerms  string    `json:"payment_terms,omitempty"`
	Status        string    `json:"status"`
	BilledCents   int64     `json:"billed_cents"`
	PaidCents     int64     `json:"paid_cents"`
	BalanceCents  int64     `json:"balance_cents"`
	CreatedAt     time.Time `json:"created_at"`
}

func toClientResponse(c domain.Client) ClientResponse {
	return ClientResponse{
		ID:            c.ID,
		DisplayID:     c.DisplayID,
		Name:          c.Name,
		Company:       c.Company,
		Email:         c.Email,
		Phone:         c.Phone,
		Address:       c.Address,
		ContactPerson: c.ContactPerson,
		PaymentTerms:  c.PaymentTerms,
		Status:        string(c.Status),
		BilledCents:   c.BilledCents,
		PaidCents:     c.PaidCents,
		BalanceCents:  c.BalanceCents(),
		CreatedAt:     c.CreatedAt,
	}
}

type EmployeeRequest struct {
	Name            string    `json:"name"`
	Email           string    `json:"email,omitempty"`
	Phone           string    `json:"phone,omitempty"`
	Position        string    `json:"position,omitempty"`
	Department      string    `json:"department,omitempty"`
	HireDate        time.Time `json:"hire_date"`
	SalaryCents     int64     `json:"salary_cents"`
	DeductionsCents int64     `json:"deductions_cents"`
	EmploymentType  string    `json:"employment_type,omitempty"`
}

type EmployeeResponse struct {
	ID              string    `json:"id"`
	DisplayID       string    `json:"display_id"`
	Name            string    `json:"name"`
	Email           string    `json:"email,omitempty"`
	Phone           string    `json:"phone,omitempty"`
	Position        string    `json:"position,omitempty"`
	Department      string    `json:"department,omitempty"`
	HireDate        time.Time `json:"hire_date"`
	SalaryCents     int64     `json:"salary_cents"`
	DeductionsCents int64     `json:"deductions_cents"`
	NetPayCents     int64     `json:"net_pay_cents"`
	EmploymentType  string    `json:"employment_type"`
	Status          string    `json:"status"`
	CreatedAt       time.Time `json:"created_at"`
}

func toEmployeeResponse(e domain.Employee) EmployeeResponse {
	return EmployeeResponse{
		ID:              e.ID,
		DisplayID:       e.DisplayID,
		Name:            e.Name,
		Email:           e.Email,
		Phone:           e.Phone,
		Position:        e.Position,
		Department:      e.Department,
		HireDate:        e.HireDate,
		SalaryCents:     e.SalaryCents,
		DeductionsCents: e.DeductionsCents,
		NetPayCents:     e.NetPayCents(),
		EmploymentType:  string(e.EmploymentType),
		Status:          string(e.Status),
		CreatedAt:       e.CreatedAt,
	}
}

type StatusRequest struct {
	Status string `json:"status"`
}

type ShowRequest struct {
	Name        string     `json:"name"`
	Presenter   string     `json:"presenter,omitempty"`
	Description string     `json:"description,omitempty"`
	Category    string     `json:"category,omitempty"`
	DaysOfWeek  []int      `json:"days_of_week"`
	StartTime   string     `json:"start_time"`
	EndTime     string     `json:"end_time"`
	StartDate   time.Time  `json:"start_date"`
	EndDate     *time.Time `json:"end_date,omitempty"`
	Color       string     `json:"color,omitempty"`
}

type ShowResponse struct {
	ID          string     `json:"id"`
	Name        string     `json:"name"`
	Presenter   string     `json:"presenter,omitempty"`
	Description string     `json:"description,omitempty"`
	Category    string     `json:"category"`
	DaysOfWeek  []int      `json:"days_of_week"`
	StartTime   string     `json:"start_time"`
	EndTime     string     `json:"end_time"`
	StartDate   time.Time  `json:"start_date"`
	EndDate     *time.Time `json:"end_date,omitempty"`
	Color       string     `json:"color,omitempty"`
	Status      string     `json:"status"`
}

func toShowResponse(s domain.Show) ShowResponse {
	return ShowResponse{
		ID:          s.ID,
		Name:        s.Name,
		Presenter:   s.Presenter,
		Description: s.Description,
		Category:    string(s.Category),
		DaysOfWeek:  weekdaysToInts(s.DaysOfWeek),
		StartTime:   s.StartTime,
		EndTime:     s.EndTime,
		StartDate:   s.StartDate,
		EndDate:     s.EndDate,
		Color:       s.Color,
		Status:      string(s.Status),
	}
}

type AdSlotRequest struct {
	ClientID        string    `json:"client_id"`
	Title           string    `json:"title"`
	SpotType        string    `json:"spot_type,omitempty"`
	DaysOfWeek      []int     `json:"days_of_week"`
	AirTime         string    `json:"air_time"`
	DurationSeconds int       `json:"duration_seconds"`
	StartDate       time.Time `json:"start_date"`
	EndDate         time.Time `json:"end_date"`
	ShowID          string    `json:"show_id,omitempty"`
	CostCents       int64     `json:"cost_cents"`
}

type AdSlotResponse struct {
	ID              string    `json:"id"`
	ClientID        string    `json:"client_id"`
	Title           string    `json:"title"`
	SpotType        string    `json:"spot_type"`
	DaysOfWeek      []int     `json:"days_of_week"`
	AirTime         string    `json:"air_time"`
	DurationSeconds int       `json:"duration_seconds"`
	StartDate       time.Time `json:"start_date"`
	EndDate         time.Time `json:"end_date"`
	ShowID          string    `json:"show_id,omitempty"`
	CostCents       int64     `json:"cost_cents"`
	Status          string    `json:"status"`
}

func toAdSlotResponse(a domain.AdSlot) AdSlotResponse {
	return AdSlotResponse{
		ID:              a.ID,
		ClientID:        a.ClientID,
		Title:           a.Title,
		SpotType:        string(a.SpotType),
		DaysOfWeek:      weekdaysToInts(a.DaysOfWeek),
		AirTime:         a.AirTime,
		DurationSeconds: a.DurationSeconds,
		StartDate:       a.StartDate,
		EndDate:         a.EndDate,
		ShowID:          a.ShowID,
		CostCents:       a.CostCents,
		Status:          string(a.Status),
	}
}

type ScheduleDayResponse struct {
	Day     int              `json:"day"`
	Shows   []ShowResponse   `json:"shows"`
	AdSlots []AdSlotResponse `json:"ad_slots"`
}

func toScheduleDayResponse(d service.ScheduleDay) ScheduleDayResponse {
	out := ScheduleDayResponse{
		Day:     int(d.Day),
		Shows:   make([]ShowResponse, 0, len(d.Shows)),
		AdSlots: make([]AdSlotResponse, 0, len(d.AdSlots)),
	}
	for _, s := range d.Shows {
		out.Shows = append(out.Shows, toShowResponse(s))
	}
	for _, a := range d.AdSlots {
		out.AdSlots = append(out.AdSlots, toAdSlotResponse(a))
	}
	return out
}

type LeaveRequestCreate struct {
	EmployeeID string    `json:"employee_id"`
	Type       string    `json:"type"`
	StartDate  time.Time `json:"start_date"`
	EndDate    time.Time `json:"end_date"`
	Reason     string    `json:"reason,omitempty"`
}

type LeaveReviewRequest struct {
	Decision string `json:"decision"`
	Note     string `json:"note,omitempty"`
}

type LeaveRequestResponse struct {
	ID          string     `json:"id"`
	EmployeeID  string     `json:"employee_id"`
	Type        string     `json:"type"`
	StartDate   time.Time  `json:"start_date"`
	EndDate     time.Time  `json:"end_date"`
	Days        int        `json:"days"`
	Reason      string     `json:"reason,omitempty"`
	Status      string     `json:"status"`
	RequestedAt time.Time  `json:"requested_at"`
	ReviewedBy  string     `json:"reviewed_by,omitempty"`
	ReviewedAt  *time.Time `json:"reviewed_at,omitempty"`
	ReviewNote  string     `json:"review_note,omitempty"`
}

func toLeaveRequestResponse(lr domain.LeaveRequest) LeaveRequestResponse {
	return LeaveRequestResponse{
		ID:          lr.ID,
		EmployeeID:  lr.EmployeeID,
		Type:        string(lr.Type),
		StartDate:   lr.StartDate,
		EndDate:     lr.EndDate,
		Days:        lr.Days,
		Reason:      lr.Reason,
		Status:      string(lr.Status),
		RequestedAt: lr.RequestedAt,
		ReviewedBy:  lr.ReviewedBy,
		ReviewedAt:  lr.ReviewedAt,
		ReviewNote:  lr.ReviewNote,
	}
}

type AnnouncementRequest struct {
	Title       string     `json:"title"`
	Content     string     `json:"content"`
	Category    string     `json:"category,omitempty"`
	Priority    string     `json:"priority,omitempty"`
	ExpiresAt   *time.Time `json:"expires_at,omitempty"`
	TargetRoles []string   `json:"target_roles,omitempty"`
}

type AnnouncementResponse struct {
	ID          string     `json:"id"`
	Title       string     `json:"title"`
	Content     string     `json:"content"`
	Category    string     `json:"category"`
	Priority    string     `json:"priority"`
	PublishedBy string     `json:"published_by"`
	PublishedAt time.Time  `json:"published_at"`
	ExpiresAt   *time.Time `json:"expires_at,omitempty"`
	TargetRoles []string   `json:"target_roles,omitempty"`
}

func toAnnouncementResponse(a domain.Announcement) AnnouncementResponse {
	roles := make([]string, 0, len(a.TargetRoles))
	for _, r := range a.TargetRoles {
		roles = append(roles, string(r))
	}
	return AnnouncementResponse{
		ID:          a.ID,
		Title:       a.Title,
		Content:     a.Content,
		Category:    string(a.Category),
		Priority:    string(a.Priority),
		PublishedBy: a.PublishedBy,
		PublishedAt: a.PublishedAt,
		ExpiresAt:   a.ExpiresAt,
		TargetRoles: roles,
	}
}

type InvoiceCreateRequest struct {
	ClientID    string    `json:"client_id"`
	AmountCents int64     `json:"amount_cents"`
	IssueDate   time.Time `json:"issue_date"`
	DueDate     time.Time `json:"due_date"`
	Description string    `json:"description,omitempty"`
}

type PaymentRequest struct {
	AmountCents int64 `json:"amount_cents"`
}

type InvoiceResponse struct {
	ID           string    `json:"id"`
	Number       string    `json:"number"`
	ClientID     string    `json:"client_id"`
	AmountCents  int64     `json:"amount_cents"`
	PaidCents    int64     `json:"paid_cents"`
	BalanceCents int64     `json:"balance_cents"`
	Status       string    `json:"status"`
	IssueDate    time.Time `json:"issue_date"`
	DueDate      time.Time `json:"due_date"`
	Description  string    `json:"description,omitempty"`
}

func toInvoiceResponse(inv domain.Invoice) InvoiceResponse {
	return InvoiceResponse{
		ID:           inv.ID,
		Number:       inv.Number,
		ClientID:     inv.ClientID,
		AmountCents:  inv.AmountCents,
		PaidCents:    inv.PaidCents,
		BalanceCents: inv.BalanceCents(),
		Status:       string(inv.EffectiveStatus(time.Now())),
		IssueDate:    inv.IssueDate,
		DueDate:      inv.DueDate,
		Description:  inv.Description,
	}
}

func weekdaysToInts(days []time.Weekday) []int {
	out := make([]int, 0, len(days))
	for _, d := range days {
		out = append(out, int(d))
	}
	return out
}

func intsToWeekdays(days []int) []time.Weekday {
	out := make([]time.Weekday, 0, len(days))
	for _, d := range days {
		out = append(out, time.Weekday(d))
	}
	return out
}

func rolesFromStrings(in []string) []domain.Role {
	out := make([]domain.Role, 0, len(in))
	for _, r := range in {
		out = append(out, domain.Role(r))
	}
	return out
}
