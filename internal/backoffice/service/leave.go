package service

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/sweetfm/backoffice/internal/backoffice/domain"
	"github.com/sweetfm/backoffice/internal/backoffice/store"
	"github.com/sweetfm/backoffice/pkg/idx"
	"github.com/sweetfm/backoffice/pkg/slogx"
)

var (
	ErrInvalidLeaveRequest   = errors.New("invalid leave request")
	ErrLeaveRequestNotFound  = errors.New("leave request not found")
	ErrLeaveAlreadyReviewed  = errors.New("leave request already reviewed")
	ErrInvalidReviewDecision = errors.New("review decision must be approved or rejected")
)

type LeaveService struct {
	Store store.Store
}

// SubmitLeaveRequest files a leave request for an employee. The day count
// is inclusive of both endpoints, so a single-day absence counts as 1.
func (s *LeaveService) SubmitLeaveRequest(
	ctx context.Context,
	employeeID string,
	leaveType domain.LeaveType,
	startDate, endDate time.Time,
	reason string,
) (domain.LeaveRequest, error) {
	log := slogx.FromContext(ctx)

	// 1. Validate.
	switch leaveType {
	case domain.LeaveVacation, domain.LeaveSick, domain.LeavePersonal, domain.LeaveUnpaid, domain.LeaveEmergency:
	default:
		return domain.LeaveRequest{}, ErrInvalidLeaveRequest
	}
	if startDate.IsZero() || endDate.Before(startDate) {
		return domain.LeaveRequest{}, ErrInvalidLeaveRequest
	}

	// 2. The employee must exist.
	if _, err := s.Store.Employees().GetEmployeeByID(ctx, employeeID); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return domain.LeaveRequest{}, ErrEmployeeNotFound
		}
		return domain.LeaveRequest{}, err
	}

	lr := domain.LeaveRequest{
		ID:          idx.New().String(),
		EmployeeID:  employeeID,
		Type:        leaveType,
		StartDate:   startDate,
		EndDate:     endDate,
		Days:        inclusiveDays(startDate, endDate),
		Reason:      reason,
		Status:      domain.LeavePending,
		RequestedAt: time.Now().UTC(),
	}

	// 3. Store.
	if err := s.Store.LeaveRequests().CreateLeaveRequest(ctx, lr); err != nil {
		log.Error("failed to create leave request", slog.Any("error", err))
		return domain.LeaveRequest{}, err
	}

	log.Info("leave request submitted",
		slog.String("leave_request_id", lr.ID),
		slog.String("employee_id", employeeID),
		slog.Int("days", lr.Days),
	)
	return lr, nil
}

func (s *LeaveService) GetLeaveRequest(ctx context.Context, id string) (domain.LeaveRequest, error) {
	lr, err := s.Store.LeaveRequests().GetLeaveRequestByID(ctx, id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return domain.LeaveRequest{}, ErrLeaveRequestNotFound
		}
		return domain.LeaveRequest{}, err
	}
	return lr, nil
}

func (s *LeaveService) ListLeaveRequests(ctx context.Context) ([]domain.LeaveRequest, error) {
	return s.Store.LeaveRequests().ListLeaveRequests(ctx)
}

func (s *LeaveService) ListLeaveRequestsByEmployee(ctx context.Context, employeeID string) ([]domain.LeaveRequest, error) {
	return s.Store.LeaveRequests().ListLeaveRequestsByEmployee(ctx, employeeID)
}

// ReviewLeaveRequest decides a pending request. The decision is final;
// the storage guard turns a second review into ErrLeaveAlreadyReviewed.
func (s *LeaveService) ReviewLeaveRequest(
	ctx context.Context,
	id string,
	decision domain.LeaveStatus,
	reviewedBy string,
	note string,
) (domain.LeaveRequest, error) {
	log := slogx.FromContext(ctx)

	// 1. Only approved/rejected are valid decisions.
	if decision != domain.LeaveApproved && decision != domain.LeaveRejected {
		return domain.LeaveRequest{}, ErrInvalidReviewDecision
	}

	// 2. Flip the pending row.
	err := s.Store.LeaveRequests().ReviewLeaveRequest(ctx, id, decision, reviewedBy, note, time.Now().UTC())
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			// Either the id is unknown or the request was already decided.
			if _, getErr := s.Store.LeaveRequests().GetLeaveRequestByID(ctx, id); getErr == nil {
				return domain.LeaveRequest{}, ErrLeaveAlreadyReviewed
			}
			return domain.LeaveRequest{}, ErrLeaveRequestNotFound
		}
		log.Error("failed to review leave request", slog.Any("error", err))
		return domain.LeaveRequest{}, err
	}

	log.Info("leave request reviewed",
		slog.String("leave_request_id", id),
		slog.String("decision", string(decision)),
		slog.String("reviewed_by", reviewedBy),
	)
	return s.GetLeaveRequest(ctx, id)
}

// inclusiveDays counts calendar days between two dates, both endpoints
// included.
func inclusiveDays(start, end time.Time) int {
	start = start.Truncate(24 * time.Hour)
	end = end.Truncate(24 * time.Hour)
	return int(end.Sub(start).Hours()/24) + 1
}
