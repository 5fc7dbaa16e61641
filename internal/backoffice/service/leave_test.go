package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"github.com/sweetfm/backoffice/internal/backoffice/domain"
	"github.com/sweetfm/backoffice/pkg/idx"
)

func TestSubmitLeaveRequest(t *testing.T) {
	ctx := context.Background()
	st := newTestStore(t)
	emp := seedEmployee(t, st, "Dana DJ", time.Now().UTC())

	svc := &LeaveService{Store: st}

	start := time.Date(2026, time.September, 7, 0, 0, 0, 0, time.UTC)

	t.Run("day count is inclusive of both endpoints", func(t *testing.T) {
		lr, err := svc.SubmitLeaveRequest(ctx, emp.ID, domain.LeaveVacation, start, start.AddDate(0, 0, 4), "beach week")
		require.NoError(t, err)
		require.Equal(t, 5, lr.Days)
		require.Equal(t, domain.LeavePending, lr.Status)
	})

	t.Run("single day counts as one", func(t *testing.T) {
		lr, err := svc.SubmitLeaveRequest(ctx, emp.ID, domain.LeaveSick, start, start, "")
		require.NoError(t, err)
		require.Equal(t, 1, lr.Days)
	})

	t.Run("rejects inverted ranges and unknown types", func(t *testing.T) {
		_, err := svc.SubmitLeaveRequest(ctx, emp.ID, domain.LeaveVacation, start, start.AddDate(0, 0, -1), "")
		require.ErrorIs(t, err, ErrInvalidLeaveRequest)

		_, err = svc.SubmitLeaveRequest(ctx, emp.ID, domain.LeaveType("sabbatical"), start, start, "")
		require.ErrorIs(t, err, ErrInvalidLeaveRequest)
	})

	t.Run("rejects unknown employees", func(t *testing.T) {
		_, err := svc.SubmitLeaveRequest(ctx, idx.New().String(), domain.LeaveVacation, start, start, "")
		require.ErrorIs(t, err, ErrEmployeeNotFound)
	})
}

func TestReviewLeaveRequest(t *testing.T) {
	ctx := context.Background()
	st := newTestStore(t)
	emp := seedEmployee(t, st, "Dana DJ", time.Now().UTC())
	manager := seedUser(t, st, domain.RoleManager, "manager@sweetfm.example")

	svc := &LeaveService{Store: st}

	start := time.Now().UTC().AddDate(0, 0, 7)
	lr, err := svc.SubmitLeaveRequest(ctx, emp.ID, domain.LeaveVacation, start, start.AddDate(0, 0, 2), "")
	require.NoError(t, err)

	t.Run("only approved or rejected are decisions", func(t *testing.T) {
		_, err := svc.ReviewLeaveRequest(ctx, lr.ID, domain.LeavePending, manager.ID, "")
		require.ErrorIs(t, err, ErrInvalidReviewDecision)
	})

	t.Run("approves a pending request", func(t *testing.T) {
		reviewed, err := svc.ReviewLeaveRequest(ctx, lr.ID, domain.LeaveApproved, manager.ID, "enjoy")
		require.NoError(t, err)
		require.Equal(t, domain.LeaveApproved, reviewed.Status)
		require.Equal(t, manager.ID, reviewed.ReviewedBy)
		require.NotNil(t, reviewed.ReviewedAt)
		require.Equal(t, "enjoy", reviewed.ReviewNote)
	})

	t.Run("a decision is final", func(t *testing.T) {
		_, err := svc.ReviewLeaveRequest(ctx, lr.ID, domain.LeaveRejected, manager.ID, "changed my mind")
		require.ErrorIs(t, err, ErrLeaveAlreadyReviewed)
	})

	t.Run("unknown id", func(t *testing.T) {
		_, err := svc.ReviewLeaveRequest(ctx, idx.New().String(), domain.LeaveApproved, manager.ID, "")
		require.ErrorIs(t, err, ErrLeaveRequestNotFound)
	})
}
