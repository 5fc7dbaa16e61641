package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"github.com/sweetfm/backoffice/internal/backoffice/domain"
	"github.com/sweetfm/backoffice/pkg/displayid"
	"github.com/sweetfm/backoffice/pkg/idx"
)

func TestCreateClientAssignsSequentialDisplayIDs(t *testing.T) {
	ctx := context.Background()
	st := newTestStore(t)
	svc := &DirectoryService{Store: st}

	year := time.Now().UTC().Year()

	first, err := svc.CreateClient(ctx, domain.Client{Name: "Acme Soda", Company: "Acme Pty Ltd"})
	require.NoError(t, err)
	second, err := svc.CreateClient(ctx, domain.Client{Name: "Bravo Motors"})
	require.NoError(t, err)

	require.Equal(t, displayid.Format(displayid.KindClient, year, 1), first.DisplayID)
	require.Equal(t, displayid.Format(displayid.KindClient, year, 2), second.DisplayID)

	seq, ok := displayid.Sequence(second.DisplayID)
	require.True(t, ok)
	require.Equal(t, 2, seq)

	gotYear, ok := displayid.Year(first.DisplayID)
	require.True(t, ok)
	require.Equal(t, year, gotYear)

	require.Equal(t, domain.ClientActive, first.Status)
}

func TestCreateEmployeeUsesHireYearCohort(t *testing.T) {
	ctx := context.Background()
	st := newTestStore(t)
	svc := &DirectoryService{Store: st}

	// A back-dated 2023 hire entered today still lands in the 2023 cohort.
	backdated, err := svc.CreateEmployee(ctx, domain.Employee{
		Name:     "Dana DJ",
		HireDate: time.Date(2023, time.March, 6, 0, 0, 0, 0, time.UTC),
	})
	require.NoError(t, err)
	require.Equal(t, "S23001", backdated.DisplayID)

	sameYear, err := svc.CreateEmployee(ctx, domain.Employee{
		Name:     "Eli Engineer",
		HireDate: time.Date(2023, time.November, 1, 0, 0, 0, 0, time.UTC),
	})
	require.NoError(t, err)
	require.Equal(t, "S23002", sameYear.DisplayID)

	// A different hire year gets its own sequence starting at 001.
	otherYear, err := svc.CreateEmployee(ctx, domain.Employee{
		Name:     "Fred Presenter",
		HireDate: time.Date(2024, time.January, 15, 0, 0, 0, 0, time.UTC),
	})
	require.NoError(t, err)
	require.Equal(t, "S24001", otherYear.DisplayID)

	require.Equal(t, domain.EmploymentFullTime, backdated.EmploymentType)
	require.Equal(t, domain.EmployeeActive, backdated.Status)
}

func TestDirectoryRecordsResolveFromAccounts(t *testing.T) {
	ctx := context.Background()
	st := newTestStore(t)
	svc := &DirectoryService{Store: st}

	staff := seedUser(t, st, domain.RoleEmployee, "dana@sweetfm.example")
	advertiser := seedUser(t, st, domain.RoleClient, "billing@acme.example")
	unlinked := seedUser(t, st, domain.RoleEmployee, "casual@sweetfm.example")

	// Directory emails may differ in case from the account email.
	e, err := svc.CreateEmployee(ctx, domain.Employee{
		Name:     "Dana DJ",
		Email:    "Dana@SweetFM.example",
		HireDate: time.Now().UTC(),
	})
	require.NoError(t, err)
	c, err := svc.CreateClient(ctx, domain.Client{
		Name:  "Acme Soda",
		Email: "billing@acme.example",
	})
	require.NoError(t, err)

	gotEmployee, err := svc.EmployeeForUser(ctx, staff.ID)
	require.NoError(t, err)
	require.Equal(t, e.ID, gotEmployee.ID)

	gotClient, err := svc.ClientForUser(ctx, advertiser.ID)
	require.NoError(t, err)
	require.Equal(t, c.ID, gotClient.ID)

	// No directory entry, an entry of the other kind, and an unknown
	// account all resolve to not-found.
	_, err = svc.EmployeeForUser(ctx, unlinked.ID)
	require.ErrorIs(t, err, ErrEmployeeNotFound)

	_, err = svc.ClientForUser(ctx, staff.ID)
	require.ErrorIs(t, err, ErrClientNotFound)

	_, err = svc.EmployeeForUser(ctx, idx.New().String())
	require.ErrorIs(t, err, ErrEmployeeNotFound)
}

func TestUpdateClientKeepsDisplayIDAndTotals(t *testing.T) {
	ctx := context.Background()
	st := newTestStore(t)
	svc := &DirectoryService{Store: st}

	c, err := svc.CreateClient(ctx, domain.Client{Name: "Acme Soda"})
	require.NoError(t, err)
	require.NoError(t, st.Clients().AddToTotals(ctx, c.ID, 50_000, 10_000))

	c.Name = "Acme Beverages"
	c.ContactPerson = "Pat"
	updated, err := svc.UpdateClient(ctx, c)
	require.NoError(t, err)

	require.Equal(t, "Acme Beverages", updated.Name)
	require.Equal(t, c.DisplayID, updated.DisplayID)
	require.Equal(t, int64(50_000), updated.BilledCents)
	require.Equal(t, int64(10_000), updated.PaidCents)
	require.Equal(t, int64(40_000), updated.BalanceCents())
}

func TestDirectoryStatusAndDelete(t *testing.T) {
	ctx := context.Background()
	st := newTestStore(t)
	svc := &DirectoryService{Store: st}

	c := seedClient(t, st, "Acme Soda")
	e := seedEmployee(t, st, "Dana DJ", time.Now().UTC())

	require.NoError(t, svc.UpdateClientStatus(ctx, c.ID, domain.ClientOverdue))
	require.ErrorIs(t, svc.UpdateClientStatus(ctx, c.ID, domain.ClientStatus("frozen")), ErrInvalidDirectoryRequest)

	require.NoError(t, svc.UpdateEmployeeStatus(ctx, e.ID, domain.EmployeeInactive))

	require.NoError(t, svc.DeleteClient(ctx, c.ID))
	require.ErrorIs(t, svc.DeleteClient(ctx, c.ID), ErrClientNotFound)

	_, err := svc.GetClient(ctx, c.ID)
	require.ErrorIs(t, err, ErrClientNotFound)
}
