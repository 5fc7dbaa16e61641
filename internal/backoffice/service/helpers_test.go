package service

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"github.com/sweetfm/backoffice/internal/backoffice/domain"
	"github.com/sweetfm/backoffice/internal/backoffice/store/drivers/sqlite"
	"github.com/sweetfm/backoffice/pkg/cryptox"
	"github.com/sweetfm/backoffice/pkg/idx"
)

func TestMain(m *testing.M) {
	dir, err := os.MkdirTemp("", "backoffice-service-test")
	if err != nil {
		panic(err)
	}
	cryptox.SetPepperPath(filepath.Join(dir, "pepper"))

	code := m.Run()
	_ = os.RemoveAll(dir)
	os.Exit(code)
}

func newTestStore(t *testing.T) *sqlite.Store {
	t.Helper()

	st, err := sqlite.NewStore(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = st.Close() })

	require.NoError(t, st.ApplyMigrations())
	return st
}

// seedUser inserts an account directly; the password hash is a
// placeholder unless the test needs to log in.
func seedUser(t *testing.T, st *sqlite.Store, role domain.Role, email string) domain.User {
	t.Helper()

	now := time.Now().UTC()
	u := domain.User{
		ID:           idx.New().String(),
		Email:        email,
		Name:         "Seed User",
		PasswordHash: "hash",
		Role:         role,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if role.HasDepartment() {
		u.Department = "Programming"
	}
	require.NoError(t, st.Users().CreateUser(context.Background(), u))
	return u
}

func seedClient(t *testing.T, st *sqlite.Store, name string) domain.Client {
	t.Helper()

	svc := &DirectoryService{Store: st}
	c, err := svc.CreateClient(context.Background(), domain.Client{Name: name})
	require.NoError(t, err)
	return c
}

func seedEmployee(t *testing.T, st *sqlite.Store, name string, hireDate time.Time) domain.Employee {
	t.Helper()

	svc := &DirectoryService{Store: st}
	e, err := svc.CreateEmployee(context.Background(), domain.Employee{
		Name:     name,
		HireDate: hireDate,
	})
	require.NoError(t, err)
	return e
}
