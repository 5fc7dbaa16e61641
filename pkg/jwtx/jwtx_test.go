package jwtx_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"github.com/sweetfm/backoffice/pkg/jwtx"
)

func TestSignAndVerify(t *testing.T) {
	keys, err := jwtx.GenerateKeySet()
	require.NoError(t, err)

	claims := jwtx.NewClaims("sweetfm-backoffice", "user-1", "Alice", "manager", "Broadcasting", time.Hour)
	raw, err := keys.Sign(claims)
	require.NoError(t, err)

	v := jwtx.Verifier{Keys: keys, Issuer: "sweetfm-backoffice"}
	got, err := v.Verify(raw)
	require.NoError(t, err)
	require.Equal(t, "user-1", got.Subject)
	require.Equal(t, "manager", got.Role)
	require.Equal(t, "Broadcasting", got.Department)
}

func TestVerifyRejectsWrongIssuer(t *testing.T) {
	keys, err := jwtx.GenerateKeySet()
	require.NoError(t, err)

	raw, err := keys.Sign(jwtx.NewClaims("someone-else", "user-1", "", "admin", "", time.Hour))
	require.NoError(t, err)

	v := jwtx.Verifier{Keys: keys, Issuer: "sweetfm-backoffice"}
	_, err = v.Verify(raw)
	require.ErrorIs(t, err, jwtx.ErrInvalidToken)
}

func TestVerifyRejectsExpired(t *testing.T) {
	keys, err := jwtx.GenerateKeySet()
	require.NoError(t, err)

	raw, err := keys.Sign(jwtx.NewClaims("sweetfm-backoffice", "user-1", "", "admin", "", -time.Minute))
	require.NoError(t, err)

	v := jwtx.Verifier{Keys: keys, Issuer: "sweetfm-backoffice"}
	_, err = v.Verify(raw)
	require.ErrorIs(t, err, jwtx.ErrExpiredToken)
}

func TestVerifyRejectsForeignKey(t *testing.T) {
	keysA, err := jwtx.GenerateKeySet()
	require.NoError(t, err)
	keysB, err := jwtx.GenerateKeySet()
	require.NoError(t, err)

	raw, err := keysA.Sign(jwtx.NewClaims("sweetfm-backoffice", "user-1", "", "admin", "", time.Hour))
	require.NoError(t, err)

	v := jwtx.Verifier{Keys: keysB, Issuer: "sweetfm-backoffice"}
	_, err = v.Verify(raw)
	require.ErrorIs(t, err, jwtx.ErrInvalidToken)
}

func TestLoadOrGenerateKeySetPersists(t *testing.T) {
	path := filepath.Join(t.TempDir(), "session.key")

	first, err := jwtx.LoadOrGenerateKeySet(path)
	require.NoError(t, err)

	// Same file must produce the same key.
	second, err := jwtx.LoadOrGenerateKeySet(path)
	require.NoError(t, err)
	require.Equal(t, first.KID, second.KID)

	// A token signed by the first load verifies under the second.
	raw, err := first.Sign(jwtx.NewClaims("sweetfm-backoffice", "u", "", "admin", "", time.Hour))
	require.NoError(t, err)
	v := jwtx.Verifier{Keys: second, Issuer: "sweetfm-backoffice"}
	_, err = v.Verify(raw)
	require.NoError(t, err)

	// Sanity: the file exists and is not empty.
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	require.NotEmpty(t, data)
}
