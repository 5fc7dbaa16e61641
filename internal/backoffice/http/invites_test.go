package http

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/sweetfm/backoffice/internal/backoffice/service"
	"github.com/sweetfm/backoffice/pkg/httpx"
)

// TestLookupErrorDoesNotRevealUnknownTokens verifies the user-facing copy
// for an unknown token never confirms the token does not exist; the page
// shows the same "invalid or expired" message either way, while the
// machine-readable codes stay distinct.
func TestLookupErrorDoesNotRevealUnknownTokens(t *testing.T) {
	decode := func(rec *httptest.ResponseRecorder) httpx.ErrorResponse {
		var body httpx.ErrorResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
		return body
	}

	rec := httptest.NewRecorder()
	writeLookupError(rec, service.ErrInviteNotFound)
	require.Equal(t, http.StatusNotFound, rec.Code)
	unknown := decode(rec)
	require.Equal(t, "not_found", unknown.Error)
	require.Equal(t, "This invitation link is invalid or expired", unknown.ErrorDescription)

	rec = httptest.NewRecorder()
	writeLookupError(rec, service.ErrInviteExpired)
	require.Equal(t, http.StatusGone, rec.Code)
	expired := decode(rec)
	require.Equal(t, "expired", expired.Error)

	rec = httptest.NewRecorder()
	writeLookupError(rec, service.ErrInviteAlreadyUsed)
	require.Equal(t, http.StatusGone, rec.Code)
	require.Equal(t, "already_used", decode(rec).Error)
}
