package displayid_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/sweetfm/backoffice/pkg/displayid"
)

func TestFormat(t *testing.T) {
	t.Parallel()

	require.Equal(t, "C24001", displayid.Format(displayid.KindClient, 2024, 1))
	require.Equal(t, "S23006", displayid.Format(displayid.KindEmployee, 2023, 6))
	require.Equal(t, "C24123", displayid.Format(displayid.KindClient, 2024, 123))

	// Past 999 the sequence widens instead of wrapping.
	require.Equal(t, "S241000", displayid.Format(displayid.KindEmployee, 2024, 1000))
}

func TestIsValid(t *testing.T) {
	t.Parallel()

	require.True(t, displayid.IsValid(displayid.KindClient, "C24002"))
	require.True(t, displayid.IsValid(displayid.KindEmployee, "S23006"))
	require.True(t, displayid.IsValid(displayid.KindClient, "C241000"))

	// Wrong kind letter for the requested kind.
	require.False(t, displayid.IsValid(displayid.KindClient, "S24002"))
	require.False(t, displayid.IsValid(displayid.KindEmployee, "C24002"))

	// Malformed values.
	require.False(t, displayid.IsValid(displayid.KindClient, ""))
	require.False(t, displayid.IsValid(displayid.KindClient, "C2400"))
	require.False(t, displayid.IsValid(displayid.KindClient, "C24X01"))
	require.False(t, displayid.IsValid(displayid.KindClient, "c24001"))
}

func TestYearAndSequence(t *testing.T) {
	t.Parallel()

	year, ok := displayid.Year("C24002")
	require.True(t, ok)
	require.Equal(t, 2024, year)

	seq, ok := displayid.Sequence("C24002")
	require.True(t, ok)
	require.Equal(t, 2, seq)

	year, ok = displayid.Year("S23006")
	require.True(t, ok)
	require.Equal(t, 2023, year)

	seq, ok = displayid.Sequence("S241234")
	require.True(t, ok)
	require.Equal(t, 1234, seq)

	// Malformed inputs report ok=false rather than panicking.
	_, ok = displayid.Year("garbage")
	require.False(t, ok)
	_, ok = displayid.Sequence("X24001")
	require.False(t, ok)
}
