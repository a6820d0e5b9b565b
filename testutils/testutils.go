package testutils

import (
	"strings"
	"testing"

	"github.com/abacus-labs/abacus/interfaces"
	"github.com/stretchr/testify/require"
)

// Keys splits a space separated key sequence such as "2 + 3 =" into tokens.
func Keys(seq string) []string {
	return strings.Fields(seq)
}

// RequireDisplay fails the test unless calc shows want and, when wantEntry is
// non-empty, its last history entry equals wantEntry.
func RequireDisplay(t *testing.T, calc interfaces.Calculator, want, wantEntry string) {
	t.Helper()
	require.Equal(t, want, calc.Display(), "display")
	if wantEntry == "" {
		return
	}
	entry, ok := calc.LastHistoryEntry()
	require.True(t, ok, "expected a history entry")
	require.Equal(t, wantEntry, entry, "last history entry")
}
