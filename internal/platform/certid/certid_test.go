package certid

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNew_LengthAndAlphabet(t *testing.T) {
	for i := 0; i < 100; i++ {
		id, err := New()
		require.NoError(t, err)
		require.Len(t, id, Length)

		for _, r := range id {
			require.True(t, strings.ContainsRune(Alphabet, r), "unexpected rune %q in id %q", r, id)
		}
	}
}

func TestNew_NoCollisionsAcrossManyIDs(t *testing.T) {
	// 10k IDs sobre 2.2e9 valores posibles: una colisión acá sería
	// señal de un generador roto, no de mala suerte.
	const n = 10000

	seen := make(map[string]struct{}, n)
	for i := 0; i < n; i++ {
		id, err := New()
		require.NoError(t, err)

		_, dup := seen[id]
		require.False(t, dup, "duplicate id %q after %d generations", id, i)
		seen[id] = struct{}{}
	}
}
