// Package token provides token generation and keyed hashing utilities.
package token

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerate(t *testing.T) {
	t.Run("default length", func(t *testing.T) {
		id, err := GenerateID()
		require.NoError(t, err)
		assert.Len(t, id, IDLength)
	})

	t.Run("requested length", func(t *testing.T) {
		for _, n := range []int{1, 8, 20, 64} {
			s, err := Generate(n)
			require.NoError(t, err)
			assert.Len(t, s, n)
		}
	})

	t.Run("alphabet only", func(t *testing.T) {
		s, err := Generate(512)
		require.NoError(t, err)
		for _, c := range s {
			assert.True(t, strings.ContainsRune(Alphabet, c), "unexpected character %q", c)
		}
	})

	t.Run("non-positive length", func(t *testing.T) {
		_, err := Generate(0)
		assert.ErrorIs(t, err, ErrInvalidLength)

		_, err = Generate(-5)
		assert.ErrorIs(t, err, ErrInvalidLength)
	})

	t.Run("no trivial repeats", func(t *testing.T) {
		seen := make(map[string]bool)
		for i := 0; i < 100; i++ {
			id, err := GenerateID()
			require.NoError(t, err)
			assert.False(t, seen[id], "duplicate id generated: %s", id)
			seen[id] = true
		}
	})
}

func TestValidID(t *testing.T) {
	id, err := GenerateID()
	require.NoError(t, err)
	assert.True(t, ValidID(id))

	assert.False(t, ValidID(""))
	assert.False(t, ValidID("short"))
	assert.False(t, ValidID(strings.Repeat("a", IDLength+1)))
	assert.False(t, ValidID(strings.Repeat("A", IDLength)))
	assert.False(t, ValidID(strings.Repeat("a", IDLength-1)+"!"))
}

func TestKeyedHash(t *testing.T) {
	t.Run("deterministic", func(t *testing.T) {
		a := KeyedHash("secret", "password1")
		b := KeyedHash("secret", "password1")
		assert.Equal(t, a, b)
		assert.Len(t, a, 64) // hex SHA-256
	})

	t.Run("secret changes output", func(t *testing.T) {
		assert.NotEqual(t, KeyedHash("secret-a", "password1"), KeyedHash("secret-b", "password1"))
	})

	t.Run("input changes output", func(t *testing.T) {
		assert.NotEqual(t, KeyedHash("secret", "password1"), KeyedHash("secret", "password2"))
	})

	t.Run("no plaintext trace", func(t *testing.T) {
		h := KeyedHash("secret", "hunter2")
		assert.NotContains(t, h, "hunter2")
	})
}

func TestVerifyKeyedHash(t *testing.T) {
	h := KeyedHash("secret", "password1")

	assert.True(t, VerifyKeyedHash("secret", "password1", h))
	assert.False(t, VerifyKeyedHash("secret", "wrong", h))
	assert.False(t, VerifyKeyedHash("other", "password1", h))
	assert.False(t, VerifyKeyedHash("secret", "password1", ""))
}
