package emoji

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPick_AlwaysFromDeclaredSet(t *testing.T) {
	declared := Symbols()
	for range 200 {
		assert.Contains(t, declared, Pick())
	}
}

func TestSymbols_NonEmpty(t *testing.T) {
	require.NotEmpty(t, Symbols())
}

func TestSymbols_ReturnsCopy(t *testing.T) {
	first := Symbols()
	first[0] = "mutated"
	assert.NotEqual(t, "mutated", Symbols()[0])
}
