package prn

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateLengthAndAlphabet(t *testing.T) {
	for id := 1; id <= 32; id++ {
		code, err := Generate(id)
		require.NoError(t, err)
		require.Len(t, code, Length)
		for _, c := range code {
			assert.True(t, c == -1 || c == 1, "chip %d out of alphabet for PRN %d", c, id)
		}
	}
}

func TestGenerateBalance(t *testing.T) {
	for id := 1; id <= 32; id++ {
		code, err := Generate(id)
		require.NoError(t, err)
		sum := 0
		for _, c := range code {
			sum += int(c)
		}
		assert.Contains(t, []int{-1, 1}, sum, "PRN %d sum out of Gold-code balance", id)
	}
}

func TestGenerateAutocorrelation(t *testing.T) {
	code, err := Generate(3)
	require.NoError(t, err)

	for lag := 0; lag < Length; lag++ {
		sum := 0
		for i := 0; i < Length; i++ {
			sum += int(code[i]) * int(code[mod(i+lag, Length)])
		}
		if lag == 0 {
			assert.Equal(t, Length, sum)
		} else {
			assert.LessOrEqual(t, abs(sum), 65, "sidelobe at lag %d exceeds Gold-code bound", lag)
		}
	}
}

func TestGeneratePRN1KnownChips(t *testing.T) {
	code, err := Generate(1)
	require.NoError(t, err)
	want := []int8{-1, -1, -1, -1, -1, -1, -1, -1, -1, 1}
	assert.Equal(t, want, code[:10])
}

func TestGenerateInvalidID(t *testing.T) {
	_, err := Generate(0)
	assert.Error(t, err)

	_, err = Generate(33)
	assert.Error(t, err)
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
