package baseband

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfigValidates(t *testing.T) {
	require.NoError(t, DefaultConfig().Validate())
}

func TestConfigRejectsNonPositiveSampleRate(t *testing.T) {
	c := DefaultConfig()
	c.SampleRateHz = 0
	err := c.Validate()
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidConfiguration)
}

func TestDefaultDopplerGridSpansRange(t *testing.T) {
	grid, err := DefaultDopplerGrid(1e-3)
	require.NoError(t, err)
	require.NotEmpty(t, grid)
	assert.InDelta(t, -7000, grid[0], 1e-6)
	assert.InDelta(t, 7000, grid[len(grid)-1], 250.01)
}

func TestDopplerGridRejectsEmptyRange(t *testing.T) {
	_, err := DopplerGrid(100, 100, 1)
	assert.ErrorIs(t, err, ErrInvalidConfiguration)
}
