package asset

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewAsset_TrimsFreeText(t *testing.T) {
	a := NewAsset("  Boiler room \n", "\tsecond floor  ")

	assert.Equal(t, int64(0), a.ID())
	assert.Equal(t, "Boiler room", a.Title())
	assert.Equal(t, "second floor", a.Description())
}

func TestAsset_SetID(t *testing.T) {
	a := NewAsset("Pump", "")

	require.Error(t, a.SetID(0))
	require.NoError(t, a.SetID(7))
	assert.Equal(t, int64(7), a.ID())
	assert.Error(t, a.SetID(8), "id is immutable once assigned")
}

func TestReconstructAsset(t *testing.T) {
	a, err := ReconstructAsset(3, " kept ", "as stored")
	require.NoError(t, err)
	assert.Equal(t, " kept ", a.Title())

	_, err = ReconstructAsset(0, "x", "y")
	assert.Error(t, err)
}
