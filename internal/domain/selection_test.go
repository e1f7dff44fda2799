package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseSelection(t *testing.T) {
	tests := []struct {
		input string
		want  Selection
	}{
		{input: "all", want: SelectionAll},
		{input: "north", want: SelectionNorth},
		{input: "North", want: SelectionNorth},
		{input: "NORTH", want: SelectionNorth},
		{input: " east ", want: SelectionEast},
		{input: "South", want: SelectionSouth},
		{input: "wEST", want: SelectionWest},
	}

	for _, tt := range tests {
		got, err := ParseSelection(tt.input)
		require.NoError(t, err, tt.input)
		assert.Equal(t, tt.want, got, tt.input)
	}

	for _, invalid := range []string{"", "central", "nort", "all regions"} {
		_, err := ParseSelection(invalid)
		assert.Error(t, err, invalid)
	}
}

func TestSelection_DisplayName(t *testing.T) {
	assert.Equal(t, "All", SelectionAll.DisplayName())
	assert.Equal(t, "North", SelectionNorth.DisplayName())
	assert.Equal(t, "West", SelectionWest.DisplayName())
}

func TestSelection_Matches(t *testing.T) {
	assert.True(t, SelectionAll.Matches("anything"))
	assert.True(t, SelectionAll.Matches(""))
	assert.True(t, SelectionNorth.Matches("NoRtH"))
	assert.False(t, SelectionNorth.Matches("south"))
	assert.False(t, SelectionNorth.Matches("northeast"))
	assert.True(t, SelectionNorth.Matches("north "))
	assert.True(t, SelectionWest.Matches("\tWest"))
}

func TestIsKnownRegion(t *testing.T) {
	assert.True(t, IsKnownRegion("EAST"))
	assert.False(t, IsKnownRegion("all"))
	assert.False(t, IsKnownRegion("central"))
	assert.True(t, IsKnownRegion(" south "))
}

func TestSelectionOptions(t *testing.T) {
	assert.Equal(t, []SelectionOption{
		{Label: "All", Value: SelectionAll},
		{Label: "North", Value: SelectionNorth},
		{Label: "East", Value: SelectionEast},
		{Label: "South", Value: SelectionSouth},
		{Label: "West", Value: SelectionWest},
	}, SelectionOptions())
}
