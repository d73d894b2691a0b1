package stylesheet

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseMode(t *testing.T) {
	tests := []struct {
		in   string
		want Mode
	}{
		{"minify", ModeMinify},
		{"MIN", ModeMinify},
		{" format ", ModeFormat},
		{"beautify", ModeFormat},
	}
	for _, tt := range tests {
		got, err := ParseMode(tt.in)
		require.NoError(t, err, "ParseMode(%q)", tt.in)
		assert.Equal(t, tt.want, got)
	}

	_, err := ParseMode("compress")
	assert.ErrorIs(t, err, ErrUnknownMode)
}

func TestParseEngine(t *testing.T) {
	tests := []struct {
		in   string
		want Engine
	}{
		{"", EngineLexical},
		{"lexical", EngineLexical},
		{"Reference", EngineReference},
		{"aggressive", EngineAggressive},
	}
	for _, tt := range tests {
		got, err := ParseEngine(tt.in)
		require.NoError(t, err, "ParseEngine(%q)", tt.in)
		assert.Equal(t, tt.want, got)
	}

	_, err := ParseEngine("yui")
	assert.ErrorIs(t, err, ErrUnknownEngine)
}

func TestTransform(t *testing.T) {
	source := "a{color:red;;}"

	got, err := Transform(ModeMinify, EngineLexical, source)
	require.NoError(t, err)
	assert.Equal(t, "a{color:red}", got)

	got, err = Transform(ModeMinify, EngineReference, source)
	require.NoError(t, err)
	assert.Equal(t, "a{color:red;}", got)

	got, err = Transform(ModeFormat, EngineAggressive, source)
	require.NoError(t, err)
	assert.Equal(t, Format(source), got)

	_, err = Transform(Mode("zip"), EngineLexical, source)
	assert.ErrorIs(t, err, ErrUnknownMode)
}

func TestMinifyAggressive(t *testing.T) {
	got, err := MinifyAggressive("a {\n  margin : 0px ;\n}\n/* gone */")
	require.NoError(t, err)
	assert.NotContains(t, got, "0px")
	assert.NotContains(t, got, "gone")
	assert.NotContains(t, got, " ")

	got, err = MinifyAggressive("")
	require.NoError(t, err)
	assert.Empty(t, got)
}
