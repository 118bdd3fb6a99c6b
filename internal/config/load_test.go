package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadOptionsJSON(t *testing.T) {
	blob := []byte(`{"start_line": 3, "frozen_string_literal": true, "version": "cruby-3.2.0"}`)
	o, err := LoadOptions(blob)
	require.NoError(t, err)
	assert.Equal(t, 3, o.StartLine)
	assert.True(t, o.FrozenStringLiteral)
	assert.Equal(t, "cruby-3.2.0", o.Version)
}

func TestLoadOptionsJSONRejectsUnknownField(t *testing.T) {
	blob := []byte(`{"not_a_real_field": 1}`)
	_, err := LoadOptions(blob)
	assert.Error(t, err)
}

func TestLoadOptionsJSONRejectsBadVersion(t *testing.T) {
	blob := []byte(`{"version": "not-a-version"}`)
	_, err := LoadOptions(blob)
	assert.Error(t, err)
}

func TestLoadOptionsYAML(t *testing.T) {
	blob := []byte("start_line: 7\nencoding_hint: UTF-8\n")
	o, err := LoadOptions(blob)
	require.NoError(t, err)
	assert.Equal(t, 7, o.StartLine)
	assert.Equal(t, "UTF-8", o.EncodingHint)
}

func TestNormalizeVersion(t *testing.T) {
	tests := []struct {
		in      string
		want    string
		wantOK  bool
	}{
		{"latest", "v99.99.99", true},
		{"", "v99.99.99", true},
		{"cruby-3.3.0", "v3.3.0", true},
		{"3.3.0", "v3.3.0", true},
		{"v3.3.0", "v3.3.0", true},
		{"not-a-version", "", false},
	}
	for _, tt := range tests {
		got, ok := NormalizeVersion(tt.in)
		assert.Equal(t, tt.wantOK, ok, "input %q", tt.in)
		if tt.wantOK {
			assert.Equal(t, tt.want, got, "input %q", tt.in)
		}
	}
}

func TestSyntaxAvailable(t *testing.T) {
	assert.True(t, SyntaxAvailable("v3.4.0", "v3.4.0"))
	assert.True(t, SyntaxAvailable("v99.99.99", "v3.4.0"))
	assert.False(t, SyntaxAvailable("v3.0.0", "v3.4.0"))
}
