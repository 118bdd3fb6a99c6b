package config

import (
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/rubyparse/rubyparse/internal/pool"
)

func TestDefault(t *testing.T) {
	o := Default()
	assert.Equal(t, 1, o.StartLine)
	assert.Equal(t, "latest", o.Version)
	assert.Nil(t, o.Logger)
}

func TestApplyFoldsOptionsOntoDefault(t *testing.T) {
	logger := slog.Default()
	o := Apply(
		WithStartLine(5),
		WithFrozenStringLiteral(true),
		WithEncodingHint("Shift_JIS"),
		WithVersion("cruby-3.3.0"),
		WithLogger(logger),
	)

	assert.Equal(t, 5, o.StartLine)
	assert.True(t, o.FrozenStringLiteral)
	assert.Equal(t, "Shift_JIS", o.EncodingHint)
	assert.Equal(t, "cruby-3.3.0", o.Version)
	assert.Same(t, logger, o.Logger)
}

func TestOuterScopeIDsInternsEachFrame(t *testing.T) {
	o := Apply(WithOuterScopes([][]string{{"a", "b"}, {"c"}}))
	p := pool.New(95)
	ids := o.OuterScopeIDs(p)

	assert.Len(t, ids, 2)
	assert.Len(t, ids[0], 2)
	assert.Len(t, ids[1], 1)
	assert.Equal(t, "a", p.String(ids[0][0]))
	assert.Equal(t, "c", p.String(ids[1][0]))
}
