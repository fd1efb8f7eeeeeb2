package arity

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolveNArgs(t *testing.T) {
	tests := []struct {
		name  string
		nargs NArgs
		want  Range
	}{
		{"zero or more", ZeroOrMore, Range{0, Unbounded}},
		{"remainder", Remainder, Range{0, Unbounded}},
		{"zero or one", ZeroOrOne, Range{0, 1}},
		{"one or more", OneOrMore, Range{1, Unbounded}},
		{"exact five", Exact(5), Range{5, 5}},
		{"exact zero", Exact(0), Range{0, 0}},
		{"unspecified defaults to store", Unspecified, Range{1, 1}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Resolve(tt.nargs, nil)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestResolveBuiltinActions(t *testing.T) {
	tests := []struct {
		name   string
		action Kind
		want   Range
	}{
		{"store", Store, Range{1, 1}},
		{"append", Append, Range{1, 1}},
		{"store const", StoreConst, Range{0, 0}},
		{"store true", StoreTrue, Range{0, 0}},
		{"store false", StoreFalse, Range{0, 0}},
		{"append const", AppendConst, Range{0, 0}},
		{"count", Count, Range{0, 0}},
		{"help", Help, Range{0, 0}},
		{"version", Version, Range{0, 0}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Resolve(Unspecified, tt.action)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestResolveExplicitNArgsWinsOverAction(t *testing.T) {
	got, err := Resolve(ZeroOrMore, StoreTrue)
	require.NoError(t, err)
	assert.Equal(t, Range{0, Unbounded}, got)
}

type remainderAction struct{}

func (remainderAction) ValueNArgs() NArgs { return Remainder }

type silentAction struct{}

func (silentAction) ValueNArgs() NArgs { return Unspecified }

func TestResolveCustomAction(t *testing.T) {
	got, err := Resolve(Unspecified, remainderAction{})
	require.NoError(t, err)
	assert.Equal(t, Range{0, Unbounded}, got)

	// A custom action that declares nothing falls back to the default
	// store behavior.
	got, err = Resolve(Unspecified, silentAction{})
	require.NoError(t, err)
	assert.Equal(t, Range{1, 1}, got)
}

func TestResolveInvalid(t *testing.T) {
	_, err := Resolve(NArgs("bogus"), nil)
	assert.ErrorIs(t, err, ErrInvalidArity)

	_, err = Resolve(NArgs("-3"), nil)
	assert.ErrorIs(t, err, ErrInvalidArity)

	_, err = Resolve(Unspecified, Kind(999))
	assert.ErrorIs(t, err, ErrInvalidArity)
}

func TestRangeConsume(t *testing.T) {
	r := Range{2, 3}
	r = r.Consume()
	assert.Equal(t, Range{1, 2}, r)
	r = r.Consume()
	assert.Equal(t, Range{0, 1}, r)
	r = r.Consume()
	assert.Equal(t, Range{0, 0}, r)
	assert.False(t, r.Open())

	// Min floors at zero even when Max is still open.
	r = Range{0, 2}.Consume()
	assert.Equal(t, Range{0, 1}, r)
}

func TestRangeConsumeUnbounded(t *testing.T) {
	r := Range{1, Unbounded}
	r = r.Consume()
	assert.Equal(t, Range{0, Unbounded}, r)
	for i := 0; i < 100; i++ {
		r = r.Consume()
	}
	assert.True(t, r.Open(), "unbounded ranges never exhaust")
}

func TestRangeString(t *testing.T) {
	assert.Equal(t, "(1, 1)", Exactly(1).String())
	assert.Equal(t, "(0, unbounded)", Range{0, Unbounded}.String())
}
