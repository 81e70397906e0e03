package whygo

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseActual(t *testing.T) {
	tests := []struct {
		raw  string
		want *Value
	}{
		{"5", Num(5)},
		{"-3", Num(-3)},
		{" 42 ", Num(42)},
		{"2.5", Num(2.5)},
		{"1e3", Num(1000)},
		{"MVP launched", Text("MVP launched")},
		{"", Text("")},
		{"5 clients", Text("5 clients")},
	}

	for _, tc := range tests {
		t.Run(tc.raw, func(t *testing.T) {
			assert.True(t, ParseActual(tc.raw).Equal(tc.want), "ParseActual(%q)", tc.raw)
		})
	}
}

func TestValueFloat(t *testing.T) {
	f, err := Num(2.5).Float()
	require.NoError(t, err)
	assert.Equal(t, 2.5, f)

	f, err = Text(" 80 ").Float()
	require.NoError(t, err)
	assert.Equal(t, 80.0, f)

	_, err = Text("MVP").Float()
	assert.Error(t, err)
}

func TestValueString(t *testing.T) {
	assert.Equal(t, "5", Num(5).String())
	assert.Equal(t, "2.5", Num(2.5).String())
	assert.Equal(t, "MVP", Text("MVP").String())

	var v *Value
	assert.Equal(t, "", v.String())
}

func TestValueJSON(t *testing.T) {
	t.Run("number stays a number", func(t *testing.T) {
		b, err := json.Marshal(Num(5))
		require.NoError(t, err)
		assert.Equal(t, "5", string(b))

		var v Value
		require.NoError(t, json.Unmarshal(b, &v))
		assert.True(t, v.Equal(Num(5)))
	})

	t.Run("text stays a string", func(t *testing.T) {
		b, err := json.Marshal(Text("MVP live"))
		require.NoError(t, err)
		assert.Equal(t, `"MVP live"`, string(b))

		var v Value
		require.NoError(t, json.Unmarshal(b, &v))
		assert.True(t, v.Equal(Text("MVP live")))
	})

	t.Run("bool decodes as text", func(t *testing.T) {
		var v Value
		require.NoError(t, json.Unmarshal([]byte("true"), &v))
		assert.True(t, v.Equal(Text("true")))
	})

	t.Run("large int keeps precision in output", func(t *testing.T) {
		var v Value
		require.NoError(t, json.Unmarshal([]byte("250000"), &v))
		assert.Equal(t, "250000", v.String())
	})

	t.Run("null is rejected", func(t *testing.T) {
		var v Value
		assert.Error(t, json.Unmarshal([]byte("null"), &v))
	})
}

func TestValueClone(t *testing.T) {
	orig := Num(5)
	clone := orig.Clone()
	clone.Num = 9
	assert.Equal(t, 5.0, orig.Num)

	var nilVal *Value
	assert.Nil(t, nilVal.Clone())
}
