package attr

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValue_Constructors(t *testing.T) {
	assert.Equal(t, KindNull, Null().Kind)
	assert.Equal(t, KindInt, Int(7).Kind)
	assert.Equal(t, KindFloat, Float(1.5).Kind)
	assert.Equal(t, KindString, String("x").Kind)
	assert.Equal(t, KindBool, Bool(true).Kind)
	assert.Equal(t, KindArray, Array([]Value{Int(1)}).Kind)

	assert.True(t, Int(7).Valid())
	assert.False(t, Value{}.Valid())
}

func TestValue_KeyStability(t *testing.T) {
	v := String("hello")
	assert.Equal(t, v.Key(), String("hello").Key())

	// Keys of different kinds never collide, even for look-alike payloads.
	keys := []string{
		Null().Key(),
		Int(1).Key(),
		Float(1).Key(),
		String("1").Key(),
		Bool(true).Key(),
		Array([]Value{Int(1)}).Key(),
	}
	seen := make(map[string]struct{})
	for _, k := range keys {
		_, dup := seen[k]
		require.False(t, dup, "duplicate key %q", k)
		seen[k] = struct{}{}
	}
}

func TestValue_Equal(t *testing.T) {
	assert.True(t, Int(3).Equal(Int(3)))
	assert.False(t, Int(3).Equal(Int(4)))
	assert.False(t, Int(3).Equal(Float(3)))
	assert.True(t, Null().Equal(Null()))
	assert.True(t, String("a").Equal(String("a")))
	assert.False(t, String("a").Equal(String("b")))

	tuple := Array([]Value{Int(1), String("a")})
	assert.True(t, tuple.Equal(Array([]Value{Int(1), String("a")})))
	assert.False(t, tuple.Equal(Array([]Value{Int(1)})))
	assert.False(t, tuple.Equal(Array([]Value{Int(1), String("b")})))
}

func TestValue_EqualityMatchesKey(t *testing.T) {
	vals := []Value{
		Null(), Int(0), Int(42), Float(0), Float(42), Float(math.NaN()),
		String(""), String("42"), Bool(false), Bool(true),
		Array(nil), Array([]Value{Int(42), Bool(true)}),
	}
	for _, a := range vals {
		for _, b := range vals {
			assert.Equal(t, a.Key() == b.Key(), a.Equal(b), "a=%s b=%s", a.Key(), b.Key())
		}
	}
}

func TestValue_ArrayKeyInjective(t *testing.T) {
	// Element payloads must not be able to spoof the array encoding: a single
	// string carrying separator-looking bytes keys differently from the two
	// elements it imitates.
	spoofed := Array([]Value{String("x\x1fs:y")})
	split := Array([]Value{String("x"), String("y")})
	assert.NotEqual(t, spoofed.Key(), split.Key())
	assert.False(t, spoofed.Equal(split))

	// Nesting depth is part of the key as well.
	flat := Array([]Value{Int(1), Int(2)})
	nested := Array([]Value{Array([]Value{Int(1), Int(2)})})
	assert.NotEqual(t, flat.Key(), nested.Key())

	pairs := [][2]Value{
		{spoofed, split},
		{flat, nested},
		{Array(nil), Array([]Value{String("")})},
	}
	for _, p := range pairs {
		assert.Equal(t, p[0].Key() == p[1].Key(), p[0].Equal(p[1]))
	}
}

func TestValue_FloatBitPattern(t *testing.T) {
	// NaN equals itself (keyed by bit pattern), and the two zeros differ.
	nan := Float(math.NaN())
	assert.True(t, nan.Equal(Float(math.NaN())))
	assert.False(t, Float(0.0).Equal(Float(math.Copysign(0, -1))))
}

func TestKind_String(t *testing.T) {
	assert.Equal(t, "string", KindString.String())
	assert.Equal(t, "invalid", KindInvalid.String())
	assert.Equal(t, "array", KindArray.String())
}
