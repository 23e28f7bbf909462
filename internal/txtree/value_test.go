package txtree

import (
	"encoding/json"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustParse(t *testing.T, s string) Value {
	t.Helper()
	v, err := Parse([]byte(s))
	require.NoError(t, err)
	return v
}

func mustMarshal(t *testing.T, v Value) string {
	t.Helper()
	b, err := Marshal(v)
	require.NoError(t, err)
	return string(b)
}

func TestParseKeepsKeyOrder(t *testing.T) {
	v := mustParse(t, `{"z":1,"a":{"y":true,"b":null},"m":["x",2.5,false,null]}`)

	obj, ok := v.(Object)
	require.True(t, ok)
	assert.Equal(t, []string{"z", "a", "m"}, obj.Keys())

	inner, ok := obj.Get("a")
	require.True(t, ok)
	assert.Equal(t, Object{{Key: "y", Value: Bool(true)}, {Key: "b", Value: Null{}}}, inner)

	arr, ok := obj.Get("m")
	require.True(t, ok)
	assert.Equal(t, Array{String("x"), Number("2.5"), Bool(false), Null{}}, arr)

	assert.Equal(t, `{"z":1,"a":{"y":true,"b":null},"m":["x",2.5,false,null]}`, mustMarshal(t, v))
}

func TestParseDuplicateKeysKeepLast(t *testing.T) {
	v := mustParse(t, `{"a":1,"b":2,"a":3}`)
	assert.Equal(t, `{"a":3,"b":2}`, mustMarshal(t, v))
}

func TestParseRejectsMalformedInput(t *testing.T) {
	for _, in := range []string{``, `{`, `{"a":}`, `[1,2`, `{"a":1} {"b":2}`, `nul`, `{"a" 1}`} {
		_, err := Parse([]byte(in))
		require.ErrorIs(t, err, ErrMalformedTxTree, "input %q", in)
	}
}

func TestParseDepthGuard(t *testing.T) {
	ok := strings.Repeat("[", MaxDepth) + strings.Repeat("]", MaxDepth)
	_, err := Parse([]byte(ok))
	require.NoError(t, err)

	deep := strings.Repeat("[", MaxDepth+2) + strings.Repeat("]", MaxDepth+2)
	_, err = Parse([]byte(deep))
	require.ErrorIs(t, err, ErrMalformedTxTree)
}

func TestMarshalScalarFormatting(t *testing.T) {
	tests := []struct {
		name string
		in   Value
		want string
	}{
		{"integer", Number("42"), `42`},
		{"trailing zero", Number("1.0"), `1`},
		{"exponent", Number("1E2"), `100`},
		{"fraction", Number("0.5"), `0.5`},
		{"large", Number("1e21"), `1e+21`},
		{"small", Number("0.0000001"), `1e-7`},
		{"negative", Number("-12.25"), `-12.25`},
		{"html escaped", String("a<b>&c"), `"a\u003cb\u003e\u0026c"`},
		{"quote and backslash", String(`"\`), `"\"\\"`},
		{"control", String("a\tb\nc\u0001"), `"a\tb\nc\u0001"`},
		{"line separator", String("x\u2028y"), `"x\u2028y"`},
		{"unicode", String("héllo ✓"), `"héllo ✓"`},
		{"null", Null{}, `null`},
		{"nil", nil, `null`},
		{"true", Bool(true), `true`},
		{"empty array", Array{}, `[]`},
		{"empty object", Object{}, `{}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, mustMarshal(t, tt.in))
		})
	}
}

func TestMarshalRejectsBadNumbers(t *testing.T) {
	for _, n := range []Number{"", "abc", "1e400"} {
		_, err := Marshal(Array{n})
		require.ErrorIs(t, err, ErrMalformedTxTree, "number %q", string(n))
	}
}

func TestMarshalJSONInterop(t *testing.T) {
	payload := struct {
		Tx   Object `json:"tx"`
		Mode string `json:"mode"`
	}{
		Tx:   Object{{Key: "b", Value: Number("2")}, {Key: "a", Value: Array{String("x")}}},
		Mode: "sync",
	}
	b, err := json.Marshal(payload)
	require.NoError(t, err)
	assert.JSONEq(t, `{"tx":{"b":2,"a":["x"]},"mode":"sync"}`, string(b))
	assert.Equal(t, `{"tx":{"b":2,"a":["x"]},"mode":"sync"}`, string(b))
}

func TestObjectWith(t *testing.T) {
	base := Object{{Key: "a", Value: Number("1")}, {Key: "b", Value: Null{}}}

	replaced := base.With("b", String("x"))
	assert.Equal(t, []string{"a", "b"}, replaced.Keys())
	assert.Equal(t, Null{}, base[1].Value, "With must not mutate the receiver")

	appended := base.With("c", Bool(true))
	assert.Equal(t, []string{"a", "b", "c"}, appended.Keys())
	assert.Len(t, base, 2)
}

func TestParseWidthGuard(t *testing.T) {
	_, err := Parse([]byte("[" + strings.Repeat("0,", MaxWidth-1) + "0]"))
	require.NoError(t, err)

	_, err = Parse([]byte("[" + strings.Repeat("0,", MaxWidth) + "0]"))
	require.ErrorIs(t, err, ErrMalformedTxTree)

	var sb strings.Builder
	sb.WriteString("{")
	for i := 0; i <= MaxWidth; i++ {
		if i > 0 {
			sb.WriteByte(',')
		}
		fmt.Fprintf(&sb, `"k%d":0`, i)
	}
	sb.WriteString("}")
	_, err = Parse([]byte(sb.String()))
	require.ErrorIs(t, err, ErrMalformedTxTree)
}
