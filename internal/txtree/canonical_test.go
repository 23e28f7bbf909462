package txtree

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func prepared(t *testing.T, in string) string {
	t.Helper()
	out, err := PrepareSignBytes(mustParse(t, in))
	require.NoError(t, err)
	return mustMarshal(t, out)
}

func TestPrepareSignBytes(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"drops null members", `{"a":1,"b":null}`, `{"a":1}`},
		{"unwraps envelope and sorts", `{"type":"x","value":{"b":1,"a":2}}`, `{"a":2,"b":1}`},
		{"three keys are not an envelope", `{"type":"x","value":{"b":1},"extra":true}`, `{"extra":true,"type":"x","value":{"b":1}}`},
		{"null member does not block unwrapping", `{"type":"x","value":{"b":1},"extra":null}`, `{"b":1}`},
		{"type with null value is not an envelope", `{"type":"x","value":null}`, `{"type":"x"}`},
		{"array order kept", `[3,1,2]`, `[3,1,2]`},
		{"nulls kept inside arrays", `[null,{"a":null}]`, `[null,{}]`},
		{"scalars unchanged", `"memo"`, `"memo"`},
		{"envelope around array", `{"type":"x","value":[{"z":1,"y":2}]}`, `[{"y":2,"z":1}]`},
		{"envelope around scalar", `{"value":"v","type":"x"}`, `"v"`},
		{"nested envelopes", `{"type":"a","value":{"type":"b","value":{"k":"v"}}}`, `{"k":"v"}`},
		{"sort is bytewise", `{"b":1,"B":2,"a":3,"_":4,"aa":5}`, `{"B":2,"_":4,"a":3,"aa":5,"b":1}`},
		{
			"deep",
			`{"msg":[{"type":"cosmos-sdk/MsgSend","value":{"to_address":"b","from_address":"a","amount":[{"denom":"uatom","amount":"1"}]}}]}`,
			`{"msg":[{"amount":[{"amount":"1","denom":"uatom"}],"from_address":"a","to_address":"b"}]}`,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, prepared(t, tt.in))
		})
	}
}

func TestPrepareSignBytesIsIdempotent(t *testing.T) {
	inputs := []string{
		`{"a":1,"b":null}`,
		`{"type":"x","value":{"b":1,"a":2}}`,
		`{"type":"x","value":{"b":1},"extra":null}`,
		`{"type":"x","value":{"b":1},"extra":true}`,
		`[3,1,{"z":null,"y":[{"type":"t","value":{"q":1}}]}]`,
		`{"fee":{"amount":null,"gas":"200000"},"msg":[{"type":"m","value":{"B":"x","A":"y"}}],"signatures":null,"memo":""}`,
	}
	for _, in := range inputs {
		once, err := PrepareSignBytes(mustParse(t, in))
		require.NoError(t, err)
		twice, err := PrepareSignBytes(once)
		require.NoError(t, err)
		assert.Equal(t, mustMarshal(t, once), mustMarshal(t, twice), in)
	}
}

func TestPrepareSignBytesDoesNotMutateInput(t *testing.T) {
	in := mustParse(t, `{"b":1,"a":{"d":null,"c":2}}`)
	before := mustMarshal(t, in)

	_, err := PrepareSignBytes(in)
	require.NoError(t, err)
	assert.Equal(t, before, mustMarshal(t, in))
}

func TestPrepareSignBytesDepthGuard(t *testing.T) {
	var v Value = String("leaf")
	for i := 0; i < MaxDepth+5; i++ {
		v = Object{{Key: "k", Value: v}}
	}
	_, err := PrepareSignBytes(v)
	require.ErrorIs(t, err, ErrMalformedTxTree)

	_, err = Marshal(v)
	require.ErrorIs(t, err, ErrMalformedTxTree)

	shallow := mustParse(t, strings.Repeat(`{"k":`, 10)+`1`+strings.Repeat(`}`, 10))
	_, err = PrepareSignBytes(shallow)
	require.NoError(t, err)
}

func TestPrepareSignBytesDuplicateMembersKeepLast(t *testing.T) {
	in := Object{
		{Key: "b", Value: Number("1")},
		{Key: "a", Value: Number("2")},
		{Key: "b", Value: Number("3")},
		{Key: "a", Value: Null{}},
	}
	out, err := PrepareSignBytes(in)
	require.NoError(t, err)
	assert.Equal(t, `{"a":2,"b":3}`, mustMarshal(t, out))
}
