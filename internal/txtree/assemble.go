package txtree

import (
	"fmt"
	"strings"
)

// BroadcastModeBlock waits for the transaction to be committed.
const BroadcastModeBlock = "block"

// AttachSignature returns a copy of tx with signatures set to [sig]. Any
// existing signatures are replaced.
func AttachSignature(tx Value, sig StdSignature) (Object, error) {
	body, ok := tx.(Object)
	if !ok {
		return nil, fmt.Errorf("%w: transaction is %s, want object", ErrMalformedTxTree, kindName(tx))
	}
	return body.With("signatures", Array{sig.Value()}), nil
}

// BuildBroadcastBody serializes {"tx": signed, "return": mode}.
func BuildBroadcastBody(signed Value, mode string) ([]byte, error) {
	if mode == "" {
		mode = BroadcastModeBlock
	}
	return Marshal(Object{
		{Key: "tx", Value: signed},
		{Key: "return", Value: String(mode)},
	})
}

// UnwrapStdTx returns the body of an amino StdTx envelope such as
// {"type":"cosmos-sdk/StdTx","value":{...}} and its type. Other values are
// returned unchanged with an empty type.
func UnwrapStdTx(v Value) (Value, string) {
	obj, ok := v.(Object)
	if !ok || len(obj) != 2 {
		return v, ""
	}
	typ, ok := obj.Get("type")
	if !ok {
		return v, ""
	}
	name, ok := typ.(String)
	if !ok || !strings.HasSuffix(string(name), "StdTx") {
		return v, ""
	}
	inner, ok := obj.Get("value")
	if !ok {
		return v, ""
	}
	return inner, string(name)
}

// WrapStdTx puts body back into an amino envelope of the given type. An empty
// type returns body unchanged.
func WrapStdTx(body Value, typ string) Value {
	if typ == "" {
		return body
	}
	return Object{
		{Key: "type", Value: String(typ)},
		{Key: "value", Value: body},
	}
}
