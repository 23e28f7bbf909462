package txtree

import "fmt"

// SignMeta carries the account state the sign doc commits to.
type SignMeta struct {
	Sequence      string `json:"sequence"`
	AccountNumber string `json:"account_number"`
	ChainID       string `json:"chain_id"`
}

// SignDoc is the StdSignMsg the Cosmos SDK reconstructs to verify a
// signature.
type SignDoc struct {
	ChainID       string
	AccountNumber string
	Sequence      string
	Fee           Object
	Msgs          Value
	Memo          Value
}

// NewSignDoc extracts fee, msg and memo from an unsigned StdTx body. A missing
// or null fee amount becomes an empty array.
func NewSignDoc(tx Value, meta SignMeta) (SignDoc, error) {
	body, ok := tx.(Object)
	if !ok {
		return SignDoc{}, fmt.Errorf("%w: transaction is %s, want object", ErrMalformedTxTree, kindName(tx))
	}

	feeVal, ok := body.Get("fee")
	if !ok || IsNull(feeVal) {
		return SignDoc{}, fmt.Errorf("%w: transaction has no fee", ErrMalformedTxTree)
	}
	fee, ok := feeVal.(Object)
	if !ok {
		return SignDoc{}, fmt.Errorf("%w: fee is %s, want object", ErrMalformedTxTree, kindName(feeVal))
	}

	amount, ok := fee.Get("amount")
	if !ok || IsNull(amount) {
		amount = Array{}
	}
	gas, ok := fee.Get("gas")
	if !ok {
		gas = Null{}
	}

	msgs, ok := body.Get("msg")
	if !ok {
		msgs = Null{}
	}
	memo, ok := body.Get("memo")
	if !ok {
		memo = Null{}
	}

	return SignDoc{
		ChainID:       meta.ChainID,
		AccountNumber: meta.AccountNumber,
		Sequence:      meta.Sequence,
		Fee:           Object{{Key: "amount", Value: amount}, {Key: "gas", Value: gas}},
		Msgs:          msgs,
		Memo:          memo,
	}, nil
}

// Value returns the sign doc as a tree, before canonicalization.
func (d SignDoc) Value() Object {
	return Object{
		{Key: "fee", Value: d.Fee},
		{Key: "memo", Value: d.Memo},
		{Key: "msgs", Value: d.Msgs},
		{Key: "sequence", Value: String(d.Sequence)},
		{Key: "account_number", Value: String(d.AccountNumber)},
		{Key: "chain_id", Value: String(d.ChainID)},
	}
}

// Bytes returns the canonical sign bytes.
func (d SignDoc) Bytes() ([]byte, error) {
	canonical, err := PrepareSignBytes(d.Value())
	if err != nil {
		return nil, err
	}
	return Marshal(canonical)
}

// CreateSignMessage builds the sign doc for tx and returns its canonical bytes.
func CreateSignMessage(tx Value, meta SignMeta) ([]byte, error) {
	doc, err := NewSignDoc(tx, meta)
	if err != nil {
		return nil, err
	}
	return doc.Bytes()
}

func kindName(v Value) string {
	if v == nil {
		return "null"
	}
	switch v.Kind() {
	case KindBool:
		return "bool"
	case KindNumber:
		return "number"
	case KindString:
		return "string"
	case KindArray:
		return "array"
	case KindObject:
		return "object"
	default:
		return "null"
	}
}
