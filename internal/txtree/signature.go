package txtree

import "encoding/base64"

// PubKeyTypeSecp256k1 is the amino type of a secp256k1 public key.
const PubKeyTypeSecp256k1 = "tendermint/PubKeySecp256k1"

// PubKey is the amino JSON public key envelope.
type PubKey struct {
	Type  string `json:"type"`
	Value string `json:"value"`
}

// StdSignature is a single entry of a StdTx signatures list.
type StdSignature struct {
	Signature string `json:"signature"`
	PubKey    PubKey `json:"pub_key"`
}

// NewSignature wraps a raw signature and compressed public key, both base64.
func NewSignature(signature, publicKey []byte) StdSignature {
	return StdSignature{
		Signature: base64.StdEncoding.EncodeToString(signature),
		PubKey: PubKey{
			Type:  PubKeyTypeSecp256k1,
			Value: base64.StdEncoding.EncodeToString(publicKey),
		},
	}
}

// Value returns the signature as a tree.
func (s StdSignature) Value() Object {
	return Object{
		{Key: "signature", Value: String(s.Signature)},
		{Key: "pub_key", Value: Object{
			{Key: "type", Value: String(s.PubKey.Type)},
			{Key: "value", Value: String(s.PubKey.Value)},
		}},
	}
}
