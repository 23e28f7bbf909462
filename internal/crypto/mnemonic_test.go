package crypto

import (
	"bytes"
	"encoding/hex"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testMnemonic = "abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon about"

func fixedEntropy(b byte) EntropySource {
	return func(size int) ([]byte, error) {
		return bytes.Repeat([]byte{b}, size), nil
	}
}

func TestEntropyToMnemonicVectors(t *testing.T) {
	tests := []struct {
		name    string
		entropy []byte
		want    string
	}{
		{
			name:    "all zero",
			entropy: make([]byte, 32),
			want:    strings.Repeat("abandon ", 23) + "art",
		},
		{
			name:    "all ones",
			entropy: bytes.Repeat([]byte{0xff}, 32),
			want:    strings.Repeat("zoo ", 23) + "vote",
		},
		{
			name: "sequential",
			entropy: func() []byte {
				b := make([]byte, 32)
				for i := range b {
					b[i] = byte(i)
				}
				return b
			}(),
			want: "abandon amount liar amount expire adjust cage candy arch gather drum bullet absurd math era live bid rhythm alien crouch range attend journey unaware",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := EntropyToMnemonic(tt.entropy)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
			assert.Len(t, strings.Fields(got), 24)
			require.NoError(t, ValidateMnemonic(got))
		})
	}
}

func TestEntropyToMnemonicRejectsWrongLength(t *testing.T) {
	for _, size := range []int{0, 16, 31, 33, 64} {
		_, err := EntropyToMnemonic(make([]byte, size))
		require.ErrorIs(t, err, ErrInvalidEntropyLength, "size %d", size)
	}
}

func TestNewMnemonicRoundTrip(t *testing.T) {
	for i := 0; i < 20; i++ {
		m, err := NewMnemonic(RandomEntropy)
		require.NoError(t, err)
		require.NoError(t, ValidateMnemonic(m))
	}

	a, err := NewMnemonic(fixedEntropy(0x42))
	require.NoError(t, err)
	b, err := NewMnemonic(fixedEntropy(0x42))
	require.NoError(t, err)
	assert.Equal(t, a, b)
}

func TestNewMnemonicEntropyErrors(t *testing.T) {
	boom := errors.New("boom")
	_, err := NewMnemonic(func(int) ([]byte, error) { return nil, boom })
	require.ErrorIs(t, err, boom)

	_, err = NewMnemonic(func(int) ([]byte, error) { return make([]byte, 16), nil })
	require.ErrorIs(t, err, ErrInvalidEntropyLength)
}

func TestValidateMnemonic(t *testing.T) {
	require.NoError(t, ValidateMnemonic(testMnemonic))
	require.NoError(t, ValidateMnemonic("  "+strings.ReplaceAll(testMnemonic, " ", "   ")+"\n"))

	invalid := map[string]string{
		"bad checksum":  strings.Repeat("abandon ", 11) + "abandon",
		"unknown word":  strings.Repeat("abandon ", 11) + "cosmos",
		"too few words": "abandon about",
		"empty":         "",
	}
	for name, m := range invalid {
		t.Run(name, func(t *testing.T) {
			require.ErrorIs(t, ValidateMnemonic(m), ErrInvalidMnemonic)
		})
	}
}

func TestMnemonicToSeed(t *testing.T) {
	seed, err := MnemonicToSeed(testMnemonic)
	require.NoError(t, err)
	require.Len(t, seed, SeedSize)
	assert.Equal(t,
		"5eb00bbddcf069084889a8ab9155568165f5c453ccb85e70811aaed6f6da5fc19a5ac40b389cd370d086206dec8aa6c43daea6690f20ad3d8d48b2d2ce9e38e4",
		hex.EncodeToString(seed))

	_, err = MnemonicToSeed("abandon abandon")
	require.ErrorIs(t, err, ErrInvalidMnemonic)
}
