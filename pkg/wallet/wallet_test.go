package wallet

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewWallet(t *testing.T) {
	w, err := NewWallet(NewWalletOpts{})
	if err != nil {
		t.Fatal(err)
	}

	mnemonic, err := w.SigningMnemonic()
	if err != nil {
		t.Fatal(err)
	}
	assert.Equal(t, true, isMnemonicValid(mnemonic))
	assert.Equal(t, 12, len(mnemonic))
}

func TestFailingNewWallet(t *testing.T) {
	tests := []int{-1, 127, 257, 130}
	for _, tt := range tests {
		_, err := NewWallet(NewWalletOpts{EntropySize: tt})
		assert.Equal(t, ErrInvalidEntropySize, err)
	}
}

func TestAddressIsDeterministic(t *testing.T) {
	mnemonic := strings.Split(
		"legal winner thank year wave sausage worth useful legal winner thank yellow",
		" ",
	)

	w1, err := NewWalletFromMnemonic(NewWalletFromMnemonicOpts{
		SigningMnemonic: mnemonic,
	})
	if err != nil {
		t.Fatal(err)
	}
	w2, err := NewWalletFromMnemonic(NewWalletFromMnemonicOpts{
		SigningMnemonic: mnemonic,
	})
	if err != nil {
		t.Fatal(err)
	}

	addr1, err := w1.Address()
	if err != nil {
		t.Fatal(err)
	}
	addr2, err := w2.Address()
	if err != nil {
		t.Fatal(err)
	}

	assert.Equal(t, addr1, addr2)
	assert.Equal(t, true, strings.HasPrefix(addr1, "0x"))
}

func TestFailingNewWalletFromMnemonic(t *testing.T) {
	tests := []struct {
		opts NewWalletFromMnemonicOpts
		err  error
	}{
		{
			opts: NewWalletFromMnemonicOpts{},
			err:  ErrNullSigningMnemonic,
		},
		{
			opts: NewWalletFromMnemonicOpts{
				SigningMnemonic: []string{"not", "a", "valid", "mnemonic"},
			},
			err: ErrInvalidSigningMnemonic,
		},
	}
	for _, tt := range tests {
		_, err := NewWalletFromMnemonic(tt.opts)
		assert.Equal(t, tt.err, err)
	}
}
