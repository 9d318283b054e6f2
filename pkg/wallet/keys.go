package wallet

import (
	"encoding/hex"
	"strings"

	"github.com/btcsuite/btcd/btcec/v2"
	"github.com/btcsuite/btcd/btcutil"
	"github.com/btcsuite/btcd/btcutil/hdkeychain"
	"github.com/btcsuite/btcd/chaincfg"
	"github.com/vulpemventures/go-bip39"
)

// signing account derivation path steps (hardened purpose/coin/account).
var signingAccountPath = []uint32{
	44 + hdkeychain.HardenedKeyStart,
	60 + hdkeychain.HardenedKeyStart,
	0 + hdkeychain.HardenedKeyStart,
	0,
	0,
}

func generateMnemonic(entropySize int) ([]string, error) {
	entropy, err := bip39.NewEntropy(entropySize)
	if err != nil {
		return nil, err
	}
	mnemonic, err := bip39.NewMnemonic(entropy)
	if err != nil {
		return nil, err
	}
	return strings.Split(mnemonic, " "), nil
}

func generateSeedFromMnemonic(mnemonic []string) []byte {
	m := strings.Join(mnemonic, " ")
	return bip39.NewSeed(m, "")
}

func (w *Wallet) derivePublicKey() (*btcec.PublicKey, error) {
	seed := generateSeedFromMnemonic(w.signingMnemonic)
	hdNode, err := hdkeychain.NewMaster(seed, &chaincfg.MainNetParams)
	if err != nil {
		return nil, err
	}
	for _, step := range signingAccountPath {
		hdNode, err = hdNode.Derive(step)
		if err != nil {
			return nil, err
		}
	}
	return hdNode.ECPubKey()
}

// Address returns the account address of the wallet, a 0x-prefixed hex
// encoding of the hash of the signing account public key. Deriving it from
// the same mnemonic always yields the same address.
func (w *Wallet) Address() (string, error) {
	if err := w.validate(); err != nil {
		return "", err
	}

	pubkey, err := w.derivePublicKey()
	if err != nil {
		return "", err
	}

	hash := btcutil.Hash160(pubkey.SerializeCompressed())
	return "0x" + hex.EncodeToString(hash), nil
}
