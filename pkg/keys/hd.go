// Package keys derives Ethereum keypairs from the two BIP-39 seed pools along m/44'/60'/0'/0/i.
package keys

import (
	"crypto/ecdsa"
	"errors"
	"fmt"
	"os"

	"github.com/btcsuite/btcd/btcutil/hdkeychain"
	"github.com/btcsuite/btcd/chaincfg"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/tyler-smith/go-bip39"

	"github.com/kevinbg012/mb-crypto-challenge/pkg/config"
	"github.com/kevinbg012/mb-crypto-challenge/pkg/custody"
)

// BIP-44 path components for Ethereum: m/44'/60'/account'/change/index.
const (
	purposeBIP44   = hdkeychain.HardenedKeyStart + 44
	coinTypeEther  = hdkeychain.HardenedKeyStart + 60
	defaultAccount = hdkeychain.HardenedKeyStart + 0
	changeExternal = 0
)

var (
	ErrInvalidMnemonic = errors.New("invalid mnemonic")
	ErrUnknownPool     = errors.New("unknown key pool")
)

// Deriver is a deterministic index -> keypair function over the user and master pools.
// Derived keys are never cached; the parent nodes are immutable so Deriver is safe for concurrent use.
type Deriver struct {
	chains   map[custody.Pool]*hdkeychain.ExtendedKey
	treasury common.Address
}

// NewDeriver builds a Deriver from the user and master mnemonics.
func NewDeriver(userMnemonic, masterMnemonic string) (*Deriver, error) {
	d := &Deriver{chains: make(map[custody.Pool]*hdkeychain.ExtendedKey, 2)}

	for pool, mnemonic := range map[custody.Pool]string{
		custody.PoolUser:   userMnemonic,
		custody.PoolMaster: masterMnemonic,
	} {
		chain, err := externalChain(mnemonic)
		if err != nil {
			return nil, fmt.Errorf("%s pool: %w", pool, err)
		}
		d.chains[pool] = chain
	}

	treasury, err := d.DeriveAddress(custody.PoolMaster, custody.TreasuryIndex)
	if err != nil {
		return nil, fmt.Errorf("derive treasury address: %w", err)
	}
	d.treasury = treasury

	return d, nil
}

// NewDeriverFromEnv reads both mnemonics from the environment variables named in cfg.
func NewDeriverFromEnv(cfg config.KeysConfig) (*Deriver, error) {
	user := os.Getenv(cfg.UserMnemonicEnv)
	if user == "" {
		return nil, fmt.Errorf("user mnemonic not set: env=%s", cfg.UserMnemonicEnv)
	}
	master := os.Getenv(cfg.MasterMnemonicEnv)
	if master == "" {
		return nil, fmt.Errorf("master mnemonic not set: env=%s", cfg.MasterMnemonicEnv)
	}
	return NewDeriver(user, master)
}

// externalChain walks the seed down to m/44'/60'/0'/0.
func externalChain(mnemonic string) (*hdkeychain.ExtendedKey, error) {
	if !bip39.IsMnemonicValid(mnemonic) {
		return nil, ErrInvalidMnemonic
	}
	seed, err := bip39.NewSeedWithErrorChecking(mnemonic, "")
	if err != nil {
		return nil, fmt.Errorf("derive seed: %w", err)
	}

	master, err := hdkeychain.NewMaster(seed, &chaincfg.MainNetParams)
	if err != nil {
		return nil, fmt.Errorf("create master key: %w", err)
	}

	key := master
	for _, idx := range []uint32{purposeBIP44, coinTypeEther, defaultAccount, changeExternal} {
		key, err = key.Derive(idx)
		if err != nil {
			return nil, fmt.Errorf("derive child %d: %w", idx, err)
		}
	}
	return key, nil
}

func (d *Deriver) child(pool custody.Pool, index uint32) (*hdkeychain.ExtendedKey, error) {
	chain, ok := d.chains[pool]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownPool, pool)
	}
	key, err := chain.Derive(index)
	if err != nil {
		return nil, fmt.Errorf("derive index %d: %w", index, err)
	}
	return key, nil
}

// DerivePrivateKey returns the secp256k1 private key at index in pool.
func (d *Deriver) DerivePrivateKey(pool custody.Pool, index uint32) (*ecdsa.PrivateKey, error) {
	key, err := d.child(pool, index)
	if err != nil {
		return nil, err
	}
	priv, err := key.ECPrivKey()
	if err != nil {
		return nil, fmt.Errorf("extract private key: %w", err)
	}
	return crypto.ToECDSA(priv.Serialize())
}

// DeriveAddress returns the Ethereum address at index in pool.
func (d *Deriver) DeriveAddress(pool custody.Pool, index uint32) (common.Address, error) {
	key, err := d.child(pool, index)
	if err != nil {
		return common.Address{}, err
	}
	pub, err := key.ECPubKey()
	if err != nil {
		return common.Address{}, fmt.Errorf("extract public key: %w", err)
	}
	ecdsaPub, err := crypto.DecompressPubkey(pub.SerializeCompressed())
	if err != nil {
		return common.Address{}, fmt.Errorf("decompress public key: %w", err)
	}
	return crypto.PubkeyToAddress(*ecdsaPub), nil
}

// Treasury returns the fee-funding address (master pool, index 0).
func (d *Deriver) Treasury() common.Address {
	return d.treasury
}
