package store

import (
	"crypto/rand"
	"encoding/json"
	"errors"
	"fmt"
	"runtime"

	"golang.org/x/crypto/chacha20poly1305"
	"golang.org/x/crypto/scrypt"
)

const (
	// The current supported version of the sealed slot format stored on disk.
	sealedFormatVersion = 1
)

// ErrWrongPassphrase is returned when the passphrase is incorrect or the sealed
// slot has been modified or corrupted.
var ErrWrongPassphrase = errors.New("wrong passphrase or corrupted session slot")

// sealedBlob is the on-disk JSON structure holding the ciphertext and KDF parameters.
type sealedBlob struct {
	V      int    `json:"v"`
	Salt   []byte `json:"salt"`
	N      int    `json:"scrypt_N"`
	R      int    `json:"scrypt_r"`
	P      int    `json:"scrypt_p"`
	Cipher []byte `json:"cipher"`
}

// seal derives a key from passphrase and seals raw into a JSON blob.
func seal(passphrase string, raw []byte) ([]byte, error) {
	N, r, p := scryptParamsDefault()

	var salt [16]byte
	if _, err := rand.Read(salt[:]); err != nil {
		return nil, err
	}
	key, err := scrypt.Key([]byte(passphrase), salt[:], N, r, p, chacha20poly1305.KeySize)
	if err != nil {
		return nil, err
	}
	defer wipe(key)

	aead, err := chacha20poly1305.New(key)
	if err != nil {
		return nil, err
	}
	var nonce [chacha20poly1305.NonceSize]byte // zero nonce; fresh salt per seal gives a fresh key
	ct := aead.Seal(nil, nonce[:], raw, salt[:])

	return json.Marshal(sealedBlob{
		V:      sealedFormatVersion,
		Salt:   salt[:],
		N:      N,
		R:      r,
		P:      p,
		Cipher: ct,
	})
}

// unseal opens the JSON blob using a key derived from passphrase.
func unseal(passphrase string, b []byte) ([]byte, error) {
	var bl sealedBlob
	if err := json.Unmarshal(b, &bl); err != nil {
		return nil, ErrWrongPassphrase
	}
	if bl.V > sealedFormatVersion {
		return nil, fmt.Errorf("unsupported session slot version %d", bl.V)
	}
	if bl.V == 0 || len(bl.Salt) == 0 {
		return nil, ErrWrongPassphrase
	}

	key, err := scrypt.Key([]byte(passphrase), bl.Salt, bl.N, bl.R, bl.P, chacha20poly1305.KeySize)
	if err != nil {
		return nil, err
	}
	defer wipe(key)

	aead, err := chacha20poly1305.New(key)
	if err != nil {
		return nil, err
	}
	var nonce [chacha20poly1305.NonceSize]byte
	pt, err := aead.Open(nil, nonce[:], bl.Cipher, bl.Salt)
	if err != nil {
		return nil, ErrWrongPassphrase
	}
	return pt, nil
}

// Tunables for scrypt key derivation.
func scryptParamsDefault() (N, r, p int) { return 1 << 15, 8, 1 }

// wipe zeroes the derived key once it is no longer needed.
//
//go:noinline
func wipe(b []byte) {
	for i := range b {
		b[i] = 0
	}
	runtime.KeepAlive(&b)
}
