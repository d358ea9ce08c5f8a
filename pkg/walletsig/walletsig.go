// Package walletsig recovers Ethereum-style wallet addresses from
// personal-message (EIP-191) signatures.
package walletsig

import (
	"encoding/hex"
	"errors"
	"strconv"
	"strings"

	"github.com/decred/dcrd/dcrec/secp256k1/v4"
	"github.com/decred/dcrd/dcrec/secp256k1/v4/ecdsa"
	"golang.org/x/crypto/sha3"
)

const (
	signatureLen  = 65
	messagePrefix = "\x19Ethereum Signed Message:\n"
)

var (
	ErrMalformedSignature = errors.New("malformed signature")
	ErrRecoveryFailed     = errors.New("public key recovery failed")
)

// HashMessage returns keccak256 of the message with the personal-message prefix.
func HashMessage(message string) []byte {
	h := sha3.NewLegacyKeccak256()
	h.Write([]byte(messagePrefix + strconv.Itoa(len(message)) + message))
	return h.Sum(nil)
}

// RecoverAddress returns the lower-cased 0x address that produced sigHex over
// message. sigHex is r||s||v, v being 27/28 or 0/1.
func RecoverAddress(message, sigHex string) (string, error) {
	sig, err := hex.DecodeString(strings.TrimPrefix(strings.TrimSpace(sigHex), "0x"))
	if err != nil || len(sig) != signatureLen {
		return "", ErrMalformedSignature
	}
	v := sig[64]
	if v >= 27 {
		v -= 27
	}
	if v > 1 {
		return "", ErrMalformedSignature
	}
	// decred expects the recovery byte first: 27 + recid for uncompressed keys.
	compact := make([]byte, signatureLen)
	compact[0] = 27 + v
	copy(compact[1:], sig[:64])
	pub, _, err := ecdsa.RecoverCompact(compact, HashMessage(message))
	if err != nil {
		return "", errors.Join(ErrRecoveryFailed, err)
	}
	return PubkeyToAddress(pub), nil
}

// PubkeyToAddress derives the lower-cased 0x address of a public key.
func PubkeyToAddress(pub *secp256k1.PublicKey) string {
	h := sha3.NewLegacyKeccak256()
	h.Write(pub.SerializeUncompressed()[1:])
	return "0x" + hex.EncodeToString(h.Sum(nil)[12:])
}

// SignMessage produces an r||s||v personal-message signature, v in {27, 28}.
func SignMessage(key *secp256k1.PrivateKey, message string) string {
	compact := ecdsa.SignCompact(key, HashMessage(message), false)
	sig := make([]byte, signatureLen)
	copy(sig, compact[1:])
	sig[64] = compact[0]
	return "0x" + hex.EncodeToString(sig)
}

// SameAddress compares two hex addresses ignoring checksum casing.
func SameAddress(a, b string) bool {
	return strings.EqualFold(strings.TrimSpace(a), strings.TrimSpace(b))
}
