package service

import (
	"crypto/rand"
	"encoding/hex"
	"errors"
)

const nonceBytes = 16

func newNonce() (string, error) {
	buf := make([]byte, nonceBytes)
	if _, err := rand.Read(buf); err != nil {
		return "", errors.New("reading random nonce error: " + err.Error())
	}
	return hex.EncodeToString(buf), nil
}
