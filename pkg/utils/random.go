package utils

import (
	"crypto/rand"
	"math/big"
)

const (
	digits       = "0123456789"
	passwordSet  = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789!@#$%^&*"
	OTPLength    = 6
	PasswordSize = 15
)

// GenerateOTP returns a numeric one-time code of OTPLength digits.
var GenerateOTP = func() (string, error) {
	return randomString(digits, OTPLength)
}

// GeneratePassword returns a random password of PasswordSize characters.
var GeneratePassword = func() (string, error) {
	return randomString(passwordSet, PasswordSize)
}

func randomString(alphabet string, n int) (string, error) {
	max := big.NewInt(int64(len(alphabet)))
	out := make([]byte, n)
	for i := range out {
		idx, err := rand.Int(rand.Reader, max)
		if err != nil {
			return "", err
		}
		out[i] = alphabet[idx.Int64()]
	}
	return string(out), nil
}
