package webhooks

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
)

// GenerateSignature computes the hex-encoded HMAC-SHA256 of body keyed with
// secret. It is the counterpart of VerifySignature and is exposed so tests
// and tooling can construct valid deliveries.
func GenerateSignature(body []byte, secret string) string {
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write(body)
	return hex.EncodeToString(mac.Sum(nil))
}

// VerifySignature reports whether signature is the hex-encoded HMAC-SHA256
// of body under secret. The comparison is constant-time. It returns false,
// never an error, when body, signature, or secret is empty, when the
// signature is not valid hex, or when its length does not match the digest
// size. body must be the unmodified raw request bytes; re-serialized JSON
// will not verify.
func VerifySignature(body []byte, signature, secret string) bool {
	if len(body) == 0 || signature == "" || secret == "" {
		return false
	}

	provided, err := hex.DecodeString(signature)
	if err != nil {
		return false
	}

	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write(body)
	expected := mac.Sum(nil)

	if len(provided) != len(expected) {
		return false
	}
	return hmac.Equal(provided, expected)
}
