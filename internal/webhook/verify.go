package webhook

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
	"errors"
)

// ErrVerificationFailed is returned for every verification failure. Missing
// headers and signature mismatches are deliberately indistinguishable; this
// is a security boundary and the reason must not leak to the caller.
var ErrVerificationFailed = errors.New("request integrity check failed")

// Verify checks the Front webhook signature: base64(HMAC-SHA256(secret,
// "{timestamp}:{body}")) compared constant-time against the signature
// header. The body must be the raw bytes exactly as received off the wire;
// re-serializing parsed JSON changes byte content and breaks verification.
func Verify(body []byte, timestamp, signature, secret string) error {
	if secret == "" {
		return ErrVerificationFailed
	}
	if timestamp == "" || signature == "" {
		return ErrVerificationFailed
	}

	if !hmac.Equal([]byte(Sign(body, timestamp, secret)), []byte(signature)) {
		return ErrVerificationFailed
	}
	return nil
}

// Sign computes the signature Front would send for a body and timestamp.
// Used by tests and local tooling.
func Sign(body []byte, timestamp, secret string) string {
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write([]byte(timestamp))
	mac.Write([]byte(":"))
	mac.Write(body)
	return base64.StdEncoding.EncodeToString(mac.Sum(nil))
}
