package webhook

import (
	"testing"
)

func TestVerifyKnownVector(t *testing.T) {
	// Fixed vector: HMAC-SHA256("test-secret", `1700000000:{"a":1}`), base64.
	secret := "test-secret"
	timestamp := "1700000000"
	body := []byte(`{"a":1}`)
	signature := "oVlgFXjf+4FRTtQywFCD4Vn/E9Y6kRhkLqT865p0/j4="

	if got := Sign(body, timestamp, secret); got != signature {
		t.Errorf("Sign() = %q, want %q", got, signature)
	}
	if err := Verify(body, timestamp, signature, secret); err != nil {
		t.Errorf("Verify() error = %v, want nil", err)
	}
}

func TestVerify(t *testing.T) {
	secret := "front-app-secret"
	timestamp := "1700000000"
	body := []byte(`{"conversation_id":"cnv_123","message":"hello"}`)
	valid := Sign(body, timestamp, secret)

	tests := []struct {
		name      string
		body      []byte
		timestamp string
		signature string
		secret    string
		wantErr   bool
	}{
		{"valid signature", body, timestamp, valid, secret, false},
		{"missing timestamp header", body, "", valid, secret, true},
		{"missing signature header", body, timestamp, "", secret, true},
		{"wrong signature", body, timestamp, "AAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAA=", secret, true},
		{"tampered body", []byte(`{"conversation_id":"cnv_999","message":"hello"}`), timestamp, valid, secret, true},
		{"tampered timestamp", body, "1700000001", valid, secret, true},
		{"wrong secret", body, timestamp, valid, "other-secret", true},
		{"empty secret", body, timestamp, valid, "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Verify(tt.body, tt.timestamp, tt.signature, tt.secret)
			if (err != nil) != tt.wantErr {
				t.Errorf("Verify() error = %v, wantErr %v", err, tt.wantErr)
			}

			// All failures are the same generic error (no information leakage).
			if err != nil && err != ErrVerificationFailed {
				t.Errorf("error should be ErrVerificationFailed, got: %v", err)
			}
		})
	}
}

func TestVerifyRawBytesContract(t *testing.T) {
	secret := "secret"
	timestamp := "1700000000"

	// Same JSON value, different byte sequences. Only the exact raw bytes
	// the sender signed may verify.
	original := []byte(`{"a": 1, "b": 2}`)
	reserialized := []byte(`{"a":1,"b":2}`)

	sig := Sign(original, timestamp, secret)
	if err := Verify(original, timestamp, sig, secret); err != nil {
		t.Errorf("Verify(original) error = %v", err)
	}
	if err := Verify(reserialized, timestamp, sig, secret); err == nil {
		t.Error("Verify(reserialized) should fail: byte content changed")
	}
}
