package webhook

import (
	"fmt"
	"strings"
)

// Header names for Front webhook signatures (lookup is case-insensitive).
const (
	HeaderTimestamp = "X-Front-Request-Timestamp"
	HeaderSignature = "X-Front-Signature"
)

// conversationPrefix is the fixed prefix of Front conversation identifiers.
const conversationPrefix = "cnv_"

// maxBodySize caps webhook request bodies at 1 MB.
const maxBodySize = 1048576

// Payload is the expected webhook body shape.
type Payload struct {
	ConversationID string `json:"conversation_id"`
	Message        string `json:"message"`
}

// Validate checks the body shape. Violations are caller bugs, reported back
// as request-level errors, never silently dropped.
func (p *Payload) Validate() error {
	if !strings.HasPrefix(p.ConversationID, conversationPrefix) {
		return fmt.Errorf("conversation_id must start with %q", conversationPrefix)
	}
	if p.Message == "" {
		return fmt.Errorf("message is empty")
	}
	return nil
}

// ErrorResponse is the JSON body for validation errors.
type ErrorResponse struct {
	Error string `json:"error"`
}
