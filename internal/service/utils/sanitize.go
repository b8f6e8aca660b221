package utils

import (
	"github.com/microcosm-cc/bluemonday"
)

// MessageSanitizer strips dangerous markup from user-supplied text before it
// reaches the store. The UGC policy keeps basic formatting tags.
type MessageSanitizer struct {
	policy *bluemonday.Policy
}

func NewMessageSanitizer() *MessageSanitizer {
	return &MessageSanitizer{policy: bluemonday.UGCPolicy()}
}

func (s *MessageSanitizer) Sanitize(text string) string {
	return s.policy.Sanitize(text)
}
