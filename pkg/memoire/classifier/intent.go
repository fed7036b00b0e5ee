package classifier

import (
	"strings"

	"ai-memoire-be/internal/constant"
)

// Intent is the coarse routing decision for one inbound message.
type Intent string

const (
	IntentChat     Intent = "chat"
	IntentDocument Intent = "document"
)

// wordCountThreshold marks long messages as substantive document
// requests even without any recognized vocabulary.
const wordCountThreshold = 20

// ClassifyIntent decides whether a message is casual chat or a document
// request. Pure and deterministic: greetings short-circuit to chat,
// trigger phrases and academic vocabulary short-circuit to document,
// long messages default to document, everything else to chat.
func ClassifyIntent(message string) Intent {
	normalized := strings.ToLower(strings.TrimSpace(message))
	words := strings.Fields(normalized)

	// (a) greeting + at most 3 words
	if len(words) > 0 && len(words) <= 3 {
		for _, greeting := range constant.Greetings {
			if normalized == greeting || strings.HasPrefix(normalized, greeting) {
				return IntentChat
			}
		}
	}

	// (b) explicit document trigger phrases
	for _, trigger := range constant.DocumentTriggers {
		if strings.Contains(normalized, trigger) {
			return IntentDocument
		}
	}

	// (c) two or more distinct academic keywords
	hits := 0
	for _, keyword := range constant.DocumentKeywords {
		if strings.Contains(normalized, keyword) {
			hits++
			if hits >= 2 {
				return IntentDocument
			}
		}
	}

	// (d) long messages are assumed to be substantive requests
	if len(words) > wordCountThreshold {
		return IntentDocument
	}

	// (e)
	return IntentChat
}
