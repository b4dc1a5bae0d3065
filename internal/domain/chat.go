package domain

// ReplyKind tells which stage of the matcher produced a reply.
type ReplyKind string

const (
	ReplyPrompt   ReplyKind = "prompt"
	ReplyPhrase   ReplyKind = "phrase"
	ReplyToken    ReplyKind = "token"
	ReplyFarewell ReplyKind = "farewell"
	ReplyFallback ReplyKind = "fallback"
)

// Rule maps a normalized trigger phrase to one or more reply variants.
// A single variant is a fixed reply; several are drawn uniformly.
type Rule struct {
	Trigger  string
	Variants []string
}

// Reply is the matcher's answer to one line of user input.
type Reply struct {
	Text    string
	Kind    ReplyKind
	Trigger string
}

// Farewell reports whether the reply ends a chat session.
func (r Reply) Farewell() bool {
	return r.Kind == ReplyFarewell
}
