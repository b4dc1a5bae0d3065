package usecase

import (
	"errors"
	"fmt"
	"log/slog"
	"math/rand/v2"
	"sort"
	"strings"

	"console-tools/internal/domain"
)

// Random is the source used to pick among reply variants.
// *rand.Rand from math/rand/v2 satisfies it.
type Random interface {
	IntN(n int) int
}

type globalRandom struct{}

func (globalRandom) IntN(n int) int { return rand.IntN(n) }

// DefaultRandom returns the process-wide entropy-seeded source.
func DefaultRandom() Random { return globalRandom{} }

// NewSeededRandom returns a deterministic source for reproducible sessions.
func NewSeededRandom(seed uint64) Random {
	return rand.New(rand.NewPCG(seed, seed>>1|1))
}

type ResponderOption func(*Responder)

func WithLogger(l *slog.Logger) ResponderOption {
	return func(r *Responder) {
		if l != nil {
			r.log = l
		}
	}
}

// Responder maps user text to canned replies. It is read-only after
// construction.
type Responder struct {
	phrases []domain.Rule
	tokens  map[string]domain.Rule
	rnd     Random
	log     *slog.Logger

	farewells map[string]struct{}
}

// NewResponder validates rules and builds the lookup tables. Phrases are
// scanned longest first, ties broken lexicographically, so the registration
// order of rules never changes a result.
func NewResponder(rules []domain.Rule, rnd Random, opts ...ResponderOption) (*Responder, error) {
	if len(rules) == 0 {
		return nil, newError(ErrorInvalidInput, "no_rules", nil)
	}
	if rnd == nil {
		rnd = DefaultRandom()
	}

	r := &Responder{
		phrases:   make([]domain.Rule, 0, len(rules)),
		tokens:    make(map[string]domain.Rule),
		rnd:       rnd,
		log:       slog.Default(),
		farewells: make(map[string]struct{}, len(farewellReplies)),
	}
	for _, o := range opts {
		o(r)
	}

	seen := make(map[string]struct{}, len(rules))
	for _, rule := range rules {
		if err := validateRule(rule); err != nil {
			return nil, newError(ErrorInvalidInput, "invalid_rule", err)
		}
		if _, dup := seen[rule.Trigger]; dup {
			return nil, newError(ErrorInvalidInput, "duplicate_trigger", fmt.Errorf("trigger %q", rule.Trigger))
		}
		seen[rule.Trigger] = struct{}{}

		rule.Variants = append([]string(nil), rule.Variants...)
		r.phrases = append(r.phrases, rule)
		if !strings.ContainsAny(rule.Trigger, asciiSpace) {
			r.tokens[rule.Trigger] = rule
		}
	}
	sort.Slice(r.phrases, func(i, j int) bool {
		a, b := r.phrases[i].Trigger, r.phrases[j].Trigger
		if len(a) != len(b) {
			return len(a) > len(b)
		}
		return a < b
	})

	for _, f := range farewellReplies {
		r.farewells[f] = struct{}{}
	}
	return r, nil
}

func validateRule(rule domain.Rule) error {
	if rule.Trigger == "" {
		return errors.New("empty trigger")
	}
	if Normalize(rule.Trigger) != rule.Trigger {
		return fmt.Errorf("trigger %q is not normalized", rule.Trigger)
	}
	if len(rule.Variants) == 0 {
		return fmt.Errorf("trigger %q has no replies", rule.Trigger)
	}
	for _, v := range rule.Variants {
		if strings.TrimSpace(v) == "" {
			return fmt.Errorf("trigger %q has an empty reply", rule.Trigger)
		}
	}
	return nil
}

// Respond returns the reply text for input.
func (r *Responder) Respond(input string) string {
	return r.Match(input).Text
}

// Match runs the full pipeline: phrase scan, token scan, farewell check and
// fallback.
func (r *Responder) Match(input string) domain.Reply {
	text := Normalize(input)
	if text == "" {
		return domain.Reply{Text: EmptyInputReply, Kind: domain.ReplyPrompt}
	}

	for _, rule := range r.phrases {
		if strings.Contains(text, rule.Trigger) {
			return r.reply(rule, domain.ReplyPhrase)
		}
	}

	// Exact single-word lookup. Any token equal to a trigger is also a
	// substring, so the phrase scan above always claims it first and this
	// stage does not fire with the current scan. It is kept so the pipeline
	// order stays phrase, token, farewell, fallback.
	for _, word := range strings.Fields(text) {
		if rule, ok := r.tokens[word]; ok {
			return r.reply(rule, domain.ReplyToken)
		}
	}

	for _, m := range farewellMarkers {
		if strings.Contains(text, m) {
			r.log.Debug("farewell matched", "marker", m)
			return domain.Reply{Text: r.pick(farewellReplies), Kind: domain.ReplyFarewell, Trigger: m}
		}
	}

	r.log.Debug("no rule matched", "input", text)
	return domain.Reply{Text: r.pick(fallbackReplies), Kind: domain.ReplyFallback}
}

// IsFarewell reports whether text is one of the farewell replies.
func (r *Responder) IsFarewell(text string) bool {
	_, ok := r.farewells[text]
	return ok
}

func (r *Responder) reply(rule domain.Rule, kind domain.ReplyKind) domain.Reply {
	r.log.Debug("rule matched", "trigger", rule.Trigger, "kind", kind)
	return domain.Reply{Text: r.pick(rule.Variants), Kind: kind, Trigger: rule.Trigger}
}

func (r *Responder) pick(set []string) string {
	if len(set) == 1 {
		return set[0]
	}
	return set[r.rnd.IntN(len(set))]
}

const asciiSpace = " \t\n\v\f\r"

// Normalize lowercases s, drops everything except ASCII letters, digits and
// whitespace, and trims the result.
func Normalize(s string) string {
	s = strings.ToLower(s)
	var b strings.Builder
	b.Grow(len(s))
	for _, c := range s {
		switch {
		case c >= 'a' && c <= 'z', c >= '0' && c <= '9':
			b.WriteRune(c)
		case strings.ContainsRune(asciiSpace, c):
			b.WriteRune(c)
		}
	}
	return strings.Trim(b.String(), asciiSpace)
}
