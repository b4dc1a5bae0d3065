package usecase

import (
	"strings"

	"console-tools/internal/domain"
)

// EmptyInputReply is returned for input that is empty after normalization.
const EmptyInputReply = "Please type something so we can chat!"

var (
	greetingReplies = []string{
		"Hello! How can I assist you today?",
		"Hi there! What's on your mind?",
		"Welcome! Ask me anything.",
	}

	farewellReplies = []string{
		"Goodbye! Have a great day.",
		"It was nice chatting with you. Farewell!",
		"See you later!",
	}

	fallbackReplies = []string{
		"That's interesting. Tell me more about that.",
		"I see. Can you elaborate on that topic?",
		"I'm not sure I understand. Could you rephrase your question?",
		"That's outside my current knowledge base. Try asking about my capabilities or the weather.",
	}

	farewellMarkers = []string{"bye", "exit", "quit"}
)

// FarewellReplies returns a copy of the fixed farewell set.
func FarewellReplies() []string { return append([]string(nil), farewellReplies...) }

// FallbackReplies returns a copy of the fixed fallback set.
func FallbackReplies() []string { return append([]string(nil), fallbackReplies...) }

// GreetingReplies returns a copy of the greeting variants.
func GreetingReplies() []string { return append([]string(nil), greetingReplies...) }

// DefaultRules returns the built-in FAQ and keyword table. botName is used in
// the reply to "name".
func DefaultRules(botName string) []domain.Rule {
	botName = strings.TrimSpace(botName)
	if botName == "" {
		botName = "GoBot"
	}
	return []domain.Rule{
		fixed("capabilities", "I am a simple rule-based assistant. I can answer questions based on my keyword patterns."),
		fixed("creator", "I was built using basic pattern matching logic."),
		fixed("java", "Java is a high-level, class-based, object-oriented programming language designed to have as few implementation dependencies as possible."),
		fixed("time", "I don't keep track of real-world time, but I am always here for you."),
		{Trigger: "hello", Variants: GreetingReplies()},
		{Trigger: "hi", Variants: GreetingReplies()},
		fixed("how are you", "I am an AI, so I don't have feelings, but I'm operating perfectly!"),
		fixed("weather", "I cannot check the live weather, but I hope it's sunny where you are!"),
		fixed("name", "You can call me "+botName+"."),
		fixed("help", "I can discuss programming, my basic functions, or just chat. Try 'What are your capabilities?'"),
		fixed("thank you", "You're welcome! Do you have any other questions?"),
	}
}

func fixed(trigger, reply string) domain.Rule {
	return domain.Rule{Trigger: trigger, Variants: []string{reply}}
}
