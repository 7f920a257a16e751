package domain

// User-visible reply texts. The three apologies are the per-stage fallbacks
// of the voice pipeline; each stage owns exactly one of them.
const (
	GreetingMessage = "Hi! Send me a voice message to get started."

	TranscriptionFailedMessage = "Sorry, I couldn't transcribe your voice message."
	AnswerFallbackMessage      = "Sorry, I couldn't understand that."
	SynthesisFailedMessage     = "Sorry, I couldn't voice the answer."

	BalanceNotConfiguredMessage = "Balance reporting is not configured."
)
