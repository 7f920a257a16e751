package domain

// Response is the single outbound message shape pumped from services to the
// Telegram client. Exactly one of Text or Audio is set.
type Response struct {
	ChatID           int64
	ReplyToMessageID int
	Text             string
	Audio            *AudioReply
}

// AudioReply carries synthesized speech together with the answer text it
// was generated from; the text is sent as the audio caption.
type AudioReply struct {
	Data    []byte
	Caption string
}
