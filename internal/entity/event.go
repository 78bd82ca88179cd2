package entity

// Payloads pushed over live WebSocket connections. Delivery is best-effort:
// a user without an open socket simply misses the event.

type PetView struct {
	Name     string `json:"name"`
	PhotoURL string `json:"photo_url"`
}

type MatchEvent struct {
	Type string  `json:"type"` // always "match"
	Pet  PetView `json:"pet"`
}

type GiftEvent struct {
	Type      string   `json:"type"` // always "gift"
	Kind      GiftKind `json:"kind"`
	CoinValue int64    `json:"coin_value"`
	SenderID  uint     `json:"sender_id"`
}

type ChatEvent struct {
	Type     string `json:"type"` // always "message"
	MatchID  uint   `json:"match_id"`
	SenderID uint   `json:"sender_id"`
	Body     string `json:"body"`
}

type StreamChatEvent struct {
	Type     string `json:"type"` // always "stream_message"
	StreamID uint   `json:"stream_id"`
	SenderID uint   `json:"sender_id"`
	Body     string `json:"body"`
}
