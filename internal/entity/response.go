package entity

import "time"

type SignUpResponse struct {
	ID       int    `json:"id"`
	Username string `json:"username"`
	Name     string `json:"name"`
	Email    string `json:"email"`
}

type SignInResponse struct {
	Token string `json:"token"`
}

type SwipeResponse struct {
	Outcome     string   `json:"outcome"`
	OutcomeEnum Outcome  `json:"outcome_enum"`
	Match       *PetView `json:"match,omitempty"` // counterpart pet, present only on mutual like
}

type FeedResponse struct {
	Profiles []PetProfile `json:"profiles"`
}

type WalletResponse struct {
	Balance     int64 `json:"balance"`
	TotalEarned int64 `json:"total_earned"`
}

type SendGiftResponse struct {
	NewBalance int64 `json:"new_balance"`
}

type MatchView struct {
	MatchID   uint      `json:"match_id"`
	Pet       PetView   `json:"pet"`
	MatchedAt time.Time `json:"matched_at"`
}

type MatchListResponse struct {
	Matches []MatchView `json:"matches"`
}

type StreamView struct {
	ID        uint      `json:"id"`
	HostID    uint      `json:"host_id"`
	Title     string    `json:"title"`
	CoverURL  string    `json:"cover_url"`
	Viewers   int64     `json:"viewers"`
	StartedAt time.Time `json:"started_at"`
}

type StreamListResponse struct {
	Streams []StreamView `json:"streams"`
}

type UploadResponse struct {
	Key string `json:"key"`
	URL string `json:"url"`
}
