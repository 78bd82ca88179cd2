package entity

import "time"

type Swipe struct {
	ID        uint      `gorm:"primaryKey;column:id"`
	SwiperID  uint      `gorm:"column:swiper_id;not null;uniqueIndex:idx_swipes_swiper_profile"`
	ProfileID uint      `gorm:"column:profile_id;not null;uniqueIndex:idx_swipes_swiper_profile"`
	Decision  Decision  `gorm:"column:decision;type:smallint;not null"`
	CreatedAt time.Time `gorm:"column:created_at;type:timestamp;not null"`
}

func (Swipe) TableName() string {
	return "swipes"
}

type Decision uint

const (
	DecisionLike Decision = iota + 1
	DecisionPass
)

// String returns the wire form used in swipe requests.
func (d Decision) String() string {
	switch d {
	case DecisionLike:
		return "like"
	case DecisionPass:
		return "pass"
	default:
		return "unknown"
	}
}

type Outcome uint

const (
	OutcomeMatch  Outcome = iota + 1 // Both owners liked each other's pet
	OutcomeLiked                     // Like recorded, no reverse like yet
	OutcomePassed                    // Pass recorded
)

// String returns the wire form carried in swipe responses.
func (o Outcome) String() string {
	switch o {
	case OutcomeMatch:
		return "match"
	case OutcomeLiked:
		return "liked"
	case OutcomePassed:
		return "passed"
	default:
		return "unknown"
	}
}
