package entity

import "time"

type GiftKind string

const (
	GiftKindBone  GiftKind = "bone"
	GiftKindToy   GiftKind = "toy"
	GiftKindSteak GiftKind = "steak"
)

var giftPrices = map[GiftKind]int64{
	GiftKindBone:  10,
	GiftKindToy:   50,
	GiftKindSteak: 500,
}

// Price returns the fixed coin value of the gift kind, or false for an
// unrecognized kind.
func (k GiftKind) Price() (int64, bool) {
	price, ok := giftPrices[k]
	return price, ok
}

type Gift struct {
	ID         uint      `gorm:"primaryKey;column:id"`
	SenderID   uint      `gorm:"column:sender_id;not null;index"`
	ReceiverID uint      `gorm:"column:receiver_id;not null;index"`
	Kind       GiftKind  `gorm:"column:kind;not null"`
	CoinValue  int64     `gorm:"column:coin_value;not null"`
	CreatedAt  time.Time `gorm:"column:created_at;type:timestamp;not null"`
}

func (Gift) TableName() string {
	return "gifts"
}
