package entity

// DefaultWalletBalance is the starting balance every lazily created wallet gets.
const DefaultWalletBalance int64 = 100

type Wallet struct {
	ID     uint `gorm:"primaryKey;column:id"`
	UserID uint `gorm:"uniqueIndex;not null;column:user_id"`

	Balance     int64 `gorm:"not null;default:0;column:balance"`
	TotalEarned int64 `gorm:"not null;default:0;column:total_earned"`
}

func (Wallet) TableName() string {
	return "wallets"
}
