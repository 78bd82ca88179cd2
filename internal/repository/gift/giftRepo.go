package giftRepo

import (
	"context"

	"gorm.io/gorm"

	"github.com/pawpawapp/pawpaw-backend/internal/entity"
)

type IGiftRepo interface {
	// CreateGift writes one immutable ledger row. Runs on the caller's
	// transaction so the row commits together with the wallet mutations.
	CreateGift(ctx context.Context, tx *gorm.DB, gift *entity.Gift) error

	ListReceivedGifts(ctx context.Context, receiverID uint) ([]entity.Gift, error)
}

type GiftRepo struct {
	db *gorm.DB
}

func New(db *gorm.DB) IGiftRepo {
	return &GiftRepo{
		db: db,
	}
}

func (r *GiftRepo) CreateGift(ctx context.Context, tx *gorm.DB, gift *entity.Gift) error {
	return tx.WithContext(ctx).Create(gift).Error
}

func (r *GiftRepo) ListReceivedGifts(ctx context.Context, receiverID uint) ([]entity.Gift, error) {
	var gifts []entity.Gift
	res := r.db.WithContext(ctx).
		Where("receiver_id = ?", receiverID).
		Order("created_at DESC").
		Find(&gifts)

	return gifts, res.Error
}
