package chatRepo

import (
	"context"

	"gorm.io/gorm"

	"github.com/pawpawapp/pawpaw-backend/internal/entity"
)

type IChatRepo interface {
	CreateMessage(ctx context.Context, message *entity.Message) (*entity.Message, error)
	ListMessages(ctx context.Context, matchID uint, limit int) ([]entity.Message, error)
}

type ChatRepo struct {
	db *gorm.DB
}

func New(db *gorm.DB) IChatRepo {
	return &ChatRepo{
		db: db,
	}
}

func (r *ChatRepo) CreateMessage(ctx context.Context, message *entity.Message) (*entity.Message, error) {
	res := r.db.WithContext(ctx).Create(message)
	return message, res.Error
}

func (r *ChatRepo) ListMessages(ctx context.Context, matchID uint, limit int) ([]entity.Message, error) {
	var messages []entity.Message
	res := r.db.WithContext(ctx).
		Where("match_id = ?", matchID).
		Order("created_at ASC").
		Limit(limit).
		Find(&messages)

	return messages, res.Error
}
