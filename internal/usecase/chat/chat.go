package chatUseCase

import (
	"context"
	"time"

	"github.com/pawpawapp/pawpaw-backend/internal/entity"
	"github.com/pawpawapp/pawpaw-backend/internal/realtime"
	chatRepo "github.com/pawpawapp/pawpaw-backend/internal/repository/chat"
	matchRepo "github.com/pawpawapp/pawpaw-backend/internal/repository/match"
)

type IChatUseCase interface {
	SendMessage(ctx context.Context, userID, matchID uint, body string) (*entity.Message, error)
	ListMessages(ctx context.Context, userID, matchID uint, limit int) ([]entity.Message, error)
}

type chatUseCase struct {
	matchRepo matchRepo.IMatchRepo
	chatRepo  chatRepo.IChatRepo
	registry  realtime.IRegistry
}

func New(matchRepo matchRepo.IMatchRepo, chatRepo chatRepo.IChatRepo, registry realtime.IRegistry) IChatUseCase {
	return &chatUseCase{
		matchRepo: matchRepo,
		chatRepo:  chatRepo,
		registry:  registry,
	}
}

func (u *chatUseCase) SendMessage(ctx context.Context, userID, matchID uint, body string) (*entity.Message, error) {
	match, err := u.matchRepo.GetMatchByID(ctx, matchID)
	if err != nil {
		return nil, err
	}

	if !match.HasUser(userID) {
		return nil, entity.ErrForbidden
	}

	message, err := u.chatRepo.CreateMessage(ctx, &entity.Message{
		MatchID:   matchID,
		SenderID:  userID,
		Body:      body,
		CreatedAt: time.Now(),
	})
	if err != nil {
		return nil, err
	}

	if other, ok := match.OtherUserID(userID); ok {
		u.registry.SendToUser(other, entity.ChatEvent{
			Type:     "message",
			MatchID:  matchID,
			SenderID: userID,
			Body:     body,
		})
	}

	return message, nil
}

func (u *chatUseCase) ListMessages(ctx context.Context, userID, matchID uint, limit int) ([]entity.Message, error) {
	match, err := u.matchRepo.GetMatchByID(ctx, matchID)
	if err != nil {
		return nil, err
	}

	if !match.HasUser(userID) {
		return nil, entity.ErrForbidden
	}

	return u.chatRepo.ListMessages(ctx, matchID, limit)
}
