package matchRepo

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/pawpawapp/pawpaw-backend/internal/entity"
)

type IMatchRepo interface {
	// CreateMatch inserts a match for the unordered user pair. Two reverse
	// likes can race here, so the insert is guarded by the pair unique index;
	// the losing attempt gets the already-existing row back.
	CreateMatch(ctx context.Context, userA, profileA, userB, profileB uint) (*entity.Match, error)

	GetMatchByID(ctx context.Context, id uint) (*entity.Match, error)
	GetMatchByUsers(ctx context.Context, userA, userB uint) (*entity.Match, error)
	ListMatchesByUser(ctx context.Context, userID uint) ([]entity.Match, error)
}

type MatchRepo struct {
	db *gorm.DB
}

func New(db *gorm.DB) IMatchRepo {
	return &MatchRepo{
		db: db,
	}
}

func (r *MatchRepo) CreateMatch(ctx context.Context, userA, profileA, userB, profileB uint) (*entity.Match, error) {
	if userB < userA {
		userA, userB = userB, userA
		profileA, profileB = profileB, profileA
	}

	match := entity.Match{
		UserAID:    userA,
		UserBID:    userB,
		ProfileAID: profileA,
		ProfileBID: profileB,
		CreatedAt:  time.Now(),
	}

	res := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "user_a_id"}, {Name: "user_b_id"}},
			DoNothing: true,
		}).
		Create(&match)

	if res.Error != nil {
		return nil, res.Error
	}

	if res.RowsAffected == 0 {
		// Lost the race or the pair matched earlier; return the existing row.
		return r.GetMatchByUsers(ctx, userA, userB)
	}

	return &match, nil
}

func (r *MatchRepo) GetMatchByID(ctx context.Context, id uint) (*entity.Match, error) {
	var match entity.Match
	res := r.db.WithContext(ctx).Where("id = ?", id).First(&match)
	if errors.Is(res.Error, gorm.ErrRecordNotFound) {
		return nil, entity.ErrNotFound
	}
	return &match, res.Error
}

func (r *MatchRepo) GetMatchByUsers(ctx context.Context, userA, userB uint) (*entity.Match, error) {
	if userB < userA {
		userA, userB = userB, userA
	}

	var match entity.Match
	res := r.db.WithContext(ctx).
		Where("user_a_id = ? AND user_b_id = ?", userA, userB).
		First(&match)

	if errors.Is(res.Error, gorm.ErrRecordNotFound) {
		return nil, entity.ErrNotFound
	}
	return &match, res.Error
}

func (r *MatchRepo) ListMatchesByUser(ctx context.Context, userID uint) ([]entity.Match, error) {
	var matches []entity.Match
	res := r.db.WithContext(ctx).
		Where("user_a_id = ? OR user_b_id = ?", userID, userID).
		Order("created_at DESC").
		Find(&matches)

	return matches, res.Error
}
