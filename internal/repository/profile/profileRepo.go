package profileRepo

import (
	"context"
	"errors"

	"github.com/pawpawapp/pawpaw-backend/internal/entity"
	"gorm.io/gorm"
)

type IProfileRepo interface {
	CreateProfile(ctx context.Context, profile *entity.PetProfile) (*entity.PetProfile, error)
	GetProfileByID(ctx context.Context, id uint) (*entity.PetProfile, error)
	GetProfileByOwnerID(ctx context.Context, ownerID uint) (*entity.PetProfile, error)
	UpdateProfile(ctx context.Context, profile *entity.PetProfile) error
	DeleteProfile(ctx context.Context, id uint) error

	// IncrementLikes bumps the denormalized likes counter by one. The swipe
	// rows stay the source of truth; this is best-effort denormalization.
	IncrementLikes(ctx context.Context, profileID uint) error

	// GetFeedProfiles returns up to limit random profiles excluding the given ids.
	GetFeedProfiles(ctx context.Context, excludeIDs []uint, limit int) ([]entity.PetProfile, error)
}

type ProfileRepo struct {
	db *gorm.DB
}

func New(db *gorm.DB) IProfileRepo {
	return &ProfileRepo{
		db: db,
	}
}

func (r *ProfileRepo) CreateProfile(ctx context.Context, profile *entity.PetProfile) (*entity.PetProfile, error) {
	result := r.db.WithContext(ctx).Create(profile)
	return profile, result.Error
}

func (r *ProfileRepo) GetProfileByID(ctx context.Context, id uint) (*entity.PetProfile, error) {
	var profile entity.PetProfile
	result := r.db.WithContext(ctx).Where("id = ?", id).First(&profile)
	if errors.Is(result.Error, gorm.ErrRecordNotFound) {
		return nil, entity.ErrNotFound
	}
	return &profile, result.Error
}

func (r *ProfileRepo) GetProfileByOwnerID(ctx context.Context, ownerID uint) (*entity.PetProfile, error) {
	var profile entity.PetProfile
	result := r.db.WithContext(ctx).Where("owner_id = ?", ownerID).First(&profile)
	if errors.Is(result.Error, gorm.ErrRecordNotFound) {
		return nil, entity.ErrNotFound
	}
	return &profile, result.Error
}

func (r *ProfileRepo) UpdateProfile(ctx context.Context, profile *entity.PetProfile) error {
	return r.db.WithContext(ctx).Save(profile).Error
}

func (r *ProfileRepo) DeleteProfile(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Delete(&entity.PetProfile{}, id).Error
}

func (r *ProfileRepo) IncrementLikes(ctx context.Context, profileID uint) error {
	result := r.db.WithContext(ctx).
		Model(&entity.PetProfile{}).
		Where("id = ?", profileID).
		UpdateColumn("likes_count", gorm.Expr("likes_count + 1"))

	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return entity.ErrNotFound
	}

	return nil
}

func (r *ProfileRepo) GetFeedProfiles(ctx context.Context, excludeIDs []uint, limit int) ([]entity.PetProfile, error) {
	var profiles []entity.PetProfile

	query := r.db.WithContext(ctx).Model(&entity.PetProfile{})

	if len(excludeIDs) > 0 {
		query = query.Where("id NOT IN ?", excludeIDs)
	}

	res := query.
		Order("RANDOM()").
		Limit(limit).
		Find(&profiles)

	return profiles, res.Error
}
