package profileUseCase

import (
	"context"
	"errors"

	"github.com/pawpawapp/pawpaw-backend/internal/entity"
	profileRepo "github.com/pawpawapp/pawpaw-backend/internal/repository/profile"
	swipeRepo "github.com/pawpawapp/pawpaw-backend/internal/repository/swipe"
)

type IProfileUseCase interface {
	CreateProfile(ctx context.Context, ownerID uint, request entity.UpsertProfileRequest) (*entity.PetProfile, error)
	GetProfile(ctx context.Context, profileID uint) (*entity.PetProfile, error)
	GetOwnProfile(ctx context.Context, ownerID uint) (*entity.PetProfile, error)
	UpdateProfile(ctx context.Context, ownerID, profileID uint, request entity.UpsertProfileRequest) (*entity.PetProfile, error)
	DeleteProfile(ctx context.Context, ownerID, profileID uint) error

	// GetFeed returns discovery candidates: random profiles excluding the
	// caller's own pet and everything already swiped.
	GetFeed(ctx context.Context, userID uint, excludeIDs []uint, limit int) ([]entity.PetProfile, error)
}

type profileUseCase struct {
	profileRepo profileRepo.IProfileRepo
	swipeRepo   swipeRepo.ISwipeRepo
}

func New(profileRepo profileRepo.IProfileRepo, swipeRepo swipeRepo.ISwipeRepo) IProfileUseCase {
	return &profileUseCase{
		profileRepo: profileRepo,
		swipeRepo:   swipeRepo,
	}
}

func (u *profileUseCase) CreateProfile(ctx context.Context, ownerID uint, request entity.UpsertProfileRequest) (*entity.PetProfile, error) {
	// One pet per user; the unique index on owner_id backstops this check.
	_, err := u.profileRepo.GetProfileByOwnerID(ctx, ownerID)
	if err == nil {
		return nil, entity.ErrInvalidOperation
	}
	if !errors.Is(err, entity.ErrNotFound) {
		return nil, err
	}

	profile := entity.PetProfile{
		OwnerID:  ownerID,
		Name:     request.Name,
		Species:  request.Species,
		Breed:    request.Breed,
		AgeYears: request.AgeYears,
		Bio:      request.Bio,
		PhotoURL: request.PhotoURL,
	}

	return u.profileRepo.CreateProfile(ctx, &profile)
}

func (u *profileUseCase) GetProfile(ctx context.Context, profileID uint) (*entity.PetProfile, error) {
	return u.profileRepo.GetProfileByID(ctx, profileID)
}

func (u *profileUseCase) GetOwnProfile(ctx context.Context, ownerID uint) (*entity.PetProfile, error) {
	return u.profileRepo.GetProfileByOwnerID(ctx, ownerID)
}

func (u *profileUseCase) UpdateProfile(ctx context.Context, ownerID, profileID uint, request entity.UpsertProfileRequest) (*entity.PetProfile, error) {
	profile, err := u.profileRepo.GetProfileByID(ctx, profileID)
	if err != nil {
		return nil, err
	}

	if profile.OwnerID != ownerID {
		return nil, entity.ErrForbidden
	}

	profile.Name = request.Name
	profile.Species = request.Species
	profile.Breed = request.Breed
	profile.AgeYears = request.AgeYears
	profile.Bio = request.Bio
	profile.PhotoURL = request.PhotoURL

	if err := u.profileRepo.UpdateProfile(ctx, profile); err != nil {
		return nil, err
	}

	return profile, nil
}

func (u *profileUseCase) DeleteProfile(ctx context.Context, ownerID, profileID uint) error {
	profile, err := u.profileRepo.GetProfileByID(ctx, profileID)
	if err != nil {
		return err
	}

	if profile.OwnerID != ownerID {
		return entity.ErrForbidden
	}

	return u.profileRepo.DeleteProfile(ctx, profileID)
}

func (u *profileUseCase) GetFeed(ctx context.Context, userID uint, excludeIDs []uint, limit int) ([]entity.PetProfile, error) {
	swiped, err := u.swipeRepo.GetSwipedProfileIDs(ctx, userID)
	if err != nil {
		return nil, err
	}
	excludeIDs = append(excludeIDs, swiped...)

	own, err := u.profileRepo.GetProfileByOwnerID(ctx, userID)
	if err == nil {
		excludeIDs = append(excludeIDs, own.ID)
	} else if !errors.Is(err, entity.ErrNotFound) {
		return nil, err
	}

	return u.profileRepo.GetFeedProfiles(ctx, excludeIDs, limit)
}
