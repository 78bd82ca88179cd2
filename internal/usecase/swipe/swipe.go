package swipeUseCase

import (
	"context"
	"errors"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/pawpawapp/pawpaw-backend/internal/entity"
	"github.com/pawpawapp/pawpaw-backend/internal/realtime"
	matchRepo "github.com/pawpawapp/pawpaw-backend/internal/repository/match"
	profileRepo "github.com/pawpawapp/pawpaw-backend/internal/repository/profile"
	swipeRepo "github.com/pawpawapp/pawpaw-backend/internal/repository/swipe"
)

type ISwipeUseCase interface {
	Swipe(ctx context.Context, swiperID, profileID uint, decision entity.Decision) (*Result, error)
}

type Result struct {
	Outcome entity.Outcome
	Match   *entity.Match
	// Pet of the counterpart, present only on a mutual like.
	CounterpartPet *entity.PetView
}

type swipeUseCase struct {
	profileRepo profileRepo.IProfileRepo
	swipeRepo   swipeRepo.ISwipeRepo
	matchRepo   matchRepo.IMatchRepo
	registry    realtime.IRegistry
}

func New(
	profileRepo profileRepo.IProfileRepo,
	swipeRepo swipeRepo.ISwipeRepo,
	matchRepo matchRepo.IMatchRepo,
	registry realtime.IRegistry,
) ISwipeUseCase {
	return &swipeUseCase{
		profileRepo: profileRepo,
		swipeRepo:   swipeRepo,
		matchRepo:   matchRepo,
		registry:    registry,
	}
}

// Swipe runs the full pipeline: record the swipe, bump the like counter,
// detect a mutual like, notify both sides. Each step runs only if the prior
// one held; a duplicate swipe stops the pipeline before any side effect.
func (u *swipeUseCase) Swipe(ctx context.Context, swiperID, profileID uint, decision entity.Decision) (*Result, error) {
	target, err := u.profileRepo.GetProfileByID(ctx, profileID)
	if err != nil {
		return nil, err
	}

	if target.OwnerID == swiperID {
		return nil, entity.ErrInvalidOperation
	}

	swipe := entity.Swipe{
		SwiperID:  swiperID,
		ProfileID: profileID,
		Decision:  decision,
		CreatedAt: time.Now(),
	}

	wasDuplicate, err := u.swipeRepo.CreateSwipe(ctx, &swipe)
	if err != nil {
		return nil, err
	}

	if wasDuplicate {
		return nil, entity.ErrAlreadySwiped
	}

	if decision == entity.DecisionPass {
		return &Result{Outcome: entity.OutcomePassed}, nil
	}

	// The swipe row is the durable fact; a failed counter bump is logged,
	// never rolled back.
	if err := u.profileRepo.IncrementLikes(ctx, profileID); err != nil {
		logrus.WithError(err).WithField("profile_id", profileID).Warn("failed to increment likes count")
	}

	return u.checkAndCreateMatch(ctx, swiperID, target)
}

func (u *swipeUseCase) checkAndCreateMatch(ctx context.Context, swiperID uint, target *entity.PetProfile) (*Result, error) {
	ownProfile, err := u.profileRepo.GetProfileByOwnerID(ctx, swiperID)
	if err != nil {
		if errors.Is(err, entity.ErrNotFound) {
			// A swiper without a pet of their own cannot be matched.
			return &Result{Outcome: entity.OutcomeLiked}, nil
		}
		return nil, err
	}

	hasReverseLike, err := u.swipeRepo.HasLike(ctx, target.OwnerID, ownProfile.ID)
	if err != nil {
		return nil, err
	}

	if !hasReverseLike {
		return &Result{Outcome: entity.OutcomeLiked}, nil
	}

	match, err := u.matchRepo.CreateMatch(ctx, swiperID, ownProfile.ID, target.OwnerID, target.ID)
	if err != nil {
		return nil, err
	}

	u.notifyMatch(swiperID, target.OwnerID, ownProfile, target)

	return &Result{
		Outcome: entity.OutcomeMatch,
		Match:   match,
		CounterpartPet: &entity.PetView{
			Name:     target.Name,
			PhotoURL: target.PhotoURL,
		},
	}, nil
}

// notifyMatch pushes the one-shot match event to every live connection of
// both users. Offline users just miss it; the match stays listable.
func (u *swipeUseCase) notifyMatch(swiperID, targetOwnerID uint, swiperPet, targetPet *entity.PetProfile) {
	u.registry.SendToUser(swiperID, entity.MatchEvent{
		Type: "match",
		Pet:  entity.PetView{Name: targetPet.Name, PhotoURL: targetPet.PhotoURL},
	})
	u.registry.SendToUser(targetOwnerID, entity.MatchEvent{
		Type: "match",
		Pet:  entity.PetView{Name: swiperPet.Name, PhotoURL: swiperPet.PhotoURL},
	})
}
