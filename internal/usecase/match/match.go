package matchUseCase

import (
	"context"

	"github.com/sirupsen/logrus"

	"github.com/pawpawapp/pawpaw-backend/internal/entity"
	matchRepo "github.com/pawpawapp/pawpaw-backend/internal/repository/match"
	profileRepo "github.com/pawpawapp/pawpaw-backend/internal/repository/profile"
)

type IMatchUseCase interface {
	// ListMatches returns the caller's matches with the counterpart pet view.
	ListMatches(ctx context.Context, userID uint) ([]entity.MatchView, error)

	// GetMatchForUser returns the match if the caller is a participant.
	GetMatchForUser(ctx context.Context, userID, matchID uint) (*entity.Match, error)
}

type matchUseCase struct {
	matchRepo   matchRepo.IMatchRepo
	profileRepo profileRepo.IProfileRepo
}

func New(matchRepo matchRepo.IMatchRepo, profileRepo profileRepo.IProfileRepo) IMatchUseCase {
	return &matchUseCase{
		matchRepo:   matchRepo,
		profileRepo: profileRepo,
	}
}

func (u *matchUseCase) ListMatches(ctx context.Context, userID uint) ([]entity.MatchView, error) {
	matches, err := u.matchRepo.ListMatchesByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	views := make([]entity.MatchView, 0, len(matches))
	for _, m := range matches {
		counterpartProfileID := m.ProfileBID
		if m.UserBID == userID {
			counterpartProfileID = m.ProfileAID
		}

		profile, err := u.profileRepo.GetProfileByID(ctx, counterpartProfileID)
		if err != nil {
			// The counterpart deleted their pet; the match row stays but
			// there is nothing to show for it.
			logrus.WithError(err).WithField("match_id", m.ID).Debug("counterpart profile unavailable")
			continue
		}

		views = append(views, entity.MatchView{
			MatchID:   m.ID,
			Pet:       entity.PetView{Name: profile.Name, PhotoURL: profile.PhotoURL},
			MatchedAt: m.CreatedAt,
		})
	}

	return views, nil
}

func (u *matchUseCase) GetMatchForUser(ctx context.Context, userID, matchID uint) (*entity.Match, error) {
	match, err := u.matchRepo.GetMatchByID(ctx, matchID)
	if err != nil {
		return nil, err
	}

	if !match.HasUser(userID) {
		return nil, entity.ErrForbidden
	}

	return match, nil
}
