package swipeRepo

import (
	"context"
	"strconv"
	"time"

	"github.com/go-redis/redis"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/pawpawapp/pawpaw-backend/internal/entity"
)

type ISwipeRepo interface {
	// CreateSwipe inserts the swipe guarded by the (swiper_id, profile_id)
	// unique index. The first write wins; a duplicate attempt is reported via
	// wasDuplicate and leaves the stored row untouched.
	CreateSwipe(ctx context.Context, swipe *entity.Swipe) (wasDuplicate bool, err error)

	// HasLike reports whether swiperID has a stored like on profileID.
	HasLike(ctx context.Context, swiperID, profileID uint) (bool, error)

	GetSwipedProfileIDs(ctx context.Context, swiperID uint) ([]uint, error)
}

type SwipeRepo struct {
	db  *gorm.DB
	rdb *redis.Client
}

func New(db *gorm.DB, rdb *redis.Client) ISwipeRepo {
	return &SwipeRepo{
		db:  db,
		rdb: rdb,
	}
}

func (r *SwipeRepo) CreateSwipe(ctx context.Context, swipe *entity.Swipe) (bool, error) {
	res := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "swiper_id"}, {Name: "profile_id"}},
			DoNothing: true,
		}).
		Create(swipe)

	if res.Error != nil {
		return false, res.Error
	}

	if res.RowsAffected == 0 {
		return true, nil
	}

	r.appendSwipedProfilesCache(swipe.SwiperID, swipe.ProfileID)

	return false, nil
}

func (r *SwipeRepo) HasLike(ctx context.Context, swiperID, profileID uint) (bool, error) {
	var count int64
	res := r.db.WithContext(ctx).
		Model(&entity.Swipe{}).
		Where("swiper_id = ? AND profile_id = ? AND decision = ?", swiperID, profileID, entity.DecisionLike).
		Count(&count)

	return count > 0, res.Error
}

func (r *SwipeRepo) GetSwipedProfileIDs(ctx context.Context, swiperID uint) ([]uint, error) {
	profilesKey := swipedProfilesKey(swiperID)

	exists, err := r.rdb.Exists(profilesKey).Result()
	if err != nil {
		// Redis is a cache; fall back to the swipe rows.
		return r.getSwipedProfileIDsFromDB(ctx, swiperID)
	}

	if exists == 0 {
		profiles, err := r.getSwipedProfileIDsFromDB(ctx, swiperID)
		if err != nil {
			return nil, err
		}

		for _, id := range profiles {
			r.rdb.SAdd(profilesKey, id)
		}
		r.rdb.Expire(profilesKey, 24*time.Hour)

		return profiles, nil
	}

	var profiles []uint
	if err := r.rdb.SMembers(profilesKey).ScanSlice(&profiles); err != nil {
		return r.getSwipedProfileIDsFromDB(ctx, swiperID)
	}

	return profiles, nil
}

// Private functions

func (r *SwipeRepo) getSwipedProfileIDsFromDB(ctx context.Context, swiperID uint) ([]uint, error) {
	var profiles []uint
	res := r.db.WithContext(ctx).
		Model(&entity.Swipe{}).
		Select("profile_id").
		Where("swiper_id = ?", swiperID).
		Find(&profiles)

	return profiles, res.Error
}

func (r *SwipeRepo) appendSwipedProfilesCache(swiperID, profileID uint) {
	profilesKey := swipedProfilesKey(swiperID)

	if err := r.rdb.SAdd(profilesKey, profileID).Err(); err != nil {
		logrus.WithError(err).WithField("user_id", swiperID).Warn("failed to update swiped profiles cache")
		return
	}
	r.rdb.Expire(profilesKey, 24*time.Hour)
}

func swipedProfilesKey(swiperID uint) string {
	return ":user:" + strconv.FormatUint(uint64(swiperID), 10) + ":swiped:profiles"
}
