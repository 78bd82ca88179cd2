package streamRepo

import (
	"context"
	"errors"
	"strconv"
	"time"

	"github.com/go-redis/redis"
	"gorm.io/gorm"

	"github.com/pawpawapp/pawpaw-backend/internal/entity"
)

type IStreamRepo interface {
	CreateStream(ctx context.Context, stream *entity.LiveStream) (*entity.LiveStream, error)
	GetStreamByID(ctx context.Context, id uint) (*entity.LiveStream, error)
	EndStream(ctx context.Context, id uint) error
	ListLiveStreams(ctx context.Context) ([]entity.LiveStream, error)

	CreateStreamMessage(ctx context.Context, message *entity.StreamMessage) (*entity.StreamMessage, error)
	ListStreamMessages(ctx context.Context, streamID uint, limit int) ([]entity.StreamMessage, error)

	// Viewer counts live in Redis only; they are ephemeral presence data.
	IncrViewers(streamID uint) (int64, error)
	DecrViewers(streamID uint) (int64, error)
	GetViewers(streamID uint) (int64, error)
}

type StreamRepo struct {
	db  *gorm.DB
	rdb *redis.Client
}

func New(db *gorm.DB, rdb *redis.Client) IStreamRepo {
	return &StreamRepo{
		db:  db,
		rdb: rdb,
	}
}

func (r *StreamRepo) CreateStream(ctx context.Context, stream *entity.LiveStream) (*entity.LiveStream, error) {
	res := r.db.WithContext(ctx).Create(stream)
	return stream, res.Error
}

func (r *StreamRepo) GetStreamByID(ctx context.Context, id uint) (*entity.LiveStream, error) {
	var stream entity.LiveStream
	res := r.db.WithContext(ctx).Where("id = ?", id).First(&stream)
	if errors.Is(res.Error, gorm.ErrRecordNotFound) {
		return nil, entity.ErrNotFound
	}
	return &stream, res.Error
}

func (r *StreamRepo) EndStream(ctx context.Context, id uint) error {
	now := time.Now()
	res := r.db.WithContext(ctx).
		Model(&entity.LiveStream{}).
		Where("id = ? AND is_live = ?", id, true).
		Updates(map[string]interface{}{
			"is_live":  false,
			"ended_at": &now,
		})

	if res.Error != nil {
		return res.Error
	}

	if res.RowsAffected == 0 {
		return entity.ErrNotFound
	}

	r.rdb.Del(viewersKey(id))

	return nil
}

func (r *StreamRepo) ListLiveStreams(ctx context.Context) ([]entity.LiveStream, error) {
	var streams []entity.LiveStream
	res := r.db.WithContext(ctx).
		Where("is_live = ?", true).
		Order("started_at DESC").
		Find(&streams)

	return streams, res.Error
}

func (r *StreamRepo) CreateStreamMessage(ctx context.Context, message *entity.StreamMessage) (*entity.StreamMessage, error) {
	res := r.db.WithContext(ctx).Create(message)
	return message, res.Error
}

func (r *StreamRepo) ListStreamMessages(ctx context.Context, streamID uint, limit int) ([]entity.StreamMessage, error) {
	var messages []entity.StreamMessage
	res := r.db.WithContext(ctx).
		Where("stream_id = ?", streamID).
		Order("created_at ASC").
		Limit(limit).
		Find(&messages)

	return messages, res.Error
}

func (r *StreamRepo) IncrViewers(streamID uint) (int64, error) {
	return r.rdb.Incr(viewersKey(streamID)).Result()
}

func (r *StreamRepo) DecrViewers(streamID uint) (int64, error) {
	count, err := r.rdb.Decr(viewersKey(streamID)).Result()
	if err != nil {
		return 0, err
	}

	// Leave/disconnect races can push the counter below zero; clamp it.
	if count < 0 {
		r.rdb.Set(viewersKey(streamID), 0, 0)
		return 0, nil
	}

	return count, nil
}

func (r *StreamRepo) GetViewers(streamID uint) (int64, error) {
	count, err := r.rdb.Get(viewersKey(streamID)).Int64()
	if err == redis.Nil {
		return 0, nil
	}
	return count, err
}

func viewersKey(streamID uint) string {
	return ":stream:" + strconv.FormatUint(uint64(streamID), 10) + ":viewers"
}
