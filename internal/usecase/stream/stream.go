package streamUseCase

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/pawpawapp/pawpaw-backend/internal/entity"
	"github.com/pawpawapp/pawpaw-backend/internal/realtime"
	streamRepo "github.com/pawpawapp/pawpaw-backend/internal/repository/stream"
)

type IStreamUseCase interface {
	StartStream(ctx context.Context, hostID uint, title, coverURL string) (*entity.LiveStream, error)
	EndStream(ctx context.Context, hostID, streamID uint) error
	ListLiveStreams(ctx context.Context) ([]entity.StreamView, error)

	JoinStream(ctx context.Context, userID, streamID uint) (viewers int64, err error)
	LeaveStream(ctx context.Context, userID, streamID uint) (viewers int64, err error)

	SendStreamMessage(ctx context.Context, userID, streamID uint, body string) (*entity.StreamMessage, error)
	ListStreamMessages(ctx context.Context, streamID uint, limit int) ([]entity.StreamMessage, error)
}

type streamUseCase struct {
	streamRepo streamRepo.IStreamRepo
	registry   realtime.IRegistry
}

func New(streamRepo streamRepo.IStreamRepo, registry realtime.IRegistry) IStreamUseCase {
	return &streamUseCase{
		streamRepo: streamRepo,
		registry:   registry,
	}
}

func (u *streamUseCase) StartStream(ctx context.Context, hostID uint, title, coverURL string) (*entity.LiveStream, error) {
	return u.streamRepo.CreateStream(ctx, &entity.LiveStream{
		HostID:    hostID,
		Title:     title,
		CoverURL:  coverURL,
		IsLive:    true,
		StartedAt: time.Now(),
	})
}

func (u *streamUseCase) EndStream(ctx context.Context, hostID, streamID uint) error {
	stream, err := u.streamRepo.GetStreamByID(ctx, streamID)
	if err != nil {
		return err
	}

	if stream.HostID != hostID {
		return entity.ErrForbidden
	}

	return u.streamRepo.EndStream(ctx, streamID)
}

func (u *streamUseCase) ListLiveStreams(ctx context.Context) ([]entity.StreamView, error) {
	streams, err := u.streamRepo.ListLiveStreams(ctx)
	if err != nil {
		return nil, err
	}

	views := make([]entity.StreamView, 0, len(streams))
	for _, s := range streams {
		viewers, err := u.streamRepo.GetViewers(s.ID)
		if err != nil {
			logrus.WithError(err).WithField("stream_id", s.ID).Warn("failed to read viewer count")
		}

		views = append(views, entity.StreamView{
			ID:        s.ID,
			HostID:    s.HostID,
			Title:     s.Title,
			CoverURL:  s.CoverURL,
			Viewers:   viewers,
			StartedAt: s.StartedAt,
		})
	}

	return views, nil
}

func (u *streamUseCase) JoinStream(ctx context.Context, userID, streamID uint) (int64, error) {
	stream, err := u.streamRepo.GetStreamByID(ctx, streamID)
	if err != nil {
		return 0, err
	}

	if !stream.IsLive {
		return 0, entity.ErrInvalidOperation
	}

	viewers, err := u.streamRepo.IncrViewers(streamID)
	if err != nil {
		return 0, err
	}

	u.registry.JoinRoom(userID, realtime.StreamRoom(streamID))

	return viewers, nil
}

func (u *streamUseCase) LeaveStream(ctx context.Context, userID, streamID uint) (int64, error) {
	u.registry.LeaveRoom(userID, realtime.StreamRoom(streamID))
	return u.streamRepo.DecrViewers(streamID)
}

func (u *streamUseCase) SendStreamMessage(ctx context.Context, userID, streamID uint, body string) (*entity.StreamMessage, error) {
	stream, err := u.streamRepo.GetStreamByID(ctx, streamID)
	if err != nil {
		return nil, err
	}

	if !stream.IsLive {
		return nil, entity.ErrInvalidOperation
	}

	message, err := u.streamRepo.CreateStreamMessage(ctx, &entity.StreamMessage{
		StreamID:  streamID,
		SenderID:  userID,
		Body:      body,
		CreatedAt: time.Now(),
	})
	if err != nil {
		return nil, err
	}

	u.registry.SendToRoom(realtime.StreamRoom(streamID), entity.StreamChatEvent{
		Type:     "stream_message",
		StreamID: streamID,
		SenderID: userID,
		Body:     body,
	})

	return message, nil
}

func (u *streamUseCase) ListStreamMessages(ctx context.Context, streamID uint, limit int) ([]entity.StreamMessage, error) {
	if _, err := u.streamRepo.GetStreamByID(ctx, streamID); err != nil {
		return nil, err
	}

	return u.streamRepo.ListStreamMessages(ctx, streamID, limit)
}
