package chatUseCase

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pawpawapp/pawpaw-backend/internal/entity"
)

type fakeMatchStore struct {
	byID map[uint]*entity.Match
}

func (s *fakeMatchStore) CreateMatch(ctx context.Context, userA, profileA, userB, profileB uint) (*entity.Match, error) {
	return nil, nil
}

func (s *fakeMatchStore) GetMatchByID(ctx context.Context, id uint) (*entity.Match, error) {
	m, ok := s.byID[id]
	if !ok {
		return nil, entity.ErrNotFound
	}
	return m, nil
}

func (s *fakeMatchStore) GetMatchByUsers(ctx context.Context, userA, userB uint) (*entity.Match, error) {
	return nil, entity.ErrNotFound
}

func (s *fakeMatchStore) ListMatchesByUser(ctx context.Context, userID uint) ([]entity.Match, error) {
	return nil, nil
}

type fakeChatStore struct {
	mu       sync.Mutex
	messages []entity.Message
}

func (s *fakeChatStore) CreateMessage(ctx context.Context, message *entity.Message) (*entity.Message, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	message.ID = uint(len(s.messages) + 1)
	s.messages = append(s.messages, *message)
	return message, nil
}

func (s *fakeChatStore) ListMessages(ctx context.Context, matchID uint, limit int) ([]entity.Message, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []entity.Message
	for _, m := range s.messages {
		if m.MatchID == matchID {
			out = append(out, m)
		}
	}
	return out, nil
}

type recordingRegistry struct {
	mu     sync.Mutex
	events map[uint][]interface{}
}

func (r *recordingRegistry) SendToUser(userID uint, event interface{}) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.events == nil {
		r.events = make(map[uint][]interface{})
	}
	r.events[userID] = append(r.events[userID], event)
	return true
}

func (r *recordingRegistry) SendToRoom(room string, event interface{}) {}
func (r *recordingRegistry) JoinRoom(userID uint, room string)         {}
func (r *recordingRegistry) LeaveRoom(userID uint, room string)        {}

func setup() (*fakeChatStore, *recordingRegistry, IChatUseCase) {
	matches := &fakeMatchStore{byID: map[uint]*entity.Match{
		1: {ID: 1, UserAID: 1, UserBID: 2},
	}}
	chats := &fakeChatStore{}
	registry := &recordingRegistry{}
	return chats, registry, New(matches, chats, registry)
}

func TestSendMessageToCounterpart(t *testing.T) {
	chats, registry, uc := setup()

	message, err := uc.SendMessage(context.Background(), 1, 1, "hello")
	require.NoError(t, err)
	assert.Equal(t, uint(1), message.SenderID)
	assert.Len(t, chats.messages, 1)

	events := registry.events[2]
	require.Len(t, events, 1)
	chatEvent := events[0].(entity.ChatEvent)
	assert.Equal(t, "message", chatEvent.Type)
	assert.Equal(t, "hello", chatEvent.Body)

	assert.Empty(t, registry.events[1], "sender does not get their own message echoed")
}

func TestNonParticipantForbidden(t *testing.T) {
	_, _, uc := setup()

	_, err := uc.SendMessage(context.Background(), 3, 1, "hi")
	assert.ErrorIs(t, err, entity.ErrForbidden)

	_, err = uc.ListMessages(context.Background(), 3, 1, 10)
	assert.ErrorIs(t, err, entity.ErrForbidden)
}

func TestMissingMatch(t *testing.T) {
	_, _, uc := setup()

	_, err := uc.SendMessage(context.Background(), 1, 99, "hi")
	assert.ErrorIs(t, err, entity.ErrNotFound)
}

func TestListMessagesForParticipant(t *testing.T) {
	_, _, uc := setup()

	_, err := uc.SendMessage(context.Background(), 1, 1, "first")
	require.NoError(t, err)
	_, err = uc.SendMessage(context.Background(), 2, 1, "second")
	require.NoError(t, err)

	messages, err := uc.ListMessages(context.Background(), 2, 1, 10)
	require.NoError(t, err)
	require.Len(t, messages, 2)
	assert.Equal(t, "first", messages[0].Body)
	assert.Equal(t, "second", messages[1].Body)
}
