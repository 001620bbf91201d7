package rating_test

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"sync"
	"testing"
	"time"

	"github.com/brkuhgk/Nestara/internal/database/types"
	"github.com/brkuhgk/Nestara/internal/database/types/enum"
	"github.com/brkuhgk/Nestara/internal/worker/rating"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

var errStore = errors.New("store unavailable")

type fakeTopicStore struct {
	mu        sync.Mutex
	topics    []*types.Topic
	archived  map[string]bool
	pageReads int
	pageErr   error
}

func newFakeTopicStore(topics ...*types.Topic) *fakeTopicStore {
	sort.Slice(topics, func(i, j int) bool { return topics[i].ID < topics[j].ID })

	return &fakeTopicStore{
		topics:   topics,
		archived: make(map[string]bool),
	}
}

func (s *fakeTopicStore) GetAgedActiveTopics(
	_ context.Context, _ time.Time, afterID string, limit int,
) ([]*types.Topic, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.pageReads++
	if s.pageErr != nil {
		return nil, s.pageErr
	}

	var page []*types.Topic

	for _, topic := range s.topics {
		if topic.ID <= afterID || s.archived[topic.ID] {
			continue
		}

		page = append(page, topic)
		if len(page) == limit {
			break
		}
	}

	return page, nil
}

func (s *fakeTopicStore) ArchiveTopic(_ context.Context, topicID string, _ time.Time) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.archived[topicID] = true

	return nil
}

func (s *fakeTopicStore) archivedCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	return len(s.archived)
}

type deltaCall struct {
	userID   string
	category enum.RatingCategory
	delta    int
	topicID  string
}

type fakeRatingStore struct {
	mu       sync.Mutex
	calls    []deltaCall
	failUser string
}

func (s *fakeRatingStore) ApplyDelta(
	_ context.Context, userID string, category enum.RatingCategory,
	delta int, _, topicID string,
) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if userID == s.failUser {
		return 0, errStore
	}

	s.calls = append(s.calls, deltaCall{userID: userID, category: category, delta: delta, topicID: topicID})

	return types.ClampRating(types.DefaultRating + delta), nil
}

func (s *fakeRatingStore) deltaCalls() []deltaCall {
	s.mu.Lock()
	defer s.mu.Unlock()

	return append([]deltaCall(nil), s.calls...)
}

type fakeNotifier struct {
	mu    sync.Mutex
	sent  []string
	types []string
}

func (n *fakeNotifier) Notify(_ context.Context, userID, notifType, _ string, _ map[string]any) {
	n.mu.Lock()
	defer n.mu.Unlock()

	n.sent = append(n.sent, userID)
	n.types = append(n.types, notifType)
}

func testConfig() rating.Config {
	return rating.Config{
		TopicMaxAgeDays: 30,
		BatchSize:       100,
		ConflictPenalty: 50,
		MentionReward:   10,
	}
}

func agedTopic(id string, topicType enum.TopicType, category enum.RatingCategory, targets ...string) *types.Topic {
	return &types.Topic{
		ID:         id,
		HouseID:    "house-1",
		CreatedBy:  "creator",
		CreatedFor: targets,
		Type:       topicType,
		Category:   category,
		Status:     enum.TopicStatusActive,
		CreatedAt:  time.Now().AddDate(0, 0, -45),
	}
}

func TestRunArchivesAllPages(t *testing.T) {
	t.Parallel()

	topics := make([]*types.Topic, 250)
	for i := range topics {
		topics[i] = agedTopic(fmt.Sprintf("topic-%04d", i), enum.TopicTypeGeneral, "")
	}

	store := newFakeTopicStore(topics...)
	ratings := &fakeRatingStore{}
	worker := rating.New(store, ratings, &fakeNotifier{}, testConfig(), zap.NewNop())

	processed, err := worker.Run(t.Context())
	require.NoError(t, err)

	assert.Equal(t, 250, processed)
	assert.Equal(t, 250, store.archivedCount())

	// Three full or partial pages plus the final empty read
	assert.Equal(t, 4, store.pageReads)

	// General topics carry no rating effect
	assert.Empty(t, ratings.deltaCalls())
}

func TestRunAppliesConflictPenalty(t *testing.T) {
	t.Parallel()

	store := newFakeTopicStore(
		agedTopic("topic-0001", enum.TopicTypeConflict, enum.CategoryCleanliness, "alice", "bob"),
	)
	ratings := &fakeRatingStore{}
	notify := &fakeNotifier{}
	worker := rating.New(store, ratings, notify, testConfig(), zap.NewNop())

	processed, err := worker.Run(t.Context())
	require.NoError(t, err)
	assert.Equal(t, 1, processed)

	calls := ratings.deltaCalls()
	require.Len(t, calls, 2)

	for _, call := range calls {
		assert.Equal(t, -50, call.delta)
		assert.Equal(t, enum.CategoryCleanliness, call.category)
		assert.Equal(t, "topic-0001", call.topicID)
	}

	assert.ElementsMatch(t, []string{"alice", "bob"}, []string{calls[0].userID, calls[1].userID})
	assert.ElementsMatch(t, []string{types.NotificationRatingPenalty, types.NotificationRatingPenalty}, notify.types)
	assert.Equal(t, 1, store.archivedCount())
}

func TestRunAppliesMentionReward(t *testing.T) {
	t.Parallel()

	store := newFakeTopicStore(
		agedTopic("topic-0001", enum.TopicTypeMentions, enum.CategoryBehavior, "alice"),
	)
	ratings := &fakeRatingStore{}
	notify := &fakeNotifier{}
	worker := rating.New(store, ratings, notify, testConfig(), zap.NewNop())

	_, err := worker.Run(t.Context())
	require.NoError(t, err)

	calls := ratings.deltaCalls()
	require.Len(t, calls, 1)
	assert.Equal(t, 10, calls[0].delta)
	assert.Equal(t, enum.CategoryBehavior, calls[0].category)
	assert.Equal(t, []string{types.NotificationRatingReward}, notify.types)
}

func TestRunArchivesTopicWithoutTargets(t *testing.T) {
	t.Parallel()

	store := newFakeTopicStore(
		agedTopic("topic-0001", enum.TopicTypeConflict, enum.CategoryCleanliness),
	)
	ratings := &fakeRatingStore{}
	worker := rating.New(store, ratings, &fakeNotifier{}, testConfig(), zap.NewNop())

	processed, err := worker.Run(t.Context())
	require.NoError(t, err)

	assert.Equal(t, 1, processed)
	assert.Equal(t, 1, store.archivedCount())
	assert.Empty(t, ratings.deltaCalls())
}

func TestRunIsolatesDeltaFailures(t *testing.T) {
	t.Parallel()

	store := newFakeTopicStore(
		agedTopic("topic-0001", enum.TopicTypeConflict, enum.CategoryCleanliness, "alice", "bob", "carol"),
	)
	ratings := &fakeRatingStore{failUser: "bob"}
	notify := &fakeNotifier{}
	worker := rating.New(store, ratings, notify, testConfig(), zap.NewNop())

	processed, err := worker.Run(t.Context())
	require.NoError(t, err)
	assert.Equal(t, 1, processed)

	// The failing target gets no delta and no notification, the rest do
	calls := ratings.deltaCalls()
	require.Len(t, calls, 2)
	assert.ElementsMatch(t, []string{"alice", "carol"}, []string{calls[0].userID, calls[1].userID})
	assert.ElementsMatch(t, []string{"alice", "carol"}, notify.sent)

	// Archival happens regardless of delta failures
	assert.Equal(t, 1, store.archivedCount())
}

func TestRunAbortsOnPageReadError(t *testing.T) {
	t.Parallel()

	store := newFakeTopicStore(
		agedTopic("topic-0001", enum.TopicTypeGeneral, ""),
	)
	store.pageErr = errStore

	worker := rating.New(store, &fakeRatingStore{}, &fakeNotifier{}, testConfig(), zap.NewNop())

	processed, err := worker.Run(t.Context())
	require.ErrorIs(t, err, errStore)
	assert.Zero(t, processed)
	assert.Zero(t, store.archivedCount())
}

func TestRunStopsOnContextCancellation(t *testing.T) {
	t.Parallel()

	topics := make([]*types.Topic, 5)
	for i := range topics {
		topics[i] = agedTopic(fmt.Sprintf("topic-%04d", i), enum.TopicTypeGeneral, "")
	}

	store := newFakeTopicStore(topics...)
	worker := rating.New(store, &fakeRatingStore{}, &fakeNotifier{}, testConfig(), zap.NewNop())

	ctx, cancel := context.WithCancel(t.Context())
	cancel()

	processed, err := worker.Run(ctx)
	require.ErrorIs(t, err, context.Canceled)
	assert.Zero(t, processed)
}

func TestRunAfterRestartSkipsArchivedTopics(t *testing.T) {
	t.Parallel()

	topics := make([]*types.Topic, 7)
	for i := range topics {
		topics[i] = agedTopic(fmt.Sprintf("topic-%04d", i), enum.TopicTypeGeneral, "")
	}

	store := newFakeTopicStore(topics...)
	worker := rating.New(store, &fakeRatingStore{}, &fakeNotifier{}, testConfig(), zap.NewNop())

	processed, err := worker.Run(t.Context())
	require.NoError(t, err)
	assert.Equal(t, 7, processed)

	// A fresh run after the first pass finds nothing left to archive
	processed, err = worker.Run(t.Context())
	require.NoError(t, err)
	assert.Zero(t, processed)
	assert.Equal(t, 7, store.archivedCount())
}
