package rating

import (
	"context"
	"fmt"
	"time"

	"github.com/brkuhgk/Nestara/internal/database/types"
	"github.com/brkuhgk/Nestara/internal/database/types/enum"
	"github.com/sourcegraph/conc/pool"
	"go.uber.org/zap"
)

// TopicStore pages aged topics and archives them.
type TopicStore interface {
	GetAgedActiveTopics(ctx context.Context, cutoff time.Time, afterID string, limit int) ([]*types.Topic, error)
	ArchiveTopic(ctx context.Context, topicID string, archivedAt time.Time) error
}

// RatingStore applies bounded rating adjustments.
type RatingStore interface {
	ApplyDelta(
		ctx context.Context, userID string, category enum.RatingCategory,
		delta int, reason, topicID string,
	) (int, error)
}

// Notifier delivers best-effort notifications to affected users.
type Notifier interface {
	Notify(ctx context.Context, userID, notifType, message string, metadata map[string]any)
}

// Config holds the tunables for a lifecycle run.
type Config struct {
	// TopicMaxAgeDays is how old an active topic must be before it ages out.
	TopicMaxAgeDays int
	// BatchSize is how many topics each page read fetches.
	BatchSize int
	// ConflictPenalty is subtracted from each target of an aged conflict topic.
	ConflictPenalty int
	// MentionReward is added to each target of an aged mentions topic.
	MentionReward int
}

// Worker ages out active topics. Each run scans topics older than the cutoff
// in id order, applies rating deltas to conflict and mention targets, and
// archives every scanned topic regardless of delta outcomes.
type Worker struct {
	topics  TopicStore
	ratings RatingStore
	notify  Notifier
	config  Config
	logger  *zap.Logger
}

// New creates a lifecycle worker.
func New(topics TopicStore, ratings RatingStore, notify Notifier, config Config, logger *zap.Logger) *Worker {
	return &Worker{
		topics:  topics,
		ratings: ratings,
		notify:  notify,
		config:  config,
		logger:  logger.Named("rating_worker"),
	}
}

// Name identifies the worker in scheduler logs and status reports.
func (w *Worker) Name() string {
	return "topic_lifecycle"
}

// Run performs one full scan and returns the number of topics archived.
// Page read errors abort the run; per-topic failures are logged and the scan
// continues so one bad topic cannot wedge the whole backlog.
func (w *Worker) Run(ctx context.Context) (int, error) {
	cutoff := time.Now().AddDate(0, 0, -w.config.TopicMaxAgeDays)
	processed := 0
	cursor := ""

	for {
		if err := ctx.Err(); err != nil {
			return processed, err
		}

		topics, err := w.topics.GetAgedActiveTopics(ctx, cutoff, cursor, w.config.BatchSize)
		if err != nil {
			return processed, fmt.Errorf("failed to fetch aged topics: %w", err)
		}

		if len(topics) == 0 {
			return processed, nil
		}

		for _, topic := range topics {
			w.processTopic(ctx, topic)
			processed++
		}

		cursor = topics[len(topics)-1].ID
	}
}

// processTopic applies the topic's rating effect and archives it. Archival is
// unconditional: delta failures leave individual ratings untouched but never
// keep the topic active past its age.
func (w *Worker) processTopic(ctx context.Context, topic *types.Topic) {
	delta, notifType := w.effect(topic)

	if delta != 0 && len(topic.CreatedFor) > 0 {
		p := pool.New().WithContext(ctx)

		for _, target := range topic.CreatedFor {
			p.Go(func(ctx context.Context) error {
				w.applyToTarget(ctx, topic, target, delta, notifType)
				return nil
			})
		}

		_ = p.Wait()
	}

	if err := w.topics.ArchiveTopic(ctx, topic.ID, time.Now()); err != nil {
		w.logger.Error("Failed to archive topic",
			zap.String("topicID", topic.ID),
			zap.Error(err))

		return
	}

	w.logger.Debug("Archived aged topic",
		zap.String("topicID", topic.ID),
		zap.String("type", topic.Type.String()),
		zap.Int("targets", len(topic.CreatedFor)),
		zap.Int("delta", delta))
}

// applyToTarget adjusts one target's rating and notifies them. Failures are
// logged per target so one failed adjustment cannot block the others.
func (w *Worker) applyToTarget(ctx context.Context, topic *types.Topic, target string, delta int, notifType string) {
	reason := fmt.Sprintf("topic aged out (%s)", topic.Type)

	newValue, err := w.ratings.ApplyDelta(ctx, target, topic.Category, delta, reason, topic.ID)
	if err != nil {
		w.logger.Error("Failed to apply rating delta",
			zap.String("topicID", topic.ID),
			zap.String("userID", target),
			zap.Int("delta", delta),
			zap.Error(err))

		return
	}

	message := fmt.Sprintf("Your %s rating changed by %+d", topic.Category, delta)
	w.notify.Notify(ctx, target, notifType, message, map[string]any{
		"topicId":  topic.ID,
		"category": topic.Category.String(),
		"delta":    delta,
		"newValue": newValue,
	})
}

// effect maps a topic type to its rating delta and notification type.
// General topics carry no rating effect.
func (w *Worker) effect(topic *types.Topic) (int, string) {
	switch topic.Type {
	case enum.TopicTypeConflict:
		return -w.config.ConflictPenalty, types.NotificationRatingPenalty
	case enum.TopicTypeMentions:
		return w.config.MentionReward, types.NotificationRatingReward
	default:
		return 0, ""
	}
}
