package migrations

import (
	"context"

	"github.com/uptrace/bun"
)

func init() {
	Migrations.MustRegister(func(ctx context.Context, db *bun.DB) error {
		_, err := db.NewRaw(`
			-- Lifecycle scan: active topics past the cutoff, cursored by id
			CREATE INDEX IF NOT EXISTS idx_topics_status_created_id
			ON topics (status, created_at, id);

			CREATE INDEX IF NOT EXISTS idx_topics_house_created
			ON topics (house_id, created_at DESC);

			-- Latest vote per (topic, voter) and full-history tallying
			CREATE INDEX IF NOT EXISTS idx_topic_votes_topic_user_time
			ON topic_votes (topic_id, user_id, created_at DESC);

			CREATE INDEX IF NOT EXISTS idx_topic_votes_topic
			ON topic_votes (topic_id, vote_type);

			CREATE INDEX IF NOT EXISTS idx_rating_histories_user_time
			ON rating_histories (user_id, created_at DESC);

			CREATE INDEX IF NOT EXISTS idx_house_members_user
			ON house_members (user_id, status);

			CREATE INDEX IF NOT EXISTS idx_time_blocks_slot
			ON time_blocks (house_id, location, date, start_time);

			CREATE INDEX IF NOT EXISTS idx_notifications_user_time
			ON notifications (user_id, created_at DESC);
		`).Exec(ctx)
		return err
	}, func(ctx context.Context, db *bun.DB) error {
		_, err := db.NewRaw(`
			DROP INDEX IF EXISTS idx_topics_status_created_id;
			DROP INDEX IF EXISTS idx_topics_house_created;
			DROP INDEX IF EXISTS idx_topic_votes_topic_user_time;
			DROP INDEX IF EXISTS idx_topic_votes_topic;
			DROP INDEX IF EXISTS idx_rating_histories_user_time;
			DROP INDEX IF EXISTS idx_house_members_user;
			DROP INDEX IF EXISTS idx_time_blocks_slot;
			DROP INDEX IF EXISTS idx_notifications_user_time;
		`).Exec(ctx)
		return err
	})
}
