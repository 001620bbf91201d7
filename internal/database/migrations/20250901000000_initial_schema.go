package migrations

import (
	"context"
	"fmt"

	"github.com/brkuhgk/Nestara/internal/database/types"
	"github.com/uptrace/bun"
)

func init() {
	Migrations.MustRegister(func(ctx context.Context, db *bun.DB) error {
		tables := []struct {
			model any
			name  string
		}{
			{(*types.User)(nil), "users"},
			{(*types.House)(nil), "houses"},
			{(*types.HouseMember)(nil), "house_members"},
			{(*types.UserRating)(nil), "user_ratings"},
			{(*types.RatingHistory)(nil), "rating_histories"},
			{(*types.Topic)(nil), "topics"},
			{(*types.TopicVote)(nil), "topic_votes"},
			{(*types.TimeBlock)(nil), "time_blocks"},
			{(*types.Notification)(nil), "notifications"},
		}

		for _, table := range tables {
			_, err := db.NewCreateTable().
				Model(table.model).
				IfNotExists().
				Exec(ctx)
			if err != nil {
				return fmt.Errorf("failed to create table %s: %w", table.name, err)
			}
		}

		return nil
	}, func(ctx context.Context, db *bun.DB) error {
		models := []any{
			(*types.Notification)(nil),
			(*types.TimeBlock)(nil),
			(*types.TopicVote)(nil),
			(*types.Topic)(nil),
			(*types.RatingHistory)(nil),
			(*types.UserRating)(nil),
			(*types.HouseMember)(nil),
			(*types.House)(nil),
			(*types.User)(nil),
		}

		for _, model := range models {
			if _, err := db.NewDropTable().Model(model).IfExists().Exec(ctx); err != nil {
				return fmt.Errorf("failed to drop table: %w", err)
			}
		}

		return nil
	})
}
