package database

import (
	"github.com/brkuhgk/Nestara/internal/database/models"
	"github.com/uptrace/bun"
	"go.uber.org/zap"
)

// Repository provides access to all database models.
type Repository struct {
	user         *models.UserModel
	house        *models.HouseModel
	topic        *models.TopicModel
	vote         *models.VoteModel
	rating       *models.RatingModel
	timeBlock    *models.TimeBlockModel
	notification *models.NotificationModel
}

// NewRepository creates a new repository instance with all models.
func NewRepository(db *bun.DB, logger *zap.Logger) *Repository {
	return &Repository{
		user:         models.NewUser(db, logger),
		house:        models.NewHouse(db, logger),
		topic:        models.NewTopic(db, logger),
		vote:         models.NewVote(db, logger),
		rating:       models.NewRating(db, logger),
		timeBlock:    models.NewTimeBlock(db, logger),
		notification: models.NewNotification(db, logger),
	}
}

// User returns the user model repository.
func (r *Repository) User() *models.UserModel {
	return r.user
}

// House returns the house model repository.
func (r *Repository) House() *models.HouseModel {
	return r.house
}

// Topic returns the topic model repository.
func (r *Repository) Topic() *models.TopicModel {
	return r.topic
}

// Vote returns the vote model repository.
func (r *Repository) Vote() *models.VoteModel {
	return r.vote
}

// Rating returns the rating model repository.
func (r *Repository) Rating() *models.RatingModel {
	return r.rating
}

// TimeBlock returns the time block model repository.
func (r *Repository) TimeBlock() *models.TimeBlockModel {
	return r.timeBlock
}

// Notification returns the notification model repository.
func (r *Repository) Notification() *models.NotificationModel {
	return r.notification
}
