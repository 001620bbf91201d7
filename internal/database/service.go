package database

import (
	"github.com/brkuhgk/Nestara/internal/database/service"
	"github.com/uptrace/bun"
	"go.uber.org/zap"
)

// Service provides access to all business logic services.
type Service struct {
	rating    *service.RatingService
	topic     *service.TopicService
	vote      *service.VoteService
	timeBlock *service.TimeBlockService
}

// NewService creates a new service instance with all services.
func NewService(db *bun.DB, repository *Repository, logger *zap.Logger) *Service {
	return &Service{
		rating:    service.NewRating(db, repository.Rating(), logger),
		topic:     service.NewTopic(repository.Topic(), repository.House(), repository.Vote(), logger),
		vote:      service.NewVote(repository.Topic(), repository.Vote(), repository.House(), logger),
		timeBlock: service.NewTimeBlock(repository.TimeBlock(), logger),
	}
}

// Rating returns the rating service.
func (s *Service) Rating() *service.RatingService {
	return s.rating
}

// Topic returns the topic service.
func (s *Service) Topic() *service.TopicService {
	return s.topic
}

// Vote returns the vote service.
func (s *Service) Vote() *service.VoteService {
	return s.vote
}

// TimeBlock returns the time block service.
func (s *Service) TimeBlock() *service.TimeBlockService {
	return s.timeBlock
}
