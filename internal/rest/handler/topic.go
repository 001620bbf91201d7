package handler

import (
	"net/http"
	"time"

	"github.com/brkuhgk/Nestara/internal/database"
	"github.com/brkuhgk/Nestara/internal/database/types"
	"github.com/brkuhgk/Nestara/internal/database/types/enum"
	"github.com/brkuhgk/Nestara/internal/notifier"
	"github.com/brkuhgk/Nestara/internal/rest/middleware/auth"
	restTypes "github.com/brkuhgk/Nestara/internal/rest/types"
	"github.com/uptrace/bunrouter"
	"go.uber.org/zap"
)

// TopicHandler handles topic creation, listing and voting.
type TopicHandler struct {
	db     database.Client
	notify *notifier.Notifier
	logger *zap.Logger
}

// NewTopicHandler creates a new topic handler.
func NewTopicHandler(db database.Client, notify *notifier.Notifier, logger *zap.Logger) *TopicHandler {
	return &TopicHandler{
		db:     db,
		notify: notify,
		logger: logger,
	}
}

// CreateTopic opens a topic in a house and notifies its targets.
func (h *TopicHandler) CreateTopic(w http.ResponseWriter, req bunrouter.Request) error {
	claims := auth.FromContext(req.Context())
	houseID := req.Param("id")

	var body restTypes.CreateTopicRequest
	if err := decodeJSON(req, &body); err != nil || body.Description == "" {
		return writeJSON(w, http.StatusBadRequest, restTypes.ErrorResponse{Error: "description is required"})
	}

	topic := &types.Topic{
		HouseID:     houseID,
		CreatedBy:   claims.UserID,
		CreatedFor:  body.CreatedFor,
		Type:        enum.TopicType(body.Type),
		Category:    enum.RatingCategory(body.Category),
		Description: body.Description,
		Images:      body.Images,
		CreatedAt:   time.Now(),
	}

	created, err := h.db.Service().Topic().CreateTopic(req.Context(), topic)
	if err != nil {
		return writeError(w, h.logger, err)
	}

	// Mentioned users learn about the topic immediately
	for _, target := range created.CreatedFor {
		h.notify.Notify(req.Context(), target, types.NotificationTopicMention,
			"You were mentioned in a new topic", map[string]any{
				"topicId": created.ID,
				"houseId": created.HouseID,
				"type":    created.Type.String(),
			})
	}

	return writeJSON(w, http.StatusCreated, created)
}

// GetHouseTopics lists a house's topics with the caller's vote position.
// Optional type and status query parameters filter the list.
func (h *TopicHandler) GetHouseTopics(w http.ResponseWriter, req bunrouter.Request) error {
	claims := auth.FromContext(req.Context())
	houseID := req.Param("id")

	query := req.URL.Query()

	var topicType enum.TopicType
	if raw := query.Get("type"); raw != "" {
		parsed, err := enum.ParseTopicType(raw)
		if err != nil {
			return writeError(w, h.logger, err)
		}

		topicType = parsed
	}

	var status enum.TopicStatus
	if raw := query.Get("status"); raw != "" {
		parsed, err := enum.ParseTopicStatus(raw)
		if err != nil {
			return writeError(w, h.logger, err)
		}

		status = parsed
	}

	topics, err := h.db.Service().Topic().GetHouseTopics(req.Context(), houseID, claims.UserID, topicType, status)
	if err != nil {
		return writeError(w, h.logger, err)
	}

	return writeJSON(w, http.StatusOK, topics)
}

// GetTopic returns a single topic.
func (h *TopicHandler) GetTopic(w http.ResponseWriter, req bunrouter.Request) error {
	claims := auth.FromContext(req.Context())

	topic, err := h.db.Model().Topic().GetTopicByID(req.Context(), req.Param("id"))
	if err != nil {
		return writeError(w, h.logger, err)
	}

	if _, err := h.db.Model().House().GetMember(req.Context(), topic.HouseID, claims.UserID); err != nil {
		return writeError(w, h.logger, err)
	}

	return writeJSON(w, http.StatusOK, topic)
}

// Vote casts an upvote or downvote on a topic.
func (h *TopicHandler) Vote(w http.ResponseWriter, req bunrouter.Request) error {
	claims := auth.FromContext(req.Context())
	topicID := req.Param("id")

	var body restTypes.VoteRequest
	if err := decodeJSON(req, &body); err != nil {
		return writeJSON(w, http.StatusBadRequest, restTypes.ErrorResponse{Error: "invalid request body"})
	}

	voteType, err := enum.ParseVoteType(body.VoteType)
	if err != nil {
		return writeError(w, h.logger, err)
	}

	result, err := h.db.Service().Vote().CastVote(req.Context(), topicID, claims.UserID, voteType)
	if err != nil {
		return writeError(w, h.logger, err)
	}

	return writeJSON(w, http.StatusOK, result)
}

// GetVoteStatus reports the caller's position and the current tally.
func (h *TopicHandler) GetVoteStatus(w http.ResponseWriter, req bunrouter.Request) error {
	claims := auth.FromContext(req.Context())

	status, err := h.db.Service().Vote().GetVoteStatus(req.Context(), req.Param("id"), claims.UserID)
	if err != nil {
		return writeError(w, h.logger, err)
	}

	return writeJSON(w, http.StatusOK, status)
}
