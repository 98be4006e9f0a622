package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"neuralpulse/internal/domain"
	"neuralpulse/internal/repository"
)

// SubscriberHandler handles newsletter subscriber HTTP requests.
type SubscriberHandler struct {
	subscribers repository.SubscriberRepository
}

// NewSubscriberHandler creates a new SubscriberHandler.
func NewSubscriberHandler(subscribers repository.SubscriberRepository) *SubscriberHandler {
	return &SubscriberHandler{subscribers: subscribers}
}

type subscribeRequest struct {
	Email  string `json:"email"`
	Source string `json:"source"`
}

type subscriberStatusRequest struct {
	Status string `json:"status"`
}

// List handles GET /api/v1/subscribers
func (h *SubscriberHandler) List(c *gin.Context) {
	limit, err := intQuery(c, "limit")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	offset, err := intQuery(c, "offset")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	filter := domain.SubscriberFilter{
		Status: c.Query("status"),
		Limit:  limit,
		Offset: offset,
	}
	if filter.Status != "" && !domain.IsValidSubscriberStatus(filter.Status) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "status must be one of: active, inactive, unsubscribed"})
		return
	}

	subscribers, err := h.subscribers.List(c.Request.Context(), filter)
	if err != nil {
		respondError(c, "subscribers", err)
		return
	}

	c.JSON(http.StatusOK, subscribers)
}

// Create handles POST /api/v1/subscribers
func (h *SubscriberHandler) Create(c *gin.Context) {
	var req subscribeRequest
	if err := decodeJSON(c, &req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body: " + err.Error()})
		return
	}

	subscriber, err := h.subscribers.Create(c.Request.Context(), req.Email, req.Source)
	if err != nil {
		respondError(c, "subscriber", err)
		return
	}

	c.JSON(http.StatusCreated, subscriber)
}

// UpdateStatus handles PUT /api/v1/subscribers/:id
func (h *SubscriberHandler) UpdateStatus(c *gin.Context) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "id must be a valid UUID"})
		return
	}

	var req subscriberStatusRequest
	if err := decodeJSON(c, &req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body: " + err.Error()})
		return
	}

	subscriber, err := h.subscribers.UpdateStatus(c.Request.Context(), id, req.Status)
	if err != nil {
		respondError(c, "subscriber", err)
		return
	}

	c.JSON(http.StatusOK, subscriber)
}

// Delete handles DELETE /api/v1/subscribers/:id
func (h *SubscriberHandler) Delete(c *gin.Context) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "id must be a valid UUID"})
		return
	}

	if err := h.subscribers.Delete(c.Request.Context(), id); err != nil {
		respondError(c, "subscriber", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "subscriber deleted"})
}
