package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"neuralpulse/internal/domain"
	"neuralpulse/internal/logger"
	"neuralpulse/internal/middleware"
	"neuralpulse/internal/repository"
)

// ArticleHandler handles article-related HTTP requests.
type ArticleHandler struct {
	articles  repository.ArticleRepository
	analytics repository.AnalyticsRepository
}

// NewArticleHandler creates a new ArticleHandler.
func NewArticleHandler(articles repository.ArticleRepository, analytics repository.AnalyticsRepository) *ArticleHandler {
	return &ArticleHandler{
		articles:  articles,
		analytics: analytics,
	}
}

// List handles GET /api/v1/articles
func (h *ArticleHandler) List(c *gin.Context) {
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

	filter := domain.ArticleFilter{
		Status:   c.Query("status"),
		Category: c.Query("category"),
		Search:   c.Query("search"),
		Limit:    limit,
		Offset:   offset,
	}
	if filter.Status != "" && !domain.IsValidArticleStatus(filter.Status) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "status must be one of: draft, published, archived"})
		return
	}

	articles, err := h.articles.List(c.Request.Context(), filter)
	if err != nil {
		respondError(c, "articles", err)
		return
	}

	c.JSON(http.StatusOK, articles)
}

// GetByID handles GET /api/v1/articles/:id
func (h *ArticleHandler) GetByID(c *gin.Context) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "id must be a valid UUID"})
		return
	}

	article, err := h.articles.GetByID(c.Request.Context(), id)
	if err != nil {
		respondError(c, "article", err)
		return
	}

	c.JSON(http.StatusOK, article)
}

// GetBySlug handles GET /api/v1/articles/slug/:slug
func (h *ArticleHandler) GetBySlug(c *gin.Context) {
	article, err := h.articles.GetBySlug(c.Request.Context(), c.Param("slug"))
	if err != nil {
		respondError(c, "article", err)
		return
	}

	c.JSON(http.StatusOK, article)
}

// Create handles POST /api/v1/articles
func (h *ArticleHandler) Create(c *gin.Context) {
	var input domain.ArticleInput
	if err := decodeJSON(c, &input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body: " + err.Error()})
		return
	}

	article, err := h.articles.Create(c.Request.Context(), input)
	if err != nil {
		respondError(c, "article", err)
		return
	}

	c.JSON(http.StatusCreated, article)
}

// Update handles PUT /api/v1/articles/:id
func (h *ArticleHandler) Update(c *gin.Context) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "id must be a valid UUID"})
		return
	}

	var update domain.ArticleUpdate
	if err := decodeJSON(c, &update); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body: " + err.Error()})
		return
	}

	article, err := h.articles.Update(c.Request.Context(), id, update)
	if err != nil {
		respondError(c, "article", err)
		return
	}

	c.JSON(http.StatusOK, article)
}

// Delete handles DELETE /api/v1/articles/:id
func (h *ArticleHandler) Delete(c *gin.Context) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "id must be a valid UUID"})
		return
	}

	if err := h.articles.Delete(c.Request.Context(), id); err != nil {
		respondError(c, "article", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "article deleted"})
}

// RecordView handles POST /api/v1/articles/:id/views
//
// The counter increment happens server-side in one atomic statement; the
// analytics event is appended afterwards. A failed event append does not
// undo the counted view, it is logged and the new count still returned.
func (h *ArticleHandler) RecordView(c *gin.Context) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "id must be a valid UUID"})
		return
	}

	views, err := h.articles.IncrementViews(c.Request.Context(), id)
	if err != nil {
		respondError(c, "article", err)
		return
	}

	var ip, ua *string
	if v := c.ClientIP(); v != "" {
		ip = &v
	}
	if v := c.Request.UserAgent(); v != "" {
		ua = &v
	}
	if err := h.analytics.RecordView(c.Request.Context(), id, ip, ua); err != nil {
		logger.WithArticleID(id).
			Warn("view counted but event not recorded",
				"request_id", middleware.GetRequestID(c), "error", err)
	}

	c.JSON(http.StatusOK, gin.H{"views": views})
}
