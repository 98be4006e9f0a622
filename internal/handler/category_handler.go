package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"neuralpulse/internal/domain"
	"neuralpulse/internal/repository"
)

// CategoryHandler handles category HTTP requests.
type CategoryHandler struct {
	categories repository.CategoryRepository
}

// NewCategoryHandler creates a new CategoryHandler.
func NewCategoryHandler(categories repository.CategoryRepository) *CategoryHandler {
	return &CategoryHandler{categories: categories}
}

// List handles GET /api/v1/categories
func (h *CategoryHandler) List(c *gin.Context) {
	categories, err := h.categories.List(c.Request.Context())
	if err != nil {
		respondError(c, "categories", err)
		return
	}

	c.JSON(http.StatusOK, categories)
}

// Create handles POST /api/v1/categories
func (h *CategoryHandler) Create(c *gin.Context) {
	var input domain.CategoryInput
	if err := decodeJSON(c, &input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body: " + err.Error()})
		return
	}

	category, err := h.categories.Create(c.Request.Context(), input)
	if err != nil {
		respondError(c, "category", err)
		return
	}

	c.JSON(http.StatusCreated, category)
}
