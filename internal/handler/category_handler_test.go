package handler

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"neuralpulse/internal/domain"
	"neuralpulse/internal/mocks"
)

func newCategoryRouter(h *CategoryHandler) *gin.Engine {
	router := gin.New()
	v1 := router.Group("/api/v1")
	v1.GET("/categories", h.List)
	v1.POST("/categories", h.Create)
	return router
}

func TestCategoryHandler_List(t *testing.T) {
	categories := mocks.NewMockCategoryRepository(t)
	handler := NewCategoryHandler(categories)

	categories.EXPECT().List(mock.Anything).
		Return([]domain.Category{{Name: "Engineering", Slug: "engineering"}}, nil)

	router := newCategoryRouter(handler)
	req := httptest.NewRequest(http.MethodGet, "/api/v1/categories", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "engineering")
}

func TestCategoryHandler_Create(t *testing.T) {
	t.Run("creates category", func(t *testing.T) {
		categories := mocks.NewMockCategoryRepository(t)
		handler := NewCategoryHandler(categories)

		categories.EXPECT().
			Create(mock.Anything, mock.AnythingOfType("domain.CategoryInput")).
			Return(&domain.Category{Name: "Engineering", Slug: "engineering"}, nil)

		router := newCategoryRouter(handler)
		req := httptest.NewRequest(http.MethodPost, "/api/v1/categories", strings.NewReader(`{"name":"Engineering","slug":"engineering"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusCreated, w.Code)
	})

	t.Run("duplicate slug maps to 409", func(t *testing.T) {
		categories := mocks.NewMockCategoryRepository(t)
		handler := NewCategoryHandler(categories)

		categories.EXPECT().
			Create(mock.Anything, mock.AnythingOfType("domain.CategoryInput")).
			Return(nil, domain.ErrConflict)

		router := newCategoryRouter(handler)
		req := httptest.NewRequest(http.MethodPost, "/api/v1/categories", strings.NewReader(`{"name":"Engineering","slug":"engineering"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusConflict, w.Code)
	})

	t.Run("rejects unknown JSON fields", func(t *testing.T) {
		handler := NewCategoryHandler(mocks.NewMockCategoryRepository(t))

		router := newCategoryRouter(handler)
		req := httptest.NewRequest(http.MethodPost, "/api/v1/categories", strings.NewReader(`{"name":"Engineering","slug":"engineering","icon":"gear"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}
