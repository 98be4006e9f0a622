package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
)

// ServiceName identifies this service in probe responses.
const ServiceName = "neuralpulse"

// Version is stamped at build time:
//
//	go build -ldflags "-X neuralpulse/internal/handler.Version=..."
var Version = "dev"

// HealthHandler answers the operational probes. The storage check pings the
// pool the gateway runs on; there is no other backing service to probe.
type HealthHandler struct {
	db *pgxpool.Pool
}

// NewHealthHandler creates a new HealthHandler.
func NewHealthHandler(db *pgxpool.Pool) *HealthHandler {
	return &HealthHandler{db: db}
}

// HealthResponse is the body of the /health probe.
type HealthResponse struct {
	Service  string            `json:"service"`
	Status   string            `json:"status"`
	Version  string            `json:"version,omitempty"`
	Services map[string]string `json:"services,omitempty"`
}

// Health handles GET /health.
func (h *HealthHandler) Health(c *gin.Context) {
	services := map[string]string{
		"storage": "healthy",
	}

	if err := h.db.Ping(c.Request.Context()); err != nil {
		services["storage"] = "unhealthy"
		c.JSON(http.StatusServiceUnavailable, HealthResponse{
			Service:  ServiceName,
			Status:   "unhealthy",
			Version:  Version,
			Services: services,
		})
		return
	}

	c.JSON(http.StatusOK, HealthResponse{
		Service:  ServiceName,
		Status:   "healthy",
		Version:  Version,
		Services: services,
	})
}

// Ready handles GET /ready. The service is ready once storage answers.
func (h *HealthHandler) Ready(c *gin.Context) {
	if err := h.db.Ping(c.Request.Context()); err != nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"service": ServiceName, "status": "not ready"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"service": ServiceName, "status": "ready"})
}

// Live handles GET /live. Liveness never touches storage.
func (h *HealthHandler) Live(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"service": ServiceName, "status": "alive"})
}
