package seed

import (
	"net/http"
	"sync"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/wellness/wellness/internal/domain/preventive"
)

// Handler exposes seeding over HTTP for development and demo environments.
// A mutex serializes runs: concurrent reseeds against one store would race
// each other's clear phases.
type Handler struct {
	stores Stores
	rules  preventive.Repository
	logger zerolog.Logger
	mu     sync.Mutex
}

func NewHandler(stores Stores, rules preventive.Repository, logger zerolog.Logger) *Handler {
	return &Handler{stores: stores, rules: rules, logger: logger}
}

// RegisterRoutes registers seeding routes on the given group.
func (h *Handler) RegisterRoutes(g *echo.Group) {
	g.POST("/seed", h.handleSeed)
	g.POST("/seed/rules", h.handleSeedRules)
}

func (h *Handler) handleSeed(c echo.Context) error {
	h.mu.Lock()
	defer h.mu.Unlock()

	cfg := DefaultConfig()
	if err := c.Bind(&cfg); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
	}
	if err := cfg.Validate(); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
	}

	seeder := NewSeeder(cfg, h.stores, h.logger)
	result, err := seeder.Run(c.Request().Context())
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}

	return c.JSON(http.StatusOK, result)
}

func (h *Handler) handleSeedRules(c echo.Context) error {
	h.mu.Lock()
	defer h.mu.Unlock()

	if err := preventive.SeedRules(c.Request().Context(), h.rules, h.logger); err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}

	return c.JSON(http.StatusOK, map[string]int{"rules": len(preventive.Catalog)})
}
