package handlers

import (
	"time"

	"github.com/Gathaus/WellnesAiApp-sub000/internal/catalog"
	"github.com/Gathaus/WellnesAiApp-sub000/internal/config"
	"github.com/Gathaus/WellnesAiApp-sub000/internal/database"
	"github.com/Gathaus/WellnesAiApp-sub000/internal/dto"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

type HealthHandler struct {
	db  *gorm.DB
	cfg *config.Config
}

func NewHealthHandler(db *gorm.DB, cfg *config.Config) *HealthHandler {
	return &HealthHandler{db: db, cfg: cfg}
}

func (h *HealthHandler) Check(c *fiber.Ctx) error {
	dbStatus := "ok"
	if err := database.Ping(h.db); err != nil {
		dbStatus = "unhealthy: " + err.Error()
	}

	return c.JSON(dto.HealthResponse{
		Status:         "ok",
		Timestamp:      time.Now().UTC().Format(time.RFC3339),
		DB:             dbStatus,
		CatalogVersion: catalog.Version,
		RemoteEnabled:  h.cfg.RemoteEnabled(),
	})
}
