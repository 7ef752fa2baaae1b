package routes

import (
	"time"

	"github.com/Gathaus/WellnesAiApp-sub000/internal/config"
	"github.com/Gathaus/WellnesAiApp-sub000/internal/handlers"
	"github.com/Gathaus/WellnesAiApp-sub000/internal/middleware"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/limiter"
)

func Setup(
	app *fiber.App,
	cfg *config.Config,
	healthHandler *handlers.HealthHandler,
	sessionHandler *handlers.SessionHandler,
	purchaseHandler *handlers.PurchaseHandler,
) {
	api := app.Group("/api")

	// Local shell traffic: 120 req/min
	api.Use(limiter.New(limiter.Config{
		Max:               120,
		Expiration:        1 * time.Minute,
		LimiterMiddleware: limiter.SlidingWindow{},
		KeyGenerator:      func(c *fiber.Ctx) string { return c.IP() },
		Next:              func(c *fiber.Ctx) bool { return c.Path() == "/api/events" },
	}))

	api.Get("/health", healthHandler.Check)

	protected := api.Group("", middleware.BridgeProtected(cfg))

	protected.Get("/state", sessionHandler.State)
	protected.Get("/events", sessionHandler.Events)

	protected.Post("/user", sessionHandler.CreateUser)
	protected.Put("/user", sessionHandler.UpdateUser)

	protected.Post("/messages", sessionHandler.SendMessage)

	protected.Post("/moods", sessionHandler.LogMood)
	protected.Get("/moods/summary", sessionHandler.MoodSummary)
	protected.Get("/recommendation", sessionHandler.Recommendation)

	protected.Get("/goals/suggestions", sessionHandler.GoalSuggestions)
	protected.Post("/goals", sessionHandler.AddGoal)
	protected.Put("/goals/:id", sessionHandler.UpdateGoal)
	protected.Delete("/goals/:id", sessionHandler.DeleteGoal)
	protected.Post("/goals/:id/toggle", sessionHandler.ToggleGoal)

	protected.Post("/content/affirmation", sessionHandler.RefreshAffirmation)
	protected.Post("/content/inspirations", sessionHandler.RefreshInspirations)
	protected.Post("/content/favorites", sessionHandler.ToggleFavorite)
	protected.Get("/tips", sessionHandler.Tips)
	protected.Get("/meditations", sessionHandler.Meditations)

	protected.Put("/settings", sessionHandler.UpdateSettings)

	protected.Get("/subscription", sessionHandler.Subscription)
	protected.Post("/subscription/trial", sessionHandler.StartTrial)
	protected.Put("/subscription/premium", sessionHandler.UpdatePremium)
	protected.Post("/purchases/events", purchaseHandler.HandleEvent)
}
