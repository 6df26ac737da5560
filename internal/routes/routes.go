package routes

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/example/activ/internal/config"
	"github.com/example/activ/internal/events"
	"github.com/example/activ/internal/handlers"
	"github.com/example/activ/internal/middleware"
	"github.com/example/activ/internal/store"
)

// Register wires up all HTTP routes.
func Register(app *fiber.App, db *gorm.DB, cfg *config.Config, producer *events.Producer) {
	members := store.NewMemberStore(db)
	business := store.NewBusinessInfoStore(db)
	financial := store.NewFinancialInfoStore(db)
	declarations := store.NewDeclarationStore(db)
	profiles := store.NewProfileStore(db)

	authHandler := handlers.NewAuthHandler(members, cfg, producer)
	membersHandler := handlers.NewMembersHandler(members)
	profileHandler := handlers.NewProfileHandler(members, business, financial, declarations, profiles, producer)
	reviewHandler := handlers.NewReviewHandler(members, declarations)

	api := app.Group("/api")

	// Auth routes
	auth := api.Group("/auth")
	auth.Post("/register", authHandler.Register)
	auth.Post("/login", authHandler.Login)
	auth.Get("/member/:memberId", authHandler.GetMember)
	auth.Get("/member-by-email/:email", authHandler.GetMemberByEmail)

	// Member directory
	directory := api.Group("/members")
	directory.Get("/by-email", membersHandler.GetByEmail)
	directory.Get("/search/:query", membersHandler.Search)
	directory.Get("/", membersHandler.List)
	directory.Post("/", membersHandler.Create)
	directory.Get("/:id", membersHandler.Get)
	directory.Put("/:id", membersHandler.Update)
	directory.Delete("/:id", membersHandler.Delete)

	// Profile sections and aggregation
	profile := api.Group("/profile")
	profile.Get("/business-info/:memberId", profileHandler.GetBusinessInfo)
	profile.Post("/business-info", profileHandler.SaveBusinessInfo)
	profile.Get("/financial-info/:memberId", profileHandler.GetFinancialInfo)
	profile.Post("/financial-info", profileHandler.SaveFinancialInfo)
	profile.Get("/declaration/:memberId", profileHandler.GetDeclaration)
	profile.Post("/declaration", profileHandler.SaveDeclaration)
	profile.Put("/complete-profile/:memberId", profileHandler.CompleteProfile)
	profile.Get("/:memberId", profileHandler.GetFullProfile)

	// Review surface, session token required
	admin := api.Group("/admin", middleware.AuthMiddleware(cfg))
	admin.Get("/stats", reviewHandler.Stats)
	admin.Put("/declarations/:memberId/review", reviewHandler.ReviewDeclaration)
}
