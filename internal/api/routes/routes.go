package routes

import (
	"lido-club-backend/internal/api/handlers"
	"lido-club-backend/internal/api/middleware"
	"lido-club-backend/internal/auth"
	"lido-club-backend/internal/config"
	"lido-club-backend/internal/realtime"
	"lido-club-backend/internal/repository"
	"lido-club-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"gorm.io/gorm"
)

// SetupRoutes configures all the routes for the application
func SetupRoutes(db *gorm.DB, cfg *config.Config, broker realtime.Broker, authService *auth.AuthService) *gin.Engine {
	// Create router
	router := gin.New()

	// Add middleware
	router.Use(middleware.RequestID())
	router.Use(middleware.Logger())
	router.Use(middleware.Recovery())
	router.Use(middleware.CORS(cfg))

	// Initialize validator
	validator := validator.New()

	// Initialize repositories
	teamRepo := repository.NewTeamRepository(db)
	teamPlayerRepo := repository.NewTeamPlayerRepository(db)
	allowedUserRepo := repository.NewAllowedUserRepository(db)
	profileRepo := repository.NewProfileRepository(db)
	matchRepo := repository.NewMatchRepository(db)
	rosterRepo := repository.NewMatchRosterRepository(db)
	responseRepo := repository.NewMatchResponseRepository(db)
	notificationRepo := repository.NewNotificationRepository(db)
	chatRepo := repository.NewChatMessageRepository(db)

	// Initialize services
	notificationService := service.NewNotificationService(notificationRepo, broker)
	membershipService := service.NewMembershipService(teamRepo, teamPlayerRepo, allowedUserRepo, profileRepo)
	teamService := service.NewTeamService(teamRepo, teamPlayerRepo, allowedUserRepo, validator)
	playerService := service.NewPlayerService(allowedUserRepo, teamRepo, teamPlayerRepo, validator)
	matchService := service.NewMatchService(service.MatchRepos{
		Matches:   matchRepo,
		Roster:    rosterRepo,
		Responses: responseRepo,
		Teams:     teamRepo,
		Players:   teamPlayerRepo,
		Allowed:   allowedUserRepo,
	}, notificationService, cfg.Location())
	availabilityService := service.NewAvailabilityService(matchRepo, responseRepo, teamPlayerRepo, allowedUserRepo)
	chatService := service.NewChatService(chatRepo, teamRepo, teamPlayerRepo, broker, notificationService, cfg.ChatHistoryLimit)

	// Initialize handlers
	pingers := map[string]handlers.Pinger{}
	if p, ok := broker.(handlers.Pinger); ok {
		pingers["realtime"] = p
	}
	healthHandler := handlers.NewHealthHandler(db, pingers)
	authHandler := auth.NewAuthHandler(authService, membershipService)
	authMiddleware := auth.NewAuthMiddleware(authService, membershipService)
	meHandler := handlers.NewMeHandler(membershipService)
	matchHandler := handlers.NewMatchHandler(matchService)
	availabilityHandler := handlers.NewAvailabilityHandler(availabilityService)
	teamHandler := handlers.NewTeamHandler(teamService)
	playerHandler := handlers.NewPlayerHandler(playerService)
	notificationHandler := handlers.NewNotificationHandler(notificationService)
	chatHandler := handlers.NewChatHandler(chatService)
	chatSocketHandler := handlers.NewChatSocketHandler(chatService, membershipService, broker, handlers.ChatSocketConfig{
		AllowedOrigins: cfg.AllowedOrigins,
		PingPeriod:     cfg.WSPingPeriod,
	})

	// Health check routes (no authentication required)
	router.GET("/health", healthHandler.Health)
	router.GET("/health/ready", healthHandler.Ready)
	router.GET("/health/live", healthHandler.Live)

	v1 := router.Group("/api/v1")
	{
		// Public: the whitelist check runs before sign-in
		authRoutes := v1.Group("/auth")
		{
			authRoutes.POST("/check-email", authHandler.CheckEmail)
			authRoutes.POST("/validate", authHandler.ValidateToken)
		}

		protected := v1.Group("")
		protected.Use(authMiddleware.RequireAuth())
		{
			me := protected.Group("/me")
			{
				me.GET("/badges", meHandler.GetMyBadges)
				me.GET("/teams", meHandler.GetMyTeams)
			}

			matches := protected.Group("/matches")
			{
				matches.GET("", matchHandler.ListMyMatches)
				matches.GET("/:id", matchHandler.GetMatch)
				matches.PUT("/:id/response", availabilityHandler.SubmitResponse)
			}

			notifications := protected.Group("/notifications")
			{
				notifications.GET("", notificationHandler.ListNotifications)
				notifications.GET("/unread-count", notificationHandler.UnreadCount)
				notifications.POST("/read-all", notificationHandler.MarkAllRead)
				notifications.POST("/:id/read", notificationHandler.MarkRead)
			}

			teams := protected.Group("/teams")
			{
				teams.GET("/:id/messages", chatHandler.ListMessages)
				teams.POST("/:id/messages", chatHandler.SendMessage)
			}

			protected.GET("/ws/chat", chatSocketHandler.ServeChat)

			admin := protected.Group("/admin")
			admin.Use(authMiddleware.RequireAdmin())
			{
				adminMatches := admin.Group("/matches")
				{
					adminMatches.GET("", matchHandler.ListAllMatches)
					adminMatches.POST("", matchHandler.CreateMatch)
					adminMatches.PUT("/:id", matchHandler.SaveMatch)
					adminMatches.DELETE("/:id", matchHandler.DeleteMatch)
					adminMatches.GET("/:id/candidates", availabilityHandler.ListCandidates)
				}

				adminTeams := admin.Group("/teams")
				{
					adminTeams.GET("", teamHandler.ListTeams)
					adminTeams.POST("", teamHandler.CreateTeam)
					adminTeams.GET("/:id", teamHandler.GetTeam)
					adminTeams.PATCH("/:id", teamHandler.RenameTeam)
					adminTeams.PUT("/:id/captain", teamHandler.SetCaptain)
					adminTeams.DELETE("/:id/captain", teamHandler.ClearCaptain)
					adminTeams.POST("/:id/players", teamHandler.AddPlayer)
					adminTeams.DELETE("/:id/players/:email", teamHandler.RemovePlayer)
				}

				adminPlayers := admin.Group("/players")
				{
					adminPlayers.GET("", playerHandler.ListPlayers)
					adminPlayers.POST("", playerHandler.CreatePlayer)
					adminPlayers.PUT("/:email", playerHandler.UpdatePlayer)
					adminPlayers.DELETE("/:email", playerHandler.DeletePlayer)
					adminPlayers.POST("/:email/admin", playerHandler.GrantAdmin)
					adminPlayers.GET("/:email/teams", playerHandler.GetPlayerTeams)
				}
			}
		}
	}

	return router
}
