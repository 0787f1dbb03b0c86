// Copyright 2025 Oliver Andrich
// Licensed under the EUPL-1.2

package server

import (
	"github.com/Toitw/sport-team-manager-sub000/internal/handlers"
	appmw "github.com/Toitw/sport-team-manager-sub000/internal/middleware"
	"github.com/Toitw/sport-team-manager-sub000/internal/models"
	"github.com/Toitw/sport-team-manager-sub000/internal/repository"
	"github.com/Toitw/sport-team-manager-sub000/internal/services/auth"
	"github.com/Toitw/sport-team-manager-sub000/internal/services/session"
	"github.com/labstack/echo/v4"
	"golang.org/x/time/rate"
)

func setupRoutes(e *echo.Echo, repo *repository.Repository, authService *auth.Service, sessions *session.Manager) {
	h := handlers.New(repo)
	authHandler := handlers.NewAuth(authService, sessions)
	teamHandler := handlers.NewTeams(repo)
	playerHandler := handlers.NewPlayers(repo)
	eventHandler := handlers.NewEvents(repo)
	newsHandler := handlers.NewNews(repo)
	detailHandler := handlers.NewMatchDetails(repo)

	e.GET("/health", h.Health)

	api := e.Group("/api")

	// Account lifecycle - public
	credentialLimit := appmw.RateLimit(rate.Limit(5), 10)
	api.POST("/register", authHandler.Register)
	api.GET("/verify-email", authHandler.VerifyEmail)
	api.POST("/login", authHandler.Login, credentialLimit)
	api.POST("/forgot-password", authHandler.ForgotPassword, credentialLimit)
	api.POST("/reset-password", authHandler.ResetPassword)

	// Account lifecycle - session required
	api.POST("/logout", authHandler.Logout, appmw.RequireAuth)
	api.GET("/user", authHandler.CurrentUser)

	// Reads require any authenticated role, mutations require admin or
	// manager.
	readers := appmw.RequireRole(models.RoleAdmin, models.RoleManager, models.RoleReader)
	editors := appmw.RequireRole(models.RoleAdmin, models.RoleManager)

	api.GET("/teams", teamHandler.List, readers)
	api.POST("/teams", teamHandler.Create, editors)
	api.GET("/teams/:id", teamHandler.Get, readers)
	api.PUT("/teams/:id", teamHandler.Update, editors)
	api.DELETE("/teams/:id", teamHandler.Delete, editors)

	api.GET("/teams/:id/players", playerHandler.List, readers)
	api.POST("/teams/:id/players", playerHandler.Create, editors)
	api.PUT("/players/:id", playerHandler.Update, editors)
	api.DELETE("/players/:id", playerHandler.Delete, editors)

	api.GET("/teams/:id/events", eventHandler.List, readers)
	api.POST("/teams/:id/events", eventHandler.Create, editors)
	api.PUT("/events/:id", eventHandler.Update, editors)
	api.DELETE("/events/:id", eventHandler.Delete, editors)

	api.GET("/teams/:id/news", newsHandler.List, readers)
	api.POST("/teams/:id/news", newsHandler.Create, editors)
	api.PUT("/news/:id", newsHandler.Update, editors)
	api.DELETE("/news/:id", newsHandler.Delete, editors)

	api.GET("/events/:id/lineup", detailHandler.ListLineup, readers)
	api.POST("/events/:id/lineup", detailHandler.CreateLineupEntry, editors)
	api.DELETE("/lineup/:id", detailHandler.DeleteLineupEntry, editors)

	api.GET("/events/:id/goals", detailHandler.ListGoals, readers)
	api.POST("/events/:id/goals", detailHandler.CreateGoal, editors)
	api.DELETE("/goals/:id", detailHandler.DeleteGoal, editors)

	api.GET("/events/:id/cards", detailHandler.ListCards, readers)
	api.POST("/events/:id/cards", detailHandler.CreateCard, editors)
	api.DELETE("/cards/:id", detailHandler.DeleteCard, editors)

	api.GET("/events/:id/substitutions", detailHandler.ListSubstitutions, readers)
	api.POST("/events/:id/substitutions", detailHandler.CreateSubstitution, editors)
	api.DELETE("/substitutions/:id", detailHandler.DeleteSubstitution, editors)

	api.GET("/events/:id/commentary", detailHandler.ListCommentary, readers)
	api.POST("/events/:id/commentary", detailHandler.CreateCommentary, editors)
	api.DELETE("/commentary/:id", detailHandler.DeleteCommentary, editors)
}
