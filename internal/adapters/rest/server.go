package rest

import (
	"context"
	"net/http"
	"time"

	"github.com/mnasyf821-dotcom/palcars/internal/core/locale"
	core_port "github.com/mnasyf821-dotcom/palcars/internal/core/port"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
)

// ServerConfig - параметры HTTP-сервера
type ServerConfig struct {
	Port            string
	AllowedOrigins  []string
	DefaultLanguage locale.Language
}

// Handlers - все обработчики, которые монтирует роутер
type Handlers struct {
	Listings     *ListingsHandler
	Models       *ModelsHandler
	Dictionaries *DictionariesHandler
	Auth         *AuthHandler
	AuthMW       *AuthMiddleware
}

type Server struct {
	httpServer *http.Server
	logger     core_port.LoggerPort
}

// NewRouter собирает chi-роутер со всеми маршрутами /api/v1
func NewRouter(cfg ServerConfig, h Handlers, baseLogger core_port.LoggerPort) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RealIP, LoggerMiddleware(baseLogger), middleware.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   cfg.AllowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "PATCH", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Accept-Language", "Authorization", "Content-Type", "X-Trace-ID"},
		ExposedHeaders:   []string{"Content-Language", "X-Trace-ID"},
		AllowCredentials: true,
		MaxAge:           300,
	}))
	r.Use(LanguageMiddleware(cfg.DefaultLanguage))

	r.Route("/api/v1", func(r chi.Router) {
		// публичные маршруты
		r.Get("/cars", h.Listings.FindListings)
		r.Get("/cars/featured", h.Listings.GetFeatured)
		r.Get("/cars/{carID}", h.Listings.GetListingDetails)

		r.Get("/models", h.Models.GetModels)
		r.Get("/models/available", h.Models.GetAvailableModels)
		r.Get("/models/counts", h.Models.GetModelCounts)
		r.Get("/models/{model}/variants", h.Models.GetVariants)

		r.Get("/dictionaries", h.Dictionaries.GetDictionaries)

		r.Post("/auth/login", h.Auth.Login)
		r.Post("/auth/register", h.Auth.Register)

		// маршруты для вошедших пользователей
		r.Group(func(r chi.Router) {
			r.Use(h.AuthMW.Authenticate)

			r.Post("/cars", h.Listings.SubmitListing)
			r.Post("/auth/logout", h.Auth.Logout)
			r.Get("/auth/me", h.Auth.Me)
			r.Patch("/auth/me", h.Auth.UpdateProfile)
		})
	})

	return r
}

func NewServer(cfg ServerConfig, h Handlers, baseLogger core_port.LoggerPort) *Server {
	return &Server{
		httpServer: &http.Server{
			Addr:              ":" + cfg.Port,
			Handler:           NewRouter(cfg, h, baseLogger),
			ReadHeaderTimeout: 10 * time.Second,
		},
		logger: baseLogger,
	}
}

func (s *Server) Start() error {
	s.logger.Info("Starting REST server", core_port.Fields{"address": s.httpServer.Addr})
	return s.httpServer.ListenAndServe()
}

func (s *Server) Stop(ctx context.Context) error {
	s.logger.Info("Stopping REST server...", nil)
	return s.httpServer.Shutdown(ctx)
}
