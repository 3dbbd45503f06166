package main

import (
	"context"
	"log"
	"net/http"
	"time"

	"github.com/daniele-farriciello/official-muay-thai-project/internal/auth"
	"github.com/daniele-farriciello/official-muay-thai-project/internal/config"
	"github.com/daniele-farriciello/official-muay-thai-project/internal/database"
	"github.com/daniele-farriciello/official-muay-thai-project/internal/handlers"
	customMiddleware "github.com/daniele-farriciello/official-muay-thai-project/internal/middleware"
	"github.com/daniele-farriciello/official-muay-thai-project/internal/notify"
	"github.com/daniele-farriciello/official-muay-thai-project/internal/store"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
)

func main() {
	cfg := config.MustLoad()

	// Connect to MongoDB
	if err := database.Connect(cfg.MongoURI, cfg.DBName); err != nil {
		log.Fatalf("❌ Failed to connect to MongoDB: %v", err)
	}
	defer func() {
		if err := database.Disconnect(context.Background()); err != nil {
			log.Printf("⚠️  Warning: failed to disconnect from MongoDB: %v", err)
		}
	}()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	// Optional Redis cache for user documents
	var cache *store.Cache
	if cfg.RedisAddr != "" {
		c, err := store.NewCache(ctx, cfg.RedisAddr, cfg.CacheTTL)
		if err != nil {
			log.Printf("⚠️  Warning: Redis unavailable, caching disabled: %v", err)
		} else {
			cache = c
			log.Println("✅ Connected to Redis")
		}
	}

	userStore := store.NewUserStore(cache)
	if err := userStore.EnsureIndexes(ctx); err != nil {
		log.Printf("⚠️  Warning: failed to create user indexes: %v", err)
	}

	// Booking confirmations go out over Resend when configured, otherwise
	// to the log-only mock.
	var notifier notify.Notifier
	if cfg.ResendAPIKey != "" {
		notifier = notify.NewResendMailer(cfg.ResendAPIKey, cfg.FromEmail)
	} else {
		log.Println("⚠️  RESEND_API_KEY not set, booking confirmations go to the log")
		notifier = notify.NewMockNotifier()
	}

	tokens := auth.NewTokenService(cfg.JWTSecret, cfg.TokenTTL)

	// Initialize handlers
	authHandler := handlers.NewAuthHandler(userStore, tokens)
	userHandler := handlers.NewUserHandler(userStore)
	bookingHandler := handlers.NewBookingHandler(userStore, notifier)
	membershipHandler := handlers.NewMembershipHandler(userStore)

	// Setup chi router
	r := chi.NewRouter()

	// Global middleware
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.RealIP)
	r.Use(middleware.RequestID)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{cfg.AllowedOrigin},
		AllowedMethods:   []string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Content-Type"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	// Health check
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status":"ok","service":"muaythai-backend"}`))
	})

	// Public routes (no auth required)
	r.Post("/signup", authHandler.Signup)
	r.Post("/login", authHandler.Login)

	// Protected routes (session cookie required)
	r.Group(func(r chi.Router) {
		r.Use(customMiddleware.SessionAuth(tokens))

		r.Get("/me", userHandler.Me)
		r.Post("/newBooking", bookingHandler.Create)
		r.Patch("/modifyBooking", bookingHandler.Modify)
		r.Delete("/deleteBooking", bookingHandler.Delete)
		r.Post("/membershipPage", membershipHandler.Activate)
		r.Post("/removeMembership", membershipHandler.Remove)
		r.Post("/logout", authHandler.Logout)
	})

	// Start server
	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      r,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}
	log.Printf("🚀 Muay Thai backend starting on port %s", cfg.Port)
	if err := srv.ListenAndServe(); err != nil {
		log.Fatalf("❌ Server failed: %v", err)
	}
}
