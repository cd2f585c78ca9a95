// File: cmd/server/main.go
package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/gorilla/mux"
	"gorm.io/gorm"

	"lifeboard/internal/config"
	"lifeboard/internal/domain"
	"lifeboard/internal/handlers"
	"lifeboard/internal/middleware"
	"lifeboard/internal/ratelimit"
	"lifeboard/internal/repository/dailylog"
	"lifeboard/internal/repository/domains"
	"lifeboard/internal/repository/message"
	"lifeboard/internal/services"
	"lifeboard/internal/services/ai"
	"lifeboard/internal/services/prayer"
)

func corsMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Origin, Content-Type, Accept")
		w.Header().Set("Access-Control-Max-Age", "86400")

		if r.Method == "OPTIONS" {
			w.WriteHeader(http.StatusOK)
			return
		}

		next.ServeHTTP(w, r)
	})
}

func main() {
	cfg := config.Load()
	logger := services.NewLogger("lifeboard")

	db, err := gorm.Open(sqlite.Open(cfg.DBPath), &gorm.Config{})
	if err != nil {
		log.Fatalf("DB Error: %v", err)
	}

	if err := db.AutoMigrate(&domain.Domain{}, &domain.ChatMessage{}, &domain.DailyLog{}); err != nil {
		log.Fatalf("DB Migration Error: %v", err)
	}

	// --- Repositories ---
	domainRepo := domains.NewDomainRepository(db)
	messageRepo := message.NewMessageRepository(db)
	dailyLogRepo := dailylog.NewDailyLogRepository(db)

	// --- Services ---
	domainService := services.NewDomainService(domainRepo, logger)
	if err := domainService.EnsureSeeded(context.Background()); err != nil {
		log.Fatalf("FATAL: Failed to seed domains: %v", err)
	}

	// Without an API key the assistant runs on its fallback table alone.
	var provider ai.CompletionProvider
	if cfg.AIAPIKey != "" {
		aiConfig := ai.DefaultConfig()
		aiConfig.APIKey = cfg.AIAPIKey
		aiConfig.BaseURL = cfg.AIBaseURL
		aiConfig.Model = cfg.AIModel
		if err := aiConfig.Validate(); err != nil {
			log.Fatalf("FATAL: Invalid AI configuration: %v", err)
		}
		provider = ai.NewOpenAIProvider(aiConfig)
	} else {
		log.Println("AI_API_KEY not set; assistant running in fallback mode")
	}

	assistantService, err := services.NewAssistantService(provider, domainRepo, messageRepo, logger)
	if err != nil {
		log.Fatalf("FATAL: Failed to initialize Assistant Service: %v", err)
	}

	prayerConfig := prayer.DefaultConfig()
	prayerConfig.BaseURL = cfg.PrayerAPIURL
	prayerConfig.Latitude = cfg.PrayerLatitude
	prayerConfig.Longitude = cfg.PrayerLongitude
	prayerService, err := services.NewPrayerService(prayerConfig, prayer.NewMuftyatProvider(prayerConfig), logger)
	if err != nil {
		log.Fatalf("FATAL: Failed to initialize Prayer Service: %v", err)
	}

	// --- Handlers ---
	domainHandler := handlers.NewDomainHandler(domainService)
	chatHandler := handlers.NewChatHandler(assistantService, domainService)
	prayerHandler := handlers.NewPrayerHandler(prayerService)
	dailyLogHandler := handlers.NewDailyLogHandler(dailyLogRepo)
	statusHandler := handlers.NewStatusHandler(assistantService, domainService)

	// --- Router Setup ---
	r := mux.NewRouter()

	r.Use(corsMiddleware)
	r.Use(middleware.RequestID)
	r.Use(middleware.RecoverPanic)
	r.Use(middleware.LoggingMiddleware)

	r.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("OK"))
	}).Methods("GET")

	api := r.PathPrefix("/api").Subrouter()
	api.HandleFunc("/domains", domainHandler.ListDomains).Methods("GET")
	api.HandleFunc("/domains/reset", domainHandler.ResetProgress).Methods("POST")
	api.HandleFunc("/domains/{id}", domainHandler.UpdateDomain).Methods("PUT")
	api.HandleFunc("/chat-history", chatHandler.GetChatHistory).Methods("GET")
	api.HandleFunc("/prayer-times", prayerHandler.GetToday).Methods("GET")
	api.HandleFunc("/prayer-times/month", prayerHandler.GetMonth).Methods("GET")
	api.HandleFunc("/logs", dailyLogHandler.CreateLog).Methods("POST")
	api.HandleFunc("/logs/{date}", dailyLogHandler.GetLogsByDate).Methods("GET")
	api.HandleFunc("/status", statusHandler.GetStatus).Methods("GET")

	// Each chat request can cost a paid completion call, so it gets its own
	// per-IP limiter.
	chatLimiter := ratelimit.NewMemoryRateLimiter(ratelimit.DefaultChatConfig(cfg.ChatRateLimit))
	defer chatLimiter.Close()
	chat := api.PathPrefix("/chat").Subrouter()
	chat.Use(middleware.RateLimitMiddleware(chatLimiter, "chat"))
	chat.HandleFunc("", chatHandler.HandleChatMessage).Methods("POST")

	// --- Server Configuration ---
	port := ":8080"
	if cfg.ServerPort != "" {
		port = ":" + cfg.ServerPort
	}
	srv := &http.Server{
		Addr:    port,
		Handler: r,
	}

	log.SetFlags(log.LstdFlags | log.Lshortfile)
	log.Printf("Lifeboard dashboard starting on port %s", port)
	if assistantService.HasProvider() {
		log.Printf("Assistant mode: AI (%s)", cfg.AIModel)
	} else {
		log.Printf("Assistant mode: FALLBACK")
	}

	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server startup failed: %v", err)
		}
	}()

	// --- Graceful Shutdown ---
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	<-stop

	log.Println("Shutting down server gracefully...")
	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatalf("Server shutdown failed: %v", err)
	}
	log.Println("Server stopped gracefully")
}
