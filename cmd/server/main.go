package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/bumpsafe/bumpsafe-be/internal/api"
	"github.com/bumpsafe/bumpsafe-be/internal/api/middleware"
	"github.com/bumpsafe/bumpsafe-be/internal/prompt"
	"github.com/bumpsafe/bumpsafe-be/internal/tools"
	"github.com/bumpsafe/bumpsafe-be/internal/triage"
	"github.com/bumpsafe/bumpsafe-be/pkg/deepseek"
	"github.com/bumpsafe/bumpsafe-be/pkg/gemini"
	"github.com/bumpsafe/bumpsafe-be/pkg/llm"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

func main() {
	// Load environment variables
	if err := godotenv.Load(); err != nil {
		log.Printf("Warning: .env file not found: %v", err)
	}

	// Get configuration from environment
	port := getEnv("PORT", "8080")
	provider := getEnv("AI_PROVIDER", "gemini")
	geminiAPIKey := getEnv("GEMINI_API_KEY", "")
	deepseekAPIKey := getEnv("DEEPSEEK_API_KEY", "")
	aiTimeout := getDurationEnv("AI_TIMEOUT", 30*time.Second)

	// Select the completion provider
	var client llm.Client
	switch provider {
	case "gemini":
		if geminiAPIKey == "" {
			log.Fatal("GEMINI_API_KEY is required when AI_PROVIDER=gemini")
		}
		client = gemini.NewHTTPClient(gemini.Config{
			APIKey:  geminiAPIKey,
			Model:   getEnv("GEMINI_MODEL", ""),
			Timeout: aiTimeout,
		})
	case "deepseek":
		if deepseekAPIKey == "" {
			log.Fatal("DEEPSEEK_API_KEY is required when AI_PROVIDER=deepseek")
		}
		client = deepseek.NewHTTPClient(deepseek.Config{
			APIKey:  deepseekAPIKey,
			Timeout: aiTimeout,
		})
	default:
		log.Fatalf("Unknown AI_PROVIDER %q (want gemini or deepseek)", provider)
	}
	log.Printf("✅ AI provider: %s", provider)

	// Initialize components
	promptBuilder := prompt.NewBuilder()
	screener := triage.NewScreener()
	toolService := tools.NewService(client, promptBuilder, screener)
	toolService.SetTimeout(aiTimeout)

	// Initialize handlers
	dueDateHandler := api.NewDueDateHandler()
	toolsHandler := api.NewToolsHandler(toolService)

	// Setup Gin router
	router := gin.Default()

	router.Use(middleware.CORS())
	router.Use(middleware.SecurityHeaders())
	router.Use(middleware.RequestID())

	// Global rate limit per IP
	router.Use(middleware.PerIP(100.0/60.0, 200)) // ~100/min

	// Health check
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status": "healthy",
			"time":   time.Now().Unix(),
		})
	})

	// Tool routes
	toolsGroup := router.Group("/api/tools")
	{
		toolsGroup.GET("", toolsHandler.List)
		toolsGroup.POST("/due-date", dueDateHandler.Calculate)

		// AI-backed tools get a tighter per-IP limit
		aiGroup := toolsGroup.Group("")
		aiGroup.Use(middleware.PerIP(10.0/60.0, 5)) // ~10/min
		aiGroup.POST("/:name", toolsHandler.Run)
	}

	// Create HTTP server
	srv := &http.Server{
		Addr:    ":" + port,
		Handler: router,
	}

	// Start server in goroutine
	go func() {
		log.Printf("🚀 Server starting on http://localhost:%s", port)
		log.Printf("📝 API endpoints:")
		log.Printf("   GET    /health")
		log.Printf("   GET    /api/tools")
		log.Printf("   POST   /api/tools/due-date")
		log.Printf("   POST   /api/tools/food-safety")
		log.Printf("   POST   /api/tools/nutrition")
		log.Printf("   POST   /api/tools/medication")
		log.Printf("   POST   /api/tools/baby-growth")
		log.Printf("")
		log.Printf("Press Ctrl+C to stop")

		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Failed to start server: %v", err)
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatalf("Server forced to shutdown: %v", err)
	}

	log.Println("Server exited")
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getDurationEnv(key string, defaultValue time.Duration) time.Duration {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	d, err := time.ParseDuration(value)
	if err != nil {
		log.Printf("Warning: invalid %s=%q, using %v", key, value, defaultValue)
		return defaultValue
	}
	return d
}
