package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"flashdeck/internal/config"
	"flashdeck/internal/database"
	"flashdeck/internal/handlers"
	"flashdeck/internal/repository"
	"flashdeck/internal/service"

	"github.com/joho/godotenv"
)

func main() {
	// Load .env if present; real environment variables take precedence
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		log.Printf("Warning: could not load .env file: %v", err)
	}

	// Load configuration
	cfg := config.Load()

	// Initialize database with config (supports sqlite, postgres, mysql)
	db, err := database.InitializeWithConfig(cfg)
	if err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}
	defer db.Close()

	log.Printf("Database connection established (type: %s)", cfg.DatabaseType)

	// Run migrations
	if err := db.RunMigrations(cfg.MigrationsPath); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	log.Println("Migrations completed successfully")

	// Initialize repositories
	workspaceRepo := repository.NewWorkspaceRepository(db)
	collectionRepo := repository.NewCollectionRepository(db)
	flashcardRepo := repository.NewFlashcardRepository(db)
	studyRepo := repository.NewStudyRepository(db)

	// Initialize services
	cardService := service.NewCardService(flashcardRepo, collectionRepo)
	studyService := service.NewStudyService(flashcardRepo, studyRepo)

	// Initialize handlers
	workspaceHandler := handlers.NewWorkspaceHandler(workspaceRepo)
	collectionHandler := handlers.NewCollectionHandler(collectionRepo, workspaceRepo)
	flashcardHandler := handlers.NewFlashcardHandler(cardService)
	studyHandler := handlers.NewStudyHandler(studyService)

	mux := http.NewServeMux()

	// Workspace routes
	mux.HandleFunc("POST /api/workspaces", workspaceHandler.Create)
	mux.HandleFunc("GET /api/workspaces", workspaceHandler.List)
	mux.HandleFunc("GET /api/workspaces/{id}", workspaceHandler.Get)
	mux.HandleFunc("PUT /api/workspaces/{id}", workspaceHandler.Update)
	mux.HandleFunc("DELETE /api/workspaces/{id}", workspaceHandler.Delete)

	// Collection routes
	mux.HandleFunc("POST /api/collections", collectionHandler.Create)
	mux.HandleFunc("GET /api/workspaces/{id}/collections", collectionHandler.ListByWorkspace)
	mux.HandleFunc("GET /api/collections/{id}", collectionHandler.Get)
	mux.HandleFunc("PUT /api/collections/{id}", collectionHandler.Update)
	mux.HandleFunc("DELETE /api/collections/{id}", collectionHandler.Delete)

	// Flashcard routes
	mux.HandleFunc("POST /api/collections/{id}/flashcards", flashcardHandler.Create)
	mux.HandleFunc("GET /api/collections/{id}/flashcards", flashcardHandler.ListByCollection)
	mux.HandleFunc("POST /api/collections/{id}/flashcards/import", flashcardHandler.ImportCandidates)
	mux.HandleFunc("GET /api/flashcards/{id}", flashcardHandler.Get)
	mux.HandleFunc("PUT /api/flashcards/{id}", flashcardHandler.Update)
	mux.HandleFunc("DELETE /api/flashcards/{id}", flashcardHandler.Delete)

	// Study session routes
	mux.HandleFunc("POST /api/study/sessions", studyHandler.StartSession)
	mux.HandleFunc("GET /api/study/sessions/{id}/current", studyHandler.Current)
	mux.HandleFunc("POST /api/study/sessions/{id}/reveal", studyHandler.Reveal)
	mux.HandleFunc("POST /api/study/sessions/{id}/evaluations", studyHandler.SubmitEvaluation)
	mux.HandleFunc("GET /api/study/sessions/{id}/activities", studyHandler.History)
	mux.HandleFunc("POST /api/study/sessions/{id}/complete", studyHandler.EndSession)

	addr := ":" + cfg.ServerPort
	server := &http.Server{
		Addr:         addr,
		Handler:      logRequests(mux),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Graceful shutdown
	go func() {
		log.Printf("Server starting on http://localhost%s", addr)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server failed: %v", err)
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Server shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		log.Printf("Error during shutdown: %v", err)
	}
}

// logRequests logs each request with method, path, and duration
func logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		next.ServeHTTP(w, r)
		log.Printf("%s %s %v", r.Method, r.URL.Path, time.Since(start))
	})
}
