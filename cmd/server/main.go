package main

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/joho/godotenv"
	_ "github.com/lib/pq"
	config "github.com/maheshrc27/postdeck/configs"
	"github.com/maheshrc27/postdeck/internal/api/handlers"
	"github.com/maheshrc27/postdeck/internal/repository"
	"github.com/maheshrc27/postdeck/internal/scheduler"
	"github.com/maheshrc27/postdeck/internal/seed"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: Failed to load environment variables", err)
	}

	cfg := config.LoadConfig()

	var db *sql.DB
	var snapshotRepo repository.SnapshotRepository
	if cfg.PostgresURI != "" {
		var err error
		db, err = sql.Open("postgres", cfg.PostgresURI)
		if err != nil {
			log.Fatalf("Failed to connect to database: %v", err)
		}
		defer closeDB(db)

		if err := db.Ping(); err != nil {
			log.Fatalf("Database is unreachable: %v", err)
		}
		if err := repository.EnsureSchema(context.Background(), db); err != nil {
			log.Fatalf("Failed to prepare database schema: %v", err)
		}
		snapshotRepo = repository.NewPostgresRepository(db)
	} else {
		snapshotRepo = repository.NewFileRepository(cfg.DataFile)
	}

	store := buildStore(snapshotRepo)
	store.Subscribe(func(state scheduler.State) {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := snapshotRepo.Save(ctx, &state); err != nil {
			slog.Error("state write-through failed", "error", err)
		}
	})

	app := fiber.New(fiber.Config{
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			log.Printf("Error: %v", err)
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
		},
	})

	app.Use(logger.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.FrontendURL,
		AllowMethods:     "GET,POST,PUT,DELETE,OPTIONS",
		AllowHeaders:     "Origin, Content-Type, Accept, Authorization",
		AllowCredentials: true,
		MaxAge:           3600,
	}))

	api := app.Group("/api")

	account := handlers.NewAccountHandler(store)
	api.Get("/accounts", account.ListAccounts)
	api.Post("/accounts/create", account.AddAccount)
	api.Post("/accounts/remove", account.RemoveAccount)
	api.Post("/accounts/toggle", account.ToggleConnection)

	idea := handlers.NewIdeaHandler(store)
	api.Get("/topics", idea.ListTopics)
	api.Post("/ideas/generate", idea.GenerateIdea)

	post := handlers.NewPostHandler(store)
	api.Get("/posts", post.ListPosts)
	api.Post("/posts/create", post.SchedulePost)
	api.Post("/posts/status", post.MarkStatus)
	api.Post("/posts/reschedule", post.ReschedulePost)

	analytics := handlers.NewAnalyticsHandler(store)
	api.Get("/analytics/snapshots", analytics.ListSnapshots)

	settings := handlers.NewSettingsHandler(store)
	api.Get("/settings/voice", settings.GetBrandVoice)
	api.Post("/settings/voice", settings.UpdateBrandVoice)

	go func() {
		if err := app.Listen(cfg.ListenAddr); err != nil {
			log.Fatalf("Failed to start server: %v", err)
		}
	}()
	log.Printf("Server is running on http://localhost%s", cfg.ListenAddr)

	gracefulShutdown(app, db)
}

// buildStore rehydrates the store from the persistence adapter, falling back
// to the built-in demo dataset on first boot. Topics and engagement snapshots
// always come from the seed data.
func buildStore(repo repository.SnapshotRepository) *scheduler.Store {
	init := seed.Default()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	state, found, err := repo.Load(ctx)
	if err != nil {
		slog.Error("loading persisted state, starting from defaults", "error", err)
	}
	if found {
		init.Accounts = state.Accounts
		init.Posts = state.Posts
		init.BrandVoice = state.BrandVoice
	}

	return scheduler.New(init)
}

func closeDB(db *sql.DB) {
	fmt.Fprint(os.Stdout, "Closing database connection... ")
	if err := db.Close(); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to close database: %v", err)
		return
	}
	fmt.Fprintln(os.Stdout, "Done")
}

func gracefulShutdown(app *fiber.App, db *sql.DB) {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)

	<-quit
	log.Println("Shutting down server...")

	if err := app.Shutdown(); err != nil {
		log.Fatalf("Failed to shut down server: %v", err)
	}

	if db != nil {
		closeDB(db)
	}
	log.Println("Server shutdown complete.")
}
