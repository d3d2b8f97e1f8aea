package main

import (
	"log"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/BhargavPrasadKalichetti/Scientific-Data-Visualization/internal/api"
	"github.com/BhargavPrasadKalichetti/Scientific-Data-Visualization/internal/config"
	"github.com/BhargavPrasadKalichetti/Scientific-Data-Visualization/internal/dataset"
	"github.com/BhargavPrasadKalichetti/Scientific-Data-Visualization/internal/state"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Config error: %v", err)
	}

	// Load the dataset once; a failed load aborts startup.
	ds, err := loadDataset(cfg)
	if err != nil {
		log.Fatalf("Dataset load failed: %v", err)
	}
	log.Printf("Dataset loaded: %d rows, %d job titles, %d industries",
		ds.Len(), len(ds.JobTitles()), len(ds.Industries()))

	session := state.NewSession(ds)
	handler := api.NewHandler(session)

	// Router Setup
	r := chi.NewRouter()

	// Middleware
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.RealIP)

	// CORS - Allow frontend
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   cfg.AllowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-CSRF-Token"},
		ExposedHeaders:   []string{"Link"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	// Root endpoint
	r.Get("/", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("Job Market Dashboard Backend is Running"))
	})

	handler.RegisterRoutes(r)

	log.Printf("🚀 Starting dashboard backend on http://localhost:%s", cfg.Port)

	if err := http.ListenAndServe(":"+cfg.Port, r); err != nil {
		log.Fatalf("Server failed to start: %v", err)
	}
}

// loadDataset reads the relation from the configured source.
func loadDataset(cfg config.Config) (*dataset.Dataset, error) {
	switch cfg.Source {
	case "postgres":
		src := &dataset.PostgresSource{}
		if err := src.Connect(dataset.SourceConfig{
			Host:     cfg.PGHost,
			Port:     cfg.PGPort,
			User:     cfg.PGUser,
			Password: cfg.PGPassword,
			DBName:   cfg.PGDatabase,
			SSLMode:  cfg.PGSSLMode,
		}); err != nil {
			return nil, err
		}
		defer src.Close()
		return src.Load(cfg.Table)

	case "sqlite":
		src := &dataset.SQLiteSource{}
		if err := src.Connect(dataset.SourceConfig{Path: cfg.SQLitePath}); err != nil {
			return nil, err
		}
		defer src.Close()
		return src.Load(cfg.Table)

	default:
		return dataset.Load(cfg.DataPath)
	}
}
