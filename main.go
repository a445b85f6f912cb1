package main

import (
	"log"
	"os"

	"github.com/treeclass/gallery/backend/internal/handler"
	"github.com/treeclass/gallery/backend/internal/infrastructure"
	"github.com/treeclass/gallery/backend/internal/repository"
	"github.com/treeclass/gallery/backend/internal/router"
	"github.com/treeclass/gallery/backend/internal/service"
)

// Config is everything the server takes from the environment. It is built
// once here and handed down through the constructors; nothing reads env
// vars past this point.
type Config struct {
	SupabaseURL            string
	SupabaseKey            string
	CloudinaryCloudName    string
	CloudinaryAPIKey       string
	CloudinaryAPISecret    string
	CloudinaryUploadPreset string
	AdminKey               string
	Port                   string
}

func loadConfig() Config {
	return Config{
		SupabaseURL:            mustEnv("SUPABASE_URL"),
		SupabaseKey:            mustEnv("SUPABASE_KEY"),
		CloudinaryCloudName:    mustEnv("CLOUDINARY_CLOUD_NAME"),
		CloudinaryAPIKey:       mustEnv("CLOUDINARY_API_KEY"),
		CloudinaryAPISecret:    mustEnv("CLOUDINARY_API_SECRET"),
		CloudinaryUploadPreset: mustEnv("CLOUDINARY_UPLOAD_PRESET"),
		AdminKey:               mustEnv("ADMIN_KEY"),
		Port:                   envOr("PORT", "3000"),
	}
}

func main() {
	cfg := loadConfig()

	store := infrastructure.NewSupabaseClient(cfg.SupabaseURL, cfg.SupabaseKey)
	media := infrastructure.NewCloudinaryClient(
		cfg.CloudinaryCloudName,
		cfg.CloudinaryAPIKey,
		cfg.CloudinaryAPISecret,
		cfg.CloudinaryUploadPreset,
	)

	treeRepo := repository.NewTreeRepository(store)
	dupRepo := repository.NewDuplicateRepository(store)
	ratingRepo := repository.NewRatingRepository(store)

	gallerySvc := service.NewGalleryService(treeRepo, dupRepo, ratingRepo)
	adminSvc := service.NewAdminService(treeRepo, dupRepo, ratingRepo)

	treeHandler := handler.NewTreeHandler(gallerySvc, adminSvc)
	ratingHandler := handler.NewRatingHandler(gallerySvc)
	uploadHandler := handler.NewUploadHandler(media)

	r := router.SetupRouter(treeHandler, ratingHandler, uploadHandler, cfg.AdminKey)

	log.Printf("server running on port %s", cfg.Port)
	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatalf("server stopped: %v", err)
	}
}

func mustEnv(key string) string {
	value := os.Getenv(key)
	if value == "" {
		log.Fatalf("missing required environment variable: %s", key)
	}
	return value
}

func envOr(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
