// cmd/seed/main.go
package main

import (
	"log"
	"os"
	"path/filepath"

	"gorm.io/gorm"

	"github.com/epoint/product-comparator/internal/config"
	"github.com/epoint/product-comparator/internal/database"
	"github.com/epoint/product-comparator/internal/models"
	"github.com/epoint/product-comparator/internal/services"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Failed to load configuration:", err)
	}

	// Initialize database
	db, err := database.Initialize(cfg.Database)
	if err != nil {
		log.Fatal("Failed to initialize database:", err)
	}
	defer database.Close(db)

	// Run database migrations
	if err := database.RunMigrations(db); err != nil {
		log.Fatal("Failed to run migrations:", err)
	}

	// Seed the demo catalog
	if err := database.SeedDemoCatalog(db); err != nil {
		log.Fatal("Failed to seed catalog:", err)
	}

	// Publish local product images when storage is configured
	storage, err := services.NewStorageService(cfg)
	if err != nil {
		log.Fatal("Failed to initialize storage:", err)
	}
	if storage.Enabled() {
		if err := publishImages(db, storage, "./assets/catalog"); err != nil {
			log.Fatal("Failed to publish images:", err)
		}
	}

	log.Println("Catalog seeded")
}

// publishImages uploads <dir>/<slug>.jpg for every product that has no
// image yet and stores the resulting public URL. Missing files are skipped.
func publishImages(db *gorm.DB, storage *services.StorageService, dir string) error {
	var products []models.Product
	if err := db.Where("image = ''").Find(&products).Error; err != nil {
		return err
	}

	for _, product := range products {
		path := filepath.Join(dir, product.Slug+".jpg")
		if _, err := os.Stat(path); err != nil {
			continue
		}

		result, err := storage.PublishImage(path, "products")
		if err != nil {
			return err
		}
		if err := db.Model(&product).Update("image", result.URL).Error; err != nil {
			return err
		}
		log.Printf("Published image for %s -> %s", product.Slug, result.URL)
	}
	return nil
}
