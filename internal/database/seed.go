// internal/database/seed.go
package database

import (
	"fmt"
	"log"

	"gorm.io/gorm"

	"github.com/epoint/product-comparator/internal/models"
)

// Seed initial data
func SeedDemoCatalog(db *gorm.DB) error {
	log.Println("Seeding demo catalog...")

	brands := []models.Brand{
		{Name: "Sharp", Slug: "sharp"},
		{Name: "Acme", Slug: "acme"},
		{Name: "Globex", Slug: "globex"},
	}
	for i := range brands {
		if err := db.Where("slug = ?", brands[i].Slug).FirstOrCreate(&brands[i]).Error; err != nil {
			return fmt.Errorf("failed to seed brand %s: %w", brands[i].Slug, err)
		}
	}

	categories := []models.Category{
		{Name: "Televisores", Slug: "tv"},
		{Name: "Audio", Slug: "audio"},
		{Name: "Monitores", Slug: "monitors"},
	}
	for i := range categories {
		if err := db.Where("slug = ?", categories[i].Slug).FirstOrCreate(&categories[i]).Error; err != nil {
			return fmt.Errorf("failed to seed category %s: %w", categories[i].Slug, err)
		}
	}

	byBrand := map[string]*models.Brand{}
	for i := range brands {
		byBrand[brands[i].Slug] = &brands[i]
	}
	byCategory := map[string]*models.Category{}
	for i := range categories {
		byCategory[categories[i].Slug] = &categories[i]
	}

	products := []struct {
		product    models.Product
		brand      string
		categories []string
	}{
		{
			product: models.Product{
				Name:      "Sharp 55EQ3EA",
				Slug:      "sharp-55eq3ea",
				PriceHTML: "<span>699,00&nbsp;&euro;</span>",
				Permalink: "https://shop.example.com/product/sharp-55eq3ea",
				Attributes: models.AttributeList{
					{Name: "Pantalla", Value: "55\" QLED"},
					{Name: "Resolución", Value: "4K UHD"},
					{Name: "Sistema", Value: "Android TV"},
				},
				Tags: []string{"qled", "4k"},
			},
			brand:      "sharp",
			categories: []string{"tv"},
		},
		{
			product: models.Product{
				Name:      "Sharp HT-SBW460",
				Slug:      "sharp-ht-sbw460",
				PriceHTML: "<span>249,00&nbsp;&euro;</span>",
				Permalink: "https://shop.example.com/product/sharp-ht-sbw460",
				Attributes: models.AttributeList{
					{Name: "Potencia", Value: "440 W"},
					{Name: "Canales", Value: "3.1"},
				},
				Tags: []string{"soundbar"},
			},
			brand:      "sharp",
			categories: []string{"audio"},
		},
		{
			product: models.Product{
				Name:      "Acme Vision 55",
				Slug:      "acme-vision-55",
				PriceHTML: "<span>649,00&nbsp;&euro;</span>",
				Permalink: "https://shop.example.com/product/acme-vision-55",
				Attributes: models.AttributeList{
					{Name: "Pantalla", Value: "55\" LED"},
					{Name: "Resolución", Value: "4K UHD"},
					{Name: "Puertos HDMI", Value: "3"},
				},
			},
			brand:      "acme",
			categories: []string{"tv"},
		},
		{
			product: models.Product{
				Name:      "Globex Prime Monitor 32",
				Slug:      "globex-prime-monitor-32",
				PriceHTML: "<span>329,00&nbsp;&euro;</span>",
				Permalink: "https://shop.example.com/product/globex-prime-monitor-32",
				Attributes: models.AttributeList{
					{Name: "Pantalla", Value: "32\" IPS"},
					{Name: "Frecuencia", Value: "144 Hz"},
				},
			},
			brand:      "globex",
			categories: []string{"monitors"},
		},
	}

	for _, entry := range products {
		p := entry.product
		p.Status = models.ProductStatusPublished
		if brand, ok := byBrand[entry.brand]; ok {
			p.BrandID = &brand.ID
		}
		for _, slug := range entry.categories {
			if category, ok := byCategory[slug]; ok {
				p.Categories = append(p.Categories, *category)
			}
		}

		var count int64
		db.Model(&models.Product{}).Where("slug = ?", p.Slug).Count(&count)
		if count == 0 {
			if err := db.Create(&p).Error; err != nil {
				return fmt.Errorf("failed to seed product %s: %w", p.Slug, err)
			}
		}
	}

	log.Println("Demo catalog seeding completed")
	return nil
}
