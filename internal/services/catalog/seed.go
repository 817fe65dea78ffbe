package services

import (
	"time"

	"github.com/google/uuid"

	"github.com/magabrotheeeer/discount-storefront/internal/models"
)

// demoProducts возвращает стартовый набор товаров для пустого каталога.
func demoProducts(now time.Time) []models.Product {
	weekSale := now.Add(7 * 24 * time.Hour)
	shortSale := now.Add(3 * 24 * time.Hour)

	return []models.Product{
		{
			ID:          uuid.New().String(),
			Name:        "Netflix Premium",
			Description: "Watch unlimited movies, TV shows, and more on Netflix Premium. Stream on 4 devices simultaneously in Ultra HD.",
			Category:    "OTT",
			Image:       "https://upload.wikimedia.org/wikipedia/commons/0/08/Netflix_2015_logo.svg",
			Features:    []string{"4K Ultra HD", "4 Screens", "Download & Watch Offline", "No Ads"},
			Pricing:     models.PricingMap{"1": 199, "3": 549, "6": 999, "9": 1399, "12": 1799},
			SalePrice:   models.PricingMap{"1": 149, "3": 449, "6": 849, "9": 1199, "12": 1499},
			SaleEndDate: &weekSale,
			Status:      models.ProductActive,
			CreatedAt:   now,
		},
		{
			ID:          uuid.New().String(),
			Name:        "Spotify Premium",
			Description: "Listen to millions of songs and podcasts without ads. Download music for offline listening.",
			Category:    "OTT",
			Image:       "https://upload.wikimedia.org/wikipedia/commons/1/19/Spotify_logo_without_text.svg",
			Features:    []string{"Ad-free Music", "Offline Downloads", "High Quality Audio", "Listen Anywhere"},
			Pricing:     models.PricingMap{"1": 119, "3": 329, "6": 599, "9": 849, "12": 1099},
			Status:      models.ProductActive,
			CreatedAt:   now,
		},
		{
			ID:          uuid.New().String(),
			Name:        "ChatGPT Plus",
			Description: "Access to GPT-4, faster response times, and priority access during peak hours.",
			Category:    "Software",
			Image:       "https://upload.wikimedia.org/wikipedia/commons/0/04/ChatGPT_logo.svg",
			Features:    []string{"GPT-4 Access", "Faster Responses", "Priority Access", "New Features First"},
			Pricing:     models.PricingMap{"1": 1499, "3": 4299, "6": 8299, "9": 0, "12": 15999},
			SalePrice:   models.PricingMap{"1": 1299, "3": 3799, "6": 7499, "9": 0, "12": 13999},
			SaleEndDate: &shortSale,
			Status:      models.ProductActive,
			CreatedAt:   now,
		},
		{
			ID:          uuid.New().String(),
			Name:        "Canva Pro",
			Description: "Create stunning designs with premium templates, brand kit, and advanced features.",
			Category:    "Software",
			Image:       "https://upload.wikimedia.org/wikipedia/commons/0/08/Canva_icon_2021.svg",
			Features:    []string{"Premium Templates", "Brand Kit", "Background Remover", "Resize Magic"},
			Pricing:     models.PricingMap{"1": 499, "3": 1399, "6": 2599, "9": 3699, "12": 4599},
			Status:      models.ProductActive,
			CreatedAt:   now,
		},
		{
			ID:          uuid.New().String(),
			Name:        "Amazon Prime",
			Description: "Get free delivery, Prime Video, Prime Music, and exclusive deals with Amazon Prime.",
			Category:    "OTT",
			Image:       "https://upload.wikimedia.org/wikipedia/commons/e/e3/Amazon_Prime_Logo.svg",
			Features:    []string{"Free Delivery", "Prime Video", "Prime Music", "Exclusive Deals"},
			Pricing:     models.PricingMap{"1": 0, "3": 459, "6": 899, "9": 0, "12": 1499},
			Status:      models.ProductActive,
			CreatedAt:   now,
		},
		{
			ID:          uuid.New().String(),
			Name:        "YouTube Premium",
			Description: "Ad-free videos, background play, and YouTube Music Premium included.",
			Category:    "OTT",
			Image:       "https://upload.wikimedia.org/wikipedia/commons/e/ef/Youtube_logo.png",
			Features:    []string{"No Ads", "Background Play", "YouTube Music", "Downloads"},
			Pricing:     models.PricingMap{"1": 129, "3": 369, "6": 699, "9": 999, "12": 1299},
			Status:      models.ProductOutOfStock,
			CreatedAt:   now,
		},
	}
}
