package repository

import (
	"context"
	"fmt"

	"triviaapi/models"

	"gorm.io/gorm"
)

// DefaultCategories are the categories the front-end ships icons for.
var DefaultCategories = []models.Category{
	{ID: 1, Type: "Science"},
	{ID: 2, Type: "Art"},
	{ID: 3, Type: "Geography"},
	{ID: 4, Type: "History"},
	{ID: 5, Type: "Entertainment"},
	{ID: 6, Type: "Sports"},
}

// Migrate creates or updates the questions and categories tables.
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(&models.Category{}, &models.Question{}); err != nil {
		return fmt.Errorf("failed to migrate database: %w", err)
	}
	return nil
}

// SeedCategories inserts DefaultCategories when the categories table is
// empty. It reports how many rows were inserted.
func SeedCategories(ctx context.Context, db *gorm.DB) (int, error) {
	var count int64
	if err := db.WithContext(ctx).Model(&models.Category{}).Count(&count).Error; err != nil {
		return 0, fmt.Errorf("count categories: %w", err)
	}
	if count > 0 {
		return 0, nil
	}

	categories := make([]models.Category, len(DefaultCategories))
	copy(categories, DefaultCategories)
	if err := db.WithContext(ctx).Create(&categories).Error; err != nil {
		return 0, fmt.Errorf("seed categories: %w", err)
	}
	return len(categories), nil
}
