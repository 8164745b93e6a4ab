package main

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"regexp"
	"strings"

	"barkery/internal/config"
	"barkery/internal/db"
	"barkery/models"

	"gorm.io/gorm"
)

var (
	cleanWhitespace = regexp.MustCompile(`\s+`)
	slugPattern     = regexp.MustCompile(`[^a-z0-9]+`)
)

func main() {
	csvPath := "recipes.csv"
	if len(os.Args) > 1 {
		csvPath = os.Args[1]
	}

	if err := run(csvPath); err != nil {
		fmt.Fprintf(os.Stderr, "import failed: %v\n", err)
		os.Exit(1)
	}
}

func run(csvPath string) error {
	if strings.TrimSpace(csvPath) == "" {
		return fmt.Errorf("csv path must not be empty")
	}

	if _, err := os.Stat(csvPath); err != nil {
		return fmt.Errorf("locate csv: %w", err)
	}

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	database, err := db.Initialize(cfg.Database)
	if err != nil {
		return fmt.Errorf("open database: %w", err)
	}

	if err := db.AutoMigrate(database); err != nil {
		return fmt.Errorf("migrate schema: %w", err)
	}

	file, err := os.Open(csvPath)
	if err != nil {
		return fmt.Errorf("open csv: %w", err)
	}
	defer file.Close()

	recipes, err := parseRecipes(file)
	if err != nil {
		return err
	}

	imported := 0
	for _, recipe := range recipes {
		if err := upsertRecipe(database, recipe); err != nil {
			return fmt.Errorf("upsert recipe %q: %w", recipe.Name, err)
		}
		imported++
	}

	fmt.Printf("imported %d recipes from %s\n", imported, csvPath)
	return nil
}

func parseRecipes(r io.Reader) ([]models.Recipe, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("read csv header: %w", err)
	}

	nameIdx, slugIdx := -1, -1
	for i, column := range header {
		switch strings.ToLower(strings.TrimSpace(column)) {
		case "name", "recipe", "recipe name":
			nameIdx = i
		case "slug":
			slugIdx = i
		}
	}
	if nameIdx < 0 {
		return nil, errors.New("csv header must contain a name column")
	}

	var recipes []models.Recipe
	for {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read csv row: %w", err)
		}

		if nameIdx >= len(record) {
			continue
		}
		name := normalizeName(record[nameIdx])
		if name == "" {
			continue
		}

		slug := ""
		if slugIdx >= 0 && slugIdx < len(record) {
			slug = strings.TrimSpace(record[slugIdx])
		}
		if slug == "" {
			slug = slugify(name)
		}

		recipes = append(recipes, models.Recipe{Name: name, Slug: slug})
	}

	return recipes, nil
}

func upsertRecipe(database *gorm.DB, recipe models.Recipe) error {
	var existing models.Recipe
	err := database.Where("slug = ?", recipe.Slug).First(&existing).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return database.Create(&recipe).Error
	}
	if err != nil {
		return err
	}
	return database.Model(&existing).Update("name", recipe.Name).Error
}

func normalizeName(value string) string {
	return strings.TrimSpace(cleanWhitespace.ReplaceAllString(value, " "))
}

func slugify(name string) string {
	slug := strings.ToLower(strings.TrimSpace(name))
	slug = slugPattern.ReplaceAllString(slug, "-")
	return strings.Trim(slug, "-")
}
