package main

import (
	"log"
	"os"

	"activity-insights-be/internal/entity"
	"activity-insights-be/internal/mapper"
	"activity-insights-be/internal/model"
	"activity-insights-be/pkg/database"

	"github.com/joho/godotenv"
)

func strPtr(s string) *string { return &s }

func kindPtr(k entity.EventKind) *entity.EventKind { return &k }

func f64Ptr(f float64) *float64 { return &f }

func main() {
	// Load Environment Variables
	if err := godotenv.Load(); err != nil {
		log.Println("Info: No .env file found, using system env")
	}

	dsn := os.Getenv("DB_CONNECTION_STRING")
	if dsn == "" {
		log.Fatal("Error: DB_CONNECTION_STRING is not set")
	}

	db, err := database.NewGormDBFromDSN(dsn)
	if err != nil {
		log.Fatal("Error: Failed to connect to database:", err)
	}

	log.Println("Seeding Workflow Template Catalog...")

	// Hand-authored workflow templates. The catalog lifecycle lives outside
	// the matcher; this seeder stands in for the authoring pipeline.
	templates := []*entity.Template{
		{
			Name:        "Comparison Shopping",
			Description: "Searching a product, then visiting several store pages before settling on one",
			Category:    "shopping",
			Steps: []entity.TemplateStep{
				{Kind: kindPtr(entity.EventKindSearch)},
				{Kind: kindPtr(entity.EventKindNavigation)},
				{Kind: kindPtr(entity.EventKindNavigation)},
				{Kind: kindPtr(entity.EventKindClick), TextContains: strPtr("cart")},
			},
			Criteria:            entity.MatchCriteria{MinSupport: 2, MinConfidence: 0.3, FuzzyMatch: true},
			ConfidenceThreshold: 0.5,
			Enabled:             true,
		},
		{
			Name:        "Deep Reading Session",
			Description: "Navigating to an article and staying on it",
			Category:    "research",
			Steps: []entity.TemplateStep{
				{Kind: kindPtr(entity.EventKindNavigation)},
				{Kind: kindPtr(entity.EventKindScroll), MinDwellMs: f64Ptr(30000)},
			},
			Criteria:            entity.MatchCriteria{MinSupport: 3, MinConfidence: 0.4, FuzzyMatch: false},
			ConfidenceThreshold: 0.6,
			Enabled:             true,
		},
		{
			Name:        "Job Application Flow",
			Description: "Job board search leading to an application form",
			Category:    "career",
			Steps: []entity.TemplateStep{
				{Kind: kindPtr(entity.EventKindSearch), DomainContains: strPtr("linkedin")},
				{Kind: kindPtr(entity.EventKindNavigation), URLContains: strPtr("/jobs/")},
				{Kind: kindPtr(entity.EventKindClick), TextContains: strPtr("apply")},
				{Kind: kindPtr(entity.EventKindInput)},
			},
			Criteria:            entity.MatchCriteria{MinSupport: 1, MinConfidence: 0.3, FuzzyMatch: true},
			ConfidenceThreshold: 0.5,
			Enabled:             true,
		},
		{
			Name:        "Documentation Lookup",
			Description: "Searching an error message and landing on docs or Stack Overflow",
			Category:    "research",
			Steps: []entity.TemplateStep{
				{Kind: kindPtr(entity.EventKindSearch)},
				{Kind: kindPtr(entity.EventKindNavigation), DomainContains: strPtr("stackoverflow")},
				{Kind: kindPtr(entity.EventKindClick)},
			},
			Criteria:            entity.MatchCriteria{MinSupport: 2, MinConfidence: 0.3, FuzzyMatch: true},
			ConfidenceThreshold: 0.4,
			Enabled:             true,
		},
	}

	tplMapper := mapper.NewTemplateMapper()
	for _, t := range templates {
		var existing model.Template
		if err := db.Where("name = ?", t.Name).First(&existing).Error; err == nil {
			log.Printf("Template '%s' already exists, skipping...", t.Name)
			continue
		}

		if err := db.Create(tplMapper.ToModel(t)).Error; err != nil {
			log.Printf("Error creating template '%s': %v", t.Name, err)
		} else {
			log.Printf("Created template: %s (%s)", t.Name, t.Category)
		}
	}

	log.Println("Template seeding completed!")
}
