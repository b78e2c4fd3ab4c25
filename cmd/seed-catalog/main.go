package main

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/repuestoscl/catalog_backend/config"
	"github.com/repuestoscl/catalog_backend/models"
	"github.com/repuestoscl/catalog_backend/utils"
)

// Seeds the filter categories the storefront expects to exist.
func main() {
	ctx := context.Background()

	config.ConnectDatabaseWithRetry()
	db := config.GetDB()
	if db == nil {
		fmt.Fprintln(os.Stderr, "database not initialized (config.GetDB returned nil)")
		os.Exit(1)
	}

	models.MigrateTable()

	categories := []models.NewCategory{
		{Name: "Aire", Description: "Filtros de aire para motor"},
		{Name: "Aceite", Description: "Filtros de aceite"},
		{Name: "Combustible", Description: "Filtros de combustible bencina y diesel"},
		{Name: "Habitáculo", Description: "Filtros de polen y cabina"},
	}

	created := 0
	for i := range categories {
		_, err := models.CreateCategory(ctx, &categories[i])
		if err != nil {
			var dup *utils.DuplicateError
			if errors.As(err, &dup) {
				fmt.Printf("category %q already exists, skipping\n", categories[i].Name)
				continue
			}
			fmt.Fprintf(os.Stderr, "failed to seed category %q: %v\n", categories[i].Name, err)
			os.Exit(1)
		}
		created++
	}
	fmt.Printf("seeded %d categories\n", created)
}
