package models

import (
	"github.com/repuestoscl/catalog_backend/config"
	"github.com/repuestoscl/catalog_backend/utils"
)

func MigrateTable() {
	db := config.GetDB()

	err := db.AutoMigrate(
		&Category{}, &Distributor{},
		&Product{},
	)
	if err != nil {
		utils.ErrorPanic(err)
	}
}
