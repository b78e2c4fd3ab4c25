package models_test

import (
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/repuestoscl/catalog_backend/config"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// newTestDB wires a sqlmock connection into the shared gorm handle.
// Queries are matched by regexp so expectations only need to pin down
// the parts of the statement that matter.
func newTestDB(t *testing.T) sqlmock.Sqlmock {
	t.Helper()

	sqlDb, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	t.Cleanup(func() { sqlDb.Close() })

	gormDb, err := gorm.Open(mysql.New(mysql.Config{
		Conn:                      sqlDb,
		SkipInitializeWithVersion: true,
	}), &gorm.Config{
		SkipDefaultTransaction: true,
		Logger:                 logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("gorm.Open: %v", err)
	}

	config.SetDB(gormDb)
	return mock
}

var productColumns = []string{
	"id", "code", "name", "brand", "description", "category_id", "distributor_id",
	"purchase_price", "margin_pct", "net_price", "tax", "sale_price", "stock",
	"vehicle_type", "oil_type", "fuel_type", "filter_type", "is_active",
	"created_at", "updated_at",
}

func productRow(rows *sqlmock.Rows, id int, code string, purchasePrice, marginPct, netPrice, tax, salePrice string, stock int) *sqlmock.Rows {
	now := time.Now()
	return rows.AddRow(
		id, code, "Filtro de aceite", "Bosch", "", 1, 0,
		purchasePrice, marginPct, netPrice, tax, salePrice, stock,
		"auto", "", "", "", true,
		now, now,
	)
}

func countRows(n int64) *sqlmock.Rows {
	return sqlmock.NewRows([]string{"count(*)"}).AddRow(n)
}
