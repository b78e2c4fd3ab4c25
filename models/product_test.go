package models_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/repuestoscl/catalog_backend/models"
	"github.com/repuestoscl/catalog_backend/utils"
	"github.com/shopspring/decimal"
)

func TestCreateProduct_ComputesDerivedPrices(t *testing.T) {
	mock := newTestDB(t)
	ctx := context.Background()

	// code uniqueness, then category existence
	mock.ExpectQuery("SELECT count\\(\\*\\) FROM `products` WHERE code = \\?").
		WillReturnRows(countRows(0))
	mock.ExpectQuery("SELECT count\\(\\*\\) FROM `categories` WHERE id = \\? AND is_active = \\?").
		WillReturnRows(countRows(1))
	mock.ExpectExec("INSERT INTO `products`").
		WillReturnResult(sqlmock.NewResult(1, 1))

	product, err := models.CreateProduct(ctx, &models.NewProduct{
		Code:          "FIL-001",
		Name:          "Filtro de aceite",
		Brand:         "Bosch",
		CategoryId:    1,
		PurchasePrice: decimal.NewFromInt(1000),
		Stock:         5,
	})
	if err != nil {
		t.Fatalf("CreateProduct: %v", err)
	}

	// default margin 30: net 1300, tax 247, sale 1547
	if got := product.MarginPct.String(); got != "30" {
		t.Errorf("MarginPct = %s, want 30", got)
	}
	if got := product.NetPrice.String(); got != "1300" {
		t.Errorf("NetPrice = %s, want 1300", got)
	}
	if got := product.Tax.String(); got != "247" {
		t.Errorf("Tax = %s, want 247", got)
	}
	if got := product.SalePrice.String(); got != "1547" {
		t.Errorf("SalePrice = %s, want 1547", got)
	}
	if product.IsActive == nil || !*product.IsActive {
		t.Error("new product should be active")
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Error(err)
	}
}

func TestCreateProduct_DuplicateCodeRejected(t *testing.T) {
	mock := newTestDB(t)
	ctx := context.Background()

	mock.ExpectQuery("SELECT count\\(\\*\\) FROM `products` WHERE code = \\?").
		WillReturnRows(countRows(1))

	_, err := models.CreateProduct(ctx, &models.NewProduct{
		Code:          "FIL-001",
		Name:          "Filtro de aceite",
		Brand:         "Bosch",
		CategoryId:    1,
		PurchasePrice: decimal.NewFromInt(1000),
	})

	var dup *utils.DuplicateError
	if !errors.As(err, &dup) {
		t.Fatalf("expected DuplicateError, got %v", err)
	}
	if dup.Column != "code" {
		t.Errorf("duplicate column = %s, want code", dup.Column)
	}
	// no INSERT must have been attempted
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Error(err)
	}
}

func TestCreateProduct_InvalidInputRejected(t *testing.T) {
	newTestDB(t)
	ctx := context.Background()

	cases := []struct {
		name  string
		input models.NewProduct
	}{
		{
			name: "zero purchase price",
			input: models.NewProduct{
				Code: "A", Name: "a", Brand: "b", CategoryId: 1,
				PurchasePrice: decimal.Zero,
			},
		},
		{
			name: "negative purchase price",
			input: models.NewProduct{
				Code: "A", Name: "a", Brand: "b", CategoryId: 1,
				PurchasePrice: decimal.NewFromInt(-10),
			},
		},
		{
			name: "margin above 1000",
			input: models.NewProduct{
				Code: "A", Name: "a", Brand: "b", CategoryId: 1,
				PurchasePrice: decimal.NewFromInt(10),
				MarginPct:     decimalPtr(decimal.NewFromInt(1001)),
			},
		},
		{
			name: "negative stock",
			input: models.NewProduct{
				Code: "A", Name: "a", Brand: "b", CategoryId: 1,
				PurchasePrice: decimal.NewFromInt(10),
				Stock:         -1,
			},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := models.CreateProduct(ctx, &tc.input)
			var verr *utils.ValidationError
			if !errors.As(err, &verr) {
				t.Fatalf("expected ValidationError, got %v", err)
			}
		})
	}
}

func TestUpdateProduct_StockOnlyLeavesPricesAlone(t *testing.T) {
	mock := newTestDB(t)
	ctx := context.Background()

	rows := sqlmock.NewRows(productColumns)
	productRow(rows, 1, "FIL-001", "1000", "30", "1300", "247", "1547", 5)
	mock.ExpectQuery("SELECT \\* FROM `products` WHERE `products`\\.`id` = \\?").
		WillReturnRows(rows)

	// only stock and updated_at may be touched
	mock.ExpectExec("UPDATE `products` SET `stock`=\\?,`updated_at`=\\? WHERE").
		WillReturnResult(sqlmock.NewResult(0, 1))

	stock := 12
	product, err := models.UpdateProduct(ctx, 1, &models.UpdateProductInput{Stock: &stock})
	if err != nil {
		t.Fatalf("UpdateProduct: %v", err)
	}
	if got := product.SalePrice.String(); got != "1547" {
		t.Errorf("SalePrice = %s, want 1547", got)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Error(err)
	}
}

func TestUpdateProduct_PurchasePriceRecomputesPrices(t *testing.T) {
	mock := newTestDB(t)
	ctx := context.Background()

	rows := sqlmock.NewRows(productColumns)
	productRow(rows, 1, "FIL-001", "1000", "30", "1300", "247", "1547", 5)
	mock.ExpectQuery("SELECT \\* FROM `products` WHERE `products`\\.`id` = \\?").
		WillReturnRows(rows)

	// all five pricing columns written together, map keys in column order
	mock.ExpectExec("UPDATE `products` SET `margin_pct`=\\?,`net_price`=\\?,`purchase_price`=\\?,`sale_price`=\\?,`tax`=\\?,`updated_at`=\\? WHERE").
		WillReturnResult(sqlmock.NewResult(0, 1))

	price := decimal.NewFromInt(2000)
	product, err := models.UpdateProduct(ctx, 1, &models.UpdateProductInput{PurchasePrice: &price})
	if err != nil {
		t.Fatalf("UpdateProduct: %v", err)
	}
	if got := product.NetPrice.String(); got != "2600" {
		t.Errorf("NetPrice = %s, want 2600", got)
	}
	if got := product.Tax.String(); got != "494" {
		t.Errorf("Tax = %s, want 494", got)
	}
	if got := product.SalePrice.String(); got != "3094" {
		t.Errorf("SalePrice = %s, want 3094", got)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Error(err)
	}
}

func TestUpdateProduct_NotFound(t *testing.T) {
	mock := newTestDB(t)
	ctx := context.Background()

	mock.ExpectQuery("SELECT \\* FROM `products` WHERE `products`\\.`id` = \\?").
		WillReturnRows(sqlmock.NewRows(productColumns))

	stock := 1
	_, err := models.UpdateProduct(ctx, 99, &models.UpdateProductInput{Stock: &stock})
	if !errors.Is(err, utils.ErrorRecordNotFound) {
		t.Fatalf("expected record not found, got %v", err)
	}
}

func TestDeleteProduct_FlipsActiveFlag(t *testing.T) {
	mock := newTestDB(t)
	ctx := context.Background()

	rows := sqlmock.NewRows(productColumns)
	productRow(rows, 1, "FIL-001", "1000", "30", "1300", "247", "1547", 5)
	mock.ExpectQuery("SELECT \\* FROM `products` WHERE `products`\\.`id` = \\?").
		WillReturnRows(rows)
	mock.ExpectExec("UPDATE `products` SET `is_active`=\\?,`updated_at`=\\? WHERE").
		WillReturnResult(sqlmock.NewResult(0, 1))

	if _, err := models.DeleteProduct(ctx, 1); err != nil {
		t.Fatalf("DeleteProduct: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Error(err)
	}
}

func TestGetProduct_SoftDeletedStillReachableById(t *testing.T) {
	mock := newTestDB(t)
	ctx := context.Background()

	now := time.Now()
	rows := sqlmock.NewRows(productColumns).AddRow(
		7, "FIL-007", "Filtro de aceite", "Bosch", "", 1, 0,
		"1000", "30", "1300", "247", "1547", 0,
		"auto", "", "", "", false,
		now, now,
	)
	mock.ExpectQuery("SELECT \\* FROM `products` WHERE `products`\\.`id` = \\?").
		WillReturnRows(rows)

	product, err := models.GetProduct(ctx, 7)
	if err != nil {
		t.Fatalf("GetProduct: %v", err)
	}
	if product.IsActive == nil || *product.IsActive {
		t.Error("expected the soft-deleted row, active flag should be false")
	}
}

func TestGetProductByCode_SoftDeletedStillReachable(t *testing.T) {
	mock := newTestDB(t)
	ctx := context.Background()

	now := time.Now()
	rows := sqlmock.NewRows(productColumns).AddRow(
		7, "FIL-007", "Filtro de aceite", "Bosch", "", 1, 0,
		"1000", "30", "1300", "247", "1547", 0,
		"auto", "", "", "", false,
		now, now,
	)
	mock.ExpectQuery("SELECT \\* FROM `products` WHERE code = \\?").
		WillReturnRows(rows)

	product, err := models.GetProductByCode(ctx, "FIL-007")
	if err != nil {
		t.Fatalf("GetProductByCode: %v", err)
	}
	if product.IsActive == nil || *product.IsActive {
		t.Error("expected the soft-deleted row, active flag should be false")
	}
}

func TestGetProduct_StoreFailureIsNotMissing(t *testing.T) {
	mock := newTestDB(t)
	ctx := context.Background()

	mock.ExpectQuery("SELECT \\* FROM `products` WHERE `products`\\.`id` = \\?").
		WillReturnError(errors.New("driver: bad connection"))

	_, err := models.GetProduct(ctx, 7)
	if err == nil {
		t.Fatal("expected an error")
	}
	// a broken connection is a store failure, not a missing record
	if errors.Is(err, utils.ErrorRecordNotFound) {
		t.Fatalf("store failure reported as record not found: %v", err)
	}
}

func TestPaginateProducts_EmptyCatalog(t *testing.T) {
	mock := newTestDB(t)
	ctx := context.Background()

	mock.ExpectQuery("SELECT count\\(\\*\\) FROM `products` WHERE is_active = \\?").
		WillReturnRows(countRows(0))
	mock.ExpectQuery("SELECT \\* FROM `products` WHERE is_active = \\? ORDER BY id").
		WillReturnRows(sqlmock.NewRows(productColumns))

	page, err := models.PaginateProducts(ctx, 0, 100, models.ProductFilter{})
	if err != nil {
		t.Fatalf("PaginateProducts: %v", err)
	}
	if page.Total != 0 {
		t.Errorf("Total = %d, want 0", page.Total)
	}
	if page.Page != 1 {
		t.Errorf("Page = %d, want 1", page.Page)
	}
	if page.PageSize != 100 {
		t.Errorf("PageSize = %d, want 100", page.PageSize)
	}
	if len(page.Items) != 0 {
		t.Errorf("Items = %d, want 0", len(page.Items))
	}
}

func TestPaginateProducts_TotalCoversWholeFilteredSet(t *testing.T) {
	mock := newTestDB(t)
	ctx := context.Background()

	mock.ExpectQuery("SELECT count\\(\\*\\) FROM `products` WHERE is_active = \\? AND category_id = \\?").
		WillReturnRows(countRows(7))

	rows := sqlmock.NewRows(productColumns)
	productRow(rows, 3, "FIL-003", "1000", "30", "1300", "247", "1547", 5)
	productRow(rows, 4, "FIL-004", "500", "30", "650", "123.5", "774", 2)
	mock.ExpectQuery("SELECT \\* FROM `products` WHERE is_active = \\? AND category_id = \\? ORDER BY id").
		WillReturnRows(rows)

	categoryId := 2
	page, err := models.PaginateProducts(ctx, 2, 2, models.ProductFilter{CategoryId: &categoryId})
	if err != nil {
		t.Fatalf("PaginateProducts: %v", err)
	}

	// total reflects every matching row, not just the returned page
	if page.Total != 7 {
		t.Errorf("Total = %d, want 7", page.Total)
	}
	if page.Page != 2 {
		t.Errorf("Page = %d, want 2", page.Page)
	}
	if len(page.Items) != 2 {
		t.Errorf("Items = %d, want 2", len(page.Items))
	}
}

func TestPaginateProducts_VehicleFiltersCombine(t *testing.T) {
	mock := newTestDB(t)
	ctx := context.Background()

	mock.ExpectQuery("SELECT count\\(\\*\\) FROM `products` WHERE is_active = \\? AND vehicle_type = \\? AND oil_type = \\? AND fuel_type = \\?").
		WithArgs(true, "camioneta", "sintetico", "diesel").
		WillReturnRows(countRows(1))

	rows := sqlmock.NewRows(productColumns)
	productRow(rows, 9, "FIL-009", "1000", "30", "1300", "247", "1547", 3)
	// ORDER BY right after the last placeholder pins down that the unset
	// filter_type predicate is absent
	mock.ExpectQuery("SELECT \\* FROM `products` WHERE is_active = \\? AND vehicle_type = \\? AND oil_type = \\? AND fuel_type = \\? ORDER BY id").
		WithArgs(true, "camioneta", "sintetico", "diesel").
		WillReturnRows(rows)

	vehicleType := "camioneta"
	oilType := "sintetico"
	fuelType := "diesel"
	page, err := models.PaginateProducts(ctx, 0, 10, models.ProductFilter{
		VehicleType: &vehicleType,
		OilType:     &oilType,
		FuelType:    &fuelType,
	})
	if err != nil {
		t.Fatalf("PaginateProducts: %v", err)
	}
	if page.Total != 1 {
		t.Errorf("Total = %d, want 1", page.Total)
	}
	if len(page.Items) != 1 || page.Items[0].Code != "FIL-009" {
		t.Errorf("unexpected page items: %+v", page.Items)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Error(err)
	}
}

func TestPageNumber(t *testing.T) {
	cases := []struct {
		skip, limit, want int
	}{
		{0, 100, 1},
		{100, 100, 2},
		{250, 100, 3},
		{0, 0, 1},
		{50, 0, 1},
	}
	for _, tc := range cases {
		if got := models.PageNumber(tc.skip, tc.limit); got != tc.want {
			t.Errorf("PageNumber(%d, %d) = %d, want %d", tc.skip, tc.limit, got, tc.want)
		}
	}
}

func decimalPtr(d decimal.Decimal) *decimal.Decimal {
	return &d
}
