package models

import (
	"context"
	"time"

	"github.com/repuestoscl/catalog_backend/config"
	"github.com/repuestoscl/catalog_backend/utils"
	"github.com/shopspring/decimal"
)

type Product struct {
	ID            int             `gorm:"primary_key" json:"id"`
	Code          string          `gorm:"uniqueIndex;size:100;not null" json:"code" binding:"required"`
	Name          string          `gorm:"size:100;not null" json:"name" binding:"required"`
	Brand         string          `gorm:"size:50;not null" json:"brand" binding:"required"`
	Description   string          `gorm:"type:text" json:"description"`
	CategoryId    int             `gorm:"index;not null" json:"category_id" binding:"required"`
	DistributorId int             `gorm:"index;not null;default:0" json:"distributor_id"`
	PurchasePrice decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"purchase_price"`
	MarginPct     decimal.Decimal `gorm:"type:decimal(6,2);not null;default:30" json:"margin_pct"`
	NetPrice      decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"net_price"`
	Tax           decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"tax"`
	SalePrice     decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"sale_price"`
	Stock         int             `gorm:"not null;default:0" json:"stock"`
	VehicleType   string          `gorm:"index;size:50" json:"vehicle_type"`
	OilType       string          `gorm:"size:50" json:"oil_type"`
	FuelType      string          `gorm:"size:50" json:"fuel_type"`
	FilterType    string          `gorm:"size:50" json:"filter_type"`
	IsActive      *bool           `gorm:"not null;default:true" json:"is_active"`
	CreatedAt     time.Time       `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt     time.Time       `gorm:"autoUpdateTime" json:"updated_at"`
}

type NewProduct struct {
	Code          string           `json:"code" binding:"required"`
	Name          string           `json:"name" binding:"required"`
	Brand         string           `json:"brand" binding:"required"`
	Description   string           `json:"description"`
	CategoryId    int              `json:"category_id" binding:"required"`
	DistributorId int              `json:"distributor_id"`
	PurchasePrice decimal.Decimal  `json:"purchase_price"`
	MarginPct     *decimal.Decimal `json:"margin_pct"`
	Stock         int              `json:"stock"`
	VehicleType   string           `json:"vehicle_type"`
	OilType       string           `json:"oil_type"`
	FuelType      string           `json:"fuel_type"`
	FilterType    string           `json:"filter_type"`
}

// UpdateProductInput is a patch: nil means "leave the field alone".
// Fields are mapped to columns one by one; nothing is assigned by reflection.
type UpdateProductInput struct {
	Code          *string          `json:"code"`
	Name          *string          `json:"name"`
	Brand         *string          `json:"brand"`
	Description   *string          `json:"description"`
	CategoryId    *int             `json:"category_id"`
	DistributorId *int             `json:"distributor_id"`
	PurchasePrice *decimal.Decimal `json:"purchase_price"`
	MarginPct     *decimal.Decimal `json:"margin_pct"`
	Stock         *int             `json:"stock"`
	VehicleType   *string          `json:"vehicle_type"`
	OilType       *string          `json:"oil_type"`
	FuelType      *string          `json:"fuel_type"`
	FilterType    *string          `json:"filter_type"`
}

// ProductFilter narrows listings; nil fields impose no constraint.
// Present fields combine with logical AND.
type ProductFilter struct {
	CategoryId    *int
	DistributorId *int
	VehicleType   *string
	OilType       *string
	FuelType      *string
	FilterType    *string
}

type ProductsPage struct {
	Items    []*Product `json:"items"`
	Total    int64      `json:"total"`
	Page     int        `json:"page"`
	PageSize int        `json:"page_size"`
}

// validate input for both create & update. (id = 0 for create)
func (input *NewProduct) validate(ctx context.Context, id int) error {
	if !input.PurchasePrice.IsPositive() {
		return utils.NewValidationError("purchase price must be greater than 0")
	}
	if input.MarginPct != nil {
		if err := validateMarginPct(*input.MarginPct); err != nil {
			return err
		}
	}
	if input.Stock < 0 {
		return utils.NewValidationError("stock cannot be negative")
	}
	// code stays reserved even by soft-deleted products
	if err := utils.ValidateUnique[Product](ctx, "code", input.Code, id); err != nil {
		return err
	}
	if err := utils.ValidateResourceId[Category](ctx, input.CategoryId); err != nil {
		return utils.NewValidationError("category not found")
	}
	if input.DistributorId > 0 {
		if err := utils.ValidateResourceId[Distributor](ctx, input.DistributorId); err != nil {
			return utils.NewValidationError("distributor not found")
		}
	}
	return nil
}

func validateMarginPct(marginPct decimal.Decimal) error {
	if marginPct.IsNegative() || marginPct.GreaterThan(decimal.NewFromInt(1000)) {
		return utils.NewValidationError("margin percentage must be between 0 and 1000")
	}
	return nil
}

func CreateProduct(ctx context.Context, input *NewProduct) (*Product, error) {

	if err := input.validate(ctx, 0); err != nil {
		return nil, err
	}

	marginPct := DefaultMarginPct
	if input.MarginPct != nil {
		marginPct = *input.MarginPct
	}
	net, tax, sale := ComputePrices(input.PurchasePrice, marginPct)

	product := Product{
		Code:          input.Code,
		Name:          input.Name,
		Brand:         input.Brand,
		Description:   input.Description,
		CategoryId:    input.CategoryId,
		DistributorId: input.DistributorId,
		PurchasePrice: input.PurchasePrice,
		MarginPct:     marginPct,
		NetPrice:      net,
		Tax:           tax,
		SalePrice:     sale,
		Stock:         input.Stock,
		VehicleType:   input.VehicleType,
		OilType:       input.OilType,
		FuelType:      input.FuelType,
		FilterType:    input.FilterType,
		IsActive:      utils.NewTrue(),
	}

	db := config.GetDB()
	err := db.WithContext(ctx).Create(&product).Error
	if err != nil {
		return nil, err
	}

	return &product, nil
}

// GetProduct looks a product up by id, active or not. Soft-deleted
// products stay reachable here while being excluded from listings.
func GetProduct(ctx context.Context, id int) (*Product, error) {
	return utils.FetchModel[Product](ctx, id)
}

// GetProductByCode resolves a product by its unique code. Like GetProduct
// it also returns soft-deleted products, since a code stays reserved (and
// so addressable) after deletion.
func GetProductByCode(ctx context.Context, code string) (*Product, error) {
	return utils.FetchModelWhere[Product](ctx, "code = ?", code)
}

func UpdateProduct(ctx context.Context, id int, input *UpdateProductInput) (*Product, error) {

	product, err := utils.FetchModel[Product](ctx, id)
	if err != nil {
		return nil, err
	}

	if input.PurchasePrice != nil && !input.PurchasePrice.IsPositive() {
		return nil, utils.NewValidationError("purchase price must be greater than 0")
	}
	if input.MarginPct != nil {
		if err := validateMarginPct(*input.MarginPct); err != nil {
			return nil, err
		}
	}
	if input.Stock != nil && *input.Stock < 0 {
		return nil, utils.NewValidationError("stock cannot be negative")
	}
	if input.Code != nil {
		if err := utils.ValidateUnique[Product](ctx, "code", *input.Code, id); err != nil {
			return nil, err
		}
	}
	if input.CategoryId != nil {
		if err := utils.ValidateResourceId[Category](ctx, *input.CategoryId); err != nil {
			return nil, utils.NewValidationError("category not found")
		}
	}
	if input.DistributorId != nil && *input.DistributorId > 0 {
		if err := utils.ValidateResourceId[Distributor](ctx, *input.DistributorId); err != nil {
			return nil, utils.NewValidationError("distributor not found")
		}
	}

	updates := map[string]interface{}{}
	if input.Code != nil {
		updates["code"] = *input.Code
	}
	if input.Name != nil {
		updates["name"] = *input.Name
	}
	if input.Brand != nil {
		updates["brand"] = *input.Brand
	}
	if input.Description != nil {
		updates["description"] = *input.Description
	}
	if input.CategoryId != nil {
		updates["category_id"] = *input.CategoryId
	}
	if input.DistributorId != nil {
		updates["distributor_id"] = *input.DistributorId
	}
	if input.Stock != nil {
		updates["stock"] = *input.Stock
	}
	if input.VehicleType != nil {
		updates["vehicle_type"] = *input.VehicleType
	}
	if input.OilType != nil {
		updates["oil_type"] = *input.OilType
	}
	if input.FuelType != nil {
		updates["fuel_type"] = *input.FuelType
	}
	if input.FilterType != nil {
		updates["filter_type"] = *input.FilterType
	}

	// derived prices follow purchase price and margin, never set directly
	if input.PurchasePrice != nil || input.MarginPct != nil {
		purchasePrice := product.PurchasePrice
		if input.PurchasePrice != nil {
			purchasePrice = *input.PurchasePrice
		}
		marginPct := product.MarginPct
		if input.MarginPct != nil {
			marginPct = *input.MarginPct
		}
		net, tax, sale := ComputePrices(purchasePrice, marginPct)
		updates["purchase_price"] = purchasePrice
		updates["margin_pct"] = marginPct
		updates["net_price"] = net
		updates["tax"] = tax
		updates["sale_price"] = sale
	}

	if len(updates) == 0 {
		return product, nil
	}

	db := config.GetDB()
	err = db.WithContext(ctx).Model(product).Updates(updates).Error
	if err != nil {
		return nil, err
	}
	return product, nil
}

// DeleteProduct flips the active flag. The row stays in storage so the
// code remains reserved and id lookups keep working.
func DeleteProduct(ctx context.Context, id int) (*Product, error) {

	product, err := utils.FetchModel[Product](ctx, id)
	if err != nil {
		return nil, err
	}

	db := config.GetDB()
	err = db.WithContext(ctx).Model(product).Updates(map[string]interface{}{
		"is_active": false,
	}).Error
	if err != nil {
		return nil, err
	}
	return product, nil
}

// PaginateProducts lists active products in id order. Total reflects the
// full filtered set, not just the returned page.
func PaginateProducts(ctx context.Context, skip int, limit int, filter ProductFilter) (*ProductsPage, error) {

	db := config.GetDB()
	dbCtx := db.WithContext(ctx).Model(&Product{}).Where("is_active = ?", true)

	if filter.CategoryId != nil {
		dbCtx = dbCtx.Where("category_id = ?", *filter.CategoryId)
	}
	if filter.DistributorId != nil {
		dbCtx = dbCtx.Where("distributor_id = ?", *filter.DistributorId)
	}
	if filter.VehicleType != nil {
		dbCtx = dbCtx.Where("vehicle_type = ?", *filter.VehicleType)
	}
	if filter.OilType != nil {
		dbCtx = dbCtx.Where("oil_type = ?", *filter.OilType)
	}
	if filter.FuelType != nil {
		dbCtx = dbCtx.Where("fuel_type = ?", *filter.FuelType)
	}
	if filter.FilterType != nil {
		dbCtx = dbCtx.Where("filter_type = ?", *filter.FilterType)
	}

	var total int64
	if err := dbCtx.Count(&total).Error; err != nil {
		return nil, err
	}

	dbCtx = dbCtx.Order("id")
	if skip > 0 {
		dbCtx = dbCtx.Offset(skip)
	}
	// limit <= 0 means the whole filtered set, used by exports
	if limit > 0 {
		dbCtx = dbCtx.Limit(limit)
	}

	items := make([]*Product, 0)
	if err := dbCtx.Find(&items).Error; err != nil {
		return nil, err
	}

	return &ProductsPage{
		Items:    items,
		Total:    total,
		Page:     PageNumber(skip, limit),
		PageSize: limit,
	}, nil
}

// PageNumber is a display convenience: skip/limit + 1 when limit > 0, else 1.
func PageNumber(skip, limit int) int {
	if limit > 0 {
		return skip/limit + 1
	}
	return 1
}
