package models

import (
	"context"
	"time"

	"github.com/repuestoscl/catalog_backend/config"
	"github.com/repuestoscl/catalog_backend/utils"
)

type Category struct {
	ID          int       `gorm:"primary_key" json:"id"`
	Name        string    `gorm:"uniqueIndex;size:100;not null" json:"name" binding:"required"`
	Description string    `gorm:"type:text" json:"description"`
	IsActive    *bool     `gorm:"not null;default:true" json:"is_active"`
	CreatedAt   time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt   time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

type NewCategory struct {
	Name        string `json:"name" binding:"required"`
	Description string `json:"description"`
}

type UpdateCategoryInput struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
}

func (input *NewCategory) validate(ctx context.Context, id int) error {
	if err := utils.ValidateUnique[Category](ctx, "name", input.Name, id); err != nil {
		return err
	}
	return nil
}

func CreateCategory(ctx context.Context, input *NewCategory) (*Category, error) {

	if err := input.validate(ctx, 0); err != nil {
		return nil, err
	}

	category := Category{
		Name:        input.Name,
		Description: input.Description,
		IsActive:    utils.NewTrue(),
	}

	db := config.GetDB()
	err := db.WithContext(ctx).Create(&category).Error
	if err != nil {
		return nil, err
	}
	return &category, nil
}

func GetCategory(ctx context.Context, id int) (*Category, error) {
	return utils.FetchModel[Category](ctx, id)
}

func GetCategoryByName(ctx context.Context, name string) (*Category, error) {
	return utils.FetchModelWhere[Category](ctx, "name = ?", name)
}

func PaginateCategories(ctx context.Context, skip int, limit int) ([]*Category, int64, error) {

	db := config.GetDB()
	dbCtx := db.WithContext(ctx).Model(&Category{}).Where("is_active = ?", true)

	var total int64
	if err := dbCtx.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	dbCtx = dbCtx.Order("id")
	if skip > 0 {
		dbCtx = dbCtx.Offset(skip)
	}
	if limit > 0 {
		dbCtx = dbCtx.Limit(limit)
	}

	items := make([]*Category, 0)
	if err := dbCtx.Find(&items).Error; err != nil {
		return nil, 0, err
	}
	return items, total, nil
}

func UpdateCategory(ctx context.Context, id int, input *UpdateCategoryInput) (*Category, error) {

	category, err := utils.FetchModel[Category](ctx, id)
	if err != nil {
		return nil, err
	}

	if input.Name != nil {
		if err := utils.ValidateUnique[Category](ctx, "name", *input.Name, id); err != nil {
			return nil, err
		}
	}

	updates := map[string]interface{}{}
	if input.Name != nil {
		updates["name"] = *input.Name
	}
	if input.Description != nil {
		updates["description"] = *input.Description
	}
	if len(updates) == 0 {
		return category, nil
	}

	db := config.GetDB()
	err = db.WithContext(ctx).Model(category).Updates(updates).Error
	if err != nil {
		return nil, err
	}
	return category, nil
}

// DeleteCategory soft-deletes, refusing while any active product still
// belongs to the category.
func DeleteCategory(ctx context.Context, id int) (*Category, error) {

	category, err := utils.FetchModel[Category](ctx, id)
	if err != nil {
		return nil, err
	}

	inUse, err := utils.ResourceCountWhere[Product](ctx, "category_id = ? AND is_active = ?", id, true)
	if err != nil {
		return nil, err
	}
	if inUse > 0 {
		return nil, utils.NewValidationError("category has %d active products", inUse)
	}

	db := config.GetDB()
	err = db.WithContext(ctx).Model(category).Updates(map[string]interface{}{
		"is_active": false,
	}).Error
	if err != nil {
		return nil, err
	}
	return category, nil
}
