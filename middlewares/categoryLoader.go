package middlewares

import (
	"context"

	"github.com/graph-gophers/dataloader/v7"
	"github.com/repuestoscl/catalog_backend/models"
	"gorm.io/gorm"
)

type categoryReader struct {
	db *gorm.DB
}

func (r *categoryReader) getCategories(ctx context.Context, ids []int) []*dataloader.Result[*models.Category] {
	var results []models.Category
	err := r.db.WithContext(ctx).Where("id IN ?", ids).Find(&results).Error
	if err != nil {
		return handleError[*models.Category](len(ids), err)
	}

	return generateLoaderResults(results, ids)
}

func GetCategory(ctx context.Context, id int) (*models.Category, error) {
	loaders := For(ctx)
	return loaders.categoryLoader.Load(ctx, id)()
}

func GetCategories(ctx context.Context, ids []int) ([]*models.Category, []error) {
	loaders := For(ctx)
	return loaders.categoryLoader.LoadMany(ctx, ids)()
}
