package middlewares

import (
	"context"

	"github.com/graph-gophers/dataloader/v7"
	"github.com/repuestoscl/catalog_backend/models"
	"gorm.io/gorm"
)

type distributorReader struct {
	db *gorm.DB
}

func (r *distributorReader) getDistributors(ctx context.Context, ids []int) []*dataloader.Result[*models.Distributor] {
	var results []models.Distributor
	err := r.db.WithContext(ctx).Where("id IN ?", ids).Find(&results).Error
	if err != nil {
		return handleError[*models.Distributor](len(ids), err)
	}

	return generateLoaderResults(results, ids)
}

func GetDistributor(ctx context.Context, id int) (*models.Distributor, error) {
	loaders := For(ctx)
	return loaders.distributorLoader.Load(ctx, id)()
}
