package utils

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/repuestoscl/catalog_backend/config"
)

/* DB fetching */

// fetch model from db by primary key, active or not
// (may return RecordNotFound; other store errors pass through)
func FetchModel[T any](ctx context.Context, id int) (*T, error) {

	db := config.GetDB()
	var result T
	err := db.WithContext(ctx).First(&result, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrorRecordNotFound
		}
		return nil, err
	}
	return &result, nil
}

// fetch a single model matching the condition
// (may return RecordNotFound; other store errors pass through)
func FetchModelWhere[T any](ctx context.Context, condition string, values ...interface{}) (*T, error) {

	db := config.GetDB()
	var result T
	err := db.WithContext(ctx).Where(condition, values...).First(&result).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrorRecordNotFound
		}
		return nil, err
	}
	return &result, nil
}
