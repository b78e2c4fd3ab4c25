package models

import (
	"context"
	"time"

	"github.com/repuestoscl/catalog_backend/config"
	"github.com/repuestoscl/catalog_backend/utils"
)

type Distributor struct {
	ID        int       `gorm:"primary_key" json:"id"`
	Name      string    `gorm:"size:100;not null" json:"name" binding:"required"`
	Rut       string    `gorm:"uniqueIndex;size:20;not null" json:"rut" binding:"required"`
	Address   string    `gorm:"size:200" json:"address"`
	City      string    `gorm:"size:50" json:"city"`
	Phone     string    `gorm:"size:20" json:"phone"`
	Email     string    `gorm:"size:100" json:"email"`
	IsActive  *bool     `gorm:"not null;default:true" json:"is_active"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

type NewDistributor struct {
	Name    string `json:"name" binding:"required"`
	Rut     string `json:"rut" binding:"required"`
	Address string `json:"address"`
	City    string `json:"city"`
	Phone   string `json:"phone"`
	Email   string `json:"email"`
}

type UpdateDistributorInput struct {
	Name    *string `json:"name"`
	Rut     *string `json:"rut"`
	Address *string `json:"address"`
	City    *string `json:"city"`
	Phone   *string `json:"phone"`
	Email   *string `json:"email"`
}

func (input *NewDistributor) validate(ctx context.Context, id int) error {
	if input.Email != "" && !utils.IsValidEmail(input.Email) {
		return utils.NewValidationError("invalid email address")
	}
	if input.Phone != "" {
		if err := utils.ValidatePhoneNumber(input.Phone, utils.CountryCode); err != nil {
			return utils.NewValidationError("invalid phone number")
		}
	}
	if err := utils.ValidateUnique[Distributor](ctx, "rut", input.Rut, id); err != nil {
		return err
	}
	return nil
}

func CreateDistributor(ctx context.Context, input *NewDistributor) (*Distributor, error) {

	if err := input.validate(ctx, 0); err != nil {
		return nil, err
	}

	distributor := Distributor{
		Name:     input.Name,
		Rut:      input.Rut,
		Address:  input.Address,
		City:     input.City,
		Phone:    input.Phone,
		Email:    input.Email,
		IsActive: utils.NewTrue(),
	}

	db := config.GetDB()
	err := db.WithContext(ctx).Create(&distributor).Error
	if err != nil {
		return nil, err
	}
	return &distributor, nil
}

func GetDistributor(ctx context.Context, id int) (*Distributor, error) {
	return utils.FetchModel[Distributor](ctx, id)
}

func GetDistributorByRut(ctx context.Context, rut string) (*Distributor, error) {
	return utils.FetchModelWhere[Distributor](ctx, "rut = ?", rut)
}

func PaginateDistributors(ctx context.Context, skip int, limit int) ([]*Distributor, int64, error) {

	db := config.GetDB()
	dbCtx := db.WithContext(ctx).Model(&Distributor{}).Where("is_active = ?", true)

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

	items := make([]*Distributor, 0)
	if err := dbCtx.Find(&items).Error; err != nil {
		return nil, 0, err
	}
	return items, total, nil
}

func UpdateDistributor(ctx context.Context, id int, input *UpdateDistributorInput) (*Distributor, error) {

	distributor, err := utils.FetchModel[Distributor](ctx, id)
	if err != nil {
		return nil, err
	}

	if input.Email != nil && *input.Email != "" && !utils.IsValidEmail(*input.Email) {
		return nil, utils.NewValidationError("invalid email address")
	}
	if input.Phone != nil && *input.Phone != "" {
		if err := utils.ValidatePhoneNumber(*input.Phone, utils.CountryCode); err != nil {
			return nil, utils.NewValidationError("invalid phone number")
		}
	}
	if input.Rut != nil {
		if err := utils.ValidateUnique[Distributor](ctx, "rut", *input.Rut, id); err != nil {
			return nil, err
		}
	}

	updates := map[string]interface{}{}
	if input.Name != nil {
		updates["name"] = *input.Name
	}
	if input.Rut != nil {
		updates["rut"] = *input.Rut
	}
	if input.Address != nil {
		updates["address"] = *input.Address
	}
	if input.City != nil {
		updates["city"] = *input.City
	}
	if input.Phone != nil {
		updates["phone"] = *input.Phone
	}
	if input.Email != nil {
		updates["email"] = *input.Email
	}
	if len(updates) == 0 {
		return distributor, nil
	}

	db := config.GetDB()
	err = db.WithContext(ctx).Model(distributor).Updates(updates).Error
	if err != nil {
		return nil, err
	}
	return distributor, nil
}

// DeleteDistributor soft-deletes, refusing while any active product still
// references the distributor.
func DeleteDistributor(ctx context.Context, id int) (*Distributor, error) {

	distributor, err := utils.FetchModel[Distributor](ctx, id)
	if err != nil {
		return nil, err
	}

	inUse, err := utils.ResourceCountWhere[Product](ctx, "distributor_id = ? AND is_active = ?", id, true)
	if err != nil {
		return nil, err
	}
	if inUse > 0 {
		return nil, utils.NewValidationError("distributor has %d active products", inUse)
	}

	db := config.GetDB()
	err = db.WithContext(ctx).Model(distributor).Updates(map[string]interface{}{
		"is_active": false,
	}).Error
	if err != nil {
		return nil, err
	}
	return distributor, nil
}
