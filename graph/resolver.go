package graph

import (
	"context"

	"github.com/repuestoscl/catalog_backend/models"
	"github.com/repuestoscl/catalog_backend/utils"
	"github.com/shopspring/decimal"
)

const (
	defaultSkip  = 0
	defaultLimit = 100
)

type Resolver struct{}

/* queries */

type productsArgs struct {
	Skip          *int32
	Limit         *int32
	CategoryId    *int32
	DistributorId *int32
	VehicleType   *string
	OilType       *string
	FuelType      *string
	FilterType    *string
}

func (r *Resolver) Products(ctx context.Context, args productsArgs) (*ProductsPageResolver, error) {
	skip := defaultSkip
	if args.Skip != nil {
		skip = int(*args.Skip)
	}
	limit := defaultLimit
	if args.Limit != nil {
		limit = int(*args.Limit)
	}

	filter := models.ProductFilter{
		CategoryId:    intPtr(args.CategoryId),
		DistributorId: intPtr(args.DistributorId),
		VehicleType:   args.VehicleType,
		OilType:       args.OilType,
		FuelType:      args.FuelType,
		FilterType:    args.FilterType,
	}

	page, err := models.PaginateProducts(ctx, skip, limit, filter)
	if err != nil {
		return nil, err
	}
	return &ProductsPageResolver{page: page}, nil
}

func (r *Resolver) Product(ctx context.Context, args struct{ Id int32 }) (*ProductResolver, error) {
	product, err := models.GetProduct(ctx, int(args.Id))
	if err != nil {
		return nil, err
	}
	return &ProductResolver{p: product}, nil
}

func (r *Resolver) ProductByCode(ctx context.Context, args struct{ Code string }) (*ProductResolver, error) {
	product, err := models.GetProductByCode(ctx, args.Code)
	if err != nil {
		return nil, err
	}
	return &ProductResolver{p: product}, nil
}

type pageArgs struct {
	Skip  *int32
	Limit *int32
}

func (r *Resolver) Categories(ctx context.Context, args pageArgs) ([]*CategoryResolver, error) {
	skip := defaultSkip
	if args.Skip != nil {
		skip = int(*args.Skip)
	}
	limit := defaultLimit
	if args.Limit != nil {
		limit = int(*args.Limit)
	}

	categories, _, err := models.PaginateCategories(ctx, skip, limit)
	if err != nil {
		return nil, err
	}
	resolvers := make([]*CategoryResolver, 0, len(categories))
	for _, c := range categories {
		resolvers = append(resolvers, &CategoryResolver{c: c})
	}
	return resolvers, nil
}

func (r *Resolver) Category(ctx context.Context, args struct{ Id int32 }) (*CategoryResolver, error) {
	category, err := models.GetCategory(ctx, int(args.Id))
	if err != nil {
		return nil, err
	}
	return &CategoryResolver{c: category}, nil
}

func (r *Resolver) CategoryByName(ctx context.Context, args struct{ Name string }) (*CategoryResolver, error) {
	category, err := models.GetCategoryByName(ctx, args.Name)
	if err != nil {
		return nil, err
	}
	return &CategoryResolver{c: category}, nil
}

func (r *Resolver) Distributors(ctx context.Context, args pageArgs) ([]*DistributorResolver, error) {
	skip := defaultSkip
	if args.Skip != nil {
		skip = int(*args.Skip)
	}
	limit := defaultLimit
	if args.Limit != nil {
		limit = int(*args.Limit)
	}

	distributors, _, err := models.PaginateDistributors(ctx, skip, limit)
	if err != nil {
		return nil, err
	}
	resolvers := make([]*DistributorResolver, 0, len(distributors))
	for _, d := range distributors {
		resolvers = append(resolvers, &DistributorResolver{d: d})
	}
	return resolvers, nil
}

func (r *Resolver) Distributor(ctx context.Context, args struct{ Id int32 }) (*DistributorResolver, error) {
	distributor, err := models.GetDistributor(ctx, int(args.Id))
	if err != nil {
		return nil, err
	}
	return &DistributorResolver{d: distributor}, nil
}

func (r *Resolver) DistributorByRut(ctx context.Context, args struct{ Rut string }) (*DistributorResolver, error) {
	distributor, err := models.GetDistributorByRut(ctx, args.Rut)
	if err != nil {
		return nil, err
	}
	return &DistributorResolver{d: distributor}, nil
}

/* mutations */

type ProductInput struct {
	Code          string
	Name          string
	Brand         string
	Description   *string
	CategoryId    int32
	DistributorId *int32
	PurchasePrice float64
	MarginPct     *float64
	Stock         *int32
	VehicleType   *string
	OilType       *string
	FuelType      *string
	FilterType    *string
}

func (r *Resolver) CreateProduct(ctx context.Context, args struct{ Input ProductInput }) (*ProductResolver, error) {
	if err := utils.RequireAPIToken(ctx); err != nil {
		return nil, err
	}

	input := models.NewProduct{
		Code:          args.Input.Code,
		Name:          args.Input.Name,
		Brand:         args.Input.Brand,
		Description:   strVal(args.Input.Description),
		CategoryId:    int(args.Input.CategoryId),
		PurchasePrice: decimal.NewFromFloat(args.Input.PurchasePrice),
		MarginPct:     decPtr(args.Input.MarginPct),
		VehicleType:   strVal(args.Input.VehicleType),
		OilType:       strVal(args.Input.OilType),
		FuelType:      strVal(args.Input.FuelType),
		FilterType:    strVal(args.Input.FilterType),
	}
	if args.Input.DistributorId != nil {
		input.DistributorId = int(*args.Input.DistributorId)
	}
	if args.Input.Stock != nil {
		input.Stock = int(*args.Input.Stock)
	}

	product, err := models.CreateProduct(ctx, &input)
	if err != nil {
		return nil, err
	}
	return &ProductResolver{p: product}, nil
}

type ProductPatch struct {
	Code          *string
	Name          *string
	Brand         *string
	Description   *string
	CategoryId    *int32
	DistributorId *int32
	PurchasePrice *float64
	MarginPct     *float64
	Stock         *int32
	VehicleType   *string
	OilType       *string
	FuelType      *string
	FilterType    *string
}

func (r *Resolver) UpdateProduct(ctx context.Context, args struct {
	Id    int32
	Input ProductPatch
}) (*ProductResolver, error) {
	input := models.UpdateProductInput{
		Code:          args.Input.Code,
		Name:          args.Input.Name,
		Brand:         args.Input.Brand,
		Description:   args.Input.Description,
		CategoryId:    intPtr(args.Input.CategoryId),
		DistributorId: intPtr(args.Input.DistributorId),
		PurchasePrice: decPtr(args.Input.PurchasePrice),
		MarginPct:     decPtr(args.Input.MarginPct),
		Stock:         intPtr(args.Input.Stock),
		VehicleType:   args.Input.VehicleType,
		OilType:       args.Input.OilType,
		FuelType:      args.Input.FuelType,
		FilterType:    args.Input.FilterType,
	}

	product, err := models.UpdateProduct(ctx, int(args.Id), &input)
	if err != nil {
		return nil, err
	}
	return &ProductResolver{p: product}, nil
}

func (r *Resolver) DeleteProduct(ctx context.Context, args struct{ Id int32 }) (*ProductResolver, error) {
	product, err := models.DeleteProduct(ctx, int(args.Id))
	if err != nil {
		return nil, err
	}
	return &ProductResolver{p: product}, nil
}

type CategoryInput struct {
	Name        string
	Description *string
}

func (r *Resolver) CreateCategory(ctx context.Context, args struct{ Input CategoryInput }) (*CategoryResolver, error) {
	if err := utils.RequireAPIToken(ctx); err != nil {
		return nil, err
	}

	category, err := models.CreateCategory(ctx, &models.NewCategory{
		Name:        args.Input.Name,
		Description: strVal(args.Input.Description),
	})
	if err != nil {
		return nil, err
	}
	return &CategoryResolver{c: category}, nil
}

type CategoryPatch struct {
	Name        *string
	Description *string
}

func (r *Resolver) UpdateCategory(ctx context.Context, args struct {
	Id    int32
	Input CategoryPatch
}) (*CategoryResolver, error) {
	category, err := models.UpdateCategory(ctx, int(args.Id), &models.UpdateCategoryInput{
		Name:        args.Input.Name,
		Description: args.Input.Description,
	})
	if err != nil {
		return nil, err
	}
	return &CategoryResolver{c: category}, nil
}

func (r *Resolver) DeleteCategory(ctx context.Context, args struct{ Id int32 }) (*CategoryResolver, error) {
	category, err := models.DeleteCategory(ctx, int(args.Id))
	if err != nil {
		return nil, err
	}
	return &CategoryResolver{c: category}, nil
}

type DistributorInput struct {
	Name    string
	Rut     string
	Address *string
	City    *string
	Phone   *string
	Email   *string
}

func (r *Resolver) CreateDistributor(ctx context.Context, args struct{ Input DistributorInput }) (*DistributorResolver, error) {
	if err := utils.RequireAPIToken(ctx); err != nil {
		return nil, err
	}

	distributor, err := models.CreateDistributor(ctx, &models.NewDistributor{
		Name:    args.Input.Name,
		Rut:     args.Input.Rut,
		Address: strVal(args.Input.Address),
		City:    strVal(args.Input.City),
		Phone:   strVal(args.Input.Phone),
		Email:   strVal(args.Input.Email),
	})
	if err != nil {
		return nil, err
	}
	return &DistributorResolver{d: distributor}, nil
}

type DistributorPatch struct {
	Name    *string
	Rut     *string
	Address *string
	City    *string
	Phone   *string
	Email   *string
}

func (r *Resolver) UpdateDistributor(ctx context.Context, args struct {
	Id    int32
	Input DistributorPatch
}) (*DistributorResolver, error) {
	distributor, err := models.UpdateDistributor(ctx, int(args.Id), &models.UpdateDistributorInput{
		Name:    args.Input.Name,
		Rut:     args.Input.Rut,
		Address: args.Input.Address,
		City:    args.Input.City,
		Phone:   args.Input.Phone,
		Email:   args.Input.Email,
	})
	if err != nil {
		return nil, err
	}
	return &DistributorResolver{d: distributor}, nil
}

func (r *Resolver) DeleteDistributor(ctx context.Context, args struct{ Id int32 }) (*DistributorResolver, error) {
	distributor, err := models.DeleteDistributor(ctx, int(args.Id))
	if err != nil {
		return nil, err
	}
	return &DistributorResolver{d: distributor}, nil
}

/* arg conversion */

func intPtr(v *int32) *int {
	if v == nil {
		return nil
	}
	i := int(*v)
	return &i
}

func strVal(v *string) string {
	if v == nil {
		return ""
	}
	return *v
}

func decPtr(v *float64) *decimal.Decimal {
	if v == nil {
		return nil
	}
	d := decimal.NewFromFloat(*v)
	return &d
}
