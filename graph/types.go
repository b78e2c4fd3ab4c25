package graph

import (
	"context"

	"github.com/repuestoscl/catalog_backend/middlewares"
	"github.com/repuestoscl/catalog_backend/models"
)

type ProductsPageResolver struct {
	page *models.ProductsPage
}

func (r *ProductsPageResolver) Items() []*ProductResolver {
	resolvers := make([]*ProductResolver, 0, len(r.page.Items))
	for _, p := range r.page.Items {
		resolvers = append(resolvers, &ProductResolver{p: p})
	}
	return resolvers
}

func (r *ProductsPageResolver) Total() int32 {
	return int32(r.page.Total)
}

func (r *ProductsPageResolver) Page() int32 {
	return int32(r.page.Page)
}

func (r *ProductsPageResolver) PageSize() int32 {
	return int32(r.page.PageSize)
}

type ProductResolver struct {
	p *models.Product
}

func (r *ProductResolver) Id() int32 {
	return int32(r.p.ID)
}

func (r *ProductResolver) Code() string {
	return r.p.Code
}

func (r *ProductResolver) Name() string {
	return r.p.Name
}

func (r *ProductResolver) Brand() string {
	return r.p.Brand
}

func (r *ProductResolver) Description() string {
	return r.p.Description
}

func (r *ProductResolver) CategoryId() int32 {
	return int32(r.p.CategoryId)
}

func (r *ProductResolver) DistributorId() int32 {
	return int32(r.p.DistributorId)
}

func (r *ProductResolver) PurchasePrice() float64 {
	return r.p.PurchasePrice.InexactFloat64()
}

func (r *ProductResolver) MarginPct() float64 {
	return r.p.MarginPct.InexactFloat64()
}

func (r *ProductResolver) NetPrice() float64 {
	return r.p.NetPrice.InexactFloat64()
}

func (r *ProductResolver) Tax() float64 {
	return r.p.Tax.InexactFloat64()
}

func (r *ProductResolver) SalePrice() float64 {
	return r.p.SalePrice.InexactFloat64()
}

func (r *ProductResolver) Stock() int32 {
	return int32(r.p.Stock)
}

func (r *ProductResolver) VehicleType() string {
	return r.p.VehicleType
}

func (r *ProductResolver) OilType() string {
	return r.p.OilType
}

func (r *ProductResolver) FuelType() string {
	return r.p.FuelType
}

func (r *ProductResolver) FilterType() string {
	return r.p.FilterType
}

func (r *ProductResolver) IsActive() bool {
	return r.p.IsActive != nil && *r.p.IsActive
}

// Category goes through the request-scoped dataloader so listing a page
// of products costs one category query, not one per row.
func (r *ProductResolver) Category(ctx context.Context) (*CategoryResolver, error) {
	category, err := middlewares.GetCategory(ctx, r.p.CategoryId)
	if err != nil {
		return nil, err
	}
	return &CategoryResolver{c: category}, nil
}

func (r *ProductResolver) Distributor(ctx context.Context) (*DistributorResolver, error) {
	if r.p.DistributorId == 0 {
		return nil, nil
	}
	distributor, err := middlewares.GetDistributor(ctx, r.p.DistributorId)
	if err != nil {
		return nil, err
	}
	return &DistributorResolver{d: distributor}, nil
}

type CategoryResolver struct {
	c *models.Category
}

func (r *CategoryResolver) Id() int32 {
	return int32(r.c.ID)
}

func (r *CategoryResolver) Name() string {
	return r.c.Name
}

func (r *CategoryResolver) Description() string {
	return r.c.Description
}

func (r *CategoryResolver) IsActive() bool {
	return r.c.IsActive != nil && *r.c.IsActive
}

type DistributorResolver struct {
	d *models.Distributor
}

func (r *DistributorResolver) Id() int32 {
	return int32(r.d.ID)
}

func (r *DistributorResolver) Name() string {
	return r.d.Name
}

func (r *DistributorResolver) Rut() string {
	return r.d.Rut
}

func (r *DistributorResolver) Address() string {
	return r.d.Address
}

func (r *DistributorResolver) City() string {
	return r.d.City
}

func (r *DistributorResolver) Phone() string {
	return r.d.Phone
}

func (r *DistributorResolver) Email() string {
	return r.d.Email
}

func (r *DistributorResolver) IsActive() bool {
	return r.d.IsActive != nil && *r.d.IsActive
}
