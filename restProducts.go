package main

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/repuestoscl/catalog_backend/middlewares"
	"github.com/repuestoscl/catalog_backend/models"
)

const (
	defaultSkip  = 0
	defaultLimit = 100
)

func registerProductRoutes(r *gin.Engine) {
	products := r.Group("/products")
	products.GET("", listProductsHandler)
	products.POST("", middlewares.AuthMiddleware(), createProductHandler)
	products.GET("/:id", getProductHandler)
	products.PUT("/:id", updateProductHandler)
	products.PATCH("/:id", updateProductHandler)
	products.DELETE("/:id", deleteProductHandler)

	// separate paths: gin cannot mix static segments with the :id wildcard
	r.GET("/products-by-code/:code", getProductByCodeHandler)
	r.GET("/products-export", exportProductsHandler)
}

func productFilterFromQuery(c *gin.Context) (models.ProductFilter, bool) {
	var filter models.ProductFilter
	var ok bool

	if filter.CategoryId, ok = queryIntPtr(c, "category_id"); !ok {
		return filter, false
	}
	if filter.DistributorId, ok = queryIntPtr(c, "distributor_id"); !ok {
		return filter, false
	}
	filter.VehicleType = queryStrPtr(c, "vehicle_type")
	filter.OilType = queryStrPtr(c, "oil_type")
	filter.FuelType = queryStrPtr(c, "fuel_type")
	filter.FilterType = queryStrPtr(c, "filter_type")
	return filter, true
}

func listProductsHandler(c *gin.Context) {
	skip, ok := queryInt(c, "skip", defaultSkip)
	if !ok {
		return
	}
	limit, ok := queryInt(c, "limit", defaultLimit)
	if !ok {
		return
	}
	filter, ok := productFilterFromQuery(c)
	if !ok {
		return
	}

	page, err := models.PaginateProducts(c.Request.Context(), skip, limit, filter)
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, page)
}

func getProductHandler(c *gin.Context) {
	id, ok := pathId(c)
	if !ok {
		return
	}
	product, err := models.GetProduct(c.Request.Context(), id)
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, product)
}

func getProductByCodeHandler(c *gin.Context) {
	product, err := models.GetProductByCode(c.Request.Context(), c.Param("code"))
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, product)
}

func createProductHandler(c *gin.Context) {
	var input models.NewProduct
	if err := c.ShouldBindJSON(&input); err != nil {
		abortWithBindingError(c, err)
		return
	}

	product, err := models.CreateProduct(c.Request.Context(), &input)
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusCreated, product)
}

func updateProductHandler(c *gin.Context) {
	id, ok := pathId(c)
	if !ok {
		return
	}
	var input models.UpdateProductInput
	if err := c.ShouldBindJSON(&input); err != nil {
		abortWithBindingError(c, err)
		return
	}

	product, err := models.UpdateProduct(c.Request.Context(), id, &input)
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, product)
}

func deleteProductHandler(c *gin.Context) {
	id, ok := pathId(c)
	if !ok {
		return
	}
	product, err := models.DeleteProduct(c.Request.Context(), id)
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, product)
}

func exportProductsHandler(c *gin.Context) {
	filter, ok := productFilterFromQuery(c)
	if !ok {
		return
	}

	filename := "products-" + time.Now().Format("20060102") + ".xlsx"
	c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Header("Content-Disposition", "attachment; filename="+filename)
	if err := models.ExportProductsExcel(c.Request.Context(), c.Writer, filter); err != nil {
		c.Error(err)
		c.Status(http.StatusInternalServerError)
	}
}
