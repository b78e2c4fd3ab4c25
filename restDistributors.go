package main

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/repuestoscl/catalog_backend/middlewares"
	"github.com/repuestoscl/catalog_backend/models"
)

func registerDistributorRoutes(r *gin.Engine) {
	distributors := r.Group("/distributors")
	distributors.GET("", listDistributorsHandler)
	distributors.POST("", middlewares.AuthMiddleware(), createDistributorHandler)
	distributors.GET("/:id", getDistributorHandler)
	distributors.PUT("/:id", updateDistributorHandler)
	distributors.PATCH("/:id", updateDistributorHandler)
	distributors.DELETE("/:id", deleteDistributorHandler)

	r.GET("/distributors-by-rut/:rut", getDistributorByRutHandler)
}

func listDistributorsHandler(c *gin.Context) {
	skip, ok := queryInt(c, "skip", defaultSkip)
	if !ok {
		return
	}
	limit, ok := queryInt(c, "limit", defaultLimit)
	if !ok {
		return
	}

	items, total, err := models.PaginateDistributors(c.Request.Context(), skip, limit)
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"items":     items,
		"total":     total,
		"page":      models.PageNumber(skip, limit),
		"page_size": limit,
	})
}

func getDistributorHandler(c *gin.Context) {
	id, ok := pathId(c)
	if !ok {
		return
	}
	distributor, err := models.GetDistributor(c.Request.Context(), id)
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, distributor)
}

func getDistributorByRutHandler(c *gin.Context) {
	distributor, err := models.GetDistributorByRut(c.Request.Context(), c.Param("rut"))
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, distributor)
}

func createDistributorHandler(c *gin.Context) {
	var input models.NewDistributor
	if err := c.ShouldBindJSON(&input); err != nil {
		abortWithBindingError(c, err)
		return
	}

	distributor, err := models.CreateDistributor(c.Request.Context(), &input)
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusCreated, distributor)
}

func updateDistributorHandler(c *gin.Context) {
	id, ok := pathId(c)
	if !ok {
		return
	}
	var input models.UpdateDistributorInput
	if err := c.ShouldBindJSON(&input); err != nil {
		abortWithBindingError(c, err)
		return
	}

	distributor, err := models.UpdateDistributor(c.Request.Context(), id, &input)
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, distributor)
}

func deleteDistributorHandler(c *gin.Context) {
	id, ok := pathId(c)
	if !ok {
		return
	}
	distributor, err := models.DeleteDistributor(c.Request.Context(), id)
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, distributor)
}
