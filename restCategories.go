package main

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/repuestoscl/catalog_backend/middlewares"
	"github.com/repuestoscl/catalog_backend/models"
)

func registerCategoryRoutes(r *gin.Engine) {
	categories := r.Group("/categories")
	categories.GET("", listCategoriesHandler)
	categories.POST("", middlewares.AuthMiddleware(), createCategoryHandler)
	categories.GET("/:id", getCategoryHandler)
	categories.PUT("/:id", updateCategoryHandler)
	categories.PATCH("/:id", updateCategoryHandler)
	categories.DELETE("/:id", deleteCategoryHandler)

	r.GET("/categories-by-name/:name", getCategoryByNameHandler)
}

func getCategoryByNameHandler(c *gin.Context) {
	category, err := models.GetCategoryByName(c.Request.Context(), c.Param("name"))
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, category)
}

func listCategoriesHandler(c *gin.Context) {
	skip, ok := queryInt(c, "skip", defaultSkip)
	if !ok {
		return
	}
	limit, ok := queryInt(c, "limit", defaultLimit)
	if !ok {
		return
	}

	items, total, err := models.PaginateCategories(c.Request.Context(), skip, limit)
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

func getCategoryHandler(c *gin.Context) {
	id, ok := pathId(c)
	if !ok {
		return
	}
	category, err := models.GetCategory(c.Request.Context(), id)
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, category)
}

func createCategoryHandler(c *gin.Context) {
	var input models.NewCategory
	if err := c.ShouldBindJSON(&input); err != nil {
		abortWithBindingError(c, err)
		return
	}

	category, err := models.CreateCategory(c.Request.Context(), &input)
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusCreated, category)
}

func updateCategoryHandler(c *gin.Context) {
	id, ok := pathId(c)
	if !ok {
		return
	}
	var input models.UpdateCategoryInput
	if err := c.ShouldBindJSON(&input); err != nil {
		abortWithBindingError(c, err)
		return
	}

	category, err := models.UpdateCategory(c.Request.Context(), id, &input)
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, category)
}

func deleteCategoryHandler(c *gin.Context) {
	id, ok := pathId(c)
	if !ok {
		return
	}
	category, err := models.DeleteCategory(c.Request.Context(), id)
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, category)
}
