package categoryControllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/pankajarora1984/chandan-sarees-api/store"
)

type CreateCategoryInput struct {
	Name        string   `json:"name" binding:"required"`
	Description string   `json:"description" binding:"required"`
	Image       string   `json:"image"`
	Featured    bool     `json:"featured"`
	Tags        []string `json:"tags"`
}

type UpdateCategoryInput struct {
	Name        *string  `json:"name"`
	Description *string  `json:"description"`
	Image       *string  `json:"image"`
	Featured    *bool    `json:"featured"`
	Tags        []string `json:"tags"`
}

// GET /api/categories
func GetCategories(categories *store.CategoryStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		list := categories.List(store.CategoryFilter{
			FeaturedOnly: c.Query("featured") == "true",
			SortBy:       c.Query("sortBy"),
		})
		c.JSON(http.StatusOK, gin.H{"success": true, "data": list, "count": len(list)})
	}
}

// GET /api/categories/:id
func GetCategoryByID(categories *store.CategoryStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		category, err := categories.ByID(c.Param("id"))
		if err != nil {
			c.JSON(http.StatusNotFound, gin.H{"success": false, "error": "Category not found"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"success": true, "data": category})
	}
}

// GET /api/categories/slug/:slug
func GetCategoryBySlug(categories *store.CategoryStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		category, err := categories.BySlug(c.Param("slug"))
		if err != nil {
			c.JSON(http.StatusNotFound, gin.H{"success": false, "error": "Category not found"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"success": true, "data": category})
	}
}

// POST /api/categories (admin)
func CreateCategory(categories *store.CategoryStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input CreateCategoryInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Missing required fields: name, description"})
			return
		}

		category, err := categories.Create(input.Name, input.Description, input.Image, input.Featured, input.Tags)
		if err != nil {
			if errors.Is(err, store.ErrSlugTaken) {
				c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Category with this name already exists"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Failed to create category", "message": err.Error()})
			return
		}

		c.JSON(http.StatusCreated, gin.H{"success": true, "data": category, "message": "Category created successfully"})
	}
}

// PUT /api/categories/:id (admin) — renaming regenerates the slug.
func UpdateCategory(categories *store.CategoryStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input UpdateCategoryInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Invalid input: " + err.Error()})
			return
		}

		category, err := categories.Update(c.Param("id"), store.CategoryUpdate{
			Name:        input.Name,
			Description: input.Description,
			Image:       input.Image,
			Featured:    input.Featured,
			Tags:        input.Tags,
		})
		if err != nil {
			switch {
			case errors.Is(err, store.ErrCategoryNotFound):
				c.JSON(http.StatusNotFound, gin.H{"success": false, "error": "Category not found"})
			case errors.Is(err, store.ErrSlugTaken):
				c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Category with this name already exists"})
			default:
				c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Failed to update category", "message": err.Error()})
			}
			return
		}

		c.JSON(http.StatusOK, gin.H{"success": true, "data": category, "message": "Category updated successfully"})
	}
}

// DELETE /api/categories/:id (admin)
func DeleteCategory(categories *store.CategoryStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		category, err := categories.Delete(c.Param("id"))
		if err != nil {
			switch {
			case errors.Is(err, store.ErrCategoryNotFound):
				c.JSON(http.StatusNotFound, gin.H{"success": false, "error": "Category not found"})
			case errors.Is(err, store.ErrCategoryHasProducts):
				c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Cannot delete category with existing products"})
			default:
				c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Failed to delete category", "message": err.Error()})
			}
			return
		}

		c.JSON(http.StatusOK, gin.H{"success": true, "data": category, "message": "Category deleted successfully"})
	}
}
