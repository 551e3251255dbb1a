package controllers

import (
	"context"
	"errors"
	"net/http"
	"strconv"

	"smart-restaurant/models"
	"smart-restaurant/store"

	"github.com/gin-gonic/gin"
)

type MenuItemRequest struct {
	Name        string      `json:"name" validate:"required"`
	Category    string      `json:"category" validate:"required"`
	Price       interface{} `json:"price"`
	Description string      `json:"description"`
}

type MenuItemPatch struct {
	Name        *string     `json:"name"`
	Category    *string     `json:"category"`
	Price       interface{} `json:"price"`
	Description *string     `json:"description"`
}

// parsePrice coerces the submitted price to float64. Admin forms submit
// it as a string ("5.50"), API clients as a number.
func parsePrice(v interface{}) (float64, error) {
	switch p := v.(type) {
	case float64:
		return p, nil
	case string:
		return strconv.ParseFloat(p, 64)
	case nil:
		return 0, errors.New("price is required")
	default:
		return 0, errors.New("price must be a number")
	}
}

// GetMenu serves the listing through the cache. Two requests inside the
// freshness window see the identical snapshot even if a write landed
// between them.
func GetMenu(menu store.MenuStore, cache *MenuCache) gin.HandlerFunc {
	return func(c *gin.Context) {
		if items, ok := cache.Get(); ok {
			c.JSON(http.StatusOK, items)
			return
		}

		ctx, cancel := context.WithTimeout(context.Background(), dbTimeout)
		defer cancel()

		items, err := menu.List(ctx)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Error occurred while listing the menu items"})
			return
		}
		cache.Set(items)
		c.JSON(http.StatusOK, items)
	}
}

func CreateMenuItem(menu store.MenuStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(context.Background(), dbTimeout)
		defer cancel()

		var req MenuItemRequest
		if err := c.BindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Missing fields"})
			return
		}
		if err := validate.Struct(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		price, err := parsePrice(req.Price)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid price"})
			return
		}

		item := models.MenuItem{
			Name:        req.Name,
			Category:    req.Category,
			Price:       price,
			Description: req.Description,
		}
		id, err := menu.Insert(ctx, &item)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Menu item was not created"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Menu item added", "id": id})
	}
}

func UpdateMenuItem(menu store.MenuStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(context.Background(), dbTimeout)
		defer cancel()

		var patch MenuItemPatch
		if err := c.BindJSON(&patch); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Missing fields"})
			return
		}

		upd := store.MenuUpdate{
			Name:        patch.Name,
			Category:    patch.Category,
			Description: patch.Description,
		}
		if patch.Price != nil {
			price, err := parsePrice(patch.Price)
			if err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid price"})
				return
			}
			upd.Price = &price
		}

		err := menu.Update(ctx, c.Param("id"), upd)
		if err == store.ErrNotFound {
			c.JSON(http.StatusNotFound, gin.H{"error": "Menu item not found"})
			return
		}
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Menu update failed"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Menu updated"})
	}
}

func DeleteMenuItem(menu store.MenuStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(context.Background(), dbTimeout)
		defer cancel()

		err := menu.Delete(ctx, c.Param("id"))
		if err == store.ErrNotFound {
			c.JSON(http.StatusNotFound, gin.H{"error": "Menu item not found"})
			return
		}
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Menu delete failed"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Menu deleted"})
	}
}
