package controllers

import (
	"context"
	"net/http"
	"os"
	"time"

	"smart-restaurant/helpers"
	"smart-restaurant/middleware"
	"smart-restaurant/models"
	"smart-restaurant/store"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator"
)

var validate = validator.New()

// Store calls run against a background context on purpose: a client
// disconnect does not abort an in-flight write.
const dbTimeout = 10 * time.Second

type RegisterRequest struct {
	Name     string `json:"name" validate:"required,min=2,max=100"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
	AdminKey string `json:"adminKey"`
}

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// Register creates an account. The role is admin only when the supplied
// adminKey matches ADMIN_SECRET; it is customer otherwise and never
// changes through this API.
func Register(users store.UserStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(context.Background(), dbTimeout)
		defer cancel()

		var req RegisterRequest
		if err := c.BindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Missing fields"})
			return
		}
		if err := validate.Struct(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		if _, err := users.GetByEmail(ctx, req.Email); err == nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Email already registered"})
			return
		} else if err != store.ErrNotFound {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Registration failed"})
			return
		}

		hashed, err := helpers.HashPassword(req.Password)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Registration failed"})
			return
		}

		role := models.RoleCustomer
		if req.AdminKey != "" && req.AdminKey == os.Getenv("ADMIN_SECRET") {
			role = models.RoleAdmin
		}

		user := models.User{
			Name:     req.Name,
			Email:    req.Email,
			Password: hashed,
			Role:     role,
		}
		id, err := users.Create(ctx, &user)
		if err == store.ErrDuplicate {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Email already registered"})
			return
		}
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Registration failed"})
			return
		}

		token, err := helpers.GenerateToken(id, user.Name, role)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Registration failed"})
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"message": "Registration successful",
			"user": gin.H{
				"id":    id,
				"name":  user.Name,
				"email": user.Email,
				"role":  role,
			},
			"token": token,
		})
	}
}

// Login deliberately returns the same message for an unknown email and a
// wrong password so accounts cannot be enumerated.
func Login(users store.UserStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(context.Background(), dbTimeout)
		defer cancel()

		var req LoginRequest
		if err := c.BindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Missing fields"})
			return
		}
		if err := validate.Struct(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		user, err := users.GetByEmail(ctx, req.Email)
		if err == store.ErrNotFound {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid email or password"})
			return
		}
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Login failed"})
			return
		}
		if !helpers.VerifyPassword(user.Password, req.Password) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid email or password"})
			return
		}

		token, err := helpers.GenerateToken(user.ID.Hex(), user.Name, user.Role)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Login failed"})
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"message": "Login success",
			"token":   token,
			"user": gin.H{
				"id":   user.ID.Hex(),
				"name": user.Name,
				"role": user.Role,
			},
		})
	}
}

// Me returns the record behind the presented token.
func Me(users store.UserStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(context.Background(), dbTimeout)
		defer cancel()

		user, err := users.GetByID(ctx, middleware.GetUID(c))
		if err == store.ErrNotFound {
			c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
			return
		}
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Lookup failed"})
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"id":    user.ID.Hex(),
			"name":  user.Name,
			"email": user.Email,
			"role":  user.Role,
		})
	}
}
