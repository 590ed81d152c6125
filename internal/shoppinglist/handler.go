package shoppinglist

import (
	"errors"
	"net/http"

	"mealplanner/internal/menu"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// --------------------------------------------------
// GET /menus/:id/grocery-list
// --------------------------------------------------
func (h *Handler) Get(c *gin.Context) {
	items, err := h.service.GroceryList(
		c.Request.Context(),
		c.Param("id"),
		c.GetString("userID"),
		c.GetString("orgID"),
	)
	if err != nil {
		h.writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"items": items})
}

// --------------------------------------------------
// POST /menus/:id/grocery-list/ai
// --------------------------------------------------
func (h *Handler) GetEnhanced(c *gin.Context) {
	items, err := h.service.EnhancedGroceryList(
		c.Request.Context(),
		c.Param("id"),
		c.GetString("userID"),
		c.GetString("orgID"),
	)
	if err != nil {
		h.writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"items": items})
}

func (h *Handler) writeError(c *gin.Context, err error) {
	if errors.Is(err, menu.ErrUnauthorized) {
		c.JSON(http.StatusForbidden, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
}
