package menu

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// --------------------------------------------------
// Create menu
// --------------------------------------------------
func (h *Handler) Create(c *gin.Context) {
	var req struct {
		Title    string    `json:"title"`
		Document *Document `json:"document"`
	}

	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	m, err := h.service.Create(
		req.Title,
		c.GetString("userID"),
		c.GetString("orgID"),
		req.Document,
	)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, m)
}

// --------------------------------------------------
// Fetch menu
// --------------------------------------------------
func (h *Handler) Get(c *gin.Context) {
	m, err := h.service.Get(
		c.Param("id"),
		c.GetString("userID"),
		c.GetString("orgID"),
	)
	if err != nil {
		if errors.Is(err, ErrUnauthorized) {
			c.JSON(http.StatusForbidden, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, m)
}

// --------------------------------------------------
// List my menus
// --------------------------------------------------
func (h *Handler) ListMine(c *gin.Context) {
	menus, err := h.service.ListMine(c.GetString("userID"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"menus": menus})
}

// --------------------------------------------------
// Replace menu document
// --------------------------------------------------
func (h *Handler) UpdateDocument(c *gin.Context) {
	var doc Document
	if err := c.ShouldBindJSON(&doc); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	err := h.service.UpdateDocument(c.Param("id"), c.GetString("userID"), &doc)
	if err != nil {
		if errors.Is(err, ErrUnauthorized) {
			c.JSON(http.StatusForbidden, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "menu updated"})
}
