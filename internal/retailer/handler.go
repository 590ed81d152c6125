package retailer

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	registry *Registry
	tokens   TokenStore
}

func NewHandler(registry *Registry, tokens TokenStore) *Handler {
	return &Handler{registry: registry, tokens: tokens}
}

// --------------------------------------------------
// GET /retailers
// --------------------------------------------------
func (h *Handler) List(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"retailers": h.registry.Names()})
}

// --------------------------------------------------
// GET /retailers/:name/search?q=...&limit=...
// --------------------------------------------------
func (h *Handler) Search(c *gin.Context) {
	client, err := h.registry.Get(c.Param("name"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}

	query := c.Query("q")
	if query == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "q is required"})
		return
	}

	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "10"))

	products, err := client.SearchProducts(c.Request.Context(), query, limit)
	if err != nil {
		if errors.Is(err, ErrNotSupported) {
			c.JSON(http.StatusNotImplemented, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"products": products})
}

// --------------------------------------------------
// POST /retailers/:name/link
// --------------------------------------------------
// Stores the OAuth grant the frontend obtained from the retailer's
// authorization flow, so cart pushes can act on the user's behalf.
func (h *Handler) LinkAccount(c *gin.Context) {
	client, err := h.registry.Get(c.Param("name"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}

	var req struct {
		AccessToken  string `json:"access_token"`
		RefreshToken string `json:"refresh_token"`
		ExpiresIn    int    `json:"expires_in"`
	}
	if err := c.ShouldBindJSON(&req); err != nil || req.AccessToken == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "access_token is required"})
		return
	}

	token := &Token{
		UserID:       c.GetString("userID"),
		Retailer:     client.Name(),
		AccessToken:  req.AccessToken,
		RefreshToken: req.RefreshToken,
		ExpiresAt:    time.Now().Add(time.Duration(req.ExpiresIn) * time.Second),
	}

	if err := h.tokens.Save(c.Request.Context(), token); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": client.Name() + " account linked"})
}

// --------------------------------------------------
// POST /retailers/:name/shopping-list-link
// --------------------------------------------------
// For retailers that build a hosted shopping-list page from item
// names rather than accepting cart writes.
func (h *Handler) ShoppingListLink(c *gin.Context) {
	client, err := h.registry.Get(c.Param("name"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}

	linker, ok := client.(ShoppingListLinker)
	if !ok {
		c.JSON(http.StatusNotImplemented, gin.H{"error": ErrNotSupported.Error()})
		return
	}

	var req struct {
		Title string   `json:"title"`
		Items []string `json:"items"`
	}
	if err := c.ShouldBindJSON(&req); err != nil || len(req.Items) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "items are required"})
		return
	}
	if req.Title == "" {
		req.Title = "Shopping List"
	}

	url, err := linker.CreateShoppingListLink(c.Request.Context(), req.Title, req.Items)
	if err != nil {
		c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"url": url})
}

// --------------------------------------------------
// POST /retailers/:name/cart
// --------------------------------------------------
func (h *Handler) AddToCart(c *gin.Context) {
	client, err := h.registry.Get(c.Param("name"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}

	var req struct {
		Items []CartItem `json:"items"`
	}
	if err := c.ShouldBindJSON(&req); err != nil || len(req.Items) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "items are required"})
		return
	}

	token, err := h.tokens.Get(c.Request.Context(), c.GetString("userID"), client.Name())
	if err != nil {
		if errors.Is(err, ErrNoToken) {
			c.JSON(http.StatusConflict, gin.H{"error": "link your " + client.Name() + " account first"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	if err := client.AddToCart(c.Request.Context(), token.AccessToken, req.Items); err != nil {
		if errors.Is(err, ErrNotSupported) {
			c.JSON(http.StatusNotImplemented, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "items added to cart"})
}
