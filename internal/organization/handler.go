package organization

import (
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
// Create organization
// --------------------------------------------------
func (h *Handler) Create(c *gin.Context) {
	var req struct {
		Name string `json:"name"`
	}

	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	org, err := h.service.Create(req.Name, c.GetString("userID"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, org)
}

// --------------------------------------------------
// List my organizations
// --------------------------------------------------
func (h *Handler) ListMine(c *gin.Context) {
	orgs, err := h.service.ListMine(c.GetString("userID"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"organizations": orgs})
}

// --------------------------------------------------
// List client accounts of an organization
// --------------------------------------------------
func (h *Handler) ListClients(c *gin.Context) {
	clients, err := h.service.ListClients(c.Param("id"), c.GetString("userID"))
	if err != nil {
		if err.Error() == "unauthorized" {
			c.JSON(http.StatusForbidden, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	out := make([]gin.H, 0, len(clients))
	for _, u := range clients {
		out = append(out, gin.H{
			"id":    u.ID,
			"name":  u.Name,
			"email": u.Email,
		})
	}

	c.JSON(http.StatusOK, gin.H{"clients": out})
}

// --------------------------------------------------
// Upload organization logo
// --------------------------------------------------
func (h *Handler) UploadLogo(c *gin.Context) {
	file, header, err := c.Request.FormFile("logo")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "logo is required"})
		return
	}
	defer file.Close()

	url, err := h.service.UploadLogo(
		c.Request.Context(),
		c.Param("id"),
		c.GetString("userID"),
		file,
		header.Filename,
	)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"logo_url": url})
}
