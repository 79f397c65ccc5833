package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

type wishlistRequest struct {
	UID string `json:"uid"`
}

// AddToWishlist adds the package in the path for the uid in the body.
func (h *Handler) AddToWishlist(c *gin.Context) {
	packageID, ok := pathID(c, "id")
	if !ok {
		return
	}
	var req wishlistRequest
	if !BindJSONOrError(c, &req) {
		return
	}
	id, err := h.catalog(c).AddToWishlist(c.Request.Context(), req.UID, packageID)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": "Added to wishlist", "id": id})
}

// Wishlist lists by user uid; the path segment is the uid, not a row id.
func (h *Handler) Wishlist(c *gin.Context) {
	out, err := h.catalog(c).Wishlist(c.Request.Context(), c.Param("id"))
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, out)
}

func (h *Handler) Cart(c *gin.Context) {
	out, err := h.catalog(c).Cart(c.Request.Context(), c.Param("userId"))
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "data": out})
}

func (h *Handler) RemoveFromWishlist(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	if err := h.catalog(c).RemoveFromWishlist(c.Request.Context(), id); err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Wishlist item deleted successfully"})
}
