package handlers

import (
	"net/http"

	"tourtravel/internal/domain/models"

	"github.com/gin-gonic/gin"
)

type reviewRequest struct {
	Rating  Stringish `json:"rating"`
	Message string    `json:"message"`
	Name    string    `json:"name"`
	UID     string    `json:"uid"`
	Photo   string    `json:"photo"`
}

// AddReview stores a review for the package in the path.
func (h *Handler) AddReview(c *gin.Context) {
	packageID, ok := pathID(c, "id")
	if !ok {
		return
	}
	var req reviewRequest
	if !BindJSONOrError(c, &req) {
		return
	}
	id, err := h.catalog(c).AddReview(c.Request.Context(), models.Review{
		PackageID: packageID,
		Rating:    int(req.Rating.Int64()),
		Message:   req.Message,
		UserName:  req.Name,
		UserUID:   req.UID,
		UserPhoto: req.Photo,
	})
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": "Review submitted successfully", "id": id})
}

// PackageReviews answers [] for a package without reviews.
func (h *Handler) PackageReviews(c *gin.Context) {
	packageID, ok := pathID(c, "id")
	if !ok {
		return
	}
	out, err := h.catalog(c).PackageReviews(c.Request.Context(), packageID)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, out)
}

func (h *Handler) ListReviews(c *gin.Context) {
	out, err := h.catalog(c).Reviews(c.Request.Context())
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, out)
}

func (h *Handler) UserReviews(c *gin.Context) {
	out, err := h.catalog(c).UserReviews(c.Request.Context(), c.Param("userId"))
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "data": out})
}

type reviewUpdateRequest struct {
	Message string    `json:"message"`
	Rating  Stringish `json:"rating"`
}

func (h *Handler) UpdateReview(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	var req reviewUpdateRequest
	if !BindJSONOrError(c, &req) {
		return
	}
	if err := h.catalog(c).UpdateReview(c.Request.Context(), id, req.Message, int(req.Rating.Int64())); err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Review updated successfully"})
}

func (h *Handler) DeleteReview(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	if err := h.catalog(c).DeleteReview(c.Request.Context(), id); err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Review deleted successfully"})
}
