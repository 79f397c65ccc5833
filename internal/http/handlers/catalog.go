package handlers

import (
	"net/http"
	"strings"

	"tourtravel/internal/domain"
	"tourtravel/internal/domain/models"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

func (h *Handler) CreateDestination(c *gin.Context) {
	var d models.Destination
	if !BindJSONOrError(c, &d) {
		return
	}
	id, err := h.catalog(c).CreateDestination(c.Request.Context(), d)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"success": true, "message": "Destination added successfully!", "id": id})
}

func (h *Handler) ListDestinations(c *gin.Context) {
	out, err := h.catalog(c).Destinations(c.Request.Context())
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "data": out})
}

func (h *Handler) GetDestination(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	d, err := h.catalog(c).Destination(c.Request.Context(), id)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "data": d})
}

type packageRequest struct {
	DestinationID Stringish `json:"destination_id"`
	Title         string    `json:"title"`
	Description   string    `json:"description"`
	Price         Stringish `json:"price"`
	Duration      string    `json:"duration"`
	Image         string    `json:"image"`
}

func (h *Handler) CreatePackage(c *gin.Context) {
	var req packageRequest
	if !BindJSONOrError(c, &req) {
		return
	}
	price, err := decimal.NewFromString(req.Price.String())
	if err != nil && req.Price != "" {
		RespondDomainError(c, domain.ValidationError{Field: "price", Msg: "must be a number"})
		return
	}
	id, err := h.catalog(c).CreatePackage(c.Request.Context(), models.Package{
		DestinationID: req.DestinationID.Int64(),
		Title:         req.Title,
		Description:   req.Description,
		Price:         price,
		Duration:      req.Duration,
		Image:         req.Image,
	})
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"success": true, "message": "Package added successfully!", "id": id})
}

// ListPackages honours ?id=<destination id>.
func (h *Handler) ListPackages(c *gin.Context) {
	var destinationID int64
	if raw := strings.TrimSpace(c.Query("id")); raw != "" {
		destinationID = Stringish(raw).Int64()
		if destinationID <= 0 {
			RespondDomainError(c, domain.ValidationError{Field: "id", Msg: "destination id must be a positive integer"})
			return
		}
	}
	out, err := h.catalog(c).Packages(c.Request.Context(), destinationID)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "data": out})
}

func (h *Handler) GetPackage(c *gin.Context) {
	id, ok := pathID(c, "package_id")
	if !ok {
		return
	}
	p, err := h.catalog(c).Package(c.Request.Context(), id)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, p)
}

func (h *Handler) AddItinerary(c *gin.Context) {
	var entries []models.ItineraryEntry
	if !BindJSONOrError(c, &entries) {
		return
	}
	n, err := h.catalog(c).AddItinerary(c.Request.Context(), entries)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": "Itinerary added successfully", "inserted": n})
}

func (h *Handler) GetItinerary(c *gin.Context) {
	id, ok := pathID(c, "package_id")
	if !ok {
		return
	}
	out, err := h.catalog(c).Itinerary(c.Request.Context(), id)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, out)
}
