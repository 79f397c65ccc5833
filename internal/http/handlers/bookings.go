package handlers

import (
	"net/http"

	"tourtravel/internal/domain"
	"tourtravel/internal/domain/models"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

type bookingRequest struct {
	UserID       Stringish `json:"userId"`
	PackageID    Stringish `json:"packageId"`
	TravelDate   string    `json:"travelDate"`
	NumTravelers Stringish `json:"numTravelers"`
	Phone        string    `json:"phone"`
	Email        string    `json:"email"`
	TotalPrice   Stringish `json:"totalPrice"`
}

func (h *Handler) CreateBooking(c *gin.Context) {
	var req bookingRequest
	if !BindJSONOrError(c, &req) {
		return
	}
	total, err := decimal.NewFromString(req.TotalPrice.String())
	if err != nil && req.TotalPrice != "" {
		RespondDomainError(c, domain.ValidationError{Field: "totalPrice", Msg: "must be a number"})
		return
	}
	id, err := h.bookings(c).Create(c.Request.Context(), models.NewBooking{
		UserID:       req.UserID.Int64(),
		PackageID:    req.PackageID.Int64(),
		TravelDate:   req.TravelDate,
		NumTravelers: int(req.NumTravelers.Int64()),
		Phone:        req.Phone,
		Email:        req.Email,
		TotalPrice:   total,
	})
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"success": true, "bookingId": id, "message": "Booking created!"})
}

func (h *Handler) UserBookings(c *gin.Context) {
	userID, ok := pathID(c, "userId")
	if !ok {
		return
	}
	out, err := h.bookings(c).ListForUser(c.Request.Context(), userID)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "data": out})
}

func (h *Handler) AdminBookings(c *gin.Context) {
	out, err := h.bookings(c).ListAll(c.Request.Context())
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "data": out})
}

func (h *Handler) BookingDetail(c *gin.Context) {
	id, ok := pathID(c, "bookingId")
	if !ok {
		return
	}
	d, err := h.bookings(c).Detail(c.Request.Context(), id)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "data": d})
}

// transitionHandler builds the handler of one booking action. Every action
// endpoint has the same shape: path id in, new status out.
func (h *Handler) transitionHandler(action domain.BookingAction, message string) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := pathID(c, "bookingId")
		if !ok {
			return
		}
		status, err := h.bookings(c).Apply(c.Request.Context(), id, action)
		if err != nil {
			RespondDomainError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"success": true, "message": message, "status": status})
	}
}

func (h *Handler) CancelBooking() gin.HandlerFunc {
	return h.transitionHandler(domain.ActionCancel, "Booking cancelled successfully")
}

func (h *Handler) ApproveBooking() gin.HandlerFunc {
	return h.transitionHandler(domain.ActionApprove, "Booking approved!")
}

func (h *Handler) ApproveCancellation() gin.HandlerFunc {
	return h.transitionHandler(domain.ActionApproveCancellation, "Cancellation approved with refund!")
}

func (h *Handler) ConfirmBooking() gin.HandlerFunc {
	return h.transitionHandler(domain.ActionConfirm, "Booking status updated to confirmed.")
}

func (h *Handler) RequestCancellation() gin.HandlerFunc {
	return h.transitionHandler(domain.ActionRequestCancellation, "Cancellation request successfully sent.")
}

func (h *Handler) DenyCancellation() gin.HandlerFunc {
	return h.transitionHandler(domain.ActionDenyCancellation, "Cancellation request denied!")
}

// DeleteBooking removes the booking together with its payments.
func (h *Handler) DeleteBooking(c *gin.Context) {
	id, ok := pathID(c, "bookingId")
	if !ok {
		return
	}
	if err := h.bookings(c).Delete(c.Request.Context(), id); err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Booking deleted successfully!"})
}
