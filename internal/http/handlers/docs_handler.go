package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// BookingInvoicePDF returns the booking invoice inline.
func (h *Handler) BookingInvoicePDF(c *gin.Context) {
	id, ok := pathID(c, "bookingId")
	if !ok {
		return
	}
	pdfBytes, filename, err := h.docs(c).GenerateInvoice(c.Request.Context(), id)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.Header("Content-Disposition", `inline; filename="`+filename+`"`)
	c.Data(http.StatusOK, "application/pdf", pdfBytes)
}
