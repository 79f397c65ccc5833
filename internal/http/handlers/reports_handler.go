package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// ExportBookings downloads the admin bookings list as a workbook.
func (h *Handler) ExportBookings(c *gin.Context) {
	raw, filename, err := h.reports(c).ExportBookings(c.Request.Context())
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.Header("Content-Disposition", `attachment; filename="`+filename+`"`)
	c.Data(http.StatusOK, xlsxContentType, raw)
}
