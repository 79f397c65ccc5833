package handlers

import (
	"net/http"
	"net/url"
	"strings"

	"tourtravel/internal/domain"
	"tourtravel/internal/domain/models"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

type initiateRequest struct {
	BookingID     Stringish `json:"booking_id"`
	UserID        Stringish `json:"user_id"`
	Amount        Stringish `json:"amount"`
	Currency      string    `json:"currency"`
	CusName       string    `json:"cus_name"`
	CusEmail      string    `json:"cus_email"`
	CusPhone      string    `json:"cus_phone"`
	PaymentStatus string    `json:"payment_status"`
}

func (h *Handler) InitiatePayment(c *gin.Context) {
	var req initiateRequest
	if !BindJSONOrError(c, &req) {
		return
	}
	amount, err := decimal.NewFromString(req.Amount.String())
	if err != nil && req.Amount != "" {
		RespondDomainError(c, domain.ValidationError{Field: "amount", Msg: "must be a number"})
		return
	}
	out, err := h.payments(c).Initiate(c.Request.Context(), models.PaymentInit{
		BookingID:     req.BookingID.Int64(),
		UserID:        req.UserID.Int64(),
		Amount:        amount,
		Currency:      req.Currency,
		CusName:       req.CusName,
		CusEmail:      req.CusEmail,
		CusPhone:      req.CusPhone,
		PaymentStatus: req.PaymentStatus,
	})
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"success":        true,
		"message":        "Payment initialization successful",
		"GatewayPageURL": out.GatewayPageURL,
		"tran_id":        out.TransactionID,
	})
}

// callbackRequest is what the gateway posts back, usually form-encoded.
type callbackRequest struct {
	ValID  string `form:"val_id" json:"val_id"`
	TranID string `form:"tran_id" json:"tran_id"`
	Status string `form:"status" json:"status"`
}

func (h *Handler) bindCallback(c *gin.Context) (callbackRequest, bool) {
	var req callbackRequest
	if err := c.ShouldBind(&req); err != nil {
		RespondDomainError(c, domain.ValidationError{Msg: "invalid callback payload", Err: err})
		return req, false
	}
	return req, true
}

// PaymentSuccess is the browser-facing success callback: it confirms the
// payment and redirects to the front end.
func (h *Handler) PaymentSuccess(c *gin.Context) {
	req, ok := h.bindCallback(c)
	if !ok {
		return
	}
	if _, err := h.payments(c).Confirm(c.Request.Context(), req.ValID, req.TranID); err != nil {
		RespondDomainError(c, err)
		return
	}

	target := strings.TrimSpace(h.Env.Gateway.SuccessRedirect)
	if target == "" {
		c.JSON(http.StatusOK, gin.H{"success": true, "message": "Payment confirmed", "tran_id": req.TranID})
		return
	}
	sep := "?"
	if strings.Contains(target, "?") {
		sep = "&"
	}
	c.Redirect(http.StatusFound, target+sep+"tran_id="+url.QueryEscape(req.TranID))
}

// PaymentIPN is the server-to-server notification; same confirmation, JSON answer.
func (h *Handler) PaymentIPN(c *gin.Context) {
	req, ok := h.bindCallback(c)
	if !ok {
		return
	}
	bookingID, err := h.payments(c).Confirm(c.Request.Context(), req.ValID, req.TranID)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Payment confirmed", "tran_id": req.TranID, "booking_id": bookingID})
}

func (h *Handler) AdminPayments(c *gin.Context) {
	out, err := h.payments(c).List(c.Request.Context())
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "data": out})
}

func (h *Handler) UserPayments(c *gin.Context) {
	out, err := h.payments(c).ListForEmail(c.Request.Context(), c.Param("email"))
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "data": out})
}

func (h *Handler) DeletePayment(c *gin.Context) {
	id, ok := pathID(c, "paymentId")
	if !ok {
		return
	}
	if err := h.payments(c).Delete(c.Request.Context(), id); err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Payment deleted successfully!"})
}
