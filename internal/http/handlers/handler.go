package handlers

import (
	intconfig "tourtravel/internal/config"
	"tourtravel/internal/domain"
	"tourtravel/internal/http/middleware"
	"tourtravel/internal/services"

	"github.com/gin-gonic/gin"
	"github.com/jmoiron/sqlx"
	"github.com/rs/zerolog"
)

// Handler holds what every endpoint needs; services are built per request so
// they carry the request id.
type Handler struct {
	DB      *sqlx.DB
	Env     intconfig.Env
	Gateway services.PaymentGateway
	Log     zerolog.Logger
}

func (h *Handler) policy() domain.TransitionPolicy {
	if h.Env.StrictTransitions {
		return domain.PolicyStrict
	}
	return domain.PolicyPermissive
}

func (h *Handler) catalog(c *gin.Context) services.CatalogService {
	return services.CatalogService{DB: h.DB, Log: h.Log, RequestID: middleware.GetRequestID(c)}
}

func (h *Handler) bookings(c *gin.Context) services.BookingService {
	return services.BookingService{DB: h.DB, Policy: h.policy(), Log: h.Log, RequestID: middleware.GetRequestID(c)}
}

func (h *Handler) payments(c *gin.Context) services.PaymentService {
	return services.PaymentService{
		DB:        h.DB,
		Gateway:   h.Gateway,
		Policy:    h.policy(),
		Currency:  h.Env.Gateway.DefaultCurrency,
		Log:       h.Log,
		RequestID: middleware.GetRequestID(c),
	}
}

func (h *Handler) docs(c *gin.Context) services.DocsService {
	return services.DocsService{DB: h.DB, Currency: h.Env.Gateway.DefaultCurrency, Log: h.Log, RequestID: middleware.GetRequestID(c)}
}

func (h *Handler) reports(c *gin.Context) services.ReportsService {
	return services.ReportsService{DB: h.DB, Log: h.Log, RequestID: middleware.GetRequestID(c)}
}
