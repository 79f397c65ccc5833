package api

import (
	stdhttp "net/http"

	h "tourtravel/internal/http/handlers"
	"tourtravel/internal/http/middleware"
	"tourtravel/internal/metrics"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func NewRouter(hd *h.Handler) *gin.Engine {
	metrics.Register()

	r := gin.New()
	r.Use(middleware.RequestID(), middleware.Logger(hd.Log), gin.Recovery(), middleware.CORS(hd.Env.CORSAllowedOrigins))

	if err := r.SetTrustedProxies(nil); err != nil {
		hd.Log.Warn().Err(err).Msg("failed to set trusted proxies")
	}

	r.NoRoute(func(c *gin.Context) {
		c.JSON(stdhttp.StatusNotFound, gin.H{
			"success": false,
			"error":   "route not found",
			"path":    c.Request.URL.Path,
			"method":  c.Request.Method,
		})
	})

	r.GET("/", h.Root)
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	api := r.Group("/api")
	{
		api.GET("/health", h.Health)
		api.GET("/db-check", hd.DBCheck)
		api.GET("/routes", h.Routes)

		// Users
		api.POST("/users", hd.SignUp)
		api.GET("/users", hd.ListUsers)
		api.PATCH("/users/make-admin/:id", hd.MakeAdmin)
	}
	r.GET("/users/isAdmin/:email", hd.IsAdmin)

	// Destinations & packages
	r.POST("/destinations", hd.CreateDestination)
	r.GET("/destinations", hd.ListDestinations)
	r.GET("/destinations/:id", hd.GetDestination)

	r.POST("/packages", hd.CreatePackage)
	r.GET("/packages", hd.ListPackages)
	r.GET("/packages/:package_id", hd.GetPackage)

	r.POST("/itinerary", hd.AddItinerary)
	r.GET("/itinerary/:package_id", hd.GetItinerary)

	// Reviews
	reviews := r.Group("/reviews")
	reviews.GET("", hd.ListReviews)
	reviews.POST("/:id", hd.AddReview)
	reviews.GET("/:id", hd.PackageReviews)
	reviews.PATCH("/:id", hd.UpdateReview)
	reviews.DELETE("/:id", hd.DeleteReview)
	reviews.GET("/user/:userId", hd.UserReviews)

	// Wishlist
	r.POST("/wishlist/:id", hd.AddToWishlist)
	r.GET("/wishlist/:id", hd.Wishlist)
	r.DELETE("/wishlist/:id", hd.RemoveFromWishlist)
	r.GET("/cart/:userId", hd.Cart)

	// Bookings
	bookings := r.Group("/bookings")
	mountBookings(bookings, hd)

	admin := r.Group("/admin")
	admin.GET("/bookings", hd.AdminBookings)
	admin.GET("/bookings/export", hd.ExportBookings)
	admin.GET("/payments", hd.AdminPayments)
	admin.DELETE("/payments/:paymentId", hd.DeletePayment)

	// Payments
	r.POST("/sslcommerz/initiate", hd.InitiatePayment)
	r.POST("/success", hd.PaymentSuccess)
	r.POST("/ipn", hd.PaymentIPN)
	r.GET("/user/payments/:email", hd.UserPayments)

	h.SetRouter(r)
	return r
}

func mountBookings(g *gin.RouterGroup, hd *h.Handler) {
	g.POST("", hd.CreateBooking)
	g.GET("/:userId", hd.UserBookings)
	g.GET("/details/:bookingId", hd.BookingDetail)
	g.GET("/details/:bookingId/invoice", hd.BookingInvoicePDF)

	g.PATCH("/cancel/:bookingId", hd.CancelBooking())
	g.PATCH("/approve/:bookingId", hd.ApproveBooking())
	g.PATCH("/cancel/approve/:bookingId", hd.ApproveCancellation())
	g.PATCH("/update/:bookingId", hd.ConfirmBooking())
	g.PATCH("/cancel/request/:bookingId", hd.RequestCancellation())
	g.PATCH("/cancel/deny/:bookingId", hd.DenyCancellation())

	g.DELETE("/admin/:bookingId", hd.DeleteBooking)
}
