package routes

import (
	"net/http"

	"github.com/cyue49/BookNow/handlers"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// RegisterRoutes mounts the full API surface onto the router.
func RegisterRoutes(router *gin.Engine, bundle *handlers.HandlerBundle) {
	router.Use(cors.New(cors.Config{
		AllowOrigins: []string{"*"},
		AllowMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders: []string{"Origin", "Content-Type", "Accept", "X-Request-ID"},
	}))

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	api := router.Group("/api")
	registerClientRoutes(api.Group("/clients"), bundle.Clients)
	registerProviderRoutes(api.Group("/providers"), bundle.Providers)
	registerServiceRoutes(api.Group("/services"), bundle.Services)
	registerAvailabilityRoutes(api.Group("/availabilities"), bundle.Availabilities)
	registerBookingRoutes(api.Group("/bookings"), bundle.Bookings)
}

func registerClientRoutes(group *gin.RouterGroup, h *handlers.ClientHandler) {
	group.GET("/", h.ListClients)
	group.GET("/:id", h.GetClient)
	group.GET("/:id/addresses", h.GetClientAddresses)
	group.GET("/:id/payments", h.GetClientPayments)
	group.GET("/:id/recipients", h.GetClientRecipients)
	group.POST("/", h.CreateClient)
	group.PUT("/:id", h.UpdateClient)
	group.PUT("/:id/addresses/add", h.AddClientAddress)
	group.PUT("/:id/addresses/update/:addrID", h.UpdateClientAddress)
	group.PUT("/:id/addresses/remove/:addrID", h.RemoveClientAddress)
	group.PUT("/:id/payments/add", h.AddClientPayment)
	group.PUT("/:id/payments/update/:payID", h.UpdateClientPayment)
	group.PUT("/:id/payments/remove/:payID", h.RemoveClientPayment)
	group.PUT("/:id/recipients/add", h.AddClientRecipient)
	group.PUT("/:id/recipients/update/:recID", h.UpdateClientRecipient)
	group.PUT("/:id/recipients/remove/:recID", h.RemoveClientRecipient)
	group.DELETE("/:id", h.DeleteClient)
}

func registerProviderRoutes(group *gin.RouterGroup, h *handlers.ProviderHandler) {
	group.GET("/", h.ListProviders)
	group.GET("/:id", h.GetProvider)
	group.GET("/:id/addresses", h.GetProviderAddresses)
	group.POST("/", h.CreateProvider)
	group.PUT("/:id", h.UpdateProvider)
	group.PUT("/:id/addresses/add", h.AddProviderAddress)
	group.PUT("/:id/addresses/update/:addrID", h.UpdateProviderAddress)
	group.PUT("/:id/addresses/remove/:addrID", h.RemoveProviderAddress)
	group.DELETE("/:id", h.DeleteProvider)
}

func registerServiceRoutes(group *gin.RouterGroup, h *handlers.ServiceHandler) {
	group.GET("/", h.ListServices)
	group.GET("/:id", h.GetService)
	group.POST("/", h.CreateService)
	group.PUT("/:id", h.UpdateService)
	group.DELETE("/:id", h.DeleteService)
}

func registerAvailabilityRoutes(group *gin.RouterGroup, h *handlers.AvailabilityHandler) {
	group.GET("/", h.ListAvailabilities)
	group.GET("/providers", h.ListAvailabilitiesWithProviders)
	group.GET("/byProvider/:providerID", h.ListAvailabilitiesByProvider)
	group.GET("/byDate/:date", h.ListAvailabilitiesByDate)
	group.GET("/:id", h.GetAvailability)
	group.GET("/:id/hours", h.GetAvailabilityHours)
	group.POST("/", h.CreateAvailability)
	group.PUT("/:id", h.UpdateAvailability)
	group.PUT("/:id/hours/add", h.AddAvailabilityHours)
	group.PUT("/:id/hours/update/:hourID", h.UpdateAvailabilityHour)
	group.PUT("/:id/hours/remove/:hourID", h.RemoveAvailabilityHour)
	group.DELETE("/:id", h.DeleteAvailability)
}

func registerBookingRoutes(group *gin.RouterGroup, h *handlers.BookingHandler) {
	group.GET("/", h.ListBookings)
	group.GET("/showInfo", h.ListBookingsInfo)
	group.GET("/clients/:clientID", h.ListBookingsByClient)
	group.GET("/clients/:clientID/showInfo", h.ListBookingsByClientInfo)
	group.GET("/providers/:providerID", h.ListBookingsByProvider)
	group.GET("/providers/:providerID/showInfo", h.ListBookingsByProviderInfo)
	group.GET("/services/:serviceID", h.ListBookingsByService)
	group.GET("/services/:serviceID/showInfo", h.ListBookingsByServiceInfo)
	group.GET("/dates/:date", h.ListBookingsByDate)
	group.GET("/dates/:date/showInfo", h.ListBookingsByDateInfo)
	group.GET("/:id", h.GetBooking)
	group.GET("/:id/showInfo", h.GetBookingInfo)
	group.POST("/", h.CreateBooking)
	group.PUT("/:id", h.UpdateBooking)
	group.DELETE("/:id", h.DeleteBooking)
}
