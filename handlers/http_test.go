package handlers

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func performRequest(t *testing.T, router *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	var reader *strings.Reader
	if body == "" {
		reader = strings.NewReader("")
	} else {
		reader = strings.NewReader(body)
	}
	req, err := http.NewRequest(method, path, reader)
	if err != nil {
		t.Fatalf("build request: %v", err)
	}
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func newClientRouter(repo *fakeClientRepo) *gin.Engine {
	router := gin.New()
	h := NewClientHandler(repo)
	group := router.Group("/api/clients")
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
	return router
}

func newProviderRouter(repo *fakeProviderRepo) *gin.Engine {
	router := gin.New()
	h := NewProviderHandler(repo)
	group := router.Group("/api/providers")
	group.GET("/", h.ListProviders)
	group.GET("/:id", h.GetProvider)
	group.GET("/:id/addresses", h.GetProviderAddresses)
	group.POST("/", h.CreateProvider)
	group.PUT("/:id", h.UpdateProvider)
	group.PUT("/:id/addresses/add", h.AddProviderAddress)
	group.PUT("/:id/addresses/update/:addrID", h.UpdateProviderAddress)
	group.PUT("/:id/addresses/remove/:addrID", h.RemoveProviderAddress)
	group.DELETE("/:id", h.DeleteProvider)
	return router
}

func newServiceRouter(repo *fakeServiceRepo) *gin.Engine {
	router := gin.New()
	h := NewServiceHandler(repo)
	group := router.Group("/api/services")
	group.GET("/", h.ListServices)
	group.GET("/:id", h.GetService)
	group.POST("/", h.CreateService)
	group.PUT("/:id", h.UpdateService)
	group.DELETE("/:id", h.DeleteService)
	return router
}

func newAvailabilityRouter(repo *fakeAvailabilityRepo, providers *fakeProviderRepo) *gin.Engine {
	router := gin.New()
	h := NewAvailabilityHandler(repo, providers)
	group := router.Group("/api/availabilities")
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
	return router
}

func newBookingRouter(repo *fakeBookingRepo, clients *fakeClientRepo, providers *fakeProviderRepo, services *fakeServiceRepo) *gin.Engine {
	router := gin.New()
	h := NewBookingHandler(repo, clients, providers, services)
	group := router.Group("/api/bookings")
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
	return router
}
