package handlers

import (
	"net/http"
	"time"

	bookingRepo "github.com/cyue49/BookNow/database/repository/booking"
	clientRepo "github.com/cyue49/BookNow/database/repository/client"
	providerRepo "github.com/cyue49/BookNow/database/repository/provider"
	serviceRepo "github.com/cyue49/BookNow/database/repository/service"
	"github.com/cyue49/BookNow/models"
	"github.com/cyue49/BookNow/utils"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

const bookingNotFound = "No booking of this id exists."

// BookingHandler serves booking documents. The client, provider and service
// repositories are only consulted by the showInfo joins.
type BookingHandler struct {
	Repo      bookingRepo.BookingRepository
	Clients   clientRepo.ClientRepository
	Providers providerRepo.ProviderRepository
	Services  serviceRepo.ServiceRepository
}

func NewBookingHandler(repo bookingRepo.BookingRepository, clients clientRepo.ClientRepository,
	providers providerRepo.ProviderRepository, services serviceRepo.ServiceRepository) *BookingHandler {
	return &BookingHandler{Repo: repo, Clients: clients, Providers: providers, Services: services}
}

// withInfo expands a booking's references into the referenced documents.
// Dangling references leave the corresponding info field unset.
func (h *BookingHandler) withInfo(booking models.Booking) models.BookingInfo {
	info := models.BookingInfo{Booking: booking}
	if client, err := h.Clients.FindByID(booking.Client); err == nil {
		info.ClientInfo = client
	}
	if provider, err := h.Providers.FindByID(booking.Provider); err == nil {
		info.ProviderInfo = provider
	}
	if service, err := h.Services.FindByID(booking.Service); err == nil {
		info.ServiceInfo = service
	}
	return info
}

func (h *BookingHandler) listPlain(c *gin.Context, filter bson.M) {
	var bookings []models.Booking
	var err error
	if filter == nil {
		bookings, err = h.Repo.FindAll()
	} else {
		bookings, err = h.Repo.FindByFilter(filter)
	}
	if err != nil {
		utils.BadRequest(c, err.Error())
		return
	}
	c.JSON(http.StatusOK, bookings)
}

func (h *BookingHandler) listInfo(c *gin.Context, filter bson.M) {
	var bookings []models.Booking
	var err error
	if filter == nil {
		bookings, err = h.Repo.FindAll()
	} else {
		bookings, err = h.Repo.FindByFilter(filter)
	}
	if err != nil {
		utils.BadRequest(c, err.Error())
		return
	}

	infos := make([]models.BookingInfo, 0, len(bookings))
	for _, booking := range bookings {
		infos = append(infos, h.withInfo(booking))
	}
	c.JSON(http.StatusOK, infos)
}

// ListBookings handles GET /api/bookings.
func (h *BookingHandler) ListBookings(c *gin.Context) {
	h.listPlain(c, nil)
}

// ListBookingsInfo handles GET /api/bookings/showInfo.
func (h *BookingHandler) ListBookingsInfo(c *gin.Context) {
	h.listInfo(c, nil)
}

// GetBooking handles GET /api/bookings/:id.
func (h *BookingHandler) GetBooking(c *gin.Context) {
	id, ok := parseID(c, "id", bookingNotFound)
	if !ok {
		return
	}
	booking, err := h.Repo.FindByID(id)
	if err != nil {
		utils.BadRequest(c, bookingNotFound)
		return
	}
	c.JSON(http.StatusOK, booking)
}

// GetBookingInfo handles GET /api/bookings/:id/showInfo.
func (h *BookingHandler) GetBookingInfo(c *gin.Context) {
	id, ok := parseID(c, "id", bookingNotFound)
	if !ok {
		return
	}
	booking, err := h.Repo.FindByID(id)
	if err != nil {
		utils.BadRequest(c, bookingNotFound)
		return
	}
	c.JSON(http.StatusOK, h.withInfo(*booking))
}

func refFilter(c *gin.Context, param, field, notFoundMsg string) (bson.M, bool) {
	id, err := primitive.ObjectIDFromHex(c.Param(param))
	if err != nil {
		utils.BadRequest(c, notFoundMsg)
		return nil, false
	}
	return bson.M{field: id}, true
}

// ListBookingsByClient handles GET /api/bookings/clients/:clientID.
func (h *BookingHandler) ListBookingsByClient(c *gin.Context) {
	filter, ok := refFilter(c, "clientID", "client", clientNotFound)
	if !ok {
		return
	}
	h.listPlain(c, filter)
}

// ListBookingsByClientInfo handles GET /api/bookings/clients/:clientID/showInfo.
func (h *BookingHandler) ListBookingsByClientInfo(c *gin.Context) {
	filter, ok := refFilter(c, "clientID", "client", clientNotFound)
	if !ok {
		return
	}
	h.listInfo(c, filter)
}

// ListBookingsByProvider handles GET /api/bookings/providers/:providerID.
func (h *BookingHandler) ListBookingsByProvider(c *gin.Context) {
	filter, ok := refFilter(c, "providerID", "provider", providerNotFound)
	if !ok {
		return
	}
	h.listPlain(c, filter)
}

// ListBookingsByProviderInfo handles GET /api/bookings/providers/:providerID/showInfo.
func (h *BookingHandler) ListBookingsByProviderInfo(c *gin.Context) {
	filter, ok := refFilter(c, "providerID", "provider", providerNotFound)
	if !ok {
		return
	}
	h.listInfo(c, filter)
}

// ListBookingsByService handles GET /api/bookings/services/:serviceID.
func (h *BookingHandler) ListBookingsByService(c *gin.Context) {
	filter, ok := refFilter(c, "serviceID", "service", serviceNotFound)
	if !ok {
		return
	}
	h.listPlain(c, filter)
}

// ListBookingsByServiceInfo handles GET /api/bookings/services/:serviceID/showInfo.
func (h *BookingHandler) ListBookingsByServiceInfo(c *gin.Context) {
	filter, ok := refFilter(c, "serviceID", "service", serviceNotFound)
	if !ok {
		return
	}
	h.listInfo(c, filter)
}

func (h *BookingHandler) dateFilter(c *gin.Context) (bson.M, bool) {
	day, err := time.Parse(dateLayout, c.Param("date"))
	if err != nil {
		utils.BadRequest(c, "Invalid date. Use the format YYYY-MM-DD.")
		return nil, false
	}
	return dayFilter("date", day), true
}

// ListBookingsByDate handles GET /api/bookings/dates/:date.
func (h *BookingHandler) ListBookingsByDate(c *gin.Context) {
	filter, ok := h.dateFilter(c)
	if !ok {
		return
	}
	h.listPlain(c, filter)
}

// ListBookingsByDateInfo handles GET /api/bookings/dates/:date/showInfo.
func (h *BookingHandler) ListBookingsByDateInfo(c *gin.Context) {
	filter, ok := h.dateFilter(c)
	if !ok {
		return
	}
	h.listInfo(c, filter)
}

// CreateBooking handles POST /api/bookings. References are validated for
// shape only; a booking may name a client, provider or service that does not
// exist.
func (h *BookingHandler) CreateBooking(c *gin.Context) {
	var req models.BookingCreate
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, err.Error())
		return
	}
	if err := req.Validate(); err != nil {
		utils.BadRequest(c, err.Error())
		return
	}

	created, err := h.Repo.Create(req.ToBooking())
	if err != nil {
		utils.GetLogger().Error("booking create failed", zap.Error(err))
		utils.BadRequest(c, err.Error())
		return
	}
	c.JSON(http.StatusOK, created)
}

// UpdateBooking handles PUT /api/bookings/:id.
func (h *BookingHandler) UpdateBooking(c *gin.Context) {
	id, ok := parseID(c, "id", bookingNotFound)
	if !ok {
		return
	}
	var req models.BookingUpdate
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, err.Error())
		return
	}
	if err := req.Validate(); err != nil {
		utils.BadRequest(c, err.Error())
		return
	}

	set := req.SetDoc()
	if len(set) == 0 {
		// Nothing to change; still report whether the document exists.
		// The ack carries a zero ModifiedCount since nothing was written.
		if _, err := h.Repo.FindByID(id); err != nil {
			utils.BadRequest(c, bookingNotFound)
			return
		}
		c.JSON(http.StatusOK, &mongo.UpdateResult{MatchedCount: 1})
		return
	}

	result, err := h.Repo.UpdateFields(id, set)
	if err != nil {
		utils.BadRequest(c, bookingNotFound)
		return
	}
	c.JSON(http.StatusOK, result)
}

// DeleteBooking handles DELETE /api/bookings/:id.
func (h *BookingHandler) DeleteBooking(c *gin.Context) {
	id, ok := parseID(c, "id", bookingNotFound)
	if !ok {
		return
	}
	deleted, err := h.Repo.Delete(id)
	if err != nil {
		utils.BadRequest(c, bookingNotFound)
		return
	}
	c.JSON(http.StatusOK, deleted)
}
