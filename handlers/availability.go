package handlers

import (
	"net/http"
	"time"

	availabilityRepo "github.com/cyue49/BookNow/database/repository/availability"
	providerRepo "github.com/cyue49/BookNow/database/repository/provider"
	"github.com/cyue49/BookNow/models"
	"github.com/cyue49/BookNow/utils"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

const availabilityNotFound = "No availability of this id exists."

const dateLayout = "2006-01-02"

// AvailabilityHandler serves provider availability documents and their
// nested hour entries. Providers is only consulted for joined reads.
type AvailabilityHandler struct {
	Repo      availabilityRepo.AvailabilityRepository
	Providers providerRepo.ProviderRepository
}

func NewAvailabilityHandler(repo availabilityRepo.AvailabilityRepository, providers providerRepo.ProviderRepository) *AvailabilityHandler {
	return &AvailabilityHandler{Repo: repo, Providers: providers}
}

// ListAvailabilities handles GET /api/availabilities.
func (h *AvailabilityHandler) ListAvailabilities(c *gin.Context) {
	availabilities, err := h.Repo.FindAll()
	if err != nil {
		utils.BadRequest(c, err.Error())
		return
	}
	c.JSON(http.StatusOK, availabilities)
}

// ListAvailabilitiesWithProviders handles GET /api/availabilities/providers.
// Each availability is returned with its provider document expanded; a
// dangling provider reference leaves providerInfo unset.
func (h *AvailabilityHandler) ListAvailabilitiesWithProviders(c *gin.Context) {
	availabilities, err := h.Repo.FindAll()
	if err != nil {
		utils.BadRequest(c, err.Error())
		return
	}

	infos := make([]models.AvailabilityInfo, 0, len(availabilities))
	for _, availability := range availabilities {
		info := models.AvailabilityInfo{Availability: availability}
		if provider, err := h.Providers.FindByID(availability.Provider); err == nil {
			info.ProviderInfo = provider
		}
		infos = append(infos, info)
	}
	c.JSON(http.StatusOK, infos)
}

// GetAvailability handles GET /api/availabilities/:id.
func (h *AvailabilityHandler) GetAvailability(c *gin.Context) {
	id, ok := parseID(c, "id", availabilityNotFound)
	if !ok {
		return
	}
	availability, err := h.Repo.FindByID(id)
	if err != nil {
		utils.BadRequest(c, availabilityNotFound)
		return
	}
	c.JSON(http.StatusOK, availability)
}

// GetAvailabilityHours handles GET /api/availabilities/:id/hours.
func (h *AvailabilityHandler) GetAvailabilityHours(c *gin.Context) {
	id, ok := parseID(c, "id", availabilityNotFound)
	if !ok {
		return
	}
	availability, err := h.Repo.FindByID(id)
	if err != nil {
		utils.BadRequest(c, availabilityNotFound)
		return
	}
	c.JSON(http.StatusOK, availability.AvailableHours)
}

// ListAvailabilitiesByProvider handles GET /api/availabilities/byProvider/:providerID.
func (h *AvailabilityHandler) ListAvailabilitiesByProvider(c *gin.Context) {
	providerID, ok := parseID(c, "providerID", providerNotFound)
	if !ok {
		return
	}
	availabilities, err := h.Repo.FindByFilter(bson.M{"provider": providerID})
	if err != nil {
		utils.BadRequest(c, err.Error())
		return
	}
	c.JSON(http.StatusOK, availabilities)
}

// ListAvailabilitiesByDate handles GET /api/availabilities/byDate/:date. The
// date path segment is a YYYY-MM-DD day; any availability dated within that
// day matches.
func (h *AvailabilityHandler) ListAvailabilitiesByDate(c *gin.Context) {
	day, err := time.Parse(dateLayout, c.Param("date"))
	if err != nil {
		utils.BadRequest(c, "Invalid date. Use the format YYYY-MM-DD.")
		return
	}
	availabilities, err := h.Repo.FindByFilter(dayFilter("date", day))
	if err != nil {
		utils.BadRequest(c, err.Error())
		return
	}
	c.JSON(http.StatusOK, availabilities)
}

// CreateAvailability handles POST /api/availabilities.
func (h *AvailabilityHandler) CreateAvailability(c *gin.Context) {
	var req models.AvailabilityCreate
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, err.Error())
		return
	}
	if err := req.Validate(); err != nil {
		utils.BadRequest(c, err.Error())
		return
	}

	created, err := h.Repo.Create(req.ToAvailability())
	if err != nil {
		utils.GetLogger().Error("availability create failed", zap.Error(err))
		utils.BadRequest(c, err.Error())
		return
	}
	c.JSON(http.StatusOK, created)
}

// UpdateAvailability handles PUT /api/availabilities/:id.
func (h *AvailabilityHandler) UpdateAvailability(c *gin.Context) {
	id, ok := parseID(c, "id", availabilityNotFound)
	if !ok {
		return
	}
	var req models.AvailabilityUpdate
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
			utils.BadRequest(c, availabilityNotFound)
			return
		}
		c.JSON(http.StatusOK, &mongo.UpdateResult{MatchedCount: 1})
		return
	}

	result, err := h.Repo.UpdateFields(id, set)
	if err != nil {
		utils.BadRequest(c, availabilityNotFound)
		return
	}
	c.JSON(http.StatusOK, result)
}

// AddAvailabilityHours handles PUT /api/availabilities/:id/hours/add.
func (h *AvailabilityHandler) AddAvailabilityHours(c *gin.Context) {
	id, ok := parseID(c, "id", availabilityNotFound)
	if !ok {
		return
	}
	var req models.HourAdd
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, err.Error())
		return
	}
	if err := req.Validate(); err != nil {
		utils.BadRequest(c, err.Error())
		return
	}

	var result *mongo.UpdateResult
	for _, hour := range req.AvailableHours {
		var err error
		result, err = h.Repo.PushHour(id, hour.ToHourSlot())
		if err != nil {
			utils.BadRequest(c, availabilityNotFound)
			return
		}
	}
	c.JSON(http.StatusOK, result)
}

// UpdateAvailabilityHour handles PUT /api/availabilities/:id/hours/update/:hourID.
func (h *AvailabilityHandler) UpdateAvailabilityHour(c *gin.Context) {
	id, ok := parseID(c, "id", availabilityNotFound)
	if !ok {
		return
	}
	hourID, ok := parseID(c, "hourID", availabilityNotFound)
	if !ok {
		return
	}
	var req models.HourPayload
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, err.Error())
		return
	}
	if err := req.Validate(); err != nil {
		utils.BadRequest(c, err.Error())
		return
	}

	result, err := h.Repo.UpdateHour(id, hourID, req.SetDoc())
	if err != nil {
		utils.BadRequest(c, availabilityNotFound)
		return
	}
	c.JSON(http.StatusOK, result)
}

// RemoveAvailabilityHour handles PUT /api/availabilities/:id/hours/remove/:hourID.
func (h *AvailabilityHandler) RemoveAvailabilityHour(c *gin.Context) {
	id, ok := parseID(c, "id", availabilityNotFound)
	if !ok {
		return
	}
	hourID, ok := parseID(c, "hourID", availabilityNotFound)
	if !ok {
		return
	}
	result, err := h.Repo.PullHour(id, hourID)
	if err != nil {
		utils.BadRequest(c, availabilityNotFound)
		return
	}
	c.JSON(http.StatusOK, result)
}

// DeleteAvailability handles DELETE /api/availabilities/:id.
func (h *AvailabilityHandler) DeleteAvailability(c *gin.Context) {
	id, ok := parseID(c, "id", availabilityNotFound)
	if !ok {
		return
	}
	deleted, err := h.Repo.Delete(id)
	if err != nil {
		utils.BadRequest(c, availabilityNotFound)
		return
	}
	c.JSON(http.StatusOK, deleted)
}

// dayFilter matches documents whose field falls anywhere within the given
// UTC day.
func dayFilter(field string, day time.Time) bson.M {
	start := time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, time.UTC)
	return bson.M{field: bson.M{"$gte": start, "$lt": start.AddDate(0, 0, 1)}}
}
