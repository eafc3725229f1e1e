package handlers

import (
	"net/http"

	serviceRepo "github.com/cyue49/BookNow/database/repository/service"
	"github.com/cyue49/BookNow/models"
	"github.com/cyue49/BookNow/utils"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

const serviceNotFound = "No service of this id exists."

// ServiceHandler serves the service catalog.
type ServiceHandler struct {
	Repo serviceRepo.ServiceRepository
}

func NewServiceHandler(repo serviceRepo.ServiceRepository) *ServiceHandler {
	return &ServiceHandler{Repo: repo}
}

// ListServices handles GET /api/services.
func (h *ServiceHandler) ListServices(c *gin.Context) {
	services, err := h.Repo.FindAll()
	if err != nil {
		utils.BadRequest(c, err.Error())
		return
	}
	c.JSON(http.StatusOK, services)
}

// GetService handles GET /api/services/:id.
func (h *ServiceHandler) GetService(c *gin.Context) {
	id, ok := parseID(c, "id", serviceNotFound)
	if !ok {
		return
	}
	service, err := h.Repo.FindByID(id)
	if err != nil {
		utils.BadRequest(c, serviceNotFound)
		return
	}
	c.JSON(http.StatusOK, service)
}

// CreateService handles POST /api/services.
func (h *ServiceHandler) CreateService(c *gin.Context) {
	var req models.ServiceCreate
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, err.Error())
		return
	}
	if err := req.Validate(); err != nil {
		utils.BadRequest(c, err.Error())
		return
	}

	created, err := h.Repo.Create(req.ToService())
	if err != nil {
		utils.GetLogger().Error("service create failed", zap.Error(err))
		utils.BadRequest(c, err.Error())
		return
	}
	c.JSON(http.StatusOK, created)
}

// UpdateService handles PUT /api/services/:id.
func (h *ServiceHandler) UpdateService(c *gin.Context) {
	id, ok := parseID(c, "id", serviceNotFound)
	if !ok {
		return
	}
	var req models.ServiceUpdate
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
			utils.BadRequest(c, serviceNotFound)
			return
		}
		c.JSON(http.StatusOK, &mongo.UpdateResult{MatchedCount: 1})
		return
	}

	result, err := h.Repo.UpdateFields(id, set)
	if err != nil {
		utils.BadRequest(c, serviceNotFound)
		return
	}
	c.JSON(http.StatusOK, result)
}

// DeleteService handles DELETE /api/services/:id.
func (h *ServiceHandler) DeleteService(c *gin.Context) {
	id, ok := parseID(c, "id", serviceNotFound)
	if !ok {
		return
	}
	deleted, err := h.Repo.Delete(id)
	if err != nil {
		utils.BadRequest(c, serviceNotFound)
		return
	}
	c.JSON(http.StatusOK, deleted)
}
