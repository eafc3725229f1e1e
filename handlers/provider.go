package handlers

import (
	"net/http"

	providerRepo "github.com/cyue49/BookNow/database/repository/provider"
	"github.com/cyue49/BookNow/models"
	"github.com/cyue49/BookNow/utils"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

const providerNotFound = "No provider of this id exists."

// ProviderHandler serves providers and their owned addresses collection. The
// nested pattern is the same as the client aggregate.
type ProviderHandler struct {
	Repo providerRepo.ProviderRepository
}

func NewProviderHandler(repo providerRepo.ProviderRepository) *ProviderHandler {
	return &ProviderHandler{Repo: repo}
}

// ListProviders handles GET /api/providers.
func (h *ProviderHandler) ListProviders(c *gin.Context) {
	providers, err := h.Repo.FindAll()
	if err != nil {
		utils.BadRequest(c, err.Error())
		return
	}
	c.JSON(http.StatusOK, providers)
}

// GetProvider handles GET /api/providers/:id.
func (h *ProviderHandler) GetProvider(c *gin.Context) {
	id, ok := parseID(c, "id", providerNotFound)
	if !ok {
		return
	}
	provider, err := h.Repo.FindByID(id)
	if err != nil {
		utils.BadRequest(c, providerNotFound)
		return
	}
	c.JSON(http.StatusOK, provider)
}

// GetProviderAddresses handles GET /api/providers/:id/addresses.
func (h *ProviderHandler) GetProviderAddresses(c *gin.Context) {
	id, ok := parseID(c, "id", providerNotFound)
	if !ok {
		return
	}
	provider, err := h.Repo.FindByID(id)
	if err != nil {
		utils.BadRequest(c, providerNotFound)
		return
	}
	c.JSON(http.StatusOK, provider.Addresses)
}

// CreateProvider handles POST /api/providers.
func (h *ProviderHandler) CreateProvider(c *gin.Context) {
	var req models.ProviderCreate
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, err.Error())
		return
	}
	if err := req.Validate(); err != nil {
		utils.BadRequest(c, err.Error())
		return
	}

	created, err := h.Repo.Create(req.ToProvider())
	if err != nil {
		utils.GetLogger().Error("provider create failed", zap.Error(err))
		utils.BadRequest(c, err.Error())
		return
	}
	c.JSON(http.StatusOK, created)
}

// UpdateProvider handles PUT /api/providers/:id.
func (h *ProviderHandler) UpdateProvider(c *gin.Context) {
	id, ok := parseID(c, "id", providerNotFound)
	if !ok {
		return
	}
	var req models.ProviderUpdate
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
			utils.BadRequest(c, providerNotFound)
			return
		}
		c.JSON(http.StatusOK, &mongo.UpdateResult{MatchedCount: 1})
		return
	}

	result, err := h.Repo.UpdateFields(id, set)
	if err != nil {
		utils.BadRequest(c, providerNotFound)
		return
	}
	c.JSON(http.StatusOK, result)
}

// AddProviderAddress handles PUT /api/providers/:id/addresses/add.
func (h *ProviderHandler) AddProviderAddress(c *gin.Context) {
	id, ok := parseID(c, "id", providerNotFound)
	if !ok {
		return
	}
	var req models.ProviderAddressAdd
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, err.Error())
		return
	}
	if err := req.Validate(); err != nil {
		utils.BadRequest(c, err.Error())
		return
	}

	var result *mongo.UpdateResult
	for _, payload := range req.Addresses {
		res, err := h.Repo.PushNested(id, "addresses", payload.ToAddress())
		if err != nil {
			utils.BadRequest(c, providerNotFound)
			return
		}
		result = res
	}
	c.JSON(http.StatusOK, result)
}

// UpdateProviderAddress handles PUT /api/providers/:id/addresses/update/:addrID.
func (h *ProviderHandler) UpdateProviderAddress(c *gin.Context) {
	id, ok := parseID(c, "id", providerNotFound)
	if !ok {
		return
	}
	addrID, ok := parseID(c, "addrID", providerNotFound)
	if !ok {
		return
	}
	var req models.AddressPayload
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, err.Error())
		return
	}
	if err := req.Validate(); err != nil {
		utils.BadRequest(c, err.Error())
		return
	}

	result, err := h.Repo.UpdateNestedElement(id, "addresses", addrID, req.SetDoc())
	if err != nil {
		utils.BadRequest(c, providerNotFound)
		return
	}
	c.JSON(http.StatusOK, result)
}

// RemoveProviderAddress handles PUT /api/providers/:id/addresses/remove/:addrID.
func (h *ProviderHandler) RemoveProviderAddress(c *gin.Context) {
	id, ok := parseID(c, "id", providerNotFound)
	if !ok {
		return
	}
	addrID, ok := parseID(c, "addrID", providerNotFound)
	if !ok {
		return
	}
	result, err := h.Repo.PullNested(id, "addresses", addrID)
	if err != nil {
		utils.BadRequest(c, providerNotFound)
		return
	}
	c.JSON(http.StatusOK, result)
}

// DeleteProvider handles DELETE /api/providers/:id.
func (h *ProviderHandler) DeleteProvider(c *gin.Context) {
	id, ok := parseID(c, "id", providerNotFound)
	if !ok {
		return
	}
	deleted, err := h.Repo.Delete(id)
	if err != nil {
		utils.BadRequest(c, providerNotFound)
		return
	}
	c.JSON(http.StatusOK, deleted)
}
