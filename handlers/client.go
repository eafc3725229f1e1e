package handlers

import (
	"net/http"

	clientRepo "github.com/cyue49/BookNow/database/repository/client"
	"github.com/cyue49/BookNow/models"
	"github.com/cyue49/BookNow/utils"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

const clientNotFound = "No client of this id exists."

// ClientHandler serves the client aggregate: general fields plus the owned
// address, payment and recipient collections.
type ClientHandler struct {
	Repo clientRepo.ClientRepository
}

func NewClientHandler(repo clientRepo.ClientRepository) *ClientHandler {
	return &ClientHandler{Repo: repo}
}

// ListClients handles GET /api/clients.
func (h *ClientHandler) ListClients(c *gin.Context) {
	clients, err := h.Repo.FindAll()
	if err != nil {
		utils.BadRequest(c, err.Error())
		return
	}
	c.JSON(http.StatusOK, clients)
}

// GetClient handles GET /api/clients/:id.
func (h *ClientHandler) GetClient(c *gin.Context) {
	id, ok := parseID(c, "id", clientNotFound)
	if !ok {
		return
	}
	client, err := h.Repo.FindByID(id)
	if err != nil {
		utils.BadRequest(c, clientNotFound)
		return
	}
	c.JSON(http.StatusOK, client)
}

// GetClientAddresses handles GET /api/clients/:id/addresses.
func (h *ClientHandler) GetClientAddresses(c *gin.Context) {
	id, ok := parseID(c, "id", clientNotFound)
	if !ok {
		return
	}
	client, err := h.Repo.FindByID(id)
	if err != nil {
		utils.BadRequest(c, clientNotFound)
		return
	}
	c.JSON(http.StatusOK, client.Address)
}

// GetClientPayments handles GET /api/clients/:id/payments.
func (h *ClientHandler) GetClientPayments(c *gin.Context) {
	id, ok := parseID(c, "id", clientNotFound)
	if !ok {
		return
	}
	client, err := h.Repo.FindByID(id)
	if err != nil {
		utils.BadRequest(c, clientNotFound)
		return
	}
	c.JSON(http.StatusOK, client.Payment)
}

// GetClientRecipients handles GET /api/clients/:id/recipients.
func (h *ClientHandler) GetClientRecipients(c *gin.Context) {
	id, ok := parseID(c, "id", clientNotFound)
	if !ok {
		return
	}
	client, err := h.Repo.FindByID(id)
	if err != nil {
		utils.BadRequest(c, clientNotFound)
		return
	}
	c.JSON(http.StatusOK, client.Recipient)
}

// CreateClient handles POST /api/clients. The created document, including the
// generated ids of any nested elements, is echoed back.
func (h *ClientHandler) CreateClient(c *gin.Context) {
	var req models.ClientCreate
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, err.Error())
		return
	}
	if err := req.Validate(); err != nil {
		utils.BadRequest(c, err.Error())
		return
	}

	created, err := h.Repo.Create(req.ToClient())
	if err != nil {
		utils.GetLogger().Error("client create failed", zap.Error(err))
		utils.BadRequest(c, err.Error())
		return
	}
	c.JSON(http.StatusOK, created)
}

// UpdateClient handles PUT /api/clients/:id with set semantics: only the
// provided fields are overwritten.
func (h *ClientHandler) UpdateClient(c *gin.Context) {
	id, ok := parseID(c, "id", clientNotFound)
	if !ok {
		return
	}
	var req models.ClientUpdate
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
			utils.BadRequest(c, clientNotFound)
			return
		}
		c.JSON(http.StatusOK, &mongo.UpdateResult{MatchedCount: 1})
		return
	}

	result, err := h.Repo.UpdateFields(id, set)
	if err != nil {
		utils.BadRequest(c, clientNotFound)
		return
	}
	c.JSON(http.StatusOK, result)
}

// AddClientAddress handles PUT /api/clients/:id/addresses/add.
func (h *ClientHandler) AddClientAddress(c *gin.Context) {
	id, ok := parseID(c, "id", clientNotFound)
	if !ok {
		return
	}
	var req models.AddressAdd
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, err.Error())
		return
	}
	if err := req.Validate(); err != nil {
		utils.BadRequest(c, err.Error())
		return
	}

	var result *mongo.UpdateResult
	for _, payload := range req.Address {
		res, err := h.Repo.PushNested(id, "address", payload.ToAddress())
		if err != nil {
			utils.BadRequest(c, clientNotFound)
			return
		}
		result = res
	}
	c.JSON(http.StatusOK, result)
}

// UpdateClientAddress handles PUT /api/clients/:id/addresses/update/:addrID.
// The body is the flat element object.
func (h *ClientHandler) UpdateClientAddress(c *gin.Context) {
	id, ok := parseID(c, "id", clientNotFound)
	if !ok {
		return
	}
	addrID, ok := parseID(c, "addrID", clientNotFound)
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

	result, err := h.Repo.UpdateNestedElement(id, "address", addrID, req.SetDoc())
	if err != nil {
		utils.BadRequest(c, clientNotFound)
		return
	}
	c.JSON(http.StatusOK, result)
}

// RemoveClientAddress handles PUT /api/clients/:id/addresses/remove/:addrID.
func (h *ClientHandler) RemoveClientAddress(c *gin.Context) {
	id, ok := parseID(c, "id", clientNotFound)
	if !ok {
		return
	}
	addrID, ok := parseID(c, "addrID", clientNotFound)
	if !ok {
		return
	}
	result, err := h.Repo.PullNested(id, "address", addrID)
	if err != nil {
		utils.BadRequest(c, clientNotFound)
		return
	}
	c.JSON(http.StatusOK, result)
}

// AddClientPayment handles PUT /api/clients/:id/payments/add.
func (h *ClientHandler) AddClientPayment(c *gin.Context) {
	id, ok := parseID(c, "id", clientNotFound)
	if !ok {
		return
	}
	var req models.PaymentAdd
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, err.Error())
		return
	}
	if err := req.Validate(); err != nil {
		utils.BadRequest(c, err.Error())
		return
	}

	var result *mongo.UpdateResult
	for _, payload := range req.Payment {
		res, err := h.Repo.PushNested(id, "payment", payload.ToPayment())
		if err != nil {
			utils.BadRequest(c, clientNotFound)
			return
		}
		result = res
	}
	c.JSON(http.StatusOK, result)
}

// UpdateClientPayment handles PUT /api/clients/:id/payments/update/:payID.
func (h *ClientHandler) UpdateClientPayment(c *gin.Context) {
	id, ok := parseID(c, "id", clientNotFound)
	if !ok {
		return
	}
	payID, ok := parseID(c, "payID", clientNotFound)
	if !ok {
		return
	}
	var req models.PaymentPayload
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, err.Error())
		return
	}
	if err := req.Validate(); err != nil {
		utils.BadRequest(c, err.Error())
		return
	}

	result, err := h.Repo.UpdateNestedElement(id, "payment", payID, req.SetDoc())
	if err != nil {
		utils.BadRequest(c, clientNotFound)
		return
	}
	c.JSON(http.StatusOK, result)
}

// RemoveClientPayment handles PUT /api/clients/:id/payments/remove/:payID.
func (h *ClientHandler) RemoveClientPayment(c *gin.Context) {
	id, ok := parseID(c, "id", clientNotFound)
	if !ok {
		return
	}
	payID, ok := parseID(c, "payID", clientNotFound)
	if !ok {
		return
	}
	result, err := h.Repo.PullNested(id, "payment", payID)
	if err != nil {
		utils.BadRequest(c, clientNotFound)
		return
	}
	c.JSON(http.StatusOK, result)
}

// AddClientRecipient handles PUT /api/clients/:id/recipients/add.
func (h *ClientHandler) AddClientRecipient(c *gin.Context) {
	id, ok := parseID(c, "id", clientNotFound)
	if !ok {
		return
	}
	var req models.RecipientAdd
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, err.Error())
		return
	}
	if err := req.Validate(); err != nil {
		utils.BadRequest(c, err.Error())
		return
	}

	var result *mongo.UpdateResult
	for _, payload := range req.Recipient {
		res, err := h.Repo.PushNested(id, "recipient", payload.ToRecipient())
		if err != nil {
			utils.BadRequest(c, clientNotFound)
			return
		}
		result = res
	}
	c.JSON(http.StatusOK, result)
}

// UpdateClientRecipient handles PUT /api/clients/:id/recipients/update/:recID.
func (h *ClientHandler) UpdateClientRecipient(c *gin.Context) {
	id, ok := parseID(c, "id", clientNotFound)
	if !ok {
		return
	}
	recID, ok := parseID(c, "recID", clientNotFound)
	if !ok {
		return
	}
	var req models.RecipientPayload
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, err.Error())
		return
	}
	if err := req.Validate(); err != nil {
		utils.BadRequest(c, err.Error())
		return
	}

	result, err := h.Repo.UpdateNestedElement(id, "recipient", recID, req.SetDoc())
	if err != nil {
		utils.BadRequest(c, clientNotFound)
		return
	}
	c.JSON(http.StatusOK, result)
}

// RemoveClientRecipient handles PUT /api/clients/:id/recipients/remove/:recID.
func (h *ClientHandler) RemoveClientRecipient(c *gin.Context) {
	id, ok := parseID(c, "id", clientNotFound)
	if !ok {
		return
	}
	recID, ok := parseID(c, "recID", clientNotFound)
	if !ok {
		return
	}
	result, err := h.Repo.PullNested(id, "recipient", recID)
	if err != nil {
		utils.BadRequest(c, clientNotFound)
		return
	}
	c.JSON(http.StatusOK, result)
}

// DeleteClient handles DELETE /api/clients/:id and echoes the removed
// document.
func (h *ClientHandler) DeleteClient(c *gin.Context) {
	id, ok := parseID(c, "id", clientNotFound)
	if !ok {
		return
	}
	deleted, err := h.Repo.Delete(id)
	if err != nil {
		utils.BadRequest(c, clientNotFound)
		return
	}
	c.JSON(http.StatusOK, deleted)
}
