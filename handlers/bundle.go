package handlers

import (
	"github.com/cyue49/BookNow/utils"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// HandlerBundle groups the per-entity handlers for route registration.
type HandlerBundle struct {
	Clients        *ClientHandler
	Providers      *ProviderHandler
	Services       *ServiceHandler
	Availabilities *AvailabilityHandler
	Bookings       *BookingHandler
}

// parseID reads a 24-hex path parameter. A malformed id gets the same "no
// such id" answer as a true miss; the two are not distinguished on the wire.
func parseID(c *gin.Context, param, notFoundMsg string) (primitive.ObjectID, bool) {
	id, err := primitive.ObjectIDFromHex(c.Param(param))
	if err != nil {
		utils.BadRequest(c, notFoundMsg)
		return primitive.NilObjectID, false
	}
	return id, true
}
