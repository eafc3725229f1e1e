package handlers

import (
	"errors"
	"time"

	availabilityRepo "github.com/cyue49/BookNow/database/repository/availability"
	bookingRepo "github.com/cyue49/BookNow/database/repository/booking"
	clientRepo "github.com/cyue49/BookNow/database/repository/client"
	providerRepo "github.com/cyue49/BookNow/database/repository/provider"
	serviceRepo "github.com/cyue49/BookNow/database/repository/service"
	"github.com/cyue49/BookNow/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// In-memory repository fakes. They cover only the document shapes and update
// keys the handlers actually produce.

// errDuplicateEmail mimics the write exception the unique email index raises.
var errDuplicateEmail = errors.New("E11000 duplicate key error collection: booknow.clients index: email_1")

func ack() *mongo.UpdateResult {
	return &mongo.UpdateResult{MatchedCount: 1, ModifiedCount: 1}
}

// matchesDayRange reports whether t falls inside a {"$gte": ..., "$lt": ...}
// window built by the byDate handlers.
func matchesDayRange(t time.Time, cond interface{}) bool {
	window, ok := cond.(bson.M)
	if !ok {
		return false
	}
	start, _ := window["$gte"].(time.Time)
	end, _ := window["$lt"].(time.Time)
	return !t.Before(start) && t.Before(end)
}

type fakeClientRepo struct {
	docs map[primitive.ObjectID]*models.Client
}

func newFakeClientRepo() *fakeClientRepo {
	return &fakeClientRepo{docs: make(map[primitive.ObjectID]*models.Client)}
}

func (r *fakeClientRepo) FindAll() ([]models.Client, error) {
	clients := []models.Client{}
	for _, doc := range r.docs {
		clients = append(clients, *doc)
	}
	return clients, nil
}

func (r *fakeClientRepo) FindByID(id primitive.ObjectID) (*models.Client, error) {
	doc, ok := r.docs[id]
	if !ok {
		return nil, clientRepo.ErrNotFound
	}
	copy := *doc
	return &copy, nil
}

func (r *fakeClientRepo) Create(client *models.Client) (*models.Client, error) {
	for _, doc := range r.docs {
		if doc.Email == client.Email {
			return nil, errDuplicateEmail
		}
	}
	if client.ID.IsZero() {
		client.ID = primitive.NewObjectID()
	}
	stored := *client
	r.docs[client.ID] = &stored
	return client, nil
}

func (r *fakeClientRepo) UpdateFields(id primitive.ObjectID, set bson.M) (*mongo.UpdateResult, error) {
	doc, ok := r.docs[id]
	if !ok {
		return nil, clientRepo.ErrNotFound
	}
	if email, ok := set["email"].(string); ok {
		doc.Email = email
	}
	if phone, ok := set["phone"].(string); ok {
		doc.Phone = phone
	}
	if firstName, ok := set["firstName"].(string); ok {
		doc.FirstName = firstName
	}
	if lastName, ok := set["lastName"].(string); ok {
		doc.LastName = lastName
	}
	return ack(), nil
}

func (r *fakeClientRepo) PushNested(id primitive.ObjectID, field string, element interface{}) (*mongo.UpdateResult, error) {
	doc, ok := r.docs[id]
	if !ok {
		return nil, clientRepo.ErrNotFound
	}
	switch field {
	case "address":
		doc.Address = append(doc.Address, element.(models.Address))
	case "payment":
		doc.Payment = append(doc.Payment, element.(models.Payment))
	case "recipient":
		doc.Recipient = append(doc.Recipient, element.(models.Recipient))
	}
	return ack(), nil
}

func (r *fakeClientRepo) UpdateNestedElement(id primitive.ObjectID, field string, elementID primitive.ObjectID, set bson.M) (*mongo.UpdateResult, error) {
	doc, ok := r.docs[id]
	if !ok {
		return nil, clientRepo.ErrNotFound
	}
	if field == "address" {
		for i := range doc.Address {
			if doc.Address[i].ID == elementID {
				if city, ok := set["city"].(string); ok {
					doc.Address[i].City = city
				}
				if streetName, ok := set["streetName"].(string); ok {
					doc.Address[i].StreetName = streetName
				}
				return ack(), nil
			}
		}
	}
	return ack(), nil
}

func (r *fakeClientRepo) PullNested(id primitive.ObjectID, field string, elementID primitive.ObjectID) (*mongo.UpdateResult, error) {
	doc, ok := r.docs[id]
	if !ok {
		return nil, clientRepo.ErrNotFound
	}
	switch field {
	case "address":
		kept := doc.Address[:0]
		for _, a := range doc.Address {
			if a.ID != elementID {
				kept = append(kept, a)
			}
		}
		doc.Address = kept
	case "payment":
		kept := doc.Payment[:0]
		for _, p := range doc.Payment {
			if p.ID != elementID {
				kept = append(kept, p)
			}
		}
		doc.Payment = kept
	case "recipient":
		kept := doc.Recipient[:0]
		for _, rec := range doc.Recipient {
			if rec.ID != elementID {
				kept = append(kept, rec)
			}
		}
		doc.Recipient = kept
	}
	return ack(), nil
}

func (r *fakeClientRepo) Delete(id primitive.ObjectID) (*models.Client, error) {
	doc, ok := r.docs[id]
	if !ok {
		return nil, clientRepo.ErrNotFound
	}
	delete(r.docs, id)
	return doc, nil
}

var _ clientRepo.ClientRepository = (*fakeClientRepo)(nil)

type fakeProviderRepo struct {
	docs map[primitive.ObjectID]*models.Provider
}

func newFakeProviderRepo() *fakeProviderRepo {
	return &fakeProviderRepo{docs: make(map[primitive.ObjectID]*models.Provider)}
}

func (r *fakeProviderRepo) FindAll() ([]models.Provider, error) {
	providers := []models.Provider{}
	for _, doc := range r.docs {
		providers = append(providers, *doc)
	}
	return providers, nil
}

func (r *fakeProviderRepo) FindByID(id primitive.ObjectID) (*models.Provider, error) {
	doc, ok := r.docs[id]
	if !ok {
		return nil, providerRepo.ErrNotFound
	}
	copy := *doc
	return &copy, nil
}

func (r *fakeProviderRepo) Create(provider *models.Provider) (*models.Provider, error) {
	if provider.ID.IsZero() {
		provider.ID = primitive.NewObjectID()
	}
	stored := *provider
	r.docs[provider.ID] = &stored
	return provider, nil
}

func (r *fakeProviderRepo) UpdateFields(id primitive.ObjectID, set bson.M) (*mongo.UpdateResult, error) {
	doc, ok := r.docs[id]
	if !ok {
		return nil, providerRepo.ErrNotFound
	}
	if bio, ok := set["bio"].(string); ok {
		doc.Bio = bio
	}
	if email, ok := set["email"].(string); ok {
		doc.Email = email
	}
	return ack(), nil
}

func (r *fakeProviderRepo) PushNested(id primitive.ObjectID, field string, element interface{}) (*mongo.UpdateResult, error) {
	doc, ok := r.docs[id]
	if !ok {
		return nil, providerRepo.ErrNotFound
	}
	if field == "addresses" {
		doc.Addresses = append(doc.Addresses, element.(models.Address))
	}
	return ack(), nil
}

func (r *fakeProviderRepo) UpdateNestedElement(id primitive.ObjectID, field string, elementID primitive.ObjectID, set bson.M) (*mongo.UpdateResult, error) {
	if _, ok := r.docs[id]; !ok {
		return nil, providerRepo.ErrNotFound
	}
	return ack(), nil
}

func (r *fakeProviderRepo) PullNested(id primitive.ObjectID, field string, elementID primitive.ObjectID) (*mongo.UpdateResult, error) {
	doc, ok := r.docs[id]
	if !ok {
		return nil, providerRepo.ErrNotFound
	}
	if field == "addresses" {
		kept := doc.Addresses[:0]
		for _, a := range doc.Addresses {
			if a.ID != elementID {
				kept = append(kept, a)
			}
		}
		doc.Addresses = kept
	}
	return ack(), nil
}

func (r *fakeProviderRepo) Delete(id primitive.ObjectID) (*models.Provider, error) {
	doc, ok := r.docs[id]
	if !ok {
		return nil, providerRepo.ErrNotFound
	}
	delete(r.docs, id)
	return doc, nil
}

var _ providerRepo.ProviderRepository = (*fakeProviderRepo)(nil)

type fakeServiceRepo struct {
	docs map[primitive.ObjectID]*models.Service
}

func newFakeServiceRepo() *fakeServiceRepo {
	return &fakeServiceRepo{docs: make(map[primitive.ObjectID]*models.Service)}
}

func (r *fakeServiceRepo) FindAll() ([]models.Service, error) {
	services := []models.Service{}
	for _, doc := range r.docs {
		services = append(services, *doc)
	}
	return services, nil
}

func (r *fakeServiceRepo) FindByID(id primitive.ObjectID) (*models.Service, error) {
	doc, ok := r.docs[id]
	if !ok {
		return nil, serviceRepo.ErrNotFound
	}
	copy := *doc
	return &copy, nil
}

func (r *fakeServiceRepo) Create(service *models.Service) (*models.Service, error) {
	if service.ID.IsZero() {
		service.ID = primitive.NewObjectID()
	}
	stored := *service
	r.docs[service.ID] = &stored
	return service, nil
}

func (r *fakeServiceRepo) UpdateFields(id primitive.ObjectID, set bson.M) (*mongo.UpdateResult, error) {
	doc, ok := r.docs[id]
	if !ok {
		return nil, serviceRepo.ErrNotFound
	}
	if name, ok := set["name"].(string); ok {
		doc.Name = name
	}
	if description, ok := set["description"].(string); ok {
		doc.Description = description
	}
	if price, ok := set["price"].(float64); ok {
		doc.Price = price
	}
	return ack(), nil
}

func (r *fakeServiceRepo) Delete(id primitive.ObjectID) (*models.Service, error) {
	doc, ok := r.docs[id]
	if !ok {
		return nil, serviceRepo.ErrNotFound
	}
	delete(r.docs, id)
	return doc, nil
}

var _ serviceRepo.ServiceRepository = (*fakeServiceRepo)(nil)

type fakeAvailabilityRepo struct {
	docs map[primitive.ObjectID]*models.Availability
}

func newFakeAvailabilityRepo() *fakeAvailabilityRepo {
	return &fakeAvailabilityRepo{docs: make(map[primitive.ObjectID]*models.Availability)}
}

func (r *fakeAvailabilityRepo) FindAll() ([]models.Availability, error) {
	availabilities := []models.Availability{}
	for _, doc := range r.docs {
		availabilities = append(availabilities, *doc)
	}
	return availabilities, nil
}

func (r *fakeAvailabilityRepo) FindByFilter(filter bson.M) ([]models.Availability, error) {
	matches := []models.Availability{}
	for _, doc := range r.docs {
		if provider, ok := filter["provider"].(primitive.ObjectID); ok && doc.Provider != provider {
			continue
		}
		if cond, ok := filter["date"]; ok {
			if doc.Date == nil || !matchesDayRange(*doc.Date, cond) {
				continue
			}
		}
		matches = append(matches, *doc)
	}
	return matches, nil
}

func (r *fakeAvailabilityRepo) FindByID(id primitive.ObjectID) (*models.Availability, error) {
	doc, ok := r.docs[id]
	if !ok {
		return nil, availabilityRepo.ErrNotFound
	}
	copy := *doc
	return &copy, nil
}

func (r *fakeAvailabilityRepo) Create(availability *models.Availability) (*models.Availability, error) {
	if availability.ID.IsZero() {
		availability.ID = primitive.NewObjectID()
	}
	stored := *availability
	r.docs[availability.ID] = &stored
	return availability, nil
}

func (r *fakeAvailabilityRepo) UpdateFields(id primitive.ObjectID, set bson.M) (*mongo.UpdateResult, error) {
	doc, ok := r.docs[id]
	if !ok {
		return nil, availabilityRepo.ErrNotFound
	}
	if provider, ok := set["provider"].(primitive.ObjectID); ok {
		doc.Provider = provider
	}
	if date, ok := set["date"].(time.Time); ok {
		doc.Date = &date
	}
	return ack(), nil
}

func (r *fakeAvailabilityRepo) PushHour(id primitive.ObjectID, slot models.HourSlot) (*mongo.UpdateResult, error) {
	doc, ok := r.docs[id]
	if !ok {
		return nil, availabilityRepo.ErrNotFound
	}
	doc.AvailableHours = append(doc.AvailableHours, slot)
	return ack(), nil
}

func (r *fakeAvailabilityRepo) UpdateHour(id primitive.ObjectID, hourID primitive.ObjectID, set bson.M) (*mongo.UpdateResult, error) {
	doc, ok := r.docs[id]
	if !ok {
		return nil, availabilityRepo.ErrNotFound
	}
	for i := range doc.AvailableHours {
		if doc.AvailableHours[i].ID == hourID {
			if hour, ok := set["hour"].(int); ok {
				doc.AvailableHours[i].Hour = hour
			}
			break
		}
	}
	return ack(), nil
}

func (r *fakeAvailabilityRepo) PullHour(id primitive.ObjectID, hourID primitive.ObjectID) (*mongo.UpdateResult, error) {
	doc, ok := r.docs[id]
	if !ok {
		return nil, availabilityRepo.ErrNotFound
	}
	kept := doc.AvailableHours[:0]
	for _, slot := range doc.AvailableHours {
		if slot.ID != hourID {
			kept = append(kept, slot)
		}
	}
	doc.AvailableHours = kept
	return ack(), nil
}

func (r *fakeAvailabilityRepo) Delete(id primitive.ObjectID) (*models.Availability, error) {
	doc, ok := r.docs[id]
	if !ok {
		return nil, availabilityRepo.ErrNotFound
	}
	delete(r.docs, id)
	return doc, nil
}

var _ availabilityRepo.AvailabilityRepository = (*fakeAvailabilityRepo)(nil)

type fakeBookingRepo struct {
	docs map[primitive.ObjectID]*models.Booking
}

func newFakeBookingRepo() *fakeBookingRepo {
	return &fakeBookingRepo{docs: make(map[primitive.ObjectID]*models.Booking)}
}

func (r *fakeBookingRepo) FindAll() ([]models.Booking, error) {
	bookings := []models.Booking{}
	for _, doc := range r.docs {
		bookings = append(bookings, *doc)
	}
	return bookings, nil
}

func (r *fakeBookingRepo) FindByFilter(filter bson.M) ([]models.Booking, error) {
	matches := []models.Booking{}
	for _, doc := range r.docs {
		if client, ok := filter["client"].(primitive.ObjectID); ok && doc.Client != client {
			continue
		}
		if provider, ok := filter["provider"].(primitive.ObjectID); ok && doc.Provider != provider {
			continue
		}
		if service, ok := filter["service"].(primitive.ObjectID); ok && doc.Service != service {
			continue
		}
		if cond, ok := filter["date"]; ok && !matchesDayRange(doc.Date, cond) {
			continue
		}
		matches = append(matches, *doc)
	}
	return matches, nil
}

func (r *fakeBookingRepo) FindByID(id primitive.ObjectID) (*models.Booking, error) {
	doc, ok := r.docs[id]
	if !ok {
		return nil, bookingRepo.ErrNotFound
	}
	copy := *doc
	return &copy, nil
}

func (r *fakeBookingRepo) Create(booking *models.Booking) (*models.Booking, error) {
	if booking.ID.IsZero() {
		booking.ID = primitive.NewObjectID()
	}
	stored := *booking
	r.docs[booking.ID] = &stored
	return booking, nil
}

func (r *fakeBookingRepo) UpdateFields(id primitive.ObjectID, set bson.M) (*mongo.UpdateResult, error) {
	doc, ok := r.docs[id]
	if !ok {
		return nil, bookingRepo.ErrNotFound
	}
	if provider, ok := set["provider"].(primitive.ObjectID); ok {
		doc.Provider = provider
	}
	if date, ok := set["date"].(time.Time); ok {
		doc.Date = date
	}
	return ack(), nil
}

func (r *fakeBookingRepo) Delete(id primitive.ObjectID) (*models.Booking, error) {
	doc, ok := r.docs[id]
	if !ok {
		return nil, bookingRepo.ErrNotFound
	}
	delete(r.docs, id)
	return doc, nil
}

var _ bookingRepo.BookingRepository = (*fakeBookingRepo)(nil)
