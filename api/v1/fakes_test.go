package v1

import (
	"context"
	"sort"

	"go.mongodb.org/mongo-driver/mongo"

	"github.com/jrautos/jrautos-api/models"
)

type fakeVehicleStore struct {
	vehicles map[string]models.Vehicle
}

func newFakeVehicleStore() *fakeVehicleStore {
	return &fakeVehicleStore{vehicles: map[string]models.Vehicle{}}
}

func (f *fakeVehicleStore) Find(_ context.Context, onlyAvailable bool) ([]models.Vehicle, error) {
	out := []models.Vehicle{}
	for _, v := range f.vehicles {
		if onlyAvailable && !v.Available {
			continue
		}
		out = append(out, v)
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].CreatedAt.After(out[j].CreatedAt.Time)
	})
	return out, nil
}

func (f *fakeVehicleStore) FindByID(_ context.Context, id string, onlyAvailable bool) (models.Vehicle, error) {
	v, ok := f.vehicles[id]
	if !ok || (onlyAvailable && !v.Available) {
		return models.Vehicle{}, mongo.ErrNoDocuments
	}
	return v, nil
}

func (f *fakeVehicleStore) Insert(_ context.Context, vehicle models.Vehicle) error {
	f.vehicles[vehicle.ID] = vehicle
	return nil
}

func (f *fakeVehicleStore) UpdateFields(_ context.Context, id string, fields map[string]any) (models.Vehicle, error) {
	v, ok := f.vehicles[id]
	if !ok {
		return models.Vehicle{}, mongo.ErrNoDocuments
	}
	for key, value := range fields {
		switch key {
		case "name":
			v.Name = value.(string)
		case "year":
			v.Year = value.(string)
		case "brand":
			v.Brand = value.(string)
		case "body_type":
			v.BodyType = value.(string)
		case "engine":
			v.Engine = value.(string)
		case "fuel":
			v.Fuel = value.(string)
		case "transmission":
			v.Transmission = value.(string)
		case "description":
			v.Description = value.(models.Description)
		case "images":
			v.Images = value.([]string)
		case "cover_image":
			v.CoverImage = value.(string)
		case "available":
			v.Available = value.(bool)
		case "updated_at":
			v.UpdatedAt = value.(models.Timestamp)
		}
	}
	f.vehicles[id] = v
	return v, nil
}

func (f *fakeVehicleStore) Delete(_ context.Context, id string) (bool, error) {
	if _, ok := f.vehicles[id]; !ok {
		return false, nil
	}
	delete(f.vehicles, id)
	return true, nil
}

type fakeContactStore struct {
	messages  []models.ContactMessage
	insertErr error
}

func (f *fakeContactStore) Insert(_ context.Context, msg models.ContactMessage) error {
	if f.insertErr != nil {
		return f.insertErr
	}
	f.messages = append(f.messages, msg)
	return nil
}

func (f *fakeContactStore) FindAll(_ context.Context) ([]models.ContactMessage, error) {
	out := append([]models.ContactMessage{}, f.messages...)
	sort.Slice(out, func(i, j int) bool {
		return out[i].CreatedAt.After(out[j].CreatedAt.Time)
	})
	return out, nil
}

type fakeStatusStore struct {
	checks []models.StatusCheck
}

func (f *fakeStatusStore) Insert(_ context.Context, check models.StatusCheck) error {
	f.checks = append(f.checks, check)
	return nil
}

func (f *fakeStatusStore) FindAll(_ context.Context) ([]models.StatusCheck, error) {
	out := append([]models.StatusCheck{}, f.checks...)
	sort.Slice(out, func(i, j int) bool {
		return out[i].Timestamp.After(out[j].Timestamp.Time)
	})
	return out, nil
}

// failingMailer always errors; the contact pipeline must shrug it off.
type failingMailer struct{}

func (failingMailer) SendContactNotification(context.Context, models.ContactMessage) error {
	return context.DeadlineExceeded
}
