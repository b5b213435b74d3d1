package dto

import (
	"github.com/jrautos/jrautos-api/models"
)

// VehicleCreate is the admin payload for adding a vehicle. The id,
// availability and timestamps are server-assigned and not accepted here.
type VehicleCreate struct {
	Name         string             `json:"name" binding:"required"`
	Year         string             `json:"year" binding:"required"`
	Brand        string             `json:"brand" binding:"required"`
	BodyType     string             `json:"bodyType" binding:"required"`
	Engine       string             `json:"engine" binding:"required"`
	Fuel         string             `json:"fuel" binding:"required"`
	Transmission string             `json:"transmission" binding:"required"`
	Description  models.Description `json:"description"`
	Images       []string           `json:"images"`
	CoverImage   string             `json:"cover_image"`
}

// VehicleUpdate is the admin payload for a partial update. Every field is
// optional; only fields present and non-null in the request overwrite the
// stored value, so an omitted field can never clear anything.
type VehicleUpdate struct {
	Name         *string             `json:"name"`
	Year         *string             `json:"year"`
	Brand        *string             `json:"brand"`
	BodyType     *string             `json:"bodyType"`
	Engine       *string             `json:"engine"`
	Fuel         *string             `json:"fuel"`
	Transmission *string             `json:"transmission"`
	Description  *models.Description `json:"description"`
	Images       *[]string           `json:"images"`
	CoverImage   *string             `json:"cover_image"`
	Available    *bool               `json:"available"`
}
