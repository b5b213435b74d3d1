package models

// Description holds the bilingual vehicle description shown on the site.
type Description struct {
	Es string `json:"es" bson:"es"`
	En string `json:"en" bson:"en"`
}

// Vehicle represents a car in the dealership inventory.
//
// The id field is an application-assigned UUID, separate from the store's
// internal primary key, and never changes once assigned. Vehicles with
// available=false stay in the store but are hidden from the public catalog.
type Vehicle struct {
	ID           string      `json:"id" bson:"id"`
	Name         string      `json:"name" bson:"name"`
	Year         string      `json:"year" bson:"year"`
	Brand        string      `json:"brand" bson:"brand"`
	BodyType     string      `json:"bodyType" bson:"body_type"`
	Engine       string      `json:"engine" bson:"engine"`
	Fuel         string      `json:"fuel" bson:"fuel"`
	Transmission string      `json:"transmission" bson:"transmission"`
	Description  Description `json:"description" bson:"description"`
	Images       []string    `json:"images" bson:"images"`
	CoverImage   string      `json:"cover_image" bson:"cover_image"`
	Available    bool        `json:"available" bson:"available"`
	CreatedAt    Timestamp   `json:"created_at" bson:"created_at"`
	UpdatedAt    Timestamp   `json:"updated_at" bson:"updated_at"`
}
