package models

// ContactMessage is a contact-form submission. Immutable once stored; there
// is no update or delete path for it.
type ContactMessage struct {
	ID        string    `json:"id" bson:"id"`
	Name      string    `json:"name" bson:"name"`
	Email     string    `json:"email" bson:"email"`
	Phone     *string   `json:"phone" bson:"phone"`
	Message   string    `json:"message" bson:"message"`
	CreatedAt Timestamp `json:"created_at" bson:"created_at"`
}
