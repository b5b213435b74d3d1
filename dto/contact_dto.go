package dto

// ContactMessageCreate is the public contact-form payload. The email must
// be syntactically valid before anything is written to the store.
type ContactMessageCreate struct {
	Name    string  `json:"name" binding:"required"`
	Email   string  `json:"email" binding:"required,email"`
	Phone   *string `json:"phone"`
	Message string  `json:"message" binding:"required"`
}
