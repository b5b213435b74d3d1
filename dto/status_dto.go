package dto

// StatusCheckCreate is the public payload for appending a status check.
type StatusCheckCreate struct {
	ClientName string `json:"client_name" binding:"required"`
}
