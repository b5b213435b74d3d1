package models

// StatusCheck is a liveness record written through the public status
// endpoint. It carries no business meaning.
type StatusCheck struct {
	ID         string    `json:"id" bson:"id"`
	ClientName string    `json:"client_name" bson:"client_name"`
	Timestamp  Timestamp `json:"timestamp" bson:"timestamp"`
}
