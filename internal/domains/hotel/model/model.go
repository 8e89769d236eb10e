package model

import "hotel/shared/model"

const (
	TableName  = "hotels"
	EntityName = "hotel"

	FieldID      = "id"
	FieldOwnerID = "owner_id"
	FieldName    = "name"
	FieldStatus  = "status"
)

type Status int16

const (
	StatusDisabled Status = 0
	StatusActive   Status = 1
)

type Hotel struct {
	ID      string `db:"id"`
	OwnerID string `db:"owner_id"`
	Name    string `db:"name"`
	Address string `db:"address"`
	Status  Status `db:"status"`
	model.Metadata
}

func (h Hotel) IsActive() bool {
	return h.Status == StatusActive
}

// IsOwnedBy reports whether userID manages the hotel.
func (h Hotel) IsOwnedBy(userID string) bool {
	return userID != "" && h.OwnerID == userID
}

func (s Status) String() string {
	if s == StatusActive {
		return "active"
	}

	return "disabled"
}
