package dto

import (
	"hotel/internal/domains/hotel/model"
	gDto "hotel/shared/dto"
	"time"
)

type HotelResponse struct {
	ID      string `json:"id"`
	OwnerID string `json:"owner_id"`
	Name    string `json:"name"`
	Address string `json:"address"`
	Status  string `json:"status"`
	gDto.Metadata
}

func (r *HotelResponse) FromModel(hotel model.Hotel) {
	r.ID = hotel.ID
	r.OwnerID = hotel.OwnerID
	r.Name = hotel.Name
	r.Address = hotel.Address
	r.Status = hotel.Status.String()
	r.Metadata.FromModel(hotel.Metadata)
}

// CascadeResponse reports what a hotel enable or disable touched.
type CascadeResponse struct {
	HotelID       string `json:"hotel_id"`
	Status        string `json:"status"`
	RoomTypes     int    `json:"room_types"`
	RoomsAffected int64  `json:"rooms_affected"`
}

// HotelEvent is published after a cascade commits.
type HotelEvent struct {
	HotelID       string    `json:"hotel_id"`
	Status        string    `json:"status"`
	RoomTypeIDs   []string  `json:"room_type_ids"`
	RoomsAffected int64     `json:"rooms_affected"`
	ActedBy       string    `json:"acted_by"`
	OccurredAt    time.Time `json:"occurred_at"`
}
