package dto

import (
	inventoryDto "hotel/internal/domains/inventory/model/dto"
	pricingDto "hotel/internal/domains/pricing/model/dto"
	"time"
)

type SyncHotelsRequest struct {
	HotelIDs  []string `json:"hotel_ids"  validate:"required,min=1,dive,required,uuid"`
	StartDate string   `json:"start_date" validate:"required,date"`
	EndDate   string   `json:"end_date"   validate:"required,date"`
}

type RoomTypeAvailability struct {
	RoomTypeID string                     `json:"room_type_id"`
	Name       string                     `json:"name"`
	Quantity   int                        `json:"quantity"`
	Days       []inventoryDto.CalendarDay `json:"days"`
}

type RoomTypePricing struct {
	RoomTypeID string                     `json:"room_type_id"`
	Name       string                     `json:"name"`
	Configured bool                       `json:"configured"`
	Days       []pricingDto.PriceResponse `json:"days,omitempty"`
	Min        int64                      `json:"min_price"`
	Max        int64                      `json:"max_price"`
	Average    int64                      `json:"average_price"`
}

// HotelSyncResult is one hotel's outcome. Error is set exactly when Success is false.
type HotelSyncResult struct {
	HotelID      string                 `json:"hotel_id"`
	Success      bool                   `json:"success"`
	Error        *string                `json:"error,omitempty"`
	HotelName    string                 `json:"hotel_name,omitempty"`
	StartDate    string                 `json:"start_date,omitempty"`
	EndDate      string                 `json:"end_date,omitempty"`
	Availability []RoomTypeAvailability `json:"availability,omitempty"`
	Pricing      []RoomTypePricing      `json:"pricing,omitempty"`
	ExportURL    *string                `json:"export_url,omitempty"`
	SyncedAt     *time.Time             `json:"synced_at,omitempty"`
}

// Fail records err in the result and drops any partial data.
func (r *HotelSyncResult) Fail(err error) {
	msg := err.Error()

	*r = HotelSyncResult{HotelID: r.HotelID, Error: &msg}
}

type SyncStatusResponse struct {
	HotelID           string     `json:"hotel_id"`
	LastSync          *time.Time `json:"last_sync"`
	Status            string     `json:"status"`
	RoomTypes         int        `json:"room_types_count"`
	PricingConfigured bool       `json:"pricing_configured"`
}

type RoomStatusUpdate struct {
	RoomID               string  `json:"room_id"                validate:"required,uuid"`
	Status               *int16  `json:"status"                 validate:"required,min=0,max=2"`
	EstimatedAvailableAt *string `json:"estimated_available_at" validate:"omitempty,date"`
}

type PricingUpdate struct {
	RoomTypeID string `json:"room_type_id" validate:"required,uuid"`
	Price      int64  `json:"price"        validate:"required,min=0"`
}

// IncomingSyncRequest is pushed by a channel manager over HTTP or Kafka.
type IncomingSyncRequest struct {
	HotelID             string             `json:"hotel_id"             validate:"required,uuid"`
	AvailabilityUpdates []RoomStatusUpdate `json:"availability_updates" validate:"omitempty,dive"`
	PricingUpdates      []PricingUpdate    `json:"pricing_updates"      validate:"omitempty,dive"`
}

type IncomingSyncResponse struct {
	Processed bool      `json:"processed"`
	Records   int       `json:"records"`
	Timestamp time.Time `json:"timestamp"`
}

// SyncEvent is published on the outgoing sync topic for every hotel synced.
type SyncEvent struct {
	HotelID   string    `json:"hotel_id"`
	StartDate string    `json:"start_date"`
	EndDate   string    `json:"end_date"`
	RoomTypes int       `json:"room_types"`
	ExportURL *string   `json:"export_url,omitempty"`
	SyncedAt  time.Time `json:"synced_at"`
}
