package dto

import (
	"hotel/internal/domains/roomtype/model"
	"hotel/shared"
	gDto "hotel/shared/dto"
)

type RoomTypeResponse struct {
	ID           string `json:"id"`
	HotelID      string `json:"hotel_id"`
	Name         string `json:"name"`
	MaxGuests    int    `json:"max_guests"`
	Quantity     int    `json:"quantity"`
	Availability bool   `json:"availability"`
	Description  string `json:"description"`
	gDto.Metadata
}

func (r *RoomTypeResponse) FromModel(roomType model.RoomType) {
	r.ID = roomType.ID
	r.HotelID = roomType.HotelID
	r.Name = roomType.Name
	r.MaxGuests = roomType.MaxGuests
	r.Quantity = roomType.Quantity
	r.Availability = roomType.Availability
	r.Description = roomType.Description
	r.Metadata.FromModel(roomType.Metadata)
}

type GetRoomTypesResponse struct {
	RoomTypes []RoomTypeResponse `json:"room_types"`
	TotalPage int                `json:"total_page"`
	TotalData int                `json:"total_data"`
}

func (r *GetRoomTypesResponse) FromModels(models []model.RoomType, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.RoomTypes = make([]RoomTypeResponse, len(models))
	for i, mod := range models {
		r.RoomTypes[i].FromModel(mod)
	}
}

// ByHotel selects the room types of one hotel.
func ByHotel(hotelID string) gDto.FilterGroup {
	return gDto.FilterGroup{
		Filters: []any{
			gDto.Filter{
				Field:    model.FieldHotelID,
				Value:    hotelID,
				Operator: gDto.FilterOperatorEq,
				Table:    model.TableName,
			},
		},
	}
}
