package model

type Room struct {
	ID            uint           `json:"id"`
	RoomName      string         `json:"room_name"`
	RoomSlug      string         `json:"room_slug"`
	RoomType      string         `json:"room_type"`
	PricePerNight float64        `json:"price_per_night"`
	Capacity      int            `json:"capacity"`
	Description   string         `json:"description"`
	ImageUrl      string         `json:"image_url"`
	Status        string         `json:"status"` // available | booked
	RoomFacilitys []RoomFacility `json:"room_facilitys"`
	Reviews       []Review       `json:"reviews"`
}

type RoomFacility struct {
	ID           uint   `json:"id"`
	RoomID       uint   `json:"room_id"`
	FacilityName string `json:"facility_name"`
}

type Review struct {
	ID            uint   `json:"id"`
	ReservationID uint   `json:"reservation_id"`
	UserID        uint   `json:"user_id"`
	RoomID        uint   `json:"room_id"`
	Rating        int    `json:"rating"`
	ReviewText    string `json:"review_text"`
	User          *User  `json:"user,omitempty"`
}

// RoomView is the listing/detail projection sent to the browser; ImageUrl
// is absolutized against the upstream storage base.
type RoomView struct {
	ID            uint           `json:"id"`
	RoomName      string         `json:"room_name"`
	RoomSlug      string         `json:"room_slug"`
	RoomType      string         `json:"room_type"`
	PricePerNight float64        `json:"price_per_night"`
	Capacity      int            `json:"capacity"`
	Description   string         `json:"description"`
	ImageUrl      string         `json:"image_url"`
	Status        string         `json:"status"`
	RoomFacilitys []RoomFacility `json:"room_facilitys"`
	Reviews       []Review       `json:"reviews"`
}
