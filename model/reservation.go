package model

import "hotel_gateway/utils"

type Reservation struct {
	ID                uint             `json:"id"`
	UserID            uint             `json:"user_id"`
	RoomID            uint             `json:"room_id"`
	CheckInDate       utils.CustomDate `json:"check_in_date"`
	CheckOutDate      utils.CustomDate `json:"check_out_date"`
	TotalPrice        float64          `json:"total_price"`
	ReservationStatus string           `json:"reservation_status"` // pending, completed, canceled, ...
	ReservationCode   string           `json:"reservation_code"`
	Room              *Room            `json:"room,omitempty"`
	Payment           *Payment         `json:"payment,omitempty"`
}

type Payment struct {
	ReservationID uint    `json:"reservation_id"`
	PaymentMethod string  `json:"payment_method"` // manual | midtrans
	Amount        float64 `json:"amount"`
	PaymentStatus bool    `json:"payment_status"`
	Proof         string  `json:"proof,omitempty"`
}

// BookingIntent is the one room a session intends to book, persisted under
// "reservation:<sessionId>". Absence means no pending intent.
type BookingIntent struct {
	RoomID   uint   `json:"room_id"`
	RoomSlug string `json:"room_slug"`
}

type CreateReservationInput struct {
	CheckInDate   string `validate:"required" json:"check_in_date"`
	CheckOutDate  string `validate:"required" json:"check_out_date"`
	PaymentMethod string `validate:"required,oneof=manual midtrans" json:"payment_method"`
	PaymentStatus bool   `json:"payment_status"`
}

type RatingInput struct {
	Rating     int    `validate:"required,min=1,max=5" json:"rating"`
	ReviewText string `validate:"required" json:"review_text"`
}

// ReservationView decorates a reservation with the transitions the caller
// may request from it plus a QR of the reservation code.
type ReservationView struct {
	ID                uint             `json:"id"`
	UserID            uint             `json:"user_id"`
	RoomID            uint             `json:"room_id"`
	CheckInDate       utils.CustomDate `json:"check_in_date"`
	CheckOutDate      utils.CustomDate `json:"check_out_date"`
	TotalPrice        float64          `json:"total_price"`
	ReservationStatus string           `json:"reservation_status"`
	ReservationCode   string           `json:"reservation_code"`
	Room              *Room            `json:"room,omitempty"`
	Payment           *Payment         `json:"payment,omitempty"`
	CanCancel         bool             `json:"can_cancel"`
	CanRate           bool             `json:"can_rate"`
	QrCode            string           `json:"qr_code,omitempty"`
}
