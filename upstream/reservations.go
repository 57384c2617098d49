package upstream

import (
	"bytes"
	"context"
	"fmt"
	"mime/multipart"
	"net/http"

	"hotel_gateway/model"
)

func (c *Client) HistoryReservations(ctx context.Context, token string) ([]model.Reservation, error) {
	var resp struct {
		Reservations []model.Reservation `json:"reservations"`
	}
	if err := c.getJSON(ctx, "/history-reservation", token, &resp); err != nil {
		return nil, err
	}
	return resp.Reservations, nil
}

func (c *Client) CancelReservation(ctx context.Context, token string, reservationID uint) error {
	return c.postJSON(ctx, fmt.Sprintf("/cancel-reservation/%d", reservationID), token, nil, nil)
}

func (c *Client) CreateRating(ctx context.Context, token string, reservationID uint, input model.RatingInput) error {
	return c.postJSON(ctx, fmt.Sprintf("/create-rating/%d", reservationID), token, input, nil)
}

// ProofFile is an optional proof-of-payment image forwarded verbatim.
type ProofFile struct {
	Filename string
	Content  []byte
}

// CreateReservationRequest is the multipart body of the create call.
type CreateReservationRequest struct {
	RoomID        uint
	CheckInDate   string
	CheckOutDate  string
	PaymentMethod string
	PaymentStatus bool
	Proof         *ProofFile
}

func (c *Client) CreateReservation(ctx context.Context, token string, input CreateReservationRequest) error {
	body := new(bytes.Buffer)
	writer := multipart.NewWriter(body)

	_ = writer.WriteField("room_id", fmt.Sprintf("%d", input.RoomID))
	_ = writer.WriteField("check_in_date", input.CheckInDate)
	_ = writer.WriteField("check_out_date", input.CheckOutDate)
	_ = writer.WriteField("payment_method", input.PaymentMethod)
	paymentStatus := "0"
	if input.PaymentStatus {
		paymentStatus = "1"
	}
	_ = writer.WriteField("payment_status", paymentStatus)

	if input.Proof != nil {
		part, err := writer.CreateFormFile("proof", input.Proof.Filename)
		if err != nil {
			return err
		}
		if _, err := part.Write(input.Proof.Content); err != nil {
			return err
		}
	}

	if err := writer.Close(); err != nil {
		return err
	}

	return c.do(ctx, http.MethodPost, "/create-reservation", token, body, writer.FormDataContentType(), nil)
}
