package handler_test

import (
	"fmt"
	"net/http"
	"strings"
	"testing"

	"hotel_gateway/constants"
	"hotel_gateway/model"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func completedReservation(id, userID uint, reviews ...model.Review) model.Reservation {
	return model.Reservation{
		ID:                id,
		UserID:            userID,
		ReservationStatus: constants.RESERVATION_COMPLETED,
		ReservationCode:   "RSV-0042",
		Room: &model.Room{
			ID:       7,
			RoomSlug: "deluxe-king",
			ImageUrl: "rooms/deluxe.jpg",
			Reviews:  reviews,
		},
	}
}

func TestGetHistoryDecoratesReservations(t *testing.T) {
	stub := &upstreamStub{
		reservations: []model.Reservation{
			{ID: 1, UserID: 3, ReservationStatus: constants.RESERVATION_PENDING, ReservationCode: "RSV-0001"},
			completedReservation(2, 3),
			completedReservation(3, 3, model.Review{ReservationID: 3, UserID: 3, Rating: 5}),
			{ID: 4, UserID: 3, ReservationStatus: constants.RESERVATION_CANCELED},
		},
	}
	app, store := newTestApp(t, stub)
	_, bearer := signIn(t, store)

	resp := doRequest(t, app, http.MethodGet, "/api/v1/history", bearer, nil, "")
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	data := dataOf(t, decodeBody(t, resp))
	user := data["user"].(map[string]any)
	assert.Equal(t, "Alma", user["name"])

	reservations := data["reservations"].([]any)
	require.Len(t, reservations, 4)

	pending := reservations[0].(map[string]any)
	assert.Equal(t, true, pending["can_cancel"])
	assert.Equal(t, false, pending["can_rate"])
	assert.True(t, strings.HasPrefix(pending["qr_code"].(string), "data:image/png;base64,"))

	unrated := reservations[1].(map[string]any)
	assert.Equal(t, false, unrated["can_cancel"])
	assert.Equal(t, true, unrated["can_rate"])
	room := unrated["room"].(map[string]any)
	assert.Equal(t, "https://cdn.example.com/rooms/deluxe.jpg", room["image_url"])

	rated := reservations[2].(map[string]any)
	assert.Equal(t, false, rated["can_rate"])

	canceled := reservations[3].(map[string]any)
	assert.Equal(t, false, canceled["can_cancel"])
	assert.Equal(t, false, canceled["can_rate"])
}

func TestCancelReservationForwards(t *testing.T) {
	stub := &upstreamStub{}
	app, store := newTestApp(t, stub)
	_, bearer := signIn(t, store)

	resp := doRequest(t, app, http.MethodPost, "/api/v1/history/42/cancel", bearer, nil, "")
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	data := dataOf(t, decodeBody(t, resp))
	assert.Equal(t, constants.CANCEL_SUCCESS, data["message"])
	assert.Equal(t, true, data["refresh"])

	_, _, cancel, _ := stub.counts()
	assert.Equal(t, 1, cancel)
}

func TestCancelReservationUpstreamRejection(t *testing.T) {
	stub := &upstreamStub{cancelStatus: http.StatusUnprocessableEntity}
	app, store := newTestApp(t, stub)
	_, bearer := signIn(t, store)

	resp := doRequest(t, app, http.MethodPost, "/api/v1/history/42/cancel", bearer, nil, "")
	require.Equal(t, fiber.StatusUnprocessableEntity, resp.StatusCode)
	assert.Equal(t, constants.CANCEL_FAILED, decodeBody(t, resp)["message"])
}

func TestCancelReservationBadId(t *testing.T) {
	stub := &upstreamStub{}
	app, store := newTestApp(t, stub)
	_, bearer := signIn(t, store)

	resp := doRequest(t, app, http.MethodPost, "/api/v1/history/abc/cancel", bearer, nil, "")
	require.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, constants.DATA_INPUT_IS_NOT_NUMBER, decodeBody(t, resp)["message"])

	_, _, cancel, _ := stub.counts()
	assert.Zero(t, cancel)
}

func ratingBody(rating int, text string) *strings.Reader {
	return strings.NewReader(fmt.Sprintf(`{"rating": %d, "review_text": %q}`, rating, text))
}

func TestCreateRatingSuccess(t *testing.T) {
	stub := &upstreamStub{reservations: []model.Reservation{completedReservation(42, 3)}}
	app, store := newTestApp(t, stub)
	_, bearer := signIn(t, store)

	resp := doRequest(t, app, http.MethodPost, "/api/v1/history/42/rating", bearer, ratingBody(5, "Great stay"), fiber.MIMEApplicationJSON)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	data := dataOf(t, decodeBody(t, resp))
	assert.Equal(t, constants.RATING_THANKS, data["message"])
	assert.Equal(t, true, data["refresh"])

	_, _, _, rating := stub.counts()
	assert.Equal(t, 1, rating)
}

func TestCreateRatingDuplicate(t *testing.T) {
	stub := &upstreamStub{
		reservations: []model.Reservation{
			completedReservation(42, 3, model.Review{ReservationID: 42, UserID: 3, Rating: 4}),
		},
	}
	app, store := newTestApp(t, stub)
	_, bearer := signIn(t, store)

	resp := doRequest(t, app, http.MethodPost, "/api/v1/history/42/rating", bearer, ratingBody(5, "Again"), fiber.MIMEApplicationJSON)
	require.Equal(t, fiber.StatusConflict, resp.StatusCode)
	assert.Equal(t, constants.RATING_ALREADY_GIVEN, decodeBody(t, resp)["message"])

	// The duplicate is rejected before any remote rating call.
	_, _, _, rating := stub.counts()
	assert.Zero(t, rating)
}

func TestCreateRatingNotCompleted(t *testing.T) {
	stub := &upstreamStub{
		reservations: []model.Reservation{
			{ID: 42, UserID: 3, ReservationStatus: constants.RESERVATION_PENDING},
		},
	}
	app, store := newTestApp(t, stub)
	_, bearer := signIn(t, store)

	resp := doRequest(t, app, http.MethodPost, "/api/v1/history/42/rating", bearer, ratingBody(5, "Too soon"), fiber.MIMEApplicationJSON)
	require.Equal(t, fiber.StatusConflict, resp.StatusCode)
	assert.Equal(t, constants.RATING_NOT_COMPLETED, decodeBody(t, resp)["message"])
}

func TestCreateRatingUnknownReservation(t *testing.T) {
	stub := &upstreamStub{}
	app, store := newTestApp(t, stub)
	_, bearer := signIn(t, store)

	resp := doRequest(t, app, http.MethodPost, "/api/v1/history/42/rating", bearer, ratingBody(5, "Ghost"), fiber.MIMEApplicationJSON)
	require.Equal(t, fiber.StatusNotFound, resp.StatusCode)
	assert.Equal(t, constants.RESERVATION_NOT_FOUND, decodeBody(t, resp)["message"])
}

func TestCreateRatingInvalidInput(t *testing.T) {
	stub := &upstreamStub{reservations: []model.Reservation{completedReservation(42, 3)}}
	app, store := newTestApp(t, stub)
	_, bearer := signIn(t, store)

	resp := doRequest(t, app, http.MethodPost, "/api/v1/history/42/rating", bearer, strings.NewReader(`{"rating": 9, "review_text": "x"}`), fiber.MIMEApplicationJSON)
	require.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "rating", decodeBody(t, resp)["keyError"])

	resp = doRequest(t, app, http.MethodPost, "/api/v1/history/42/rating", bearer, strings.NewReader(`{"rating": 4, "review_text": ""}`), fiber.MIMEApplicationJSON)
	require.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "review_text", decodeBody(t, resp)["keyError"])
}
