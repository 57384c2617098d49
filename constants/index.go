package constants

// Reservation statuses reported by the remote API. The server may define
// more; anything outside COMPLETED/CANCELED counts as an active stay.
const (
	RESERVATION_PENDING   = "pending"
	RESERVATION_COMPLETED = "completed"
	RESERVATION_CANCELED  = "canceled"
)

// Room availability statuses.
const (
	ROOM_AVAILABLE = "available"
	ROOM_BOOKED    = "booked"
)

// Payment methods offered on the reservation form.
const (
	PAYMENT_MANUAL   = "manual"
	PAYMENT_MIDTRANS = "midtrans"
)

const (
	MISSING_LOGIN_INPUT  = "Email and password are required"
	LOGIN_FAILED         = "Login failed. Please try again"
	LOGIN_SUCCESS        = "Login successful"
	REGISTER_FAILED      = "Registration failed. Please try again"
	REGISTER_SUCCESS     = "Registration successful"
	LOGOUT_SUCCESS       = "Successfully logged out"
	LOGIN_REQUIRED       = "Please login first"
	ERROR_INTERNAL_ERROR = "Internal server error"
	UPSTREAM_UNREACHABLE = "Hotel service is unreachable. Please try again later"

	ROOM_NOT_FOUND            = "Room not found or an error occurred while fetching data"
	ROOM_ALREADY_BOOKED       = "Room is already booked"
	ACTIVE_RESERVATION_EXISTS = "You have an active reservation. Complete it first"
	ROOM_ALREADY_SELECTED     = "This room is already selected for booking"

	NO_ROOM_SELECTED     = "No room selected"
	RESERVATION_CREATED  = "Reservation created successfully"
	RESERVATION_FAILED   = "Failed to create reservation"
	INTENT_DELETED       = "Reservation data has been deleted"
	MIDTRANS_UNAVAILABLE = "Midtrans payment is not available yet"

	RESERVATION_NOT_FOUND    = "Reservation not found"
	CANCEL_SUCCESS           = "Reservation canceled successfully"
	CANCEL_FAILED            = "Failed to cancel reservation"
	RATING_THANKS            = "Thank you for your rating"
	RATING_FAILED            = "Failed to submit rating"
	RATING_ALREADY_GIVEN     = "You have already rated this reservation"
	RATING_NOT_COMPLETED     = "Only completed stays can be rated"
	DATA_INPUT_IS_NOT_NUMBER = "Input must be a number"
)
