package utils

import (
	"bytes"
	"html/template"
	"log"
	"strconv"

	"hotel_gateway/config"

	"gopkg.in/gomail.v2"
)

// ReservationConfirmationData feeds the confirmation email template.
type ReservationConfirmationData struct {
	GuestName     string
	RoomName      string
	CheckInDate   string
	CheckOutDate  string
	TotalPrice    float64
	PaymentMethod string
	ProfileLink   string
}

// SendReservationConfirmationEmail mails a booking confirmation (async).
// A missing SMTP_HOST disables mailing entirely; failures only log.
func SendReservationConfirmationEmail(to string, data ReservationConfirmationData) {
	host := config.Config("SMTP_HOST")
	if host == "" || to == "" {
		return
	}

	go func() {
		tmpl, err := template.ParseFiles("templates/reservation_confirmation.html")
		if err != nil {
			log.Printf("email: load template failed: %v", err)
			return
		}

		var body bytes.Buffer
		if err := tmpl.Execute(&body, data); err != nil {
			log.Printf("email: render template failed: %v", err)
			return
		}

		port, _ := strconv.Atoi(config.Config("SMTP_PORT"))
		username := config.Config("SMTP_USERNAME")
		password := config.Config("SMTP_PASSWORD")
		from := config.Config("SMTP_FROM")

		m := gomail.NewMessage()
		m.SetHeader("From", from)
		m.SetHeader("To", to)
		m.SetHeader("Subject", "Your reservation is confirmed")
		m.SetBody("text/html", body.String())

		d := gomail.NewDialer(host, port, username, password)
		if err := d.DialAndSend(m); err != nil {
			log.Printf("email: send failed: %v", err)
		}
	}()
}
