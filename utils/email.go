package utils

import (
	"bytes"
	"html/template"
	"log"

	"gopkg.in/gomail.v2"

	"lalibela_manager/config"
)

// ReservationEmailData feeds the confirmation template.
type ReservationEmailData struct {
	Name          string
	ReferenceCode string
	Date          string
	Time          string
	Guests        string
	TableZone     string
	TableId       string
}

const reservationEmailTemplate = `
<div style="font-family: Georgia, serif; max-width: 560px; margin: 0 auto;">
  <h2 style="color: #7f1d1d;">Selam, {{.Name}} — your table is booked</h2>
  <p>We look forward to welcoming you to Lalibela.</p>
  <table style="width: 100%; border-collapse: collapse;">
    <tr><td style="padding: 6px 0; color: #64748b;">Reference</td><td><strong>{{.ReferenceCode}}</strong></td></tr>
    <tr><td style="padding: 6px 0; color: #64748b;">Date</td><td>{{.Date}}</td></tr>
    <tr><td style="padding: 6px 0; color: #64748b;">Arrival</td><td>{{.Time}}</td></tr>
    <tr><td style="padding: 6px 0; color: #64748b;">Guests</td><td>{{.Guests}}</td></tr>
    <tr><td style="padding: 6px 0; color: #64748b;">Room</td><td>{{.TableZone}} — Table {{.TableId}}</td></tr>
  </table>
  <p style="color: #64748b; font-size: 13px;">Show the reference code at the door for check-in.</p>
</div>`

// SendReservationConfirmationEmail mails the booking summary (async so the
// create response is not delayed). A missing SMTP config disables it.
func SendReservationConfirmationEmail(to string, data ReservationEmailData) {
	host := config.Config("SMTP_HOST")
	if host == "" || to == "" {
		return
	}

	go func() {
		tmpl, err := template.New("reservation_confirmation").Parse(reservationEmailTemplate)
		if err != nil {
			log.Printf("Email template parse error: %v", err)
			return
		}

		var body bytes.Buffer
		if err := tmpl.Execute(&body, data); err != nil {
			log.Printf("Email template render error: %v", err)
			return
		}

		port := config.ConfigInt("SMTP_PORT", 587)
		username := config.Config("SMTP_USERNAME")
		password := config.Config("SMTP_PASSWORD")
		from := config.Config("SMTP_FROM")

		m := gomail.NewMessage()
		m.SetHeader("From", from)
		m.SetHeader("To", to)
		m.SetHeader("Subject", "Lalibela reservation "+data.ReferenceCode)
		m.SetBody("text/html", body.String())

		d := gomail.NewDialer(host, port, username, password)
		if err := d.DialAndSend(m); err != nil {
			log.Printf("Confirmation email to %s failed: %v", to, err)
		}
	}()
}
