// Package handoff builds the structured payload a collaborator formats into
// a prefilled message to the fixed payment contact channel. Delivery and
// confirmation of the message are not tracked here.
package handoff

import (
	"fmt"
	"net/url"

	"github.com/sristi/brainark-core/internal/core/domain"
)

// contactNumber is the fixed WhatsApp contact payments are confirmed
// through.
const contactNumber = "919876543210"

// Payload carries everything the messaging collaborator needs.
type Payload struct {
	UserName   string `json:"user_name"`
	ReportType string `json:"report_type"`
	Amount     int    `json:"amount"`
	Date       string `json:"date"`
	Time       string `json:"time"`
}

// Build assembles the payload from a booking and its owning user.
func Build(b *domain.Booking, u *domain.User) Payload {
	return Payload{
		UserName:   u.Name,
		ReportType: string(b.ReportType),
		Amount:     b.Amount,
		Date:       b.Date,
		Time:       b.Time,
	}
}

// Message is the prefilled text for the contact channel.
func (p Payload) Message() string {
	return fmt.Sprintf(
		"Hi, I am %s. I have booked a %s GBP session on %s at %s and would like to complete the payment of INR %d.",
		p.UserName, p.ReportType, p.Date, p.Time, p.Amount,
	)
}

// Link is the wa.me deep link carrying the prefilled message.
func (p Payload) Link() string {
	return "https://wa.me/" + contactNumber + "?text=" + url.QueryEscape(p.Message())
}
