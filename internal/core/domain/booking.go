package domain

import "time"

// DateFormat is the calendar-date layout used on bookings.
const DateFormat = "2006-01-02"

// ReportType is the service tier of a profiling session. It drives the
// fixed price lookup; the amount on a booking is never set independently.
type ReportType string

const (
	ReportChild ReportType = "Child"
	ReportAdult ReportType = "Adult"
)

// priceTable maps each report type to its fixed price in INR.
var priceTable = map[ReportType]int{
	ReportChild: 3000,
	ReportAdult: 2000,
}

// PriceFor returns the fixed amount for a report type. The second return is
// false for unrecognised report types.
func PriceFor(rt ReportType) (int, bool) {
	amount, ok := priceTable[rt]
	return amount, ok
}

// BookingStatus represents the lifecycle state of a booking.
type BookingStatus string

const (
	// BookingPending means the session is reserved but payment has not been
	// confirmed out-of-band yet.
	BookingPending   BookingStatus = "pending"
	BookingConfirmed BookingStatus = "confirmed"
	// BookingCancelled is reserved for a future cancellation flow; no
	// transition into it exists today.
	BookingCancelled BookingStatus = "cancelled"
)

// PaymentStatus tracks whether the out-of-band payment has been confirmed.
type PaymentStatus string

const (
	PaymentUnpaid PaymentStatus = "unpaid"
	PaymentPaid   PaymentStatus = "paid"
)

// TimeSlots is the fixed set of bookable slot labels for any date.
var TimeSlots = []string{
	"10:00 AM", "11:00 AM", "02:00 PM", "03:00 PM", "04:00 PM", "05:00 PM",
}

// ValidSlot reports whether slot is one of the bookable time labels.
func ValidSlot(slot string) bool {
	for _, s := range TimeSlots {
		if s == slot {
			return true
		}
	}
	return false
}

// Booking is an appointment record in the append-only ledger.
type Booking struct {
	ID            string        `json:"id"`
	UserID        string        `json:"user_id"`
	Date          string        `json:"date"` // calendar date, DateFormat layout
	Time          string        `json:"time"`
	ReportType    ReportType    `json:"report_type"`
	Amount        int           `json:"amount"`
	Status        BookingStatus `json:"status"`
	PaymentStatus PaymentStatus `json:"payment_status"`
	CreatedAt     time.Time     `json:"created_at"`
}
