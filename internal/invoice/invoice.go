// Package invoice renders the fixed-layout invoice document for a booking.
// The booking ledger guarantees amount, report type and date are populated
// and consistent on any booking it returns.
package invoice

import (
	"crypto/rand"
	"fmt"
	"strings"
	"time"

	"github.com/sristi/brainark-core/internal/core/domain"
)

// Seller is the fixed issuing-company block.
type Seller struct {
	Name    string `json:"name"`
	Address string `json:"address"`
	City    string `json:"city"`
	GSTIN   string `json:"gstin"`
}

var seller = Seller{
	Name:    "Sristi BrainArk",
	Address: "123, Gandhi Puram",
	City:    "Coimbatore, TN, India",
	GSTIN:   "33ABCDE1234F1Z5",
}

// BillTo identifies the paying customer.
type BillTo struct {
	Name        string `json:"name"`
	Email       string `json:"email"`
	StudentName string `json:"student_name,omitempty"`
}

// Line is a single invoice line item.
type Line struct {
	Description string `json:"description"`
	ReportType  string `json:"report_type"`
	Date        string `json:"date"`
	Amount      int    `json:"amount"`
}

// Invoice is the structured document handed to presentation for rendering
// or download.
type Invoice struct {
	Number        string    `json:"number"`
	IssuedAt      time.Time `json:"issued_at"`
	Seller        Seller    `json:"seller"`
	BillTo        BillTo    `json:"bill_to"`
	Lines         []Line    `json:"lines"`
	Total         int       `json:"total"`
	PaymentStatus string    `json:"payment_status"`
}

// Generate builds the invoice for a booking and its owning user.
func Generate(b *domain.Booking, u *domain.User) *Invoice {
	bill := BillTo{Name: u.Name, Email: u.Email}
	if u.Profile != nil {
		bill.StudentName = u.Profile.StudentName
	}

	line := Line{
		Description: "GBP Profiling Session",
		ReportType:  string(b.ReportType),
		Date:        b.Date,
		Amount:      b.Amount,
	}

	return &Invoice{
		Number:        generateNumber(),
		IssuedAt:      time.Now().UTC(),
		Seller:        seller,
		BillTo:        bill,
		Lines:         []Line{line},
		Total:         b.Amount,
		PaymentStatus: string(b.PaymentStatus),
	}
}

// Render produces the fixed-layout plain-text document.
func (inv *Invoice) Render() string {
	var sb strings.Builder

	fmt.Fprintf(&sb, "INVOICE %s\n", inv.Number)
	fmt.Fprintf(&sb, "Issued: %s\n\n", inv.IssuedAt.Format("02 Jan 2006"))
	fmt.Fprintf(&sb, "%s\n%s\n%s\nGSTIN: %s\n\n", inv.Seller.Name, inv.Seller.Address, inv.Seller.City, inv.Seller.GSTIN)

	fmt.Fprintf(&sb, "Bill To: %s <%s>\n", inv.BillTo.Name, inv.BillTo.Email)
	if inv.BillTo.StudentName != "" {
		fmt.Fprintf(&sb, "Student: %s\n", inv.BillTo.StudentName)
	}
	sb.WriteString("\n")

	fmt.Fprintf(&sb, "%-28s %-8s %-12s %10s\n", "Description", "Type", "Date", "Amount")
	for _, l := range inv.Lines {
		fmt.Fprintf(&sb, "%-28s %-8s %-12s %10d\n", l.Description, l.ReportType, l.Date, l.Amount)
	}
	sb.WriteString("\n")

	fmt.Fprintf(&sb, "Total (INR): %d\n", inv.Total)
	fmt.Fprintf(&sb, "Payment: %s\n", inv.PaymentStatus)

	return sb.String()
}

// generateNumber returns an invoice number in the format INV-XXXXXXXX.
func generateNumber() string {
	b := make([]byte, 4)
	if _, err := rand.Read(b); err != nil {
		// fallback: use current nanoseconds
		return fmt.Sprintf("INV-%08X", time.Now().UnixNano()&0xFFFFFFFF)
	}
	return fmt.Sprintf("INV-%08X", b)
}
