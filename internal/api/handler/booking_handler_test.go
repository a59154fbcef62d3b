package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/sristi/brainark-core/internal/core/domain"
	"github.com/sristi/brainark-core/internal/core/ports"
)

func TestBookingHandler_Create(t *testing.T) {
	var got ports.BookSessionInput
	session := &stubSession{
		createBookingFn: func(_ context.Context, in ports.BookSessionInput) (*domain.Booking, error) {
			got = in
			return &domain.Booking{
				ID: "b1", UserID: "u1",
				Date: in.Date, Time: in.Time,
				ReportType: domain.ReportType(in.ReportType), Amount: 3000,
				Status: domain.BookingPending, PaymentStatus: domain.PaymentUnpaid,
			}, nil
		},
	}
	h := NewBookingHandler(session)

	c, rec := newTestContext(http.MethodPost, "/v1/bookings",
		`{"date":"2026-09-14","time":"10:00 AM","report_type":"Child"}`)
	if err := h.Create(c); err != nil {
		t.Fatalf("Create handler: %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", rec.Code, rec.Body.String())
	}
	if got.Date != "2026-09-14" || got.Time != "10:00 AM" || got.ReportType != "Child" {
		t.Fatalf("facade received %+v", got)
	}

	var booking domain.Booking
	if err := json.Unmarshal(rec.Body.Bytes(), &booking); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if booking.Status != domain.BookingPending || booking.Amount != 3000 {
		t.Fatalf("unexpected booking in response: %+v", booking)
	}
}

func TestBookingHandler_Create_BadDate(t *testing.T) {
	h := NewBookingHandler(&stubSession{})

	c, _ := newTestContext(http.MethodPost, "/v1/bookings",
		`{"date":"14-09-2026","time":"10:00 AM","report_type":"Child"}`)
	err := h.Create(c)

	var he *echo.HTTPError
	if !errors.As(err, &he) || he.Code != http.StatusUnprocessableEntity {
		t.Fatalf("expected 422 for a non ISO date, got %v", err)
	}
}

func TestBookingHandler_Create_BadReportType(t *testing.T) {
	h := NewBookingHandler(&stubSession{})

	c, _ := newTestContext(http.MethodPost, "/v1/bookings",
		`{"date":"2026-09-14","time":"10:00 AM","report_type":"Teen"}`)
	err := h.Create(c)

	var he *echo.HTTPError
	if !errors.As(err, &he) || he.Code != http.StatusUnprocessableEntity {
		t.Fatalf("expected 422 for unknown report type, got %v", err)
	}
}

func TestBookingHandler_ListMine(t *testing.T) {
	session := &stubSession{
		myBookingsFn: func(context.Context) ([]*domain.Booking, error) {
			return []*domain.Booking{{ID: "b1"}, {ID: "b2"}}, nil
		},
	}
	h := NewBookingHandler(session)

	c, rec := newTestContext(http.MethodGet, "/v1/bookings", "")
	if err := h.ListMine(c); err != nil {
		t.Fatalf("ListMine handler: %v", err)
	}

	var bookings []domain.Booking
	if err := json.Unmarshal(rec.Body.Bytes(), &bookings); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if len(bookings) != 2 || bookings[0].ID != "b1" {
		t.Fatalf("unexpected listing: %+v", bookings)
	}
}

func TestBookingHandler_Invoice(t *testing.T) {
	session := &stubSession{
		bookingFn: func(_ context.Context, id string) (*domain.Booking, *domain.User, error) {
			if id != "b1" {
				return nil, nil, domain.ErrNotFound
			}
			return &domain.Booking{
					ID: "b1", Date: "2026-09-14", ReportType: domain.ReportChild,
					Amount: 3000, PaymentStatus: domain.PaymentUnpaid,
				},
				&domain.User{ID: "u1", Name: "Rahul Sharma", Email: "rahul@example.com"},
				nil
		},
	}
	h := NewBookingHandler(session)

	c, rec := newTestContext(http.MethodGet, "/v1/bookings/b1/invoice", "")
	c.SetParamNames("id")
	c.SetParamValues("b1")
	if err := h.Invoice(c); err != nil {
		t.Fatalf("Invoice handler: %v", err)
	}

	var inv struct {
		Number string `json:"number"`
		Total  int    `json:"total"`
		BillTo struct {
			Name string `json:"name"`
		} `json:"bill_to"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &inv); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if inv.Number == "" || inv.Total != 3000 || inv.BillTo.Name != "Rahul Sharma" {
		t.Fatalf("unexpected invoice: %+v", inv)
	}
}

func TestBookingHandler_Handoff(t *testing.T) {
	session := &stubSession{
		bookingFn: func(_ context.Context, id string) (*domain.Booking, *domain.User, error) {
			return &domain.Booking{
					ID: id, Date: "2026-09-14", Time: "10:00 AM",
					ReportType: domain.ReportChild, Amount: 3000,
				},
				&domain.User{Name: "Rahul Sharma"},
				nil
		},
	}
	h := NewBookingHandler(session)

	c, rec := newTestContext(http.MethodGet, "/v1/bookings/b1/handoff", "")
	c.SetParamNames("id")
	c.SetParamValues("b1")
	if err := h.Handoff(c); err != nil {
		t.Fatalf("Handoff handler: %v", err)
	}

	var resp handoffResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp.Amount != 3000 || resp.Message == "" {
		t.Fatalf("unexpected handoff payload: %+v", resp)
	}
	if resp.Link == "" || resp.Link[:15] != "https://wa.me/9" {
		t.Fatalf("unexpected handoff link: %q", resp.Link)
	}
}

func TestBookingHandler_Handoff_Forbidden(t *testing.T) {
	session := &stubSession{
		bookingFn: func(context.Context, string) (*domain.Booking, *domain.User, error) {
			return nil, nil, domain.ErrForbidden
		},
	}
	h := NewBookingHandler(session)

	c, _ := newTestContext(http.MethodGet, "/v1/bookings/b1/handoff", "")
	c.SetParamNames("id")
	c.SetParamValues("b1")
	if err := h.Handoff(c); !errors.Is(err, domain.ErrForbidden) {
		t.Fatalf("expected ErrForbidden passed through, got %v", err)
	}
}

func TestBookingHandler_ConfirmPayment(t *testing.T) {
	session := &stubSession{
		confirmPaymentFn: func(_ context.Context, id string) (*domain.Booking, error) {
			return &domain.Booking{
				ID: id, Status: domain.BookingConfirmed, PaymentStatus: domain.PaymentPaid,
			}, nil
		},
	}
	h := NewBookingHandler(session)

	c, rec := newTestContext(http.MethodPost, "/v1/admin/bookings/b1/confirm-payment", "")
	c.SetParamNames("id")
	c.SetParamValues("b1")
	if err := h.ConfirmPayment(c); err != nil {
		t.Fatalf("ConfirmPayment handler: %v", err)
	}

	var booking domain.Booking
	if err := json.Unmarshal(rec.Body.Bytes(), &booking); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if booking.ID != "b1" || booking.Status != domain.BookingConfirmed {
		t.Fatalf("unexpected booking: %+v", booking)
	}
}
