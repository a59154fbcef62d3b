package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/sristi/brainark-core/internal/core/ports"
	"github.com/sristi/brainark-core/internal/handoff"
	"github.com/sristi/brainark-core/internal/invoice"
)

// BookingHandler exposes the booking ledger through the session facade.
type BookingHandler struct {
	session ports.Session
}

func NewBookingHandler(session ports.Session) *BookingHandler {
	return &BookingHandler{session: session}
}

// Create handles POST /v1/bookings.
//
// @Summary      Reserve a profiling session
// @Tags         bookings
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createBookingRequest  true  "Booking details"
// @Success      201   {object}  domain.Booking
// @Failure      400   {object}  map[string]string
// @Failure      401   {object}  map[string]string
// @Failure      422   {object}  map[string]string
// @Router       /v1/bookings [post]
func (h *BookingHandler) Create(c echo.Context) error {
	var req createBookingRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}

	booking, err := h.session.CreateBooking(c.Request().Context(), ports.BookSessionInput{
		Date:       req.Date,
		Time:       req.Time,
		ReportType: req.ReportType,
		Amount:     req.Amount,
	})
	if err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, booking)
}

// ListMine handles GET /v1/bookings — the current user's bookings in
// insertion order.
//
// @Summary      List own bookings
// @Tags         bookings
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}   domain.Booking
// @Failure      401  {object}  map[string]string
// @Router       /v1/bookings [get]
func (h *BookingHandler) ListMine(c echo.Context) error {
	bookings, err := h.session.MyBookings(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, bookings)
}

// Invoice handles GET /v1/bookings/:id/invoice.
//
// @Summary      Invoice document for a booking
// @Tags         bookings
// @Produce      json
// @Security     BearerAuth
// @Param        id  path      string  true  "Booking id"
// @Success      200  {object}  invoice.Invoice
// @Failure      403  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /v1/bookings/{id}/invoice [get]
func (h *BookingHandler) Invoice(c echo.Context) error {
	booking, owner, err := h.session.Booking(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, invoice.Generate(booking, owner))
}

// Handoff handles GET /v1/bookings/:id/handoff — the structured payload for
// the out-of-band payment channel.
//
// @Summary      Payment handoff payload for a booking
// @Tags         bookings
// @Produce      json
// @Security     BearerAuth
// @Param        id  path      string  true  "Booking id"
// @Success      200  {object}  handoffResponse
// @Failure      403  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /v1/bookings/{id}/handoff [get]
func (h *BookingHandler) Handoff(c echo.Context) error {
	booking, owner, err := h.session.Booking(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}

	p := handoff.Build(booking, owner)
	return c.JSON(http.StatusOK, handoffResponse{
		UserName:   p.UserName,
		ReportType: p.ReportType,
		Amount:     p.Amount,
		Date:       p.Date,
		Time:       p.Time,
		Message:    p.Message(),
		Link:       p.Link(),
	})
}

// ListAll handles GET /v1/admin/bookings — the administrative review
// listing.
//
// @Summary      List every booking
// @Tags         admin
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}   domain.Booking
// @Failure      403  {object}  map[string]string
// @Router       /v1/admin/bookings [get]
func (h *BookingHandler) ListAll(c echo.Context) error {
	bookings, err := h.session.AllBookings(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, bookings)
}

// ConfirmPayment handles POST /v1/admin/bookings/:id/confirm-payment.
//
// @Summary      Confirm an out-of-band payment
// @Tags         admin
// @Produce      json
// @Security     BearerAuth
// @Param        id  path      string  true  "Booking id"
// @Success      200  {object}  domain.Booking
// @Failure      403  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Failure      422  {object}  map[string]string
// @Router       /v1/admin/bookings/{id}/confirm-payment [post]
func (h *BookingHandler) ConfirmPayment(c echo.Context) error {
	booking, err := h.session.ConfirmPayment(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, booking)
}
