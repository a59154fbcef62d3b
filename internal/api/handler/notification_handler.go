package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/sristi/brainark-core/internal/core/domain"
)

// NotificationFeed is the read side of the notification center.
type NotificationFeed interface {
	Recent() []domain.Notification
}

// NotificationHandler serves the toast feed the presentation layer polls.
type NotificationHandler struct {
	feed NotificationFeed
}

func NewNotificationHandler(feed NotificationFeed) *NotificationHandler {
	return &NotificationHandler{feed: feed}
}

// Recent handles GET /v1/notifications — newest first.
//
// @Summary      Recent notifications
// @Tags         notifications
// @Produce      json
// @Success      200  {array}  domain.Notification
// @Router       /v1/notifications [get]
func (h *NotificationHandler) Recent(c echo.Context) error {
	return c.JSON(http.StatusOK, h.feed.Recent())
}
