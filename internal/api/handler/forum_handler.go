package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/sristi/brainark-core/internal/core/ports"
)

// ForumHandler exposes the community board through the session facade.
type ForumHandler struct {
	session ports.Session
}

func NewForumHandler(session ports.Session) *ForumHandler {
	return &ForumHandler{session: session}
}

// List handles GET /v1/posts?category=... — most-recent-first listing,
// optionally filtered. Missing category means "all".
//
// @Summary      List community posts
// @Tags         forum
// @Produce      json
// @Param        category  query     string  false  "Category filter, or all"
// @Success      200       {array}   domain.Post
// @Failure      422       {object}  map[string]string
// @Router       /v1/posts [get]
func (h *ForumHandler) List(c echo.Context) error {
	posts, err := h.session.Posts(c.Request().Context(), c.QueryParam("category"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, posts)
}

// Create handles POST /v1/posts.
//
// @Summary      Publish a community post
// @Tags         forum
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createPostRequest  true  "Post details"
// @Success      201   {object}  domain.Post
// @Failure      400   {object}  map[string]string
// @Failure      401   {object}  map[string]string
// @Failure      422   {object}  map[string]string
// @Router       /v1/posts [post]
func (h *ForumHandler) Create(c echo.Context) error {
	var req createPostRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}

	post, err := h.session.CreatePost(c.Request().Context(), req.Title, req.Content, req.Category)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, post)
}

// Like handles POST /v1/posts/:id/like — every call is a fresh increment.
//
// @Summary      Like a post
// @Tags         forum
// @Produce      json
// @Security     BearerAuth
// @Param        id  path      string  true  "Post id"
// @Success      200  {object}  domain.Post
// @Failure      404  {object}  map[string]string
// @Router       /v1/posts/{id}/like [post]
func (h *ForumHandler) Like(c echo.Context) error {
	post, err := h.session.LikePost(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, post)
}
