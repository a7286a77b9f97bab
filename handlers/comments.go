package handlers

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/padraicbc/jrabrowser/comments"
)

type commentRequest struct {
	Name string `json:"name"`
	Text string `json:"text"`
}

// Comments returns every thread with its replies.
func (h *Handler) Comments(c echo.Context) error {
	threads, err := h.comments.List(c.Request().Context())
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, threads)
}

// CreateComment starts a new thread.
func (h *Handler) CreateComment(c echo.Context) error {
	var req commentRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	t, err := h.comments.Add(c.Request().Context(), req.Name, req.Text)
	if err != nil {
		return h.commentError(err)
	}
	return c.JSON(http.StatusCreated, t)
}

// CreateReply answers the comment named in the path.
func (h *Handler) CreateReply(c echo.Context) error {
	var req commentRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	t, err := h.comments.Reply(c.Request().Context(), c.Param("id"), req.Name, req.Text)
	if err != nil {
		return h.commentError(err)
	}
	return c.JSON(http.StatusCreated, t)
}

func (h *Handler) commentError(err error) error {
	switch {
	case errors.Is(err, comments.ErrInvalidComment):
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	case errors.Is(err, comments.ErrNotFound):
		return echo.NewHTTPError(http.StatusNotFound, err.Error())
	default:
		h.log.Error("comment write failed", zap.Error(err))
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
}
