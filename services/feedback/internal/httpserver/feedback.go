package httpserver

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/sweetloaf/bakeshop/pkg/events"
	"github.com/sweetloaf/bakeshop/pkg/logging"
	"github.com/sweetloaf/bakeshop/services/feedback/internal/service"
	"github.com/sweetloaf/bakeshop/services/feedback/internal/transport"
)

type FeedbackHTTP struct {
	Svc      *service.FeedbackService
	Producer *events.Producer
}

func (h *FeedbackHTTP) publish(c echo.Context, key string, event map[string]any) {
	if h.Producer == nil {
		return
	}
	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()
	if err := h.Producer.PublishEvent(ctx, "feedback_events", key, event); err != nil {
		logging.FromContext(c.Request().Context()).Warn("kafka_publish_failed", "error", err)
	}
}

func (h *FeedbackHTTP) Submit(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "feedback.submit")

	var req transport.SubmitFeedbackRequest
	if err := c.Bind(&req); err != nil {
		l.Warn("submit_feedback_error", "status", 400, "error", err)
		return c.JSON(http.StatusBadRequest, "invalid body")
	}

	entry, err := h.Svc.Submit(ctx, req)
	if err != nil {
		if errors.Is(err, service.ErrValidation) {
			l.Warn("submit_feedback_error", "status", 400, "error", err)
			return c.JSON(http.StatusBadRequest, err.Error())
		}
		l.Error("submit_feedback_error", "status", 500, "error", err)
		return c.JSON(http.StatusInternalServerError, "internal error")
	}

	h.publish(c, entry.ID.String(), map[string]any{
		"type":       "feedback_submitted",
		"feedbackID": entry.ID,
		"rating":     entry.Rating,
	})
	l.Info("submit_feedback_success", "feedback_id", entry.ID)
	return c.JSON(http.StatusCreated, entry)
}

func (h *FeedbackHTTP) List(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "feedback.list")

	limit, _ := strconv.Atoi(c.QueryParam("limit"))

	entries, err := h.Svc.List(ctx, limit)
	if err != nil {
		l.Error("list_feedback_error", "status", 500, "error", err)
		return c.JSON(http.StatusInternalServerError, "internal error")
	}

	l.Info("list_feedback_success", "count", len(entries))
	return c.JSON(http.StatusOK, entries)
}
