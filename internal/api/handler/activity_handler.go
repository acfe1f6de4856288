package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/kidsync/childcare-api/internal/core/ports"
)

// ActivityHandler exposes the account activity trail.
type ActivityHandler struct {
	activity ports.ActivityService
}

func NewActivityHandler(activity ports.ActivityService) *ActivityHandler {
	return &ActivityHandler{activity: activity}
}

// Recent returns the newest activity events.
//
// @Summary      Recent account activity
// @Tags         activity
// @Produce      json
// @Security     BearerAuth
// @Param        limit  query     int  false  "max events to return (default 50)"
// @Success      200    {object}  listActivityResponse
// @Failure      401    {object}  errorResponse
// @Failure      403    {object}  errorResponse
// @Router       /activity [get]
func (h *ActivityHandler) Recent(c echo.Context) error {
	limit, _ := strconv.Atoi(c.QueryParam("limit"))

	events, err := h.activity.Recent(c.Request().Context(), limit)
	if err != nil {
		return err
	}

	data := make([]activityEventResponse, 0, len(events))
	for _, e := range events {
		data = append(data, activityEventResponse{
			ID:         e.ID,
			AccountID:  e.AccountID,
			ActorID:    e.ActorID,
			Action:     string(e.Action),
			OccurredAt: e.OccurredAt,
		})
	}
	return c.JSON(http.StatusOK, listActivityResponse{Data: data})
}
