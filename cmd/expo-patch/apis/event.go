package apis

import (
	"context"
	"net/http"
	"strings"

	"expo-patch-backend/cmd/expo-patch/model"

	"github.com/labstack/echo/v4"
)

type IEventState interface {
	Events() []model.Event
	Reload(ctx context.Context) error
	CreateEvent(ctx context.Context, event model.Event) (model.Event, error)
	UpdateEvent(ctx context.Context, id string, changes model.EventChangeset) error
	DeleteEvent(ctx context.Context, id string) error
}

type EventAPI struct {
	state IEventState
}

func NewEventAPI(state IEventState) *EventAPI {

	return &EventAPI{
		state: state,
	}
}

func (a *EventAPI) Setup(g *echo.Group) {
	g.GET("/events", a.listEvents)
	g.POST("/events", a.createEvent)
	g.PATCH("/events/:id", a.updateEvent)
	g.DELETE("/events/:id", a.deleteEvent)
}

func (a *EventAPI) listEvents(c echo.Context) error {

	ctx := c.Request().Context()

	if err := a.state.Reload(ctx); err != nil {
		return errorResponse(c, err)
	}

	return c.JSON(
		http.StatusOK,
		model.BaseResponse{
			Message: "success",
			Data:    a.state.Events(),
		},
	)
}

func (a *EventAPI) createEvent(c echo.Context) error {

	ctx := c.Request().Context()

	var req model.EventCreateRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(
			http.StatusBadRequest,
			model.BaseResponse{
				Message: err.Error(),
			},
		)
	}

	req.Name = strings.TrimSpace(req.Name)
	if req.Name == "" {
		return c.JSON(
			http.StatusBadRequest,
			model.BaseResponse{
				Message: "name is required",
			},
		)
	}
	if req.StartDate.IsZero() || req.EndDate.IsZero() {
		return c.JSON(
			http.StatusBadRequest,
			model.BaseResponse{
				Message: "startDate and endDate are required",
			},
		)
	}

	created, err := a.state.CreateEvent(ctx, req.Event())
	if err != nil {
		return errorResponse(c, err)
	}

	return c.JSON(
		http.StatusOK,
		model.BaseResponse{
			Message: "success",
			Data:    created,
		},
	)
}

func (a *EventAPI) updateEvent(c echo.Context) error {

	ctx := c.Request().Context()
	id := c.Param("id")

	var changes model.EventChangeset
	if err := c.Bind(&changes); err != nil {
		return c.JSON(
			http.StatusBadRequest,
			model.BaseResponse{
				Message: err.Error(),
			},
		)
	}

	if err := a.state.UpdateEvent(ctx, id, changes); err != nil {
		return errorResponse(c, err)
	}

	return c.JSON(
		http.StatusOK,
		model.BaseResponse{
			Message: "success",
		},
	)
}

func (a *EventAPI) deleteEvent(c echo.Context) error {

	ctx := c.Request().Context()
	id := c.Param("id")

	if err := a.state.DeleteEvent(ctx, id); err != nil {
		return errorResponse(c, err)
	}

	return c.JSON(
		http.StatusOK,
		model.BaseResponse{
			Message: "success",
		},
	)
}
