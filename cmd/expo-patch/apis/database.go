package apis

import (
	"context"
	"net/http"
	"os"

	"expo-patch-backend/cmd/expo-patch/model"

	"github.com/labstack/echo/v4"
)

type IDatabaseState interface {
	SwitchDatabase(ctx context.Context, path string) (string, error)
	CurrentPath() string
}

// DatabaseAPI switches the active database file. The file-picker dialogs
// live in the UI shell; these endpoints only receive the resolved paths.
type DatabaseAPI struct {
	state IDatabaseState
}

func NewDatabaseAPI(state IDatabaseState) *DatabaseAPI {

	return &DatabaseAPI{
		state: state,
	}
}

func (a *DatabaseAPI) Setup(g *echo.Group) {
	g.POST("/database/new", a.createDatabase)
	g.POST("/database/open", a.openDatabase)
	g.GET("/database/path", a.currentPath)
}

func (a *DatabaseAPI) createDatabase(c echo.Context) error {

	ctx := c.Request().Context()

	var req model.DatabaseRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(
			http.StatusBadRequest,
			model.BaseResponse{
				Message: err.Error(),
			},
		)
	}

	if req.Path == "" {
		return c.JSON(
			http.StatusBadRequest,
			model.BaseResponse{
				Message: "path is required",
			},
		)
	}

	resolved, err := a.state.SwitchDatabase(ctx, req.Path)
	if err != nil {
		return errorResponse(c, err)
	}

	return c.JSON(
		http.StatusOK,
		model.BaseResponse{
			Message: "success",
			Data: model.DatabaseInfo{
				Path: resolved,
			},
		},
	)
}

func (a *DatabaseAPI) openDatabase(c echo.Context) error {

	ctx := c.Request().Context()

	var req model.DatabaseRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(
			http.StatusBadRequest,
			model.BaseResponse{
				Message: err.Error(),
			},
		)
	}

	if req.Path == "" {
		return c.JSON(
			http.StatusBadRequest,
			model.BaseResponse{
				Message: "path is required",
			},
		)
	}

	// Opening is for existing files only; creating goes through /database/new.
	if _, err := os.Stat(req.Path); err != nil {
		return c.JSON(
			http.StatusBadRequest,
			model.BaseResponse{
				Message: "database file does not exist",
			},
		)
	}

	resolved, err := a.state.SwitchDatabase(ctx, req.Path)
	if err != nil {
		return errorResponse(c, err)
	}

	return c.JSON(
		http.StatusOK,
		model.BaseResponse{
			Message: "success",
			Data: model.DatabaseInfo{
				Path: resolved,
			},
		},
	)
}

func (a *DatabaseAPI) currentPath(c echo.Context) error {

	return c.JSON(
		http.StatusOK,
		model.BaseResponse{
			Message: "success",
			Data: model.DatabaseInfo{
				Path: a.state.CurrentPath(),
			},
		},
	)
}
