package apis

import (
	"errors"
	"net/http"

	"expo-patch-backend/cmd/expo-patch/model"

	"github.com/labstack/echo/v4"
)

// errorResponse maps the repository/codec error taxonomy onto HTTP status
// codes inside the standard response envelope.
func errorResponse(c echo.Context, err error) error {
	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, model.ErrNotFound):
		status = http.StatusNotFound
	case errors.Is(err, model.ErrImportParse):
		status = http.StatusBadRequest
	case errors.Is(err, model.ErrStorageUnavailable),
		errors.Is(err, model.ErrSchemaMismatch):
		status = http.StatusServiceUnavailable
	}

	return c.JSON(
		status,
		model.BaseResponse{
			Message: err.Error(),
		},
	)
}
