package apis

import (
	"net/http"

	"expo-patch-backend/cmd/expo-patch/model"
	"expo-patch-backend/cmd/expo-patch/repository"

	"github.com/labstack/echo/v4"
)

type HealthCheckAPI struct {
	store *repository.Store
}

func NewHealthCheckAPI(store *repository.Store) *HealthCheckAPI {
	return &HealthCheckAPI{
		store: store,
	}
}

func (a *HealthCheckAPI) Setup(g *echo.Group) {
	g.GET("/healthz", a.healthCheck)
}

func (a *HealthCheckAPI) healthCheck(c echo.Context) error {

	db, err := a.store.DB()
	if err != nil {
		return c.JSON(
			http.StatusInternalServerError,
			model.BaseResponse{
				Message: err.Error(),
			},
		)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return c.JSON(
			http.StatusInternalServerError,
			model.BaseResponse{
				Message: err.Error(),
			},
		)
	}

	err = sqlDB.Ping()
	if err != nil {
		return c.JSON(
			http.StatusInternalServerError,
			model.BaseResponse{
				Message: err.Error(),
			},
		)
	}

	return c.JSON(
		http.StatusOK,
		model.BaseResponse{
			Message: "healthy",
		},
	)
}
