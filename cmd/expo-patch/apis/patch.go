package apis

import (
	"bytes"
	"context"
	"fmt"
	"net/http"
	"strings"

	"expo-patch-backend/cmd/expo-patch/model"

	"github.com/gocarina/gocsv"
	"github.com/labstack/echo/v4"
)

type IPatchDataRepo interface {
	ListForEvent(ctx context.Context, eventID string) ([]model.PatchData, error)
	Create(ctx context.Context, patch model.PatchData) (model.PatchData, error)
	Update(ctx context.Context, id string, changes model.PatchDataChangeset) error
	Delete(ctx context.Context, id string) error
	Duplicate(ctx context.Context, id string) (*model.PatchData, error)
}

type PatchDataAPI struct {
	patchRepo IPatchDataRepo
}

func NewPatchDataAPI(patchRepo IPatchDataRepo) *PatchDataAPI {

	return &PatchDataAPI{
		patchRepo: patchRepo,
	}
}

func (a *PatchDataAPI) Setup(g *echo.Group) {
	g.GET("/events/:id/patchdata", a.listPatchData)
	g.GET("/events/:id/patchdata.csv", a.exportPatchDataCSV)
	g.POST("/patchdata", a.createPatchData)
	g.PATCH("/patchdata/:id", a.updatePatchData)
	g.DELETE("/patchdata/:id", a.deletePatchData)
	g.POST("/patchdata/:id/duplicate", a.duplicatePatchData)
}

func (a *PatchDataAPI) listPatchData(c echo.Context) error {

	ctx := c.Request().Context()
	eventID := c.Param("id")

	patches, err := a.patchRepo.ListForEvent(ctx, eventID)
	if err != nil {
		return errorResponse(c, err)
	}

	return c.JSON(
		http.StatusOK,
		model.BaseResponse{
			Message: "success",
			Data:    patches,
		},
	)
}

// exportPatchDataCSV renders an event's patch list as a CSV hand-out for
// the installation crew.
func (a *PatchDataAPI) exportPatchDataCSV(c echo.Context) error {

	ctx := c.Request().Context()
	eventID := c.Param("id")

	patches, err := a.patchRepo.ListForEvent(ctx, eventID)
	if err != nil {
		return errorResponse(c, err)
	}

	rows := []*model.PatchCSV{}
	for _, patch := range patches {
		row := model.NewPatchCSV(patch)
		rows = append(rows, &row)
	}

	var buf bytes.Buffer
	if err := gocsv.Marshal(rows, &buf); err != nil {
		return errorResponse(c, err)
	}

	c.Response().Header().Set(
		echo.HeaderContentDisposition,
		fmt.Sprintf(`attachment; filename="patchdata-%s.csv"`, eventID),
	)

	return c.Blob(http.StatusOK, "text/csv; charset=utf-8", buf.Bytes())
}

func (a *PatchDataAPI) createPatchData(c echo.Context) error {

	ctx := c.Request().Context()

	var req model.PatchDataCreateRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(
			http.StatusBadRequest,
			model.BaseResponse{
				Message: err.Error(),
			},
		)
	}

	req.Hall = strings.TrimSpace(req.Hall)
	req.Stand = strings.TrimSpace(req.Stand)
	req.Company = strings.TrimSpace(req.Company)
	if req.EventID == "" || req.Hall == "" || req.Stand == "" || req.Company == "" {
		return c.JSON(
			http.StatusBadRequest,
			model.BaseResponse{
				Message: "eventId, hall, stand and company are required",
			},
		)
	}

	created, err := a.patchRepo.Create(ctx, req.PatchData())
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

func (a *PatchDataAPI) updatePatchData(c echo.Context) error {

	ctx := c.Request().Context()
	id := c.Param("id")

	var changes model.PatchDataChangeset
	if err := c.Bind(&changes); err != nil {
		return c.JSON(
			http.StatusBadRequest,
			model.BaseResponse{
				Message: err.Error(),
			},
		)
	}

	if err := a.patchRepo.Update(ctx, id, changes); err != nil {
		return errorResponse(c, err)
	}

	return c.JSON(
		http.StatusOK,
		model.BaseResponse{
			Message: "success",
		},
	)
}

func (a *PatchDataAPI) deletePatchData(c echo.Context) error {

	ctx := c.Request().Context()
	id := c.Param("id")

	if err := a.patchRepo.Delete(ctx, id); err != nil {
		return errorResponse(c, err)
	}

	return c.JSON(
		http.StatusOK,
		model.BaseResponse{
			Message: "success",
		},
	)
}

func (a *PatchDataAPI) duplicatePatchData(c echo.Context) error {

	ctx := c.Request().Context()
	id := c.Param("id")

	duplicate, err := a.patchRepo.Duplicate(ctx, id)
	if err != nil {
		return errorResponse(c, err)
	}
	if duplicate == nil {
		return c.JSON(
			http.StatusNotFound,
			model.BaseResponse{
				Message: "patch data not found",
			},
		)
	}

	return c.JSON(
		http.StatusOK,
		model.BaseResponse{
			Message: "success",
			Data:    duplicate,
		},
	)
}
