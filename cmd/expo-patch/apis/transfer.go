package apis

import (
	"context"
	"fmt"
	"io"
	"net/http"

	"expo-patch-backend/cmd/expo-patch/model"

	"github.com/goforj/godump"
	"github.com/labstack/echo/v4"
)

type ICodec interface {
	ExportEvent(ctx context.Context, eventID string) (model.ExportDocument, error)
	ExportAll(ctx context.Context) (model.ExportAllDocument, error)
	Import(ctx context.Context, data []byte) (string, error)
}

type TransferAPI struct {
	codec ICodec
}

func NewTransferAPI(codec ICodec) *TransferAPI {

	return &TransferAPI{
		codec: codec,
	}
}

func (a *TransferAPI) Setup(g *echo.Group) {
	g.GET("/events/export", a.exportAllEvents)
	g.GET("/events/:id/export", a.exportEvent)
	g.POST("/events/import", a.importEvent)
}

func (a *TransferAPI) exportEvent(c echo.Context) error {

	ctx := c.Request().Context()
	eventID := c.Param("id")

	doc, err := a.codec.ExportEvent(ctx, eventID)
	if err != nil {
		return errorResponse(c, err)
	}

	c.Response().Header().Set(
		echo.HeaderContentDisposition,
		fmt.Sprintf(`attachment; filename="event-%s.json"`, eventID),
	)

	return c.JSONPretty(http.StatusOK, doc, "  ")
}

func (a *TransferAPI) exportAllEvents(c echo.Context) error {

	ctx := c.Request().Context()

	doc, err := a.codec.ExportAll(ctx)
	if err != nil {
		return errorResponse(c, err)
	}

	c.Response().Header().Set(
		echo.HeaderContentDisposition,
		fmt.Sprintf(
			`attachment; filename="all-events-%s.json"`,
			doc.ExportDate.UTC().Format("2006-01-02"),
		),
	)

	return c.JSONPretty(http.StatusOK, doc, "  ")
}

func (a *TransferAPI) importEvent(c echo.Context) error {

	ctx := c.Request().Context()

	jsonfile, err := c.FormFile("jsonfile")
	if err != nil {
		return c.JSON(
			http.StatusBadRequest,
			model.BaseResponse{
				Message: err.Error(),
			},
		)
	}

	jf, err := jsonfile.Open()
	if err != nil {
		return c.JSON(
			http.StatusBadRequest,
			model.BaseResponse{
				Message: err.Error(),
			},
		)
	}

	defer jf.Close()

	data, err := io.ReadAll(jf)
	if err != nil {
		return c.JSON(
			http.StatusBadRequest,
			model.BaseResponse{
				Message: err.Error(),
			},
		)
	}

	eventID, err := a.codec.Import(ctx, data)
	if err != nil {
		return errorResponse(c, err)
	}

	result := model.ImportResult{
		EventID: eventID,
	}

	godump.Dump(result)

	return c.JSON(
		http.StatusOK,
		model.BaseResponse{
			Message: "success",
			Data:    result,
		},
	)
}
