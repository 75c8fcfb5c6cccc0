package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"lendcore-backend/internal/usecase/dashboard"
)

type DashboardHandler struct{ uc *dashboard.Usecase }

func NewDashboardHandler(uc *dashboard.Usecase) *DashboardHandler {
	return &DashboardHandler{uc: uc}
}

func (h *DashboardHandler) Phases(c echo.Context) error {
	dto, err := h.uc.Phases(c.Request().Context())
	if err != nil {
		code, body := fail(err)
		return c.JSON(code, body)
	}
	return c.JSON(http.StatusOK, dto)
}
