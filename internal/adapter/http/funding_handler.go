package http

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"

	fundinguc "lendcore-backend/internal/usecase/funding"
)

type FundingHandler struct{ uc *fundinguc.Usecase }

func NewFundingHandler(uc *fundinguc.Usecase) *FundingHandler { return &FundingHandler{uc: uc} }

type createSourceReq struct {
	Name    string  `json:"name"     validate:"required"`
	Kind    string  `json:"kind"     validate:"required,oneof=bank cash mobile_money"`
	Balance float64 `json:"balance"  validate:"gte=0,dec2"`
}

func (h *FundingHandler) CreateSource(c echo.Context) error {
	var req createSourceReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusUnprocessableEntity, ErrorResponse{
			Error:   "validation failed",
			Details: ToFieldErrors(err),
		})
	}
	dto, err := h.uc.Create(c.Request().Context(), fundinguc.CreateSourceInput{
		Name:    req.Name,
		Kind:    req.Kind,
		Balance: decimal.NewFromFloat(req.Balance),
	})
	if err != nil {
		code, body := fail(err)
		return c.JSON(code, body)
	}
	return c.JSON(http.StatusCreated, dto)
}

func (h *FundingHandler) ListSources(c echo.Context) error {
	dtos, err := h.uc.ListActive(c.Request().Context())
	if err != nil {
		code, body := fail(err)
		return c.JSON(code, body)
	}
	return c.JSON(http.StatusOK, dtos)
}
