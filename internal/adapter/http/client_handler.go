package http

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	clientuc "lendcore-backend/internal/usecase/client"
)

type ClientHandler struct{ uc *clientuc.Usecase }

func NewClientHandler(uc *clientuc.Usecase) *ClientHandler { return &ClientHandler{uc: uc} }

type createClientReq struct {
	FullName string `json:"full_name"      validate:"required"`
	Phone    string `json:"phone"          validate:"omitempty,e164"`
	// Date-only; omitted when unknown
	DateOfBirth   string `json:"date_of_birth"  validate:"omitempty,datetime=2006-01-02"`
	HasGuarantor  bool   `json:"has_guarantor"`
	HasCollateral bool   `json:"has_collateral"`
}

func (h *ClientHandler) CreateClient(c echo.Context) error {
	var req createClientReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusUnprocessableEntity, ErrorResponse{
			Error:   "validation failed",
			Details: ToFieldErrors(err),
		})
	}
	in := clientuc.CreateClientInput{
		FullName:      req.FullName,
		Phone:         req.Phone,
		HasGuarantor:  req.HasGuarantor,
		HasCollateral: req.HasCollateral,
	}
	if req.DateOfBirth != "" {
		d, _ := time.Parse("2006-01-02", req.DateOfBirth)
		in.DateOfBirth = &d
	}
	dto, err := h.uc.Create(c.Request().Context(), in)
	if err != nil {
		code, body := fail(err)
		return c.JSON(code, body)
	}
	return c.JSON(http.StatusCreated, dto)
}

func (h *ClientHandler) GetClient(c echo.Context) error {
	dto, err := h.uc.Get(c.Request().Context(), c.Param("client_id"))
	if err != nil {
		code, body := fail(err)
		return c.JSON(code, body)
	}
	return c.JSON(http.StatusOK, dto)
}

func (h *ClientHandler) ListClients(c echo.Context) error {
	dtos, err := h.uc.List(c.Request().Context())
	if err != nil {
		code, body := fail(err)
		return c.JSON(code, body)
	}
	return c.JSON(http.StatusOK, dtos)
}
