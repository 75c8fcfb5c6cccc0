package http

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"

	loanuc "lendcore-backend/internal/usecase/loan"
)

// CalculatorHandler serves the ad hoc schedule calculator: same math as loan
// origination, no loan record involved.
type CalculatorHandler struct{ uc *loanuc.Usecase }

func NewCalculatorHandler(uc *loanuc.Usecase) *CalculatorHandler {
	return &CalculatorHandler{uc: uc}
}

type quoteReq struct {
	Principal      float64 `json:"principal"        validate:"required,gt=0,dec2"`
	AnnualRate     float64 `json:"annual_rate"      validate:"gte=0,lte=100,dec2"`
	TenorMonths    int     `json:"tenor_months"     validate:"required,gt=0,lte=360"`
	InterestMethod string  `json:"interest_method"  validate:"required,oneof=flat reducing_balance"`
}

func (h *CalculatorHandler) Quote(c echo.Context) error {
	var req quoteReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusUnprocessableEntity, ErrorResponse{
			Error:   "validation failed",
			Details: ToFieldErrors(err),
		})
	}
	dto, err := h.uc.Quote(loanuc.QuoteInput{
		Principal:      decimal.NewFromFloat(req.Principal),
		AnnualRate:     decimal.NewFromFloat(req.AnnualRate),
		TenorMonths:    req.TenorMonths,
		InterestMethod: req.InterestMethod,
	})
	if err != nil {
		code, body := fail(err)
		return c.JSON(code, body)
	}
	return c.JSON(http.StatusOK, dto)
}
