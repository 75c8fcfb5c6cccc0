package http

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"

	loanuc "lendcore-backend/internal/usecase/loan"
)

type LoanHandler struct{ uc *loanuc.Usecase }

func NewLoanHandler(uc *loanuc.Usecase) *LoanHandler { return &LoanHandler{uc: uc} }

type createLoanReq struct {
	ClientID           string  `json:"client_id"            validate:"required,hex32"`
	Principal          float64 `json:"principal"            validate:"required,gt=0,dec2"`
	AnnualRate         float64 `json:"annual_rate"          validate:"gte=0,lte=100,dec2"`
	InterestMethod     string  `json:"interest_method"      validate:"required,oneof=flat reducing_balance"`
	TenorMonths        int     `json:"tenor_months"         validate:"required,gt=0,lte=360"`
	RepaymentFrequency string  `json:"repayment_frequency"  validate:"omitempty,oneof=weekly biweekly monthly"`
}

func (h *LoanHandler) CreateLoan(c echo.Context) error {
	var req createLoanReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusUnprocessableEntity, ErrorResponse{
			Error:   "validation failed",
			Details: ToFieldErrors(err),
		})
	}
	dto, err := h.uc.Create(c.Request().Context(), loanuc.CreateLoanInput{
		ClientID:           req.ClientID,
		Principal:          decimal.NewFromFloat(req.Principal),
		AnnualRate:         decimal.NewFromFloat(req.AnnualRate),
		InterestMethod:     req.InterestMethod,
		TenorMonths:        req.TenorMonths,
		RepaymentFrequency: req.RepaymentFrequency,
	})
	if err != nil {
		code, body := fail(err)
		return c.JSON(code, body)
	}
	return c.JSON(http.StatusCreated, dto)
}

func (h *LoanHandler) GetLoan(c echo.Context) error {
	dto, err := h.uc.Get(c.Request().Context(), c.Param("loan_id"))
	if err != nil {
		code, body := fail(err)
		return c.JSON(code, body)
	}
	return c.JSON(http.StatusOK, dto)
}

func (h *LoanHandler) ListLoans(c echo.Context) error {
	dtos, err := h.uc.List(c.Request().Context())
	if err != nil {
		code, body := fail(err)
		return c.JSON(code, body)
	}
	return c.JSON(http.StatusOK, dtos)
}

// GetLoanSchedule recomputes the repayment schedule from the loan's terms.
func (h *LoanHandler) GetLoanSchedule(c echo.Context) error {
	dto, err := h.uc.Schedule(c.Request().Context(), c.Param("loan_id"))
	if err != nil {
		code, body := fail(err)
		return c.JSON(code, body)
	}
	return c.JSON(http.StatusOK, dto)
}
