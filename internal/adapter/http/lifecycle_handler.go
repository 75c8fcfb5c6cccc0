package http

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"lendcore-backend/internal/usecase/lifecycle"
)

type LifecycleHandler struct{ uc *lifecycle.Usecase }

func NewLifecycleHandler(uc *lifecycle.Usecase) *LifecycleHandler {
	return &LifecycleHandler{uc: uc}
}

type advanceReq struct {
	Confirmed       bool   `json:"confirmed"`
	FundingSourceID string `json:"funding_source_id"  validate:"omitempty,hex32"`
	// Accept canonical date `YYYY-MM-DD` for the disbursement step
	DisbursementDate string `json:"disbursement_date"  validate:"omitempty,datetime=2006-01-02"`
}

type rejectReq struct {
	Reason string `json:"reason" validate:"required"`
}

type bulkAdvanceReq struct {
	LoanIDs   []string `json:"loan_ids" validate:"required,min=1,dive,hex32"`
	Confirmed bool     `json:"confirmed"`
}

type bulkRejectReq struct {
	LoanIDs []string `json:"loan_ids" validate:"required,min=1,dive,hex32"`
	Reason  string   `json:"reason"   validate:"required"`
}

type bulkItemResp struct {
	LoanID     string                   `json:"loan_id"`
	Transition *lifecycle.TransitionDTO `json:"transition,omitempty"`
	Error      string                   `json:"error,omitempty"`
}

type bulkResp struct {
	Succeeded int            `json:"succeeded"`
	Failed    int            `json:"failed"`
	Results   []bulkItemResp `json:"results"`
}

// AdvanceLoan moves the loan one step forward. Confirmation is the
// human-in-the-loop checkpoint; the disbursement step additionally needs a
// funding source.
func (h *LifecycleHandler) AdvanceLoan(c echo.Context) error {
	loanID := c.Param("loan_id")
	if loanID == "" {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "missing loan_id path param"})
	}
	var req advanceReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusUnprocessableEntity, ErrorResponse{
			Error:   "validation failed",
			Details: ToFieldErrors(err),
		})
	}

	in := lifecycle.AdvanceInput{
		LoanID:          loanID,
		Confirmed:       req.Confirmed,
		FundingSourceID: req.FundingSourceID,
	}
	if req.DisbursementDate != "" {
		d, _ := time.Parse("2006-01-02", req.DisbursementDate)
		in.DisbursementDate = d
	}

	dto, err := h.uc.Advance(c.Request().Context(), in)
	if err != nil {
		code, body := fail(err)
		return c.JSON(code, body)
	}
	return c.JSON(http.StatusOK, dto)
}

func (h *LifecycleHandler) RejectLoan(c echo.Context) error {
	loanID := c.Param("loan_id")
	if loanID == "" {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "missing loan_id path param"})
	}
	var req rejectReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusUnprocessableEntity, ErrorResponse{
			Error:   "validation failed",
			Details: ToFieldErrors(err),
		})
	}
	dto, err := h.uc.Reject(c.Request().Context(), loanID, req.Reason)
	if err != nil {
		code, body := fail(err)
		return c.JSON(code, body)
	}
	return c.JSON(http.StatusOK, dto)
}

// BulkAdvance applies the advance to each loan independently; the response
// always carries per-loan results, 207-style in a 200.
func (h *LifecycleHandler) BulkAdvance(c echo.Context) error {
	var req bulkAdvanceReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusUnprocessableEntity, ErrorResponse{
			Error:   "validation failed",
			Details: ToFieldErrors(err),
		})
	}
	items := h.uc.BulkAdvance(c.Request().Context(), req.LoanIDs, req.Confirmed)
	return c.JSON(http.StatusOK, toBulkResp(items))
}

func (h *LifecycleHandler) BulkReject(c echo.Context) error {
	var req bulkRejectReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusUnprocessableEntity, ErrorResponse{
			Error:   "validation failed",
			Details: ToFieldErrors(err),
		})
	}
	items := h.uc.BulkReject(c.Request().Context(), req.LoanIDs, req.Reason)
	return c.JSON(http.StatusOK, toBulkResp(items))
}

func toBulkResp(items []lifecycle.BulkItem) bulkResp {
	out := bulkResp{Results: make([]bulkItemResp, 0, len(items))}
	for _, it := range items {
		r := bulkItemResp{LoanID: it.LoanID, Transition: it.Transition}
		if it.Err != nil {
			r.Error = it.Err.Error()
			out.Failed++
		} else {
			out.Succeeded++
		}
		out.Results = append(out.Results, r)
	}
	return out
}
