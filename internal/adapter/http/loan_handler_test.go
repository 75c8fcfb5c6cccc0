package http

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	clientDomain "lendcore-backend/internal/domain/client"
	loanDomain "lendcore-backend/internal/domain/loan"
	"lendcore-backend/internal/testutil/clientmock"
	"lendcore-backend/internal/testutil/loanmock"
	loanuc "lendcore-backend/internal/usecase/loan"
)

const (
	testClientID = "aaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaa"
	testLoanID   = "11111111111111111111111111111111"
)

func newLoanHandler(loans *loanmock.Repo, clients *clientmock.Repo) *LoanHandler {
	return NewLoanHandler(loanuc.NewUsecase(loans, clients, "UGX"))
}

func TestCreateLoan_Created(t *testing.T) {
	loans := &loanmock.Repo{
		GetOpenLoanByClientIDFn: func(context.Context, string) (*loanDomain.Loan, error) {
			return nil, gorm.ErrRecordNotFound
		},
	}
	clients := &clientmock.Repo{
		GetByClientIDFn: func(context.Context, string) (*clientDomain.Client, error) {
			return &clientDomain.Client{ClientID: testClientID, FullName: "Okello James"}, nil
		},
	}
	h := newLoanHandler(loans, clients)

	c, rec := newCtx(http.MethodPost, "/loans", `{
		"client_id": "`+testClientID+`",
		"principal": 100000,
		"annual_rate": 12,
		"interest_method": "flat",
		"tenor_months": 12
	}`)
	if err := h.CreateLoan(c); err != nil {
		t.Fatalf("CreateLoan: %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Fatalf("code = %d, body %s", rec.Code, rec.Body.String())
	}
	var dto loanuc.LoanDTO
	decodeBody(t, rec, &dto)
	if dto.Status != string(loanDomain.StatusPending) {
		t.Fatalf("status = %s, want pending", dto.Status)
	}
	if dto.Currency != "UGX" {
		t.Fatalf("currency = %s, want UGX", dto.Currency)
	}
	if dto.RiskLevel == "" {
		t.Fatal("risk assessment missing from response")
	}
}

func TestCreateLoan_ValidationFailed(t *testing.T) {
	h := newLoanHandler(&loanmock.Repo{}, &clientmock.Repo{})

	c, rec := newCtx(http.MethodPost, "/loans", `{
		"client_id": "not-hex",
		"principal": -5,
		"interest_method": "compound",
		"tenor_months": 12
	}`)
	if err := h.CreateLoan(c); err != nil {
		t.Fatalf("CreateLoan: %v", err)
	}
	if rec.Code != http.StatusUnprocessableEntity {
		t.Fatalf("code = %d, want 422", rec.Code)
	}
	var body ErrorResponse
	decodeBody(t, rec, &body)
	if !containsFieldMsg(body.Details, "ClientID", "32-char lowercase hex") {
		t.Fatalf("details = %+v", body.Details)
	}
	if !containsFieldMsg(body.Details, "InterestMethod", "must be one of") {
		t.Fatalf("details = %+v", body.Details)
	}
}

func TestCreateLoan_UnknownClient(t *testing.T) {
	clients := &clientmock.Repo{
		GetByClientIDFn: func(context.Context, string) (*clientDomain.Client, error) {
			return nil, gorm.ErrRecordNotFound
		},
	}
	h := newLoanHandler(&loanmock.Repo{}, clients)

	c, rec := newCtx(http.MethodPost, "/loans", `{
		"client_id": "`+testClientID+`",
		"principal": 50000,
		"annual_rate": 10,
		"interest_method": "flat",
		"tenor_months": 6
	}`)
	if err := h.CreateLoan(c); err != nil {
		t.Fatalf("CreateLoan: %v", err)
	}
	if rec.Code != http.StatusNotFound {
		t.Fatalf("code = %d, want 404", rec.Code)
	}
}

func TestGetLoan_NotFound(t *testing.T) {
	loans := &loanmock.Repo{
		GetByLoanIDFn: func(context.Context, string) (*loanDomain.Loan, error) {
			return nil, gorm.ErrRecordNotFound
		},
	}
	h := newLoanHandler(loans, &clientmock.Repo{})

	c, rec := newCtx(http.MethodGet, "/loans/"+testLoanID, "")
	c.SetParamNames("loan_id")
	c.SetParamValues(testLoanID)
	if err := h.GetLoan(c); err != nil {
		t.Fatalf("GetLoan: %v", err)
	}
	if rec.Code != http.StatusNotFound {
		t.Fatalf("code = %d, want 404", rec.Code)
	}
}

func TestGetLoanSchedule(t *testing.T) {
	loans := &loanmock.Repo{
		GetByLoanIDFn: func(context.Context, string) (*loanDomain.Loan, error) {
			return &loanDomain.Loan{
				LoanID:         testLoanID,
				ClientID:       testClientID,
				Principal:      decimal.NewFromInt(100_000),
				AnnualRate:     decimal.NewFromInt(12),
				InterestMethod: loanDomain.MethodFlat,
				TenorMonths:    12,
				Status:         loanDomain.StatusPending,
				CreatedAt:      time.Now().UTC(),
			}, nil
		},
	}
	clients := &clientmock.Repo{
		GetByClientIDFn: func(context.Context, string) (*clientDomain.Client, error) {
			return &clientDomain.Client{ClientID: testClientID}, nil
		},
	}
	h := newLoanHandler(loans, clients)

	c, rec := newCtx(http.MethodGet, "/loans/"+testLoanID+"/schedule", "")
	c.SetParamNames("loan_id")
	c.SetParamValues(testLoanID)
	if err := h.GetLoanSchedule(c); err != nil {
		t.Fatalf("GetLoanSchedule: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("code = %d, body %s", rec.Code, rec.Body.String())
	}
	var dto loanuc.ScheduleDTO
	decodeBody(t, rec, &dto)
	if dto.Quote == nil || len(dto.Quote.Entries) != 12 {
		t.Fatalf("schedule = %+v, want 12 entries", dto.Quote)
	}
	if !dto.Quote.PerPeriodPayment.Equal(decimal.NewFromInt(9_333)) {
		t.Fatalf("per-period payment = %s, want 9333", dto.Quote.PerPeriodPayment)
	}
}
