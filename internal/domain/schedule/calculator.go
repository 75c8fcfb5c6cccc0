// Package schedule computes repayment schedules from loan terms. Pure and
// deterministic; safe to call repeatedly and concurrently. Schedules are
// derived data and never the source of truth.
package schedule

import (
	"errors"
	"math"

	"github.com/shopspring/decimal"
)

// ErrNotComputable marks degenerate terms (non-positive principal or tenor,
// negative rate). Callers must treat this as "no schedule", never as zeros.
var ErrNotComputable = errors.New("schedule not computable from given terms")

type Method string

const (
	MethodFlat            Method = "flat"
	MethodReducingBalance Method = "reducing_balance"
)

// Entry is one row of a repayment schedule.
type Entry struct {
	Period    int             `json:"period"`
	Payment   decimal.Decimal `json:"payment"`
	Principal decimal.Decimal `json:"principal"`
	Interest  decimal.Decimal `json:"interest"`
	Balance   decimal.Decimal `json:"balance"`
}

type Result struct {
	PerPeriodPayment decimal.Decimal `json:"per_period_payment"`
	TotalInterest    decimal.Decimal `json:"total_interest"`
	TotalRepayment   decimal.Decimal `json:"total_repayment"`
	Entries          []Entry         `json:"entries"`
}

// Compute builds the full schedule for the given terms. annualRatePercent is
// a percentage (12 means 12% p.a.). All monetary figures are rounded
// half-up to whole currency units per period; the final period absorbs the
// accumulated rounding drift so principal components sum exactly to the
// principal and the closing balance is zero.
func Compute(principal, annualRatePercent decimal.Decimal, tenorPeriods int, method Method) (*Result, error) {
	if principal.LessThanOrEqual(decimal.Zero) || tenorPeriods <= 0 || annualRatePercent.IsNegative() {
		return nil, ErrNotComputable
	}
	switch method {
	case MethodFlat:
		return computeFlat(principal, annualRatePercent, tenorPeriods), nil
	case MethodReducingBalance:
		return computeReducing(principal, annualRatePercent, tenorPeriods), nil
	default:
		return nil, ErrNotComputable
	}
}

func computeFlat(principal, ratePercent decimal.Decimal, tenor int) *Result {
	n := decimal.NewFromInt(int64(tenor))

	totalInterest := principal.Mul(ratePercent).Div(decimal.NewFromInt(100)).Round(0)
	totalRepayment := principal.Add(totalInterest)
	perPeriod := totalRepayment.Div(n).Round(0)

	principalPer := principal.Div(n).Round(0)
	interestPer := totalInterest.Div(n).Round(0)

	entries := make([]Entry, 0, tenor)
	balance := principal
	interestLeft := totalInterest

	for p := 1; p <= tenor; p++ {
		principalPart := principalPer
		interestPart := interestPer
		if p == tenor {
			// absorb rounding drift
			principalPart = balance
			interestPart = interestLeft
		} else {
			// on sub-unit amounts the rounded per-period figures can
			// overshoot what is left; never draw a component below zero
			if principalPart.GreaterThan(balance) {
				principalPart = balance
			}
			if interestPart.GreaterThan(interestLeft) {
				interestPart = interestLeft
			}
		}
		balance = balance.Sub(principalPart)
		interestLeft = interestLeft.Sub(interestPart)
		entries = append(entries, Entry{
			Period:    p,
			Payment:   principalPart.Add(interestPart),
			Principal: principalPart,
			Interest:  interestPart,
			Balance:   balance,
		})
	}

	return &Result{
		PerPeriodPayment: perPeriod,
		TotalInterest:    totalInterest,
		TotalRepayment:   totalRepayment,
		Entries:          entries,
	}
}

func computeReducing(principal, ratePercent decimal.Decimal, tenor int) *Result {
	// Monthly rate as float for the power term, decimal for money.
	monthlyRate := ratePercent.InexactFloat64() / 100.0 / 12.0
	monthlyRateDec := decimal.NewFromFloat(monthlyRate)

	var payment decimal.Decimal
	if monthlyRate == 0 {
		payment = principal.Div(decimal.NewFromInt(int64(tenor))).Round(0)
	} else {
		// P * r * (1+r)^n / ((1+r)^n - 1)
		factor := math.Pow(1+monthlyRate, float64(tenor))
		payment = decimal.NewFromFloat(principal.InexactFloat64() * monthlyRate * factor / (factor - 1)).Round(0)
	}

	entries := make([]Entry, 0, tenor)
	balance := principal
	totalInterest := decimal.Zero

	for p := 1; p <= tenor; p++ {
		interest := balance.Mul(monthlyRateDec).Round(0)
		principalPart := payment.Sub(interest)
		periodPayment := payment
		if p == tenor {
			// final period clears the remaining balance exactly
			principalPart = balance
			periodPayment = principalPart.Add(interest)
		}
		balance = balance.Sub(principalPart)
		if balance.IsNegative() {
			balance = decimal.Zero
		}
		totalInterest = totalInterest.Add(interest)
		entries = append(entries, Entry{
			Period:    p,
			Payment:   periodPayment,
			Principal: principalPart,
			Interest:  interest,
			Balance:   balance,
		})
	}

	return &Result{
		PerPeriodPayment: payment,
		TotalInterest:    totalInterest,
		TotalRepayment:   principal.Add(totalInterest),
		Entries:          entries,
	}
}
