// Package risk scores a loan's risk from its terms and the borrower's
// underwriting attributes. The scorecard is additive and threshold-based so
// every point of the score can be explained to an auditor; it is recomputed
// on every read and never stored.
package risk

import (
	"time"

	"github.com/shopspring/decimal"
)

type Level string

const (
	LevelLow    Level = "low"
	LevelMedium Level = "medium"
	LevelHigh   Level = "high"
)

type Input struct {
	Principal         decimal.Decimal
	AnnualRatePercent decimal.Decimal
	TenorMonths       int

	// Nil when the borrower's date of birth is unknown; the age factor is
	// then skipped, not penalized.
	DateOfBirth   *time.Time
	HasGuarantor  bool
	HasCollateral bool

	// Evaluation time for age calculation. Zero value means "now"; tests
	// pass a fixed time.
	At time.Time
}

type Assessment struct {
	Score int   `json:"risk_score"`
	Level Level `json:"risk_level"`
	// CreditScore is a derived 300-850 figure mapped from the risk score.
	// Placeholder for a credit-bureau integration; deterministic on purpose.
	CreditScore int `json:"credit_score"`
}

var (
	band100k = decimal.NewFromInt(100_000)
	band50k  = decimal.NewFromInt(50_000)
	band20k  = decimal.NewFromInt(20_000)
	band20pc = decimal.NewFromInt(20)
	band15pc = decimal.NewFromInt(15)
)

// Classify sums five independent factors and bands the total:
// >=60 high, >=40 medium, otherwise low.
func Classify(in Input) Assessment {
	score := amountPoints(in.Principal) +
		ratePoints(in.AnnualRatePercent) +
		tenorPoints(in.TenorMonths) +
		agePoints(in.DateOfBirth, in.At) +
		securityPoints(in.HasGuarantor, in.HasCollateral)

	level := LevelLow
	switch {
	case score >= 60:
		level = LevelHigh
	case score >= 40:
		level = LevelMedium
	}

	return Assessment{Score: score, Level: level, CreditScore: creditScore(score)}
}

func amountPoints(principal decimal.Decimal) int {
	switch {
	case principal.GreaterThan(band100k):
		return 30
	case principal.GreaterThan(band50k):
		return 20
	case principal.GreaterThan(band20k):
		return 10
	default:
		return 5
	}
}

func ratePoints(rate decimal.Decimal) int {
	switch {
	case rate.GreaterThan(band20pc):
		return 20
	case rate.GreaterThan(band15pc):
		return 10
	default:
		return 5
	}
}

func tenorPoints(tenor int) int {
	switch {
	case tenor > 24:
		return 15
	case tenor > 12:
		return 10
	default:
		return 5
	}
}

func agePoints(dob *time.Time, at time.Time) int {
	if dob == nil {
		return 0
	}
	if at.IsZero() {
		at = time.Now().UTC()
	}
	age := yearsBetween(*dob, at)
	switch {
	case age < 25 || age > 65:
		return 20
	case age < 30 || age > 60:
		return 10
	default:
		return 5
	}
}

func securityPoints(guarantor, collateral bool) int {
	switch {
	case guarantor && collateral:
		return 0
	case guarantor || collateral:
		return 10
	default:
		return 15
	}
}

// creditScore maps the risk score onto a 300-850 bureau-style scale.
func creditScore(score int) int {
	cs := 850 - score*5
	if cs < 300 {
		cs = 300
	}
	return cs
}

func yearsBetween(from, to time.Time) int {
	years := to.Year() - from.Year()
	// not yet had the birthday this year
	if to.Month() < from.Month() || (to.Month() == from.Month() && to.Day() < from.Day()) {
		years--
	}
	return years
}
