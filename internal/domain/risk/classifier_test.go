package risk

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
)

var evalAt = time.Date(2026, 8, 30, 0, 0, 0, 0, time.UTC)

func dob(age int) *time.Time {
	d := evalAt.AddDate(-age, 0, -1) // had the birthday just before evalAt
	return &d
}

func baseInput() Input {
	return Input{
		Principal:         decimal.NewFromInt(10_000),
		AnnualRatePercent: decimal.NewFromInt(10),
		TenorMonths:       6,
		HasGuarantor:      true,
		HasCollateral:     true,
		At:                evalAt,
	}
}

func TestClassify_ReferenceScenario(t *testing.T) {
	// 150k at 22% over 30 periods, no security, unknown age
	a := Classify(Input{
		Principal:         decimal.NewFromInt(150_000),
		AnnualRatePercent: decimal.NewFromInt(22),
		TenorMonths:       30,
		At:                evalAt,
	})
	if a.Score != 80 {
		t.Fatalf("score = %d, want 80 (30+20+15+0+15)", a.Score)
	}
	if a.Level != LevelHigh {
		t.Fatalf("level = %s, want high", a.Level)
	}
}

func TestClassify_MinimalRisk(t *testing.T) {
	// amount 5, rate 5, tenor 5, age skipped (no DOB), both securities 0
	a := Classify(baseInput())
	if a.Score != 15 {
		t.Fatalf("score = %d, want 15", a.Score)
	}
	if a.Level != LevelLow {
		t.Fatalf("level = %s, want low", a.Level)
	}
}

func TestClassify_LevelBands(t *testing.T) {
	cases := []struct {
		name  string
		in    Input
		score int
		level Level
	}{
		{
			// 20+10+10+0+0 = 40 → medium edge
			"medium lower edge",
			Input{
				Principal:         decimal.NewFromInt(60_000),
				AnnualRatePercent: decimal.NewFromInt(16),
				TenorMonths:       18,
				HasGuarantor:      true,
				HasCollateral:     true,
				At:                evalAt,
			},
			40, LevelMedium,
		},
		{
			// 30+10+10+0+10 = 60 → high edge
			"high lower edge",
			Input{
				Principal:         decimal.NewFromInt(150_000),
				AnnualRatePercent: decimal.NewFromInt(16),
				TenorMonths:       18,
				HasGuarantor:      true,
				At:                evalAt,
			},
			60, LevelHigh,
		},
		{
			// 10+5+5+0+15 = 35 → still low
			"just below medium",
			Input{
				Principal:         decimal.NewFromInt(30_000),
				AnnualRatePercent: decimal.NewFromInt(10),
				TenorMonths:       6,
				At:                evalAt,
			},
			35, LevelLow,
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			a := Classify(tc.in)
			if a.Score != tc.score {
				t.Fatalf("score = %d, want %d", a.Score, tc.score)
			}
			if a.Level != tc.level {
				t.Fatalf("level = %s, want %s", a.Level, tc.level)
			}
		})
	}
}

func TestClassify_AgeBands(t *testing.T) {
	cases := []struct {
		age    int
		points int
	}{
		{22, 20}, {70, 20}, // outside 25-65
		{27, 10}, {62, 10}, // outside 30-60
		{35, 5}, {45, 5},
	}
	for _, tc := range cases {
		in := baseInput()
		in.DateOfBirth = dob(tc.age)
		withAge := Classify(in).Score

		in.DateOfBirth = nil
		without := Classify(in).Score

		if got := withAge - without; got != tc.points {
			t.Fatalf("age %d contributed %d points, want %d", tc.age, got, tc.points)
		}
	}
}

func TestClassify_UnknownAgeSkipped(t *testing.T) {
	in := baseInput()
	in.DateOfBirth = nil
	a := Classify(in)
	if a.Score != 15 { // no age contribution at all
		t.Fatalf("score = %d, want 15", a.Score)
	}
}

func TestClassify_SecurityFactor(t *testing.T) {
	in := baseInput()

	in.HasGuarantor, in.HasCollateral = true, true
	both := Classify(in).Score
	in.HasGuarantor, in.HasCollateral = true, false
	one := Classify(in).Score
	in.HasGuarantor, in.HasCollateral = false, false
	neither := Classify(in).Score

	if one-both != 10 {
		t.Fatalf("single security adds %d, want 10", one-both)
	}
	if neither-both != 15 {
		t.Fatalf("no security adds %d, want 15", neither-both)
	}
}

// Score must never drop as principal, rate, or tenor grow.
func TestClassify_Monotonic(t *testing.T) {
	principals := []int64{5_000, 25_000, 60_000, 120_000, 500_000}
	prev := -1
	for _, p := range principals {
		in := baseInput()
		in.Principal = decimal.NewFromInt(p)
		if s := Classify(in).Score; s < prev {
			t.Fatalf("score dropped to %d at principal %d", s, p)
		} else {
			prev = s
		}
	}

	rates := []int64{5, 12, 16, 20, 25, 40}
	prev = -1
	for _, r := range rates {
		in := baseInput()
		in.AnnualRatePercent = decimal.NewFromInt(r)
		if s := Classify(in).Score; s < prev {
			t.Fatalf("score dropped to %d at rate %d", s, r)
		} else {
			prev = s
		}
	}

	tenors := []int{3, 12, 13, 24, 25, 60}
	prev = -1
	for _, n := range tenors {
		in := baseInput()
		in.TenorMonths = n
		if s := Classify(in).Score; s < prev {
			t.Fatalf("score dropped to %d at tenor %d", s, n)
		} else {
			prev = s
		}
	}
}

func TestClassify_CreditScoreDerivedAndClamped(t *testing.T) {
	a := Classify(baseInput()) // score 15
	if a.CreditScore != 850-15*5 {
		t.Fatalf("credit score = %d, want %d", a.CreditScore, 850-15*5)
	}

	// max out every factor: 30+20+15+20+15 = 100 → 850-500 = 350
	in := Input{
		Principal:         decimal.NewFromInt(500_000),
		AnnualRatePercent: decimal.NewFromInt(30),
		TenorMonths:       48,
		DateOfBirth:       dob(71),
		At:                evalAt,
	}
	worst := Classify(in)
	if worst.Score != 100 {
		t.Fatalf("score = %d, want 100", worst.Score)
	}
	if worst.CreditScore != 350 {
		t.Fatalf("credit score = %d, want 350", worst.CreditScore)
	}

	// the 300 floor only engages past the current factor maximums; it guards
	// the bureau scale's lower bound if scorecard weights grow
	if got := creditScore(120); got != 300 {
		t.Fatalf("creditScore(120) = %d, want floor 300", got)
	}
	if got := creditScore(0); got != 850 {
		t.Fatalf("creditScore(0) = %d, want 850", got)
	}
}

// Same input, same output: the classifier must never be random.
func TestClassify_Deterministic(t *testing.T) {
	in := Input{
		Principal:         decimal.NewFromInt(80_000),
		AnnualRatePercent: decimal.NewFromInt(18),
		TenorMonths:       20,
		DateOfBirth:       dob(28),
		HasGuarantor:      true,
		At:                evalAt,
	}
	first := Classify(in)
	for i := 0; i < 50; i++ {
		if got := Classify(in); got != first {
			t.Fatalf("classification changed between calls: %+v vs %+v", got, first)
		}
	}
}
