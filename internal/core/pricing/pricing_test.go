package pricing

import (
	"testing"

	"github.com/shopspring/decimal"

	perr "panelgrid/internal/platform/errors"
)

func dec(s string) decimal.Decimal {
	d, err := decimal.NewFromString(s)
	if err != nil {
		panic(err)
	}
	return d
}

func decPtr(s string) *decimal.Decimal {
	d := dec(s)
	return &d
}

func TestComputeCPI_RevShareWithAdminFee(t *testing.T) {
	t.Parallel()

	// base 10.00, admin fee 10% -> 9.00, rev share 50% -> 4.50
	pol := Policy{
		IsRevenueShare:  true,
		RevSharePercent: dec("50"),
		AdminFeeEnabled: true,
	}
	got := ComputeCPI(dec("10.00"), pol, dec("10"))
	if Money(got) != "4.50" {
		t.Fatalf("CPI = %s, want 4.50", Money(got))
	}
}

func TestComputeCPI_CapCeiling(t *testing.T) {
	t.Parallel()

	pol := Policy{
		IsRevenueShare:  true,
		RevSharePercent: dec("50"),
		AdminFeeEnabled: true,
		CapAmount:       decPtr("4.00"),
	}
	got := ComputeCPI(dec("10.00"), pol, dec("10"))
	if Money(got) != "4.00" {
		t.Fatalf("CPI = %s, want 4.00", Money(got))
	}
}

func TestComputeCPI_FlatRateDominates(t *testing.T) {
	t.Parallel()

	pol := Policy{
		IsRevenueShare:  false,
		FlatRate:        decPtr("7.5"),
		RevSharePercent: dec("50"),
		AdminFeeEnabled: true,
	}
	for _, base := range []string{"0", "0.01", "10.00", "9999.99"} {
		got := ComputeCPI(dec(base), pol, dec("35"))
		if Money(got) != "7.50" {
			t.Fatalf("base %s: CPI = %s, want 7.50", base, Money(got))
		}
	}
}

func TestComputeCPI_NegativeFlatRateFallsThrough(t *testing.T) {
	t.Parallel()

	// a negative flat rate is not usable; the rev share path prices instead
	pol := Policy{
		IsRevenueShare:  false,
		FlatRate:        decPtr("-1"),
		RevSharePercent: dec("50"),
	}
	got := ComputeCPI(dec("10.00"), pol, decimal.Zero)
	if Money(got) != "5.00" {
		t.Fatalf("CPI = %s, want 5.00", Money(got))
	}
}

func TestComputeCPI_ZeroRevShareIsValid(t *testing.T) {
	t.Parallel()

	pol := Policy{IsRevenueShare: true, RevSharePercent: decimal.Zero}
	got := ComputeCPI(dec("12.34"), pol, decimal.Zero)
	if Money(got) != "0.00" {
		t.Fatalf("CPI = %s, want 0.00", Money(got))
	}
}

func TestComputeCPI_AdminFeeIgnoredWhenDisabled(t *testing.T) {
	t.Parallel()

	pol := Policy{IsRevenueShare: true, RevSharePercent: dec("50")}
	got := ComputeCPI(dec("10.00"), pol, dec("10"))
	if Money(got) != "5.00" {
		t.Fatalf("CPI = %s, want 5.00 when admin fee disabled", Money(got))
	}
}

func TestComputeCPI_CapComparesUnroundedValue(t *testing.T) {
	t.Parallel()

	// rev share result 4.0010 rounds to 4.00 but exceeds a 4.0005 cap,
	// so the cap wins and is itself rounded
	pol := Policy{
		IsRevenueShare:  true,
		RevSharePercent: dec("100"),
		CapAmount:       decPtr("4.0005"),
	}
	got := ComputeCPI(dec("4.0010"), pol, decimal.Zero)
	if Money(got) != "4.00" {
		t.Fatalf("CPI = %s, want 4.00", Money(got))
	}
	if !got.Equal(dec("4.0005").Round(2)) {
		t.Fatalf("cap was not the rounded source of the result")
	}
}

func TestComputeCPI_RoundHalfAwayFromZero(t *testing.T) {
	t.Parallel()

	pol := Policy{IsRevenueShare: true, RevSharePercent: dec("50")}
	// 50% of 0.05 = 0.025 -> 0.03 (half away from zero)
	got := ComputeCPI(dec("0.05"), pol, decimal.Zero)
	if Money(got) != "0.03" {
		t.Fatalf("CPI = %s, want 0.03", Money(got))
	}
}

func TestComputeCPI_MonotoneInRevShare(t *testing.T) {
	t.Parallel()

	base := dec("13.37")
	fee := dec("12.5")
	prev := decimal.NewFromInt(-1)
	for pct := 0; pct <= 100; pct += 5 {
		pol := Policy{
			IsRevenueShare:  true,
			RevSharePercent: decimal.NewFromInt(int64(pct)),
			AdminFeeEnabled: true,
		}
		got := ComputeCPI(base, pol, fee)
		if got.LessThan(prev) {
			t.Fatalf("CPI decreased at revShare=%d: %s < %s", pct, Money(got), Money(prev))
		}
		prev = got
	}
}

func TestPolicy_Validate(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name    string
		pol     Policy
		wantErr bool
	}{
		{"rev share ok", Policy{IsRevenueShare: true, RevSharePercent: dec("40")}, false},
		{"flat ok", Policy{FlatRate: decPtr("2.50")}, false},
		{"zero percent ok", Policy{IsRevenueShare: true}, false},
		{"negative percent", Policy{IsRevenueShare: true, RevSharePercent: dec("-1")}, true},
		{"negative cap", Policy{IsRevenueShare: true, RevSharePercent: dec("40"), CapAmount: decPtr("-4")}, true},
		{"flat mode without rate", Policy{}, true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.pol.Validate()
			if tc.wantErr && perr.CodeOf(err) != perr.ErrorCodePolicy {
				t.Fatalf("expected policy error, got %v", err)
			}
			if !tc.wantErr && err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
		})
	}
}
