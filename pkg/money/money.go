package money

import "github.com/shopspring/decimal"

// Epsilon is the shared half-a-cent tolerance. The same constant drives
// settlement validation, the fully-paid flag and outstanding-amount flooring,
// so the three can never disagree about what "settled" means.
var Epsilon = decimal.NewFromFloat(0.005)

// Outstanding returns owed minus paid, floored at zero. A difference below
// Epsilon counts as zero so a near-settled debt cannot leave a tiny residue
// that keeps showing up in balances.
func Outstanding(owed, paid decimal.Decimal) decimal.Decimal {
	diff := owed.Sub(paid)
	if diff.LessThan(Epsilon) {
		return decimal.Zero
	}
	return diff
}

// IsSettled reports whether paid covers owed within Epsilon.
func IsSettled(owed, paid decimal.Decimal) bool {
	return owed.Sub(paid).Abs().LessThan(Epsilon)
}
