package impl

import (
	"math"
	"strconv"

	"github.com/pkg/errors"
)

// parseAmount parses a numeric money string such as "19.99". Negative
// amounts are rejected; money never goes below zero in this domain.
func parseAmount(s string) (float64, error) {
	amount, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, errors.Wrapf(err, "invalid amount %q", s)
	}
	if amount < 0 || math.IsInf(amount, 0) || math.IsNaN(amount) {
		return 0, errors.Errorf("invalid amount %q", s)
	}

	return amount, nil
}

// formatAmount renders a money value back to its canonical two-decimal
// string form.
func formatAmount(amount float64) string {
	return strconv.FormatFloat(roundCents(amount), 'f', 2, 64)
}

// roundCents rounds to two decimals, the precision everything monetary is
// stored at.
func roundCents(amount float64) float64 {
	return math.Round(amount*100) / 100
}

// sameCents reports whether two amounts agree within one cent. Used to
// compare a client-claimed total against the server-side recomputation.
func sameCents(a, b float64) bool {
	return math.Abs(a-b) < 0.01+1e-9
}
