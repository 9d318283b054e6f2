package lending

import "github.com/shopspring/decimal"

func decimalFromString(s string) (decimal.Decimal, error) {
	if len(s) <= 0 {
		return decimal.Zero, nil
	}
	return decimal.NewFromString(s)
}
