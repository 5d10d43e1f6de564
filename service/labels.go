package service

import "github.com/shopspring/decimal"

// formatParam prints a parameter the way a person typed it: no float noise
// and no trailing zeros.
func formatParam(v float64) string {
	return decimal.NewFromFloat(v).Round(labelPrecision).String()
}
