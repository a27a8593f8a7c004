package bar

import "github.com/shopspring/decimal"

// GetClosePrice returns the closing price of a bar
func (b *Bar) GetClosePrice() decimal.Decimal {
	return b.Close
}

// IsBar helps distinguish a data event from notification events that embed
// the same base
func (b *Bar) IsBar() bool {
	return true
}
