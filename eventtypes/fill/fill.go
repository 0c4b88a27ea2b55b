package fill

import (
	"github.com/shopspring/decimal"

	"github.com/webclinic017/EventDrivenTradingSystem/common"
)

var (
	flatMinimumCommission = decimal.NewFromInt(10)
	commissionRate        = decimal.NewFromFloat(0.001)
)

// IsFill returns whether the event is a fill event
func (f *Fill) IsFill() bool {
	return true
}

// SetDirection sets the side of the fill
func (f *Fill) SetDirection(d common.Direction) {
	f.Direction = d
}

// GetDirection returns the side of the fill
func (f *Fill) GetDirection() common.Direction {
	return f.Direction
}

// GetQuantity returns the number of units transacted
func (f *Fill) GetQuantity() int64 {
	return f.Quantity
}

// GetPrice returns the price per unit the fill transacted at
func (f *Fill) GetPrice() decimal.Decimal {
	return f.Price
}

// GetCommission returns the transaction costs incurred by the fill
func (f *Fill) GetCommission() decimal.Decimal {
	return f.Commission
}

// GetExchange returns the exchange the fill transacted on
func (f *Fill) GetExchange() string {
	return f.Exchange
}

// DefaultCommission is the commission applied when the fill source does not
// supply one: a flat minimum or ten basis points of notional, whichever is larger
func DefaultCommission(price decimal.Decimal, quantity int64) decimal.Decimal {
	c := commissionRate.Mul(price).Mul(decimal.NewFromInt(quantity))
	if c.LessThan(flatMinimumCommission) {
		return flatMinimumCommission
	}
	return c
}
