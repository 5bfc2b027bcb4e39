package entity

import "github.com/shopspring/decimal"

// MoneyPlaces is the scale amounts are persisted with (numeric(10,2)).
const MoneyPlaces = 2

// RoundMoney rounds an amount to the persisted scale, half away from zero.
func RoundMoney(amount decimal.Decimal) decimal.Decimal {
	return amount.Round(MoneyPlaces)
}

// ItemPrice returns the dish base price plus the extras of the selected options.
// An option's own Extra wins when it is set and non-zero; otherwise the selected
// choice's Extra is used. Names that match nothing contribute zero.
func (d *Dish) ItemPrice(selected []OrderItemOption) decimal.Decimal {
	total := d.Price
	for _, sel := range selected {
		total = total.Add(d.optionExtra(sel))
	}

	return total
}

func (d *Dish) optionExtra(sel OrderItemOption) decimal.Decimal {
	for _, opt := range d.Options {
		if opt.Name != sel.Name {
			continue
		}
		if opt.Extra != nil && !opt.Extra.IsZero() {
			return *opt.Extra
		}
		for _, choice := range opt.Choices {
			if choice.Name == sel.Choice && choice.Extra != nil {
				return *choice.Extra
			}
		}

		return decimal.Zero
	}

	return decimal.Zero
}
