package order

import "time"

// quoteValidityDays is how long a generated quote stays valid.
const quoteValidityDays = 30

// NewQuote derives a quote from a finalized order. The amount is a snapshot
// of the order total and the expiry is fixed at generation time plus 30
// days; later order mutations never touch the quote.
func NewQuote(o *Order, at time.Time) *Quote {
	return &Quote{
		OrderID:     o.ID,
		QuoteAmount: o.TotalAmount,
		ValidUntil:  at.AddDate(0, 0, quoteValidityDays),
	}
}
