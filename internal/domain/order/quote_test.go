package order

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

func TestNewQuote(t *testing.T) {
	ord := &Order{
		ID:          uuid.New(),
		TotalAmount: decimal.RequireFromString("1234.56"),
	}
	at := time.Date(2025, time.March, 1, 10, 30, 0, 0, time.UTC)

	quote := NewQuote(ord, at)

	if quote.OrderID != ord.ID {
		t.Errorf("order id = %s, want %s", quote.OrderID, ord.ID)
	}
	if !quote.QuoteAmount.Equal(ord.TotalAmount) {
		t.Errorf("amount = %s, want %s", quote.QuoteAmount, ord.TotalAmount)
	}
	want := time.Date(2025, time.March, 31, 10, 30, 0, 0, time.UTC)
	if !quote.ValidUntil.Equal(want) {
		t.Errorf("valid until = %s, want creation + 30 days (%s)", quote.ValidUntil, want)
	}
}

func TestQuoteAmountIsASnapshot(t *testing.T) {
	ord := &Order{ID: uuid.New(), TotalAmount: decimal.RequireFromString("100.00")}
	quote := NewQuote(ord, time.Now())

	ord.TotalAmount = decimal.RequireFromString("999.00")

	if !quote.QuoteAmount.Equal(decimal.RequireFromString("100.00")) {
		t.Errorf("amount = %s, want the 100.00 snapshot independent of later order mutation", quote.QuoteAmount)
	}
}
