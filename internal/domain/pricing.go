package domain

import "math"

// Quote derived pricing for the current draft
type Quote struct {
	BasePrice float64 // per person
	PartySize int
	Total     float64
	Deposit   float64 // 30% of total, required to confirm the booking
}

// CalculateQuote derives the total price and the required deposit from the
// course base price and the party size. Pure function; the flow recomputes
// it on every snapshot because the party size can still change via
// backward navigation.
func CalculateQuote(basePrice float64, partySize int) Quote {
	total := basePrice * float64(partySize)
	return Quote{
		BasePrice: basePrice,
		PartySize: partySize,
		Total:     roundMoney(total),
		Deposit:   roundMoney(total * DepositRate),
	}
}

// roundMoney округляет сумму до двух знаков (центов)
func roundMoney(v float64) float64 {
	return math.Round(v*100) / 100
}
