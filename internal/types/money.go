// README: Common money value object used across modules.
package types

import "strconv"

const DefaultCurrency = "INR"

type Money struct {
	Amount   int64  `json:"amount"`
	Currency string `json:"currency"`
}

func (m Money) String() string {
	return strconv.FormatInt(m.Amount, 10) + " " + m.Currency
}
