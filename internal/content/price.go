package content

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Price is an amount in Brazilian reais, stored in cents.
type Price struct {
	Cents int64 `yaml:"cents" validate:"min=1"`
}

const currencySymbol = "R$"

var brl = message.NewPrinter(language.BrazilianPortuguese)

// Full formats the price with two decimals, e.g. "R$ 497,00".
func (p Price) Full() string {
	return currencySymbol + " " + brl.Sprintf("%.2f", float64(p.Cents)/100)
}

// Short drops the decimals of whole amounts, e.g. "R$ 197".
func (p Price) Short() string {
	if p.Cents%100 != 0 {
		return p.Full()
	}
	return currencySymbol + " " + brl.Sprintf("%d", p.Cents/100)
}
