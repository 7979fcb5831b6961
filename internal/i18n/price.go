package i18n

import "fmt"

// PriceConverter конвертирует цены из GBP в валюту отображения.
// Курсы загружаются из конфигурации при старте и не обновляются
// на лету - это только отображение, расчеты ведутся в GBP.
type PriceConverter struct {
	rates map[string]float64
}

// NewPriceConverter создает конвертер с курсами валют к GBP
func NewPriceConverter(rates map[string]float64) *PriceConverter {
	normalized := make(map[string]float64, len(rates)+1)
	for code, rate := range rates {
		normalized[code] = rate
	}
	normalized["GBP"] = 1.0
	return &PriceConverter{rates: normalized}
}

// currencySymbols символы валют отображения
var currencySymbols = map[string]string{
	"GBP": "£",
	"EUR": "€",
	"JPY": "¥",
	"CNY": "¥",
	"USD": "$",
}

// Convert переводит сумму из GBP в валюту и форматирует строку для экрана.
// Неизвестная валюта отображается в GBP.
func (c *PriceConverter) Convert(amountGBP float64, currency string) string {
	rate, ok := c.rates[currency]
	if !ok {
		currency = "GBP"
		rate = 1.0
	}

	amount := amountGBP * rate
	symbol, ok := currencySymbols[currency]
	if !ok {
		symbol = currency + " "
	}

	// JPY и CNY принято показывать без дробной части
	if currency == "JPY" || currency == "CNY" {
		return fmt.Sprintf("%s%.0f", symbol, amount)
	}
	return fmt.Sprintf("%s%.2f", symbol, amount)
}
