package locale

import (
	"golang.org/x/text/currency"
	"golang.org/x/text/message"
)

// PriceCurrency - цены каталога хранятся в шекелях
var PriceCurrency = currency.MustParseISO("ILS")

// PriceSymbol - символ валюты цен для языка интерфейса
func PriceSymbol(lang Language) string {
	return message.NewPrinter(lang.Tag()).Sprint(currency.NarrowSymbol(PriceCurrency))
}

// FormatPrice форматирует цену без дробной части с разделителями разрядов локали
func FormatPrice(lang Language, amount int64) string {
	number := message.NewPrinter(lang.Tag()).Sprintf("%d", amount)
	symbol := PriceSymbol(lang)
	if lang == English {
		return symbol + number
	}
	return number + " " + symbol
}

// InterestMessage - текст первого сообщения продавцу в WhatsApp
func InterestMessage(lang Language, brand, model string) string {
	return T(lang,
		"Hello, I am interested in your "+brand+" "+model+" listed on Palestine Car Market.",
		"مرحباً، أنا مهتم بسيارتك "+brand+" "+model+" المعروضة في سوق السيارات الفلسطيني.",
	)
}
