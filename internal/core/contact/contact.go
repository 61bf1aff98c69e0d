package contact

import "strings"

const (
	whatsAppBaseURL = "https://wa.me/"
	phoneScheme     = "tel:"
	upperHex        = "0123456789ABCDEF"
)

// WhatsAppURL строит ссылку wa.me с готовым текстом сообщения.
// Из телефона остаются только цифры 0-9.
func WhatsAppURL(phone, message string) string {
	return whatsAppBaseURL + DigitsOnly(phone) + "?text=" + EncodeURIComponent(message)
}

// PhoneURL - ссылка для звонка, номер передается без изменений
func PhoneURL(phone string) string {
	return phoneScheme + phone
}

// DigitsOnly удаляет из строки все, кроме ASCII-цифр
func DigitsOnly(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); i++ {
		if s[i] >= '0' && s[i] <= '9' {
			b.WriteByte(s[i])
		}
	}
	return b.String()
}

// EncodeURIComponent кодирует строку так же, как encodeURIComponent в браузере:
// латиница, цифры и - _ . ! ~ * ' ( ) остаются, остальные байты UTF-8 идут как %XX.
// url.QueryEscape не подходит: он меняет пробел на "+" и кодирует ! ' ( ) *.
func EncodeURIComponent(s string) string {
	var b strings.Builder
	b.Grow(len(s) * 3)
	for i := 0; i < len(s); i++ {
		c := s[i]
		if isUnreserved(c) {
			b.WriteByte(c)
			continue
		}
		b.WriteByte('%')
		b.WriteByte(upperHex[c>>4])
		b.WriteByte(upperHex[c&0x0F])
	}
	return b.String()
}

func isUnreserved(c byte) bool {
	switch {
	case c >= 'a' && c <= 'z', c >= 'A' && c <= 'Z', c >= '0' && c <= '9':
		return true
	}
	switch c {
	case '-', '_', '.', '!', '~', '*', '\'', '(', ')':
		return true
	}
	return false
}
