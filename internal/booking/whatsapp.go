package booking

import (
	"net/url"
	"strings"
)

// WhatsAppLink builds the wa.me deep link that opens a chat with the
// spa pre-filled with the reservation message. Fire-and-forget: nothing
// here talks to WhatsApp.
func WhatsAppLink(number, message string) string {
	// QueryEscape encodes spaces as '+', which wa.me renders literally.
	encoded := strings.ReplaceAll(url.QueryEscape(message), "+", "%20")
	return "https://wa.me/" + CleanWhatsAppNumber(number) + "?text=" + encoded
}

// CleanWhatsAppNumber strips whitespace, a leading "+" and a leading
// "00" so the number fits the wa.me path form.
func CleanWhatsAppNumber(number string) string {
	cleaned := strings.Join(strings.Fields(number), "")
	cleaned = strings.TrimPrefix(cleaned, "+")
	cleaned = strings.TrimPrefix(cleaned, "00")
	return cleaned
}
