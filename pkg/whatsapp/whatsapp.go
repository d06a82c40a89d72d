// Package whatsapp renders the human-readable order summary and the deep
// link that opens the conversation with the store pre-filled. Both are pure
// string transforms; nothing here touches the network.
package whatsapp

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/henriquedps/uzzestore/internal/models"
	"github.com/shopspring/decimal"
)

const (
	DefaultHost          = "wa.me"
	DefaultCountryPrefix = "55"
)

type LinkBuilder struct {
	Host          string
	CountryPrefix string
}

func NewLinkBuilder(host, countryPrefix string) LinkBuilder {
	if host == "" {
		host = DefaultHost
	}

	if countryPrefix == "" {
		countryPrefix = DefaultCountryPrefix
	}

	return LinkBuilder{Host: host, CountryPrefix: countryPrefix}
}

// OrderLink normalizes the phone number to digits, prefixes the country
// code when missing and percent-encodes the message text.
func (b LinkBuilder) OrderLink(phone, text string) string {
	digits := onlyDigits(phone)

	if !strings.HasPrefix(digits, b.CountryPrefix) {
		digits = b.CountryPrefix + digits
	}

	return fmt.Sprintf("https://%s/%s?text=%s", b.Host, digits, url.QueryEscape(text))
}

// ComposeMessage builds the fixed-section order summary. Optional buyer
// fields (phone, address complement) are left out of their section instead
// of being printed empty.
func ComposeMessage(order *models.Order) string {
	var b strings.Builder

	fmt.Fprintf(&b, "*Novo pedido #%s*\n", strings.ToUpper(order.Reference()))
	fmt.Fprintf(&b, "Data: %s\n", order.CreatedAt.Format("02/01/2006 15:04"))

	b.WriteString("\n*Cliente*\n")
	fmt.Fprintf(&b, "Nome: %s\n", order.Buyer.Name)
	fmt.Fprintf(&b, "Email: %s\n", order.Buyer.Email)

	if order.Buyer.Phone != "" {
		fmt.Fprintf(&b, "Telefone: %s\n", order.Buyer.Phone)
	}

	b.WriteString("\n*Endereço de entrega*\n")

	street := fmt.Sprintf("%s, %s", order.Address.Street, order.Address.Number)
	if order.Address.Complement != "" {
		street += " - " + order.Address.Complement
	}

	fmt.Fprintf(&b, "%s\n", street)
	fmt.Fprintf(&b, "%s - %s/%s\n", order.Address.District, order.Address.City, order.Address.State)
	fmt.Fprintf(&b, "CEP: %s\n", order.Address.ZIP)

	b.WriteString("\n*Itens*\n")

	for _, item := range order.Items {
		fmt.Fprintf(&b, "- %s (%s/%s) x%d — %s — %s\n",
			item.Name, item.Size, item.Color, item.Quantity,
			FormatBRL(item.UnitPrice), FormatBRL(item.Subtotal))
	}

	fmt.Fprintf(&b, "\nPagamento: %s\n", order.PaymentMethod)
	fmt.Fprintf(&b, "*Total: %s*\n", FormatBRL(order.Total))

	return b.String()
}

// FormatBRL renders a value the way the store always has: "R$ 59,80".
func FormatBRL(value decimal.Decimal) string {
	return "R$ " + strings.Replace(value.StringFixed(2), ".", ",", 1)
}

func onlyDigits(s string) string {
	var b strings.Builder

	for _, r := range s {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}

	return b.String()
}
