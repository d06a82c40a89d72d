package whatsapp_test

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/henriquedps/uzzestore/internal/models"
	"github.com/henriquedps/uzzestore/pkg/whatsapp"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestOrderLink(t *testing.T) {
	builder := whatsapp.NewLinkBuilder("", "")

	t.Run("Prefixes Country Code And Escapes Text", func(t *testing.T) {
		// Act
		link := builder.OrderLink("11987654321", "Oi")

		// Assert
		assert.Equal(t, "https://wa.me/5511987654321?text=Oi", link)
	})

	t.Run("Keeps An Existing Country Code", func(t *testing.T) {
		// Act
		link := builder.OrderLink("+55 (11) 98765-4321", "Oi")

		// Assert
		assert.Equal(t, "https://wa.me/5511987654321?text=Oi", link)
	})

	t.Run("Percent Encodes The Message", func(t *testing.T) {
		// Act
		link := builder.OrderLink("11987654321", "Novo pedido #A1B2")

		// Assert
		assert.Contains(t, link, "text=Novo+pedido+%23A1B2")
	})

	t.Run("Honours Custom Host", func(t *testing.T) {
		// Arrange
		custom := whatsapp.NewLinkBuilder("api.whatsapp.com", "55")

		// Act
		link := custom.OrderLink("11987654321", "Oi")

		// Assert
		assert.Equal(t, "https://api.whatsapp.com/5511987654321?text=Oi", link)
	})
}

func TestComposeMessage(t *testing.T) {

	newOrder := func() *models.Order {
		return &models.Order{
			ID: uuid.MustParse("a1b2c3d4-0000-0000-0000-000000000000"),
			Buyer: models.Buyer{
				Name:  "Maria Silva",
				Email: "maria@example.com",
				Phone: "11987654321",
			},
			Address: models.Address{
				ZIP:        "01310-100",
				Street:     "Av. Paulista",
				Number:     "1000",
				Complement: "Apto 42",
				District:   "Bela Vista",
				City:       "São Paulo",
				State:      "SP",
			},
			PaymentMethod: "pix",
			Total:         decimal.RequireFromString("59.80"),
			Items: []models.OrderItem{
				{
					ProductID: 1,
					Name:      "Camiseta Básica",
					UnitPrice: decimal.RequireFromString("29.90"),
					Quantity:  2,
					Size:      "M",
					Color:     "Azul",
					Subtotal:  decimal.RequireFromString("59.80"),
				},
			},
			Status:    models.OrderStatusPending,
			CreatedAt: time.Date(2026, 3, 14, 15, 4, 0, 0, time.UTC),
		}
	}

	t.Run("Renders Every Section", func(t *testing.T) {
		// Act
		msg := whatsapp.ComposeMessage(newOrder())

		// Assert
		assert.Contains(t, msg, "*Novo pedido #A1B2C3D4*")
		assert.Contains(t, msg, "Data: 14/03/2026 15:04")
		assert.Contains(t, msg, "Nome: Maria Silva")
		assert.Contains(t, msg, "Telefone: 11987654321")
		assert.Contains(t, msg, "Av. Paulista, 1000 - Apto 42")
		assert.Contains(t, msg, "Bela Vista - São Paulo/SP")
		assert.Contains(t, msg, "CEP: 01310-100")
		assert.Contains(t, msg, "- Camiseta Básica (M/Azul) x2 — R$ 29,90 — R$ 59,80")
		assert.Contains(t, msg, "Pagamento: pix")
		assert.Contains(t, msg, "*Total: R$ 59,80*")
	})

	t.Run("Omits Optional Fields When Empty", func(t *testing.T) {
		// Arrange
		order := newOrder()
		order.Buyer.Phone = ""
		order.Address.Complement = ""

		// Act
		msg := whatsapp.ComposeMessage(order)

		// Assert
		assert.NotContains(t, msg, "Telefone:")
		assert.Contains(t, msg, "Av. Paulista, 1000\n")
	})
}

func TestFormatBRL(t *testing.T) {
	tests := []struct {
		value    string
		expected string
	}{
		{"59.80", "R$ 59,80"},
		{"0", "R$ 0,00"},
		{"1234.5", "R$ 1234,50"},
	}

	for _, tc := range tests {
		assert.Equal(t, tc.expected, whatsapp.FormatBRL(decimal.RequireFromString(tc.value)))
	}
}
