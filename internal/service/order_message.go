package service

import (
	"fmt"
	"strings"
	"time"

	"github.com/vitrine-store/vitrine/internal/domain"
)

// ComposeMessage renders the order notification in the format the chat bot
// expects: header, customer identification, optional notes, one block per
// line item, grand total and timestamp. Unit prices prefer the discounted
// price when present.
func ComposeMessage(req domain.OrderRequest, items []domain.CartItem, totalCents int64, submittedAt time.Time) string {
	var b strings.Builder

	b.WriteString("*Novo Pedido Recebido!*\n\n")
	fmt.Fprintf(&b, "*CNPJ / Codigo:* %s\n", req.CustomerCode)
	if req.Notes != "" {
		fmt.Fprintf(&b, "*Observações:* %s\n", req.Notes)
	}
	b.WriteString("\n*Itens do Pedido:*\n\n")

	for _, item := range items {
		fmt.Fprintf(&b, "Codigo: %d\n", item.Code)
		fmt.Fprintf(&b, "Produto: %s\n", item.Description)
		fmt.Fprintf(&b, "Quantidade: %d\n", item.Quantity)
		fmt.Fprintf(&b, "ValorUn: %s\n", FormatCents(item.UnitPriceCents()))
		fmt.Fprintf(&b, "ValorTot: %s\n\n", FormatCents(item.LineTotalCents()))
	}

	fmt.Fprintf(&b, "\n*Total:* %s\n", FormatCents(totalCents))
	fmt.Fprintf(&b, "*Data/Hora:* %s\n", submittedAt.Format("02/01/2006 15:04:05"))

	return b.String()
}

// FormatCents renders integer minor units as Brazilian currency,
// e.g. 123456 -> "R$ 1.234,56".
func FormatCents(cents int64) string {
	sign := ""
	if cents < 0 {
		sign = "-"
		cents = -cents
	}

	reais := cents / 100
	centavos := cents % 100

	digits := fmt.Sprintf("%d", reais)
	var grouped strings.Builder
	for i, d := range digits {
		if i > 0 && (len(digits)-i)%3 == 0 {
			grouped.WriteByte('.')
		}
		grouped.WriteRune(d)
	}

	return fmt.Sprintf("%sR$ %s,%02d", sign, grouped.String(), centavos)
}
