package checkout

import (
	"fmt"
	"net/url"
	"slices"
	"strings"

	"github.com/Sr-Das-Ofertas/probotsv2/models"
	"github.com/Sr-Das-Ofertas/probotsv2/pricing"
)

// ComposeOrderMessage builds the plain-text WhatsApp order from the cart and
// the validated customer data. Items appear in insertion order; unit prices
// and the total go through the shared price formatter. The composer does not
// check preconditions (empty cart, missing recipient) — the checkout flow
// does that before calling it.
func ComposeOrderMessage(cart models.Cart, user models.UserData) string {
	var b strings.Builder

	b.WriteString("🛒 *PEDIDO PROBOOTS* 🛒\n\n")

	b.WriteString("*DADOS DO CLIENTE:*\n")
	fmt.Fprintf(&b, "Nome: %s\n", user.Name)
	fmt.Fprintf(&b, "CPF: %s\n", user.CPF)
	fmt.Fprintf(&b, "Telefone: %s\n", user.Phone)

	addressParts := []string{
		user.Street,
		user.Number,
		user.Neighborhood,
		user.City + " - " + user.State,
		"CEP: " + user.CEP,
	}
	if user.Complement != "" {
		// complement slots in right after the street number
		addressParts = slices.Insert(addressParts, 2, user.Complement)
	}
	fmt.Fprintf(&b, "Endereço: %s\n", strings.Join(addressParts, ", "))
	b.WriteString("✅ Cliente concordou com envio via Transportadora Flex\n\n")

	b.WriteString("----------\n\n")

	b.WriteString("*ITENS DO PEDIDO:*\n")
	for i, item := range cart.Items {
		fmt.Fprintf(&b, "%d. *%s*\n", i+1, item.Product.Name)
		if item.Size != "" {
			fmt.Fprintf(&b, "   Tamanho: %s\n", item.Size)
		}
		fmt.Fprintf(&b, "   Quantidade: %d\n", item.Quantity)
		fmt.Fprintf(&b, "   Valor: %s\n\n", pricing.FormatPrice(item.Product.Price))
	}
	fmt.Fprintf(&b, "💰 *Total: %s*\n\n", pricing.FormatPrice(cart.Total))
	b.WriteString("✅ Gostaria de finalizar este pedido!")

	return b.String()
}

// EncodeMessage percent-encodes the message so it is safe as a single query
// parameter value. Spaces become %20, not +.
func EncodeMessage(message string) string {
	return strings.ReplaceAll(url.QueryEscape(message), "+", "%20")
}

// WhatsAppURL assembles the deep link that opens the conversation with the
// order message prefilled, e.g. https://wa.me/5511999999999?text=...
func WhatsAppURL(base, number, message string) string {
	return fmt.Sprintf("%s/%s?text=%s", strings.TrimRight(base, "/"), number, EncodeMessage(message))
}
