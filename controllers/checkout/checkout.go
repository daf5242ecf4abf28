package checkoutController

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"github.com/Sr-Das-Ofertas/probotsv2/cart"
	"github.com/Sr-Das-Ofertas/probotsv2/checkout"
	"github.com/Sr-Das-Ofertas/probotsv2/middleware"
	"github.com/Sr-Das-Ofertas/probotsv2/models"
)

// SettingsSource provides the recipient configuration at submit time.
type SettingsSource interface {
	Current() (models.Settings, error)
}

// POST /checkout
//
// Gate order: empty-cart precondition, then field validation, then recipient
// configuration. Only when all three pass is the WhatsApp message composed;
// the cart stays as-is so the customer can retry if the deep link fails.
func SubmitCheckout(store *cart.Store, settings SettingsSource, whatsappBase string, hub *Hub) gin.HandlerFunc {
	return func(c *gin.Context) {
		cartID, ok := middleware.CartID(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}

		current := store.Load(c.Request.Context(), cartID)
		if len(current.Items) == 0 {
			c.JSON(http.StatusConflict, gin.H{"error": "Cart is empty"})
			return
		}

		var user models.UserData
		if err := c.ShouldBindJSON(&user); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		if errs := checkout.Validate(user); errs.Any() {
			c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "Validation failed", "fields": errs})
			return
		}

		cfg, err := settings.Current()
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch settings"})
			return
		}
		if cfg.WhatsappNumber == "" {
			c.JSON(http.StatusServiceUnavailable, gin.H{"error": "WhatsApp number is not configured"})
			return
		}

		message := checkout.ComposeOrderMessage(current, user)
		link := checkout.WhatsAppURL(whatsappBase, cfg.WhatsappNumber, message)

		log.Info().
			Str("cart", cartID).
			Int("items", current.ItemCount).
			Int64("total", current.Total).
			Msg("checkout submitted")

		hub.Broadcast(CheckoutNotification{
			CartID:    cartID,
			Customer:  user.Name,
			City:      user.City,
			State:     user.State,
			ItemCount: current.ItemCount,
			Total:     current.Total,
			At:        time.Now(),
		})

		c.JSON(http.StatusOK, gin.H{
			"whatsapp_url": link,
			"message":      message,
		})
	}
}
