package routes

import (
	"github.com/gin-gonic/gin"

	checkoutController "github.com/Sr-Das-Ofertas/probotsv2/controllers/checkout"
	settingsController "github.com/Sr-Das-Ofertas/probotsv2/controllers/settings"
	"github.com/Sr-Das-Ofertas/probotsv2/middleware"
)

// SetupCheckoutRoutes registers order submission plus the CEP autofill
// lookup used by the checkout form.
func SetupCheckoutRoutes(r *gin.Engine, d Deps) {
	checkoutGroup := r.Group("/checkout")
	checkoutGroup.Use(middleware.CartSession(d.Config.JWTSecret))
	{
		checkoutGroup.POST("", checkoutController.SubmitCheckout(d.Store, settingsController.NewSource(d.DB), d.Config.WhatsAppBaseURL, d.Hub))
		checkoutGroup.GET("/cep/:cep", checkoutController.LookupCEP(d.CEP))
	}
}
