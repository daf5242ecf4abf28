package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/Sr-Das-Ofertas/probotsv2/auth"
	"github.com/Sr-Das-Ofertas/probotsv2/cart"
	"github.com/Sr-Das-Ofertas/probotsv2/checkout"
	"github.com/Sr-Das-Ofertas/probotsv2/config"
	checkoutController "github.com/Sr-Das-Ofertas/probotsv2/controllers/checkout"
)

// Deps bundles everything the route groups need, wired once in main.
type Deps struct {
	DB       *gorm.DB
	Store    *cart.Store
	Sessions *auth.SessionIssuer
	CEP      *checkout.CEPClient
	Hub      *checkoutController.Hub
	Config   *config.Config
}

// SetupRoutes is the single entry-point that wires up the storefront, cart,
// checkout, and admin route groups.
func SetupRoutes(r *gin.Engine, d Deps) {
	// Public storefront reads (no middleware)
	SetupStorefrontRoutes(r, d)

	// Session-scoped cart and checkout
	SetupCartRoutes(r, d)
	SetupCheckoutRoutes(r, d)

	// Admin CRUD (API-key protected)
	SetupAdminRoutes(r, d)
}
