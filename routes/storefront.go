package routes

import (
	"github.com/gin-gonic/gin"

	bannerController "github.com/Sr-Das-Ofertas/probotsv2/controllers/banner"
	productcontroller "github.com/Sr-Das-Ofertas/probotsv2/controllers/product"
	settingsController "github.com/Sr-Das-Ofertas/probotsv2/controllers/settings"
)

// SetupStorefrontRoutes registers the public read-only catalog endpoints the
// storefront pages render from.
func SetupStorefrontRoutes(r *gin.Engine, d Deps) {
	r.POST("/session", d.Sessions.CreateSession())

	r.GET("/products", productcontroller.GetProducts(d.DB))
	r.GET("/products/:id", productcontroller.GetProductByID(d.DB))

	r.GET("/categories", productcontroller.GetAllCategories(d.DB))
	r.GET("/categories/:id", productcontroller.GetCategoryWithProducts(d.DB))

	r.GET("/banners", bannerController.GetActiveBanners(d.DB))

	r.GET("/settings", settingsController.GetSettings(d.DB))
}
