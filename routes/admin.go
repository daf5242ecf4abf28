package routes

import (
	"github.com/gin-gonic/gin"

	adminController "github.com/Sr-Das-Ofertas/probotsv2/controllers/admin"
	bannerController "github.com/Sr-Das-Ofertas/probotsv2/controllers/banner"
	productcontroller "github.com/Sr-Das-Ofertas/probotsv2/controllers/product"
	settingsController "github.com/Sr-Das-Ofertas/probotsv2/controllers/settings"
	"github.com/Sr-Das-Ofertas/probotsv2/middleware"
)

// SetupAdminRoutes registers all "/admin/*" endpoints. Requires API-key
// middleware.
func SetupAdminRoutes(r *gin.Engine, d Deps) {
	adminGroup := r.Group("/admin")
	adminGroup.Use(middleware.ValidateAPIKey(d.Config.AdminAPIKey))
	{
		productAdmin := adminGroup.Group("/products")
		{
			productAdmin.POST("", productcontroller.CreateProduct(d.DB))
			productAdmin.PUT("/:id", productcontroller.UpdateProduct(d.DB))
			productAdmin.DELETE("/:id", productcontroller.DeleteProduct(d.DB))
			productAdmin.GET("/export-excel", productcontroller.ExportProductsToExcel(d.DB))
		}

		categoryAdmin := adminGroup.Group("/categories")
		{
			categoryAdmin.POST("", productcontroller.CreateCategory(d.DB))
			categoryAdmin.PUT("/:id", productcontroller.UpdateCategory(d.DB))
			categoryAdmin.DELETE("/:id", productcontroller.DeleteCategory(d.DB))
		}

		bannerAdmin := adminGroup.Group("/banners")
		{
			bannerAdmin.GET("/all", bannerController.GetAllBanners(d.DB))
			bannerAdmin.POST("", bannerController.CreateBanner(d.DB))
			bannerAdmin.PUT("/:id", bannerController.UpdateBanner(d.DB))
			bannerAdmin.DELETE("/:id", bannerController.DeleteBanner(d.DB))
		}

		adminGroup.POST("/settings", settingsController.UpdateSettings(d.DB))

		adminGroup.POST("/uploads", adminController.UploadImage(d.Config.UploadsDir, d.Config.PublicURL))

		// live feed of checkout handoffs; nothing is stored server-side
		adminGroup.GET("/ws/checkouts", d.Hub.Subscribe())
	}
}
