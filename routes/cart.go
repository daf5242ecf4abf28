package routes

import (
	"github.com/gin-gonic/gin"

	cartControllers "github.com/Sr-Das-Ofertas/probotsv2/controllers/cart"
	"github.com/Sr-Das-Ofertas/probotsv2/middleware"
)

// SetupCartRoutes registers the session-scoped shopping cart endpoints.
func SetupCartRoutes(r *gin.Engine, d Deps) {
	cartGroup := r.Group("/cart")
	cartGroup.Use(middleware.CartSession(d.Config.JWTSecret))
	{
		cartGroup.GET("", cartControllers.GetCart(d.Store))
		cartGroup.POST("/items", cartControllers.AddCartItem(d.DB, d.Store))
		cartGroup.PUT("/items", cartControllers.UpdateCartItem(d.Store))
		cartGroup.DELETE("/items/:product_id", cartControllers.DeleteCartItem(d.Store))
		cartGroup.DELETE("", cartControllers.ClearCart(d.Store))
	}
}
