package checkoutController

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"github.com/Sr-Das-Ofertas/probotsv2/checkout"
)

// GET /checkout/cep/:cep
//
// Address autofill for the checkout form. Errors come back as statuses the
// client treats as "keep whatever the customer typed".
func LookupCEP(client *checkout.CEPClient) gin.HandlerFunc {
	return func(c *gin.Context) {
		data, err := client.Lookup(c.Request.Context(), c.Param("cep"))
		if err != nil {
			switch {
			case errors.Is(err, checkout.ErrInvalidCEP):
				c.JSON(http.StatusBadRequest, gin.H{"error": "CEP must have 8 digits"})
			case errors.Is(err, checkout.ErrCEPNotFound):
				c.JSON(http.StatusNotFound, gin.H{"error": "CEP not found"})
			default:
				log.Error().Err(err).Msg("cep lookup failed")
				c.JSON(http.StatusBadGateway, gin.H{"error": "CEP service unavailable"})
			}
			return
		}
		c.JSON(http.StatusOK, data)
	}
}
