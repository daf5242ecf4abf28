package productcontroller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/Sr-Das-Ofertas/probotsv2/models"
)

// ProductUpdateInput is a partial update: nil fields keep their stored
// value, matching the original merge-then-write behavior of the admin panel.
type ProductUpdateInput struct {
	Name          *string   `json:"name"`
	Price         *int64    `json:"price"`
	OriginalPrice *int64    `json:"originalPrice"`
	Discount      *int      `json:"discount"`
	Description   *string   `json:"description"`
	Images        *[]string `json:"images"`
	CoverImage    *string   `json:"coverImage"`
	Category      *string   `json:"category"`
	InStock       *bool     `json:"inStock"`
	Featured      *bool     `json:"featured"`
	BestSeller    *bool     `json:"bestSeller"`
	ForYou        *bool     `json:"forYou"`
}

func (in ProductUpdateInput) apply(p *models.Product) {
	if in.Name != nil {
		p.Name = *in.Name
	}
	if in.Price != nil {
		p.Price = *in.Price
	}
	if in.OriginalPrice != nil {
		p.OriginalPrice = *in.OriginalPrice
	}
	if in.Discount != nil {
		p.Discount = *in.Discount
	}
	if in.Description != nil {
		p.Description = *in.Description
	}
	if in.Images != nil {
		p.Images = *in.Images
	}
	if in.CoverImage != nil {
		p.CoverImage = *in.CoverImage
	}
	if in.Category != nil {
		p.Category = *in.Category
	}
	if in.InStock != nil {
		p.InStock = *in.InStock
	}
	if in.Featured != nil {
		p.Featured = *in.Featured
	}
	if in.BestSeller != nil {
		p.BestSeller = *in.BestSeller
	}
	if in.ForYou != nil {
		p.ForYou = *in.ForYou
	}
}

// PUT /admin/products/:id
func UpdateProduct(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.Param("id")

		var product models.Product
		if err := db.First(&product, "id = ?", id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch product"})
			return
		}

		var input ProductUpdateInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		input.apply(&product)
		if err := db.Save(&product).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update product"})
			return
		}

		c.JSON(http.StatusOK, product)
	}
}
