package productcontroller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/Sr-Das-Ofertas/probotsv2/models"
)

type ProductInput struct {
	Name          string   `json:"name" binding:"required"`
	Price         int64    `json:"price" binding:"required,min=1"`
	OriginalPrice int64    `json:"originalPrice"`
	Discount      int      `json:"discount"`
	Description   string   `json:"description"`
	Images        []string `json:"images"`
	CoverImage    string   `json:"coverImage"`
	Category      string   `json:"category"`
	InStock       bool     `json:"inStock"`
	Featured      bool     `json:"featured"`
	BestSeller    bool     `json:"bestSeller"`
	ForYou        bool     `json:"forYou"`
}

// POST /admin/products
func CreateProduct(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input ProductInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		product := models.Product{
			ID:            uuid.NewString(),
			Name:          input.Name,
			Price:         input.Price,
			OriginalPrice: input.OriginalPrice,
			Discount:      input.Discount,
			Description:   input.Description,
			Images:        input.Images,
			CoverImage:    input.CoverImage,
			Category:      input.Category,
			InStock:       input.InStock,
			Featured:      input.Featured,
			BestSeller:    input.BestSeller,
			ForYou:        input.ForYou,
		}

		if err := db.Create(&product).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create product"})
			return
		}

		c.JSON(http.StatusCreated, product)
	}
}
