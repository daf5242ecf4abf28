package productcontroller

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/Sr-Das-Ofertas/probotsv2/models"
)

// GET /products
//
// Optional filters: ?category=<id>, ?search=<term>, ?bucket=featured|best-seller|for-you.
// Returns the full matching collection; the storefront has no pagination.
func GetProducts(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		query := db.Model(&models.Product{})

		if category := c.Query("category"); category != "" {
			query = query.Where("category = ?", category)
		}

		if search := c.Query("search"); search != "" {
			likePattern := "%" + strings.TrimSpace(search) + "%"
			query = query.Where("name ILIKE ? OR description ILIKE ?", likePattern, likePattern)
		}

		if bucketParam := c.Query("bucket"); bucketParam != "" {
			bucket, ok := models.ParseDisplayBucket(bucketParam)
			if !ok {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid bucket"})
				return
			}
			switch bucket {
			case models.BucketFeatured:
				query = query.Where("featured = ?", true)
			case models.BucketBestSeller:
				query = query.Where("best_seller = ?", true)
			case models.BucketForYou:
				query = query.Where("for_you = ?", true)
			}
		}

		var products []models.Product
		if err := query.Order("created_at DESC").Find(&products).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch products"})
			return
		}
		c.JSON(http.StatusOK, products)
	}
}
