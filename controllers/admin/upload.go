package adminController

import (
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
)

// UploadImage saves an admin-panel image under the uploads dir and returns
// the public URL the catalog records should reference.
//
// POST /admin/uploads (multipart field "image")
func UploadImage(uploadsDir, publicURL string) gin.HandlerFunc {
	return func(c *gin.Context) {
		fileHeader, err := c.FormFile("image")
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "No image uploaded"})
			return
		}

		if err := os.MkdirAll(uploadsDir, os.ModePerm); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create upload folder"})
			return
		}

		ext := strings.ToLower(filepath.Ext(fileHeader.Filename))
		switch ext {
		case ".jpg", ".jpeg", ".png", ".gif", ".webp":
		default:
			c.JSON(http.StatusBadRequest, gin.H{"error": "Unsupported image type"})
			return
		}

		baseName := strings.TrimSuffix(filepath.Base(fileHeader.Filename), ext)
		baseName = strings.ReplaceAll(baseName, " ", "_")
		newFileName := fmt.Sprintf("%d_%s%s", time.Now().Unix(), baseName, ext)

		savePath := filepath.Join(uploadsDir, newFileName)
		if err := c.SaveUploadedFile(fileHeader, savePath); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save file"})
			return
		}

		imageURL := fmt.Sprintf("%s/uploads/%s", strings.TrimRight(publicURL, "/"), newFileName)
		c.JSON(http.StatusCreated, gin.H{"url": imageURL})
	}
}
