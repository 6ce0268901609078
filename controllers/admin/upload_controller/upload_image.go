package upload_controller

import (
	"log"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/yacbhl71/DELICES-DALGERIE-sub000/models"
	"github.com/yacbhl71/DELICES-DALGERIE-sub000/services"
)

const maxUploadSize = 10 << 20 // 10 MB

var allowedFolders = map[string]bool{
	"products": true,
	"content":  true,
	"banners":  true,
	"branding": true,
}

// UploadImage godoc
// @Summary Upload an image to Cloudinary
// @Tags Admin - Upload
// @Accept multipart/form-data
// @Produce json
// @Security BearerAuth
// @Param file formData file true "Image file (max 10 MB)"
// @Param folder formData string false "Target folder (products, content, banners, branding)"
// @Success 201 {object} models.ApiResponse
// @Failure 400 {object} models.ApiResponse
// @Router /api/admin/upload [post]
func UploadImage(c *gin.Context) {
	cloudinary := services.GetCloudinaryService()
	if cloudinary == nil {
		c.JSON(http.StatusServiceUnavailable, models.ErrorResponse(c, "Image uploads are not configured"))
		return
	}

	header, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "A file is required"))
		return
	}
	if header.Size > maxUploadSize {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "File exceeds the 10 MB limit"))
		return
	}

	contentType := header.Header.Get("Content-Type")
	if !strings.HasPrefix(contentType, "image/") {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Only image files are accepted"))
		return
	}

	folder := c.PostForm("folder")
	if folder == "" {
		folder = "products"
	}
	if !allowedFolders[folder] {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Unknown upload folder: "+folder))
		return
	}

	file, err := header.Open()
	if err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to read file"))
		return
	}
	defer file.Close()

	url, err := cloudinary.UploadImage(c.Request.Context(), file, "delices-dalgerie/"+folder)
	if err != nil {
		log.Printf("[admin.upload] ❌ upload failed: %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Upload failed"))
		return
	}

	log.Printf("[admin.upload] ✅ uploaded to %s", folder)
	c.JSON(http.StatusCreated, models.SuccessResponse(c, "Image uploaded", gin.H{"url": url}))
}
