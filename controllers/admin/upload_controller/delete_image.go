package upload_controller

import (
	"log"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/yacbhl71/DELICES-DALGERIE-sub000/models"
	"github.com/yacbhl71/DELICES-DALGERIE-sub000/services"
)

// DeleteImage godoc
// @Summary Delete an uploaded image from Cloudinary
// @Tags Admin - Upload
// @Produce json
// @Security BearerAuth
// @Param publicId path string true "Cloudinary public ID (URL-encoded)"
// @Success 200 {object} models.ApiResponse
// @Failure 400 {object} models.ApiResponse
// @Router /api/admin/upload/{publicId} [delete]
func DeleteImage(c *gin.Context) {
	cloudinary := services.GetCloudinaryService()
	if cloudinary == nil {
		c.JSON(http.StatusServiceUnavailable, models.ErrorResponse(c, "Image uploads are not configured"))
		return
	}

	publicID := strings.TrimSpace(c.Param("publicId"))
	if publicID == "" {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "A public ID is required"))
		return
	}
	// Only assets under our own folder may be removed.
	if !strings.HasPrefix(publicID, "delices-dalgerie/") {
		publicID = "delices-dalgerie/" + publicID
	}

	if err := cloudinary.DeleteImage(c.Request.Context(), publicID); err != nil {
		log.Printf("[admin.upload] ❌ delete failed for %s: %v", publicID, err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Delete failed"))
		return
	}

	log.Printf("[admin.upload] ✅ deleted %s", publicID)
	c.JSON(http.StatusOK, models.SuccessResponse(c, "Image deleted", gin.H{"public_id": publicID}))
}
