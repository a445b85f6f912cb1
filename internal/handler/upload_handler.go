package handler

import (
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
)

// Uploader stores an image blob with the media host and returns its public
// URL. Satisfied by infrastructure.CloudinaryClient.
type Uploader interface {
	Upload(file io.Reader, filename string) (string, error)
}

type UploadHandler struct {
	media Uploader
}

func NewUploadHandler(media Uploader) *UploadHandler {
	return &UploadHandler{media: media}
}

// POST /upload-image
func (h *UploadHandler) Upload(c *gin.Context) {
	header, err := c.FormFile("image")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	file, err := header.Open()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	defer file.Close()

	url, err := h.media.Upload(file, header.Filename)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"url": url})
}
