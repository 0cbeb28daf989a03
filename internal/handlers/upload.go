// internal/handlers/upload.go
package handlers

import (
	"fmt"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/Ashraf-Atef1/full-stack-task/internal/config"
	"github.com/Ashraf-Atef1/full-stack-task/internal/i18n"
	"github.com/Ashraf-Atef1/full-stack-task/internal/utils"
)

var allowedImageExtensions = map[string]bool{
	".jpeg": true,
	".jpg":  true,
	".png":  true,
	".gif":  true,
	".webp": true,
}

type UploadHandler struct {
	cfg     config.UploadConfig
	baseURL string
}

type UploadedFile struct {
	URL          string `json:"url"`
	Filename     string `json:"filename"`
	OriginalName string `json:"originalName"`
	Size         int64  `json:"size"`
}

func NewUploadHandler(cfg config.UploadConfig, baseURL string) *UploadHandler {
	if err := os.MkdirAll(cfg.Path, 0o755); err != nil {
		logrus.WithError(err).WithField("path", cfg.Path).Warn("Failed to create upload directory")
	}

	return &UploadHandler{
		cfg:     cfg,
		baseURL: baseURL,
	}
}

// POST /uploads/apartment-image
func (h *UploadHandler) UploadApartmentImage(c *gin.Context) {
	lang := utils.GetLangFromContext(c)

	fileHeader, err := c.FormFile("file")
	if err != nil {
		utils.BadRequestResponse(c, i18n.T(lang, i18n.KeyFileNoneUploaded), nil)
		return
	}

	ext := strings.ToLower(filepath.Ext(fileHeader.Filename))
	if !allowedImageExtensions[ext] {
		utils.BadRequestResponse(c, i18n.T(lang, i18n.KeyFileInvalidType), nil)
		return
	}
	if fileHeader.Size > h.cfg.MaxSizeMB*1024*1024 {
		utils.BadRequestResponse(c, i18n.T(lang, i18n.KeyFileTooLarge, h.cfg.MaxSizeMB), nil)
		return
	}

	uploaded, err := h.saveFile(c, fileHeader)
	if err != nil {
		logrus.WithError(err).Error("Failed to store uploaded image")
		utils.InternalErrorResponse(c, i18n.T(lang, i18n.KeyFileUploadFailed))
		return
	}

	utils.SuccessResponse(c, gin.H{
		"message": i18n.T(lang, i18n.KeyFileUploadSuccess),
		"file":    uploaded,
	})
}

// POST /uploads/apartment-images
func (h *UploadHandler) UploadApartmentImages(c *gin.Context) {
	lang := utils.GetLangFromContext(c)

	form, err := c.MultipartForm()
	if err != nil {
		utils.BadRequestResponse(c, i18n.T(lang, i18n.KeyFileUploadFailed), err.Error())
		return
	}

	files := form.File["files"]
	if len(files) == 0 {
		utils.BadRequestResponse(c, i18n.T(lang, i18n.KeyFileNoneUploaded), nil)
		return
	}
	if len(files) > h.cfg.MaxFiles {
		files = files[:h.cfg.MaxFiles]
	}

	uploaded := make([]*UploadedFile, 0, len(files))
	for _, fileHeader := range files {
		ext := strings.ToLower(filepath.Ext(fileHeader.Filename))
		if !allowedImageExtensions[ext] {
			continue
		}
		if fileHeader.Size > h.cfg.MaxSizeMB*1024*1024 {
			continue
		}

		result, err := h.saveFile(c, fileHeader)
		if err != nil {
			logrus.WithError(err).WithField("filename", fileHeader.Filename).Warn("Skipping failed upload")
			continue
		}
		uploaded = append(uploaded, result)
	}

	if len(uploaded) == 0 {
		utils.BadRequestResponse(c, i18n.T(lang, i18n.KeyFileInvalidType), nil)
		return
	}

	utils.SuccessResponse(c, gin.H{
		"message": i18n.T(lang, i18n.KeyFileUploadSuccess),
		"files":   uploaded,
	})
}

func (h *UploadHandler) saveFile(c *gin.Context, fileHeader *multipart.FileHeader) (*UploadedFile, error) {
	ext := strings.ToLower(filepath.Ext(fileHeader.Filename))
	filename := fmt.Sprintf("apartment-%s%s", uuid.New().String(), ext)

	if err := c.SaveUploadedFile(fileHeader, filepath.Join(h.cfg.Path, filename)); err != nil {
		return nil, err
	}

	return &UploadedFile{
		URL:          fmt.Sprintf("%s/uploads/apartments/%s", h.baseURL, filename),
		Filename:     filename,
		OriginalName: fileHeader.Filename,
		Size:         fileHeader.Size,
	}, nil
}
