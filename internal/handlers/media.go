package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/kg-3rd/grand-adventure-hub/internal/service"
	"github.com/kg-3rd/grand-adventure-hub/internal/storage"
)

func (h HandlerSet) ListMedia(c *gin.Context) {
	bucket := c.Query("bucket")
	if bucket == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "missing bucket"})
		return
	}

	listing, err := h.mediaService.List(c.Request.Context(), bucket)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"items":   listing.Items,
		"order":   listing.Order,
		"version": listing.Version,
	})
}

// mutateMediaRequest multiplexes the two POST operations: action "saveOrder"
// replaces the sidecar, anything else is an upload.
type mutateMediaRequest struct {
	Action      string   `json:"action"`
	Bucket      string   `json:"bucket"`
	Order       []string `json:"order"`
	FileName    string   `json:"fileName"`
	FileData    string   `json:"fileData"`
	ContentType string   `json:"contentType"`
}

func (h HandlerSet) MutateMedia(c *gin.Context) {
	var req mutateMediaRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if req.Action == "saveOrder" {
		if req.Bucket == "" || req.Order == nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "missing bucket or order"})
			return
		}
		version, err := h.mediaService.SaveOrder(c.Request.Context(), req.Bucket, req.Order)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, gin.H{"ok": true, "version": version})
		return
	}

	if req.Bucket == "" || req.FileName == "" || req.FileData == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "missing parameters"})
		return
	}

	result, err := h.mediaService.Upload(c.Request.Context(), service.UploadInput{
		Bucket:      req.Bucket,
		FileName:    req.FileName,
		FileData:    req.FileData,
		ContentType: req.ContentType,
	})
	if err != nil {
		if errors.Is(err, storage.ErrObjectExists) {
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"publicUrl": result.PublicURL,
		"path":      result.Path,
	})
}

type deleteMediaRequest struct {
	Bucket string `json:"bucket"`
	Path   string `json:"path"`
}

func (h HandlerSet) DeleteMedia(c *gin.Context) {
	var req deleteMediaRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if req.Bucket == "" || req.Path == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "missing parameters"})
		return
	}

	if err := h.mediaService.Delete(c.Request.Context(), req.Bucket, req.Path); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"ok": true})
}
