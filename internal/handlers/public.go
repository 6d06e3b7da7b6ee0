package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/kg-3rd/grand-adventure-hub/internal/models"
)

func (h HandlerSet) PublicMedia(c *gin.Context) {
	bucket := c.Query("bucket")
	if bucket == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "missing bucket"})
		return
	}
	if !h.knownBucket(bucket) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "unknown bucket"})
		return
	}

	listing, err := h.mediaService.ListOrdered(c.Request.Context(), bucket)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"items":   listing.Items,
		"version": listing.Version,
	})
}

func (h HandlerSet) PublicReviews(c *gin.Context) {
	reviews, summary, err := h.reviewService.Approved(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"items":   reviews,
		"summary": summary,
	})
}

type submitReviewRequest struct {
	Name    string        `json:"name"`
	Rating  models.Rating `json:"rating"`
	Comment string        `json:"comment"`
}

func (h HandlerSet) SubmitReview(c *gin.Context) {
	var req submitReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if req.Name == "" || req.Comment == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "missing name or comment"})
		return
	}

	if err := h.reviewService.Submit(c.Request.Context(), req.Name, req.Rating, req.Comment); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"ok": true})
}
