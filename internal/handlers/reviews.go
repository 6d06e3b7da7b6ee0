package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

func (h HandlerSet) PendingReviews(c *gin.Context) {
	if c.Query("status") != "pending" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "unsupported status"})
		return
	}

	reviews, err := h.reviewService.Pending(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"items": reviews})
}

type moderateReviewRequest struct {
	Action   string `json:"action"`
	ReviewID int64  `json:"reviewId"`
}

func (h HandlerSet) ModerateReview(c *gin.Context) {
	var req moderateReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if req.ReviewID == 0 || req.Action == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "missing parameters"})
		return
	}

	var err error
	switch req.Action {
	case "approve":
		err = h.reviewService.Approve(c.Request.Context(), req.ReviewID)
	case "delete":
		err = h.reviewService.Delete(c.Request.Context(), req.ReviewID)
	default:
		c.JSON(http.StatusBadRequest, gin.H{"error": "unknown action"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"ok": true})
}
