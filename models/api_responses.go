package models

import (
	"time"

	"github.com/gin-gonic/gin"
)

type ApiResponse struct {
	Message         string        `json:"message"`
	Data            any           `json:"data,omitempty"`
	Error           bool          `json:"error,omitempty"`
	Snapshot        *SnapshotMeta `json:"snapshot,omitempty"`
	Filters         *FilterState  `json:"filters,omitempty"`
	Rate            *RateLimiter  `json:"rate_limit,omitempty"`
	RequestedEntity string        `json:"requested_entity,omitempty"`
}

type RateLimiter struct {
	Limit          int       `json:"limit"`
	Remaining      int       `json:"remaining"`
	ResetAt        time.Time `json:"reset_at"`
	ResetInSeconds int       `json:"reset_in_seconds"`
}

// helper to fetch rate limiter info from Gin context
func getRateFromContext(c *gin.Context) *RateLimiter {
	if c == nil {
		return nil
	}
	if rate, exists := c.Get("rateLimiter"); exists {
		if rl, ok := rate.(*RateLimiter); ok {
			return rl
		}
	}
	return nil
}

func SuccessResponse(c *gin.Context, message string, data any) ApiResponse {
	return ApiResponse{
		Message:         message,
		Data:            data,
		Rate:            getRateFromContext(c),
		RequestedEntity: c.Request.Method + " " + c.FullPath(),
	}
}

// AggregateResponse is SuccessResponse plus the snapshot metadata and the
// filter state the aggregation was computed under.
func AggregateResponse(c *gin.Context, message string, data any, meta *SnapshotMeta, filters FilterState) ApiResponse {
	return ApiResponse{
		Message:         message,
		Data:            data,
		Snapshot:        meta,
		Filters:         &filters,
		Rate:            getRateFromContext(c),
		RequestedEntity: c.Request.Method + " " + c.FullPath(),
	}
}

// SnapshotResponse is SuccessResponse plus snapshot metadata, for views
// computed over the full snapshot without a filter state.
func SnapshotResponse(c *gin.Context, message string, data any, meta *SnapshotMeta) ApiResponse {
	return ApiResponse{
		Message:         message,
		Data:            data,
		Snapshot:        meta,
		Rate:            getRateFromContext(c),
		RequestedEntity: c.Request.Method + " " + c.FullPath(),
	}
}

func ErrorResponse(c *gin.Context, message string) ApiResponse {
	return ApiResponse{
		Message:         message,
		Error:           true,
		Rate:            getRateFromContext(c),
		RequestedEntity: c.Request.Method + " " + c.FullPath(),
	}
}
