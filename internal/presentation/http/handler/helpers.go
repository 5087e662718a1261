package handler

import (
	"time"

	"github.com/ardani17/barber-sub001/internal/domain/enum"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// GetUserID extracts the authenticated user ID from the Gin context
func GetUserID(c *gin.Context) *uuid.UUID {
	userIDVal, exists := c.Get("user_id")
	if !exists {
		return nil
	}
	userID, ok := userIDVal.(uuid.UUID)
	if !ok {
		return nil
	}
	return &userID
}

// GetUserRole extracts the authenticated user's role from the Gin context
func GetUserRole(c *gin.Context) *enum.Role {
	roleVal, exists := c.Get("user_role")
	if !exists {
		return nil
	}
	roleStr, ok := roleVal.(string)
	if !ok {
		return nil
	}
	role := enum.Role(roleStr)
	return &role
}

const dateLayout = "2006-01-02"

// parseDateRange parses inclusive start/end date strings into a half-open
// [start, end) time range in the given location.
func parseDateRange(startDate, endDate string, loc *time.Location) (time.Time, time.Time, bool) {
	start, err := time.ParseInLocation(dateLayout, startDate, loc)
	if err != nil {
		return time.Time{}, time.Time{}, false
	}
	end, err := time.ParseInLocation(dateLayout, endDate, loc)
	if err != nil {
		return time.Time{}, time.Time{}, false
	}
	if end.Before(start) {
		return time.Time{}, time.Time{}, false
	}
	return start, end.AddDate(0, 0, 1), true
}

// parseOptionalUUID parses a UUID query parameter, returning nil for empty
// input and false for malformed input.
func parseOptionalUUID(s string) (*uuid.UUID, bool) {
	if s == "" {
		return nil, true
	}
	id, err := uuid.Parse(s)
	if err != nil {
		return nil, false
	}
	return &id, true
}
