package services

import (
	"encoding/json"

	"gorm.io/gorm"

	"mymoney/internal/logger"
	"mymoney/internal/models"
)

// auditService records mutating operations together with the request ID
// that caused them, so an audit row can be matched to the request log.
type auditService struct {
	db *gorm.DB
}

// NewAuditService creates a new AuditServicer.
func NewAuditService(db *gorm.DB) AuditServicer {
	return &auditService{db: db}
}

// Log records an audit event. Best effort: failures are logged and never
// propagate to the operation being audited.
func (s *auditService) Log(userID uint, action, resourceType string, resourceID uint, ipAddress, requestID string, changes map[string]interface{}) {
	changesJSON := "{}"
	if len(changes) > 0 {
		data, err := json.Marshal(changes)
		if err != nil {
			logger.Get().Errorw("failed to marshal audit log changes",
				"error", err,
				"request_id", requestID,
				"action", action,
			)
		} else {
			changesJSON = string(data)
		}
	}

	entry := &models.AuditLog{
		UserID:       userID,
		Action:       action,
		ResourceType: resourceType,
		ResourceID:   resourceID,
		IPAddress:    ipAddress,
		RequestID:    requestID,
		Changes:      changesJSON,
	}

	if err := s.db.Create(entry).Error; err != nil {
		logger.Get().Errorw("failed to create audit log entry",
			"error", err,
			"request_id", requestID,
			"user_id", userID,
			"action", action,
			"resource_type", resourceType,
			"resource_id", resourceID,
		)
	}
}
