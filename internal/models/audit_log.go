package models

// AuditLog records mutating user operations for security review.
type AuditLog struct {
	Base
	UserID       uint   `gorm:"not null;index" json:"user_id"`
	Action       string `gorm:"not null" json:"action"`
	ResourceType string `gorm:"not null" json:"resource_type"`
	ResourceID   uint   `json:"resource_id"`
	IPAddress    string `json:"ip_address"`
	RequestID    string `gorm:"size:64" json:"request_id"`
	Changes      string `json:"changes,omitempty"`
}
