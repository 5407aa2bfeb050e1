package models

import "time"

// AuthzAuditLog 权限策略审计日志
// 说明：记录管理端对角色策略的授予与撤销操作。
type AuthzAuditLog struct {
	ID             uint      `gorm:"primarykey" json:"id"`
	OperatorUserID uint      `gorm:"index;not null;default:0" json:"operator_user_id"`
	Action         string    `gorm:"type:varchar(50);index;not null" json:"action"`
	Role           string    `gorm:"type:varchar(120);index;not null;default:''" json:"role"`
	Object         string    `gorm:"type:varchar(255);index;not null;default:''" json:"object"`
	Method         string    `gorm:"type:varchar(20);not null;default:''" json:"method"`
	RequestID      string    `gorm:"type:varchar(64);index;not null;default:''" json:"request_id"`
	CreatedAt      time.Time `gorm:"index" json:"created_at"`
}

// TableName 指定表名
func (AuthzAuditLog) TableName() string {
	return "authz_audit_logs"
}
