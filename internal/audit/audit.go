package audit

import (
	"time"

	"gorm.io/datatypes"
)

// Action classifies what happened to a record.
type Action string

const (
	ActionCreate Action = "CREATE"
	ActionUpdate Action = "UPDATE"
	ActionDelete Action = "DELETE"
	ActionRead   Action = "READ"
)

// ActionForMethod maps an HTTP method onto an audit action. Methods outside
// the mutating set are never logged.
func ActionForMethod(method string) (Action, bool) {
	switch method {
	case "POST":
		return ActionCreate, true
	case "PUT", "PATCH":
		return ActionUpdate, true
	case "DELETE":
		return ActionDelete, true
	default:
		return "", false
	}
}

// Entry is an immutable audit record. The application only ever inserts and
// reads these rows.
type Entry struct {
	ID        string         `json:"id" gorm:"primaryKey;column:id"`
	Table     string         `json:"tableName" gorm:"column:table_name;not null;index"`
	RecordID  string         `json:"recordId" gorm:"column:record_id;not null;index"`
	Action    Action         `json:"action" gorm:"column:action;not null"`
	UserID    string         `json:"userId" gorm:"column:user_id;index"`
	Username  string         `json:"username" gorm:"column:username"`
	OldData   datatypes.JSON `json:"oldData,omitempty" gorm:"column:old_data"`
	NewData   datatypes.JSON `json:"newData,omitempty" gorm:"column:new_data"`
	IPAddress string         `json:"ipAddress,omitempty" gorm:"column:ip_address"`
	UserAgent string         `json:"userAgent,omitempty" gorm:"column:user_agent"`
	CreatedAt time.Time      `json:"createdAt" gorm:"column:created_at;index"`
}

func (Entry) TableName() string {
	return "audit_logs"
}

// Filters narrows audit listings; zero values mean "no filter".
type Filters struct {
	TableName string
	Action    string
	UserID    string
	StartDate *time.Time
	EndDate   *time.Time
}
