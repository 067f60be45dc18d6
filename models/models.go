// models/models.go
package models

import (
	"time"

	"github.com/wfunc/draftserver/draft"
)

// DraftRecord 一场完成的选秀归档
type DraftRecord struct {
	DraftID   string        `json:"draft_id"`
	HostName  string        `json:"host_name"`
	GuestName string        `json:"guest_name"`
	Preset    string        `json:"preset"`
	Events    []draft.Event `json:"events"`
	Duration  int           `json:"duration"` // 秒
	CreatedAt time.Time     `json:"created_at"`
}
