// persistence/interface.go
package persistence

import (
	"fmt"

	"github.com/wfunc/draftserver/models"
)

// Database 归档存储接口。引擎本身不依赖它：
// 只有已完成的选秀记录写入这里，进程重启不恢复会话。
type Database interface {
	SaveDraftRecord(record *models.DraftRecord) error
	LoadDraftRecord(draftID string) (*models.DraftRecord, error)
	Close() error
}

// 错误定义
var (
	ErrRecordNotFound = fmt.Errorf("record not found")
)
