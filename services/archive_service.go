// services/archive_service.go
package services

import (
	"time"

	"github.com/wfunc/draftserver/draft"
	"github.com/wfunc/draftserver/models"
	"github.com/wfunc/draftserver/persistence"
)

// ArchiveService 负责把走完脚本的选秀写入归档存储。
// 归档的是真实日志：脚本结束后不再有遮盖。
type ArchiveService struct {
	db persistence.Database
}

func NewArchiveService(db persistence.Database) *ArchiveService {
	return &ArchiveService{db: db}
}

// ArchiveDraft 归档一场已完成的选秀
func (s *ArchiveService) ArchiveDraft(d *draft.Draft) error {
	host, guest := d.PlayerNames()
	record := &models.DraftRecord{
		DraftID:   d.ID,
		HostName:  host,
		GuestName: guest,
		Preset:    d.Preset.Name,
		Events:    d.EventLog(),
		Duration:  int(time.Since(d.CreatedAt).Seconds()),
	}
	return s.db.SaveDraftRecord(record)
}

// GetDraftRecord 查询归档记录
func (s *ArchiveService) GetDraftRecord(draftID string) (*models.DraftRecord, error) {
	return s.db.LoadDraftRecord(draftID)
}
