// persistence/gorm_postgresql.go
package persistence

import (
	"encoding/json"
	"fmt"
	"log"
	"os"
	"time"

	"gorm.io/datatypes"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/wfunc/draftserver/draft"
	"github.com/wfunc/draftserver/models"
)

// GormPostgreSQL 使用GORM的PostgreSQL实现
type GormPostgreSQL struct {
	db *gorm.DB
}

// NewGormPostgreSQL 创建GORM PostgreSQL数据库连接
func NewGormPostgreSQL(host string, port int, user, password, dbname string) (*GormPostgreSQL, error) {
	dsn := fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=disable",
		host, port, user, password, dbname)

	// 配置GORM日志
	gormLogger := logger.New(
		log.New(os.Stdout, "\r\n", log.LstdFlags), // io writer
		logger.Config{
			SlowThreshold: time.Second,   // 慢SQL阈值
			LogLevel:      logger.Silent, // 日志级别
			Colorful:      false,         // 禁用彩色打印
		},
	)

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger: gormLogger,
	})
	if err != nil {
		return nil, err
	}

	// 获取通用数据库对象 sql.DB
	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}

	// 设置连接池
	sqlDB.SetMaxIdleConns(10)
	sqlDB.SetMaxOpenConns(100)
	sqlDB.SetConnMaxLifetime(time.Hour)

	// 自动迁移表结构
	if err := db.AutoMigrate(&models.GormDraftRecord{}); err != nil {
		return nil, err
	}

	return &GormPostgreSQL{db: db}, nil
}

// SaveDraftRecord 保存选秀归档，按 draft_id 覆盖
func (p *GormPostgreSQL) SaveDraftRecord(record *models.DraftRecord) error {
	events, err := json.Marshal(record.Events)
	if err != nil {
		return err
	}

	var existing models.GormDraftRecord
	result := p.db.Where("draft_id = ?", record.DraftID).First(&existing)

	if result.Error == gorm.ErrRecordNotFound {
		return p.db.Create(&models.GormDraftRecord{
			DraftID:   record.DraftID,
			HostName:  record.HostName,
			GuestName: record.GuestName,
			Preset:    record.Preset,
			Events:    datatypes.JSON(events),
			Duration:  record.Duration,
		}).Error
	} else if result.Error != nil {
		return result.Error
	}

	existing.HostName = record.HostName
	existing.GuestName = record.GuestName
	existing.Preset = record.Preset
	existing.Events = datatypes.JSON(events)
	existing.Duration = record.Duration
	return p.db.Save(&existing).Error
}

// LoadDraftRecord 加载选秀归档
func (p *GormPostgreSQL) LoadDraftRecord(draftID string) (*models.DraftRecord, error) {
	var row models.GormDraftRecord
	if err := p.db.Where("draft_id = ?", draftID).First(&row).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, ErrRecordNotFound
		}
		return nil, err
	}

	var events []draft.Event
	if err := json.Unmarshal(row.Events, &events); err != nil {
		return nil, err
	}

	return &models.DraftRecord{
		DraftID:   row.DraftID,
		HostName:  row.HostName,
		GuestName: row.GuestName,
		Preset:    row.Preset,
		Events:    events,
		Duration:  row.Duration,
		CreatedAt: row.CreatedAt,
	}, nil
}

// Close 关闭数据库连接
func (p *GormPostgreSQL) Close() error {
	sqlDB, err := p.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
