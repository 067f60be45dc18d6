// persistence/postgresql.go
package persistence

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	// PostgreSQL 驱动
	_ "github.com/lib/pq" // PostgreSQL 驱动

	"github.com/wfunc/draftserver/draft"
	"github.com/wfunc/draftserver/models"
)

// PostgreSQL 不经ORM的原生实现
type PostgreSQL struct {
	db *sql.DB
}

// NewPostgreSQL 创建 PostgreSQL 数据库连接
func NewPostgreSQL(host string, port int, user, password, dbname string) (*PostgreSQL, error) {
	connStr := fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=disable",
		host, port, user, password, dbname)

	db, err := sql.Open("postgres", connStr)
	if err != nil {
		return nil, err
	}

	// 测试连接
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := db.PingContext(ctx); err != nil {
		return nil, err
	}

	// 设置连接池参数
	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(25)
	db.SetConnMaxLifetime(5 * time.Minute)

	// 初始化表结构
	if err := initTables(db); err != nil {
		return nil, err
	}

	return &PostgreSQL{db: db}, nil
}

// initTables 初始化数据库表结构
func initTables(db *sql.DB) error {
	_, err := db.Exec(`
        CREATE TABLE IF NOT EXISTS draft_records (
            id SERIAL PRIMARY KEY,
            draft_id VARCHAR(255) UNIQUE NOT NULL,
            host_name VARCHAR(255) NOT NULL,
            guest_name VARCHAR(255) NOT NULL,
            preset VARCHAR(100) NOT NULL,
            events JSONB NOT NULL,
            duration INT DEFAULT 0,
            created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
        )
    `)
	if err != nil {
		return err
	}

	_, err = db.Exec(`
        CREATE INDEX IF NOT EXISTS idx_draft_records_draft_id ON draft_records(draft_id);
        CREATE INDEX IF NOT EXISTS idx_draft_records_created_at ON draft_records(created_at);
    `)

	return err
}

// SaveDraftRecord 保存选秀归档，按 draft_id 覆盖
func (p *PostgreSQL) SaveDraftRecord(record *models.DraftRecord) error {
	events, err := json.Marshal(record.Events)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	// 使用 UPSERT 操作 (PostgreSQL 9.5+)
	query := `
        INSERT INTO draft_records (draft_id, host_name, guest_name, preset, events, duration)
        VALUES ($1, $2, $3, $4, $5, $6)
        ON CONFLICT (draft_id)
        DO UPDATE SET host_name = $2, guest_name = $3, preset = $4, events = $5, duration = $6
    `

	_, err = p.db.ExecContext(ctx, query,
		record.DraftID,
		record.HostName,
		record.GuestName,
		record.Preset,
		events,
		record.Duration)
	return err
}

// LoadDraftRecord 加载选秀归档
func (p *PostgreSQL) LoadDraftRecord(draftID string) (*models.DraftRecord, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	record := &models.DraftRecord{DraftID: draftID}
	var eventsData []byte

	query := `SELECT host_name, guest_name, preset, events, duration, created_at FROM draft_records WHERE draft_id = $1`
	err := p.db.QueryRowContext(ctx, query, draftID).Scan(
		&record.HostName,
		&record.GuestName,
		&record.Preset,
		&eventsData,
		&record.Duration,
		&record.CreatedAt)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, ErrRecordNotFound
		}
		return nil, err
	}

	var events []draft.Event
	if err := json.Unmarshal(eventsData, &events); err != nil {
		return nil, err
	}
	record.Events = events

	return record, nil
}

// Close 关闭数据库连接
func (p *PostgreSQL) Close() error {
	return p.db.Close()
}
