// session/session.go
package session

import (
	"sync"
	"time"

	"github.com/wfunc/draftserver/draft"
	"github.com/wfunc/draftserver/network"
)

// Session 一条已接入的客户端连接及其在某场选秀中的身份
type Session struct {
	ID         string
	Conn       network.Connection
	DraftID    string
	Role       draft.Party
	Name       string
	CreatedAt  time.Time
	LastActive time.Time
	mutex      sync.RWMutex
}

func NewSession(id string, conn network.Connection) *Session {
	now := time.Now()
	return &Session{
		ID:         id,
		Conn:       conn,
		Role:       draft.PartySpectator,
		CreatedAt:  now,
		LastActive: now,
	}
}

// Bind 绑定会话到一场选秀与角色，连接建立时由引导逻辑调用一次
func (s *Session) Bind(draftID string, role draft.Party) {
	s.mutex.Lock()
	defer s.mutex.Unlock()
	s.DraftID = draftID
	s.Role = role
}

// GetRole 返回分配的角色
func (s *Session) GetRole() draft.Party {
	s.mutex.RLock()
	defer s.mutex.RUnlock()
	return s.Role
}

// SetName 记录玩家报上的名字
func (s *Session) SetName(name string) {
	s.mutex.Lock()
	defer s.mutex.Unlock()
	s.Name = name
}

func (s *Session) Send(msgID uint16, data []byte) error {
	s.LastActive = time.Now()
	return s.Conn.Send(msgID, data)
}

func (s *Session) GetID() string {
	return s.ID
}

func (s *Session) Close() error {
	return s.Conn.Close()
}

// Session管理器
type Manager struct {
	sessions map[string]*Session
	mutex    sync.RWMutex
}

func NewManager() *Manager {
	return &Manager{
		sessions: make(map[string]*Session),
	}
}

func (m *Manager) Add(session *Session) {
	m.mutex.Lock()
	defer m.mutex.Unlock()
	m.sessions[session.ID] = session
}

func (m *Manager) Remove(sessionID string) {
	m.mutex.Lock()
	defer m.mutex.Unlock()
	delete(m.sessions, sessionID)
}

func (m *Manager) Get(sessionID string) (*Session, bool) {
	m.mutex.RLock()
	defer m.mutex.RUnlock()
	session, exists := m.sessions[sessionID]
	return session, exists
}

// Count 在线连接数，监控用
func (m *Manager) Count() int {
	m.mutex.RLock()
	defer m.mutex.RUnlock()
	return len(m.sessions)
}

// GetByDraft 返回接入同一场选秀的所有会话
func (m *Manager) GetByDraft(draftID string) []*Session {
	m.mutex.RLock()
	defer m.mutex.RUnlock()

	var result []*Session
	for _, session := range m.sessions {
		if session.DraftID == draftID {
			result = append(result, session)
		}
	}
	return result
}

// GetByRole 返回某场选秀中指定角色的会话
func (m *Manager) GetByRole(draftID string, role draft.Party) []*Session {
	m.mutex.RLock()
	defer m.mutex.RUnlock()

	var result []*Session
	for _, session := range m.sessions {
		if session.DraftID == draftID && session.GetRole() == role {
			result = append(result, session)
		}
	}
	return result
}
