// draft/store.go
package draft

import (
	"errors"
	"sync"
)

// ErrDraftNotFound is returned by per-draft accessors for unknown ids.
// Callers are expected to Initialize first; the error is always recoverable.
var ErrDraftNotFound = errors.New("draft not found")

// Store 保存进程内全部会话，进程中唯一的全局可变状态。
// 会话创建后不会被引擎删除，生命周期与进程一致。
type Store struct {
	drafts map[string]*Draft
	mutex  sync.RWMutex
}

// NewStore 创建空的会话注册表
func NewStore() *Store {
	return &Store{
		drafts: make(map[string]*Draft),
	}
}

// Initialize 按 id 幂等创建会话：已存在时原样返回，不碰事件日志
func (s *Store) Initialize(id string, preset Preset) *Draft {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	if d, exists := s.drafts[id]; exists {
		return d
	}
	d := NewDraft(id, preset)
	s.drafts[id] = d
	return d
}

// Get 按 id 查找会话
func (s *Store) Get(id string) (*Draft, error) {
	s.mutex.RLock()
	defer s.mutex.RUnlock()

	d, exists := s.drafts[id]
	if !exists {
		return nil, ErrDraftNotFound
	}
	return d, nil
}

// Has reports whether a draft exists for the id.
func (s *Store) Has(id string) bool {
	s.mutex.RLock()
	defer s.mutex.RUnlock()
	_, exists := s.drafts[id]
	return exists
}

// Count 当前会话数量，监控用
func (s *Store) Count() int {
	s.mutex.RLock()
	defer s.mutex.RUnlock()
	return len(s.drafts)
}

// SetPlayerName 设置一方名称
func (s *Store) SetPlayerName(id string, p Party, name string) error {
	d, err := s.Get(id)
	if err != nil {
		return err
	}
	d.SetPlayerName(p, name)
	return nil
}

// SetReady 标记一方就绪
func (s *Store) SetReady(id string, p Party) error {
	d, err := s.Get(id)
	if err != nil {
		return err
	}
	d.SetReady(p)
	return nil
}

// PlayerNames 返回双方名称
func (s *Store) PlayerNames(id string) (host, guest string, err error) {
	d, err := s.Get(id)
	if err != nil {
		return "", "", err
	}
	host, guest = d.PlayerNames()
	return host, guest, nil
}

// SubmitEvent 校验并追加事件；违规时日志保持不变
func (s *Store) SubmitEvent(id string, ev Event) ([]Violation, error) {
	d, err := s.Get(id)
	if err != nil {
		return nil, err
	}
	return d.Apply(ev), nil
}

// ExpectedTurn 返回当前游标处的回合，脚本走完返回 nil
func (s *Store) ExpectedTurn(id string) (*Turn, error) {
	d, err := s.Get(id)
	if err != nil {
		return nil, err
	}
	return d.ExpectedTurn(), nil
}

// LastTurnHidden 最近追加的事件是否属于隐藏回合
func (s *Store) LastTurnHidden(id string) (bool, error) {
	d, err := s.Get(id)
	if err != nil {
		return false, err
	}
	return d.LastTurnHidden(), nil
}

// ProjectedEvents 返回 viewer 视角下的事件序列
func (s *Store) ProjectedEvents(id string, viewer Party) ([]Event, error) {
	d, err := s.Get(id)
	if err != nil {
		return nil, err
	}
	return d.ProjectedEvents(viewer), nil
}
