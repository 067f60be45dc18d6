// draft/draft.go
package draft

import (
	"sync"
	"time"
)

// Draft 单场选秀会话。事件日志是回合进度的唯一来源：
// len(Events) 即下一个期望回合的下标。
type Draft struct {
	ID         string
	HostName   string
	GuestName  string
	HostReady  bool
	GuestReady bool
	Preset     Preset
	Events     []Event
	CreatedAt  time.Time
	mutex      sync.RWMutex
}

// NewDraft 创建空会话
func NewDraft(id string, preset Preset) *Draft {
	return &Draft{
		ID:        id,
		Preset:    preset,
		CreatedAt: time.Now(),
	}
}

// SetPlayerName 设置一方名称，与事件日志无关
func (d *Draft) SetPlayerName(p Party, name string) {
	d.mutex.Lock()
	defer d.mutex.Unlock()

	switch p {
	case PartyHost:
		d.HostName = name
	case PartyGuest:
		d.GuestName = name
	}
}

// SetReady 标记一方已就绪
func (d *Draft) SetReady(p Party) {
	d.mutex.Lock()
	defer d.mutex.Unlock()

	switch p {
	case PartyHost:
		d.HostReady = true
	case PartyGuest:
		d.GuestReady = true
	}
}

// PlayerNames 返回双方名称
func (d *Draft) PlayerNames() (host, guest string) {
	d.mutex.RLock()
	defer d.mutex.RUnlock()
	return d.HostName, d.GuestName
}

// Apply 校验并追加事件，全有或全无：
// 任何违规都不会改变日志，校验与追加在同一把锁内完成。
func (d *Draft) Apply(ev Event) []Violation {
	d.mutex.Lock()
	defer d.mutex.Unlock()

	if violations := Validate(d.Preset, d.Events, ev); len(violations) > 0 {
		return violations
	}
	d.Events = append(d.Events, ev)
	return nil
}

// Cursor 返回下一个期望回合的下标
func (d *Draft) Cursor() int {
	d.mutex.RLock()
	defer d.mutex.RUnlock()
	return len(d.Events)
}

// ExpectedTurn 返回当前游标处的回合；脚本走完返回 nil。
// 周边系统据此判断是否需要代为执行自动回合。
func (d *Draft) ExpectedTurn() *Turn {
	d.mutex.RLock()
	defer d.mutex.RUnlock()
	return d.expectedTurnLocked()
}

func (d *Draft) expectedTurnLocked() *Turn {
	if len(d.Events) >= len(d.Preset.Turns) {
		return nil
	}
	turn := d.Preset.Turns[len(d.Events)]
	return &turn
}

// LastTurnHidden 最近追加的事件对应的回合是否是隐藏回合，
// 中继层据此决定是否按视角分发遮盖后的载荷
func (d *Draft) LastTurnHidden() bool {
	d.mutex.RLock()
	defer d.mutex.RUnlock()

	n := len(d.Events)
	if n == 0 {
		return false
	}
	return d.Preset.Turns[n-1].Hidden
}

// Completed reports whether the whole turn script has been played out.
func (d *Draft) Completed() bool {
	d.mutex.RLock()
	defer d.mutex.RUnlock()
	return len(d.Events) >= len(d.Preset.Turns)
}

// EventLog 返回真实日志的副本（不做遮盖），归档用
func (d *Draft) EventLog() []Event {
	d.mutex.RLock()
	defer d.mutex.RUnlock()
	return append([]Event(nil), d.Events...)
}
