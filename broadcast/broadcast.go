// broadcast/broadcast.go
package broadcast

import (
	"github.com/wfunc/draftserver/draft"
	"github.com/wfunc/draftserver/session"
)

// 广播接口
type Broadcaster interface {
	BroadcastToDraft(draftID string, msgID uint16, data []byte) error
	BroadcastToRole(draftID string, role draft.Party, msgID uint16, data []byte) error
}

// RoleBroadcaster 按选秀与角色分发消息，对应主机/客方/观众三个频道
type RoleBroadcaster struct {
	sessionManager *session.Manager
}

func NewRoleBroadcaster(sessionManager *session.Manager) *RoleBroadcaster {
	return &RoleBroadcaster{
		sessionManager: sessionManager,
	}
}

// BroadcastToDraft 向一场选秀的所有连接发送同一载荷
func (b *RoleBroadcaster) BroadcastToDraft(draftID string, msgID uint16, data []byte) error {
	for _, s := range b.sessionManager.GetByDraft(draftID) {
		if err := s.Send(msgID, data); err != nil {
			// 发送失败的连接交给读循环关闭
			continue
		}
	}
	return nil
}

// BroadcastToRole 只向指定角色的连接发送，隐藏回合的差异化载荷走这里
func (b *RoleBroadcaster) BroadcastToRole(draftID string, role draft.Party, msgID uint16, data []byte) error {
	for _, s := range b.sessionManager.GetByRole(draftID, role) {
		if err := s.Send(msgID, data); err != nil {
			continue
		}
	}
	return nil
}
