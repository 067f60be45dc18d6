// draft/types.go
package draft

// Party 标识会话中的一方
type Party int

const (
	// PartyNone 系统哨兵，自动回合由它执行
	PartyNone Party = iota
	PartyHost
	PartyGuest
	PartySpectator
)

func (p Party) String() string {
	switch p {
	case PartyHost:
		return "host"
	case PartyGuest:
		return "guest"
	case PartySpectator:
		return "spectator"
	default:
		return "none"
	}
}

// ActionKind 回合要求的动作类型
type ActionKind int

const (
	ActionPick ActionKind = iota
	ActionBan
	ActionSnipe
	ActionReveal
)

func (a ActionKind) String() string {
	switch a {
	case ActionPick:
		return "pick"
	case ActionBan:
		return "ban"
	case ActionSnipe:
		return "snipe"
	case ActionReveal:
		return "reveal"
	default:
		return "unknown"
	}
}

// HasOption reports whether events of this kind carry a chosen option.
// Reveal instructions are bare: they act on the log, not on the catalog.
func (a ActionKind) HasOption() bool {
	return a != ActionReveal
}

// Exclusivity 一个选项被选中之后的可用性规则
type Exclusivity int

const (
	NonExclusive Exclusivity = iota
	// ExclusiveGlobal 任何一方选过之后，双方都不能再选
	ExclusiveGlobal
	// ExclusiveSelf 同一方不能再选，另一方不受影响
	ExclusiveSelf
)

// Option 可被选择的目录条目
type Option struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

var (
	// HiddenOption 投影中用于遮盖未揭示选择的哨兵
	HiddenOption = Option{ID: "HIDDEN", Name: "Hidden"}
	// NoOption 尚无选择
	NoOption = Option{}
)

// Turn 固定回合脚本中的一步
type Turn struct {
	Player      Party       `json:"player"`
	Action      ActionKind  `json:"action"`
	Exclusivity Exclusivity `json:"exclusivity"`
	// Hidden 为真时，所选选项在揭示前对 Player 以外的所有视角遮盖
	Hidden bool `json:"hidden"`
	// Auto 为真时，回合由系统在固定延迟后代为执行（Player 为 PartyNone）
	Auto bool `json:"auto"`
	// HiddenFrom 将遮盖收窄到指定一方；PartyNone 表示按默认规则遮盖
	HiddenFrom Party `json:"hidden_from"`
}

// 常用回合模板
var (
	TurnHostPick        = Turn{Player: PartyHost, Action: ActionPick, Exclusivity: ExclusiveGlobal}
	TurnGuestPick       = Turn{Player: PartyGuest, Action: ActionPick, Exclusivity: ExclusiveGlobal}
	TurnHostBan         = Turn{Player: PartyHost, Action: ActionBan, Exclusivity: ExclusiveGlobal}
	TurnGuestBan        = Turn{Player: PartyGuest, Action: ActionBan, Exclusivity: ExclusiveGlobal}
	TurnHostHiddenPick  = Turn{Player: PartyHost, Action: ActionPick, Exclusivity: ExclusiveGlobal, Hidden: true}
	TurnGuestHiddenPick = Turn{Player: PartyGuest, Action: ActionPick, Exclusivity: ExclusiveGlobal, Hidden: true}
	TurnRevealAll       = Turn{Player: PartyNone, Action: ActionReveal, Auto: true}
)

// Event 已接受的一次动作记录，追加进日志后不再修改
type Event struct {
	Player         Party      `json:"player"`
	Action         ActionKind `json:"action"`
	ChosenOptionID string     `json:"chosen_option_id,omitempty"`
	// Public 为真时该事件不参与遮盖
	Public      bool  `json:"public,omitempty"`
	TargetParty Party `json:"target_party,omitempty"`
}
