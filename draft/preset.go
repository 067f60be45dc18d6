// draft/preset.go
package draft

import "errors"

// ErrEmptyTurns is returned when a preset is constructed without any turns.
var ErrEmptyTurns = errors.New("preset must contain at least one turn")

// Preset 预设模板：固定回合脚本 + 本场可选的目录
// 会话创建时按值捕获，之后不再变化
type Preset struct {
	Name    string   `json:"name"`
	Options []Option `json:"options"`
	Turns   []Turn   `json:"turns"`
}

// NewPreset 构造预设，校验回合脚本非空
func NewPreset(name string, options []Option, turns []Turn) (Preset, error) {
	if len(turns) == 0 {
		return Preset{}, ErrEmptyTurns
	}
	return Preset{
		Name:    name,
		Options: append([]Option(nil), options...),
		Turns:   append([]Turn(nil), turns...),
	}, nil
}

// HasOption reports whether the option id belongs to this preset's catalog.
func (p Preset) HasOption(id string) bool {
	for _, o := range p.Options {
		if o.ID == id {
			return true
		}
	}
	return false
}

// DefaultOptions 默认目录
func DefaultOptions() []Option {
	return []Option{
		{ID: "aztecs", Name: "Aztecs"},
		{ID: "britons", Name: "Britons"},
		{ID: "byzantines", Name: "Byzantines"},
		{ID: "celts", Name: "Celts"},
		{ID: "chinese", Name: "Chinese"},
		{ID: "franks", Name: "Franks"},
		{ID: "goths", Name: "Goths"},
		{ID: "huns", Name: "Huns"},
		{ID: "japanese", Name: "Japanese"},
		{ID: "mayans", Name: "Mayans"},
		{ID: "mongols", Name: "Mongols"},
		{ID: "persians", Name: "Persians"},
		{ID: "spanish", Name: "Spanish"},
		{ID: "teutons", Name: "Teutons"},
		{ID: "turks", Name: "Turks"},
		{ID: "vikings", Name: "Vikings"},
	}
}

// SimplePreset 公开的交替禁选脚本
func SimplePreset() Preset {
	p, _ := NewPreset("simple", DefaultOptions(), []Turn{
		TurnHostBan,
		TurnGuestBan,
		TurnGuestPick,
		TurnHostPick,
		TurnHostPick,
		TurnGuestPick,
	})
	return p
}

// HiddenPreset 隐藏选择脚本：双方暗选，系统延迟揭示
func HiddenPreset() Preset {
	p, _ := NewPreset("hidden", DefaultOptions(), []Turn{
		TurnHostHiddenPick,
		TurnGuestHiddenPick,
		TurnRevealAll,
	})
	return p
}

// PresetByName 按名称查找内置预设
func PresetByName(name string) (Preset, bool) {
	switch name {
	case "simple":
		return SimplePreset(), true
	case "hidden":
		return HiddenPreset(), true
	default:
		return Preset{}, false
	}
}
