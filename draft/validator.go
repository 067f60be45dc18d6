// draft/validator.go
package draft

// Violation 校验失败的原因，一次提交可能命中多项
type Violation int

const (
	SequenceExhausted Violation = iota
	WrongActor
	WrongAction
	UnknownOption
	OptionUnavailable
	MissingTarget
)

func (v Violation) String() string {
	switch v {
	case SequenceExhausted:
		return "sequence_exhausted"
	case WrongActor:
		return "wrong_actor"
	case WrongAction:
		return "wrong_action"
	case UnknownOption:
		return "unknown_option"
	case OptionUnavailable:
		return "option_unavailable"
	case MissingTarget:
		return "missing_target"
	default:
		return "unknown"
	}
}

// Validate 依据预设与已有日志校验候选事件，返回命中的全部违规项。
// 返回空切片表示接受。纯函数：不修改任何入参，追加由调用方负责。
func Validate(preset Preset, events []Event, candidate Event) []Violation {
	var violations []Violation

	next := len(events)
	if next >= len(preset.Turns) {
		return append(violations, SequenceExhausted)
	}
	turn := preset.Turns[next]

	if candidate.Player != turn.Player {
		violations = append(violations, WrongActor)
	}
	if candidate.Action != turn.Action {
		violations = append(violations, WrongAction)
	}

	if candidate.Action.HasOption() {
		if !preset.HasOption(candidate.ChosenOptionID) {
			violations = append(violations, UnknownOption)
		}
		if consumed(preset, events, candidate) {
			violations = append(violations, OptionUnavailable)
		}
	}

	if turn.HiddenFrom != PartyNone && candidate.TargetParty != turn.HiddenFrom {
		violations = append(violations, MissingTarget)
	}

	return violations
}

// consumed 检查候选选项是否已按排他规则被消耗
func consumed(preset Preset, events []Event, candidate Event) bool {
	for i, ev := range events {
		if !ev.Action.HasOption() || ev.ChosenOptionID != candidate.ChosenOptionID {
			continue
		}
		switch preset.Turns[i].Exclusivity {
		case ExclusiveGlobal:
			return true
		case ExclusiveSelf:
			if ev.Player == candidate.Player {
				return true
			}
		}
	}
	return false
}
