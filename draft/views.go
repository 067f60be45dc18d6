// draft/views.go
package draft

// View 面向单一视角的完整快照，供传输层序列化
type View struct {
	ID        string  `json:"id"`
	HostName  string  `json:"name_host"`
	GuestName string  `json:"name_guest"`
	YouAre    Party   `json:"you_are"`
	Events    []Event `json:"events"`
	NextTurn  *Turn   `json:"next_turn,omitempty"`
}

// ProjectedEvents 为 viewer 重放事件日志，未揭示的隐藏选择替换为 HiddenOption。
// 每次调用都从完整日志重新计算：存储事件从不改写，揭示只影响投影结果，
// 同一份日志对同一视角的输出恒定。
func (d *Draft) ProjectedEvents(viewer Party) []Event {
	d.mutex.RLock()
	defer d.mutex.RUnlock()
	return d.projectedEventsLocked(viewer)
}

func (d *Draft) projectedEventsLocked(viewer Party) []Event {
	// 最后一个揭示事件之前的隐藏选择都视为已揭示
	lastReveal := -1
	for i, ev := range d.Events {
		if ev.Action == ActionReveal {
			lastReveal = i
		}
	}

	out := make([]Event, len(d.Events))
	for i, ev := range d.Events {
		if i > lastReveal && concealedFrom(d.Preset.Turns[i], ev, viewer) {
			ev.ChosenOptionID = HiddenOption.ID
		}
		out[i] = ev
	}
	return out
}

// concealedFrom 判断该事件的选项此刻是否对 viewer 遮盖
func concealedFrom(turn Turn, ev Event, viewer Party) bool {
	if !turn.Hidden || ev.Public || !ev.Action.HasOption() {
		return false
	}
	if turn.HiddenFrom != PartyNone {
		// 定向遮盖：只有被指名的一方看不到
		return viewer == turn.HiddenFrom
	}
	return viewer != ev.Player
}

// ViewFor 组装 viewer 的完整快照
func (d *Draft) ViewFor(viewer Party) View {
	d.mutex.RLock()
	defer d.mutex.RUnlock()

	return View{
		ID:        d.ID,
		HostName:  d.HostName,
		GuestName: d.GuestName,
		YouAre:    viewer,
		Events:    d.projectedEventsLocked(viewer),
		NextTurn:  d.expectedTurnLocked(),
	}
}
