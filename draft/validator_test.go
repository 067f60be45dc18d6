package draft

import (
	"testing"
)

func hasViolation(violations []Violation, want Violation) bool {
	for _, v := range violations {
		if v == want {
			return true
		}
	}
	return false
}

func TestValidate_SequenceExhausted(t *testing.T) {
	preset, _ := NewPreset("one", DefaultOptions(), []Turn{TurnHostPick})
	events := []Event{{Player: PartyHost, Action: ActionPick, ChosenOptionID: "aztecs"}}

	violations := Validate(preset, events, Event{Player: PartyGuest, Action: ActionPick, ChosenOptionID: "britons"})
	if !hasViolation(violations, SequenceExhausted) {
		t.Errorf("Expected SequenceExhausted, got %v", violations)
	}
}

func TestValidate_WrongActorAndAction(t *testing.T) {
	preset := SimplePreset() // host ban first

	violations := Validate(preset, nil, Event{Player: PartyGuest, Action: ActionPick, ChosenOptionID: "aztecs"})
	if !hasViolation(violations, WrongActor) {
		t.Errorf("Expected WrongActor, got %v", violations)
	}
	if !hasViolation(violations, WrongAction) {
		t.Errorf("Expected WrongAction collected in the same pass, got %v", violations)
	}
}

func TestValidate_SystemActorOnAutoTurn(t *testing.T) {
	preset := HiddenPreset()
	events := []Event{
		{Player: PartyHost, Action: ActionPick, ChosenOptionID: "aztecs"},
		{Player: PartyGuest, Action: ActionPick, ChosenOptionID: "britons"},
	}

	violations := Validate(preset, events, Event{Player: PartyNone, Action: ActionReveal})
	if len(violations) != 0 {
		t.Errorf("System reveal on the auto turn should be accepted, got %v", violations)
	}
}

func TestValidate_UnknownOption(t *testing.T) {
	preset := SimplePreset()

	violations := Validate(preset, nil, Event{Player: PartyHost, Action: ActionBan, ChosenOptionID: "atlantis"})
	if !hasViolation(violations, UnknownOption) {
		t.Errorf("Expected UnknownOption, got %v", violations)
	}
}

func TestValidate_UnknownOptionSkippedForReveal(t *testing.T) {
	preset, _ := NewPreset("reveal-only", DefaultOptions(), []Turn{TurnRevealAll})

	// A bare reveal carries no option; the catalog check must not fire.
	violations := Validate(preset, nil, Event{Player: PartyNone, Action: ActionReveal})
	if len(violations) != 0 {
		t.Errorf("Expected no violations for a bare reveal, got %v", violations)
	}
}

func TestValidate_ExclusiveGlobal(t *testing.T) {
	preset, _ := NewPreset("global", DefaultOptions(), []Turn{
		TurnHostPick,
		TurnGuestPick,
	})
	events := []Event{{Player: PartyHost, Action: ActionPick, ChosenOptionID: "aztecs"}}

	violations := Validate(preset, events, Event{Player: PartyGuest, Action: ActionPick, ChosenOptionID: "aztecs"})
	if !hasViolation(violations, OptionUnavailable) {
		t.Errorf("Expected OptionUnavailable under ExclusiveGlobal, got %v", violations)
	}
}

func TestValidate_ExclusiveSelf(t *testing.T) {
	selfPick := Turn{Player: PartyHost, Action: ActionPick, Exclusivity: ExclusiveSelf}
	guestPick := Turn{Player: PartyGuest, Action: ActionPick, Exclusivity: ExclusiveSelf}
	preset, _ := NewPreset("self", DefaultOptions(), []Turn{selfPick, guestPick, selfPick})

	events := []Event{{Player: PartyHost, Action: ActionPick, ChosenOptionID: "aztecs"}}

	// The other party may still take the option.
	violations := Validate(preset, events, Event{Player: PartyGuest, Action: ActionPick, ChosenOptionID: "aztecs"})
	if hasViolation(violations, OptionUnavailable) {
		t.Errorf("ExclusiveSelf must not block the other party, got %v", violations)
	}

	// The same party may not.
	events = append(events, Event{Player: PartyGuest, Action: ActionPick, ChosenOptionID: "britons"})
	violations = Validate(preset, events, Event{Player: PartyHost, Action: ActionPick, ChosenOptionID: "aztecs"})
	if !hasViolation(violations, OptionUnavailable) {
		t.Errorf("Expected OptionUnavailable for the same party under ExclusiveSelf, got %v", violations)
	}
}

func TestValidate_NonExclusiveAllowsRepeat(t *testing.T) {
	pick := Turn{Player: PartyHost, Action: ActionPick, Exclusivity: NonExclusive}
	guestPick := Turn{Player: PartyGuest, Action: ActionPick, Exclusivity: NonExclusive}
	preset, _ := NewPreset("nonexclusive", DefaultOptions(), []Turn{pick, guestPick})

	events := []Event{{Player: PartyHost, Action: ActionPick, ChosenOptionID: "aztecs"}}
	violations := Validate(preset, events, Event{Player: PartyGuest, Action: ActionPick, ChosenOptionID: "aztecs"})
	if len(violations) != 0 {
		t.Errorf("NonExclusive option should be repeatable, got %v", violations)
	}
}

func TestValidate_MissingTarget(t *testing.T) {
	targeted := Turn{Player: PartyGuest, Action: ActionPick, Exclusivity: NonExclusive, Hidden: true, HiddenFrom: PartyHost}
	preset, _ := NewPreset("targeted", DefaultOptions(), []Turn{targeted})

	violations := Validate(preset, nil, Event{Player: PartyGuest, Action: ActionPick, ChosenOptionID: "aztecs"})
	if !hasViolation(violations, MissingTarget) {
		t.Errorf("Expected MissingTarget when no target party is supplied, got %v", violations)
	}

	violations = Validate(preset, nil, Event{Player: PartyGuest, Action: ActionPick, ChosenOptionID: "aztecs", TargetParty: PartyGuest})
	if !hasViolation(violations, MissingTarget) {
		t.Errorf("Expected MissingTarget for an inconsistent target party, got %v", violations)
	}

	violations = Validate(preset, nil, Event{Player: PartyGuest, Action: ActionPick, ChosenOptionID: "aztecs", TargetParty: PartyHost})
	if len(violations) != 0 {
		t.Errorf("Expected no violations with a matching target party, got %v", violations)
	}
}
