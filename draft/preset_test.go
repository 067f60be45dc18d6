package draft

import (
	"testing"
)

func TestNewPreset_RejectsEmptyTurns(t *testing.T) {
	if _, err := NewPreset("empty", DefaultOptions(), nil); err != ErrEmptyTurns {
		t.Errorf("Expected ErrEmptyTurns, got %v", err)
	}
}

func TestNewPreset_CopiesInputs(t *testing.T) {
	turns := []Turn{TurnHostPick}
	preset, err := NewPreset("copy", DefaultOptions(), turns)
	if err != nil {
		t.Fatalf("NewPreset failed: %v", err)
	}

	turns[0] = TurnGuestBan
	if preset.Turns[0].Player != PartyHost {
		t.Error("Preset must capture the turn script by value")
	}
}

func TestPresetByName(t *testing.T) {
	if _, ok := PresetByName("simple"); !ok {
		t.Error("simple preset should exist")
	}
	if _, ok := PresetByName("hidden"); !ok {
		t.Error("hidden preset should exist")
	}
	if _, ok := PresetByName("no_such"); ok {
		t.Error("unknown preset name should not resolve")
	}
}

func TestPreset_HasOption(t *testing.T) {
	preset := SimplePreset()
	if !preset.HasOption("aztecs") {
		t.Error("aztecs should be in the default catalog")
	}
	if preset.HasOption("atlantis") {
		t.Error("atlantis should not be in the default catalog")
	}
	if preset.HasOption("") {
		t.Error("the empty option id is never part of a catalog")
	}
}
