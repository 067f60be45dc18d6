package draft

import (
	"reflect"
	"testing"
)

func TestProjection_RegularDraftLooksTheSameForEveryone(t *testing.T) {
	d := NewDraft("abcde", SimplePreset())
	mustApply(t, d, Event{Player: PartyHost, Action: ActionBan, ChosenOptionID: "aztecs"})

	hostView := d.ProjectedEvents(PartyHost)
	guestView := d.ProjectedEvents(PartyGuest)
	specView := d.ProjectedEvents(PartySpectator)

	if !reflect.DeepEqual(hostView, guestView) {
		t.Errorf("Host and guest views differ: %v vs %v", hostView, guestView)
	}
	if !reflect.DeepEqual(hostView, specView) {
		t.Errorf("Host and spectator views differ: %v vs %v", hostView, specView)
	}
}

func TestProjection_HiddenPickConcealedBeforeReveal(t *testing.T) {
	d := NewDraft("abcde", HiddenPreset())
	mustApply(t, d, Event{Player: PartyHost, Action: ActionPick, ChosenOptionID: "aztecs"})

	if got := d.ProjectedEvents(PartyHost)[0].ChosenOptionID; got != "aztecs" {
		t.Errorf("Host should see the own pick, got %q", got)
	}
	if got := d.ProjectedEvents(PartyGuest)[0].ChosenOptionID; got != HiddenOption.ID {
		t.Errorf("Guest should see the hidden sentinel, got %q", got)
	}
	if got := d.ProjectedEvents(PartySpectator)[0].ChosenOptionID; got != HiddenOption.ID {
		t.Errorf("Spectator should see the hidden sentinel, got %q", got)
	}
}

func TestProjection_RevealAllUnconcealsForEveryone(t *testing.T) {
	d := NewDraft("abcde", HiddenPreset())
	mustApply(t, d, Event{Player: PartyHost, Action: ActionPick, ChosenOptionID: "aztecs"})
	mustApply(t, d, Event{Player: PartyGuest, Action: ActionPick, ChosenOptionID: "britons"})
	mustApply(t, d, Event{Player: PartyNone, Action: ActionReveal})

	for _, viewer := range []Party{PartyHost, PartyGuest, PartySpectator} {
		events := d.ProjectedEvents(viewer)
		if events[0].ChosenOptionID != "aztecs" || events[1].ChosenOptionID != "britons" {
			t.Errorf("Viewer %v should see true options after reveal, got %v", viewer, events)
		}
	}
}

func TestProjection_NarrowedConcealment(t *testing.T) {
	// Guest picks against the host; only the named party stays blind.
	targeted := Turn{Player: PartyGuest, Action: ActionPick, Exclusivity: NonExclusive, Hidden: true, HiddenFrom: PartyHost}
	preset, err := NewPreset("targeted", DefaultOptions(), []Turn{targeted, TurnRevealAll})
	if err != nil {
		t.Fatalf("NewPreset failed: %v", err)
	}
	d := NewDraft("abcde", preset)
	mustApply(t, d, Event{Player: PartyGuest, Action: ActionPick, ChosenOptionID: "aztecs", TargetParty: PartyHost})

	if got := d.ProjectedEvents(PartyHost)[0].ChosenOptionID; got != HiddenOption.ID {
		t.Errorf("Targeted party should be blind, got %q", got)
	}
	if got := d.ProjectedEvents(PartyGuest)[0].ChosenOptionID; got != "aztecs" {
		t.Errorf("Acting party should see the true option, got %q", got)
	}
	if got := d.ProjectedEvents(PartySpectator)[0].ChosenOptionID; got != "aztecs" {
		t.Errorf("Spectator is not named by the narrowing and should see the true option, got %q", got)
	}

	mustApply(t, d, Event{Player: PartyNone, Action: ActionReveal})
	if got := d.ProjectedEvents(PartyHost)[0].ChosenOptionID; got != "aztecs" {
		t.Errorf("Targeted party should see the true option after reveal, got %q", got)
	}
}

func TestProjection_PublicOverrideSkipsConcealment(t *testing.T) {
	d := NewDraft("abcde", HiddenPreset())
	mustApply(t, d, Event{Player: PartyHost, Action: ActionPick, ChosenOptionID: "aztecs", Public: true})

	if got := d.ProjectedEvents(PartyGuest)[0].ChosenOptionID; got != "aztecs" {
		t.Errorf("Public events must never be concealed, got %q", got)
	}
}

func TestProjection_Deterministic(t *testing.T) {
	d := NewDraft("abcde", HiddenPreset())
	mustApply(t, d, Event{Player: PartyHost, Action: ActionPick, ChosenOptionID: "aztecs"})

	first := d.ProjectedEvents(PartyGuest)
	for i := 0; i < 5; i++ {
		if again := d.ProjectedEvents(PartyGuest); !reflect.DeepEqual(first, again) {
			t.Fatalf("Projection is not deterministic: %v vs %v", first, again)
		}
	}

	// The stored log keeps the true value; redaction happens only in the projection.
	if got := d.EventLog()[0].ChosenOptionID; got != "aztecs" {
		t.Errorf("Stored event must keep the true option, got %q", got)
	}
}

func TestViewFor_CarriesNamesAndNextTurn(t *testing.T) {
	d := NewDraft("abcde", HiddenPreset())
	d.SetPlayerName(PartyHost, "alice")
	d.SetPlayerName(PartyGuest, "bob")
	mustApply(t, d, Event{Player: PartyHost, Action: ActionPick, ChosenOptionID: "aztecs"})

	view := d.ViewFor(PartyGuest)
	if view.HostName != "alice" || view.GuestName != "bob" {
		t.Errorf("View should carry player names, got %q/%q", view.HostName, view.GuestName)
	}
	if view.YouAre != PartyGuest {
		t.Errorf("View should carry the viewer role, got %v", view.YouAre)
	}
	if view.NextTurn == nil || view.NextTurn.Player != PartyGuest {
		t.Errorf("View should carry the next expected turn, got %+v", view.NextTurn)
	}
	if view.Events[0].ChosenOptionID != HiddenOption.ID {
		t.Errorf("View events must be projected for the viewer, got %q", view.Events[0].ChosenOptionID)
	}
}
