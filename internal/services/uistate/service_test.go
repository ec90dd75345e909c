package uistate_test

import (
	"testing"
	"time"

	"ledgerdesk/internal/domain"
	"ledgerdesk/internal/services/uistate"
)

func TestShow_EnqueuesWithFixedTitle(t *testing.T) {
	ui := uistate.New()

	id := ui.ShowError("Request failed.")
	notifications := ui.Notifications()
	if len(notifications) != 1 {
		t.Fatalf("len(Notifications) = %d, want 1", len(notifications))
	}
	n := notifications[0]
	if n.ID != id {
		t.Errorf("ID = %q, want %q", n.ID, id)
	}
	if n.Type != domain.NotifyError {
		t.Errorf("Type = %q, want error", n.Type)
	}
	if n.Title != "Error" {
		t.Errorf("Title = %q, want Error", n.Title)
	}
	if n.Message != "Request failed." {
		t.Errorf("Message = %q", n.Message)
	}
}

func TestShow_PreservesEnqueueOrder(t *testing.T) {
	ui := uistate.New()

	first := ui.ShowInfo("one")
	second := ui.ShowSuccess("two")
	third := ui.ShowWarning("three")

	got := ui.Notifications()
	want := []domain.NotificationID{first, second, third}
	if len(got) != len(want) {
		t.Fatalf("len(Notifications) = %d, want %d", len(got), len(want))
	}
	for i, id := range want {
		if got[i].ID != id {
			t.Errorf("Notifications[%d].ID = %q, want %q", i, got[i].ID, id)
		}
	}
}

func TestAutoExpiry_IndependentTimers(t *testing.T) {
	ui := uistate.New(uistate.WithTTL(30 * time.Millisecond))

	ui.ShowInfo("first")
	time.Sleep(15 * time.Millisecond)
	ui.ShowInfo("second")

	deadline := time.Now().Add(2 * time.Second)
	for {
		left := ui.Notifications()
		if len(left) == 1 {
			if left[0].Message != "second" {
				t.Fatalf("survivor = %q, want second", left[0].Message)
			}
			break
		}
		if time.Now().After(deadline) {
			t.Fatalf("first notification never expired alone: %d left", len(left))
		}
		time.Sleep(2 * time.Millisecond)
	}

	deadline = time.Now().Add(2 * time.Second)
	for len(ui.Notifications()) != 0 {
		if time.Now().After(deadline) {
			t.Fatal("second notification never expired")
		}
		time.Sleep(2 * time.Millisecond)
	}
}

func TestRemoveNotification_Idempotent(t *testing.T) {
	ui := uistate.New(uistate.WithTTL(time.Hour))

	id := ui.ShowSuccess("saved")
	ui.RemoveNotification(id)
	ui.RemoveNotification(id)
	ui.RemoveNotification("never-existed")

	if left := ui.Notifications(); len(left) != 0 {
		t.Errorf("len(Notifications) = %d, want 0", len(left))
	}
}

func TestRemoveNotification_CancelsTimer(t *testing.T) {
	ui := uistate.New(uistate.WithTTL(200 * time.Millisecond))

	drop := ui.ShowInfo("drop")
	ui.RemoveNotification(drop)

	time.Sleep(100 * time.Millisecond)
	keep := ui.ShowInfo("keep")

	// Past drop's original deadline, before keep's: the cancelled timer
	// must not have removed anything.
	time.Sleep(120 * time.Millisecond)
	left := ui.Notifications()
	if len(left) != 1 || left[0].ID != keep {
		t.Errorf("Notifications = %+v, want only the later entry", left)
	}
}

func TestFlags(t *testing.T) {
	ui := uistate.New()

	if ui.DarkMode() || ui.Loading() {
		t.Error("flags not false initially")
	}
	if !ui.ToggleSidebar() {
		t.Error("first ToggleSidebar = false, want true")
	}
	if ui.ToggleSidebar() {
		t.Error("second ToggleSidebar = true, want false")
	}
	ui.SetDarkMode(true)
	if !ui.DarkMode() {
		t.Error("DarkMode = false after SetDarkMode(true)")
	}
	ui.SetLoading(true)
	if !ui.Loading() {
		t.Error("Loading = false after SetLoading(true)")
	}
	ui.SetLoading(false)
	if ui.Loading() {
		t.Error("Loading = true after SetLoading(false)")
	}
}
