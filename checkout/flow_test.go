package checkout

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"haircare-web/models"
)

func startedFlow(t *testing.T, cartTotal string) *Flow {
	t.Helper()
	total, err := decimal.NewFromString(cartTotal)
	if err != nil {
		t.Fatalf("bad total %q: %v", cartTotal, err)
	}
	f := NewFlow("user-1", total)
	if err := f.Proceed(); err != nil {
		t.Fatalf("proceed: %v", err)
	}
	return f
}

func TestFlowHappyPath(t *testing.T) {
	f := startedFlow(t, "40.00")
	if f.State() != StateEnteringAddress {
		t.Fatalf("state = %s", f.State())
	}

	fee, _ := decimal.NewFromString("5.50")
	loc := models.Location{Street: "Rua das Flores", Locality: "Lisboa", Parish: "Estrela", County: "Lisboa"}
	if err := f.ResolveAddress("1200", "192", loc, fee); err != nil {
		t.Fatalf("resolve: %v", err)
	}
	if f.State() != StateConfirmingDetails {
		t.Fatalf("state = %s", f.State())
	}
	if got := f.FormatTotalFinal(); got != "45.50" {
		t.Fatalf("totalFinal = %q, want 45.50", got)
	}

	addr := f.Address()
	if addr.Street != "Rua das Flores" || addr.PostalCodePrefix != "1200" || addr.PostalCodeSuffix != "192" {
		t.Fatalf("address = %+v", addr)
	}

	err := f.Confirm(models.AppointmentLocation{Number: "12", Floor: "3", Locality: "Lisboa Centro"}, "ring twice")
	if err != nil {
		t.Fatalf("confirm: %v", err)
	}
	if f.State() != StateSchedulingTime {
		t.Fatalf("state = %s", f.State())
	}
	// Edited field overrides the default; untouched ones keep it.
	addr = f.Address()
	if addr.Locality != "Lisboa Centro" || addr.Street != "Rua das Flores" || addr.Number != "12" {
		t.Fatalf("merged address = %+v", addr)
	}

	when := time.Date(2026, 9, 7, 10, 15, 0, 0, time.UTC)
	if err := f.Schedule(when, scheduleNow); err != nil {
		t.Fatalf("schedule: %v", err)
	}
	if f.State() != StateSubmitting {
		t.Fatalf("state = %s", f.State())
	}

	draft, err := f.Draft([]string{"svc-1", "svc-2", "svc-1"})
	if err != nil {
		t.Fatalf("draft: %v", err)
	}
	if len(draft.Services) != 2 || draft.Services[0] != "svc-1" || draft.Services[1] != "svc-2" {
		t.Fatalf("services not deduplicated: %v", draft.Services)
	}
	if draft.User != "user-1" || !draft.Date.Equal(when) || draft.Description != "ring twice" {
		t.Fatalf("draft = %+v", draft)
	}
}

func TestFlowResolveFailedClearsAddress(t *testing.T) {
	f := startedFlow(t, "10.00")

	f.ResolveFailed()
	if f.State() != StateEnteringAddress {
		t.Fatalf("state = %s", f.State())
	}
	if addr := f.Address(); addr != (models.AppointmentLocation{}) {
		t.Fatalf("address not cleared: %+v", addr)
	}

	// The user can retry with different postal values.
	fee, _ := decimal.NewFromString("2.00")
	if err := f.ResolveAddress("4000", "123", models.Location{Locality: "Porto"}, fee); err != nil {
		t.Fatalf("retry resolve: %v", err)
	}
}

func TestFlowSubmitFailedReturnsToScheduling(t *testing.T) {
	f := startedFlow(t, "10.00")
	fee, _ := decimal.NewFromString("1.00")
	f.ResolveAddress("1000", "100", models.Location{}, fee)
	f.Confirm(models.AppointmentLocation{}, "")
	if err := f.Schedule(time.Date(2026, 9, 7, 9, 0, 0, 0, time.UTC), scheduleNow); err != nil {
		t.Fatalf("schedule: %v", err)
	}

	f.SubmitFailed()
	if f.State() != StateSchedulingTime {
		t.Fatalf("state = %s", f.State())
	}

	// A corrected slot can be submitted again.
	if err := f.Schedule(time.Date(2026, 9, 8, 9, 0, 0, 0, time.UTC), scheduleNow); err != nil {
		t.Fatalf("reschedule: %v", err)
	}
}

func TestFlowRejectsOutOfOrderOperations(t *testing.T) {
	f := startedFlow(t, "10.00")

	if err := f.Confirm(models.AppointmentLocation{}, ""); err == nil {
		t.Fatal("confirm before resolve succeeded")
	}
	if err := f.Schedule(time.Date(2026, 9, 7, 9, 0, 0, 0, time.UTC), scheduleNow); err == nil {
		t.Fatal("schedule before confirm succeeded")
	}
	if _, err := f.Draft(nil); err == nil {
		t.Fatal("draft before submitting succeeded")
	}
	if err := f.Proceed(); err == nil {
		t.Fatal("second proceed succeeded")
	}
}

func TestRegistryPruneIdle(t *testing.T) {
	r := NewRegistry()
	f := r.Start("user-1", decimal.Zero)
	r.Start("user-2", decimal.Zero)

	f.mu.Lock()
	f.touched = time.Now().Add(-time.Hour)
	f.mu.Unlock()

	pruned := r.PruneIdle(30*time.Minute, time.Now())
	if pruned != 1 {
		t.Fatalf("pruned = %d, want 1", pruned)
	}
	if r.Get("user-1") != nil {
		t.Fatal("idle flow survived")
	}
	if r.Get("user-2") == nil {
		t.Fatal("active flow was pruned")
	}
}

func TestRegistryStartReplacesExisting(t *testing.T) {
	r := NewRegistry()
	first := r.Start("user-1", decimal.Zero)
	second := r.Start("user-1", decimal.Zero)
	if first.ID == second.ID {
		t.Fatal("expected a fresh flow id")
	}
	if r.Get("user-1") != second {
		t.Fatal("registry kept the stale flow")
	}
}
