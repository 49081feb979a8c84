package cart

import (
	"testing"

	"github.com/shopspring/decimal"

	"haircare-web/models"
)

func svc(id, treatment string, price string) models.Service {
	p, _ := decimal.NewFromString(price)
	return models.Service{ID: id, Treatment: treatment, Price: p, Active: true}
}

func TestTotalRoundsOnlyAtOutput(t *testing.T) {
	s := NewStore()
	s.Replace([]models.CartLine{
		{Service: svc("a", "Color", "20.00"), Quantity: 2},
	})

	if got := s.FormatTotal(); got != "40.00" {
		t.Fatalf("total = %q, want 40.00", got)
	}

	// Three lines at 0.10 must not accumulate float drift.
	s.Replace([]models.CartLine{
		{Service: svc("a", "Color", "0.10"), Quantity: 1},
		{Service: svc("b", "Color", "0.10"), Quantity: 1},
		{Service: svc("c", "Color", "0.10"), Quantity: 1},
	})
	if got := s.FormatTotal(); got != "0.30" {
		t.Fatalf("total = %q, want 0.30", got)
	}
}

func TestStageQuantityRejectsBelowOne(t *testing.T) {
	s := NewStore()
	s.Replace([]models.CartLine{{Service: svc("a", "Color", "10.00"), Quantity: 1}})

	for _, qty := range []int{0, -1, -100} {
		if _, err := s.StageQuantity("a", qty); err != ErrQuantityTooLow {
			t.Fatalf("StageQuantity(%d) err = %v, want ErrQuantityTooLow", qty, err)
		}
	}
}

func TestStageQuantityUnknownService(t *testing.T) {
	s := NewStore()
	if _, err := s.StageQuantity("missing", 2); err != ErrLineNotFound {
		t.Fatalf("err = %v, want ErrLineNotFound", err)
	}
}

func TestQuantityConfirmAndRollback(t *testing.T) {
	s := NewStore()
	s.Replace([]models.CartLine{{Service: svc("a", "Color", "10.00"), Quantity: 1}})

	seq, err := s.StageQuantity("a", 3)
	if err != nil {
		t.Fatalf("stage: %v", err)
	}
	if got := s.Lines()[0]; got.Quantity != 3 || got.State != StatePending {
		t.Fatalf("staged line = %+v", got)
	}

	if !s.ResolveQuantity("a", seq, true) {
		t.Fatal("confirm was discarded")
	}
	if got := s.Lines()[0]; got.Quantity != 3 || got.State != StateConfirmed {
		t.Fatalf("confirmed line = %+v", got)
	}

	// A failed follow-up reverts to the last confirmed quantity.
	seq, _ = s.StageQuantity("a", 9)
	if !s.ResolveQuantity("a", seq, false) {
		t.Fatal("failure resolution was discarded")
	}
	if got := s.Lines()[0]; got.Quantity != 3 || got.State != StateFailed {
		t.Fatalf("reverted line = %+v", got)
	}
}

func TestStaleQuantityResolutionDiscarded(t *testing.T) {
	s := NewStore()
	s.Replace([]models.CartLine{{Service: svc("a", "Color", "10.00"), Quantity: 1}})

	first, _ := s.StageQuantity("a", 2)
	second, _ := s.StageQuantity("a", 5)

	// The older completion arrives last; it must not clobber the newer edit.
	if s.ResolveQuantity("a", first, true) {
		t.Fatal("stale resolution was applied")
	}
	if got := s.Lines()[0].Quantity; got != 5 {
		t.Fatalf("quantity = %d, want 5", got)
	}

	if !s.ResolveQuantity("a", second, true) {
		t.Fatal("newest resolution was discarded")
	}
}

func TestRemoveTargetsServiceIdentity(t *testing.T) {
	s := NewStore()
	s.Replace([]models.CartLine{
		{Service: svc("a", "Color", "10.00"), Quantity: 1},
		{Service: svc("b", "Cut", "15.00"), Quantity: 1},
		{Service: svc("c", "Braids", "25.00"), Quantity: 1},
	})

	// Remove the middle service by id; the remaining order is untouched.
	seq, err := s.StageRemove("b")
	if err != nil {
		t.Fatalf("stage remove: %v", err)
	}
	if !s.ResolveRemove("b", seq, true) {
		t.Fatal("remove resolution was discarded")
	}

	lines := s.Lines()
	if len(lines) != 2 || lines[0].Service.ID != "a" || lines[1].Service.ID != "c" {
		t.Fatalf("lines after remove = %+v", lines)
	}
}

func TestFailedRemoveRestoresLineInPlace(t *testing.T) {
	s := NewStore()
	s.Replace([]models.CartLine{
		{Service: svc("a", "Color", "10.00"), Quantity: 1},
		{Service: svc("b", "Cut", "15.00"), Quantity: 2},
		{Service: svc("c", "Braids", "25.00"), Quantity: 1},
	})

	seq, _ := s.StageRemove("b")
	if got := s.Len(); got != 2 {
		t.Fatalf("len during staged remove = %d", got)
	}

	s.ResolveRemove("b", seq, false)

	lines := s.Lines()
	if len(lines) != 3 || lines[1].Service.ID != "b" {
		t.Fatalf("lines after failed remove = %+v", lines)
	}
	if lines[1].State != StateFailed {
		t.Fatalf("restored line state = %s", lines[1].State)
	}
	if got := s.FormatTotal(); got != "65.00" {
		t.Fatalf("total = %q, want 65.00", got)
	}
}

func TestReplaceForgetsInFlightMutations(t *testing.T) {
	s := NewStore()
	s.Replace([]models.CartLine{{Service: svc("a", "Color", "10.00"), Quantity: 1}})
	seq, _ := s.StageQuantity("a", 4)

	s.Replace([]models.CartLine{{Service: svc("a", "Color", "10.00"), Quantity: 2}})

	if s.ResolveQuantity("a", seq, true) {
		t.Fatal("resolution from before Replace was applied")
	}
	if got := s.Lines()[0].Quantity; got != 2 {
		t.Fatalf("quantity = %d, want 2", got)
	}
}
