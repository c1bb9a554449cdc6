package service

import (
	"testing"

	"github.com/google/uuid"
)

func ptrUUID() *uuid.UUID {
	id := uuid.New()
	return &id
}

func TestOrderForAllocationBaseFirst(t *testing.T) {
	actItem := AllocItem{Description: "Actividad: Fútbol", Amount: 12, ActivityID: ptrUUID(), Position: 0}
	baseItem := AllocItem{Description: "Cuota Social", Amount: 8, Position: 1}
	manual := AllocItem{Description: "Multa", Amount: 3, Position: 2}

	got := OrderForAllocation([]AllocItem{actItem, baseItem, manual})
	if len(got) != 3 {
		t.Fatalf("len = %d, want 3", len(got))
	}
	if got[0].Description != "Cuota Social" || got[1].Description != "Multa" {
		t.Fatalf("nil-activity items must come first, in insertion order: %+v", got)
	}
	if got[2].Description != "Actividad: Fútbol" {
		t.Fatalf("activity item must come last: %+v", got)
	}
}

func TestBuildAllocationPlanWaterfall(t *testing.T) {
	base := AllocItem{Description: "Cuota Social", Amount: 15, Position: 0}
	act := AllocItem{Description: "Actividad: Natación", Amount: 20, ActivityID: ptrUUID(), Position: 1}
	items := []AllocItem{base, act}

	// pembayaran parsial: baru menutup sebagian cuota base
	allocs, un := BuildAllocationPlan(items, 0, 10)
	if len(allocs) != 1 || allocs[0].Amount != 10 || allocs[0].Item.Description != "Cuota Social" {
		t.Fatalf("unexpected allocations: %+v", allocs)
	}
	if un != 0 {
		t.Fatalf("unallocated = %v, want 0", un)
	}

	// pembayaran kedua: melunasi base lalu lanjut ke item aktivitas
	allocs, un = BuildAllocationPlan(items, 10, 15)
	if len(allocs) != 2 {
		t.Fatalf("expected 2 allocations, got %+v", allocs)
	}
	if allocs[0].Item.Description != "Cuota Social" || allocs[0].Amount != 5 {
		t.Fatalf("base remainder wrong: %+v", allocs[0])
	}
	if allocs[1].Item.Description != "Actividad: Natación" || allocs[1].Amount != 10 {
		t.Fatalf("activity portion wrong: %+v", allocs[1])
	}
	if un != 0 {
		t.Fatalf("unallocated = %v, want 0", un)
	}
}

func TestBuildAllocationPlanExactTwoPayments(t *testing.T) {
	base := AllocItem{Description: "Cuota Social", Amount: 15, Position: 0}
	act := AllocItem{Description: "Actividad: Fútbol", Amount: 20, ActivityID: ptrUUID(), Position: 1}
	items := []AllocItem{base, act}

	// pago 1: 15 menutup persis cuota base
	allocs, un := BuildAllocationPlan(items, 0, 15)
	if len(allocs) != 1 || allocs[0].Item.Description != "Cuota Social" || allocs[0].Amount != 15 {
		t.Fatalf("first payment: %+v", allocs)
	}
	if un != 0 {
		t.Fatalf("first payment unallocated = %v", un)
	}

	// pago 2: 20 menutup persis item aktivitas
	allocs, un = BuildAllocationPlan(items, 15, 20)
	if len(allocs) != 1 || allocs[0].Item.Description != "Actividad: Fútbol" || allocs[0].Amount != 20 {
		t.Fatalf("second payment: %+v", allocs)
	}
	if un != 0 {
		t.Fatalf("second payment unallocated = %v", un)
	}
}

func TestBuildAllocationPlanOverpayment(t *testing.T) {
	items := []AllocItem{{Description: "Cuota Social", Amount: 10, Position: 0}}

	allocs, un := BuildAllocationPlan(items, 0, 25)
	if len(allocs) != 1 || allocs[0].Amount != 10 {
		t.Fatalf("unexpected allocations: %+v", allocs)
	}
	if un != 15 {
		t.Fatalf("unallocated = %v, want 15", un)
	}
}

func TestBuildAllocationPlanAlreadyCoveredSkipped(t *testing.T) {
	base := AllocItem{Description: "Cuota Social", Amount: 10, Position: 0}
	act := AllocItem{Description: "Actividad: Tenis", Amount: 8, ActivityID: ptrUUID(), Position: 1}

	// cuota base sudah tertutup pembayaran sebelumnya
	allocs, un := BuildAllocationPlan([]AllocItem{base, act}, 10, 8)
	if len(allocs) != 1 || allocs[0].Item.Description != "Actividad: Tenis" || allocs[0].Amount != 8 {
		t.Fatalf("unexpected allocations: %+v", allocs)
	}
	if un != 0 {
		t.Fatalf("unallocated = %v, want 0", un)
	}
}

func TestBuildAllocationPlanConservation(t *testing.T) {
	items := []AllocItem{
		{Description: "Cuota Social", Amount: 7.35, Position: 0},
		{Description: "Actividad: Fútbol", Amount: 4.10, ActivityID: ptrUUID(), Position: 1},
		{Description: "Actividad: Natación", Amount: 9.99, ActivityID: ptrUUID(), Position: 2},
	}

	for _, amount := range []float64{0.01, 5, 7.35, 11.45, 21.44, 50} {
		allocs, un := BuildAllocationPlan(items, 0, amount)
		sum := un
		for _, a := range allocs {
			sum += a.Amount
		}
		if diff := sum - amount; diff > 0.005 || diff < -0.005 {
			t.Fatalf("amount %v: allocations+unallocated = %v", amount, sum)
		}
	}
}
