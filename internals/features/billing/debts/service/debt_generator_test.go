package service

import (
	"testing"

	"github.com/google/uuid"
)

func TestBuildDebtPlanBaseAndActivities(t *testing.T) {
	memberID := uuid.New()
	actA := uuid.New()
	actB := uuid.New()

	plan, ok := BuildDebtPlan(ChargeInput{
		MemberID: memberID,
		BaseFee:  10.00,
		Activities: []ActivityFee{
			{ActivityID: actA, Name: "Fútbol", MonthlyCost: 5.00},
			{ActivityID: actB, Name: "Natación", MonthlyCost: 7.50},
		},
	})
	if !ok {
		t.Fatal("expected a plan for a member with charges")
	}
	if plan.Total != 22.50 {
		t.Fatalf("total = %v, want 22.50", plan.Total)
	}
	if len(plan.Items) != 3 {
		t.Fatalf("items = %d, want 3", len(plan.Items))
	}

	base := plan.Items[0]
	if base.Description != "Cuota Social" || base.Amount != 10.00 || base.ActivityID != nil {
		t.Fatalf("unexpected base item: %+v", base)
	}
	if plan.Items[1].Description != "Actividad: Fútbol" || *plan.Items[1].ActivityID != actA {
		t.Fatalf("unexpected first activity item: %+v", plan.Items[1])
	}
	if plan.Items[2].Description != "Actividad: Natación" || plan.Items[2].Amount != 7.50 {
		t.Fatalf("unexpected second activity item: %+v", plan.Items[2])
	}
	for i, it := range plan.Items {
		if it.Position != i {
			t.Fatalf("item %d has position %d", i, it.Position)
		}
	}
}

func TestBuildDebtPlanZeroChargeSkipped(t *testing.T) {
	_, ok := BuildDebtPlan(ChargeInput{MemberID: uuid.New(), BaseFee: 0})
	if ok {
		t.Fatal("member without base fee nor activities must not produce a debt")
	}
}

func TestBuildDebtPlanNoBaseFee(t *testing.T) {
	act := uuid.New()
	plan, ok := BuildDebtPlan(ChargeInput{
		MemberID:   uuid.New(),
		BaseFee:    0,
		Activities: []ActivityFee{{ActivityID: act, Name: "Tenis", MonthlyCost: 12.00}},
	})
	if !ok {
		t.Fatal("activities alone must produce a debt")
	}
	if len(plan.Items) != 1 || plan.Items[0].ActivityID == nil {
		t.Fatalf("expected single activity item, got %+v", plan.Items)
	}
	if plan.Items[0].Position != 0 {
		t.Fatalf("first item position = %d, want 0", plan.Items[0].Position)
	}
	if plan.Total != 12.00 {
		t.Fatalf("total = %v, want 12.00", plan.Total)
	}
}

func TestPlanMonthlyDebtsRerunGeneratesNothing(t *testing.T) {
	withCharges := ChargeInput{MemberID: uuid.New(), BaseFee: 10}
	withActivity := ChargeInput{
		MemberID:   uuid.New(),
		BaseFee:    10,
		Activities: []ActivityFee{{ActivityID: uuid.New(), Name: "Fútbol", MonthlyCost: 5}},
	}
	zeroCharge := ChargeInput{MemberID: uuid.New(), BaseFee: 0}
	inputs := []ChargeInput{withCharges, withActivity, zeroCharge}

	// run pertama: dua tagihan, socio tanpa cargo dilewati
	first := PlanMonthlyDebts(inputs, map[uuid.UUID]struct{}{})
	if len(first.Plans) != 2 {
		t.Fatalf("first run plans = %d, want 2", len(first.Plans))
	}
	if first.SkippedExisting != 0 || first.SkippedZeroCharge != 1 {
		t.Fatalf("first run skips = %+v", first)
	}

	// re-run bulan yang sama: semua yang sudah digenerate dianggap existing
	existing := map[uuid.UUID]struct{}{}
	for _, p := range first.Plans {
		existing[p.MemberID] = struct{}{}
	}
	second := PlanMonthlyDebts(inputs, existing)
	if len(second.Plans) != 0 {
		t.Fatalf("second run plans = %d, want 0", len(second.Plans))
	}
	if second.SkippedExisting != 2 || second.SkippedZeroCharge != 1 {
		t.Fatalf("second run skips = %+v", second)
	}
}

func TestPlanMonthlyDebtsPartialExisting(t *testing.T) {
	existingMember := uuid.New()
	newMember := uuid.New()
	inputs := []ChargeInput{
		{MemberID: existingMember, BaseFee: 10},
		{MemberID: newMember, BaseFee: 10},
	}

	// socio baru masuk di tengah bulan: hanya dia yang dapat deuda baru
	got := PlanMonthlyDebts(inputs, map[uuid.UUID]struct{}{existingMember: {}})
	if len(got.Plans) != 1 || got.Plans[0].MemberID != newMember {
		t.Fatalf("unexpected plans: %+v", got.Plans)
	}
	if got.SkippedExisting != 1 {
		t.Fatalf("skipped existing = %d, want 1", got.SkippedExisting)
	}
}

func TestParseMonth(t *testing.T) {
	got, err := ParseMonth("2024-03")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.Year() != 2024 || got.Month() != 3 || got.Day() != 1 {
		t.Fatalf("got %v, want 2024-03-01", got)
	}

	for _, bad := range []string{"2024-13", "03-2024", "2024/03", "abc", ""} {
		if _, err := ParseMonth(bad); err == nil {
			t.Fatalf("ParseMonth(%q) should fail", bad)
		}
	}
}
