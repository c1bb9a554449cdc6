package service

import (
	"testing"

	"github.com/google/uuid"
)

func TestBuildDebtorsSummaryNetsPartialPayments(t *testing.T) {
	member := uuid.New()

	// pago parsial: 30 dari 35 sudah masuk, saldo harus 5
	got := BuildDebtorsSummary([]DebtorDebtRow{
		{MemberID: member, FirstName: "Ana", LastName: "Pérez", DebtTotal: 35, PaidTotal: 30},
	})
	if len(got) != 1 {
		t.Fatalf("summaries = %d, want 1", len(got))
	}
	if got[0].UnpaidSum != 5 {
		t.Fatalf("unpaid sum = %v, want 5", got[0].UnpaidSum)
	}
	if got[0].DebtCount != 1 {
		t.Fatalf("debt count = %d, want 1", got[0].DebtCount)
	}
}

func TestBuildDebtorsSummaryAggregatesAndOrders(t *testing.T) {
	conPagos := uuid.New()
	sinPagos := uuid.New()

	got := BuildDebtorsSummary([]DebtorDebtRow{
		// dua deuda untuk socio yang sama, salah satunya dibayar sebagian
		{MemberID: conPagos, FirstName: "Ana", LastName: "Pérez", DebtTotal: 20, PaidTotal: 15},
		{MemberID: conPagos, FirstName: "Ana", LastName: "Pérez", DebtTotal: 20, PaidTotal: 0},
		{MemberID: sinPagos, FirstName: "Juan", LastName: "Gómez", DebtTotal: 35, PaidTotal: 0},
	})
	if len(got) != 2 {
		t.Fatalf("summaries = %d, want 2", len(got))
	}
	// orden: saldo terbesar duluan (35 > 25)
	if got[0].MemberID != sinPagos || got[0].UnpaidSum != 35 {
		t.Fatalf("first summary: %+v", got[0])
	}
	if got[1].MemberID != conPagos || got[1].UnpaidSum != 25 || got[1].DebtCount != 2 {
		t.Fatalf("second summary: %+v", got[1])
	}
}

func TestBuildDebtorsSummaryOverpaidDebtClampsToZero(t *testing.T) {
	member := uuid.New()

	// deuda overpaid yang flag-nya belum sempat diupdate tidak boleh
	// menyumbang saldo negatif
	got := BuildDebtorsSummary([]DebtorDebtRow{
		{MemberID: member, DebtTotal: 10, PaidTotal: 12},
		{MemberID: member, DebtTotal: 20, PaidTotal: 0},
	})
	if len(got) != 1 || got[0].UnpaidSum != 20 {
		t.Fatalf("unexpected summaries: %+v", got)
	}
}
