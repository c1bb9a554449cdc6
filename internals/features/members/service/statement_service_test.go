package service

import (
	"testing"
	"time"

	"github.com/google/uuid"
)

func day(s string) time.Time {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		panic(err)
	}
	return t
}

func TestBuildStatementRunningBalance(t *testing.T) {
	charges := []Charge{
		{DebtID: uuid.New(), Date: day("2024-01-01"), Description: "Cuota 2024-01", Amount: 22.50},
		{DebtID: uuid.New(), Date: day("2024-02-01"), Description: "Cuota 2024-02", Amount: 22.50},
	}
	credits := []Credit{
		{PaymentID: uuid.New(), Date: day("2024-01-15"), Description: "Pago", Amount: 15},
		{PaymentID: uuid.New(), Date: day("2024-02-10"), Description: "Pago", Amount: 30},
	}

	lines := BuildStatement(charges, credits)
	if len(lines) != 4 {
		t.Fatalf("len(lines) = %d, want 4", len(lines))
	}

	wantBalances := []float64{22.50, 7.50, 30.00, 0.00}
	for i, want := range wantBalances {
		if lines[i].Balance != want {
			t.Fatalf("line %d balance = %v, want %v", i, lines[i].Balance, want)
		}
	}
}

func TestBuildStatementChargeBeforePaymentSameDay(t *testing.T) {
	charges := []Charge{
		{DebtID: uuid.New(), Date: day("2024-03-01"), Description: "Cuota 2024-03", Amount: 10},
	}
	credits := []Credit{
		{PaymentID: uuid.New(), Date: day("2024-03-01"), Description: "Pago", Amount: 10},
	}

	lines := BuildStatement(charges, credits)
	if len(lines) != 2 {
		t.Fatalf("len(lines) = %d, want 2", len(lines))
	}
	if lines[0].Kind != "cargo" || lines[1].Kind != "pago" {
		t.Fatalf("cargo must come before pago on the same day: %+v", lines)
	}
	if lines[1].Balance != 0 {
		t.Fatalf("final balance = %v, want 0", lines[1].Balance)
	}
}

func TestBuildStatementEmpty(t *testing.T) {
	if lines := BuildStatement(nil, nil); len(lines) != 0 {
		t.Fatalf("expected empty statement, got %+v", lines)
	}
}
