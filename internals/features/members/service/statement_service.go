package service

import (
	"sort"
	"time"

	"github.com/google/uuid"

	helper "clubmanager_backend/internals/helpers"
)

// Charge: satu debt bulanan di resumen de cuenta.
type Charge struct {
	DebtID      uuid.UUID
	Date        time.Time // debt_month
	Description string
	Amount      float64
}

// Credit: satu pembayaran di resumen de cuenta.
type Credit struct {
	PaymentID   uuid.UUID
	Date        time.Time
	Description string
	Amount      float64
}

// StatementLine: baris resumen dengan saldo berjalan (positif = debe).
type StatementLine struct {
	Date        string  `json:"date"` // AAAA-MM-DD
	Kind        string  `json:"kind"` // cargo | pago
	Description string  `json:"description"`
	Debit       float64 `json:"debit"`
	Credit      float64 `json:"credit"`
	Balance     float64 `json:"balance"`
}

// BuildStatement menggabungkan cargo & pago jadi satu timeline kronologis
// dengan saldo berjalan. Pada tanggal yang sama cargo ditaruh dulu supaya
// saldo tidak pernah "minus palsu" di tengah hari.
func BuildStatement(charges []Charge, credits []Credit) []StatementLine {
	lines := make([]StatementLine, 0, len(charges)+len(credits))

	for _, ch := range charges {
		lines = append(lines, StatementLine{
			Date:        ch.Date.Format("2006-01-02"),
			Kind:        "cargo",
			Description: ch.Description,
			Debit:       helper.RoundMoney(ch.Amount),
		})
	}
	for _, cr := range credits {
		lines = append(lines, StatementLine{
			Date:        cr.Date.Format("2006-01-02"),
			Kind:        "pago",
			Description: cr.Description,
			Credit:      helper.RoundMoney(cr.Amount),
		})
	}

	sort.SliceStable(lines, func(i, j int) bool {
		if lines[i].Date != lines[j].Date {
			return lines[i].Date < lines[j].Date
		}
		// cargo sebelum pago di tanggal yang sama
		return lines[i].Kind == "cargo" && lines[j].Kind == "pago"
	})

	balance := 0.0
	for i := range lines {
		balance = helper.RoundMoney(balance + lines[i].Debit - lines[i].Credit)
		lines[i].Balance = balance
	}
	return lines
}
