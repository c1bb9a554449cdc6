package service

import (
	"sort"

	"github.com/google/uuid"

	helper "clubmanager_backend/internals/helpers"
)

// DebtorDebtRow: satu deuda belum lunas milik satu socio, plus total
// pago yang sudah masuk ke deuda tsb.
type DebtorDebtRow struct {
	MemberID  uuid.UUID
	FirstName string
	LastName  string
	Phone     string
	DebtTotal float64
	PaidTotal float64
}

type DebtorSummary struct {
	MemberID  uuid.UUID
	FirstName string
	LastName  string
	Phone     string
	UnpaidSum float64
	DebtCount int
}

// BuildDebtorsSummary mengagregasi deuda per socio untuk reporte de
// morosos. Saldo tiap deuda dihitung neto pago parsial: socio yang
// sudah membayar 30 dari 35 muncul dengan 5, bukan 35. Hasil diurutkan
// dari saldo terbesar.
func BuildDebtorsSummary(rows []DebtorDebtRow) []DebtorSummary {
	index := make(map[uuid.UUID]int, len(rows))
	out := make([]DebtorSummary, 0, len(rows))
	for _, r := range rows {
		outstanding := helper.RoundMoney(r.DebtTotal - r.PaidTotal)
		if outstanding < 0 {
			outstanding = 0
		}
		i, ok := index[r.MemberID]
		if !ok {
			i = len(out)
			index[r.MemberID] = i
			out = append(out, DebtorSummary{
				MemberID:  r.MemberID,
				FirstName: r.FirstName,
				LastName:  r.LastName,
				Phone:     r.Phone,
			})
		}
		out[i].UnpaidSum = helper.RoundMoney(out[i].UnpaidSum + outstanding)
		out[i].DebtCount++
	}

	sort.SliceStable(out, func(a, b int) bool {
		return out[a].UnpaidSum > out[b].UnpaidSum
	})
	return out
}
