package helper

import "math"

// RoundMoney membulatkan ke 2 desimal (sen). Semua nilai uang di aplikasi
// disimpan numeric(10,2); setiap hasil aritmetika wajib lewat sini supaya
// perbandingan >= / <= antar nilai tetap konsisten.
func RoundMoney(v float64) float64 {
	return math.Round(v*100) / 100
}

// MoneyGTE: a >= b pada presisi sen.
func MoneyGTE(a, b float64) bool {
	return RoundMoney(a)-RoundMoney(b) > -0.005
}

// MoneyCents mengkonversi peso ke centavos bulat untuk gateway pago.
// Nilai seperti 0.29 tersimpan float sebagai 0.28999..., jadi cast
// langsung int64(v*100) bisa kurang satu centavo.
func MoneyCents(v float64) int64 {
	return int64(math.Round(v * 100))
}
