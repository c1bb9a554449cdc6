package service

import "testing"

func TestShouldRecordSettlement(t *testing.T) {
	cases := []struct {
		name           string
		txStatus       string
		alreadySettled bool
		want           bool
	}{
		{"settlement pertama", "settlement", false, true},
		{"capture pertama", "capture", false, true},
		// redelivery: gateway kirim ulang sampai dapat 200, tidak boleh jadi pago kedua
		{"settlement dikirim ulang", "settlement", true, false},
		{"capture dikirim ulang", "capture", true, false},
		{"pending", "pending", false, false},
		{"deny", "deny", false, false},
		{"expire", "expire", false, false},
		{"cancel setelah settle", "cancel", true, false},
	}
	for _, tc := range cases {
		if got := ShouldRecordSettlement(tc.txStatus, tc.alreadySettled); got != tc.want {
			t.Errorf("%s: ShouldRecordSettlement(%q, %v) = %v, want %v",
				tc.name, tc.txStatus, tc.alreadySettled, got, tc.want)
		}
	}
}
