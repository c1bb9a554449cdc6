package helper

import "testing"

func TestRoundMoney(t *testing.T) {
	cases := []struct {
		in   float64
		want float64
	}{
		{0, 0},
		{10.004, 10.00},
		{10.005, 10.01},
		{22.4999999, 22.50},
		{-3.335, -3.33}, // -3.335 tidak eksak di binary, jatuhnya sedikit di atas
	}
	for _, tc := range cases {
		if got := RoundMoney(tc.in); got != tc.want {
			t.Errorf("RoundMoney(%v) = %v, want %v", tc.in, got, tc.want)
		}
	}
}

func TestMoneyGTE(t *testing.T) {
	if !MoneyGTE(22.50, 22.50) {
		t.Error("equal amounts must compare GTE")
	}
	// residu float binary tidak boleh bikin status "belum lunas" palsu
	if !MoneyGTE(0.1+0.2, 0.3) {
		t.Error("0.1+0.2 must be GTE 0.3")
	}
	if MoneyGTE(22.49, 22.50) {
		t.Error("22.49 must not be GTE 22.50")
	}
}

func TestMoneyCents(t *testing.T) {
	cases := []struct {
		in   float64
		want int64
	}{
		{0, 0},
		{0.29, 29}, // 0.29*100 = 28.999...; cast langsung memotong jadi 28
		{19.99, 1999},
		{22.50, 2250},
		{1234.56, 123456},
	}
	for _, tc := range cases {
		if got := MoneyCents(tc.in); got != tc.want {
			t.Errorf("MoneyCents(%v) = %v, want %v", tc.in, got, tc.want)
		}
	}
}
