package service

import (
	"crypto/sha512"
	"encoding/hex"

	midtrans "github.com/midtrans/midtrans-go"
	"github.com/midtrans/midtrans-go/snap"
)

var (
	SnapClient snap.Client
	serverKey  string
)

// InitMidtrans menginisialisasi Midtrans Snap Client dengan server key.
func InitMidtrans(key string, useProd bool) {
	serverKey = key
	env := midtrans.Sandbox
	if useProd {
		env = midtrans.Production
	}
	SnapClient.New(key, env)
}

// GenerateSnapToken membuat token Snap untuk membayar sisa saldo satu debt.
// orderID dipakai lagi oleh webhook untuk resolve debt-nya.
func GenerateSnapToken(orderID string, grossAmount int64, payerName, payerEmail string) (string, error) {
	req := &snap.Request{
		TransactionDetails: midtrans.TransactionDetails{
			OrderID:  orderID,
			GrossAmt: grossAmount,
		},
		CustomerDetail: &midtrans.CustomerDetails{
			FName: payerName,
			Email: payerEmail,
		},
	}

	resp, err := SnapClient.CreateTransaction(req)
	if err != nil {
		return "", err
	}
	return resp.Token, nil
}

// IsSettledStatus: status transaksi yang berarti dana sudah masuk.
func IsSettledStatus(txStatus string) bool {
	return txStatus == "settlement" || txStatus == "capture"
}

// ShouldRecordSettlement menentukan apakah sebuah notifikasi boleh
// menghasilkan pago baru. Midtrans mengirim ulang notifikasi sampai
// dapat 200, jadi redelivery untuk order yang sudah settle harus jadi
// no-op, bukan pago kedua.
func ShouldRecordSettlement(txStatus string, alreadySettled bool) bool {
	return IsSettledStatus(txStatus) && !alreadySettled
}

// VerifySignature memvalidasi signature_key notifikasi midtrans:
// sha512(order_id + status_code + gross_amount + server_key).
func VerifySignature(orderID, statusCode, grossAmount, signature string) bool {
	h := sha512.Sum512([]byte(orderID + statusCode + grossAmount + serverKey))
	return hex.EncodeToString(h[:]) == signature
}
