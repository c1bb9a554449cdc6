package controller

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	debtModel "clubmanager_backend/internals/features/billing/debts/model"
	"clubmanager_backend/internals/features/billing/payments/dto"
	"clubmanager_backend/internals/features/billing/payments/model"
	paymentService "clubmanager_backend/internals/features/billing/payments/service"
	memberModel "clubmanager_backend/internals/features/members/model"
	helper "clubmanager_backend/internals/helpers"
)

type PaymentController struct {
	DB *gorm.DB
}

func NewPaymentController(db *gorm.DB) *PaymentController {
	return &PaymentController{DB: db}
}

var validate = validator.New()

// =============================
// POST /api/u/debts/:id/payments — catat pago (multipart, comprobante opsional)
// =============================
func (ctrl *PaymentController) CreatePayment(c *fiber.Ctx) error {
	clubID, err := helper.GetClubIDFromToken(c)
	if err != nil {
		return err
	}
	debtID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID inválido")
	}

	var req dto.PaymentCreateRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request")
	}
	if err := validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	var receiptURL *string
	if fh, err := c.FormFile("receipt"); err == nil && fh != nil {
		path, err := helper.SaveReceipt("receipts", fh)
		if err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "No se pudo guardar el comprobante: "+err.Error())
		}
		receiptURL = &path
	}

	userID, _ := helper.GetUserIDFromToken(c)
	var userPtr *uuid.UUID
	if userID != uuid.Nil {
		userPtr = &userID
	}

	payment, err := paymentService.RecordPayment(ctrl.DB, clubID, paymentService.RecordPaymentInput{
		DebtID:     debtID,
		Amount:     req.Amount,
		DateStr:    req.Date,
		Method:     req.Method,
		ReceiptURL: receiptURL,
		UserID:     userPtr,
	})
	if err != nil {
		var fe *fiber.Error
		if errors.As(err, &fe) {
			return helper.JsonError(c, fe.Code, fe.Message)
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	return helper.JsonCreated(c, "Pago registrado con éxito", dto.FromModelPayment(payment))
}

// =============================
// GET /api/u/debts/:id/payments
// =============================
func (ctrl *PaymentController) GetPayments(c *fiber.Ctx) error {
	clubID, err := helper.GetClubIDFromToken(c)
	if err != nil {
		return err
	}
	debtID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID inválido")
	}

	// pastikan debt milik tenant sebelum expose pago-nya
	var count int64
	if err := ctrl.DB.Model(&debtModel.DebtModel{}).
		Joins("JOIN members ON members.member_id = debts.debt_member_id").
		Where("debts.debt_id = ? AND members.member_club_id = ?", debtID, clubID).
		Count(&count).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	if count == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Deuda no encontrada")
	}

	var payments []model.PaymentModel
	if err := ctrl.DB.Where("payment_debt_id = ?", debtID).
		Order("payment_date ASC, payment_created_at ASC").
		Find(&payments).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	return helper.JsonOK(c, "", dto.FromModelPayments(payments))
}

// =============================
// POST /api/u/debts/:id/checkout — pago online untuk sisa saldo
// =============================
func (ctrl *PaymentController) Checkout(c *fiber.Ctx) error {
	clubID, err := helper.GetClubIDFromToken(c)
	if err != nil {
		return err
	}
	debtID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID inválido")
	}

	var req dto.CheckoutRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request")
	}
	if err := validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	var debt debtModel.DebtModel
	err = ctrl.DB.
		Select("debts.*").
		Joins("JOIN members ON members.member_id = debts.debt_member_id").
		Where("debts.debt_id = ? AND members.member_club_id = ?", debtID, clubID).
		First(&debt).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Deuda no encontrada")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	if debt.DebtIsPaid {
		return helper.JsonError(c, fiber.StatusBadRequest, "La deuda ya está paga")
	}

	var paid float64
	if err := ctrl.DB.Model(&model.PaymentModel{}).
		Where("payment_debt_id = ?", debt.DebtID).
		Select("COALESCE(SUM(payment_amount),0)").
		Scan(&paid).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	outstanding := helper.RoundMoney(debt.DebtTotalAmount - paid)
	if outstanding <= 0 {
		return helper.JsonError(c, fiber.StatusBadRequest, "La deuda no tiene saldo pendiente")
	}

	// order_id membawa debt id supaya webhook bisa resolve balik
	orderID := fmt.Sprintf("DEBT-%s-%d", debt.DebtID, time.Now().Unix())
	snapToken, err := paymentService.GenerateSnapToken(orderID, helper.MoneyCents(outstanding), req.PayerName, req.PayerEmail)
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadGateway, "No se pudo iniciar el pago online: "+err.Error())
	}

	return helper.JsonCreated(c, "Checkout iniciado", dto.CheckoutResponse{
		OrderID:   orderID,
		SnapToken: snapToken,
	})
}

// =============================
// POST /api/public/payments/notification — webhook midtrans
// Selalu balas 200 untuk event yang bukan settlement supaya gateway
// tidak retry terus.
// =============================
func (ctrl *PaymentController) HandleNotification(c *fiber.Ctx) error {
	var payload map[string]any
	if err := c.BodyParser(&payload); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid payload")
	}

	orderID, _ := payload["order_id"].(string)
	statusCode, _ := payload["status_code"].(string)
	grossAmount, _ := payload["gross_amount"].(string)
	signature, _ := payload["signature_key"].(string)
	txStatus, _ := payload["transaction_status"].(string)
	if orderID == "" || signature == "" {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid payload")
	}

	if !paymentService.VerifySignature(orderID, statusCode, grossAmount, signature) {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Invalid signature")
	}

	// gateway bisa mengirim ulang notifikasi yang sama; cek dulu apakah
	// order ini sudah pernah settle sebelum menyimpan event baru
	var priorSettled int64
	if err := ctrl.DB.Model(&model.PaymentGatewayEventModel{}).
		Where("event_order_id = ? AND event_status IN ?", orderID, []string{"settlement", "capture"}).
		Count(&priorSettled).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	// audit trail: simpan notifikasi mentah apapun statusnya
	event := model.PaymentGatewayEventModel{
		EventOrderID: orderID,
		EventStatus:  txStatus,
		EventPayload: c.Body(),
	}
	if err := ctrl.DB.Create(&event).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	if !paymentService.ShouldRecordSettlement(txStatus, priorSettled > 0) {
		if paymentService.IsSettledStatus(txStatus) {
			// redelivery: pago sudah tercatat, jangan duplikasi
			return helper.JsonOK(c, "Notificación ya procesada", nil)
		}
		return helper.JsonOK(c, "Notificación recibida", nil)
	}

	debtID, err := debtIDFromOrderID(orderID)
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "order_id inválido")
	}

	// tenant di-resolve dari debt-nya, webhook tidak membawa token
	var clubID uuid.UUID
	err = ctrl.DB.Model(&memberModel.MemberModel{}).
		Joins("JOIN debts ON debts.debt_member_id = members.member_id").
		Where("debts.debt_id = ?", debtID).
		Select("members.member_club_id").
		Scan(&clubID).Error
	if err != nil || clubID == uuid.Nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Deuda no encontrada")
	}

	amount, err := strconv.ParseFloat(grossAmount, 64)
	if err != nil || amount <= 0 {
		return helper.JsonError(c, fiber.StatusBadRequest, "gross_amount inválido")
	}

	method := "midtrans"
	_, err = paymentService.RecordPayment(ctrl.DB, clubID, paymentService.RecordPaymentInput{
		DebtID:  debtID,
		Amount:  amount / 100, // gross amount dikirim dalam centavos
		DateStr: time.Now().Format("2006-01-02"),
		Method:  &method,
	})
	if err != nil {
		var fe *fiber.Error
		if errors.As(err, &fe) {
			return helper.JsonError(c, fe.Code, fe.Message)
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	return helper.JsonOK(c, "Pago online registrado", nil)
}

// debtIDFromOrderID: "DEBT-<uuid>-<ts>" → uuid.
func debtIDFromOrderID(orderID string) (uuid.UUID, error) {
	parts := strings.Split(orderID, "-")
	if len(parts) < 7 || parts[0] != "DEBT" {
		return uuid.Nil, errors.New("formato de order_id desconocido")
	}
	return uuid.Parse(strings.Join(parts[1:6], "-"))
}
