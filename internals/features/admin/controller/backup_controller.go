package controller

import (
	"archive/zip"
	"bytes"
	"encoding/csv"
	"fmt"
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"
	"gorm.io/gorm"

	activityModel "clubmanager_backend/internals/features/activities/model"
	debtModel "clubmanager_backend/internals/features/billing/debts/model"
	paymentModel "clubmanager_backend/internals/features/billing/payments/model"
	finModel "clubmanager_backend/internals/features/finance/model"
	memberModel "clubmanager_backend/internals/features/members/model"
	helper "clubmanager_backend/internals/helpers"
)

// BackupController: export seluruh data tenant jadi satu zip berisi CSV
// per tabel. Data club lain tidak pernah ikut — semua query discope.
type BackupController struct {
	DB *gorm.DB
}

func NewBackupController(db *gorm.DB) *BackupController {
	return &BackupController{DB: db}
}

// =============================
// GET /api/a/backup/csv
// =============================
func (ctrl *BackupController) ExportCSV(c *fiber.Ctx) error {
	clubID, err := helper.GetClubIDFromToken(c)
	if err != nil {
		return err
	}

	var (
		membersCSV, activitiesCSV, debtsCSV []byte
		itemsCSV, paymentsCSV               []byte
		categoriesCSV, transactionsCSV      []byte
	)

	// tiap tabel di-export paralel; satu error membatalkan semuanya
	g := new(errgroup.Group)
	g.Go(func() (err error) { membersCSV, err = ctrl.exportMembers(clubID); return })
	g.Go(func() (err error) { activitiesCSV, err = ctrl.exportActivities(clubID); return })
	g.Go(func() (err error) { debtsCSV, itemsCSV, err = ctrl.exportDebts(clubID); return })
	g.Go(func() (err error) { paymentsCSV, err = ctrl.exportPayments(clubID); return })
	g.Go(func() (err error) { categoriesCSV, err = ctrl.exportCategories(clubID); return })
	g.Go(func() (err error) { transactionsCSV, err = ctrl.exportTransactions(clubID); return })
	if err := g.Wait(); err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "No se pudo generar el backup: "+err.Error())
	}

	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	files := []struct {
		name string
		data []byte
	}{
		{"socios.csv", membersCSV},
		{"actividades.csv", activitiesCSV},
		{"deudas.csv", debtsCSV},
		{"deuda_items.csv", itemsCSV},
		{"pagos.csv", paymentsCSV},
		{"categorias.csv", categoriesCSV},
		{"movimientos.csv", transactionsCSV},
	}
	for _, f := range files {
		w, err := zw.Create(f.name)
		if err != nil {
			return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
		}
		if _, err := w.Write(f.data); err != nil {
			return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
		}
	}
	if err := zw.Close(); err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	filename := fmt.Sprintf("backup-%s.zip", time.Now().Format("2006-01-02"))
	c.Set(fiber.HeaderContentType, "application/zip")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="`+filename+`"`)
	return c.Send(buf.Bytes())
}

func writeCSV(header []string, rows [][]string) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	if err := w.Write(header); err != nil {
		return nil, err
	}
	if err := w.WriteAll(rows); err != nil {
		return nil, err
	}
	w.Flush()
	return buf.Bytes(), w.Error()
}

func money(v float64) string  { return strconv.FormatFloat(v, 'f', 2, 64) }
func orEmpty(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
func uuidOrEmpty(id *uuid.UUID) string {
	if id == nil {
		return ""
	}
	return id.String()
}

func (ctrl *BackupController) exportMembers(clubID uuid.UUID) ([]byte, error) {
	var members []memberModel.MemberModel
	if err := ctrl.DB.Where("member_club_id = ?", clubID).
		Order("member_created_at ASC").Find(&members).Error; err != nil {
		return nil, err
	}
	rows := make([][]string, 0, len(members))
	for _, m := range members {
		birth := ""
		if m.MemberBirthDate != nil {
			birth = m.MemberBirthDate.Format("2006-01-02")
		}
		rows = append(rows, []string{
			m.MemberID.String(), m.MemberFirstName, m.MemberLastName,
			orEmpty(m.MemberEmail), m.MemberPhone, orEmpty(m.MemberDNI),
			orEmpty(m.MemberNumber), string(m.MemberType), birth,
			strconv.FormatBool(m.MemberIsActive),
		})
	}
	return writeCSV([]string{
		"id", "nombre", "apellido", "email", "telefono", "dni",
		"numero", "tipo", "fecha_nacimiento", "activo",
	}, rows)
}

func (ctrl *BackupController) exportActivities(clubID uuid.UUID) ([]byte, error) {
	var activities []activityModel.ActivityModel
	if err := ctrl.DB.Where("activity_club_id = ?", clubID).
		Order("activity_created_at ASC").Find(&activities).Error; err != nil {
		return nil, err
	}
	rows := make([][]string, 0, len(activities))
	for _, a := range activities {
		rows = append(rows, []string{a.ActivityID.String(), a.ActivityName, money(a.ActivityMonthlyCost)})
	}
	return writeCSV([]string{"id", "nombre", "costo_mensual"}, rows)
}

func (ctrl *BackupController) exportDebts(clubID uuid.UUID) (debts, items []byte, err error) {
	var list []debtModel.DebtModel
	if err := ctrl.DB.
		Select("debts.*").
		Joins("JOIN members ON members.member_id = debts.debt_member_id").
		Where("members.member_club_id = ?", clubID).
		Preload("Items", func(tx *gorm.DB) *gorm.DB {
			return tx.Order("debt_item_position ASC")
		}).
		Order("debts.debt_month ASC").
		Find(&list).Error; err != nil {
		return nil, nil, err
	}

	debtRows := make([][]string, 0, len(list))
	itemRows := [][]string{}
	for _, d := range list {
		debtRows = append(debtRows, []string{
			d.DebtID.String(), d.DebtMemberID.String(),
			d.DebtMonth.Format("2006-01"), money(d.DebtTotalAmount),
			strconv.FormatBool(d.DebtIsPaid),
		})
		for _, it := range d.Items {
			itemRows = append(itemRows, []string{
				it.DebtItemID.String(), d.DebtID.String(), it.DebtItemDescription,
				money(it.DebtItemAmount), uuidOrEmpty(it.DebtItemActivityID),
				strconv.Itoa(it.DebtItemPosition),
			})
		}
	}

	debts, err = writeCSV([]string{"id", "socio_id", "mes", "total", "paga"}, debtRows)
	if err != nil {
		return nil, nil, err
	}
	items, err = writeCSV([]string{"id", "deuda_id", "descripcion", "monto", "actividad_id", "posicion"}, itemRows)
	return debts, items, err
}

func (ctrl *BackupController) exportPayments(clubID uuid.UUID) ([]byte, error) {
	var payments []paymentModel.PaymentModel
	if err := ctrl.DB.
		Select("payments.*").
		Joins("JOIN debts ON debts.debt_id = payments.payment_debt_id").
		Joins("JOIN members ON members.member_id = debts.debt_member_id").
		Where("members.member_club_id = ?", clubID).
		Order("payments.payment_date ASC").
		Find(&payments).Error; err != nil {
		return nil, err
	}
	rows := make([][]string, 0, len(payments))
	for _, p := range payments {
		rows = append(rows, []string{
			p.PaymentID.String(), p.PaymentDebtID.String(),
			money(p.PaymentAmount), p.PaymentDate.Format("2006-01-02"),
			orEmpty(p.PaymentMethod), money(p.PaymentUnallocatedAmount),
		})
	}
	return writeCSV([]string{"id", "deuda_id", "monto", "fecha", "metodo", "no_asignado"}, rows)
}

func (ctrl *BackupController) exportCategories(clubID uuid.UUID) ([]byte, error) {
	var categories []finModel.CategoryModel
	if err := ctrl.DB.Where("category_club_id = ?", clubID).
		Order("category_name ASC").Find(&categories).Error; err != nil {
		return nil, err
	}
	rows := make([][]string, 0, len(categories))
	for _, cat := range categories {
		rows = append(rows, []string{cat.CategoryID.String(), cat.CategoryName, string(cat.CategoryType)})
	}
	return writeCSV([]string{"id", "nombre", "tipo"}, rows)
}

func (ctrl *BackupController) exportTransactions(clubID uuid.UUID) ([]byte, error) {
	var txs []finModel.ClubTransactionModel
	if err := ctrl.DB.Where("club_transaction_club_id = ?", clubID).
		Order("club_transaction_date ASC").Find(&txs).Error; err != nil {
		return nil, err
	}
	rows := make([][]string, 0, len(txs))
	for _, t := range txs {
		rows = append(rows, []string{
			t.ClubTransactionID.String(), t.ClubTransactionDate.Format("2006-01-02"),
			t.ClubTransactionDescription, money(t.ClubTransactionAmount),
			string(t.ClubTransactionType), uuidOrEmpty(t.ClubTransactionCategoryID),
			uuidOrEmpty(t.ClubTransactionActivityID),
		})
	}
	return writeCSV([]string{"id", "fecha", "descripcion", "monto", "tipo", "categoria_id", "actividad_id"}, rows)
}
