package controller

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	activityModel "clubmanager_backend/internals/features/activities/model"
	debtDto "clubmanager_backend/internals/features/billing/debts/dto"
	debtModel "clubmanager_backend/internals/features/billing/debts/model"
	paymentModel "clubmanager_backend/internals/features/billing/payments/model"
	"clubmanager_backend/internals/features/members/dto"
	"clubmanager_backend/internals/features/members/model"
	memberService "clubmanager_backend/internals/features/members/service"
	helper "clubmanager_backend/internals/helpers"
)

type MemberController struct {
	DB *gorm.DB
}

func NewMemberController(db *gorm.DB) *MemberController {
	return &MemberController{DB: db}
}

var validate = validator.New()

// findMember: lookup member scoped ke tenant pemanggil.
func (ctrl *MemberController) findMember(c *fiber.Ctx) (*model.MemberModel, error) {
	clubID, err := helper.GetClubIDFromToken(c)
	if err != nil {
		return nil, err
	}
	memberID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return nil, fiber.NewError(fiber.StatusBadRequest, "ID inválido")
	}

	var member model.MemberModel
	err = ctrl.DB.Preload("Activities").
		Where("member_id = ? AND member_club_id = ?", memberID, clubID).
		First(&member).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fiber.NewError(fiber.StatusNotFound, "Socio no encontrado")
		}
		return nil, fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}
	return &member, nil
}

// =============================
// GET /api/u/members?search=&type=&active=&page=&per_page=
// =============================
func (ctrl *MemberController) GetMembers(c *fiber.Ctx) error {
	clubID, err := helper.GetClubIDFromToken(c)
	if err != nil {
		return err
	}

	paging := helper.ResolvePaging(c, 20, 100)
	q := ctrl.DB.Model(&model.MemberModel{}).Where("member_club_id = ?", clubID)

	if search := strings.TrimSpace(c.Query("search")); search != "" {
		like := "%" + search + "%"
		q = q.Where(
			"member_first_name ILIKE ? OR member_last_name ILIKE ? OR member_dni ILIKE ? OR member_number ILIKE ?",
			like, like, like, like,
		)
	}
	if typ := strings.TrimSpace(c.Query("type")); typ != "" {
		q = q.Where("member_type = ?", typ)
	}
	switch c.Query("active") {
	case "true":
		q = q.Where("member_is_active = TRUE")
	case "false":
		q = q.Where("member_is_active = FALSE")
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	var members []model.MemberModel
	if err := q.Preload("Activities").
		Order("member_last_name ASC, member_first_name ASC").
		Offset(paging.Offset).Limit(paging.Limit).
		Find(&members).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	return helper.JsonList(c, "", dto.FromModelMembers(members),
		helper.BuildPaginationFromPage(total, paging.Page, paging.PerPage))
}

// =============================
// GET /api/u/members/:id
// =============================
func (ctrl *MemberController) GetMember(c *fiber.Ctx) error {
	member, err := ctrl.findMember(c)
	if err != nil {
		return err
	}
	return helper.JsonOK(c, "", dto.FromModelMember(member))
}

// =============================
// POST /api/a/members
// =============================
func (ctrl *MemberController) CreateMember(c *fiber.Ctx) error {
	clubID, err := helper.GetClubIDFromToken(c)
	if err != nil {
		return err
	}

	var req dto.MemberCreateRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request")
	}
	if err := validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	// email socio unik per club (NULL boleh duplikat)
	if req.Email != nil && *req.Email != "" {
		var count int64
		if err := ctrl.DB.Model(&model.MemberModel{}).
			Where("member_club_id = ? AND member_email = ?", clubID, *req.Email).
			Count(&count).Error; err != nil {
			return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
		}
		if count > 0 {
			return helper.JsonError(c, fiber.StatusConflict, "Ya existe un socio con ese email")
		}
	}

	member := req.ToModel(clubID)
	if err := ctrl.DB.Create(member).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	return helper.JsonCreated(c, "Socio creado con éxito", dto.FromModelMember(member))
}

// =============================
// PATCH /api/a/members/:id
// =============================
func (ctrl *MemberController) UpdateMember(c *fiber.Ctx) error {
	member, err := ctrl.findMember(c)
	if err != nil {
		return err
	}

	var req dto.MemberUpdateRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request")
	}
	if err := validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	req.ApplyTo(member)
	if err := ctrl.DB.Save(member).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	return helper.JsonUpdated(c, "Socio actualizado con éxito", dto.FromModelMember(member))
}

// =============================
// DELETE /api/a/members/:id — nonaktifkan, bukan hapus.
// Histori debt/pago harus tetap utuh.
// =============================
func (ctrl *MemberController) DeactivateMember(c *fiber.Ctx) error {
	member, err := ctrl.findMember(c)
	if err != nil {
		return err
	}

	if err := ctrl.DB.Model(member).
		Update("member_is_active", false).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	return helper.JsonDeleted(c, "Socio dado de baja con éxito", nil)
}

// =============================
// POST /api/u/members/:id/activities — enrollment
// =============================
func (ctrl *MemberController) EnrollActivity(c *fiber.Ctx) error {
	member, err := ctrl.findMember(c)
	if err != nil {
		return err
	}

	var req dto.EnrollRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request")
	}
	if err := validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	// aktivitas harus milik club yang sama
	var activity activityModel.ActivityModel
	err = ctrl.DB.Where("activity_id = ? AND activity_club_id = ?", req.ActivityID, member.MemberClubID).
		First(&activity).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Actividad no encontrada")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	for _, a := range member.Activities {
		if a.ActivityID == activity.ActivityID {
			return helper.JsonError(c, fiber.StatusConflict, "El socio ya está inscripto en esta actividad")
		}
	}

	if err := ctrl.DB.Model(member).Association("Activities").Append(&activity); err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	return helper.JsonCreated(c, "Inscripción registrada con éxito", fiber.Map{
		"member_id":   member.MemberID,
		"activity_id": activity.ActivityID,
	})
}

// =============================
// DELETE /api/u/members/:id/activities/:activityId
// =============================
func (ctrl *MemberController) UnenrollActivity(c *fiber.Ctx) error {
	member, err := ctrl.findMember(c)
	if err != nil {
		return err
	}
	activityID, err := uuid.Parse(c.Params("activityId"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID inválido")
	}

	var enrolled *activityModel.ActivityModel
	for i := range member.Activities {
		if member.Activities[i].ActivityID == activityID {
			enrolled = &member.Activities[i]
			break
		}
	}
	if enrolled == nil {
		return helper.JsonError(c, fiber.StatusNotFound, "El socio no está inscripto en esta actividad")
	}

	if err := ctrl.DB.Model(member).Association("Activities").Delete(enrolled); err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	return helper.JsonDeleted(c, "Inscripción eliminada con éxito", nil)
}

// =============================
// GET /api/u/members/:id/debts?unpaid=true
// =============================
func (ctrl *MemberController) GetMemberDebts(c *fiber.Ctx) error {
	member, err := ctrl.findMember(c)
	if err != nil {
		return err
	}

	q := ctrl.DB.Preload("Items", func(tx *gorm.DB) *gorm.DB {
		return tx.Order("debt_item_position ASC")
	}).Where("debt_member_id = ?", member.MemberID)
	if c.Query("unpaid") == "true" {
		q = q.Where("debt_is_paid = FALSE")
	}

	var debts []debtModel.DebtModel
	if err := q.Order("debt_month DESC").Find(&debts).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	// total pago per debt dalam satu query
	paid := map[uuid.UUID]float64{}
	if len(debts) > 0 {
		ids := make([]uuid.UUID, 0, len(debts))
		for _, d := range debts {
			ids = append(ids, d.DebtID)
		}
		type row struct {
			DebtID uuid.UUID
			Total  float64
		}
		var rows []row
		if err := ctrl.DB.Model(&paymentModel.PaymentModel{}).
			Select("payment_debt_id AS debt_id, COALESCE(SUM(payment_amount),0) AS total").
			Where("payment_debt_id IN ?", ids).
			Group("payment_debt_id").
			Scan(&rows).Error; err != nil {
			return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
		}
		for _, r := range rows {
			paid[r.DebtID] = helper.RoundMoney(r.Total)
		}
	}

	out := make([]debtDto.DebtResponse, 0, len(debts))
	for i := range debts {
		out = append(out, debtDto.FromModelDebt(&debts[i], paid[debts[i].DebtID]))
	}
	return helper.JsonOK(c, "", out)
}

// =============================
// GET /api/u/members/:id/statement — resumen de cuenta
// =============================
func (ctrl *MemberController) GetMemberStatement(c *fiber.Ctx) error {
	member, err := ctrl.findMember(c)
	if err != nil {
		return err
	}

	var debts []debtModel.DebtModel
	if err := ctrl.DB.Where("debt_member_id = ?", member.MemberID).
		Order("debt_month ASC").Find(&debts).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	charges := make([]memberService.Charge, 0, len(debts))
	debtIDs := make([]uuid.UUID, 0, len(debts))
	for _, d := range debts {
		debtIDs = append(debtIDs, d.DebtID)
		charges = append(charges, memberService.Charge{
			DebtID:      d.DebtID,
			Date:        d.DebtMonth,
			Description: fmt.Sprintf("Cuota %s", d.DebtMonth.Format("2006-01")),
			Amount:      d.DebtTotalAmount,
		})
	}

	credits := []memberService.Credit{}
	if len(debtIDs) > 0 {
		var payments []paymentModel.PaymentModel
		if err := ctrl.DB.Where("payment_debt_id IN ?", debtIDs).
			Order("payment_date ASC, payment_created_at ASC").
			Find(&payments).Error; err != nil {
			return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
		}
		for _, p := range payments {
			desc := "Pago"
			if p.PaymentMethod != nil && *p.PaymentMethod != "" {
				desc = fmt.Sprintf("Pago (%s)", *p.PaymentMethod)
			}
			credits = append(credits, memberService.Credit{
				PaymentID:   p.PaymentID,
				Date:        p.PaymentDate,
				Description: desc,
				Amount:      p.PaymentAmount,
			})
		}
	}

	lines := memberService.BuildStatement(charges, credits)
	balance := 0.0
	if len(lines) > 0 {
		balance = lines[len(lines)-1].Balance
	}

	return helper.JsonOK(c, "", fiber.Map{
		"member_id": member.MemberID,
		"lines":     lines,
		"balance":   balance,
	})
}
