package controller

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"clubmanager_backend/internals/features/activities/dto"
	"clubmanager_backend/internals/features/activities/model"
	helper "clubmanager_backend/internals/helpers"
)

type ActivityController struct {
	DB *gorm.DB
}

func NewActivityController(db *gorm.DB) *ActivityController {
	return &ActivityController{DB: db}
}

var validate = validator.New()

// =============================
// GET /api/u/activities
// =============================
func (ctrl *ActivityController) GetActivities(c *fiber.Ctx) error {
	clubID, err := helper.GetClubIDFromToken(c)
	if err != nil {
		return err
	}

	var activities []model.ActivityModel
	if err := ctrl.DB.Where("activity_club_id = ?", clubID).
		Order("activity_name ASC").
		Find(&activities).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	return helper.JsonOK(c, "", dto.FromModelActivities(activities))
}

// =============================
// POST /api/a/activities
// =============================
func (ctrl *ActivityController) CreateActivity(c *fiber.Ctx) error {
	clubID, err := helper.GetClubIDFromToken(c)
	if err != nil {
		return err
	}

	var req dto.ActivityCreateRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request")
	}
	if err := validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	activity := req.ToModel(clubID)
	if err := ctrl.DB.Create(activity).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	return helper.JsonCreated(c, "Actividad creada con éxito", dto.FromModelActivity(activity))
}

// =============================
// PATCH /api/a/activities/:id
// Perubahan tarif berlaku dari generate berikutnya — debt yang sudah
// dibuat tidak ikut berubah.
// =============================
func (ctrl *ActivityController) UpdateActivity(c *fiber.Ctx) error {
	activity, err := ctrl.findActivity(c)
	if err != nil {
		return err
	}

	var req dto.ActivityUpdateRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request")
	}
	if err := validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	req.ApplyTo(activity)
	if err := ctrl.DB.Save(activity).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	return helper.JsonUpdated(c, "Actividad actualizada con éxito", dto.FromModelActivity(activity))
}

// =============================
// DELETE /api/a/activities/:id (soft delete)
// Enrollment ikut dilepas supaya generate berikutnya tidak menagih
// aktivitas yang sudah tidak ada.
// =============================
func (ctrl *ActivityController) DeleteActivity(c *fiber.Ctx) error {
	activity, err := ctrl.findActivity(c)
	if err != nil {
		return err
	}

	err = ctrl.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Exec(
			`DELETE FROM member_activities WHERE activity_id = ?`, activity.ActivityID,
		).Error; err != nil {
			return err
		}
		return tx.Delete(activity).Error
	})
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	return helper.JsonDeleted(c, "Actividad eliminada con éxito", nil)
}

func (ctrl *ActivityController) findActivity(c *fiber.Ctx) (*model.ActivityModel, error) {
	clubID, err := helper.GetClubIDFromToken(c)
	if err != nil {
		return nil, err
	}
	activityID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return nil, fiber.NewError(fiber.StatusBadRequest, "ID inválido")
	}

	var activity model.ActivityModel
	err = ctrl.DB.Where("activity_id = ? AND activity_club_id = ?", activityID, clubID).
		First(&activity).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fiber.NewError(fiber.StatusNotFound, "Actividad no encontrada")
		}
		return nil, fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}
	return &activity, nil
}
