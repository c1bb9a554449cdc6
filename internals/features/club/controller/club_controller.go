package controller

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"clubmanager_backend/internals/features/club/dto"
	"clubmanager_backend/internals/features/club/model"
	helper "clubmanager_backend/internals/helpers"
)

type ClubController struct {
	DB *gorm.DB
}

func NewClubController(db *gorm.DB) *ClubController {
	return &ClubController{DB: db}
}

var validate = validator.New()

// =============================
// GET /api/u/club  — setting club milik tenant
// =============================
func (ctrl *ClubController) GetClub(c *fiber.Ctx) error {
	clubID, err := helper.GetClubIDFromToken(c)
	if err != nil {
		return err
	}

	var club model.ClubModel
	if err := ctrl.DB.Where("club_id = ?", clubID).First(&club).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Club no encontrado")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	return helper.JsonOK(c, "", dto.FromModelClub(&club))
}

// =============================
// PATCH /api/a/club  — update setting (nama, dominio, cuota base)
// =============================
func (ctrl *ClubController) UpdateClub(c *fiber.Ctx) error {
	clubID, err := helper.GetClubIDFromToken(c)
	if err != nil {
		return err
	}

	var req dto.ClubUpdateRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request")
	}
	if err := validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	var club model.ClubModel
	if err := ctrl.DB.Where("club_id = ?", clubID).First(&club).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Club no encontrado")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	req.ApplyTo(&club)
	if err := ctrl.DB.Save(&club).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	return helper.JsonUpdated(c, "Club actualizado con éxito", dto.FromModelClub(&club))
}
