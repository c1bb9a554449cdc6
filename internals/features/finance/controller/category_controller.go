package controller

import (
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"clubmanager_backend/internals/features/finance/dto"
	"clubmanager_backend/internals/features/finance/model"
	helper "clubmanager_backend/internals/helpers"
)

type CategoryController struct {
	DB *gorm.DB
}

func NewCategoryController(db *gorm.DB) *CategoryController {
	return &CategoryController{DB: db}
}

var validate = validator.New()

// =============================
// GET /api/u/finance/categories?type=income
// =============================
func (ctrl *CategoryController) GetCategories(c *fiber.Ctx) error {
	clubID, err := helper.GetClubIDFromToken(c)
	if err != nil {
		return err
	}

	q := ctrl.DB.Where("category_club_id = ?", clubID)
	if typ := strings.TrimSpace(c.Query("type")); typ != "" {
		q = q.Where("category_type = ?", typ)
	}

	var categories []model.CategoryModel
	if err := q.Order("category_name ASC").Find(&categories).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	return helper.JsonOK(c, "", dto.FromModelCategories(categories))
}

// =============================
// POST /api/a/finance/categories
// =============================
func (ctrl *CategoryController) CreateCategory(c *fiber.Ctx) error {
	clubID, err := helper.GetClubIDFromToken(c)
	if err != nil {
		return err
	}

	var req dto.CategoryCreateRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request")
	}
	if err := validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	category := req.ToModel(clubID)
	if err := ctrl.DB.Create(category).Error; err != nil {
		// uq_categories_club_name_type
		return helper.JsonError(c, fiber.StatusConflict, "La categoría ya existe")
	}

	return helper.JsonCreated(c, "Categoría creada con éxito", dto.FromModelCategory(category))
}

// =============================
// PATCH /api/a/finance/categories/:id
// =============================
func (ctrl *CategoryController) UpdateCategory(c *fiber.Ctx) error {
	category, err := ctrl.findCategory(c)
	if err != nil {
		return err
	}

	var req dto.CategoryUpdateRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request")
	}
	if err := validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	req.ApplyTo(category)
	if err := ctrl.DB.Save(category).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	return helper.JsonUpdated(c, "Categoría actualizada con éxito", dto.FromModelCategory(category))
}

// =============================
// DELETE /api/a/finance/categories/:id
// Ditolak kalau masih dipakai transaksi — histori kas tidak boleh
// kehilangan kategorinya.
// =============================
func (ctrl *CategoryController) DeleteCategory(c *fiber.Ctx) error {
	category, err := ctrl.findCategory(c)
	if err != nil {
		return err
	}

	var inUse int64
	if err := ctrl.DB.Model(&model.ClubTransactionModel{}).
		Where("club_transaction_category_id = ?", category.CategoryID).
		Count(&inUse).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	if inUse > 0 {
		return helper.JsonError(c, fiber.StatusConflict, "La categoría tiene movimientos asociados y no puede eliminarse")
	}

	if err := ctrl.DB.Delete(category).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	return helper.JsonDeleted(c, "Categoría eliminada con éxito", nil)
}

func (ctrl *CategoryController) findCategory(c *fiber.Ctx) (*model.CategoryModel, error) {
	clubID, err := helper.GetClubIDFromToken(c)
	if err != nil {
		return nil, err
	}
	categoryID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return nil, fiber.NewError(fiber.StatusBadRequest, "ID inválido")
	}

	var category model.CategoryModel
	err = ctrl.DB.Where("category_id = ? AND category_club_id = ?", categoryID, clubID).
		First(&category).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fiber.NewError(fiber.StatusNotFound, "Categoría no encontrada")
		}
		return nil, fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}
	return &category, nil
}
