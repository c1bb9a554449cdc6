package controller

import (
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	authService "clubmanager_backend/internals/features/users/auth/service"
	"clubmanager_backend/internals/features/users/user/dto"
	"clubmanager_backend/internals/features/users/user/model"
	helper "clubmanager_backend/internals/helpers"
)

// UserController: manajemen user oleh admin club (bukan self-service).
type UserController struct {
	DB *gorm.DB
}

func NewUserController(db *gorm.DB) *UserController {
	return &UserController{DB: db}
}

var validate = validator.New()

// =============================
// GET /api/a/users
// =============================
func (ctrl *UserController) GetUsers(c *fiber.Ctx) error {
	clubID, err := helper.GetClubIDFromToken(c)
	if err != nil {
		return err
	}

	paging := helper.ResolvePaging(c, 20, 100)
	q := ctrl.DB.Model(&model.UserModel{}).Where("user_club_id = ?", clubID)

	if role := strings.TrimSpace(c.Query("role")); role != "" {
		q = q.Where("user_role = ?", role)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	var users []model.UserModel
	if err := q.Order("user_created_at ASC").
		Offset(paging.Offset).Limit(paging.Limit).
		Find(&users).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	return helper.JsonList(c, "", dto.FromModelUsers(users),
		helper.BuildPaginationFromPage(total, paging.Page, paging.PerPage))
}

// =============================
// POST /api/a/users
// =============================
func (ctrl *UserController) CreateUser(c *fiber.Ctx) error {
	clubID, err := helper.GetClubIDFromToken(c)
	if err != nil {
		return err
	}

	var req dto.UserCreateRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request")
	}
	if err := validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	var count int64
	if err := ctrl.DB.Model(&model.UserModel{}).
		Where("user_email = ?", req.Email).Count(&count).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	if count > 0 {
		return helper.JsonError(c, fiber.StatusConflict, "El email ya está registrado")
	}

	hash, err := authService.HashPassword(req.Password)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal hash password")
	}

	user := req.ToModel(clubID, hash)
	// user baru yang dibuat admin wajib ganti password saat login pertama
	user.UserForcePasswordChange = true
	if err := ctrl.DB.Create(user).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	return helper.JsonCreated(c, "Usuario creado con éxito", dto.FromModelUser(user))
}

// =============================
// PATCH /api/a/users/:id
// =============================
func (ctrl *UserController) UpdateUser(c *fiber.Ctx) error {
	clubID, err := helper.GetClubIDFromToken(c)
	if err != nil {
		return err
	}
	userID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID inválido")
	}

	var req dto.UserUpdateRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request")
	}
	if err := validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	var user model.UserModel
	err = ctrl.DB.Where("user_id = ? AND user_club_id = ?", userID, clubID).First(&user).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Usuario no encontrado")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	req.ApplyTo(&user)
	if err := ctrl.DB.Save(&user).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	// user yang dinonaktifkan langsung kehilangan sesinya
	if req.IsActive != nil && !*req.IsActive {
		_ = authService.RevokeUserRefreshTokens(ctrl.DB, user.UserID)
	}

	return helper.JsonUpdated(c, "Usuario actualizado con éxito", dto.FromModelUser(&user))
}

// =============================
// DELETE /api/a/users/:id  (soft delete)
// =============================
func (ctrl *UserController) DeleteUser(c *fiber.Ctx) error {
	clubID, err := helper.GetClubIDFromToken(c)
	if err != nil {
		return err
	}
	userID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID inválido")
	}
	selfID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}
	if userID == selfID {
		return helper.JsonError(c, fiber.StatusBadRequest, "No podés eliminar tu propia cuenta")
	}

	res := ctrl.DB.Where("user_id = ? AND user_club_id = ?", userID, clubID).
		Delete(&model.UserModel{})
	if res.Error != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, res.Error.Error())
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Usuario no encontrado")
	}
	_ = authService.RevokeUserRefreshTokens(ctrl.DB, userID)

	return helper.JsonDeleted(c, "Usuario eliminado con éxito", nil)
}
