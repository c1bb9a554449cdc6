package controller

import (
	"errors"
	"log"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"clubmanager_backend/internals/constants"
	clubModel "clubmanager_backend/internals/features/club/model"
	"clubmanager_backend/internals/features/users/auth/dto"
	authService "clubmanager_backend/internals/features/users/auth/service"
	userModel "clubmanager_backend/internals/features/users/user/model"
	helper "clubmanager_backend/internals/helpers"
)

type AuthController struct {
	DB *gorm.DB
}

func NewAuthController(db *gorm.DB) *AuthController {
	return &AuthController{DB: db}
}

var validate = validator.New()

// =============================
// Login
// POST /api/auth/login
// =============================
func (ctrl *AuthController) Login(c *fiber.Ctx) error {
	var req dto.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request")
	}
	if err := validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	var user userModel.UserModel
	err := ctrl.DB.Where("user_email = ?", req.Email).First(&user).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusUnauthorized, "Credenciales inválidas")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	if !user.UserIsActive {
		return helper.JsonError(c, fiber.StatusForbidden, "La cuenta está desactivada")
	}
	if !authService.CheckPassword(user.UserPasswordHash, req.Password) {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Credenciales inválidas")
	}

	var club clubModel.ClubModel
	if err := ctrl.DB.Where("club_id = ?", user.UserClubID).First(&club).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	if !club.ClubIsActive {
		return helper.JsonError(c, fiber.StatusForbidden, "El club está desactivado")
	}

	access, err := authService.IssueAccessToken(&user)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal membuat access token")
	}
	refresh, err := authService.IssueRefreshToken(ctrl.DB, user.UserID)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal membuat refresh token")
	}
	setRefreshCookie(c, refresh)

	return helper.JsonOK(c, "Login berhasil", dto.LoginResponse{
		AccessToken:         access,
		RefreshToken:        refresh,
		ForcePasswordChange: user.UserForcePasswordChange,
		User: dto.UserSnapshot{
			UserID:   user.UserID.String(),
			Email:    user.UserEmail,
			Role:     user.UserRole,
			ClubID:   user.UserClubID.String(),
			ClubName: club.ClubName,
		},
	})
}

// =============================
// Refresh (rotate)
// POST /api/auth/refresh
// =============================
func (ctrl *AuthController) Refresh(c *fiber.Ctx) error {
	var req dto.RefreshRequest
	_ = c.BodyParser(&req) // body opsional, fallback ke cookie
	raw := req.RefreshToken
	if raw == "" {
		raw = helper.GetRefreshTokenFromCookie(c)
	}

	user, err := authService.RotateRefreshToken(ctrl.DB, raw)
	if err != nil {
		var fe *fiber.Error
		if errors.As(err, &fe) {
			return helper.JsonError(c, fe.Code, fe.Message)
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	access, err := authService.IssueAccessToken(user)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal membuat access token")
	}
	refresh, err := authService.IssueRefreshToken(ctrl.DB, user.UserID)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal membuat refresh token")
	}
	setRefreshCookie(c, refresh)

	return helper.JsonOK(c, "Token diperbarui", dto.RefreshResponse{
		AccessToken:  access,
		RefreshToken: refresh,
	})
}

// =============================
// Logout (revoke semua refresh token user)
// POST /api/u/auth/logout
// =============================
func (ctrl *AuthController) Logout(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}
	if err := authService.RevokeUserRefreshTokens(ctrl.DB, userID); err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	c.ClearCookie("refresh_token")
	return helper.JsonOK(c, "Logout berhasil", nil)
}

// =============================
// Register: club baru + admin pertama (self-service onboarding)
// POST /api/auth/register
// =============================
func (ctrl *AuthController) Register(c *fiber.Ctx) error {
	var req dto.RegisterRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request")
	}
	if err := validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	hash, err := authService.HashPassword(req.AdminPassword)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal hash password")
	}

	var club clubModel.ClubModel
	err = ctrl.DB.Transaction(func(tx *gorm.DB) error {
		var count int64
		if err := tx.Model(&clubModel.ClubModel{}).
			Where("club_name = ?", req.ClubName).Count(&count).Error; err != nil {
			return err
		}
		if count > 0 {
			return fiber.NewError(fiber.StatusConflict, "El nombre del club ya está en uso")
		}
		if err := tx.Model(&userModel.UserModel{}).
			Where("user_email = ?", req.AdminEmail).Count(&count).Error; err != nil {
			return err
		}
		if count > 0 {
			return fiber.NewError(fiber.StatusConflict, "El email ya está registrado")
		}

		club = clubModel.ClubModel{
			ClubName:     req.ClubName,
			ClubBaseFee:  req.BaseFee,
			ClubIsActive: true,
		}
		// dominio email club diambil dari email admin pertama
		if at := strings.LastIndex(req.AdminEmail, "@"); at >= 0 {
			domain := req.AdminEmail[at+1:]
			club.ClubEmailDomain = &domain
		}
		if err := tx.Create(&club).Error; err != nil {
			return err
		}

		admin := userModel.UserModel{
			UserClubID:       club.ClubID,
			UserEmail:        req.AdminEmail,
			UserPasswordHash: hash,
			UserRole:         constants.RoleAdmin,
			UserIsActive:     true,
		}
		return tx.Create(&admin).Error
	})
	if err != nil {
		var fe *fiber.Error
		if errors.As(err, &fe) {
			return helper.JsonError(c, fe.Code, fe.Message)
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	log.Printf("[INFO] club baru terdaftar: %s (%s)", club.ClubName, club.ClubID)
	return helper.JsonCreated(c, "Club registrado con éxito", fiber.Map{
		"club_id":   club.ClubID,
		"club_name": club.ClubName,
	})
}

// =============================
// Change password (user login)
// POST /api/u/auth/change-password
// =============================
func (ctrl *AuthController) ChangePassword(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}

	var req dto.ChangePasswordRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request")
	}
	if err := validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	var user userModel.UserModel
	if err := ctrl.DB.Where("user_id = ?", userID).First(&user).Error; err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Usuario no encontrado")
	}
	if !authService.CheckPassword(user.UserPasswordHash, req.CurrentPassword) {
		return helper.JsonError(c, fiber.StatusUnauthorized, "La contraseña actual es incorrecta")
	}

	hash, err := authService.HashPassword(req.NewPassword)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal hash password")
	}
	if err := ctrl.DB.Model(&user).Updates(map[string]any{
		"user_password_hash":         hash,
		"user_force_password_change": false,
	}).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	// sesi lain harus login ulang
	_ = authService.RevokeUserRefreshTokens(ctrl.DB, user.UserID)

	return helper.JsonUpdated(c, "Contraseña actualizada con éxito", nil)
}

// =============================
// Forgot password: kirim link reset via email
// POST /api/auth/forgot-password
// =============================
func (ctrl *AuthController) ForgotPassword(c *fiber.Ctx) error {
	var req dto.ForgotPasswordRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request")
	}
	if err := validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	// respons selalu sama — jangan bocorkan email mana yang terdaftar
	okMsg := "Si el email está registrado, vas a recibir un enlace para restablecer la contraseña."

	var user userModel.UserModel
	err := ctrl.DB.Where("user_email = ? AND user_is_active = TRUE", req.Email).First(&user).Error
	if err != nil {
		return helper.JsonOK(c, okMsg, nil)
	}

	raw, hash, err := authService.NewResetToken()
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	expires := time.Now().Add(1 * time.Hour)
	if err := ctrl.DB.Model(&user).Updates(map[string]any{
		"user_reset_token_hash": hash,
		"user_reset_expires_at": expires,
	}).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	target := user.UserEmail
	if user.UserRecoveryEmail != nil && *user.UserRecoveryEmail != "" {
		target = *user.UserRecoveryEmail
	}
	if err := authService.SendPasswordResetEmail(target, raw); err != nil {
		log.Printf("[ERROR] gagal kirim email reset ke %s: %v", target, err)
	}

	return helper.JsonOK(c, okMsg, nil)
}

// =============================
// Reset password pakai token dari email
// POST /api/auth/reset-password
// =============================
func (ctrl *AuthController) ResetPassword(c *fiber.Ctx) error {
	var req dto.ResetPasswordRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request")
	}
	if err := validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	var user userModel.UserModel
	err := ctrl.DB.Where(
		"user_reset_token_hash = ? AND user_reset_expires_at > ?",
		authService.HashResetToken(req.Token), time.Now(),
	).First(&user).Error
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "El enlace de restablecimiento no es válido o expiró")
	}

	hash, err := authService.HashPassword(req.NewPassword)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal hash password")
	}
	if err := ctrl.DB.Model(&user).Updates(map[string]any{
		"user_password_hash":         hash,
		"user_reset_token_hash":      nil,
		"user_reset_expires_at":      nil,
		"user_force_password_change": false,
	}).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	_ = authService.RevokeUserRefreshTokens(ctrl.DB, user.UserID)

	return helper.JsonUpdated(c, "Contraseña restablecida con éxito", nil)
}

func setRefreshCookie(c *fiber.Ctx, raw string) {
	c.Cookie(&fiber.Cookie{
		Name:     "refresh_token",
		Value:    raw,
		Path:     "/api/auth",
		MaxAge:   int(authService.RefreshTokenTTL.Seconds()),
		HTTPOnly: true,
		Secure:   true,
		SameSite: "Lax",
	})
}
