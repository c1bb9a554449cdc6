package service

import (
	"crypto/hmac"
	"crypto/rand"
	"crypto/sha256"
	"encoding/base64"
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"clubmanager_backend/internals/configs"
	authModel "clubmanager_backend/internals/features/users/auth/model"
	userModel "clubmanager_backend/internals/features/users/user/model"
)

const (
	AccessTokenTTL  = 15 * time.Minute
	RefreshTokenTTL = 30 * 24 * time.Hour
)

// AuthClaims: isi access token. club_id & role masuk claim supaya
// middleware tidak perlu query DB tiap request.
type AuthClaims struct {
	ClubID string `json:"club_id"`
	Role   string `json:"role"`
	jwt.RegisteredClaims
}

// IssueAccessToken menandatangani JWT HS256 berumur pendek.
func IssueAccessToken(u *userModel.UserModel) (string, error) {
	now := time.Now()
	claims := AuthClaims{
		ClubID: u.UserClubID.String(),
		Role:   u.UserRole,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   u.UserID.String(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(AccessTokenTTL)),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(configs.JWTSecret))
}

// IssueRefreshToken membuat token random opaque, menyimpan HASH-nya di DB,
// dan mengembalikan token mentah ke caller (sekali ini saja terlihat).
func IssueRefreshToken(db *gorm.DB, userID uuid.UUID) (string, error) {
	buf := make([]byte, 32)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	raw := base64.RawURLEncoding.EncodeToString(buf)

	row := authModel.RefreshTokenModel{
		RefreshTokenUserID:    userID,
		RefreshTokenHash:      hashRefreshToken(raw),
		RefreshTokenExpiresAt: time.Now().Add(RefreshTokenTTL),
	}
	if err := db.Create(&row).Error; err != nil {
		return "", err
	}
	return raw, nil
}

// RotateRefreshToken memvalidasi token mentah, menghapus row lama
// (single-use), dan mengembalikan user pemiliknya.
func RotateRefreshToken(db *gorm.DB, raw string) (*userModel.UserModel, error) {
	if raw == "" {
		return nil, fiber.NewError(fiber.StatusUnauthorized, "Refresh token tidak ditemukan")
	}

	var row authModel.RefreshTokenModel
	err := db.Where("refresh_token_hash = ?", hashRefreshToken(raw)).First(&row).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fiber.NewError(fiber.StatusUnauthorized, "Refresh token tidak valid")
		}
		return nil, err
	}

	// single-use: row lama dihapus apapun hasilnya
	if err := db.Delete(&row).Error; err != nil {
		return nil, err
	}
	if time.Now().After(row.RefreshTokenExpiresAt) {
		return nil, fiber.NewError(fiber.StatusUnauthorized, "Refresh token sudah kadaluarsa")
	}

	var user userModel.UserModel
	if err := db.Where("user_id = ? AND user_is_active = TRUE", row.RefreshTokenUserID).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fiber.NewError(fiber.StatusUnauthorized, "User tidak aktif")
		}
		return nil, err
	}
	return &user, nil
}

// RevokeUserRefreshTokens dipakai saat logout / ganti password.
func RevokeUserRefreshTokens(db *gorm.DB, userID uuid.UUID) error {
	return db.Where("refresh_token_user_id = ?", userID).
		Delete(&authModel.RefreshTokenModel{}).Error
}

// hashRefreshToken: HMAC-SHA256 dengan refresh secret — DB hanya menyimpan
// hash, token bocor dari dump DB tidak berguna.
func hashRefreshToken(raw string) []byte {
	mac := hmac.New(sha256.New, []byte(configs.JWTRefreshSecret))
	mac.Write([]byte(raw))
	return mac.Sum(nil)
}
