// file: internals/features/users/auth/service/auth_service.go
package service

import (
	"errors"
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"absensiku_backend/internals/constants"
	authDTO "absensiku_backend/internals/features/users/auth/dto"
	authModel "absensiku_backend/internals/features/users/auth/model"
	siswaModel "absensiku_backend/internals/features/school/students/model"
	helper "absensiku_backend/internals/helpers"
)

var ErrInvalidCredentials = errors.New("NIS/username atau password salah")

// findAccount mencari akun login: siswa dulu (NIS), lalu pengguna (username).
func findAccount(db *gorm.DB, id string) (authDTO.UserResponse, string, error) {
	var s siswaModel.SiswaModel
	err := db.Where("siswa_nis = ? AND siswa_is_active = TRUE", id).First(&s).Error
	if err == nil {
		return authDTO.UserResponse{
			NIS:   s.SiswaNIS,
			NISN:  s.SiswaNISN,
			Nama:  s.SiswaNama,
			Kelas: s.SiswaKelas,
			Role:  constants.RoleStudent,
		}, s.SiswaPassword, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return authDTO.UserResponse{}, "", err
	}

	var p authModel.PenggunaModel
	err = db.Where("pengguna_username = ? AND pengguna_is_active = TRUE", id).First(&p).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return authDTO.UserResponse{}, "", ErrInvalidCredentials
		}
		return authDTO.UserResponse{}, "", err
	}
	return authDTO.UserResponse{
		NIS:  p.PenggunaUsername,
		Nama: p.PenggunaNama,
		Role: p.PenggunaRole,
	}, p.PenggunaPassword, nil
}

// Login memverifikasi NIS+password dan menerbitkan pasangan token.
func Login(db *gorm.DB, req authDTO.LoginRequest) (authDTO.LoginResponse, error) {
	user, hash, err := findAccount(db, req.NIS)
	if err != nil {
		return authDTO.LoginResponse{}, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(req.Password)); err != nil {
		return authDTO.LoginResponse{}, ErrInvalidCredentials
	}

	pair, err := IssueTokens(user)
	if err != nil {
		return authDTO.LoginResponse{}, err
	}

	// simpan refresh token supaya bisa dicabut
	rt := authModel.RefreshToken{
		Subject:   user.NIS,
		Token:     pair.RefreshToken,
		ExpiredAt: pair.RefreshExp,
	}
	if err := db.Create(&rt).Error; err != nil {
		log.Printf("[AUTH] gagal simpan refresh token: %v", err)
	}

	return authDTO.LoginResponse{
		AccessToken:  pair.AccessToken,
		RefreshToken: pair.RefreshToken,
		ExpiresAt:    pair.AccessExp.Unix(),
		User:         user,
	}, nil
}

// Refresh menukar refresh token yang masih hidup dengan access token baru.
func Refresh(db *gorm.DB, refreshToken string) (authDTO.LoginResponse, error) {
	sub, err := ParseRefreshToken(refreshToken)
	if err != nil {
		return authDTO.LoginResponse{}, ErrInvalidCredentials
	}

	var stored authModel.RefreshToken
	if err := db.Where("token = ? AND subject = ? AND expired_at > ? AND deleted_at IS NULL",
		refreshToken, sub, time.Now()).First(&stored).Error; err != nil {
		return authDTO.LoginResponse{}, ErrInvalidCredentials
	}

	user, _, err := findAccount(db, sub)
	if err != nil {
		return authDTO.LoginResponse{}, err
	}

	pair, err := IssueTokens(user)
	if err != nil {
		return authDTO.LoginResponse{}, err
	}

	// rotasi: refresh lama dicabut, ganti yang baru
	if err := db.Delete(&stored).Error; err != nil {
		log.Printf("[AUTH] gagal revoke refresh token lama: %v", err)
	}
	rt := authModel.RefreshToken{Subject: sub, Token: pair.RefreshToken, ExpiredAt: pair.RefreshExp}
	if err := db.Create(&rt).Error; err != nil {
		log.Printf("[AUTH] gagal simpan refresh token: %v", err)
	}

	return authDTO.LoginResponse{
		AccessToken:  pair.AccessToken,
		RefreshToken: pair.RefreshToken,
		ExpiresAt:    pair.AccessExp.Unix(),
		User:         user,
	}, nil
}

// Logout mem-blacklist access token aktif dan mencabut semua refresh token user.
func Logout(db *gorm.DB, c *fiber.Ctx) error {
	tok, _ := c.Locals("access_token").(string)
	if tok != "" {
		bl := authModel.TokenBlacklist{
			Token:     tok,
			ExpiredAt: time.Now().Add(24 * time.Hour),
		}
		if err := db.Create(&bl).Error; err != nil {
			return err
		}
	}

	if nis, err := helper.GetNISFromLocals(c); err == nil {
		if err := db.Where("subject = ?", nis).
			Delete(&authModel.RefreshToken{}).Error; err != nil {
			log.Printf("[AUTH] gagal hapus refresh token: %v", err)
		}
	}
	return nil
}
