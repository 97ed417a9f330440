// file: internals/features/users/auth/service/token_service.go
package service

import (
	"errors"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v4"

	"absensiku_backend/internals/configs"
	"absensiku_backend/internals/features/users/auth/dto"
)

type TokenPair struct {
	AccessToken  string
	RefreshToken string
	AccessExp    time.Time
	RefreshExp   time.Time
}

func accessTTL() time.Duration {
	if v := configs.GetEnv("ACCESS_TOKEN_TTL_MINUTES"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			return time.Duration(n) * time.Minute
		}
	}
	return 15 * time.Minute
}

func refreshTTL() time.Duration {
	if v := configs.GetEnv("REFRESH_TOKEN_TTL_DAYS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			return time.Duration(n) * 24 * time.Hour
		}
	}
	return 7 * 24 * time.Hour
}

// IssueTokens membuat pasangan access+refresh token untuk satu user.
func IssueTokens(u dto.UserResponse) (TokenPair, error) {
	if configs.JWTSecret == "" || configs.JWTRefreshSecret == "" {
		return TokenPair{}, errors.New("JWT secret belum diset")
	}

	now := time.Now()
	accessExp := now.Add(accessTTL())
	refreshExp := now.Add(refreshTTL())

	access := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub":   u.NIS,
		"role":  u.Role,
		"nama":  u.Nama,
		"kelas": u.Kelas,
		"iat":   now.Unix(),
		"exp":   accessExp.Unix(),
	})
	accessStr, err := access.SignedString([]byte(configs.JWTSecret))
	if err != nil {
		return TokenPair{}, err
	}

	refresh := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub": u.NIS,
		"typ": "refresh",
		"iat": now.Unix(),
		"exp": refreshExp.Unix(),
	})
	refreshStr, err := refresh.SignedString([]byte(configs.JWTRefreshSecret))
	if err != nil {
		return TokenPair{}, err
	}

	return TokenPair{
		AccessToken:  accessStr,
		RefreshToken: refreshStr,
		AccessExp:    accessExp,
		RefreshExp:   refreshExp,
	}, nil
}

// ParseRefreshToken memverifikasi refresh token dan mengembalikan subject-nya.
func ParseRefreshToken(tokenStr string) (string, error) {
	claims := jwt.MapClaims{}
	_, err := jwt.ParseWithClaims(tokenStr, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return []byte(configs.JWTRefreshSecret), nil
	})
	if err != nil {
		return "", err
	}
	if typ, _ := claims["typ"].(string); typ != "refresh" {
		return "", errors.New("bukan refresh token")
	}
	sub, _ := claims["sub"].(string)
	if sub == "" {
		return "", errors.New("refresh token tanpa subject")
	}
	return sub, nil
}
