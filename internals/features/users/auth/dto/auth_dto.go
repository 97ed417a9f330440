// file: internals/features/users/auth/dto/auth_dto.go
package dto

type LoginRequest struct {
	NIS      string `json:"nis" validate:"required,min=3,max=50"`
	Password string `json:"password" validate:"required,min=4"`
}

type RefreshRequest struct {
	RefreshToken string `json:"refresh_token" validate:"required"`
}

type LoginResponse struct {
	AccessToken  string       `json:"access_token"`
	RefreshToken string       `json:"refresh_token"`
	ExpiresAt    int64        `json:"expires_at"`
	User         UserResponse `json:"user"`
}

type UserResponse struct {
	NIS   string `json:"nis"`
	NISN  string `json:"nisn,omitempty"`
	Nama  string `json:"nama"`
	Kelas string `json:"kelas,omitempty"`
	Role  string `json:"role"`
}
