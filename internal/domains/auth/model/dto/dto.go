package dto

import (
	"hotel/infras/jwt"
	userModel "hotel/internal/domains/user/model"
	"hotel/shared/constant"
)

type RegisterRequest struct {
	Name     string `json:"name"     validate:"required,max=100"`
	Password string `json:"password" validate:"required,max=72"`
}

// ToUserModel builds a customer account. Managers are provisioned in the store directly.
func (r *RegisterRequest) ToUserModel(hashedPassword string) userModel.User {
	return userModel.User{
		Name:     r.Name,
		Password: hashedPassword,
		UserType: constant.RoleCustomer,
	}
}

type RegisterResponse struct {
	UserID int64 `json:"user_id"`
}

type LoginRequest struct {
	UserID   int64  `json:"user_id"  validate:"required,gt=0"`
	Password string `json:"password" validate:"required"`
}

// Identity is the authenticated user.
type Identity struct {
	UserID int64  `json:"user_id"`
	Name   string `json:"name"`
	Role   string `json:"role"`
}

func (i *Identity) FromModel(user userModel.User) {
	i.UserID = user.ID
	i.Name = user.Name
	i.Role = user.UserType
}

type LoginResponse struct {
	Identity
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
	ExpiresIn    int64  `json:"expires_in"`
}

func (l *LoginResponse) FromTokenPair(tokenPair *jwt.TokenPair) {
	l.AccessToken = tokenPair.AccessToken
	l.RefreshToken = tokenPair.RefreshToken
	l.ExpiresIn = tokenPair.ExpiresIn
}

type RefreshTokenRequest struct {
	RefreshToken string `json:"refresh_token" validate:"required"`
}

type RefreshTokenResponse struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
	ExpiresIn    int64  `json:"expires_in"`
}

func (r *RefreshTokenResponse) FromTokenPair(tokenPair *jwt.TokenPair) {
	r.AccessToken = tokenPair.AccessToken
	r.RefreshToken = tokenPair.RefreshToken
	r.ExpiresIn = tokenPair.ExpiresIn
}
