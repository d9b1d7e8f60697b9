package models

import (
	"time"

	"github.com/golang-jwt/jwt"
)

type User struct {
	ID           int        `json:"id"`
	Name         string     `json:"name"`
	Surname      string     `json:"surname"`
	Email        string     `json:"email"`
	Phone        string     `json:"phone"`
	Password     string     `json:"password,omitempty"`
	Role         string     `json:"role"`
	AvatarPath   *string    `json:"avatar_path,omitempty"`
	TokenBalance int        `json:"token_balance"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    *time.Time `json:"updated_at,omitempty"`
}

// UserInfo is the merged user + provider record returned by /users/user_info.
type UserInfo struct {
	User
	Provider *Provider `json:"provider,omitempty"`
}

type Session struct {
	ID           int       `json:"id"`
	UserID       int       `json:"user_id"`
	RefreshToken string    `json:"refresh_token"`
	Role         string    `json:"role"`
	ExpiresAt    time.Time `json:"expires_at"`
	CreatedAt    time.Time `json:"created_at"`
}

type Claims struct {
	UserID uint   `json:"user_id"`
	Role   string `json:"role"`
	jwt.StandardClaims
}

type SignInRequest struct {
	Email    string `json:"email"`
	Phone    string `json:"phone"`
	Password string `json:"password"`
}

type SignInResponse struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
	User         User   `json:"user"`
}

type FCMToken struct {
	UserID int    `json:"user_id"`
	Token  string `json:"token"`
}
