package response

import (
	"time"

	"tourism-booking/internal/data/entity"
)

type AuthResponse struct {
	Token string       `json:"token"`
	User  UserResponse `json:"user"`
}

type UserResponse struct {
	ID            string          `json:"id"`
	Name          string          `json:"name"`
	Email         string          `json:"email"`
	Phone         *string         `json:"phone,omitempty"`
	Role          entity.UserRole `json:"role"`
	AvatarURL     *string         `json:"avatar_url,omitempty"`
	IsVerified    bool            `json:"is_verified"`
	Address       *string         `json:"address,omitempty"`
	TravelHistory []string        `json:"travel_history"`
	Preferences   map[string]any  `json:"preferences"`
	CreatedAt     time.Time       `json:"created_at"`
}

type CheckEmailResponse struct {
	Exists bool          `json:"exists"`
	User   *UserResponse `json:"user,omitempty"`
}

// Helper converters
func UserToResponse(user *entity.User) UserResponse {
	return UserResponse{
		ID:            user.ID.String(),
		Name:          user.Name,
		Email:         user.Email,
		Phone:         user.Phone,
		Role:          user.Role,
		AvatarURL:     user.AvatarURL,
		IsVerified:    user.EmailVerified,
		Address:       user.Address,
		TravelHistory: user.TravelHistory,
		Preferences:   user.Preferences,
		CreatedAt:     user.CreatedAt,
	}
}

func AuthToResponse(user *entity.User, token string) *AuthResponse {
	return &AuthResponse{
		Token: token,
		User:  UserToResponse(user),
	}
}
