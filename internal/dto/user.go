package dto

import (
	"strconv"
	"time"

	"github.com/MudassirAli1/Hackathon2-Fullstacktodo-phase2/internal/models"
)

// UserDTO is the public user summary in API responses; it never carries the
// password hash. The ID is serialized as a string on the wire.
type UserDTO struct {
	ID        string     `json:"id"`
	Email     string     `json:"email"`
	Name      string     `json:"name"`
	CreatedAt *time.Time `json:"createdAt"`
	UpdatedAt *time.Time `json:"updatedAt"`
}

// AuthResponse is the success envelope for signup and signin.
type AuthResponse struct {
	Success bool    `json:"success"`
	Token   string  `json:"token"`
	User    UserDTO `json:"user"`
	Message string  `json:"message"`
}

// MessageResponse is the envelope for operations that only acknowledge.
type MessageResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// ToUserDTO converts a User model to UserDTO
func ToUserDTO(user models.User) UserDTO {
	return UserDTO{
		ID:        strconv.FormatUint(user.ID, 10),
		Email:     user.Email,
		Name:      user.Name,
		CreatedAt: timePtr(user.CreatedAt),
		UpdatedAt: timePtr(user.UpdatedAt),
	}
}

// timePtr returns nil for zero timestamps so they serialize as JSON null.
func timePtr(t time.Time) *time.Time {
	if t.IsZero() {
		return nil
	}
	return &t
}
