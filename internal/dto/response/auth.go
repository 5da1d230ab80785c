package response

import (
	"notes-backend/internal/data/entity"
)

// UserResponse carries the public user fields only.
type UserResponse struct {
	ID          string `json:"id"`
	FullName    string `json:"fullName"`
	Email       string `json:"email"`
	DateOfBirth string `json:"dateOfBirth"`
}

// AuthResponse pairs the public user with the minted session token. The token
// travels as a cookie, not in the JSON body.
type AuthResponse struct {
	User  UserResponse `json:"user"`
	Token string       `json:"-"`
}

func UserToResponse(user *entity.User) UserResponse {
	return UserResponse{
		ID:          user.ID.Hex(),
		FullName:    user.FullName,
		Email:       user.Email,
		DateOfBirth: user.DateOfBirth.Format("2006-01-02"),
	}
}
