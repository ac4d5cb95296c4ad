package dto

import (
	"time"

	"advertapp/internal/models"
)

// UserListItemDTO represents a user in list responses
type UserListItemDTO struct {
	ID             uint64 `json:"id"`
	Name           string `json:"name"`
	Advertisements int    `json:"advertisements"`
}

// UserListResponse represents the user collection response
type UserListResponse struct {
	Users []UserListItemDTO `json:"users"`
}

// UserDetailDTO represents a single user in API responses
type UserDetailDTO struct {
	ID               uint64                     `json:"id"`
	Username         string                     `json:"username"`
	Email            *string                    `json:"email"`
	RegistrationTime time.Time                  `json:"registration_time"`
	Advertisements   []AdvertisementListItemDTO `json:"advertisements"`
}

// UserCreatedResponse is returned after a successful registration
type UserCreatedResponse struct {
	Status string `json:"status"`
	UserID uint64 `json:"user_id"`
}

// ToUserListItemDTO converts a User model to UserListItemDTO
func ToUserListItemDTO(user models.User) UserListItemDTO {
	return UserListItemDTO{
		ID:             user.ID,
		Name:           user.Username,
		Advertisements: len(user.Advertisements),
	}
}

// ToUserListResponse converts a slice of users to UserListResponse
func ToUserListResponse(users []models.User) UserListResponse {
	items := make([]UserListItemDTO, len(users))
	for i, user := range users {
		items[i] = ToUserListItemDTO(user)
	}
	return UserListResponse{Users: items}
}

// ToUserDetailDTO converts a User model to UserDetailDTO
func ToUserDetailDTO(user models.User) UserDetailDTO {
	ads := make([]AdvertisementListItemDTO, len(user.Advertisements))
	for i, ad := range user.Advertisements {
		ads[i] = ToAdvertisementListItemDTO(ad)
	}

	return UserDetailDTO{
		ID:               user.ID,
		Username:         user.Username,
		Email:            user.Email,
		RegistrationTime: user.RegistrationTime,
		Advertisements:   ads,
	}
}
