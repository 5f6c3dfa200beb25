package converter

import (
	"vaccination-management/internal/delivery/dto"
	"vaccination-management/internal/domain/entity"
)

// UserToResponse converts a User entity to UserResponse DTO. The password hash never leaves the entity.
func UserToResponse(user *entity.User) *dto.UserResponse {
	if user == nil {
		return nil
	}

	return &dto.UserResponse{
		ID:        user.ID,
		FullName:  user.FullName,
		Email:     user.Email,
		Role:      string(user.Role),
		CreatedAt: user.CreatedAt,
	}
}

func UsersToResponse(users []entity.User) []dto.UserResponse {
	responses := make([]dto.UserResponse, len(users))
	for i := range users {
		responses[i] = *UserToResponse(&users[i])
	}
	return responses
}
