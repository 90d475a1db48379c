package contracts

import (
	"context"
	"dental-clinic-service/internal/app/models"
	"dental-clinic-service/internal/pkg/dto/requests"
	"dental-clinic-service/internal/pkg/dto/responses"
)

type UserUsecase interface {
	GetProfile(ctx context.Context, sessionData string) (*responses.Profile, error)
	UpdateProfile(ctx context.Context, sessionData string, request *requests.UpdateProfile) (*responses.Profile, error)
}

type UserRepository interface {
	CreateUser(ctx context.Context, user *models.User) (string, error)
	FindUserByEmail(ctx context.Context, email string) (*models.User, error)
	FindUserByID(ctx context.Context, userID string) (*models.User, error)
	UpdateUserProfile(ctx context.Context, user *models.User) error
	UpdateUserProfilePicture(ctx context.Context, userID, pictureURL string) error
	DeleteUserByID(ctx context.Context, userID string) error
}
