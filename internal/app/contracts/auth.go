package contracts

import (
	"context"
	"dental-clinic-service/internal/pkg/dto/requests"
	"dental-clinic-service/internal/pkg/dto/responses"
)

type AuthUsecase interface {
	RegisterUser(ctx context.Context, request *requests.RegisterUser) (*responses.Register, error)
	LoginUser(ctx context.Context, request *requests.LoginUser) (*responses.Login, error)
	LogoutUser(ctx context.Context, sessionData string) error
}
