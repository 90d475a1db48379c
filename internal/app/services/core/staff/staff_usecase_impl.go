package staff

import (
	"context"
	"sync"

	"dental-clinic-service/internal/app/contracts"
	"dental-clinic-service/internal/app/models"
	"dental-clinic-service/internal/pkg/constvars"
	"dental-clinic-service/internal/pkg/dto/requests"
	"dental-clinic-service/internal/pkg/dto/responses"
	"dental-clinic-service/internal/pkg/exceptions"
	"dental-clinic-service/internal/pkg/utils"

	"go.uber.org/zap"
)

type staffUsecase struct {
	StaffRepository contracts.StaffRepository
	UserRepository  contracts.UserRepository
	Log             *zap.Logger
}

var (
	staffUsecaseInstance contracts.StaffUsecase
	onceStaffUsecase     sync.Once
)

func NewStaffUsecase(
	staffRepository contracts.StaffRepository,
	userRepository contracts.UserRepository,
	logger *zap.Logger,
) contracts.StaffUsecase {
	onceStaffUsecase.Do(func() {
		staffUsecaseInstance = &staffUsecase{
			StaffRepository: staffRepository,
			UserRepository:  userRepository,
			Log:             logger,
		}
	})
	return staffUsecaseInstance
}

// CreateStaff provisions a staff account the same way registration
// provisions a patient: user row first, staff row second, with the user
// insert compensated when the staff insert fails.
func (uc *staffUsecase) CreateStaff(ctx context.Context, sessionData string, request *requests.CreateStaff) (*responses.Staff, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("staffUsecase.CreateStaff called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	session, err := utils.ParseSessionData(sessionData)
	if err != nil {
		return nil, err
	}
	if session.Role != constvars.ClinicRoleAdmin {
		return nil, exceptions.ErrNotAuthorized(nil)
	}

	if err := utils.ValidateStruct(request); err != nil {
		return nil, exceptions.ErrInputValidation(err)
	}

	hashedPassword, err := utils.HashPassword(request.Password)
	if err != nil {
		return nil, exceptions.ErrHashPassword(err)
	}

	userID, err := uc.UserRepository.CreateUser(ctx, &models.User{
		Email:         request.Email,
		Password:      hashedPassword,
		FirstName:     request.FirstName,
		LastName:      request.LastName,
		ContactNumber: request.ContactNumber,
		Role:          request.Role,
	})
	if err != nil {
		return nil, err
	}

	staffID, err := uc.StaffRepository.CreateStaff(ctx, &models.Staff{
		UserID:   userID,
		Position: request.Position,
	})
	if err != nil {
		if deleteErr := uc.UserRepository.DeleteUserByID(ctx, userID); deleteErr != nil {
			uc.Log.Error("failed to compensate user insert after staff insert failure",
				zap.String(constvars.LoggingRequestIDKey, requestID),
				zap.String(constvars.LoggingUserIDKey, userID),
				zap.Error(deleteErr),
			)
		}
		return nil, err
	}

	uc.Log.Info("staffUsecase.CreateStaff succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingUserIDKey, userID),
	)
	return &responses.Staff{
		ID:            staffID,
		UserID:        userID,
		FirstName:     request.FirstName,
		LastName:      request.LastName,
		Email:         request.Email,
		ContactNumber: request.ContactNumber,
		Role:          request.Role,
		Position:      request.Position,
	}, nil
}

func (uc *staffUsecase) FindAllStaff(ctx context.Context, sessionData string) ([]responses.Staff, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("staffUsecase.FindAllStaff called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	session, err := utils.ParseSessionData(sessionData)
	if err != nil {
		return nil, err
	}
	if !session.IsStaffRole() {
		return nil, exceptions.ErrNotAuthorized(nil)
	}

	return uc.StaffRepository.FindAllStaff(ctx)
}
