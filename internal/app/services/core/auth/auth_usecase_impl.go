package auth

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"dental-clinic-service/internal/app/config"
	"dental-clinic-service/internal/app/contracts"
	"dental-clinic-service/internal/app/models"
	"dental-clinic-service/internal/pkg/constvars"
	"dental-clinic-service/internal/pkg/dto/requests"
	"dental-clinic-service/internal/pkg/dto/responses"
	"dental-clinic-service/internal/pkg/exceptions"
	"dental-clinic-service/internal/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type authUsecase struct {
	UserRepository    contracts.UserRepository
	PatientRepository contracts.PatientRepository
	StaffRepository   contracts.StaffRepository
	RedisRepository   contracts.RedisRepository
	InternalConfig    *config.InternalConfig
	Log               *zap.Logger
}

var (
	authUsecaseInstance contracts.AuthUsecase
	onceAuthUsecase     sync.Once
)

func NewAuthUsecase(
	userRepository contracts.UserRepository,
	patientRepository contracts.PatientRepository,
	staffRepository contracts.StaffRepository,
	redisRepository contracts.RedisRepository,
	internalConfig *config.InternalConfig,
	logger *zap.Logger,
) contracts.AuthUsecase {
	onceAuthUsecase.Do(func() {
		authUsecaseInstance = &authUsecase{
			UserRepository:    userRepository,
			PatientRepository: patientRepository,
			StaffRepository:   staffRepository,
			RedisRepository:   redisRepository,
			InternalConfig:    internalConfig,
			Log:               logger,
		}
	})
	return authUsecaseInstance
}

// RegisterUser creates the user row and its patient row as a two-step saga:
// when the patient insert fails the user insert is compensated by deleting
// the row, so no half-registered account survives.
func (uc *authUsecase) RegisterUser(ctx context.Context, request *requests.RegisterUser) (*responses.Register, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("authUsecase.RegisterUser called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	if err := utils.ValidateStruct(request); err != nil {
		return nil, exceptions.ErrInputValidation(err)
	}
	if request.Password != request.RetypePassword {
		return nil, exceptions.ErrPasswordDoNotMatch(nil)
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
		Role:          constvars.ClinicRolePatient,
	})
	if err != nil {
		return nil, err
	}

	patientID, err := uc.PatientRepository.CreatePatient(ctx, &models.Patient{
		UserID:    userID,
		BirthDate: request.BirthDate,
		Address:   request.Address,
	})
	if err != nil {
		if deleteErr := uc.UserRepository.DeleteUserByID(ctx, userID); deleteErr != nil {
			uc.Log.Error("failed to compensate user insert after patient insert failure",
				zap.String(constvars.LoggingRequestIDKey, requestID),
				zap.String(constvars.LoggingUserIDKey, userID),
				zap.Error(deleteErr),
			)
		}
		return nil, err
	}

	uc.Log.Info("authUsecase.RegisterUser succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingUserIDKey, userID),
		zap.String(constvars.LoggingPatientIDKey, patientID),
	)
	return &responses.Register{
		UserID:    userID,
		PatientID: patientID,
		Email:     request.Email,
	}, nil
}

func (uc *authUsecase) LoginUser(ctx context.Context, request *requests.LoginUser) (*responses.Login, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("authUsecase.LoginUser called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	if err := utils.ValidateStruct(request); err != nil {
		return nil, exceptions.ErrInputValidation(err)
	}

	user, err := uc.UserRepository.FindUserByEmail(ctx, request.Email)
	if err != nil {
		var customErr *exceptions.CustomError
		if errors.As(err, &customErr) && customErr.StatusCode == constvars.StatusNotFound {
			return nil, exceptions.ErrInvalidUsernameOrPassword(err)
		}
		return nil, err
	}
	if !utils.CheckPasswordHash(request.Password, user.Password) {
		return nil, exceptions.ErrInvalidUsernameOrPassword(nil)
	}

	sessionExp := time.Duration(uc.InternalConfig.App.SessionExpTimeInHour) * time.Hour
	session := &models.Session{
		SessionID:     uuid.NewString(),
		UserID:        user.ID,
		Role:          user.Role,
		FirstName:     user.FirstName,
		LastName:      user.LastName,
		Email:         user.Email,
		ContactNumber: user.ContactNumber,
		ExpiresAt:     time.Now().Add(sessionExp),
	}

	if user.Role == constvars.ClinicRolePatient {
		patient, err := uc.PatientRepository.FindPatientByUserID(ctx, user.ID)
		if err != nil {
			return nil, err
		}
		session.PatientID = patient.ID
	} else {
		staffMember, err := uc.StaffRepository.FindStaffByUserID(ctx, user.ID)
		if err != nil {
			return nil, err
		}
		if staffMember != nil {
			session.StaffID = staffMember.ID
		}
	}

	sessionKey := constvars.RedisSessionKeyPrefix + session.SessionID
	if err := uc.RedisRepository.Set(ctx, sessionKey, session, sessionExp); err != nil {
		return nil, err
	}

	jwtExp := time.Duration(uc.InternalConfig.JWT.ExpTimeInHour) * time.Hour
	token, err := utils.GenerateJWT(session.SessionID, uc.InternalConfig.JWT.Secret, jwtExp)
	if err != nil {
		return nil, err
	}

	uc.Log.Info("authUsecase.LoginUser succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingUserIDKey, user.ID),
	)
	return &responses.Login{
		Token:         token,
		UserID:        user.ID,
		FirstName:     user.FirstName,
		LastName:      user.LastName,
		Email:         user.Email,
		ContactNumber: user.ContactNumber,
		Role:          user.Role,
	}, nil
}

// LogoutUser deletes the Redis session, which immediately revokes every
// token carrying that session id.
func (uc *authUsecase) LogoutUser(ctx context.Context, sessionData string) error {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("authUsecase.LogoutUser called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	session, err := utils.ParseSessionData(sessionData)
	if err != nil {
		return err
	}
	if session.SessionID == "" {
		return exceptions.ErrMissingSessionData(fmt.Errorf("session id is empty"))
	}

	return uc.RedisRepository.Delete(ctx, constvars.RedisSessionKeyPrefix+session.SessionID)
}
