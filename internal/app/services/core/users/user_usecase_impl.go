package users

import (
	"context"
	"fmt"
	"sync"
	"time"

	"dental-clinic-service/internal/app/contracts"
	"dental-clinic-service/internal/app/models"
	"dental-clinic-service/internal/pkg/constvars"
	"dental-clinic-service/internal/pkg/dto/requests"
	"dental-clinic-service/internal/pkg/dto/responses"
	"dental-clinic-service/internal/pkg/exceptions"
	"dental-clinic-service/internal/pkg/utils"

	"go.uber.org/zap"
)

type userUsecase struct {
	UserRepository    contracts.UserRepository
	PatientRepository contracts.PatientRepository
	Storage           contracts.Storage
	Log               *zap.Logger
}

var (
	userUsecaseInstance contracts.UserUsecase
	onceUserUsecase     sync.Once
)

func NewUserUsecase(
	userRepository contracts.UserRepository,
	patientRepository contracts.PatientRepository,
	storage contracts.Storage,
	logger *zap.Logger,
) contracts.UserUsecase {
	onceUserUsecase.Do(func() {
		userUsecaseInstance = &userUsecase{
			UserRepository:    userRepository,
			PatientRepository: patientRepository,
			Storage:           storage,
			Log:               logger,
		}
	})
	return userUsecaseInstance
}

func (uc *userUsecase) GetProfile(ctx context.Context, sessionData string) (*responses.Profile, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("userUsecase.GetProfile called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	session, err := utils.ParseSessionData(sessionData)
	if err != nil {
		return nil, err
	}

	user, err := uc.UserRepository.FindUserByID(ctx, session.UserID)
	if err != nil {
		return nil, err
	}

	profile := &responses.Profile{
		UserID:            user.ID,
		Email:             user.Email,
		FirstName:         user.FirstName,
		LastName:          user.LastName,
		ContactNumber:     user.ContactNumber,
		Role:              user.Role,
		ProfilePictureURL: user.ProfilePictureURL,
	}

	if session.PatientID != "" {
		patient, err := uc.PatientRepository.FindPatientByUserID(ctx, user.ID)
		if err != nil {
			return nil, err
		}
		profile.BirthDate = patient.BirthDate
		profile.Address = patient.Address
	}

	return profile, nil
}

func (uc *userUsecase) UpdateProfile(ctx context.Context, sessionData string, request *requests.UpdateProfile) (*responses.Profile, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("userUsecase.UpdateProfile called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	session, err := utils.ParseSessionData(sessionData)
	if err != nil {
		return nil, err
	}

	if err := utils.ValidateStruct(request); err != nil {
		return nil, exceptions.ErrInputValidation(err)
	}

	err = uc.UserRepository.UpdateUserProfile(ctx, &models.User{
		ID:            session.UserID,
		FirstName:     request.FirstName,
		LastName:      request.LastName,
		ContactNumber: request.ContactNumber,
	})
	if err != nil {
		return nil, err
	}

	if session.PatientID != "" {
		err = uc.PatientRepository.UpdatePatientProfile(ctx, &models.Patient{
			UserID:    session.UserID,
			BirthDate: request.BirthDate,
			Address:   request.Address,
		})
		if err != nil {
			return nil, err
		}
	}

	pictureURL := ""
	if len(request.ProfilePicture) > 0 {
		objectName := fmt.Sprintf("profile-pictures/%s/%d_%s", session.UserID, time.Now().Unix(), request.ProfilePictureName)
		pictureURL, err = uc.Storage.UploadObject(ctx, objectName, request.ProfilePicture, constvars.MIMEOctetStream)
		if err != nil {
			return nil, err
		}
		if err := uc.UserRepository.UpdateUserProfilePicture(ctx, session.UserID, pictureURL); err != nil {
			return nil, err
		}
	}

	uc.Log.Info("userUsecase.UpdateProfile succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingUserIDKey, session.UserID),
	)

	profile := &responses.Profile{
		UserID:        session.UserID,
		Email:         session.Email,
		FirstName:     request.FirstName,
		LastName:      request.LastName,
		ContactNumber: request.ContactNumber,
		Role:          session.Role,
		BirthDate:     request.BirthDate,
		Address:       request.Address,
	}
	if pictureURL != "" {
		profile.ProfilePictureURL = pictureURL
	}
	return profile, nil
}
