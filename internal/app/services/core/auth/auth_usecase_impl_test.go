package auth

import (
	"context"
	"testing"
	"time"

	"dental-clinic-service/internal/app/config"
	"dental-clinic-service/internal/app/models"
	"dental-clinic-service/internal/pkg/constvars"
	"dental-clinic-service/internal/pkg/dto/requests"
	"dental-clinic-service/internal/pkg/dto/responses"
	"dental-clinic-service/internal/pkg/exceptions"
	"dental-clinic-service/internal/pkg/utils"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

type fakeUserRepository struct {
	user      *models.User
	findErr   error
	createErr error

	createdUser   *models.User
	deletedUserID string
}

func (f *fakeUserRepository) CreateUser(_ context.Context, user *models.User) (string, error) {
	if f.createErr != nil {
		return "", f.createErr
	}
	f.createdUser = user
	return "user-1", nil
}

func (f *fakeUserRepository) FindUserByEmail(context.Context, string) (*models.User, error) {
	return f.user, f.findErr
}

func (f *fakeUserRepository) FindUserByID(context.Context, string) (*models.User, error) {
	return f.user, f.findErr
}

func (f *fakeUserRepository) UpdateUserProfile(context.Context, *models.User) error {
	return nil
}

func (f *fakeUserRepository) UpdateUserProfilePicture(context.Context, string, string) error {
	return nil
}

func (f *fakeUserRepository) DeleteUserByID(_ context.Context, userID string) error {
	f.deletedUserID = userID
	return nil
}

type fakePatientRepository struct {
	patient   *models.Patient
	createErr error
}

func (f *fakePatientRepository) CreatePatient(context.Context, *models.Patient) (string, error) {
	if f.createErr != nil {
		return "", f.createErr
	}
	return "patient-1", nil
}

func (f *fakePatientRepository) FindPatientByUserID(context.Context, string) (*models.Patient, error) {
	return f.patient, nil
}

func (f *fakePatientRepository) FindPatientByID(context.Context, string) (*models.Patient, error) {
	return f.patient, nil
}

func (f *fakePatientRepository) UpdatePatientProfile(context.Context, *models.Patient) error {
	return nil
}

type fakeStaffRepository struct {
	staffMember *models.Staff
}

func (f *fakeStaffRepository) CreateStaff(context.Context, *models.Staff) (string, error) {
	return "", nil
}

func (f *fakeStaffRepository) FindStaffByUserID(context.Context, string) (*models.Staff, error) {
	return f.staffMember, nil
}

func (f *fakeStaffRepository) FindAllStaff(context.Context) ([]responses.Staff, error) {
	return nil, nil
}

type fakeRedisRepository struct {
	store      map[string]string
	deletedKey string
}

func (f *fakeRedisRepository) Get(_ context.Context, key string) (string, error) {
	value, ok := f.store[key]
	if !ok {
		return "", exceptions.ErrRedisGetNoData(nil, key)
	}
	return value, nil
}

func (f *fakeRedisRepository) Set(_ context.Context, key string, value interface{}, _ time.Duration) error {
	encoded, err := json.Marshal(value)
	if err != nil {
		return err
	}
	if f.store == nil {
		f.store = make(map[string]string)
	}
	f.store[key] = string(encoded)
	return nil
}

func (f *fakeRedisRepository) Delete(_ context.Context, key string) error {
	f.deletedKey = key
	delete(f.store, key)
	return nil
}

func (f *fakeRedisRepository) TrySetNX(context.Context, string, interface{}, time.Duration) (bool, error) {
	return true, nil
}

func testConfig() *config.InternalConfig {
	return &config.InternalConfig{
		App: config.App{SessionExpTimeInHour: 24},
		JWT: config.JWT{Secret: "test-secret", ExpTimeInHour: 24},
	}
}

func TestRegisterUser(t *testing.T) {
	request := &requests.RegisterUser{
		Email:          "siti@example.com",
		Password:       "Sup3rSecret!",
		RetypePassword: "Sup3rSecret!",
		FirstName:      "Siti",
		LastName:       "Rahma",
		ContactNumber:  "+628123456789",
		BirthDate:      "1990-04-12",
		Address:        "Jl. Melati 5",
	}

	t.Run("Success", func(t *testing.T) {
		userRepository := &fakeUserRepository{}
		usecase := &authUsecase{
			UserRepository:    userRepository,
			PatientRepository: &fakePatientRepository{},
			StaffRepository:   &fakeStaffRepository{},
			RedisRepository:   &fakeRedisRepository{},
			InternalConfig:    testConfig(),
			Log:               zap.NewNop(),
		}

		response, err := usecase.RegisterUser(context.Background(), request)

		assert.NoError(t, err)
		assert.Equal(t, "user-1", response.UserID)
		assert.Equal(t, "patient-1", response.PatientID)
		assert.Equal(t, constvars.ClinicRolePatient, userRepository.createdUser.Role)
		assert.NotEqual(t, request.Password, userRepository.createdUser.Password, "password must be stored hashed")
	})

	t.Run("Patient Insert Failure Compensates User Insert", func(t *testing.T) {
		userRepository := &fakeUserRepository{}
		usecase := &authUsecase{
			UserRepository:    userRepository,
			PatientRepository: &fakePatientRepository{createErr: assert.AnError},
			StaffRepository:   &fakeStaffRepository{},
			RedisRepository:   &fakeRedisRepository{},
			InternalConfig:    testConfig(),
			Log:               zap.NewNop(),
		}

		_, err := usecase.RegisterUser(context.Background(), request)

		assert.Error(t, err)
		assert.Equal(t, "user-1", userRepository.deletedUserID, "orphaned user row must be removed")
	})

	t.Run("Password Mismatch", func(t *testing.T) {
		usecase := &authUsecase{
			UserRepository:    &fakeUserRepository{},
			PatientRepository: &fakePatientRepository{},
			StaffRepository:   &fakeStaffRepository{},
			RedisRepository:   &fakeRedisRepository{},
			InternalConfig:    testConfig(),
			Log:               zap.NewNop(),
		}

		mismatched := *request
		mismatched.RetypePassword = "Different1!"

		_, err := usecase.RegisterUser(context.Background(), &mismatched)

		var customErr *exceptions.CustomError
		assert.ErrorAs(t, err, &customErr)
		assert.Equal(t, constvars.StatusBadRequest, customErr.StatusCode)
	})

	t.Run("Weak Password", func(t *testing.T) {
		usecase := &authUsecase{
			UserRepository:    &fakeUserRepository{},
			PatientRepository: &fakePatientRepository{},
			StaffRepository:   &fakeStaffRepository{},
			RedisRepository:   &fakeRedisRepository{},
			InternalConfig:    testConfig(),
			Log:               zap.NewNop(),
		}

		weak := *request
		weak.Password = "alllowercase"
		weak.RetypePassword = "alllowercase"

		_, err := usecase.RegisterUser(context.Background(), &weak)

		var customErr *exceptions.CustomError
		assert.ErrorAs(t, err, &customErr)
		assert.Equal(t, constvars.StatusBadRequest, customErr.StatusCode)
	})
}

func TestLoginUser(t *testing.T) {
	hashedPassword, err := utils.HashPassword("Sup3rSecret!")
	assert.NoError(t, err)

	patientUser := &models.User{
		ID:            "user-1",
		Email:         "siti@example.com",
		Password:      hashedPassword,
		FirstName:     "Siti",
		LastName:      "Rahma",
		ContactNumber: "+628123456789",
		Role:          constvars.ClinicRolePatient,
	}

	t.Run("Success Creates Redis Session", func(t *testing.T) {
		redisRepository := &fakeRedisRepository{}
		usecase := &authUsecase{
			UserRepository:    &fakeUserRepository{user: patientUser},
			PatientRepository: &fakePatientRepository{patient: &models.Patient{ID: "patient-1", UserID: "user-1"}},
			StaffRepository:   &fakeStaffRepository{},
			RedisRepository:   redisRepository,
			InternalConfig:    testConfig(),
			Log:               zap.NewNop(),
		}

		response, err := usecase.LoginUser(context.Background(), &requests.LoginUser{
			Email:    "siti@example.com",
			Password: "Sup3rSecret!",
		})

		assert.NoError(t, err)
		assert.NotEmpty(t, response.Token)
		assert.Len(t, redisRepository.store, 1, "login must persist exactly one session")

		sessionID, err := utils.ParseJWT(response.Token, "test-secret")
		assert.NoError(t, err)

		storedSession, ok := redisRepository.store[constvars.RedisSessionKeyPrefix+sessionID]
		assert.True(t, ok, "token session id must match the stored session key")

		session, err := utils.ParseSessionData(storedSession)
		assert.NoError(t, err)
		assert.Equal(t, "patient-1", session.PatientID)
	})

	t.Run("Wrong Password", func(t *testing.T) {
		usecase := &authUsecase{
			UserRepository:    &fakeUserRepository{user: patientUser},
			PatientRepository: &fakePatientRepository{},
			StaffRepository:   &fakeStaffRepository{},
			RedisRepository:   &fakeRedisRepository{},
			InternalConfig:    testConfig(),
			Log:               zap.NewNop(),
		}

		_, err := usecase.LoginUser(context.Background(), &requests.LoginUser{
			Email:    "siti@example.com",
			Password: "WrongPass1!",
		})

		var customErr *exceptions.CustomError
		assert.ErrorAs(t, err, &customErr)
		assert.Equal(t, constvars.StatusUnauthorized, customErr.StatusCode)
	})

	t.Run("Unknown Email", func(t *testing.T) {
		usecase := &authUsecase{
			UserRepository:    &fakeUserRepository{findErr: exceptions.ErrUserNotExist(nil)},
			PatientRepository: &fakePatientRepository{},
			StaffRepository:   &fakeStaffRepository{},
			RedisRepository:   &fakeRedisRepository{},
			InternalConfig:    testConfig(),
			Log:               zap.NewNop(),
		}

		_, err := usecase.LoginUser(context.Background(), &requests.LoginUser{
			Email:    "nobody@example.com",
			Password: "Sup3rSecret!",
		})

		var customErr *exceptions.CustomError
		assert.ErrorAs(t, err, &customErr)
		assert.Equal(t, constvars.StatusUnauthorized, customErr.StatusCode, "unknown email must not leak whether the account exists")
	})
}

func TestLogoutUser(t *testing.T) {
	redisRepository := &fakeRedisRepository{store: map[string]string{
		constvars.RedisSessionKeyPrefix + "session-1": `{"session_id":"session-1"}`,
	}}
	usecase := &authUsecase{
		UserRepository:    &fakeUserRepository{},
		PatientRepository: &fakePatientRepository{},
		StaffRepository:   &fakeStaffRepository{},
		RedisRepository:   redisRepository,
		InternalConfig:    testConfig(),
		Log:               zap.NewNop(),
	}

	sessionData, err := json.Marshal(&models.Session{SessionID: "session-1", UserID: "user-1"})
	assert.NoError(t, err)

	assert.NoError(t, usecase.LogoutUser(context.Background(), string(sessionData)))
	assert.Equal(t, constvars.RedisSessionKeyPrefix+"session-1", redisRepository.deletedKey)
	assert.Empty(t, redisRepository.store)

	t.Run("Missing Session ID", func(t *testing.T) {
		err := usecase.LogoutUser(context.Background(), `{"user_id":"user-1"}`)
		assert.Error(t, err)
	})
}
