package patients

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

type patientUsecase struct {
	PatientRepository        contracts.PatientRepository
	ToothConditionRepository contracts.ToothConditionRepository
	Log                      *zap.Logger
}

var (
	patientUsecaseInstance contracts.PatientUsecase
	oncePatientUsecase     sync.Once
)

func NewPatientUsecase(
	patientRepository contracts.PatientRepository,
	toothConditionRepository contracts.ToothConditionRepository,
	logger *zap.Logger,
) contracts.PatientUsecase {
	oncePatientUsecase.Do(func() {
		patientUsecaseInstance = &patientUsecase{
			PatientRepository:        patientRepository,
			ToothConditionRepository: toothConditionRepository,
			Log:                      logger,
		}
	})
	return patientUsecaseInstance
}

// GetToothConditions returns a patient's dental chart. Staff can read any
// chart; a patient can only read their own.
func (uc *patientUsecase) GetToothConditions(ctx context.Context, sessionData, patientID string) ([]responses.ToothCondition, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("patientUsecase.GetToothConditions called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingPatientIDKey, patientID),
	)

	session, err := utils.ParseSessionData(sessionData)
	if err != nil {
		return nil, err
	}
	if !session.IsStaffRole() && session.PatientID != patientID {
		return nil, exceptions.ErrNotAuthorized(nil)
	}

	if _, err := uc.PatientRepository.FindPatientByID(ctx, patientID); err != nil {
		return nil, err
	}

	conditions, err := uc.ToothConditionRepository.FindToothConditionsByPatientID(ctx, patientID)
	if err != nil {
		return nil, err
	}

	response := make([]responses.ToothCondition, 0, len(conditions))
	for _, condition := range conditions {
		response = append(response, responses.ToothCondition{
			ID:          condition.ID,
			ToothNumber: condition.ToothNumber,
			Condition:   condition.Condition,
			Notes:       condition.Notes,
			RecordedBy:  condition.RecordedBy,
			UpdatedAt:   condition.UpdatedAt.Format(constvars.AppointmentDateLayout),
		})
	}
	return response, nil
}

// UpsertToothCondition records one chart entry. Only dentists and other
// staff may write to a chart.
func (uc *patientUsecase) UpsertToothCondition(ctx context.Context, sessionData, patientID string, request *requests.UpsertToothCondition) (*responses.ToothCondition, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("patientUsecase.UpsertToothCondition called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingPatientIDKey, patientID),
		zap.Int("tooth_number", request.ToothNumber),
	)

	session, err := utils.ParseSessionData(sessionData)
	if err != nil {
		return nil, err
	}
	if !session.IsStaffRole() {
		return nil, exceptions.ErrNotAuthorized(nil)
	}

	if err := utils.ValidateStruct(request); err != nil {
		return nil, exceptions.ErrInputValidation(err)
	}

	if _, err := uc.PatientRepository.FindPatientByID(ctx, patientID); err != nil {
		return nil, err
	}

	conditionID, err := uc.ToothConditionRepository.UpsertToothCondition(ctx, &models.ToothCondition{
		PatientID:   patientID,
		ToothNumber: request.ToothNumber,
		Condition:   request.Condition,
		Notes:       request.Notes,
		RecordedBy:  session.UserID,
	})
	if err != nil {
		return nil, err
	}

	uc.Log.Info("patientUsecase.UpsertToothCondition succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingPatientIDKey, patientID),
	)
	return &responses.ToothCondition{
		ID:          conditionID,
		ToothNumber: request.ToothNumber,
		Condition:   request.Condition,
		Notes:       request.Notes,
		RecordedBy:  session.UserID,
	}, nil
}
