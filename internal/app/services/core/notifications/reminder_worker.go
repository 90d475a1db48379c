package notifications

import (
	"context"
	"fmt"
	"time"

	"dental-clinic-service/internal/app/config"
	"dental-clinic-service/internal/app/contracts"
	"dental-clinic-service/internal/app/models"
	"dental-clinic-service/internal/pkg/constvars"
	"dental-clinic-service/internal/pkg/dto/requests"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
)

const reminderLeaderLockExpiration = 10 * time.Minute

// ReminderWorker runs on a cron schedule and reminds every patient with a
// pending or confirmed appointment the next day. A Redis leader lock keeps
// multiple instances from sending the same reminders twice.
type ReminderWorker struct {
	AppointmentRepository  contracts.AppointmentRepository
	PatientRepository      contracts.PatientRepository
	UserRepository         contracts.UserRepository
	NotificationRepository contracts.NotificationRepository
	MailerService          contracts.MailerService
	LockerService          contracts.LockerService
	InternalConfig         *config.InternalConfig
	Log                    *zap.Logger
}

func NewReminderWorker(
	appointmentRepository contracts.AppointmentRepository,
	patientRepository contracts.PatientRepository,
	userRepository contracts.UserRepository,
	notificationRepository contracts.NotificationRepository,
	mailerService contracts.MailerService,
	lockerService contracts.LockerService,
	internalConfig *config.InternalConfig,
	logger *zap.Logger,
) *ReminderWorker {
	return &ReminderWorker{
		AppointmentRepository:  appointmentRepository,
		PatientRepository:      patientRepository,
		UserRepository:         userRepository,
		NotificationRepository: notificationRepository,
		MailerService:          mailerService,
		LockerService:          lockerService,
		InternalConfig:         internalConfig,
		Log:                    logger,
	}
}

// Start schedules the worker and returns a stop function.
func (w *ReminderWorker) Start() (func(), error) {
	scheduler := cron.New()
	_, err := scheduler.AddFunc(w.InternalConfig.App.ReminderWorkerCronSpec, w.Run)
	if err != nil {
		return nil, err
	}
	scheduler.Start()

	w.Log.Info("reminder worker started",
		zap.String("cron_spec", w.InternalConfig.App.ReminderWorkerCronSpec),
	)
	return func() {
		<-scheduler.Stop().Done()
	}, nil
}

// Run executes one reminder pass for tomorrow's appointments.
func (w *ReminderWorker) Run() {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	acquired, lockToken, err := w.LockerService.TryLock(ctx, constvars.RedisReminderWorkerLeaderKey, reminderLeaderLockExpiration)
	if err != nil {
		w.Log.Error("failed to acquire reminder leader lock", zap.Error(err))
		return
	}
	if !acquired {
		w.Log.Info("another instance holds the reminder leader lock, skipping run")
		return
	}
	defer func() {
		if err := w.LockerService.Unlock(ctx, constvars.RedisReminderWorkerLeaderKey, lockToken); err != nil {
			w.Log.Warn("failed to release reminder leader lock", zap.Error(err))
		}
	}()

	tomorrow := time.Now().AddDate(0, 0, 1).Format(constvars.AppointmentDateLayout)
	appointments, err := w.AppointmentRepository.FindAppointmentsByDate(ctx, tomorrow)
	if err != nil {
		w.Log.Error("failed to load appointments for reminder run",
			zap.String(constvars.LoggingAppointmentDateKey, tomorrow),
			zap.Error(err),
		)
		return
	}

	reminded := 0
	for _, appointment := range appointments {
		if err := w.remind(ctx, &appointment); err != nil {
			w.Log.Error("failed to send appointment reminder",
				zap.String(constvars.LoggingAppointmentIDKey, appointment.ID),
				zap.Error(err),
			)
			continue
		}
		reminded++
	}

	w.Log.Info("reminder run finished",
		zap.String(constvars.LoggingAppointmentDateKey, tomorrow),
		zap.Int("appointment_count", len(appointments)),
		zap.Int("reminded_count", reminded),
	)
}

func (w *ReminderWorker) remind(ctx context.Context, appointment *models.Appointment) error {
	patient, err := w.PatientRepository.FindPatientByID(ctx, appointment.PatientID)
	if err != nil {
		return err
	}
	user, err := w.UserRepository.FindUserByID(ctx, patient.UserID)
	if err != nil {
		return err
	}

	payload := fmt.Sprintf("Reminder: you have an appointment tomorrow, %s at %s",
		appointment.AppointmentDate, appointment.AppointmentTime)

	_, err = w.NotificationRepository.CreateNotification(ctx, &models.Notification{
		UserID:  user.ID,
		Type:    constvars.NotificationTypeReminder,
		Payload: payload,
	})
	if err != nil {
		return err
	}

	err = w.MailerService.SendEmail(ctx, &requests.EmailPayload{
		ReceiverEmail: user.Email,
		Subject:       "Appointment reminder",
		Body:          payload,
	})
	if err != nil {
		w.Log.Warn("reminder email failed",
			zap.String(constvars.LoggingUserIDKey, user.ID),
			zap.Error(err),
		)
	}
	return nil
}
