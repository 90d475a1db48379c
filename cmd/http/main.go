package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"dental-clinic-service/cmd/migration"
	"dental-clinic-service/internal/app/config"
	"dental-clinic-service/internal/app/delivery/http/controllers"
	"dental-clinic-service/internal/app/delivery/http/middlewares"
	"dental-clinic-service/internal/app/delivery/http/routers"
	"dental-clinic-service/internal/app/drivers/database"
	"dental-clinic-service/internal/app/drivers/logger"
	"dental-clinic-service/internal/app/drivers/mailer"
	"dental-clinic-service/internal/app/drivers/messaging"
	"dental-clinic-service/internal/app/drivers/storage"
	"dental-clinic-service/internal/app/services/core/appointments"
	"dental-clinic-service/internal/app/services/core/auth"
	"dental-clinic-service/internal/app/services/core/availability"
	"dental-clinic-service/internal/app/services/core/catalog"
	"dental-clinic-service/internal/app/services/core/invoices"
	"dental-clinic-service/internal/app/services/core/notifications"
	"dental-clinic-service/internal/app/services/core/patients"
	"dental-clinic-service/internal/app/services/core/reservations"
	"dental-clinic-service/internal/app/services/core/staff"
	"dental-clinic-service/internal/app/services/core/users"
	lockerService "dental-clinic-service/internal/app/services/shared/locker"
	mailerService "dental-clinic-service/internal/app/services/shared/mailer"
	messagingService "dental-clinic-service/internal/app/services/shared/messaging"
	redisService "dental-clinic-service/internal/app/services/shared/redis"
	storageService "dental-clinic-service/internal/app/services/shared/storage"
	"dental-clinic-service/internal/pkg/utils"

	"github.com/go-chi/chi/v5"
)

func main() {
	driverConfig := config.NewDriverConfig()
	internalConfig := config.NewInternalConfig()

	zapLogger := logger.NewZapLogger(driverConfig, internalConfig)

	location, err := time.LoadLocation(internalConfig.App.Timezone)
	if err != nil {
		log.Fatalf("Error loading location: %v", err)
	}
	time.Local = location

	postgresDB := database.NewPostgresDB(driverConfig)
	if utils.GetEnvBool("APP_RUN_MIGRATION", false) {
		applied, err := migration.Run(postgresDB)
		if err != nil {
			log.Fatalf("Failed to apply migrations: %v", err)
		}
		log.Printf("Applied %d migrations", applied)
	}
	redisClient := database.NewRedisClient(driverConfig)
	rabbitMQ := messaging.NewRabbitMQ(driverConfig)
	chiRouter := chi.NewRouter()

	bootstrap := &config.Bootstrap{
		Router:         chiRouter,
		PostgresDB:     postgresDB,
		Redis:          redisClient,
		RabbitMQ:       rabbitMQ,
		Logger:         zapLogger,
		DriverConfig:   driverConfig,
		InternalConfig: internalConfig,
	}

	bootstrapTheApp(bootstrap)

	server := &http.Server{
		Addr:    internalConfig.App.Port,
		Handler: chiRouter,
	}

	go func() {
		err := server.ListenAndServe()
		if err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server failed to start: %v", err)
		}
	}()

	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	<-c

	log.Println("Waiting for pending requests to be processed..")

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		time.Second*time.Duration(internalConfig.App.ShutdownTimeout),
	)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Fatalf("Server forced to shutdown: %v", err)
	}

	if err := bootstrap.Shutdown(shutdownCtx); err != nil {
		log.Printf("Error during shutdown: %v", err)
	}

	log.Println("Server exiting")
}

func bootstrapTheApp(bootstrap *config.Bootstrap) {
	// Shared services
	redisRepository := redisService.NewRedisRepository(bootstrap.Redis, bootstrap.Logger)
	locker := lockerService.NewLockerService(redisRepository, bootstrap.Logger)
	smtpClient := mailer.NewSMTPClient(bootstrap.DriverConfig)
	mailerSvc := mailerService.NewMailerService(smtpClient, bootstrap.Logger)
	minioClient := storage.NewMinioClient(bootstrap.DriverConfig)
	minioStorage := storageService.NewMinioStorage(minioClient, bootstrap.DriverConfig.Minio.BucketName, bootstrap.Logger)

	bookingEventPublisher, err := messagingService.NewBookingEventPublisher(
		bootstrap.RabbitMQ,
		bootstrap.InternalConfig.App.RabbitMQBookingQueue,
		bootstrap.Logger,
	)
	if err != nil {
		log.Fatalf("Failed to create booking event publisher: %v", err)
	}

	// Middlewares
	mw := middlewares.NewMiddlewares(redisRepository, bootstrap.InternalConfig, bootstrap.Logger)

	// Repositories
	userRepository := users.NewUserPostgresRepository(bootstrap.PostgresDB, bootstrap.Logger)
	patientRepository := patients.NewPatientPostgresRepository(bootstrap.PostgresDB, bootstrap.Logger)
	toothConditionRepository := patients.NewToothConditionPostgresRepository(bootstrap.PostgresDB, bootstrap.Logger)
	staffRepository := staff.NewStaffPostgresRepository(bootstrap.PostgresDB, bootstrap.Logger)
	serviceRepository := catalog.NewServicePostgresRepository(bootstrap.PostgresDB, bootstrap.Logger)
	appointmentRepository := appointments.NewAppointmentPostgresRepository(bootstrap.PostgresDB, bootstrap.Logger)
	notificationRepository := notifications.NewNotificationPostgresRepository(bootstrap.PostgresDB, bootstrap.Logger)
	invoiceRepository := invoices.NewInvoicePostgresRepository(bootstrap.PostgresDB, bootstrap.Logger)

	// Usecases
	authUsecase := auth.NewAuthUsecase(userRepository, patientRepository, staffRepository, redisRepository, bootstrap.InternalConfig, bootstrap.Logger)
	userUsecase := users.NewUserUsecase(userRepository, patientRepository, minioStorage, bootstrap.Logger)
	availabilityUsecase := availability.NewAvailabilityUsecase(appointmentRepository, bootstrap.Logger)
	reservationUsecase := reservations.NewReservationUsecase(appointmentRepository, serviceRepository, locker, bookingEventPublisher, bootstrap.Logger)
	appointmentUsecase := appointments.NewAppointmentUsecase(appointmentRepository, patientRepository, serviceRepository, bookingEventPublisher, bootstrap.Logger)
	serviceUsecase := catalog.NewServiceUsecase(serviceRepository, bootstrap.Logger)
	notificationUsecase := notifications.NewNotificationUsecase(notificationRepository, bootstrap.Logger)
	invoiceUsecase := invoices.NewInvoiceUsecase(invoiceRepository, bootstrap.Logger)
	staffUsecase := staff.NewStaffUsecase(staffRepository, userRepository, bootstrap.Logger)
	patientUsecase := patients.NewPatientUsecase(patientRepository, toothConditionRepository, bootstrap.Logger)

	// Controllers
	authController := controllers.NewAuthController(bootstrap.Logger, authUsecase)
	availabilityController := controllers.NewAvailabilityController(bootstrap.Logger, availabilityUsecase)
	reservationController := controllers.NewReservationController(bootstrap.Logger, reservationUsecase)
	serviceController := controllers.NewServiceController(bootstrap.Logger, serviceUsecase)
	notificationController := controllers.NewNotificationController(bootstrap.Logger, notificationUsecase)
	userController := controllers.NewUserController(bootstrap.Logger, userUsecase, bootstrap.InternalConfig)
	invoiceController := controllers.NewInvoiceController(bootstrap.Logger, invoiceUsecase)
	staffController := controllers.NewStaffController(bootstrap.Logger, staffUsecase)
	patientController := controllers.NewPatientController(bootstrap.Logger, patientUsecase)
	appointmentController := controllers.NewAppointmentController(bootstrap.Logger, appointmentUsecase)

	// Booking event consumer
	consumer := notifications.NewBookingEventConsumer(
		bootstrap.RabbitMQ,
		notificationRepository,
		userRepository,
		mailerSvc,
		bootstrap.InternalConfig,
		bootstrap.Logger,
	)
	consumerStop, err := consumer.Start()
	if err != nil {
		log.Fatalf("Failed to start booking event consumer: %v", err)
	}
	bootstrap.ConsumerStop = consumerStop

	// Reminder worker
	worker := notifications.NewReminderWorker(
		appointmentRepository,
		patientRepository,
		userRepository,
		notificationRepository,
		mailerSvc,
		locker,
		bootstrap.InternalConfig,
		bootstrap.Logger,
	)
	workerStop, err := worker.Start()
	if err != nil {
		log.Fatalf("Failed to start reminder worker: %v", err)
	}
	bootstrap.WorkerStop = workerStop

	routers.SetupRoutes(
		bootstrap.Router,
		bootstrap.InternalConfig,
		mw,
		authController,
		availabilityController,
		reservationController,
		serviceController,
		notificationController,
		userController,
		invoiceController,
		staffController,
		patientController,
		appointmentController,
	)
}
