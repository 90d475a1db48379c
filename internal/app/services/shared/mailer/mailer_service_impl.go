package mailer

import (
	"context"
	"fmt"
	"net/smtp"
	"strings"
	"sync"

	"dental-clinic-service/internal/app/contracts"
	"dental-clinic-service/internal/app/drivers/mailer"
	"dental-clinic-service/internal/pkg/dto/requests"
	"dental-clinic-service/internal/pkg/exceptions"

	"go.uber.org/zap"
)

type mailerService struct {
	smtpClient *mailer.SMTPClient
	log        *zap.Logger
}

var (
	mailerServiceInstance contracts.MailerService
	onceMailerService     sync.Once
)

func NewMailerService(smtpClient *mailer.SMTPClient, logger *zap.Logger) contracts.MailerService {
	onceMailerService.Do(func() {
		mailerServiceInstance = &mailerService{
			smtpClient: smtpClient,
			log:        logger,
		}
	})
	return mailerServiceInstance
}

func (m *mailerService) SendEmail(ctx context.Context, request *requests.EmailPayload) error {
	var message strings.Builder
	message.WriteString(fmt.Sprintf("From: %s\r\n", m.smtpClient.EmailSender))
	message.WriteString(fmt.Sprintf("To: %s\r\n", request.ReceiverEmail))
	message.WriteString(fmt.Sprintf("Subject: %s\r\n", request.Subject))
	message.WriteString("MIME-Version: 1.0\r\n")
	message.WriteString("Content-Type: text/plain; charset=\"utf-8\"\r\n")
	message.WriteString("\r\n")
	message.WriteString(request.Body)

	address := fmt.Sprintf("%s:%d", m.smtpClient.Host, m.smtpClient.Port)
	err := smtp.SendMail(address, m.smtpClient.Auth, m.smtpClient.EmailSender, []string{request.ReceiverEmail}, []byte(message.String()))
	if err != nil {
		return exceptions.ErrSMTPSendEmail(err, m.smtpClient.Host)
	}

	m.log.Info("email sent",
		zap.String("recipient", request.ReceiverEmail),
		zap.String("subject", request.Subject),
	)
	return nil
}
