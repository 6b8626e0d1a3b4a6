package emailer

import (
	"errors"
	"log"
	"net/smtp"

	"github.com/wyovotewatch/district-alerts-api/internal/config"
)

type SMTPService struct {
	User     string
	Host     string
	Port     string
	Password string
	From     string

	logger *log.Logger
}

func NewSMTPService(cfg *config.Config, logger *log.Logger) *SMTPService {
	svc := &SMTPService{
		User:     cfg.Email.User,
		Host:     cfg.Email.Host,
		Port:     cfg.Email.Port,
		Password: cfg.Email.Password,
		From:     cfg.Email.From,
		logger:   logger,
	}

	if svc.Host == "" || svc.Port == "" || svc.From == "" {
		logger.Printf("SMTP credentials are not fully set: %+v", svc)
		return nil
	}
	return svc
}

func (e *SMTPService) Send(to, subject, additionalHeaders, body string) error {
	if e == nil {
		return errors.New("SMTP is not configured")
	}

	auth := smtp.PlainAuth("", e.User, e.Password, e.Host)

	msg := "From: " + e.From + "\n" +
		"To: " + to + "\n" +
		"Subject: " + subject + "\n"
	if additionalHeaders != "" {
		msg += additionalHeaders + "\n"
	}
	msg += "\n" + body

	addr := e.Host + ":" + e.Port
	if err := smtp.SendMail(addr, auth, e.From, []string{to}, []byte(msg)); err != nil {
		e.logger.Printf("failed to send email to %s: %v", to, err)
		return err
	}
	return nil
}
