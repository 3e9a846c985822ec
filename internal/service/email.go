package service

import (
	"context"
	"fmt"

	"pousada-backend/internal/domain"

	"gopkg.in/gomail.v2"
)

type emailService struct {
	host     string
	port     int
	username string
	password string
	from     string
}

func NewEmailService(host string, port int, username, password, from string) EmailService {
	return &emailService{
		host:     host,
		port:     port,
		username: username,
		password: password,
		from:     from,
	}
}

func (s *emailService) send(to, subject, body string) error {
	m := gomail.NewMessage()
	m.SetHeader("From", s.from)
	m.SetHeader("To", to)
	m.SetHeader("Subject", subject)
	m.SetBody("text/plain", body)

	d := gomail.NewDialer(s.host, s.port, s.username, s.password)
	return d.DialAndSend(m)
}

func (s *emailService) SendCheckoutConfirmation(ctx context.Context, email, guestName, unitNumber string) error {
	subject := "Check-out confirmed"
	body := fmt.Sprintf(
		"Hello %s,\n\nYour stay in unit %s has been finalized. Thank you for staying with us!\n",
		guestName, unitNumber,
	)
	return s.send(email, subject, body)
}

func (s *emailService) SendOverdueNotice(ctx context.Context, notice domain.OverdueNotice) error {
	subject := fmt.Sprintf("Payment overdue for %02d/%d", notice.ReferenceMonth, notice.ReferenceYear)
	body := fmt.Sprintf(
		"Hello %s,\n\nOur records show the rent of %s for unit %s, reference %02d/%d, is overdue. Please settle it or contact the front desk.\n",
		notice.GuestFullName, notice.Amount.StringFixed(2), notice.UnitNumber, notice.ReferenceMonth, notice.ReferenceYear,
	)
	return s.send(notice.GuestEmail, subject, body)
}
