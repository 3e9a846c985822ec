package unit

import (
	"testing"

	"pousada-backend/internal/config"
	"pousada-backend/internal/domain"
	"pousada-backend/internal/jobs"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestJobRunner_MarkOverduePayments(t *testing.T) {
	paymentRepo := new(MockPaymentRepo)
	emailSvc := new(MockEmailService)
	runner := jobs.NewJobRunner(paymentRepo, emailSvc, &config.Config{})

	paymentRepo.On("MarkOverdue", mock.Anything, mock.AnythingOfType("int"), mock.AnythingOfType("int")).Return(int64(3), nil)

	runner.MarkOverduePayments()

	paymentRepo.AssertCalled(t, "MarkOverdue", mock.Anything, mock.AnythingOfType("int"), mock.AnythingOfType("int"))
}

func TestJobRunner_SendOverdueNotices(t *testing.T) {
	t.Run("Sends one notice per guest with an email", func(t *testing.T) {
		paymentRepo := new(MockPaymentRepo)
		emailSvc := new(MockEmailService)
		runner := jobs.NewJobRunner(paymentRepo, emailSvc, &config.Config{})

		notices := []domain.OverdueNotice{
			{PaymentID: "pay-1", GuestFullName: "Ana Souza", GuestEmail: "ana@test.com", UnitNumber: "101", ReferenceMonth: 7, ReferenceYear: 2026, Amount: decimal.NewFromInt(1500)},
			{PaymentID: "pay-2", GuestFullName: "Bruno Lima", GuestEmail: "", UnitNumber: "102", ReferenceMonth: 7, ReferenceYear: 2026, Amount: decimal.NewFromInt(1200)},
		}
		paymentRepo.On("ListOverdueNotices", mock.Anything).Return(notices, nil)
		emailSvc.On("SendOverdueNotice", mock.Anything, notices[0]).Return(nil)

		runner.SendOverdueNotices()

		emailSvc.AssertNumberOfCalls(t, "SendOverdueNotice", 1)
	})

	t.Run("A failed send does not stop the batch", func(t *testing.T) {
		paymentRepo := new(MockPaymentRepo)
		emailSvc := new(MockEmailService)
		runner := jobs.NewJobRunner(paymentRepo, emailSvc, &config.Config{})

		notices := []domain.OverdueNotice{
			{PaymentID: "pay-1", GuestEmail: "ana@test.com"},
			{PaymentID: "pay-2", GuestEmail: "bruno@test.com"},
		}
		paymentRepo.On("ListOverdueNotices", mock.Anything).Return(notices, nil)
		emailSvc.On("SendOverdueNotice", mock.Anything, notices[0]).Return(assert.AnError)
		emailSvc.On("SendOverdueNotice", mock.Anything, notices[1]).Return(nil)

		runner.SendOverdueNotices()

		emailSvc.AssertNumberOfCalls(t, "SendOverdueNotice", 2)
	})
}
