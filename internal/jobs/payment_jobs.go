package jobs

import (
	"context"
	"time"

	"pousada-backend/internal/logger"
)

// MarkOverduePayments flips pending payments whose reference month is in
// the past to overdue. Runs nightly so the payment list reflects reality
// without anyone editing rows by hand.
func (jr *JobRunner) MarkOverduePayments() {
	jr.runWithRecovery("MarkOverduePayments", func() {
		ctx := context.Background()

		now := time.Now().UTC()
		count, err := jr.payments.MarkOverdue(ctx, int(now.Month()), now.Year())
		if err != nil {
			logger.Error("Failed to mark overdue payments", "error", err)
			return
		}

		logger.Info("Marked payments as overdue", "count", count)
	})
}

// SendOverdueNotices emails each guest with an overdue payment. A failed
// send is logged and skipped so one bad address never blocks the rest.
func (jr *JobRunner) SendOverdueNotices() {
	jr.runWithRecovery("SendOverdueNotices", func() {
		ctx := context.Background()

		notices, err := jr.payments.ListOverdueNotices(ctx)
		if err != nil {
			logger.Error("Failed to list overdue notices", "error", err)
			return
		}

		sent := 0
		for _, notice := range notices {
			if notice.GuestEmail == "" {
				logger.Debug("Skipping notice, guest has no email", "payment_id", notice.PaymentID)
				continue
			}
			if err := jr.email.SendOverdueNotice(ctx, notice); err != nil {
				logger.Error("Failed to send overdue notice",
					"payment_id", notice.PaymentID,
					"guest", notice.GuestFullName,
					"error", err)
				continue
			}
			sent++
		}

		logger.Info("Sent overdue notices", "total", len(notices), "sent", sent)
	})
}
