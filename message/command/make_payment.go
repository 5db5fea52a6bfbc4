package command

import (
	"context"
	"fmt"
	"strconv"

	"cinema-tickets/entities"

	"github.com/ThreeDotsLabs/go-event-driven/common/log"
	"github.com/sirupsen/logrus"
)

func (h Handler) MakePayment(ctx context.Context, cmd *entities.MakePayment) error {
	price := entities.Money{
		Amount:   strconv.FormatUint(uint64(cmd.Amount), 10),
		Currency: entities.PaymentCurrency,
	}

	resp, err := h.payments.Charge(ctx, entities.ChargeRequest{
		IdempotencyKey: cmd.Header.IdempotencyKey,
		Reference:      cmd.Header.ID,
		AccountID:      cmd.AccountID,
		Price:          price,
	})
	if err != nil {
		return fmt.Errorf("failed to charge account %s: %w", cmd.AccountID, err)
	}

	log.FromContext(ctx).WithFields(logrus.Fields{
		"account_id":     cmd.AccountID,
		"amount":         price.Amount,
		"receipt_number": resp.ReceiptNumber,
	}).Info("Payment made")

	err = h.eventBus.Publish(ctx, entities.PaymentMade_v1{
		Header:           entities.NewEventHeaderWithIdempotencyKey(cmd.Header.IdempotencyKey),
		AccountID:        cmd.AccountID,
		Price:            price,
		PaymentReference: cmd.Header.ID,
		ReceiptNumber:    resp.ReceiptNumber,
	})
	if err != nil {
		return fmt.Errorf("failed to publish PaymentMade_v1 event: %w", err)
	}

	return nil
}
