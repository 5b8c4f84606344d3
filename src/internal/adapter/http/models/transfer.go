package models

import (
	"errors"
	"strings"

	"github.com/shopspring/decimal"
)

type TransferRequest struct {
	SenderID   string          `json:"senderId"`
	ReceiverID string          `json:"receiverId"`
	Amount     decimal.Decimal `json:"amount"`
}

func (r TransferRequest) Validate() error {
	var errs []string

	if strings.TrimSpace(r.SenderID) == "" {
		errs = append(errs, "senderId is required")
	}
	if strings.TrimSpace(r.ReceiverID) == "" {
		errs = append(errs, "receiverId is required")
	}
	if r.Amount.LessThanOrEqual(decimal.Zero) {
		errs = append(errs, "amount must be greater than zero")
	}

	if len(errs) > 0 {
		return errors.New(strings.Join(errs, "; "))
	}
	return nil
}

type TransferResponse struct {
	TransferID string           `json:"transferId"`
	SenderID   string           `json:"senderId"`
	ReceiverID string           `json:"receiverId"`
	Amount     *decimal.Decimal `json:"amount"`
	Status     string           `json:"status"`
	Message    string           `json:"message"`
	CreatedAt  string           `json:"createdAt"`
}
