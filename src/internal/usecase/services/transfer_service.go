package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/api-sage/fund-transfer-service/src/internal/adapter/http/models"
	"github.com/api-sage/fund-transfer-service/src/internal/adapter/repository/repo_interfaces"
	"github.com/api-sage/fund-transfer-service/src/internal/commons"
	"github.com/api-sage/fund-transfer-service/src/internal/domain"
	"github.com/api-sage/fund-transfer-service/src/internal/logger"
	"github.com/api-sage/fund-transfer-service/src/internal/usecase/service_interfaces"
	"github.com/google/uuid"
)

const transferSuccessMessage = "Transaction successful"

type TransferService struct {
	accountRepo  repo_interfaces.AccountRepository
	transferRepo repo_interfaces.TransferRepository
	notifier     service_interfaces.NotificationService
}

func NewTransferService(
	accountRepo repo_interfaces.AccountRepository,
	transferRepo repo_interfaces.TransferRepository,
	notifier service_interfaces.NotificationService,
) *TransferService {
	return &TransferService{
		accountRepo:  accountRepo,
		transferRepo: transferRepo,
		notifier:     notifier,
	}
}

// TransferFunds moves req.Amount from the sender to the receiver. The
// whole debit/credit pair is committed atomically by
// domain.PostTransfer; every failure path leaves both balances
// untouched and is reported synchronously, nothing is retried here.
func (s *TransferService) TransferFunds(ctx context.Context, req models.TransferRequest) (commons.Response[models.TransferResponse], error) {
	logger.Info("transfer service transfer funds request", logger.Fields{
		"payload": logger.SanitizePayload(req),
	})

	if err := req.Validate(); err != nil {
		logger.Error("transfer service transfer funds validation failed", err, nil)
		return commons.ErrorResponse[models.TransferResponse]("validation failed", err.Error()), err
	}

	senderID := strings.TrimSpace(req.SenderID)
	receiverID := strings.TrimSpace(req.ReceiverID)

	amount, err := domain.NewMoney(req.Amount)
	if err != nil {
		return commons.ErrorResponse[models.TransferResponse]("validation failed", err.Error()), err
	}

	sender, err := s.accountRepo.Get(ctx, senderID)
	if err != nil {
		if errors.Is(err, domain.ErrAccountNotFound) {
			return commons.ErrorResponse[models.TransferResponse]("Sender account not found", err.Error()), err
		}
		return commons.ErrorResponse[models.TransferResponse]("failed to process transfer", "Unable to process transfer right now"), err
	}
	receiver, err := s.accountRepo.Get(ctx, receiverID)
	if err != nil {
		if errors.Is(err, domain.ErrAccountNotFound) {
			return commons.ErrorResponse[models.TransferResponse]("Receiver account not found", err.Error()), err
		}
		return commons.ErrorResponse[models.TransferResponse]("failed to process transfer", "Unable to process transfer right now"), err
	}

	if senderID == receiverID {
		err := fmt.Errorf("senderId and receiverId are both %s: %w", senderID, domain.ErrSameAccountTransfer)
		return commons.ErrorResponse[models.TransferResponse]("validation failed", err.Error()), err
	}

	if err := domain.PostTransfer(sender, receiver, amount); err != nil {
		logger.Error("transfer service posting failed", err, logger.Fields{
			"senderId":   senderID,
			"receiverId": receiverID,
			"amount":     amount.String(),
		})
		return commons.ErrorResponse[models.TransferResponse]("Insufficient balance", err.Error()), err
	}

	record := domain.TransferRecord{
		ID:         uuid.NewString(),
		SenderID:   senderID,
		ReceiverID: receiverID,
		Amount:     amount,
		Status:     domain.TransferStatusSuccess,
		Message:    transferSuccessMessage,
		CreatedAt:  time.Now().UTC(),
	}

	// The transfer is already committed; a record-keeping failure must
	// not surface as a transfer failure.
	if _, recordErr := s.transferRepo.Create(ctx, record); recordErr != nil {
		logger.Error("transfer service record creation failed", recordErr, logger.Fields{
			"transferId": record.ID,
		})
	}

	s.notify(ctx, senderID, fmt.Sprintf("Debited %s from account %s", amount.String(), senderID))
	s.notify(ctx, receiverID, fmt.Sprintf("Credited %s to account %s", amount.String(), receiverID))

	logger.Info("transfer service transfer funds success", logger.Fields{
		"transferId": record.ID,
		"senderId":   senderID,
		"receiverId": receiverID,
		"amount":     amount.String(),
	})

	return commons.SuccessResponse(transferSuccessMessage, mapRecordToResponse(record)), nil
}

func (s *TransferService) GetTransfer(ctx context.Context, transferID string) (commons.Response[models.TransferResponse], error) {
	transferID = strings.TrimSpace(transferID)
	if transferID == "" {
		err := fmt.Errorf("transferId is required")
		return commons.ErrorResponse[models.TransferResponse]("validation failed", err.Error()), err
	}

	record, err := s.transferRepo.GetByID(ctx, transferID)
	if err != nil {
		if errors.Is(err, domain.ErrRecordNotFound) {
			return commons.ErrorResponse[models.TransferResponse]("Transfer not found", err.Error()), err
		}
		return commons.ErrorResponse[models.TransferResponse]("failed to fetch transfer", "Unable to fetch transfer right now"), err
	}

	return commons.SuccessResponse("transfer fetched successfully", mapRecordToResponse(record)), nil
}

// notify is fire and forget: failures are logged and never escalate
// into the already committed transfer.
func (s *TransferService) notify(ctx context.Context, accountID string, message string) {
	if s.notifier == nil {
		return
	}
	if err := s.notifier.NotifyAboutTransfer(ctx, accountID, message); err != nil {
		logger.Error("transfer service notification failed", err, logger.Fields{
			"accountId": accountID,
		})
	}
}

func mapRecordToResponse(record domain.TransferRecord) models.TransferResponse {
	amount := record.Amount.Decimal()
	return models.TransferResponse{
		TransferID: record.ID,
		SenderID:   record.SenderID,
		ReceiverID: record.ReceiverID,
		Amount:     &amount,
		Status:     string(record.Status),
		Message:    record.Message,
		CreatedAt:  record.CreatedAt.Format(time.RFC3339),
	}
}
