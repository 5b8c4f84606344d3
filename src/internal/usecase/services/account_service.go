package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/api-sage/fund-transfer-service/src/internal/adapter/http/models"
	"github.com/api-sage/fund-transfer-service/src/internal/adapter/repository/repo_interfaces"
	"github.com/api-sage/fund-transfer-service/src/internal/commons"
	"github.com/api-sage/fund-transfer-service/src/internal/domain"
	"github.com/api-sage/fund-transfer-service/src/internal/logger"
)

type AccountService struct {
	accountRepo repo_interfaces.AccountRepository
}

func NewAccountService(accountRepo repo_interfaces.AccountRepository) *AccountService {
	return &AccountService{accountRepo: accountRepo}
}

func (s *AccountService) CreateAccount(ctx context.Context, req models.CreateAccountRequest) (commons.Response[models.AccountResponse], error) {
	logger.Info("account service create account request", logger.Fields{
		"payload": logger.SanitizePayload(req),
	})

	if err := req.Validate(); err != nil {
		logger.Error("account service create account validation failed", err, nil)
		return commons.ErrorResponse[models.AccountResponse]("validation failed", err.Error()), err
	}

	accountID := strings.TrimSpace(req.AccountID)
	initialBalance, err := domain.NewMoney(req.InitialBalance)
	if err != nil {
		return commons.ErrorResponse[models.AccountResponse]("validation failed", err.Error()), err
	}

	account, err := s.accountRepo.Create(ctx, accountID, initialBalance)
	if err != nil {
		if errors.Is(err, domain.ErrDuplicateAccount) {
			return commons.ErrorResponse[models.AccountResponse]("Account already exists", err.Error()), err
		}
		logger.Error("account service create account repository failed", err, logger.Fields{
			"accountId": accountID,
		})
		return commons.ErrorResponse[models.AccountResponse]("failed to create account", "Unable to create account right now"), err
	}

	logger.Info("account service create account success", logger.Fields{
		"accountId": account.ID(),
		"balance":   account.Balance().String(),
	})

	return commons.SuccessResponse("account created successfully", mapAccountToResponse(account)), nil
}

func (s *AccountService) GetAccount(ctx context.Context, accountID string) (commons.Response[models.AccountResponse], error) {
	accountID = strings.TrimSpace(accountID)
	if accountID == "" {
		err := fmt.Errorf("accountId is required")
		return commons.ErrorResponse[models.AccountResponse]("validation failed", err.Error()), err
	}

	account, err := s.accountRepo.Get(ctx, accountID)
	if err != nil {
		if errors.Is(err, domain.ErrAccountNotFound) {
			return commons.ErrorResponse[models.AccountResponse]("Account not found", err.Error()), err
		}
		return commons.ErrorResponse[models.AccountResponse]("failed to fetch account", "Unable to fetch account right now"), err
	}

	return commons.SuccessResponse("account fetched successfully", mapAccountToResponse(account)), nil
}

func (s *AccountService) ListAccounts(ctx context.Context) (commons.Response[[]models.AccountResponse], error) {
	accounts, err := s.accountRepo.List(ctx)
	if err != nil {
		return commons.ErrorResponse[[]models.AccountResponse]("failed to fetch accounts", "Unable to fetch accounts right now"), err
	}

	responses := make([]models.AccountResponse, 0, len(accounts))
	for _, account := range accounts {
		responses = append(responses, mapAccountToResponse(account))
	}

	return commons.SuccessResponse("accounts fetched successfully", responses), nil
}

func (s *AccountService) DepositFunds(ctx context.Context, req models.DepositRequest) (commons.Response[models.AccountResponse], error) {
	logger.Info("account service deposit funds request", logger.Fields{
		"payload": logger.SanitizePayload(req),
	})

	if err := req.Validate(); err != nil {
		logger.Error("account service deposit funds validation failed", err, nil)
		return commons.ErrorResponse[models.AccountResponse]("validation failed", err.Error()), err
	}

	accountID := strings.TrimSpace(req.AccountID)
	amount, err := domain.NewMoney(req.Amount)
	if err != nil {
		return commons.ErrorResponse[models.AccountResponse]("validation failed", err.Error()), err
	}

	account, err := s.accountRepo.Get(ctx, accountID)
	if err != nil {
		if errors.Is(err, domain.ErrAccountNotFound) {
			return commons.ErrorResponse[models.AccountResponse]("Account not found", err.Error()), err
		}
		return commons.ErrorResponse[models.AccountResponse]("failed to deposit funds", "Unable to deposit funds right now"), err
	}

	account.Credit(amount)

	logger.Info("account service deposit funds success", logger.Fields{
		"accountId": account.ID(),
		"amount":    amount.String(),
	})

	return commons.SuccessResponse("deposit successful", mapAccountToResponse(account)), nil
}

func mapAccountToResponse(account *domain.Account) models.AccountResponse {
	balance := account.Balance().Decimal()
	return models.AccountResponse{
		AccountID: account.ID(),
		Balance:   &balance,
	}
}
