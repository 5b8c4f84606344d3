package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/api-sage/fund-transfer-service/src/internal/adapter/http/controller"
	"github.com/api-sage/fund-transfer-service/src/internal/adapter/http/router"
	"github.com/api-sage/fund-transfer-service/src/internal/adapter/notification"
	"github.com/api-sage/fund-transfer-service/src/internal/adapter/repository/memory"
	"github.com/api-sage/fund-transfer-service/src/internal/config"
	"github.com/api-sage/fund-transfer-service/src/internal/domain"
	"github.com/api-sage/fund-transfer-service/src/internal/logger"
	"github.com/api-sage/fund-transfer-service/src/internal/usecase/service_interfaces"
	"github.com/api-sage/fund-transfer-service/src/internal/usecase/services"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	accountStore := memory.NewAccountStore()
	transferRepo := memory.NewTransferRepository()

	if err := seedAccounts(ctx, accountStore, cfg.SeedAccounts); err != nil {
		log.Fatalf("seed accounts: %v", err)
	}

	var notifier service_interfaces.NotificationService = notification.NewLogNotifier()
	if cfg.NotifyWebhookURL != "" {
		notifier = notification.NewWebhookNotifier(cfg.NotifyWebhookURL)
	}

	accountService := services.NewAccountService(accountStore)
	transferService := services.NewTransferService(accountStore, transferRepo, notifier)

	mux := router.New(
		controller.NewAccountController(accountService),
		controller.NewTransferController(transferService),
	)

	server := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           mux,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		logger.Info("server listening", logger.Fields{"addr": server.Addr})
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("serve: %v", err)
		}
	}()

	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error("server shutdown", err, nil)
	}
	logger.Info("server stopped", nil)
}

// seedAccounts provisions the accounts named in SEED_ACCOUNTS before
// the server accepts transfers.
func seedAccounts(ctx context.Context, store *memory.AccountStore, seeds []config.SeedAccount) error {
	for _, seed := range seeds {
		balance, err := domain.NewMoney(seed.Balance)
		if err != nil {
			return err
		}
		if _, err := store.Create(ctx, seed.AccountID, balance); err != nil {
			return err
		}
		logger.Info("seeded account", logger.Fields{
			"accountId": seed.AccountID,
			"balance":   balance.String(),
		})
	}
	return nil
}
