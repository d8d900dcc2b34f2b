package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"dealership-concierge/config"
	_ "dealership-concierge/docs" // Swagger docs
	"dealership-concierge/internal/agent"
	"dealership-concierge/internal/agent/orchestrator"
	"dealership-concierge/internal/finance"
	"dealership-concierge/internal/httpserver"
	"dealership-concierge/internal/lead"
	twilioDelivery "dealership-concierge/internal/lead/delivery/twilio"
	sheetsRepo "dealership-concierge/internal/lead/repository/sheets"
	"dealership-concierge/internal/lead/usecase"
	"dealership-concierge/internal/router"
	"dealership-concierge/pkg/log"
	"dealership-concierge/pkg/openai"
	"dealership-concierge/pkg/sheets"
	"dealership-concierge/pkg/twilio"
)

// @title       Dealership Concierge API
// @description WhatsApp concierge for a Fiat dealership: intent routing, responder agents, lead scoring and CRM persistence.
// @version     1
// @host        localhost:8080
// @schemes     http
func main() {
	// 1. Configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		return
	}

	// 2. Logger
	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info(ctx, "Starting Dealership Concierge...")
	logger.Infof(ctx, "Environment: %s", cfg.Environment.Name)

	if cfg.OpenAI.APIKey == "" {
		logger.Error(ctx, "OPENAI_API_KEY is required")
		return
	}

	// 3. OpenAI client, classifier and responder registry
	llm, err := openai.New(openai.Config{
		APIKey: cfg.OpenAI.APIKey,
		APIURL: cfg.OpenAI.APIURL,
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize OpenAI client: ", err)
		return
	}

	classifier := router.New(llm, logger)

	registry, err := agent.DefaultRegistry(llm, logger, agent.RegistryConfig{
		NewCarsDomain:  cfg.Concierge.NewCarsDomain,
		UsedCarsDomain: cfg.Concierge.UsedCarsDomain,
		VectorStoreID:  cfg.Concierge.VectorStoreID,
		DealerWhatsApp: cfg.Concierge.DealerWhatsApp,
		FinancingTools: []agent.Tool{finance.NewQuoteTool()},
	})
	if err != nil {
		logger.Error(ctx, "Failed to build responder registry: ", err)
		return
	}

	orch := orchestrator.New(classifier, registry, logger, cfg.Concierge.StageTimeout)

	// 4. Twilio messenger for hot-lead alerts
	messenger := twilio.NewClient(cfg.Twilio.AccountSID, cfg.Twilio.AuthToken)

	// 5. CRM: Google Sheets repository (optional, degrades to stateless replies)
	var uc lead.UseCase
	if cfg.GoogleSheets.CredentialsPath != "" && cfg.GoogleSheets.SpreadsheetID != "" {
		sheetsClient, shErr := sheets.NewClientFromCredentialsFile(ctx,
			cfg.GoogleSheets.CredentialsPath, cfg.GoogleSheets.SpreadsheetID)
		if shErr != nil {
			logger.Warnf(ctx, "Google Sheets not available (optional): %v", shErr)
		} else {
			repo := sheetsRepo.New(sheetsClient, logger)
			uc = usecase.New(logger, repo, messenger, usecase.Config{
				NotifyFrom:        cfg.Twilio.WhatsAppFrom,
				NotifyTo:          cfg.Concierge.OperatorWhatsApp,
				HotScoreThreshold: cfg.Concierge.HotScoreThreshold,
			})
			logger.Info(ctx, "Google Sheets CRM initialized")
		}
	} else {
		logger.Warn(ctx, "Google Sheets not configured, lead tracking disabled")
	}

	// 6. Delivery handler
	whatsappHandler := twilioDelivery.New(logger, orch, uc)

	// 7. HTTP Server
	httpServer, err := httpserver.New(logger, httpserver.Config{
		Logger:          logger,
		Port:            cfg.HTTPServer.Port,
		Mode:            cfg.HTTPServer.Mode,
		Environment:     cfg.Environment.Name,
		WhatsAppHandler: whatsappHandler,
		RateLimitPerMin: cfg.Concierge.RateLimitPerMin,
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize HTTP server: ", err)
		return
	}

	// 8. Run
	if err := httpServer.Run(); err != nil {
		logger.Error(ctx, "Failed to run server: ", err)
		return
	}

	logger.Info(ctx, "Server stopped gracefully")
}
