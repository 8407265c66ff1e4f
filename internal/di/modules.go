package di

import (
	"context"
	"log"

	"askdb-ai/config"
	"askdb-ai/internal/apis/handlers"
	"askdb-ai/internal/services"
	"askdb-ai/internal/sessions"
	"askdb-ai/internal/utils"
	"askdb-ai/pkg/dbmanager"
	"askdb-ai/pkg/llm"

	"go.uber.org/dig"
)

var DiContainer *dig.Container

func Initialize() {
	DiContainer = dig.New()

	// Connect to the target database
	dbManager, err := dbmanager.NewManager(dbmanager.Config{
		Type:     config.Env.DatabaseType,
		Host:     config.Env.DatabaseHost,
		Port:     config.Env.DatabasePort,
		Username: config.Env.DatabaseUser,
		Password: config.Env.DatabasePassword,
		Database: config.Env.DatabaseName,
	})
	if err != nil {
		log.Fatalf("Failed to initialize DB manager: %v", err)
	}

	// Warm the schema description cache; an introspection failure at
	// startup is fatal
	if _, err := dbManager.GetSchemaDescription(context.Background()); err != nil {
		log.Fatalf("Failed to fetch database schema: %v", err)
	}

	// Load the SQL identifier correction table
	corrections, err := utils.LoadCorrections(config.Env.SQLCorrectionsFile)
	if err != nil {
		log.Fatalf("Failed to load SQL corrections: %v", err)
	}

	// Session memory store
	sessionStore := sessions.NewStore()

	if err := DiContainer.Provide(func() *dbmanager.Manager { return dbManager }); err != nil {
		log.Fatalf("Failed to provide DB manager: %v", err)
	}

	if err := DiContainer.Provide(func() *sessions.Store { return sessionStore }); err != nil {
		log.Fatalf("Failed to provide session store: %v", err)
	}

	if err := DiContainer.Provide(func() utils.Corrections { return corrections }); err != nil {
		log.Fatalf("Failed to provide SQL corrections: %v", err)
	}

	// Add LLM Manager
	if err := DiContainer.Provide(func() *llm.Manager {
		manager := llm.NewManager()
		err := manager.RegisterClient(config.Env.LLMProvider, llm.Config{
			Provider:            config.Env.LLMProvider,
			Model:               config.Env.LLMModel,
			APIKey:              config.Env.LLMAPIKey,
			MaxCompletionTokens: config.Env.LLMMaxCompletionTokens,
			Temperature:         config.Env.LLMTemperature,
			MaxRetries:          config.Env.LLMMaxRetries,
		})
		if err != nil {
			log.Fatalf("Failed to register LLM client: %v", err)
		}
		return manager
	}); err != nil {
		log.Fatalf("Failed to provide LLM manager: %v", err)
	}

	if err := DiContainer.Provide(func(llmManager *llm.Manager) llm.Client {
		llmClient, err := llmManager.GetClient(config.Env.LLMProvider)
		if err != nil {
			log.Fatalf("Failed to get LLM client: %v", err)
		}
		return llmClient
	}); err != nil {
		log.Fatalf("Failed to provide LLM client: %v", err)
	}

	// Provide services
	if err := DiContainer.Provide(func(
		store *sessions.Store,
		dbManager *dbmanager.Manager,
		llmClient llm.Client,
	) services.SQLGenService {
		return services.NewSQLGenService(store, dbManager, llmClient, config.Env.DatabaseType)
	}); err != nil {
		log.Fatalf("Failed to provide SQL generation service: %v", err)
	}

	if err := DiContainer.Provide(func(
		sqlGen services.SQLGenService,
		dbManager *dbmanager.Manager,
		llmClient llm.Client,
		corrections utils.Corrections,
	) services.AskService {
		return services.NewAskService(sqlGen, dbManager, llmClient, corrections)
	}); err != nil {
		log.Fatalf("Failed to provide ask service: %v", err)
	}

	// Provide handlers
	if err := DiContainer.Provide(func(askService services.AskService) *handlers.AskHandler {
		return handlers.NewAskHandler(askService)
	}); err != nil {
		log.Fatalf("Failed to provide ask handler: %v", err)
	}
}

// GetLLMClient retrieves the configured LLM client from the DI container
func GetLLMClient() (llm.Client, error) {
	var client llm.Client
	err := DiContainer.Invoke(func(c llm.Client) {
		client = c
	})
	if err != nil {
		return nil, err
	}
	return client, nil
}

// GetAskHandler retrieves the AskHandler from the DI container
func GetAskHandler() (*handlers.AskHandler, error) {
	var handler *handlers.AskHandler
	err := DiContainer.Invoke(func(h *handlers.AskHandler) {
		handler = h
	})
	if err != nil {
		return nil, err
	}
	return handler, nil
}
