package main

import (
	"context"
	"log/slog"
	"os"

	"soulclaim/config"
	"soulclaim/internal/domain/repository"
	"soulclaim/internal/infra/chain"
	logs "soulclaim/internal/infra/log"
	"soulclaim/internal/infra/middleware"
	"soulclaim/internal/infra/persistence/cookiefile"
	"soulclaim/internal/infra/persistence/listfile"
	"soulclaim/internal/infra/prompt"
	"soulclaim/internal/usecase"
	"soulclaim/internal/usecase/impl"

	"go.uber.org/fx"
)

type runBatchParams struct {
	fx.In

	Ctx        context.Context
	Batch      usecase.BatchUsecase
	Logger     *slog.Logger
	Shutdowner fx.Shutdowner
}

func main() {
	fx.New(
		injectInfra(),
		injectRepo(),
		injectService(),
		injectUsecase(),
		fx.Invoke(
			runBatch,
		),
	).Run()
}

func injectInfra() fx.Option {
	return fx.Provide(
		config.New,
		logs.New,
		context.Background,
		chain.New,
	)
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			newSessionStore,
			newCredentialRepository,
			newDomainPoolRepository,
		),
	)
}

// newSessionStore creates the cookie-backed session store from the
// configured file path
func newSessionStore(cfg *config.Config) (repository.SessionStore, error) {
	return cookiefile.New(cfg.Files.Cookies)
}

func newCredentialRepository(cfg *config.Config) repository.CredentialRepository {
	return listfile.NewCredentialRepository(cfg.Files.Keys)
}

func newDomainPoolRepository(cfg *config.Config) repository.DomainPoolRepository {
	return listfile.NewDomainPoolRepository(cfg.Files.Domains)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			chain.NewNameRegistry,
			chain.NewSoulStore,
			chain.NewWalletReader,
			chain.NewSignerFactory,
			middleware.NewSessionClient,
			prompt.NewStdinPrompter,
		),
	)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewRegistrationService,
			impl.NewBatchService,
		),
	)
}

func runBatch(params runBatchParams) {
	go func() {
		if err := params.Batch.Run(params.Ctx); err != nil {
			params.Logger.Error("Batch run failed", slog.Any("error", err))
			os.Exit(1)
		}
		if err := params.Shutdowner.Shutdown(); err != nil {
			params.Logger.Error("Failed to shut down", slog.Any("error", err))
		}
	}()
}
