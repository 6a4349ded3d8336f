package impl

import (
	"context"
	"log/slog"
	"math/rand/v2"
	"time"

	"soulclaim/config"
	"soulclaim/internal/domain/repository"
	"soulclaim/internal/domain/service"
	"soulclaim/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// batchService implements the BatchUsecase interface: one ordered pass over
// the key list, one registration run per identity, pacing delay in between.
type batchService struct {
	cfg          *config.Config
	credentials  repository.CredentialRepository
	domains      repository.DomainPoolRepository
	signers      service.SignerFactory
	registration usecase.RegistrationUsecase
	logger       *slog.Logger
}

// NewBatchService is the constructor for batchService.
func NewBatchService(
	cfg *config.Config,
	credentials repository.CredentialRepository,
	domains repository.DomainPoolRepository,
	signers service.SignerFactory,
	registration usecase.RegistrationUsecase,
	logger *slog.Logger,
) usecase.BatchUsecase {
	return &batchService{
		cfg:          cfg,
		credentials:  credentials,
		domains:      domains,
		signers:      signers,
		registration: registration,
		logger:       logger,
	}
}

// Run processes every configured identity strictly in input order. Loader
// failures abort the batch; everything per-identity is logged and skipped.
func (srv *batchService) Run(ctx context.Context) error {
	keys, err := srv.credentials.LoadKeys(ctx)
	if err != nil {
		return errors.Wrap(err, "load private keys")
	}
	if len(keys) == 0 {
		return errors.New("no usable private keys loaded")
	}

	pool, err := srv.domains.LoadDomains(ctx)
	if err != nil {
		return errors.Wrap(err, "load domain pool")
	}
	if len(pool) == 0 {
		return errors.New("domain pool is empty")
	}

	srv.logger.Info("Starting registration batch",
		slog.Int("identities", len(keys)),
		slog.Int("pool_size", len(pool)))

	for i, key := range keys {
		log := srv.logger.With(
			slog.String("run_id", uuid.NewString()),
			slog.Int("index", i))

		signer, err := srv.signers.FromPrivateKey(key)
		if err != nil {
			log.Error("Invalid private key, skipping identity", slog.Any("error", err))

			continue
		}

		output, err := srv.registration.Register(ctx, usecase.RegisterInput{
			Signer: signer,
			Domain: srv.candidateFor(i, pool),
			Pool:   pool,
			Years:  srv.randomYears(),
		})
		if err != nil {
			// Only persisted-state failures reach here; they poison
			// every later run, so the batch stops.
			return errors.Wrap(err, "registration run")
		}

		log.Info("Run finished",
			slog.String("address", signer.Address().Hex()),
			slog.String("status", string(output.Outcome.Status)),
			slog.String("code", output.Outcome.Code),
			slog.String("result", output.Outcome.Message))

		if i < len(keys)-1 {
			select {
			case <-ctx.Done():
				return errors.WithStack(ctx.Err())
			case <-time.After(srv.cfg.Registration.PacingDelay):
			}
		}
	}

	return nil
}

// candidateFor pairs the i-th identity with the i-th pool entry, falling back
// to a random pick when the pool is shorter than the key list.
func (srv *batchService) candidateFor(i int, pool []string) string {
	if i < len(pool) {
		return pool[i]
	}

	return pool[rand.IntN(len(pool))]
}

func (srv *batchService) randomYears() int {
	span := srv.cfg.Registration.YearsMax - srv.cfg.Registration.YearsMin

	return srv.cfg.Registration.YearsMin + rand.IntN(span+1)
}
