// Package impl contains the application-specific business rules implementations.
package impl

import (
	"context"
	"fmt"
	"log/slog"
	"math/big"
	"math/rand/v2"

	"soulclaim/config"
	"soulclaim/internal/domain/entity"
	domainerrors "soulclaim/internal/domain/errors"
	"soulclaim/internal/domain/repository"
	"soulclaim/internal/domain/service"
	"soulclaim/internal/errors"
	"soulclaim/internal/usecase"
)

// registrationService implements the RegistrationUsecase interface: the
// single-identity, single-pass state machine from authentication through
// purchase to two-factor verification.
type registrationService struct {
	cfg      *config.Config
	registry service.NameRegistry
	store    service.SoulStore
	wallet   service.WalletReader
	gateway  service.SessionGateway
	sessions repository.SessionStore
	prompter service.CodePrompter
	logger   *slog.Logger

	minBalanceWei *big.Int
}

// NewRegistrationService is the constructor for registrationService.
func NewRegistrationService(
	cfg *config.Config,
	registry service.NameRegistry,
	store service.SoulStore,
	wallet service.WalletReader,
	gateway service.SessionGateway,
	sessions repository.SessionStore,
	prompter service.CodePrompter,
	logger *slog.Logger,
) (usecase.RegistrationUsecase, error) {
	minBalance, err := weiFromEther(cfg.Registration.MinWalletBalanceEther)
	if err != nil {
		return nil, errors.Wrap(err, "parse minWalletBalanceEther")
	}

	return &registrationService{
		cfg:           cfg,
		registry:      registry,
		store:         store,
		wallet:        wallet,
		gateway:       gateway,
		sessions:      sessions,
		prompter:      prompter,
		logger:        logger,
		minBalanceWei: minBalance,
	}, nil
}

// Register runs the registration state machine for one identity. Expected
// failures terminate the run with an Outcome and a nil error; a non-nil error
// means persisted state could not be written and the batch must stop.
func (srv *registrationService) Register(ctx context.Context, input usecase.RegisterInput) (*usecase.RegisterOutput, error) {
	address := input.Signer.Address().Hex()
	log := srv.logger.With(slog.String("address", address))

	cookie, cached := srv.sessions.Get(address)
	if !cached && srv.cfg.Registration.SkipUnsaved {
		return failedOutput(entity.StatusSkipped, domainerrors.ErrSkipUnsaved), nil
	}

	balance, err := srv.wallet.Balance(ctx, input.Signer.Address())
	if err != nil {
		log.Warn("Failed to read wallet balance", slog.Any("error", err))

		return failedOutput(entity.StatusFailed, domainerrors.ErrWalletRead), nil
	}

	log.Info("Registering soul name",
		slog.String("balance", formatEther(balance)),
		slog.String("domain", input.Domain),
		slog.Int("years", input.Years))

	// AUTHENTICATING: log in only when no cached session exists; the cookie
	// is persisted before anything else uses it.
	if !cached {
		cookie, err = srv.login(ctx, input.Signer)
		if err != nil {
			log.Warn("Login failed", slog.Any("error", err))

			return failedOutput(entity.StatusFailed, domainerrors.ErrAuthentication), nil
		}
		if err := srv.sessions.Put(ctx, address, cookie); err != nil {
			return nil, errors.Wrap(err, "persist session cookie")
		}
	} else {
		log.Info("Using saved session cookie")
	}

	// The check call is the only place session expiry surfaces; the store
	// never renews a token on its own.
	if err := srv.gateway.CheckSession(ctx, cookie); err != nil {
		log.Warn("Session check failed", slog.Any("error", err))

		return failedOutput(entity.StatusFailed, domainerrors.ErrAuthentication), nil
	}
	log.Info("Account login and check complete")

	owned := srv.registry.OwnedNames(ctx, input.Signer.Address())

	var record *entity.TransactionRecord
	switch {
	case owned < 0:
		return failedOutput(entity.StatusFailed, domainerrors.ErrBalanceUnknown), nil
	case owned >= srv.cfg.Registration.MaxDomains:
		log.Info("Max domains for account limit reached", slog.Int("owned", owned))
	default:
		var runErr *domainerrors.RunError
		record, runErr = srv.purchase(ctx, log, input, cookie, balance, owned)
		if runErr != nil {
			return failedOutput(entity.StatusFailed, runErr), nil
		}
	}

	// IDENTITY_CHECK: re-query after the purchase phase; an identity may
	// also predate this run entirely.
	identity, ok := srv.registry.IdentityOf(ctx, input.Signer.Address())
	if !ok {
		return failedOutput(entity.StatusFailed, domainerrors.ErrNoIdentity), nil
	}
	log.Info("Identity resolved", slog.String("identity", identity.String()))

	if srv.cfg.Registration.Maintenance {
		return &usecase.RegisterOutput{
			Outcome: entity.Outcome{
				Status:  entity.StatusMaintenance,
				Code:    "MAINTENANCE",
				Message: "Maintenance mode on, code not needed",
			},
			Transaction: record,
		}, nil
	}

	outcome := srv.verify(ctx, log, input.Signer, cookie, identity)

	return &usecase.RegisterOutput{Outcome: outcome, Transaction: record}, nil
}

// login performs the challenge/response transition. It returns the session
// cookie captured from the challenge response; on any failure the caller gets
// no token and must not assume partial progress.
func (srv *registrationService) login(ctx context.Context, signer service.Signer) (string, error) {
	challenge, err := srv.gateway.GetChallenge(ctx)
	if err != nil {
		return "", errors.Wrap(err, "get login challenge")
	}

	message := entity.LoginMessage(challenge.Expires, challenge.Challenge)
	signature, err := signer.SignMessage([]byte(message))
	if err != nil {
		return "", errors.Wrap(err, "sign login message")
	}

	if err := srv.gateway.CheckSignature(ctx, signer.Address().Hex(), signature, challenge.Cookie); err != nil {
		return "", errors.Wrap(err, "check signature")
	}

	return challenge.Cookie, nil
}

// purchase runs the gated purchase phase. A returned RunError terminates the
// run; a (nil, nil) result means the purchase step failed or was abandoned
// and the run continues with the identity check.
func (srv *registrationService) purchase(
	ctx context.Context,
	log *slog.Logger,
	input usecase.RegisterInput,
	cookie string,
	balance *big.Int,
	owned int,
) (*entity.TransactionRecord, *domainerrors.RunError) {
	if balance.Cmp(srv.minBalanceWei) < 0 {
		return nil, domainerrors.NewRunError(
			domainerrors.ErrInsufficientFunds.Code(),
			fmt.Sprintf("Wallet balance < %s, can't mint. Use faucets like https://goerlifaucet.com/ or https://faucets.chain.link/",
				srv.cfg.Registration.MinWalletBalanceEther),
		)
	}

	name, err := srv.pickAvailable(ctx, log, input.Domain, input.Pool)
	if err != nil {
		var runErr *domainerrors.RunError
		if errors.As(err, &runErr) {
			return nil, runErr
		}
		log.Warn("Availability resolution failed, skipping purchase", slog.Any("error", err))

		return nil, nil
	}
	log.Info("Domain available, minting", slog.String("domain", name))

	metadataRef, err := srv.gateway.StoreMetadata(ctx, cookie, name+entity.MetadataSuffix)
	if err != nil {
		log.Warn("Metadata store failed, skipping purchase", slog.Any("error", err))

		return nil, nil
	}

	quote, err := srv.store.Quote(ctx, name, input.Years)
	if err != nil {
		log.Warn("Price quote failed, skipping purchase", slog.Any("error", err))

		return nil, nil
	}
	log.Info("Quoted price", slog.String("price", formatEther(quote.PriceWei)))

	variant := entity.VariantNameOnly
	if owned == 0 {
		variant = entity.VariantIdentityAndName
	}

	record, err := srv.store.Purchase(ctx, input.Signer, quote, metadataRef, variant)
	if err != nil {
		log.Warn("No transaction produced", slog.Any("error", err))

		return nil, nil
	}
	log.Info("Purchase transaction submitted",
		slog.String("hash", record.Hash.Hex()),
		slog.String("gas_price", record.GasPrice.String()))

	// CONFIRMING: a mining failure is logged but does not abort the
	// remaining steps.
	if err := srv.store.WaitMined(ctx, record); err != nil {
		log.Warn("Transaction confirmation failed", slog.Any("error", err))
	}

	return record, nil
}

// pickAvailable walks the candidates: the starting domain first, then one
// shuffled pass over the pool with duplicates skipped. The availability check
// that selects the winner is the last call before submission, so no stale
// result is ever reused. Exhaustion returns ErrPoolExhausted.
func (srv *registrationService) pickAvailable(ctx context.Context, log *slog.Logger, start string, pool []string) (string, error) {
	tried := make(map[string]bool, len(pool)+1)

	candidates := make([]string, 0, len(pool)+1)
	if start != "" {
		candidates = append(candidates, start)
	}
	shuffled := append([]string(nil), pool...)
	rand.Shuffle(len(shuffled), func(i, j int) {
		shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
	})
	candidates = append(candidates, shuffled...)

	for _, candidate := range candidates {
		if candidate == "" || tried[candidate] {
			continue
		}
		tried[candidate] = true

		log.Info("Checking availability", slog.String("domain", candidate))
		available, err := srv.registry.IsAvailable(ctx, candidate)
		if err != nil {
			return "", errors.Wrapf(err, "check availability of %q", candidate)
		}
		if available {
			return candidate, nil
		}
	}

	return "", domainerrors.ErrPoolExhausted
}

// verify runs the two-factor exchange and maps its result to the terminal
// outcome.
func (srv *registrationService) verify(
	ctx context.Context,
	log *slog.Logger,
	signer service.Signer,
	cookie string,
	identity *big.Int,
) entity.Outcome {
	phone := srv.cfg.Registration.PhoneNumber

	ticket, err := srv.gateway.GenerateCode(ctx, cookie, phone)
	if err != nil {
		log.Warn("Code generation request failed", slog.Any("error", err))

		return failedOutcome(domainerrors.ErrCodeGeneration)
	}
	if !ticket.Success {
		return entity.Outcome{
			Status:  entity.StatusFailed,
			Code:    domainerrors.ErrCodeGeneration.Code(),
			Message: fmt.Sprintf("Code generation error: %s", ticket.Message),
		}
	}

	log.Info("Code sent, waiting for operator input")
	code, err := srv.prompter.PromptCode(ctx)
	if err != nil {
		log.Warn("Code prompt failed", slog.Any("error", err))

		return failedOutcome(domainerrors.ErrCodePrompt)
	}

	message := entity.AttestationMessage(identity.String(), phone, code)
	signature, err := signer.SignMessage([]byte(message))
	if err != nil {
		log.Warn("Attestation signing failed", slog.Any("error", err))

		return failedOutcome(domainerrors.ErrVerificationRejected)
	}

	err = srv.gateway.MintWithCode(ctx, cookie, service.MintRequest{
		Address:     signer.Address().Hex(),
		PhoneNumber: phone,
		Code:        code,
		Signature:   signature,
	})
	if err != nil {
		log.Warn("2FA mint rejected", slog.Any("error", err))

		return failedOutcome(domainerrors.ErrVerificationRejected)
	}

	return entity.Outcome{
		Status:  entity.StatusRegistered,
		Code:    "REGISTERED",
		Message: "Hurray! 🎉 You are now registered for the Masa Token Airdrop!",
	}
}

func failedOutcome(runErr *domainerrors.RunError) entity.Outcome {
	return entity.Outcome{
		Status:  entity.StatusFailed,
		Code:    runErr.Code(),
		Message: runErr.Message(),
	}
}

func failedOutput(status entity.RunStatus, runErr *domainerrors.RunError) *usecase.RegisterOutput {
	return &usecase.RegisterOutput{
		Outcome: entity.Outcome{
			Status:  status,
			Code:    runErr.Code(),
			Message: runErr.Message(),
		},
	}
}
