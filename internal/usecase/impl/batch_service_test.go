package impl

import (
	"context"
	"testing"
	"time"

	"soulclaim/internal/domain/entity"
	mockRepo "soulclaim/internal/mocks/repository"
	mockService "soulclaim/internal/mocks/service"
	mockUsecase "soulclaim/internal/mocks/usecase"
	"soulclaim/internal/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type batchFixtures struct {
	service      usecase.BatchUsecase
	credentials  *mockRepo.MockCredentialRepository
	domains      *mockRepo.MockDomainPoolRepository
	signers      *mockService.MockSignerFactory
	registration *mockUsecase.MockRegistrationUsecase
}

func createTestBatchService(t *testing.T) batchFixtures {
	cfg := newTestConfig()
	credentials := mockRepo.NewMockCredentialRepository(t)
	domains := mockRepo.NewMockDomainPoolRepository(t)
	signers := mockService.NewMockSignerFactory(t)
	registration := mockUsecase.NewMockRegistrationUsecase(t)

	return batchFixtures{
		service:      NewBatchService(cfg, credentials, domains, signers, registration, newDiscardLogger()),
		credentials:  credentials,
		domains:      domains,
		signers:      signers,
		registration: registration,
	}
}

func newBatchSigner(t *testing.T) *mockService.MockSigner {
	signer := mockService.NewMockSigner(t)
	signer.EXPECT().Address().Return(testAddress).Maybe()

	return signer
}

func TestBatchService_Run_ProcessesKeysInOrder(t *testing.T) {
	fx := createTestBatchService(t)
	ctx := context.Background()

	fx.credentials.EXPECT().LoadKeys(ctx).Return([]string{"key-a", "key-b"}, nil)
	fx.domains.EXPECT().LoadDomains(ctx).Return([]string{"alpha", "beta"}, nil)

	signer := newBatchSigner(t)
	fx.signers.EXPECT().FromPrivateKey("key-a").Return(signer, nil)
	fx.signers.EXPECT().FromPrivateKey("key-b").Return(signer, nil)

	var seen []usecase.RegisterInput
	fx.registration.EXPECT().
		Register(ctx, mock.AnythingOfType("usecase.RegisterInput")).
		Run(func(_ context.Context, input usecase.RegisterInput) {
			seen = append(seen, input)
		}).
		Return(&usecase.RegisterOutput{Outcome: entity.Outcome{Status: entity.StatusRegistered}}, nil)

	start := time.Now()
	require.NoError(t, fx.service.Run(ctx))
	require.Len(t, seen, 2)

	// The i-th identity is paired with the i-th pool entry.
	assert.Equal(t, "alpha", seen[0].Domain)
	assert.Equal(t, "beta", seen[1].Domain)
	for _, input := range seen {
		assert.GreaterOrEqual(t, input.Years, 2)
		assert.LessOrEqual(t, input.Years, 6)
		assert.Equal(t, []string{"alpha", "beta"}, input.Pool)
	}

	// One pacing delay between the two runs, none after the last.
	assert.GreaterOrEqual(t, time.Since(start), time.Millisecond)
}

func TestBatchService_Run_InvalidKeySkipsIdentity(t *testing.T) {
	fx := createTestBatchService(t)
	ctx := context.Background()

	fx.credentials.EXPECT().LoadKeys(ctx).Return([]string{"bad-key", "good-key"}, nil)
	fx.domains.EXPECT().LoadDomains(ctx).Return([]string{"alpha"}, nil)

	fx.signers.EXPECT().FromPrivateKey("bad-key").Return(nil, errors.New("invalid hex"))
	signer := newBatchSigner(t)
	fx.signers.EXPECT().FromPrivateKey("good-key").Return(signer, nil)

	fx.registration.EXPECT().
		Register(ctx, mock.AnythingOfType("usecase.RegisterInput")).
		Return(&usecase.RegisterOutput{Outcome: entity.Outcome{Status: entity.StatusFailed}}, nil).
		Once()

	require.NoError(t, fx.service.Run(ctx))
}

func TestBatchService_Run_FailedRunDoesNotStopBatch(t *testing.T) {
	fx := createTestBatchService(t)
	ctx := context.Background()

	fx.credentials.EXPECT().LoadKeys(ctx).Return([]string{"key-a", "key-b"}, nil)
	fx.domains.EXPECT().LoadDomains(ctx).Return([]string{"alpha"}, nil)

	signer := newBatchSigner(t)
	fx.signers.EXPECT().FromPrivateKey(mock.AnythingOfType("string")).Return(signer, nil)

	fx.registration.EXPECT().
		Register(ctx, mock.AnythingOfType("usecase.RegisterInput")).
		Return(&usecase.RegisterOutput{Outcome: entity.Outcome{
			Status: entity.StatusFailed,
			Code:   "AUTHENTICATION_FAILED",
		}}, nil).
		Twice()

	require.NoError(t, fx.service.Run(ctx))
}

func TestBatchService_Run_RegistrationErrorAbortsBatch(t *testing.T) {
	fx := createTestBatchService(t)
	ctx := context.Background()

	fx.credentials.EXPECT().LoadKeys(ctx).Return([]string{"key-a", "key-b"}, nil)
	fx.domains.EXPECT().LoadDomains(ctx).Return([]string{"alpha"}, nil)

	signer := newBatchSigner(t)
	fx.signers.EXPECT().FromPrivateKey("key-a").Return(signer, nil)

	// A hard error from a run poisons the batch; the second key is never
	// touched.
	fx.registration.EXPECT().
		Register(ctx, mock.AnythingOfType("usecase.RegisterInput")).
		Return(nil, errors.New("persist session cookie: disk full")).
		Once()

	err := fx.service.Run(ctx)
	require.Error(t, err)
	fx.signers.AssertNotCalled(t, "FromPrivateKey", "key-b")
}

func TestBatchService_Run_EmptyInputs(t *testing.T) {
	t.Run("no keys", func(t *testing.T) {
		fx := createTestBatchService(t)
		ctx := context.Background()

		fx.credentials.EXPECT().LoadKeys(ctx).Return(nil, nil)

		require.Error(t, fx.service.Run(ctx))
	})

	t.Run("no domains", func(t *testing.T) {
		fx := createTestBatchService(t)
		ctx := context.Background()

		fx.credentials.EXPECT().LoadKeys(ctx).Return([]string{"key-a"}, nil)
		fx.domains.EXPECT().LoadDomains(ctx).Return(nil, nil)

		require.Error(t, fx.service.Run(ctx))
	})

	t.Run("unreadable keys", func(t *testing.T) {
		fx := createTestBatchService(t)
		ctx := context.Background()

		fx.credentials.EXPECT().LoadKeys(ctx).Return(nil, errors.New("open keys.txt: no such file"))

		require.Error(t, fx.service.Run(ctx))
	})
}
