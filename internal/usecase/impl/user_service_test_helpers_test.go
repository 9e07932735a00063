package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"vitae/internal/domain/repository"
	mockRepo "vitae/internal/mocks/repository"

	"github.com/stretchr/testify/mock"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// expectTransaction makes txManager run the callback against a factory handing out txRepo,
// and return whatever the callback returns.
func expectTransaction(t *testing.T, txManager *mockRepo.MockTransactionManager, txRepo repository.UserRepository) {
	t.Helper()

	txManager.EXPECT().
		Execute(mock.Anything, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(_ context.Context, fn func(repository.RepositoryFactory) error) error {
			factory := mockRepo.NewMockRepositoryFactory(t)
			factory.EXPECT().UserRepo().Return(txRepo).Maybe()

			return fn(factory)
		}).
		Once()
}

func strPtr(s string) *string {
	return &s
}
