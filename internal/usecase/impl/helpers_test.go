package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"ecommerce/internal/domain/repository"
	mockRepo "ecommerce/internal/mocks/repository"

	"github.com/stretchr/testify/mock"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// expectTransaction runs the transaction body against factory and returns its result.
func expectTransaction(t *testing.T, txManager *mockRepo.MockTransactionManager, factory repository.RepositoryFactory) {
	t.Helper()

	txManager.EXPECT().
		Execute(mock.Anything, mock.Anything).
		Return(func(_ context.Context, fn func(repository.RepositoryFactory) error) error {
			return fn(factory)
		}).
		Once()
}
