package repo

import (
	"testing"

	pgxmock "github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"

	"github.com/adrewards/backend/internal/pg"
	adviewrepo "github.com/adrewards/backend/internal/repo/adview-repo"
	auditrepo "github.com/adrewards/backend/internal/repo/audit-repo"
	poolrepo "github.com/adrewards/backend/internal/repo/pool-repo"
	sessionrepo "github.com/adrewards/backend/internal/repo/session-repo"
	transactionrepo "github.com/adrewards/backend/internal/repo/transaction-repo"
	walletrepo "github.com/adrewards/backend/internal/repo/wallet-repo"
	withdrawalrepo "github.com/adrewards/backend/internal/repo/withdrawal-repo"
)

func NewMock(t *testing.T) (*Repositories, pgxmock.PgxPoolIface) {
	ctrl := gomock.NewController(t)
	mockDB, err := pgxmock.NewPool()
	mockTxManager := pg.NewMockTXManager(ctrl)
	assert.NoError(t, err)
	repo := New(mockDB, mockTxManager)
	defer mockDB.Close()

	return repo, mockDB
}

func TestNew(t *testing.T) {
	repo, mock := NewMock(t)

	assert.NotNil(t, repo.WalletRepo)
	assert.NotNil(t, repo.TransactionRepo)
	assert.NotNil(t, repo.AdViewRepo)
	assert.NotNil(t, repo.PoolRepo)
	assert.NotNil(t, repo.SessionRepo)
	assert.NotNil(t, repo.WithdrawalRepo)
	assert.NotNil(t, repo.AuditRepo)

	assert.IsType(t, &walletrepo.Repository{}, repo.WalletRepo)
	assert.IsType(t, &transactionrepo.Repository{}, repo.TransactionRepo)
	assert.IsType(t, &adviewrepo.Repository{}, repo.AdViewRepo)
	assert.IsType(t, &poolrepo.Repository{}, repo.PoolRepo)
	assert.IsType(t, &sessionrepo.Repository{}, repo.SessionRepo)
	assert.IsType(t, &withdrawalrepo.Repository{}, repo.WithdrawalRepo)
	assert.IsType(t, &auditrepo.Repository{}, repo.AuditRepo)

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("there were unmet expectations: %v", err)
	}
}
