package repo

import (
	"github.com/adrewards/backend/internal/pg"
	adviewrepo "github.com/adrewards/backend/internal/repo/adview-repo"
	auditrepo "github.com/adrewards/backend/internal/repo/audit-repo"
	poolrepo "github.com/adrewards/backend/internal/repo/pool-repo"
	sessionrepo "github.com/adrewards/backend/internal/repo/session-repo"
	transactionrepo "github.com/adrewards/backend/internal/repo/transaction-repo"
	walletrepo "github.com/adrewards/backend/internal/repo/wallet-repo"
	withdrawalrepo "github.com/adrewards/backend/internal/repo/withdrawal-repo"
)

type Repositories struct {
	WalletRepo      *walletrepo.Repository
	TransactionRepo *transactionrepo.Repository
	AdViewRepo      *adviewrepo.Repository
	PoolRepo        *poolrepo.Repository
	SessionRepo     *sessionrepo.Repository
	WithdrawalRepo  *withdrawalrepo.Repository
	AuditRepo       *auditrepo.Repository
}

func New(conn pg.Database, txManager pg.TXManager) *Repositories {
	return &Repositories{
		WalletRepo:      walletrepo.New(conn, txManager),
		TransactionRepo: transactionrepo.New(conn),
		AdViewRepo:      adviewrepo.New(conn, txManager),
		PoolRepo:        poolrepo.New(conn),
		SessionRepo:     sessionrepo.New(conn),
		WithdrawalRepo:  withdrawalrepo.New(conn),
		AuditRepo:       auditrepo.New(conn),
	}
}
