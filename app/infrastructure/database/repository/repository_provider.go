package repository

import (
	"github.com/google/wire"
	"menlo.ai/state-user-api/app/infrastructure/database/repository/stateuserrepo"
	"menlo.ai/state-user-api/app/infrastructure/database/repository/transaction"
)

var RepositoryProvider = wire.NewSet(
	stateuserrepo.NewStateUserGormRepository,
	transaction.NewDatabase,
)
