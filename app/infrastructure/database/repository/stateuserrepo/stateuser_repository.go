package stateuserrepo

import (
	"context"
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"menlo.ai/state-user-api/app/domain/stateuser"
	"menlo.ai/state-user-api/app/infrastructure/database/dbschema"
	"menlo.ai/state-user-api/app/infrastructure/database/repository/transaction"
)

type StateUserGormRepository struct {
	db *transaction.Database
}

var _ stateuser.StateUserRepository = (*StateUserGormRepository)(nil)

func NewStateUserGormRepository(db *transaction.Database) stateuser.StateUserRepository {
	return &StateUserGormRepository{
		db: db,
	}
}

func (r *StateUserGormRepository) FindByAddress(ctx context.Context, address string) (*stateuser.StateUser, error) {
	var model dbschema.User
	err := r.db.GetTx(ctx).
		Select("twitter_pfp_url", "twitter_username").
		Where("address = ?", address).
		Take(&model).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, stateuser.ErrUserNotFound
	}
	if err != nil {
		return nil, err
	}
	model.Address = address
	return model.EtoD(), nil
}

// Upsert inserts the user or refreshes its profile columns when the address exists.
func (r *StateUserGormRepository) Upsert(ctx context.Context, u *stateuser.StateUser) error {
	model := dbschema.NewSchemaUser(u)
	return r.db.GetTx(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "address"}},
			DoUpdates: clause.AssignmentColumns([]string{"twitter_pfp_url", "twitter_username", "updated_at"}),
		}).
		Create(model).Error
}
