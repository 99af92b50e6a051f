package postgres

import (
	"context"

	"github.com/jmoiron/sqlx"

	"github.com/jwalitptl/hospital-api/internal/model"
	"github.com/jwalitptl/hospital-api/internal/repository"
)

type userRepository struct {
	table[model.User]
}

func NewUserRepository(base BaseRepository) repository.UserRepository {
	return &userRepository{
		table: newTable[model.User](base, "users",
			"id", "name", "email", "role", "password_hash", "created_at"),
	}
}

// Create checks for an existing email before inserting; the unique index
// still catches a concurrent duplicate.
func (r *userRepository) Create(ctx context.Context, user *model.User) error {
	return r.WithTx(ctx, r.op("create"), func(tx *sqlx.Tx) error {
		var exists bool
		if err := tx.GetContext(ctx, &exists, `SELECT EXISTS(SELECT 1 FROM users WHERE email = $1)`, user.Email); err != nil {
			return err
		}
		if exists {
			return repository.ErrDuplicate
		}
		return r.insertTx(ctx, tx, user)
	})
}

func (r *userRepository) GetByEmail(ctx context.Context, email string) (*model.User, error) {
	var user model.User
	err := r.WithTx(ctx, r.op("get_by_email"), func(tx *sqlx.Tx) error {
		return tx.GetContext(ctx, &user, r.selectSQL()+" WHERE email = $1", email)
	})
	if err != nil {
		return nil, err
	}
	return &user, nil
}
