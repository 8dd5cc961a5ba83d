package pgsql

import (
	"context"

	"github.com/SscSPs/personal_finance_app/internal/core/domain"
	portsrepo "github.com/SscSPs/personal_finance_app/internal/core/ports/repositories"
	"github.com/SscSPs/personal_finance_app/internal/models"
	"github.com/SscSPs/personal_finance_app/internal/utils/mapping"
	"github.com/jackc/pgx/v5/pgxpool"
)

const userColumns = `id, name, email, created_at, updated_at`

type PgxUserRepository struct {
	BaseRepository
}

func newPgxUserRepository(pool *pgxpool.Pool) portsrepo.UserRepositoryFacade {
	return &PgxUserRepository{BaseRepository: BaseRepository{Pool: pool}}
}

// Ensure PgxUserRepository implements portsrepo.UserRepositoryFacade
var _ portsrepo.UserRepositoryFacade = (*PgxUserRepository)(nil)

func (r *PgxUserRepository) GetOneByID(ctx context.Context, userID string) (*domain.UserDTO, error) {
	m, err := collectOne[models.User](ctx, r.Pool, `SELECT `+userColumns+` FROM users WHERE id = $1`, userID)
	if err != nil {
		return nil, err
	}
	d := mapping.ToDomainUser(*m)
	return &d, nil
}

// UpsertOne inserts the user or refreshes name and email of an existing one.
// created_at keeps its original value.
func (r *PgxUserRepository) UpsertOne(ctx context.Context, user domain.UserDTO) (domain.UserDTO, error) {
	m := mapping.ToModelUser(user)
	saved, err := collectOne[models.User](ctx, r.Pool, `
		INSERT INTO users (id, name, email, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (id) DO UPDATE SET
			name = EXCLUDED.name,
			email = EXCLUDED.email,
			updated_at = EXCLUDED.updated_at
		RETURNING `+userColumns,
		m.ID, m.Name, m.Email, m.CreatedAt, m.UpdatedAt)
	if err != nil {
		return domain.UserDTO{}, err
	}
	return mapping.ToDomainUser(*saved), nil
}
