package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/SscSPs/personal_finance_app/internal/apperrors"
	"github.com/SscSPs/personal_finance_app/internal/core/domain"
	portsrepo "github.com/SscSPs/personal_finance_app/internal/core/ports/repositories"
	"github.com/SscSPs/personal_finance_app/internal/models"
	"github.com/SscSPs/personal_finance_app/internal/utils/mapping"
	"github.com/SscSPs/personal_finance_app/internal/utils/pagination"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
)

const potColumns = `id, user_id, name, color_tag, target, total_saved, created_at, updated_at`

var potSortColumns = pagination.Columns{Date: "created_at", Name: "name", Amount: "total_saved", ID: "id"}

type PgxPotRepository struct {
	BaseRepository
}

func newPgxPotRepository(pool *pgxpool.Pool) portsrepo.PotRepositoryFacade {
	return &PgxPotRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.PotRepositoryFacade = (*PgxPotRepository)(nil)

func (r *PgxPotRepository) GetOneByID(ctx context.Context, userID string, potID string) (*domain.PotDTO, error) {
	m, err := collectOne[models.Pot](ctx, r.Pool,
		`SELECT `+potColumns+` FROM pots WHERE id = $1 AND user_id = $2`, potID, userID)
	if err != nil {
		return nil, err
	}
	d := mapping.ToDomainPot(*m)
	return &d, nil
}

func (r *PgxPotRepository) GetOneByName(ctx context.Context, userID string, name string) (*domain.PotDTO, error) {
	m, err := collectOne[models.Pot](ctx, r.Pool,
		`SELECT `+potColumns+` FROM pots WHERE user_id = $1 AND name = $2`, userID, name)
	if err != nil {
		return nil, err
	}
	d := mapping.ToDomainPot(*m)
	return &d, nil
}

func (r *PgxPotRepository) GetPaginated(ctx context.Context, userID string, params domain.PaginationParams) (domain.Paginated[domain.PotDTO], error) {
	filter := pagination.NewFilter("user_id", userID).AddSearch("name", params.Search)

	total, err := count(ctx, r.Pool, `SELECT COUNT(*) FROM pots`+filter.Where(), filter.Args()...)
	if err != nil {
		return domain.Paginated[domain.PotDTO]{}, err
	}

	query := `SELECT ` + potColumns + ` FROM pots` + filter.Where() + pagination.OrderBy(params.SortBy, potSortColumns)
	query += filter.Window(params)
	ms, err := collectRows[models.Pot](ctx, r.Pool, query, filter.Args()...)
	if err != nil {
		return domain.Paginated[domain.PotDTO]{}, err
	}
	return domain.NewPaginated(mapping.ToDomainPotSlice(ms), total, params), nil
}

func (r *PgxPotRepository) GetSummary(ctx context.Context, userID string, params domain.SummaryParams) (domain.PotsSummary, error) {
	var totalSaved decimal.Decimal
	err := r.Pool.QueryRow(ctx,
		`SELECT COALESCE(SUM(total_saved), 0) FROM pots WHERE user_id = $1`, userID).Scan(&totalSaved)
	if err != nil {
		return domain.PotsSummary{}, apperrors.NewDatasourceError("failed to sum pots", err)
	}

	ms, err := collectRows[models.Pot](ctx, r.Pool,
		`SELECT `+potColumns+` FROM pots WHERE user_id = $1 ORDER BY created_at DESC, id ASC LIMIT $2`,
		userID, params.MaxItemsToShow)
	if err != nil {
		return domain.PotsSummary{}, err
	}
	return domain.PotsSummary{TotalSaved: totalSaved, Pots: mapping.ToDomainPotSlice(ms)}, nil
}

func (r *PgxPotRepository) GetUsedColors(ctx context.Context, userID string) ([]string, error) {
	return usedColors(ctx, r.Pool, "pots", userID)
}

func (r *PgxPotRepository) CreateOne(ctx context.Context, userID string, pot domain.PotDTO) (domain.PotDTO, error) {
	m := mapping.ToModelPot(userID, pot)
	saved, err := collectOne[models.Pot](ctx, r.Pool, `
		INSERT INTO pots (id, user_id, name, color_tag, target, total_saved, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING `+potColumns,
		m.ID, m.UserID, m.Name, m.ColorTag, m.Target, m.TotalSaved, m.CreatedAt, m.UpdatedAt)
	if err != nil {
		return domain.PotDTO{}, err
	}
	return mapping.ToDomainPot(*saved), nil
}

// UpdateOne writes the editable fields. The balance is only changed through
// AddToTotalSaved and WithdrawMoney.
func (r *PgxPotRepository) UpdateOne(ctx context.Context, userID string, pot domain.PotDTO) (domain.PotDTO, error) {
	m := mapping.ToModelPot(userID, pot)
	saved, err := collectOne[models.Pot](ctx, r.Pool, `
		UPDATE pots SET name = $3, color_tag = $4, target = $5, updated_at = $6
		WHERE id = $1 AND user_id = $2
		RETURNING `+potColumns,
		m.ID, m.UserID, m.Name, m.ColorTag, m.Target, m.UpdatedAt)
	if err != nil {
		return domain.PotDTO{}, notFoundAs(err, "Pot not found")
	}
	return mapping.ToDomainPot(*saved), nil
}

func (r *PgxPotRepository) DeleteOne(ctx context.Context, userID string, potID string) error {
	return deleteOwned(ctx, r.Pool, "pots", potID, userID, "Pot not found")
}

// AddToTotalSaved deposits amount in a single guarded UPDATE so concurrent
// deposits cannot push the balance over the limit.
func (r *PgxPotRepository) AddToTotalSaved(ctx context.Context, userID string, potID string, amount decimal.Decimal) (domain.PotDTO, error) {
	saved, err := collectOne[models.Pot](ctx, r.Pool, `
		UPDATE pots SET total_saved = total_saved + $3, updated_at = NOW()
		WHERE id = $1 AND user_id = $2 AND total_saved + $3 <= $4
		RETURNING `+potColumns,
		potID, userID, amount, domain.MaxMoneyAmount)
	if err != nil {
		return domain.PotDTO{}, r.balanceError(ctx, err, userID, potID,
			fmt.Sprintf("Total saved cannot exceed %s", domain.MaxMoneyAmount.String()))
	}
	return mapping.ToDomainPot(*saved), nil
}

// WithdrawMoney takes amount out in a single guarded UPDATE; the balance
// never goes negative.
func (r *PgxPotRepository) WithdrawMoney(ctx context.Context, userID string, potID string, amount decimal.Decimal) (domain.PotDTO, error) {
	saved, err := collectOne[models.Pot](ctx, r.Pool, `
		UPDATE pots SET total_saved = total_saved - $3, updated_at = NOW()
		WHERE id = $1 AND user_id = $2 AND total_saved >= $3
		RETURNING `+potColumns,
		potID, userID, amount)
	if err != nil {
		return domain.PotDTO{}, r.balanceError(ctx, err, userID, potID, "Insufficient funds in pot")
	}
	return mapping.ToDomainPot(*saved), nil
}

// balanceError tells a missing pot apart from a failed balance guard.
func (r *PgxPotRepository) balanceError(ctx context.Context, err error, userID, potID, guardMsg string) error {
	if !errors.Is(err, apperrors.ErrNotFound) {
		return err
	}
	exists, err := count(ctx, r.Pool, `SELECT COUNT(*) FROM pots WHERE id = $1 AND user_id = $2`, potID, userID)
	if err != nil {
		return err
	}
	if exists == 0 {
		return apperrors.NewNotFoundError("Pot not found")
	}
	return apperrors.NewDomainValidationError(guardMsg)
}
