package postgres

import (
	"context"
	"errors"
	"fmt"
	"yatube/internal/model"
	"yatube/internal/service"
	"yatube/pkg/tableinfo"

	sq "github.com/Masterminds/squirrel"
	trmpgx "github.com/avito-tech/go-transaction-manager/drivers/pgxv5/v2"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type UserStorage struct {
	pool   *pgxpool.Pool
	getter *trmpgx.CtxGetter
}

func NewUserStorage(pool *pgxpool.Pool, getter *trmpgx.CtxGetter) *UserStorage {
	return &UserStorage{pool: pool, getter: getter}
}

func userColumns() []string {
	return []string{
		tableinfo.UserIDColumn,
		tableinfo.UserUsernameColumn,
		tableinfo.UserCreatedAtColumn,
	}
}

func scanUser(row pgx.Row, out *model.User) error {
	return row.Scan(
		&out.ID,
		&out.Username,
		&out.CreatedAt,
	)
}

func (s *UserStorage) CreateUser(ctx context.Context, in model.User) (model.User, error) {
	var out model.User

	query, args, err := sq.
		Insert(tableinfo.UsersTableName).
		Columns(tableinfo.UserUsernameColumn).
		Values(in.Username).
		Suffix("RETURNING " + sqlJoin(userColumns())).
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return out, fmt.Errorf("%w: %v", ErrBuildingQuery, err)
	}

	tr := s.getter.DefaultTrOrDB(ctx, s.pool)
	if err := scanUser(tr.QueryRow(ctx, query, args...), &out); err != nil {
		return out, fmt.Errorf("exec insert user: %w", err)
	}
	return out, nil
}

func (s *UserStorage) GetUserByID(ctx context.Context, userID int64) (model.User, error) {
	return s.getUser(ctx, sq.Eq{tableinfo.UserIDColumn: userID})
}

func (s *UserStorage) GetUserByUsername(ctx context.Context, username string) (model.User, error) {
	return s.getUser(ctx, sq.Eq{tableinfo.UserUsernameColumn: username})
}

func (s *UserStorage) getUser(ctx context.Context, where sq.Eq) (model.User, error) {
	var out model.User

	query, args, err := sq.
		Select(userColumns()...).
		From(tableinfo.UsersTableName).
		Where(where).
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return out, fmt.Errorf("%w: %v", ErrBuildingQuery, err)
	}

	tr := s.getter.DefaultTrOrDB(ctx, s.pool)
	if err := scanUser(tr.QueryRow(ctx, query, args...), &out); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return out, service.ErrNotFound
		}
		return out, fmt.Errorf("exec select user: %w", err)
	}
	return out, nil
}
