package postgres

import (
	"context"
	"errors"
	"fmt"
	"yatube/internal/model"

	sq "github.com/Masterminds/squirrel"
	trmpgx "github.com/avito-tech/go-transaction-manager/drivers/pgxv5/v2"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"yatube/pkg/tableinfo"
)

type FollowStorage struct {
	pool   *pgxpool.Pool
	getter *trmpgx.CtxGetter
}

func NewFollowStorage(pool *pgxpool.Pool, getter *trmpgx.CtxGetter) *FollowStorage {
	return &FollowStorage{pool: pool, getter: getter}
}

func createFollowQueryBuilder(in model.Follow) sq.InsertBuilder {
	return sq.
		Insert(tableinfo.FollowsTableName).
		Columns(tableinfo.FollowUserIDColumn, tableinfo.FollowAuthorIDColumn).
		Values(in.UserID, in.AuthorID).
		Suffix(fmt.Sprintf(
			"ON CONFLICT (%s, %s) DO NOTHING",
			tableinfo.FollowUserIDColumn,
			tableinfo.FollowAuthorIDColumn,
		)).
		PlaceholderFormat(sq.Dollar)
}

// CreateFollow relies on the composite primary key: the upsert makes
// get-or-create a single atomic statement, so concurrent calls for the
// same pair cannot produce duplicates.
func (s *FollowStorage) CreateFollow(ctx context.Context, in model.Follow) error {
	query, args, err := createFollowQueryBuilder(in).ToSql()
	if err != nil {
		return fmt.Errorf("%w: %v", ErrBuildingQuery, err)
	}

	tr := s.getter.DefaultTrOrDB(ctx, s.pool)
	if _, err := tr.Exec(ctx, query, args...); err != nil {
		return fmt.Errorf("exec insert follow: %w", err)
	}
	return nil
}

func (s *FollowStorage) DeleteFollow(ctx context.Context, userID, authorID int64) error {
	query, args, err := sq.
		Delete(tableinfo.FollowsTableName).
		Where(sq.Eq{
			tableinfo.FollowUserIDColumn:   userID,
			tableinfo.FollowAuthorIDColumn: authorID,
		}).
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: %v", ErrBuildingQuery, err)
	}

	// zero rows deleted is fine, unfollowing a stranger is a no-op
	tr := s.getter.DefaultTrOrDB(ctx, s.pool)
	if _, err := tr.Exec(ctx, query, args...); err != nil {
		return fmt.Errorf("exec delete follow: %w", err)
	}
	return nil
}

func (s *FollowStorage) FollowExists(ctx context.Context, userID, authorID int64) (bool, error) {
	query, args, err := sq.
		Select("1").
		From(tableinfo.FollowsTableName).
		Where(sq.Eq{
			tableinfo.FollowUserIDColumn:   userID,
			tableinfo.FollowAuthorIDColumn: authorID,
		}).
		Limit(1).
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return false, fmt.Errorf("%w: %v", ErrBuildingQuery, err)
	}

	tr := s.getter.DefaultTrOrDB(ctx, s.pool)

	var one int
	if err := tr.QueryRow(ctx, query, args...).Scan(&one); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return false, nil
		}
		return false, fmt.Errorf("exec select follow: %w", err)
	}
	return true, nil
}
