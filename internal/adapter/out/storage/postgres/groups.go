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

type GroupStorage struct {
	pool   *pgxpool.Pool
	getter *trmpgx.CtxGetter
}

func NewGroupStorage(pool *pgxpool.Pool, getter *trmpgx.CtxGetter) *GroupStorage {
	return &GroupStorage{pool: pool, getter: getter}
}

func groupColumns() []string {
	return []string{
		tableinfo.GroupIDColumn,
		tableinfo.GroupTitleColumn,
		tableinfo.GroupSlugColumn,
		tableinfo.GroupDescriptionColumn,
	}
}

func scanGroup(row pgx.Row, out *model.Group) error {
	return row.Scan(
		&out.ID,
		&out.Title,
		&out.Slug,
		&out.Description,
	)
}

func (s *GroupStorage) CreateGroup(ctx context.Context, in model.Group) (model.Group, error) {
	var out model.Group

	query, args, err := sq.
		Insert(tableinfo.GroupsTableName).
		Columns(
			tableinfo.GroupTitleColumn,
			tableinfo.GroupSlugColumn,
			tableinfo.GroupDescriptionColumn,
		).
		Values(in.Title, in.Slug, in.Description).
		Suffix("RETURNING " + sqlJoin(groupColumns())).
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return out, fmt.Errorf("%w: %v", ErrBuildingQuery, err)
	}

	tr := s.getter.DefaultTrOrDB(ctx, s.pool)
	if err := scanGroup(tr.QueryRow(ctx, query, args...), &out); err != nil {
		return out, fmt.Errorf("exec insert group: %w", err)
	}
	return out, nil
}

func (s *GroupStorage) GetGroupBySlug(ctx context.Context, slug string) (model.Group, error) {
	return s.getGroup(ctx, sq.Eq{tableinfo.GroupSlugColumn: slug})
}

func (s *GroupStorage) GetGroupByID(ctx context.Context, groupID int64) (model.Group, error) {
	return s.getGroup(ctx, sq.Eq{tableinfo.GroupIDColumn: groupID})
}

func (s *GroupStorage) getGroup(ctx context.Context, where sq.Eq) (model.Group, error) {
	var out model.Group

	query, args, err := sq.
		Select(groupColumns()...).
		From(tableinfo.GroupsTableName).
		Where(where).
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return out, fmt.Errorf("%w: %v", ErrBuildingQuery, err)
	}

	tr := s.getter.DefaultTrOrDB(ctx, s.pool)
	if err := scanGroup(tr.QueryRow(ctx, query, args...), &out); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return out, service.ErrNotFound
		}
		return out, fmt.Errorf("exec select group: %w", err)
	}
	return out, nil
}

func (s *GroupStorage) GetGroups(ctx context.Context) ([]model.Group, error) {
	query, args, err := sq.
		Select(groupColumns()...).
		From(tableinfo.GroupsTableName).
		OrderBy(tableinfo.GroupIDColumn + " ASC").
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrBuildingQuery, err)
	}

	tr := s.getter.DefaultTrOrDB(ctx, s.pool)
	rows, err := tr.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("exec select groups: %w", err)
	}
	defer rows.Close()

	var out []model.Group
	for rows.Next() {
		var g model.Group
		if err := scanGroup(rows, &g); err != nil {
			return nil, fmt.Errorf("scan group: %w", err)
		}
		out = append(out, g)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows: %w", err)
	}
	return out, nil
}
