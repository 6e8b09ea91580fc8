package postgres

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"yatube/internal/adapter/out/storage"
	"yatube/internal/model"
	"yatube/internal/service"
	"yatube/pkg/tableinfo"

	sq "github.com/Masterminds/squirrel"
	trmpgx "github.com/avito-tech/go-transaction-manager/drivers/pgxv5/v2"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

var ErrBuildingQuery = errors.New("error building sql-query")

type PostStorage struct {
	pool   *pgxpool.Pool
	getter *trmpgx.CtxGetter
}

func NewPostStorage(pool *pgxpool.Pool, getter *trmpgx.CtxGetter) *PostStorage {
	return &PostStorage{
		pool:   pool,
		getter: getter,
	}
}

func postColumns(prefix string) []string {
	cols := []string{
		tableinfo.PostIDColumn,
		tableinfo.PostTextColumn,
		tableinfo.PostAuthorIDColumn,
		tableinfo.PostGroupIDColumn,
		tableinfo.PostImageColumn,
		tableinfo.PostPubDateColumn,
	}
	if prefix == "" {
		return cols
	}
	out := make([]string, len(cols))
	for i, col := range cols {
		out[i] = prefix + "." + col
	}
	return out
}

func sqlJoin(cols []string) string {
	return strings.Join(cols, ", ")
}

func scanPost(row pgx.Row, out *model.Post) error {
	return row.Scan(
		&out.ID,
		&out.Text,
		&out.AuthorID,
		&out.GroupID,
		&out.Image,
		&out.PubDate,
	)
}

func (s *PostStorage) CreatePost(ctx context.Context, in model.Post) (model.Post, error) {
	var out model.Post

	query, args, err := sq.
		Insert(tableinfo.PostsTableName).
		Columns(
			tableinfo.PostTextColumn,
			tableinfo.PostAuthorIDColumn,
			tableinfo.PostGroupIDColumn,
			tableinfo.PostImageColumn,
		).
		Values(in.Text, in.AuthorID, in.GroupID, in.Image).
		Suffix("RETURNING " + sqlJoin(postColumns(""))).
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return out, fmt.Errorf("%w: %v", ErrBuildingQuery, err)
	}

	tr := s.getter.DefaultTrOrDB(ctx, s.pool)
	if err := scanPost(tr.QueryRow(ctx, query, args...), &out); err != nil {
		return out, fmt.Errorf("exec insert post: %w", err)
	}
	return out, nil
}

func (s *PostStorage) GetPostByID(ctx context.Context, postID int64) (model.Post, error) {
	var out model.Post

	query, args, err := sq.
		Select(postColumns("")...).
		From(tableinfo.PostsTableName).
		Where(sq.Eq{tableinfo.PostIDColumn: postID}).
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return out, fmt.Errorf("%w: %v", ErrBuildingQuery, err)
	}

	tr := s.getter.DefaultTrOrDB(ctx, s.pool)
	if err := scanPost(tr.QueryRow(ctx, query, args...), &out); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return out, service.ErrNotFound
		}
		return out, fmt.Errorf("exec select post by id: %w", err)
	}
	return out, nil
}

// UpdatePost touches text, group_id and image only; pub_date and author_id
// stay as inserted.
func (s *PostStorage) UpdatePost(ctx context.Context, in model.Post) (model.Post, error) {
	var out model.Post

	query, args, err := sq.
		Update(tableinfo.PostsTableName).
		Set(tableinfo.PostTextColumn, in.Text).
		Set(tableinfo.PostGroupIDColumn, in.GroupID).
		Set(tableinfo.PostImageColumn, in.Image).
		Where(sq.Eq{tableinfo.PostIDColumn: in.ID}).
		Suffix("RETURNING " + sqlJoin(postColumns(""))).
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return out, fmt.Errorf("%w: %v", ErrBuildingQuery, err)
	}

	tr := s.getter.DefaultTrOrDB(ctx, s.pool)
	if err := scanPost(tr.QueryRow(ctx, query, args...), &out); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return out, service.ErrNotFound
		}
		return out, fmt.Errorf("exec update post: %w", err)
	}
	return out, nil
}

func getPostsQueryBuilder(filter storage.PostFilter) sq.SelectBuilder {
	qb := sq.
		Select(postColumns(tableinfo.PostsTableName)...).
		From(tableinfo.PostsTableName).
		OrderBy(
			tableinfo.PostsTableName+"."+tableinfo.PostPubDateColumn+" DESC",
			tableinfo.PostsTableName+"."+tableinfo.PostIDColumn+" DESC",
		).
		PlaceholderFormat(sq.Dollar)

	if filter.GroupID != nil {
		qb = qb.Where(sq.Eq{tableinfo.PostsTableName + "." + tableinfo.PostGroupIDColumn: *filter.GroupID})
	}
	if filter.AuthorID != nil {
		qb = qb.Where(sq.Eq{tableinfo.PostsTableName + "." + tableinfo.PostAuthorIDColumn: *filter.AuthorID})
	}
	if filter.FollowedBy != nil {
		qb = qb.
			Join(fmt.Sprintf(
				"%s ON %s.%s = %s.%s",
				tableinfo.FollowsTableName,
				tableinfo.FollowsTableName, tableinfo.FollowAuthorIDColumn,
				tableinfo.PostsTableName, tableinfo.PostAuthorIDColumn,
			)).
			Where(sq.Eq{tableinfo.FollowsTableName + "." + tableinfo.FollowUserIDColumn: *filter.FollowedBy})
	}
	return qb
}

func (s *PostStorage) GetPosts(ctx context.Context, filter storage.PostFilter) ([]model.Post, error) {
	query, args, err := getPostsQueryBuilder(filter).ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrBuildingQuery, err)
	}

	tr := s.getter.DefaultTrOrDB(ctx, s.pool)
	rows, err := tr.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("exec select posts: %w", err)
	}
	defer rows.Close()

	var out []model.Post
	for rows.Next() {
		var p model.Post
		if err := scanPost(rows, &p); err != nil {
			return nil, fmt.Errorf("scan post: %w", err)
		}
		out = append(out, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows: %w", err)
	}
	return out, nil
}

func (s *PostStorage) CountPostsByAuthor(ctx context.Context, authorID int64) (int, error) {
	query, args, err := sq.
		Select("COUNT(*)").
		From(tableinfo.PostsTableName).
		Where(sq.Eq{tableinfo.PostAuthorIDColumn: authorID}).
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("%w: %v", ErrBuildingQuery, err)
	}

	tr := s.getter.DefaultTrOrDB(ctx, s.pool)

	var count int
	if err := tr.QueryRow(ctx, query, args...).Scan(&count); err != nil {
		return 0, fmt.Errorf("exec count posts: %w", err)
	}
	return count, nil
}
