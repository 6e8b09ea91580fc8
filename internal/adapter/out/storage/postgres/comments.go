package postgres

import (
	"context"
	"fmt"
	"yatube/internal/model"
	"yatube/pkg/tableinfo"

	sq "github.com/Masterminds/squirrel"
	trmpgx "github.com/avito-tech/go-transaction-manager/drivers/pgxv5/v2"
	"github.com/jackc/pgx/v5/pgxpool"
)

type CommentStorage struct {
	pool   *pgxpool.Pool
	getter *trmpgx.CtxGetter
}

func NewCommentStorage(pool *pgxpool.Pool, getter *trmpgx.CtxGetter) *CommentStorage {
	return &CommentStorage{pool: pool, getter: getter}
}

func commentColumns() []string {
	return []string{
		tableinfo.CommentIDColumn,
		tableinfo.CommentPostIDColumn,
		tableinfo.CommentAuthorIDColumn,
		tableinfo.CommentTextColumn,
		tableinfo.CommentCreatedColumn,
	}
}

func (s *CommentStorage) CreateComment(ctx context.Context, in model.Comment) (model.Comment, error) {
	var out model.Comment

	query, args, err := sq.
		Insert(tableinfo.CommentsTableName).
		Columns(
			tableinfo.CommentPostIDColumn,
			tableinfo.CommentAuthorIDColumn,
			tableinfo.CommentTextColumn,
		).
		Values(in.PostID, in.AuthorID, in.Text).
		Suffix("RETURNING " + sqlJoin(commentColumns())).
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return out, fmt.Errorf("%w: %v", ErrBuildingQuery, err)
	}

	tr := s.getter.DefaultTrOrDB(ctx, s.pool)
	if err := tr.QueryRow(ctx, query, args...).Scan(
		&out.ID,
		&out.PostID,
		&out.AuthorID,
		&out.Text,
		&out.Created,
	); err != nil {
		return out, fmt.Errorf("exec insert comment: %w", err)
	}
	return out, nil
}

// GetCommentsByPost returns comments in insertion order (ascending id).
func (s *CommentStorage) GetCommentsByPost(ctx context.Context, postID int64) ([]model.Comment, error) {
	query, args, err := sq.
		Select(commentColumns()...).
		From(tableinfo.CommentsTableName).
		Where(sq.Eq{tableinfo.CommentPostIDColumn: postID}).
		OrderBy(tableinfo.CommentIDColumn + " ASC").
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrBuildingQuery, err)
	}

	tr := s.getter.DefaultTrOrDB(ctx, s.pool)
	rows, err := tr.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("exec select comments: %w", err)
	}
	defer rows.Close()

	var out []model.Comment
	for rows.Next() {
		var c model.Comment
		if err := rows.Scan(
			&c.ID,
			&c.PostID,
			&c.AuthorID,
			&c.Text,
			&c.Created,
		); err != nil {
			return nil, fmt.Errorf("scan comment: %w", err)
		}
		out = append(out, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows: %w", err)
	}
	return out, nil
}
