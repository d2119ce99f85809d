package store

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgconn"

	"ainadeul/pkg/platform/sentinel"
)

func isForeignKeyViolation(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == "23503"
	}
	return false
}

func requireRow(res sql.Result, entity string) error {
	rows, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("%s rows affected: %w", entity, err)
	}
	if rows == 0 {
		return fmt.Errorf("%s not found: %w", entity, sentinel.ErrNotFound)
	}
	return nil
}
