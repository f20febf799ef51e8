// Package dbtx lets gorm repositories share a *sql.Tx opened by a service.
package dbtx

import (
	"context"
	"database/sql"

	"gorm.io/gorm"
)

// Conn returns db bound to ctx. When tx is non-nil every statement built from
// the result runs on tx, so it commits or rolls back with the caller's unit of
// work. gorm skips its own implicit transaction in that case.
func Conn(ctx context.Context, db *gorm.DB, tx *sql.Tx) *gorm.DB {
	conn := db.WithContext(ctx)
	if tx != nil {
		conn.Statement.ConnPool = tx
	}
	return conn
}
