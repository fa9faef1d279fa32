package database

import (
	"context"
	"log"
	"time"

	"gorm.io/gorm/logger"
)

// Queries slower than this are reported.
const slowQueryThreshold = 200 * time.Millisecond

// QueryLogger wraps the default GORM logger and reports slow or
// failing statements to the application log.
type QueryLogger struct {
	logger.Interface
}

// Trace implements the logger.Interface
func (l *QueryLogger) Trace(ctx context.Context, begin time.Time, fc func() (sql string, rowsAffected int64), err error) {
	if l.Interface != nil {
		l.Interface.Trace(ctx, begin, fc, err)
	}

	duration := time.Since(begin)
	if err != nil {
		sql, _ := fc()
		log.Printf("SQL error (%s): %v [%s]", duration, err, sql)
		return
	}
	if duration >= slowQueryThreshold {
		sql, rows := fc()
		log.Printf("Slow SQL (%s, %d rows): %s", duration, rows, sql)
	}
}
