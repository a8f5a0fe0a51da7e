package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-task-keeper/internal/config"
	"github.com/MKhiriev/go-task-keeper/internal/logger"
	"github.com/jackc/pgx/v5/pgconn"
	_ "github.com/jackc/pgx/v5/stdlib"
)

// connectRetryDelays are the pauses between connection attempts when the
// first ping fails with a retryable error.
var connectRetryDelays = []time.Duration{time.Second, 3 * time.Second, 5 * time.Second}

// DB wraps the standard library connection pool together with the error
// classifier used to decide whether a failed operation is worth retrying.
type DB struct {
	*sql.DB
	errorClassificator ErrorClassificator
	logger             *logger.Logger
}

// NewConnectPostgres opens a PostgreSQL connection pool via the pgx stdlib
// driver and verifies it with a ping. Transient connection failures are
// retried a few times with increasing delays; non-retryable errors fail fast.
func NewConnectPostgres(ctx context.Context, cfg config.DB, log *logger.Logger) (*DB, error) {
	// establish connection
	conn, err := sql.Open("pgx", cfg.DSN)
	if err != nil {
		log.Err(err).Str("func", "NewConnectPostgres").Msg("error occured during database connection")
		return nil, fmt.Errorf("error occured during database connection: %w", err)
	}

	// setup connections
	conn.SetMaxOpenConns(10)
	conn.SetMaxIdleConns(4)

	classifier := NewPostgresErrorClassifier()

	// ping database
	err = conn.PingContext(ctx)
	for attempt := 0; err != nil && attempt < len(connectRetryDelays); attempt++ {
		if classifier.Classify(err) == NonRetryable {
			break
		}

		log.Warn().Err(err).
			Str("func", "NewConnectPostgres").
			Int("attempt", attempt+1).
			Dur("delay", connectRetryDelays[attempt]).
			Msg("database is not reachable, retrying")

		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(connectRetryDelays[attempt]):
		}

		err = conn.PingContext(ctx)
	}
	if err != nil {
		log.Err(err).Str("func", "NewConnectPostgres").Msg("error connecting database (ping)")
		return nil, err
	}
	log.Info().Str("func", "NewConnectPostgres").Msg("connected to database successfully")

	// construct a DB struct
	db := &DB{
		DB:                 conn,
		logger:             log,
		errorClassificator: classifier,
	}

	return db, nil
}

func postgresError(err error) string {
	var pgErr *pgconn.PgError
	// if postgres returns error
	if errors.As(err, &pgErr) {
		return pgErr.Code
	}

	return ""
}
