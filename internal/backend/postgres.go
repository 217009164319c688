package backend

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"

	"github.com/raihan324/Food-Application/internal/backend/migrations"
	"github.com/raihan324/Food-Application/internal/dbx"
	"github.com/raihan324/Food-Application/internal/logging"
)

// notifyChannel is the single LISTEN/NOTIFY channel shared by all keys; the
// payload carries "<instance-id> <key>" so watchers can filter both their
// own writes and foreign keys.
const notifyChannel = "food_kv_changed"

// Postgres keeps the whole store in one key/value table and carries the
// change signal over LISTEN/NOTIFY. A NOTIFY reaches every listening
// session, including the writer's; the instance id in the payload restores
// the writer-never-hears-itself contract.
type Postgres struct {
	db         *sql.DB
	dsn        string
	instanceID string
	log        logging.Logger
}

// NewPostgres opens the database, runs the embedded migrations, and returns
// a ready backend handle.
func NewPostgres(ctx context.Context, dsn string, log logging.Logger) (*Postgres, error) {
	db, err := sql.Open("pgx", dsn)
	if err != nil {
		return nil, fmt.Errorf("db open error: %w", err)
	}

	goose.SetBaseFS(migrations.Migrations)
	if err := goose.UpContext(ctx, db, "."); err != nil {
		return nil, fmt.Errorf("migration error: %w", err)
	}

	return newPostgres(db, dsn, log), nil
}

func newPostgres(db *sql.DB, dsn string, log logging.Logger) *Postgres {
	if log == nil {
		log = logging.NewNopLogger()
	}
	return &Postgres{
		db:         db,
		dsn:        dsn,
		instanceID: uuid.NewString(),
		log:        log,
	}
}

func (p *Postgres) Get(ctx context.Context, key string) ([]byte, error) {
	var value []byte
	err := p.db.QueryRowContext(ctx, `SELECT value FROM food_kv WHERE key = $1`, key).Scan(&value)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get food_kv[%s]: %w", key, err)
	}
	return value, nil
}

// Set upserts the value and queues the change signal in one transaction.
// NOTIFY is transactional, so a failed write signals nobody and a reported
// failure leaves the stored value untouched.
func (p *Postgres) Set(ctx context.Context, key string, value []byte) error {
	payload := p.instanceID + " " + key
	return dbx.WithTx(ctx, p.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		_, err := tx.ExecContext(ctx, `
			INSERT INTO food_kv (key, value) VALUES ($1, $2)
			ON CONFLICT(key) DO UPDATE SET value = excluded.value
		`, key, value)
		if err != nil {
			return fmt.Errorf("failed to set food_kv[%s]: %w", key, err)
		}
		if _, err := tx.ExecContext(ctx, `SELECT pg_notify($1, $2)`, notifyChannel, payload); err != nil {
			return fmt.Errorf("failed to notify food_kv[%s]: %w", key, err)
		}
		return nil
	})
}

func (p *Postgres) Watch(ctx context.Context, key string) (<-chan struct{}, error) {
	// LISTEN needs its own session for the lifetime of the watch.
	conn, err := pgx.Connect(ctx, p.dsn)
	if err != nil {
		return nil, fmt.Errorf("listener connect error: %w", err)
	}
	if _, err := conn.Exec(ctx, "LISTEN "+notifyChannel); err != nil {
		_ = conn.Close(ctx)
		return nil, fmt.Errorf("listen error: %w", err)
	}

	out := make(chan struct{}, 1)
	go func() {
		defer close(out)
		defer func() { _ = conn.Close(context.Background()) }()
		for {
			n, err := conn.WaitForNotification(ctx)
			if err != nil {
				if ctx.Err() == nil {
					p.log.Error(ctx, "notification wait failed", "error", err)
				}
				return
			}
			instance, changedKey, ok := strings.Cut(n.Payload, " ")
			if !ok || instance == p.instanceID || changedKey != key {
				continue
			}
			p.log.Debug(ctx, "change signal received", "key", key)
			select {
			case out <- struct{}{}:
			default:
			}
		}
	}()
	return out, nil
}
