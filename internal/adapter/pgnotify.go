package adapter

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
)

// PGNotifyConn is a dedicated Postgres connection used for LISTEN/NOTIFY
//
//go:generate mockgen -source=pgnotify.go -destination=../mocks/pgnotify.go -package=mocks -mock_names=PGNotifyConn=MockPGNotifyConn,PGNotifyDialer=MockPGNotifyDialer
type PGNotifyConn interface {
	// Listen subscribes the connection to a notification channel
	Listen(ctx context.Context, channel string) error
	// WaitForNotification blocks until a notification arrives and returns its payload
	WaitForNotification(ctx context.Context) (string, error)
	// Close closes the connection
	Close(ctx context.Context) error
}

// PGNotifyDialer opens notification connections
type PGNotifyDialer interface {
	Connect(ctx context.Context, dsn string) (PGNotifyConn, error)
}

type pgxDialer struct{}

// NewPGNotifyDialer returns a dialer backed by pgx
func NewPGNotifyDialer() PGNotifyDialer {
	return pgxDialer{}
}

func (pgxDialer) Connect(ctx context.Context, dsn string) (PGNotifyConn, error) {
	conn, err := pgx.Connect(ctx, dsn)
	if err != nil {
		return nil, err
	}
	return &pgxNotifyConn{conn: conn}, nil
}

type pgxNotifyConn struct {
	conn *pgx.Conn
}

func (c *pgxNotifyConn) Listen(ctx context.Context, channel string) error {
	if _, err := c.conn.Exec(ctx, "LISTEN "+pgx.Identifier{channel}.Sanitize()); err != nil {
		return fmt.Errorf("failed to listen on %s: %w", channel, err)
	}
	return nil
}

func (c *pgxNotifyConn) WaitForNotification(ctx context.Context) (string, error) {
	n, err := c.conn.WaitForNotification(ctx)
	if err != nil {
		return "", err
	}
	return n.Payload, nil
}

func (c *pgxNotifyConn) Close(ctx context.Context) error {
	return c.conn.Close(ctx)
}
