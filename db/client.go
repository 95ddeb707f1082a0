package db

import (
	"database/sql"
	_ "embed"
	"os"
	"path/filepath"

	"github.com/pkg/errors"
	_ "modernc.org/sqlite"
)

//go:embed schema.sql
var schema string

type Client struct {
	conn *sql.DB
}

func Open(path string) (*Client, error) {
	err := os.MkdirAll(filepath.Dir(path), 0o755)
	if err != nil {
		return nil, errors.WithMessage(err, "mkdir database dir")
	}

	conn, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, errors.WithMessage(err, "open sqlite")
	}

	for _, pragma := range []string{
		"PRAGMA journal_mode=WAL",
		"PRAGMA foreign_keys=ON",
	} {
		_, err := conn.Exec(pragma)
		if err != nil {
			_ = conn.Close()
			return nil, errors.WithMessagef(err, "exec '%s'", pragma)
		}
	}

	_, err = conn.Exec(schema)
	if err != nil {
		_ = conn.Close()
		return nil, errors.WithMessage(err, "apply schema")
	}

	return &Client{conn: conn}, nil
}

func (c *Client) Conn() *sql.DB {
	return c.conn
}

func (c *Client) Close() error {
	return c.conn.Close()
}
