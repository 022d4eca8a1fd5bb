package postgres

import (
	"context"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// schema is applied in order on startup. Every statement is idempotent.
var schema = []string{
	`CREATE TABLE IF NOT EXISTS users (
    id uuid PRIMARY KEY,
    email text NOT NULL,
    password_hash text NOT NULL,
    role varchar(32) NOT NULL DEFAULT 'customer',
    created_at timestamptz NOT NULL DEFAULT NOW(),
    updated_at timestamptz NOT NULL DEFAULT NOW()
)`,
	`CREATE UNIQUE INDEX IF NOT EXISTS users_email_lower_unique ON users (LOWER(email))`,
	`CREATE TABLE IF NOT EXISTS sessions (
    token varchar(64) PRIMARY KEY,
    user_id uuid REFERENCES users(id) ON DELETE SET NULL,
    created_at timestamptz NOT NULL DEFAULT NOW(),
    expires_at timestamptz NOT NULL
)`,
	`CREATE INDEX IF NOT EXISTS sessions_expires_at_idx ON sessions (expires_at)`,
	`CREATE TABLE IF NOT EXISTS orders (
    id uuid PRIMARY KEY,
    customer_id uuid NOT NULL REFERENCES users(id) ON DELETE CASCADE,
    status varchar(16) NOT NULL CHECK (status IN ('pending', 'paid', 'shipped', 'completed', 'cancelled')),
    products jsonb NOT NULL DEFAULT '{}'::jsonb,
    version bigint NOT NULL DEFAULT 1,
    created_at timestamptz NOT NULL DEFAULT NOW(),
    updated_at timestamptz NOT NULL DEFAULT NOW()
)`,
	`CREATE INDEX IF NOT EXISTS orders_customer_id_idx ON orders (customer_id)`,
	`CREATE UNIQUE INDEX IF NOT EXISTS ` + pendingOrderConstraint + ` ON orders (customer_id) WHERE status = 'pending'`,
	`CREATE TABLE IF NOT EXISTS images (
    id varchar(64) PRIMARY KEY,
    title text NOT NULL DEFAULT '',
    type varchar(16) NOT NULL DEFAULT '',
    content_type varchar(128) NOT NULL DEFAULT '',
    size bigint NOT NULL DEFAULT 0,
    checksum char(64) NOT NULL DEFAULT '',
    created_at timestamptz NOT NULL DEFAULT NOW()
)`,
	`CREATE TABLE IF NOT EXISTS products (
    id bigserial PRIMARY KEY,
    title text NOT NULL,
    description text NOT NULL DEFAULT '',
    price numeric(12,2) NOT NULL,
    image_id varchar(64) REFERENCES images(id),
    created_at timestamptz NOT NULL DEFAULT NOW()
)`,
}

// Migrate creates the tables and indexes the repositories rely on.
func Migrate(ctx context.Context, db *gorm.DB) error {
	for i, stmt := range schema {
		if err := db.WithContext(ctx).Exec(stmt).Error; err != nil {
			return errors.Wrapf(err, "migration step %d failed", i+1)
		}
	}

	return nil
}
