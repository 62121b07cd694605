package postgres

import (
	"context"
	"database/sql"
	"fmt"
)

// Schema son las tablas que usa PetStoreRepo. Cada sentencia va por separado
// (no dependemos de que el driver acepte multi-statement).
var Schema = []string{
	`CREATE TABLE IF NOT EXISTS pet_store (
		pet_store_id      BIGSERIAL PRIMARY KEY,
		pet_store_name    TEXT NOT NULL DEFAULT '',
		pet_store_address TEXT NOT NULL DEFAULT '',
		pet_store_city    TEXT NOT NULL DEFAULT '',
		pet_store_state   TEXT NOT NULL DEFAULT '',
		pet_store_zip     TEXT NOT NULL DEFAULT '',
		pet_store_phone   TEXT NOT NULL DEFAULT ''
	)`,
	`CREATE TABLE IF NOT EXISTS employee (
		employee_id         BIGSERIAL PRIMARY KEY,
		pet_store_id        BIGINT NOT NULL REFERENCES pet_store (pet_store_id) ON DELETE CASCADE,
		employee_first_name TEXT NOT NULL DEFAULT '',
		employee_last_name  TEXT NOT NULL DEFAULT '',
		employee_phone      TEXT NOT NULL DEFAULT '',
		employee_job_title  TEXT NOT NULL DEFAULT ''
	)`,
	`CREATE INDEX IF NOT EXISTS employee_pet_store_id_idx ON employee (pet_store_id)`,
	`CREATE TABLE IF NOT EXISTS customer (
		customer_id         BIGSERIAL PRIMARY KEY,
		customer_first_name TEXT NOT NULL DEFAULT '',
		customer_last_name  TEXT NOT NULL DEFAULT '',
		customer_email      TEXT NOT NULL DEFAULT ''
	)`,
	`CREATE TABLE IF NOT EXISTS pet_store_customer (
		pet_store_id BIGINT NOT NULL REFERENCES pet_store (pet_store_id) ON DELETE CASCADE,
		customer_id  BIGINT NOT NULL REFERENCES customer (customer_id) ON DELETE CASCADE,
		PRIMARY KEY (pet_store_id, customer_id)
	)`,
	`CREATE INDEX IF NOT EXISTS pet_store_customer_customer_id_idx ON pet_store_customer (customer_id)`,
}

// Migrate aplica el schema (idempotente) en una sola transacción.
func Migrate(ctx context.Context, db *sql.DB, stmts []string) error {
	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback() }()

	for i, stmt := range stmts {
		if _, err := tx.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("migrate: statement %d: %w", i, err)
		}
	}
	return tx.Commit()
}
