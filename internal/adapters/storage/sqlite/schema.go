package sqlite

// Schema es el equivalente SQLite del schema de Postgres (mismas tablas y columnas,
// ids autoincrementales en vez de BIGSERIAL).
var Schema = []string{
	`CREATE TABLE IF NOT EXISTS pet_store (
		pet_store_id      INTEGER PRIMARY KEY AUTOINCREMENT,
		pet_store_name    TEXT NOT NULL DEFAULT '',
		pet_store_address TEXT NOT NULL DEFAULT '',
		pet_store_city    TEXT NOT NULL DEFAULT '',
		pet_store_state   TEXT NOT NULL DEFAULT '',
		pet_store_zip     TEXT NOT NULL DEFAULT '',
		pet_store_phone   TEXT NOT NULL DEFAULT ''
	)`,
	`CREATE TABLE IF NOT EXISTS employee (
		employee_id         INTEGER PRIMARY KEY AUTOINCREMENT,
		pet_store_id        INTEGER NOT NULL REFERENCES pet_store (pet_store_id) ON DELETE CASCADE,
		employee_first_name TEXT NOT NULL DEFAULT '',
		employee_last_name  TEXT NOT NULL DEFAULT '',
		employee_phone      TEXT NOT NULL DEFAULT '',
		employee_job_title  TEXT NOT NULL DEFAULT ''
	)`,
	`CREATE INDEX IF NOT EXISTS employee_pet_store_id_idx ON employee (pet_store_id)`,
	`CREATE TABLE IF NOT EXISTS customer (
		customer_id         INTEGER PRIMARY KEY AUTOINCREMENT,
		customer_first_name TEXT NOT NULL DEFAULT '',
		customer_last_name  TEXT NOT NULL DEFAULT '',
		customer_email      TEXT NOT NULL DEFAULT ''
	)`,
	`CREATE TABLE IF NOT EXISTS pet_store_customer (
		pet_store_id INTEGER NOT NULL REFERENCES pet_store (pet_store_id) ON DELETE CASCADE,
		customer_id  INTEGER NOT NULL REFERENCES customer (customer_id) ON DELETE CASCADE,
		PRIMARY KEY (pet_store_id, customer_id)
	)`,
	`CREATE INDEX IF NOT EXISTS pet_store_customer_customer_id_idx ON pet_store_customer (customer_id)`,
}
