package postgres

import (
	"context"
	"database/sql"
	"errors"

	"pet-store/internal/domain/petstore"
)

// Los placeholders $N aparecen siempre en orden ascendente: el mismo SQL corre
// también sobre SQLite (modernc), que los bindea por posición.
const (
	qSelectStore = `
		SELECT pet_store_id, pet_store_name, pet_store_address, pet_store_city,
			pet_store_state, pet_store_zip, pet_store_phone
		FROM pet_store
		WHERE pet_store_id = $1`

	qListStores = `
		SELECT pet_store_id, pet_store_name, pet_store_address, pet_store_city,
			pet_store_state, pet_store_zip, pet_store_phone
		FROM pet_store
		ORDER BY pet_store_id ASC`

	qInsertStore = `
		INSERT INTO pet_store (
			pet_store_name, pet_store_address, pet_store_city,
			pet_store_state, pet_store_zip, pet_store_phone
		) VALUES ($1,$2,$3,$4,$5,$6)
		RETURNING pet_store_id`

	qUpdateStore = `
		UPDATE pet_store
		SET
			pet_store_name = $1,
			pet_store_address = $2,
			pet_store_city = $3,
			pet_store_state = $4,
			pet_store_zip = $5,
			pet_store_phone = $6
		WHERE pet_store_id = $7`

	qDeleteStoreLinks     = `DELETE FROM pet_store_customer WHERE pet_store_id = $1`
	qDeleteStoreEmployees = `DELETE FROM employee WHERE pet_store_id = $1`
	qDeleteStore          = `DELETE FROM pet_store WHERE pet_store_id = $1`

	qSelectStoreEmployees = `
		SELECT employee_id, pet_store_id, employee_first_name, employee_last_name,
			employee_phone, employee_job_title
		FROM employee
		WHERE pet_store_id = $1
		ORDER BY employee_id ASC`

	qSelectStoreCustomers = `
		SELECT c.customer_id, c.customer_first_name, c.customer_last_name, c.customer_email
		FROM customer c
		JOIN pet_store_customer psc ON psc.customer_id = c.customer_id
		WHERE psc.pet_store_id = $1
		ORDER BY c.customer_id ASC`

	qSelectEmployee = `
		SELECT employee_id, pet_store_id, employee_first_name, employee_last_name,
			employee_phone, employee_job_title
		FROM employee
		WHERE employee_id = $1`

	qInsertEmployee = `
		INSERT INTO employee (
			pet_store_id, employee_first_name, employee_last_name,
			employee_phone, employee_job_title
		) VALUES ($1,$2,$3,$4,$5)
		RETURNING employee_id`

	qUpdateEmployee = `
		UPDATE employee
		SET
			pet_store_id = $1,
			employee_first_name = $2,
			employee_last_name = $3,
			employee_phone = $4,
			employee_job_title = $5
		WHERE employee_id = $6`

	qSelectCustomer = `
		SELECT customer_id, customer_first_name, customer_last_name, customer_email
		FROM customer
		WHERE customer_id = $1`

	qSelectCustomerStoreIDs = `
		SELECT pet_store_id
		FROM pet_store_customer
		WHERE customer_id = $1
		ORDER BY pet_store_id ASC`

	qInsertCustomer = `
		INSERT INTO customer (customer_first_name, customer_last_name, customer_email)
		VALUES ($1,$2,$3)
		RETURNING customer_id`

	qUpdateCustomer = `
		UPDATE customer
		SET
			customer_first_name = $1,
			customer_last_name = $2,
			customer_email = $3
		WHERE customer_id = $4`

	qDeleteCustomerLinks = `DELETE FROM pet_store_customer WHERE customer_id = $1`
	qInsertCustomerLink  = `INSERT INTO pet_store_customer (pet_store_id, customer_id) VALUES ($1,$2)`
)

// PetStoreRepo implementa petstore.Repository sobre database/sql.
type PetStoreRepo struct {
	db *sql.DB
}

func NewPetStoreRepo(db *sql.DB) *PetStoreRepo {
	return &PetStoreRepo{db: db}
}

func (r *PetStoreRepo) WithinTx(ctx context.Context, fn func(es petstore.EntityStore) error) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}

	committed := false
	defer func() {
		if !committed {
			_ = tx.Rollback()
		}
	}()

	if err := fn(&txStore{q: tx}); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return err
	}
	committed = true
	return nil
}

// queryer lo cumplen *sql.DB y *sql.Tx.
type queryer interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

type txStore struct {
	q queryer
}

func (s *txStore) FindStore(ctx context.Context, id int64) (petstore.Store, error) {
	var st petstore.Store
	if err := s.q.QueryRowContext(ctx, qSelectStore, id).Scan(
		&st.ID,
		&st.Name,
		&st.Address,
		&st.City,
		&st.State,
		&st.Zip,
		&st.Phone,
	); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return petstore.Store{}, ErrNotFound
		}
		return petstore.Store{}, err
	}

	employees, err := s.storeEmployees(ctx, id)
	if err != nil {
		return petstore.Store{}, err
	}
	customers, err := s.storeCustomers(ctx, id)
	if err != nil {
		return petstore.Store{}, err
	}

	st.Employees = employees
	st.Customers = customers
	return st, nil
}

// ListStores trae solo los escalares: el listado no expone colecciones.
func (s *txStore) ListStores(ctx context.Context) ([]petstore.Store, error) {
	rows, err := s.q.QueryContext(ctx, qListStores)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]petstore.Store, 0)
	for rows.Next() {
		var st petstore.Store
		if err := rows.Scan(
			&st.ID,
			&st.Name,
			&st.Address,
			&st.City,
			&st.State,
			&st.Zip,
			&st.Phone,
		); err != nil {
			return nil, err
		}
		out = append(out, st)
	}

	return out, rows.Err()
}

func (s *txStore) SaveStore(ctx context.Context, st petstore.Store) (petstore.Store, error) {
	if st.ID == 0 {
		if err := s.q.QueryRowContext(ctx, qInsertStore,
			st.Name,
			st.Address,
			st.City,
			st.State,
			st.Zip,
			st.Phone,
		).Scan(&st.ID); err != nil {
			return petstore.Store{}, err
		}
		return st, nil
	}

	res, err := s.q.ExecContext(ctx, qUpdateStore,
		st.Name,
		st.Address,
		st.City,
		st.State,
		st.Zip,
		st.Phone,
		st.ID,
	)
	if err != nil {
		return petstore.Store{}, err
	}
	if err := mustAffect(res); err != nil {
		return petstore.Store{}, err
	}
	return st, nil
}

// DeleteStore no depende de ON DELETE CASCADE (SQLite lo ignora sin PRAGMA foreign_keys).
func (s *txStore) DeleteStore(ctx context.Context, id int64) error {
	if _, err := s.q.ExecContext(ctx, qDeleteStoreLinks, id); err != nil {
		return err
	}
	if _, err := s.q.ExecContext(ctx, qDeleteStoreEmployees, id); err != nil {
		return err
	}

	res, err := s.q.ExecContext(ctx, qDeleteStore, id)
	if err != nil {
		return err
	}
	return mustAffect(res)
}

func (s *txStore) FindEmployee(ctx context.Context, id int64) (petstore.Employee, error) {
	var e petstore.Employee
	if err := s.q.QueryRowContext(ctx, qSelectEmployee, id).Scan(
		&e.ID,
		&e.StoreID,
		&e.FirstName,
		&e.LastName,
		&e.Phone,
		&e.JobTitle,
	); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return petstore.Employee{}, ErrNotFound
		}
		return petstore.Employee{}, err
	}
	return e, nil
}

func (s *txStore) SaveEmployee(ctx context.Context, e petstore.Employee) (petstore.Employee, error) {
	if e.ID == 0 {
		if err := s.q.QueryRowContext(ctx, qInsertEmployee,
			e.StoreID,
			e.FirstName,
			e.LastName,
			e.Phone,
			e.JobTitle,
		).Scan(&e.ID); err != nil {
			return petstore.Employee{}, err
		}
		return e, nil
	}

	res, err := s.q.ExecContext(ctx, qUpdateEmployee,
		e.StoreID,
		e.FirstName,
		e.LastName,
		e.Phone,
		e.JobTitle,
		e.ID,
	)
	if err != nil {
		return petstore.Employee{}, err
	}
	if err := mustAffect(res); err != nil {
		return petstore.Employee{}, err
	}
	return e, nil
}

func (s *txStore) FindCustomer(ctx context.Context, id int64) (petstore.Customer, error) {
	var c petstore.Customer
	if err := s.q.QueryRowContext(ctx, qSelectCustomer, id).Scan(
		&c.ID,
		&c.FirstName,
		&c.LastName,
		&c.Email,
	); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return petstore.Customer{}, ErrNotFound
		}
		return petstore.Customer{}, err
	}

	ids, err := s.customerStoreIDs(ctx, id)
	if err != nil {
		return petstore.Customer{}, err
	}
	c.StoreIDs = ids
	return c, nil
}

// SaveCustomer persiste escalares y reescribe los vínculos en la misma tx.
func (s *txStore) SaveCustomer(ctx context.Context, c petstore.Customer) (petstore.Customer, error) {
	if c.ID == 0 {
		if err := s.q.QueryRowContext(ctx, qInsertCustomer,
			c.FirstName,
			c.LastName,
			c.Email,
		).Scan(&c.ID); err != nil {
			return petstore.Customer{}, err
		}
	} else {
		res, err := s.q.ExecContext(ctx, qUpdateCustomer,
			c.FirstName,
			c.LastName,
			c.Email,
			c.ID,
		)
		if err != nil {
			return petstore.Customer{}, err
		}
		if err := mustAffect(res); err != nil {
			return petstore.Customer{}, err
		}

		if _, err := s.q.ExecContext(ctx, qDeleteCustomerLinks, c.ID); err != nil {
			return petstore.Customer{}, err
		}
	}

	seen := make(map[int64]struct{}, len(c.StoreIDs))
	for _, storeID := range c.StoreIDs {
		if _, dup := seen[storeID]; dup {
			continue
		}
		seen[storeID] = struct{}{}

		if _, err := s.q.ExecContext(ctx, qInsertCustomerLink, storeID, c.ID); err != nil {
			return petstore.Customer{}, err
		}
	}

	return c, nil
}

func (s *txStore) storeEmployees(ctx context.Context, storeID int64) ([]petstore.Employee, error) {
	rows, err := s.q.QueryContext(ctx, qSelectStoreEmployees, storeID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]petstore.Employee, 0)
	for rows.Next() {
		var e petstore.Employee
		if err := rows.Scan(
			&e.ID,
			&e.StoreID,
			&e.FirstName,
			&e.LastName,
			&e.Phone,
			&e.JobTitle,
		); err != nil {
			return nil, err
		}
		out = append(out, e)
	}

	return out, rows.Err()
}

func (s *txStore) storeCustomers(ctx context.Context, storeID int64) ([]petstore.Customer, error) {
	rows, err := s.q.QueryContext(ctx, qSelectStoreCustomers, storeID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]petstore.Customer, 0)
	for rows.Next() {
		var c petstore.Customer
		if err := rows.Scan(
			&c.ID,
			&c.FirstName,
			&c.LastName,
			&c.Email,
		); err != nil {
			return nil, err
		}
		out = append(out, c)
	}

	return out, rows.Err()
}

func (s *txStore) customerStoreIDs(ctx context.Context, customerID int64) ([]int64, error) {
	rows, err := s.q.QueryContext(ctx, qSelectCustomerStoreIDs, customerID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]int64, 0)
	for rows.Next() {
		var id int64
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		out = append(out, id)
	}

	return out, rows.Err()
}

func mustAffect(res sql.Result) error {
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}
