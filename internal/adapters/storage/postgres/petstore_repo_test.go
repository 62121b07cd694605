package postgres

import (
	"context"
	"errors"
	"regexp"
	"testing"

	"pet-store/internal/domain/petstore"

	"github.com/DATA-DOG/go-sqlmock"
)

var storeCols = []string{
	"pet_store_id", "pet_store_name", "pet_store_address", "pet_store_city",
	"pet_store_state", "pet_store_zip", "pet_store_phone",
}

func TestPetStoreRepo_FindStore_LoadsRelations(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock new: %v", err)
	}
	defer db.Close()

	repo := NewPetStoreRepo(db)

	mock.ExpectBegin()
	mock.ExpectQuery(regexp.QuoteMeta(qSelectStore)).
		WithArgs(int64(1)).
		WillReturnRows(sqlmock.NewRows(storeCols).AddRow(int64(1), "Acme", "Main St", "Boise", "ID", "83702", "555"))
	mock.ExpectQuery(regexp.QuoteMeta(qSelectStoreEmployees)).
		WithArgs(int64(1)).
		WillReturnRows(sqlmock.NewRows([]string{
			"employee_id", "pet_store_id", "employee_first_name", "employee_last_name", "employee_phone", "employee_job_title",
		}).AddRow(int64(3), int64(1), "Jo", "Doe", "555", "Clerk"))
	mock.ExpectQuery(regexp.QuoteMeta(qSelectStoreCustomers)).
		WithArgs(int64(1)).
		WillReturnRows(sqlmock.NewRows([]string{
			"customer_id", "customer_first_name", "customer_last_name", "customer_email",
		}).AddRow(int64(4), "Ana", "Lee", "ana@example.com"))
	mock.ExpectCommit()

	var got petstore.Store
	err = repo.WithinTx(context.Background(), func(es petstore.EntityStore) error {
		var err error
		got, err = es.FindStore(context.Background(), 1)
		return err
	})
	if err != nil {
		t.Fatalf("FindStore failed: %v", err)
	}

	if got.Name != "Acme" || got.City != "Boise" {
		t.Fatalf("unexpected store %+v", got)
	}
	if len(got.Employees) != 1 || got.Employees[0].FirstName != "Jo" {
		t.Fatalf("unexpected employees %+v", got.Employees)
	}
	if len(got.Customers) != 1 || got.Customers[0].Email != "ana@example.com" {
		t.Fatalf("unexpected customers %+v", got.Customers)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestPetStoreRepo_FindStore_NotFoundRollsBack(t *testing.T) {
	db, mock, _ := sqlmock.New()
	defer db.Close()
	repo := NewPetStoreRepo(db)

	mock.ExpectBegin()
	mock.ExpectQuery(regexp.QuoteMeta(qSelectStore)).
		WithArgs(int64(9)).
		WillReturnRows(sqlmock.NewRows(storeCols))
	mock.ExpectRollback()

	err := repo.WithinTx(context.Background(), func(es petstore.EntityStore) error {
		_, err := es.FindStore(context.Background(), 9)
		return err
	})
	if !errors.Is(err, petstore.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestPetStoreRepo_SaveStore_InsertAndUpdate(t *testing.T) {
	db, mock, _ := sqlmock.New()
	defer db.Close()
	repo := NewPetStoreRepo(db)

	mock.ExpectBegin()
	mock.ExpectQuery(regexp.QuoteMeta(qInsertStore)).
		WithArgs("Acme", "", "Boise", "", "", "").
		WillReturnRows(sqlmock.NewRows([]string{"pet_store_id"}).AddRow(int64(7)))
	mock.ExpectExec(regexp.QuoteMeta(qUpdateStore)).
		WithArgs("Acme II", "", "", "", "", "", int64(7)).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	err := repo.WithinTx(context.Background(), func(es petstore.EntityStore) error {
		created, err := es.SaveStore(context.Background(), petstore.Store{Name: "Acme", City: "Boise"})
		if err != nil {
			return err
		}
		if created.ID != 7 {
			t.Errorf("expected id 7, got %d", created.ID)
		}

		_, err = es.SaveStore(context.Background(), petstore.Store{ID: 7, Name: "Acme II"})
		return err
	})
	if err != nil {
		t.Fatalf("SaveStore failed: %v", err)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestPetStoreRepo_SaveStore_UpdateMissingIsNotFound(t *testing.T) {
	db, mock, _ := sqlmock.New()
	defer db.Close()
	repo := NewPetStoreRepo(db)

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta(qUpdateStore)).
		WithArgs("x", "", "", "", "", "", int64(3)).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectRollback()

	err := repo.WithinTx(context.Background(), func(es petstore.EntityStore) error {
		_, err := es.SaveStore(context.Background(), petstore.Store{ID: 3, Name: "x"})
		return err
	})
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestPetStoreRepo_DeleteStore_RemovesLinksEmployeesAndStore(t *testing.T) {
	db, mock, _ := sqlmock.New()
	defer db.Close()
	repo := NewPetStoreRepo(db)

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta(qDeleteStoreLinks)).
		WithArgs(int64(2)).
		WillReturnResult(sqlmock.NewResult(0, 3))
	mock.ExpectExec(regexp.QuoteMeta(qDeleteStoreEmployees)).
		WithArgs(int64(2)).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(regexp.QuoteMeta(qDeleteStore)).
		WithArgs(int64(2)).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	err := repo.WithinTx(context.Background(), func(es petstore.EntityStore) error {
		return es.DeleteStore(context.Background(), 2)
	})
	if err != nil {
		t.Fatalf("DeleteStore failed: %v", err)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestPetStoreRepo_SaveEmployee_UpdateMovesStore(t *testing.T) {
	db, mock, _ := sqlmock.New()
	defer db.Close()
	repo := NewPetStoreRepo(db)

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta(qUpdateEmployee)).
		WithArgs(int64(5), "Jo", "", "", "Manager", int64(1)).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	err := repo.WithinTx(context.Background(), func(es petstore.EntityStore) error {
		_, err := es.SaveEmployee(context.Background(), petstore.Employee{
			ID:        1,
			StoreID:   5,
			FirstName: "Jo",
			JobTitle:  "Manager",
		})
		return err
	})
	if err != nil {
		t.Fatalf("SaveEmployee failed: %v", err)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestPetStoreRepo_SaveCustomer_RewritesLinksWithoutDuplicates(t *testing.T) {
	db, mock, _ := sqlmock.New()
	defer db.Close()
	repo := NewPetStoreRepo(db)

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta(qUpdateCustomer)).
		WithArgs("Ana", "Lee", "ana@example.com", int64(4)).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(regexp.QuoteMeta(qDeleteCustomerLinks)).
		WithArgs(int64(4)).
		WillReturnResult(sqlmock.NewResult(0, 2))
	mock.ExpectExec(regexp.QuoteMeta(qInsertCustomerLink)).
		WithArgs(int64(1), int64(4)).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(regexp.QuoteMeta(qInsertCustomerLink)).
		WithArgs(int64(2), int64(4)).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	err := repo.WithinTx(context.Background(), func(es petstore.EntityStore) error {
		_, err := es.SaveCustomer(context.Background(), petstore.Customer{
			ID:        4,
			FirstName: "Ana",
			LastName:  "Lee",
			Email:     "ana@example.com",
			StoreIDs:  []int64{1, 2, 1},
		})
		return err
	})
	if err != nil {
		t.Fatalf("SaveCustomer failed: %v", err)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestPetStoreRepo_BeginError(t *testing.T) {
	db, mock, _ := sqlmock.New()
	defer db.Close()
	repo := NewPetStoreRepo(db)

	boom := errors.New("conn refused")
	mock.ExpectBegin().WillReturnError(boom)

	called := false
	err := repo.WithinTx(context.Background(), func(es petstore.EntityStore) error {
		called = true
		return nil
	})
	if !errors.Is(err, boom) {
		t.Fatalf("expected begin error, got %v", err)
	}
	if called {
		t.Fatalf("fn must not run when begin fails")
	}
}

func TestMigrate_RunsEveryStatementInOneTx(t *testing.T) {
	db, mock, _ := sqlmock.New()
	defer db.Close()

	mock.ExpectBegin()
	for _, stmt := range Schema {
		mock.ExpectExec(regexp.QuoteMeta(stmt)).WillReturnResult(sqlmock.NewResult(0, 0))
	}
	mock.ExpectCommit()

	if err := Migrate(context.Background(), db, Schema); err != nil {
		t.Fatalf("Migrate failed: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}
