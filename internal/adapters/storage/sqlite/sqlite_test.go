package sqlite_test

import (
	"context"
	"errors"
	"testing"

	pg "pet-store/internal/adapters/storage/postgres"
	"pet-store/internal/adapters/storage/sqlite"
	"pet-store/internal/domain/petstore"

	"github.com/google/uuid"
)

func newService(t *testing.T) *petstore.Service {
	t.Helper()

	db, err := sqlite.Open("file:" + uuid.NewString() + "?mode=memory&cache=shared")
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	if err := pg.Migrate(context.Background(), db, sqlite.Schema); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	// idempotente
	if err := pg.Migrate(context.Background(), db, sqlite.Schema); err != nil {
		t.Fatalf("migrate twice: %v", err)
	}

	return petstore.NewService(pg.NewPetStoreRepo(db), nil)
}

func TestSQLite_StoreLifecycle(t *testing.T) {
	ctx := context.Background()
	svc := newService(t)

	store, err := svc.SaveStore(ctx, petstore.StoreData{PetStoreName: "Acme Pets", PetStoreCity: "Boise"})
	if err != nil {
		t.Fatalf("SaveStore: %v", err)
	}
	storeID := *store.PetStoreID

	emp, err := svc.SaveEmployee(ctx, storeID, petstore.EmployeeData{EmployeeFirstName: "Jo"})
	if err != nil {
		t.Fatalf("SaveEmployee: %v", err)
	}
	cust, err := svc.SaveCustomer(ctx, storeID, petstore.CustomerData{CustomerEmail: "ana@example.com"})
	if err != nil {
		t.Fatalf("SaveCustomer: %v", err)
	}

	got, err := svc.GetStore(ctx, storeID)
	if err != nil {
		t.Fatalf("GetStore: %v", err)
	}
	if len(got.Employees) != 1 || *got.Employees[0].EmployeeID != *emp.EmployeeID {
		t.Fatalf("expected employee %d, got %+v", *emp.EmployeeID, got.Employees)
	}
	if len(got.Customers) != 1 || *got.Customers[0].CustomerID != *cust.CustomerID {
		t.Fatalf("expected customer %d, got %+v", *cust.CustomerID, got.Customers)
	}

	list, err := svc.ListStores(ctx)
	if err != nil {
		t.Fatalf("ListStores: %v", err)
	}
	if len(list) != 1 || len(list[0].Employees) != 0 || len(list[0].Customers) != 0 {
		t.Fatalf("expected single store without collections, got %+v", list)
	}

	if err := svc.DeleteStore(ctx, storeID); err != nil {
		t.Fatalf("DeleteStore: %v", err)
	}
	if _, err := svc.GetStore(ctx, storeID); !errors.Is(err, petstore.ErrNotFound) {
		t.Fatalf("expected ErrNotFound after delete, got %v", err)
	}

	// El cliente sobrevive al borrado de la tienda, sin vínculos.
	other, err := svc.SaveStore(ctx, petstore.StoreData{PetStoreName: "Other"})
	if err != nil {
		t.Fatalf("SaveStore: %v", err)
	}
	_, err = svc.SaveCustomer(ctx, *other.PetStoreID, petstore.CustomerData{CustomerID: cust.CustomerID})
	if !errors.Is(err, petstore.ErrInvalidAssociation) {
		t.Fatalf("expected ErrInvalidAssociation for surviving customer, got %v", err)
	}
}

func TestSQLite_EmployeeReparentAndCustomerUpdate(t *testing.T) {
	ctx := context.Background()
	svc := newService(t)

	a, _ := svc.SaveStore(ctx, petstore.StoreData{PetStoreName: "A"})
	b, _ := svc.SaveStore(ctx, petstore.StoreData{PetStoreName: "B"})

	emp, err := svc.SaveEmployee(ctx, *a.PetStoreID, petstore.EmployeeData{EmployeeFirstName: "Jo"})
	if err != nil {
		t.Fatalf("SaveEmployee: %v", err)
	}
	if _, err := svc.SaveEmployee(ctx, *b.PetStoreID, petstore.EmployeeData{EmployeeID: emp.EmployeeID, EmployeeFirstName: "Jo"}); err != nil {
		t.Fatalf("re-parent: %v", err)
	}

	gotA, _ := svc.GetStore(ctx, *a.PetStoreID)
	gotB, _ := svc.GetStore(ctx, *b.PetStoreID)
	if len(gotA.Employees) != 0 || len(gotB.Employees) != 1 {
		t.Fatalf("expected employee moved to B, got A=%d B=%d", len(gotA.Employees), len(gotB.Employees))
	}

	cust, err := svc.SaveCustomer(ctx, *a.PetStoreID, petstore.CustomerData{CustomerEmail: "old@example.com"})
	if err != nil {
		t.Fatalf("SaveCustomer: %v", err)
	}
	if _, err := svc.SaveCustomer(ctx, *a.PetStoreID, petstore.CustomerData{CustomerID: cust.CustomerID, CustomerEmail: "new@example.com"}); err != nil {
		t.Fatalf("update customer: %v", err)
	}

	gotA, _ = svc.GetStore(ctx, *a.PetStoreID)
	if len(gotA.Customers) != 1 || gotA.Customers[0].CustomerEmail != "new@example.com" {
		t.Fatalf("expected updated customer, got %+v", gotA.Customers)
	}
}

func TestSQLite_FailedTxLeavesNoTrace(t *testing.T) {
	ctx := context.Background()
	svc := newService(t)

	if _, err := svc.SaveEmployee(ctx, 42, petstore.EmployeeData{EmployeeFirstName: "Ghost"}); !errors.Is(err, petstore.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}

	list, err := svc.ListStores(ctx)
	if err != nil {
		t.Fatalf("ListStores: %v", err)
	}
	if len(list) != 0 {
		t.Fatalf("expected no stores, got %d", len(list))
	}
}
