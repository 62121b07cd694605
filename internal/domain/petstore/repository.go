package petstore

import "context"

// EntityStore son las operaciones de persistencia sobre las tres entidades.
// Los Find* devuelven ErrNotFound si el id no existe.
// Save* con ID == 0 inserta y devuelve la entidad con el id generado;
// con ID != 0 actualiza todos los campos escalares.
type EntityStore interface {
	FindStore(ctx context.Context, id int64) (Store, error)
	ListStores(ctx context.Context) ([]Store, error)
	SaveStore(ctx context.Context, s Store) (Store, error)
	// DeleteStore borra la tienda, sus empleados y sus vínculos con clientes.
	// Los clientes no se borran.
	DeleteStore(ctx context.Context, id int64) error

	FindEmployee(ctx context.Context, id int64) (Employee, error)
	// SaveEmployee persiste también el vínculo con la tienda (StoreID).
	SaveEmployee(ctx context.Context, e Employee) (Employee, error)

	FindCustomer(ctx context.Context, id int64) (Customer, error)
	// SaveCustomer reemplaza el set completo de vínculos por c.StoreIDs.
	SaveCustomer(ctx context.Context, c Customer) (Customer, error)
}

// Repository abre una unidad de trabajo: todo lo que haga fn se confirma
// junto o se descarta si fn devuelve error.
type Repository interface {
	WithinTx(ctx context.Context, fn func(es EntityStore) error) error
}
