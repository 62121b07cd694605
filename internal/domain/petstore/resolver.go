package petstore

import (
	"context"
	"errors"
)

// La presencia del id es la única señal que distingue "crear" de "actualizar".

func findOrCreateStore(ctx context.Context, es EntityStore, storeID *int64) (Store, error) {
	if storeID == nil {
		return Store{}, nil
	}
	return findStoreByID(ctx, es, *storeID)
}

func findStoreByID(ctx context.Context, es EntityStore, storeID int64) (Store, error) {
	s, err := es.FindStore(ctx, storeID)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return Store{}, notFound("Pet store with ID=%d not found", storeID)
		}
		return Store{}, err
	}
	return s, nil
}

// findOrCreateEmployee no valida la tienda actual del empleado: cualquier id
// existente se acepta y luego se re-asigna a la tienda destino.
func findOrCreateEmployee(ctx context.Context, es EntityStore, employeeID *int64) (Employee, error) {
	if employeeID == nil {
		return Employee{}, nil
	}

	e, err := es.FindEmployee(ctx, *employeeID)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return Employee{}, notFound("Employee with ID=%d does not exist.", *employeeID)
		}
		return Employee{}, err
	}
	return e, nil
}

// findOrCreateCustomer exige que un cliente existente ya compre en la tienda.
// No hay re-vinculación implícita entre tiendas.
func findOrCreateCustomer(ctx context.Context, es EntityStore, storeID int64, customerID *int64) (Customer, error) {
	if customerID == nil {
		return Customer{}, nil
	}

	c, err := es.FindCustomer(ctx, *customerID)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return Customer{}, notFound("Customer with ID=%d does not exist.", *customerID)
		}
		return Customer{}, err
	}

	if !c.ShopsAt(storeID) {
		return Customer{}, invalidAssociation("Customer with ID=%d does not shop at this store", *customerID)
	}
	return c, nil
}

// attachEmployee pisa cualquier tienda anterior y mantiene la vista en memoria
// de la tienda al día. Lo que se persiste es e.StoreID.
func attachEmployee(s *Store, e *Employee) {
	e.StoreID = s.ID
	for i := range s.Employees {
		if s.Employees[i].ID != 0 && s.Employees[i].ID == e.ID {
			s.Employees[i] = *e
			return
		}
	}
	s.Employees = append(s.Employees, *e)
}

// attachCustomer mantiene ambos lados del many-to-many sin duplicados.
// Lo que se persiste es c.StoreIDs.
func attachCustomer(s *Store, c *Customer) {
	if !c.ShopsAt(s.ID) {
		c.StoreIDs = append(c.StoreIDs, s.ID)
	}
	for i := range s.Customers {
		if s.Customers[i].ID != 0 && s.Customers[i].ID == c.ID {
			s.Customers[i] = *c
			return
		}
	}
	s.Customers = append(s.Customers, *c)
}
