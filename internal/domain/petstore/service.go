package petstore

import (
	"context"

	"pet-store/internal/platform/logger"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
)

const tracerName = "petstore-service"

type Service struct {
	repo Repository
	log  logger.Logger
}

func NewService(repo Repository, log logger.Logger) *Service {
	if log == nil {
		log = logger.Nop()
	}
	return &Service{
		repo: repo,
		log:  log.With(map[string]any{"component": "petstore"}),
	}
}

// SaveStore crea (sin id) o actualiza (con id) una tienda.
func (s *Service) SaveStore(ctx context.Context, in StoreData) (out StoreData, err error) {
	ctx, end := s.trace(ctx, "SaveStore", attribute.Int64("pet_store.id", idValue(in.PetStoreID)))
	defer func() { end(err) }()

	err = s.repo.WithinTx(ctx, func(es EntityStore) error {
		store, err := findOrCreateStore(ctx, es, in.PetStoreID)
		if err != nil {
			return err
		}

		copyStoreFields(&store, in)

		saved, err := es.SaveStore(ctx, store)
		if err != nil {
			return err
		}
		out = ToStoreData(saved)
		return nil
	})
	if err != nil {
		return StoreData{}, err
	}

	s.log.Info("pet store saved", map[string]any{"pet_store_id": idValue(out.PetStoreID)})
	return out, nil
}

// SaveEmployee agrega (o re-asigna) un empleado a la tienda storeID.
func (s *Service) SaveEmployee(ctx context.Context, storeID int64, in EmployeeData) (out EmployeeData, err error) {
	ctx, end := s.trace(ctx, "SaveEmployee",
		attribute.Int64("pet_store.id", storeID),
		attribute.Int64("employee.id", idValue(in.EmployeeID)),
	)
	defer func() { end(err) }()

	if storeID <= 0 {
		return EmployeeData{}, invalidInput("invalid pet store id %d", storeID)
	}

	err = s.repo.WithinTx(ctx, func(es EntityStore) error {
		store, err := findStoreByID(ctx, es, storeID)
		if err != nil {
			return err
		}

		employee, err := findOrCreateEmployee(ctx, es, in.EmployeeID)
		if err != nil {
			return err
		}

		copyEmployeeFields(&employee, in)
		attachEmployee(&store, &employee)

		saved, err := es.SaveEmployee(ctx, employee)
		if err != nil {
			return err
		}
		out = ToEmployeeData(saved)
		return nil
	})
	if err != nil {
		return EmployeeData{}, err
	}

	s.log.Info("employee saved", map[string]any{
		"pet_store_id": storeID,
		"employee_id":  idValue(out.EmployeeID),
	})
	return out, nil
}

// SaveCustomer agrega un cliente nuevo a la tienda o actualiza uno que ya compra en ella.
func (s *Service) SaveCustomer(ctx context.Context, storeID int64, in CustomerData) (out CustomerData, err error) {
	ctx, end := s.trace(ctx, "SaveCustomer",
		attribute.Int64("pet_store.id", storeID),
		attribute.Int64("customer.id", idValue(in.CustomerID)),
	)
	defer func() { end(err) }()

	if storeID <= 0 {
		return CustomerData{}, invalidInput("invalid pet store id %d", storeID)
	}

	err = s.repo.WithinTx(ctx, func(es EntityStore) error {
		store, err := findStoreByID(ctx, es, storeID)
		if err != nil {
			return err
		}

		customer, err := findOrCreateCustomer(ctx, es, storeID, in.CustomerID)
		if err != nil {
			return err
		}

		copyCustomerFields(&customer, in)
		attachCustomer(&store, &customer)

		saved, err := es.SaveCustomer(ctx, customer)
		if err != nil {
			return err
		}
		out = ToCustomerData(saved)
		return nil
	})
	if err != nil {
		return CustomerData{}, err
	}

	s.log.Info("customer saved", map[string]any{
		"pet_store_id": storeID,
		"customer_id":  idValue(out.CustomerID),
	})
	return out, nil
}

// ListStores devuelve todas las tiendas sin colecciones anidadas.
func (s *Service) ListStores(ctx context.Context) (out []StoreData, err error) {
	ctx, end := s.trace(ctx, "ListStores")
	defer func() { end(err) }()

	err = s.repo.WithinTx(ctx, func(es EntityStore) error {
		stores, err := es.ListStores(ctx)
		if err != nil {
			return err
		}

		out = make([]StoreData, 0, len(stores))
		for _, st := range stores {
			out = append(out, ToStoreSummary(st))
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// GetStore devuelve la tienda con empleados y clientes.
func (s *Service) GetStore(ctx context.Context, storeID int64) (out StoreData, err error) {
	ctx, end := s.trace(ctx, "GetStore", attribute.Int64("pet_store.id", storeID))
	defer func() { end(err) }()

	err = s.repo.WithinTx(ctx, func(es EntityStore) error {
		store, err := findStoreByID(ctx, es, storeID)
		if err != nil {
			return err
		}
		out = ToStoreData(store)
		return nil
	})
	if err != nil {
		return StoreData{}, err
	}
	return out, nil
}

func (s *Service) DeleteStore(ctx context.Context, storeID int64) (err error) {
	ctx, end := s.trace(ctx, "DeleteStore", attribute.Int64("pet_store.id", storeID))
	defer func() { end(err) }()

	err = s.repo.WithinTx(ctx, func(es EntityStore) error {
		if _, err := findStoreByID(ctx, es, storeID); err != nil {
			return err
		}
		return es.DeleteStore(ctx, storeID)
	})
	if err != nil {
		return err
	}

	s.log.Info("pet store deleted", map[string]any{"pet_store_id": storeID})
	return nil
}

// trace abre un span por operación; el provider lo instala quien hostea el servicio
// (sin provider, otel usa no-op).
func (s *Service) trace(ctx context.Context, op string, attrs ...attribute.KeyValue) (context.Context, func(error)) {
	ctx, span := otel.Tracer(tracerName).Start(ctx, op)
	span.SetAttributes(attrs...)

	return ctx, func(err error) {
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
		}
		span.End()
	}
}
