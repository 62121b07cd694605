package memory

import (
	"context"
	"sort"
	"sync"

	"pet-store/internal/domain/petstore"
)

var (
	ErrNotFound = petstore.ErrNotFound
)

// state es todo lo que vive en memoria. Una tx lee del state publicado y recién
// en la primera escritura trabaja sobre una copia, que se publica si fn no falla.
type state struct {
	stores    map[int64]petstore.Store
	employees map[int64]petstore.Employee
	customers map[int64]petstore.Customer

	// customerID -> storeIDs (tabla pet_store_customer)
	links map[int64]map[int64]struct{}

	nextStoreID    int64
	nextEmployeeID int64
	nextCustomerID int64
}

type petStoreRepo struct {
	mu sync.Mutex
	st *state
}

func NewPetStoreRepo() petstore.Repository {
	return &petStoreRepo{
		st: &state{
			stores:    make(map[int64]petstore.Store),
			employees: make(map[int64]petstore.Employee),
			customers: make(map[int64]petstore.Customer),
			links:     make(map[int64]map[int64]struct{}),
		},
	}
}

// WithinTx serializa las transacciones (un solo writer a la vez).
// Backend pensado para dev y tests: todo pasa bajo un único mutex.
func (r *petStoreRepo) WithinTx(ctx context.Context, fn func(es petstore.EntityStore) error) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if err := ctx.Err(); err != nil {
		return err
	}

	tx := &memTx{base: r.st}
	if err := fn(tx); err != nil {
		return err
	}

	if tx.work != nil {
		r.st = tx.work
	}
	return nil
}

// memTx copia el state solo si la tx escribe (copy-on-write).
type memTx struct {
	base *state
	work *state
}

func (t *memTx) read() *state {
	if t.work != nil {
		return t.work
	}
	return t.base
}

func (t *memTx) write() *state {
	if t.work == nil {
		t.work = t.base.clone()
	}
	return t.work
}

func (t *memTx) FindStore(ctx context.Context, id int64) (petstore.Store, error) {
	return t.read().FindStore(ctx, id)
}

func (t *memTx) ListStores(ctx context.Context) ([]petstore.Store, error) {
	return t.read().ListStores(ctx)
}

func (t *memTx) FindEmployee(ctx context.Context, id int64) (petstore.Employee, error) {
	return t.read().FindEmployee(ctx, id)
}

func (t *memTx) FindCustomer(ctx context.Context, id int64) (petstore.Customer, error) {
	return t.read().FindCustomer(ctx, id)
}

func (t *memTx) SaveStore(ctx context.Context, st petstore.Store) (petstore.Store, error) {
	return t.write().SaveStore(ctx, st)
}

func (t *memTx) DeleteStore(ctx context.Context, id int64) error {
	return t.write().DeleteStore(ctx, id)
}

func (t *memTx) SaveEmployee(ctx context.Context, e petstore.Employee) (petstore.Employee, error) {
	return t.write().SaveEmployee(ctx, e)
}

func (t *memTx) SaveCustomer(ctx context.Context, c petstore.Customer) (petstore.Customer, error) {
	return t.write().SaveCustomer(ctx, c)
}

func (s *state) clone() *state {
	out := &state{
		stores:         make(map[int64]petstore.Store, len(s.stores)),
		employees:      make(map[int64]petstore.Employee, len(s.employees)),
		customers:      make(map[int64]petstore.Customer, len(s.customers)),
		links:          make(map[int64]map[int64]struct{}, len(s.links)),
		nextStoreID:    s.nextStoreID,
		nextEmployeeID: s.nextEmployeeID,
		nextCustomerID: s.nextCustomerID,
	}
	// Las entidades guardadas no tienen slices (solo escalares), copiar el valor alcanza.
	for k, v := range s.stores {
		out.stores[k] = v
	}
	for k, v := range s.employees {
		out.employees[k] = v
	}
	for k, v := range s.customers {
		out.customers[k] = v
	}
	for cid, set := range s.links {
		cp := make(map[int64]struct{}, len(set))
		for sid := range set {
			cp[sid] = struct{}{}
		}
		out.links[cid] = cp
	}
	return out
}

func (s *state) FindStore(ctx context.Context, id int64) (petstore.Store, error) {
	st, ok := s.stores[id]
	if !ok {
		return petstore.Store{}, ErrNotFound
	}

	st.Employees = make([]petstore.Employee, 0)
	for _, e := range s.employees {
		if e.StoreID == id {
			st.Employees = append(st.Employees, e)
		}
	}
	sort.Slice(st.Employees, func(i, j int) bool { return st.Employees[i].ID < st.Employees[j].ID })

	st.Customers = make([]petstore.Customer, 0)
	for cid, set := range s.links {
		if _, linked := set[id]; !linked {
			continue
		}
		if c, ok := s.customers[cid]; ok {
			c.StoreIDs = s.storeIDsOf(cid)
			st.Customers = append(st.Customers, c)
		}
	}
	sort.Slice(st.Customers, func(i, j int) bool { return st.Customers[i].ID < st.Customers[j].ID })

	return st, nil
}

func (s *state) ListStores(ctx context.Context) ([]petstore.Store, error) {
	out := make([]petstore.Store, 0, len(s.stores))
	for _, st := range s.stores {
		out = append(out, st)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (s *state) SaveStore(ctx context.Context, st petstore.Store) (petstore.Store, error) {
	if st.ID == 0 {
		s.nextStoreID++
		st.ID = s.nextStoreID
	} else if _, ok := s.stores[st.ID]; !ok {
		return petstore.Store{}, ErrNotFound
	}

	row := st
	row.Employees = nil
	row.Customers = nil
	s.stores[st.ID] = row

	return st, nil
}

func (s *state) DeleteStore(ctx context.Context, id int64) error {
	if _, ok := s.stores[id]; !ok {
		return ErrNotFound
	}

	for eid, e := range s.employees {
		if e.StoreID == id {
			delete(s.employees, eid)
		}
	}
	for _, set := range s.links {
		delete(set, id)
	}
	delete(s.stores, id)
	return nil
}

func (s *state) FindEmployee(ctx context.Context, id int64) (petstore.Employee, error) {
	e, ok := s.employees[id]
	if !ok {
		return petstore.Employee{}, ErrNotFound
	}
	return e, nil
}

func (s *state) SaveEmployee(ctx context.Context, e petstore.Employee) (petstore.Employee, error) {
	if _, ok := s.stores[e.StoreID]; !ok {
		return petstore.Employee{}, ErrNotFound
	}

	if e.ID == 0 {
		s.nextEmployeeID++
		e.ID = s.nextEmployeeID
	} else if _, ok := s.employees[e.ID]; !ok {
		return petstore.Employee{}, ErrNotFound
	}

	s.employees[e.ID] = e
	return e, nil
}

func (s *state) FindCustomer(ctx context.Context, id int64) (petstore.Customer, error) {
	c, ok := s.customers[id]
	if !ok {
		return petstore.Customer{}, ErrNotFound
	}
	c.StoreIDs = s.storeIDsOf(id)
	return c, nil
}

func (s *state) SaveCustomer(ctx context.Context, c petstore.Customer) (petstore.Customer, error) {
	for _, sid := range c.StoreIDs {
		if _, ok := s.stores[sid]; !ok {
			return petstore.Customer{}, ErrNotFound
		}
	}

	if c.ID == 0 {
		s.nextCustomerID++
		c.ID = s.nextCustomerID
	} else if _, ok := s.customers[c.ID]; !ok {
		return petstore.Customer{}, ErrNotFound
	}

	row := c
	row.StoreIDs = nil
	s.customers[c.ID] = row

	set := make(map[int64]struct{}, len(c.StoreIDs))
	for _, sid := range c.StoreIDs {
		set[sid] = struct{}{}
	}
	s.links[c.ID] = set

	c.StoreIDs = s.storeIDsOf(c.ID)
	return c, nil
}

func (s *state) storeIDsOf(customerID int64) []int64 {
	set := s.links[customerID]
	out := make([]int64, 0, len(set))
	for sid := range set {
		out = append(out, sid)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}
