package petstore

// Store es la tienda, raíz del grafo de relaciones.
// ID == 0 significa entidad nueva (todavía sin persistir).
type Store struct {
	ID int64

	Name    string
	Address string
	City    string
	State   string
	Zip     string
	Phone   string

	// Solo vienen cargados en FindStore.
	Employees []Employee
	Customers []Customer
}

// Employee pertenece a exactamente una tienda.
type Employee struct {
	ID      int64
	StoreID int64 // FK pet_store

	FirstName string
	LastName  string
	Phone     string
	JobTitle  string
}

// Customer puede comprar en varias tiendas (many-to-many).
type Customer struct {
	ID int64

	FirstName string
	LastName  string
	Email     string

	// IDs de las tiendas vinculadas (tabla pet_store_customer).
	StoreIDs []int64
}

// ShopsAt indica si el cliente ya está vinculado a la tienda.
func (c Customer) ShopsAt(storeID int64) bool {
	for _, id := range c.StoreIDs {
		if id == storeID {
			return true
		}
	}
	return false
}
