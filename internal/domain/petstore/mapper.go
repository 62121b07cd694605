package petstore

import "sort"

// StoreData es la forma que viaja por la API (request y response).
type StoreData struct {
	PetStoreID      *int64         `json:"petStoreId"`
	PetStoreName    string         `json:"petStoreName"`
	PetStoreAddress string         `json:"petStoreAddress"`
	PetStoreCity    string         `json:"petStoreCity"`
	PetStoreState   string         `json:"petStoreState"`
	PetStoreZip     string         `json:"petStoreZip"`
	PetStorePhone   string         `json:"petStorePhone"`
	Customers       []CustomerData `json:"customers"`
	Employees       []EmployeeData `json:"employees"`
}

type EmployeeData struct {
	EmployeeID        *int64 `json:"employeeId"`
	EmployeeFirstName string `json:"employeeFirstName"`
	EmployeeLastName  string `json:"employeeLastName"`
	EmployeePhone     string `json:"employeePhone"`
	EmployeeJobTitle  string `json:"employeeJobTitle"`
}

type CustomerData struct {
	CustomerID        *int64 `json:"customerId"`
	CustomerFirstName string `json:"customerFirstName"`
	CustomerLastName  string `json:"customerLastName"`
	CustomerEmail     string `json:"customerEmail"`
}

// ToStoreData convierte la tienda con sus empleados y clientes anidados.
// Las colecciones salen siempre como arrays (nunca null) y ordenadas por id.
func ToStoreData(s Store) StoreData {
	out := StoreData{
		PetStoreID:      idPtr(s.ID),
		PetStoreName:    s.Name,
		PetStoreAddress: s.Address,
		PetStoreCity:    s.City,
		PetStoreState:   s.State,
		PetStoreZip:     s.Zip,
		PetStorePhone:   s.Phone,
		Customers:       make([]CustomerData, 0, len(s.Customers)),
		Employees:       make([]EmployeeData, 0, len(s.Employees)),
	}

	for _, c := range s.Customers {
		out.Customers = append(out.Customers, ToCustomerData(c))
	}
	for _, e := range s.Employees {
		out.Employees = append(out.Employees, ToEmployeeData(e))
	}

	sort.Slice(out.Customers, func(i, j int) bool {
		return idValue(out.Customers[i].CustomerID) < idValue(out.Customers[j].CustomerID)
	})
	sort.Slice(out.Employees, func(i, j int) bool {
		return idValue(out.Employees[i].EmployeeID) < idValue(out.Employees[j].EmployeeID)
	})

	return out
}

// ToStoreSummary es la variante del listado: se construye igual y luego se
// vacían las colecciones para acotar el tamaño de la respuesta.
func ToStoreSummary(s Store) StoreData {
	out := ToStoreData(s)
	out.clearRelations()
	return out
}

func (d *StoreData) clearRelations() {
	d.Customers = d.Customers[:0]
	d.Employees = d.Employees[:0]
}

func ToEmployeeData(e Employee) EmployeeData {
	return EmployeeData{
		EmployeeID:        idPtr(e.ID),
		EmployeeFirstName: e.FirstName,
		EmployeeLastName:  e.LastName,
		EmployeePhone:     e.Phone,
		EmployeeJobTitle:  e.JobTitle,
	}
}

func ToCustomerData(c Customer) CustomerData {
	return CustomerData{
		CustomerID:        idPtr(c.ID),
		CustomerFirstName: c.FirstName,
		CustomerLastName:  c.LastName,
		CustomerEmail:     c.Email,
	}
}

// copyStoreFields pisa todos los escalares; un campo omitido en el request queda vacío.
// Nunca toca las colecciones (eso es trabajo del resolver).
func copyStoreFields(dst *Store, src StoreData) {
	dst.ID = idValue(src.PetStoreID)
	dst.Name = src.PetStoreName
	dst.Address = src.PetStoreAddress
	dst.City = src.PetStoreCity
	dst.State = src.PetStoreState
	dst.Zip = src.PetStoreZip
	dst.Phone = src.PetStorePhone
}

func copyEmployeeFields(dst *Employee, src EmployeeData) {
	dst.ID = idValue(src.EmployeeID)
	dst.FirstName = src.EmployeeFirstName
	dst.LastName = src.EmployeeLastName
	dst.Phone = src.EmployeePhone
	dst.JobTitle = src.EmployeeJobTitle
}

func copyCustomerFields(dst *Customer, src CustomerData) {
	dst.ID = idValue(src.CustomerID)
	dst.FirstName = src.CustomerFirstName
	dst.LastName = src.CustomerLastName
	dst.Email = src.CustomerEmail
}

func idPtr(id int64) *int64 {
	if id == 0 {
		return nil
	}
	return &id
}

func idValue(id *int64) int64 {
	if id == nil {
		return 0
	}
	return *id
}
