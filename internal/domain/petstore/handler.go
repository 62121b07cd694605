package petstore

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"pet-store/internal/platform/logger"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
)

func RegisterRoutes(r chi.Router, svc *Service, log logger.Logger) {
	if log == nil {
		log = logger.Nop()
	}

	r.Route("/pet_store", func(pr chi.Router) {
		pr.Post("/", createStoreHandler(svc, log))
		pr.Get("/", listStoresHandler(svc, log))

		pr.Get("/{petStoreID}", getStoreHandler(svc, log))
		pr.Put("/{petStoreID}", updateStoreHandler(svc, log))
		pr.Delete("/{petStoreID}", deleteStoreHandler(svc, log))

		// Empleados y clientes siempre cuelgan de una tienda
		pr.Post("/{petStoreID}/employee", addEmployeeHandler(svc, log))
		pr.Post("/{petStoreID}/customer", addCustomerHandler(svc, log))
	})
}

// messageResponse es el cuerpo uniforme para errores y confirmaciones.
type messageResponse struct {
	Message string `json:"message"`
}

// createStoreHandler godoc
// @Summary Crear o actualizar tienda
// @Description Sin `petStoreId` crea una tienda nueva. Con `petStoreId` actualiza la existente (todos los campos escalares se pisan).
// @Tags pet_store
// @Accept json
// @Produce json
// @Param payload body StoreData true "Datos de la tienda"
// @Success 201 {object} StoreData
// @Failure 400 {object} messageResponse "invalid json"
// @Failure 404 {object} messageResponse "pet store not found"
// @Router /pet_store [post]
func createStoreHandler(svc *Service, log logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req StoreData
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, r, log, invalidInput("invalid json"))
			return
		}

		log.Info("received request to create and update pet store data", map[string]any{
			"request_id":     chimw.GetReqID(r.Context()),
			"pet_store_name": req.PetStoreName,
		})

		out, err := svc.SaveStore(r.Context(), req)
		if err != nil {
			writeError(w, r, log, err)
			return
		}

		writeJSON(w, http.StatusCreated, out)
	}
}

// updateStoreHandler godoc
// @Summary Actualizar tienda
// @Description Usa el id del path (pisa el del body) y delega en la misma lógica que el POST.
// @Tags pet_store
// @Accept json
// @Produce json
// @Param petStoreID path int true "ID de la tienda"
// @Param payload body StoreData true "Datos de la tienda"
// @Success 200 {object} StoreData
// @Failure 400 {object} messageResponse "invalid json / id inválido"
// @Failure 404 {object} messageResponse "pet store not found"
// @Router /pet_store/{petStoreID} [put]
func updateStoreHandler(svc *Service, log logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		storeID, err := pathID(r, "petStoreID")
		if err != nil {
			writeError(w, r, log, err)
			return
		}

		var req StoreData
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, r, log, invalidInput("invalid json"))
			return
		}
		req.PetStoreID = &storeID

		log.Info("updating pet store data", map[string]any{
			"request_id":   chimw.GetReqID(r.Context()),
			"pet_store_id": storeID,
		})

		out, err := svc.SaveStore(r.Context(), req)
		if err != nil {
			writeError(w, r, log, err)
			return
		}

		writeJSON(w, http.StatusOK, out)
	}
}

// addEmployeeHandler godoc
// @Summary Agregar empleado a una tienda
// @Description Sin `employeeId` crea un empleado. Con `employeeId` lo busca (en cualquier tienda) y lo re-asigna a esta.
// @Tags pet_store
// @Accept json
// @Produce json
// @Param petStoreID path int true "ID de la tienda"
// @Param payload body EmployeeData true "Datos del empleado"
// @Success 201 {object} EmployeeData
// @Failure 400 {object} messageResponse "invalid json / id inválido"
// @Failure 404 {object} messageResponse "pet store / employee not found"
// @Router /pet_store/{petStoreID}/employee [post]
func addEmployeeHandler(svc *Service, log logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		storeID, err := pathID(r, "petStoreID")
		if err != nil {
			writeError(w, r, log, err)
			return
		}

		var req EmployeeData
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, r, log, invalidInput("invalid json"))
			return
		}

		log.Info("adding employee to pet store", map[string]any{
			"request_id":   chimw.GetReqID(r.Context()),
			"pet_store_id": storeID,
		})

		out, err := svc.SaveEmployee(r.Context(), storeID, req)
		if err != nil {
			writeError(w, r, log, err)
			return
		}

		writeJSON(w, http.StatusCreated, out)
	}
}

// addCustomerHandler godoc
// @Summary Agregar cliente a una tienda
// @Description Sin `customerId` crea un cliente vinculado a la tienda. Con `customerId` el cliente ya tiene que comprar en esta tienda (409 si no).
// @Tags pet_store
// @Accept json
// @Produce json
// @Param petStoreID path int true "ID de la tienda"
// @Param payload body CustomerData true "Datos del cliente"
// @Success 201 {object} CustomerData
// @Failure 400 {object} messageResponse "invalid json / id inválido"
// @Failure 404 {object} messageResponse "pet store / customer not found"
// @Failure 409 {object} messageResponse "customer does not shop at this store"
// @Router /pet_store/{petStoreID}/customer [post]
func addCustomerHandler(svc *Service, log logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		storeID, err := pathID(r, "petStoreID")
		if err != nil {
			writeError(w, r, log, err)
			return
		}

		var req CustomerData
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, r, log, invalidInput("invalid json"))
			return
		}

		log.Info("adding customer to pet store", map[string]any{
			"request_id":   chimw.GetReqID(r.Context()),
			"pet_store_id": storeID,
		})

		out, err := svc.SaveCustomer(r.Context(), storeID, req)
		if err != nil {
			writeError(w, r, log, err)
			return
		}

		writeJSON(w, http.StatusCreated, out)
	}
}

// listStoresHandler godoc
// @Summary Listar tiendas
// @Description Devuelve todas las tiendas. `employees` y `customers` vienen siempre vacíos en el listado.
// @Tags pet_store
// @Produce json
// @Success 200 {array} StoreData
// @Failure 500 {object} messageResponse "internal error"
// @Router /pet_store [get]
func listStoresHandler(svc *Service, log logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		out, err := svc.ListStores(r.Context())
		if err != nil {
			writeError(w, r, log, err)
			return
		}

		writeJSON(w, http.StatusOK, out)
	}
}

// getStoreHandler godoc
// @Summary Obtener tienda
// @Description Devuelve la tienda con sus empleados y clientes.
// @Tags pet_store
// @Produce json
// @Param petStoreID path int true "ID de la tienda"
// @Success 200 {object} StoreData
// @Failure 400 {object} messageResponse "id inválido"
// @Failure 404 {object} messageResponse "pet store not found"
// @Router /pet_store/{petStoreID} [get]
func getStoreHandler(svc *Service, log logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		storeID, err := pathID(r, "petStoreID")
		if err != nil {
			writeError(w, r, log, err)
			return
		}

		out, err := svc.GetStore(r.Context(), storeID)
		if err != nil {
			writeError(w, r, log, err)
			return
		}

		writeJSON(w, http.StatusOK, out)
	}
}

// deleteStoreHandler godoc
// @Summary Borrar tienda
// @Description Borra la tienda, sus empleados y sus vínculos con clientes. Los clientes se conservan.
// @Tags pet_store
// @Produce json
// @Param petStoreID path int true "ID de la tienda"
// @Success 200 {object} messageResponse
// @Failure 400 {object} messageResponse "id inválido"
// @Failure 404 {object} messageResponse "pet store not found"
// @Router /pet_store/{petStoreID} [delete]
func deleteStoreHandler(svc *Service, log logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		storeID, err := pathID(r, "petStoreID")
		if err != nil {
			writeError(w, r, log, err)
			return
		}

		log.Info("deleting pet store", map[string]any{
			"request_id":   chimw.GetReqID(r.Context()),
			"pet_store_id": storeID,
		})

		if err := svc.DeleteStore(r.Context(), storeID); err != nil {
			writeError(w, r, log, err)
			return
		}

		writeJSON(w, http.StatusOK, messageResponse{
			Message: fmt.Sprintf("Pet store with ID= %d has been successfully deleted.", storeID),
		})
	}
}

func pathID(r *http.Request, name string) (int64, error) {
	raw := chi.URLParam(r, name)
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, invalidInput("invalid pet store id %q", raw)
	}
	return id, nil
}

// writeError traduce el tipo de error a status HTTP. Los errores no clasificados
// salen como 500 sin exponer el detalle (queda en el log).
func writeError(w http.ResponseWriter, r *http.Request, log logger.Logger, err error) {
	status := http.StatusInternalServerError
	msg := "internal error"

	switch {
	case errors.Is(err, ErrNotFound):
		status = http.StatusNotFound
		msg = err.Error()
	case errors.Is(err, ErrInvalidAssociation):
		status = http.StatusConflict
		msg = err.Error()
	case errors.Is(err, ErrInvalidInput):
		status = http.StatusBadRequest
		msg = err.Error()
	}

	fields := map[string]any{
		"request_id": chimw.GetReqID(r.Context()),
		"method":     r.Method,
		"path":       r.URL.Path,
		"status":     status,
		"error":      err.Error(),
	}
	if status >= http.StatusInternalServerError {
		log.Error("request failed", fields)
	} else {
		log.Warn("request rejected", fields)
	}

	writeJSON(w, status, messageResponse{Message: msg})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
