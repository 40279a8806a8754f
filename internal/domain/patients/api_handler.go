package patients

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
)

func RegisterAPIRoutes(r chi.Router, svc *Service) {
	r.Route("/api/pacientes", func(pr chi.Router) {
		pr.Get("/", listPatientsHandler(svc))
		pr.Post("/", createPatientHandler(svc))

		pr.Get("/{patientID}", getPatientHandler(svc))
		pr.Put("/{patientID}", updatePatientHandler(svc))
		pr.Delete("/{patientID}", deletePatientHandler(svc))

		// Cargar en el borrador compartido (modo edición)
		pr.Post("/{patientID}/editar", loadDraftHandler(svc))
	})

	r.Route("/api/borrador", func(br chi.Router) {
		br.Get("/", getDraftHandler(svc))
		br.Patch("/", updateFieldHandler(svc))
		br.Delete("/", resetDraftHandler(svc))
		br.Post("/enviar", submitDraftHandler(svc))
	})
}

// patientRequest son los cinco campos descriptivos de un paciente.
type patientRequest struct {
	Nombre      string `json:"nombre" example:"Rex"`
	Propietario string `json:"propietario" example:"Ana"`
	Email       string `json:"email" example:"a@x.com"`
	Fecha       string `json:"fecha" example:"2024-01-01"`
	Sintomas    string `json:"sintomas" example:"tos"`
}

// patientResponse es un paciente tal como lo devuelve la API.
type patientResponse struct {
	ID          string `json:"id"`
	Nombre      string `json:"nombre"`
	Propietario string `json:"propietario"`
	Email       string `json:"email"`
	Fecha       string `json:"fecha"`
	Sintomas    string `json:"sintomas"`
}

// fieldUpdateRequest actualiza un solo campo del borrador.
type fieldUpdateRequest struct {
	Campo string `json:"campo" enums:"nombre,propietario,email,fecha,sintomas"`
	Valor string `json:"valor"`
}

// validationErrorResponse se devuelve con 400 cuando faltan campos.
type validationErrorResponse struct {
	Error  string   `json:"error"`
	Campos []string `json:"campos"`
}

// submitResponse es el resultado de enviar el borrador.
type submitResponse struct {
	Accion   Action          `json:"accion" enums:"created,updated"`
	Paciente patientResponse `json:"paciente"`
}

// listPatientsHandler godoc
// @Summary Listar pacientes
// @Description Devuelve todos los pacientes en orden de registro.
// @Tags pacientes
// @Produce json
// @Success 200 {array} patientResponse
// @Router /api/pacientes [get]
func listPatientsHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		items := svc.List()

		out := make([]patientResponse, 0, len(items))
		for _, p := range items {
			out = append(out, toPatientResponse(p))
		}
		writeJSON(w, http.StatusOK, out)
	}
}

// createPatientHandler godoc
// @Summary Registrar paciente
// @Description Valida que los cinco campos no estén vacíos y agrega el paciente al final del listado. No modifica el borrador del formulario.
// @Tags pacientes
// @Accept json
// @Produce json
// @Param payload body patientRequest true "Datos del paciente"
// @Success 201 {object} patientResponse
// @Failure 400 {object} validationErrorResponse
// @Router /api/pacientes [post]
func createPatientHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req patientRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}

		p, err := svc.Create(req.fields())
		if err != nil {
			writeServiceError(w, err)
			return
		}
		writeJSON(w, http.StatusCreated, toPatientResponse(p))
	}
}

// getPatientHandler godoc
// @Summary Obtener paciente
// @Tags pacientes
// @Produce json
// @Param patientID path string true "ID del paciente"
// @Success 200 {object} patientResponse
// @Failure 404 {string} string "patient not found"
// @Router /api/pacientes/{patientID} [get]
func getPatientHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		p, err := svc.Get(chi.URLParam(r, "patientID"))
		if err != nil {
			writeServiceError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, toPatientResponse(p))
	}
}

// updatePatientHandler godoc
// @Summary Editar paciente
// @Description Reemplaza los cinco campos del paciente. El id y la posición en el listado no cambian.
// @Tags pacientes
// @Accept json
// @Produce json
// @Param patientID path string true "ID del paciente"
// @Param payload body patientRequest true "Datos completos del paciente"
// @Success 200 {object} patientResponse
// @Failure 400 {object} validationErrorResponse
// @Failure 404 {string} string "patient not found"
// @Router /api/pacientes/{patientID} [put]
func updatePatientHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req patientRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}

		p, err := svc.Update(chi.URLParam(r, "patientID"), req.fields())
		if err != nil {
			writeServiceError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, toPatientResponse(p))
	}
}

// deletePatientHandler godoc
// @Summary Eliminar paciente
// @Description Elimina el paciente. Por API el borrado es explícito (no pide confirmación).
// @Tags pacientes
// @Param patientID path string true "ID del paciente"
// @Success 204
// @Failure 404 {string} string "patient not found"
// @Router /api/pacientes/{patientID} [delete]
func deletePatientHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := svc.Remove(chi.URLParam(r, "patientID")); err != nil {
			writeServiceError(w, err)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}

// loadDraftHandler godoc
// @Summary Editar en el formulario
// @Description Copia el paciente al borrador compartido y lo marca como objetivo de edición. Un borrador sin guardar se descarta.
// @Tags borrador
// @Produce json
// @Param patientID path string true "ID del paciente"
// @Success 200 {object} DraftState
// @Failure 404 {string} string "patient not found"
// @Router /api/pacientes/{patientID}/editar [post]
func loadDraftHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := svc.Edit(chi.URLParam(r, "patientID")); err != nil {
			writeServiceError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, svc.Draft())
	}
}

// getDraftHandler godoc
// @Summary Ver borrador
// @Tags borrador
// @Produce json
// @Success 200 {object} DraftState
// @Router /api/borrador [get]
func getDraftHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, svc.Draft())
	}
}

// updateFieldHandler godoc
// @Summary Actualizar un campo del borrador
// @Tags borrador
// @Accept json
// @Produce json
// @Param payload body fieldUpdateRequest true "Campo y valor"
// @Success 200 {object} DraftState
// @Failure 400 {string} string "unknown field"
// @Router /api/borrador [patch]
func updateFieldHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req fieldUpdateRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}

		st, err := svc.UpdateField(req.Campo, req.Valor)
		if err != nil {
			writeServiceError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, st)
	}
}

// resetDraftHandler godoc
// @Summary Limpiar borrador
// @Description Limpia el borrador y sale del modo edición.
// @Tags borrador
// @Produce json
// @Success 200 {object} DraftState
// @Router /api/borrador [delete]
func resetDraftHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		svc.CancelEdit()
		writeJSON(w, http.StatusOK, svc.Draft())
	}
}

// submitDraftHandler godoc
// @Summary Enviar borrador
// @Description Con objetivo de edición reemplaza ese paciente (200); si no, agrega uno nuevo (201). Con campos vacíos devuelve 400 y conserva el borrador.
// @Tags borrador
// @Produce json
// @Success 200 {object} submitResponse
// @Success 201 {object} submitResponse
// @Failure 400 {object} validationErrorResponse
// @Router /api/borrador/enviar [post]
func submitDraftHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		res, err := svc.SubmitCurrent()
		if err != nil {
			writeServiceError(w, err)
			return
		}

		status := http.StatusOK
		if res.Action == ActionCreated {
			status = http.StatusCreated
		}
		writeJSON(w, status, submitResponse{
			Accion:   res.Action,
			Paciente: toPatientResponse(res.Patient),
		})
	}
}

func (r patientRequest) fields() Fields {
	return Fields{
		Nombre:      r.Nombre,
		Propietario: r.Propietario,
		Email:       r.Email,
		Fecha:       r.Fecha,
		Sintomas:    r.Sintomas,
	}
}

func toPatientResponse(p Patient) patientResponse {
	return patientResponse{
		ID:          p.ID,
		Nombre:      p.Nombre,
		Propietario: p.Propietario,
		Email:       p.Email,
		Fecha:       p.Fecha,
		Sintomas:    p.Sintomas,
	}
}

func writeServiceError(w http.ResponseWriter, err error) {
	var verr *ValidationError
	switch {
	case errors.As(err, &verr):
		writeJSON(w, http.StatusBadRequest, validationErrorResponse{
			Error:  MsgRequired,
			Campos: verr.Missing,
		})
	case errors.Is(err, ErrNotFound):
		http.Error(w, "patient not found", http.StatusNotFound)
	case errors.Is(err, ErrUnknownField):
		http.Error(w, "unknown field", http.StatusBadRequest)
	default:
		http.Error(w, "internal error", http.StatusInternalServerError)
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
