package patients

import (
	"bytes"
	"embed"
	"errors"
	"html/template"
	"net/http"

	"github.com/go-chi/chi/v5"
)

//go:embed templates/*.html
var templateFS embed.FS

var pages = template.Must(template.ParseFS(templateFS, "templates/*.html"))

// RegisterRoutes monta la UI HTML: formulario + listado en "/",
// y las acciones como POST con redirect (PRG) de vuelta a "/".
func RegisterRoutes(r chi.Router, svc *Service) {
	r.Get("/", indexHandler(svc))

	r.Post("/formulario", submitFormHandler(svc))
	r.Post("/formulario/cancelar", cancelEditHandler(svc))

	r.Route("/pacientes/{patientID}", func(pr chi.Router) {
		pr.Post("/editar", editHandler(svc))
		pr.Get("/eliminar", confirmDeleteHandler(svc))
		pr.Post("/eliminar", deleteHandler(svc))
	})
}

type confirmView struct {
	Prompt  string
	Patient Patient
}

func indexHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		render(w, http.StatusOK, "index", svc.Page())
	}
}

func submitFormHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := r.ParseForm(); err != nil {
			http.Error(w, "invalid form", http.StatusBadRequest)
			return
		}

		// El error de validación queda como aviso y el borrador se conserva;
		// en ambos casos se vuelve a la página.
		_, err := svc.SubmitDraft(Fields{
			Nombre:      r.PostFormValue(FieldNombre),
			Propietario: r.PostFormValue(FieldPropietario),
			Email:       r.PostFormValue(FieldEmail),
			Fecha:       r.PostFormValue(FieldFecha),
			Sintomas:    r.PostFormValue(FieldSintomas),
		})
		if err != nil && !errors.Is(err, ErrValidation) {
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}

		http.Redirect(w, r, "/", http.StatusSeeOther)
	}
}

func cancelEditHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		svc.CancelEdit()
		http.Redirect(w, r, "/", http.StatusSeeOther)
	}
}

func editHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := svc.Edit(chi.URLParam(r, "patientID")); err != nil {
			http.Error(w, "patient not found", http.StatusNotFound)
			return
		}
		http.Redirect(w, r, "/", http.StatusSeeOther)
	}
}

func confirmDeleteHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		p, err := svc.Get(chi.URLParam(r, "patientID"))
		if err != nil {
			http.Error(w, "patient not found", http.StatusNotFound)
			return
		}
		render(w, http.StatusOK, "confirm", confirmView{Prompt: ConfirmDelete, Patient: p})
	}
}

func deleteHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := r.ParseForm(); err != nil {
			http.Error(w, "invalid form", http.StatusBadRequest)
			return
		}

		confirmed := r.PostFormValue("confirmar") == "si"
		err := svc.Delete(chi.URLParam(r, "patientID"), confirmed)
		switch {
		case err == nil, errors.Is(err, ErrConfirmationRequired):
			http.Redirect(w, r, "/", http.StatusSeeOther)
		case errors.Is(err, ErrNotFound):
			http.Error(w, "patient not found", http.StatusNotFound)
		default:
			http.Error(w, "internal error", http.StatusInternalServerError)
		}
	}
}

// render ejecuta a un buffer para no mandar una página a medias si el template falla.
func render(w http.ResponseWriter, status int, name string, data any) {
	var buf bytes.Buffer
	if err := pages.ExecuteTemplate(&buf, name, data); err != nil {
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	_, _ = buf.WriteTo(w)
}
