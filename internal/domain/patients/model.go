package patients

import "strings"

// Nombres de campo del formulario. Son también las keys JSON persistidas.
const (
	FieldNombre      = "nombre"
	FieldPropietario = "propietario"
	FieldEmail       = "email"
	FieldFecha       = "fecha"
	FieldSintomas    = "sintomas"
)

// FieldNames en el orden en que se muestran en el formulario.
var FieldNames = []string{FieldNombre, FieldPropietario, FieldEmail, FieldFecha, FieldSintomas}

// Patient representa un paciente (mascota) con su propietario y la cita.
type Patient struct {
	ID          string `json:"id"`
	Nombre      string `json:"nombre"`      // mascota
	Propietario string `json:"propietario"` // dueño
	Email       string `json:"email"`       // sin validación RFC
	Fecha       string `json:"fecha"`       // fecha de la cita, tal cual la envía el form
	Sintomas    string `json:"sintomas"`
}

// Fields son los cinco campos descriptivos (el borrador no tiene id).
type Fields struct {
	Nombre      string `json:"nombre"`
	Propietario string `json:"propietario"`
	Email       string `json:"email"`
	Fecha       string `json:"fecha"`
	Sintomas    string `json:"sintomas"`
}

func (p Patient) Fields() Fields {
	return Fields{
		Nombre:      p.Nombre,
		Propietario: p.Propietario,
		Email:       p.Email,
		Fecha:       p.Fecha,
		Sintomas:    p.Sintomas,
	}
}

// WithID arma el registro a partir de los campos del borrador.
func (f Fields) WithID(id string) Patient {
	return Patient{
		ID:          id,
		Nombre:      f.Nombre,
		Propietario: f.Propietario,
		Email:       f.Email,
		Fecha:       f.Fecha,
		Sintomas:    f.Sintomas,
	}
}

func (f Fields) Trimmed() Fields {
	return Fields{
		Nombre:      strings.TrimSpace(f.Nombre),
		Propietario: strings.TrimSpace(f.Propietario),
		Email:       strings.TrimSpace(f.Email),
		Fecha:       strings.TrimSpace(f.Fecha),
		Sintomas:    strings.TrimSpace(f.Sintomas),
	}
}

// Missing devuelve los campos vacíos (o solo espacios), en orden de formulario.
func (f Fields) Missing() []string {
	var out []string
	for _, name := range FieldNames {
		v, _ := f.Get(name)
		if strings.TrimSpace(v) == "" {
			out = append(out, name)
		}
	}
	return out
}

func (f Fields) Get(name string) (string, bool) {
	switch name {
	case FieldNombre:
		return f.Nombre, true
	case FieldPropietario:
		return f.Propietario, true
	case FieldEmail:
		return f.Email, true
	case FieldFecha:
		return f.Fecha, true
	case FieldSintomas:
		return f.Sintomas, true
	default:
		return "", false
	}
}

func (f *Fields) Set(name, value string) bool {
	switch name {
	case FieldNombre:
		f.Nombre = value
	case FieldPropietario:
		f.Propietario = value
	case FieldEmail:
		f.Email = value
	case FieldFecha:
		f.Fecha = value
	case FieldSintomas:
		f.Sintomas = value
	default:
		return false
	}
	return true
}
