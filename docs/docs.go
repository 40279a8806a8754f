// Package docs registra el documento OpenAPI de la API de pacientes.
// Regenerar con: swag init -g cmd/api/main.go -o docs
package docs

import "github.com/swaggo/swag"

const docTemplate = `{
    "schemes": {{ marshal .Schemes }},
    "swagger": "2.0",
    "info": {
        "description": "{{escape .Description}}",
        "title": "{{.Title}}",
        "contact": {},
        "version": "{{.Version}}"
    },
    "host": "{{.Host}}",
    "basePath": "{{.BasePath}}",
    "paths": {
        "/api/borrador": {
            "get": {
                "produces": ["application/json"],
                "tags": ["borrador"],
                "summary": "Ver borrador",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/patients.DraftState"}}
                }
            },
            "delete": {
                "description": "Limpia el borrador y sale del modo edición.",
                "produces": ["application/json"],
                "tags": ["borrador"],
                "summary": "Limpiar borrador",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/patients.DraftState"}}
                }
            },
            "patch": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["borrador"],
                "summary": "Actualizar un campo del borrador",
                "parameters": [
                    {
                        "description": "Campo y valor",
                        "name": "payload",
                        "in": "body",
                        "required": true,
                        "schema": {"$ref": "#/definitions/patients.fieldUpdateRequest"}
                    }
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/patients.DraftState"}},
                    "400": {"description": "unknown field", "schema": {"type": "string"}}
                }
            }
        },
        "/api/borrador/enviar": {
            "post": {
                "description": "Con objetivo de edición reemplaza ese paciente (200); si no, agrega uno nuevo (201). Con campos vacíos devuelve 400 y conserva el borrador.",
                "produces": ["application/json"],
                "tags": ["borrador"],
                "summary": "Enviar borrador",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/patients.submitResponse"}},
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/patients.submitResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/patients.validationErrorResponse"}}
                }
            }
        },
        "/api/pacientes": {
            "get": {
                "description": "Devuelve todos los pacientes en orden de registro.",
                "produces": ["application/json"],
                "tags": ["pacientes"],
                "summary": "Listar pacientes",
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {"type": "array", "items": {"$ref": "#/definitions/patients.patientResponse"}}
                    }
                }
            },
            "post": {
                "description": "Valida que los cinco campos no estén vacíos y agrega el paciente al final del listado. No modifica el borrador del formulario.",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["pacientes"],
                "summary": "Registrar paciente",
                "parameters": [
                    {
                        "description": "Datos del paciente",
                        "name": "payload",
                        "in": "body",
                        "required": true,
                        "schema": {"$ref": "#/definitions/patients.patientRequest"}
                    }
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/patients.patientResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/patients.validationErrorResponse"}}
                }
            }
        },
        "/api/pacientes/{patientID}": {
            "get": {
                "produces": ["application/json"],
                "tags": ["pacientes"],
                "summary": "Obtener paciente",
                "parameters": [
                    {"type": "string", "description": "ID del paciente", "name": "patientID", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/patients.patientResponse"}},
                    "404": {"description": "patient not found", "schema": {"type": "string"}}
                }
            },
            "put": {
                "description": "Reemplaza los cinco campos del paciente. El id y la posición en el listado no cambian.",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["pacientes"],
                "summary": "Editar paciente",
                "parameters": [
                    {"type": "string", "description": "ID del paciente", "name": "patientID", "in": "path", "required": true},
                    {
                        "description": "Datos completos del paciente",
                        "name": "payload",
                        "in": "body",
                        "required": true,
                        "schema": {"$ref": "#/definitions/patients.patientRequest"}
                    }
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/patients.patientResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/patients.validationErrorResponse"}},
                    "404": {"description": "patient not found", "schema": {"type": "string"}}
                }
            },
            "delete": {
                "description": "Elimina el paciente. Por API el borrado es explícito (no pide confirmación).",
                "tags": ["pacientes"],
                "summary": "Eliminar paciente",
                "parameters": [
                    {"type": "string", "description": "ID del paciente", "name": "patientID", "in": "path", "required": true}
                ],
                "responses": {
                    "204": {"description": "No Content"},
                    "404": {"description": "patient not found", "schema": {"type": "string"}}
                }
            }
        },
        "/api/pacientes/{patientID}/editar": {
            "post": {
                "description": "Copia el paciente al borrador compartido y lo marca como objetivo de edición. Un borrador sin guardar se descarta.",
                "produces": ["application/json"],
                "tags": ["borrador"],
                "summary": "Editar en el formulario",
                "parameters": [
                    {"type": "string", "description": "ID del paciente", "name": "patientID", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/patients.DraftState"}},
                    "404": {"description": "patient not found", "schema": {"type": "string"}}
                }
            }
        }
    },
    "definitions": {
        "patients.DraftState": {
            "type": "object",
            "properties": {
                "accion": {"type": "string"},
                "borrador": {"$ref": "#/definitions/patients.Fields"},
                "editando": {"type": "string"}
            }
        },
        "patients.Fields": {
            "type": "object",
            "properties": {
                "email": {"type": "string"},
                "fecha": {"type": "string"},
                "nombre": {"type": "string"},
                "propietario": {"type": "string"},
                "sintomas": {"type": "string"}
            }
        },
        "patients.fieldUpdateRequest": {
            "type": "object",
            "properties": {
                "campo": {"type": "string", "enum": ["nombre", "propietario", "email", "fecha", "sintomas"]},
                "valor": {"type": "string"}
            }
        },
        "patients.patientRequest": {
            "type": "object",
            "properties": {
                "email": {"type": "string", "example": "a@x.com"},
                "fecha": {"type": "string", "example": "2024-01-01"},
                "nombre": {"type": "string", "example": "Rex"},
                "propietario": {"type": "string", "example": "Ana"},
                "sintomas": {"type": "string", "example": "tos"}
            }
        },
        "patients.patientResponse": {
            "type": "object",
            "properties": {
                "email": {"type": "string"},
                "fecha": {"type": "string"},
                "id": {"type": "string"},
                "nombre": {"type": "string"},
                "propietario": {"type": "string"},
                "sintomas": {"type": "string"}
            }
        },
        "patients.submitResponse": {
            "type": "object",
            "properties": {
                "accion": {"type": "string", "enum": ["created", "updated"]},
                "paciente": {"$ref": "#/definitions/patients.patientResponse"}
            }
        },
        "patients.validationErrorResponse": {
            "type": "object",
            "properties": {
                "campos": {"type": "array", "items": {"type": "string"}},
                "error": {"type": "string"}
            }
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "",
	BasePath:         "/",
	Schemes:          []string{},
	Title:            "Veterinaria - Seguimiento de Pacientes",
	Description:      "Registro de pacientes de una veterinaria: alta, edición y baja.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
