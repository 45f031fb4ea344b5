package domain

import "encoding/json"

// Visitor is a participant record in the registration wire format.
type Visitor struct {
	Name string  `json:"nombre"`
	DNI  string  `json:"dni"`
	Age  int     `json:"edad"`
	Size *string `json:"talla"`
}

// RegistrationRequest is the payload sent to the booking backend on final
// confirmation. Built once per confirmed wizard, never earlier.
type RegistrationRequest struct {
	ActivityID   int       `json:"actividad_id"`
	ScheduleID   int       `json:"horario_id"`
	Date         string    `json:"fecha"`
	AcceptsTerms bool      `json:"acepta_terminos"`
	Visitors     []Visitor `json:"visitantes"`
}

// Confirmation carries the backend's success response. Payload is the raw
// body, passed through unmodified.
type Confirmation struct {
	Message string          `json:"message"`
	Payload json.RawMessage `json:"payload,omitempty"`
}
