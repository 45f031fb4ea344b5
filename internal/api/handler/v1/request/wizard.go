package request

import (
	"regexp"

	validation "github.com/go-ozzo/ozzo-validation"

	"github.com/ecoharmony/park-registration/internal/domain"
)

var timeOfDayRe = regexp.MustCompile(`^\d{2}:\d{2}$`)

type SelectActivityRequest struct {
	ActivityID int `json:"activity_id"`
}

func (req *SelectActivityRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.ActivityID, validation.Required, validation.Min(1)),
	)
}

// ScheduleDraftRequest persists a partial date/time choice. Time may be empty
// when only the date has been picked.
type ScheduleDraftRequest struct {
	Date              string `json:"date"`
	Time              string `json:"time"`
	SlotID            int    `json:"slot_id"`
	RemainingCapacity int    `json:"remaining_capacity"`
}

func (req *ScheduleDraftRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.Date, validation.Required, validation.Date(domain.DateLayout)),
		validation.Field(&req.Time, validation.Match(timeOfDayRe)),
		validation.Field(&req.SlotID, validation.Min(0)),
		validation.Field(&req.RemainingCapacity, validation.Min(0)),
	)
}

type SelectScheduleRequest struct {
	Date   string `json:"date"`
	Time   string `json:"time"`
	SlotID int    `json:"slot_id"`
}

func (req *SelectScheduleRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.Date, validation.Required, validation.Date(domain.DateLayout)),
		validation.Field(&req.Time, validation.Required, validation.Match(timeOfDayRe)),
		validation.Field(&req.SlotID, validation.Required, validation.Min(1)),
	)
}

type ParticipantPayload struct {
	Name         string `json:"name"`
	DNI          string `json:"dni"`
	Age          int    `json:"age"`
	ClothingSize string `json:"clothing_size"`
}

type ParticipantsRequest struct {
	Participants []ParticipantPayload `json:"participants"`
}

// Validate checks only the list shape; field-level rules (name, DNI, age,
// size) run in the domain so errors come back keyed by participant and field.
func (req *ParticipantsRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.Participants, validation.Required, validation.Length(1, domain.MaxParticipants)),
	)
}

func (req *ParticipantsRequest) ToDomain() []domain.Participant {
	list := make([]domain.Participant, len(req.Participants))
	for i, p := range req.Participants {
		list[i] = domain.Participant{
			Name:         p.Name,
			DNI:          p.DNI,
			Age:          p.Age,
			ClothingSize: p.ClothingSize,
		}
	}
	return list
}

// ParticipantsDraftRequest carries in-progress entry; an empty or partial list
// is fine, only the cap is enforced.
type ParticipantsDraftRequest struct {
	Participants []ParticipantPayload `json:"participants"`
}

func (req *ParticipantsDraftRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.Participants, validation.Length(0, domain.MaxParticipants)),
	)
}

func (req *ParticipantsDraftRequest) ToDomain() []domain.Participant {
	return (&ParticipantsRequest{Participants: req.Participants}).ToDomain()
}

type TermsRequest struct {
	Accepted bool `json:"accepted"`
}
