package domain

import (
	"fmt"
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/samber/lo"
)

// AgeCategory groups activities under a shared age rule. Rules key off the
// category, not the free-text activity name; the resolver below maps the
// catalog's known names onto categories in one place.
type AgeCategory int

const (
	// CategoryUnrestricted accepts any positive age.
	CategoryUnrestricted AgeCategory = iota
	// CategoryAdventure covers climbing-style activities, ages 8 to 99.
	CategoryAdventure
	// CategoryGeneral covers low-exertion activities, ages 1 to 120.
	CategoryGeneral
)

type ageRange struct {
	min, max int
}

var ageRanges = map[AgeCategory]ageRange{
	CategoryAdventure: {min: 8, max: 99},
	CategoryGeneral:   {min: 1, max: 120},
}

var activityCategories = map[string]AgeCategory{
	"palestra":   CategoryAdventure,
	"tirolesa":   CategoryAdventure,
	"safari":     CategoryGeneral,
	"jardinería": CategoryGeneral,
}

// CategoryFor resolves an activity display name to its age category.
// Case-insensitive; unknown names are unrestricted.
func CategoryFor(activityName string) AgeCategory {
	return activityCategories[strings.ToLower(strings.TrimSpace(activityName))]
}

var (
	nameRe = regexp.MustCompile(`^[a-zA-ZÀ-ÿ\s]+$`)
	dniRe  = regexp.MustCompile(`^\d{7,10}$`)
)

// ValidateName checks a participant's full name. Returns an empty string on
// success, else a user-facing message.
func ValidateName(value string) string {
	v := strings.TrimSpace(value)
	if v == "" {
		return "El nombre es obligatorio"
	}
	if utf8.RuneCountInString(v) < 3 {
		return "Debe tener al menos 3 caracteres"
	}
	if !nameRe.MatchString(v) {
		return "Solo se permiten letras y espacios"
	}
	return ""
}

// ValidateDNI checks a national ID: exactly 7 to 10 ASCII digits.
func ValidateDNI(value string) string {
	v := strings.TrimSpace(value)
	if v == "" {
		return "El DNI es obligatorio"
	}
	if !dniRe.MatchString(v) {
		return "Debe contener entre 7 y 10 dígitos numéricos"
	}
	return ""
}

// ValidateAge checks an age against the owning activity's category rule.
func ValidateAge(age int, activityName string) string {
	if age <= 0 {
		return "La edad es obligatoria"
	}
	r, restricted := ageRanges[CategoryFor(activityName)]
	if !restricted {
		return ""
	}
	if age < r.min || age > r.max {
		return fmt.Sprintf("La edad permitida para %s es entre %d y %d años",
			strings.ToLower(strings.TrimSpace(activityName)), r.min, r.max)
	}
	return ""
}

// ValidateClothingSize checks a size against the catalog. An empty size is
// only an error when the activity requires one.
func ValidateClothingSize(size string, required bool) string {
	if size == "" {
		if required {
			return "La talla de vestimenta es obligatoria"
		}
		return ""
	}
	if !lo.Contains(ClothingSizes, size) {
		return "Talla de vestimenta inválida"
	}
	return ""
}

// FieldKey addresses one field of one participant in an error map.
type FieldKey struct {
	Index int
	Field string
}

// FieldErrors maps (participant index, field name) to a user-facing message.
// All entries must be empty before a participant list is accepted.
type FieldErrors map[FieldKey]string

func (fe FieldErrors) add(index int, field, msg string) {
	if msg != "" {
		fe[FieldKey{Index: index, Field: field}] = msg
	}
}

// ValidateParticipants applies every field rule to every participant and
// returns the combined error map. An empty map means the list is acceptable.
func ValidateParticipants(list []Participant, activity Activity) FieldErrors {
	fe := FieldErrors{}
	for i, p := range list {
		fe.add(i, "name", ValidateName(p.Name))
		fe.add(i, "dni", ValidateDNI(p.DNI))
		fe.add(i, "age", ValidateAge(p.Age, activity.Name))
		fe.add(i, "clothing_size", ValidateClothingSize(p.ClothingSize, activity.RequiresSize))
	}
	return fe
}

// HasIncomplete reports whether any participant is missing a required value.
func HasIncomplete(list []Participant, activity Activity) bool {
	return lo.SomeBy(list, func(p Participant) bool {
		return !p.Complete(activity.RequiresSize)
	})
}
