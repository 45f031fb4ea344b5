package domain

// ClothingSizes lists the sizes accepted for activities that require one.
var ClothingSizes = []string{"XS", "S", "M", "L", "XL", "XXL"}

// Participant is one person registered under a booking. ClothingSize is
// required iff the owning activity requires it.
type Participant struct {
	Name         string `json:"name"`
	DNI          string `json:"dni"`
	Age          int    `json:"age"`
	ClothingSize string `json:"clothing_size,omitempty"`
}

// Complete reports whether every required field has a value. Field-level
// correctness is the job of the validation rules; this only catches blanks.
func (p Participant) Complete(requiresSize bool) bool {
	if p.Name == "" || p.DNI == "" || p.Age == 0 {
		return false
	}
	if requiresSize && p.ClothingSize == "" {
		return false
	}
	return true
}
