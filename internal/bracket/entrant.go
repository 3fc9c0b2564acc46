package bracket

// Entrant is the minimal copy of a roster player that a tournament keeps.
// Full player stats are looked up by ID against the roster, never shared.
type Entrant struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

type SlotState string

const (
	SlotUnresolved SlotState = "tbd"
	SlotBye        SlotState = "bye"
	SlotFilled     SlotState = "filled"
)

// Slot is one side of a match
type Slot struct {
	State   SlotState `json:"state"`
	Entrant *Entrant  `json:"entrant,omitempty"`
}

func Unresolved() Slot {
	return Slot{State: SlotUnresolved}
}

func ByeSlot() Slot {
	return Slot{State: SlotBye}
}

func Filled(e Entrant) Slot {
	return Slot{State: SlotFilled, Entrant: &e}
}

func (s Slot) IsFilled() bool {
	return s.State == SlotFilled && s.Entrant != nil
}

func (s Slot) IsBye() bool {
	return s.State == SlotBye
}

func (s Slot) IsUnresolved() bool {
	return s.State == SlotUnresolved || s.State == ""
}

// Label is what a bracket shows for the slot
func (s Slot) Label() string {
	switch {
	case s.IsFilled():
		return s.Entrant.Name
	case s.IsBye():
		return "BYE"
	default:
		return "TBD"
	}
}

func (s Slot) holds(id string) bool {
	return s.IsFilled() && s.Entrant.ID == id
}

func (s Slot) clone() Slot {
	if s.Entrant == nil {
		return s
	}
	e := *s.Entrant
	return Slot{State: s.State, Entrant: &e}
}
