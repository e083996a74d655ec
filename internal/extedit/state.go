package extedit

// State is a step of an edit session.
type State int

const (
	Idle State = iota
	Locating
	Exporting
	Invoking
	Importing
	Splicing
	Cleanup
)

var stateNames = [...]string{
	Idle:      "idle",
	Locating:  "locating",
	Exporting: "exporting",
	Invoking:  "invoking",
	Importing: "importing",
	Splicing:  "splicing",
	Cleanup:   "cleanup",
}

func (s State) String() string {
	if s < 0 || int(s) >= len(stateNames) {
		return "unknown"
	}

	return stateNames[s]
}
