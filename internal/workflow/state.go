package workflow

// State is the wizard step the workflow is on.
type State int

const (
	CollectingFile State = iota
	CollectingDescription
	Submitting
	ShowingResults
)

func (s State) String() string {
	switch s {
	case CollectingFile:
		return "collecting_file"
	case CollectingDescription:
		return "collecting_description"
	case Submitting:
		return "submitting"
	case ShowingResults:
		return "showing_results"
	default:
		return "unknown"
	}
}

// MarshalText renders the state name in JSON payloads.
func (s State) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

const totalSteps = 3

// Step is the 1-based position in the three-step stepper.
func (s State) Step() int {
	switch s {
	case CollectingDescription, Submitting:
		return 2
	case ShowingResults:
		return 3
	default:
		return 1
	}
}

// Progress is the stepper bar fill in percent.
func (s State) Progress() float64 {
	return float64(s.Step()-1) / float64(totalSteps-1) * 100
}

// View names the screen a router should show for the state.
func (s State) View() string {
	if s == ShowingResults {
		return "results"
	}
	return "upload"
}
