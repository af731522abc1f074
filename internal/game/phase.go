package game

import "fmt"

// Phase is the state of a game session.
type Phase int

const (
	// Ready means the board is fresh and the first reveal has not happened;
	// mines are placed by that reveal.
	Ready Phase = iota
	Playing
	Won
	Lost
)

var phaseNames = [...]string{
	Ready:   "ready",
	Playing: "playing",
	Won:     "won",
	Lost:    "lost",
}

func (p Phase) String() string {
	if p < 0 || int(p) >= len(phaseNames) {
		return "unknown"
	}
	return phaseNames[p]
}

func (p Phase) MarshalText() ([]byte, error) {
	return []byte(p.String()), nil
}

func (p *Phase) UnmarshalText(text []byte) error {
	for i, name := range phaseNames {
		if name == string(text) {
			*p = Phase(i)
			return nil
		}
	}
	return fmt.Errorf("unknown phase %q", text)
}

// Outcome is reported for every player input.
type Outcome int

const (
	Continue Outcome = iota
	Win
	Loss
)

var outcomeNames = [...]string{
	Continue: "continue",
	Win:      "won",
	Loss:     "lost",
}

func (o Outcome) String() string {
	if o < 0 || int(o) >= len(outcomeNames) {
		return "unknown"
	}
	return outcomeNames[o]
}

func (o Outcome) MarshalText() ([]byte, error) {
	return []byte(o.String()), nil
}

func (o *Outcome) UnmarshalText(text []byte) error {
	for i, name := range outcomeNames {
		if name == string(text) {
			*o = Outcome(i)
			return nil
		}
	}
	return fmt.Errorf("unknown outcome %q", text)
}
