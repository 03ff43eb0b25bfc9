package risk

import "fmt"

// Level is the hereditary risk classification.
type Level int

const (
	NoRisk Level = iota
	ModerateRisk
	HighRisk
)

var levelNames = map[Level]string{
	NoRisk:       "NO_RISK",
	ModerateRisk: "MODERATE_RISK",
	HighRisk:     "HIGH_RISK",
}

func (l Level) String() string {
	if name, ok := levelNames[l]; ok {
		return name
	}
	return fmt.Sprintf("Level(%d)", int(l))
}

// RecommendsScreening reports whether the level should lead to a clinic visit.
func (l Level) RecommendsScreening() bool {
	return l == ModerateRisk || l == HighRisk
}

func (l Level) MarshalText() ([]byte, error) {
	name, ok := levelNames[l]
	if !ok {
		return nil, fmt.Errorf("unknown risk level %d", int(l))
	}
	return []byte(name), nil
}

func (l *Level) UnmarshalText(text []byte) error {
	for level, name := range levelNames {
		if name == string(text) {
			*l = level
			return nil
		}
	}
	return fmt.Errorf("unknown risk level %q", string(text))
}
