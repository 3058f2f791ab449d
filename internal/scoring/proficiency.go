package scoring

// Proficiency is the ordinal skill level recorded on user skills and career
// requirements.
type Proficiency string

const (
	Beginner     Proficiency = "Beginner"
	Intermediate Proficiency = "Intermediate"
	Advanced     Proficiency = "Advanced"
)

// Rank returns the integer ordering used for gap comparison. Unknown levels
// rank below Beginner so they always gap against any requirement.
func (p Proficiency) Rank() int {
	switch p {
	case Beginner:
		return 1
	case Intermediate:
		return 2
	case Advanced:
		return 3
	default:
		return 0
	}
}

// Weight returns the match-score contribution factor in [0,1]. It is never
// used for gap detection.
func (p Proficiency) Weight() float64 {
	switch p {
	case Advanced:
		return 1.0
	case Intermediate:
		return 0.7
	case Beginner:
		return 0.4
	default:
		return 0.2
	}
}

func (p Proficiency) Valid() bool {
	switch p {
	case Beginner, Intermediate, Advanced:
		return true
	default:
		return false
	}
}
