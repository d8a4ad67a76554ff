package types

// Mood is the emotional-state tag a user selects during onboarding. It drives
// question-bank selection and the recommendation weight table. An unrecognized
// or absent tag is MoodUnknown, which every consumer must handle as an explicit
// fallback branch rather than a lookup miss.
type Mood string

// The ten onboarding moods plus the explicit unknown/fallback variant.
const (
	MoodOverwhelmed  Mood = "overwhelmed"
	MoodLonely       Mood = "lonely"
	MoodBurnedOut    Mood = "burned-out"
	MoodJustChecking Mood = "just-checking"
	MoodAnxious      Mood = "anxious"
	MoodConfused     Mood = "confused"
	MoodHopeful      Mood = "hopeful"
	MoodExhausted    Mood = "exhausted"
	MoodFrustrated   Mood = "frustrated"
	MoodPeaceful     Mood = "peaceful"
	MoodUnknown      Mood = ""
)

// AllMoods lists every recognized mood in a stable order.
var AllMoods = []Mood{
	MoodOverwhelmed,
	MoodLonely,
	MoodBurnedOut,
	MoodJustChecking,
	MoodAnxious,
	MoodConfused,
	MoodHopeful,
	MoodExhausted,
	MoodFrustrated,
	MoodPeaceful,
}

// ParseMood maps a raw tag to a Mood. Anything outside the ten known tags
// (including the empty string) parses to MoodUnknown; callers degrade to
// their documented fallback behavior instead of failing.
func ParseMood(s string) Mood {
	switch Mood(s) {
	case MoodOverwhelmed, MoodLonely, MoodBurnedOut, MoodJustChecking,
		MoodAnxious, MoodConfused, MoodHopeful, MoodExhausted,
		MoodFrustrated, MoodPeaceful:
		return Mood(s)
	default:
		return MoodUnknown
	}
}

// Known reports whether the mood is one of the ten recognized tags.
func (m Mood) Known() bool {
	return m != MoodUnknown
}

func (m Mood) String() string {
	return string(m)
}
