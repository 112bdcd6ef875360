package domain

type SessionType string

const (
	SessionFocus     SessionType = "focus"
	SessionCustom    SessionType = "custom"
	SessionBreak     SessionType = "break"
	SessionLongBreak SessionType = "longBreak"
)

// ValidSessionTypes is the canonical set of accepted session type strings.
var ValidSessionTypes = map[string]bool{
	"focus": true, "custom": true, "break": true, "longBreak": true,
}

// Counted reports whether sessions of this type count as productive
// time. Only focus and custom sessions feed the analytics; breaks
// are excluded everywhere.
func (t SessionType) Counted() bool {
	return t == SessionFocus || t == SessionCustom
}
