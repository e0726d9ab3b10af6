package alert

// Level is the window stacking level.
type Level int

const (
	LevelNormal Level = iota
	LevelAlwaysOnBottom
	LevelAlwaysOnTop
)

func (l Level) String() string {
	switch l {
	case LevelAlwaysOnBottom:
		return "always_on_bottom"
	case LevelAlwaysOnTop:
		return "always_on_top"
	default:
		return "normal"
	}
}

// Window receives out-of-band window commands. Implementations must accept
// calls from any goroutine.
type Window interface {
	SetLevel(level Level)
	SetMousePassthrough(enabled bool)
	RequestFocus()
	RequestRepaint()
}
