package carousel

// Trigger names what caused a reconciliation cycle
type Trigger int

const (
	// TriggerGesture is a new pan sample. Only this trigger may commit.
	TriggerGesture Trigger = iota
	// TriggerIndexCommit follows a direct navigation (controls, keys, markers)
	TriggerIndexCommit
	// TriggerResize follows a change of the viewport width
	TriggerResize
	// TriggerRefresh is any other host re-render (deck reload, animation tick)
	TriggerRefresh
)

func (t Trigger) String() string {
	switch t {
	case TriggerGesture:
		return "gesture"
	case TriggerIndexCommit:
		return "index-commit"
	case TriggerResize:
		return "resize"
	case TriggerRefresh:
		return "refresh"
	default:
		return "unknown"
	}
}

// Notification is sent to a panel when it becomes active or inactive
type Notification int

const (
	Entered Notification = iota
	Exited
)

func (n Notification) String() string {
	if n == Entered {
		return "entered"
	}
	return "exited"
}
