package scene

// EventResult controls event propagation after a handler runs.
type EventResult uint8

const (
	// Continue keeps propagating the event.
	Continue EventResult = iota
	// Stop ends propagation.
	Stop
)

// MouseButton identifies a pointer button.
type MouseButton uint8

const (
	MouseLeft MouseButton = iota
	MouseRight
	MouseMiddle
)

// NamedKey identifies non-character keys.
type NamedKey uint8

const (
	KeyNone NamedKey = iota
	KeyEnter
	KeyTab
	KeySpace
	KeyBackspace
	KeyDelete
	KeyEscape
	KeyArrowUp
	KeyArrowDown
	KeyArrowLeft
	KeyArrowRight
	KeyHome
	KeyEnd
	KeyPageUp
	KeyPageDown
	KeyShift
	KeyControl
	KeyAlt
	KeyMeta
)

// Key is a keyboard key: either a character or a named key.
type Key struct {
	Char  string
	Named NamedKey
}

// EventKind discriminates events.
type EventKind uint8

const (
	EventClick EventKind = iota
	EventMouseDown
	EventMouseUp
	EventKeyDown
	EventKeyUp
)

// Event is delivered to a node's handler by the embedder. The engine
// itself only locates handlers; it never constructs or dispatches events.
type Event struct {
	Kind   EventKind
	Button MouseButton
	Key    Key
	Repeat bool
}

// Handler reacts to events targeted at a node. Application state is
// captured at the composition boundary, typically by closing over it in
// a HandlerFunc; the engine never inspects the handler.
type Handler interface {
	HandleEvent(Event) EventResult
}

// HandlerFunc adapts a plain function to the Handler interface.
type HandlerFunc func(Event) EventResult

func (f HandlerFunc) HandleEvent(ev Event) EventResult {
	return f(ev)
}
