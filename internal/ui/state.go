package ui

// State is one node of the per-page-load warning lifecycle. All states are
// transient; nothing is persisted across loads.
type State string

const (
	StateIdle            State = "idle"
	StateDetecting       State = "detecting"
	StateNotEcommerce    State = "not_ecommerce"
	StateScanning        State = "scanning"
	StateFailed          State = "failed"
	StateScored          State = "scored"
	StateSuppressed      State = "suppressed"
	StateBannerShown     State = "banner_shown"
	StateBannerMinimized State = "banner_minimized"
	StateOverlayShown    State = "overlay_shown"
	StateRemoved         State = "removed"
)

// Event is a transition trigger: pipeline progress or a UI interaction.
type Event string

const (
	EventDetect       Event = "detect"
	EventNotEcommerce Event = "not_ecommerce"
	EventEcommerce    Event = "ecommerce"
	EventScanFailed   Event = "scan_failed"
	EventScored       Event = "scored"
	EventSuppress     Event = "suppress"
	EventShowBanner   Event = "show_banner"
	EventShowOverlay  Event = "show_overlay"
	EventMinimize     Event = "minimize"
	EventRestore      Event = "restore"
	EventEscalate     Event = "escalate"
	EventClose        Event = "close"
	EventEscape       Event = "escape"
)

// Machine drives the warning lifecycle. Events that do not apply in the
// current state are no-ops, never errors, so repeated clicks and key presses
// cannot corrupt it.
//
// Closing an overlay that was reached by escalating from a banner restores
// the banner; an overlay shown directly for the overlay tier closes to
// removed. That choice keeps the warning discoverable after a close.
type Machine struct {
	state      State
	fromBanner bool
}

func NewMachine() *Machine {
	return &Machine{state: StateIdle}
}

// State returns the current state.
func (m *Machine) State() State {
	return m.state
}

// Apply advances the machine and returns the resulting state.
func (m *Machine) Apply(event Event) State {
	switch m.state {
	case StateIdle:
		if event == EventDetect {
			m.state = StateDetecting
		}
	case StateDetecting:
		switch event {
		case EventNotEcommerce:
			m.state = StateNotEcommerce
		case EventEcommerce:
			m.state = StateScanning
		}
	case StateScanning:
		switch event {
		case EventScanFailed:
			m.state = StateFailed
		case EventScored:
			m.state = StateScored
		}
	case StateScored:
		switch event {
		case EventSuppress:
			m.state = StateSuppressed
		case EventShowBanner:
			m.state = StateBannerShown
		case EventShowOverlay:
			m.state = StateOverlayShown
			m.fromBanner = false
		}
	case StateBannerShown:
		switch event {
		case EventMinimize:
			m.state = StateBannerMinimized
		case EventEscalate:
			m.state = StateOverlayShown
			m.fromBanner = true
		}
	case StateBannerMinimized:
		if event == EventRestore {
			m.state = StateBannerShown
		}
	case StateOverlayShown:
		if event == EventClose || event == EventEscape {
			if m.fromBanner {
				m.state = StateBannerShown
			} else {
				m.state = StateRemoved
			}
		}
	}
	return m.state
}
