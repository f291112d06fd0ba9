package battlemap

// Highlight marks a token as affected by an active action, carrying the
// action id (for cleanup on completion) and the indicator color.
type Highlight struct {
	ActionID string
	Color    Color
}

// TokenSource supplies the live token snapshot used for target detection
// when an action starts. May be nil when no tokens exist.
type TokenSource func() []Token

// activeAction pairs an action with its single running driver.
type activeAction struct {
	action Action
	driver *Driver
}

// ActionManager tracks the set of currently-playing actions, each keyed by
// a unique id with exactly one running driver, and the highlight entries
// their target detection produced.
//
// Start and Complete are safe to call from code running inside Advance
// (the tick iterates a snapshot, never the live set). The manager is not
// goroutine-safe; everything runs on the frame loop.
type ActionManager struct {
	actions    []*activeAction // insertion order = start order
	index      map[string]*activeAction
	highlights map[string]Highlight // token id -> highlight
	tokens     TokenSource
	rng        randSource
}

// NewActionManager creates a manager. tokens feeds target detection and may
// be nil; rng feeds the jittered drivers.
func NewActionManager(tokens TokenSource, rng randSource) *ActionManager {
	return &ActionManager{
		index:      make(map[string]*activeAction),
		highlights: make(map[string]Highlight),
		tokens:     tokens,
		rng:        rng,
	}
}

// Start activates the action: spawns its driver and highlights the tokens
// it affects. If the action's id is already active, Start is a no-op and
// returns false; at most one concurrent instance per id.
func (m *ActionManager) Start(action Action) bool {
	id := action.ActionID()
	if _, exists := m.index[id]; exists {
		debugf("start %s %q: already active, rejected", action.Category(), id)
		return false
	}

	aa := &activeAction{
		action: action,
		driver: NewDriver(action, m.rng),
	}
	m.actions = append(m.actions, aa)
	m.index[id] = aa

	var tokens []Token
	if m.tokens != nil {
		tokens = m.tokens()
	}
	color := action.Anim().Color
	for _, tok := range DetectAffected(action, tokens) {
		m.highlights[tok.ID] = Highlight{ActionID: id, Color: color}
	}

	debugf("start %s %q", action.Category(), id)
	return true
}

// Complete removes the action and clears its highlight entries. Unknown ids
// are a no-op, tolerating races between a driver's natural completion and
// an external cancellation.
func (m *ActionManager) Complete(id string) {
	aa, exists := m.index[id]
	if !exists {
		return
	}
	delete(m.index, id)
	for i, cur := range m.actions {
		if cur == aa {
			m.actions = append(m.actions[:i], m.actions[i+1:]...)
			break
		}
	}
	for tokID, h := range m.highlights {
		if h.ActionID == id {
			delete(m.highlights, tokID)
		}
	}
	debugf("complete %s %q", aa.action.Category(), id)
}

// Active returns a snapshot of the active actions in start order.
func (m *ActionManager) Active() []Action {
	out := make([]Action, len(m.actions))
	for i, aa := range m.actions {
		out[i] = aa.action
	}
	return out
}

// IsActive reports whether an action with the given id is active.
func (m *ActionManager) IsActive(id string) bool {
	_, ok := m.index[id]
	return ok
}

// Count returns the number of active actions.
func (m *ActionManager) Count() int {
	return len(m.actions)
}

// HighlightFor returns the highlight on the given token, if any.
func (m *ActionManager) HighlightFor(tokenID string) (Highlight, bool) {
	h, ok := m.highlights[tokenID]
	return h, ok
}

// Highlights returns a copy of the current token-id-to-highlight mapping.
func (m *ActionManager) Highlights() map[string]Highlight {
	out := make(map[string]Highlight, len(m.highlights))
	for id, h := range m.highlights {
		out[id] = h
	}
	return out
}

// Advance steps every active driver by the same dt (one shared notion of
// now per frame, so simultaneous actions never see different elapsed times)
// and completes the ones that finished. Iterates a snapshot, so Start
// and Complete may be called reentrantly from observers of the transitions.
func (m *ActionManager) Advance(dt float64) {
	snapshot := make([]*activeAction, len(m.actions))
	copy(snapshot, m.actions)

	for _, aa := range snapshot {
		if aa.driver.Advance(dt) {
			m.Complete(aa.action.ActionID())
		}
	}
}

// AppendPoses appends the current frame's poses for every active action in
// start order.
func (m *ActionManager) AppendPoses(buf []ShapePose) []ShapePose {
	for _, aa := range m.actions {
		buf = aa.driver.Poses(buf)
	}
	return buf
}

// Render submits the current frame's poses for every active action to the
// sink, in start order. Iterates a snapshot, so a sink may start or
// complete actions reentrantly; membership changes take effect next frame.
// buf is reused scratch space; pass the previous return value to avoid
// reallocation.
func (m *ActionManager) Render(r Renderer, buf []ShapePose) []ShapePose {
	snapshot := make([]*activeAction, len(m.actions))
	copy(snapshot, m.actions)

	for _, aa := range snapshot {
		buf = buf[:0]
		buf = aa.driver.Poses(buf)
		for _, sp := range buf {
			r.Submit(aa.action, sp)
		}
	}
	return buf
}

// ClearAll force-removes every active action and highlight without waiting
// for drivers to finish. Hard cancellation for teardown; no per-action
// completion is observed.
func (m *ActionManager) ClearAll() {
	n := len(m.actions)
	m.actions = nil
	m.index = make(map[string]*activeAction)
	m.highlights = make(map[string]Highlight)
	if n > 0 {
		debugf("clearAll: cancelled %d active action(s)", n)
	}
}
