package wheel

import "sync"

// Selection captures the player's four wheel inputs. A field is nil until
// the corresponding choice has been made; all four start unset.
type Selection struct {
	Game   *Game
	First  *Symbol // outer (Espuar) ring position
	Second *Symbol // inner (Dethek) ring position
	Spiral *Spiral
}

// Complete reports whether every field has been chosen.
func (s Selection) Complete() bool {
	return s.Game != nil && s.First != nil && s.Second != nil && s.Spiral != nil
}

// clone returns a copy whose pointer fields reference fresh values.
func (s Selection) clone() Selection {
	var out Selection
	if s.Game != nil {
		g := *s.Game
		out.Game = &g
	}
	if s.First != nil {
		f := *s.First
		out.First = &f
	}
	if s.Second != nil {
		sec := *s.Second
		out.Second = &sec
	}
	if s.Spiral != nil {
		sp := *s.Spiral
		out.Spiral = &sp
	}
	return out
}

// NotifyFunc receives the decoded word after every selection change, or
// Placeholder while the selection is still incomplete.
type NotifyFunc func(word string)

// State tracks the current selection and pushes the decoded word to a single
// registered notify target. Each mutator updates its field, recomputes, and
// notifies as one atomic unit under the state lock, so an observer never
// sees a word computed from a torn selection.
type State struct {
	mu     sync.Mutex
	sel    Selection
	notify NotifyFunc
}

// NewState returns a State with nothing chosen and no notify target.
func NewState() *State {
	return &State{}
}

// ChooseGame records the game choice and renotifies. Out-of-range games are
// ignored, like unknown alphabets in ChooseSymbol.
func (st *State) ChooseGame(g Game) {
	if !g.Valid() {
		return
	}
	st.mu.Lock()
	defer st.mu.Unlock()
	st.sel.Game = &g
	st.recompute()
}

// ChooseSymbol records the ring position on the given alphabet and
// renotifies.
func (st *State) ChooseSymbol(a Alphabet, s Symbol) {
	st.mu.Lock()
	defer st.mu.Unlock()
	switch a {
	case Espuar:
		st.sel.First = &s
	case Dethek:
		st.sel.Second = &s
	default:
		return
	}
	st.recompute()
}

// ChooseSpiral records the reading path choice and renotifies.
func (st *State) ChooseSpiral(sp Spiral) {
	st.mu.Lock()
	defer st.mu.Unlock()
	st.sel.Spiral = &sp
	st.recompute()
}

// SetNotify registers the target for word changes, replacing any previous
// target, and invokes it immediately with the current result so a freshly
// attached display starts out consistent. The callback runs synchronously
// with the state lock held; it must not call back into the State.
func (st *State) SetNotify(fn NotifyFunc) {
	st.mu.Lock()
	defer st.mu.Unlock()
	st.notify = fn
	st.recompute()
}

// Selection returns a copy of the current selection. Mutating the copy does
// not affect the state.
func (st *State) Selection() Selection {
	st.mu.Lock()
	defer st.mu.Unlock()
	return st.sel.clone()
}

// Word returns the current decoded word, or Placeholder and false while the
// selection is incomplete.
func (st *State) Word() (string, bool) {
	st.mu.Lock()
	defer st.mu.Unlock()
	return Decode(st.sel)
}

// recompute pushes the decoded word to the notify target, if one is
// registered. Callers must hold st.mu.
func (st *State) recompute() {
	if st.notify == nil {
		return
	}
	word, _ := Decode(st.sel)
	st.notify(word)
}
