package interactable

// Group owns the elements driven by one frame loop. Events are delivered
// with Dispatch or Broadcast during the frame, then Tick runs once so that
// listeners only see settled state.
type Group struct {
	elements []*Interactable
}

// NewGroup returns a group holding elements.
func NewGroup(elements ...*Interactable) *Group {
	g := &Group{}
	for _, e := range elements {
		g.Add(e)
	}
	return g
}

// Add appends e. Adding an element twice is a no-op.
func (g *Group) Add(e *Interactable) {
	for _, have := range g.elements {
		if have == e {
			return
		}
	}
	g.elements = append(g.elements, e)
}

// Remove drops e from the group.
func (g *Group) Remove(e *Interactable) {
	for i, have := range g.elements {
		if have == e {
			g.elements = append(g.elements[:i], g.elements[i+1:]...)
			return
		}
	}
}

// Elements returns the group's elements. The returned slice MUST NOT be mutated.
func (g *Group) Elements() []*Interactable {
	return g.elements
}

// Find returns the element named name, or nil.
func (g *Group) Find(name string) *Interactable {
	for _, e := range g.elements {
		if e.Name() == name {
			return e
		}
	}
	return nil
}

// Dispatch delivers ev to e.
func (g *Group) Dispatch(e *Interactable, ev Event) {
	if e != nil {
		e.HandleEvent(ev)
	}
}

// Broadcast delivers ev to every element. Speech keywords are broadcast; each
// element decides on its own eligibility.
func (g *Group) Broadcast(ev Event) {
	for _, e := range g.elements {
		e.HandleEvent(ev)
	}
}

// Tick ticks every element in insertion order.
func (g *Group) Tick() {
	for _, e := range g.elements {
		e.Tick()
	}
}
