package eca

// Automaton binds a compiled rule to an initial configuration.
type Automaton struct {
	prop    *Propagator
	initial Configuration
}

// New compiles ruleIndex and records a private copy of initial.
func New(ruleIndex int, initial Configuration, numNeighborhoods, numStates int) (*Automaton, error) {
	if err := initial.Validate(numStates); err != nil {
		return nil, err
	}
	prop, err := Compile(ruleIndex, numStates, numNeighborhoods)
	if err != nil {
		return nil, err
	}
	return &Automaton{prop: prop, initial: initial.Clone()}, nil
}

// Rule returns the rule index.
func (a *Automaton) Rule() int { return a.prop.rule }

// NumStates returns the number of cell states.
func (a *Automaton) NumStates() int { return a.prop.numStates }

// Propagator returns the compiled rule table.
func (a *Automaton) Propagator() *Propagator { return a.prop }

// Initial returns a copy of the initial configuration.
func (a *Automaton) Initial() Configuration { return a.initial.Clone() }

// Evolve runs numSteps steps from the initial configuration. Each call starts
// over; nothing carries between calls.
func (a *Automaton) Evolve(numSteps int, opts ...Option) (History, error) {
	return Evolve(a.initial, a.prop, numSteps, a.prop.numStates, opts...)
}
