package hminfer

// Assumptions is Γ: a mapping from program variable name to the
// PolymorphicType it's bound to (spec §4.6). The original assumption.rs
// keys by the full Language expression (an Rc<Language>), but every
// operation the spec actually names — push, get, and especially
// filter_all(var), which removes "all assumptions mentioning a given
// program variable" — only ever concerns Var expressions in practice, and
// an Expr isn't comparable in Go (Literal carries a slice); keying by the
// variable's name directly is the idiomatic Go equivalent and keeps
// Assumptions a plain map.
type Assumptions struct {
	bindings map[string]Polymorphic
}

// Empty returns an empty Γ.
func Empty() *Assumptions {
	return &Assumptions{bindings: make(map[string]Polymorphic)}
}

// Clone returns an independent copy, so a branch of Algorithm W (e.g. a
// Lambda's body) can extend Γ without mutating the caller's.
func (a *Assumptions) Clone() *Assumptions {
	out := make(map[string]Polymorphic, len(a.bindings))
	for k, v := range a.bindings {
		out[k] = v
	}
	return &Assumptions{bindings: out}
}

// Push binds name to t.
func (a *Assumptions) Push(name string, t Polymorphic) {
	a.bindings[name] = t
}

// Get looks up name.
func (a *Assumptions) Get(name string) (Polymorphic, bool) {
	t, ok := a.bindings[name]
	return t, ok
}

// SubstituteMut applies s to every bound type in place.
func (a *Assumptions) SubstituteMut(s Substitutions) {
	for k, t := range a.bindings {
		a.bindings[k] = s.ApplyPoly(t)
	}
}

// FilterAll drops every assumption about name — used when entering a
// binding that shadows an outer one of the same name.
func (a *Assumptions) FilterAll(name string) {
	delete(a.bindings, name)
}

// freeVars is the free variables occupied across every binding in Γ,
// used by Generalize to compute `free_vars(t) \ free_vars(Γ)`.
func (a *Assumptions) freeVars() map[VarID]struct{} {
	out := make(map[VarID]struct{})
	for _, t := range a.bindings {
		for v := range FreeVarsPoly(t) {
			out[v] = struct{}{}
		}
	}
	return out
}

// Generalize closes t over every free variable not already occupied by
// Γ: `generalize(Γ, t) = ∀ (free_vars(t) \ free_vars(Γ)). t` (spec
// §4.6). Quantifiers are added in ascending VarID order, so the outermost
// binds the largest id and Generalize is deterministic across runs.
func (a *Assumptions) Generalize(t Monomorphic) Polymorphic {
	occupied := a.freeVars()
	var toBind []VarID
	for v := range FreeVars(t) {
		if _, taken := occupied[v]; !taken {
			toBind = append(toBind, v)
		}
	}
	sortVarIDs(toBind)

	result := FromMono(t)
	for _, v := range toBind {
		result = Bind(v, result)
	}
	return result
}

func sortVarIDs(ids []VarID) {
	for i := 1; i < len(ids); i++ {
		for j := i; j > 0 && ids[j-1] > ids[j]; j-- {
			ids[j-1], ids[j] = ids[j], ids[j-1]
		}
	}
}
