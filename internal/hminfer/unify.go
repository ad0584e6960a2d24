package hminfer

// Unify is Algorithm U (spec §4.6): the most general unifier of a and b,
// or a typed failure (InfiniteType / ArityMismatch / CannotUnify).
func Unify(a, b Monomorphic) (Substitutions, error) {
	switch {
	case a.Kind == MonoVar && b.Kind == MonoVar && a.Var == b.Var:
		return Identity(), nil
	case a.Kind == MonoConstant && b.Kind == MonoConstant && a.Name == b.Name:
		return Identity(), nil
	case a.Kind == MonoVar:
		return bindVar(a.Var, b)
	case b.Kind == MonoVar:
		return bindVar(b.Var, a)
	case a.Kind == MonoArrow && b.Kind == MonoArrow:
		return unifyArrow(a, b)
	case a.Kind == MonoTuple && b.Kind == MonoTuple:
		return unifySequence(a.Elements, b.Elements)
	case a.Kind == MonoUnion && b.Kind == MonoUnion:
		return unifyUnion(a.Elements, b.Elements)
	default:
		return nil, CannotUnify(a, b)
	}
}

// bindVar implements step 2: binding a variable to a type, with the
// occurs-check guarding against a self-referential substitution.
func bindVar(v VarID, t Monomorphic) (Substitutions, error) {
	if t.Kind == MonoVar && t.Var == v {
		return Identity(), nil
	}
	if _, occurs := FreeVars(t)[v]; occurs {
		return nil, InfiniteType(v, t)
	}
	return Substitutions{v: t}, nil
}

func unifyArrow(a, b Monomorphic) (Substitutions, error) {
	s1, err := Unify(*a.From, *b.From)
	if err != nil {
		return nil, err
	}
	s2, err := Unify(s1.Apply(*a.To), s1.Apply(*b.To))
	if err != nil {
		return nil, err
	}
	return Compose(s2, s1), nil
}

// unifySequence folds left across a tuple's elements pairwise, per spec
// §4.6 step 4 ("lengths must match; fold left").
func unifySequence(a, b []Monomorphic) (Substitutions, error) {
	if len(a) != len(b) {
		return nil, ArityMismatch(len(a), len(b))
	}
	acc := Identity()
	for i := range a {
		s, err := Unify(acc.Apply(a[i]), acc.Apply(b[i]))
		if err != nil {
			return nil, err
		}
		acc = Compose(s, acc)
	}
	return acc, nil
}

// unifyUnion tries elementwise unification in declared order first; if
// that fails and both sides are the same size, it tries every
// permutation of b's elements before giving up (spec §4.6 step 5: "unify
// element-wise if shapes match; otherwise attempt any permutation that
// succeeds").
func unifyUnion(a, b []Monomorphic) (Substitutions, error) {
	if len(a) == len(b) {
		if s, err := unifySequence(a, b); err == nil {
			return s, nil
		}
	}

	perm := make([]int, len(b))
	for i := range perm {
		perm[i] = i
	}
	if s, ok := tryPermutations(a, b, perm, 0); ok {
		return s, nil
	}
	return nil, CannotUnify(UnionOf(a...), UnionOf(b...))
}

func tryPermutations(a, b []Monomorphic, perm []int, k int) (Substitutions, bool) {
	if len(a) != len(b) {
		return nil, false
	}
	if k == len(perm) {
		reordered := make([]Monomorphic, len(b))
		for i, p := range perm {
			reordered[i] = b[p]
		}
		s, err := unifySequence(a, reordered)
		return s, err == nil
	}
	for i := k; i < len(perm); i++ {
		perm[k], perm[i] = perm[i], perm[k]
		if s, ok := tryPermutations(a, b, perm, k+1); ok {
			return s, true
		}
		perm[k], perm[i] = perm[i], perm[k]
	}
	return nil, false
}
