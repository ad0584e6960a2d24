package hminfer

// Environment hands out fresh type variables from a monotonic counter
// (spec §4.6 "Fresh variable supply comes from an Environment with a
// monotonic counter; variables are identified by integers").
type Environment struct {
	counter int
}

// NewEnvironment returns an Environment starting at variable 0.
func NewEnvironment() *Environment {
	return &Environment{}
}

// NewVar hands out the next fresh VarID.
func (e *Environment) NewVar() VarID {
	v := VarID(e.counter)
	e.counter++
	return v
}

// instantiate replaces every variable a Polymorphic quantifies over with
// a fresh one (spec §4.6 "Var(x): ... if ∀a.σ, instantiate by fresh
// variables").
func instantiate(env *Environment, p Polymorphic) Monomorphic {
	s := Identity()
	for p.Kind == PolyBinding {
		s[p.Bind] = Var(env.NewVar())
		p = *p.Inner
	}
	return s.Apply(p.Mono)
}

// Infer is Algorithm W (spec §4.6): given an environment for fresh
// variables and an assumption set Γ, infer(Γ, e) returns the
// substitution discharged and e's monomorphic type, or a typed
// InferError.
func Infer(env *Environment, gamma *Assumptions, e Expr) (Substitutions, Monomorphic, error) {
	switch e.Kind {
	case ExprLiteral:
		return Identity(), TypeOf(e.Lit), nil

	case ExprVar:
		scheme, ok := gamma.Get(e.Name)
		if !ok {
			return nil, Monomorphic{}, Unbound(e.Name)
		}
		return Identity(), instantiate(env, scheme), nil

	case ExprLambda:
		alpha := env.NewVar()
		inner := gamma.Clone()
		inner.FilterAll(e.Name)
		inner.Push(e.Name, FromMono(Var(alpha)))

		s, bodyType, err := Infer(env, inner, *e.Body)
		if err != nil {
			return nil, Monomorphic{}, err
		}
		return s, Arrow(s.Apply(Var(alpha)), bodyType), nil

	case ExprApp:
		s1, funcType, err := Infer(env, gamma, *e.Func)
		if err != nil {
			return nil, Monomorphic{}, err
		}

		argGamma := gamma.Clone()
		argGamma.SubstituteMut(s1)
		s2, argType, err := Infer(env, argGamma, *e.Arg)
		if err != nil {
			return nil, Monomorphic{}, err
		}

		beta := env.NewVar()
		s3, err := Unify(s2.Apply(funcType), Arrow(argType, Var(beta)))
		if err != nil {
			return nil, Monomorphic{}, err
		}
		return Compose(s3, Compose(s2, s1)), s3.Apply(Var(beta)), nil

	case ExprLet:
		s1, valueType, err := Infer(env, gamma, *e.Value)
		if err != nil {
			return nil, Monomorphic{}, err
		}

		substituted := gamma.Clone()
		substituted.SubstituteMut(s1)
		scheme := substituted.Generalize(valueType)

		bodyGamma := substituted.Clone()
		bodyGamma.FilterAll(e.Name)
		bodyGamma.Push(e.Name, scheme)

		s2, bodyType, err := Infer(env, bodyGamma, *e.Body)
		if err != nil {
			return nil, Monomorphic{}, err
		}
		return Compose(s2, s1), bodyType, nil

	case ExprTuple:
		acc := Identity()
		elemTypes := make([]Monomorphic, len(e.Elements))
		current := gamma
		for i, el := range e.Elements {
			s, t, err := Infer(env, current, el)
			if err != nil {
				return nil, Monomorphic{}, err
			}
			acc = Compose(s, acc)
			elemTypes[i] = t
			current = current.Clone()
			current.SubstituteMut(s)
		}
		for i, t := range elemTypes {
			elemTypes[i] = acc.Apply(t)
		}
		return acc, TupleOf(elemTypes...), nil

	default:
		return nil, Monomorphic{}, InferError{Kind: "MalformedExpr", Message: "unrecognized Expr kind"}
	}
}
