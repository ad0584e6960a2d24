package hminfer

import (
	"github.com/ITesserakt/kodept/internal/ast"
)

// Translate converts a lowered AST function into the Language this
// package infers over: its parameters become a chain of nested Lambda
// terms curried around its body, the same currying translateExpr applies
// to a multi-argument Application, which becomes nested App terms (spec §4.6's
// Language is deliberately narrower than the full AST — no If, no
// struct/enum declarations — so only the subset an expression actually
// needs is walked here).
func Translate(arena *ast.Arena, fn ast.NodeId[ast.BodiedFunction]) (Expr, error) {
	params := ast.Children(arena, fn, ast.TagParam)
	bodies := ast.Children(arena, fn, ast.TagBody)
	if len(bodies) != 1 {
		return Expr{}, InferError{Kind: "MalformedFunction", Message: "function has no body"}
	}

	body, err := translateExpr(arena, bodies[0])
	if err != nil {
		return Expr{}, err
	}

	for i := len(params) - 1; i >= 0; i-- {
		param, paramErr := ast.TryAs[ast.Parameter](arena, params[i])
		if paramErr != nil {
			return Expr{}, paramErr
		}
		body = MakeLambda(param.Name, body)
	}
	return body, nil
}

func translateExpr(arena *ast.Arena, id ast.AnyID) (Expr, error) {
	kind, err := ast.Describe(arena, id)
	if err != nil {
		return Expr{}, err
	}

	switch kind {
	case ast.KindTermReference:
		ref, err := ast.TryAs[ast.TermReference](arena, id)
		if err != nil {
			return Expr{}, err
		}
		return MakeVar(ref.Name), nil

	case ast.KindLiteral:
		lit, err := ast.TryAs[ast.Literal](arena, id)
		if err != nil {
			return Expr{}, err
		}
		return MakeLiteral(translateLiteral(lit)), nil

	case ast.KindOperation:
		op, err := ast.TryAs[ast.Operation](arena, id)
		if err != nil {
			return Expr{}, err
		}
		operands := ast.Children(arena, id, ast.TagOperand)
		left, err := translateExpr(arena, operands[0])
		if err != nil {
			return Expr{}, err
		}
		right, err := translateExpr(arena, operands[1])
		if err != nil {
			return Expr{}, err
		}
		return MakeApp(MakeApp(MakeVar(op.Operator), left), right), nil

	case ast.KindApplication:
		target := ast.Children(arena, id, ast.TagCallTarget)
		args := ast.Children(arena, id, ast.TagCallArg)
		fn, err := translateExpr(arena, target[0])
		if err != nil {
			return Expr{}, err
		}
		for _, a := range args {
			argExpr, err := translateExpr(arena, a)
			if err != nil {
				return Expr{}, err
			}
			fn = MakeApp(fn, argExpr)
		}
		return fn, nil

	case ast.KindLetExpr:
		let, err := ast.TryAs[ast.LetExpr](arena, id)
		if err != nil {
			return Expr{}, err
		}
		bindings := ast.Children(arena, id, ast.TagBinding)
		bodies := ast.Children(arena, id, ast.TagBody)
		value, err := translateExpr(arena, bindings[0])
		if err != nil {
			return Expr{}, err
		}
		body, err := translateExpr(arena, bodies[0])
		if err != nil {
			return Expr{}, err
		}
		return MakeLet(let.Name, value, body), nil

	case ast.KindTupleExpr:
		elements := ast.Children(arena, id, ast.TagTupleElement)
		parts := make([]Expr, len(elements))
		for i, el := range elements {
			part, err := translateExpr(arena, el)
			if err != nil {
				return Expr{}, err
			}
			parts[i] = part
		}
		return MakeTuple(parts...), nil

	default:
		return Expr{}, InferError{Kind: "UnsupportedForm", Message: "node kind " + kind.String() + " has no Language translation"}
	}
}

func translateLiteral(l *ast.Literal) Literal {
	switch l.Kind {
	case ast.LiteralInt:
		return Literal{Kind: LitInteger, Raw: l.Raw}
	case ast.LiteralFloat:
		return Literal{Kind: LitFloat, Raw: l.Raw}
	case ast.LiteralChar:
		return Literal{Kind: LitChar, Raw: l.Raw}
	case ast.LiteralString:
		return Literal{Kind: LitString, Raw: l.Raw}
	default:
		return Literal{Kind: LitString, Raw: l.Raw}
	}
}
