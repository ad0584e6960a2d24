package ast

// DumpNode is a JSON-serializable snapshot of one arena node and its
// children, keyed by tag the way internal/serialization's serializedNode
// keys a graph node's properties by name rather than by struct field
// (adapted for a tree instead of a flat node/edge list).
type DumpNode struct {
	Kind     string                `json:"kind"`
	Payload  any                   `json:"payload,omitempty"`
	Children map[string][]DumpNode `json:"children,omitempty"`
}

// Dump walks the arena from root and builds a DumpNode tree suitable for
// encoding/json — used by `kodept dump-ast` and the debug dump server
// (spec §6 "self-describing diagnostic dumps").
func Dump(a *Arena, root AnyID) DumpNode {
	kind, err := Describe(a, root)
	if err != nil {
		return DumpNode{Kind: "unknown"}
	}
	node, _ := Get(a, root)

	out := DumpNode{Kind: kind.String(), Payload: node.Payload}
	for _, tag := range presentTags(a, root) {
		for _, child := range Children(a, root, tag) {
			if out.Children == nil {
				out.Children = make(map[string][]DumpNode)
			}
			out.Children[tag.String()] = append(out.Children[tag.String()], Dump(a, child))
		}
	}
	return out
}

// presentTags returns, in ChildTag enum order, every tag root actually has
// at least one child under — dumping in declaration order keeps output
// deterministic regardless of map iteration.
func presentTags(a *Arena, root AnyID) []ChildTag {
	all := []ChildTag{
		TagModule, TagTopLevel, TagVariant, TagParam, TagReturnType,
		TagParamType, TagBody, TagCondition, TagElifBranch, TagElseBranch,
		TagBinding, TagOperand, TagCallTarget, TagCallArg, TagTupleElement,
		TagUnionAlternative,
	}
	var present []ChildTag
	for _, tag := range all {
		if len(Children(a, root, tag)) > 0 {
			present = append(present, tag)
		}
	}
	return present
}
