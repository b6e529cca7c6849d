package spreadsheet

import (
	"math"

	"golang.org/x/exp/maps"
)

// opKind enumerates the operations a formula tree can apply.
type opKind uint8

const (
	opAdd opKind = iota
	opSubtract
	opMultiply
	opDivide
	opPower
	opNegate
	opEqual
	opNotEqual
	opLess
	opLessEqual
	opGreater
	opGreaterEqual
)

// nodeKind discriminates the three formula tree variants.
type nodeKind uint8

const (
	nodeValue nodeKind = iota
	nodeRef
	nodeOp
)

// node is one vertex of a formula tree. Exactly one payload group is
// meaningful per kind: val for nodeValue, ref for nodeRef, and
// op/left/right for nodeOp. For the unary negate the right child is an
// empty-value placeholder. Each tree is owned by a single cell.
type node struct {
	kind  nodeKind
	val   Value  // nodeValue: literal
	ref   string // nodeRef: lowercased, '$'-stripped address text
	op    opKind // nodeOp
	left  *node
	right *node
}

// eval computes the node against the sheet. visited holds the addresses
// already entered along this evaluation path; a reference to one of them
// is a cycle and contributes the empty value.
func (n *node) eval(s *Spreadsheet, visited map[string]struct{}) Value {
	switch n.kind {
	case nodeValue:
		return n.val

	case nodeRef:
		if _, seen := visited[n.ref]; seen {
			return EmptyValue()
		}
		visited[n.ref] = struct{}{}
		pos, err := ParsePos(n.ref)
		if err != nil {
			return EmptyValue()
		}
		return s.getValueRec(pos, visited)

	case nodeOp:
		// the right operand runs on a copy of visited taken before the
		// left traversal, so siblings cannot poison each other
		fork := maps.Clone(visited)
		leftVal := n.left.eval(s, visited)
		rightVal := n.right.eval(s, fork)
		return applyOp(n.op, leftVal, rightVal)
	}
	return EmptyValue()
}

// applyOp combines two evaluated operands.
func applyOp(op opKind, left, right Value) Value {
	switch op {
	case opAdd:
		if ln, ok := left.Number(); ok {
			if rn, ok := right.Number(); ok {
				return NumberValue(ln + rn)
			}
		}
		if (left.Kind() == KindText || right.Kind() == KindText) &&
			!left.IsEmpty() && !right.IsEmpty() {
			return TextValue(left.concatText() + right.concatText())
		}
		return EmptyValue()

	case opSubtract:
		if ln, ok := left.Number(); ok {
			if rn, ok := right.Number(); ok {
				return NumberValue(ln - rn)
			}
		}
		return EmptyValue()

	case opMultiply:
		if ln, ok := left.Number(); ok {
			if rn, ok := right.Number(); ok {
				return NumberValue(ln * rn)
			}
		}
		return EmptyValue()

	case opDivide:
		if ln, ok := left.Number(); ok {
			if rn, ok := right.Number(); ok && rn != 0 {
				return NumberValue(ln / rn)
			}
		}
		return EmptyValue()

	case opPower:
		if ln, ok := left.Number(); ok {
			if rn, ok := right.Number(); ok {
				return NumberValue(math.Pow(ln, rn))
			}
		}
		return EmptyValue()

	case opNegate:
		if ln, ok := left.Number(); ok {
			return NumberValue(-ln)
		}
		return EmptyValue()

	case opEqual:
		return boolValue(left.Equal(right))

	case opNotEqual:
		return boolValue(!left.Equal(right))

	case opLess:
		if c, ok := compareValues(left, right); ok {
			return boolValue(c < 0)
		}

	case opLessEqual:
		if c, ok := compareValues(left, right); ok {
			return boolValue(c <= 0)
		}

	case opGreater:
		if c, ok := compareValues(left, right); ok {
			return boolValue(c > 0)
		}

	case opGreaterEqual:
		if c, ok := compareValues(left, right); ok {
			return boolValue(c >= 0)
		}
	}
	return EmptyValue()
}

// boolValue renders a comparison result as 1.0 or 0.0.
func boolValue(b bool) Value {
	if b {
		return NumberValue(1)
	}
	return NumberValue(0)
}

// clone deep-copies a tree. Trees are unique-owned, so cloning the
// spreadsheet clones every tree with it.
func (n *node) clone() *node {
	if n == nil {
		return nil
	}
	c := *n
	c.left = n.left.clone()
	c.right = n.right.clone()
	return &c
}
