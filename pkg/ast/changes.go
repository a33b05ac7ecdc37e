package ast

import (
	"github.com/Sumatoshi-tech/arkast/pkg/kind"
	"github.com/Sumatoshi-tech/arkast/pkg/native"
)

// ChangeType classifies a structural change between two trees.
type ChangeType int

// Change type constants.
const (
	ChangeAdded ChangeType = iota
	ChangeRemoved
	ChangeModified
)

func (ct ChangeType) String() string {
	switch ct {
	case ChangeAdded:
		return "added"
	case ChangeRemoved:
		return "removed"
	case ChangeModified:
		return "modified"
	default:
		return "unknown"
	}
}

// NodeChange is one structural change. Modified means the node was rebuilt:
// same position in the tree, new address.
type NodeChange struct {
	Before Node
	After  Node
	Type   ChangeType
}

// ChangeSummary counts changes by type.
type ChangeSummary struct {
	Added    int
	Removed  int
	Modified int
}

// Summarize counts changes by type.
func Summarize(changes []NodeChange) ChangeSummary {
	var sum ChangeSummary

	for _, change := range changes {
		switch change.Type {
		case ChangeAdded:
			sum.Added++
		case ChangeRemoved:
			sum.Removed++
		case ChangeModified:
			sum.Modified++
		}
	}

	return sum
}

// DetectChanges compares two versions of a tree from the same session.
// Subtrees reachable from both by the same address are shared and skipped
// without being walked.
func DetectChanges(before, after Node) ([]NodeChange, error) {
	var changes []NodeChange

	err := diffNodes(before, after, &changes)
	if err != nil {
		return nil, err
	}

	return changes, nil
}

func diffNodes(before, after Node, changes *[]NodeChange) error {
	switch {
	case before == nil && after == nil:
		return nil
	case before == nil:
		*changes = append(*changes, NodeChange{After: after, Type: ChangeAdded})

		return nil
	case after == nil:
		*changes = append(*changes, NodeChange{Before: before, Type: ChangeRemoved})

		return nil
	case before == after:
		return nil
	}

	if !sameShape(before, after) {
		*changes = append(*changes,
			NodeChange{Before: before, Type: ChangeRemoved},
			NodeChange{After: after, Type: ChangeAdded},
		)

		return nil
	}

	*changes = append(*changes, NodeChange{Before: before, After: after, Type: ChangeModified})

	if IsUnsupported(before) {
		return nil
	}

	return diffChildren(before, after, changes)
}

func sameShape(a, b Node) bool {
	return kind.Canonical(a.Kind()) == kind.Canonical(b.Kind())
}

func diffChildren(before, after Node, changes *[]NodeChange) error {
	sess := before.Session()

	raw, beforeFields, err := sess.currentFields(before.Addr())
	if err != nil {
		return err
	}

	_, afterFields, err := after.Session().currentFields(after.Addr())
	if err != nil {
		return err
	}

	for idx, field := range raw.Spec().Fields {
		if idx >= len(afterFields) {
			break
		}

		switch field.Type {
		case kind.FieldNode:
			err = diffAddrs(sess, beforeFields[idx].Node(), afterFields[idx].Node(), changes)
		case kind.FieldNodes:
			err = diffLists(sess, beforeFields[idx].Nodes(), afterFields[idx].Nodes(), changes)
		default:
			continue
		}

		if err != nil {
			return err
		}
	}

	return nil
}

func diffAddrs(sess *Session, before, after native.Addr, changes *[]NodeChange) error {
	if before == after {
		return nil
	}

	b, err := sess.wrap(before)
	if err != nil {
		return err
	}

	a, err := sess.wrap(after)
	if err != nil {
		return err
	}

	return diffNodes(b, a, changes)
}

// diffLists matches list elements by address first. Elements left over on
// both sides are paired in order when their kinds agree, which is how a
// rebuilt element shows up; the rest are additions and removals.
func diffLists(sess *Session, before, after []native.Addr, changes *[]NodeChange) error {
	kept := make(map[native.Addr]bool, len(before))
	for _, addr := range before {
		kept[addr] = false
	}

	var added []native.Addr

	for _, addr := range after {
		if _, ok := kept[addr]; ok {
			kept[addr] = true

			continue
		}

		added = append(added, addr)
	}

	var removed []native.Addr

	for _, addr := range before {
		if !kept[addr] {
			removed = append(removed, addr)
		}
	}

	for len(removed) > 0 || len(added) > 0 {
		var b, a Node

		var err error

		if len(removed) > 0 {
			b, err = sess.wrap(removed[0])
			if err != nil {
				return err
			}
		}

		if len(added) > 0 {
			a, err = sess.wrap(added[0])
			if err != nil {
				return err
			}
		}

		switch {
		case b != nil && a != nil && sameShape(b, a):
			removed, added = removed[1:], added[1:]
		case b != nil:
			removed = removed[1:]
			a = nil
		default:
			added = added[1:]
			b = nil
		}

		err = diffNodes(b, a, changes)
		if err != nil {
			return err
		}
	}

	return nil
}
