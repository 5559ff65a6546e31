package magma

import (
	"github.com/samber/lo"
	"golang.org/x/exp/slices"
)

// SlotMap maps each variable name of a program to its memory slot.
type SlotMap map[string]int

// Names returns the variable names in slot order.
func (m SlotMap) Names() []string {
	names := lo.Keys(m)
	slices.SortFunc(names, func(a, b string) bool { return m[a] < m[b] })
	return names
}

// Slots numbers the variables of prog, most used first. Every read, every
// assignment target and every loop variable counts once; ties keep the order
// of first appearance.
func Slots(prog Node) SlotMap {
	var order []string
	count := map[string]int{}
	see := func(name string) {
		if count[name] == 0 {
			order = append(order, name)
		}
		count[name]++
	}
	var walk func(Node)
	walk = func(n Node) {
		switch n := n.(type) {
		case *Var:
			see(n.Name)
		case *Assign:
			see(n.Name)
		case *IndexAssign:
			see(n.Name)
		case *For:
			see(n.Var)
		}
		for _, c := range n.children() {
			walk(c)
		}
	}
	walk(prog)
	slices.SortStableFunc(order, func(a, b string) bool { return count[a] > count[b] })
	slots := make(SlotMap, len(order))
	for i, name := range order {
		slots[name] = i
	}
	return slots
}
