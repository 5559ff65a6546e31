package church_test

import (
	"fmt"
	"reflect"
	"testing"

	"github.com/iWaroz/Magma/church"
	"github.com/iWaroz/Magma/lambda"
	"github.com/samber/lo"
)

func seq(stmts ...string) string {
	body := "st"
	for _, s := range stmts {
		body = fmt.Sprintf("%s (%s)", s, body)
	}
	return "(λst." + body + ")"
}

func output(t *testing.T, block string, slots int) []string {
	t.Helper()
	g := normalize(t, church.Program(block, slots))
	out, err := g.DecodeOutput()
	if err != nil {
		t.Fatal(err)
	}
	return lo.Map(out, func(r lambda.Ref, _ int) string { return g.Show(r) })
}

func TestStatements(t *testing.T) {
	n := church.Numeral
	tests := []struct {
		name  string
		block string
		slots int
		want  []string
	}{
		{"print", church.Print(n(3)), 0, []string{"3"}},
		{"nothing", seq(), 0, []string{}},
		{"assign", seq(church.Assign(1, n(4)), church.Print(church.ReadVar(1))), 2, []string{"4"}},
		{"overwrite", seq(church.Assign(0, n(1)), church.Assign(0, n(2)), church.Print(church.ReadVar(0))), 1, []string{"2"}},
		{"if", church.If(church.True, church.Print(n(1)), church.Print(n(2))), 0, []string{"1"}},
		{"else", church.If(church.False, church.Print(n(1)), church.Print(n(2))), 0, []string{"2"}},
		{"no else", church.If(church.False, church.Print(n(1)), ""), 0, []string{}},
		{"repeat", church.Repeat(n(3), church.Print(n(1))), 0, []string{"1", "1", "1"}},
		{"for", church.For(0, church.Array([]string{n(5), n(6)}), church.Print(church.ReadVar(0))), 1, []string{"5", "6"}},
		{"index", seq(
			church.Assign(0, church.Array([]string{n(1), n(2)})),
			church.AssignIndex(0, n(1), n(9)),
			church.Print(church.ReadVar(0)),
		), 1, []string{"[1, 9]"}},
		{"while", seq(
			church.Assign(0, n(0)),
			church.While(
				fmt.Sprintf("%s %s %s", church.Lt, church.ReadVar(0), n(3)),
				seq(church.Print(church.ReadVar(0)), church.Assign(0, fmt.Sprintf("%s %s", church.Succ, church.ReadVar(0)))),
			),
		), 1, []string{"0", "1", "2"}},
	}
	for _, tt := range tests {
		if got := output(t, tt.block, tt.slots); !reflect.DeepEqual(got, tt.want) {
			t.Errorf("%s: printed %v, want %v", tt.name, got, tt.want)
		}
	}
}
