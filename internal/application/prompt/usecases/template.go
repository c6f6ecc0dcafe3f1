package usecases

import (
	"sort"
	"text/template"
	"text/template/parse"
)

// ParseTemplate parses a prompt template. Variables are referenced as {{.name}}.
func ParseTemplate(text string) (*template.Template, error) {
	return template.New("prompt").Option("missingkey=zero").Parse(text)
}

// Variables lists the top-level variables a template references, sorted.
func Variables(tmpl *template.Template) []string {
	seen := make(map[string]struct{})
	for _, t := range tmpl.Templates() {
		if t.Tree != nil {
			collect(t.Tree.Root, seen)
		}
	}

	out := make([]string, 0, len(seen))
	for name := range seen {
		out = append(out, name)
	}
	sort.Strings(out)
	return out
}

func collect(node parse.Node, seen map[string]struct{}) {
	switch n := node.(type) {
	case *parse.ListNode:
		if n == nil {
			return
		}
		for _, c := range n.Nodes {
			collect(c, seen)
		}
	case *parse.ActionNode:
		collect(n.Pipe, seen)
	case *parse.PipeNode:
		if n == nil {
			return
		}
		for _, cmd := range n.Cmds {
			collect(cmd, seen)
		}
	case *parse.CommandNode:
		for _, arg := range n.Args {
			collect(arg, seen)
		}
	case *parse.FieldNode:
		if len(n.Ident) > 0 {
			seen[n.Ident[0]] = struct{}{}
		}
	case *parse.IfNode:
		collectBranch(&n.BranchNode, seen)
	case *parse.RangeNode:
		collectRebound(&n.BranchNode, seen)
	case *parse.WithNode:
		collectRebound(&n.BranchNode, seen)
	}
}

func collectBranch(b *parse.BranchNode, seen map[string]struct{}) {
	collect(b.Pipe, seen)
	collect(b.List, seen)
	collect(b.ElseList, seen)
}

// collectRebound skips the body of range and with, where dot is the element.
// Their else branch still sees the top-level dot.
func collectRebound(b *parse.BranchNode, seen map[string]struct{}) {
	collect(b.Pipe, seen)
	collect(b.ElseList, seen)
}
