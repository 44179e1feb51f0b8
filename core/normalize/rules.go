// Package normalize: tag classification tables.
package normalize

// action is what the classification pass does with an element.
type action int

const (
	keep   action = iota // keep tag, attributes and normalized children
	drop                 // discard element and contents
	unwrap               // discard tag, keep normalized children
	retag                // rename tag, keep attributes and children
	wrap                 // rename to the generic container, dropped by the flatten pass
)

// containerTag is the generic wrapper that the flatten pass removes.
const containerTag = "div"

// Rules are the tag classification tables used by the first pass.
// A Rules value must not be modified once passed to New.
type Rules struct {
	// Drop lists non-content tags whose whole subtree is discarded.
	Drop []string
	// Transparent lists inline formatting tags replaced by their children.
	Transparent []string
	// Wrappers lists structural containers collapsed into their parent.
	Wrappers []string
	// Retag maps a tag to the tag it is renamed to.
	Retag map[string]string
}

// DefaultRules returns the built-in classification tables.
func DefaultRules() Rules {
	return Rules{
		Drop: []string{"head", "script", "style", "noscript", "form", "button"},
		Transparent: []string{
			"a", "i", "b", "em", "strong", "mark", "span", "cite", "q", "small",
		},
		Wrappers: []string{
			"html", "body", "nav", "header", "footer",
			"main", "article", "section",
		},
		Retag: map[string]string{
			"dl": "ul",
			"dt": "li",
			"dd": "li",
		},
	}
}

// Extend returns a copy of r with extra tags added to each table.
func (r Rules) Extend(drop, transparent, wrappers []string) Rules {
	out := Rules{
		Drop:        append(append([]string(nil), r.Drop...), drop...),
		Transparent: append(append([]string(nil), r.Transparent...), transparent...),
		Wrappers:    append(append([]string(nil), r.Wrappers...), wrappers...),
		Retag:       make(map[string]string, len(r.Retag)),
	}
	for k, v := range r.Retag {
		out.Retag[k] = v
	}
	return out
}

// table is the compiled lookup form of Rules.
type table struct {
	actions map[string]action
	retag   map[string]string
}

func compile(r Rules) table {
	t := table{
		actions: make(map[string]action),
		retag:   make(map[string]string, len(r.Retag)),
	}
	for tag, to := range r.Retag {
		t.actions[tag] = retag
		t.retag[tag] = to
	}
	for _, tag := range r.Transparent {
		t.actions[tag] = unwrap
	}
	for _, tag := range r.Wrappers {
		t.actions[tag] = wrap
	}
	// Drop wins over every other classification.
	for _, tag := range r.Drop {
		t.actions[tag] = drop
	}
	return t
}

func (t table) classify(tag string) action {
	if a, ok := t.actions[tag]; ok {
		return a
	}
	return keep
}
