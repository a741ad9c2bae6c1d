package ast

// Modifier is one of the keyword modifiers a declaration can carry:
// public, protected, private, static, final, abstract, native, synchronized,
// transient, volatile, strictfp, default.
type Modifier string

const (
	Public        Modifier = "public"
	Protected     Modifier = "protected"
	Private       Modifier = "private"
	Static        Modifier = "static"
	Final         Modifier = "final"
	Abstract      Modifier = "abstract"
	Native        Modifier = "native"
	SynchronizedM Modifier = "synchronized"
	Transient     Modifier = "transient"
	Volatile      Modifier = "volatile"
	Strictfp      Modifier = "strictfp"
	Default       Modifier = "default"
)

// ModifierSet is a deduplicated, order-preserving set of modifiers. Order
// is insertion order, which is source order by construction, but two sets
// with the same members in different orders still compare equal via
// Equals.
type ModifierSet struct {
	ordered []Modifier
	present map[Modifier]bool
}

// NewModifierSet builds a ModifierSet from the given modifiers, discarding
// duplicates and keeping first-seen order.
func NewModifierSet(mods ...Modifier) ModifierSet {
	s := ModifierSet{present: make(map[Modifier]bool, len(mods))}
	for _, m := range mods {
		s.Add(m)
	}
	return s
}

// Add inserts m if not already present.
func (s *ModifierSet) Add(m Modifier) {
	if s.present == nil {
		s.present = make(map[Modifier]bool)
	}
	if s.present[m] {
		return
	}
	s.present[m] = true
	s.ordered = append(s.ordered, m)
}

// Has reports whether m is a member of the set.
func (s ModifierSet) Has(m Modifier) bool { return s.present[m] }

// List returns the modifiers in insertion (source) order.
func (s ModifierSet) List() []Modifier {
	out := make([]Modifier, len(s.ordered))
	copy(out, s.ordered)
	return out
}

// Len returns the number of distinct modifiers in the set.
func (s ModifierSet) Len() int { return len(s.ordered) }

// Equals compares two ModifierSets by membership only, ignoring order, so
// that structural AST equality is insensitive to modifier-list ordering
// noise.
func (s ModifierSet) Equals(other ModifierSet) bool {
	if s.Len() != other.Len() {
		return false
	}
	for _, m := range s.ordered {
		if !other.Has(m) {
			return false
		}
	}
	return true
}
