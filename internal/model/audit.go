package model

// Collision is a pair of link table entries where the quoted form of Entry
// occurs inside the prefixed quoted form of Within.
type Collision struct {
	Entry  string `yaml:"entry"`
	Within string `yaml:"within"`
}

// Audit summarizes how a navigation template and a link table fit together.
type Audit struct {
	// Links are the distinct href values found on <a> elements, in document order.
	Links []string `yaml:"links"`
	// Uncovered are relative hrefs in the template that the table does not list.
	Uncovered []string `yaml:"uncovered,omitempty"`
	// Unused are table entries that never appear in the template.
	Unused []string `yaml:"unused,omitempty"`
	// Collisions are entries that could be double prefixed.
	Collisions []Collision `yaml:"collisions,omitempty"`
}

// Safe reports whether adjusting the template cannot double-prefix a link.
func (a Audit) Safe() bool {
	return len(a.Collisions) == 0
}
