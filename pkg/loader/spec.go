package loader

// TableSpec is the file representation of a breakpoint table. Bounds are
// integers or CEL expressions over Tokens.
type TableSpec struct {
	Tokens  map[string]int `yaml:"tokens,omitempty" json:"tokens,omitempty" toml:"tokens,omitempty"`
	Strict  bool           `yaml:"strict,omitempty" json:"strict,omitempty" toml:"strict,omitempty"`
	Default *OutputSpec    `yaml:"default,omitempty" json:"default,omitempty" toml:"default,omitempty"`
	Entries []EntrySpec    `yaml:"entries" json:"entries" toml:"entries"`
}

// EntrySpec is one table entry. A missing Max means unbounded.
type EntrySpec struct {
	Min     any     `yaml:"min" json:"min" toml:"min"`
	Max     any     `yaml:"max,omitempty" json:"max,omitempty" toml:"max,omitempty"`
	Class   *string `yaml:"class,omitempty" json:"class,omitempty" toml:"class,omitempty"`
	Content *string `yaml:"content,omitempty" json:"content,omitempty" toml:"content,omitempty"`
}

// OutputSpec is a class or content value.
type OutputSpec struct {
	Class   *string `yaml:"class,omitempty" json:"class,omitempty" toml:"class,omitempty"`
	Content *string `yaml:"content,omitempty" json:"content,omitempty" toml:"content,omitempty"`
}
