package terraform

import (
	"sort"
	"strings"
)

// Entry records one file or directory found under the module root.
type Entry struct {
	RelPath   string
	IsDir     bool
	Text      string
	Truncated bool
	ReadErr   string
}

// Variable is a declared input variable.
type Variable struct {
	Name        string
	Type        string
	Description string
	Validations []string
	File        string
}

// Output is a declared output value.
type Output struct {
	Name        string
	Description string
	File        string
}

// Resource is a declared managed resource.
type Resource struct {
	Type        string
	Name        string
	UsesForEach bool
	UsesCount   bool
	Attributes  map[string]string
	File        string
}

// Snapshot is the read-only capture of a module's files and declared
// constructs. It is built once per evaluation call and never shared across
// calls. Declarations come from *.tf files outside sample/; sample content is
// still captured as entries.
type Snapshot struct {
	RootPath  string
	Entries   []Entry
	Variables map[string]Variable
	Outputs   map[string]Output
	Resources []Resource
	Locals    map[string]string
}

// Entry returns the entry at rel, or nil.
func (s *Snapshot) Entry(rel string) *Entry {
	for i := range s.Entries {
		if s.Entries[i].RelPath == rel {
			return &s.Entries[i]
		}
	}
	return nil
}

// Text returns the captured content of the file at rel and whether the entry
// exists as a readable file. Truncated entries report false: their content
// was never captured, so rules must not judge it as empty.
func (s *Snapshot) Text(rel string) (string, bool) {
	e := s.Entry(rel)
	if e == nil || e.IsDir || e.ReadErr != "" || e.Truncated {
		return "", false
	}
	return e.Text, true
}

// ConfigText concatenates the content of every root-level *.tf file, in entry
// order. Used by rules that look for module-wide lexical signals.
func (s *Snapshot) ConfigText() string {
	var sb strings.Builder
	for _, e := range s.Entries {
		if e.IsDir || !strings.HasSuffix(e.RelPath, ".tf") || strings.Contains(e.RelPath, "/") {
			continue
		}
		sb.WriteString(e.Text)
		sb.WriteString("\n")
	}
	return sb.String()
}

// VariableNames returns declared variable names in sorted order.
func (s *Snapshot) VariableNames() []string {
	names := make([]string, 0, len(s.Variables))
	for name := range s.Variables {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// OutputNames returns declared output names in sorted order.
func (s *Snapshot) OutputNames() []string {
	names := make([]string, 0, len(s.Outputs))
	for name := range s.Outputs {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// LocalNames returns declared local value names in sorted order.
func (s *Snapshot) LocalNames() []string {
	names := make([]string, 0, len(s.Locals))
	for name := range s.Locals {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// ResourcesOfType returns declared resources whose type matches, in
// declaration order.
func (s *Snapshot) ResourcesOfType(resourceType string) []Resource {
	var out []Resource
	for _, r := range s.Resources {
		if r.Type == resourceType {
			out = append(out, r)
		}
	}
	return out
}

// HasResourceType reports whether any declared resource has the given type.
func (s *Snapshot) HasResourceType(resourceType string) bool {
	return len(s.ResourcesOfType(resourceType)) > 0
}
