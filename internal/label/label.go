// Package label implements the label reconciliation core: matching existing
// repository labels onto a desired label set and recording the resulting
// create/update decisions in a per-repository sync plan.
package label

// Label represents an issue label as it should exist in a repository.
type Label struct {
	Name        string  `json:"name" mapstructure:"name"`
	Color       string  `json:"color" mapstructure:"color"`
	Description *string `json:"description,omitempty" mapstructure:"description"`
}

// Copy returns a deep copy of the label.
func (l Label) Copy() Label {
	c := Label{
		Name:  l.Name,
		Color: l.Color,
	}
	if l.Description != nil {
		desc := *l.Description
		c.Description = &desc
	}
	return c
}

// String returns a pointer to the given string value.
func String(v string) *string {
	return &v
}
