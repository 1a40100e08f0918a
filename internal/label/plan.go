package label

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// SyncPlan records, for one repository, the labels that must be created and
// the existing labels that must be updated to reach the desired state. A plan
// is built synchronously by a single pipeline and never shared between
// goroutines.
type SyncPlan struct {
	Owner      string
	Repository string

	creates     []Label
	updates     map[string]Label
	updateOrder []string
}

// NewSyncPlan creates an empty plan for owner/repository.
func NewSyncPlan(owner, repository string) *SyncPlan {
	return &SyncPlan{
		Owner:      owner,
		Repository: repository,
		updates:    make(map[string]Label),
	}
}

// AddLabelToCreate appends a copy of the desired label to the create list.
func (p *SyncPlan) AddLabelToCreate(desired Label) {
	p.creates = append(p.creates, desired.Copy())
}

// AddLabelToUpdate records that the existing label should be updated to match
// the desired label, keyed by the existing label's current name. A second call
// with the same existing name silently overwrites the first; callers must
// ensure each existing label is targeted by at most one desired label.
func (p *SyncPlan) AddLabelToUpdate(existing, desired Label) {
	if _, ok := p.updates[existing.Name]; !ok {
		p.updateOrder = append(p.updateOrder, existing.Name)
	}
	p.updates[existing.Name] = desired.Copy()
}

// LabelsToCreate returns the labels to create, in decision order.
func (p *SyncPlan) LabelsToCreate() []Label {
	out := make([]Label, 0, len(p.creates))
	for _, l := range p.creates {
		out = append(out, l.Copy())
	}
	return out
}

// LabelsToUpdate returns the existing-name to desired-label mapping.
func (p *SyncPlan) LabelsToUpdate() map[string]Label {
	out := make(map[string]Label, len(p.updates))
	for name, l := range p.updates {
		out[name] = l.Copy()
	}
	return out
}

// UpdateOrder returns the existing-label names in insertion order. Used to
// make serialized output and update submission deterministic.
func (p *SyncPlan) UpdateOrder() []string {
	out := make([]string, len(p.updateOrder))
	copy(out, p.updateOrder)
	return out
}

// IsEmpty reports whether the plan contains no work.
func (p *SyncPlan) IsEmpty() bool {
	return len(p.creates) == 0 && len(p.updates) == 0
}

// MarshalJSON serializes the plan with the update mapping rendered as a keyed
// object in insertion order.
func (p *SyncPlan) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')

	writeField := func(key string, v interface{}) error {
		k, err := json.Marshal(key)
		if err != nil {
			return err
		}
		val, err := json.Marshal(v)
		if err != nil {
			return err
		}
		buf.Write(k)
		buf.WriteByte(':')
		buf.Write(val)
		return nil
	}

	if err := writeField("owner", p.Owner); err != nil {
		return nil, err
	}
	buf.WriteByte(',')
	if err := writeField("repository", p.Repository); err != nil {
		return nil, err
	}
	buf.WriteByte(',')

	creates := p.creates
	if creates == nil {
		creates = []Label{}
	}
	if err := writeField("labelsToCreate", creates); err != nil {
		return nil, err
	}

	buf.WriteString(`,"labelsToUpdate":{`)
	for i, name := range p.updateOrder {
		if i > 0 {
			buf.WriteByte(',')
		}
		if err := writeField(name, p.updates[name]); err != nil {
			return nil, err
		}
	}
	buf.WriteString("}}")

	return buf.Bytes(), nil
}

// UnmarshalJSON restores a plan serialized by MarshalJSON, preserving the
// update-key order found in the document.
func (p *SyncPlan) UnmarshalJSON(data []byte) error {
	var raw struct {
		Owner          string          `json:"owner"`
		Repository     string          `json:"repository"`
		LabelsToCreate []Label         `json:"labelsToCreate"`
		LabelsToUpdate json.RawMessage `json:"labelsToUpdate"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	p.Owner = raw.Owner
	p.Repository = raw.Repository
	p.creates = raw.LabelsToCreate
	p.updates = make(map[string]Label)
	p.updateOrder = nil

	if len(raw.LabelsToUpdate) == 0 {
		return nil
	}

	dec := json.NewDecoder(bytes.NewReader(raw.LabelsToUpdate))
	tok, err := dec.Token()
	if err != nil {
		return err
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return fmt.Errorf("labelsToUpdate: expected object, got %v", tok)
	}
	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return err
		}
		key, ok := keyTok.(string)
		if !ok {
			return fmt.Errorf("labelsToUpdate: expected string key, got %v", keyTok)
		}
		var l Label
		if err := dec.Decode(&l); err != nil {
			return err
		}
		p.updateOrder = append(p.updateOrder, key)
		p.updates[key] = l
	}
	return nil
}
