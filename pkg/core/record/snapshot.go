package record

// Snapshot is the serializable form of a Note, the shape stored as JSONB
// in the sessions table and written by the CLI. Only non-default values
// are included so stored sessions stay small.
type Snapshot struct {
	Text    map[string]string `json:"text,omitempty"`
	Choices map[string]string `json:"choices,omitempty"`
	Flags   []string          `json:"flags,omitempty"`
	Orders  map[string][]int  `json:"orders,omitempty"`
}

// Snapshot captures the note's current non-default state.
func (n *Note) Snapshot() Snapshot {
	s := Snapshot{
		Text:    make(map[string]string),
		Choices: make(map[string]string),
		Orders:  make(map[string][]int),
	}
	for key, val := range n.text {
		if val == "" {
			continue
		}
		s.Text[key] = val
	}
	for key, val := range n.choices {
		s.Choices[key] = val
	}
	for key, val := range n.flags {
		if val {
			s.Flags = append(s.Flags, key)
		}
	}
	for section, ids := range n.orders {
		identity := true
		for i, id := range ids {
			if id != i+1 {
				identity = false
				break
			}
		}
		if !identity {
			cp := make([]int, len(ids))
			copy(cp, ids)
			s.Orders[section] = cp
		}
	}
	return s
}

// Restore resets the note and loads a stored snapshot into it.
// Unregistered keys and invalid orderings are dropped silently, so old
// sessions saved under a wider field set still load.
func (n *Note) Restore(s Snapshot) {
	n.Reset()
	for key, val := range s.Text {
		n.SetText(key, val)
	}
	for key, val := range s.Choices {
		n.SetChoice(key, val)
	}
	for _, key := range s.Flags {
		n.SetFlag(key, true)
	}
	for section, ids := range s.Orders {
		n.SetOrder(section, ids)
	}
	n.SanitizeChoices()
}
