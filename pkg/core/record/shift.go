package record

import "fmt"

// AdvanceLabs shifts every lab day slot one position into the history
// (slot 1 becomes 2 and so on, slot 10 falls off) and leaves slot 1 blank
// for the new day. Values move as-is, including the "outros" free text and
// the per-slot conduta.
func (n *Note) AdvanceLabs() {
	for i := 9; i >= 1; i-- {
		for _, suf := range labValueSuffixes {
			src := fmt.Sprintf("lab_%d_%s", i, suf)
			dst := fmt.Sprintf("lab_%d_%s", i+1, suf)
			if suf == "gas_tipo" {
				if v, ok := n.choices[src]; ok {
					n.choices[dst] = v
				} else {
					delete(n.choices, dst)
				}
				continue
			}
			n.text[dst] = n.text[src]
		}
	}
	for _, suf := range labValueSuffixes {
		key := "lab_1_" + suf
		if suf == "gas_tipo" {
			delete(n.choices, key)
			continue
		}
		n.text[key] = ""
	}
}

// controlDayKeys lists every per-day key suffix of the controls section.
func controlDayKeys(dia string) []string {
	keys := []string{fmt.Sprintf("ctrl_%s_data", dia)}
	for _, p := range controlParams {
		if p.MinMax {
			keys = append(keys,
				fmt.Sprintf("ctrl_%s_%s_min", dia, p.Key),
				fmt.Sprintf("ctrl_%s_%s_max", dia, p.Key))
		} else {
			keys = append(keys, fmt.Sprintf("ctrl_%s_%s", dia, p.Key))
		}
	}
	return keys
}

// AdvanceControls rotates the hoje/ontem/anteontem control columns one day
// back: anteontem takes ontem's values, ontem takes hoje's, hoje is
// cleared. The reporting period and conduta are untouched.
func (n *Note) AdvanceControls() {
	for _, pair := range [][2]string{{"anteontem", "ontem"}, {"ontem", "hoje"}} {
		dst := controlDayKeys(pair[0])
		src := controlDayKeys(pair[1])
		for i := range dst {
			n.text[dst[i]] = n.text[src[i]]
		}
	}
	for _, key := range controlDayKeys("hoje") {
		n.text[key] = ""
	}
}

// AdvanceSystems rotates the lab-trend trios embedded in the systems
// review (creatinine, urea, CRP, leukocytes, hemoglobin, platelets, INR):
// antepen takes ult, ult takes hoje, hoje is cleared.
func (n *Note) AdvanceSystems() {
	for _, prefix := range systemTrends {
		n.text[prefix+"_antepen"] = n.text[prefix+"_ult"]
		n.text[prefix+"_ult"] = n.text[prefix+"_hoje"]
		n.text[prefix+"_hoje"] = ""
	}
}

// AdvanceDay applies all three day shifts at once, the operation run when
// a stored session is reopened on a new day.
func (n *Note) AdvanceDay() {
	n.AdvanceLabs()
	n.AdvanceControls()
	n.AdvanceSystems()
}
