package record

import "testing"

func TestApplyPartialFillsOnlyEmpty(t *testing.T) {
	n := New()
	n.SetText("hd_1_nome", "Choque séptico")

	filled := n.ApplyPartial(map[string]string{
		"hd_1_nome":   "Pneumonia",
		"hd_1_obs":    "foco pulmonar",
		"hd_1_status": "Atual",
		"paliativo":   "Sim",
		"nao_existe":  "x",
		"hd_2_nome":   "   ",
	})

	if filled != 3 {
		t.Errorf("filled expected 3, got %d", filled)
	}
	if got := n.Text("hd_1_nome"); got != "Choque séptico" {
		t.Errorf("hd_1_nome expected manual value preserved, got %q", got)
	}
	if got := n.Text("hd_1_obs"); got != "foco pulmonar" {
		t.Errorf("hd_1_obs expected filled, got %q", got)
	}
	if !n.ChoiceIs("hd_1_status", "Atual") {
		t.Errorf("hd_1_status expected Atual")
	}
	if !n.Flag("paliativo") {
		t.Errorf("paliativo expected true")
	}
}

func TestApplyPartialDropsInvalidChoice(t *testing.T) {
	n := New()
	n.ApplyPartial(map[string]string{"cult_1_status": "Talvez positivo"})
	if _, set := n.Choice("cult_1_status"); set {
		t.Errorf("cult_1_status expected unset after sanitize")
	}
}

func TestSetOrderRejectsNonPermutation(t *testing.T) {
	n := New()
	if n.SetOrder("hd_ordem", []int{1, 2, 3}) {
		t.Errorf("short list expected rejected")
	}
	if n.SetOrder("hd_ordem", []int{1, 1, 2, 3, 4, 5, 6, 7}) {
		t.Errorf("duplicate id expected rejected")
	}
	if n.SetOrder("hd_ordem", []int{0, 1, 2, 3, 4, 5, 6, 7}) {
		t.Errorf("out-of-range id expected rejected")
	}
	if !n.SetOrder("hd_ordem", []int{8, 7, 6, 5, 4, 3, 2, 1}) {
		t.Errorf("valid permutation expected accepted")
	}
	got := n.Order("hd_ordem")
	if got[0] != 8 || got[7] != 1 {
		t.Errorf("order expected reversed, got %v", got)
	}
}

func TestSwapOrder(t *testing.T) {
	n := New()
	n.SwapOrder("muc_ordem", 0, 2)
	got := n.Order("muc_ordem")
	if got[0] != 3 || got[2] != 1 {
		t.Errorf("swap expected [3 2 1 ...], got %v", got[:3])
	}
	n.SwapOrder("muc_ordem", -1, 50)
	if len(n.Order("muc_ordem")) != 20 {
		t.Errorf("out-of-range swap must not change length")
	}
}

func TestAdvanceLabsShiftsAndClears(t *testing.T) {
	n := New()
	n.SetText("lab_1_data", "10/02/2026")
	n.SetText("lab_1_hb", "9.2")
	n.SetChoice("lab_1_gas_tipo", "Arterial")
	n.SetText("lab_2_hb", "8.8")
	n.SetText("lab_10_hb", "7.0")

	n.AdvanceLabs()

	if got := n.Text("lab_2_hb"); got != "9.2" {
		t.Errorf("lab_2_hb expected 9.2, got %q", got)
	}
	if got := n.Text("lab_2_data"); got != "10/02/2026" {
		t.Errorf("lab_2_data expected 10/02/2026, got %q", got)
	}
	if !n.ChoiceIs("lab_2_gas_tipo", "Arterial") {
		t.Errorf("lab_2_gas_tipo expected Arterial")
	}
	if got := n.Text("lab_3_hb"); got != "8.8" {
		t.Errorf("lab_3_hb expected 8.8, got %q", got)
	}
	if got := n.Text("lab_1_hb"); got != "" {
		t.Errorf("lab_1_hb expected cleared, got %q", got)
	}
	if _, set := n.Choice("lab_1_gas_tipo"); set {
		t.Errorf("lab_1_gas_tipo expected cleared")
	}
	if got := n.Text("lab_10_hb"); got != "" {
		// slot 9 was empty, so the old slot-10 value falls off
		t.Errorf("lab_10_hb expected overwritten by empty slot 9, got %q", got)
	}
}

func TestAdvanceControlsRotatesDays(t *testing.T) {
	n := New()
	n.SetText("ctrl_hoje_data", "10/02/26")
	n.SetText("ctrl_hoje_pas_min", "90")
	n.SetText("ctrl_hoje_pas_max", "130")
	n.SetText("ctrl_hoje_diurese", "1500")
	n.SetText("ctrl_ontem_pas_min", "85")
	n.SetText("ctrl_periodo", "12 horas")

	n.AdvanceControls()

	if got := n.Text("ctrl_ontem_pas_min"); got != "90" {
		t.Errorf("ctrl_ontem_pas_min expected 90, got %q", got)
	}
	if got := n.Text("ctrl_anteontem_pas_min"); got != "85" {
		t.Errorf("ctrl_anteontem_pas_min expected 85, got %q", got)
	}
	if got := n.Text("ctrl_ontem_diurese"); got != "1500" {
		t.Errorf("ctrl_ontem_diurese expected 1500, got %q", got)
	}
	if got := n.Text("ctrl_hoje_pas_min"); got != "" {
		t.Errorf("ctrl_hoje_pas_min expected cleared, got %q", got)
	}
	if got := n.Text("ctrl_periodo"); got != "12 horas" {
		t.Errorf("ctrl_periodo expected untouched, got %q", got)
	}
}

func TestAdvanceSystemsRotatesTrends(t *testing.T) {
	n := New()
	n.SetText("sis_renal_cr_hoje", "2.1")
	n.SetText("sis_renal_cr_ult", "1.8")
	n.SetText("sis_renal_cr_antepen", "1.5")

	n.AdvanceSystems()

	if got := n.Text("sis_renal_cr_antepen"); got != "1.8" {
		t.Errorf("antepen expected 1.8, got %q", got)
	}
	if got := n.Text("sis_renal_cr_ult"); got != "2.1" {
		t.Errorf("ult expected 2.1, got %q", got)
	}
	if got := n.Text("sis_renal_cr_hoje"); got != "" {
		t.Errorf("hoje expected cleared, got %q", got)
	}
}

func TestSnapshotRoundTrip(t *testing.T) {
	n := New()
	n.SetText("nome", "MARIA DA SILVA")
	n.SetChoice("hd_1_status", "Resolvida")
	n.SetFlag("paliativo", true)
	n.SetOrder("atb_ordem", []int{2, 1, 3, 4, 5, 6, 7, 8})

	s := n.Snapshot()
	if _, ok := s.Orders["hd_ordem"]; ok {
		t.Errorf("identity ordering must not be stored")
	}

	m := New()
	m.Restore(s)
	if got := m.Text("nome"); got != "MARIA DA SILVA" {
		t.Errorf("nome expected restored, got %q", got)
	}
	if !m.ChoiceIs("hd_1_status", "Resolvida") {
		t.Errorf("hd_1_status expected Resolvida")
	}
	if !m.Flag("paliativo") {
		t.Errorf("paliativo expected true")
	}
	if got := m.Order("atb_ordem"); got[0] != 2 || got[1] != 1 {
		t.Errorf("atb_ordem expected restored, got %v", got)
	}
	if got := m.Text("ctrl_periodo"); got != "24 horas" {
		t.Errorf("ctrl_periodo expected default, got %q", got)
	}
}

func TestNormalizeDates(t *testing.T) {
	n := New()
	n.SetText("hd_1_data_inicio", "10022026")
	n.SetText("di_uti", "0502")
	n.SetText("hd_1_obs", "10022026")

	n.NormalizeDates()

	if got := n.Text("hd_1_data_inicio"); got != "10/02/2026" {
		t.Errorf("hd_1_data_inicio expected 10/02/2026, got %q", got)
	}
	if got := n.Text("di_uti"); got != "05/02/" {
		t.Errorf("di_uti expected 05/02/, got %q", got)
	}
	if got := n.Text("hd_1_obs"); got != "10022026" {
		t.Errorf("hd_1_obs expected untouched, got %q", got)
	}
}
