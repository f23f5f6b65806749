package parse

import (
	"strings"
	"testing"
	"time"

	"prontuario/pkg/core/record"
	"prontuario/pkg/core/render"
)

var hoje = time.Date(2026, 2, 10, 0, 0, 0, 0, time.UTC)

func TestLabsSlotBinning(t *testing.T) {
	texto := "10/02/2026 – Hb 9,2 | Cr 2,1\n" +
		"09/02/2026 – Hb 8,8\n" +
		"08/02/2026 – Hb 8,5\n" +
		"07/02/2026 – Hb 8,1\n" +
		"03/02/2026 – Hb 7,9\n" +
		"20/01/2026 – Hb 7,2\n"

	got := Labs(texto, hoje)

	cases := map[string]string{
		"lab_1_hb":   "9,2",
		"lab_1_cr":   "2,1",
		"lab_1_data": "10/02/2026",
		"lab_2_hb":   "8,8",
		"lab_3_hb":   "8,5",
		"lab_4_hb":   "8,1", // 3 days back lands on the external slot
		"lab_7_hb":   "7,9", // 7 days back: slot 4 + (7-4)
		"lab_10_hb":  "7,2", // 21 days back clamps at slot 10
	}
	for key, want := range cases {
		if got[key] != want {
			t.Errorf("%s expected %q, got %q", key, want, got[key])
		}
	}
}

func TestLabsExternalKeyword(t *testing.T) {
	got := Labs("Externo – Hb 8,8 | Ht 27%", hoje)
	if got["lab_4_data"] != "Externo" {
		t.Errorf("lab_4_data expected Externo, got %q", got["lab_4_data"])
	}
	if got["lab_4_hb"] != "8,8" {
		t.Errorf("lab_4_hb expected 8,8, got %q", got["lab_4_hb"])
	}
	if got["lab_4_ht"] != "27%" {
		t.Errorf("lab_4_ht expected 27%%, got %q", got["lab_4_ht"])
	}
}

func TestLabsBilirubinAndUrn(t *testing.T) {
	got := Labs("10/02/2026 – BT 1,0 (0,3) | Prot Tot 5,8 | Urn: Den: 1.010 / Leu Est: Neg / Leuco 1.000.000", hoje)
	if got["lab_1_bt"] != "1,0" || got["lab_1_bd"] != "0,3" {
		t.Errorf("BT/BD expected split, got bt=%q bd=%q", got["lab_1_bt"], got["lab_1_bd"])
	}
	if got["lab_1_prot_tot"] != "5,8" {
		t.Errorf("prot_tot expected 5,8, got %q", got["lab_1_prot_tot"])
	}
	if got["lab_1_ur_dens"] != "1.010" {
		t.Errorf("ur_dens expected 1.010, got %q", got["lab_1_ur_dens"])
	}
	if got["lab_1_ur_le"] != "Neg" {
		t.Errorf("ur_le expected Neg, got %q", got["lab_1_ur_le"])
	}
	if got["lab_1_ur_leu"] != "1.000.000" {
		t.Errorf("ur_leu expected colon-less value, got %q", got["lab_1_ur_leu"])
	}
}

func TestLabsSkipsUnparseableLines(t *testing.T) {
	got := Labs("texto qualquer sem formato\n\n10/02/2026 – Hb 9,0", hoje)
	if len(got) != 2 {
		t.Errorf("expected only the valid line parsed, got %v", got)
	}
}

func TestControlsFullReport(t *testing.T) {
	texto := `# Controles - 12 horas
> 10/02/2026
PAS: 110 - 135 mmHg | PAD: 70 - 85 mmHg | Temp: 36,4 - 37,8 °C | Glic: 110 - 180 mg/dL
Balanço Hídrico Total: +420ml | Diurese: 1450ml
> 09/02/2026
PAS: 100 - 120 mmHg
> 01/02/2026
PAS: 90 - 110 mmHg
`
	got := Controls(texto, hoje)

	cases := map[string]string{
		"ctrl_periodo":        "12 horas",
		"ctrl_hoje_data":      "10/02/2026",
		"ctrl_hoje_pas_min":   "110",
		"ctrl_hoje_pas_max":   "135",
		"ctrl_hoje_temp_min":  "36,4",
		"ctrl_hoje_temp_max":  "37,8",
		"ctrl_hoje_glic_min":  "110",
		"ctrl_hoje_glic_max":  "180",
		"ctrl_hoje_balanco":   "+420ml",
		"ctrl_hoje_diurese":   "1450ml",
		"ctrl_ontem_data":     "09/02/2026",
		"ctrl_ontem_pas_min":  "100",
		"ctrl_anteontem_data": "",
	}
	for key, want := range cases {
		if got[key] != want {
			t.Errorf("%s expected %q, got %q", key, want, got[key])
		}
	}
	if _, ok := got["ctrl_anteontem_pas_min"]; ok {
		t.Errorf("dates older than two days must be dropped")
	}
}

func TestSystemsBlocks(t *testing.T) {
	texto := `# Evolução por sistemas
- Neurológico
ECG 15 | RASS -2
CAM-ICU: Negativo
Pupilas: Normais, simétricas, fotoreagentes
Sedação: Dexmedetomidina 0.5 mcg/kg/h; Meta Rass -2
Sem déficit focal

- Respiratório
EF: MV+ bilateral
Ventilação Mecânica; PSV, Pressão 8 cmH₂O, Volume 450 mL, FiO2 35, PEEP 5, FR 18
Em ventilação protetora, sincrônico

- Cardiovascular
FC 85 bpm, Ritmo sinusal, PAM 75 mmHg
Perfusão: Normal, TEC: 2 seg
fluidoresponsivo; fluidotolerante

- Renal
Diurese 1800 mL | BH +350 mL | BH Acumulado +800 mL
Cr: 2.8 → 2.5 → 2.1
Em TRS, Cateter femoral D

- Infeccioso
Febre: Ausente
PCR: 120 → 78 → 45

- Hematológico
Anticoagulação: Profilática
Hb: 8.5 → 8.8 → 9.2
`
	got := Systems(texto)

	cases := map[string]string{
		"sis_neuro_ecg":              "15",
		"sis_neuro_rass":             "-2",
		"sis_neuro_cam_icu":          "Negativo",
		"sis_neuro_pupilas_tam":      "Normal",
		"sis_neuro_pupilas_simetria": "Simétricas",
		"sis_neuro_pupilas_foto":     "Fotoreagente",
		"sis_neuro_sedacao_1_drogas": "Dexmedetomidina",
		"sis_neuro_sedacao_meta":     "RASS -2",
		"sis_neuro_deficits_ausente": "Ausente",
		"sis_resp_ausculta":          "MV+ bilateral",
		"sis_resp_modo":              "Ventilação Mecânica",
		"sis_resp_modo_vent":         "PSV",
		"sis_resp_pressao":           "8",
		"sis_resp_fio2":              "35",
		"sis_resp_peep":              "5",
		"sis_resp_vent_protetora":    "Sim",
		"sis_resp_sincronico":        "Sim",
		"sis_cardio_fc":              "85",
		"sis_cardio_cardioscopia":    "sinusal",
		"sis_cardio_pam":             "75",
		"sis_cardio_perfusao":        "Normal",
		"sis_cardio_tec":             "2 seg",
		"sis_cardio_fluido_responsivo": "Sim",
		"sis_renal_diurese":          "1800 mL",
		"sis_renal_balanco":          "+350 mL",
		"sis_renal_balanco_acum":     "+800 mL",
		"sis_renal_cr_antepen":       "2.8",
		"sis_renal_cr_hoje":          "2.1",
		"sis_renal_trs":              "Sim",
		"sis_renal_trs_via":          "Cateter femoral D",
		"sis_infec_febre":            "Não",
		"sis_infec_pcr_antepen":      "120",
		"sis_infec_pcr_hoje":         "45",
		"sis_hemato_anticoag":        "Sim",
		"sis_hemato_anticoag_tipo":   "Profilática",
		"sis_hemato_hb_hoje":         "9.2",
	}
	for key, want := range cases {
		if got[key] != want {
			t.Errorf("%s expected %q, got %q", key, want, got[key])
		}
	}
}

func TestSystemsEmptyInput(t *testing.T) {
	if got := Systems("   "); len(got) != 0 {
		t.Errorf("blank input expected empty result, got %v", got)
	}
}

func TestLabsParsesRenderedBlocks(t *testing.T) {
	n := record.New()
	n.SetText("lab_1_data", "22/01/2026")
	n.SetText("lab_1_hb", "9.2")
	n.SetText("lab_1_cr", "2.1")
	n.SetText("lab_1_gas_ph", "7.31")
	n.SetChoice("lab_1_gas_tipo", "Arterial")
	n.SetText("lab_1_ur_dens", "1.010")
	n.SetText("lab_2_data", "21/01/2026")
	n.SetText("lab_2_hb", "8.8")

	doc := strings.Join(render.Labs(n), "\n")
	ref := time.Date(2026, 1, 22, 0, 0, 0, 0, time.UTC)
	got := Labs(doc, ref)

	cases := map[string]string{
		"lab_1_data":    "22/01/2026",
		"lab_1_hb":      "9.2",
		"lab_1_cr":      "2.1",
		"lab_1_ur_dens": "1.010",
		"lab_2_data":    "21/01/2026",
		"lab_2_hb":      "8.8",
	}
	for key, want := range cases {
		if got[key] != want {
			t.Errorf("%s expected %q, got %q", key, want, got[key])
		}
	}
	if _, ok := got["lab_2_cr"]; ok {
		t.Errorf("values must stay in their own block, got %v", got)
	}
}

func TestLabsBlockHeaderWithExternalKeyword(t *testing.T) {
	texto := "> Externo\nHb 8,8 | Ht 27%"
	got := Labs(texto, hoje)
	if got["lab_4_data"] != "Externo" {
		t.Errorf("lab_4_data expected Externo, got %q", got["lab_4_data"])
	}
	if got["lab_4_hb"] != "8,8" {
		t.Errorf("lab_4_hb expected 8,8, got %q", got["lab_4_hb"])
	}
}
