package agent

import (
	"context"
	"testing"
)

func TestMapIdentificacaoFoldsNumbersAndFlags(t *testing.T) {
	r := reply{
		"nome":      "João Pereira",
		"idade":     float64(71),
		"sexo":      "Masculino",
		"saps3":     float64(55),
		"sofa_adm":  float64(8),
		"paliativo": true,
		"mrs":       nil,
	}
	out := mapIdentificacao(r)

	if out["idade"] != "71" {
		t.Errorf("idade expected %q, got %q", "71", out["idade"])
	}
	if out["saps3"] != "55" {
		t.Errorf("saps3 expected %q, got %q", "55", out["saps3"])
	}
	if out["paliativo"] != "Sim" {
		t.Errorf("paliativo expected %q, got %q", "Sim", out["paliativo"])
	}
	if out["mrs"] != "" {
		t.Errorf("mrs expected empty, got %q", out["mrs"])
	}
}

func TestMapHDSplitsCurrentAndResolvedSlots(t *testing.T) {
	r := reply{
		"diag_atual_1_nome":        "Choque Séptico",
		"diag_atual_1_data":        "08/02/2026",
		"diag_resolv_1_nome":       "Infecção do Trato Urinário",
		"diag_resolv_1_data_inicio": "01/02/2026",
		"diag_resolv_1_data_fim":    "07/02/2026",
	}
	out := mapHD(r)

	if out["hd_1_status"] != "Atual" {
		t.Errorf("hd_1_status expected %q, got %q", "Atual", out["hd_1_status"])
	}
	if out["hd_5_nome"] != "Infecção do Trato Urinário" {
		t.Errorf("hd_5_nome expected resolved name, got %q", out["hd_5_nome"])
	}
	if out["hd_5_status"] != "Resolvida" {
		t.Errorf("hd_5_status expected %q, got %q", "Resolvida", out["hd_5_status"])
	}
	if out["hd_5_data_resolvido"] != "07/02/2026" {
		t.Errorf("hd_5_data_resolvido expected %q, got %q", "07/02/2026", out["hd_5_data_resolvido"])
	}
	if _, ok := out["hd_2_status"]; ok {
		t.Errorf("hd_2_status should be absent for empty slot")
	}
}

func TestMapAntibioticosFoldsGroupsSequentially(t *testing.T) {
	r := reply{
		"atb_curr_1_nome": "Meropenem",
		"atb_curr_1_tipo": "Empírico",
		"atb_curr_2_nome": "Vancomicina",
		"atb_prev_1_nome": "Ceftriaxona",
		"atb_prev_1_tipo": "algo inválido",
		"atb_prev_1_obs":  "Escalonado",
	}
	out := mapAntibioticos(r)

	if out["atb_1_nome"] != "Meropenem" || out["atb_1_status"] != "Atual" {
		t.Errorf("slot 1 expected Meropenem/Atual, got %q/%q", out["atb_1_nome"], out["atb_1_status"])
	}
	if out["atb_2_nome"] != "Vancomicina" {
		t.Errorf("slot 2 expected Vancomicina, got %q", out["atb_2_nome"])
	}
	if out["atb_3_nome"] != "Ceftriaxona" || out["atb_3_status"] != "Prévio" {
		t.Errorf("slot 3 expected Ceftriaxona/Prévio, got %q/%q", out["atb_3_nome"], out["atb_3_status"])
	}
	if _, ok := out["atb_3_tipo"]; ok {
		t.Errorf("invalid tipo should be dropped")
	}
	if out["atb_3_obs"] != "Escalonado" {
		t.Errorf("atb_3_obs expected %q, got %q", "Escalonado", out["atb_3_obs"])
	}
}

func TestMapSistemasNormalizations(t *testing.T) {
	r := reply{
		"sis_gastro_ictericia_presente":  "Sim",
		"sis_pele_edema":                 "nao",
		"sis_gastro_escape_manha":        true,
		"sis_gastro_escape_tarde":        false,
		"sis_neuro_deficits_ausente":     true,
		"sis_gastro_evacuacao_laxativo":  "Lactulose 10mL 8/8h",
		"sis_renal_cr_hoje":              "1,8",
		"ignorado":                       "x",
	}
	out := mapSistemas(r)

	if out["sis_gastro_ictericia_presente"] != "Presente" {
		t.Errorf("ictericia expected %q, got %q", "Presente", out["sis_gastro_ictericia_presente"])
	}
	if out["sis_pele_edema"] != "Ausente" {
		t.Errorf("edema expected %q, got %q", "Ausente", out["sis_pele_edema"])
	}
	if out["sis_gastro_escape_manha"] != "Sim" {
		t.Errorf("escape_manha expected Sim, got %q", out["sis_gastro_escape_manha"])
	}
	if _, ok := out["sis_gastro_escape_tarde"]; ok {
		t.Errorf("false escape flag should be absent")
	}
	if out["sis_neuro_deficits_ausente"] != "Ausente" {
		t.Errorf("deficits expected Ausente, got %q", out["sis_neuro_deficits_ausente"])
	}
	if out["sis_gastro_laxativo"] != "Lactulose 10mL 8/8h" {
		t.Errorf("laxativo expected renamed key, got %q", out["sis_gastro_laxativo"])
	}
	if _, ok := out["sis_gastro_evacuacao_laxativo"]; ok {
		t.Errorf("original laxativo key should be renamed away")
	}
	if _, ok := out["ignorado"]; ok {
		t.Errorf("non sis_ key should be dropped")
	}
}

func TestRunEvolucaoIsPassthrough(t *testing.T) {
	m := NewManager(Config{ActiveProvider: "gemini"})
	out, err := Run(context.Background(), m, "evolucao", "  Paciente estável.  ")
	if err != nil {
		t.Fatalf("Run expected no error, got %v", err)
	}
	if out["evolucao_notas"] != "Paciente estável." {
		t.Errorf("evolucao_notas expected trimmed text, got %q", out["evolucao_notas"])
	}
}

func TestRunEmptyTextSkips(t *testing.T) {
	m := NewManager(Config{ActiveProvider: "gemini"})
	out, err := Run(context.Background(), m, "culturas", "   ")
	if err != nil {
		t.Fatalf("Run expected no error, got %v", err)
	}
	if len(out) != 0 {
		t.Errorf("empty text expected empty partial, got %v", out)
	}
}
