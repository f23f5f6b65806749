package render

import (
	"strings"
	"testing"

	"prontuario/pkg/core/record"
)

func TestRenderEmptyNote(t *testing.T) {
	n := record.New()
	if got := Render(n); got != "" {
		t.Errorf("empty note expected empty document, got %q", got)
	}
}

func TestRenderIsIdempotent(t *testing.T) {
	n := record.New()
	n.SetText("nome", "MARIA DA SILVA")
	n.SetText("lab_1_hb", "9.2")
	first := Render(n)
	second := Render(n)
	if first != second {
		t.Errorf("render expected stable over unchanged state")
	}
}

func TestIdentificationBannerAndCaps(t *testing.T) {
	n := record.New()
	n.SetText("departamento", "uti adulto")
	n.SetText("nome", "MARIA DA SILVA")
	n.SetText("idade", "62")
	n.SetText("sexo", "Feminino")
	n.SetText("prontuario", "123456")
	n.SetText("leito", "07")
	n.SetFlag("paliativo", true)

	got := Identification(n)
	want := []string{
		"# UTI ADULTO #",
		"",
		"# Identificação & Scores",
		"Nome: Maria da Silva, 62 anos, Feminino",
		"Prontuário: 123456 | Leito: 07",
		"PACIENTE EM CUIDADOS PROPORCIONAIS",
	}
	if strings.Join(got, "\n") != strings.Join(want, "\n") {
		t.Errorf("identification expected %q, got %q", strings.Join(want, "\n"), strings.Join(got, "\n"))
	}
}

func TestDiagnosesStatusPartitionAndConductExclusion(t *testing.T) {
	n := record.New()
	n.SetText("hd_1_nome", "CHOQUE SÉPTICO")
	n.SetText("hd_1_obs", "Conduta: ajustar antibiótico\nHemocultura positiva")
	n.SetText("hd_2_nome", "ITU")
	n.SetText("hd_2_data_inicio", "01/02/2026")
	n.SetText("hd_2_data_resolvido", "10/02/2026")
	n.SetChoice("hd_2_status", "Resolvida")

	got := strings.Join(Diagnoses(n), "\n")
	want := strings.Join([]string{
		"# Diagnósticos Atuais",
		"1- Choque Séptico",
		"> Hemocultura positiva",
		"",
		"# Diagnósticos Resolvidos",
		"1- Itu; 01/02/2026 - 10/02/2026",
	}, "\n")
	if got != want {
		t.Errorf("diagnoses expected %q, got %q", want, got)
	}
	if strings.Contains(got, "ajustar antibiótico") {
		t.Errorf("conduta line must not appear in diagnoses")
	}

	condutas := strings.Join(Conducts(n), "\n")
	if !strings.Contains(condutas, "- ajustar antibiótico") {
		t.Errorf("conduta line expected in condutas, got %q", condutas)
	}
}

func TestDiagnosesNumberingFollowsDisplayOrder(t *testing.T) {
	n := record.New()
	n.SetText("hd_1_nome", "Pneumonia")
	n.SetText("hd_3_nome", "DRC")
	n.SetOrder("hd_ordem", []int{3, 1, 2, 4, 5, 6, 7, 8})

	got := Diagnoses(n)
	if got[1] != "1- Drc" {
		t.Errorf("first item expected 1- Drc, got %q", got[1])
	}
	if got[3] != "2- Pneumonia" {
		t.Errorf("second item expected 2- Pneumonia, got %q", got[3])
	}
}

func TestCulturesPendingWithoutResult(t *testing.T) {
	n := record.New()
	n.SetText("cult_1_sitio", "Hemocultura")
	n.SetText("cult_1_data_coleta", "05/02/2026")
	n.SetChoice("cult_1_status", "Pendente negativo")
	n.SetText("cult_2_sitio", "Urocultura")
	n.SetText("cult_2_micro", "ESCHERICHIA COLI")
	n.SetText("cult_2_sensib", "sensível a ceftriaxona")
	n.SetChoice("cult_2_status", "Positivo com Antibiograma")

	got := strings.Join(Cultures(n), "\n")
	want := strings.Join([]string{
		"# Culturas Positivas",
		"1- Urocultura",
		"> Escherichia Coli; sensível a ceftriaxona",
		"",
		"# Culturas em Andamento",
		"1- Hemocultura; coletada 05/02/2026; Parcialmente negativa",
	}, "\n")
	if got != want {
		t.Errorf("cultures expected %q, got %q", want, got)
	}
}

func TestDevicesAcronymAndGroups(t *testing.T) {
	n := record.New()
	n.SetText("disp_1_nome", "cvc")
	n.SetText("disp_1_local", "subclávia direita")
	n.SetText("disp_1_data_insercao", "02/02/2026")
	n.SetText("disp_2_nome", "svd")
	n.SetText("disp_2_data_insercao", "01/02/2026")
	n.SetText("disp_2_data_retirada", "08/02/2026")
	n.SetChoice("disp_2_status", "Removido")

	got := strings.Join(Devices(n), "\n")
	want := strings.Join([]string{
		"# Dispositivos Atuais",
		"1- CVC; subclávia direita; 02/02/2026 - Atual",
		"",
		"# Dispositivos Prévios",
		"1- SVD; 01/02/2026 - 08/02/2026",
	}, "\n")
	if got != want {
		t.Errorf("devices expected %q, got %q", want, got)
	}
}

func TestContinuousMedsSummaryLine(t *testing.T) {
	n := record.New()
	n.SetText("muc_1_nome", "Losartana")
	n.SetText("muc_1_dose", "50mg")
	n.SetText("muc_1_freq", "12/12h")
	n.SetChoice("muc_adesao_global", "Uso Regular")
	n.SetChoice("muc_alergia", "Nega")

	got := strings.Join(ContinuousMeds(n), "\n")
	want := strings.Join([]string{
		"# Medicações de Uso Contínuo",
		"Uso Regular | Nega alergias",
		"1- Losartana; 50mg; 12/12h",
	}, "\n")
	if got != want {
		t.Errorf("muc expected %q, got %q", want, got)
	}
}

func TestAntibioticsProgrammedAndPreviousSpans(t *testing.T) {
	n := record.New()
	n.SetText("atb_1_nome", "MEROPENEM")
	n.SetText("atb_1_foco", "itu")
	n.SetChoice("atb_1_tipo", "Empírico")
	n.SetText("atb_1_data_ini", "01/02/2026")
	n.SetText("atb_1_data_fim", "08/02/2026")
	n.SetChoice("atb_1_status", "Atual")
	n.SetText("atb_2_nome", "Ceftriaxona")
	n.SetText("atb_2_data_ini", "25/01/2026")
	n.SetText("atb_2_data_fim", "30/01/2026")
	n.SetChoice("atb_2_status", "Prévio")

	got := strings.Join(Antibiotics(n), "\n")
	want := strings.Join([]string{
		"# Antibiótico Atual",
		"1- Meropenem; Foco ITU; Empírico; 01/02/2026 → 08/02/2026 (Programado 7 dias)",
		"",
		"# Antibiótico Prévio",
		"1- Ceftriaxona; 25/01/2026 - 30/01/2026 (Uso por 5 dias)",
	}, "\n")
	if got != want {
		t.Errorf("antibiotics expected %q, got %q", want, got)
	}
}

func TestLabsSlotLines(t *testing.T) {
	n := record.New()
	n.SetText("lab_1_data", "10/02/2026")
	n.SetText("lab_1_hb", "9.2")
	n.SetText("lab_1_cr", "2.1")
	n.SetText("lab_1_bt", "1.2")
	n.SetText("lab_1_bd", "0.4")
	n.SetText("lab_1_gas_ph", "7.31")
	n.SetText("lab_1_gas_lac", "2.4")
	n.SetChoice("lab_1_gas_tipo", "Arterial")
	n.SetText("lab_1_ur_dens", "1015")
	n.SetText("lab_2_data", "09/02/2026")
	n.SetText("lab_2_hb", "8.8")

	got := strings.Join(Labs(n), "\n")
	want := strings.Join([]string{
		"# Laboratoriais",
		"> 10/02/2026",
		"Hb 9.2 | Cr 2.1 | BT 1.2 (BD 0.4) | Lac 2.4",
		"Gas Art - pH 7.31 / Lac 2.4",
		"Urn: Den: 1015",
		"> 09/02/2026",
		"Hb 8.8",
	}, "\n")
	if got != want {
		t.Errorf("labs expected %q, got %q", want, got)
	}
}

func TestControlsBannerAndRanges(t *testing.T) {
	n := record.New()
	n.SetText("ctrl_periodo", "12 horas")
	n.SetText("ctrl_hoje_data", "10/02/26")
	n.SetText("ctrl_hoje_pas_min", "90")
	n.SetText("ctrl_hoje_pas_max", "130")
	n.SetText("ctrl_hoje_fc_min", "80")
	n.SetText("ctrl_hoje_diurese", "1200")
	n.SetText("ctrl_hoje_balanco", "+300")
	n.SetText("ctrl_ontem_data", "09/02/26")
	n.SetText("ctrl_ontem_pam_min", "65")
	n.SetText("ctrl_ontem_pam_max", "80")

	got := strings.Join(Controls(n), "\n")
	want := strings.Join([]string{
		"# Controles & Balanço Hídrico",
		">> 12 horas <<",
		"",
		">10/02/26",
		"PAS 90-130 | FC 80",
		"Diurese 1200 | BH +300",
		">09/02/26",
		"PAM 65-80",
	}, "\n")
	if got != want {
		t.Errorf("controls expected %q, got %q", want, got)
	}
}

func TestSystemsTrendsAndMilliliterNormalization(t *testing.T) {
	n := record.New()
	n.SetText("sis_renal_cr_antepen", "1.5")
	n.SetText("sis_renal_cr_ult", "1.8/")
	n.SetText("sis_renal_cr_hoje", "2.1")
	n.SetText("sis_renal_balanco", "300 ml")
	n.SetChoice("sis_renal_trs", "Não")

	lines := Systems(n)
	got := strings.Join(lines, "\n")
	if !strings.Contains(got, "Cr: 1.5 → 1.8 → 2.1") {
		t.Errorf("trend expected slashes stripped, got %q", got)
	}
	if !strings.Contains(got, "- Renal") {
		t.Errorf("renal block header expected, got %q", got)
	}

	doc := Render(n)
	if !strings.Contains(doc, "BH 300 mL") {
		t.Errorf("document expected ml normalized to mL, got %q", doc)
	}
	if strings.Contains(doc, "300 ml") {
		t.Errorf("raw ml must not survive, got %q", doc)
	}
}

func TestSystemsRespiratoryVentilation(t *testing.T) {
	n := record.New()
	n.SetChoice("sis_resp_modo", "Ventilação Mecânica")
	n.SetChoice("sis_resp_modo_vent", "PSV")
	n.SetText("sis_resp_fio2", "40")
	n.SetText("sis_resp_peep", "8")
	n.SetChoice("sis_resp_vent_protetora", "Sim")
	n.SetChoice("sis_resp_sincronico", "Não")
	n.SetText("sis_resp_assincronia", "duplo disparo")

	got := strings.Join(Systems(n), "\n")
	if !strings.Contains(got, "Ventilação Mecânica; PSV, FiO2 40% e PEEP 8 cmH₂O") {
		t.Errorf("vm params expected serial join, got %q", got)
	}
	if !strings.Contains(got, "Em ventilação protetora, assincrônico, apresenta duplo disparo") {
		t.Errorf("synchrony line expected, got %q", got)
	}
}

func TestRenderSectionOrder(t *testing.T) {
	n := record.New()
	n.SetText("nome", "Paciente Teste")
	n.SetText("hd_1_nome", "Sepse")
	n.SetText("lab_1_hb", "10")
	n.SetText("evolucao_notas", "Melhora clínica.")
	n.SetText("conduta_final_lista", "Manter plano")
	n.SetText("prescricao_formatada", "1- Dieta oral")

	doc := Render(n)
	order := []string{
		"# Identificação & Scores",
		"# Diagnósticos Atuais",
		"# Laboratoriais",
		"# Evolução Clínica",
		"# Condutas",
		"===",
		"# Prescrição",
	}
	last := -1
	for _, header := range order {
		idx := strings.Index(doc, header)
		if idx < 0 {
			t.Fatalf("header %q missing in document:\n%s", header, doc)
		}
		if idx < last {
			t.Errorf("header %q out of order", header)
		}
		last = idx
	}
}
