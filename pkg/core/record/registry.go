package record

import "fmt"

// Vocabulary constants for the tri-state fields that renderers branch on.
const (
	SimNao          = "Sim"
	StatusAtual     = "Atual"
	StatusResolvida = "Resolvida"
	StatusPrevio    = "Prévio"
	StatusAtivo     = "Ativo"
	StatusRemovido  = "Removido"
)

func text(key string) FieldDef { return FieldDef{Key: key, Kind: KindText} }

func choice(key string, options ...string) FieldDef {
	return FieldDef{Key: key, Kind: KindChoice, Options: options}
}

func flag(key string) FieldDef { return FieldDef{Key: key, Kind: KindFlag} }

func simNao(key string) FieldDef { return choice(key, "Sim", "Não") }

// labValueSuffixes is every lab_{i}_* suffix, in the order the advance-day
// shift walks them. gas_tipo is the only tri-state in the group.
var labValueSuffixes = []string{
	"data", "hb", "ht", "vcm", "hcm", "rdw", "leuco", "plaq",
	"cr", "ur", "na", "k", "mg", "pi", "cat", "cai",
	"tgp", "tgo", "fal", "ggt", "bt", "bd", "prot_tot", "alb", "amil", "lipas",
	"cpk", "cpk_mb", "bnp", "trop", "pcr", "vhs", "tp", "ttpa",
	"ur_dens", "ur_le", "ur_nit", "ur_leu", "ur_hm", "ur_prot", "ur_cet", "ur_glic",
	"gas_tipo", "gas_ph", "gas_pco2", "gas_po2", "gas_hco3", "gas_be", "gas_sat",
	"gas_lac", "gas_ag", "gas_cl", "gas_na", "gas_k", "gas_cai",
	"gasv_pco2", "svo2", "outros", "conduta",
}

// controlParams are the Controles & Balanço Hídrico parameters; the bool
// marks min/max pairs versus single-value fields.
var controlParams = []struct {
	Key    string
	MinMax bool
}{
	{"pas", true}, {"pad", true}, {"pam", true}, {"fc", true},
	{"fr", true}, {"sato2", true}, {"temp", true}, {"glic", true},
	{"diurese", false}, {"balanco", false},
}

var controlDays = []string{"hoje", "ontem", "anteontem"}

// systemTrends are the anteontem→ontem→hoje lab-trend trios embedded in
// the systems-review section.
var systemTrends = []string{
	"sis_renal_cr", "sis_renal_ur",
	"sis_infec_pcr", "sis_infec_leuc",
	"sis_hemato_hb", "sis_hemato_plaq", "sis_hemato_inr",
}

func allFields() []FieldDef {
	var fields []FieldDef
	add := func(defs ...FieldDef) { fields = append(fields, defs...) }

	// 1. Identificação & Scores
	add(text("identificacao_notas"), text("departamento"),
		text("nome"), text("idade"), text("sexo"), text("prontuario"),
		text("leito"), text("origem"), text("equipe"), text("interconsultora"),
		text("di_hosp"), text("di_uti"), text("di_enf"),
		text("saps3"), text("sofa_adm"), text("sofa_atual"),
		text("mrs"), text("pps"), text("cfs"),
		flag("paliativo"))

	// 2. Diagnósticos (8 slots)
	add(text("hd_notas"))
	for i := 1; i <= 8; i++ {
		add(text(fmt.Sprintf("hd_%d_nome", i)),
			text(fmt.Sprintf("hd_%d_class", i)),
			text(fmt.Sprintf("hd_%d_data_inicio", i)),
			text(fmt.Sprintf("hd_%d_data_resolvido", i)),
			choice(fmt.Sprintf("hd_%d_status", i), StatusAtual, StatusResolvida),
			text(fmt.Sprintf("hd_%d_obs", i)),
			text(fmt.Sprintf("hd_%d_conduta", i)))
	}

	// 3. Comorbidades (10 slots + hábitos)
	add(text("comorbidades_notas"),
		choice("cmd_etilismo", "Desconhecido", "Ausente", "Presente"), text("cmd_etilismo_obs"),
		choice("cmd_tabagismo", "Desconhecido", "Ausente", "Presente"), text("cmd_tabagismo_obs"),
		choice("cmd_spa", "Desconhecido", "Ausente", "Presente"), text("cmd_spa_obs"))
	for i := 1; i <= 10; i++ {
		add(text(fmt.Sprintf("cmd_%d_nome", i)),
			text(fmt.Sprintf("cmd_%d_class", i)),
			text(fmt.Sprintf("cmd_%d_conduta", i)))
	}

	// 4. Medicações de Uso Contínuo (20 slots)
	add(text("muc_notas"),
		choice("muc_adesao_global", "Uso Regular", "Uso Irregular", "Desconhecido"),
		choice("muc_alergia", "Presente", "Nega", "Desconhecido"),
		text("muc_alergia_obs"))
	for i := 1; i <= 20; i++ {
		add(text(fmt.Sprintf("muc_%d_nome", i)),
			text(fmt.Sprintf("muc_%d_dose", i)),
			text(fmt.Sprintf("muc_%d_freq", i)),
			text(fmt.Sprintf("muc_%d_conduta", i)))
	}

	// 5. HMPA
	add(text("hmpa_texto"), text("hmpa_reescrito"))

	// 6. Dispositivos (8 slots)
	add(text("dispositivos_notas"))
	for i := 1; i <= 8; i++ {
		add(text(fmt.Sprintf("disp_%d_nome", i)),
			text(fmt.Sprintf("disp_%d_local", i)),
			text(fmt.Sprintf("disp_%d_data_insercao", i)),
			text(fmt.Sprintf("disp_%d_data_retirada", i)),
			choice(fmt.Sprintf("disp_%d_status", i), StatusAtivo, StatusRemovido),
			text(fmt.Sprintf("disp_%d_conduta", i)))
	}

	// 7. Culturas (8 slots)
	add(text("culturas_notas"))
	for i := 1; i <= 8; i++ {
		add(text(fmt.Sprintf("cult_%d_sitio", i)),
			text(fmt.Sprintf("cult_%d_micro", i)),
			text(fmt.Sprintf("cult_%d_sensib", i)),
			text(fmt.Sprintf("cult_%d_data_coleta", i)),
			text(fmt.Sprintf("cult_%d_data_resultado", i)),
			choice(fmt.Sprintf("cult_%d_status", i),
				"Positivo com Antibiograma", "Positivo aguarda isolamento",
				"Pendente negativo", "Negativo"),
			text(fmt.Sprintf("cult_%d_conduta", i)))
	}

	// 8. Antibióticos (8 slots)
	add(text("antibioticos_notas"))
	for i := 1; i <= 8; i++ {
		add(text(fmt.Sprintf("atb_%d_nome", i)),
			text(fmt.Sprintf("atb_%d_foco", i)),
			choice(fmt.Sprintf("atb_%d_tipo", i), "Empírico", "Guiado por Cultura"),
			text(fmt.Sprintf("atb_%d_data_ini", i)),
			text(fmt.Sprintf("atb_%d_data_fim", i)),
			text(fmt.Sprintf("atb_%d_num_dias", i)),
			choice(fmt.Sprintf("atb_%d_status", i), StatusAtual, StatusPrevio),
			text(fmt.Sprintf("atb_%d_obs", i)),
			text(fmt.Sprintf("atb_%d_conduta", i)))
	}

	// 9. Exames Complementares (8 slots)
	add(text("complementares_notas"))
	for i := 1; i <= 8; i++ {
		add(text(fmt.Sprintf("comp_%d_exame", i)),
			text(fmt.Sprintf("comp_%d_data", i)),
			text(fmt.Sprintf("comp_%d_laudo", i)),
			text(fmt.Sprintf("comp_%d_conduta", i)))
	}

	// 10. Laboratoriais (10 day slots)
	add(text("laboratoriais_notas"))
	for i := 1; i <= 10; i++ {
		for _, suf := range labValueSuffixes {
			key := fmt.Sprintf("lab_%d_%s", i, suf)
			if suf == "gas_tipo" {
				add(choice(key, "Arterial", "Venosa"))
			} else {
				add(text(key))
			}
		}
	}

	// 11. Controles & Balanço Hídrico (hoje/ontem/anteontem)
	add(text("controles_notas"), text("ctrl_conduta"), text("ctrl_periodo"))
	for _, dia := range controlDays {
		add(text(fmt.Sprintf("ctrl_%s_data", dia)))
		for _, p := range controlParams {
			if p.MinMax {
				add(text(fmt.Sprintf("ctrl_%s_%s_min", dia, p.Key)),
					text(fmt.Sprintf("ctrl_%s_%s_max", dia, p.Key)))
			} else {
				add(text(fmt.Sprintf("ctrl_%s_%s", dia, p.Key)))
			}
		}
	}

	// 12. Evolução Clínica
	add(text("evolucao_notas"))

	// 13. Evolução por Sistemas
	add(text("sistemas_notas"))
	for _, s := range []string{"neuro", "resp", "cardio", "renal", "metab", "infec", "gastro", "nutri", "hemato", "pele"} {
		add(text(fmt.Sprintf("sis_%s_pocus", s)),
			text(fmt.Sprintf("sis_%s_obs", s)),
			text(fmt.Sprintf("sis_%s_conduta", s)))
	}
	add(systemFields()...)

	// 14. Prescrição
	add(text("prescricao_notas"), text("prescricao_formatada"))

	// 15. Condutas
	add(text("conduta_final_lista"))

	return fields
}

// systemFields registers the discrete fields of the ten physiological
// systems of the systems-review section.
func systemFields() []FieldDef {
	var fields []FieldDef
	add := func(defs ...FieldDef) { fields = append(fields, defs...) }

	// Neurológico
	add(text("sis_neuro_ecg"), text("sis_neuro_ecg_ao"), text("sis_neuro_ecg_rv"),
		text("sis_neuro_ecg_rm"), text("sis_neuro_ecg_p"), text("sis_neuro_rass"),
		simNao("sis_neuro_delirium"),
		choice("sis_neuro_delirium_tipo", "Hipoativo", "Hiperativo", "Misto"),
		choice("sis_neuro_cam_icu", "Positivo", "Negativo"),
		choice("sis_neuro_pupilas_tam", "Normal", "Miótica", "Midríase"),
		choice("sis_neuro_pupilas_simetria", "Simétricas", "Anisocoria"),
		choice("sis_neuro_pupilas_foto", "Fotoreagente", "Não fotoreagente"),
		simNao("sis_neuro_analgesico_adequado"),
		text("sis_neuro_deficits_focais"),
		choice("sis_neuro_deficits_ausente", "Ausente", "Presente"))
	for i := 1; i <= 3; i++ {
		add(choice(fmt.Sprintf("sis_neuro_analgesia_%d_tipo", i), "Fixa", "Resgate"),
			text(fmt.Sprintf("sis_neuro_analgesia_%d_drogas", i)),
			text(fmt.Sprintf("sis_neuro_analgesia_%d_dose", i)),
			text(fmt.Sprintf("sis_neuro_analgesia_%d_freq", i)),
			text(fmt.Sprintf("sis_neuro_sedacao_%d_drogas", i)),
			text(fmt.Sprintf("sis_neuro_sedacao_%d_dose", i)))
	}
	add(text("sis_neuro_sedacao_meta"),
		text("sis_neuro_bloqueador_med"), text("sis_neuro_bloqueador_dose"))

	// Respiratório
	add(text("sis_resp_ausculta"),
		choice("sis_resp_modo", "Ventilação Mecânica", "Oxigenoterapia", "Cateter de Alto Fluxo", "Ar Ambiente"),
		choice("sis_resp_modo_vent", "PSV", "PCV", "VCV"),
		text("sis_resp_oxigenio_modo"), text("sis_resp_oxigenio_fluxo"),
		text("sis_resp_pressao"), text("sis_resp_volume"), text("sis_resp_fio2"),
		text("sis_resp_peep"), text("sis_resp_freq"),
		simNao("sis_resp_vent_protetora"), simNao("sis_resp_sincronico"),
		text("sis_resp_assincronia"),
		text("sis_resp_complacencia"), text("sis_resp_resistencia"),
		text("sis_resp_dp"), text("sis_resp_plato"), text("sis_resp_pico"))
	for i := 1; i <= 3; i++ {
		add(text(fmt.Sprintf("sis_resp_dreno_%d", i)),
			text(fmt.Sprintf("sis_resp_dreno_%d_debito", i)))
	}

	// Cardiovascular
	add(text("sis_cardio_fc"), text("sis_cardio_cardioscopia"), text("sis_cardio_pam"),
		text("sis_cardio_exame_cardio"),
		choice("sis_cardio_perfusao", "Normal", "Lentificada", "Flush"),
		text("sis_cardio_tec"),
		simNao("sis_cardio_fluido_responsivo"), simNao("sis_cardio_fluido_tolerante"))
	for i := 1; i <= 4; i++ {
		add(text(fmt.Sprintf("sis_cardio_dva_%d_med", i)),
			text(fmt.Sprintf("sis_cardio_dva_%d_dose", i)))
	}

	// Renal
	add(text("sis_renal_diurese"), text("sis_renal_balanco"), text("sis_renal_balanco_acum"),
		choice("sis_renal_volemia", "Euvolêmico", "Hipovolêmico", "Hipervolêmico"),
		choice("sis_renal_sodio", "Hiponatremia", "Hipernatremia"),
		choice("sis_renal_potassio", "Hipocalemia", "Hipercalemia"),
		choice("sis_renal_magnesio", "Hipomagnesemia", "Hipermagnesemia"),
		choice("sis_renal_fosforo", "Hipofosfatemia", "Hiperfosfatemia"),
		choice("sis_renal_calcio", "Hipocalcemia", "Hipercalcemia"),
		simNao("sis_renal_trs"),
		text("sis_renal_trs_via"), text("sis_renal_trs_ultima"), text("sis_renal_trs_proxima"))
	for _, prefix := range []string{"sis_renal_cr", "sis_renal_ur"} {
		add(text(prefix+"_antepen"), text(prefix+"_ult"), text(prefix+"_hoje"))
	}

	// Infeccioso
	add(simNao("sis_infec_febre"), text("sis_infec_febre_vezes"), text("sis_infec_febre_ultima"),
		simNao("sis_infec_atb"), simNao("sis_infec_atb_guiado"),
		text("sis_infec_atb_1"), text("sis_infec_atb_2"), text("sis_infec_atb_3"),
		simNao("sis_infec_culturas_and"),
		simNao("sis_infec_isolamento"), text("sis_infec_isolamento_tipo"),
		text("sis_infec_isolamento_motivo"), text("sis_infec_patogenos"))
	for i := 1; i <= 4; i++ {
		add(text(fmt.Sprintf("sis_infec_cult_%d_sitio", i)),
			text(fmt.Sprintf("sis_infec_cult_%d_data", i)))
	}
	for _, prefix := range []string{"sis_infec_pcr", "sis_infec_leuc"} {
		add(text(prefix+"_antepen"), text(prefix+"_ult"), text(prefix+"_hoje"))
	}

	// Gastro / Nutricional
	add(text("sis_gastro_exame_fisico"),
		choice("sis_gastro_ictericia_presente", "Presente", "Ausente"),
		text("sis_gastro_ictericia_cruzes"),
		text("sis_gastro_dieta_oral"),
		text("sis_gastro_dieta_enteral"), text("sis_gastro_dieta_enteral_vol"),
		text("sis_gastro_dieta_parenteral"), text("sis_gastro_dieta_parenteral_vol"),
		text("sis_gastro_meta_calorica"),
		simNao("sis_gastro_na_meta"), text("sis_gastro_ingestao_quanto"),
		simNao("sis_gastro_escape_glicemico"), text("sis_gastro_escape_vezes"),
		flag("sis_gastro_escape_manha"), flag("sis_gastro_escape_tarde"), flag("sis_gastro_escape_noite"),
		simNao("sis_gastro_insulino"),
		text("sis_gastro_insulino_dose_manha"), text("sis_gastro_insulino_dose_tarde"),
		text("sis_gastro_insulino_dose_noite"),
		simNao("sis_gastro_evacuacao"), text("sis_gastro_evacuacao_data"),
		text("sis_gastro_laxativo"))

	// Hematológico
	add(simNao("sis_hemato_anticoag"), text("sis_hemato_anticoag_motivo"),
		choice("sis_hemato_anticoag_tipo", "Plena", "Profilática"),
		simNao("sis_hemato_sangramento"),
		text("sis_hemato_sangramento_via"), text("sis_hemato_sangramento_data"),
		text("sis_hemato_transf_data"))
	for i := 1; i <= 3; i++ {
		add(text(fmt.Sprintf("sis_hemato_transf_%d_comp", i)),
			text(fmt.Sprintf("sis_hemato_transf_%d_bolsas", i)))
	}
	for _, prefix := range []string{"sis_hemato_hb", "sis_hemato_plaq", "sis_hemato_inr"} {
		add(text(prefix+"_antepen"), text(prefix+"_ult"), text(prefix+"_hoje"))
	}

	// Pele e Musculoesquelético
	add(choice("sis_pele_edema", "Presente", "Ausente"), text("sis_pele_edema_cruzes"),
		simNao("sis_pele_lpp"),
		simNao("sis_pele_polineuropatia"))
	for i := 1; i <= 3; i++ {
		add(text(fmt.Sprintf("sis_pele_lpp_local_%d", i)),
			text(fmt.Sprintf("sis_pele_lpp_grau_%d", i)))
	}

	return fields
}
