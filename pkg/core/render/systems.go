package render

import (
	"fmt"
	"strconv"
	"strings"

	"prontuario/pkg/core/record"
	"prontuario/pkg/core/textutil"
)

// sval reads a field regardless of kind: choice value for tri-states,
// trimmed text otherwise.
func sval(n *record.Note, key string) string {
	if kind, ok := n.KindOf(key); ok && kind == record.KindChoice {
		return choice(n, key)
	}
	return gets(n, key)
}

// trendLine joins an antepen/ult/hoje trio with " → ", dropping stray
// slashes typed into the values (3/ reads as 3).
func trendLine(n *record.Note, label, prefix string) string {
	var partes []string
	for _, suf := range []string{"_antepen", "_ult", "_hoje"} {
		v := sval(n, prefix+suf)
		if v == "" {
			continue
		}
		if limpo := textutil.StripSlashes(v); limpo != "" {
			v = limpo
		}
		partes = append(partes, v)
	}
	if len(partes) == 0 {
		return ""
	}
	return label + ": " + strings.Join(partes, " → ")
}

// vezes renders a count as "N vez"/"N vezes", keeping non-numeric input.
func vezes(v string) string {
	if num, err := strconv.Atoi(strings.TrimSpace(v)); err == nil {
		if num == 1 {
			return fmt.Sprintf("%d vez", num)
		}
		return fmt.Sprintf("%d vezes", num)
	}
	return v
}

func withUnit(v, unit string, already ...string) string {
	lower := strings.ToLower(v)
	for _, u := range already {
		if strings.Contains(lower, strings.ToLower(u)) {
			return v
		}
	}
	return v + " " + unit
}

// Systems renders "# Evolução por sistemas": the ten physiological
// systems, each as a "- Name" block, separated by blank lines. A filled
// field produces its phrase; empty fields and unset tri-states vanish.
func Systems(n *record.Note) []string {
	var corpo []string
	bloco := func(titulo string, linhas []string) {
		if len(linhas) == 0 {
			return
		}
		if len(corpo) > 0 {
			corpo = append(corpo, "")
		}
		corpo = append(corpo, "- "+titulo)
		corpo = append(corpo, linhas...)
	}

	bloco("Neurológico", neuroLines(n))
	bloco("Respiratório", respLines(n))
	bloco("Cardiovascular", cardioLines(n))
	bloco("Exame Abdominal", gastroLines(n))
	bloco("Renal", renalLines(n))
	bloco("Infeccioso", infecLines(n))
	bloco("Hematológico", hematoLines(n))
	bloco("Pele e Musculoesquelético", peleLines(n))

	if len(corpo) == 0 {
		return nil
	}
	return append([]string{"# Evolução por sistemas"}, corpo...)
}

func neuroLines(n *record.Note) []string {
	var neuro []string

	ecg := gets(n, "sis_neuro_ecg")
	var ecgParts []string
	if ecg != "" {
		linha := "ECG " + ecg
		var sub []string
		for _, f := range []struct{ label, key string }{
			{"AO", "sis_neuro_ecg_ao"}, {"RV", "sis_neuro_ecg_rv"}, {"RM", "sis_neuro_ecg_rm"},
		} {
			if v := gets(n, f.key); v != "" {
				sub = append(sub, f.label+" "+v)
			}
		}
		if len(sub) > 0 {
			linha += " (" + strings.Join(sub, " ") + ")"
		}
		ecgParts = append(ecgParts, linha)
	}
	if v := gets(n, "sis_neuro_ecg_p"); v != "" {
		ecgParts = append(ecgParts, "ECG-P "+v)
	}
	if v := gets(n, "sis_neuro_rass"); v != "" {
		ecgParts = append(ecgParts, "RASS "+v)
	}
	if len(ecgParts) > 0 {
		neuro = append(neuro, strings.Join(ecgParts, " | "))
	}

	cam := sval(n, "sis_neuro_cam_icu")
	delirium := sval(n, "sis_neuro_delirium")
	if cam != "" || delirium != "" {
		var partes []string
		if cam != "" {
			partes = append(partes, "CAM-ICU: "+cam)
		}
		switch delirium {
		case "Sim":
			if tipo := sval(n, "sis_neuro_delirium_tipo"); tipo != "" {
				partes = append(partes, "delirium "+strings.ToLower(tipo))
			} else {
				partes = append(partes, "com delirium")
			}
		case "Não":
			partes = append(partes, "sem delirium")
		}
		neuro = append(neuro, strings.Join(partes, ", "))
	}

	tam := sval(n, "sis_neuro_pupilas_tam")
	sime := sval(n, "sis_neuro_pupilas_simetria")
	foto := sval(n, "sis_neuro_pupilas_foto")
	if tam != "" || sime != "" || foto != "" {
		var pup []string
		if tam != "" {
			pup = append(pup, map[string]string{
				"Normal": "Normais", "Miótica": "Mióticas", "Midríase": "Midríase",
			}[tam])
		}
		if sime != "" {
			pup = append(pup, map[string]string{
				"Simétricas": "simétricas", "Anisocoria": "anisocóricas",
			}[sime])
		}
		if foto != "" {
			pup = append(pup, map[string]string{
				"Fotoreagente": "fotoreagentes", "Não fotoreagente": "não fotoreagentes",
			}[foto])
		}
		neuro = append(neuro, "Pupilas: "+strings.Join(pup, ", "))
	}

	switch sval(n, "sis_neuro_analgesico_adequado") {
	case "Sim":
		neuro = append(neuro, "Paciente com bom controle álgico")
	case "Não":
		neuro = append(neuro, "Sem controle álgico adequado")
	}

	var fixas, resgates []string
	for i := 1; i <= 3; i++ {
		drogas := sval(n, fmt.Sprintf("sis_neuro_analgesia_%d_drogas", i))
		if drogas == "" {
			continue
		}
		dose := sval(n, fmt.Sprintf("sis_neuro_analgesia_%d_dose", i))
		freq := sval(n, fmt.Sprintf("sis_neuro_analgesia_%d_freq", i))
		entry := drogas
		switch {
		case dose != "" && freq != "":
			entry = fmt.Sprintf("%s %s, %s", drogas, dose, freq)
		case dose != "":
			entry = drogas + " " + dose
		case freq != "":
			entry = drogas + ", " + freq
		}
		if sval(n, fmt.Sprintf("sis_neuro_analgesia_%d_tipo", i)) == "Fixa" {
			fixas = append(fixas, entry)
		} else {
			resgates = append(resgates, entry)
		}
	}
	if len(fixas) > 0 {
		neuro = append(neuro, "Analgesia Fixa: "+strings.Join(fixas, " | "))
	}
	if len(resgates) > 0 {
		neuro = append(neuro, "Analgesia Resgate: "+strings.Join(resgates, " | "))
	}

	var sed []string
	for i := 1; i <= 3; i++ {
		drogas := sval(n, fmt.Sprintf("sis_neuro_sedacao_%d_drogas", i))
		if drogas == "" {
			continue
		}
		if dose := sval(n, fmt.Sprintf("sis_neuro_sedacao_%d_dose", i)); dose != "" {
			sed = append(sed, drogas+" "+dose)
		} else {
			sed = append(sed, drogas)
		}
	}
	if len(sed) > 0 {
		linha := "Sedação: " + strings.Join(sed, " | ")
		if meta := sval(n, "sis_neuro_sedacao_meta"); meta != "" {
			m := strings.NewReplacer("RASS", "", "Rass", "").Replace(meta)
			if m = strings.TrimSpace(m); m == "" {
				m = meta
			}
			linha += "; Meta Rass " + m
		}
		neuro = append(neuro, linha)
	}

	bnmMed := sval(n, "sis_neuro_bloqueador_med")
	bnmDose := sval(n, "sis_neuro_bloqueador_dose")
	if bnmMed != "" || bnmDose != "" {
		neuro = append(neuro, strings.TrimSpace("Bloqueador Neuromuscular: "+strings.TrimSpace(bnmMed+" "+bnmDose)))
	}

	if df := sval(n, "sis_neuro_deficits_focais"); df != "" {
		neuro = append(neuro, "Déficit Focal: "+df)
	} else if n.ChoiceIs("sis_neuro_deficits_ausente", "Ausente") {
		neuro = append(neuro, "Sem déficit focal")
	}

	if pocus := sval(n, "sis_neuro_pocus"); pocus != "" {
		neuro = append(neuro, "Pocus Neurológico: "+pocus)
	}
	if obs := sval(n, "sis_neuro_obs"); obs != "" {
		neuro = append(neuro, "Obs: "+obs)
	}
	return neuro
}

func respLines(n *record.Note) []string {
	var resp []string

	if v := sval(n, "sis_resp_ausculta"); v != "" {
		resp = append(resp, "Respiratório: "+v)
	}

	switch modo := sval(n, "sis_resp_modo"); modo {
	case "":
	case "Ventilação Mecânica":
		var params []string
		if mv := sval(n, "sis_resp_modo_vent"); mv != "" {
			params = append(params, strings.ToUpper(mv))
		}
		if v := sval(n, "sis_resp_pressao"); v != "" {
			params = append(params, "Pressão "+withUnit(v, "cmH₂O", "mmhg", "mmh2o", "cmh2o"))
		}
		if v := sval(n, "sis_resp_volume"); v != "" {
			params = append(params, "Volume "+withUnit(v, "mL", "ml"))
		}
		if v := sval(n, "sis_resp_fio2"); v != "" {
			if strings.Contains(v, "%") {
				params = append(params, "FiO2 "+v)
			} else {
				params = append(params, "FiO2 "+v+"%")
			}
		}
		if v := sval(n, "sis_resp_peep"); v != "" {
			params = append(params, "PEEP "+withUnit(v, "cmH₂O", "mmhg", "mmh2o", "cmh2o"))
		}
		if v := sval(n, "sis_resp_freq"); v != "" {
			params = append(params, "FR "+withUnit(v, "ipm", "ipm"))
		}
		if len(params) > 0 {
			resp = append(resp, "Ventilação Mecânica; "+textutil.JoinE(params))
		} else {
			resp = append(resp, "Ventilação Mecânica")
		}
	case "Oxigenoterapia":
		var partes []string
		if v := sval(n, "sis_resp_oxigenio_modo"); v != "" {
			partes = append(partes, v)
		}
		if v := sval(n, "sis_resp_oxigenio_fluxo"); v != "" {
			partes = append(partes, withUnit(v, "L/min", "l/min"))
		}
		if len(partes) > 0 {
			resp = append(resp, "Oxigenoterapia; "+strings.Join(partes, ", "))
		} else {
			resp = append(resp, "Oxigenoterapia")
		}
	case "Cateter de Alto Fluxo":
		partes := []string{"Cateter de Alto Fluxo"}
		if v := sval(n, "sis_resp_volume"); v != "" {
			partes = append(partes, "Volume "+withUnit(v, "mL", "ml"))
		}
		if v := sval(n, "sis_resp_fio2"); v != "" {
			if strings.Contains(v, "%") {
				partes = append(partes, "FiO2 "+v)
			} else {
				partes = append(partes, "FiO2 "+v+"%")
			}
		}
		resp = append(resp, strings.Join(partes, ", "))
	default:
		resp = append(resp, modo)
	}

	ventProt := sval(n, "sis_resp_vent_protetora")
	sincro := sval(n, "sis_resp_sincronico")
	if ventProt != "" || sincro != "" {
		var vs []string
		switch ventProt {
		case "Sim":
			vs = append(vs, "Em ventilação protetora")
		case "Não":
			vs = append(vs, "Sem ventilação protetora")
		}
		switch sincro {
		case "Sim":
			vs = append(vs, "sincrônico")
		case "Não":
			if assincr := sval(n, "sis_resp_assincronia"); assincr != "" {
				vs = append(vs, "assincrônico, apresenta "+assincr)
			} else {
				vs = append(vs, "assincrônico")
			}
		}
		if len(vs) > 0 {
			resp = append(resp, strings.Join(vs, ", "))
		}
	}

	var mec []string
	for _, f := range []struct{ label, key, unit string }{
		{"Complacência", "sis_resp_complacencia", "mL/cmH₂O"},
		{"Resistência", "sis_resp_resistencia", "cmH₂O/L/s"},
		{"Driving Pressure", "sis_resp_dp", "cmH₂O"},
		{"Pressão de platô", "sis_resp_plato", "cmH₂O"},
		{"Pressão de pico", "sis_resp_pico", "cmH₂O"},
	} {
		if v := sval(n, f.key); v != "" {
			mec = append(mec, fmt.Sprintf("%s %s %s", f.label, v, f.unit))
		}
	}
	if len(mec) > 0 {
		resp = append(resp, "Mecânica Ventilatória: "+strings.Join(mec, ", "))
	}

	var drenos []string
	for i := 1; i <= 3; i++ {
		nome := sval(n, fmt.Sprintf("sis_resp_dreno_%d", i))
		if nome == "" {
			continue
		}
		prefixo := "Dreno "
		if strings.Contains(strings.ToLower(nome), "dreno") {
			prefixo = ""
		}
		if deb := sval(n, fmt.Sprintf("sis_resp_dreno_%d_debito", i)); deb != "" {
			suf := " mL"
			for _, u := range []string{"ml", "mL", "L", "/"} {
				if strings.Contains(deb, u) {
					suf = ""
					break
				}
			}
			drenos = append(drenos, fmt.Sprintf("%s%s: %s%s", prefixo, nome, deb, suf))
		} else {
			drenos = append(drenos, prefixo+nome)
		}
	}
	if len(drenos) > 0 {
		resp = append(resp, strings.Join(drenos, " | "))
	}

	if pocus := sval(n, "sis_resp_pocus"); pocus != "" {
		resp = append(resp, "Pocus Respiratório: "+pocus)
	}
	if obs := sval(n, "sis_resp_obs"); obs != "" {
		resp = append(resp, "Obs: "+obs)
	}
	return resp
}

func cardioLines(n *record.Note) []string {
	var cardio []string

	var hemo []string
	if fc := sval(n, "sis_cardio_fc"); fc != "" {
		if strings.Contains(strings.ToLower(fc), "bpm") {
			hemo = append(hemo, "FC "+fc)
		} else {
			hemo = append(hemo, "FC "+fc+" bpm")
		}
	}
	if crd := sval(n, "sis_cardio_cardioscopia"); crd != "" {
		if strings.HasPrefix(strings.ToLower(crd), "ritmo") {
			hemo = append(hemo, "Ritmo "+strings.TrimSpace(crd[len("ritmo"):]))
		} else {
			hemo = append(hemo, "Ritmo "+crd)
		}
	}
	if pam := sval(n, "sis_cardio_pam"); pam != "" {
		if strings.Contains(strings.ToLower(pam), "mmhg") {
			hemo = append(hemo, "PAM "+pam)
		} else {
			hemo = append(hemo, "PAM "+pam+" mmHg")
		}
	}
	if len(hemo) > 0 {
		cardio = append(cardio, strings.Join(hemo, ", "))
	}
	if v := sval(n, "sis_cardio_exame_cardio"); v != "" {
		cardio = append(cardio, "Cardiológico: "+v)
	}

	perf := sval(n, "sis_cardio_perfusao")
	tec := sval(n, "sis_cardio_tec")
	if perf != "" || tec != "" {
		var partes []string
		if perf != "" {
			partes = append(partes, "Perfusão: "+perf)
		}
		if tec != "" {
			if !strings.Contains(strings.ToLower(tec), "seg") {
				tec += " seg"
			}
			partes = append(partes, "TEC: "+tec)
		}
		cardio = append(cardio, strings.Join(partes, ", "))
	}

	var fluido []string
	switch sval(n, "sis_cardio_fluido_responsivo") {
	case "Sim":
		fluido = append(fluido, "Fluidoresponsivo")
	case "Não":
		fluido = append(fluido, "Não fluidoresponsivo")
	}
	switch sval(n, "sis_cardio_fluido_tolerante") {
	case "Sim":
		fluido = append(fluido, "fluidotolerante")
	case "Não":
		fluido = append(fluido, "não fluidotolerante")
	}
	if len(fluido) > 0 {
		cardio = append(cardio, strings.Join(fluido, "; "))
	}

	var dvas []string
	for i := 1; i <= 4; i++ {
		med := sval(n, fmt.Sprintf("sis_cardio_dva_%d_med", i))
		if med == "" {
			continue
		}
		if dose := sval(n, fmt.Sprintf("sis_cardio_dva_%d_dose", i)); dose != "" {
			dvas = append(dvas, med+" "+dose)
		} else {
			dvas = append(dvas, med)
		}
	}
	if len(dvas) > 0 {
		cardio = append(cardio, "DVA: "+strings.Join(dvas, " | "))
	}

	if pocus := sval(n, "sis_cardio_pocus"); pocus != "" {
		cardio = append(cardio, "Pocus Cardiovascular: "+pocus)
	}
	if obs := sval(n, "sis_cardio_obs"); obs != "" {
		cardio = append(cardio, "Obs: "+obs)
	}
	return cardio
}

func gastroLines(n *record.Note) []string {
	var gastro []string

	if ef := sval(n, "sis_gastro_exame_fisico"); ef != "" {
		suf := ", sem icterícia"
		if sval(n, "sis_gastro_ictericia_presente") == "Presente" {
			cruzes := sval(n, "sis_gastro_ictericia_cruzes")
			if cruzes == "1" || cruzes == "2" || cruzes == "3" || cruzes == "4" {
				suf = fmt.Sprintf(", icteríco %s+", cruzes)
			} else {
				suf = ", icteríco"
			}
		}
		gastro = append(gastro, "Abdomen: "+ef+suf)
	}

	kcal := func(v string) string {
		lower := strings.ToLower(v)
		if v != "" && !strings.Contains(lower, "kcal") && !strings.Contains(lower, "ml") {
			return v + " kcal"
		}
		return v
	}
	var dieta []string
	if v := sval(n, "sis_gastro_dieta_oral"); v != "" {
		dieta = append(dieta, "Oral "+v)
	}
	if v := sval(n, "sis_gastro_dieta_enteral"); v != "" {
		if vol := kcal(sval(n, "sis_gastro_dieta_enteral_vol")); vol != "" {
			dieta = append(dieta, fmt.Sprintf("Enteral %s %s", v, vol))
		} else {
			dieta = append(dieta, "Enteral "+v)
		}
	}
	if v := sval(n, "sis_gastro_dieta_parenteral"); v != "" {
		if vol := kcal(sval(n, "sis_gastro_dieta_parenteral_vol")); vol != "" {
			dieta = append(dieta, fmt.Sprintf("Parenteral %s %s", v, vol))
		} else {
			dieta = append(dieta, "Parenteral "+v)
		}
	}
	metaCal := sval(n, "sis_gastro_meta_calorica")
	if len(dieta) > 0 || metaCal != "" {
		linha := "Dieta: " + strings.Join(dieta, ", ")
		if metaCal != "" {
			if !strings.Contains(strings.ToLower(metaCal), "kcal") {
				metaCal += " kcal"
			}
			if len(dieta) > 0 {
				linha += "; "
			}
			linha += "Meta calórica de " + metaCal
		}
		gastro = append(gastro, linha)
	}

	ingestao := sval(n, "sis_gastro_ingestao_quanto")
	if ingestao != "" && !strings.Contains(strings.ToLower(ingestao), "kcal") {
		ingestao += " kcal"
	}
	switch sval(n, "sis_gastro_na_meta") {
	case "Sim":
		linha := "Na meta calórica"
		if ingestao != "" {
			linha += " - " + ingestao + " nas últimas 24 horas"
		}
		gastro = append(gastro, linha)
	case "Não":
		linha := "Fora da meta calórica"
		if ingestao != "" {
			linha += ", " + ingestao + " nas últimas 24 horas"
		}
		gastro = append(gastro, linha)
	}

	switch sval(n, "sis_gastro_escape_glicemico") {
	case "Sim":
		esc := "Escape glicêmico:"
		if v := sval(n, "sis_gastro_escape_vezes"); v != "" {
			esc += " " + vezes(v)
		}
		var turnos []string
		for _, t := range []struct{ key, nome string }{
			{"sis_gastro_escape_manha", "manhã"},
			{"sis_gastro_escape_tarde", "tarde"},
			{"sis_gastro_escape_noite", "noite"},
		} {
			if n.Flag(t.key) {
				turnos = append(turnos, t.nome)
			}
		}
		if len(turnos) > 0 {
			esc += ", nos períodos da " + textutil.JoinE(turnos)
		}
		if sval(n, "sis_gastro_insulino") == "Sim" {
			var doses []string
			for _, key := range []string{
				"sis_gastro_insulino_dose_manha",
				"sis_gastro_insulino_dose_tarde",
				"sis_gastro_insulino_dose_noite",
			} {
				if d := sval(n, key); d != "" {
					doses = append(doses, d+" UI")
				}
			}
			if len(doses) > 0 {
				esc += ", em insulinoterapia " + strings.Join(doses, " - ")
			}
		}
		gastro = append(gastro, esc)
	case "Não":
		gastro = append(gastro, "Sem escape glicêmico, sem insulinoterapia")
	}

	evacData := sval(n, "sis_gastro_evacuacao_data")
	switch sval(n, "sis_gastro_evacuacao") {
	case "Sim":
		linha := "Evacuação: Presente"
		if evacData != "" {
			linha += ", última em " + evacData
		}
		gastro = append(gastro, linha)
	case "Não":
		linha := "Evacuação: Ausente"
		if evacData != "" {
			linha += ", última em " + evacData
		}
		if lax := sval(n, "sis_gastro_laxativo"); lax != "" {
			linha += ", em uso de " + lax
		}
		gastro = append(gastro, linha)
	}

	if pocus := sval(n, "sis_gastro_pocus"); pocus != "" {
		gastro = append(gastro, "Pocus Exame Abdominal: "+pocus)
	}
	if obs := sval(n, "sis_gastro_obs"); obs != "" {
		gastro = append(gastro, "Obs: "+obs)
	}
	if nutri := sval(n, "sis_nutri_obs"); nutri != "" {
		gastro = append(gastro, "Nutri: "+nutri)
	}
	return gastro
}

func renalLines(n *record.Note) []string {
	var renal []string

	ml := func(v string) string {
		if v != "" && !strings.Contains(strings.ToLower(v), "ml") {
			return v + " mL"
		}
		return v
	}
	var bh []string
	if v := sval(n, "sis_renal_diurese"); v != "" {
		bh = append(bh, "Diurese "+ml(v))
	}
	if v := sval(n, "sis_renal_balanco"); v != "" {
		bh = append(bh, "BH "+ml(v))
	}
	if v := sval(n, "sis_renal_balanco_acum"); v != "" {
		bh = append(bh, "BH Acumulado "+ml(v))
	}
	if len(bh) > 0 {
		renal = append(renal, strings.Join(bh, " | "))
	}

	if v := sval(n, "sis_renal_volemia"); v != "" {
		renal = append(renal, v)
	}

	var fr []string
	if t := trendLine(n, "Cr", "sis_renal_cr"); t != "" {
		fr = append(fr, t)
	}
	if t := trendLine(n, "Ur", "sis_renal_ur"); t != "" {
		fr = append(fr, t)
	}
	if len(fr) > 0 {
		renal = append(renal, strings.Join(fr, " | "))
	}

	var disturbs []string
	for _, key := range []string{
		"sis_renal_sodio", "sis_renal_potassio", "sis_renal_magnesio",
		"sis_renal_fosforo", "sis_renal_calcio",
	} {
		if v := choice(n, key); v != "" {
			disturbs = append(disturbs, v)
		}
	}
	if len(disturbs) > 0 {
		renal = append(renal, "DHE: "+strings.Join(disturbs, ", "))
	}

	switch sval(n, "sis_renal_trs") {
	case "Sim":
		partes := []string{"Em TRS"}
		if v := sval(n, "sis_renal_trs_via"); v != "" {
			partes = append(partes, v)
		}
		if v := sval(n, "sis_renal_trs_ultima"); v != "" {
			partes = append(partes, "Última TSR em "+v)
		}
		if v := sval(n, "sis_renal_trs_proxima"); v != "" {
			partes = append(partes, "próxima programada para "+v)
		}
		renal = append(renal, strings.Join(partes, ", "))
	case "Não":
		renal = append(renal, "Sem TRS")
	}

	if pocus := sval(n, "sis_renal_pocus"); pocus != "" {
		renal = append(renal, "Pocus Renal: "+pocus)
	}
	if obs := sval(n, "sis_renal_obs"); obs != "" {
		renal = append(renal, "Obs: "+obs)
	}
	if metab := sval(n, "sis_metab_obs"); metab != "" {
		renal = append(renal, "Metab: "+metab)
	}
	return renal
}

func infecLines(n *record.Note) []string {
	var infec []string

	switch sval(n, "sis_infec_febre") {
	case "Sim":
		linha := "Febre: Presente"
		if v := sval(n, "sis_infec_febre_vezes"); v != "" {
			linha += ", " + vezes(v)
		}
		if v := sval(n, "sis_infec_febre_ultima"); v != "" {
			linha += "; Último pico febril: " + v
		}
		infec = append(infec, linha)
	case "Não":
		infec = append(infec, "Febre: Ausente")
	}

	switch sval(n, "sis_infec_atb") {
	case "Sim":
		base := "Antibioticoterapia"
		switch sval(n, "sis_infec_atb_guiado") {
		case "Sim":
			base += " guiada por culturas"
		case "Não":
			base += " empírica"
		}
		var lista []string
		for _, key := range []string{"sis_infec_atb_1", "sis_infec_atb_2", "sis_infec_atb_3"} {
			if v := sval(n, key); v != "" {
				lista = append(lista, v)
			}
		}
		if len(lista) > 0 {
			base += " em uso de " + textutil.JoinE(lista)
		}
		infec = append(infec, base)
	case "Não":
		infec = append(infec, "Sem antibioticoterapia")
	}

	switch sval(n, "sis_infec_culturas_and") {
	case "Sim":
		var cults []string
		for i := 1; i <= 4; i++ {
			sitio := sval(n, fmt.Sprintf("sis_infec_cult_%d_sitio", i))
			if sitio == "" {
				continue
			}
			if data := sval(n, fmt.Sprintf("sis_infec_cult_%d_data", i)); data != "" {
				cults = append(cults, fmt.Sprintf("%s (%s)", sitio, data))
			} else {
				cults = append(cults, sitio)
			}
		}
		if len(cults) > 0 {
			infec = append(infec, "Culturas em andamento: "+strings.Join(cults, ", "))
		}
	case "Não":
		infec = append(infec, "Sem culturas em andamento")
	}

	var marc []string
	if t := trendLine(n, "PCR", "sis_infec_pcr"); t != "" {
		marc = append(marc, t)
	}
	if t := trendLine(n, "Leucócitos", "sis_infec_leuc"); t != "" {
		marc = append(marc, t)
	}
	if len(marc) > 0 {
		infec = append(infec, strings.Join(marc, " | "))
	}

	if sval(n, "sis_infec_isolamento") == "Sim" {
		if tipo := sval(n, "sis_infec_isolamento_tipo"); tipo != "" {
			infec = append(infec, "Isolamento: "+tipo)
		} else {
			infec = append(infec, "Isolamento: presente")
		}
	}
	if pat := sval(n, "sis_infec_patogenos"); pat != "" {
		infec = append(infec, "Patógenos isolados: "+pat)
	}

	if pocus := sval(n, "sis_infec_pocus"); pocus != "" {
		infec = append(infec, "Pocus Infeccioso: "+pocus)
	}
	if obs := sval(n, "sis_infec_obs"); obs != "" {
		infec = append(infec, "Obs: "+obs)
	}
	return infec
}

func hematoLines(n *record.Note) []string {
	var hemato []string

	switch sval(n, "sis_hemato_anticoag") {
	case "Sim":
		tipo := sval(n, "sis_hemato_anticoag_tipo")
		motivo := sval(n, "sis_hemato_anticoag_motivo")
		switch {
		case tipo == "Plena" && motivo != "":
			hemato = append(hemato, "Anticoagulação: Plena, por "+textutil.SiglaUpper(motivo))
		case tipo != "":
			hemato = append(hemato, "Anticoagulação: "+tipo)
		default:
			hemato = append(hemato, "Anticoagulação: em uso")
		}
	case "Não":
		hemato = append(hemato, "Sem anticoagulação")
	}

	switch sval(n, "sis_hemato_sangramento") {
	case "Sim":
		linha := "Sangramento presente"
		if v := sval(n, "sis_hemato_sangramento_via"); v != "" {
			linha += "; " + v
		}
		if v := sval(n, "sis_hemato_sangramento_data"); v != "" {
			linha += ", último apresentado em " + v
		}
		hemato = append(hemato, linha)
	case "Não":
		hemato = append(hemato, "Sem sangramentos")
	}

	if tData := sval(n, "sis_hemato_transf_data"); tData != "" {
		var comps []string
		for i := 1; i <= 3; i++ {
			comp := sval(n, fmt.Sprintf("sis_hemato_transf_%d_comp", i))
			if comp == "" {
				continue
			}
			if bolsas := sval(n, fmt.Sprintf("sis_hemato_transf_%d_bolsas", i)); bolsas != "" {
				comps = append(comps, comp+" "+bolsas)
			} else {
				comps = append(comps, comp)
			}
		}
		linha := "Transfusão em " + tData
		if len(comps) > 0 {
			linha += "; " + strings.Join(comps, ", ")
		}
		hemato = append(hemato, linha)
	}

	var series []string
	if t := trendLine(n, "Hb", "sis_hemato_hb"); t != "" {
		series = append(series, t)
	}
	if t := trendLine(n, "Plaq", "sis_hemato_plaq"); t != "" {
		series = append(series, t)
	}
	if len(series) > 0 {
		hemato = append(hemato, strings.Join(series, " | "))
	}
	if t := trendLine(n, "INR", "sis_hemato_inr"); t != "" {
		hemato = append(hemato, t)
	}

	if pocus := sval(n, "sis_hemato_pocus"); pocus != "" {
		hemato = append(hemato, "Pocus Hematológico: "+pocus)
	}
	if obs := sval(n, "sis_hemato_obs"); obs != "" {
		hemato = append(hemato, "Obs: "+obs)
	}
	return hemato
}

func peleLines(n *record.Note) []string {
	var pele []string

	switch sval(n, "sis_pele_edema") {
	case "Presente":
		cruzes := sval(n, "sis_pele_edema_cruzes")
		if cruzes == "1" || cruzes == "2" || cruzes == "3" || cruzes == "4" {
			pele = append(pele, fmt.Sprintf("Edema presente, %s+", cruzes))
		} else {
			pele = append(pele, "Edema presente")
		}
	case "Ausente":
		pele = append(pele, "Sem edema")
	}

	switch sval(n, "sis_pele_lpp") {
	case "Sim":
		var items []string
		for i := 1; i <= 3; i++ {
			loc := sval(n, fmt.Sprintf("sis_pele_lpp_local_%d", i))
			if loc == "" {
				continue
			}
			if grau := sval(n, fmt.Sprintf("sis_pele_lpp_grau_%d", i)); grau != "" {
				items = append(items, loc+" "+grau)
			} else {
				items = append(items, loc)
			}
		}
		if len(items) > 0 {
			pele = append(pele, "LPP: "+strings.Join(items, ", "))
		} else {
			pele = append(pele, "LPP: presente")
		}
	case "Não":
		pele = append(pele, "Sem LPP")
	}

	switch sval(n, "sis_pele_polineuropatia") {
	case "Sim":
		pele = append(pele, "Polineuropatia do doente crítico")
	case "Não":
		pele = append(pele, "Sem polineuropatia")
	}

	if pocus := sval(n, "sis_pele_pocus"); pocus != "" {
		pele = append(pele, "Pocus Pele e musculoesquelético: "+pocus)
	}
	if obs := sval(n, "sis_pele_obs"); obs != "" {
		pele = append(pele, "Obs: "+obs)
	}
	return pele
}
