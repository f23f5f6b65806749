package parse

import (
	"fmt"
	"regexp"
	"strings"
)

var (
	systemsHeaderPat = regexp.MustCompile(`(?i)#\s*Evolu[çc][ãa]o\s+por\s+sistemas?`)
	sectionStartPat  = regexp.MustCompile(`^\s*-\s+\S`)
)

// section extracts the body of "- Titulo" up to the next "- " block.
func section(texto, titulo string) string {
	headerPat := regexp.MustCompile(`(?i)^\s*-\s*` + regexp.QuoteMeta(titulo) + `\s*$`)
	lines := strings.Split(texto, "\n")
	for i, ln := range lines {
		if !headerPat.MatchString(ln) {
			continue
		}
		var body []string
		for _, next := range lines[i+1:] {
			if sectionStartPat.MatchString(next) {
				break
			}
			body = append(body, next)
		}
		return strings.TrimSpace(strings.Join(body, "\n"))
	}
	return ""
}

// find returns the first capture of pat in bloco, trimmed, or "".
func find(pat, bloco string) string {
	if m := regexp.MustCompile(pat).FindStringSubmatch(bloco); m != nil {
		return strings.TrimSpace(m[1])
	}
	return ""
}

func has(pat, bloco string) bool {
	return regexp.MustCompile(pat).MatchString(bloco)
}

// trendTriple reads "Label: a → b → c" (arrow or dash separated) into the
// antepen/ult/hoje keys under prefix.
func trendTriple(out map[string]string, bloco, label, prefix string) {
	pat := regexp.MustCompile(`(?i)` + label + `\s*[:\s]*([\d.,]+)\s*[→\-]\s*([\d.,]+)\s*[→\-]\s*([\d.,]+)`)
	if m := pat.FindStringSubmatch(bloco); m != nil {
		out[prefix+"_antepen"] = m[1]
		out[prefix+"_ult"] = m[2]
		out[prefix+"_hoje"] = m[3]
	}
}

func parseNeuro(bloco string) map[string]string {
	r := map[string]string{}
	if v := find(`(?i)ECG\s*[:\s]+(\d{1,2})`, bloco); v != "" {
		r["sis_neuro_ecg"] = v
	}
	if v := find(`(?i)RASS\s*[:\s]*([+-]?\d)`, bloco); v != "" {
		r["sis_neuro_rass"] = v
	}
	if v := find(`(?i)CAM-ICU\s*[:\s]+([^;\n]+)`, bloco); v != "" {
		lower := strings.ToLower(v)
		switch {
		case strings.Contains(lower, "positivo"):
			r["sis_neuro_cam_icu"] = "Positivo"
		case strings.Contains(lower, "negativo"):
			r["sis_neuro_cam_icu"] = "Negativo"
		default:
			r["sis_neuro_cam_icu"] = v
		}
	}
	if v := find(`(?i)Pupilas?\s*[:\s]+([^\n]+)`, bloco); v != "" {
		lower := strings.ToLower(v)
		if strings.Contains(lower, "simétric") || strings.Contains(lower, "simetric") {
			r["sis_neuro_pupilas_simetria"] = "Simétricas"
		}
		if strings.Contains(lower, "fotoreagente") || strings.Contains(lower, "foto-reagente") {
			r["sis_neuro_pupilas_foto"] = "Fotoreagente"
		}
		switch {
		case strings.Contains(lower, "miótic") || strings.Contains(lower, "miotic"):
			r["sis_neuro_pupilas_tam"] = "Miótica"
		case strings.Contains(lower, "midríase") || strings.Contains(lower, "midriase"):
			r["sis_neuro_pupilas_tam"] = "Midríase"
		case strings.Contains(lower, "normal") || strings.Contains(lower, "normais"):
			r["sis_neuro_pupilas_tam"] = "Normal"
		}
	}
	if v := find(`(?i)Seda[çc][ãa]o\s*[:\s]+([^\n]+)`, bloco); v != "" {
		if meta := find(`(?i)Meta\s*Rass?\s*([+-]?\d)`, v); meta != "" {
			r["sis_neuro_sedacao_meta"] = "RASS " + meta
		}
		medStrip := regexp.MustCompile(`(?i)\s*\d+[\d.,]*\s*(mcg|mg).*`)
		dosePat := regexp.MustCompile(`(?i)[\d.,]+\s*(?:mcg|mg)[^;]*`)
		parts := regexp.MustCompile(`[;,]+\s*`).Split(v, -1)
		slot := 0
		for _, p := range parts {
			if slot >= 3 {
				break
			}
			p = strings.TrimSpace(p)
			lower := strings.ToLower(p)
			if !strings.Contains(lower, "mcg") && !strings.Contains(lower, "mg") {
				slot++
				continue
			}
			if med := strings.TrimSpace(medStrip.ReplaceAllString(p, "")); med != "" {
				r[fmt.Sprintf("sis_neuro_sedacao_%d_drogas", slot+1)] = med
			}
			if dose := dosePat.FindString(p); dose != "" {
				r[fmt.Sprintf("sis_neuro_sedacao_%d_dose", slot+1)] = strings.TrimSpace(dose)
			}
			slot++
		}
	}
	if has(`(?i)sem\s+d[eé]ficit\s+focal`, bloco) {
		r["sis_neuro_deficits_ausente"] = "Ausente"
	}
	return r
}

func parseResp(bloco string) map[string]string {
	r := map[string]string{}
	if v := find(`(?i)(?:EF|Exame\s+Respirat[oó]rio)\s*[:\s]+([^\n]+)`, bloco); v != "" {
		r["sis_resp_ausculta"] = v
	}
	if strings.Contains(bloco, "Ventilação Mecânica") || strings.Contains(bloco, "Ventilacao Mecanica") {
		r["sis_resp_modo"] = "Ventilação Mecânica"
		if v := find(`(?i)Press[ãa]o\s+([\d.,]+)`, bloco); v != "" {
			r["sis_resp_pressao"] = v
		}
		if v := find(`(?i)Volume\s+([\d.,]+)`, bloco); v != "" {
			r["sis_resp_volume"] = v
		}
		if v := find(`(?i)FiO2\s+([\d.,]+)`, bloco); v != "" {
			r["sis_resp_fio2"] = v
		}
		if v := find(`(?i)PEEP\s+([\d.,]+)`, bloco); v != "" {
			r["sis_resp_peep"] = v
		}
		if v := find(`(?i)FR\s+([\d.,]+)`, bloco); v != "" {
			r["sis_resp_freq"] = v
		}
		switch {
		case strings.Contains(bloco, "PSV"):
			r["sis_resp_modo_vent"] = "PSV"
		case strings.Contains(bloco, "PCV"):
			r["sis_resp_modo_vent"] = "PCV"
		case strings.Contains(bloco, "VCV"):
			r["sis_resp_modo_vent"] = "VCV"
		}
	}
	if has(`(?i)em\s+ventila[çc][ãa]o\s+protetora`, bloco) {
		r["sis_resp_vent_protetora"] = "Sim"
	}
	if has(`(?i)assincr[oó]nico`, bloco) {
		r["sis_resp_sincronico"] = "Não"
		if v := find(`(?i)assincr[oó]nico[,\s]+(?:apresenta\s+)?([^\n.]+)`, bloco); v != "" {
			r["sis_resp_assincronia"] = v
		}
	} else if has(`(?i)sincr[oó]nico`, bloco) {
		r["sis_resp_sincronico"] = "Sim"
	}
	return r
}

func parseCardio(bloco string) map[string]string {
	r := map[string]string{}
	if v := find(`(?i)FC\s+([\d.,]+)`, bloco); v != "" {
		r["sis_cardio_fc"] = v
	}
	if v := find(`(?i)Ritmo\s+([^,;\n]+)`, bloco); v != "" {
		r["sis_cardio_cardioscopia"] = v
	}
	if v := find(`(?i)PAM\s+([\d.,]+)`, bloco); v != "" {
		r["sis_cardio_pam"] = v
	}
	if v := find(`(?i)Exame\s+Cardiol[oó]gico\s*[:\s]+([^\n]+)`, bloco); v != "" {
		r["sis_cardio_exame_cardio"] = v
	}
	if v := find(`(?i)Perfus[ãa]o\s*[:\s]+(Normal|Lentificada|Flush)`, bloco); v != "" {
		r["sis_cardio_perfusao"] = v
	}
	if v := find(`(?i)TEC\s*[:\s]*([\d.,]+)`, bloco); v != "" {
		r["sis_cardio_tec"] = v + " seg"
	}
	if has(`(?i)fluidoresponsivo`, bloco) {
		if has(`(?i)n[aã]o\s+fluidoresponsivo`, bloco) {
			r["sis_cardio_fluido_responsivo"] = "Não"
		} else {
			r["sis_cardio_fluido_responsivo"] = "Sim"
		}
	}
	if has(`(?i)fluidotolerante`, bloco) {
		if has(`(?i)n[aã]o\s+fluidotolerante`, bloco) {
			r["sis_cardio_fluido_tolerante"] = "Não"
		} else {
			r["sis_cardio_fluido_tolerante"] = "Sim"
		}
	}
	return r
}

func parseGastro(bloco string) map[string]string {
	r := map[string]string{}
	if v := find(`(?i)(?:EF|Exame\s+Abdominal)\s*[:\s]+([^\n]+)`, bloco); v != "" {
		r["sis_gastro_exame_fisico"] = v
	}
	if has(`(?i)icter[íi]cio|icter[íi]co`, bloco) && !has(`(?i)sem\s+icter[íi]cia`, bloco) {
		r["sis_gastro_ictericia_presente"] = "Presente"
	}
	if v := find(`(?i)Enteral\s+([^;]+)`, bloco); v != "" {
		kcalPat := regexp.MustCompile(`(?i)(\d[\d.,]*)\s*kcal\s*$`)
		if m := kcalPat.FindStringSubmatchIndex(v); m != nil {
			r["sis_gastro_dieta_enteral"] = strings.TrimSpace(v[:m[0]])
			r["sis_gastro_dieta_enteral_vol"] = v[m[2]:m[3]] + " kcal"
		} else {
			r["sis_gastro_dieta_enteral"] = v
		}
	}
	if v := find(`(?i)Meta\s+cal[oó]rica\s+(?:de\s+)?([\d.,]+)`, bloco); v != "" {
		r["sis_gastro_meta_calorica"] = v
	}
	if has(`(?i)na\s+meta\s+cal[oó]rica`, bloco) {
		r["sis_gastro_na_meta"] = "Sim"
	}
	if has(`(?i)sem\s+escape\s+glic[eê]mico`, bloco) {
		r["sis_gastro_escape_glicemico"] = "Não"
	}
	if has(`(?i)Evacua[çc][ãa]o\s*[:\s]+Presente`, bloco) {
		r["sis_gastro_evacuacao"] = "Sim"
	}
	return r
}

func parseRenal(bloco string) map[string]string {
	r := map[string]string{}
	if v := find(`(?i)Diurese\s+([^\n|]+)`, bloco); v != "" {
		r["sis_renal_diurese"] = v
	}
	if m := regexp.MustCompile(`(?i)BH\s+([+-]?\d+[^|]*?)(?:\s*\|\s*|BH Acumulado|$)`).FindStringSubmatch(bloco); m != nil {
		r["sis_renal_balanco"] = strings.TrimSpace(m[1])
	}
	if v := find(`(?i)BH\s+Acumulado\s+([^\n|]+)`, bloco); v != "" {
		r["sis_renal_balanco_acum"] = v
	}
	switch {
	case has(`(?i)euvol[eê]mico`, bloco):
		r["sis_renal_volemia"] = "Euvolêmico"
	case has(`(?i)hipovol[eê]mico`, bloco):
		r["sis_renal_volemia"] = "Hipovolêmico"
	case has(`(?i)hipervol[eê]mico`, bloco):
		r["sis_renal_volemia"] = "Hipervolêmico"
	}
	trendTriple(r, bloco, "Cr", "sis_renal_cr")
	trendTriple(r, bloco, "Ur", "sis_renal_ur")
	if has(`(?i)em\s+TRS|em\s+TSR`, bloco) {
		r["sis_renal_trs"] = "Sim"
		via := find(`(?i)(Cateter\s+[^\n,]+)`, bloco)
		if via == "" {
			via = find(`(?i)(?:via|acesso)\s+([^\n,]+)`, bloco)
		}
		if via != "" {
			r["sis_renal_trs_via"] = via
		}
		if v := find(`(?i)[Uú]ltima\s+(?:TSR|sess[ãa]o)\s+em\s+([\d/]+)`, bloco); v != "" {
			r["sis_renal_trs_ultima"] = v
		}
		if v := find(`(?i)pr[oó]xima\s+(?:programada\s+)?(?:para\s+)?([\d/]+)`, bloco); v != "" {
			r["sis_renal_trs_proxima"] = v
		}
	}
	return r
}

func parseInfec(bloco string) map[string]string {
	r := map[string]string{}
	if v := find(`(?i)Febre\s*[:\s]+(Ausente|Presente)`, bloco); v != "" {
		if strings.EqualFold(v, "Ausente") {
			r["sis_infec_febre"] = "Não"
		} else {
			r["sis_infec_febre"] = "Sim"
		}
	}
	if has(`(?i)guiada\s+por\s+cultura|guiado\s+por\s+cultura`, bloco) {
		r["sis_infec_atb_guiado"] = "Sim"
	}
	atbs := regexp.MustCompile(`(?i)\b(Meropenem|Vancomicina|Piperacilina|Ceftriaxone|Cefepime)\b`).
		FindAllString(bloco, 3)
	for i, a := range atbs {
		r[fmt.Sprintf("sis_infec_atb_%d", i+1)] = a
	}
	trendTriple(r, bloco, "PCR", "sis_infec_pcr")
	if v := find(`(?i)Leuc[oó]citos?\s*[:\s]*([\d.,]+)`, bloco); v != "" {
		r["sis_infec_leuc_hoje"] = v
	}
	if v := find(`(?i)Isolamento\s*[:\s]+([^\n]+)`, bloco); v != "" {
		r["sis_infec_isolamento"] = "Sim"
		r["sis_infec_isolamento_tipo"] = v
	}
	if v := find(`(?i)Pat[oó]genos?(?:\s+isolados?)?\s*[:\s]+([^\n]+)`, bloco); v != "" {
		r["sis_infec_patogenos"] = v
	}
	return r
}

func parseHemato(bloco string) map[string]string {
	r := map[string]string{}
	if v := find(`(?i)Anticoagula[çc][ãa]o\s*[:\s]+([^\n|]+)`, bloco); v != "" {
		r["sis_hemato_anticoag"] = "Sim"
		r["sis_hemato_anticoag_tipo"] = v
	}
	if has(`(?i)sem\s+sangramento`, bloco) {
		r["sis_hemato_sangramento"] = "Não"
	}
	trendTriple(r, bloco, "Hb", "sis_hemato_hb")
	if v := find(`(?i)Plaq(?:ueta)?\s*[:\s]*([\d.,]+)`, bloco); v != "" {
		r["sis_hemato_plaq_hoje"] = v
	}
	if v := find(`(?i)INR\s*[:\s]*([\d.,]+)`, bloco); v != "" {
		r["sis_hemato_inr_hoje"] = v
	}
	return r
}

func parsePele(bloco string) map[string]string {
	r := map[string]string{}
	if has(`(?i)edema\s+presente`, bloco) {
		r["sis_pele_edema"] = "Presente"
		if v := find(`(\d)\s*\+`, bloco); v != "" {
			r["sis_pele_edema_cruzes"] = v
		}
	}
	if has(`(?i)sem\s+LPP`, bloco) {
		r["sis_pele_lpp"] = "Não"
	}
	return r
}

// Systems parses a pasted systems-review block (with or without the
// "# Evolução por sistemas" header) into sis_* keys. Each system section
// is extracted by its "- Titulo" line and run through a phrase-matched
// extractor; free prose that matches no phrase is simply ignored.
func Systems(texto string) map[string]string {
	texto = strings.TrimSpace(texto)
	if texto == "" {
		return map[string]string{}
	}
	if loc := systemsHeaderPat.FindStringIndex(texto); loc != nil {
		texto = strings.TrimSpace(texto[loc[1]:])
	}

	resultado := map[string]string{}
	for _, sp := range []struct {
		titulo string
		fn     func(string) map[string]string
	}{
		{"Neurológico", parseNeuro},
		{"Respiratório", parseResp},
		{"Cardiovascular", parseCardio},
		{"Gastrointestinal", parseGastro},
		{"Exame Abdominal", parseGastro},
		{"Renal", parseRenal},
		{"Infeccioso", parseInfec},
		{"Hematológico", parseHemato},
		{"Pele", parsePele},
	} {
		bloco := section(texto, sp.titulo)
		if bloco == "" {
			continue
		}
		for k, v := range sp.fn(bloco) {
			resultado[k] = v
		}
	}
	return resultado
}
