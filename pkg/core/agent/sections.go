package agent

import (
	"fmt"
	"strings"

	"prontuario/pkg/core/prompt"
)

// Section describes one extraction agent: which pasted-notes field feeds
// it, which prompt it runs, and how the JSON reply maps onto the field
// mapping keys.
type Section struct {
	ID       string
	Name     string
	NotesKey string
	PromptID string
	mapReply func(reply) map[string]string
}

// Sections lists the agents in form order. The evolution and HMPA entries
// are special-cased by Run: evolution is a passthrough, HMPA is a free-text
// rewrite.
var Sections = []Section{
	{"identificacao", "1. Identificação", "identificacao_notas", prompt.IDs.Identificacao, mapIdentificacao},
	{"hd", "2. Diagnósticos", "hd_notas", prompt.IDs.HD, mapHD},
	{"comorbidades", "3. Comorbidades", "comorbidades_notas", prompt.IDs.Comorbidades, mapComorbidades},
	{"muc", "4. MUC", "muc_notas", prompt.IDs.MUC, mapMUC},
	{"hmpa", "5. HMPA", "hmpa_texto", prompt.IDs.HMPA, nil},
	{"dispositivos", "6. Dispositivos", "dispositivos_notas", prompt.IDs.Dispositivos, mapDispositivos},
	{"culturas", "7. Culturas", "culturas_notas", prompt.IDs.Culturas, mapCulturas},
	{"antibioticos", "8. Antibióticos", "antibioticos_notas", prompt.IDs.Antibioticos, mapAntibioticos},
	{"complementares", "9. Complementares", "complementares_notas", prompt.IDs.Complementares, mapComplementares},
	{"laboratoriais", "10. Exames Laboratoriais", "laboratoriais_notas", prompt.IDs.Laboratoriais, mapPrefix("lab_")},
	{"controles", "11. Controles & Balanço", "controles_notas", prompt.IDs.Controles, mapPrefix("ctrl_")},
	{"evolucao", "12. Evolução Clínica", "evolucao_notas", "", nil},
	{"sistemas", "13. Sistemas", "sistemas_notas", prompt.IDs.Sistemas, mapSistemas},
}

// ByID looks a section up by its agent id.
func ByID(id string) (Section, bool) {
	for _, s := range Sections {
		if s.ID == id {
			return s, true
		}
	}
	return Section{}, false
}

func mapIdentificacao(r reply) map[string]string {
	out := map[string]string{}
	for _, k := range []string{"nome", "sexo", "prontuario", "leito", "origem",
		"equipe", "di_hosp", "di_uti", "di_enf", "mrs", "pps", "cfs"} {
		out[k] = r.str(k)
	}
	out["idade"] = r.intStr("idade")
	out["saps3"] = r.intStr("saps3")
	out["sofa_adm"] = r.intStr("sofa_adm")
	out["sofa_atual"] = r.intStr("sofa_atual")
	if r.boolVal("paliativo") {
		out["paliativo"] = "Sim"
	}
	return out
}

func mapHD(r reply) map[string]string {
	out := map[string]string{}
	// Atuais occupy slots 1-4, resolvidos 5-8.
	for i := 1; i <= 4; i++ {
		nome := r.str(fmt.Sprintf("diag_atual_%d_nome", i))
		out[fmt.Sprintf("hd_%d_nome", i)] = nome
		out[fmt.Sprintf("hd_%d_class", i)] = r.str(fmt.Sprintf("diag_atual_%d_class", i))
		out[fmt.Sprintf("hd_%d_data_inicio", i)] = r.str(fmt.Sprintf("diag_atual_%d_data", i))
		out[fmt.Sprintf("hd_%d_obs", i)] = r.str(fmt.Sprintf("diag_atual_%d_obs", i))
		if nome != "" {
			out[fmt.Sprintf("hd_%d_status", i)] = "Atual"
		}
	}
	for i := 1; i <= 4; i++ {
		slot := i + 4
		nome := r.str(fmt.Sprintf("diag_resolv_%d_nome", i))
		out[fmt.Sprintf("hd_%d_nome", slot)] = nome
		out[fmt.Sprintf("hd_%d_class", slot)] = r.str(fmt.Sprintf("diag_resolv_%d_class", i))
		out[fmt.Sprintf("hd_%d_data_inicio", slot)] = r.str(fmt.Sprintf("diag_resolv_%d_data_inicio", i))
		out[fmt.Sprintf("hd_%d_data_resolvido", slot)] = r.str(fmt.Sprintf("diag_resolv_%d_data_fim", i))
		out[fmt.Sprintf("hd_%d_obs", slot)] = r.str(fmt.Sprintf("diag_resolv_%d_obs", i))
		if nome != "" {
			out[fmt.Sprintf("hd_%d_status", slot)] = "Resolvida"
		}
	}
	return out
}

func mapComorbidades(r reply) map[string]string {
	out := map[string]string{}
	for i := 1; i <= 10; i++ {
		out[fmt.Sprintf("cmd_%d_nome", i)] = r.str(fmt.Sprintf("comorbidade_%d_nome", i))
		out[fmt.Sprintf("cmd_%d_class", i)] = r.str(fmt.Sprintf("comorbidade_%d_class", i))
	}
	return out
}

func mapMUC(r reply) map[string]string {
	out := map[string]string{}
	adesao := strings.ToLower(r.str("adesao_global"))
	switch {
	case strings.Contains(adesao, "irregular"):
		out["muc_adesao_global"] = "Uso Irregular"
	case strings.Contains(adesao, "regular"):
		out["muc_adesao_global"] = "Uso Regular"
	}
	for i := 1; i <= 20; i++ {
		out[fmt.Sprintf("muc_%d_nome", i)] = r.str(fmt.Sprintf("med_dom_%d_nome", i))
		out[fmt.Sprintf("muc_%d_dose", i)] = r.str(fmt.Sprintf("med_dom_%d_dose", i))
		out[fmt.Sprintf("muc_%d_freq", i)] = r.str(fmt.Sprintf("med_dom_%d_freq", i))
	}
	return out
}

func mapDispositivos(r reply) map[string]string {
	out := map[string]string{}
	for i := 1; i <= 8; i++ {
		nome := r.str(fmt.Sprintf("disp_%d_nome", i))
		out[fmt.Sprintf("disp_%d_nome", i)] = nome
		out[fmt.Sprintf("disp_%d_local", i)] = r.str(fmt.Sprintf("disp_%d_local", i))
		out[fmt.Sprintf("disp_%d_data_insercao", i)] = r.str(fmt.Sprintf("disp_%d_data_in", i))
		out[fmt.Sprintf("disp_%d_data_retirada", i)] = r.str(fmt.Sprintf("disp_%d_data_out", i))
		if nome != "" {
			out[fmt.Sprintf("disp_%d_status", i)] = r.str(fmt.Sprintf("disp_%d_status", i))
		}
	}
	return out
}

var culturaStatuses = map[string]bool{
	"Positivo com Antibiograma":   true,
	"Positivo aguarda isolamento": true,
	"Pendente negativo":           true,
	"Negativo":                    true,
}

func mapCulturas(r reply) map[string]string {
	out := map[string]string{}
	for i := 1; i <= 8; i++ {
		out[fmt.Sprintf("cult_%d_sitio", i)] = r.str(fmt.Sprintf("cult_%d_sitio", i))
		out[fmt.Sprintf("cult_%d_data_coleta", i)] = r.str(fmt.Sprintf("cult_%d_data_coleta", i))
		out[fmt.Sprintf("cult_%d_data_resultado", i)] = r.str(fmt.Sprintf("cult_%d_data_resultado", i))
		out[fmt.Sprintf("cult_%d_micro", i)] = r.str(fmt.Sprintf("cult_%d_micro", i))
		out[fmt.Sprintf("cult_%d_sensib", i)] = r.str(fmt.Sprintf("cult_%d_sensib", i))
		if status := r.str(fmt.Sprintf("cult_%d_status", i)); culturaStatuses[status] {
			out[fmt.Sprintf("cult_%d_status", i)] = status
		}
	}
	out["culturas_notas"] = r.str("culturas_notas")
	return out
}

var atbTipos = map[string]bool{"Empírico": true, "Guiado por Cultura": true}

// mapAntibioticos folds the reply's separate current/previous groups into
// the unified 8-slot antibiotic list, current first. Overflow past 8 drops.
func mapAntibioticos(r reply) map[string]string {
	out := map[string]string{}
	slot := 0
	emit := func(group string, i int, status string) {
		nome := r.str(fmt.Sprintf("atb_%s_%d_nome", group, i))
		if nome == "" {
			return
		}
		slot++
		if slot > 8 {
			return
		}
		out[fmt.Sprintf("atb_%d_nome", slot)] = nome
		out[fmt.Sprintf("atb_%d_foco", slot)] = r.str(fmt.Sprintf("atb_%s_%d_foco", group, i))
		out[fmt.Sprintf("atb_%d_data_ini", slot)] = r.str(fmt.Sprintf("atb_%s_%d_data_ini", group, i))
		out[fmt.Sprintf("atb_%d_data_fim", slot)] = r.str(fmt.Sprintf("atb_%s_%d_data_fim", group, i))
		out[fmt.Sprintf("atb_%d_status", slot)] = status
		if tipo := r.str(fmt.Sprintf("atb_%s_%d_tipo", group, i)); atbTipos[tipo] {
			out[fmt.Sprintf("atb_%d_tipo", slot)] = tipo
		}
		if group == "prev" {
			out[fmt.Sprintf("atb_%d_obs", slot)] = r.str(fmt.Sprintf("atb_prev_%d_obs", i))
		}
	}
	for i := 1; i <= 5; i++ {
		emit("curr", i, "Atual")
	}
	for i := 1; i <= 5; i++ {
		emit("prev", i, "Prévio")
	}
	return out
}

func mapComplementares(r reply) map[string]string {
	out := map[string]string{}
	for i := 1; i <= 8; i++ {
		out[fmt.Sprintf("comp_%d_exame", i)] = r.str(fmt.Sprintf("comp_%d_exame", i))
		out[fmt.Sprintf("comp_%d_data", i)] = r.str(fmt.Sprintf("comp_%d_data", i))
		out[fmt.Sprintf("comp_%d_laudo", i)] = r.str(fmt.Sprintf("comp_%d_laudo", i))
	}
	return out
}

// mapPrefix passes through every reply key with the given prefix. The
// field mapping validates keys and vocabularies on merge, so junk keys
// are dropped there.
func mapPrefix(prefix string) func(reply) map[string]string {
	return func(r reply) map[string]string {
		out := map[string]string{}
		for k := range r {
			if strings.HasPrefix(k, prefix) {
				out[k] = r.str(k)
			}
		}
		return out
	}
}

func mapSistemas(r reply) map[string]string {
	out := map[string]string{}
	for k := range r {
		if !strings.HasPrefix(k, "sis_") {
			continue
		}
		out[k] = r.str(k)
	}

	for _, k := range []string{"sis_gastro_escape_manha", "sis_gastro_escape_tarde", "sis_gastro_escape_noite"} {
		if r.boolVal(k) {
			out[k] = "Sim"
		} else {
			delete(out, k)
		}
	}

	// Pills want Presente/Ausente; models often answer Sim/Não.
	for _, k := range []string{"sis_gastro_ictericia_presente", "sis_pele_edema"} {
		switch strings.ToLower(out[k]) {
		case "sim", "presente", "yes", "1":
			out[k] = "Presente"
		case "não", "nao", "ausente", "no", "0":
			out[k] = "Ausente"
		default:
			delete(out, k)
		}
	}

	if v := strings.ToLower(out["sis_neuro_deficits_ausente"]); v == "ausente" || r.boolVal("sis_neuro_deficits_ausente") {
		out["sis_neuro_deficits_ausente"] = "Ausente"
	} else {
		delete(out, "sis_neuro_deficits_ausente")
	}

	if v, ok := out["sis_gastro_evacuacao_laxativo"]; ok {
		out["sis_gastro_laxativo"] = v
		delete(out, "sis_gastro_evacuacao_laxativo")
	}

	return out
}
