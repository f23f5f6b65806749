package render

import (
	"fmt"
	"strings"

	"prontuario/pkg/core/record"
)

// History renders "# História da Moléstia Pregressa Atual", preferring
// the agent-rewritten text over the raw one.
func History(n *record.Note) []string {
	texto := gets(n, "hmpa_reescrito")
	if texto == "" {
		texto = gets(n, "hmpa_texto")
	}
	if texto == "" {
		return nil
	}
	return append([]string{"# História da Moléstia Pregressa Atual"},
		strings.Split(texto, "\n")...)
}

// Complementary renders "# Exames Complementares", one numbered block per
// exam with its report line, blank line between blocks.
func Complementary(n *record.Note) []string {
	var blocos [][]string
	for _, id := range n.Order("comp_ordem") {
		exame := gets(n, fmt.Sprintf("comp_%d_exame", id))
		data := gets(n, fmt.Sprintf("comp_%d_data", id))
		laudo := gets(n, fmt.Sprintf("comp_%d_laudo", id))
		if exame == "" && laudo == "" {
			continue
		}
		nome := exame
		if nome == "" {
			nome = "Exame complementar"
		}
		cab := fmt.Sprintf("%d- %s", len(blocos)+1, nome)
		if data != "" {
			cab = fmt.Sprintf("%d- %s (%s)", len(blocos)+1, nome, data)
		}
		bloco := []string{cab}
		if laudo != "" {
			bloco = append(bloco, laudo)
		}
		blocos = append(blocos, bloco)
	}
	if len(blocos) == 0 {
		return nil
	}
	corpo := []string{"# Exames Complementares"}
	for i, bloco := range blocos {
		corpo = append(corpo, bloco...)
		if i < len(blocos)-1 {
			corpo = append(corpo, "")
		}
	}
	return corpo
}

// ClinicalCourse renders "# Evolução Clínica".
func ClinicalCourse(n *record.Note) []string {
	texto := gets(n, "evolucao_notas")
	if texto == "" {
		return nil
	}
	return []string{"# Evolução Clínica", texto}
}

// condutaKeys lists every per-section conduta field in the order the
// aggregated Condutas section walks them.
func condutaKeys(n *record.Note) []string {
	var keys []string
	for _, id := range n.Order("hd_ordem") {
		keys = append(keys, fmt.Sprintf("hd_%d_conduta", id))
	}
	for i := 1; i <= 10; i++ {
		keys = append(keys, fmt.Sprintf("cmd_%d_conduta", i))
	}
	for _, id := range n.Order("muc_ordem") {
		keys = append(keys, fmt.Sprintf("muc_%d_conduta", id))
	}
	for _, id := range n.Order("disp_ordem") {
		keys = append(keys, fmt.Sprintf("disp_%d_conduta", id))
	}
	for _, id := range n.Order("cult_ordem") {
		keys = append(keys, fmt.Sprintf("cult_%d_conduta", id))
	}
	for _, id := range n.Order("atb_ordem") {
		keys = append(keys, fmt.Sprintf("atb_%d_conduta", id))
	}
	for _, id := range n.Order("comp_ordem") {
		keys = append(keys, fmt.Sprintf("comp_%d_conduta", id))
	}
	for i := 1; i <= 10; i++ {
		keys = append(keys, fmt.Sprintf("lab_%d_conduta", i))
	}
	keys = append(keys, "ctrl_conduta")
	for _, s := range []string{"neuro", "resp", "cardio", "gastro", "nutri", "renal", "metab", "infec", "hemato", "pele"} {
		keys = append(keys, fmt.Sprintf("sis_%s_conduta", s))
	}
	return keys
}

// aggregatedConducts collects every per-section conduta line plus the
// "Conduta:" lines typed inside diagnosis obs fields, which the Diagnoses
// renderer deliberately leaves out of its quotes.
func aggregatedConducts(n *record.Note) []string {
	var out []string
	add := func(raw string) {
		for _, linha := range strings.Split(raw, "\n") {
			linha = strings.TrimSpace(linha)
			if linha == "" {
				continue
			}
			lower := strings.ToLower(linha)
			if strings.HasPrefix(lower, "conduta:") {
				linha = strings.TrimSpace(linha[len("conduta:"):])
			}
			if linha != "" {
				out = append(out, linha)
			}
		}
	}
	for _, key := range condutaKeys(n) {
		add(n.Text(key))
	}
	for _, id := range n.Order("hd_ordem") {
		for _, linha := range strings.Split(n.Text(fmt.Sprintf("hd_%d_obs", id)), "\n") {
			linha = strings.TrimSpace(linha)
			if strings.HasPrefix(strings.ToLower(linha), "conduta:") {
				add(linha)
			}
		}
	}
	return out
}

// Conducts renders "# Condutas": the aggregated per-section lines first,
// then the manually curated final list, each prefixed "- ".
func Conducts(n *record.Note) []string {
	var corpo []string
	for _, linha := range aggregatedConducts(n) {
		if !strings.HasPrefix(linha, "- ") {
			linha = "- " + linha
		}
		corpo = append(corpo, linha)
	}
	for _, linha := range strings.Split(gets(n, "conduta_final_lista"), "\n") {
		linha = strings.TrimSpace(linha)
		if linha == "" {
			continue
		}
		if !strings.HasPrefix(linha, "- ") {
			linha = "- " + linha
		}
		corpo = append(corpo, linha)
	}
	if len(corpo) == 0 {
		return nil
	}
	return append([]string{"# Condutas"}, corpo...)
}

// Prescription renders the formatted prescription block below a "==="
// separator, after Condutas in the full document.
func Prescription(n *record.Note) []string {
	texto := gets(n, "prescricao_formatada")
	if texto == "" {
		return nil
	}
	return []string{"===", "# Prescrição", "", texto}
}
