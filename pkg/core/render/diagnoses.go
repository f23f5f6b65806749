package render

import (
	"fmt"
	"strings"

	"prontuario/pkg/core/record"
	"prontuario/pkg/core/textutil"
)

// obsLines turns a multiline obs field into "> " quote lines. Lines
// starting with "Conduta:" are skipped here; they surface in the
// aggregated Condutas section instead. Each line is normalized from CAPS,
// keeping scientific binomials as "Genus species".
func obsLines(raw string) []string {
	var out []string
	for _, linha := range strings.Split(raw, "\n") {
		linha = strings.TrimSpace(linha)
		if linha == "" {
			continue
		}
		if strings.HasPrefix(strings.ToLower(linha), "conduta:") {
			continue
		}
		out = append(out, "> "+textutil.ObsLine(linha))
	}
	return out
}

// Diagnoses renders the working diagnoses grouped by status. Numbering is
// re-derived per group from the display order; the stored slot ids never
// leak into the output.
func Diagnoses(n *record.Note) []string {
	var atuais, resolvidos [][]string

	for _, id := range n.Order("hd_ordem") {
		nome := get(n, fmt.Sprintf("hd_%d_nome", id))
		if nome == "" {
			continue
		}
		resolvida := n.ChoiceIs(fmt.Sprintf("hd_%d_status", id), record.StatusResolvida)
		classif := get(n, fmt.Sprintf("hd_%d_class", id))
		dataIni := get(n, fmt.Sprintf("hd_%d_data_inicio", id))
		dataRes := get(n, fmt.Sprintf("hd_%d_data_resolvido", id))

		partes := []string{nome}
		if classif != "" {
			partes = append(partes, classif)
		}
		if dataIni != "" {
			partes = append(partes, dataIni)
		}
		if resolvida && dataRes != "" {
			if dataIni != "" {
				partes[len(partes)-1] = dataIni + " - " + dataRes
			} else {
				partes = append(partes, dataRes)
			}
		}

		bloco := append([]string{joinSemi(partes)},
			obsLines(n.Text(fmt.Sprintf("hd_%d_obs", id)))...)
		if resolvida {
			resolvidos = append(resolvidos, bloco)
		} else {
			atuais = append(atuais, bloco)
		}
	}

	var corpo []string
	writeGroup := func(titulo string, blocos [][]string) {
		if len(blocos) == 0 {
			return
		}
		if len(corpo) > 0 && corpo[len(corpo)-1] != "" {
			corpo = append(corpo, "")
		}
		corpo = append(corpo, titulo)
		for i, bloco := range blocos {
			corpo = append(corpo, fmt.Sprintf("%d- %s", i+1, bloco[0]))
			corpo = append(corpo, bloco[1:]...)
			corpo = append(corpo, "")
		}
	}
	writeGroup("# Diagnósticos Atuais", atuais)
	writeGroup("# Diagnósticos Resolvidos", resolvidos)

	for len(corpo) > 0 && corpo[len(corpo)-1] == "" {
		corpo = corpo[:len(corpo)-1]
	}
	return corpo
}

// Comorbidities renders "# Comorbidades": the three habit fields on one
// line (Ausente shows as Nega, Presente as Ativo), then the numbered list.
func Comorbidities(n *record.Note) []string {
	var corpo []string

	habit := func(label, key, obsKey string) string {
		val := choice(n, key)
		if val == "" {
			return ""
		}
		exibir := val
		switch val {
		case "Ausente":
			exibir = "Nega"
		case "Presente":
			exibir = "Ativo"
		}
		if obs := get(n, obsKey); exibir == "Ativo" && obs != "" {
			return fmt.Sprintf("%s: %s; %s", label, exibir, obs)
		}
		return fmt.Sprintf("%s: %s", label, exibir)
	}

	var partes []string
	for _, h := range []struct{ label, key, obs string }{
		{"Etilismo", "cmd_etilismo", "cmd_etilismo_obs"},
		{"Tabagismo", "cmd_tabagismo", "cmd_tabagismo_obs"},
		{"SPA", "cmd_spa", "cmd_spa_obs"},
	} {
		if p := habit(h.label, h.key, h.obs); p != "" {
			partes = append(partes, p)
		}
	}
	if len(partes) > 0 {
		corpo = append(corpo, strings.Join(partes, " | "))
	}

	count := 0
	for i := 1; i <= 10; i++ {
		nome := get(n, fmt.Sprintf("cmd_%d_nome", i))
		if nome == "" {
			continue
		}
		linha := nome
		if classif := get(n, fmt.Sprintf("cmd_%d_class", i)); classif != "" {
			linha += "; " + classif
		}
		count++
		corpo = append(corpo, fmt.Sprintf("%d- %s", count, linha))
	}

	if len(corpo) == 0 {
		return nil
	}
	return append([]string{"# Comorbidades"}, corpo...)
}
