package render

import (
	"fmt"
	"strings"

	"prontuario/pkg/core/record"
	"prontuario/pkg/core/textutil"
)

// ContinuousMeds renders "# Medicações de Uso Contínuo": the adherence
// and allergy summary on one line, then the numbered medication list in
// display order.
func ContinuousMeds(n *record.Note) []string {
	var linhas []string
	for _, id := range n.Order("muc_ordem") {
		nome := get(n, fmt.Sprintf("muc_%d_nome", id))
		if nome == "" {
			continue
		}
		partes := []string{nome}
		if dose := get(n, fmt.Sprintf("muc_%d_dose", id)); dose != "" {
			partes = append(partes, dose)
		}
		if freq := get(n, fmt.Sprintf("muc_%d_freq", id)); freq != "" {
			partes = append(partes, freq)
		}
		linhas = append(linhas, fmt.Sprintf("%d- %s", len(linhas)+1, joinSemi(partes)))
	}
	if len(linhas) == 0 {
		return nil
	}

	corpo := []string{"# Medicações de Uso Contínuo"}
	var resumo []string
	if adesao := choice(n, "muc_adesao_global"); adesao != "" {
		resumo = append(resumo, adesao)
	}
	switch choice(n, "muc_alergia") {
	case "Presente":
		if obs := get(n, "muc_alergia_obs"); obs != "" {
			resumo = append(resumo, "Alergias: "+obs)
		} else {
			resumo = append(resumo, "Alergias: presente")
		}
	case "Nega":
		resumo = append(resumo, "Nega alergias")
	case "Desconhecido":
		resumo = append(resumo, "Desconhece alergias")
	}
	if len(resumo) > 0 {
		corpo = append(corpo, strings.Join(resumo, " | "))
	}
	return append(corpo, linhas...)
}

// Antibiotics renders the antibiotic course lists split by status.
// Current courses show the programmed span with an arrow; previous ones
// show the actual span with the computed days of use.
func Antibiotics(n *record.Note) []string {
	var atuais, previos []string

	for _, id := range n.Order("atb_ordem") {
		status := choice(n, fmt.Sprintf("atb_%d_status", id))
		nome := get(n, fmt.Sprintf("atb_%d_nome", id))
		if nome == "" || (status != record.StatusAtual && status != record.StatusPrevio) {
			continue
		}

		partes := []string{nome}
		if foco := textutil.SiglaUpper(get(n, fmt.Sprintf("atb_%d_foco", id))); foco != "" {
			partes = append(partes, "Foco "+foco)
		}
		if tipo := choice(n, fmt.Sprintf("atb_%d_tipo", id)); tipo != "" {
			partes = append(partes, tipo)
		}
		dataIni := get(n, fmt.Sprintf("atb_%d_data_ini", id))
		dataFim := get(n, fmt.Sprintf("atb_%d_data_fim", id))

		if status == record.StatusAtual {
			switch {
			case dataIni != "" && dataFim != "":
				prog := gets(n, fmt.Sprintf("atb_%d_num_dias", id))
				if prog == "" {
					prog = textutil.DaysBetween(dataIni, dataFim)
				}
				datas := dataIni + " → " + dataFim
				if prog != "" {
					if !strings.Contains(strings.ToLower(prog), "dia") {
						prog += " dias"
					}
					datas += fmt.Sprintf(" (Programado %s)", prog)
				}
				partes = append(partes, datas)
			case dataIni != "":
				partes = append(partes, dataIni)
			}
			atuais = append(atuais, fmt.Sprintf("%d- %s", len(atuais)+1, joinSemi(partes)))
		} else {
			switch {
			case dataIni != "" && dataFim != "":
				if dias := textutil.DaysBetween(dataIni, dataFim); dias != "" {
					num := strings.Fields(dias)[0]
					partes = append(partes, fmt.Sprintf("%s - %s (Uso por %s dias)", dataIni, dataFim, num))
				} else {
					partes = append(partes, dataIni+" - "+dataFim)
				}
			case dataIni != "":
				partes = append(partes, dataIni)
			case dataFim != "":
				partes = append(partes, dataFim)
			}
			previos = append(previos, fmt.Sprintf("%d- %s", len(previos)+1, joinSemi(partes)))
		}
	}

	if len(atuais) == 0 && len(previos) == 0 {
		return nil
	}

	var corpo []string
	if len(atuais) > 0 {
		corpo = append(append(corpo, "# Antibiótico Atual"), atuais...)
	}
	if len(previos) > 0 {
		if len(corpo) > 0 {
			corpo = append(corpo, "")
		}
		corpo = append(append(corpo, "# Antibiótico Prévio"), previos...)
	}
	return corpo
}
