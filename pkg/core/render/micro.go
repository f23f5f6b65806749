package render

import (
	"fmt"

	"prontuario/pkg/core/record"
	"prontuario/pkg/core/textutil"
)

// Cultures renders the culture results grouped into positive, pending and
// negative sub-sections. A pending culture with no result date carries the
// "Parcialmente negativa" marker.
func Cultures(n *record.Note) []string {
	type item struct{ linha, detalhe string }
	var positivas, andamento, negativas []item

	for _, id := range n.Order("cult_ordem") {
		sitio := get(n, fmt.Sprintf("cult_%d_sitio", id))
		if sitio == "" {
			continue
		}
		status := choice(n, fmt.Sprintf("cult_%d_status", id))
		dataColeta := get(n, fmt.Sprintf("cult_%d_data_coleta", id))
		dataResultado := get(n, fmt.Sprintf("cult_%d_data_resultado", id))
		micro := get(n, fmt.Sprintf("cult_%d_micro", id))
		sensib := get(n, fmt.Sprintf("cult_%d_sensib", id))

		partes := []string{sitio}
		if dataColeta != "" {
			partes = append(partes, "coletada "+dataColeta)
		}
		if dataResultado != "" {
			partes = append(partes, "resultado "+dataResultado)
		}
		principal := joinSemi(partes)

		switch status {
		case "Positivo com Antibiograma", "Positivo aguarda isolamento":
			var detalhe []string
			if micro != "" {
				detalhe = append(detalhe, micro)
			}
			if status == "Positivo com Antibiograma" && sensib != "" {
				detalhe = append(detalhe, sensib)
			} else if status == "Positivo aguarda isolamento" {
				detalhe = append(detalhe, "aguarda isolamento")
			}
			it := item{linha: principal}
			if len(detalhe) > 0 {
				it.detalhe = "> " + joinSemi(detalhe)
			}
			positivas = append(positivas, it)
		case "Pendente negativo":
			if dataResultado == "" {
				partes = append(partes, "Parcialmente negativa")
			}
			andamento = append(andamento, item{linha: joinSemi(partes)})
		case "Negativo":
			negativas = append(negativas, item{linha: principal})
		}
	}

	if len(positivas)+len(andamento)+len(negativas) == 0 {
		return nil
	}

	var corpo []string
	grupo := func(titulo string, itens []item) {
		if len(itens) == 0 {
			return
		}
		if len(corpo) > 0 {
			corpo = append(corpo, "")
		}
		corpo = append(corpo, titulo)
		for i, it := range itens {
			corpo = append(corpo, fmt.Sprintf("%d- %s", i+1, it.linha))
			if it.detalhe != "" {
				corpo = append(corpo, it.detalhe)
			}
		}
	}
	grupo("# Culturas Positivas", positivas)
	grupo("# Culturas em Andamento", andamento)
	grupo("# Culturas Negativas", negativas)
	return corpo
}

// Devices renders the invasive devices grouped into current and removed.
// Short device names render as upper-case acronyms (CVC, SVD, TOT).
func Devices(n *record.Note) []string {
	var ativos, retirados []string

	for _, id := range n.Order("disp_ordem") {
		nome := textutil.SiglaUpper(get(n, fmt.Sprintf("disp_%d_nome", id)))
		if nome == "" {
			continue
		}
		partes := []string{nome}
		if local := get(n, fmt.Sprintf("disp_%d_local", id)); local != "" {
			partes = append(partes, local)
		}
		dataIns := get(n, fmt.Sprintf("disp_%d_data_insercao", id))
		dataRet := get(n, fmt.Sprintf("disp_%d_data_retirada", id))

		if n.ChoiceIs(fmt.Sprintf("disp_%d_status", id), record.StatusRemovido) {
			datas := dataIns
			if dataIns != "" && dataRet != "" {
				datas = dataIns + " - " + dataRet
			} else if dataRet != "" {
				datas = dataRet
			}
			if datas != "" {
				partes = append(partes, datas)
			}
			retirados = append(retirados, joinSemi(partes))
		} else {
			if dataIns != "" {
				partes = append(partes, dataIns+" - Atual")
			} else {
				partes = append(partes, "Atual")
			}
			ativos = append(ativos, joinSemi(partes))
		}
	}

	if len(ativos)+len(retirados) == 0 {
		return nil
	}

	var corpo []string
	if len(ativos) > 0 {
		corpo = append(corpo, "# Dispositivos Atuais")
		for i, linha := range ativos {
			corpo = append(corpo, fmt.Sprintf("%d- %s", i+1, linha))
		}
	}
	if len(retirados) > 0 {
		if len(corpo) > 0 {
			corpo = append(corpo, "")
		}
		corpo = append(corpo, "# Dispositivos Prévios")
		for i, linha := range retirados {
			corpo = append(corpo, fmt.Sprintf("%d- %s", i+1, linha))
		}
	}
	return corpo
}
