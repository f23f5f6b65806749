package render

import (
	"fmt"
	"strconv"
	"strings"

	"prontuario/pkg/core/record"
)

// Identification renders "# Identificação & Scores". Empty fields drop
// their lines; the header only appears when at least one line remains.
// The department banner, when set, precedes the section header in caps.
func Identification(n *record.Note) []string {
	var body []string

	nome := get(n, "nome")
	idade := gets(n, "idade")
	sexo := get(n, "sexo")
	if nome != "" {
		linha := "Nome: " + nome
		if idade != "" && idade != "0" {
			linha += fmt.Sprintf(", %s anos", idade)
		}
		if sexo != "" {
			linha += ", " + sexo
		}
		body = append(body, linha)
	}

	var id []string
	id = appendIf(id, "Prontuário: "+get(n, "prontuario"), get(n, "prontuario") != "")
	id = appendIf(id, "Leito: "+get(n, "leito"), get(n, "leito") != "")
	if len(id) > 0 {
		body = append(body, strings.Join(id, " | "))
	}

	for _, f := range []struct{ label, key string }{
		{"Origem", "origem"},
		{"Equipe Titular", "equipe"},
		{"Interconsultora", "interconsultora"},
		{"Data Internação Hospitalar", "di_hosp"},
		{"Data Internação UTI", "di_uti"},
		{"Data Internação Enfermaria", "di_enf"},
		{"SAPS 3", "saps3"},
	} {
		if v := get(n, f.key); v != "" {
			body = append(body, f.label+": "+v)
		}
	}

	if sofa, err := strconv.Atoi(gets(n, "sofa_adm")); err == nil && sofa > 0 {
		body = append(body, fmt.Sprintf("SOFA admissão: %d", sofa))
	}

	for _, f := range []struct{ label, key string }{
		{"PPS", "pps"},
		{"mRS prévio", "mrs"},
		{"CFS", "cfs"},
	} {
		if v := get(n, f.key); v != "" {
			body = append(body, f.label+": "+v)
		}
	}

	if n.Flag("paliativo") {
		body = append(body, "PACIENTE EM CUIDADOS PROPORCIONAIS")
	}

	if len(body) == 0 {
		return nil
	}

	var header []string
	if dept := gets(n, "departamento"); dept != "" {
		header = []string{"# " + strings.ToUpper(dept) + " #", ""}
	}
	return append(append(header, "# Identificação & Scores"), body...)
}
