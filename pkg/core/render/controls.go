package render

import (
	"fmt"
	"strings"

	"prontuario/pkg/core/record"
)

var vitalParams = []struct{ label, key string }{
	{"PAS", "pas"}, {"PAD", "pad"}, {"PAM", "pam"},
	{"FC", "fc"}, {"FR", "fr"}, {"SatO2", "sato2"},
	{"Temp", "temp"}, {"Dextro", "glic"},
}

// Controls renders "# Controles & Balanço Hídrico", today's block on top.
// A 12-hour reporting period gets the ">> 12 horas <<" banner under the
// header. The date quote uses no space after ">", unlike the labs format.
func Controls(n *record.Note) []string {
	dayLines := func(dia string) []string {
		data := gets(n, fmt.Sprintf("ctrl_%s_data", dia))
		var vitais []string
		for _, p := range vitalParams {
			vmin := gets(n, fmt.Sprintf("ctrl_%s_%s_min", dia, p.key))
			vmax := gets(n, fmt.Sprintf("ctrl_%s_%s_max", dia, p.key))
			switch {
			case vmin != "" && vmax != "":
				vitais = append(vitais, fmt.Sprintf("%s %s-%s", p.label, vmin, vmax))
			case vmin != "":
				vitais = append(vitais, p.label+" "+vmin)
			}
		}
		diurese := gets(n, fmt.Sprintf("ctrl_%s_diurese", dia))
		balanco := gets(n, fmt.Sprintf("ctrl_%s_balanco", dia))

		if data == "" && len(vitais) == 0 && diurese == "" && balanco == "" {
			return nil
		}
		var linhas []string
		if data != "" {
			linhas = append(linhas, ">"+data)
		}
		if len(vitais) > 0 {
			linhas = append(linhas, strings.Join(vitais, " | "))
		}
		var bh []string
		if diurese != "" {
			bh = append(bh, "Diurese "+diurese)
		}
		if balanco != "" {
			bh = append(bh, "BH "+balanco)
		}
		if len(bh) > 0 {
			linhas = append(linhas, strings.Join(bh, " | "))
		}
		return linhas
	}

	var slots [][]string
	for _, dia := range []string{"hoje", "ontem", "anteontem"} {
		if linhas := dayLines(dia); len(linhas) > 0 {
			slots = append(slots, linhas)
		}
	}
	if len(slots) == 0 {
		return nil
	}

	corpo := []string{"# Controles & Balanço Hídrico"}
	if gets(n, "ctrl_periodo") == "12 horas" {
		corpo = append(corpo, ">> 12 horas <<", "")
	}
	for _, slot := range slots {
		corpo = append(corpo, slot...)
	}
	return corpo
}
