package parse

import (
	"fmt"
	"regexp"
	"strings"
	"time"

	"prontuario/pkg/core/textutil"
)

var (
	periodPat    = regexp.MustCompile(`(?i)#\s*Controles\s*[-–]\s*(\d+)\s*horas`)
	blockDatePat = regexp.MustCompile(`(?m)^\s*>\s*\d{1,2}/\d{1,2}/\d{2,4}`)
	dateLinePat  = regexp.MustCompile(`^>\s*(\d{1,2}/\d{1,2}/\d{2,4})\s*$`)
	minMaxPat    = regexp.MustCompile(`^([\d.,+\-]+)\s*[-–]\s*([\d.,+\-]+)`)
	balancePat   = regexp.MustCompile(`(?i)Balanço Hídrico Total:\s*([^|]+)`)
	diuresePat   = regexp.MustCompile(`(?i)Diurese:\s*([^|]+)`)
)

var vitalsMap = []struct{ sigla, campo string }{
	{"PAS", "pas"}, {"PAD", "pad"}, {"PAM", "pam"},
	{"FC", "fc"}, {"FR", "fr"}, {"SatO2", "sato2"},
	{"Temp", "temp"}, {"Dextro", "glic"}, {"Glic", "glic"},
}

// controlDay maps a block date to hoje/ontem/anteontem. Anything older is
// dropped.
func controlDay(exam, today time.Time) string {
	switch daysApart(today, exam) {
	case 0:
		return "hoje"
	case 1:
		return "ontem"
	case 2:
		return "anteontem"
	}
	return ""
}

// minMax extracts the range from "PAS: 110 - 135 mmHg" for the given
// acronym.
func minMax(token, sigla string) (string, string, bool) {
	lower := strings.ToLower(strings.TrimSpace(token))
	if !strings.HasPrefix(lower, strings.ToLower(sigla)+":") {
		return "", "", false
	}
	resto := strings.TrimSpace(token[len(sigla)+1:])
	if m := minMaxPat.FindStringSubmatch(resto); m != nil {
		return strings.TrimSpace(m[1]), strings.TrimSpace(m[2]), true
	}
	return "", "", false
}

// Controls parses a pasted controls report:
//
//	# Controles - 24 horas
//	> 28/02/2026
//	PAS: 110 - 135 mmHg | PAD: 70 - 85 mmHg | ...
//	Balanço Hídrico Total: +420ml | Diurese: 1450ml
//
// into ctrl_{dia}_* keys anchored on today.
func Controls(texto string, today time.Time) map[string]string {
	resultado := map[string]string{}

	if m := periodPat.FindStringSubmatch(texto); m != nil {
		resultado["ctrl_periodo"] = m[1] + " horas"
	}

	// Split into blocks at each "> DD/MM/YYYY" line.
	idxs := blockDatePat.FindAllStringIndex(texto, -1)
	var blocos []string
	for i, loc := range idxs {
		end := len(texto)
		if i+1 < len(idxs) {
			end = idxs[i+1][0]
		}
		blocos = append(blocos, texto[loc[0]:end])
	}

	for _, bloco := range blocos {
		bloco = strings.TrimSpace(bloco)
		if bloco == "" {
			continue
		}
		linhas := strings.Split(bloco, "\n")
		m := dateLinePat.FindStringSubmatch(strings.TrimSpace(linhas[0]))
		if m == nil {
			continue
		}
		dataStr := m[1]
		exam, ok := textutil.ParseDateBR(dataStr)
		if !ok {
			continue
		}
		dia := controlDay(exam, today)
		if dia == "" {
			continue
		}
		resultado[fmt.Sprintf("ctrl_%s_data", dia)] = dataStr

		var vitaisLinha, balancoLinha string
		for _, ln := range linhas[1:] {
			ln = strings.TrimSpace(ln)
			switch {
			case ln == "":
			case strings.Contains(ln, "Balanço Hídrico Total"):
				balancoLinha = ln
			case strings.Contains(ln, "PAS:") || strings.Contains(ln, "PAD:"):
				vitaisLinha = ln
			}
		}

		for _, tok := range strings.Split(vitaisLinha, "|") {
			tok = strings.TrimSpace(tok)
			if tok == "" {
				continue
			}
			for _, v := range vitalsMap {
				if vmin, vmax, ok := minMax(tok, v.sigla); ok {
					resultado[fmt.Sprintf("ctrl_%s_%s_min", dia, v.campo)] = vmin
					resultado[fmt.Sprintf("ctrl_%s_%s_max", dia, v.campo)] = vmax
					break
				}
			}
		}

		if balancoLinha != "" {
			if m := balancePat.FindStringSubmatch(balancoLinha); m != nil {
				resultado[fmt.Sprintf("ctrl_%s_balanco", dia)] = strings.TrimSpace(m[1])
			}
			if m := diuresePat.FindStringSubmatch(balancoLinha); m != nil {
				resultado[fmt.Sprintf("ctrl_%s_diurese", dia)] = strings.TrimSpace(m[1])
			}
		}
	}
	return resultado
}
