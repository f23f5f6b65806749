package render

import (
	"fmt"
	"strings"

	"prontuario/pkg/core/record"
)

type labField struct{ label, key string }

// mainFields is the fixed order of the per-slot main line. The BT entry
// is handled apart so bilirubin renders as "BT x (BD y)".
var mainFields = []labField{
	{"Hb", "hb"}, {"Ht", "ht"}, {"VCM", "vcm"},
	{"HCM", "hcm"}, {"RDW", "rdw"}, {"Leuco", "leuco"},
	{"Plaq", "plaq"}, {"Cr", "cr"}, {"Ur", "ur"},
	{"Na", "na"}, {"K", "k"}, {"Mg", "mg"},
	{"Pi", "pi"}, {"CaT", "cat"}, {"CaI", "cai"},
	{"TGO", "tgo"}, {"TGP", "tgp"}, {"FAL", "fal"},
	{"GGT", "ggt"}, {"BT", "__bt_bd__"}, {"Prot Tot", "prot_tot"}, {"Amil", "amil"},
	{"Lipas", "lipas"}, {"Alb", "alb"}, {"CPK", "cpk"}, {"CPK-MB", "cpk_mb"},
	{"BNP", "bnp"}, {"Trop", "trop"}, {"PCR", "pcr"},
	{"VHS", "vhs"}, {"Lac", "gas_lac"}, {"TP", "tp"},
	{"TTPa", "ttpa"},
}

var gasFields = []labField{
	{"pH", "gas_ph"}, {"pCO2", "gas_pco2"}, {"Bic", "gas_hco3"},
	{"BE", "gas_be"}, {"Cl", "gas_cl"}, {"AG", "gas_ag"},
	{"pO2", "gas_po2"}, {"SatO2", "gas_sat"}, {"Na", "gas_na"},
	{"K", "gas_k"}, {"CaI", "gas_cai"}, {"Lac", "gas_lac"},
}

var easFields = []labField{
	{"Den", "ur_dens"}, {"Leu Est", "ur_le"}, {"Nit", "ur_nit"},
	{"Leuco", "ur_leu"}, {"Hm", "ur_hm"}, {"Prot", "ur_prot"},
	{"Cet", "ur_cet"}, {"Glic", "ur_glic"},
}

// Labs renders "# Laboratoriais": one block per non-empty day slot, newest
// first, with the date quote line, the main panel joined by " | ", the
// free "outros" line, the blood gas line and the urinalysis line.
func Labs(n *record.Note) []string {
	val := func(i int, campo string) string {
		return gets(n, fmt.Sprintf("lab_%d_%s", i, campo))
	}

	var slots [][]string
	for i := 1; i <= 10; i++ {
		data := val(i, "data")
		outros := val(i, "outros")

		var mainParts []string
		for _, f := range mainFields {
			if f.key == "__bt_bd__" {
				bt, bd := val(i, "bt"), val(i, "bd")
				if bt != "" {
					if bd != "" {
						mainParts = append(mainParts, fmt.Sprintf("BT %s (BD %s)", bt, bd))
					} else {
						mainParts = append(mainParts, "BT "+bt)
					}
				}
				continue
			}
			if v := val(i, f.key); v != "" {
				mainParts = append(mainParts, f.label+" "+v)
			}
		}

		var gasParts []string
		for _, f := range gasFields {
			if v := val(i, f.key); v != "" {
				gasParts = append(gasParts, f.label+" "+v)
			}
		}
		var perfParts []string
		if v := val(i, "gasv_pco2"); v != "" {
			perfParts = append(perfParts, "pCO2 "+v)
		}
		if v := val(i, "svo2"); v != "" {
			perfParts = append(perfParts, "SvO2 "+v)
		}
		var easParts []string
		for _, f := range easFields {
			if v := val(i, f.key); v != "" {
				easParts = append(easParts, f.label+": "+v)
			}
		}

		if data == "" && len(mainParts) == 0 && outros == "" &&
			len(gasParts) == 0 && len(perfParts) == 0 && len(easParts) == 0 {
			continue
		}

		var linhas []string
		if data != "" {
			linhas = append(linhas, "> "+data)
		}
		if len(mainParts) > 0 {
			linhas = append(linhas, strings.Join(mainParts, " | "))
		}
		if outros != "" {
			linhas = append(linhas, outros)
		}
		if len(gasParts) > 0 {
			prefixo := "Gaso"
			switch choice(n, fmt.Sprintf("lab_%d_gas_tipo", i)) {
			case "Arterial":
				prefixo = "Gas Art"
			case "Venosa":
				prefixo = "Gas Ven"
			}
			linhas = append(linhas, prefixo+" - "+strings.Join(gasParts, " / "))
		}
		if len(perfParts) > 0 {
			linhas = append(linhas, "Gas Ven - "+strings.Join(perfParts, " / "))
		}
		if len(easParts) > 0 {
			linhas = append(linhas, "Urn: "+strings.Join(easParts, " / "))
		}
		slots = append(slots, linhas)
	}

	if len(slots) == 0 {
		return nil
	}
	corpo := []string{"# Laboratoriais"}
	for _, slot := range slots {
		corpo = append(corpo, slot...)
	}
	return corpo
}
