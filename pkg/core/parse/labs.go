// Package parse holds the deterministic text parsers for pasted lab
// panels, vital-sign controls and systems-review blocks. Each parser
// returns a flat partial mapping meant for record.Note.ApplyPartial, so
// parsed values never overwrite fields already filled by hand.
package parse

import (
	"fmt"
	"regexp"
	"strings"
	"time"

	"prontuario/pkg/core/textutil"
)

// Keywords that route a lab line to slot 4 (admission / external panels).
var externalKeywords = map[string]bool{
	"admissão": true, "admissao": true, "adm": true,
	"admissionais": true, "admissional": true,
	"externo": true, "externos": true, "externa": true, "externas": true,
}

// Lab acronyms, longest first so "Prot Tot" wins over "Prot" and
// "CPK-MB" over "CPK".
var labAcronyms = []struct{ sigla, campo string }{
	{"Prot Tot", "prot_tot"}, {"CPK-MB", "cpk_mb"}, {"Leu Est", "ur_le"},
	{"Hb", "hb"}, {"Ht", "ht"}, {"VCM", "vcm"}, {"HCM", "hcm"}, {"RDW", "rdw"},
	{"Leuco", "leuco"}, {"Plaq", "plaq"}, {"Cr", "cr"}, {"Ur", "ur"},
	{"Na", "na"}, {"K", "k"}, {"Mg", "mg"}, {"Pi", "pi"}, {"CaT", "cat"}, {"Cai", "cai"},
	{"TGP", "tgp"}, {"TGO", "tgo"}, {"FAL", "fal"}, {"GGT", "ggt"},
	{"BT", "bt"}, {"BD", "bd"}, {"Alb", "alb"}, {"Amil", "amil"}, {"Lipas", "lipas"},
	{"CPK", "cpk"}, {"BNP", "bnp"}, {"Trop", "trop"}, {"PCR", "pcr"}, {"VHS", "vhs"},
	{"TP", "tp"}, {"TTPa", "ttpa"},
}

var urnKeys = []struct{ chave, campo string }{
	{"Leu Est", "ur_le"}, {"Den", "ur_dens"}, {"Nit", "ur_nit"},
	{"Leuco", "ur_leu"}, {"Hm", "ur_hm"}, {"Prot", "ur_prot"},
	{"Cet", "ur_cet"}, {"Glic", "ur_glic"},
}

var (
	labLinePat = regexp.MustCompile(`^([^\s–\-]+(?:\s+[^\s–\-]+)?)\s*[–\-]\s*(.*)$`)
	btBDPat    = regexp.MustCompile(`^([^(]+)\s*\(([^)]+)\)\s*$`)
	urnSplit   = regexp.MustCompile(`\s*/\s*`)
)

// acronymValue extracts (campo, valor) pairs from a token like "Hb 8,8".
// "BT 1,0 (0,3)" yields both bt and bd.
func acronymValue(token string) [][2]string {
	token = strings.TrimSpace(token)
	if token == "" {
		return nil
	}
	for _, a := range labAcronyms {
		if !strings.HasPrefix(token, a.sigla+" ") {
			continue
		}
		valor := strings.TrimSpace(token[len(a.sigla):])
		if valor == "" {
			return nil
		}
		if a.campo == "bt" && strings.Contains(valor, "(") && strings.Contains(valor, ")") {
			if m := btBDPat.FindStringSubmatch(valor); m != nil {
				return [][2]string{
					{"bt", strings.TrimSpace(m[1])},
					{"bd", strings.TrimSpace(m[2])},
				}
			}
		}
		return [][2]string{{a.campo, valor}}
	}
	return nil
}

// parseUrn reads "Den: 1.010 / Leu Est: Neg / Leuco 1.000.000 / ..."
// (colon optional after the key).
func parseUrn(resto string) map[string]string {
	out := map[string]string{}
	for _, p := range urnSplit.Split(resto, -1) {
		p = strings.TrimSpace(p)
		for _, u := range urnKeys {
			if !strings.HasPrefix(p, u.chave) {
				continue
			}
			suf := strings.TrimSpace(p[len(u.chave):])
			if strings.HasPrefix(suf, ":") {
				suf = strings.TrimSpace(strings.TrimLeft(suf, ": "))
			}
			if suf != "" {
				out[u.campo] = suf
			}
			break
		}
	}
	return out
}

// labSlot maps an exam date to its day slot: 1 today, 2 yesterday, 3 two
// days ago, 4 the external panel (3-4 days back, or future dates), then
// one slot per day up to 10.
func labSlot(exam, today time.Time) int {
	delta := daysApart(today, exam)
	switch {
	case delta == 0:
		return 1
	case delta == 1:
		return 2
	case delta == 2:
		return 3
	case delta == 3 || delta == 4:
		return 4
	case delta >= 5:
		slot := 4 + (delta - 4)
		if slot > 10 {
			return 10
		}
		return slot
	}
	return 4
}

func daysApart(a, b time.Time) int {
	am := time.Date(a.Year(), a.Month(), a.Day(), 0, 0, 0, 0, time.UTC)
	bm := time.Date(b.Year(), b.Month(), b.Day(), 0, 0, 0, 0, time.UTC)
	return int(am.Sub(bm).Hours() / 24)
}

// labValues splits a "|"-joined values line into lab_{slot}_{campo} keys.
func labValues(resultado map[string]string, slot int, resto string) {
	for _, tok := range strings.Split(resto, "|") {
		tok = strings.TrimSpace(tok)
		if tok == "" {
			continue
		}
		if strings.HasPrefix(tok, "Urn:") {
			for campo, valor := range parseUrn(strings.TrimSpace(tok[len("Urn:"):])) {
				resultado[fmt.Sprintf("lab_%d_%s", slot, campo)] = valor
			}
			continue
		}
		for _, par := range acronymValue(tok) {
			resultado[fmt.Sprintf("lab_%d_%s", slot, par[0])] = par[1]
		}
	}
}

// Labs parses a pasted panel of standardized lab lines into
// lab_{slot}_{campo} keys. Two shapes are accepted: one-line entries
// ("DD/MM/YYYY – Hb 8,8 | Ht 27% | ... | Urn: Den: 1.010 / ...") and the
// rendered block shape, a "> DD/MM/YYYY" header with the values on the
// following lines, so a generated labs section parses back into the same
// slots. today anchors the date-to-slot binning; a prefix that is an
// admission/external keyword goes to slot 4 with the keyword kept as the
// slot date text. Unparseable lines are skipped.
func Labs(texto string, today time.Time) map[string]string {
	resultado := map[string]string{}

	slotFor := func(prefix string) int {
		first := strings.ToLower(strings.Fields(prefix)[0])
		if externalKeywords[first] {
			return 4
		}
		exam, ok := textutil.ParseDateBR(prefix)
		if !ok {
			return 0
		}
		return labSlot(exam, today)
	}

	bloco := 0
	for _, ln := range strings.Split(texto, "\n") {
		ln = strings.TrimSpace(ln)
		if ln == "" {
			continue
		}

		// A section header ends any open block.
		if strings.HasPrefix(ln, "#") {
			bloco = 0
			continue
		}

		// "> DD/MM/YYYY" opens a block; its values come on the next lines.
		if strings.HasPrefix(ln, ">") {
			prefix := strings.TrimSpace(strings.TrimLeft(ln, "> "))
			if prefix == "" {
				continue
			}
			if slot := slotFor(prefix); slot != 0 {
				bloco = slot
				resultado[fmt.Sprintf("lab_%d_data", bloco)] = prefix
			}
			continue
		}

		if m := labLinePat.FindStringSubmatch(ln); m != nil {
			prefix := strings.TrimSpace(m[1])
			slot := slotFor(prefix)
			if slot == 0 {
				continue
			}
			resultado[fmt.Sprintf("lab_%d_data", slot)] = prefix
			labValues(resultado, slot, strings.TrimSpace(m[2]))
			continue
		}

		if bloco != 0 {
			labValues(resultado, bloco, ln)
		}
	}
	return resultado
}
