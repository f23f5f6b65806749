package prompt

import (
	"fmt"
	"strings"
)

// Prompt IDs for the section extraction agents. The evolution section is a
// free-text passthrough and has no prompt.
var IDs = struct {
	Identificacao  string
	HD             string
	Comorbidades   string
	MUC            string
	HMPA           string
	Dispositivos   string
	Culturas       string
	Antibioticos   string
	Complementares string
	Laboratoriais  string
	Controles      string
	Sistemas       string
}{
	Identificacao:  "section.identificacao",
	HD:             "section.hd",
	Comorbidades:   "section.comorbidades",
	MUC:            "section.muc",
	HMPA:           "rewrite.hmpa",
	Dispositivos:   "section.dispositivos",
	Culturas:       "section.culturas",
	Antibioticos:   "section.antibioticos",
	Complementares: "section.complementares",
	Laboratoriais:  "section.laboratoriais",
	Controles:      "section.controles",
	Sistemas:       "section.sistemas",
}

// ExtractionPrefix precedes the pasted note text in the user message.
const ExtractionPrefix = "TEXTO DA SEÇÃO:\n\n"

// RegisterDefaults loads the built-in section prompts into the global
// registry. Call before LoadFromDirectory so resources files can override.
func RegisterDefaults() {
	r := Get()
	for _, pt := range defaults() {
		r.Register(pt)
	}
}

func defaults() []*PromptTemplate {
	extraction := func(id, name, body string) *PromptTemplate {
		return &PromptTemplate{
			ID:           id,
			Name:         name,
			Category:     "section",
			SystemPrompt: body,
			UserPrefix:   ExtractionPrefix,
			JSONReply:    true,
			Version:      "1",
		}
	}

	return []*PromptTemplate{
		extraction(IDs.Identificacao, "Identificação & Scores", identificacaoPrompt()),
		extraction(IDs.HD, "Diagnósticos", hdPrompt()),
		extraction(IDs.Comorbidades, "Comorbidades", comorbidadesPrompt()),
		extraction(IDs.MUC, "Medicações de Uso Contínuo", mucPrompt()),
		{
			ID:           IDs.HMPA,
			Name:         "Reescrita da HMPA",
			Category:     "rewrite",
			SystemPrompt: hmpaPrompt,
			UserPrefix:   "Texto Original:\n\n",
			Version:      "1",
		},
		extraction(IDs.Dispositivos, "Dispositivos Invasivos", dispositivosPrompt()),
		extraction(IDs.Culturas, "Culturas", culturasPrompt()),
		extraction(IDs.Antibioticos, "Antibióticos", antibioticosPrompt()),
		extraction(IDs.Complementares, "Exames Complementares", complementaresPrompt()),
		extraction(IDs.Laboratoriais, "Exames Laboratoriais", laboratoriaisPrompt()),
		extraction(IDs.Controles, "Controles & Balanço Hídrico", controlesPrompt()),
		extraction(IDs.Sistemas, "Evolução por Sistemas", sistemasPrompt()),
	}
}

// header assembles the shared CONTEXTO/OBJETIVO/REGRAS scaffold of the
// extraction prompts.
func header(objetivo string, regras ...string) string {
	var b strings.Builder
	b.WriteString("# CONTEXTO\n")
	b.WriteString("Você é um extrator estruturado de dados médicos para prontuário hospitalar em Terapia Intensiva.\n\n")
	b.WriteString("# OBJETIVO\n")
	b.WriteString(objetivo)
	b.WriteString("\n\n# REGRAS DE EXTRAÇÃO\n")
	for i, regra := range regras {
		fmt.Fprintf(&b, "%d. %s\n", i+1, regra)
	}
	b.WriteString("5. A saída final deve ser EXCLUSIVAMENTE um objeto JSON válido, sem blocos de código markdown ao redor.\n")
	return b.String()
}

const regraOrdem = "ORDEM DE LEITURA: preencha o JSON na exata ordem das chaves solicitadas e liste os itens na mesma ordem em que aparecem no texto fonte."
const regraVazio = "PREENCHIMENTO VAZIO: se a informação não constar explicitamente ou houver menos itens que slots, retorne estritamente \"\" (string vazia). Não use null."
const regraInferir = "NÃO inferir, NÃO criar itens não mencionados, NÃO preencher condutas."
const regraConduta = "CONDUTAS E NOTAS: os campos _conduta e _notas são de entrada manual do médico. Preencha-os SEMPRE com \"\"."

// vars wraps generated key lines in the VARIAVEIS tag.
func vars(lines ...string) string {
	return "\n<VARIAVEIS>\nExtraia exatamente as seguintes chaves JSON, nesta exata ordem:\n\n" +
		strings.Join(lines, "\n") + "\n</VARIAVEIS>"
}

// slots expands a numbered key range into one description line per slot.
// format uses %[1]d for the slot number.
func slots(format string, from, to int) string {
	var b strings.Builder
	for i := from; i <= to; i++ {
		fmt.Fprintf(&b, format+"\n", i)
	}
	return strings.TrimRight(b.String(), "\n")
}

func line(key, typ, desc string) string {
	return fmt.Sprintf("- %s (%s): %s", key, typ, desc)
}

func identificacaoPrompt() string {
	return header(
		"Ler o texto fornecido e extrair as respostas exatas para as informações solicitadas na tag <VARIAVEIS>.",
		"Responda de forma direta, concisa e objetiva.",
		"Se a informação não constar explicitamente no texto, retorne estritamente o valor null no JSON.",
		"Para perguntas de Sim ou Não, use booleanos: true para Sim e false para Não; null se não encontrado.",
		"Não faça presunções ou deduções além do que está escrito no texto.",
	) + vars(
		line("nome", "string", "Nome completo do paciente."),
		line("idade", "number", "Idade em anos, apenas o inteiro (ex: 65)."),
		line("sexo", "string", "EXATAMENTE \"Masculino\" ou \"Feminino\", mapeando abreviações (M/Masc, F/Fem)."),
		line("prontuario", "string", "Número do prontuário ou registro hospitalar, apenas o número."),
		line("leito", "string", "Número ou identificação do leito (ex: \"206A\", \"UTI-05\")."),
		line("origem", "string", "Procedência antes da internação atual (ex: \"PS\", \"UPA\", \"CC\")."),
		line("equipe", "string", "Equipe médica responsável (ex: \"Clínica Médica\")."),
		line("di_hosp", "string", "Data de internação hospitalar, formato original do texto."),
		line("di_uti", "string", "Data de entrada na UTI, formato original."),
		line("di_enf", "string", "Data de entrada na enfermaria, formato original."),
		line("saps3", "number", "Escore SAPS 3, apenas o inteiro."),
		line("sofa_adm", "number", "Escore SOFA na admissão, apenas o inteiro."),
		line("sofa_atual", "number", "Escore SOFA atual, apenas o inteiro."),
		line("mrs", "string", "Escala de Rankin Modificada, apenas o número como string."),
		line("pps", "string", "Palliative Performance Scale (ex: \"80%\")."),
		line("cfs", "string", "Clinical Frailty Scale (ex: \"3\")."),
		line("paliativo", "boolean", "Cuidados paliativos/conforto/sem medidas de ressuscitação: true se explícito, false se negado, null se não mencionado."),
	)
}

func hdPrompt() string {
	return header(
		"Extrair as hipóteses diagnósticas (Atuais e Resolvidas), respeitando rigorosamente a ordem em que aparecem no texto original.",
		regraOrdem,
		regraVazio,
		"NÃO invente diagnósticos ou datas. Cuidado com siglas ambíguas (ex: \"IRA\"): analise o contexto clínico antes de expandir.",
		"Nomes em Title Case, sem siglas. Observações sem condutas.",
	) + vars(
		"# DIAGNÓSTICOS ATUAIS",
		slots("- diag_atual_%[1]d_nome (string): Nome do %[1]dº diagnóstico atual citado.", 1, 4),
		slots("- diag_atual_%[1]d_class (string): Estadiamento/classificação do diagnóstico %[1]d (ex: KDIGO 3).", 1, 4),
		slots("- diag_atual_%[1]d_data (string): Data ou tempo de início do diagnóstico %[1]d.", 1, 4),
		slots("- diag_atual_%[1]d_obs (string): Resumo clínico objetivo da evolução do diagnóstico %[1]d, sem condutas.", 1, 4),
		"",
		"# DIAGNÓSTICOS RESOLVIDOS",
		slots("- diag_resolv_%[1]d_nome (string): Nome do %[1]dº evento passado citado.", 1, 4),
		slots("- diag_resolv_%[1]d_class (string): Estadiamento/classificação do resolvido %[1]d.", 1, 4),
		slots("- diag_resolv_%[1]d_data_inicio (string): Data de início do resolvido %[1]d.", 1, 4),
		slots("- diag_resolv_%[1]d_data_fim (string): Data de resolução do resolvido %[1]d.", 1, 4),
		slots("- diag_resolv_%[1]d_obs (string): Resumo clínico do resolvido %[1]d.", 1, 4),
	)
}

func comorbidadesPrompt() string {
	return header(
		"Extrair exclusivamente as comorbidades (doenças pré-existentes ao evento atual), na ordem em que aparecem no texto.",
		regraOrdem,
		regraVazio+" O limite é de 10 comorbidades.",
		regraInferir,
		"EXCLUSÕES: não considerar história familiar nem tabagismo isolado. Dúvida atual vs comorbidade: considerar apenas antecedentes explícitos.",
	) + vars(
		"# NOMES (expandir siglas: \"HAS\" → \"Hipertensão Arterial Sistêmica\". Title Case, sem datas)",
		slots("- comorbidade_%[1]d_nome (string): Nome da %[1]dª comorbidade citada.", 1, 10),
		"",
		"# CLASSIFICAÇÕES (estadiamento formal, ex: NYHA III, Child-Pugh B)",
		slots("- comorbidade_%[1]d_class (string): Estadiamento da %[1]dª comorbidade.", 1, 10),
	)
}

func mucPrompt() string {
	return header(
		"Extrair as medicações de uso domiciliar, na ordem em que aparecem no texto.",
		regraOrdem,
		regraVazio+" O limite é de 20 medicações.",
		regraInferir,
		"PADRONIZAÇÕES: NOME em DCI Title Case sem dose (\"AAS\" → \"Acido Acetilsalicilico\"); DOSE apenas valor+unidade (\"20mg\"); FREQUÊNCIA traduzindo a notação manhã-tarde-noite (\"1-0-0\" → \"1x ao dia\", \"1-1-1\" → \"1 comprimido a cada 8 horas\").",
	) + vars(
		line("adesao_global", "string", "Relato sobre a adesão ao tratamento domiciliar (ex: \"regular\", \"irregular\")."),
		"",
		slots("- med_dom_%[1]d_nome (string): Princípio ativo da %[1]dª medicação.", 1, 20),
		slots("- med_dom_%[1]d_dose (string): Dose da %[1]dª medicação.", 1, 20),
		slots("- med_dom_%[1]d_freq (string): Frequência da %[1]dª medicação.", 1, 20),
	)
}

func dispositivosPrompt() string {
	return header(
		"Extrair exclusivamente os dispositivos invasivos (inseridos com permanência para monitorização, terapia ou suporte: CVC, PICC, TOT, TQT, SVD, SNE, PAM, PIC, Cateter de Hemodiálise, Dreno Torácico).",
		regraOrdem+" NÃO reordene separando ativos de removidos.",
		regraVazio+" O limite é de 8 dispositivos.",
		"EXCLUSÕES: não incluir dispositivos de oxigênio não invasivos (cateter nasal, máscara, VNI) nem procedimentos sem permanência.",
		"PADRONIZAÇÕES: NOME apenas a sigla padronizada; LOCAL anatômico (ex: \"Jugular Direita\"); STATUS exatamente \"Ativo\" ou \"Removido\" (nunca vazio se o slot estiver em uso).",
	) + vars(
		slots("- disp_%[1]d_nome (string): Sigla do %[1]dº dispositivo.", 1, 8),
		slots("- disp_%[1]d_local (string): Local anatômico do %[1]dº dispositivo.", 1, 8),
		slots("- disp_%[1]d_data_in (string): Data de inserção do %[1]dº dispositivo, formato original.", 1, 8),
		slots("- disp_%[1]d_data_out (string): Data de retirada do %[1]dº dispositivo, apenas se explícita.", 1, 8),
		slots("- disp_%[1]d_status (string): Status do %[1]dº dispositivo (\"Ativo\" ou \"Removido\").", 1, 8),
	)
}

func culturasPrompt() string {
	return header(
		"Extrair exclusivamente as culturas microbiológicas (Hemocultura, Urocultura, Aspirado Traqueal, Swab, Lavado, Ponta de Cateter, Líquor). NÃO incluir PCR viral isolada, sorologias ou exames moleculares sem cultura.",
		regraOrdem+" NÃO reordene separando positivas de negativas.",
		regraVazio+" O limite é de 8 culturas.",
		"STATUS: classificar cada cultura usando EXATAMENTE uma destas opções: \"Positivo com Antibiograma\", \"Positivo aguarda isolamento\", \"Pendente negativo\", \"Negativo\".",
		"MICRO/SENSIBILIDADE devem ser \"\" se o status for negativo ou pendente. Os campos _conduta são SEMPRE \"\".",
	) + vars(
		slots("- cult_%[1]d_sitio (string): Sítio da %[1]dª cultura, Title Case.", 1, 8),
		slots("- cult_%[1]d_data_coleta (string): Data de coleta da %[1]dª cultura.", 1, 8),
		slots("- cult_%[1]d_data_resultado (string): Data do resultado da %[1]dª cultura, apenas se explícita.", 1, 8),
		slots("- cult_%[1]d_status (string): Status da %[1]dª cultura (uma das 4 opções).", 1, 8),
		slots("- cult_%[1]d_micro (string): Micro-organismo isolado na %[1]dª cultura.", 1, 8),
		slots("- cult_%[1]d_sensib (string): Perfil de sensibilidade da %[1]dª cultura.", 1, 8),
		slots("- cult_%[1]d_conduta (string): \"\".", 1, 8),
		"",
		line("culturas_notas", "string", "Observação geral relevante que não coube nos campos acima."),
	)
}

func antibioticosPrompt() string {
	return header(
		"Extrair os antimicrobianos Atuais (em uso, sem suspensão documentada) e Prévios (suspensos ou com término explícito), na ordem do texto.",
		regraOrdem,
		regraVazio+" O limite é de 5 atuais e 5 prévios.",
		regraConduta,
		"PADRONIZAÇÕES: NOME em DCI Title Case sem dose; FOCO em Title Case (ex: \"PAV\", \"ITU\"); TIPO exatamente \"Empírico\", \"Guiado por Cultura\" ou \"\"; DATAS no formato original. OBS apenas para prévios (motivo da suspensão).",
	) + vars(
		"# ATUAIS",
		slots("- atb_curr_%[1]d_nome (string): Nome do %[1]dº ATB atual.", 1, 5),
		slots("- atb_curr_%[1]d_foco (string): Foco do %[1]dº ATB atual.", 1, 5),
		slots("- atb_curr_%[1]d_tipo (string): Tipo do %[1]dº ATB atual.", 1, 5),
		slots("- atb_curr_%[1]d_data_ini (string): Data de início do %[1]dº ATB atual.", 1, 5),
		slots("- atb_curr_%[1]d_data_fim (string): Data fim programada do %[1]dº ATB atual, se houver.", 1, 5),
		"",
		"# PRÉVIOS",
		slots("- atb_prev_%[1]d_nome (string): Nome do %[1]dº ATB prévio.", 1, 5),
		slots("- atb_prev_%[1]d_foco (string): Foco do %[1]dº ATB prévio.", 1, 5),
		slots("- atb_prev_%[1]d_tipo (string): Tipo do %[1]dº ATB prévio.", 1, 5),
		slots("- atb_prev_%[1]d_data_ini (string): Data de início do %[1]dº ATB prévio.", 1, 5),
		slots("- atb_prev_%[1]d_data_fim (string): Data de término do %[1]dº ATB prévio.", 1, 5),
		slots("- atb_prev_%[1]d_obs (string): Motivo da suspensão do %[1]dº ATB prévio.", 1, 5),
	)
}

func complementaresPrompt() string {
	return header(
		"Extrair exclusivamente os Exames Complementares não laboratoriais com laudo (TC, RX, RNM, USG, Ecocardiograma, ECG, Endoscopia, Pareceres).",
		regraOrdem+" NÃO reordenar por data.",
		regraVazio+" O limite é de 8 exames.",
		regraConduta,
		"FILTRO DE LAUDO: ignore descrições de estruturas normais; extraia apenas achados relevantes, alterações e a conclusão principal. NOME completo em Title Case; DATA no formato original.",
	) + vars(
		slots("- comp_%[1]d_exame (string): Nome do %[1]dº exame citado.", 1, 8),
		slots("- comp_%[1]d_data (string): Data do %[1]dº exame.", 1, 8),
		slots("- comp_%[1]d_laudo (string): Alterações e conclusão do %[1]dº exame.", 1, 8),
	)
}

// labSuffixDescs orders the lab_{i} keys the way the form lays them out.
var labSuffixDescs = []struct{ suffix, desc string }{
	{"data", "Data do conjunto de exames."},
	{"hb", "Hemoglobina."}, {"ht", "Hematócrito."}, {"vcm", "VCM."}, {"hcm", "HCM."}, {"rdw", "RDW."},
	{"leuco", "Leucócitos, com diferencial se houver."}, {"plaq", "Plaquetas."},
	{"cr", "Creatinina."}, {"ur", "Ureia."}, {"na", "Sódio."}, {"k", "Potássio."},
	{"mg", "Magnésio."}, {"pi", "Fósforo."}, {"cat", "Cálcio Total."}, {"cai", "Cálcio Iônico sérico."},
	{"tgp", "TGP / ALT."}, {"tgo", "TGO / AST."}, {"fal", "Fosfatase Alcalina."}, {"ggt", "GGT."},
	{"bt", "Bilirrubina Total."}, {"bd", "Bilirrubina Direta."},
	{"prot_tot", "Proteínas Totais."}, {"alb", "Albumina."}, {"amil", "Amilase."}, {"lipas", "Lipase."},
	{"cpk", "CPK."}, {"cpk_mb", "CK-MB."}, {"bnp", "BNP / NT-proBNP."}, {"trop", "Troponina."},
	{"pcr", "PCR."}, {"vhs", "VHS."},
	{"tp", "Tempo de Protrombina, string literal (ex: \"14,2s (1,10)\")."},
	{"ttpa", "TTPa, string literal."},
	{"gas_tipo", "\"Arterial\", \"Venosa\" ou \"\"."},
	{"gas_ph", "pH da gasometria principal."}, {"gas_pco2", "pCO2."}, {"gas_po2", "pO2."},
	{"gas_hco3", "HCO3."}, {"gas_be", "Base Excess."}, {"gas_sat", "SatO2."}, {"gas_lac", "Lactato."},
	{"gas_ag", "Anion Gap."}, {"gas_cl", "Cloreto da gasometria."}, {"gas_na", "Sódio da gasometria."},
	{"gas_k", "Potássio da gasometria."}, {"gas_cai", "Cálcio Iônico da gasometria."},
	{"gasv_pco2", "pCO2 venoso, se gasometria mista."}, {"svo2", "SvO2, se gasometria mista."},
	{"ur_dens", "Urina - Densidade."}, {"ur_le", "Urina - Esterase Leucocitária."},
	{"ur_nit", "Urina - Nitrito."}, {"ur_leu", "Urina - Leucócitos."}, {"ur_hm", "Urina - Hemácias."},
	{"ur_prot", "Urina - Proteínas."}, {"ur_cet", "Urina - Cetonas."}, {"ur_glic", "Urina - Glicose."},
	{"outros", "Outros exames concatenados (\"Exame Valor | Exame Valor\")."},
	{"conduta", "\"\"."},
}

func laboratoriaisPrompt() string {
	var blocks []string
	for i := 1; i <= 3; i++ {
		var b strings.Builder
		fmt.Fprintf(&b, "# BLOCO LAB %d\n", i)
		for _, sd := range labSuffixDescs {
			fmt.Fprintf(&b, "- lab_%d_%s (string): %s\n", i, sd.suffix, sd.desc)
		}
		blocks = append(blocks, strings.TrimRight(b.String(), "\n"))
	}
	return header(
		"Extrair os valores laboratoriais e gasométricos em até três blocos: lab_1 é o conjunto mais recente pela data, lab_2 o imediatamente anterior, lab_3 o terceiro mais recente.",
		"ESTRUTURA PLANA: preencha o JSON sequencialmente, sem arrays.",
		regraVazio,
		"FIDELIDADE: mantenha o formato original das datas, não calcule médias, não reorganize valores entre datas. "+regraConduta,
		"MAPEAMENTO: Cálcio Iônico da gasometria vai em gas_cai, nunca em cat. \"BT 1,0 (0,3)\" separa bt=\"1,0\" e bd=\"0,3\". Gasometria mista (Art+Ven mesma data): gas_tipo=\"Arterial\", pCO2 venoso em gasv_pco2 e SvO2 em svo2, sem duplicar o lactato. Valores não mapeados (PTH, TSH) vão concatenados em outros.",
	) + vars(blocks...)
}

func controlesPrompt() string {
	dayBlock := func(dia, rotulo string) string {
		var b strings.Builder
		fmt.Fprintf(&b, "# BLOCO %s\n", rotulo)
		fmt.Fprintf(&b, "- ctrl_%s_data (string): Data do registro.\n", dia)
		for _, p := range []struct{ key, nome string }{
			{"pas", "Pressão Arterial Sistólica"}, {"pad", "Pressão Arterial Diastólica"},
			{"pam", "Pressão Arterial Média"}, {"fc", "Frequência Cardíaca"},
			{"fr", "Frequência Respiratória"}, {"sato2", "Saturação de O2"},
			{"temp", "Temperatura"}, {"glic", "Glicemia capilar"},
		} {
			fmt.Fprintf(&b, "- ctrl_%s_%s_min (string): %s mínima.\n", dia, p.key, p.nome)
			fmt.Fprintf(&b, "- ctrl_%s_%s_max (string): %s máxima.\n", dia, p.key, p.nome)
		}
		fmt.Fprintf(&b, "- ctrl_%s_diurese (string): Volume ou aspecto da diurese.\n", dia)
		fmt.Fprintf(&b, "- ctrl_%s_balanco (string): Valor do balanço hídrico.", dia)
		return b.String()
	}
	return header(
		"Extrair os Sinais Vitais, Glicemia, Diurese e Balanço Hídrico em até 3 dias: ctrl_hoje é o conjunto mais recente pela data, ctrl_ontem o anterior, ctrl_anteontem o anterior a ontem.",
		"ESTRUTURA PLANA: preencha o JSON sequencialmente, sem arrays. Nunca misture valores de datas diferentes; datas repetidas consolidam em um único dia.",
		regraVazio,
		"INTERVALOS: \"81-181\" → _min=\"81\" e _max=\"181\"; valor único isolado vai no _min com _max=\"\"; múltiplos valores soltos → menor no _min e maior no _max. Diurese/Balanço copiam o texto literal com unidade e sinal.",
		"PERÍODO: ctrl_periodo é \"24 horas\" por padrão; mude para \"12 horas\" APENAS se o texto disser explicitamente. "+regraConduta,
	) + vars(
		line("ctrl_periodo", "string", "\"24 horas\" (padrão) ou \"12 horas\"."),
		"",
		dayBlock("hoje", "HOJE (mais recente)"),
		"",
		dayBlock("ontem", "ONTEM"),
		"",
		dayBlock("anteontem", "ANTEONTEM"),
	)
}

func sistemasPrompt() string {
	return header(
		"Extrair os dados da Evolução por Sistemas, preenchendo o JSON de forma plana e sequencial por blocos de sistema.",
		"AUSÊNCIA ≠ NEGAÇÃO: presente no texto → extraia o valor; negado explicitamente (\"sem febre\") → \"Não\"; não mencionado → valor padrão (\"\", null para inteiros, false para booleanos).",
		"Campos Sim/Não: ausente = \"\"; negado = \"Não\"; confirmado = \"Sim\".",
		regraConduta,
		"POCUS: extraia achados de ultrassonografia à beira-leito mencionados em cada sistema.",
	) + vars(
		"# NEUROLÓGICO",
		line("sis_neuro_ecg", "string", "Escala de Coma de Glasgow total."),
		line("sis_neuro_ecg_ao", "string", "Glasgow - Abertura Ocular."),
		line("sis_neuro_ecg_rv", "string", "Glasgow - Resposta Verbal."),
		line("sis_neuro_ecg_rm", "string", "Glasgow - Resposta Motora."),
		line("sis_neuro_rass", "number", "RASS, inteiro -5 a +5, null se ausente."),
		line("sis_neuro_delirium", "string", "Delirium (Sim/Não/\"\")."),
		line("sis_neuro_delirium_tipo", "string", "Hiperativo/Hipoativo/Misto."),
		line("sis_neuro_cam_icu", "string", "CAM-ICU (Positivo/Negativo/\"\")."),
		line("sis_neuro_pupilas_tam", "string", "Miótica/Normal/Midríase."),
		line("sis_neuro_pupilas_simetria", "string", "Simétricas/Anisocoria."),
		line("sis_neuro_pupilas_foto", "string", "Fotoreagente/Não fotoreagente."),
		line("sis_neuro_deficits_focais", "string", "Descrição literal do déficit focal."),
		line("sis_neuro_deficits_ausente", "string", "\"Ausente\" se o texto confirmar ausência de déficits."),
		slots("- sis_neuro_analgesia_%[1]d_tipo (string): Tipo da analgesia %[1]d (Fixa/Se necessário).", 1, 3),
		slots("- sis_neuro_analgesia_%[1]d_drogas (string): Fármaco analgésico %[1]d.", 1, 3),
		slots("- sis_neuro_analgesia_%[1]d_dose (string): Dose do analgésico %[1]d.", 1, 3),
		slots("- sis_neuro_analgesia_%[1]d_freq (string): Frequência do analgésico %[1]d.", 1, 3),
		line("sis_neuro_sedacao_meta", "string", "Alvo de RASS (ex: \"RASS -2\")."),
		slots("- sis_neuro_sedacao_%[1]d_drogas (string): Fármaco sedativo %[1]d.", 1, 3),
		slots("- sis_neuro_sedacao_%[1]d_dose (string): Dose do sedativo %[1]d.", 1, 3),
		line("sis_neuro_bloqueador_med", "string", "Bloqueador neuromuscular."),
		line("sis_neuro_bloqueador_dose", "string", "Dose do BNM."),
		line("sis_neuro_pocus", "string", "POCUS neuro."),
		line("sis_neuro_obs", "string", "Observações neurológicas livres."),
		line("sis_neuro_conduta", "string", "\"\"."),
		"",
		"# RESPIRATÓRIO",
		line("sis_resp_ausculta", "string", "Descrição da ausculta pulmonar."),
		line("sis_resp_modo", "string", "Ar Ambiente/Oxigenoterapia/VNI/Cateter de Alto Fluxo/Ventilação Mecânica."),
		line("sis_resp_modo_vent", "string", "VCV/PCV/PSV, só se em VM."),
		line("sis_resp_oxigenio_modo", "string", "Interface de O2, só se Oxigenoterapia."),
		line("sis_resp_oxigenio_fluxo", "string", "Fluxo em L/min, só se Oxigenoterapia."),
		line("sis_resp_pressao", "string", "Pressão inspiratória ou de suporte."),
		line("sis_resp_volume", "string", "Volume corrente."),
		line("sis_resp_fio2", "string", "FiO2 em %."),
		line("sis_resp_peep", "string", "PEEP."),
		line("sis_resp_freq", "string", "Frequência respiratória total."),
		line("sis_resp_vent_protetora", "string", "Ventilação protetora (Sim/Não/\"\")."),
		line("sis_resp_sincronico", "string", "Paciente sincrônico (Sim/Não/\"\")."),
		line("sis_resp_assincronia", "string", "Tipo de assincronia."),
		slots("- sis_resp_dreno_%[1]d (string): Localização do dreno %[1]d.", 1, 3),
		slots("- sis_resp_dreno_%[1]d_debito (string): Débito/aspecto do dreno %[1]d.", 1, 3),
		line("sis_resp_pocus", "string", "POCUS pulmonar (Linhas A/B, Consolidação, Derrame)."),
		line("sis_resp_obs", "string", "Observações respiratórias livres."),
		line("sis_resp_conduta", "string", "\"\"."),
		"",
		"# CARDIOVASCULAR",
		line("sis_cardio_fc", "string", "Frequência cardíaca em bpm."),
		line("sis_cardio_cardioscopia", "string", "Ritmo na cardioscopia (Sinusal, FA, BAVT)."),
		line("sis_cardio_pam", "string", "Pressão arterial média em mmHg."),
		line("sis_cardio_perfusao", "string", "Perfusão periférica (Normal/Lentificada/Flush)."),
		line("sis_cardio_tec", "string", "Tempo de enchimento capilar (ex: \"3 seg.\")."),
		line("sis_cardio_fluido_responsivo", "string", "Fluido-responsividade (Sim/Não/\"\")."),
		line("sis_cardio_fluido_tolerante", "string", "Fluido-tolerância (Sim/Não/\"\")."),
		slots("- sis_cardio_dva_%[1]d_med (string): DVA %[1]d (ex: Noradrenalina).", 1, 4),
		slots("- sis_cardio_dva_%[1]d_dose (string): Dose da DVA %[1]d.", 1, 4),
		line("sis_cardio_pocus", "string", "POCUS cardíaco/VCI."),
		line("sis_cardio_obs", "string", "Observações cardiovasculares livres."),
		line("sis_cardio_conduta", "string", "\"\"."),
		"",
		"# RENAL / METABÓLICO / NUTRIÇÃO",
		line("sis_renal_diurese", "string", "Diurese das últimas 24h."),
		line("sis_renal_balanco", "string", "Balanço hídrico diário com sinal."),
		line("sis_renal_balanco_acum", "string", "Balanço hídrico acumulado."),
		line("sis_renal_volemia", "string", "Hipovolêmico/Euvolêmico/Hipervolêmico."),
		line("sis_renal_cr_antepen", "string", "Creatinina anteontem."),
		line("sis_renal_cr_ult", "string", "Creatinina ontem."),
		line("sis_renal_cr_hoje", "string", "Creatinina atual."),
		line("sis_renal_ur_antepen", "string", "Ureia anteontem."),
		line("sis_renal_ur_ult", "string", "Ureia ontem."),
		line("sis_renal_ur_hoje", "string", "Ureia atual."),
		line("sis_renal_sodio", "string", "Normal/Hiponatremia/Hipernatremia, \"\" se não mencionado."),
		line("sis_renal_potassio", "string", "Normal/Hipocalemia/Hipercalemia."),
		line("sis_renal_magnesio", "string", "Normal/Hipomagnesemia."),
		line("sis_renal_fosforo", "string", "Normal/Hipofosfatemia."),
		line("sis_renal_calcio", "string", "Normal/Hipocalcemia/Hipercalcemia."),
		line("sis_renal_trs", "string", "Em hemodiálise/TRS (Sim/Não/\"\")."),
		line("sis_renal_trs_via", "string", "Acesso da TRS (ex: \"Cateter femoral D\")."),
		line("sis_renal_trs_ultima", "string", "Data/hora da última sessão."),
		line("sis_renal_trs_proxima", "string", "Programação da próxima sessão."),
		line("sis_renal_pocus", "string", "POCUS renal/bexiga."),
		line("sis_renal_obs", "string", "Observações renais livres."),
		line("sis_renal_conduta", "string", "\"\"."),
		line("sis_metab_obs", "string", "Observações metabólicas."),
		line("sis_metab_pocus", "string", "POCUS metabólico."),
		line("sis_metab_conduta", "string", "\"\"."),
		line("sis_nutri_obs", "string", "Observações nutricionais."),
		line("sis_nutri_pocus", "string", "POCUS gástrico."),
		line("sis_nutri_conduta", "string", "\"\"."),
		"",
		"# INFECCIOSO",
		line("sis_infec_febre", "string", "Febre (Sim/Não/\"\")."),
		line("sis_infec_febre_vezes", "string", "Picos febris nas últimas 24h."),
		line("sis_infec_febre_ultima", "string", "Horário/data do último pico."),
		line("sis_infec_atb_guiado", "string", "ATB guiado por cultura (Sim/Não/\"\")."),
		slots("- sis_infec_atb_%[1]d (string): Nome do ATB %[1]d em uso.", 1, 3),
		slots("- sis_infec_cult_%[1]d_sitio (string): Sítio da cultura em andamento %[1]d.", 1, 4),
		slots("- sis_infec_cult_%[1]d_data (string): Data da coleta %[1]d.", 1, 4),
		line("sis_infec_pcr_antepen", "string", "PCR anteontem."),
		line("sis_infec_pcr_ult", "string", "PCR ontem."),
		line("sis_infec_pcr_hoje", "string", "PCR atual."),
		line("sis_infec_leuc_antepen", "string", "Leucócitos anteontem."),
		line("sis_infec_leuc_ult", "string", "Leucócitos ontem."),
		line("sis_infec_leuc_hoje", "string", "Leucócitos atual."),
		line("sis_infec_isolamento", "string", "Em isolamento (Sim/Não/\"\")."),
		line("sis_infec_isolamento_tipo", "string", "Contato/Aerossol/Gotícula/Reverso."),
		line("sis_infec_isolamento_motivo", "string", "Germe ou suspeita."),
		line("sis_infec_patogenos", "string", "Lista literal de germes isolados."),
		line("sis_infec_pocus", "string", "POCUS infeccioso."),
		line("sis_infec_obs", "string", "Observações infecciosas livres."),
		line("sis_infec_conduta", "string", "\"\"."),
		"",
		"# GASTROINTESTINAL",
		line("sis_gastro_exame_fisico", "string", "Descrição literal do exame físico abdominal."),
		line("sis_gastro_ictericia_presente", "string", "Icterícia (Presente/Ausente/\"\")."),
		line("sis_gastro_ictericia_cruzes", "string", "Intensidade da icterícia (1 a 4)."),
		line("sis_gastro_dieta_oral", "string", "Tipo de dieta oral."),
		line("sis_gastro_dieta_enteral", "string", "Fórmula enteral."),
		line("sis_gastro_dieta_enteral_vol", "string", "Volume/kcal enteral."),
		line("sis_gastro_dieta_parenteral", "string", "Tipo de NPT."),
		line("sis_gastro_dieta_parenteral_vol", "string", "Volume/kcal da NPT."),
		line("sis_gastro_meta_calorica", "string", "Meta calórica em kcal, somente número."),
		line("sis_gastro_na_meta", "string", "Atingindo meta calórica (Sim/Não/\"\")."),
		line("sis_gastro_escape_glicemico", "string", "Escape glicêmico (Sim/Não/\"\")."),
		line("sis_gastro_escape_vezes", "string", "Episódios de escape."),
		line("sis_gastro_escape_manha", "boolean", "Escape de manhã."),
		line("sis_gastro_escape_tarde", "boolean", "Escape à tarde."),
		line("sis_gastro_escape_noite", "boolean", "Escape à noite."),
		line("sis_gastro_insulino", "string", "Em insulinoterapia (Sim/Não/\"\")."),
		line("sis_gastro_insulino_dose_manha", "string", "Dose de insulina manhã."),
		line("sis_gastro_insulino_dose_tarde", "string", "Dose de insulina tarde."),
		line("sis_gastro_insulino_dose_noite", "string", "Dose de insulina noite."),
		line("sis_gastro_evacuacao", "string", "Evacuação presente (Sim/Não/\"\")."),
		line("sis_gastro_evacuacao_data", "string", "Data da última evacuação."),
		line("sis_gastro_evacuacao_laxativo", "string", "Laxativo em uso."),
		line("sis_gastro_pocus", "string", "POCUS de abdome."),
		line("sis_gastro_obs", "string", "Observações gastrointestinais livres."),
		line("sis_gastro_conduta", "string", "\"\"."),
		"",
		"# HEMATOLÓGICO",
		line("sis_hemato_anticoag", "string", "Em anticoagulação (Sim/Não/\"\")."),
		line("sis_hemato_anticoag_tipo", "string", "Profilática ou Plena."),
		line("sis_hemato_anticoag_motivo", "string", "Indicação (TVP, FA, TEP)."),
		line("sis_hemato_sangramento", "string", "Sangramento ativo (Sim/Não/\"\")."),
		line("sis_hemato_sangramento_via", "string", "Sítio do sangramento."),
		line("sis_hemato_transf_data", "string", "Data da última transfusão."),
		slots("- sis_hemato_transf_%[1]d_comp (string): Componente transfundido %[1]d.", 1, 3),
		slots("- sis_hemato_transf_%[1]d_bolsas (string): Quantidade do componente %[1]d.", 1, 3),
		line("sis_hemato_hb_antepen", "string", "Hb anteontem."),
		line("sis_hemato_hb_ult", "string", "Hb ontem."),
		line("sis_hemato_hb_hoje", "string", "Hb atual."),
		line("sis_hemato_plaq_antepen", "string", "Plaquetas anteontem."),
		line("sis_hemato_plaq_ult", "string", "Plaquetas ontem."),
		line("sis_hemato_plaq_hoje", "string", "Plaquetas atual."),
		line("sis_hemato_inr_antepen", "string", "INR anteontem."),
		line("sis_hemato_inr_ult", "string", "INR ontem."),
		line("sis_hemato_inr_hoje", "string", "INR atual."),
		line("sis_hemato_pocus", "string", "POCUS hematológico."),
		line("sis_hemato_obs", "string", "Observações hematológicas livres."),
		line("sis_hemato_conduta", "string", "\"\"."),
		"",
		"# PELE / MUSCULOESQUELÉTICO",
		line("sis_pele_edema", "string", "Edema (Presente/Ausente/\"\")."),
		line("sis_pele_edema_cruzes", "string", "Intensidade em cruzes (1 a 4)."),
		line("sis_pele_lpp", "string", "Lesão por Pressão (Sim/Não/\"\")."),
		slots("- sis_pele_lpp_local_%[1]d (string): Local da lesão %[1]d.", 1, 3),
		slots("- sis_pele_lpp_grau_%[1]d (string): Grau da lesão %[1]d.", 1, 3),
		line("sis_pele_polineuropatia", "string", "Polineuropatia do doente crítico (Sim/Não/\"\")."),
		line("sis_pele_pocus", "string", "POCUS de tecidos moles."),
		line("sis_pele_obs", "string", "Observações de feridas/curativos."),
		line("sis_pele_conduta", "string", "\"\"."),
	)
}

const hmpaPrompt = `Você é um Especialista em Redação Médica e Comunicação Clínica de Alta Complexidade.

Sua tarefa é reescrever a História da Moléstia Atual (HMA) e História Patológica Pregressa (HMP) fornecidas, otimizando clareza, organização lógica e precisão técnica para leitura por outro médico intensivista.

REGRAS ABSOLUTAS (INVIOLÁVEIS)
- FIDELIDADE INTEGRAL: é terminantemente proibido adicionar, inferir, interpretar ou omitir qualquer dado factual. Não completar lacunas. Se o texto estiver ambíguo, manter a ambiguidade.
- PROIBIÇÃO DE ALUCINAÇÃO: não introduzir hipóteses diagnósticas, exames ou condutas não descritas. Não melhorar o raciocínio clínico, apenas a redação.
- INTEGRIDADE DO CONTEÚDO: todos os dados presentes devem permanecer na versão final.

OBJETIVOS DA REESCRITA
- ORGANIZAÇÃO CRONOLÓGICA: antecedentes relevantes, início dos sintomas, evolução temporal, atendimentos prévios, admissão atual, evolução até o momento. Se a cronologia não estiver clara, reorganizar apenas com base no que está explícito.
- MELHORIA DE CLAREZA: corrigir erros gramaticais e ortográficos; transformar frases telegráficas em períodos médicos claros; eliminar repetições mantendo todo o conteúdo factual.
- PADRONIZAÇÃO: português formal técnico; manter siglas amplamente reconhecidas (UTI, IAM, AVC, PCR, DPOC, HAS); evitar siglas regionais.

FORMATO DE SAÍDA
- Retornar apenas o texto reescrito, contínuo, sem comentários, explicações ou títulos adicionais.`
