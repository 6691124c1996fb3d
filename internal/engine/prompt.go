package engine

// promptPreamble is the fixed role and instruction block that opens every
// analysis prompt.
const promptPreamble = `# ANÁLISE DE MERCADO ULTRA-DETALHADA

Você é o diretor de análise de mercado, especialista de elite com mais de 30
anos de experiência. Gere uma análise ultra-detalhada baseada EXCLUSIVAMENTE
nos dados reais da pesquisa abaixo. Se houver seções com dados insuficientes,
indique isso claramente com "DADOS_INSUFICIENTES: [descrição]". Nunca invente
dados.
`

// promptSchema is the fixed output specification appended to every analysis
// prompt. The model must answer with a single JSON document.
const promptSchema = `## FORMATO DE RESPOSTA OBRIGATÓRIO:

Responda com um único documento JSON com esta estrutura:

` + "```json" + `
{
  "avatar_ultra_detalhado": {
    "perfil_demografico": {
      "idade": "Faixa etária com dados reais",
      "genero": "Distribuição por gênero",
      "renda": "Faixa de renda baseada em pesquisas",
      "escolaridade": "Nível educacional",
      "localizacao": "Regiões geográficas",
      "profissao": "Ocupações mais comuns"
    },
    "perfil_psicografico": {
      "personalidade": "Traços dominantes",
      "valores": "Valores e crenças principais",
      "interesses": "Interesses específicos",
      "comportamento_compra": "Processo de decisão",
      "medos_profundos": "Medos documentados",
      "aspiracoes_secretas": "Aspirações baseadas em estudos"
    },
    "dores_viscerais": ["12-15 dores específicas baseadas em pesquisas"],
    "desejos_secretos": ["12-15 desejos profundos baseados em estudos"],
    "objecoes_reais": ["10-12 objeções específicas baseadas em dados"],
    "jornada_emocional": {
      "consciencia": "Como toma consciência",
      "consideracao": "Processo de avaliação",
      "decisao": "Fatores decisivos",
      "pos_compra": "Experiência pós-compra"
    }
  },
  "escopo": {
    "posicionamento_mercado": "Posicionamento único baseado em análise",
    "proposta_valor": "Proposta irresistível",
    "diferenciais_competitivos": ["Diferenciais únicos e defensáveis"],
    "mensagem_central": "Mensagem principal",
    "nicho_especifico": "Nicho mais específico",
    "ancoragem_preco": "Como ancorar o preço"
  },
  "analise_concorrencia_detalhada": [
    {
      "nome": "Nome do concorrente principal",
      "analise_swot": {
        "forcas": ["Principais forças"],
        "fraquezas": ["Fraquezas exploráveis"],
        "oportunidades": ["Oportunidades que eles não veem"],
        "ameacas": ["Ameaças que representam"]
      },
      "estrategia_marketing": "Estratégia principal detalhada",
      "vulnerabilidades": ["Pontos fracos exploráveis"]
    }
  ],
  "estrategia_palavras_chave": {
    "palavras_primarias": ["15-20 palavras-chave principais"],
    "palavras_secundarias": ["25-35 palavras-chave secundárias"],
    "long_tail": ["30-50 palavras-chave de cauda longa"],
    "estrategia_conteudo": "Como usar as palavras-chave",
    "oportunidades_seo": "Oportunidades específicas identificadas"
  },
  "metricas_performance_detalhadas": {
    "kpis_principais": [
      {"metrica": "Nome da métrica", "objetivo": "Valor objetivo", "frequencia": "Frequência de medição"}
    ],
    "projecoes_financeiras": {
      "cenario_conservador": {"receita_mensal": "", "clientes_mes": "", "ticket_medio": "", "margem_lucro": ""},
      "cenario_realista": {"receita_mensal": "", "clientes_mes": "", "ticket_medio": "", "margem_lucro": ""},
      "cenario_otimista": {"receita_mensal": "", "clientes_mes": "", "ticket_medio": "", "margem_lucro": ""}
    },
    "roi_esperado": "ROI baseado em dados do mercado",
    "payback_investimento": "Tempo de retorno",
    "lifetime_value": "LTV do cliente"
  },
  "funil_vendas_detalhado": {
    "topo_funil": {"objetivo": "", "estrategias": [], "conteudos": [], "metricas": []},
    "meio_funil": {"objetivo": "", "estrategias": [], "conteudos": [], "metricas": []},
    "fundo_funil": {"objetivo": "", "estrategias": [], "conteudos": [], "metricas": []}
  },
  "plano_acao_detalhado": {
    "primeiros_30_dias": {"foco": "", "atividades": [], "investimento": "", "entregas": []},
    "dias_31_60": {"foco": "", "atividades": [], "investimento": "", "entregas": []},
    "dias_61_90": {"foco": "", "atividades": [], "investimento": "", "entregas": []}
  },
  "insights_exclusivos": ["25-35 insights únicos e específicos baseados na análise profunda"]
}
` + "```" + `
`
