package engine

import (
	"fmt"

	"github.com/sells-group/market-intel/internal/model"
)

// planQueries derives the bounded, ordered search query list for a request.
// Deterministic template expansion: market-overview queries first, audience
// queries when an audience is given, then the fixed market-intelligence set.
// The concatenated list is truncated at the tail to maxQueries, so the
// intelligence queries are dropped first when audience queries push the
// count over the cap.
func planQueries(req model.AnalysisRequest, maxQueries int) []string {
	segment := req.TrimmedSegment()
	product := req.Product
	audience := req.Audience

	var queries []string

	// Market overview.
	if product != "" {
		queries = append(queries,
			fmt.Sprintf("mercado %s %s Brasil 2024 dados estatísticas", segment, product),
			fmt.Sprintf("análise competitiva %s %s oportunidades", segment, product),
			fmt.Sprintf("tendências %s %s crescimento futuro", segment, product),
		)
	} else {
		queries = append(queries,
			fmt.Sprintf("mercado %s Brasil 2024 dados estatísticas crescimento", segment),
			fmt.Sprintf("análise competitiva %s principais empresas", segment),
			fmt.Sprintf("tendências %s oportunidades investimento", segment),
		)
	}

	// Audience behavior.
	if audience != "" {
		queries = append(queries,
			fmt.Sprintf("comportamento consumidor %s %s pesquisa", audience, segment),
			fmt.Sprintf("perfil demográfico %s Brasil dados", audience),
		)
	}

	// Market intelligence.
	queries = append(queries,
		fmt.Sprintf("startups %s investimento venture capital Brasil", segment),
		fmt.Sprintf("regulamentação %s mudanças legais impacto", segment),
		fmt.Sprintf("inovação tecnológica %s disrupção", segment),
		fmt.Sprintf("cases sucesso empresas %s brasileiras", segment),
		fmt.Sprintf("desafios principais %s soluções mercado", segment),
	)

	if maxQueries > 0 && len(queries) > maxQueries {
		queries = queries[:maxQueries]
	}
	return queries
}
