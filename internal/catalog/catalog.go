// Package catalog holds the static top-market indicator definitions.
// The table is read-only: it is built once at init and callers only ever
// receive copies.
package catalog

import "CycleSentinel/internal/model"

var topMarket = []model.IndicatorDefinition{
	{
		ID:           "ma-200",
		TitleEnglish: "200 days Moving Average",
		TitleFrench:  "Moyenne mobile 200 jours",
		Description:  "Cours moyen du prix du Bitcoin sur une période de 200 jours.",
		Objective:    "Prix du Bitcoin au dessus de la moyenne mobile 200 (en journalier)",
		Source:       "Tradingview",
		SourceURL:    "https://www.tradingview.com",
		Threshold:    model.ThresholdGreaterThan,
		Metric:       model.MetricPriceVsSMA200,
	},
	{
		ID:           "btc-dominance",
		TitleEnglish: "Bitcoin Dominance",
		TitleFrench:  "Dominance du Bitcoin",
		Description:  "La dominance du Bitcoin (BTC) offre un aperçu de la position et de l'influence de ce dernier sur le marché des cryptomonnaies.",
		Objective:    "Dominance Bitcoin inférieure à 45%",
		Source:       "Coinstats",
		SourceURL:    "https://coinstats.app/btc-dominance/",
		Threshold:    model.ThresholdLessThan,
		Metric:       model.MetricDominance,
	},
	{
		ID:           "rainbow-chart",
		TitleEnglish: "Bitcoin Rainbow Price Chart Indicator",
		TitleFrench:  "Indicateur arc en ciel du prix du bitcoin",
		Description:  "Outil d'évaluation à long terme pour Bitcoin. Il utilise une courbe de croissance logarithmique pour prévoir l'orientation future potentielle des prix.",
		Objective:    "Zone Rouge / Orange / Jaune",
		Source:       "Bitcoin Magazine Pro",
		SourceURL:    "https://www.bitcoinmagazinepro.com/charts/bitcoin-rainbow-chart/",
		Threshold:    model.ThresholdZone,
		Metric:       model.MetricATHDistanceProxy,
	},
	{
		ID:           "mayer-multiple",
		TitleEnglish: "Mayer Multiple",
		TitleFrench:  "Multiple de Mayer",
		Description:  "Le multiple de Mayer est utilisé pour déterminer si le Bitcoin est suracheté, à un prix raisonnable ou sous-évalué.",
		Objective:    "Multiple de Mayer > 2,5",
		Source:       "Bitcoinition",
		SourceURL:    "https://bitcoinition.com/charts/mayer-multiple/",
		Threshold:    model.ThresholdGreaterThan,
		Metric:       model.MetricMayer,
	},
	{
		ID:           "pi-cycle-top",
		TitleEnglish: "Pi Cycle Top Indicator",
		TitleFrench:  "Indicateur du Top du cycle PI",
		Description:  "L'indicateur Pi Cycle Top utilise la moyenne mobile de 111 jours (111DMA) et un multiple de la moyenne mobile de 350 jours (350DMA x 2).",
		Objective:    "Prix du bitcoin > courbe verte (350DMA x 2)",
		Source:       "Bitcoin Magazine Pro",
		SourceURL:    "https://www.bitcoinmagazinepro.com/charts/pi-cycle-top-indicator/",
		Threshold:    model.ThresholdBoolean,
		Metric:       model.MetricPiCycle,
	},
	{
		ID:           "monthly-rsi",
		TitleEnglish: "Monthly RSI",
		TitleFrench:  "RSI mensuel",
		Description:  "L'indice de force relative (RSI) mesure la vitesse et l'ampleur des changements récents de prix du Bitcoin.",
		Objective:    "RSI > 70",
		Source:       "Bitbo",
		SourceURL:    "https://charts.bitbo.io/monthly-rsi/",
		Threshold:    model.ThresholdGreaterThan,
		Metric:       model.MetricMonthlyRSI,
	},
	{
		ID:           "cycle-master",
		TitleEnglish: "Bitcoin Cycle Master",
		TitleFrench:  "Maitre du cycle Bitcoin",
		Description:  "Cet indicateur identifie les périodes de risque accru ou faible en fonction du comportement des transactions on-chain.",
		Objective:    "Prix du bitcoin > Courbe Violet / Rouge",
		Source:       "TradingView",
		SourceURL:    "https://www.tradingview.com",
		Threshold:    model.ThresholdBoolean,
		Metric:       model.MetricATHDistanceProxy,
	},
	{
		ID:           "stock-to-flow",
		TitleEnglish: "Stock to flow model",
		TitleFrench:  "Model du Stock to Flow",
		Description:  "Le ratio Stock / Flow (S/F) suppose que la rareté génère de la valeur.",
		Objective:    "Prix du bitcoin > Courbe de base",
		Source:       "Bitcoin Magazine Pro",
		SourceURL:    "https://www.bitcoinmagazinepro.com/charts/stock-to-flow-model/",
		Threshold:    model.ThresholdBoolean,
		Metric:       model.MetricATHDistanceProxy,
	},
	{
		ID:           "cbbi-index",
		TitleEnglish: "ColinTalksCrypto Bitcoin Bull Run Index",
		TitleFrench:  "Indice CBBI",
		Description:  "Le CBBI est un indice Bitcoin qui utilise une analyse avancée en temps réel de 9 mesures pour comprendre le cycle.",
		Objective:    "Supérieur à 80",
		Source:       "CoinGlass",
		SourceURL:    "https://www.coinglass.com/fr/pro/i/cbbi-index",
		Threshold:    model.ThresholdGreaterThan,
		Metric:       model.MetricATHDistanceProxy,
	},
	{
		ID:           "total-marketcap",
		TitleEnglish: "Crypto total marketcap",
		TitleFrench:  "Marketcap total du marché crypto",
		Description:  "Capitalisation de l'ensemble des cryptomonnaies sur le marché à l'instant T.",
		Objective:    "Crypto total Marketcap à l'ATH",
		Source:       "CoinMarketCap",
		SourceURL:    "https://coinmarketcap.com/charts/",
		Threshold:    model.ThresholdBoolean,
		Metric:       model.MetricATHDistance,
	},
}

// Definitions returns a copy of the top-market catalog.
func Definitions() []model.IndicatorDefinition {
	out := make([]model.IndicatorDefinition, len(topMarket))
	copy(out, topMarket)
	return out
}

// Size is the number of catalog entries.
func Size() int { return len(topMarket) }
