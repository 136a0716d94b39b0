package export

import (
	"fmt"
	"strings"
	"time"

	"github.com/go-playground/locales"
	"github.com/go-playground/locales/ar"
	"github.com/go-playground/locales/de"
	"github.com/go-playground/locales/en"
	"github.com/go-playground/locales/es"
	"github.com/go-playground/locales/fr"
	"github.com/go-playground/locales/it"
	"github.com/go-playground/locales/ja"
	"github.com/go-playground/locales/nl"
	"github.com/go-playground/locales/pt"
	"github.com/go-playground/locales/zh"
	ut "github.com/go-playground/universal-translator"
)

// FallbackLocale is used for unknown locales and missing keys
const FallbackLocale = "en"

// Catalog holds the report texts of every supported locale
type Catalog struct {
	uni      *ut.UniversalTranslator
	fallback ut.Translator
}

// NewCatalog registers the report texts with universal-translator.
func NewCatalog() (*Catalog, error) {
	base := en.New()
	supported := []locales.Translator{
		base, fr.New(), es.New(), de.New(), it.New(), pt.New(), nl.New(), ja.New(), zh.New(), ar.New(),
	}
	uni := ut.New(base, supported...)

	for _, loc := range supported {
		trans, _ := uni.GetTranslator(loc.Locale())
		for key, text := range reportTexts[loc.Locale()] {
			if err := trans.Add(key, text, false); err != nil {
				return nil, fmt.Errorf("register %s/%s: %w", loc.Locale(), key, err)
			}
		}
	}

	fallback, _ := uni.GetTranslator(FallbackLocale)
	return &Catalog{uni: uni, fallback: fallback}, nil
}

// Lang returns the texts for locale. Region suffixes are ignored
// ("fr-BE" reads as "fr") and unknown locales get English.
func (c *Catalog) Lang(locale string) *Lang {
	locale = strings.ToLower(strings.TrimSpace(locale))
	if i := strings.IndexAny(locale, "-_"); i > 0 {
		locale = locale[:i]
	}
	trans, found := c.uni.GetTranslator(locale)
	if !found {
		trans = c.fallback
	}
	return &Lang{trans: trans, fallback: c.fallback}
}

// Lang exposes localized report texts and date parts
type Lang struct {
	trans    ut.Translator
	fallback ut.Translator
}

// Locale returns the resolved locale name.
func (l *Lang) Locale() string {
	return l.trans.Locale()
}

// Text translates key, substituting {0}, {1}, ... with params.
func (l *Lang) Text(key string, params ...string) string {
	if s, err := l.trans.T(key, params...); err == nil {
		return s
	}
	if s, err := l.fallback.T(key, params...); err == nil {
		return s
	}
	return key
}

// Weekday returns the abbreviated weekday name of t.
func (l *Lang) Weekday(t time.Time) string {
	return l.trans.WeekdayAbbreviated(t.Weekday())
}

// ShortDate formats t as the locale's short date.
func (l *Lang) ShortDate(t time.Time) string {
	return l.trans.FmtDateShort(t)
}

// ShortTime formats t as the locale's short time.
func (l *Lang) ShortTime(t time.Time) string {
	return l.trans.FmtTimeShort(t)
}

// RightToLeft reports whether the locale is written right to left.
func (l *Lang) RightToLeft() bool {
	return l.trans.Locale() == "ar"
}

var reportTexts = map[string]map[string]string{
	"en": {
		"title":             "Weekly Sales Report",
		"period":            "Period",
		"totalRevenue":      "Total revenue for the week",
		"salesDetail":       "Sales Details by Product",
		"product":           "Product",
		"total":             "Total",
		"revenue":           "Revenue",
		"performance":       "Performance Analysis",
		"bestSelling":       "Best-selling product",
		"mostProfitable":    "Most profitable product",
		"totalItems":        "Total items sold",
		"productCount":      "Number of different products",
		"noData":            "No sales data available for this period.",
		"generated":         "Report generated automatically on",
		"at":                "at",
		"units":             "units",
		"summaryTitle":      "Sales Summary",
		"periodRange":       "Period from {0} to {1}",
		"itemsSold":         "Items sold",
		"differentProducts": "Different products",
		"averageRevenue":    "Average revenue",
		"price":             "Price",
		"quantity":          "Quantity",
		"topSales":          "Top 3 best sellers",
		"quantitySold":      "Quantity sold",
		"revenueGenerated":  "Revenue generated",
		"unitPrice":         "Unit price",
	},
	"fr": {
		"title":             "Rapport Hebdomadaire de Ventes",
		"period":            "Période",
		"totalRevenue":      "Recette totale de la semaine",
		"salesDetail":       "Détail des Ventes par Produit",
		"product":           "Produit",
		"total":             "Total",
		"revenue":           "Recette",
		"performance":       "Analyse des Performances",
		"bestSelling":       "Produit le plus vendu",
		"mostProfitable":    "Produit le plus rentable",
		"totalItems":        "Total d'articles vendus",
		"productCount":      "Nombre de produits différents",
		"noData":            "Aucune donnée de vente disponible pour cette période.",
		"generated":         "Rapport généré automatiquement le",
		"at":                "à",
		"units":             "unités",
		"summaryTitle":      "Résumé des Ventes",
		"periodRange":       "Période du {0} au {1}",
		"itemsSold":         "Articles vendus",
		"differentProducts": "Produits différents",
		"averageRevenue":    "Recette moyenne",
		"price":             "Prix",
		"quantity":          "Quantité",
		"topSales":          "Top 3 des meilleures ventes",
		"quantitySold":      "Quantité vendue",
		"revenueGenerated":  "Recette générée",
		"unitPrice":         "Prix unitaire",
	},
	"es": {
		"title":             "Informe semanal de ventas",
		"period":            "Período",
		"totalRevenue":      "Ingresos totales de la semana",
		"salesDetail":       "Detalle de ventas por producto",
		"product":           "Producto",
		"total":             "Total",
		"revenue":           "Ingresos",
		"performance":       "Análisis de rendimiento",
		"bestSelling":       "Producto más vendido",
		"mostProfitable":    "Producto más rentable",
		"totalItems":        "Total de artículos vendidos",
		"productCount":      "Número de productos diferentes",
		"noData":            "No hay datos de ventas disponibles para este período.",
		"generated":         "Informe generado automáticamente el",
		"at":                "a las",
		"units":             "unidades",
		"summaryTitle":      "Resumen de ventas",
		"periodRange":       "Período del {0} al {1}",
		"itemsSold":         "Artículos vendidos",
		"differentProducts": "Productos diferentes",
		"averageRevenue":    "Ingreso medio",
		"price":             "Precio",
		"quantity":          "Cantidad",
		"topSales":          "Top 3 de ventas",
		"quantitySold":      "Cantidad vendida",
		"revenueGenerated":  "Ingresos generados",
		"unitPrice":         "Precio unitario",
	},
	"de": {
		"title":             "Wöchentlicher Verkaufsbericht",
		"period":            "Zeitraum",
		"totalRevenue":      "Gesamteinnahmen der Woche",
		"salesDetail":       "Verkaufsdetails nach Produkt",
		"product":           "Produkt",
		"total":             "Gesamt",
		"revenue":           "Einnahmen",
		"performance":       "Leistungsanalyse",
		"bestSelling":       "Meistverkauftes Produkt",
		"mostProfitable":    "Profitabelstes Produkt",
		"totalItems":        "Verkaufte Artikel insgesamt",
		"productCount":      "Anzahl verschiedener Produkte",
		"noData":            "Für diesen Zeitraum sind keine Verkaufsdaten verfügbar.",
		"generated":         "Bericht automatisch erstellt am",
		"at":                "um",
		"units":             "Stück",
		"summaryTitle":      "Verkaufsübersicht",
		"periodRange":       "Zeitraum vom {0} bis {1}",
		"itemsSold":         "Verkaufte Artikel",
		"differentProducts": "Verschiedene Produkte",
		"averageRevenue":    "Durchschnittliche Einnahmen",
		"price":             "Preis",
		"quantity":          "Menge",
		"topSales":          "Top 3 der Verkäufe",
		"quantitySold":      "Verkaufte Menge",
		"revenueGenerated":  "Erzielte Einnahmen",
		"unitPrice":         "Stückpreis",
	},
	"it": {
		"title":             "Rapporto settimanale delle vendite",
		"period":            "Periodo",
		"totalRevenue":      "Ricavi totali della settimana",
		"salesDetail":       "Dettaglio vendite per prodotto",
		"product":           "Prodotto",
		"total":             "Totale",
		"revenue":           "Ricavi",
		"performance":       "Analisi delle prestazioni",
		"bestSelling":       "Prodotto più venduto",
		"mostProfitable":    "Prodotto più redditizio",
		"totalItems":        "Totale articoli venduti",
		"productCount":      "Numero di prodotti diversi",
		"noData":            "Nessun dato di vendita disponibile per questo periodo.",
		"generated":         "Rapporto generato automaticamente il",
		"at":                "alle",
		"units":             "unità",
		"summaryTitle":      "Riepilogo vendite",
		"periodRange":       "Periodo dal {0} al {1}",
		"itemsSold":         "Articoli venduti",
		"differentProducts": "Prodotti diversi",
		"averageRevenue":    "Ricavo medio",
		"price":             "Prezzo",
		"quantity":          "Quantità",
		"topSales":          "Top 3 delle vendite",
		"quantitySold":      "Quantità venduta",
		"revenueGenerated":  "Ricavo generato",
		"unitPrice":         "Prezzo unitario",
	},
	"pt": {
		"title":             "Relatório semanal de vendas",
		"period":            "Período",
		"totalRevenue":      "Receita total da semana",
		"salesDetail":       "Detalhe de vendas por produto",
		"product":           "Produto",
		"total":             "Total",
		"revenue":           "Receita",
		"performance":       "Análise de desempenho",
		"bestSelling":       "Produto mais vendido",
		"mostProfitable":    "Produto mais lucrativo",
		"totalItems":        "Total de itens vendidos",
		"productCount":      "Número de produtos diferentes",
		"noData":            "Nenhum dado de venda disponível para este período.",
		"generated":         "Relatório gerado automaticamente em",
		"at":                "às",
		"units":             "unidades",
		"summaryTitle":      "Resumo de vendas",
		"periodRange":       "Período de {0} a {1}",
		"itemsSold":         "Itens vendidos",
		"differentProducts": "Produtos diferentes",
		"averageRevenue":    "Receita média",
		"price":             "Preço",
		"quantity":          "Quantidade",
		"topSales":          "Top 3 de vendas",
		"quantitySold":      "Quantidade vendida",
		"revenueGenerated":  "Receita gerada",
		"unitPrice":         "Preço unitário",
	},
	"nl": {
		"title":             "Wekelijks verkooprapport",
		"period":            "Periode",
		"totalRevenue":      "Totale omzet van de week",
		"salesDetail":       "Verkoopdetails per product",
		"product":           "Product",
		"total":             "Totaal",
		"revenue":           "Omzet",
		"performance":       "Prestatieanalyse",
		"bestSelling":       "Best verkochte product",
		"mostProfitable":    "Meest winstgevende product",
		"totalItems":        "Totaal verkochte artikelen",
		"productCount":      "Aantal verschillende producten",
		"noData":            "Geen verkoopgegevens beschikbaar voor deze periode.",
		"generated":         "Rapport automatisch gegenereerd op",
		"at":                "om",
		"units":             "stuks",
		"summaryTitle":      "Verkoopoverzicht",
		"periodRange":       "Periode van {0} tot {1}",
		"itemsSold":         "Verkochte artikelen",
		"differentProducts": "Verschillende producten",
		"averageRevenue":    "Gemiddelde omzet",
		"price":             "Prijs",
		"quantity":          "Aantal",
		"topSales":          "Top 3 verkopen",
		"quantitySold":      "Verkocht aantal",
		"revenueGenerated":  "Gegenereerde omzet",
		"unitPrice":         "Stukprijs",
	},
	"ja": {
		"title":             "週間売上レポート",
		"period":            "期間",
		"totalRevenue":      "今週の総売上",
		"salesDetail":       "商品別売上詳細",
		"product":           "商品",
		"total":             "合計",
		"revenue":           "売上",
		"performance":       "パフォーマンス分析",
		"bestSelling":       "最も売れた商品",
		"mostProfitable":    "最も利益の高い商品",
		"totalItems":        "販売総数",
		"productCount":      "異なる商品の数",
		"noData":            "この期間の販売データはありません。",
		"generated":         "自動生成レポート",
		"at":                "",
		"units":             "個",
		"summaryTitle":      "売上概要",
		"periodRange":       "{0} から {1} までの期間",
		"itemsSold":         "販売数",
		"differentProducts": "商品数",
		"averageRevenue":    "平均売上",
		"price":             "価格",
		"quantity":          "数量",
		"topSales":          "売上トップ3",
		"quantitySold":      "販売数量",
		"revenueGenerated":  "売上額",
		"unitPrice":         "単価",
	},
	"zh": {
		"title":             "每周销售报告",
		"period":            "期间",
		"totalRevenue":      "本周总收入",
		"salesDetail":       "按产品销售明细",
		"product":           "产品",
		"total":             "总计",
		"revenue":           "收入",
		"performance":       "业绩分析",
		"bestSelling":       "最畅销产品",
		"mostProfitable":    "最赚钱的产品",
		"totalItems":        "售出总数",
		"productCount":      "不同产品数量",
		"noData":            "本期无销售数据。",
		"generated":         "报告自动生成于",
		"at":                "",
		"units":             "件",
		"summaryTitle":      "销售汇总",
		"periodRange":       "{0} 至 {1}",
		"itemsSold":         "售出数量",
		"differentProducts": "产品种类",
		"averageRevenue":    "平均收入",
		"price":             "价格",
		"quantity":          "数量",
		"topSales":          "销量前三",
		"quantitySold":      "销售数量",
		"revenueGenerated":  "产生收入",
		"unitPrice":         "单价",
	},
	"ar": {
		"title":             "تقرير المبيعات الأسبوعي",
		"period":            "الفترة",
		"totalRevenue":      "إجمالي الإيرادات للأسبوع",
		"salesDetail":       "تفاصيل المبيعات حسب المنتج",
		"product":           "المنتج",
		"total":             "الإجمالي",
		"revenue":           "الإيرادات",
		"performance":       "تحليل الأداء",
		"bestSelling":       "الأكثر مبيعًا",
		"mostProfitable":    "الأكثر ربحية",
		"totalItems":        "إجمالي العناصر المباعة",
		"productCount":      "عدد المنتجات المختلفة",
		"noData":            "لا توجد بيانات مبيعات متاحة لهذه الفترة.",
		"generated":         "تم إنشاء التقرير تلقائيًا في",
		"at":                "",
		"units":             "وحدة",
		"summaryTitle":      "ملخص المبيعات",
		"periodRange":       "الفترة من {0} إلى {1}",
		"itemsSold":         "العناصر المباعة",
		"differentProducts": "منتجات مختلفة",
		"averageRevenue":    "متوسط الإيرادات",
		"price":             "السعر",
		"quantity":          "الكمية",
		"topSales":          "أفضل 3 مبيعات",
		"quantitySold":      "الكمية المباعة",
		"revenueGenerated":  "الإيرادات المحققة",
		"unitPrice":         "سعر الوحدة",
	},
}
