package assessment

// Recommendation thresholds. Perspective scores live on the 1-7 rating
// scale, the composite indices on the ~[0,1] index scale.
const (
	balanceThreshold     = 0.7
	coherenceThreshold   = 0.6
	perspectiveThreshold = 4
)

// Recommendations derives actionable suggestions from a full analysis
// result. The weakest order element always gets a development suggestion,
// chosen with the same first-minimum tie-break as the analysis itself.
func Recommendations(res Result) []Recommendation {
	recs := make([]Recommendation, 0, 6)

	if res.PerspectiveBalance < balanceThreshold {
		recs = append(recs, Recommendation{
			Topic:  "Management-Balance verbessern",
			Advice: "Arbeiten Sie an der Ausgewogenheit der drei Perspektiven",
		})
	}
	if res.NormativeScore < perspectiveThreshold {
		recs = append(recs, Recommendation{
			Topic:  "Normative Perspektive stärken",
			Advice: "Fokus auf Wertekongruenz und Sinnstiftung",
		})
	}
	if res.StrategicScore < perspectiveThreshold {
		recs = append(recs, Recommendation{
			Topic:  "Strategische Perspektive stärken",
			Advice: "Verbesserung der Wettbewerbspositionierung",
		})
	}
	if res.OperationalScore < perspectiveThreshold {
		recs = append(recs, Recommendation{
			Topic:  "Operative Perspektive stärken",
			Advice: "Optimierung von Prozessen und Ressourceneinsatz",
		})
	}

	if res.OrderCoherence < coherenceThreshold {
		recs = append(recs, Recommendation{
			Topic:  "Ordnungs-Kohärenz erhöhen",
			Advice: "Bessere Abstimmung zwischen Kultur, Strukturen, Prozessen und Technologien",
		})
	}

	orderScores := map[string]float64{
		DimCulture:    res.CultureScore,
		DimStructure:  res.StructureScore,
		DimProcess:    res.ProcessScore,
		DimTechnology: res.TechnologyScore,
	}
	switch minKey(orderElementOrder, orderScores) {
	case DimCulture:
		recs = append(recs, Recommendation{
			Topic:  "Kultur entwickeln",
			Advice: "Gemeinsame Werte und Verhaltensnormen stärken",
		})
	case DimStructure:
		recs = append(recs, Recommendation{
			Topic:  "Strukturen optimieren",
			Advice: "Rollenklarheit und Entscheidungskompetenzen verbessern",
		})
	case DimProcess:
		recs = append(recs, Recommendation{
			Topic:  "Prozesse standardisieren",
			Advice: "Arbeitsabläufe und Entscheidungsgeschwindigkeit optimieren",
		})
	case DimTechnology:
		recs = append(recs, Recommendation{
			Topic:  "Technologien modernisieren",
			Advice: "Systemunterstützung und Digitalisierung vorantreiben",
		})
	}

	return recs
}
