package assessment

// Benchmark keys. The umlauts are part of the published metric names and
// are kept verbatim so stored frontends and exports keep matching.
const (
	BenchmarkPerspectiveBalance     = "perspektiven_balance"
	BenchmarkOrderCoherence         = "ordnungsmomente_kohärenz"
	BenchmarkEnvironmentSensitivity = "umwelt_sensitivität"
)

// defaultOptimal is used when a benchmark key is not registered. Lookups
// fail soft, never with an error.
const defaultOptimal = 0.7

// Dimension keys per family, in declared order. The declared order is the
// tie-break for dominant/weakest/strongest selection: the first maximum
// (or minimum) in this order wins.
const (
	DimNormative   = "normativ"
	DimStrategic   = "strategisch"
	DimOperational = "operativ"

	DimCulture    = "kultur"
	DimStructure  = "strukturen"
	DimProcess    = "prozesse"
	DimTechnology = "technologien"

	DimReflection     = "reflexion"
	DimInnovation     = "innovation"
	DimTransformation = "transformation"
)

var (
	perspectiveOrder  = []string{DimNormative, DimStrategic, DimOperational}
	orderElementOrder = []string{DimCulture, DimStructure, DimProcess, DimTechnology}
	developmentOrder  = []string{DimReflection, DimInnovation, DimTransformation}
)

// Indicator groups. Each dimension score is the mean over its group;
// together they form the full 42-key indicator vocabulary.
var (
	perspectiveIndicators = map[string][]string{
		DimNormative:   {"wertekongruenz", "sinnstiftung", "identitaetsbeitrag", "legitimitaet"},
		DimStrategic:   {"wettbewerbsvorteil", "marktrelevanz", "ressourcenpassung", "zukunftsfaehigkeit"},
		DimOperational: {"prozesseffizienz", "ressourcenoptimierung", "qualitaetssicherung", "skalierbarkeit"},
	}

	orderElementIndicators = map[string][]string{
		DimCulture:    {"wertekonsens", "verhaltensnormen", "gemeinschaftsgefuehl"},
		DimStructure:  {"rollenklaerung", "entscheidungskompetenz", "koordinationsmechanismen"},
		DimProcess:    {"prozessstandardisierung", "entscheidungsgeschwindigkeit", "kontinuierliche_verbesserung"},
		DimTechnology: {"systemunterstuetzung", "digitalisierungsgrad", "datennutzung"},
	}

	developmentIndicators = map[string][]string{
		DimReflection:     {"erfahrungsauswertung", "feedback_kultur", "lernbereitschaft"},
		DimInnovation:     {"kreativitaetsfoerderung", "experimentierfreudigkeit", "veraenderungsbereitschaft"},
		DimTransformation: {"anpassungsflexibilitaet", "umstrukturierungskompetenz", "zukunftsgestaltung"},
	}

	environmentIndicators = []string{"marktbeobachtung", "trendfruchterkennung", "stakeholder_dialog"}
	adaptationIndicators  = []string{"reaktionsgeschwindigkeit", "aenderungsmanagement", "ressourcenflexibilitaet"}
	resilienceIndicators  = []string{"krisenresistenz", "ausfallsicherheit", "erneuerungsfaehigkeit"}
)

// Development profile labels keyed by the winning dimension. The balanced
// label is the fallback for an unresolvable maximum; under the declared-order
// tie-break a maximum always resolves, so it stays unreachable but is kept
// as part of the interface.
const (
	ProfileLearning       = "Learning Organization"
	ProfileInnovative     = "Innovative Organization"
	ProfileTransformative = "Transformative Organization"
	ProfileBalanced       = "Balanced Organization"
)

var developmentProfiles = map[string]string{
	DimReflection:     ProfileLearning,
	DimInnovation:     ProfileInnovative,
	DimTransformation: ProfileTransformative,
}

// citations are attached verbatim to every full analysis result.
var citations = []string{
	"Rüegg-Stürm, J. & Grand, S. (2019). Das St. Galler Management Modell",
	"Gomez, P. & Weber, B. (2020). Strategic Management",
	"Mintzberg, H. & Westley, F. (2021). Organizational Learning",
	"Luhmann, N. (2018). Social Systems and Management",
}

func loadBenchmarks() map[string]Benchmark {
	return map[string]Benchmark{
		BenchmarkPerspectiveBalance: {
			Optimal: 0.8,
			Study:   "Gomez & Weber (2020) - Balanced Management Performance",
			Finding: "Unternehmen mit ausgeglichenen Perspektiven zeigen 25% höhere Gesamtperformance",
		},
		BenchmarkOrderCoherence: {
			Optimal: 0.75,
			Study:   "Rüegg-Stürm (2019) - Organizational Coherence",
			Finding: "Kohärente Ordnungsmomente reduzieren Reibungsverluste um 40%",
		},
		BenchmarkEnvironmentSensitivity: {
			Optimal: 0.7,
			Study:   "Ansoff & Sullivan (2021) - Environmental Scanning",
			Finding: "Hohe Umweltwahrnehmung korreliert mit 30% besserer Anpassungsfähigkeit",
		},
	}
}

func loadTheory() Theory {
	return Theory{
		ManagementPerspectives: map[string]TheoryEntry{
			DimNormative: {
				Concept:     "Sinn, Werte, Identität und Legitimität der Organisation",
				Researchers: []string{"Rüegg-Stürm", "Gomez", "Malik"},
				Reference:   "St. Galler Management Modell (2019), S. 45-68",
				KeyQuestions: []string{
					"Entspricht die Aufgabe unseren Werten?",
					"Stiftet sie Sinn für unsere Stakeholder?",
					"Stärkt sie unsere Identität?",
				},
			},
			DimStrategic: {
				Concept:     "Langfristige Erfolgspositionierung im Wettbewerbsumfeld",
				Researchers: []string{"Porter", "Mintzberg", "Rasche"},
				Reference:   "St. Galler Management Modell (2019), S. 69-92",
				KeyQuestions: []string{
					"Verbessert sie unsere Wettbewerbsposition?",
					"Nutzt sie Marktchancen?",
					"Stärkt sie unsere Kernkompetenzen?",
				},
			},
			DimOperational: {
				Concept:     "Effiziente und effektive Umsetzung der Strategie",
				Researchers: []string{"Simon", "Deming", "Hammer"},
				Reference:   "St. Galler Management Modell (2019), S. 93-116",
				KeyQuestions: []string{
					"Ist die Umsetzung effizient?",
					"Sind Ressourcen optimal eingesetzt?",
					"Funktionieren die Prozesse?",
				},
			},
		},
		OrderElements: map[string]TheoryEntry{
			DimCulture: {
				Concept:     "Geteilte Werte, Normen und Verhaltensmuster",
				Researchers: []string{"Schein", "Cameron & Quinn", "Hofstede"},
				Reference:   "St. Galler Management Modell (2019), S. 117-140",
			},
			DimStructure: {
				Concept:     "Formale Aufbauorganisation und Rollen",
				Researchers: []string{"Lawrence & Lorsch", "Galbraith", "Mintzberg"},
				Reference:   "St. Galler Management Modell (2019), S. 141-164",
			},
			DimProcess: {
				Concept:     "Abläufe, Entscheidungs- und Arbeitsprozesse",
				Researchers: []string{"Davenport", "Hammer & Champy", "Rummler & Brache"},
				Reference:   "St. Galler Management Modell (2019), S. 165-188",
			},
			DimTechnology: {
				Concept:     "Systeme, Tools und technische Infrastruktur",
				Researchers: []string{"Orlikowski", "Leonardi", "Zuboff"},
				Reference:   "St. Galler Management Modell (2019), S. 189-212",
			},
		},
	}
}

// DefaultRatings returns the full indicator vocabulary seeded with the
// neutral midpoint rating of 4. Frontends initialize their sliders from it.
func DefaultRatings() Ratings {
	r := make(Ratings, 42)
	for _, group := range perspectiveIndicators {
		for _, key := range group {
			r[key] = 4
		}
	}
	for _, group := range orderElementIndicators {
		for _, key := range group {
			r[key] = 4
		}
	}
	for _, group := range developmentIndicators {
		for _, key := range group {
			r[key] = 4
		}
	}
	for _, key := range environmentIndicators {
		r[key] = 4
	}
	for _, key := range adaptationIndicators {
		r[key] = 4
	}
	for _, key := range resilienceIndicators {
		r[key] = 4
	}
	return r
}
