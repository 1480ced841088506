package assessment

// Ratings maps indicator keys to their 1-7 ordinal rating. Missing
// indicators are treated as 0, unknown keys are ignored. The engine does
// not enforce the [1,7] range; out-of-range values propagate through the
// means unchanged.
type Ratings map[string]float64

// Verdict classifies a value against its benchmark. Equality with the
// optimal value counts as below (strict inequality).
type Verdict string

const (
	VerdictAbove Verdict = "above"
	VerdictBelow Verdict = "below"
)

// Benchmark is a fixed empirical reference value with its citation.
type Benchmark struct {
	Optimal float64 `json:"optimal"`
	Study   string  `json:"study"`
	Finding string  `json:"finding"`
}

// Comparison is the result of comparing a computed value to a benchmark.
type Comparison struct {
	Current   float64 `json:"current"`
	Optimal   float64 `json:"optimal"`
	Deviation float64 `json:"deviation"`
	Verdict   Verdict `json:"verdict"`
	Study     string  `json:"study"`
	Finding   string  `json:"finding"`
}

// PerspectivesResult holds the aggregated management perspectives.
type PerspectivesResult struct {
	Scores    map[string]float64 `json:"scores"`
	Balance   float64            `json:"balance"`
	Dominant  string             `json:"dominant_perspective"`
	Benchmark Comparison         `json:"benchmark_comparison"`
}

// OrderElementsResult holds the aggregated structural order elements.
type OrderElementsResult struct {
	Scores    map[string]float64 `json:"scores"`
	Coherence float64            `json:"coherence"`
	Weakest   string             `json:"weakest_element"`
	Strongest string             `json:"strongest_element"`
	Benchmark Comparison         `json:"benchmark_comparison"`
}

// DevelopmentResult holds the aggregated development perspectives.
type DevelopmentResult struct {
	Scores       map[string]float64 `json:"scores"`
	Profile      string             `json:"profile"`
	Adaptability float64            `json:"adaptability"`
}

// SystemicResult holds the aggregated systemic properties. Only the
// environment axis carries a benchmark comparison; adaptability and
// resilience have no published reference values.
type SystemicResult struct {
	EnvironmentSensitivity float64    `json:"umwelt_sensitivitaet"`
	Adaptability           float64    `json:"anpassungs_faehigkeit"`
	Resilience             float64    `json:"widerstands_faehigkeit"`
	SystemicHealth         float64    `json:"systemische_gesundheit"`
	Benchmark              Comparison `json:"benchmark_comparison"`
}

// Result is the consolidated outcome of a full analysis. It owns copies of
// every computed score and is never mutated after construction.
type Result struct {
	NormativeScore     float64 `json:"normativ_score"`
	StrategicScore     float64 `json:"strategisch_score"`
	OperationalScore   float64 `json:"operativ_score"`
	PerspectiveBalance float64 `json:"perspektiven_balance"`

	CultureScore    float64 `json:"kultur_score"`
	StructureScore  float64 `json:"strukturen_score"`
	ProcessScore    float64 `json:"prozesse_score"`
	TechnologyScore float64 `json:"technologien_score"`
	OrderCoherence  float64 `json:"ordnungsmomente_kohaerenz"`

	ReflectionCapability     float64 `json:"reflexions_faehigkeit"`
	InnovationCapability     float64 `json:"innovations_faehigkeit"`
	TransformationCapability float64 `json:"transformations_faehigkeit"`

	EnvironmentSensitivity float64 `json:"umwelt_sensitivitaet"`
	Adaptability           float64 `json:"anpassungs_faehigkeit"`
	Resilience             float64 `json:"widerstands_faehigkeit"`

	References          []string           `json:"theoretische_referenzen"`
	EmpiricalIndicators map[string]float64 `json:"empirische_indikatoren"`
}

// Recommendation is one actionable suggestion derived from a full analysis.
type Recommendation struct {
	Topic  string `json:"topic"`
	Advice string `json:"advice"`
}

// TheoryEntry describes the theoretical grounding of one dimension. Pure
// metadata for the frontend's theory view, never consumed by computation.
type TheoryEntry struct {
	Concept      string   `json:"concept"`
	Researchers  []string `json:"researchers"`
	Reference    string   `json:"reference"`
	KeyQuestions []string `json:"key_questions,omitempty"`
}

// Theory groups the theoretical foundations by model layer.
type Theory struct {
	ManagementPerspectives map[string]TheoryEntry `json:"management_perspektiven"`
	OrderElements          map[string]TheoryEntry `json:"ordnungsmomente"`
}
