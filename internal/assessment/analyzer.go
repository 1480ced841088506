package assessment

import (
	"fmt"
	"math"
)

// Analyzer aggregates raw indicator ratings into dimension scores,
// composite indices and benchmark comparisons following the St. Gallen
// Management Model. It holds only immutable reference tables, so a shared
// instance is safe for concurrent use.
type Analyzer struct {
	benchmarks map[string]Benchmark
	theory     Theory
}

// NewAnalyzer creates an analyzer with the static reference tables loaded.
func NewAnalyzer() *Analyzer {
	return &Analyzer{
		benchmarks: loadBenchmarks(),
		theory:     loadTheory(),
	}
}

// InvalidRatingError reports a rating value the arithmetic cannot carry
// (NaN or infinity). Out-of-range finite values are deliberately accepted.
type InvalidRatingError struct {
	Indicator string
	Value     float64
}

func (e *InvalidRatingError) Error() string {
	return fmt.Sprintf("invalid rating for indicator %q: %v", e.Indicator, e.Value)
}

func checkRatings(r Ratings) error {
	for key, v := range r {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return &InvalidRatingError{Indicator: key, Value: v}
		}
	}
	return nil
}

// Theory returns the theoretical foundations table. Informational only.
func (a *Analyzer) Theory() Theory {
	return a.theory
}

// Benchmarks returns a copy of the empirical benchmark table.
func (a *Analyzer) Benchmarks() map[string]Benchmark {
	out := make(map[string]Benchmark, len(a.benchmarks))
	for k, v := range a.benchmarks {
		out[k] = v
	}
	return out
}

// Compare checks a computed value against the named benchmark. Unknown
// keys fall back to the default optimal of 0.7 with empty citation fields
// rather than failing. Equality with the optimal counts as below.
func (a *Analyzer) Compare(value float64, benchmarkKey string) Comparison {
	b, ok := a.benchmarks[benchmarkKey]
	if !ok {
		b = Benchmark{Optimal: defaultOptimal}
	}
	verdict := VerdictBelow
	if value > b.Optimal {
		verdict = VerdictAbove
	}
	return Comparison{
		Current:   value,
		Optimal:   b.Optimal,
		Deviation: value - b.Optimal,
		Verdict:   verdict,
		Study:     b.Study,
		Finding:   b.Finding,
	}
}

// AnalyzeManagementPerspectives scores the normative, strategic and
// operational perspectives and derives their balance index.
func (a *Analyzer) AnalyzeManagementPerspectives(r Ratings) (PerspectivesResult, error) {
	if err := checkRatings(r); err != nil {
		return PerspectivesResult{}, err
	}

	scores := make(map[string]float64, len(perspectiveOrder))
	for _, dim := range perspectiveOrder {
		scores[dim] = meanOf(r, perspectiveIndicators[dim])
	}

	balance := compositeIndex(orderedScores(perspectiveOrder, scores))
	return PerspectivesResult{
		Scores:    scores,
		Balance:   balance,
		Dominant:  maxKey(perspectiveOrder, scores),
		Benchmark: a.Compare(balance, BenchmarkPerspectiveBalance),
	}, nil
}

// AnalyzeOrderElements scores culture, structures, processes and
// technologies and derives their coherence index.
func (a *Analyzer) AnalyzeOrderElements(r Ratings) (OrderElementsResult, error) {
	if err := checkRatings(r); err != nil {
		return OrderElementsResult{}, err
	}

	scores := make(map[string]float64, len(orderElementOrder))
	for _, dim := range orderElementOrder {
		scores[dim] = meanOf(r, orderElementIndicators[dim])
	}

	coherence := compositeIndex(orderedScores(orderElementOrder, scores))
	return OrderElementsResult{
		Scores:    scores,
		Coherence: coherence,
		Weakest:   minKey(orderElementOrder, scores),
		Strongest: maxKey(orderElementOrder, scores),
		Benchmark: a.Compare(coherence, BenchmarkOrderCoherence),
	}, nil
}

// AnalyzeDevelopmentPerspectives scores reflection, innovation and
// transformation capability and classifies the development profile.
func (a *Analyzer) AnalyzeDevelopmentPerspectives(r Ratings) (DevelopmentResult, error) {
	if err := checkRatings(r); err != nil {
		return DevelopmentResult{}, err
	}

	scores := make(map[string]float64, len(developmentOrder))
	for _, dim := range developmentOrder {
		scores[dim] = meanOf(r, developmentIndicators[dim])
	}

	return DevelopmentResult{
		Scores:       scores,
		Profile:      developmentProfile(scores),
		Adaptability: mean(orderedScores(developmentOrder, scores)),
	}, nil
}

// AnalyzeSystemicProperties scores environment sensitivity, adaptability
// and resilience. Only the environment axis is benchmarked; there are no
// published reference values for the other two.
func (a *Analyzer) AnalyzeSystemicProperties(r Ratings) (SystemicResult, error) {
	if err := checkRatings(r); err != nil {
		return SystemicResult{}, err
	}

	env := meanOf(r, environmentIndicators)
	adapt := meanOf(r, adaptationIndicators)
	resilience := meanOf(r, resilienceIndicators)

	return SystemicResult{
		EnvironmentSensitivity: env,
		Adaptability:           adapt,
		Resilience:             resilience,
		SystemicHealth:         mean([]float64{env, adapt, resilience}),
		Benchmark:              a.Compare(env, BenchmarkEnvironmentSensitivity),
	}, nil
}

// RunFullAnalysis runs all four aggregators on the same ratings and
// assembles the consolidated result. Each field is identical to what the
// standalone aggregator produces for the same input. An empty ratings map
// degenerates to all-zero scores with composite indices of exactly 1.
func (a *Analyzer) RunFullAnalysis(r Ratings) (Result, error) {
	if err := checkRatings(r); err != nil {
		return Result{}, err
	}

	perspectives, _ := a.AnalyzeManagementPerspectives(r)
	orderElements, _ := a.AnalyzeOrderElements(r)
	development, _ := a.AnalyzeDevelopmentPerspectives(r)
	systemic, _ := a.AnalyzeSystemicProperties(r)

	return Result{
		NormativeScore:     perspectives.Scores[DimNormative],
		StrategicScore:     perspectives.Scores[DimStrategic],
		OperationalScore:   perspectives.Scores[DimOperational],
		PerspectiveBalance: perspectives.Balance,

		CultureScore:    orderElements.Scores[DimCulture],
		StructureScore:  orderElements.Scores[DimStructure],
		ProcessScore:    orderElements.Scores[DimProcess],
		TechnologyScore: orderElements.Scores[DimTechnology],
		OrderCoherence:  orderElements.Coherence,

		ReflectionCapability:     development.Scores[DimReflection],
		InnovationCapability:     development.Scores[DimInnovation],
		TransformationCapability: development.Scores[DimTransformation],

		EnvironmentSensitivity: systemic.EnvironmentSensitivity,
		Adaptability:           systemic.Adaptability,
		Resilience:             systemic.Resilience,

		References:          append([]string(nil), citations...),
		EmpiricalIndicators: map[string]float64{},
	}, nil
}

// developmentProfile picks the profile label of the maximal development
// dimension. The balanced fallback only triggers if the winning dimension
// had no registered label, which the declared tables rule out.
func developmentProfile(scores map[string]float64) string {
	if label, ok := developmentProfiles[maxKey(developmentOrder, scores)]; ok {
		return label
	}
	return ProfileBalanced
}

func orderedScores(order []string, scores map[string]float64) []float64 {
	vals := make([]float64, len(order))
	for i, k := range order {
		vals[i] = scores[k]
	}
	return vals
}
