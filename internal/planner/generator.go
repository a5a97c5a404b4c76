package planner

import (
	"bytes"
	"context"
	_ "embed"
	"errors"
	"fmt"
	"text/template"
	"time"

	"sahabat-belanja/internal/budget"
	"sahabat-belanja/internal/llm"
	"sahabat-belanja/internal/plan"
	"sahabat-belanja/internal/shared"
)

//go:embed generator_prompt.md
var generatorPrompt string

// ErrBudgetInfeasible is returned when the feasibility gate blocks a
// request before any model call is made.
var ErrBudgetInfeasible = errors.New("anggaran terlalu rendah untuk wilayah dan gaya hidup ini")

// ErrUnavailable is the single user-facing category for any failed
// generation attempt: transport errors, empty responses, and
// malformed payloads all land here. Retry is a manual user action.
var ErrUnavailable = errors.New("duh Bund, asisten AI lagi istirahat sebentar. Pastikan koneksi lancar lalu coba klik 'Susun Menu' lagi ya")

type promptData struct {
	City            string
	Lifestyle       budget.Lifestyle
	Budget          float64
	DurationDays    int
	NumberOfPeople  int
	PortionsPerMeal int
	LocalPrices     map[string]float64
}

// Generator produces meal plans through the external model, gated by
// budget feasibility.
type Generator struct {
	textGen llm.TextGenerator
	table   budget.RegionPriceTable
}

// NewGenerator creates a new Generator instance.
func NewGenerator(textGen llm.TextGenerator, table budget.RegionPriceTable) *Generator {
	return &Generator{textGen: textGen, table: table}
}

// Generate runs the feasibility gate and, when it passes, asks the
// model for a plan. localPrices is the region's override snapshot,
// sent as market context to bias the model's reference prices; it may
// be nil. The returned AgentMeta carries latency and token usage even
// when parsing fails, so the attempt can still be metered.
func (g *Generator) Generate(ctx context.Context, prefs budget.UserPreferences, localPrices map[string]float64) (*plan.GenerationResult, shared.AgentMeta, error) {
	meta := shared.AgentMeta{AgentName: "Generator"}

	analysis := budget.Analyze(prefs, g.table)
	if analysis.Disabled {
		return nil, meta, fmt.Errorf("%w: %s", ErrBudgetInfeasible, analysis.Reason)
	}

	prompt, err := buildPrompt(promptData{
		City:            prefs.City,
		Lifestyle:       prefs.Lifestyle,
		Budget:          prefs.Budget,
		DurationDays:    prefs.DurationDays,
		NumberOfPeople:  prefs.NumberOfPeople,
		PortionsPerMeal: prefs.PortionsPerMeal,
		LocalPrices:     localPrices,
	})
	if err != nil {
		return nil, meta, err
	}

	start := time.Now()
	resp, err := g.textGen.GenerateContent(ctx, prompt)
	meta.Latency = time.Since(start)
	meta.Usage = resp.Usage
	if err != nil {
		return nil, meta, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}

	result, err := plan.ParseResult([]byte(resp.Content))
	if err != nil {
		// A malformed payload fails the whole attempt; no partial
		// plan is surfaced.
		return nil, meta, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}

	return result, meta, nil
}

// Analyze exposes the feasibility verdict the gate uses, for callers
// that want to show it before submitting.
func (g *Generator) Analyze(prefs budget.UserPreferences) budget.Analysis {
	return budget.Analyze(prefs, g.table)
}

func buildPrompt(data promptData) (string, error) {
	tmpl, err := template.New("generator").Parse(generatorPrompt)
	if err != nil {
		return "", err
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return "", err
	}

	return buf.String(), nil
}
