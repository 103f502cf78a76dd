package client

import (
	"context"
	"fmt"
	"io"
	"strings"

	resemblapb "github.com/tuem/resembla/pb/resembla/server"
)

// Finder is the part of Client that Run needs.
type Finder interface {
	Find(ctx context.Context, query string) ([]*resemblapb.ResemblaResult, error)
}

// Evaluator is the part of Client that RunEval needs.
type Evaluator interface {
	Eval(ctx context.Context, query string, candidates []string) ([]*resemblapb.ResemblaResult, error)
}

// Printer writes queries and their results in the plain line format
// shared by the Resembla sample clients.
type Printer struct {
	w       io.Writer
	verbose bool
}

// NewPrinter returns a Printer writing to w. A verbose printer adds the
// score of every result.
func NewPrinter(w io.Writer, verbose bool) *Printer {
	return &Printer{w: w, verbose: verbose}
}

// PrintQuery writes the "query:" line that heads a query's results.
func (p *Printer) PrintQuery(query string) error {
	_, err := fmt.Fprintf(p.w, "query: %s\n", query)
	return err
}

// PrintCandidates writes the candidate list of an on-demand evaluation.
func (p *Printer) PrintCandidates(candidates []string) error {
	_, err := fmt.Fprintf(p.w, "candidates: %s\n", strings.Join(candidates, ", "))
	return err
}

// PrintResults writes one text line per result, keeping the given order.
func (p *Printer) PrintResults(results []*resemblapb.ResemblaResult) error {
	for _, r := range results {
		if _, err := fmt.Fprintf(p.w, "  text: %s\n", r.GetText()); err != nil {
			return err
		}
		if !p.verbose {
			continue
		}
		if _, err := fmt.Fprintf(p.w, "  score: %f\n", r.GetScore()); err != nil {
			return err
		}
	}
	return nil
}

// Run sends each query in turn and prints the query and its results once
// the response has arrived. The first failure stops the loop; nothing is
// printed for the failing query or the ones after it.
func Run(ctx context.Context, f Finder, p *Printer, queries []string) error {
	for _, query := range queries {
		results, err := f.Find(ctx, query)
		if err != nil {
			return err
		}
		if err := p.PrintQuery(query); err != nil {
			return fmt.Errorf("unable to write output: %w", err)
		}
		if err := p.PrintResults(results); err != nil {
			return fmt.Errorf("unable to write output: %w", err)
		}
	}
	return nil
}

// RunEval scores candidates against query with a single call and prints
// the outcome.
func RunEval(ctx context.Context, e Evaluator, p *Printer, query string, candidates []string) error {
	results, err := e.Eval(ctx, query, candidates)
	if err != nil {
		return err
	}
	if err := p.PrintQuery(query); err != nil {
		return fmt.Errorf("unable to write output: %w", err)
	}
	if err := p.PrintCandidates(candidates); err != nil {
		return fmt.Errorf("unable to write output: %w", err)
	}
	if err := p.PrintResults(results); err != nil {
		return fmt.Errorf("unable to write output: %w", err)
	}
	return nil
}
