// Package analysis is the ratio computation and scoring engine. It derives
// activity, liquidity, solvency, and profitability ratios from extracted
// statement line items, computes the Altman Z-Score and Piotroski F-Score,
// and classifies both into risk/health bands.
//
// The engine is pure and stateless: it holds nothing between runs, takes a
// Fundamentals snapshot, and returns an immutable AnalysisResult. Missing
// line items propagate as a missing sentinel through all arithmetic; a
// single absent label never fails a run.
package analysis
