// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package extract pulls the honoree (reason and optional detail) out of flag
order email text.

Extraction is a two-tier strategy behind one interface:

	chain := extract.Chain{Extractors: []extract.Extractor{
		extract.NewAnthropicExtractor(apiKey),
		extract.PatternExtractor{},
	}}
	ext := chain.Extract(ctx, emailText)

The AnthropicExtractor asks the Messages API for a two-line answer and
treats every failure mode, including a missing API key, as an ordinary
miss. The PatternExtractor matches "in honor of", "in memory of",
"honoring", and "for" clauses. When both miss, the chain falls back to
the generic "Governor's Order" placeholder, so extraction never fails an
ingestion.
*/
package extract
