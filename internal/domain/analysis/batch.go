package analysis

import (
	"context"
	"errors"
	"sync"
)

// ErrNoDocuments is returned when a batch yields not a single readable
// statement.
var ErrNoDocuments = errors.New("analysis: no documents could be analyzed")

// AnalyzeMany analyzes the given statement files with at most maxWorkers
// running concurrently and merges the results. A file that fails to
// analyze is logged and skipped; it never aborts the batch. Transactions
// carry their source file, and the merge happens in input order so the
// combined result is deterministic regardless of scheduling.
func (a *Analyzer) AnalyzeMany(ctx context.Context, paths []string, maxWorkers int) (*Result, error) {
	if maxWorkers < 1 {
		maxWorkers = 1
	}

	results := make([]*Result, len(paths))
	sem := make(chan struct{}, maxWorkers)
	var wg sync.WaitGroup

	for i, path := range paths {
		wg.Add(1)
		go func(i int, path string) {
			defer wg.Done()
			sem <- struct{}{}
			defer func() { <-sem }()

			res, err := a.Analyze(ctx, path)
			if err != nil {
				a.logger.Warn("statement skipped", "file", path, "error", err)
				return
			}
			results[i] = res
		}(i, path)
	}
	wg.Wait()

	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return mergeResults(results)
}

func mergeResults(results []*Result) (*Result, error) {
	banks := make(map[string]struct{})
	var analyzed []*Result
	for _, res := range results {
		if res == nil {
			continue
		}
		analyzed = append(analyzed, res)
		banks[res.Bank] = struct{}{}
	}
	if len(analyzed) == 0 {
		return nil, ErrNoDocuments
	}
	if len(analyzed) == 1 {
		return analyzed[0], nil
	}

	bankLabel := analyzed[0].Bank
	if len(banks) > 1 {
		bankLabel = "متعدد"
	}
	merged := newResult(bankLabel)
	for _, res := range analyzed {
		merged.SourceFiles = append(merged.SourceFiles, res.SourceFiles...)
		for _, tx := range res.Txns {
			merged.accept(tx)
		}
		merged.Counters.RowsScanned += res.Counters.RowsScanned
		merged.Counters.Skipped += res.Counters.Skipped
	}
	return merged, nil
}
