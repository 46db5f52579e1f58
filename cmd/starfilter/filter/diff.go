package filter

import (
	"fmt"
	"io"
	"strings"

	"github.com/pmezard/go-difflib/difflib"
)

// DiffResult holds a unified diff between the current and the proposed
// filtered catalog.
type DiffResult struct {
	Unified        string
	HasDifferences bool
}

// ComputeDiff computes a unified diff between two catalog documents.
func ComputeDiff(oldDoc, newDoc, oldLabel, newLabel string) (*DiffResult, error) {
	diff := difflib.UnifiedDiff{
		A:        splitLines(oldDoc),
		B:        splitLines(newDoc),
		FromFile: oldLabel,
		ToFile:   newLabel,
		Context:  3,
	}

	unified, err := difflib.GetUnifiedDiffString(diff)
	if err != nil {
		return nil, fmt.Errorf("computing diff: %w", err)
	}

	return &DiffResult{
		Unified:        unified,
		HasDifferences: unified != "",
	}, nil
}

// splitLines keeps the line terminators difflib expects. An empty document
// has no lines.
func splitLines(doc string) []string {
	if doc == "" {
		return nil
	}
	lines := strings.SplitAfter(doc, "\n")
	if last := len(lines) - 1; lines[last] == "" {
		lines = lines[:last]
	} else {
		lines[last] += "\n"
	}
	return lines
}

// WriteDiff writes result to w.
func WriteDiff(w io.Writer, result *DiffResult) error {
	if !result.HasDifferences {
		_, err := fmt.Fprintln(w, "No differences found.")
		return err
	}

	_, err := io.WriteString(w, strings.TrimRight(result.Unified, "\n")+"\n")
	return err
}
