package utils

import (
	"encoding/json"
	"fmt"
	"os"
	"regexp"
	"strings"
)

var (
	codeFenceRegex    = regexp.MustCompile("```sql|```")
	stmtBoundaryRegex = regexp.MustCompile(`\n(SELECT|WITH|INSERT|UPDATE|DELETE)`)
)

// CleanSQLOutput extracts a runnable SQL statement from raw model output.
// It trims whitespace, strips triple-backtick fences (with or without a sql
// language tag) and, when commentary precedes the statement, keeps only the
// text from the last line starting with a SQL keyword onward. Pure function;
// never fails — unmatched input is returned trimmed but otherwise unchanged.
func CleanSQLOutput(text string) string {
	sql := strings.TrimSpace(text)
	sql = strings.TrimSpace(codeFenceRegex.ReplaceAllString(sql, ""))

	if matches := stmtBoundaryRegex.FindAllStringSubmatchIndex(sql, -1); len(matches) > 0 {
		last := matches[len(matches)-1]
		sql = sql[last[2]:]
	}

	return strings.TrimSpace(sql)
}

// Correction maps a commonly-hallucinated identifier to the schema's actual
// name.
type Correction struct {
	Wrong string `json:"wrong"`
	Right string `json:"right"`
}

// Corrections is an ordered set of exact-substring replacements. It is a
// blunt compensatory heuristic for one known schema, carried as
// configuration data rather than code.
type Corrections []Correction

// Apply replaces every occurrence of each correction's Wrong substring, in
// order. Inputs containing none of the keys pass through unchanged.
func (c Corrections) Apply(sql string) string {
	for _, correction := range c {
		sql = strings.ReplaceAll(sql, correction.Wrong, correction.Right)
	}
	return sql
}

// DefaultCorrections covers the classicmodels sample schema.
func DefaultCorrections() Corrections {
	return Corrections{
		{Wrong: "customer_id", Right: "customerNumber"},
		{Wrong: "order_id", Right: "orderNumber"},
		{Wrong: "order_details", Right: "orderdetails"},
		{Wrong: "product_id", Right: "productCode"},
		{Wrong: "products.price", Right: "products.buyPrice"},
	}
}

// LoadCorrections reads a correction table from a JSON file. An empty path
// selects the built-in defaults.
func LoadCorrections(path string) (Corrections, error) {
	if path == "" {
		return DefaultCorrections(), nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read SQL corrections file: %w", err)
	}

	var corrections Corrections
	if err := json.Unmarshal(data, &corrections); err != nil {
		return nil, fmt.Errorf("failed to parse SQL corrections file %s: %w", path, err)
	}
	return corrections, nil
}
