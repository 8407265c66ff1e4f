package utils

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestCleanSQLOutput(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{
			name:  "fenced with language tag",
			input: "```sql\nSELECT customerName FROM customers WHERE country = 'France';\n```",
			want:  "SELECT customerName FROM customers WHERE country = 'France';",
		},
		{
			name:  "fenced without language tag",
			input: "```\nSELECT 1;\n```",
			want:  "SELECT 1;",
		},
		{
			name:  "prose before statement",
			input: "Here is the query you asked for:\nSELECT name FROM products;",
			want:  "SELECT name FROM products;",
		},
		{
			name:  "keeps only the final statement block",
			input: "First I tried:\nSELECT 1;\nBut the better query is:\nSELECT name FROM products;",
			want:  "SELECT name FROM products;",
		},
		{
			name:  "with statement",
			input: "Explanation text\nWITH totals AS (SELECT 1) SELECT * FROM totals;",
			want:  "WITH totals AS (SELECT 1) SELECT * FROM totals;",
		},
		{
			name:  "plain statement unchanged",
			input: "  SELECT COUNT(*) FROM orders;  ",
			want:  "SELECT COUNT(*) FROM orders;",
		},
		{
			name:  "no fences no keywords",
			input: "  I cannot answer that.  ",
			want:  "I cannot answer that.",
		},
		{
			name:  "empty input",
			input: "",
			want:  "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := CleanSQLOutput(tt.input)
			if got != tt.want {
				t.Errorf("CleanSQLOutput(%q) = %q, want %q", tt.input, got, tt.want)
			}
			// Sanitization is idempotent: a second pass changes nothing.
			if again := CleanSQLOutput(got); again != got {
				t.Errorf("CleanSQLOutput not idempotent: %q -> %q", got, again)
			}
		})
	}
}

func TestCleanSQLOutputStripsAllBackticks(t *testing.T) {
	got := CleanSQLOutput("```sql\nSELECT customerName FROM customers WHERE country = 'France';\n```")
	if strings.Contains(got, "`") {
		t.Errorf("sanitized query still contains backticks: %q", got)
	}
	if !strings.HasPrefix(got, "SELECT") {
		t.Errorf("sanitized query does not begin with SELECT: %q", got)
	}
}

func TestCorrectionsApply(t *testing.T) {
	corrections := DefaultCorrections()

	tests := []struct {
		name  string
		input string
		want  string
	}{
		{
			name:  "rewrites hallucinated primary key",
			input: "SELECT customer_id FROM customers WHERE customer_id = 1;",
			want:  "SELECT customerNumber FROM customers WHERE customerNumber = 1;",
		},
		{
			name:  "rewrites qualified price column",
			input: "SELECT products.price FROM products;",
			want:  "SELECT products.buyPrice FROM products;",
		},
		{
			name:  "rewrites table name",
			input: "SELECT * FROM order_details;",
			want:  "SELECT * FROM orderdetails;",
		},
		{
			name:  "no keys leaves input unchanged",
			input: "SELECT customerName FROM customers;",
			want:  "SELECT customerName FROM customers;",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := corrections.Apply(tt.input); got != tt.want {
				t.Errorf("Apply(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestCorrectionsApplyInOrder(t *testing.T) {
	corrections := Corrections{
		{Wrong: "a", Right: "b"},
		{Wrong: "b", Right: "c"},
	}
	// Replacements run in declared order, so earlier outputs are visible to
	// later rules.
	if got := corrections.Apply("a"); got != "c" {
		t.Errorf("Apply(\"a\") = %q, want \"c\"", got)
	}
}

func TestLoadCorrectionsDefaults(t *testing.T) {
	corrections, err := LoadCorrections("")
	if err != nil {
		t.Fatalf("LoadCorrections(\"\") error = %v", err)
	}
	if len(corrections) == 0 {
		t.Fatal("expected built-in default corrections")
	}
	if corrections[0].Wrong != "customer_id" || corrections[0].Right != "customerNumber" {
		t.Errorf("unexpected first correction: %+v", corrections[0])
	}
}

func TestLoadCorrectionsFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "corrections.json")
	content := `[{"wrong": "user_id", "right": "userNumber"}]`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	corrections, err := LoadCorrections(path)
	if err != nil {
		t.Fatalf("LoadCorrections() error = %v", err)
	}
	if len(corrections) != 1 {
		t.Fatalf("len(corrections) = %d, want 1", len(corrections))
	}
	if got := corrections.Apply("SELECT user_id FROM users;"); got != "SELECT userNumber FROM users;" {
		t.Errorf("Apply() = %q", got)
	}
}

func TestLoadCorrectionsInvalidFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "corrections.json")
	if err := os.WriteFile(path, []byte("not json"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadCorrections(path); err == nil {
		t.Fatal("expected error for invalid corrections file")
	}
}
