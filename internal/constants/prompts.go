package constants

import (
	"fmt"
	"strings"
)

// Placeholders substituted into the SQL prompt at request time.
const (
	ChatHistoryPlaceholder = "{chat_history}"
	QuestionPlaceholder    = "{question}"
)

// FewShotExamples steer the model towards returning bare SQL in the
// expected shape. The questions target the classicmodels sample schema but
// the format contract is schema-independent.
const FewShotExamples = `Examples:

Q: List all customers from France.
A:
SELECT customerName FROM customers WHERE country = 'France';

Q: Which product has the highest price?
A:
SELECT productName FROM products ORDER BY buyPrice DESC LIMIT 1;

Q: What is the total payment amount received?
A:
SELECT SUM(amount) FROM payments;

Q: How many orders were placed by each customer?
A:
SELECT customerNumber, COUNT(*) as order_count FROM orders GROUP BY customerNumber;`

// BuildSQLPrompt composes the SQL generation prompt template: instruction
// text, the schema description, the few-shot examples and placeholders for
// the chat history and the incoming question. The "raw SQL only" contract
// is advisory; sanitization downstream enforces it.
func BuildSQLPrompt(dialect, schema string) string {
	return fmt.Sprintf(`You are an expert SQL assistant.
Use the schema and examples below to write a valid %s query for the user's question.
Only return the raw SQL query without explanation or markdown formatting.

Schema:
%s

%s

Chat History:
%s

User: %s
SQL:`, dialect, schema, FewShotExamples, ChatHistoryPlaceholder, QuestionPlaceholder)
}

// RenderSQLPrompt substitutes the chat history and question into a template
// produced by BuildSQLPrompt.
func RenderSQLPrompt(template, chatHistory, question string) string {
	return strings.NewReplacer(
		ChatHistoryPlaceholder, chatHistory,
		QuestionPlaceholder, question,
	).Replace(template)
}

// BuildAnswerPrompt composes the rephrasing prompt. The result argument is
// the stringified query result, which may be an error record; the model is
// expected to explain failures conversationally.
func BuildAnswerPrompt(question, query, result string) string {
	return fmt.Sprintf(`Given the user question, SQL query, and result, return a helpful, user-friendly answer.

Question: %s
SQL Query: %s
SQL Result: %s
Answer:`, question, query, result)
}
