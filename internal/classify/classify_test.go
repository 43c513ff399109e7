package classify

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dgallion1/clausewise/internal/document"
)

func TestClassify_Table(t *testing.T) {
	c := New(nil, nil)
	tests := []struct {
		text  string
		label string
		conf  float64
	}{
		{"This Non-Disclosure Agreement binds both parties.", "NDA", 0.92},
		{"The tenant accepts the LEASE terms.", "Lease Agreement", 0.89},
		{"Monthly rental is due on the first.", "Lease Agreement", 0.89},
		{"The Employee reports to the manager.", "Employment Contract", 0.87},
		{"Provider delivers consulting services.", "Service Agreement", 0.85},
		{"The parties agree as follows.", "General Contract", 0.70},
	}
	for _, tt := range tests {
		t.Run(tt.label, func(t *testing.T) {
			got := c.Classify(tt.text)
			assert.Equal(t, document.Classification{Label: tt.label, Confidence: tt.conf}, got)
		})
	}
}

func TestClassify_PriorityOrder(t *testing.T) {
	c := New(nil, nil)
	got := c.Classify("This lease contains confidential terms.")
	assert.Equal(t, "NDA", got.Label)

	got = c.Classify("The employee receives services and a rental car.")
	assert.Equal(t, "Lease Agreement", got.Label)
}

func TestClassify_CustomRules(t *testing.T) {
	c := New([]Rule{{Keywords: []string{"Purchase"}, Label: "Sales Contract", Confidence: 0.8}}, nil)
	assert.Equal(t, "Sales Contract", c.Classify("purchase order").Label)
	assert.Equal(t, Fallback, c.Classify("confidential"))
}

func TestCategorizeClause(t *testing.T) {
	c := New(nil, nil)
	assert.Equal(t, "Confidentiality", c.CategorizeClause(1, "Recipient keeps all information confidential."))
	assert.Equal(t, "Termination", c.CategorizeClause(2, "Either party may terminate on notice."))
	assert.Equal(t, "Payment", c.CategorizeClause(3, "Client pays $500 monthly."))
	assert.Equal(t, "Governing Law", c.CategorizeClause(4, "This agreement is governed by Delaware law."))
	assert.Equal(t, "Clause Type 5", c.CategorizeClause(5, "Headings are for convenience only."))
}

func TestNew_DoesNotMutateInput(t *testing.T) {
	rules := []Rule{{Keywords: []string{"ABC"}, Label: "X", Confidence: 1}}
	New(rules, nil)
	assert.Equal(t, "ABC", rules[0].Keywords[0])
}
