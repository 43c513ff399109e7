package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dgallion1/clausewise/internal/document"
)

func byType(entities []document.Entity, typ document.EntityType) []string {
	var out []string
	for _, e := range entities {
		if e.Type == typ {
			out = append(out, e.Text)
		}
	}
	return out
}

func TestExtract_AllGroups(t *testing.T) {
	text := "This agreement between Acme Corp and John Smith is dated 01/15/2024 " +
		"and requires payment of $5,000.00 by 2024-03-01."

	got := New().Extract(text)

	require.Len(t, got, 5)
	assert.Equal(t, document.Entity{Text: "Acme Corp", Type: document.EntityOrganization, Confidence: 0.85}, got[0])
	assert.Equal(t, document.Entity{Text: "John Smith", Type: document.EntityPerson, Confidence: 0.85}, got[1])
	assert.Equal(t, document.Entity{Text: "01/15/2024", Type: document.EntityDate, Confidence: 0.90}, got[2])
	assert.Equal(t, document.Entity{Text: "2024-03-01", Type: document.EntityDate, Confidence: 0.90}, got[3])
	assert.Equal(t, document.Entity{Text: "$5,000.00", Type: document.EntityMoney, Confidence: 0.88}, got[4])
}

func TestExtract_OrganizationNotDuplicatedAsPerson(t *testing.T) {
	got := New().Extract("Globex Corporation and Initech Inc signed.")
	assert.Equal(t, []string{"Globex Corporation", "Initech Inc"}, byType(got, document.EntityOrganization))
	assert.Empty(t, byType(got, document.EntityPerson))
}

func TestExtract_Deduplicates(t *testing.T) {
	text := "Jane Doe pays $100 to Jane Doe on 1/2/2024, again $100 on 1/2/2024."
	got := New().Extract(text)
	assert.Equal(t, []string{"Jane Doe"}, byType(got, document.EntityPerson))
	assert.Equal(t, []string{"1/2/2024"}, byType(got, document.EntityDate))
	assert.Equal(t, []string{"$100"}, byType(got, document.EntityMoney))
}

func TestExtract_CapsEachGroup(t *testing.T) {
	text := "Alpha Corp, Beta Inc, Gamma Ltd and Delta Company with Ann Lee and Bob Ray. " +
		"Dates 1/1/2020 2/2/2021 3/3/2022 4/4/2023. Amounts $1 $2 $3 $4 $5."
	got := New().Extract(text)

	parties := append(byType(got, document.EntityOrganization), byType(got, document.EntityPerson)...)
	assert.Equal(t, []string{"Alpha Corp", "Beta Inc", "Gamma Ltd"}, parties)
	assert.Equal(t, []string{"1/1/2020", "2/2/2021", "3/3/2022"}, byType(got, document.EntityDate))
	assert.Equal(t, []string{"$1", "$2", "$3"}, byType(got, document.EntityMoney))
}

func TestExtract_PartiesBeforeDatesBeforeMoney(t *testing.T) {
	got := New().Extract("$250 due 2025-01-01 to Mary Major.")
	require.Len(t, got, 3)
	assert.Equal(t, document.EntityPerson, got[0].Type)
	assert.Equal(t, document.EntityDate, got[1].Type)
	assert.Equal(t, document.EntityMoney, got[2].Type)
}

func TestExtract_MoneyNeedsLeadingDigit(t *testing.T) {
	got := New().Extract("Paid $, and later $,500 plus $1,250.50 in fees.")
	assert.Equal(t, []string{"$1,250.50"}, byType(got, document.EntityMoney))
}

func TestExtract_Nothing(t *testing.T) {
	assert.Empty(t, New().Extract("no entities in this lowercase sentence, 12 items."))
}

func TestExtract_InvalidDateShapesIgnored(t *testing.T) {
	got := New().Extract("Reference 123/45/67890 and 2024-1-1 are not dates.")
	assert.Empty(t, byType(got, document.EntityDate))
}
