package segment

import (
	"fmt"
	"reflect"
	"strings"
	"testing"
)

func section(n int, body string) string {
	return fmt.Sprintf("\n%d. %s", n, body)
}

var longBody = "The Recipient shall hold all Confidential Information in strict confidence at all times."

func TestSegment_NumberedSections(t *testing.T) {
	text := "AGREEMENT between the parties." + section(1, longBody) + section(2, longBody+" Second.")
	clauses, strategy := SegmentWithStrategy(text, DefaultConfig())

	if strategy != StrategyNumbered {
		t.Errorf("expected strategy %q, got %q", StrategyNumbered, strategy)
	}
	if len(clauses) != 2 {
		t.Fatalf("expected 2 clauses, got %d: %q", len(clauses), clauses)
	}
	if clauses[0] != longBody {
		t.Errorf("expected first clause %q, got %q", longBody, clauses[0])
	}
	if !strings.HasSuffix(clauses[1], "Second.") {
		t.Errorf("expected second clause to end with %q, got %q", "Second.", clauses[1])
	}
}

func TestSegment_PreambleIsDropped(t *testing.T) {
	preamble := strings.Repeat("Preamble text that is long enough to count. ", 5)
	text := preamble + section(1, longBody)
	clauses := Segment(text, DefaultConfig())
	if len(clauses) != 1 {
		t.Fatalf("expected 1 clause, got %d", len(clauses))
	}
	if strings.Contains(clauses[0], "Preamble") {
		t.Errorf("expected preamble to be dropped, got %q", clauses[0])
	}
}

func TestSegment_NumberAtStartOfText(t *testing.T) {
	text := "1. " + longBody + section(2, longBody)
	clauses := Segment(text, DefaultConfig())
	if len(clauses) != 2 {
		t.Fatalf("expected 2 clauses, got %d: %q", len(clauses), clauses)
	}
}

func TestSegment_ShortSectionsFiltered(t *testing.T) {
	text := "Intro" + section(1, "Too short.") + section(2, longBody)
	clauses := Segment(text, DefaultConfig())
	if len(clauses) != 1 || clauses[0] != longBody {
		t.Fatalf("expected only the long section, got %q", clauses)
	}
}

func TestSegment_SectionLengthIsStrictlyGreater(t *testing.T) {
	exactly50 := strings.Repeat("a", 50)
	text := "Intro" + section(1, exactly50)
	clauses, strategy := SegmentWithStrategy(text, DefaultConfig())
	if len(clauses) != 0 {
		t.Errorf("expected a 50-character section to be dropped, got %q", clauses)
	}
	if strategy != StrategyNone {
		t.Errorf("expected strategy %q, got %q", StrategyNone, strategy)
	}
}

func TestSegment_NumberedWinsOverParagraphs(t *testing.T) {
	para := strings.Repeat("This paragraph is long enough to be a clause on its own. ", 3)
	text := para + "\n\n" + para + section(1, longBody)
	clauses, strategy := SegmentWithStrategy(text, DefaultConfig())
	if strategy != StrategyNumbered {
		t.Fatalf("expected numbered strategy, got %q", strategy)
	}
	if len(clauses) != 1 || clauses[0] != longBody {
		t.Errorf("expected only the numbered section, got %q", clauses)
	}
}

func TestSegment_ParagraphFallback(t *testing.T) {
	para1 := strings.Repeat("First paragraph has plenty of words in it. ", 3)
	para2 := "Short one."
	para3 := strings.Repeat("Third paragraph also has plenty of words. ", 3)
	text := para1 + "\n\n" + para2 + "\n\n" + para3

	clauses, strategy := SegmentWithStrategy(text, DefaultConfig())
	if strategy != StrategyParagraph {
		t.Errorf("expected strategy %q, got %q", StrategyParagraph, strategy)
	}
	if len(clauses) != 2 {
		t.Fatalf("expected 2 paragraphs, got %d", len(clauses))
	}
	if clauses[0] != strings.TrimSpace(para1) || clauses[1] != strings.TrimSpace(para3) {
		t.Errorf("unexpected paragraphs %q", clauses)
	}
}

func TestSegment_NoClauses(t *testing.T) {
	text := "Short line one.\n\nShort line two.\n\nShort line three."
	clauses, strategy := SegmentWithStrategy(text, DefaultConfig())
	if len(clauses) != 0 {
		t.Errorf("expected no clauses, got %q", clauses)
	}
	if strategy != StrategyNone {
		t.Errorf("expected strategy %q, got %q", StrategyNone, strategy)
	}
}

func TestSegment_CapAtSix(t *testing.T) {
	var sb strings.Builder
	sb.WriteString("Preamble")
	for i := 1; i <= 20; i++ {
		sb.WriteString(section(i, longBody))
	}
	clauses := Segment(sb.String(), DefaultConfig())
	if len(clauses) != 6 {
		t.Errorf("expected 6 clauses, got %d", len(clauses))
	}

	var paras []string
	for i := 0; i < 20; i++ {
		paras = append(paras, strings.Repeat("paragraph words ", 10))
	}
	clauses = Segment(strings.Join(paras, "\n\n"), DefaultConfig())
	if len(clauses) != 6 {
		t.Errorf("expected 6 paragraph clauses, got %d", len(clauses))
	}
}

func TestSegment_ConfigurableCap(t *testing.T) {
	var sb strings.Builder
	for i := 1; i <= 10; i++ {
		sb.WriteString(section(i, longBody))
	}
	clauses := Segment(sb.String(), Config{MaxClauses: 9})
	if len(clauses) != 9 {
		t.Errorf("expected 9 clauses, got %d", len(clauses))
	}
}

func TestSegment_Deterministic(t *testing.T) {
	text := "Intro" + section(1, longBody) + section(2, longBody) + section(3, longBody)
	first := Segment(text, DefaultConfig())
	second := Segment(text, DefaultConfig())
	if !reflect.DeepEqual(first, second) {
		t.Errorf("expected identical results, got %q and %q", first, second)
	}
}

func TestSegment_ZeroConfigUsesDefaults(t *testing.T) {
	text := "Intro" + section(1, longBody)
	clauses := Segment(text, Config{})
	if len(clauses) != 1 {
		t.Errorf("expected defaults to apply, got %d clauses", len(clauses))
	}
}
