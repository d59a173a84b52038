package targeting

import "testing"

func intPtr(v int) *int { return &v }

func TestNormalize_AgeQuestion(t *testing.T) {
	t.Parallel()

	refs := []QuestionRef{{Key: "AGE", Text: "What is your age?", Type: "Single Punch", CategoryID: 3}}
	doc := OptionDoc{
		"AGE": {{OptionID: 1, StartAge: intPtr(18), EndAge: intPtr(24)}},
	}
	got := Normalize(refs, doc, map[int64]string{3: "Demographics"})

	if len(got) != 1 {
		t.Fatalf("got %d questions, want 1", len(got))
	}
	q := got[0]
	if q.Category != "Demographics" {
		t.Fatalf("category = %q", q.Category)
	}
	if len(q.Options) != 1 {
		t.Fatalf("got %d options, want 1", len(q.Options))
	}
	opt := q.Options[0]
	if opt.OptionID != 1 || opt.AgeStart == nil || *opt.AgeStart != 18 || opt.AgeEnd == nil || *opt.AgeEnd != 24 {
		t.Fatalf("unexpected age option: %+v", opt)
	}
	if opt.OptionText != "" {
		t.Fatalf("age option must not carry text, got %q", opt.OptionText)
	}
}

func TestNormalize_DropsQuestionsWithoutOptions(t *testing.T) {
	t.Parallel()

	refs := []QuestionRef{
		{Key: "GENDER", Text: "Gender?", Type: "Single Punch"},
		{Key: "INDUSTRY", Text: "Industry?", Type: "Multi Punch"}, // absent from doc
		{Key: "EMPLOYMENT", Text: "Employment?", Type: "Single Punch"}, // present but empty
	}
	doc := OptionDoc{
		"GENDER":     {{OptionID: 1, OptionText: "Male"}, {OptionID: 2, OptionText: "Female"}},
		"EMPLOYMENT": {},
	}
	got := Normalize(refs, doc, nil)

	if len(got) != 1 {
		t.Fatalf("got %d questions, want 1: %+v", len(got), got)
	}
	if got[0].Key != "GENDER" {
		t.Fatalf("kept %q, want GENDER", got[0].Key)
	}
}

func TestNormalize_PreservesRefOrder(t *testing.T) {
	t.Parallel()

	// doc key order is irrelevant; ref order governs
	refs := []QuestionRef{
		{Key: "RELATIONSHIP"},
		{Key: "AGE"},
		{Key: "GENDER"},
	}
	doc := OptionDoc{
		"GENDER":       {{OptionID: 1, OptionText: "Male"}},
		"AGE":          {{OptionID: 9, StartAge: intPtr(30), EndAge: intPtr(45)}},
		"RELATIONSHIP": {{OptionID: 4, OptionText: "Single"}},
	}
	got := Normalize(refs, doc, nil)

	want := []string{"RELATIONSHIP", "AGE", "GENDER"}
	if len(got) != len(want) {
		t.Fatalf("got %d questions, want %d", len(got), len(want))
	}
	for i, k := range want {
		if got[i].Key != k {
			t.Fatalf("position %d: got %q, want %q", i, got[i].Key, k)
		}
	}
}

func TestNormalize_MissingCategoryNameLeavesFieldEmpty(t *testing.T) {
	t.Parallel()

	refs := []QuestionRef{{Key: "GENDER", CategoryID: 77}}
	doc := OptionDoc{"GENDER": {{OptionID: 1, OptionText: "Male"}}}
	got := Normalize(refs, doc, map[int64]string{})

	if len(got) != 1 || got[0].Category != "" {
		t.Fatalf("expected empty category, got %+v", got)
	}
}

func TestNormalize_DetachesAgePointers(t *testing.T) {
	t.Parallel()

	start := 18
	doc := OptionDoc{"AGE": {{OptionID: 1, StartAge: &start, EndAge: intPtr(24)}}}
	got := Normalize([]QuestionRef{{Key: "AGE"}}, doc, nil)

	start = 99
	if *got[0].Options[0].AgeStart != 18 {
		t.Fatalf("normalized output aliases raw document storage")
	}
}
