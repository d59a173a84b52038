// Package targeting normalizes a group's screening questions into the
// uniform question/option schema the supplier surface publishes.
//
// Raw option documents are opaque key to option-list maps stored per survey.
// The distinguished AGE key carries encoded age ranges instead of option
// text. Normalization is driven by the group's question reference order, not
// by the raw document's key order, and a question that resolves to zero
// options is dropped outright. The same normalizer serves both observed call
// patterns: targeting attached to the group record and targeting fetched
// from the separate options store.
package targeting

// AgeKey is the question key whose options encode age ranges
const AgeKey = "AGE"

// QuestionRef is a group's reference to one screening question.
// JSON tags match the stored shape on the group record
type QuestionRef struct {
	Key        string `json:"q_key"`
	Text       string `json:"q_txt"`
	Type       string `json:"q_type"`
	CategoryID int64  `json:"q_cat"`
}

// RawOption is one stored option as it appears in the option document
type RawOption struct {
	OptionID   int64  `json:"opt_id"`
	OptionText string `json:"opt_txt,omitempty"`
	StartAge   *int   `json:"startAge,omitempty"`
	EndAge     *int   `json:"endAge,omitempty"`
}

// OptionDoc is a survey's raw targeting document keyed by question key
type OptionDoc map[string][]RawOption

// Option is the published shape; AGE questions carry the age fields,
// everything else carries option text
type Option struct {
	OptionID   int64  `json:"OptionId"`
	OptionText string `json:"OptionText,omitempty"`
	AgeStart   *int   `json:"ageStart,omitempty"`
	AgeEnd     *int   `json:"ageEnd,omitempty"`
}

// Question is one normalized screening question. Language is set only on
// the question-bank surface, where the category carries a survey language;
// targeting attached to a group record publishes without it
type Question struct {
	Key      string   `json:"QuestionKey"`
	Text     string   `json:"QuestionText"`
	Type     string   `json:"QuestionType"`
	Category string   `json:"QuestionCategory,omitempty"`
	Language string   `json:"Language,omitempty"`
	Options  []Option `json:"Options"`
}

// Normalize resolves refs against doc in ref order. categoryNames supplies
// the display name per category id; a missing id leaves the field empty
func Normalize(refs []QuestionRef, doc OptionDoc, categoryNames map[int64]string) []Question {
	out := make([]Question, 0, len(refs))
	for _, ref := range refs {
		raw := doc[ref.Key]
		if len(raw) == 0 {
			continue
		}
		q := Question{
			Key:      ref.Key,
			Text:     ref.Text,
			Type:     ref.Type,
			Category: categoryNames[ref.CategoryID],
			Options:  make([]Option, 0, len(raw)),
		}
		for _, ro := range raw {
			if ref.Key == AgeKey {
				q.Options = append(q.Options, Option{
					OptionID: ro.OptionID,
					AgeStart: copyInt(ro.StartAge),
					AgeEnd:   copyInt(ro.EndAge),
				})
				continue
			}
			q.Options = append(q.Options, Option{
				OptionID:   ro.OptionID,
				OptionText: ro.OptionText,
			})
		}
		out = append(out, q)
	}
	return out
}

// copyInt detaches the pointer from the raw document so callers can't
// mutate normalized output through shared storage
func copyInt(p *int) *int {
	if p == nil {
		return nil
	}
	v := *p
	return &v
}
