package mapping

import (
	"fmt"
	"sort"

	"payrollimport/catalog"
)

// Ngưỡng phát đề xuất theo nguồn ứng viên
const (
	aliasSuggestionMin = 20 // ứng viên đến từ bí danh
	labelSuggestionMin = 15 // ứng viên đến từ nhãn trường
	autoMapThreshold   = 70 // trên ngưỡng này đề xuất ánh xạ luôn
	maxAlternatives    = 3
)

// scoredCandidate ứng viên đề xuất kèm nguồn gốc để áp ngưỡng tương ứng
type scoredCandidate struct {
	fieldID   string
	score     float64
	reason    string
	fromAlias bool
}

// Suggester sinh đề xuất ánh xạ cho các cột mà resolver không phân giải được
type Suggester struct {
	cat     *catalog.Catalog
	aliases []Alias
}

// NewSuggester tạo suggester từ danh mục trường và bảng bí danh;
// bí danh không hoạt động bị loại ngay tại đây.
func NewSuggester(cat *catalog.Catalog, aliases []Alias) *Suggester {
	active := make([]Alias, 0, len(aliases))
	for _, a := range aliases {
		if a.IsActive {
			active = append(active, a)
		}
	}
	return &Suggester{cat: cat, aliases: active}
}

// Suggest sinh đề xuất cho từng cột chưa ánh xạ được. Mỗi cột giữ lại
// ứng viên tốt nhất cùng tối đa 3 ứng viên dự phòng; cột không có ứng
// viên nào vượt ngưỡng thì không có đề xuất.
func (s *Suggester) Suggest(unmappedColumns []string) []Suggestion {
	var suggestions []Suggestion

	for _, column := range unmappedColumns {
		candidates := s.collectCandidates(column)
		if len(candidates) == 0 {
			continue
		}

		best := candidates[0]
		suggestion := Suggestion{
			InputColumnName:  column,
			SuggestedFieldID: best.fieldID,
			ConfidenceScore:  best.score,
			Reason:           best.reason,
			Action:           ActionReview,
		}
		if best.score > autoMapThreshold {
			suggestion.Action = ActionMap
		}

		for _, c := range candidates[1:] {
			if len(suggestion.Alternatives) >= maxAlternatives {
				break
			}
			suggestion.Alternatives = append(suggestion.Alternatives, Alternative{
				FieldID: c.fieldID,
				Score:   c.score,
				Reason:  c.reason,
			})
		}

		suggestions = append(suggestions, suggestion)
	}

	return suggestions
}

// collectCandidates chấm điểm cột với mọi bí danh và mọi nhãn trường,
// loại ứng viên dưới ngưỡng của nguồn tương ứng, khử trùng lặp theo
// field_id (giữ điểm cao nhất) và sắp xếp giảm dần theo điểm.
func (s *Suggester) collectCandidates(column string) []scoredCandidate {
	bestByField := make(map[string]scoredCandidate)

	record := func(c scoredCandidate) {
		min := float64(labelSuggestionMin)
		if c.fromAlias {
			min = aliasSuggestionMin
		}
		if c.score <= min {
			return
		}
		if prev, ok := bestByField[c.fieldID]; !ok || c.score > prev.score {
			bestByField[c.fieldID] = c
		}
	}

	for _, a := range s.aliases {
		switch {
		case containsEither(a.AliasText, column):
			record(scoredCandidate{
				fieldID:   a.FieldID,
				score:     a.ConfidenceScore * 0.6,
				reason:    fmt.Sprintf("gần giống bí danh %q", a.AliasText),
				fromAlias: true,
			})
		case wordOverlap(a.AliasText, column):
			record(scoredCandidate{
				fieldID:   a.FieldID,
				score:     overlapRatio(column, a.AliasText) * 30,
				reason:    fmt.Sprintf("trùng từ với bí danh %q", a.AliasText),
				fromAlias: true,
			})
		}
	}

	for _, f := range s.cat.Fields() {
		switch {
		case containsEither(f.Label, column):
			record(scoredCandidate{
				fieldID: f.FieldID,
				score:   50,
				reason:  fmt.Sprintf("gần giống nhãn %q", f.Label),
			})
		case wordOverlap(column, f.Label):
			record(scoredCandidate{
				fieldID: f.FieldID,
				score:   overlapRatio(column, f.Label) * 25,
				reason:  fmt.Sprintf("trùng từ với nhãn %q", f.Label),
			})
		}
	}

	candidates := make([]scoredCandidate, 0, len(bestByField))
	for _, c := range bestByField {
		candidates = append(candidates, c)
	}
	sort.Slice(candidates, func(i, j int) bool {
		if candidates[i].score != candidates[j].score {
			return candidates[i].score > candidates[j].score
		}
		return candidates[i].fieldID < candidates[j].fieldID
	})

	return candidates
}
