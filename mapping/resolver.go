package mapping

import (
	"fmt"

	"payrollimport/catalog"
)

// Ngưỡng chấp nhận của từng chiến lược và ngưỡng chung
const (
	configFuzzyThreshold = 70 // cấu hình đã lưu, khớp mờ
	aliasFuzzyThreshold  = 40 // bí danh, khớp mờ
	fieldFuzzyThreshold  = 40 // nhãn trường, khớp mờ
	overallMinScore      = 30 // dưới ngưỡng này coi như chưa ánh xạ
	validStatusThreshold = 70 // từ ngưỡng này trở lên trạng thái là valid
)

// candidate ứng viên có điểm do một chiến lược trả về
type candidate struct {
	fieldID      string
	score        float64
	mappingType  MappingType
	matchedAlias string
	reason       string
}

// strategyFunc một chiến lược phân giải: trả về nil nếu không tìm được
// ứng viên đạt ngưỡng của chính nó
type strategyFunc func(column string) *candidate

// Resolver phân giải tên cột đầu vào về các trường lương chuẩn.
// Các chiến lược được thử theo đúng thứ tự ưu tiên; chiến lược đầu tiên
// trả về ứng viên sẽ thắng, không cạnh tranh với chiến lược phía sau.
type Resolver struct {
	cat        *catalog.Catalog
	aliases    []Alias
	cfg        *Configuration
	strategies []strategyFunc
}

// NewResolver tạo resolver từ danh mục trường, bảng bí danh và cấu hình
// đã lưu (có thể nil). Bí danh không hoạt động bị loại ngay tại đây.
func NewResolver(cat *catalog.Catalog, aliases []Alias, cfg *Configuration) *Resolver {
	active := make([]Alias, 0, len(aliases))
	for _, a := range aliases {
		if a.IsActive {
			active = append(active, a)
		}
	}

	r := &Resolver{
		cat:     cat,
		aliases: active,
		cfg:     cfg,
	}
	r.strategies = []strategyFunc{
		r.matchConfigExact,
		r.matchConfigFuzzy,
		r.matchAliasExact,
		r.matchFieldExact,
		r.matchAliasFuzzy,
		r.matchFieldLabelFuzzy,
	}
	return r
}

// Resolve phân giải toàn bộ danh sách cột phát hiện được trong một phiên
// import. Trả về ánh xạ theo tên cột và danh sách cột chưa ánh xạ được,
// giữ nguyên thứ tự đầu vào.
func (r *Resolver) Resolve(detectedColumns []string) (ResolvedMapping, []string) {
	mapping := make(ResolvedMapping, len(detectedColumns))
	var unmapped []string

	for _, column := range detectedColumns {
		if _, seen := mapping[column]; seen {
			continue
		}

		cand := r.resolveColumn(column)
		if cand == nil || cand.score < overallMinScore {
			unmapped = append(unmapped, column)
			continue
		}

		cm := ColumnMapping{
			FieldID:         cand.fieldID,
			ConfidenceScore: cand.score,
			MappingType:     cand.mappingType,
			MatchedAlias:    cand.matchedAlias,
			Status:          StatusValid,
		}
		if cand.reason != "" {
			cm.Messages = append(cm.Messages, cand.reason)
		}
		if cand.score < validStatusThreshold {
			cm.Status = StatusWarning
			cm.Messages = append(cm.Messages,
				fmt.Sprintf("độ tin cậy thấp (%.0f), nên kiểm tra lại trước khi import", cand.score))
		}

		mapping[column] = cm
	}

	return mapping, unmapped
}

// resolveColumn chạy chuỗi chiến lược theo thứ tự, lấy kết quả đầu tiên
func (r *Resolver) resolveColumn(column string) *candidate {
	for _, strategy := range r.strategies {
		if cand := strategy(column); cand != nil {
			return cand
		}
	}
	return nil
}

// matchConfigExact khớp chính xác với cấu hình đã lưu.
// Cột trùng tên (sau chuẩn hóa) với một dòng cấu hình được nhận ngay với
// độ tin cậy tối thiểu 95.
func (r *Resolver) matchConfigExact(column string) *candidate {
	if r.cfg == nil {
		return nil
	}

	normalized := normalizeText(column)
	var best *candidate
	for _, entry := range r.cfg.Entries {
		if normalizeText(entry.InputColumnName) != normalized {
			continue
		}
		score := entry.ConfidenceScore
		if score < 95 {
			score = 95
		}
		if best == nil || score > best.score {
			best = &candidate{
				fieldID:     entry.FieldID,
				score:       score,
				mappingType: MappingManual,
				reason:      fmt.Sprintf("trùng khớp với cấu hình %q", r.cfg.Name),
			}
		}
	}
	return best
}

// matchConfigFuzzy khớp mờ với cấu hình đã lưu: chứa chuỗi con được chấm
// max(80, điểm×0.9), trùng từ được chấm max(70, điểm×0.8); nhận nếu >= 70.
func (r *Resolver) matchConfigFuzzy(column string) *candidate {
	if r.cfg == nil {
		return nil
	}

	var best *candidate
	for _, entry := range r.cfg.Entries {
		var score float64
		switch {
		case containsEither(entry.InputColumnName, column):
			score = maxScore(80, entry.ConfidenceScore*0.9)
		case wordOverlap(entry.InputColumnName, column):
			score = maxScore(70, entry.ConfidenceScore*0.8)
		default:
			continue
		}
		if best == nil || score > best.score {
			best = &candidate{
				fieldID:     entry.FieldID,
				score:       score,
				mappingType: MappingFuzzy,
				reason:      fmt.Sprintf("khớp mờ với cột %q trong cấu hình %q", entry.InputColumnName, r.cfg.Name),
			}
		}
	}
	if best == nil || best.score < configFuzzyThreshold {
		return nil
	}
	return best
}

// matchAliasExact khớp chính xác với bí danh đang hoạt động; nếu nhiều bí
// danh cùng trùng thì lấy bí danh có điểm tin cậy cao nhất.
func (r *Resolver) matchAliasExact(column string) *candidate {
	normalized := normalizeText(column)
	var best *candidate
	for _, a := range r.aliases {
		if normalizeText(a.AliasText) != normalized {
			continue
		}
		if best == nil || a.ConfidenceScore > best.score {
			best = &candidate{
				fieldID:      a.FieldID,
				score:        a.ConfidenceScore,
				mappingType:  MappingAlias,
				matchedAlias: a.AliasText,
			}
		}
	}
	return best
}

// matchFieldExact khớp chính xác với field_id trong danh mục
func (r *Resolver) matchFieldExact(column string) *candidate {
	normalized := normalizeText(column)
	if !r.cat.Has(normalized) {
		return nil
	}
	return &candidate{
		fieldID:     normalized,
		score:       100,
		mappingType: MappingExact,
	}
}

// matchAliasFuzzy khớp mờ với bí danh: chứa chuỗi con được chấm
// max(60, điểm×0.7), trùng từ được chấm max(40, điểm×0.5); nhận nếu >= 40.
func (r *Resolver) matchAliasFuzzy(column string) *candidate {
	var best *candidate
	for _, a := range r.aliases {
		var score float64
		switch {
		case containsEither(a.AliasText, column):
			score = maxScore(60, a.ConfidenceScore*0.7)
		case wordOverlap(a.AliasText, column):
			score = maxScore(40, a.ConfidenceScore*0.5)
		default:
			continue
		}
		if best == nil || score > best.score {
			best = &candidate{
				fieldID:      a.FieldID,
				score:        score,
				mappingType:  MappingAlias,
				matchedAlias: a.AliasText,
				reason:       fmt.Sprintf("khớp mờ với bí danh %q", a.AliasText),
			}
		}
	}
	if best == nil || best.score < aliasFuzzyThreshold {
		return nil
	}
	return best
}

// matchFieldLabelFuzzy khớp mờ với field_id hoặc nhãn hiển thị của trường:
// chứa field_id 70, chứa nhãn 60, trùng từ 40; nhận nếu >= 40.
//
// Lưu ý: cột trùng nguyên văn với *nhãn* của trường vẫn chỉ được 60 vì
// phép so trùng nhãn nằm chung nhánh với phép chứa chuỗi con. Hành vi này
// được giữ nguyên có chủ đích: các cấu hình đã lưu từ những lần import
// trước phụ thuộc vào thang điểm hiện tại.
func (r *Resolver) matchFieldLabelFuzzy(column string) *candidate {
	var best *candidate
	for _, f := range r.cat.Fields() {
		var score float64
		switch {
		case containsEither(f.FieldID, column):
			score = 70
		case containsEither(f.Label, column):
			score = 60
		case wordOverlap(column, f.FieldID) || wordOverlap(column, f.Label):
			score = 40
		default:
			continue
		}
		if best == nil || score > best.score {
			best = &candidate{
				fieldID:     f.FieldID,
				score:       score,
				mappingType: MappingFuzzy,
				reason:      fmt.Sprintf("khớp mờ với trường %q", f.Label),
			}
		}
	}
	if best == nil || best.score < fieldFuzzyThreshold {
		return nil
	}
	return best
}

func maxScore(a, b float64) float64 {
	if a > b {
		return a
	}
	return b
}
