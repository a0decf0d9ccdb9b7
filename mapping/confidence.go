package mapping

// Ngưỡng phân loại độ tin cậy
const (
	highConfidenceMin   = 80
	mediumConfidenceMin = 50
)

// Summarize đếm số ánh xạ theo mức độ tin cậy. Chỉ dùng cho báo cáo,
// không có tác dụng phụ; High + Medium + Low luôn bằng số cột đã ánh xạ.
func Summarize(m ResolvedMapping, unmapped []string) ConfidenceSummary {
	summary := ConfidenceSummary{ManualRequired: len(unmapped)}

	for _, cm := range m {
		switch {
		case cm.ConfidenceScore >= highConfidenceMin:
			summary.High++
		case cm.ConfidenceScore >= mediumConfidenceMin:
			summary.Medium++
		default:
			summary.Low++
		}
	}

	return summary
}
