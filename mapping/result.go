package mapping

import (
	"log/slog"

	"github.com/google/uuid"

	"payrollimport/catalog"
)

// BuildImportResult chạy trọn một phiên phân giải ánh xạ: resolver, kiểm
// tra xung đột, sinh đề xuất cho cột chưa ánh xạ và thống kê độ tin cậy.
// logger có thể nil nếu nơi gọi không cần log tiến trình.
//
// Engine không tự đọc bí danh hay cấu hình từ nơi lưu trữ; nơi gọi nạp
// dữ liệu xong mới gọi hàm này, đúng một lần cho mỗi phiên import.
func BuildImportResult(cat *catalog.Catalog, aliases []Alias, cfg *Configuration, detectedColumns []string, logger *slog.Logger) ImportMappingResult {
	sessionID := uuid.NewString()
	if logger != nil {
		logger.Info("bắt đầu phân giải ánh xạ cột",
			"session_id", sessionID,
			"columns", len(detectedColumns),
			"aliases", len(aliases),
			"has_config", cfg != nil)
	}

	resolver := NewResolver(cat, aliases, cfg)
	mapping, unmapped := resolver.Resolve(detectedColumns)

	conflicts := CheckConflicts(mapping, cat.RequiredFields())
	suggestions := NewSuggester(cat, aliases).Suggest(unmapped)
	summary := Summarize(mapping, unmapped)

	result := ImportMappingResult{
		SessionID:       sessionID,
		Success:         Resolvable(conflicts),
		Mapping:         mapping,
		DetectedColumns: detectedColumns,
		UnmappedColumns: unmapped,
		Conflicts:       conflicts,
		Suggestions:     suggestions,
		Summary:         summary,
	}

	if logger != nil {
		logger.Info("phân giải ánh xạ cột hoàn tất",
			"session_id", sessionID,
			"mapped", len(mapping),
			"unmapped", len(unmapped),
			"conflicts", len(conflicts),
			"suggestions", len(suggestions),
			"success", result.Success)
	}

	return result
}
