package mapping

import "time"

// MappingType cách thức một cột được ánh xạ vào trường chuẩn
type MappingType string

const (
	MappingExact  MappingType = "exact"  // trùng khớp chính xác với field_id
	MappingFuzzy  MappingType = "fuzzy"  // khớp mờ theo chuỗi con hoặc từ
	MappingManual MappingType = "manual" // lấy từ cấu hình đã lưu
	MappingAlias  MappingType = "alias"  // khớp qua bảng bí danh
)

// Valid kiểm tra MappingType có thuộc tập cho phép hay không
func (t MappingType) Valid() bool {
	switch t {
	case MappingExact, MappingFuzzy, MappingManual, MappingAlias:
		return true
	}
	return false
}

// MappingStatus trạng thái kiểm định của một ánh xạ cột
type MappingStatus string

const (
	StatusValid   MappingStatus = "valid"
	StatusWarning MappingStatus = "warning"
	StatusError   MappingStatus = "error"
)

// Severity mức độ nghiêm trọng của một xung đột ánh xạ
type Severity string

const (
	SeverityError   Severity = "error"
	SeverityWarning Severity = "warning"
)

// ConflictKind loại xung đột phát hiện được trong một ánh xạ
type ConflictKind string

const (
	ConflictDuplicateMapping     ConflictKind = "duplicate_mapping"
	ConflictAmbiguousMatch       ConflictKind = "ambiguous_match"
	ConflictRequiredFieldMissing ConflictKind = "required_field_missing"
)

// Alias bí danh do quản trị viên khai báo cho một trường chuẩn.
// Engine chỉ đọc, không bao giờ sửa bảng bí danh.
type Alias struct {
	ID              int       `json:"id"`
	FieldID         string    `json:"field_id"`
	AliasText       string    `json:"alias_text"`
	ConfidenceScore float64   `json:"confidence_score"`
	IsActive        bool      `json:"is_active"`
	CreatedBy       string    `json:"created_by,omitempty"`
	CreatedAt       time.Time `json:"created_at,omitempty"`
	UpdatedAt       time.Time `json:"updated_at,omitempty"`
}

// ConfigEntry một dòng trong cấu hình ánh xạ đã lưu
type ConfigEntry struct {
	FieldID          string      `json:"field_id"`
	InputColumnName  string      `json:"input_column_name"`
	ConfidenceScore  float64     `json:"confidence_score"`
	MappingType      MappingType `json:"mapping_type"`
	ValidationPassed bool        `json:"validation_passed"`
}

// Configuration cấu hình ánh xạ đã được duyệt từ một lần import trước.
// Được dùng như nguồn ưu tiên cao nhất khi phân giải cột.
type Configuration struct {
	Name      string        `json:"name"`
	Entries   []ConfigEntry `json:"entries"`
	IsDefault bool          `json:"is_default"`
	IsActive  bool          `json:"is_active"`
}

// ColumnMapping kết quả phân giải của một cột đầu vào
type ColumnMapping struct {
	FieldID         string        `json:"field_id"`
	ConfidenceScore float64       `json:"confidence_score"`
	MappingType     MappingType   `json:"mapping_type"`
	MatchedAlias    string        `json:"matched_alias,omitempty"`
	Status          MappingStatus `json:"validation_status"`
	Messages        []string      `json:"messages,omitempty"`
}

// ResolvedMapping ánh xạ tạm thời của một phiên import, khóa theo tên cột.
// Mỗi cột xuất hiện nhiều nhất một lần; một trường có thể bị nhiều cột
// cùng trỏ tới - đó chính là điều kiện mà bước kiểm tra xung đột xử lý.
type ResolvedMapping map[string]ColumnMapping

// Conflict một xung đột phát hiện được trong ánh xạ
type Conflict struct {
	Kind     ConflictKind `json:"kind"`
	FieldID  string       `json:"field_id,omitempty"`
	Columns  []string     `json:"columns,omitempty"`
	Severity Severity     `json:"severity"`
	Message  string       `json:"message"`
}

// SuggestionAction hành động đề xuất cho người vận hành
type SuggestionAction string

const (
	ActionMap    SuggestionAction = "map"    // đủ tin cậy để ánh xạ ngay
	ActionReview SuggestionAction = "review" // cần người vận hành xem lại
)

// Alternative một ứng viên dự phòng cho cột chưa ánh xạ được
type Alternative struct {
	FieldID string  `json:"field_id"`
	Score   float64 `json:"score"`
	Reason  string  `json:"reason"`
}

// Suggestion đề xuất ánh xạ cho một cột chưa phân giải được
type Suggestion struct {
	InputColumnName  string           `json:"input_column_name"`
	SuggestedFieldID string           `json:"suggested_field_id"`
	ConfidenceScore  float64          `json:"confidence_score"`
	Reason           string           `json:"reason"`
	Action           SuggestionAction `json:"action"`
	Alternatives     []Alternative    `json:"alternatives,omitempty"`
}

// ConfidenceSummary thống kê độ tin cậy của một ánh xạ đã hoàn tất
type ConfidenceSummary struct {
	High           int `json:"high"`            // confidence >= 80
	Medium         int `json:"medium"`          // 50 <= confidence < 80
	Low            int `json:"low"`             // confidence < 50
	ManualRequired int `json:"manual_required"` // số cột chưa ánh xạ được
}

// ImportMappingResult kết quả đầy đủ của một phiên phân giải ánh xạ
type ImportMappingResult struct {
	SessionID       string            `json:"session_id"`
	Success         bool              `json:"success"`
	Mapping         ResolvedMapping   `json:"mapping"`
	DetectedColumns []string          `json:"detected_columns"`
	UnmappedColumns []string          `json:"unmapped_columns"`
	Conflicts       []Conflict        `json:"conflicts"`
	Suggestions     []Suggestion      `json:"suggestions"`
	Summary         ConfidenceSummary `json:"confidence_summary"`
}
