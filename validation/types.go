package validation

import "time"

// Severity mức độ nghiêm trọng của một phát hiện khi kiểm tra bản ghi
type Severity string

const (
	SeverityError   Severity = "error"   // chặn import bản ghi
	SeverityWarning Severity = "warning" // cảnh báo, không chặn
)

// FixConfidence độ tin cậy của một sửa chữa tự động
type FixConfidence string

const (
	FixHigh   FixConfidence = "high"
	FixMedium FixConfidence = "medium"
	FixLow    FixConfidence = "low"
)

// ImportRecord một dòng dữ liệu lương đã được chiếu về khóa trường chuẩn.
// Việc chiếu cột thô qua ánh xạ đã duyệt là việc của nơi gọi.
type ImportRecord struct {
	Fields     map[string]string `json:"fields"`
	RowNumber  int               `json:"row_number"`
	EmployeeID string            `json:"employee_id"`
	Period     string            `json:"period"`
	SourceFile string            `json:"source_file,omitempty"`
}

// Issue một lỗi hoặc cảnh báo phát hiện được trên bản ghi. Mang đủ ngữ
// cảnh (dòng, mã nhân viên, kỳ lương, trường) để xử lý độc lập mà không
// cần chạy lại engine.
type Issue struct {
	Severity   Severity `json:"severity"`
	FieldID    string   `json:"field_id,omitempty"`
	Message    string   `json:"message"`
	RowNumber  int      `json:"row_number"`
	EmployeeID string   `json:"employee_id,omitempty"`
	Period     string   `json:"period,omitempty"`
}

// AutoFix một sửa chữa tự động đã áp dụng cho giá trị của bản ghi.
// Luôn được báo cáo kèm kết quả, không bao giờ sửa ngầm.
type AutoFix struct {
	FieldID       string        `json:"field_id"`
	OriginalValue string        `json:"original_value"`
	FixedValue    float64       `json:"fixed_value"`
	Reason        string        `json:"reason"`
	Confidence    FixConfidence `json:"confidence"`
}

// Result kết quả kiểm tra một bản ghi. IsValid đúng khi và chỉ khi không
// có phát hiện mức error; cảnh báo và sửa tự động không chặn import.
type Result struct {
	IsValid   bool      `json:"is_valid"`
	RowNumber int       `json:"row_number"`
	Errors    []Issue   `json:"errors,omitempty"`
	Warnings  []Issue   `json:"warnings,omitempty"`
	AutoFixes []AutoFix `json:"auto_fixes,omitempty"`
}

// Policy các ngưỡng nghiệp vụ của bước kiểm tra bản ghi. Các dung sai
// 10%/1% là chính sách cấu hình được, không phải hằng số cố định.
type Policy struct {
	// Dung sai chênh lệch số học giữa các trường
	GrossTolerance   float64 `json:"gross_tolerance"`    // tổng thu nhập so với tổng thành phần
	NetTolerance     float64 `json:"net_tolerance"`      // thực lĩnh so với thu nhập trừ khấu trừ
	Thang13Tolerance float64 `json:"thang13_tolerance"`  // lương tháng 13 so với các đợt chi / 12 tháng

	// Dải giá trị hợp lý của lương thực lĩnh (VND)
	MinNetSalary float64 `json:"min_net_salary"`
	MaxNetSalary float64 `json:"max_net_salary"`

	// Chuẩn công trong tháng
	StandardWorkingDays  float64 `json:"standard_working_days"`
	StandardWorkingHours float64 `json:"standard_working_hours"`

	// Năm nhỏ nhất chấp nhận được của kỳ lương
	MinYear int `json:"min_year"`

	// now cho phép test cố định thời điểm hiện tại; nil thì dùng time.Now
	now func() time.Time
}

// DefaultPolicy trả về chính sách mặc định của hệ thống
func DefaultPolicy() Policy {
	return Policy{
		GrossTolerance:       0.10,
		NetTolerance:         0.10,
		Thang13Tolerance:     0.01,
		MinNetSalary:         1_000_000,
		MaxNetSalary:         100_000_000,
		StandardWorkingDays:  26,
		StandardWorkingHours: 208,
		MinYear:              2020,
	}
}

// WithNow trả về bản sao chính sách dùng hàm thời gian cho trước
func (p Policy) WithNow(now func() time.Time) Policy {
	p.now = now
	return p
}

func (p Policy) currentTime() time.Time {
	if p.now != nil {
		return p.now()
	}
	return time.Now()
}

// BatchSummary thống kê kết quả kiểm tra của cả lô bản ghi
type BatchSummary struct {
	Total     int `json:"total"`
	Valid     int `json:"valid"`
	Invalid   int `json:"invalid"`
	Warnings  int `json:"warnings"`
	AutoFixes int `json:"auto_fixes"`
}
