package validation

import (
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"

	"payrollimport/catalog"
)

var (
	periodRegex     = regexp.MustCompile(`^\d{4}-\d{2}$`)
	employeeIDRegex = regexp.MustCompile(`^[A-Z0-9]{3,20}$`)
)

// Các trường số không được âm
var nonNegativeFields = []string{
	"he_so_luong_co_ban",
	"ngay_cong",
	"gio_cong",
	"gio_tang_ca",
	"thuong_kpi",
	"thuong_le_tet",
	"luong_thang_13",
	"luong_thang_13_dot_1",
	"luong_thang_13_dot_2",
	"thang_13_t1", "thang_13_t2", "thang_13_t3", "thang_13_t4",
	"thang_13_t5", "thang_13_t6", "thang_13_t7", "thang_13_t8",
	"thang_13_t9", "thang_13_t10", "thang_13_t11", "thang_13_t12",
}

// Thành phần thu nhập dùng cho kiểm tra chéo tổng thu nhập
var grossComponents = []string{
	"luong_co_ban",
	"luong_san_pham",
	"phu_cap_an_trua",
	"phu_cap_xang_xe",
	"phu_cap_dien_thoai",
	"phu_cap_trach_nhiem",
	"thuong_kpi",
	"thuong_le_tet",
}

// Các khoản khấu trừ chi tiết
var deductionComponents = []string{"bhxh", "bhyt", "bhtn", "thue_tncn"}

// RecordValidator kiểm tra từng bản ghi lương một cách độc lập với mọi
// bản ghi khác: trường bắt buộc, ép kiểu số kèm sửa tự động, định dạng,
// dải giá trị và nhất quán số học giữa các trường.
type RecordValidator struct {
	cat    *catalog.Catalog
	policy Policy
}

// NewRecordValidator tạo validator từ danh mục trường và chính sách ngưỡng
func NewRecordValidator(cat *catalog.Catalog, policy Policy) *RecordValidator {
	return &RecordValidator{cat: cat, policy: policy}
}

// recordCheck trạng thái kiểm tra của một bản ghi đang xử lý
type recordCheck struct {
	rec     ImportRecord
	result  Result
	numbers map[string]float64 // giá trị số đã ép kiểu thành công
}

// Validate kiểm tra một bản ghi. Mọi vấn đề chất lượng dữ liệu đều được
// trả về trong Result, không bao giờ panic hay trả lỗi Go.
func (v *RecordValidator) Validate(rec ImportRecord) Result {
	// Bổ sung mã nhân viên / kỳ lương từ dữ liệu nếu phần bao chưa có
	if strings.TrimSpace(rec.EmployeeID) == "" {
		rec.EmployeeID = strings.TrimSpace(rec.Fields["employee_id"])
	}
	if strings.TrimSpace(rec.Period) == "" {
		rec.Period = strings.TrimSpace(rec.Fields["salary_month"])
	}

	c := &recordCheck{
		rec:     rec,
		result:  Result{RowNumber: rec.RowNumber},
		numbers: make(map[string]float64),
	}

	v.checkRequired(c)
	v.coerceNumerics(c)
	v.checkFormats(c)
	v.checkRanges(c)
	v.checkConsistency(c)

	c.result.IsValid = len(c.result.Errors) == 0
	return c.result
}

func (c *recordCheck) addError(fieldID, message string) {
	c.result.Errors = append(c.result.Errors, Issue{
		Severity:   SeverityError,
		FieldID:    fieldID,
		Message:    message,
		RowNumber:  c.rec.RowNumber,
		EmployeeID: c.rec.EmployeeID,
		Period:     c.rec.Period,
	})
}

func (c *recordCheck) addWarning(fieldID, message string) {
	c.result.Warnings = append(c.result.Warnings, Issue{
		Severity:   SeverityWarning,
		FieldID:    fieldID,
		Message:    message,
		RowNumber:  c.rec.RowNumber,
		EmployeeID: c.rec.EmployeeID,
		Period:     c.rec.Period,
	})
}

// value trả về giá trị đã cắt khoảng trắng của một trường và cờ có mặt
func (c *recordCheck) value(fieldID string) (string, bool) {
	raw, ok := c.rec.Fields[fieldID]
	if !ok {
		return "", false
	}
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return "", false
	}
	return trimmed, true
}

// checkRequired kiểm tra mã nhân viên và kỳ lương không được để trống
func (v *RecordValidator) checkRequired(c *recordCheck) {
	if strings.TrimSpace(c.rec.EmployeeID) == "" {
		c.addError("employee_id", "thiếu mã nhân viên")
	}
	if strings.TrimSpace(c.rec.Period) == "" {
		c.addError("salary_month", "thiếu kỳ lương")
	}
}

// coerceNumerics ép kiểu các trường số. Giá trị không phân tích được sẽ
// được thử lại sau khi loại bỏ ký tự định dạng; thành công thì ghi nhận
// một sửa tự động, thất bại thì báo lỗi.
func (v *RecordValidator) coerceNumerics(c *recordCheck) {
	for _, fieldID := range v.cat.NumericFields() {
		raw, ok := c.value(fieldID)
		if !ok {
			continue
		}

		if f, ok := parseStrict(raw); ok {
			c.numbers[fieldID] = f
			continue
		}

		f, cleaned, ok := cleanNumeric(raw)
		if !ok {
			c.addError(fieldID, fmt.Sprintf("giá trị %q không phải là số", raw))
			continue
		}

		c.numbers[fieldID] = f
		c.result.AutoFixes = append(c.result.AutoFixes, AutoFix{
			FieldID:       fieldID,
			OriginalValue: raw,
			FixedValue:    f,
			Reason:        fmt.Sprintf("loại bỏ ký tự định dạng: %q -> %q", raw, cleaned),
			Confidence:    FixHigh,
		})
	}
}

// checkFormats kiểm tra định dạng kỳ lương, mã nhân viên, CCCD và các
// ràng buộc khai báo trong danh mục (độ dài tối đa, quy tắc riêng).
func (v *RecordValidator) checkFormats(c *recordCheck) {
	if period := strings.TrimSpace(c.rec.Period); period != "" {
		v.checkPeriod(c, period)
	}

	if id := strings.TrimSpace(c.rec.EmployeeID); id != "" && !employeeIDRegex.MatchString(id) {
		c.addWarning("employee_id",
			fmt.Sprintf("mã nhân viên %q không theo định dạng chuẩn (3-20 ký tự A-Z, 0-9)", id))
	}

	for _, f := range v.cat.Fields() {
		raw, ok := c.value(f.FieldID)
		if !ok {
			continue
		}

		if f.Validate != nil {
			if err := f.Validate(raw); err != nil {
				c.addError(f.FieldID, err.Error())
				continue
			}
		}

		if f.ValueType == catalog.TypeText && f.MaxLength > 0 && len([]rune(raw)) > f.MaxLength {
			c.addWarning(f.FieldID,
				fmt.Sprintf("giá trị dài %d ký tự, vượt giới hạn %d", len([]rune(raw)), f.MaxLength))
		}
	}
}

// checkPeriod kiểm tra kỳ lương dạng YYYY-MM: sai định dạng hoặc tháng
// ngoài 1-12 là lỗi; năm ngoài dải hợp lý chỉ là cảnh báo.
func (v *RecordValidator) checkPeriod(c *recordCheck, period string) {
	if !periodRegex.MatchString(period) {
		c.addError("salary_month",
			fmt.Sprintf("kỳ lương %q sai định dạng, cần YYYY-MM (ví dụ 2024-01)", period))
		return
	}

	year, _ := strconv.Atoi(period[:4])
	month, _ := strconv.Atoi(period[5:])

	if month < 1 || month > 12 {
		c.addError("salary_month",
			fmt.Sprintf("tháng %02d của kỳ lương %q nằm ngoài khoảng 01-12", month, period))
	}

	maxYear := v.policy.currentTime().Year() + 1
	if year < v.policy.MinYear || year > maxYear {
		c.addWarning("salary_month",
			fmt.Sprintf("năm %d của kỳ lương nằm ngoài khoảng hợp lý [%d, %d]", year, v.policy.MinYear, maxYear))
	}
}

// checkRanges kiểm tra dải giá trị trên các số đã ép kiểu thành công
func (v *RecordValidator) checkRanges(c *recordCheck) {
	for _, fieldID := range nonNegativeFields {
		if val, ok := c.numbers[fieldID]; ok && val < 0 {
			c.addError(fieldID, fmt.Sprintf("giá trị %s không được âm", formatAmount(val)))
		}
	}

	if net, ok := c.numbers["thuc_linh"]; ok {
		if net < v.policy.MinNetSalary || net > v.policy.MaxNetSalary {
			c.addWarning("thuc_linh",
				fmt.Sprintf("lương thực lĩnh %s nằm ngoài dải thường gặp [%s, %s]",
					formatAmount(net), formatAmount(v.policy.MinNetSalary), formatAmount(v.policy.MaxNetSalary)))
		}
	}

	if months, ok := c.numbers["so_thang_chia_thang_13"]; ok {
		if months < 1 || months > 12 {
			c.addError("so_thang_chia_thang_13",
				fmt.Sprintf("số tháng chia lương tháng 13 phải từ 1 đến 12, nhận được %s", formatAmount(months)))
		}
	}

	if days, ok := c.numbers["ngay_cong"]; ok {
		switch {
		case days > 31:
			c.addError("ngay_cong", fmt.Sprintf("ngày công %s vượt quá 31 ngày", formatAmount(days)))
		case days > v.policy.StandardWorkingDays*1.5:
			c.addWarning("ngay_cong",
				fmt.Sprintf("ngày công %s vượt quá 150%% chuẩn công %s", formatAmount(days), formatAmount(v.policy.StandardWorkingDays)))
		}
	}

	if hours, ok := c.numbers["gio_cong"]; ok && hours > v.policy.StandardWorkingHours*2 {
		c.addWarning("gio_cong",
			fmt.Sprintf("giờ công %s vượt quá 200%% chuẩn giờ %s", formatAmount(hours), formatAmount(v.policy.StandardWorkingHours)))
	}
}

// checkConsistency kiểm tra nhất quán số học giữa các trường. Chênh lệch
// tương đối được tính trên tổng thành phần; mọi vi phạm chỉ là cảnh báo
// vì sai lệch có thể do các khoản ngoài bảng.
func (v *RecordValidator) checkConsistency(c *recordCheck) {
	// Tổng thu nhập so với các thành phần
	if gross, ok := c.numbers["tong_thu_nhap"]; ok {
		if sum, present := c.sumPresent(grossComponents); present && sum > 0 {
			if relativeDiff(gross, sum) > v.policy.GrossTolerance {
				c.addWarning("tong_thu_nhap",
					fmt.Sprintf("tổng thu nhập %s lệch quá %.0f%% so với tổng thành phần %s",
						formatAmount(gross), v.policy.GrossTolerance*100, formatAmount(sum)))
			}
		}
	}

	// Thực lĩnh so với thu nhập trừ khấu trừ
	if net, netOK := c.numbers["thuc_linh"]; netOK {
		if gross, grossOK := c.numbers["tong_thu_nhap"]; grossOK {
			deductions, itemized := c.sumPresent(deductionComponents)
			if !itemized {
				deductions = c.numbers["tong_khau_tru"]
			}
			expected := gross - deductions
			if expected > 0 && relativeDiff(net, expected) > v.policy.NetTolerance {
				c.addWarning("thuc_linh",
					fmt.Sprintf("thực lĩnh %s lệch quá %.0f%% so với thu nhập trừ khấu trừ %s",
						formatAmount(net), v.policy.NetTolerance*100, formatAmount(expected)))
			}
		}
	}

	// Lương tháng 13 so với hai đợt chi
	if total, ok := c.numbers["luong_thang_13"]; ok {
		if sum, present := c.sumPresent([]string{"luong_thang_13_dot_1", "luong_thang_13_dot_2"}); present && sum > 0 {
			if relativeDiff(total, sum) > v.policy.Thang13Tolerance {
				c.addWarning("luong_thang_13",
					fmt.Sprintf("lương tháng 13 %s lệch quá %.0f%% so với tổng hai đợt chi %s",
						formatAmount(total), v.policy.Thang13Tolerance*100, formatAmount(sum)))
			}
		}

		if sum, present := c.sumPresent(monthlyThang13Fields()); present && sum > 0 {
			if relativeDiff(total, sum) > v.policy.Thang13Tolerance {
				c.addWarning("luong_thang_13",
					fmt.Sprintf("lương tháng 13 %s lệch quá %.0f%% so với tổng 12 tháng phân bổ %s",
						formatAmount(total), v.policy.Thang13Tolerance*100, formatAmount(sum)))
			}
		}
	}
}

// sumPresent cộng các trường có mặt trong bản ghi; present sai nghĩa là
// không trường nào có mặt và phép kiểm tra tương ứng phải được bỏ qua.
func (c *recordCheck) sumPresent(fieldIDs []string) (sum float64, present bool) {
	for _, fieldID := range fieldIDs {
		if val, ok := c.numbers[fieldID]; ok {
			sum += val
			present = true
		}
	}
	return sum, present
}

func monthlyThang13Fields() []string {
	fields := make([]string, 0, 12)
	for i := 1; i <= 12; i++ {
		fields = append(fields, fmt.Sprintf("thang_13_t%d", i))
	}
	return fields
}

// relativeDiff chênh lệch tương đối của actual so với expected
func relativeDiff(actual, expected float64) float64 {
	if expected == 0 {
		return 0
	}
	return math.Abs(actual-expected) / math.Abs(expected)
}

// formatAmount in số tiền gọn: bỏ phần thập phân nếu là số nguyên
func formatAmount(v float64) string {
	if v == math.Trunc(v) {
		return strconv.FormatFloat(v, 'f', 0, 64)
	}
	return strconv.FormatFloat(v, 'f', 2, 64)
}
