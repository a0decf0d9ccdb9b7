package catalog

import (
	"fmt"
	"regexp"
	"strings"
)

// ValueType kiểu dữ liệu của một trường lương chuẩn
type ValueType string

const (
	TypeText   ValueType = "text"
	TypeNumber ValueType = "number"
	TypeDate   ValueType = "date"
)

// Valid kiểm tra ValueType có thuộc tập cho phép hay không
func (t ValueType) Valid() bool {
	switch t {
	case TypeText, TypeNumber, TypeDate:
		return true
	}
	return false
}

// FieldDescriptor mô tả một trường chuẩn trong danh mục lương.
// Danh mục được tạo một lần khi khởi động và không thay đổi khi chạy.
type FieldDescriptor struct {
	FieldID   string    `json:"field_id"`
	Label     string    `json:"label"`
	ValueType ValueType `json:"value_type"`
	Required  bool      `json:"required"`

	// MaxLength giới hạn độ dài giá trị, 0 nghĩa là không giới hạn
	MaxLength int `json:"max_length,omitempty"`

	// Validate quy tắc kiểm tra bổ sung cho giá trị của trường, có thể nil
	Validate func(value string) error `json:"-"`
}

// Catalog danh mục các trường lương chuẩn với tra cứu theo field_id
type Catalog struct {
	fields []FieldDescriptor
	byID   map[string]FieldDescriptor
}

// New tạo danh mục từ danh sách trường. Trả về lỗi nếu danh mục
// không hợp lệ (trùng field_id, kiểu dữ liệu sai) - đây là lỗi cấu hình,
// không phải lỗi dữ liệu.
func New(fields []FieldDescriptor) (*Catalog, error) {
	c := &Catalog{
		fields: make([]FieldDescriptor, 0, len(fields)),
		byID:   make(map[string]FieldDescriptor, len(fields)),
	}

	for _, f := range fields {
		id := strings.TrimSpace(f.FieldID)
		if id == "" {
			return nil, fmt.Errorf("danh mục không hợp lệ: field_id rỗng (label %q)", f.Label)
		}
		if !f.ValueType.Valid() {
			return nil, fmt.Errorf("danh mục không hợp lệ: kiểu %q của trường %q", f.ValueType, id)
		}
		if _, exists := c.byID[id]; exists {
			return nil, fmt.Errorf("danh mục không hợp lệ: field_id %q bị trùng", id)
		}

		f.FieldID = id
		c.fields = append(c.fields, f)
		c.byID[id] = f
	}

	return c, nil
}

// Fields trả về bản sao danh sách trường theo thứ tự khai báo
func (c *Catalog) Fields() []FieldDescriptor {
	out := make([]FieldDescriptor, len(c.fields))
	copy(out, c.fields)
	return out
}

// Lookup tra cứu trường theo field_id
func (c *Catalog) Lookup(fieldID string) (FieldDescriptor, bool) {
	f, ok := c.byID[fieldID]
	return f, ok
}

// Has kiểm tra field_id có tồn tại trong danh mục hay không
func (c *Catalog) Has(fieldID string) bool {
	_, ok := c.byID[fieldID]
	return ok
}

// RequiredFields trả về danh sách field_id bắt buộc theo thứ tự khai báo
func (c *Catalog) RequiredFields() []string {
	var out []string
	for _, f := range c.fields {
		if f.Required {
			out = append(out, f.FieldID)
		}
	}
	return out
}

// NumericFields trả về danh sách field_id có kiểu number theo thứ tự khai báo
func (c *Catalog) NumericFields() []string {
	var out []string
	for _, f := range c.fields {
		if f.ValueType == TypeNumber {
			out = append(out, f.FieldID)
		}
	}
	return out
}

// Len số lượng trường trong danh mục
func (c *Catalog) Len() int {
	return len(c.fields)
}

var cccdRegex = regexp.MustCompile(`^\d{12}$`)

// ValidateCCCD kiểm tra số CCCD: phải đúng 12 chữ số.
// Khoảng trắng và dấu gạch được loại bỏ trước khi kiểm tra.
func ValidateCCCD(cccd string) error {
	cleaned := strings.ReplaceAll(strings.ReplaceAll(cccd, " ", ""), "-", "")
	if !cccdRegex.MatchString(cleaned) {
		return fmt.Errorf("số CCCD phải gồm đúng 12 chữ số, nhận được %q", cccd)
	}
	return nil
}

// Default trả về danh mục lương chuẩn của hệ thống.
// Lưu ý: các cột ghi chú tự do không có trong danh mục - chúng phải
// được giữ ở trạng thái chưa ánh xạ thay vì gán bừa vào một trường.
func Default() *Catalog {
	c, err := New([]FieldDescriptor{
		{FieldID: "employee_id", Label: "Mã nhân viên", ValueType: TypeText, Required: true, MaxLength: 20},
		{FieldID: "full_name", Label: "Họ và tên", ValueType: TypeText, Required: true, MaxLength: 100},
		{FieldID: "salary_month", Label: "Tháng lương", ValueType: TypeDate, Required: true},
		{FieldID: "cccd", Label: "Số CCCD", ValueType: TypeText, MaxLength: 12, Validate: ValidateCCCD},
		{FieldID: "phong_ban", Label: "Phòng ban", ValueType: TypeText, MaxLength: 100},

		{FieldID: "he_so_luong_co_ban", Label: "Hệ số lương cơ bản", ValueType: TypeNumber},
		{FieldID: "luong_co_ban", Label: "Lương cơ bản", ValueType: TypeNumber},
		{FieldID: "luong_san_pham", Label: "Lương sản phẩm", ValueType: TypeNumber},

		{FieldID: "phu_cap_an_trua", Label: "Phụ cấp ăn trưa", ValueType: TypeNumber},
		{FieldID: "phu_cap_xang_xe", Label: "Phụ cấp xăng xe", ValueType: TypeNumber},
		{FieldID: "phu_cap_dien_thoai", Label: "Phụ cấp điện thoại", ValueType: TypeNumber},
		{FieldID: "phu_cap_trach_nhiem", Label: "Phụ cấp trách nhiệm", ValueType: TypeNumber},

		{FieldID: "thuong_kpi", Label: "Thưởng KPI", ValueType: TypeNumber},
		{FieldID: "thuong_le_tet", Label: "Thưởng lễ tết", ValueType: TypeNumber},

		{FieldID: "luong_thang_13", Label: "Lương tháng 13", ValueType: TypeNumber},
		{FieldID: "luong_thang_13_dot_1", Label: "Lương tháng 13 đợt 1", ValueType: TypeNumber},
		{FieldID: "luong_thang_13_dot_2", Label: "Lương tháng 13 đợt 2", ValueType: TypeNumber},
		{FieldID: "so_thang_chia_thang_13", Label: "Số tháng chia lương tháng 13", ValueType: TypeNumber},
		{FieldID: "thang_13_t1", Label: "Tháng 13 - T1", ValueType: TypeNumber},
		{FieldID: "thang_13_t2", Label: "Tháng 13 - T2", ValueType: TypeNumber},
		{FieldID: "thang_13_t3", Label: "Tháng 13 - T3", ValueType: TypeNumber},
		{FieldID: "thang_13_t4", Label: "Tháng 13 - T4", ValueType: TypeNumber},
		{FieldID: "thang_13_t5", Label: "Tháng 13 - T5", ValueType: TypeNumber},
		{FieldID: "thang_13_t6", Label: "Tháng 13 - T6", ValueType: TypeNumber},
		{FieldID: "thang_13_t7", Label: "Tháng 13 - T7", ValueType: TypeNumber},
		{FieldID: "thang_13_t8", Label: "Tháng 13 - T8", ValueType: TypeNumber},
		{FieldID: "thang_13_t9", Label: "Tháng 13 - T9", ValueType: TypeNumber},
		{FieldID: "thang_13_t10", Label: "Tháng 13 - T10", ValueType: TypeNumber},
		{FieldID: "thang_13_t11", Label: "Tháng 13 - T11", ValueType: TypeNumber},
		{FieldID: "thang_13_t12", Label: "Tháng 13 - T12", ValueType: TypeNumber},

		{FieldID: "ngay_cong", Label: "Ngày công", ValueType: TypeNumber},
		{FieldID: "gio_cong", Label: "Giờ công", ValueType: TypeNumber},
		{FieldID: "gio_tang_ca", Label: "Giờ tăng ca", ValueType: TypeNumber},

		{FieldID: "bhxh", Label: "BHXH", ValueType: TypeNumber},
		{FieldID: "bhyt", Label: "BHYT", ValueType: TypeNumber},
		{FieldID: "bhtn", Label: "BHTN", ValueType: TypeNumber},
		{FieldID: "thue_tncn", Label: "Thuế TNCN", ValueType: TypeNumber},

		{FieldID: "tong_thu_nhap", Label: "Tổng thu nhập", ValueType: TypeNumber},
		{FieldID: "tong_khau_tru", Label: "Tổng khấu trừ", ValueType: TypeNumber},
		{FieldID: "thuc_linh", Label: "Thực lĩnh", ValueType: TypeNumber},
	})
	if err != nil {
		// Danh mục mặc định được kiểm tra bằng test; lỗi ở đây là lỗi lập trình
		panic(err)
	}
	return c
}
