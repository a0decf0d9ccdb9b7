package mapping

import (
	"fmt"
	"sort"
	"strings"
)

// CheckConflicts kiểm tra một ánh xạ đã phân giải: phát hiện trường bị
// nhiều cột cùng trỏ tới và trường bắt buộc chưa có cột nào trỏ tới.
// requiredFields thường lấy từ catalog.RequiredFields().
func CheckConflicts(m ResolvedMapping, requiredFields []string) []Conflict {
	var conflicts []Conflict

	// Gom các cột theo field_id đích
	claims := make(map[string][]string)
	for column, cm := range m {
		claims[cm.FieldID] = append(claims[cm.FieldID], column)
	}

	// Trường bị trùng: sắp xếp để kết quả ổn định giữa các lần chạy
	var duplicated []string
	for fieldID, columns := range claims {
		if len(columns) >= 2 {
			duplicated = append(duplicated, fieldID)
		}
	}
	sort.Strings(duplicated)

	for _, fieldID := range duplicated {
		columns := claims[fieldID]
		sort.Strings(columns)
		conflicts = append(conflicts, Conflict{
			Kind:     ConflictDuplicateMapping,
			FieldID:  fieldID,
			Columns:  columns,
			Severity: SeverityError,
			Message: fmt.Sprintf("trường %q bị %d cột cùng ánh xạ: %s",
				fieldID, len(columns), strings.Join(columns, ", ")),
		})
	}

	// Trường bắt buộc chưa được ánh xạ
	for _, fieldID := range requiredFields {
		if len(claims[fieldID]) == 0 {
			conflicts = append(conflicts, Conflict{
				Kind:     ConflictRequiredFieldMissing,
				FieldID:  fieldID,
				Severity: SeverityError,
				Message:  fmt.Sprintf("trường bắt buộc %q chưa có cột nào ánh xạ tới", fieldID),
			})
		}
	}

	return conflicts
}

// Resolvable cho biết ánh xạ có thể được chấp nhận hay không:
// chỉ cần tồn tại một xung đột mức error là không thể chấp nhận.
func Resolvable(conflicts []Conflict) bool {
	for _, c := range conflicts {
		if c.Severity == SeverityError {
			return false
		}
	}
	return true
}
