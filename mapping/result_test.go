package mapping

import (
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"payrollimport/catalog"
)

func TestBuildImportResultFullSession(t *testing.T) {
	aliases := []Alias{
		{ID: 1, FieldID: "employee_id", AliasText: "Mã NV", ConfidenceScore: 90, IsActive: true},
	}
	columns := []string{"Mã NV", "Họ và tên", "Tháng lương", "Thực lĩnh", "Ghi Chú"}

	result := BuildImportResult(catalog.Default(), aliases, nil, columns, slog.Default())

	assert.NotEmpty(t, result.SessionID)
	assert.True(t, result.Success, "đủ trường bắt buộc, không trùng lặp")
	assert.Equal(t, columns, result.DetectedColumns)
	assert.Len(t, result.Mapping, 4)
	assert.Equal(t, []string{"Ghi Chú"}, result.UnmappedColumns)
	assert.Empty(t, result.Conflicts)
	assert.Equal(t, 1, result.Summary.ManualRequired)

	// Mỗi phiên có định danh riêng
	again := BuildImportResult(catalog.Default(), aliases, nil, columns, nil)
	assert.NotEqual(t, result.SessionID, again.SessionID)
}

func TestBuildImportResultMissingRequiredField(t *testing.T) {
	result := BuildImportResult(catalog.Default(), nil, nil, []string{"employee_id"}, nil)

	assert.False(t, result.Success)
	require.NotEmpty(t, result.Conflicts)

	var kinds []ConflictKind
	for _, c := range result.Conflicts {
		kinds = append(kinds, c.Kind)
	}
	assert.Contains(t, kinds, ConflictRequiredFieldMissing)
}
