package mapping

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"payrollimport/catalog"
)

func TestSuggestFromAliasContainment(t *testing.T) {
	aliases := []Alias{
		{ID: 1, FieldID: "phu_cap_an_trua", AliasText: "Tiền ăn ca", ConfidenceScore: 80, IsActive: true},
	}
	s := NewSuggester(catalog.Default(), aliases)

	suggestions := s.Suggest([]string{"Tiền ăn"})

	require.Len(t, suggestions, 1)
	sg := suggestions[0]
	assert.Equal(t, "Tiền ăn", sg.InputColumnName)
	assert.Equal(t, "phu_cap_an_trua", sg.SuggestedFieldID)
	assert.InDelta(t, 48.0, sg.ConfidenceScore, 0.001, "80 * 0.6 = 48")
	assert.Equal(t, ActionReview, sg.Action, "dưới 70 điểm phải yêu cầu người dùng duyệt")
	assert.Empty(t, sg.Alternatives)
}

func TestSuggestAmbiguousLabelTieBreaksByFieldID(t *testing.T) {
	// "Lương" nằm trong nhãn của nhiều trường; tất cả cùng 50 điểm nên
	// thứ tự phải ổn định theo field_id để đề xuất không nhảy lung tung
	// giữa các lần chạy
	s := NewSuggester(catalog.Default(), nil)

	suggestions := s.Suggest([]string{"Lương"})

	require.Len(t, suggestions, 1)
	sg := suggestions[0]
	assert.Equal(t, "he_so_luong_co_ban", sg.SuggestedFieldID)
	assert.Equal(t, float64(50), sg.ConfidenceScore)
	assert.Equal(t, ActionReview, sg.Action)

	require.Len(t, sg.Alternatives, 3)
	assert.Equal(t, "luong_co_ban", sg.Alternatives[0].FieldID)
	assert.Equal(t, "luong_san_pham", sg.Alternatives[1].FieldID)
	assert.Equal(t, "luong_thang_13", sg.Alternatives[2].FieldID)
	for _, alt := range sg.Alternatives {
		assert.Equal(t, float64(50), alt.Score)
	}
}

func TestSuggestNothingForForeignColumn(t *testing.T) {
	s := NewSuggester(catalog.Default(), nil)

	suggestions := s.Suggest([]string{"Ghi Chú"})

	assert.Empty(t, suggestions, "cột ngoài danh mục không được gán bừa")
}

func TestSuggestIgnoresInactiveAlias(t *testing.T) {
	aliases := []Alias{
		{ID: 1, FieldID: "thuc_linh", AliasText: "Tien ve tay", ConfidenceScore: 100, IsActive: false},
	}
	s := NewSuggester(catalog.Default(), aliases)

	suggestions := s.Suggest([]string{"Tien ve tay"})

	assert.Empty(t, suggestions)
}
