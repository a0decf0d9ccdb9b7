package validation

import (
	"context"
	"fmt"
	"testing"

	"github.com/brianvoe/gofakeit/v6"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// makeBatch sinh lô bản ghi giả lập: cứ mỗi bản ghi thứ invalidEvery lại
// thiếu mã nhân viên để chắc chắn không hợp lệ
func makeBatch(n, invalidEvery int) []ImportRecord {
	faker := gofakeit.New(42)
	records := make([]ImportRecord, 0, n)
	for i := 0; i < n; i++ {
		fields := map[string]string{
			"employee_id":  fmt.Sprintf("NV%03d", i+1),
			"full_name":    faker.Name(),
			"salary_month": "2024-03",
			"luong_co_ban": fmt.Sprintf("%d", faker.Number(5_000_000, 30_000_000)),
			"thuc_linh":    fmt.Sprintf("%d", faker.Number(5_000_000, 30_000_000)),
		}
		if invalidEvery > 0 && (i+1)%invalidEvery == 0 {
			fields["employee_id"] = ""
		}
		records = append(records, ImportRecord{Fields: fields, RowNumber: i + 2})
	}
	return records
}

func TestValidateBatchPreservesOrder(t *testing.T) {
	records := makeBatch(50, 5)
	b := NewBatchValidator(newTestValidator(), 8, nil)

	results, summary := b.ValidateBatch(context.Background(), records)

	require.Len(t, results, len(records))
	for i, res := range results {
		assert.Equal(t, records[i].RowNumber, res.RowNumber, "kết quả thứ %d lệch hàng", i)
	}

	assert.Equal(t, 50, summary.Total)
	assert.Equal(t, 10, summary.Invalid)
	assert.Equal(t, 40, summary.Valid)
}

func TestValidateBatchAllValid(t *testing.T) {
	records := makeBatch(20, 0)
	b := NewBatchValidator(newTestValidator(), 0, nil) // workers <= 0 dùng mặc định

	results, summary := b.ValidateBatch(context.Background(), records)

	require.Len(t, results, 20)
	assert.Equal(t, 20, summary.Total)
	assert.Equal(t, 20, summary.Valid)
	assert.Equal(t, 0, summary.Invalid)
	for _, res := range results {
		assert.True(t, res.IsValid)
	}
}

func TestValidateBatchEmpty(t *testing.T) {
	b := NewBatchValidator(newTestValidator(), 4, nil)

	results, summary := b.ValidateBatch(context.Background(), nil)

	assert.Empty(t, results)
	assert.Equal(t, BatchSummary{}, summary)
}

func TestValidateBatchCancelledContext(t *testing.T) {
	records := makeBatch(100, 0)
	b := NewBatchValidator(newTestValidator(), 2, nil)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	results, summary := b.ValidateBatch(ctx, records)

	// Hủy context dừng việc phát thêm công việc nhưng không làm hỏng các
	// bất biến: độ dài kết quả giữ nguyên, tổng kết khớp số đã xử lý
	require.Len(t, results, len(records))
	assert.Equal(t, summary.Total, summary.Valid+summary.Invalid)
	assert.LessOrEqual(t, summary.Total, len(records))
}
