package validation

import (
	"context"
	"log/slog"
	"sync"
)

const defaultBatchWorkers = 4

// BatchValidator kiểm tra một lô bản ghi song song. Mỗi bản ghi độc lập
// với mọi bản ghi khác nên việc chia cho các worker không cần điều phối
// gì ngoài gom kết quả; số worker có thể giới hạn tùy ý mà không ảnh
// hưởng tính đúng đắn.
type BatchValidator struct {
	validator *RecordValidator
	workers   int
	logger    *slog.Logger
}

// NewBatchValidator tạo batch validator; workers <= 0 dùng giá trị mặc
// định, logger có thể nil.
func NewBatchValidator(validator *RecordValidator, workers int, logger *slog.Logger) *BatchValidator {
	if workers <= 0 {
		workers = defaultBatchWorkers
	}
	return &BatchValidator{
		validator: validator,
		workers:   workers,
		logger:    logger,
	}
}

// ValidateBatch kiểm tra toàn bộ lô và trả về kết quả theo đúng thứ tự
// bản ghi đầu vào kèm thống kê tổng hợp. Hủy context chỉ dừng việc phát
// thêm công việc; các bản ghi chưa xử lý có kết quả rỗng (IsValid false,
// không lỗi) và tổng kết chỉ đếm các bản ghi đã xử lý.
func (b *BatchValidator) ValidateBatch(ctx context.Context, records []ImportRecord) ([]Result, BatchSummary) {
	if b.logger != nil {
		b.logger.Info("bắt đầu kiểm tra lô bản ghi lương",
			"records", len(records), "workers", b.workers)
	}

	results := make([]Result, len(records))
	processed := make([]bool, len(records))
	jobs := make(chan int)

	var wg sync.WaitGroup
	for w := 0; w < b.workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for idx := range jobs {
				results[idx] = b.validator.Validate(records[idx])
				processed[idx] = true
			}
		}()
	}

dispatch:
	for i := range records {
		select {
		case <-ctx.Done():
			break dispatch
		case jobs <- i:
		}
	}
	close(jobs)
	wg.Wait()

	summary := BatchSummary{}
	for i, r := range results {
		if !processed[i] {
			continue
		}
		summary.Total++
		if r.IsValid {
			summary.Valid++
		} else {
			summary.Invalid++
		}
		summary.Warnings += len(r.Warnings)
		summary.AutoFixes += len(r.AutoFixes)
	}

	if b.logger != nil {
		b.logger.Info("kiểm tra lô bản ghi lương hoàn tất",
			"total", summary.Total,
			"valid", summary.Valid,
			"invalid", summary.Invalid,
			"warnings", summary.Warnings,
			"auto_fixes", summary.AutoFixes)
	}

	return results, summary
}
