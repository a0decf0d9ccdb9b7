package config

import (
	"fmt"
	"strings"
)

// Validate kiểm tra tính hợp lệ của cấu hình, gom mọi vấn đề vào một lỗi
func (c *Config) Validate() error {
	var errors []string

	if c.MaxWorkers < 1 {
		errors = append(errors, "max workers phải từ 1 trở lên")
	}
	if c.MaxWorkers > 256 {
		errors = append(errors, fmt.Sprintf("max workers %d lớn bất thường, giới hạn là 256", c.MaxWorkers))
	}

	p := c.Validation
	if p.GrossTolerance <= 0 || p.GrossTolerance >= 1 {
		errors = append(errors, fmt.Sprintf("gross tolerance phải trong (0, 1), nhận được %v", p.GrossTolerance))
	}
	if p.NetTolerance <= 0 || p.NetTolerance >= 1 {
		errors = append(errors, fmt.Sprintf("net tolerance phải trong (0, 1), nhận được %v", p.NetTolerance))
	}
	if p.Thang13Tolerance <= 0 || p.Thang13Tolerance >= 1 {
		errors = append(errors, fmt.Sprintf("thang13 tolerance phải trong (0, 1), nhận được %v", p.Thang13Tolerance))
	}
	if p.MinNetSalary < 0 {
		errors = append(errors, "min net salary không được âm")
	}
	if p.MaxNetSalary <= p.MinNetSalary {
		errors = append(errors, fmt.Sprintf("max net salary (%v) phải lớn hơn min net salary (%v)", p.MaxNetSalary, p.MinNetSalary))
	}
	if p.StandardWorkingDays <= 0 || p.StandardWorkingDays > 31 {
		errors = append(errors, fmt.Sprintf("chuẩn ngày công phải trong (0, 31], nhận được %v", p.StandardWorkingDays))
	}
	if p.StandardWorkingHours <= 0 {
		errors = append(errors, "chuẩn giờ công phải dương")
	}
	if p.MinYear < 1990 {
		errors = append(errors, fmt.Sprintf("năm nhỏ nhất %d quá xa trong quá khứ", p.MinYear))
	}

	switch strings.ToUpper(c.LogLevel) {
	case "DEBUG", "INFO", "WARN", "ERROR":
	default:
		errors = append(errors, fmt.Sprintf("log level %q không hợp lệ (DEBUG/INFO/WARN/ERROR)", c.LogLevel))
	}

	if len(errors) > 0 {
		return fmt.Errorf("%s", strings.Join(errors, "; "))
	}
	return nil
}
