package config

import (
	"encoding/json"
	"fmt"
	"os"
	"strconv"

	"payrollimport/validation"
)

// Config cấu hình của engine import lương. Chính sách kiểm tra bản ghi
// (dung sai, dải lương, chuẩn công) nằm trong Validation để các hằng số
// nghiệp vụ không bị chôn cứng trong mã.
type Config struct {
	// Chính sách kiểm tra bản ghi
	Validation validation.Policy `json:"validation"`

	// Số worker tối đa khi kiểm tra lô bản ghi
	MaxWorkers int `json:"max_workers"`

	// Logging
	LogLevel string `json:"log_level"`
}

// Default trả về cấu hình mặc định
func Default() *Config {
	return &Config{
		Validation: validation.DefaultPolicy(),
		MaxWorkers: 4,
		LogLevel:   "INFO",
	}
}

// Load nạp cấu hình: bắt đầu từ mặc định, phủ bằng file JSON (nếu path
// khác rỗng), rồi phủ tiếp bằng biến môi trường. Cấu hình được kiểm tra
// trước khi trả về.
func Load(path string) (*Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("không đọc được file cấu hình %s: %w", path, err)
		}
		if err := json.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("file cấu hình %s không phải JSON hợp lệ: %w", path, err)
		}
	}

	cfg.applyEnv()

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("cấu hình không hợp lệ: %w", err)
	}

	return cfg, nil
}

// applyEnv phủ cấu hình bằng biến môi trường
func (c *Config) applyEnv() {
	c.MaxWorkers = getEnvInt("PAYROLL_MAX_WORKERS", c.MaxWorkers)
	c.LogLevel = getEnv("PAYROLL_LOG_LEVEL", c.LogLevel)

	c.Validation.GrossTolerance = getEnvFloat("PAYROLL_GROSS_TOLERANCE", c.Validation.GrossTolerance)
	c.Validation.NetTolerance = getEnvFloat("PAYROLL_NET_TOLERANCE", c.Validation.NetTolerance)
	c.Validation.Thang13Tolerance = getEnvFloat("PAYROLL_THANG13_TOLERANCE", c.Validation.Thang13Tolerance)
	c.Validation.MinNetSalary = getEnvFloat("PAYROLL_MIN_NET_SALARY", c.Validation.MinNetSalary)
	c.Validation.MaxNetSalary = getEnvFloat("PAYROLL_MAX_NET_SALARY", c.Validation.MaxNetSalary)
}

// getEnv đọc biến môi trường chuỗi với giá trị mặc định
func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

// getEnvInt đọc biến môi trường số nguyên với giá trị mặc định
func getEnvInt(key string, fallback int) int {
	if value := os.Getenv(key); value != "" {
		if parsed, err := strconv.Atoi(value); err == nil {
			return parsed
		}
	}
	return fallback
}

// getEnvFloat đọc biến môi trường số thực với giá trị mặc định
func getEnvFloat(key string, fallback float64) float64 {
	if value := os.Getenv(key); value != "" {
		if parsed, err := strconv.ParseFloat(value, 64); err == nil {
			return parsed
		}
	}
	return fallback
}
