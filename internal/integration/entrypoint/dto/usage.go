package dto

import "github.com/pawz-connect/backend/internal/domain/entity"

// UsageResponse represents the caller's quota consumption.
type UsageResponse struct {
	Allowed          bool `json:"allowed"`
	DailyUsed        int  `json:"daily_used"`
	DailyLimit       int  `json:"daily_limit"`
	DailyRemaining   int  `json:"daily_remaining"`
	MonthlyUsed      int  `json:"monthly_used"`
	MonthlyLimit     int  `json:"monthly_limit"`
	MonthlyRemaining int  `json:"monthly_remaining"`
}

// UploadResponse represents a stored image.
type UploadResponse struct {
	URL         string `json:"url"`
	Key         string `json:"key"`
	ContentType string `json:"content_type"`
	Size        int64  `json:"size"`
	Width       int    `json:"width"`
	Height      int    `json:"height"`
}

// ToUsageResponse converts usage info to its DTO.
func ToUsageResponse(info entity.UsageInfo) UsageResponse {
	return UsageResponse{
		Allowed:          info.Allowed(),
		DailyUsed:        info.DailyUsed,
		DailyLimit:       info.DailyLimit,
		DailyRemaining:   info.DailyRemaining,
		MonthlyUsed:      info.MonthlyUsed,
		MonthlyLimit:     info.MonthlyLimit,
		MonthlyRemaining: info.MonthlyRemaining,
	}
}

// ToUploadResponse converts an uploaded image to its DTO.
func ToUploadResponse(img *entity.UploadedImage) UploadResponse {
	return UploadResponse{
		URL:         img.URL,
		Key:         img.Key,
		ContentType: img.ContentType,
		Size:        img.Size,
		Width:       img.Width,
		Height:      img.Height,
	}
}
