package transaction

import (
	"fmt"
	"strings"
	"time"
)

// timestampLayouts 受け付けるタイムスタンプ形式
// 秒の後ろの小数部はどの形式でも解析時に受け付けられる
var timestampLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05Z07:00",
	"2006-01-02 15:04:05",
	"2006-01-02T15:04",
	"2006-01-02",
	"01/02/2006 15:04:05",
}

// ParseTimestamp タイムスタンプ文字列を解析し、壁時計の値をUTCとして返す
// オフセット表記があっても換算は行わない（パートナー側の現地時刻として扱う）
func ParseTimestamp(value string) (time.Time, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return time.Time{}, fmt.Errorf("timestamp is empty")
	}

	for _, layout := range timestampLayouts {
		t, err := time.Parse(layout, value)
		if err == nil {
			return wallClock(t), nil
		}
	}

	return time.Time{}, fmt.Errorf("unrecognized timestamp format: %q", value)
}

func wallClock(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), t.Hour(), t.Minute(), t.Second(), t.Nanosecond(), time.UTC)
}
