package utils

import "time"

// Clock menyediakan waktu sekarang. Store memakai satu Clock yang sama
// untuk semua operasi supaya perbandingan timestamp konsisten.
type Clock interface {
	Now() time.Time
}

type systemClock struct{}

func (systemClock) Now() time.Time { return time.Now() }

// SystemClock -> wall clock proses (monotonic selama proses hidup)
func SystemClock() Clock { return systemClock{} }

// EpochMillis converts an instant to the epoch-millisecond form stored on items.
func EpochMillis(t time.Time) int64 {
	return t.UnixMilli()
}

// ElapsedSeconds derives elapsed seconds from a stored start timestamp and now.
// Returns 0 when the start is unset or in the future.
func ElapsedSeconds(startMillis int64, now time.Time) int64 {
	if startMillis <= 0 {
		return 0
	}
	diff := now.UnixMilli() - startMillis
	if diff < 0 {
		return 0
	}
	return diff / 1000
}
