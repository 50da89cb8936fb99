package domain

const (
	NanosecondsPerSecond      = 1e9
	NanosecondsPerMillisecond = 1e6
)
