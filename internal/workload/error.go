package workload

import "fmt"

type constError string

const (
	// ErrUnknownPattern may be returned from [ByName].
	ErrUnknownPattern = constError("unknown pattern")
	// ErrInvalidInterval is returned when
	// a tick interval is not positive.
	ErrInvalidInterval = constError("invalid tick interval")
	// ErrInvalidFrames may be returned from
	// [NewNRUPager] and [NewARCPager].
	ErrInvalidFrames = constError("invalid frame count")
)

func (errStr constError) Error() string { return string(errStr) }

func intervalError(interval int) error {
	return fmt.Errorf(
		"%w: must be >0 but %d was requested",
		ErrInvalidInterval, interval)
}

func framesError(frames, pageCount int) error {
	return fmt.Errorf(
		"%w: must be in [1,%d] but %d was requested",
		ErrInvalidFrames, pageCount, frames)
}
