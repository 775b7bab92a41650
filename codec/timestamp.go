package codec

import (
	"time"

	"github.com/sousouindustries/amqptype/errs"
)

// EncodeTimestamp encodes value as ms64(0x83): a signed 64-bit count of
// milliseconds since the POSIX epoch. ms64 is a fixed-8 format code with
// no short or zero-length variant, so the payload is always exactly 8
// octets regardless of value's magnitude.
func EncodeTimestamp(value time.Time) []byte {
	return EncodeInteger(true, 8, false, false, value.UnixMilli())
}

// DecodeTimestamp decodes an ms64(0x83) payload into a UTC calendar
// timestamp.
func DecodeTimestamp(data []byte) (time.Time, error) {
	ms, err := DecodeInteger(true, data)
	if err != nil {
		return time.Time{}, errs.NewDecodeError("invalid timestamp payload: %v", err)
	}

	return time.UnixMilli(ms).UTC(), nil
}
