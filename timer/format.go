package timer

import "strconv"

// Format renders ms as MM:SS.mmm
// Minutes are zero-padded to two digits and never wrap into hours; all fields truncate
// Precondition: ms >= 0
func Format(ms int64) string {
	minutes := ms / 60000
	seconds := (ms / 1000) % 60
	millis := ms % 1000

	buf := make([]byte, 0, 12)
	buf = appendPadded(buf, minutes, 2)
	buf = append(buf, ':')
	buf = appendPadded(buf, seconds, 2)
	buf = append(buf, '.')
	buf = appendPadded(buf, millis, 3)
	return string(buf)
}

// appendPadded writes n left-padded with zeros to at least width digits
func appendPadded(buf []byte, n int64, width int) []byte {
	digits := strconv.FormatInt(n, 10)
	for i := len(digits); i < width; i++ {
		buf = append(buf, '0')
	}
	return append(buf, digits...)
}
