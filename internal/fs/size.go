package fs

import "strconv"

var sizeUnits = []string{"KiB", "MiB", "GiB", "TiB", "PiB", "EiB"}

// FormatSize returns a human readable size in binary units, e.g. "12.5 KiB".
// Values below 1 KiB are shown in bytes; larger values keep at most two
// decimals with trailing zeros trimmed.
func FormatSize(size uint64) string {
	const unit = 1024
	if size < unit {
		return strconv.FormatUint(size, 10) + " B"
	}

	value := float64(size) / unit
	exp := 0
	for value >= unit && exp < len(sizeUnits)-1 {
		value /= unit
		exp++
	}

	// Rounding can push the value to the next unit (1023.999 KiB -> 1 MiB).
	text := strconv.FormatFloat(value, 'f', 2, 64)
	if text == "1024.00" && exp < len(sizeUnits)-1 {
		text = "1.00"
		exp++
	}
	return trimZeros(text) + " " + sizeUnits[exp]
}

func trimZeros(s string) string {
	end := len(s)
	for end > 0 && s[end-1] == '0' {
		end--
	}
	if end > 0 && s[end-1] == '.' {
		end--
	}
	return s[:end]
}
