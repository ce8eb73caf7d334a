package settings

import "fmt"

// HeapSize is an enumerated JVM heap size used for the game's initial
// and maximum memory limits. The string form is the stable name stored
// in the config file.
type HeapSize string

const (
	HeapMb256 HeapSize = "MB_256"
	HeapMb512 HeapSize = "MB_512"
	HeapMb768 HeapSize = "MB_768"
	HeapGb1   HeapSize = "GB_1"
	HeapGb1_5 HeapSize = "GB_1_5"
	HeapGb2   HeapSize = "GB_2"
	HeapGb3   HeapSize = "GB_3"
	HeapGb4   HeapSize = "GB_4"
	HeapGb6   HeapSize = "GB_6"
	HeapGb8   HeapSize = "GB_8"
)

// heapArgs maps each heap size to its java -Xms/-Xmx argument value.
var heapArgs = map[HeapSize]string{
	HeapMb256: "256m",
	HeapMb512: "512m",
	HeapMb768: "768m",
	HeapGb1:   "1g",
	HeapGb1_5: "1536m",
	HeapGb2:   "2g",
	HeapGb3:   "3g",
	HeapGb4:   "4g",
	HeapGb6:   "6g",
	HeapGb8:   "8g",
}

// Valid reports whether h is one of the defined heap sizes.
func (h HeapSize) Valid() bool {
	_, ok := heapArgs[h]
	return ok
}

// Arg returns the value to pass after -Xms or -Xmx when building the
// game's java command line.
func (h HeapSize) Arg() string {
	return heapArgs[h]
}

// ParseHeapSize converts a stored name back into a HeapSize.
func ParseHeapSize(s string) (HeapSize, error) {
	h := HeapSize(s)
	if !h.Valid() {
		return "", fmt.Errorf("unknown heap size %q", s)
	}
	return h, nil
}
