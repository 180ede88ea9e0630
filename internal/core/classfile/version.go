// Package classfile parses the fixed-size header of a compiled Java
// class file and maps its major version to a JDK release label.
package classfile

import (
	"encoding/binary"
	"fmt"

	"go.trai.ch/zerr"
)

// HeaderLen is the number of leading bytes carrying the magic signature
// followed by the minor and major version fields.
const HeaderLen = 8

// magic is the class file signature at offset 0.
var magic = [4]byte{0xCA, 0xFE, 0xBA, 0xBE}

// ErrMalformedHeader is returned when the header bytes fail the magic
// check or are too short to hold the version fields.
var ErrMalformedHeader = zerr.New("malformed class file header")

// Version is the minor/major pair encoded after the magic, both
// big-endian unsigned.
type Version struct {
	Minor uint16
	Major uint16
}

// ParseHeader validates the magic signature and extracts the version
// pair from the first HeaderLen bytes of a class file.
func ParseHeader(header []byte) (Version, error) {
	if len(header) < HeaderLen {
		return Version{}, zerr.With(zerr.Wrap(ErrMalformedHeader, "header too short"), "header_len", len(header))
	}
	if [4]byte(header[:4]) != magic {
		return Version{}, zerr.With(zerr.Wrap(ErrMalformedHeader, "bad magic signature"), "magic", fmt.Sprintf("%x", header[:4]))
	}
	return Version{
		Minor: binary.BigEndian.Uint16(header[4:6]),
		Major: binary.BigEndian.Uint16(header[6:8]),
	}, nil
}

// Label classifies one major version. Known is false when the major
// falls outside the release table; Major is always set.
type Label struct {
	Major uint16
	Name  string
	Known bool
}

// String renders the label the way reports print it.
func (l Label) String() string {
	if !l.Known {
		return fmt.Sprintf("unknown JDK version (major: %d)", l.Major)
	}
	return l.Name
}

// releaseTable maps class file major versions to JDK release names.
// The 1.1 through 1.4 entries predate the modern one-major-per-release
// numbering, so the table is literal rather than computed.
var releaseTable = map[uint16]string{
	45: "JDK 1.1",
	46: "JDK 1.2",
	47: "JDK 1.3",
	48: "JDK 1.4",
	49: "JDK 5",
	50: "JDK 6",
	51: "JDK 7",
	52: "JDK 8",
	53: "JDK 9",
	54: "JDK 10",
	55: "JDK 11",
	56: "JDK 12",
	57: "JDK 13",
	58: "JDK 14",
	59: "JDK 15",
	60: "JDK 16",
	61: "JDK 17",
	62: "JDK 18",
	63: "JDK 19",
	64: "JDK 20",
	65: "JDK 21",
}

// ReleaseLabel maps a major version through the release table. Majors
// outside the table yield an unrecognized label, never an error.
func ReleaseLabel(major uint16) Label {
	name, ok := releaseTable[major]
	if !ok {
		return Label{Major: major}
	}
	return Label{Major: major, Name: name, Known: true}
}

// Label is a convenience over ReleaseLabel for a parsed version.
func (v Version) Label() Label {
	return ReleaseLabel(v.Major)
}
