// Package drs reads DRS resource archives, the container format the legacy
// games store their assets in. An archive groups embedded files into tables
// by extension (slp sprites, bin interface data, wav sounds) and addresses
// each file by a numeric resource id.
//
// The layout is a fixed little-endian header (copyright banner, version,
// archive type), a table directory, one entry list per table, and the raw
// file bodies. Offsets in entries are absolute within the archive.
package drs

import (
	"encoding/binary"
	"fmt"
	"os"
	"sort"
	"strings"
)

const (
	copyrightLen = 40
	versionLen   = 4
	archTypeLen  = 12
	headerLen    = copyrightLen + versionLen + archTypeLen + 8

	tableHeaderLen = 12
	entryLen       = 12
)

// NotFoundError reports a resource id with no entry in the requested table.
// Missing resources are routine in legacy archives (ids are sparse), so
// callers handle this error rather than aborting.
type NotFoundError struct {
	Extension string
	ID        int
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("no %s resource with id %d", e.Extension, e.ID)
}

type span struct {
	offset uint32
	size   uint32
}

// Archive is a parsed DRS archive. It holds the raw bytes and the decoded
// directory; extraction slices out of the shared buffer via copy, so an
// Archive is safe for concurrent readers.
type Archive struct {
	Version     string
	ArchiveType string

	tables map[string]map[int]span
	data   []byte
}

// Load reads and parses the archive at path.
func Load(path string) (*Archive, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	a, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	return a, nil
}

// Parse decodes an archive from raw bytes. The byte slice is retained; the
// caller must not mutate it afterwards.
func Parse(data []byte) (*Archive, error) {
	if len(data) < headerLen {
		return nil, fmt.Errorf("archive truncated: %d bytes, want at least %d for header", len(data), headerLen)
	}

	a := &Archive{
		Version:     trimPadding(data[copyrightLen : copyrightLen+versionLen]),
		ArchiveType: trimPadding(data[copyrightLen+versionLen : copyrightLen+versionLen+archTypeLen]),
		tables:      make(map[string]map[int]span),
		data:        data,
	}
	if !strings.HasPrefix(a.Version, "1.") {
		return nil, fmt.Errorf("unsupported archive version %q", a.Version)
	}

	tableCount := binary.LittleEndian.Uint32(data[copyrightLen+versionLen+archTypeLen:])
	// The header also records the offset of the first file body; entry
	// bounds checks below make it redundant for reading.

	dirEnd := headerLen + int(tableCount)*tableHeaderLen
	if dirEnd > len(data) {
		return nil, fmt.Errorf("archive truncated: table directory ends at %d, have %d bytes", dirEnd, len(data))
	}

	for i := 0; i < int(tableCount); i++ {
		off := headerLen + i*tableHeaderLen
		ext := decodeExtension(data[off : off+4])
		entriesOffset := binary.LittleEndian.Uint32(data[off+4:])
		entryCount := binary.LittleEndian.Uint32(data[off+8:])

		entriesEnd := int(entriesOffset) + int(entryCount)*entryLen
		if entriesEnd > len(data) {
			return nil, fmt.Errorf("table %q: entry list ends at %d, have %d bytes", ext, entriesEnd, len(data))
		}

		entries := make(map[int]span, entryCount)
		for j := 0; j < int(entryCount); j++ {
			eoff := int(entriesOffset) + j*entryLen
			id := int(binary.LittleEndian.Uint32(data[eoff:]))
			sp := span{
				offset: binary.LittleEndian.Uint32(data[eoff+4:]),
				size:   binary.LittleEndian.Uint32(data[eoff+8:]),
			}
			if int(sp.offset)+int(sp.size) > len(data) {
				return nil, fmt.Errorf("table %q id %d: body [%d:%d] outside archive of %d bytes",
					ext, id, sp.offset, int(sp.offset)+int(sp.size), len(data))
			}
			if _, dup := entries[id]; dup {
				return nil, fmt.Errorf("table %q: duplicate resource id %d", ext, id)
			}
			entries[id] = sp
		}
		a.tables[ext] = entries
	}

	return a, nil
}

// File returns a copy of the embedded file with the given extension and id.
func (a *Archive) File(ext string, id int) ([]byte, error) {
	table, ok := a.tables[ext]
	if !ok {
		return nil, &NotFoundError{Extension: ext, ID: id}
	}
	sp, ok := table[id]
	if !ok {
		return nil, &NotFoundError{Extension: ext, ID: id}
	}
	body := make([]byte, sp.size)
	copy(body, a.data[sp.offset:int(sp.offset)+int(sp.size)])
	return body, nil
}

// Has reports whether a resource exists without extracting it.
func (a *Archive) Has(ext string, id int) bool {
	_, ok := a.tables[ext][id]
	return ok
}

// Extensions lists the table extensions present in the archive, sorted.
func (a *Archive) Extensions() []string {
	exts := make([]string, 0, len(a.tables))
	for ext := range a.tables {
		exts = append(exts, ext)
	}
	sort.Strings(exts)
	return exts
}

// IDs lists the resource ids of a table, sorted ascending.
func (a *Archive) IDs(ext string) []int {
	table := a.tables[ext]
	ids := make([]int, 0, len(table))
	for id := range table {
		ids = append(ids, id)
	}
	sort.Ints(ids)
	return ids
}

// decodeExtension unpacks a table's extension field: a marker byte followed
// by the three extension characters stored in reverse order ("pls" → slp).
func decodeExtension(raw []byte) string {
	return string([]byte{raw[3], raw[2], raw[1]})
}

// trimPadding strips the NUL and 0x1A padding legacy tools pad header
// strings with.
func trimPadding(raw []byte) string {
	return strings.TrimRight(string(raw), "\x00\x1a ")
}
