// Package testutil builds synthetic legacy asset fixtures in memory so
// parser and stage tests do not depend on proprietary game files.
package testutil

import "encoding/binary"

// DRSFile describes one embedded file for BuildDRS.
type DRSFile struct {
	Ext  string
	ID   int
	Data []byte
}

const (
	drsCopyrightLen = 40
	drsVersionLen   = 4
	drsArchTypeLen  = 12
	drsHeaderLen    = drsCopyrightLen + drsVersionLen + drsArchTypeLen + 8
)

// BuildDRS assembles a well-formed DRS archive containing the given files.
// Files sharing an extension land in the same table; table and entry order
// follow first appearance.
func BuildDRS(files ...DRSFile) []byte {
	var exts []string
	byExt := make(map[string][]DRSFile)
	for _, f := range files {
		if len(f.Ext) != 3 {
			panic("testutil: DRS extensions are exactly three characters")
		}
		if _, seen := byExt[f.Ext]; !seen {
			exts = append(exts, f.Ext)
		}
		byExt[f.Ext] = append(byExt[f.Ext], f)
	}

	dirLen := len(exts) * 12
	entriesLen := len(files) * 12
	bodyStart := drsHeaderLen + dirLen + entriesLen

	buf := make([]byte, 0, bodyStart)

	header := make([]byte, drsHeaderLen)
	copy(header, "Copyright (c) 1997 Ensemble Studios.")
	for i := len("Copyright (c) 1997 Ensemble Studios."); i < drsCopyrightLen; i++ {
		header[i] = 0x1a
	}
	copy(header[drsCopyrightLen:], "1.00")
	copy(header[drsCopyrightLen+drsVersionLen:], "tribe")
	binary.LittleEndian.PutUint32(header[drsCopyrightLen+drsVersionLen+drsArchTypeLen:], uint32(len(exts)))
	binary.LittleEndian.PutUint32(header[drsCopyrightLen+drsVersionLen+drsArchTypeLen+4:], uint32(bodyStart))
	buf = append(buf, header...)

	// Table directory, entry lists, then bodies.
	entriesOffset := drsHeaderLen + dirLen
	for _, ext := range exts {
		table := make([]byte, 12)
		table[0] = 0x61
		table[1] = ext[2]
		table[2] = ext[1]
		table[3] = ext[0]
		binary.LittleEndian.PutUint32(table[4:], uint32(entriesOffset))
		binary.LittleEndian.PutUint32(table[8:], uint32(len(byExt[ext])))
		buf = append(buf, table...)
		entriesOffset += len(byExt[ext]) * 12
	}

	bodyOffset := bodyStart
	var bodies []byte
	for _, ext := range exts {
		for _, f := range byExt[ext] {
			entry := make([]byte, 12)
			binary.LittleEndian.PutUint32(entry, uint32(f.ID))
			binary.LittleEndian.PutUint32(entry[4:], uint32(bodyOffset))
			binary.LittleEndian.PutUint32(entry[8:], uint32(len(f.Data)))
			buf = append(buf, entry...)
			bodies = append(bodies, f.Data...)
			bodyOffset += len(f.Data)
		}
	}

	return append(buf, bodies...)
}
