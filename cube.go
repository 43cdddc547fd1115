/*
 * cube.go, part of gocube.
 *
 * Copyright 2026 Raul Mera Adasme <raul_dot_mera_changeforat_usach_dot_cl>
 *
 * This program is free software; you can redistribute it and/or modify
 * it under the terms of the GNU Lesser General Public License  as published by
 * the Free Software Foundation; either version 2.1 of the License, or
 * (at your option) any later version.
 *
 * This program is distributed in the hope that it will be useful,
 * but WITHOUT ANY WARRANTY; without even the implied warranty of
 * MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
 * GNU General Public License for more details.
 *
 * You should have received a copy of the GNU Lesser General Public License
 * along with this program; if not, write to the Free Software
 * Foundation, Inc., 51 Franklin Street, Fifth Floor, Boston,
 * MA 02110-1301, USA.
 */

package cube

import (
	"bufio"
	"compress/gzip"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/klauspost/compress/zstd"
)

//DataFormat is the format used for every value in the data region of a
//written cube file: 17-character field, 9 decimals, explicit exponent sign.
//Values are concatenated with no additional separator, as the field width
//already provides one.
const DataFormat = "%17.9E"

//fixedHeaderLines is the number of header lines every cube file has
//before the per-atom lines.
const fixedHeaderLines = 6

//defaultWrap is the number of values per data line used when writing a
//grid that was built in memory, so carries no layout of its own.
const defaultWrap = 6

//FormatValue returns the cube-file text representation of v.
func FormatValue(v float64) string {
	return fmt.Sprintf(DataFormat, v)
}

//Atom represents one entry of the atom list in a cube header.
type Atom struct {
	Number int     //atomic number
	Charge float64 //nuclear charge, can differ from Number with ECPs
	Coords [3]float64
}

//Grid represents a cube file: the volumetric scalar field, the metadata
//parsed from its header, and enough of the original text (raw header lines,
//values per data line) to write it back unchanged.
type Grid struct {
	header   []string //raw header lines, verbatim, without the trailing newline
	natoms    int  //always positive
	orbitals  bool //true if the atom count was negative in the file (MO-list convention)
	angstroms bool //true if a voxel count was negative in the file (Angstrom-units convention)
	origin   [3]float64
	npoints  [3]int
	axes     [3][3]float64
	atoms    []Atom
	data     []float64
	layout   []int //values per line in the data region, as found in the file
	filename string
}

//Len returns the number of values in the grid's data region.
func (G *Grid) Len() int {
	return len(G.data)
}

//NAtoms returns the number of atoms declared in the header.
func (G *Grid) NAtoms() int {
	return G.natoms
}

//Orbitals returns true if the file used the negative-atom-count convention
//that marks a cube containing one or more molecular orbitals. The sign is
//recorded as found, not interpreted further.
func (G *Grid) Orbitals() bool {
	return G.orbitals
}

//Angstroms returns true if the file used the negative-voxel-count convention
//that marks axis vectors given in Angstrom rather than Bohr. As with
//Orbitals, the sign is recorded, not interpreted: no unit conversion is done.
func (G *Grid) Angstroms() bool {
	return G.angstroms
}

//Origin returns the origin of the grid.
func (G *Grid) Origin() [3]float64 {
	return G.origin
}

//NPoints returns the number of voxels along each of the 3 grid axes.
func (G *Grid) NPoints() [3]int {
	return G.npoints
}

//Axes returns the 3 voxel vectors.
func (G *Grid) Axes() [3][3]float64 {
	return G.axes
}

//Atoms returns the parsed atom list.
func (G *Grid) Atoms() []Atom {
	return G.atoms
}

//Header returns a copy of the raw header lines.
func (G *Grid) Header() []string {
	h := make([]string, len(G.header))
	copy(h, G.header)
	return h
}

//Data returns a view (not a copy) of the field values, in the row-major
//order of the file.
func (G *Grid) Data() []float64 {
	return G.data
}

//FileName returns the name of the file the grid was read from, or the
//empty string for grids built in memory.
func (G *Grid) FileName() string {
	return G.filename
}

//clone returns a grid with the same metadata and layout as G and a
//copy of G's data.
func (G *Grid) clone() *Grid {
	N := new(Grid)
	*N = *G
	N.header = make([]string, len(G.header))
	copy(N.header, G.header)
	N.data = make([]float64, len(G.data))
	copy(N.data, G.data)
	N.layout = make([]int, len(G.layout))
	copy(N.layout, G.layout)
	N.atoms = make([]Atom, len(G.atoms))
	copy(N.atoms, G.atoms)
	return N
}

//atomCount parses the first field of the third header line. The value is
//read as a float and truncated, as some programs write it with a decimal
//point. Returns the signed count.
func atomCount(line string) (int, error) {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return 0, fmt.Errorf("goCube/cube.atomCount: empty third header line")
	}
	n, err := strconv.ParseFloat(fields[0], 64)
	if err != nil {
		return 0, fmt.Errorf("goCube/cube.atomCount: can't parse atom count from '%s': %s", fields[0], err.Error())
	}
	return int(n), nil
}

//HeaderLines returns the number of header lines of the cube file name, i.e.
//6 plus the absolute value of the atom count read from the third line.
//It only reads as much of the file as it needs.
func HeaderLines(name string) (int, error) {
	f, err := os.Open(name)
	if err != nil {
		return 0, err
	}
	defer f.Close()
	r, err := decompress(name, f)
	if err != nil {
		return 0, Error{UnableToOpen + ": " + err.Error(), name, []string{"HeaderLines"}, true}
	}
	defer r.Close()
	buf := bufio.NewReader(r)
	var line string
	for i := 0; i < 3; i++ {
		line, err = buf.ReadString('\n')
		if err != nil && !(err == io.EOF && i == 2 && line != "") {
			return 0, Error{"can't read the first 3 header lines: " + err.Error(), name, []string{"HeaderLines"}, true}
		}
	}
	n, err := atomCount(line)
	if err != nil {
		return 0, Error{err.Error(), name, []string{"HeaderLines"}, true}
	}
	if n < 0 {
		n = -n
	}
	return fixedHeaderLines + n, nil
}

//decompress wraps f in the decompressor matching the extension of name.
//Plain files get a no-op wrapper. Follows the extension-switch scheme
//used by goChem's trajectory readers.
func decompress(name string, f *os.File) (io.ReadCloser, error) {
	gzreader := func(a io.Reader) (io.ReadCloser, error) { return gzip.NewReader(a) }
	zstdreader := func(a io.Reader) (io.ReadCloser, error) {
		r, err := zstd.NewReader(a)
		if err != nil {
			return nil, err
		}
		return readCloser{r.Close, io.Reader(r)}, nil
	}
	plainreader := func(a io.Reader) (io.ReadCloser, error) {
		return readCloser{func() {}, a}, nil
	}
	var anyNewReader func(io.Reader) (io.ReadCloser, error)
	switch {
	case strings.HasSuffix(name, ".gz"):
		anyNewReader = gzreader
	case strings.HasSuffix(name, ".zst"):
		anyNewReader = zstdreader
	default:
		anyNewReader = plainreader
	}
	return anyNewReader(bufio.NewReader(f))
}

//zstd.Decoder's Close returns nothing, and a plain reader has no Close at
//all, so both get adapted here to io.ReadCloser.
type readCloser struct {
	closeql func()
	io.Reader
}

func (r readCloser) Close() error {
	r.closeql()
	return nil
}

//compress wraps f in the compressor matching the extension of name.
func compress(name string, f *os.File) (io.WriteCloser, error) {
	gzipwriter := func(a io.Writer) (io.WriteCloser, error) { return gzip.NewWriter(a), nil }
	zstdwriter := func(a io.Writer) (io.WriteCloser, error) {
		return zstd.NewWriter(a, zstd.WithEncoderLevel(zstd.SpeedBestCompression))
	}
	plainwriter := func(a io.Writer) (io.WriteCloser, error) {
		return writeCloser{a}, nil
	}
	var anyNewWriter func(io.Writer) (io.WriteCloser, error)
	switch {
	case strings.HasSuffix(name, ".gz"):
		anyNewWriter = gzipwriter
	case strings.HasSuffix(name, ".zst"):
		anyNewWriter = zstdwriter
	default:
		anyNewWriter = plainwriter
	}
	return anyNewWriter(f)
}

type writeCloser struct {
	io.Writer
}

func (w writeCloser) Close() error { return nil }

//parseHeader fills the metadata of G from the complete raw header lines,
//which must be the 6 fixed lines plus one line per atom.
func parseHeader(G *Grid, lines []string) error {
	if len(lines) < fixedHeaderLines {
		return fmt.Errorf("goCube/cube.parseHeader: %d header lines, need at least %d", len(lines), fixedHeaderLines)
	}
	n, err := atomCount(lines[2])
	if err != nil {
		return err
	}
	if n < 0 {
		G.orbitals = true
		n = -n
	}
	G.natoms = n
	if len(lines) != fixedHeaderLines+n {
		return fmt.Errorf("goCube/cube.parseHeader: %d header lines for %d atoms, need %d", len(lines), n, fixedHeaderLines+n)
	}
	if err := parseXYZLine(lines[2], &G.origin); err != nil {
		return fmt.Errorf("origin line: %s", err.Error())
	}
	for i := 0; i < 3; i++ {
		fields := strings.Fields(lines[3+i])
		if len(fields) < 4 {
			return fmt.Errorf("voxel-axis line %d has %d fields, need 4", i+1, len(fields))
		}
		p, err := strconv.ParseFloat(fields[0], 64)
		if err != nil {
			return fmt.Errorf("voxel-axis line %d: %s", i+1, err.Error())
		}
		np := int(p)
		if np < 0 {
			G.angstroms = true
			np = -np
		}
		G.npoints[i] = np
		if err := parseXYZLine(lines[3+i], &G.axes[i]); err != nil {
			return fmt.Errorf("voxel-axis line %d: %s", i+1, err.Error())
		}
	}
	G.atoms = make([]Atom, 0, n)
	for i := 0; i < n; i++ {
		at, err := parseAtomLine(lines[fixedHeaderLines+i])
		if err != nil {
			return err
		}
		G.atoms = append(G.atoms, at)
	}
	G.header = make([]string, len(lines))
	copy(G.header, lines)
	return nil
}

//NewGrid returns a grid built in memory from complete raw header lines
//(the 6 fixed ones plus one per atom) and the field values. A grid built
//this way has no line layout of its own, so Write wraps its data region at
//6 values per line.
func NewGrid(header []string, data []float64) (*Grid, error) {
	G := new(Grid)
	if err := parseHeader(G, header); err != nil {
		return nil, Error{err.Error(), "", []string{"NewGrid"}, true}
	}
	G.data = make([]float64, len(data))
	copy(G.data, data)
	return G, nil
}

//Read reads the cube file name, which can be gzip or zstd compressed, and
//returns the parsed grid. The raw header lines and the line wrapping of the
//data region are preserved, so a Write of the returned grid reproduces the
//file. The number of data values is taken as found, it is not checked
//against the voxel counts declared in the header.
func Read(name string) (*Grid, error) {
	G := new(Grid)
	G.filename = name
	f, err := os.Open(name)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	r, err := decompress(name, f)
	if err != nil {
		return nil, Error{UnableToOpen + ": " + err.Error(), name, []string{"Read"}, true}
	}
	defer r.Close()
	buf := bufio.NewReader(r)
	lines := make([]string, 0, fixedHeaderLines)
	for i := 0; i < fixedHeaderLines; i++ {
		line, err := buf.ReadString('\n')
		if err != nil {
			return nil, Error{"can't read header: " + err.Error(), name, []string{"Read"}, true}
		}
		lines = append(lines, strings.TrimSuffix(line, "\n"))
	}
	n, err := atomCount(lines[2])
	if err != nil {
		return nil, Error{err.Error(), name, []string{"Read"}, true}
	}
	if n < 0 {
		n = -n
	}
	for i := 0; i < n; i++ {
		line, err := buf.ReadString('\n')
		if err != nil {
			return nil, Error{fmt.Sprintf("can't read atom line %d of %d: %s", i+1, n, err.Error()), name, []string{"Read"}, true}
		}
		lines = append(lines, strings.TrimSuffix(line, "\n"))
	}
	if err := parseHeader(G, lines); err != nil {
		return nil, Error{err.Error(), name, []string{"Read"}, true}
	}
	//Now the data region. Empty lines are tolerated and skipped.
	G.data = make([]float64, 0, G.npoints[0]*G.npoints[1]*G.npoints[2])
	G.layout = make([]int, 0, 100)
	for {
		line, err := buf.ReadString('\n')
		if err != nil && err != io.EOF {
			return nil, Error{"reading data region: " + err.Error(), name, []string{"Read"}, true}
		}
		fields := strings.Fields(line)
		if len(fields) > 0 {
			for _, v := range fields {
				val, errp := strconv.ParseFloat(v, 64)
				if errp != nil {
					return nil, Error{fmt.Sprintf("can't parse grid value '%s': %s", v, errp.Error()), name, []string{"Read"}, true}
				}
				G.data = append(G.data, val)
			}
			G.layout = append(G.layout, len(fields))
		}
		if err == io.EOF {
			break
		}
	}
	return G, nil
}

//parseXYZLine puts in dst the 3 floats that follow the first field of line.
func parseXYZLine(line string, dst *[3]float64) error {
	fields := strings.Fields(line)
	if len(fields) < 4 {
		return fmt.Errorf("goCube/cube.parseXYZLine: %d fields, need 4", len(fields))
	}
	for i := 0; i < 3; i++ {
		v, err := strconv.ParseFloat(fields[i+1], 64)
		if err != nil {
			return fmt.Errorf("goCube/cube.parseXYZLine: field %d: %s", i+1, err.Error())
		}
		dst[i] = v
	}
	return nil
}

//parseAtomLine parses one atom entry of the header: atomic number, nuclear
//charge and 3 coordinates.
func parseAtomLine(line string) (Atom, error) {
	var at Atom
	fields := strings.Fields(line)
	if len(fields) < 5 {
		return at, fmt.Errorf("goCube/cube.parseAtomLine: %d fields, need 5", len(fields))
	}
	z, err := strconv.Atoi(fields[0])
	if err != nil {
		return at, fmt.Errorf("goCube/cube.parseAtomLine: atomic number: %s", err.Error())
	}
	at.Number = z
	at.Charge, err = strconv.ParseFloat(fields[1], 64)
	if err != nil {
		return at, fmt.Errorf("goCube/cube.parseAtomLine: charge: %s", err.Error())
	}
	for i := 0; i < 3; i++ {
		at.Coords[i], err = strconv.ParseFloat(fields[i+2], 64)
		if err != nil {
			return at, fmt.Errorf("goCube/cube.parseAtomLine: coordinate %d: %s", i+1, err.Error())
		}
	}
	return at, nil
}

//Write writes the grid to the file name, compressing it if name ends in
//".gz" or ".zst". Header lines go out verbatim; data values are formatted
//with DataFormat and wrapped as in the file the grid came from, or
//6 per line for grids without a layout.
func (G *Grid) Write(name string) error {
	f, err := os.Create(name)
	if err != nil {
		return err
	}
	defer f.Close()
	h, err := compress(name, f)
	if err != nil {
		return Error{"can't set up compression: " + err.Error(), name, []string{"Write"}, true}
	}
	defer h.Close()
	out := bufio.NewWriter(h)
	for _, v := range G.header {
		if _, err := out.WriteString(v + "\n"); err != nil {
			return Error{err.Error(), name, []string{"Write"}, true}
		}
	}
	layout := G.layout
	if len(layout) == 0 {
		layout = wrapLayout(len(G.data), defaultWrap)
	}
	i := 0
	for _, perline := range layout {
		for j := 0; j < perline; j++ {
			if i >= len(G.data) {
				return Error{"layout declares more values than the grid holds", name, []string{"Write"}, true}
			}
			if _, err := fmt.Fprintf(out, DataFormat, G.data[i]); err != nil {
				return Error{err.Error(), name, []string{"Write"}, true}
			}
			i++
		}
		if _, err := out.WriteString("\n"); err != nil {
			return Error{err.Error(), name, []string{"Write"}, true}
		}
	}
	if err := out.Flush(); err != nil {
		return Error{err.Error(), name, []string{"Write"}, true}
	}
	return nil
}

//wrapLayout returns a layout of total values wrapped at perline per line.
func wrapLayout(total, perline int) []int {
	lines := total / perline
	layout := make([]int, 0, lines+1)
	for i := 0; i < lines; i++ {
		layout = append(layout, perline)
	}
	if rest := total % perline; rest > 0 {
		layout = append(layout, rest)
	}
	return layout
}
