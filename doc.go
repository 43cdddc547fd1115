/*
 * doc.go, part of gocube.
 *
 * Copyright 2026 Raul Mera Adasme <raul_dot_mera_changeforat_usach_dot_cl>
 *
 * This program is free software; you can redistribute it and/or modify
 * it under the terms of the GNU Lesser General Public License as
 * published by the Free Software Foundation; either version 2.1 of the
 * License, or (at your option) any later version.
 *
 * This program is distributed in the hope that it will be useful,
 * but WITHOUT ANY WARRANTY; without even the implied warranty of
 * MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
 * GNU General Public License for more details.
 *
 * You should have received a copy of the GNU Lesser General
 * Public License along with this program.  If not, see
 * <http://www.gnu.org/licenses/>.
 *
 */

/*Package cube reads, writes and manipulates Gaussian cube files, the text format
used by most quantum chemistry programs to store volumetric data (electron
densities, molecular orbitals, electrostatic potentials) on a regular 3D grid.

A cube file has a fixed-structure header (2 comment lines, one line with the
atom count and the grid origin, 3 voxel-axis lines and one line per atom)
followed by the flattened scalar field, several values per line, in fixed-width
scientific notation.

The package keeps the raw header lines of every file it reads, so a written
file reproduces its source header byte for byte, including the line wrapping of
the data region. On top of plain I/O it provides element-wise operations
between fields on matching grids: the difference of two fields (typically two
electron densities, to visualize charge transfer), sign separation of a
difference field into its positive-only and negative-only parts, scaling,
addition, and some simple statistics of the field.

Files compressed with gzip or zstd are read and written transparently,
depending on the file extension.*/
package cube
