/*
 * main.go, part of gocube.
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

//cubediff subtracts the volumetric fields of 2 Gaussian cube files
//(second minus first) and writes the difference as a new cube file, with
//the header of the first input copied verbatim. It can also split the
//difference into its positive-only and negative-only parts, print some
//statistics of the difference field, and plot its value distribution.
package main

import (
	"flag"
	"fmt"
	"os"
	"strings"

	cube "github.com/rmera/gocube"
	"github.com/rmera/gocube/cubeplot"
)

func main() {
	fs := flag.NewFlagSet("cubediff", flag.ContinueOnError)
	separate := fs.Bool("separate", false, "Also write the positive-only and negative-only parts of the difference, as NAME_positive.cube and NAME_negative.cube")
	out := fs.String("o", "diff.cube", "Name for the output difference cube file")
	stats := fs.Bool("stats", false, "Print statistics of the difference field to standard output")
	plotname := fs.String("plot", "", "Plot a histogram of the difference field values to the given file name")
	bins := fs.Int("bins", 0, "Number of histogram bins for -plot (0 means the default)")
	fs.Usage = func() {
		fmt.Fprintf(fs.Output(), "Usage: cubediff [flags] file1 file2\n")
		fmt.Fprintf(fs.Output(), "Writes a cube file with the field of file2 minus the field of file1,\nunder the header of file1. Files ending in .gz or .zst are (de)compressed\ntransparently, on both input and output.\n\nFlags:\n")
		fs.PrintDefaults()
	}
	err := fs.Parse(os.Args[1:])
	if err == flag.ErrHelp {
		os.Exit(0)
	}
	if err != nil {
		//flag already printed the problem and the usage
		os.Exit(1)
	}
	if fs.NArg() != 2 {
		fmt.Fprintf(os.Stderr, "cubediff: expected exactly 2 cube files, got %d\n", fs.NArg())
		fs.Usage()
		os.Exit(1)
	}
	ref, err := cube.Read(fs.Arg(0))
	if err != nil {
		die(err)
	}
	target, err := cube.Read(fs.Arg(1))
	if err != nil {
		die(err)
	}
	diff, err := cube.Diff(ref, target)
	if err != nil {
		die(err)
	}
	if err := diff.Write(*out); err != nil {
		die(err)
	}
	fmt.Printf("%s written\n", *out)
	if *separate {
		//The separated files are derived from the difference file just
		//written, not from the in-memory field, so they reflect exactly
		//what a reader of that file will see after the format rounding.
		written, err := cube.Read(*out)
		if err != nil {
			die(err)
		}
		pos, neg := written.Separate()
		posname := derivedName(*out, "positive")
		negname := derivedName(*out, "negative")
		if err := pos.Write(posname); err != nil {
			die(err)
		}
		fmt.Printf("%s written\n", posname)
		if err := neg.Write(negname); err != nil {
			die(err)
		}
		fmt.Printf("%s written\n", negname)
	}
	if *stats {
		printStats(diff)
	}
	if *plotname != "" {
		title := fmt.Sprintf("%s - %s", fs.Arg(1), fs.Arg(0))
		if err := cubeplot.Histogram(diff, *bins, title, *plotname); err != nil {
			die(err)
		}
		fmt.Printf("%s written\n", *plotname)
	}
}

//derivedName inserts tag before the cube extension of name, so
//diff.cube -> diff_positive.cube and diff.cube.gz -> diff_positive.cube.gz.
func derivedName(name, tag string) string {
	for _, ext := range []string{".cube.gz", ".cube.zst", ".cube"} {
		if strings.HasSuffix(name, ext) {
			return strings.TrimSuffix(name, ext) + "_" + tag + ext
		}
	}
	return name + "_" + tag
}

func printStats(g *cube.Grid) {
	if g.Len() == 0 {
		fmt.Println("Difference field: no grid values, nothing to report")
		return
	}
	fmt.Printf("Difference field: %d values\n", g.Len())
	fmt.Printf("min: %12.6g max: %12.6g\n", g.Min(), g.Max())
	fmt.Printf("mean: %12.6g stddev: %12.6g rms: %12.6g\n", g.Mean(), g.StdDev(), g.RMS())
	fmt.Printf("voxel volume: %12.6g integral: %12.6g\n", g.VoxelVolume(), g.Integral())
}

func die(err error) {
	fmt.Fprintf(os.Stderr, "cubediff: %s\n", err.Error())
	os.Exit(1)
}
