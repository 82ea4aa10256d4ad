// Command dashline renders scenes of styled shapes to image files.
//
//	dashline render [-config file] [-o out.png] [scene.yaml]
//	dashline raster [-config file] [-o out.png] [-width n] [-resource] [-x n] [-y n] file
//	dashline version
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/32bitkid/dashline/internal/version"
)

func usage() {
	fmt.Fprintln(os.Stderr, `usage:
  dashline render [-config file] [-o out] [scene.yaml]
  dashline raster [-config file] [-o out] [-width n] [-resource] [-x n] [-y n] file
  dashline version`)
}

func main() {
	if len(os.Args) < 2 {
		usage()
		os.Exit(2)
	}

	var err error
	switch os.Args[1] {
	case "render":
		err = renderCmd(os.Args[2:])
	case "raster":
		err = rasterCmd(os.Args[2:])
	case "version", "--version", "-v":
		fmt.Println(version.Version)
		return
	case "help", "-h", "--help":
		usage()
		return
	default:
		usage()
		os.Exit(2)
	}

	if err == flag.ErrHelp {
		return
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, "dashline:", err)
		os.Exit(1)
	}
}
