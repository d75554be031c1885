// Copyright (C) 2021  Antonio Lassandro

// This program is free software: you can redistribute it and/or modify it
// under the terms of the GNU General Public License as published by the Free
// Software Foundation, either version 3 of the License, or (at your option)
// any later version.

// This program is distributed in the hope that it will be useful, but WITHOUT
// ANY WARRANTY; without even the implied warranty of MERCHANTABILITY or
// FITNESS FOR A PARTICULAR PURPOSE.  See the GNU General Public License for
// more details.

// You should have received a copy of the GNU General Public License along
// with this program.  If not, see <http://www.gnu.org/licenses/>.

package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"path/filepath"

	"github.com/lassandro/gochip8/pkg/display"
	"github.com/lassandro/gochip8/pkg/encoding"
	"github.com/lassandro/gochip8/pkg/machine"
	"github.com/lassandro/gochip8/pkg/render"
	"github.com/retroenv/retrogolib/buildinfo"
)

var (
	version = "dev"
	commit  = ""
	date    = ""
)

var helpvar bool
var versionvar bool
var termvar bool
var bcdvar bool
var sizevar string
var colorvar string
var ratevar uint

const usage = "gochip8 [-term] [-size WxH] [-color #RRGGBB] [-rate N] [-bcd] filename"

func init() {
	exe, _ := os.Executable()
	log.SetFlags(0)
	log.SetPrefix(fmt.Sprintf("%s: ", filepath.Base(exe)))
	log.SetOutput(os.Stderr)
}

func init() {
	flag.BoolVar(&helpvar, "help", false, "Displays command usage")
	flag.BoolVar(&versionvar, "version", false, "Displays the version")
	flag.BoolVar(&termvar, "term", false, "Renders in the terminal instead of a window")
	flag.BoolVar(
		&bcdvar, "bcd", false,
		"Stores FX33 digits as hundreds, tens, ones instead of placing the "+
			"tens digit at I+2",
	)
	flag.StringVar(&sizevar, "size", "640x320", "Window size as WIDTHxHEIGHT")
	flag.StringVar(
		&colorvar, "color", fmt.Sprintf("#%06X", render.DEFAULT_FOREGROUND),
		"Pixel colour as #RRGGBB",
	)
	flag.UintVar(&ratevar, "rate", 10, "Instructions executed per 60Hz frame")
	flag.Parse()
}

func gochip8() int {
	if helpvar {
		fmt.Println(usage)
		flag.PrintDefaults()
		return 0
	}

	if versionvar {
		fmt.Printf("gochip8 %s\n", buildinfo.Version(version, commit, date))
		return 0
	}

	args := flag.Args()

	if len(args) != 1 {
		log.Println(usage)
		return 1
	}

	width, height, err := encoding.DecodeSize(sizevar)

	if err != nil {
		log.Println(err)
		return 1
	}

	palette := render.DefaultPalette()

	if palette.Foreground, err = encoding.DecodeColor(colorvar); err != nil {
		log.Println(err)
		return 1
	}

	if ratevar == 0 {
		log.Println("Rate must be at least 1")
		return 1
	}

	file, err := os.Open(args[0])

	if err != nil {
		log.Println(err)
		return 1
	}

	defer file.Close()

	mc := machine.New()
	mc.StandardBCD = bcdvar

	if err := mc.LoadBin(file); err != nil {
		log.Printf("Loading %s: %v\n", args[0], err)
		return 1
	}

	fb := display.New(display.DEFAULT_WIDTH, display.DEFAULT_HEIGHT)

	if termvar {
		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
		defer stop()

		err = runTerm(ctx, mc, fb, int(ratevar), palette)
	} else {
		err = runWindow(mc, fb, width, height, int(ratevar), palette)
	}

	if err != nil {
		log.Println(err)
		return 1
	}

	return 0
}

func main() {
	os.Exit(gochip8())
}
