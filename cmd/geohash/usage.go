package main

import (
	"os"
)

const usageFmt = `
geohash encodes positions into geohashes and decodes them back.

Usage: 

    geohash [options...] <command> [parameters ...]

Commands:

    encode    Encodes a position given as decimal latitude and longitude

              geohash [--precision=<decimal>] encode <lat> <lon>
                  --precision=<decimal>   The number of characters to produce, max 255, default 12

    decode    Decodes a geohash into the center of its cell

              geohash [--exact] decode <geohash>
                  --exact                 Print raw floats and the error margins of both axes

    version   Displays the version of this program
    help      Displays this information
`

func usage() {
	_, _ = os.Stdout.Write([]byte(usageFmt))
	os.Exit(0)
}

func version() {
	_, _ = os.Stdout.Write([]byte(appVersion + "\n"))
	os.Exit(0)
}

func fail(msg string) {
	_, _ = os.Stderr.Write([]byte(msg + "\n"))
	os.Exit(1)
}
