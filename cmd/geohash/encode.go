package main

import (
	"os"
	"strconv"

	"github.com/muyo/geohash"
	"github.com/muyo/rush/chars"
)

func encode(latIn, lonIn string) {
	lat, err := strconv.ParseFloat(latIn, 64)
	if err != nil {
		fail("Need a valid decimal latitude.")
	}

	lon, err := strconv.ParseFloat(lonIn, 64)
	if err != nil {
		fail("Need a valid decimal longitude.")
	}

	hash := geohash.EncodeWithPrecision(lat, lon, parseEncodeOpts())
	if _, err := os.Stdout.Write([]byte(hash + "\n")); err != nil {
		os.Exit(1)
	}

	os.Exit(0)
}

func parseEncodeOpts() int {
	if precision == "" {
		return geohash.DefaultPrecision
	}

	p, ok := chars.ParseUint8(precision)
	if !ok || p == 0 {
		fail("-precision must be a valid base10 number between 1 and 255")
	}

	return int(p)
}
