package main

import (
	"fmt"
	"os"

	"github.com/muyo/geohash"
)

const exactFmt = `
-- Center

   Latitude: %v
  Longitude: %v

-- Error margins

   Latitude: ±%v
  Longitude: ±%v

`

func decode(in string) {
	if exact {
		lat, lon, latErr, lonErr, err := geohash.DecodeExact(in)
		if err != nil {
			fail(fmt.Sprintf("Failed to decode: %v", err))
		}

		fmt.Printf(exactFmt, lat, lon, latErr, lonErr)
		os.Exit(0)
	}

	lat, lon, err := geohash.Decode(in)
	if err != nil {
		fail(fmt.Sprintf("Failed to decode: %v", err))
	}

	if _, err := os.Stdout.Write([]byte(lat + " " + lon + "\n")); err != nil {
		os.Exit(1)
	}

	os.Exit(0)
}
