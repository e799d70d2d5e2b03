package main

import (
	"flag"
)

const (
	cmdEncode  = "encode"
	cmdDecode  = "decode"
	cmdVersion = "version"
	cmdHelp    = "help"

	appVersion = "0.1.0"
)

var (
	precision string
	exact     bool
)

func init() {
	flag.StringVar(&precision, "precision", "", "The number of characters of encoded geohashes, given in decimal (base10)")
	flag.BoolVar(&exact, "exact", false, "Print decoded positions as raw floats along with their error margins")
	flag.Parse()
}

func main() {
	var (
		args  = flag.Args()
		argsN = len(args)
	)

	if argsN == 0 {
		usage()
	}

	switch args[0] {
	case cmdEncode:
		if argsN == 3 {
			encode(args[1], args[2])
		}
	case cmdDecode:
		if argsN == 2 {
			decode(args[1])
		}
	case cmdVersion:
		version()
	case cmdHelp:
		usage()
	}

	usage()
}
