package main

import (
	"fmt"
	"io"
	"os"

	"github.com/jessevdk/go-flags"
	"github.com/lestrrat-go/xmldom"
)

type cmdopts struct {
	Compact    bool `long:"compact"`
	Namespaces bool `long:"namespaces"`
	Version    bool `long:"version"`
}

func main() {
	os.Exit(_main())
}

func showVersion() {
	fmt.Printf("xmldom-format: using xmldom version %s\n", xmldom.Version)
}

func showUsage() {
	fmt.Printf(`Usage : xmldom-format [options] XMLfiles ...
	Parse the XML files and print them re-serialized, pretty by
	default, single-line with --compact. Reads stdin when no files
	are given.
	--version : display the version of the XML library used
`)
}

func _main() int {
	opts := cmdopts{}
	args, err := flags.ParseArgs(&opts, os.Args[1:])
	if err != nil {
		showUsage()
		return 1
	}

	if opts.Version {
		showVersion()
		return 0
	}

	var inputs []io.Reader
	if len(args) > 0 {
		for _, f := range args {
			fh, err := os.Open(f)
			if err != nil {
				fmt.Fprintf(os.Stderr, "%s\n", err)
				return 1
			}
			defer fh.Close()
			inputs = append(inputs, fh)
		}
	} else {
		inputs = append(inputs, os.Stdin)
	}

	for _, in := range inputs {
		doc := xmldom.NewDocument(xmldom.WithProcessNamespaces(opts.Namespaces))
		if err := doc.ReadXML(in); err != nil {
			fmt.Fprintf(os.Stderr, "%s\n", err)
			return 1
		}

		if opts.Compact {
			fmt.Println(doc.XMLStringCompact())
		} else {
			fmt.Println(doc.XMLString())
		}
	}

	return 0
}
