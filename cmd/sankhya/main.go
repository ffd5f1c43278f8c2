// Command sankhya converts numbers to words from the command line.
//
//	sankhya -lang hi 1,23,456
//	sankhya -lang en -mode individual 2024
//	sankhya -list
package main

import (
	"flag"
	"fmt"
	"os"
	"sort"

	"github.com/remiges-tech/sankhya"
	"github.com/remiges-tech/sankhya/engine"
)

func main() {
	lang := flag.String("lang", "hi", "language code")
	modeFlag := flag.String("mode", "", "force conversion mode (currency or individual)")
	list := flag.Bool("list", false, "list supported languages and exit")
	flag.Parse()

	if *list {
		langs := sankhya.Languages()
		codes := make([]string, 0, len(langs))
		for code := range langs {
			codes = append(codes, code)
		}
		sort.Strings(codes)
		for _, code := range codes {
			fmt.Printf("%-4s %s\n", code, langs[code])
		}
		return
	}

	mode, err := engine.ParseMode(*modeFlag)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	if flag.NArg() == 0 {
		fmt.Fprintln(os.Stderr, "usage: sankhya [-lang code] [-mode currency|individual] number...")
		os.Exit(2)
	}

	for _, arg := range flag.Args() {
		words, err := sankhya.Convert(arg, *lang, mode)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
		fmt.Println(words)
	}
}
