package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/milk9111/bobross/levels"
)

func main() {
	levelName := flag.String("level", "", "Level name to check from levels/ (basename or filename, .json optional); all embedded levels when empty")
	overview := flag.Bool("overview", false, "print an ASCII overview of each level")
	flag.Parse()

	names := levels.Names()
	if *levelName != "" {
		names = []string{*levelName}
	}

	failed := false
	for _, name := range names {
		lvl, err := levels.LoadLevelFromFS(name)
		if err != nil {
			log.Printf("%s: %v", name, err)
			failed = true
			continue
		}

		problems, err := checkLevel(lvl)
		if err != nil {
			log.Printf("%s: %v", name, err)
			failed = true
			continue
		}
		for _, p := range problems {
			fmt.Printf("%s: %s\n", name, p)
		}
		if len(problems) > 0 {
			failed = true
		} else {
			fmt.Printf("%s: ok\n", name)
		}

		if *overview {
			fmt.Println(levelOverview(lvl))
		}
	}

	if failed {
		os.Exit(1)
	}
}
