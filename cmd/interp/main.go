package main

import (
	"bufio"
	"flag"
	"fmt"
	"log"
	"os"
	"strings"

	interp "github.com/B4tt3dCr4n3/goit-cs-hw-01"
	"github.com/mattn/go-isatty"
)

var showAST = flag.Bool("ast", false, "print the syntax tree before each result")

func evalLine(line string) error {
	p, err := interp.NewParser(interp.NewLexer(line))
	if err != nil {
		return err
	}
	node, err := p.Parse()
	if err != nil {
		return err
	}
	if *showAST {
		interp.WriteTree(os.Stdout, node)
	}
	v, err := interp.Eval(node)
	if err != nil {
		return err
	}
	fmt.Println(interp.FormatResult(v))
	return nil
}

func repl() {
	scanner := bufio.NewScanner(os.Stdin)
	for {
		fmt.Print("> ")
		if !scanner.Scan() {
			break
		}
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		if strings.EqualFold(line, "exit") {
			break
		}
		if err := evalLine(line); err != nil {
			fmt.Fprintln(os.Stderr, err)
		}
	}
}

func run(f *os.File) {
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		if err := evalLine(line); err != nil {
			log.Fatal(err)
		}
	}
	if err := scanner.Err(); err != nil {
		log.Fatal(err)
	}
}

func main() {
	flag.Parse()

	if flag.NArg() > 1 {
		flag.Usage()
		os.Exit(2)
	}

	if flag.NArg() == 0 {
		if isatty.IsTerminal(os.Stdin.Fd()) {
			repl()
			return
		}
		run(os.Stdin)
		return
	}

	f, err := os.Open(flag.Arg(0))
	if err != nil {
		log.Fatal(err)
	}
	defer f.Close()
	run(f)
}
