// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package main

import (
	"bufio"
	"flag"
	"io"
	"log"
	"os"

	"github.com/ezrec/bfi/config"
	"github.com/ezrec/bfi/interpreter"
	"github.com/ezrec/bfi/program"
	"github.com/ezrec/bfi/script"
	"github.com/ezrec/bfi/translate"
)

func usage() {
	translate.To(flag.CommandLine.Output(), "Usage: %v [options] program.b\n       %v [options] -x scenario.star\n", os.Args[0], os.Args[0])
	flag.PrintDefaults()
}

func main() {
	var configPath string
	var input string
	var output string
	var tapeSize int
	var policy string
	var flush bool
	var batch bool
	var listing bool
	var scenario string
	var verbose bool

	defaults := config.Default()

	flag.StringVar(&configPath, "c", "", "YAML config file")
	flag.StringVar(&input, "i", "-", "Program input")
	flag.StringVar(&output, "o", "-", "Program output")
	flag.IntVar(&tapeSize, "t", defaults.TapeSize, "Tape size in cells")
	flag.StringVar(&policy, "p", defaults.Policy, "Out-of-range pointer policy (fatal, wrap, grow)")
	flag.BoolVar(&flush, "f", defaults.Flush, "Flush output after every byte")
	flag.BoolVar(&batch, "b", false, "Batch mode, read all input before running")
	flag.BoolVar(&listing, "l", false, "Print the instruction listing, do not execute")
	flag.StringVar(&scenario, "x", "", ".star scenario script to run")
	flag.BoolVar(&verbose, "v", false, "Verbose mode")
	flag.Usage = usage

	flag.Parse()

	cfg := defaults
	if len(configPath) != 0 {
		var err error
		cfg, err = config.Load(configPath)
		if err != nil {
			log.Fatalf("%v: %v", configPath, err)
		}
	}

	// Explicit flags override the config file.
	flag.Visit(func(fl *flag.Flag) {
		switch fl.Name {
		case "t":
			cfg.TapeSize = tapeSize
		case "p":
			cfg.Policy = policy
		case "f":
			cfg.Flush = flush
		case "v":
			cfg.Verbose = verbose
		}
	})

	mc, err := cfg.Machine()
	if err != nil {
		log.Fatalf("%v: %v", os.Args[0], err)
	}

	in := interpreter.NewInterpreter()
	in.Config = mc
	in.Verbose = cfg.Verbose

	if len(scenario) != 0 {
		if flag.NArg() != 0 {
			log.Fatalf("%v: Unknown arguments: %v", os.Args[0], flag.Args())
		}
		s := script.NewScript(os.Stdout)
		s.Interpreter = in
		s.Verbose = cfg.Verbose
		_, err = s.Exec(scenario, nil)
		if err != nil {
			log.Fatalf("%v: %v", scenario, err)
		}
		return
	}

	if flag.NArg() != 1 {
		flag.Usage()
		os.Exit(2)
	}

	path := flag.Arg(0)
	source, err := os.ReadFile(path)
	if err != nil {
		log.Fatalf("%v: %v", path, err)
	}

	if listing {
		prog, err := program.Parse(string(source))
		if err != nil {
			log.Fatalf("%v: %v", path, err)
		}
		os.Stdout.WriteString(prog.String())
		return
	}

	var inf io.Reader = os.Stdin
	if input != "-" {
		f, err := os.Open(input)
		if err != nil {
			log.Fatalf("%v: %v", input, err)
		}
		defer f.Close()
		inf = f
	}

	var ouf io.Writer = os.Stdout
	if output != "-" {
		f, err := os.Create(output)
		if err != nil {
			log.Fatalf("%v: %v", output, err)
		}
		defer f.Close()
		ouf = f
	}

	if batch {
		data, err := io.ReadAll(inf)
		if err != nil {
			log.Fatalf("%v: %v", input, err)
		}
		text, err := in.Batch(string(source), string(data))
		if err != nil {
			log.Fatalf("%v: %v", path, err)
		}
		_, err = io.WriteString(ouf, text)
		if err != nil {
			log.Fatalf("%v: %v", output, err)
		}
		return
	}

	bouf := bufio.NewWriter(ouf)
	err = in.Stream(string(source), inf, bouf, cfg.Flush)
	if err != nil {
		log.Fatalf("%v: %v", path, err)
	}
}
