// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package main

import (
	"bufio"
	"flag"
	"io"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/pkg/errors"
	"golang.org/x/term"

	"github.com/ezrec/brookshear/bank"
	"github.com/ezrec/brookshear/cpu"
	"github.com/ezrec/brookshear/emulator"
	"github.com/ezrec/brookshear/monitor"
	"github.com/ezrec/brookshear/translate"
)

// ask prompts for a number in [low, high], until one is given.
func ask(in *bufio.Reader, prompts bool, prompt string, base int, low int, high int) (value int, err error) {
	for {
		if prompts {
			translate.Fprintf(os.Stdout, prompt)
		}

		var line string
		line, err = in.ReadString('\n')
		if len(line) == 0 && err != nil {
			err = errors.Wrapf(err, "%v", strings.TrimSpace(prompt))
			return
		}

		var v int64
		v, err = strconv.ParseInt(strings.TrimSpace(line), base, 32)
		if err == nil && int(v) >= low && int(v) <= high {
			value = int(v)
			return
		}
	}
}

func main() {
	var memory int
	var registers int
	var ip string
	var program string
	var limit int
	var verbose bool
	var lang string

	flag.IntVar(&memory, "m", 0, "Memory cells (1..256)")
	flag.IntVar(&registers, "r", 0, "Registers (1..16)")
	flag.StringVar(&ip, "i", "", "Initial instruction pointer, in hex")
	flag.StringVar(&program, "p", "", "Program hex string, loaded at the instruction pointer")
	flag.IntVar(&limit, "limit", emulator.TICK_LIMIT, "Instructions per execute; 0 is unlimited")
	flag.BoolVar(&verbose, "v", false, "Verbose mode")
	flag.StringVar(&lang, "lang", "", "Message locale, overriding the host locale")

	flag.Parse()

	if flag.NArg() != 0 {
		log.Fatalf("%v: Unknown arguments: %v", os.Args[0], flag.Args())
	}

	if len(lang) != 0 {
		translate.SetLocales(lang, translate.DEFAULT_LOCALE)
	}

	in := bufio.NewReader(os.Stdin)
	prompts := term.IsTerminal(int(os.Stdin.Fd()))

	var err error
	if memory == 0 {
		memory, err = ask(in, prompts, "How many memory cells would you like to have? ", 10, 1, bank.MEMORY_LIMIT)
		if err != nil {
			log.Fatalf("%v: %v", os.Args[0], err)
		}
	}

	if registers == 0 {
		registers, err = ask(in, prompts, "How many registers would you like to have? ", 10, 1, bank.REGISTER_LIMIT)
		if err != nil {
			log.Fatalf("%v: %v", os.Args[0], err)
		}
	}

	var origin int
	if len(ip) == 0 {
		origin, err = ask(in, prompts, "What hex value would you like to set the instruction counter at? ", 16, 0, memory-1)
		if err != nil {
			log.Fatalf("%v: %v", os.Args[0], err)
		}
	} else {
		var v uint64
		v, err = strconv.ParseUint(ip, 16, 16)
		if err != nil {
			log.Fatalf("-i %v: %v", ip, err)
		}
		origin = int(v)
	}

	emu, err := emulator.NewEmulator(memory, registers, origin)
	if err != nil {
		log.Fatalf("%v: %v", os.Args[0], err)
	}
	emu.Verbose = verbose
	emu.Limit = limit

	if len(program) != 0 {
		prog, err := cpu.ParseProgram(origin, program)
		if err == nil {
			err = emu.Load(prog)
		}
		if err != nil {
			log.Fatalf("-p %v: %v", program, errors.Wrapf(err, "origin %02x", origin))
		}
	}

	mon := monitor.NewMonitor(emu, in, os.Stdout)
	mon.Verbose = verbose
	mon.Prompts = prompts

	err = mon.Run()
	if err != nil && !errors.Is(err, io.EOF) {
		log.Fatal(err)
	}
}
