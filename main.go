package main

import (
	"flag"
	"log"
	"os"
	"time"

	"github.com/gostation/gostation/emulator"
	"github.com/gostation/gostation/statsview"
)

func main() {
	// parse arguments
	biosPath := flag.String("bios", "SCPH1001.BIN", "path to the BIOS file")
	debug := flag.Bool("debug", false, "start with the interactive debugger attached")
	stats := flag.Bool("stats", false, "launch the runtime stats server (requires the statsview build tag)")
	flag.Parse()

	if *stats {
		if statsview.Available() {
			statsview.Launch(os.Stdout)
		} else {
			log.Println("stats server not compiled in, rebuild with -tags statsview")
		}
	}

	// start emulator
	bios := loadBios(*biosPath)
	inter := emulator.NewInterconnect(bios)
	cpu := emulator.NewCPU()

	if *debug {
		cpu.Debugger = emulator.NewDebugger()
		cpu.Debugger.Step()
	}

	for {
		cpu.RunBlock(inter)
	}
}

func loadBios(path string) *emulator.BIOS {
	log.Printf("loading bios \"%s\"", path)
	start := time.Now()

	// read bios
	file, err := os.Open(path)
	if err != nil {
		panic(err)
	}
	defer file.Close()

	// load bios
	bios, err := emulator.LoadBIOS(file)
	if err != nil {
		panic(err)
	}

	log.Printf("loaded bios in %s", time.Since(start))
	return bios
}
