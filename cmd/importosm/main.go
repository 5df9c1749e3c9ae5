package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"runtime/pprof"
	"strings"

	"github.com/k0kubun/go-ansi"
	"github.com/lintang-b-s/supplyroute/pkg/logging"
	"github.com/lintang-b-s/supplyroute/pkg/network"
	"github.com/lintang-b-s/supplyroute/pkg/osmparser"
)

var (
	mapFile      = flag.String("f", "solo_jogja.osm.pbf", "openstreeetmap file (.osm.pbf / .osm) buat road network graphnya")
	outFile      = flag.String("o", "network.yaml.zst", "output network document, akhiran .zst = dikompres zstd")
	name         = flag.String("name", "", "nama network, kosong = nama file osm")
	fuelPerKM    = flag.Float64("fuelperkm", osmparser.DefaultConfig().FuelPerKM, "fuel yang dipakai per km")
	tankCapacity = flag.Float64("tank", osmparser.DefaultConfig().TankCapacity, "kapasitas tangki fuel")
	pricePerUnit = flag.Float64("price", osmparser.DefaultConfig().PricePerUnit, "cost per unit fuel saat refill di amenity=fuel")
	largestSCC   = flag.Bool("largestscc", true, "buang vertex di luar strongly connected component terbesar")
	logLevel     = flag.String("loglevel", "info", "log level: debug | info | warn | error")
	cpuprofile   = flag.String("cpuprofile", "", "write cpu profile to file")
	memprofile   = flag.String("memprofile", "", "write memory profile to this file")
)

func main() {
	flag.Parse()
	logger := logging.New(logging.Config{Level: *logLevel})

	if *cpuprofile != "" {
		f, err := os.Create(*cpuprofile)
		if err != nil {
			log.Fatal(err)
		}
		defer f.Close()

		pprof.StartCPUProfile(f)
		defer pprof.StopCPUProfile()
	}

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancel()

	logger.Info("reading osm file", "file", *mapFile)
	parser := osmparser.NewOSMParser(osmparser.Config{
		FuelPerKM:    *fuelPerKM,
		TankCapacity: *tankCapacity,
		PricePerUnit: *pricePerUnit,
		Progress:     ansi.NewAnsiStdout(),
	}, logger)
	doc, err := parser.Parse(ctx, *mapFile)
	if err != nil {
		log.Fatal(err)
	}
	if *name != "" {
		doc.Name = *name
	}
	recordMemProfile(memprofile, "parsing_osm_data")

	if *largestSCC {
		removed, err := network.KeepLargestComponent(doc)
		if err != nil {
			log.Fatal(err)
		}
		logger.Info("kept largest strongly connected component", "removedVertices", removed)
	}

	// validasi dulu sebelum disimpan, biar engine tidak gagal load
	net, err := network.Build(doc)
	if err != nil {
		log.Fatal(err)
	}

	if err := network.SaveFile(doc, *outFile); err != nil {
		log.Fatal(err)
	}
	logger.Info("network saved", "file", *outFile, "vertices", net.Graph.NumVertices(), "edges", net.Graph.NumEdges())

	fmt.Printf("\n network %s ready!!\n", doc.Name)
}

func recordMemProfile(memprofile *string, name string) {
	if *memprofile != "" {
		*memprofile = strings.Replace(*memprofile, ".mprof", fmt.Sprintf("%s.mprof", name), -1)
		f, err := os.Create(*memprofile)
		if err != nil {
			log.Fatal(err)
		}
		pprof.WriteHeapProfile(f)
		f.Close()
	}
}
