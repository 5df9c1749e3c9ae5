package osmparser

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"slices"
	"strconv"
	"strings"

	"github.com/lintang-b-s/supplyroute/pkg/datastructure"
	"github.com/lintang-b-s/supplyroute/pkg/geo"
	"github.com/lintang-b-s/supplyroute/pkg/network"
	"github.com/paulmach/osm"
	"github.com/paulmach/osm/osmpbf"
	"github.com/paulmach/osm/osmxml"
	"github.com/schollz/progressbar/v3"
)

type NodeType int

const (
	END_NODE NodeType = iota
	BETWEEN_NODE
	JUNCTION_NODE
)

const FUEL = "fuel"

type nodeCoord struct {
	lat float64
	lon float64
}

type node struct {
	id    int64
	coord nodeCoord
}

type Config struct {
	// FuelPerKM fuel yang dipakai per km jalan.
	FuelPerKM float64
	// TankCapacity capacity resource fuel.
	TankCapacity float64
	// PricePerUnit cost per unit refill di SPBU (amenity=fuel).
	PricePerUnit float64
	// Progress tujuan progress bar saat memecah way. nil = tanpa progress bar.
	Progress io.Writer
}

func DefaultConfig() Config {
	return Config{FuelPerKM: 0.1, TankCapacity: 40, PricePerUnit: 0.01}
}

// OsmParser ubah jalan di file openstreetmap jadi network.Document. way dipecah di junction node & SPBU,
// setiap potongan jadi satu edge dengan weight = panjang (km).
type OsmParser struct {
	cfg             Config
	log             *slog.Logger
	wayNodeMap      map[int64]NodeType
	acceptedNodeMap map[int64]nodeCoord
	fuelNodes       map[int64]bool
	ways            []*osm.Way
}

func NewOSMParser(cfg Config, log *slog.Logger) *OsmParser {
	if log == nil {
		log = slog.Default()
	}
	return &OsmParser{
		cfg:             cfg,
		log:             log,
		wayNodeMap:      make(map[int64]NodeType),
		acceptedNodeMap: make(map[int64]nodeCoord),
		fuelNodes:       make(map[int64]bool),
	}
}

var (
	skipHighway = map[string]struct{}{
		"footway":      {},
		"construction": {},
		"cycleway":     {},
		"path":         {},
		"pedestrian":   {},
		"busway":       {},
		"steps":        {},
		"bridleway":    {},
		"corridor":     {},
		"platform":     {},
		"track":        {},
		"bus_guideway": {},
		"proposed":     {},
	}
)

// Parse .osm.pbf dibaca pakai osmpbf, selain itu dianggap osm xml.
func (p *OsmParser) Parse(ctx context.Context, mapFile string) (*network.Document, error) {
	f, err := os.Open(mapFile)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var scanner osm.Scanner
	if strings.HasSuffix(mapFile, ".pbf") {
		scanner = osmpbf.New(ctx, f, 1)
	} else {
		scanner = osmxml.New(ctx, f)
	}
	return p.ParseScanner(scanner, mapFile)
}

// ParseXML baca osm xml dari reader.
func (p *OsmParser) ParseXML(ctx context.Context, r io.Reader, name string) (*network.Document, error) {
	return p.ParseScanner(osmxml.New(ctx, r), name)
}

func (p *OsmParser) ParseScanner(scanner osm.Scanner, name string) (*network.Document, error) {
	defer scanner.Close()

	countWays, countNodes := 0, 0
	for scanner.Scan() {
		switch o := scanner.Object().(type) {
		case *osm.Node:
			if (countNodes+1)%50000 == 0 {
				p.log.Info("reading openstreetmap nodes", "count", countNodes+1)
			}
			countNodes++
			p.acceptedNodeMap[int64(o.ID)] = nodeCoord{lat: o.Lat, lon: o.Lon}
			if o.Tags.Find("amenity") == FUEL {
				p.fuelNodes[int64(o.ID)] = true
			}
		case *osm.Way:
			if len(o.Nodes) < 2 || !acceptOsmWay(o) {
				continue
			}
			if (countWays+1)%50000 == 0 {
				p.log.Info("reading openstreetmap ways", "count", countWays+1)
			}
			countWays++
			p.markWayNodes(o)
			p.ways = append(p.ways, o)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("osmparser: scan %s: %w", name, err)
	}

	doc := &network.Document{
		Name: name,
		Resources: map[string]network.Resource{
			FUEL: {Capacity: p.cfg.TankCapacity},
		},
		Heuristic: network.HeuristicSpec{Kind: network.HeuristicHaversine, CostPerUnit: 1},
		Vertices:  make([]network.Vertex, 0),
		Edges:     make([]network.Edge, 0),
	}

	bar := p.newProgressBar(len(p.ways), "[cyan][2/2][reset] splitting openstreetmap ways ...")
	vertexSet := make(map[int64]struct{})
	for _, way := range p.ways {
		p.processWay(way, doc, vertexSet)
		if bar != nil {
			bar.Add(1)
		}
	}
	if bar != nil {
		bar.Finish()
	}

	vertexIDs := make([]int64, 0, len(vertexSet))
	for id := range vertexSet {
		vertexIDs = append(vertexIDs, id)
	}
	slices.Sort(vertexIDs)
	for _, id := range vertexIDs {
		coord := p.acceptedNodeMap[id]
		v := network.Vertex{
			ID:  nodeIDString(id),
			Lat: network.Float(coord.lat),
			Lon: network.Float(coord.lon),
		}
		if p.fuelNodes[id] {
			v.Recover = map[string]network.RecoverPolicy{
				FUEL: {Policy: network.PolicyRefill, CostPerUnit: p.cfg.PricePerUnit},
			}
		}
		doc.Vertices = append(doc.Vertices, v)
	}

	p.log.Info("openstreetmap parsed", "ways", countWays, "vertices", len(doc.Vertices), "edges", len(doc.Edges))
	return doc, nil
}

func (p *OsmParser) newProgressBar(total int, description string) *progressbar.ProgressBar {
	if p.cfg.Progress == nil {
		return nil
	}
	return progressbar.NewOptions(total,
		progressbar.OptionSetWriter(p.cfg.Progress),
		progressbar.OptionEnableColorCodes(true),
		progressbar.OptionSetWidth(15),
		progressbar.OptionShowCount(),
		progressbar.OptionSetDescription(description),
		progressbar.OptionSetTheme(progressbar.Theme{
			Saucer:        "[green]=[reset]",
			SaucerHead:    "[green]>[reset]",
			SaucerPadding: " ",
			BarStart:      "[",
			BarEnd:        "]",
		}))
}

func (p *OsmParser) markWayNodes(way *osm.Way) {
	for i, wayNode := range way.Nodes {
		id := int64(wayNode.ID)
		if _, ok := p.wayNodeMap[id]; !ok {
			if i == 0 || i == len(way.Nodes)-1 {
				p.wayNodeMap[id] = END_NODE
			} else {
				p.wayNodeMap[id] = BETWEEN_NODE
			}
		} else {
			p.wayNodeMap[id] = JUNCTION_NODE
		}
	}
}

func (p *OsmParser) isJunctionNode(nodeID int64) bool {
	return p.wayNodeMap[nodeID] != BETWEEN_NODE || p.fuelNodes[nodeID]
}

type wayExtraInfo struct {
	oneWay  bool
	forward bool
}

func wayDirection(way *osm.Way) wayExtraInfo {
	info := wayExtraInfo{forward: true}
	okvf, okmvf, okvb, okmvb := getReversedOneWay(way)
	oneway := way.Tags.Find("oneway")
	junction := way.Tags.Find("junction")
	if (oneway != "" && oneway != "no") || junction == "roundabout" || okvf || okmvf || okvb || okmvb {
		info.oneWay = true
	}
	if oneway == "-1" || okvf || okmvf {
		info.forward = false
	}
	return info
}

func (p *OsmParser) processWay(way *osm.Way, doc *network.Document, vertexSet map[int64]struct{}) {
	direction := wayDirection(way)

	segment := make([]node, 0)
	for _, wayNode := range way.Nodes {
		id := int64(wayNode.ID)
		coord, ok := p.acceptedNodeMap[id]
		if !ok {
			// node di luar extract
			continue
		}
		nodeData := node{id: id, coord: coord}
		segment = append(segment, nodeData)
		if p.isJunctionNode(id) && len(segment) > 1 {
			p.addEdge(way, segment, direction, doc, vertexSet)
			segment = []node{nodeData}
		}
	}
	if len(segment) > 1 {
		p.addEdge(way, segment, direction, doc, vertexSet)
	}
}

func (p *OsmParser) addEdge(way *osm.Way, segment []node, direction wayExtraInfo, doc *network.Document,
	vertexSet map[int64]struct{}) {
	from, to := segment[0], segment[len(segment)-1]
	if from.id == to.id {
		return
	}

	coords := make([]datastructure.Coordinate, 0, len(segment))
	for _, n := range segment {
		coords = append(coords, datastructure.NewCoordinate(n.coord.lat, n.coord.lon))
	}
	distance := geo.PolylineLength(coords) // km

	if !direction.forward {
		from, to = to, from
	}
	vertexSet[from.id] = struct{}{}
	vertexSet[to.id] = struct{}{}

	doc.Edges = append(doc.Edges, network.Edge{
		From:     nodeIDString(from.id),
		To:       nodeIDString(to.id),
		ID:       fmt.Sprintf("w%d-%d", way.ID, len(doc.Edges)),
		Weight:   network.Float(distance),
		Directed: direction.oneWay,
		Consumes: map[string]float64{FUEL: distance * p.cfg.FuelPerKM},
	})
}

func nodeIDString(id int64) string {
	return strconv.FormatInt(id, 10)
}

func isRestricted(value string) bool {
	if value == "no" || value == "restricted" || value == "military" || value == "emergency" || value == "private" || value == "permit" {
		return true
	}
	return false
}

func getReversedOneWay(way *osm.Way) (bool, bool, bool, bool) {
	vehicleForward := way.Tags.Find("vehicle:forward")
	motorVehicleForward := way.Tags.Find("motor_vehicle:forward")
	vehicleBackward := way.Tags.Find("vehicle:backward")
	motorVehicleBackward := way.Tags.Find("motor_vehicle:backward")
	return isRestricted(vehicleForward), isRestricted(motorVehicleForward), isRestricted(vehicleBackward), isRestricted(motorVehicleBackward)
}

func acceptOsmWay(way *osm.Way) bool {
	highway := way.Tags.Find("highway")
	junction := way.Tags.Find("junction")
	if highway != "" {
		if _, ok := skipHighway[highway]; !ok {
			return true
		}
	} else if way.Tags.Find("route") == "road" {
		return true
	} else if junction != "" {
		return true
	}
	return false
}
