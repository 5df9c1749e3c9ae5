package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"log/slog"
	"net/http"
	"os"
	"runtime/pprof"
	"strings"
	"time"

	_ "github.com/lintang-b-s/supplyroute/docs"
	"github.com/lintang-b-s/supplyroute/pkg/kv"
	"github.com/lintang-b-s/supplyroute/pkg/logging"
	"github.com/lintang-b-s/supplyroute/pkg/network"
	"github.com/lintang-b-s/supplyroute/pkg/server/rest"
	"github.com/lintang-b-s/supplyroute/pkg/server/rest/service"
	"github.com/lintang-b-s/supplyroute/pkg/snap"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
	"go.opentelemetry.io/otel"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	httpSwagger "github.com/swaggo/http-swagger"

	_ "net/http/pprof"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	mymiddleware "github.com/lintang-b-s/supplyroute/pkg/server/middleware"
)

var (
	listenAddr     = flag.String("listenaddr", ":5000", "server listen address")
	networkFile    = flag.String("f", "network.yaml", "network document (.yaml / .yaml.zst) hasil importosm atau ditulis manual")
	storeBackend   = flag.String("store", kv.BADGER, "route cache backend: badger | pebble | none")
	storeDir       = flag.String("storedir", "", "direktori route cache, kosong = in-memory")
	snapperKind    = flag.String("snapper", snap.RTREE, "coordinate snapper: rtree | h3 | none")
	searchTimeout  = flag.Duration("timeout", 5*time.Second, "default timeout per search, 0 = tanpa timeout")
	matrixWorkers  = flag.Int("workers", 8, "jumlah worker untuk cost matrix")
	logLevel       = flag.String("loglevel", "info", "log level: debug | info | warn | error")
	logFormat      = flag.String("logformat", "text", "log format: text | json")
	tracing        = flag.Bool("tracing", false, "tulis otel span ke log (level debug)")
	useRateLimit   = flag.Bool("ratelimit", false, "use rate limit")
	rateLimitRPS   = flag.Float64("rps", 50, "request per detik kalau ratelimit aktif")
	rateLimitBurst = flag.Int("burst", 100, "burst kalau ratelimit aktif")
	corsOrigins    = flag.String("cors", "https://*,http://*", "allowed origins, dipisah koma")
	cpuprofile     = flag.String("cpuprofile", "", "write cpu profile to file")
	memprofile     = flag.String("memprofile", "", "write memory profile to this file")
)

//	@title			supplyroute API
//	@version		1.0
//	@description	resource constrained routing engine in go

//	@contact.name	lintang birda saputra
//	@description 	resource constrained routing engine in go. Dijkstra/A* yang membawa ledger supply (fuel, battery, dll) sepanjang path

//	@license.name	GNU Affero General Public License v3.0
//	@license.url	https://www.gnu.org/licenses/gpl-3.0.en.html

// @host		localhost:5000
// @BasePath	/api
// @schemes	http
func main() {
	flag.Parse()
	logger := logging.New(logging.Config{Level: *logLevel, Format: *logFormat})
	slog.SetDefault(logger)

	if *cpuprofile != "" {
		f, err := os.Create(*cpuprofile)
		if err != nil {
			log.Fatal(err)
		}
		defer f.Close()

		pprof.StartCPUProfile(f)
		defer pprof.StopCPUProfile()
	}

	doc, err := network.LoadFile(*networkFile)
	if err != nil {
		log.Fatal(err)
	}
	net, err := network.Build(doc)
	if err != nil {
		log.Fatal(err)
	}
	logger.Info("network loaded", "name", net.Name, "file", *networkFile, "vertices", net.Graph.NumVertices(),
		"heuristic", net.HeuristicKind())

	recordMemProfile(memprofile, "load_network")

	if *tracing {
		tp := sdktrace.NewTracerProvider(sdktrace.WithBatcher(logging.NewSpanExporter(logger)))
		defer tp.Shutdown(context.Background())
		otel.SetTracerProvider(tp)
	}

	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector())
	m := rest.NewMetrics(reg)

	svcOpts := []service.Option{
		service.WithLogger(logger),
		service.WithRecorder(m),
		service.WithDefaultTimeout(*searchTimeout),
		service.WithMatrixWorkers(*matrixWorkers),
	}

	if *storeBackend != "none" {
		store, err := kv.Open(*storeBackend, *storeDir)
		if err != nil {
			log.Fatal(err)
		}
		cache := kv.NewRouteCache(store)
		defer cache.Close()
		// hasil lama bisa basi kalau network berubah
		if err := cache.Invalidate(); err != nil {
			log.Fatal(err)
		}
		svcOpts = append(svcOpts, service.WithCache(cache))
	}

	if *snapperKind != "none" {
		sn, err := snap.New(*snapperKind, net.Coordinates)
		if err != nil {
			log.Fatal(err)
		}
		svcOpts = append(svcOpts, service.WithSnapper(sn))
	}

	routingSvc := service.NewRoutingService(net, svcOpts...)
	recordMemProfile(memprofile, "service_init")

	r := chi.NewRouter()

	r.Use(middleware.Logger)

	r.Use(rest.PromeHttpMiddleware(m)) // prometheus http middleware
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   strings.Split(*corsOrigins, ","),
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-CSRF-Token"},
		ExposedHeaders:   []string{"Link"},
		AllowCredentials: false,
		MaxAge:           300,
	}))

	if *useRateLimit {
		r.Use(mymiddleware.Limit(*rateLimitRPS, *rateLimitBurst))
	}

	r.Mount("/debug", middleware.Profiler())

	r.Handle("/metrics", promhttp.HandlerFor(reg, promhttp.HandlerOpts{}))

	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL("http://localhost:5000/swagger/doc.json"), //The url pointing to API definition
	))

	rest.RoutingRouter(r, routingSvc)

	var handler http.Handler = r
	if *tracing {
		handler = otelhttp.NewHandler(r, "supplyroute")
	}

	fmt.Printf("\n resource constrained routing ready!!")
	fmt.Printf("\nserver started at %s\n", *listenAddr)

	log.Fatal(http.ListenAndServe(*listenAddr, handler))
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
