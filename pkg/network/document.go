package network

// Document bentuk file network (yaml). lihat testdata/demo.yaml.
type Document struct {
	Name      string              `yaml:"name"`
	Resources map[string]Resource `yaml:"resources,omitempty"`
	Heuristic HeuristicSpec       `yaml:"heuristic,omitempty"`
	Vertices  []Vertex            `yaml:"vertices"`
	Edges     []Edge              `yaml:"edges"`
}

type Resource struct {
	Capacity float64 `yaml:"capacity"`
	// Initial supply awal default. nil = penuh (capacity).
	Initial *float64 `yaml:"initial,omitempty"`
}

const (
	HeuristicNone      = "none"
	HeuristicHaversine = "haversine"
	HeuristicEuclidean = "euclidean"
)

type HeuristicSpec struct {
	Kind        string  `yaml:"kind,omitempty"`
	CostPerUnit float64 `yaml:"costPerUnit,omitempty"`
}

type Vertex struct {
	ID       string                   `yaml:"id"`
	Lat      *float64                 `yaml:"lat,omitempty"`
	Lon      *float64                 `yaml:"lon,omitempty"`
	X        float64                  `yaml:"x,omitempty"`
	Y        float64                  `yaml:"y,omitempty"`
	Disabled bool                     `yaml:"disabled,omitempty"`
	Recover  map[string]RecoverPolicy `yaml:"recover,omitempty"`
}

func (v Vertex) HasCoordinate() bool {
	return v.Lat != nil && v.Lon != nil
}

const (
	PolicyRefill = "refill"
	PolicyFixed  = "fixed"
)

// RecoverPolicy refill: isi sampai capacity, cost = costPerUnit * jumlah yang diisi.
// fixed: selalu amount dengan cost tetap.
type RecoverPolicy struct {
	Policy      string  `yaml:"policy"`
	Amount      float64 `yaml:"amount,omitempty"`
	CostPerUnit float64 `yaml:"costPerUnit,omitempty"`
	Cost        float64 `yaml:"cost,omitempty"`
}

type Edge struct {
	From string `yaml:"from"`
	To   string `yaml:"to"`
	ID   string `yaml:"id,omitempty"`
	// Weight nil = jarak great-circle (km) antar koordinat endpoint.
	Weight      *float64           `yaml:"weight,omitempty"`
	Directed    bool               `yaml:"directed,omitempty"`
	Consumes    map[string]float64 `yaml:"consumes,omitempty"`
	ExtraWeight float64            `yaml:"extraWeight,omitempty"`
	Surcharge   *Surcharge         `yaml:"surcharge,omitempty"`
}

// Surcharge tambahan cost kalau level resource setelah consume di bawah Below.
type Surcharge struct {
	Resource  string  `yaml:"resource"`
	Below     float64 `yaml:"below"`
	Cost      float64 `yaml:"cost"`
	FinalOnly bool    `yaml:"finalOnly,omitempty"`
}

func Float(f float64) *float64 {
	return &f
}
