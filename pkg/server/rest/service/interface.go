package service

import (
	"time"

	"github.com/lintang-b-s/supplyroute/pkg/datastructure"
	"github.com/lintang-b-s/supplyroute/pkg/snap"
)

type RouteCache interface {
	GetPath(key []byte) (datastructure.PathResult, bool, error)
	PutPath(key []byte, res datastructure.PathResult) error
	GetBidirectional(key []byte) (datastructure.BidirectionalResult, bool, error)
	PutBidirectional(key []byte, res datastructure.BidirectionalResult) error
	PutPaths(results map[string]datastructure.PathResult) error
	Invalidate() error
}

type Snapper interface {
	Nearest(lat, lon float64, accept snap.AcceptFunc) (snap.Candidate, error)
}

// Recorder tempat service melaporkan durasi search & cache hit (prometheus di layer rest).
type Recorder interface {
	ObserveSearch(kind string, d time.Duration)
	CacheLookup(kind string, hit bool)
}

type noopRecorder struct{}

func (noopRecorder) ObserveSearch(string, time.Duration) {}
func (noopRecorder) CacheLookup(string, bool)            {}
