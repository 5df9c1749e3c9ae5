package kv

import (
	"encoding/hex"
	"errors"
	"strconv"
	"time"

	"github.com/cespare/xxhash/v2"
	"github.com/lintang-b-s/supplyroute/pkg/datastructure"
	"github.com/lintang-b-s/supplyroute/pkg/util"
)

var routePrefix = []byte("route:")

const maxBatchEntries = 512

// RouteCache cache hasil query routing (bukan graph). harus di-Invalidate setiap graph berubah.
type RouteCache struct {
	store Store
}

func NewRouteCache(store Store) *RouteCache {
	return &RouteCache{store: store}
}

// RouteKey key cache dari jenis query, waypoint, supplies, capacity & timeout.
// resource diurutkan supaya key deterministik.
func RouteKey(kind string, waypoints []datastructure.NodeID, supplies, capacity datastructure.Supplies,
	timeout time.Duration) []byte {
	d := xxhash.New()
	d.WriteString(kind)
	for _, w := range waypoints {
		// length-prefixed, id boleh mengandung '|'
		d.WriteString("|" + strconv.Itoa(len(w)) + ":")
		d.WriteString(string(w))
	}
	writeSupplies(d, "s", supplies)
	writeSupplies(d, "c", capacity)
	d.WriteString("|t" + strconv.FormatInt(int64(timeout), 10))

	sum := d.Sum(nil)
	key := make([]byte, 0, len(routePrefix)+hex.EncodedLen(len(sum)))
	key = append(key, routePrefix...)
	return hex.AppendEncode(key, sum)
}

func writeSupplies(d *xxhash.Digest, tag string, s datastructure.Supplies) {
	for _, k := range s.Keys() {
		d.WriteString("|" + tag + k + "=" + strconv.FormatFloat(s[k], 'g', -1, 64))
	}
}

func (c *RouteCache) GetPath(key []byte) (datastructure.PathResult, bool, error) {
	return get[datastructure.PathResult](c.store, key)
}

func (c *RouteCache) PutPath(key []byte, res datastructure.PathResult) error {
	return put(c.store, key, res)
}

func (c *RouteCache) GetBidirectional(key []byte) (datastructure.BidirectionalResult, bool, error) {
	return get[datastructure.BidirectionalResult](c.store, key)
}

func (c *RouteCache) PutBidirectional(key []byte, res datastructure.BidirectionalResult) error {
	return put(c.store, key, res)
}

// PutPaths simpan banyak hasil sekaligus, maksimal maxBatchEntries per batch.
func (c *RouteCache) PutPaths(results map[string]datastructure.PathResult) error {
	entries := make([]Entry, 0, len(results))
	for key, res := range results {
		val, err := encode(res)
		if err != nil {
			return err
		}
		entries = append(entries, Entry{Key: []byte(key), Val: val})
	}
	for _, chunk := range util.Chunk(entries, maxBatchEntries) {
		if err := c.store.SetBatch(chunk); err != nil {
			return err
		}
	}
	return nil
}

// Invalidate hapus semua route yang tersimpan.
func (c *RouteCache) Invalidate() error {
	return c.store.DeletePrefix(routePrefix)
}

func (c *RouteCache) Close() error {
	return c.store.Close()
}

func get[T any](store Store, key []byte) (T, bool, error) {
	var zero T
	val, err := store.Get(key)
	if errors.Is(err, ErrKeyNotFound) {
		return zero, false, nil
	}
	if err != nil {
		return zero, false, err
	}
	v, err := decode[T](val)
	if err != nil {
		return zero, false, err
	}
	return v, true, nil
}

func put[T any](store Store, key []byte, v T) error {
	val, err := encode(v)
	if err != nil {
		return err
	}
	return store.Set(key, val)
}
