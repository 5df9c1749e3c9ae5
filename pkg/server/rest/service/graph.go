package service

import (
	"context"
	"errors"

	"github.com/lintang-b-s/supplyroute/pkg/datastructure"
	"github.com/lintang-b-s/supplyroute/pkg/graph"
	"github.com/lintang-b-s/supplyroute/pkg/server"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

// Hops vertex yang bisa dicapai maksimal maxHops edge dari id. exact true = tepat maxHops edge.
func (s *RoutingService) Hops(ctx context.Context, id datastructure.NodeID, hops int, exact bool) ([]datastructure.NodeID, error) {
	_, span := s.tracer.Start(ctx, "RoutingService.Hops", trace.WithAttributes(
		attribute.String("vertex", string(id)),
		attribute.Int("hops", hops),
		attribute.Bool("exact", exact),
	))
	defer span.End()

	if hops < 0 {
		return nil, endSpan(span, server.NewErrorf(server.ErrBadParamInput, "hops must not be negative"))
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	var (
		ids []datastructure.NodeID
		err error
	)
	if exact {
		ids, err = s.net.Graph.NodesAtExactHops(id, hops)
	} else {
		ids, err = s.net.Graph.NodesWithinHops(id, hops)
	}
	if err != nil {
		return nil, endSpan(span, mapRoutingError(err))
	}
	return ids, nil
}

// DisableVertex vertex dianggap tidak ada oleh search. cache route dikosongkan.
func (s *RoutingService) DisableVertex(ctx context.Context, id datastructure.NodeID) error {
	return s.setDisabled(ctx, id, true)
}

func (s *RoutingService) EnableVertex(ctx context.Context, id datastructure.NodeID) error {
	return s.setDisabled(ctx, id, false)
}

func (s *RoutingService) setDisabled(ctx context.Context, id datastructure.NodeID, disabled bool) error {
	_, span := s.tracer.Start(ctx, "RoutingService.SetDisabled", trace.WithAttributes(
		attribute.String("vertex", string(id)),
		attribute.Bool("disabled", disabled),
	))
	defer span.End()

	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.net.Graph.HasVertex(id) {
		return endSpan(span, server.WrapErrorf(graph.ErrVertexNotFound, server.ErrNotFound, "vertex %q not found", id))
	}
	if s.net.Graph.IsVertexDisabled(id) == disabled {
		return nil
	}

	if disabled {
		s.net.Graph.DisableVertex(id)
	} else {
		s.net.Graph.EnableVertex(id)
	}
	s.log.Info("vertex availability changed", "vertex", id, "disabled", disabled)

	if s.cache != nil {
		if err := s.cache.Invalidate(); err != nil {
			return endSpan(span, server.WrapErrorf(err, server.ErrInternalServerError, "failed to invalidate route cache"))
		}
	}
	return nil
}

type Neighbor struct {
	ID       datastructure.NodeID
	EdgeID   string
	Weight   float64
	Consumes datastructure.Supplies
}

type VertexInfo struct {
	ID         datastructure.NodeID
	Coordinate *datastructure.Coordinate
	Disabled   bool
	Recovers   []string
	Neighbors  []Neighbor
}

func (s *RoutingService) Vertex(ctx context.Context, id datastructure.NodeID) (VertexInfo, error) {
	_, span := s.tracer.Start(ctx, "RoutingService.Vertex", trace.WithAttributes(attribute.String("vertex", string(id))))
	defer span.End()

	s.mu.RLock()
	defer s.mu.RUnlock()

	ids, edges, err := s.net.Graph.Neighbors(id)
	if errors.Is(err, graph.ErrVertexNotFound) {
		return VertexInfo{}, endSpan(span, server.WrapErrorf(err, server.ErrNotFound, "vertex %q not found", id))
	}
	if err != nil {
		return VertexInfo{}, endSpan(span, server.WrapErrorf(err, server.ErrInternalServerError, "internal server error"))
	}

	info := VertexInfo{
		ID:        id,
		Disabled:  s.net.Graph.IsVertexDisabled(id),
		Recovers:  []string{},
		Neighbors: make([]Neighbor, 0, len(ids)),
	}
	if c, ok := s.net.Coordinate(id); ok {
		info.Coordinate = &c
	}
	if idx, ok := s.net.Graph.NodeIndex(id); ok {
		if props := s.net.Graph.Vertex(idx); props != nil {
			info.Recovers = props.RecoverKeys()
		}
	}
	for i, n := range ids {
		info.Neighbors = append(info.Neighbors, Neighbor{
			ID:       n,
			EdgeID:   edges[i].ID,
			Weight:   edges[i].Weight,
			Consumes: edges[i].Consumes.Clone(),
		})
	}
	return info, nil
}
