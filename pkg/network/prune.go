package network

// KeepLargestComponent buang vertex di luar strongly connected component terbesar, beserta edge-nya.
// return jumlah vertex yang dibuang.
func KeepLargestComponent(doc *Document) (int, error) {
	net, err := Build(doc)
	if err != nil {
		return 0, err
	}
	components := net.Graph.StronglyConnectedComponents()
	if len(components) <= 1 {
		return 0, nil
	}

	keep := make(map[string]struct{}, len(components[0]))
	for _, id := range components[0] {
		keep[string(id)] = struct{}{}
	}

	vertices := make([]Vertex, 0, len(keep))
	for _, v := range doc.Vertices {
		if _, ok := keep[v.ID]; ok {
			vertices = append(vertices, v)
		}
	}
	removed := len(doc.Vertices) - len(vertices)

	edges := make([]Edge, 0, len(doc.Edges))
	for _, e := range doc.Edges {
		_, okFrom := keep[e.From]
		_, okTo := keep[e.To]
		if okFrom && okTo {
			edges = append(edges, e)
		}
	}

	doc.Vertices = vertices
	doc.Edges = edges
	return removed, nil
}
