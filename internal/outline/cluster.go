package outline

import "sort"

// StyleCluster groups stylistically close signatures. Exactly one cluster
// owns each retained run (partition, no overlap).
type StyleCluster struct {
	ID         int
	CenterSize float64 // character-volume-weighted mean normalized size
	Bold       bool
	Signatures []int
	Count      int
	CharLen    int
}

// ClusterStyles groups the profile's signatures into a small, variable number
// of clusters with a threshold merge over sorted normalized sizes. No cluster
// count is predeclared: a fixed k would bias against documents with only two
// heading levels or more than k of them. The second return value maps each
// signature id to its owning cluster id.
//
// Signatures are partitioned by boldness and walked in descending normalized
// size; a signature joins the current cluster while its distance to the
// running centroid stays within SizeEpsilon. Walking top-down means a
// signature equidistant between two bands lands in the larger-size cluster,
// erring toward prominence and reducing heading false negatives.
func ClusterStyles(p *Profile, cfg Config) ([]StyleCluster, []int) {
	var bold, regular []int
	for id := range p.Signatures {
		if p.Signatures[id].Bold {
			bold = append(bold, id)
		} else {
			regular = append(regular, id)
		}
	}

	clusters := mergeBand(p, regular, false, cfg)
	clusters = append(clusters, mergeBand(p, bold, true, cfg)...)

	// Stable cluster ids: by descending centroid, bold before regular on
	// exact ties. Determinism here is what makes the whole pipeline
	// reproducible run-to-run.
	sort.SliceStable(clusters, func(i, j int) bool {
		if clusters[i].CenterSize != clusters[j].CenterSize {
			return clusters[i].CenterSize > clusters[j].CenterSize
		}
		return clusters[i].Bold && !clusters[j].Bold
	})

	sigToCluster := make([]int, len(p.Signatures))
	for i := range clusters {
		clusters[i].ID = i
		for _, sig := range clusters[i].Signatures {
			sigToCluster[sig] = i
		}
	}
	return clusters, sigToCluster
}

// mergeBand threshold-merges one boldness band of signature ids.
func mergeBand(p *Profile, ids []int, bold bool, cfg Config) []StyleCluster {
	sort.Slice(ids, func(i, j int) bool {
		ni, nj := p.Normalized(ids[i]), p.Normalized(ids[j])
		if ni != nj {
			return ni > nj
		}
		return p.Signatures[ids[i]].Family < p.Signatures[ids[j]].Family
	})

	var clusters []StyleCluster
	for _, id := range ids {
		norm := p.Normalized(id)
		st := p.Stats[id]

		if n := len(clusters); n > 0 {
			cur := &clusters[n-1]
			if cur.CenterSize-norm <= cfg.SizeEpsilon {
				weight := float64(st.CharLen)
				total := float64(cur.CharLen) + weight
				if total > 0 {
					cur.CenterSize = (cur.CenterSize*float64(cur.CharLen) + norm*weight) / total
				}
				cur.Signatures = append(cur.Signatures, id)
				cur.Count += st.Count
				cur.CharLen += st.CharLen
				continue
			}
		}

		clusters = append(clusters, StyleCluster{
			CenterSize: norm,
			Bold:       bold,
			Signatures: []int{id},
			Count:      st.Count,
			CharLen:    st.CharLen,
		})
	}
	return clusters
}
