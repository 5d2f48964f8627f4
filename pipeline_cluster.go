// pipeline_cluster.go - Cluster culling hook

package rasterpipe

// ProcessClusters is the seam spec §9's Open Question on cluster-level
// (as opposed to per-face) culling resolves to: a pass-through hook
// called between face processing and sorting, given the chance to
// remove whole groups of already-valid faces before the sort ever sees
// them. The current policy is identity -- every valid face survives --
// because no cluster/bounding-volume hierarchy is part of this package's
// input model (spec §3: faces are flat triangle lists, not grouped).
// ValidCount has no exported setter, so a host cannot shrink the
// valid-face list itself between ProcessFaces and SortFaces.
func ProcessClusters(p *Pool) {
	_ = p
}
