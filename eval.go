package ignore

// evaluate runs the full ordered pattern set against one component slice
// under last-match-wins: every matching pattern flips the running ignored
// bit to its polarity, non-matching patterns leave it alone. decisive is
// the index of the last matching pattern, -1 when nothing matched.
//
// Two prunes keep the scan cheap without changing results: patterns whose
// minDepth exceeds the component count cannot match, and indexed literal
// patterns not listed under the final component's basename cannot match (a
// literal pattern always consumes its last segment against the last
// component).
func (m *Matcher) evaluate(comps []string, isDir bool) (ignored bool, decisive int) {
	fold := !m.opts.CaseSensitive
	track := m.opts.TrackStats
	decisive = -1

	// The index stores lowercase keys; mixed-case basenames bypass it
	// rather than allocate a folded copy on the query path.
	basename := comps[len(comps)-1]
	useIndex := fold && m.index.buckets != nil && !hasUpperASCII(basename)

	for i := range m.patterns {
		p := &m.patterns[i]
		if p.minDepth > len(comps) {
			continue
		}
		if p.isLiteral && p.indexed && useIndex {
			if !m.index.contains(basename, i) {
				continue
			}
			if track {
				m.stats.literalHits.Add(1)
			}
		} else if track && !p.isLiteral {
			m.stats.globChecks.Add(1)
		}

		if matchPattern(p, m.classes, comps, isDir, fold) {
			ignored = !p.negated
			decisive = i
		}
	}

	return ignored, decisive
}
