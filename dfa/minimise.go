package dfa

import "sort"

// Minimise produces the language-equivalent DFA with the fewest states,
// using Hopcroft's partition-refinement algorithm. The start state is
// preserved: state 0 in the result always corresponds to state 0 of d.
//
// The block-splitting structure follows aretext's syntax/parser/automata.go
// groupEquivalentStates / splitGroupsIfNecessary, but adds a worklist with
// smaller-half enqueuing for O(n log n) behaviour, which aretext's
// fixed-point rescan does not do.
func Minimise(d *DFA) *DFA {
	alphabet := usedAlphabet(d)

	var accepting, nonAccepting []int
	for s := 0; s < d.NumStates; s++ {
		if d.IsAccepting(s) {
			accepting = append(accepting, s)
		} else {
			nonAccepting = append(nonAccepting, s)
		}
	}

	blocks := map[int][]int{}
	blockOf := make([]int, d.NumStates)
	nextID := 0
	inWorklist := map[int]bool{}
	var worklist []int

	addBlock := func(members []int) int {
		id := nextID
		nextID++
		blocks[id] = members
		for _, s := range members {
			blockOf[s] = id
		}
		return id
	}
	enqueue := func(id int) {
		worklist = append(worklist, id)
		inWorklist[id] = true
	}

	if len(accepting) > 0 {
		enqueue(addBlock(accepting))
	}
	if len(nonAccepting) > 0 {
		enqueue(addBlock(nonAccepting))
	}

	preimage := buildPreimage(d, alphabet)

	for len(worklist) > 0 {
		splitterID := worklist[0]
		worklist = worklist[1:]
		inWorklist[splitterID] = false
		splitter := blocks[splitterID]

		for _, c := range alphabet {
			x := preimage.of(c, splitter)
			if len(x) == 0 {
				continue
			}

			// Snapshot current block ids: splitting below adds new ids to
			// `blocks`, which must not be visited again within this pass.
			existing := make([]int, 0, len(blocks))
			for id := range blocks {
				existing = append(existing, id)
			}

			for _, yID := range existing {
				members, ok := blocks[yID]
				if !ok {
					continue // already replaced earlier in this same c-pass
				}

				var inSet, outSet []int
				for _, s := range members {
					if x[s] {
						inSet = append(inSet, s)
					} else {
						outSet = append(outSet, s)
					}
				}
				if len(inSet) == 0 || len(outSet) == 0 {
					continue
				}

				delete(blocks, yID)
				id1 := addBlock(inSet)
				id2 := addBlock(outSet)

				if inWorklist[yID] {
					delete(inWorklist, yID)
					enqueue(id1)
					enqueue(id2)
				} else if len(inSet) <= len(outSet) {
					enqueue(id1)
				} else {
					enqueue(id2)
				}
			}
		}
	}

	return rebuildFromPartition(d, blocks, blockOf)
}

// usedAlphabet returns every character that labels at least one
// transition in d, since probing all 256 byte values per state would
// waste work on patterns over a small character set.
func usedAlphabet(d *DFA) []byte {
	var seen [alphabetSize]bool
	for s := 0; s < d.NumStates; s++ {
		for c := 0; c < alphabetSize; c++ {
			if d.trans[s*alphabetSize+c] != noTransition {
				seen[c] = true
			}
		}
	}
	var out []byte
	for c, present := range seen {
		if present {
			out = append(out, byte(c))
		}
	}
	return out
}

// preimageIndex maps a character to the states that have a defined
// transition on it, keyed by the target state.
type preimageIndex struct {
	byCharTarget map[byte]map[int][]int
}

func buildPreimage(d *DFA, alphabet []byte) *preimageIndex {
	idx := &preimageIndex{byCharTarget: make(map[byte]map[int][]int, len(alphabet))}
	for _, c := range alphabet {
		idx.byCharTarget[c] = make(map[int][]int)
	}
	for s := 0; s < d.NumStates; s++ {
		for _, c := range alphabet {
			if next, ok := d.Step(s, c); ok {
				idx.byCharTarget[c][next] = append(idx.byCharTarget[c][next], s)
			}
		}
	}
	return idx
}

// of returns the set (as a membership map) of states with a c-transition
// into any state in target.
func (idx *preimageIndex) of(c byte, target []int) map[int]bool {
	byTarget := idx.byCharTarget[c]
	out := map[int]bool{}
	for _, t := range target {
		for _, s := range byTarget[t] {
			out[s] = true
		}
	}
	return out
}

func rebuildFromPartition(d *DFA, blocks map[int][]int, blockOf []int) *DFA {
	type block struct {
		oldID int
		min   int
	}
	order := make([]block, 0, len(blocks))
	for id, members := range blocks {
		m := members[0]
		for _, s := range members[1:] {
			if s < m {
				m = s
			}
		}
		order = append(order, block{oldID: id, min: m})
	}
	sort.Slice(order, func(i, j int) bool { return order[i].min < order[j].min })

	startBlock := blockOf[d.Start]
	finalID := make(map[int]int, len(order))
	finalID[startBlock] = 0
	next := 1
	for _, b := range order {
		if b.oldID == startBlock {
			continue
		}
		finalID[b.oldID] = next
		next++
	}

	out := newDFA(len(order))
	out.Start = 0
	for oldID, members := range blocks {
		newState := finalID[oldID]
		rep := members[0]
		if d.IsAccepting(rep) {
			out.setAccepting(newState, true)
		}
		for c := 0; c < alphabetSize; c++ {
			if nextState, ok := d.Step(rep, byte(c)); ok {
				out.setTransition(newState, byte(c), finalID[blockOf[nextState]])
			}
		}
	}
	return out
}
