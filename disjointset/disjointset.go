package disjointset

// New allocates a DisjointSet over the universe 0..n-1, each element in its
// own singleton set.
//
// Steps:
//  1. Reject negative n with ErrInvalidSize (n == 0 is a valid empty universe).
//  2. Allocate parent and rank arrays of length n.
//  3. Initialize parent[i] = i and rank[i] = 0 for all i.
//
// Complexity: O(n) time, O(n) memory.
func New(n int) (*DisjointSet, error) {
	// 1. Validate the requested universe size.
	if n < 0 {
		return nil, ErrInvalidSize
	}

	// 2-3. Allocate and initialize singleton sets.
	ds := &DisjointSet{
		parent: make([]int, n),
		rank:   make([]int, n),
	}
	ds.Reset()

	return ds, nil
}

// Len returns the number of elements in the universe.
func (ds *DisjointSet) Len() int {
	return len(ds.parent)
}

// Reset re-initializes every element into its own singleton set and clears
// the connected memo, keeping the allocated storage.
// Complexity: O(n).
func (ds *DisjointSet) Reset() {
	for i := range ds.parent {
		ds.parent[i] = i
		ds.rank[i] = 0
	}
	ds.connected = false
}

// FindSet returns the root of the set containing x, applying full path
// compression: every element visited on the way up is re-pointed directly at
// the root, so future lookups are near O(1).
//
// Returns ErrIndexOutOfRange if x is outside [0, n).
// Complexity: O(α(n)) amortized.
func (ds *DisjointSet) FindSet(x int) (int, error) {
	if x < 0 || x >= len(ds.parent) {
		return 0, ErrIndexOutOfRange
	}

	return ds.findSet(x), nil
}

// findSet is the unchecked recursive find with path compression.
func (ds *DisjointSet) findSet(x int) int {
	if ds.parent[x] != x {
		ds.parent[x] = ds.findSet(ds.parent[x])
	}

	return ds.parent[x]
}

// LinkSet unions two root elements by rank and returns the new root: the
// strictly higher-ranked root wins; on equal rank yroot becomes the root and
// its rank is incremented.
//
// Caller contract: xroot and yroot must both be roots (parent[r] == r) and
// distinct; the result is undefined otherwise.
// Complexity: O(1).
func (ds *DisjointSet) LinkSet(xroot, yroot int) int {
	// Union by rank: attach the shallower tree under the deeper root.
	if ds.rank[xroot] > ds.rank[yroot] {
		ds.parent[yroot] = xroot

		return xroot
	}

	ds.parent[xroot] = yroot
	// Equal ranks: the surviving root's bound grows by one.
	if ds.rank[xroot] == ds.rank[yroot] {
		ds.rank[yroot]++
	}

	return yroot
}

// UnionSet merges the sets containing x and y.
//
// It reports true when x and y were ALREADY in the same set, in which case no
// structural change is made — callers building a graph use this as the
// redundant-link (cycle) signal. It reports false after linking two
// previously disjoint sets.
//
// Returns ErrIndexOutOfRange if either element is outside [0, n).
// Complexity: O(α(n)) amortized.
func (ds *DisjointSet) UnionSet(x, y int) (bool, error) {
	xroot, err := ds.FindSet(x)
	if err != nil {
		return false, err
	}
	yroot, err := ds.FindSet(y)
	if err != nil {
		return false, err
	}

	// Already joined: another path between x and y exists.
	if xroot == yroot {
		return true, nil
	}

	ds.LinkSet(xroot, yroot)

	return false, nil
}

// IsSameSet reports whether x and y currently belong to the same set.
// Returns ErrIndexOutOfRange if either element is outside [0, n).
// Complexity: O(α(n)) amortized.
func (ds *DisjointSet) IsSameSet(x, y int) (bool, error) {
	xroot, err := ds.FindSet(x)
	if err != nil {
		return false, err
	}
	yroot, err := ds.FindSet(y)
	if err != nil {
		return false, err
	}

	return xroot == yroot, nil
}

// UniqueLabeling assigns every element a label in [0, k), where k is the
// number of distinct sets: elements of the same set share a label, and labels
// are issued in order of first-encountered root (element 0's set is labeled
// before any set first seen at a higher element index). Returns k.
//
// out must have length n; ErrDimensionMismatch otherwise.
// Complexity: O(n·α(n)).
func (ds *DisjointSet) UniqueLabeling(out []int) (int, error) {
	n := len(ds.parent)
	if len(out) != n {
		return 0, ErrDimensionMismatch
	}

	// labelOf[r] is the label issued to the set rooted at r, or -1.
	labelOf := make([]int, n)
	for i := range labelOf {
		labelOf[i] = -1
	}

	next := 0
	for i := 0; i < n; i++ {
		r := ds.findSet(i)
		if labelOf[r] < 0 {
			labelOf[r] = next
			next++
		}
		out[i] = labelOf[r]
	}

	return next, nil
}

// NumSets returns the number of distinct sets without caller-provided
// storage. An empty universe has zero sets.
// Complexity: O(n·α(n)).
func (ds *DisjointSet) NumSets() int {
	// UniqueLabeling cannot fail with a correctly sized scratch slice.
	k, _ := ds.UniqueLabeling(make([]int, len(ds.parent)))

	return k
}

// Connected returns the caller-set connectivity memo. The structure never
// computes this itself: the owner decides, after performing all unions it
// considers meaningful, whether the underlying graph counts as connected.
func (ds *DisjointSet) Connected() bool {
	return ds.connected
}

// SetConnected records the owner's connectivity verdict.
func (ds *DisjointSet) SetConnected(connected bool) {
	ds.connected = connected
}
