package simplify_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/katalvlaran/asmgraph/core"
	"github.com/katalvlaran/asmgraph/simplify"
)

// MergeSuite groups tests for linear-path merging.
type MergeSuite struct {
	suite.Suite
	g *core.Graph
}

func (s *MergeSuite) SetupTest() {
	s.g = core.NewGraph()
}

// seg adds a segment or fails the test.
func (s *MergeSuite) seg(name, sequence string) {
	_, err := s.g.AddSegment(name, sequence)
	require.NoError(s.T(), err)
}

// link adds an oriented link with overlap 1 or fails the test.
func (s *MergeSuite) link(from string, fromOrient core.Orient, to string, toOrient core.Orient) {
	require.NoError(s.T(), s.g.AddDovetail(core.NewLink(from, fromOrient, to, toOrient, 1)))
}

// sequenceOf returns a live segment's sequence.
func (s *MergeSuite) sequenceOf(name string) string {
	sg, err := s.g.Segment(name)
	require.NoError(s.T(), err)

	return sg.Sequence
}

// TestNilGraph rejects a nil graph pointer.
func (s *MergeSuite) TestNilGraph() {
	_, err := simplify.MergeLinearPaths(nil)
	require.True(s.T(), errors.Is(err, simplify.ErrNilGraph))
}

// TestOptionViolation rejects a nil name function.
func (s *MergeSuite) TestOptionViolation() {
	_, err := simplify.MergeLinearPaths(s.g, simplify.WithNameFn(nil))
	require.True(s.T(), errors.Is(err, simplify.ErrOptionViolation))
}

// TestIsolatedUntouched: a segment without dovetails is left alone.
func (s *MergeSuite) TestIsolatedUntouched() {
	s.seg("lonely", "ACGT")

	res, err := simplify.MergeLinearPaths(s.g)
	require.NoError(s.T(), err)
	require.Equal(s.T(), 0, res.MergedPaths)
	require.Equal(s.T(), 0, res.JunctionsRemoved)
	require.True(s.T(), s.g.HasSegment("lonely"))
	require.Equal(s.T(), 1, s.g.SegmentCount())
}

// TestDeadEndChain: a chain bounded by dead ends on both sides folds
// into a single segment with no junction bookkeeping; re-running on the
// result is a no-op.
func (s *MergeSuite) TestDeadEndChain() {
	s.seg("A", "ACGT")
	s.seg("B", "TAAA")
	s.seg("C", "ACC")
	s.link("A", core.Plus, "B", core.Plus)
	s.link("B", core.Plus, "C", core.Plus)

	res, err := simplify.MergeLinearPaths(s.g)
	require.NoError(s.T(), err)
	require.Equal(s.T(), 1, res.MergedPaths)
	require.Equal(s.T(), []string{"A_B_C"}, res.Merged)
	require.Equal(s.T(), 0, res.JunctionsRemoved)
	require.Equal(s.T(), 0, res.EdgesCreated)

	require.Equal(s.T(), 1, s.g.SegmentCount())
	require.Equal(s.T(), 0, s.g.DovetailCount())
	// length = sum of constituents minus overlaps: 4+4+3 - 2
	require.Equal(s.T(), "ACGTAAACC", s.sequenceOf("A_B_C"))

	// an already-simplified graph stays untouched
	again, err := simplify.MergeLinearPaths(s.g)
	require.NoError(s.T(), err)
	require.Equal(s.T(), 0, again.MergedPaths)
	require.Equal(s.T(), 1, s.g.SegmentCount())
	require.Equal(s.T(), 0, s.g.DovetailCount())
}

// TestBubbleBetweenJunctions: two runs between the junctions J1 and J2.
// Both junctions disappear and their connectivity is rebuilt as direct
// edges between the merged neighbors.
func (s *MergeSuite) TestBubbleBetweenJunctions() {
	s.seg("W", "AAAA")
	s.seg("J1", "CC")
	s.seg("A", "GGG")
	s.seg("B", "TTT")
	s.seg("C", "AAA")
	s.seg("D", "GGGG")
	s.seg("J2", "TT")
	s.link("W", core.Plus, "J1", core.Plus)
	s.link("J1", core.Plus, "A", core.Plus)
	s.link("A", core.Plus, "B", core.Plus)
	s.link("B", core.Plus, "C", core.Plus)
	s.link("C", core.Plus, "J2", core.Plus)
	s.link("J1", core.Plus, "D", core.Plus)
	s.link("D", core.Plus, "J2", core.Plus)

	res, err := simplify.MergeLinearPaths(s.g)
	require.NoError(s.T(), err)
	require.Equal(s.T(), 3, res.MergedPaths)
	require.Equal(s.T(), []string{"W_J1", "J1_A_B_C_J2", "J1_D_J2"}, res.Merged)
	require.Equal(s.T(), 2, res.JunctionsRemoved)
	require.Equal(s.T(), 2, res.EdgesCreated)

	// the junctions and every original run member are gone
	for _, gone := range []string{"W", "J1", "A", "B", "C", "D", "J2"} {
		require.False(s.T(), s.g.HasSegment(gone), "%s should be gone", gone)
	}
	require.Equal(s.T(), 3, s.g.SegmentCount())

	// merged sequences carry copies of the bounding junctions
	require.Equal(s.T(), "AAAAC", s.sequenceOf("W_J1"))
	require.Equal(s.T(), "CCGGTTAAT", s.sequenceOf("J1_A_B_C_J2"))
	require.Equal(s.T(), "CCGGGT", s.sequenceOf("J1_D_J2"))

	// connectivity bypasses J1: W_J1 joins both right-hand runs directly
	out := s.g.Dovetails("W_J1", core.Right)
	require.Len(s.T(), out, 2)
	ends := make([]string, 0, 2)
	for _, d := range out {
		require.Equal(s.T(), 2, d.Overlap, "overlap equals the junction length")
		require.False(s.T(), d.Temporary())
		o, ok := d.OtherEnd(core.EndOf("W_J1", core.Right))
		require.True(s.T(), ok)
		ends = append(ends, o.String())
	}
	require.Equal(s.T(), []string{"J1_A_B_C_J2L", "J1_D_J2L"}, ends)
	require.Equal(s.T(), 2, s.g.DovetailCount())
}

// TestCrossProduct: a junction with 2 left and 3 right provenance
// entries yields exactly 6 permanent edges and is itself removed.
func (s *MergeSuite) TestCrossProduct() {
	s.seg("J", "CC")
	for _, left := range []string{"X1", "X2"} {
		s.seg(left, "AAA")
		s.link(left, core.Plus, "J", core.Plus)
	}
	for _, right := range []string{"Y1", "Y2", "Y3"} {
		s.seg(right, "TTT")
		s.link("J", core.Plus, right, core.Plus)
	}

	res, err := simplify.MergeLinearPaths(s.g)
	require.NoError(s.T(), err)
	require.Equal(s.T(), 5, res.MergedPaths)
	require.Equal(s.T(), 1, res.JunctionsRemoved)
	require.Equal(s.T(), 6, res.EdgesCreated)
	require.False(s.T(), s.g.HasSegment("J"))
	require.Equal(s.T(), 5, s.g.SegmentCount())
	require.Equal(s.T(), 6, s.g.DovetailCount())

	// every left-hand merge joins every right-hand merge
	for _, left := range []string{"X1_J", "X2_J"} {
		require.Len(s.T(), s.g.Dovetails(left, core.Right), 3)
	}
	for _, right := range []string{"J_Y1", "J_Y2", "J_Y3"} {
		require.Len(s.T(), s.g.Dovetails(right, core.Left), 2)
	}
}

// TestReversedAttachment: chains entering a junction reverse-complement
// the junction's copy and record Minus provenance, producing no cross
// edges for a one-sided junction.
func (s *MergeSuite) TestReversedAttachment() {
	s.seg("J", "AACG")
	s.seg("X", "AAA")
	s.seg("Y", "CCC")
	s.link("X", core.Plus, "J", core.Minus)
	s.link("Y", core.Plus, "J", core.Minus)

	res, err := simplify.MergeLinearPaths(s.g)
	require.NoError(s.T(), err)
	require.Equal(s.T(), 2, res.MergedPaths)
	require.Equal(s.T(), 1, res.JunctionsRemoved)
	require.Equal(s.T(), 0, res.EdgesCreated)

	// reverse complement of AACG is CGTT; one base trimmed by the overlap
	require.Equal(s.T(), "AAAGTT", s.sequenceOf("X_J"))
	require.Equal(s.T(), "CCCGTT", s.sequenceOf("Y_J"))
	require.Equal(s.T(), 0, s.g.DovetailCount())
}

// TestJunctionPair: a dovetail joining two junctions directly becomes a
// merged pair segment wired through the resolution pass.
func (s *MergeSuite) TestJunctionPair() {
	s.seg("W", "AAAA")
	s.seg("J1", "CC")
	s.seg("J2", "GG")
	s.seg("S1", "TTT")
	s.seg("S2", "AAA")
	s.link("W", core.Plus, "J1", core.Plus)
	s.link("J1", core.Plus, "S1", core.Plus)
	s.link("J1", core.Plus, "J2", core.Plus)
	s.link("S2", core.Plus, "J2", core.Plus)

	res, err := simplify.MergeLinearPaths(s.g)
	require.NoError(s.T(), err)
	// three stub chains plus the junction-junction pair
	require.Equal(s.T(), 4, res.MergedPaths)
	require.Contains(s.T(), res.Merged, "J1_J2")
	require.Equal(s.T(), 2, res.JunctionsRemoved)
	// J1: {W_J1} x {J1_S1, J1_J2} = 2; J2 has no right-hand entries
	require.Equal(s.T(), 2, res.EdgesCreated)
	require.False(s.T(), s.g.HasSegment("J1"))
	require.False(s.T(), s.g.HasSegment("J2"))
	require.Equal(s.T(), "CCG", s.sequenceOf("J1_J2"))
	require.Len(s.T(), s.g.Dovetails("W_J1", core.Right), 2)
}

// TestNameCollision: a constant naming function still produces unique
// merged names.
func (s *MergeSuite) TestNameCollision() {
	s.seg("A", "ACGT")
	s.seg("B", "TAAA")
	s.seg("P", "GGGG")
	s.seg("Q", "CCCC")
	s.link("A", core.Plus, "B", core.Plus)
	s.link("P", core.Plus, "Q", core.Minus)

	res, err := simplify.MergeLinearPaths(s.g, simplify.WithNameFn(
		func([]string) string { return "M" }))
	require.NoError(s.T(), err)
	require.Equal(s.T(), 2, res.MergedPaths)
	require.Equal(s.T(), "M", res.Merged[0])
	require.True(s.T(), strings.HasPrefix(res.Merged[1], "M_"))
	require.NotEqual(s.T(), res.Merged[0], res.Merged[1])
}

// TestOnMergeHook observes every completed merge.
func (s *MergeSuite) TestOnMergeHook() {
	s.seg("A", "ACGT")
	s.seg("B", "TAAA")
	s.link("A", core.Plus, "B", core.Plus)

	var seen []string
	var pathLen int
	_, err := simplify.MergeLinearPaths(s.g, simplify.WithOnMerge(
		func(merged string, path []core.SegmentEnd) {
			seen = append(seen, merged)
			pathLen = len(path)
		}))
	require.NoError(s.T(), err)
	require.Equal(s.T(), []string{"A_B"}, seen)
	require.Equal(s.T(), 2, pathLen)
}

// TestSelfLoopSkipped: a segment dovetailing onto itself is circular
// and stays untouched.
func (s *MergeSuite) TestSelfLoopSkipped() {
	s.seg("O", "ACGT")
	s.link("O", core.Plus, "O", core.Plus)

	res, err := simplify.MergeLinearPaths(s.g)
	require.NoError(s.T(), err)
	require.Equal(s.T(), 0, res.MergedPaths)
	require.True(s.T(), s.g.HasSegment("O"))
	require.Equal(s.T(), 1, s.g.DovetailCount())
}

// TestCycleSkipped: a pure cycle with no junctions stays untouched.
func (s *MergeSuite) TestCycleSkipped() {
	s.seg("A", "ACGT")
	s.seg("B", "TAAA")
	s.seg("C", "ACC")
	s.link("A", core.Plus, "B", core.Plus)
	s.link("B", core.Plus, "C", core.Plus)
	s.link("C", core.Plus, "A", core.Plus)

	res, err := simplify.MergeLinearPaths(s.g)
	require.NoError(s.T(), err)
	require.Equal(s.T(), 0, res.MergedPaths)
	require.Equal(s.T(), 3, s.g.SegmentCount())
	require.Equal(s.T(), 3, s.g.DovetailCount())
}

// TestGFA2Coordinates: under the second format variant, permanent cross
// edges carry coordinates derived from the merged lengths.
func (s *MergeSuite) TestGFA2Coordinates() {
	s.g = core.NewGraph(core.WithVersion(core.GFA2))
	s.seg("W", "AAAA")
	s.seg("J", "CC")
	s.seg("Y1", "TTT")
	s.seg("Y2", "GGG")
	s.link("W", core.Plus, "J", core.Plus)
	s.link("J", core.Plus, "Y1", core.Plus)
	s.link("J", core.Plus, "Y2", core.Plus)

	res, err := simplify.MergeLinearPaths(s.g)
	require.NoError(s.T(), err)
	require.Equal(s.T(), 1, res.JunctionsRemoved)
	require.Equal(s.T(), 2, res.EdgesCreated)

	// W_J = AAAAC (len 5), J_Y1 = CCTT (len 4), junction length 2
	cross := s.g.Dovetails("W_J", core.Right)
	require.Len(s.T(), cross, 2)
	d := cross[0]
	require.Equal(s.T(), 2, d.Overlap)
	require.NotNil(s.T(), d.Coords)
	require.Equal(s.T(), 3, d.Coords.Beg1)
	require.Equal(s.T(), 5, d.Coords.End1)
	require.True(s.T(), d.Coords.Final1)
	require.Equal(s.T(), 2, d.Coords.Beg2)
	require.Equal(s.T(), 4, d.Coords.End2)
	require.True(s.T(), d.Coords.Final2)
}

func TestMergeSuite(t *testing.T) {
	suite.Run(t, new(MergeSuite))
}
