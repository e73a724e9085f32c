// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl_test

import (
	"bytes"
	"fmt"
	"math"
	"math/rand"
	"sort"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bitmark-inc/avlbst/avl"
	"github.com/bitmark-inc/avlbst/fault"
)

type stringItem struct {
	s string
}

func (s stringItem) String() string {
	return s.s
}

func (s stringItem) Compare(x interface{}) int {
	return strings.Compare(s.s, x.(stringItem).s)
}

type intItem int

func (i intItem) Compare(x interface{}) int {
	j := x.(intItem)
	switch {
	case i < j:
		return -1
	case i > j:
		return +1
	default:
		return 0
	}
}

// check the complete tree and the AVL height bound
func mustBeValid(t *testing.T, tree *avl.Tree, context string) {
	t.Helper()
	if err := tree.Check(); nil != err {
		buffer := &bytes.Buffer{}
		depth := tree.Print(buffer, true)
		t.Logf("depth: %d\n%s", depth, buffer.String())
		t.Fatalf("%s: inconsistent tree: %s", context, err)
	}
	n := tree.Count()
	limit := 1.44 * math.Log2(float64(n+2))
	if h := tree.Height(); float64(h) > limit {
		t.Fatalf("%s: height: %d exceeds bound: %.2f for %d nodes", context, h, limit, n)
	}
}

func TestListShort(t *testing.T) {
	addList := []stringItem{
		{"4201"}, {"1254"}, {"8608"}, {"1639"}, {"8950"},
		{"6740"},
	}
	doList(t, addList)
	doTraverse(t, addList)
}

// to make sure that lots of duplicates do not increment the node
// count incorrectly
func TestListDuplicates(t *testing.T) {
	addList := []stringItem{
		{"1720"}, {"0506"}, {"8382"}, {"6774"}, {"1247"},
		{"1250"}, {"1264"}, {"1258"}, {"1255"}, {"2247"},
		{"1720"}, {"0506"}, {"8382"}, {"6774"}, {"1042"},
		{"1042"}, {"1042"}, {"1042"}, {"1042"}, {"1042"},
		{"1042"}, {"1042"}, {"1042"}, {"1042"}, {"1042"},
	}
	doList(t, addList)
	doTraverse(t, addList)
}

func TestListLong(t *testing.T) {
	r := rand.New(rand.NewSource(1234))
	addList := make([]stringItem, 0, 250)
	for i := 0; i < cap(addList); i += 1 {
		addList = append(addList, stringItem{fmt.Sprintf("%04d", r.Intn(10000))})
	}
	doList(t, addList)
	doTraverse(t, addList)
}

// insert everything, then for each prefix length delete the prefix,
// check, and delete the remainder
func doList(t *testing.T, addList []stringItem) {

	for i := 0; i < len(addList)+1; i += 1 {

		alreadyDeleted := make(map[stringItem]struct{})

		tree := avl.New()
		for _, key := range addList {
			tree.Insert(key, "data:"+key.String())
		}
		mustBeValid(t, tree, "add")

	delete_items:
		for _, key := range addList[:i] {
			if _, ok := alreadyDeleted[key]; ok {
				continue delete_items
			}
			alreadyDeleted[key] = struct{}{}
			dv, ok := tree.Remove(key)
			ev := "data:" + key.String()
			if !ok || dv != ev {
				t.Fatalf("remove returned: %q, %v  expected: %q", dv, ok, ev)
			}
			mustBeValid(t, tree, "remove")
		}

	delete_remainder:
		for _, key := range addList[i:] {
			if _, ok := alreadyDeleted[key]; ok {
				continue delete_remainder
			}
			alreadyDeleted[key] = struct{}{}
			dv, ok := tree.Remove(key)
			ev := "data:" + key.String()
			if !ok || dv != ev {
				t.Fatalf("remove returned: %q, %v  expected: %q", dv, ok, ev)
			}
		}
		if !tree.IsEmpty() || 0 != tree.Count() {
			buffer := &bytes.Buffer{}
			tree.Print(buffer, true)
			t.Fatalf("remaining nodes: %d\n%s", tree.Count(), buffer.String())
		}
	}
}

// traverse the tree forwards and backwards to check navigation
func doTraverse(t *testing.T, addList []stringItem) {

	unique := make(map[string]struct{})
	tree := avl.New()
	for _, key := range addList {
		unique[key.String()] = struct{}{}
		tree.Insert(key, "data:"+key.String())
	}

	expected := make([]string, 0, len(unique))
	for key := range unique {
		expected = append(expected, key)
	}
	sort.Strings(expected)

	p := tree.First()
	require.NotNil(t, p, "no first item")

	n := 0
	for i := 0; nil != p; i += 1 {
		if 0 != p.Key().Compare(stringItem{expected[i]}) {
			t.Fatalf("next item: actual: %q  expected: %q", p.Key(), expected[i])
		}
		n += 1
		p = p.Next()
	}
	assert.Equal(t, len(expected), n, "forward item count")

	p = tree.Last()
	require.NotNil(t, p, "no last item")

	n = 0
	for i := len(expected) - 1; nil != p; i -= 1 {
		if 0 != p.Key().Compare(stringItem{expected[i]}) {
			t.Fatalf("prev item: actual: %q  expected: %q", p.Key(), expected[i])
		}
		n += 1
		p = p.Prev()
	}
	assert.Equal(t, len(expected), n, "backward item count")
	assert.Equal(t, n, tree.Count(), "tree count")
}

func TestRandomTree(t *testing.T) {
	randomTree(t, 1, 2200, 2000)
	randomTree(t, 2, 3400, 2760)
	randomTree(t, 3, 5467, 1234)

	for i := int64(0); i < 5; i += 1 {
		randomTree(t, 10+i, 2100, 2000)
	}
}

func randomTree(t *testing.T, seed int64, total int, toDelete int) {

	require.LessOrEqual(t, toDelete, total, "deletions exceed total")

	r := rand.New(rand.NewSource(seed))
	tree := avl.New()
	d := make([]intItem, toDelete)

	for i := 0; i < total; i += 1 {
		key := intItem(r.Intn(10000))
		if i < len(d) {
			d[i] = key
		}
		tree.Insert(key, i)
	}
	mustBeValid(t, tree, "add")

	for i, key := range d {
		tree.Remove(key)
		if 0 == i%50 {
			mustBeValid(t, tree, "remove")
		}
	}
	mustBeValid(t, tree, "after removes")

	// add back a test value
	testKey := intItem(500)
	const testValue = "just testing data: test 500 value"
	tree.Insert(testKey, testValue)
	mustBeValid(t, tree, "add test key")

	tv := tree.Search(testKey)
	require.NotNil(t, tv, "could not find test key")
	assert.Equal(t, testKey, tv.Key(), "test key")
	assert.Equal(t, testValue, tv.Value(), "test value")

	value, ok := tree.Remove(testKey)
	assert.True(t, ok, "remove test key")
	assert.Equal(t, testValue, value, "removed value")
	assert.Nil(t, tree.Search(testKey), "test key not deleted")
}

// every intermediate state of a full build up and tear down is valid
func TestInsertAllRemoveAll(t *testing.T) {
	const n = 512
	r := rand.New(rand.NewSource(42))

	tree := avl.New()
	for _, k := range r.Perm(n) {
		assert.True(t, tree.Insert(intItem(k), k), "insert: %d", k)
		mustBeValid(t, tree, "insert")
	}
	assert.Equal(t, n, tree.Count(), "count after inserts")

	for _, k := range r.Perm(n) {
		value, ok := tree.Remove(intItem(k))
		require.True(t, ok, "remove: %d", k)
		require.Equal(t, k, value, "removed value")
		mustBeValid(t, tree, "remove")
	}
	assert.True(t, tree.IsEmpty(), "tree is not empty")
	assert.Equal(t, 0, tree.Count(), "count after removes")
}

// ascending keys exercise the right-right case at every level
func TestAscendingInsert(t *testing.T) {
	tree := avl.New()
	for i := 1; i <= 1023; i += 1 {
		tree.Insert(intItem(i), i)
	}
	mustBeValid(t, tree, "ascending")
	assert.Equal(t, 10, tree.Height(), "perfect tree height")
	assert.True(t, tree.EqualLeafDepth(), "perfect tree leaves")
}

func TestRemoveAbsentKey(t *testing.T) {
	tree := avl.New()
	value, ok := tree.Remove(intItem(1))
	assert.False(t, ok, "remove from empty tree")
	assert.Nil(t, value, "value from empty tree")

	for _, k := range []int{5, 3, 8} {
		tree.Insert(intItem(k), k)
	}
	before := shape(tree.Root())

	value, ok = tree.Remove(intItem(4))
	assert.False(t, ok, "remove absent key")
	assert.Nil(t, value, "value of absent key")
	assert.Equal(t, before, shape(tree.Root()), "shape changed")
	assert.Equal(t, 3, tree.Count(), "count changed")
}

func TestGet(t *testing.T) {
	tree := avl.New()
	tree.Insert(intItem(7), "seven")

	value, err := tree.Get(intItem(7))
	assert.NoError(t, err, "get existing")
	assert.Equal(t, "seven", value, "get value")

	value, err = tree.Get(intItem(8))
	assert.Equal(t, fault.ErrKeyNotFound, err, "get absent")
	assert.True(t, fault.IsErrNotFound(err), "error class")
	assert.Nil(t, value, "absent value")
}

// render keys and balances in pre-order
func shape(p *avl.Node) string {
	if nil == p {
		return "."
	}
	return fmt.Sprintf("(%v%+d %s %s)", p.Key(), p.Balance(), shape(p.Left()), shape(p.Right()))
}

// overwriting a value leaves the shape and the balances alone
func TestOverwriteKeepsShape(t *testing.T) {
	tree := avl.New()
	for _, k := range []int{50, 20, 80, 10, 30, 90, 5} {
		tree.Insert(intItem(k), k)
	}
	before := shape(tree.Root())
	left, right := tree.Rotations()

	for _, k := range []int{50, 5, 90, 30} {
		added := tree.Insert(intItem(k), "new")
		assert.False(t, added, "overwrite reported as add: %d", k)
	}

	assert.Equal(t, before, shape(tree.Root()), "shape changed")
	assert.Equal(t, 7, tree.Count(), "count changed")
	l2, r2 := tree.Rotations()
	assert.Equal(t, left, l2, "left rotations")
	assert.Equal(t, right, r2, "right rotations")

	value, err := tree.Get(intItem(30))
	assert.NoError(t, err, "get")
	assert.Equal(t, "new", value, "overwritten value")
}

// check that nodes keep constant address when tree is re-balanced
// and when a node with two children is removed
func TestNodeStability(t *testing.T) {
	tree := avl.New()
	for i := 1; i <= 10; i += 1 {
		tree.Insert(intItem(i), i)
	}
	mustBeValid(t, tree, "add")

	nodes := make(map[int]*avl.Node)
	for i := 1; i <= 10; i += 1 {
		nodes[i] = tree.Search(intItem(i))
	}

	// 4 is the root with two children, its predecessor 3 takes over
	root := tree.Root()
	require.Equal(t, intItem(4), root.Key(), "root key")
	tree.Remove(intItem(4))
	mustBeValid(t, tree, "remove root")

	assert.Equal(t, intItem(3), tree.Root().Key(), "new root key")
	for i := 1; i <= 10; i += 1 {
		if 4 == i {
			assert.Nil(t, tree.Search(intItem(i)), "removed key still present")
			continue
		}
		assert.Same(t, nodes[i], tree.Search(intItem(i)), "node moved: %d", i)
	}

	// many more removes causing rotations
	for _, k := range []int{6, 9, 1} {
		tree.Remove(intItem(k))
		mustBeValid(t, tree, "remove")
	}
	for _, k := range []int{2, 3, 5, 7, 8, 10} {
		assert.Same(t, nodes[k], tree.Search(intItem(k)), "node moved: %d", k)
	}
}

// inserting 1, 2, 3 is a single left rotation at 1
func TestInsertRightRight(t *testing.T) {
	tree := avl.New()
	for _, k := range []int{1, 2, 3} {
		tree.Insert(intItem(k), k)
	}

	left, right := tree.Rotations()
	assert.Equal(t, uint64(1), left, "left rotations")
	assert.Equal(t, uint64(0), right, "right rotations")
	assert.Equal(t, "(2+0 (1+0 . .) (3+0 . .))", shape(tree.Root()), "shape")
	assert.Nil(t, tree.Root().Parent(), "root parent")
	mustBeValid(t, tree, "right-right")
}

// inserting 3, 1, 2 is a left rotation at 1 then a right rotation at 3
func TestInsertLeftRight(t *testing.T) {
	tree := avl.New()
	for _, k := range []int{3, 1, 2} {
		tree.Insert(intItem(k), k)
	}

	left, right := tree.Rotations()
	assert.Equal(t, uint64(1), left, "left rotations")
	assert.Equal(t, uint64(1), right, "right rotations")
	assert.Equal(t, "(2+0 (1+0 . .) (3+0 . .))", shape(tree.Root()), "shape")
	mustBeValid(t, tree, "left-right")
}

func TestInsertMirrorCases(t *testing.T) {
	tree := avl.New()
	for _, k := range []int{3, 2, 1} {
		tree.Insert(intItem(k), k)
	}
	left, right := tree.Rotations()
	assert.Equal(t, uint64(0), left, "left-left: left rotations")
	assert.Equal(t, uint64(1), right, "left-left: right rotations")
	assert.Equal(t, "(2+0 (1+0 . .) (3+0 . .))", shape(tree.Root()), "left-left shape")

	tree = avl.New()
	for _, k := range []int{1, 3, 2} {
		tree.Insert(intItem(k), k)
	}
	left, right = tree.Rotations()
	assert.Equal(t, uint64(1), left, "right-left: left rotations")
	assert.Equal(t, uint64(1), right, "right-left: right rotations")
	assert.Equal(t, "(2+0 (1+0 . .) (3+0 . .))", shape(tree.Root()), "right-left shape")
}

// removal rotating at the root: the pivot becomes the new root and
// has no parent to continue with
func TestRemoveRotationAtRoot(t *testing.T) {
	tree := avl.New()
	for _, k := range []int{2, 1, 3, 4} {
		tree.Insert(intItem(k), k)
	}
	require.Equal(t, "(2+1 (1+0 . .) (3+1 . (4+0 . .)))", shape(tree.Root()), "initial shape")

	tree.Remove(intItem(1))

	assert.Equal(t, "(3+0 (2+0 . .) (4+0 . .))", shape(tree.Root()), "shape after remove")
	assert.Nil(t, tree.Root().Parent(), "new root parent")
	mustBeValid(t, tree, "rotation at root")
}

// the sibling with balance 0 leaves the height unchanged after the
// rotation so the walk stops
func TestRemoveRotationAbsorbed(t *testing.T) {
	tree := avl.New()
	for _, k := range []int{2, 1, 4, 3, 5} {
		tree.Insert(intItem(k), k)
	}
	require.Equal(t, "(2+1 (1+0 . .) (4+0 (3+0 . .) (5+0 . .)))", shape(tree.Root()), "initial shape")

	tree.Remove(intItem(1))

	assert.Equal(t, "(4-1 (2+1 . (3+0 . .)) (5+0 . .))", shape(tree.Root()), "shape after remove")
	mustBeValid(t, tree, "absorbed")
}

// removing a node with two children swaps in its predecessor
func TestRemoveTwoChildren(t *testing.T) {
	tree := avl.New()
	for _, k := range []int{20, 10, 30, 5, 15, 25, 35, 12} {
		tree.Insert(intItem(k), k)
	}
	mustBeValid(t, tree, "add")
	require.Equal(t, "(20-1 (10+1 (5+0 . .) (15-1 (12+0 . .) .)) (30+0 (25+0 . .) (35+0 . .)))", shape(tree.Root()), "initial shape")

	// predecessor 5 is the direct left child of 10, once swapped it
	// is right heavy by two and needs a right-left rotation
	five := tree.Search(intItem(5))
	value, ok := tree.Remove(intItem(10))
	assert.True(t, ok, "remove")
	assert.Equal(t, 10, value, "value")

	assert.Equal(t, "(20+0 (12+0 (5+0 . .) (15+0 . .)) (30+0 (25+0 . .) (35+0 . .)))", shape(tree.Root()), "shape after remove")
	assert.Same(t, five, tree.Search(intItem(5)), "predecessor node moved")
	mustBeValid(t, tree, "remove two children")

	// predecessor 15 is deeper in the left sub-tree
	value, ok = tree.Remove(intItem(20))
	assert.True(t, ok, "remove root")
	assert.Equal(t, 20, value, "root value")
	assert.Equal(t, intItem(15), tree.Root().Key(), "predecessor became root")
	mustBeValid(t, tree, "remove root")
}

func TestEqualLeafDepth(t *testing.T) {
	assert.True(t, avl.EqualLeafDepth(nil), "nil root")
	assert.True(t, avl.New().EqualLeafDepth(), "empty tree")

	tree := avl.New()
	tree.Insert(intItem(1), 1)
	assert.True(t, tree.EqualLeafDepth(), "single node")

	tree.Insert(intItem(2), 2)
	assert.True(t, tree.EqualLeafDepth(), "single chain")

	tree.Insert(intItem(0), 0)
	assert.True(t, tree.EqualLeafDepth(), "full tree")

	tree.Insert(intItem(3), 3)
	assert.False(t, tree.EqualLeafDepth(), "leaves at depth 1 and 2")

	tree.Insert(intItem(-1), -1)
	assert.True(t, tree.EqualLeafDepth(), "leaves at depth 2 only")
}

func TestPrint(t *testing.T) {
	tree := avl.New()
	for _, k := range []int{2, 1, 3} {
		tree.Insert(intItem(k), fmt.Sprintf("v%d", k))
	}

	buffer := &bytes.Buffer{}
	depth := tree.Print(buffer, true)
	assert.Equal(t, 2, depth, "depth")

	expected := "       /------+ 3 → v3 ^2 +0\n" +
		"|------+ 2 → v2 ^<nil> +0\n" +
		"       \\------+ 1 → v1 ^2 +0\n"
	assert.Equal(t, expected, buffer.String(), "output")

	assert.Equal(t, 0, avl.New().Print(buffer, false), "empty depth")
}

func TestGetDepthInTree(t *testing.T) {
	tree := avl.New()
	for i := 1; i <= 7; i += 1 {
		tree.Insert(intItem(i), i)
	}

	assert.Equal(t, uint(1), tree.First().Next().Depth(), "depth of 2")
	assert.Equal(t, uint(2), tree.First().Next().Next().Depth(), "depth of 3")
	assert.Equal(t, uint(0), tree.Root().Depth(), "depth of root")
}

func TestGetChildrenByDepth(t *testing.T) {
	tree := avl.New()
	for i := 1; i <= 7; i += 1 {
		tree.Insert(intItem(i), i)
	}

	assert.Len(t, tree.Root().GetChildrenByDepth(1), 2, "children at depth 1")
	assert.Len(t, tree.Root().GetChildrenByDepth(2), 4, "children at depth 2")
	assert.Len(t, tree.Root().GetChildrenByDepth(3), 0, "children at depth 3")
}
