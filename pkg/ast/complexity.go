package ast

// NodeCount returns the number of nodes in the tree rooted at n.
func NodeCount(n Node) int {
	count := 1
	for _, c := range Children(n) {
		count += NodeCount(c)
	}
	return count
}

// Depth returns the length of the longest root-to-leaf path.
func Depth(n Node) int {
	deepest := 0
	for _, c := range Children(n) {
		if d := Depth(c); d > deepest {
			deepest = d
		}
	}
	return 1 + deepest
}
