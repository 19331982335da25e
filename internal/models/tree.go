package models

import (
	"fmt"
	"strings"
)

// TreeNodeType represents the type of tree node
type TreeNodeType string

const (
	TreeNodeTypeRoot     TreeNodeType = "root"
	TreeNodeTypeSection  TreeNodeType = "section" // "Categories" / "Tags" headers
	TreeNodeTypeCategory TreeNodeType = "category"
	TreeNodeTypeTag      TreeNodeType = "tag"
)

// TreeNode represents a node in the catalog navigation tree
type TreeNode struct {
	ID         string       // Unique identifier (e.g. "category:electronics", "tag:sale")
	Type       TreeNodeType // Type of node
	Label      string       // Display text
	Parent     *TreeNode    // Parent node (nil for root)
	Children   []*TreeNode  // Child nodes
	Expanded   bool         // Whether node is expanded
	Selectable bool         // Whether node can be selected
	Count      int          // Matching product count, shown next to the label
}

// NewTreeNode creates a new tree node
func NewTreeNode(id string, nodeType TreeNodeType, label string) *TreeNode {
	return &TreeNode{
		ID:         id,
		Type:       nodeType,
		Label:      label,
		Children:   make([]*TreeNode, 0),
		Expanded:   false,
		Selectable: nodeType == TreeNodeTypeCategory || nodeType == TreeNodeTypeTag,
	}
}

// AddChild adds a child node to this node
func (n *TreeNode) AddChild(child *TreeNode) {
	child.Parent = n
	n.Children = append(n.Children, child)
}

// Toggle toggles the expanded state of the node
func (n *TreeNode) Toggle() {
	if len(n.Children) > 0 {
		n.Expanded = !n.Expanded
	}
}

// Flatten returns a flat list of visible nodes for rendering, based on the
// expansion state of their parents
func (n *TreeNode) Flatten() []*TreeNode {
	return n.flattenHelper(true)
}

func (n *TreeNode) flattenHelper(visible bool) []*TreeNode {
	result := make([]*TreeNode, 0)

	// The root is just a container and never shows itself
	if n.Type != TreeNodeTypeRoot {
		if visible {
			result = append(result, n)
		}
	}

	if n.Expanded || n.Type == TreeNodeTypeRoot {
		for _, child := range n.Children {
			childVisible := visible && (n.Type == TreeNodeTypeRoot || n.Expanded)
			result = append(result, child.flattenHelper(childVisible)...)
		}
	}

	return result
}

// FindByID finds a node by ID in the tree (depth-first search)
func (n *TreeNode) FindByID(id string) *TreeNode {
	if n.ID == id {
		return n
	}

	for _, child := range n.Children {
		if found := child.FindByID(id); found != nil {
			return found
		}
	}

	return nil
}

// GetPath returns the labels from root to this node
func (n *TreeNode) GetPath() []string {
	path := make([]string, 0)
	current := n

	for current != nil {
		if current.Type != TreeNodeTypeRoot {
			path = append([]string{current.Label}, path...)
		}
		current = current.Parent
	}

	return path
}

// GetDepth returns the depth of this node in the tree (root = 0)
func (n *TreeNode) GetDepth() int {
	depth := 0
	current := n.Parent

	for current != nil {
		depth++
		current = current.Parent
	}

	return depth
}

// BuildCatalogTree builds the navigation tree from the loaded catalog's
// distinct categories and tags, preserving first-seen order.
func BuildCatalogTree(categories, tags []string, counts map[string]int) *TreeNode {
	root := NewTreeNode("root", TreeNodeTypeRoot, "Catalog")
	root.Expanded = true

	categorySection := NewTreeNode("section:categories", TreeNodeTypeSection, "Categories")
	categorySection.Expanded = true
	for _, category := range categories {
		node := NewTreeNode(
			fmt.Sprintf("category:%s", category),
			TreeNodeTypeCategory,
			category,
		)
		node.Count = counts[node.ID]
		categorySection.AddChild(node)
	}
	root.AddChild(categorySection)

	tagSection := NewTreeNode("section:tags", TreeNodeTypeSection, "Tags")
	tagSection.Expanded = true
	for _, tag := range tags {
		node := NewTreeNode(
			fmt.Sprintf("tag:%s", tag),
			TreeNodeTypeTag,
			tag,
		)
		node.Count = counts[node.ID]
		tagSection.AddChild(node)
	}
	root.AddChild(tagSection)

	return root
}

// ParseNodeID parses a node ID and returns its type and value.
// For example: "category:electronics" -> ("category", "electronics")
func ParseNodeID(id string) (nodeType string, value string) {
	parts := strings.SplitN(id, ":", 2)
	if len(parts) != 2 {
		return "", ""
	}
	return parts[0], parts[1]
}
