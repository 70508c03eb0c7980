package tracking

import (
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// SlotAttr labels every node managed by the injector with its region, so
// a later apply can find and remove exactly the nodes it owns.
const SlotAttr = "data-tracking-slot"

// Slot identifies one of the three fixed injection regions of a page.
type Slot string

const (
	SlotHead      Slot = "head"
	SlotBodyStart Slot = "bodyStart"
	SlotBodyEnd   Slot = "bodyEnd"
)

// Apply reconciles doc against cfg. For each region, every node carrying
// that region's slot label is removed first; the region's markup, if
// non-empty, is then parsed and inserted at the region's designated
// position. The full replace makes the operation idempotent: applying the
// same config twice leaves a single labelled node set per region, and an
// all-empty config removes everything a previous apply added.
func Apply(doc *html.Node, cfg Config) {
	head := findElement(doc, atom.Head)
	body := findElement(doc, atom.Body)
	applySlot(doc, head, SlotHead, cfg.HeadTags)
	applySlot(doc, body, SlotBodyStart, cfg.BodyStartTags)
	applySlot(doc, body, SlotBodyEnd, cfg.BodyEndTags)
}

func applySlot(doc, parent *html.Node, slot Slot, markup string) {
	removeSlotNodes(doc, slot)
	if parent == nil {
		return
	}
	nodes := parseNodes(parent, slot, markup)
	if len(nodes) == 0 {
		return
	}

	if slot == SlotBodyStart {
		// Prepend in reverse iteration so the final document order
		// matches the source order of the markup.
		for i := len(nodes) - 1; i >= 0; i-- {
			parent.InsertBefore(nodes[i], parent.FirstChild)
		}
		return
	}
	for _, n := range nodes {
		parent.AppendChild(n)
	}
}

// removeSlotNodes detaches every node labelled for slot anywhere in doc.
func removeSlotNodes(doc *html.Node, slot Slot) {
	var labelled []*html.Node
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode && slotOf(n) == slot {
			labelled = append(labelled, n)
			return
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(doc)
	for _, n := range labelled {
		n.Parent.RemoveChild(n)
	}
}

// parseNodes parses markup as a fragment in parent's context and returns
// fresh, labelled nodes ready for insertion. Element nodes are rebuilt
// rather than reused (see rebuildNode); whitespace-only text is dropped.
func parseNodes(parent *html.Node, slot Slot, markup string) []*html.Node {
	trimmed := strings.TrimSpace(markup)
	if trimmed == "" {
		return nil
	}
	context := &html.Node{
		Type:     html.ElementNode,
		Data:     parent.Data,
		DataAtom: parent.DataAtom,
	}
	parsed, err := html.ParseFragment(strings.NewReader(trimmed), context)
	if err != nil {
		return nil
	}

	var nodes []*html.Node
	for _, n := range parsed {
		switch {
		case n.Type == html.ElementNode:
			nodes = append(nodes, rebuildNode(n, slot))
		case n.Type == html.TextNode && strings.TrimSpace(n.Data) != "":
			nodes = append(nodes, &html.Node{Type: html.TextNode, Data: n.Data})
		}
	}
	return nodes
}

// rebuildNode deep-copies an element into a freshly constructed node tree,
// labelling every element with the slot. Script elements are reconstructed
// from scratch, copying attributes and inline source text: the browser
// twin of this routine relies on fresh script elements because a script
// node relocated via ordinary DOM moves does not re-execute.
func rebuildNode(n *html.Node, slot Slot) *html.Node {
	if n.Type == html.ElementNode && n.DataAtom == atom.Script {
		script := &html.Node{
			Type:     html.ElementNode,
			Data:     "script",
			DataAtom: atom.Script,
			Attr:     append([]html.Attribute(nil), n.Attr...),
		}
		if text := innerText(n); text != "" {
			script.AppendChild(&html.Node{Type: html.TextNode, Data: text})
		}
		setSlot(script, slot)
		return script
	}

	clone := &html.Node{
		Type:      n.Type,
		Data:      n.Data,
		DataAtom:  n.DataAtom,
		Namespace: n.Namespace,
		Attr:      append([]html.Attribute(nil), n.Attr...),
	}
	if clone.Type == html.ElementNode {
		setSlot(clone, slot)
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if c.Type == html.ElementNode {
			clone.AppendChild(rebuildNode(c, slot))
			continue
		}
		clone.AppendChild(&html.Node{
			Type: c.Type,
			Data: c.Data,
			Attr: append([]html.Attribute(nil), c.Attr...),
		})
	}
	return clone
}

func slotOf(n *html.Node) Slot {
	for _, attr := range n.Attr {
		if attr.Key == SlotAttr {
			return Slot(attr.Val)
		}
	}
	return ""
}

func setSlot(n *html.Node, slot Slot) {
	for i, attr := range n.Attr {
		if attr.Key == SlotAttr {
			n.Attr[i].Val = string(slot)
			return
		}
	}
	n.Attr = append(n.Attr, html.Attribute{Key: SlotAttr, Val: string(slot)})
}

// innerText concatenates the text content beneath n.
func innerText(n *html.Node) string {
	var b strings.Builder
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.TextNode {
			b.WriteString(n.Data)
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		walk(c)
	}
	return b.String()
}

func findElement(n *html.Node, a atom.Atom) *html.Node {
	if n.Type == html.ElementNode && n.DataAtom == a {
		return n
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if found := findElement(c, a); found != nil {
			return found
		}
	}
	return nil
}
