package picker

// Element is a node of the host document
type Element interface {
	ID() string
	Tag() string
	Attribute(name string) (string, bool)
	SetAttribute(name, value string)
	RemoveAttribute(name string)
	AddClass(name string)
	RemoveClass(name string)
	HasClass(name string) bool
	SetText(text string)
	AppendChild(child Element)
	// Parent returns nil for the topmost element
	Parent() Element
}

// Document is the interactive host the runtime attaches to
type Document interface {
	ElementByID(id string) Element
	CreateElement(tag string) Element
	Head() Element
	Body() Element
}

// Closest returns the nearest inclusive ancestor of element carrying every attribute
func Closest(element Element, attributes ...string) Element {
	for candidate := element; candidate != nil; candidate = candidate.Parent() {
		if hasAll(candidate, attributes) {
			return candidate
		}
	}
	return nil
}

func hasAll(element Element, attributes []string) bool {
	for _, name := range attributes {
		if _, ok := element.Attribute(name); !ok {
			return false
		}
	}
	return true
}

func closestID(element Element, ids ...string) string {
	for candidate := element; candidate != nil; candidate = candidate.Parent() {
		id := candidate.ID()
		for _, expect := range ids {
			if id != "" && id == expect {
				return id
			}
		}
	}
	return ""
}

func visible(element Element) bool {
	_, hidden := element.Attribute("hidden")
	return !hidden
}

func setVisible(element Element, show bool) {
	if show {
		element.RemoveAttribute("hidden")
		return
	}
	element.SetAttribute("hidden", "")
}
