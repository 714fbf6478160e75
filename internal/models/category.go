package models

// Category groups habits. Identity is the name.
type Category struct {
	Name  string `json:"name"`
	Color Color  `json:"color"`
}

func (c Category) Equal(other Category) bool {
	return c.Name == other.Name
}
